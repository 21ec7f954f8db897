package nomenclature

import (
	"fmt"
	"strconv"
	"strings"

	"crossover-service/internal/crossover/model"
)

// Encode assembles a catalog model number for a family from an attribute
// record. Missing attributes take the segment's default code unless strict
// is set, in which case they are an error. An attribute value the family's
// tables cannot produce is always an InvalidCodeError naming the segment;
// this is the validation boundary that keeps impossible combinations out of
// quotes.
func (r *Registry) Encode(familyKey string, spec model.UnitSpec, strict bool) (string, error) {
	fam, err := r.Family(familyKey)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(fam.CodeLen)
	for _, seg := range fam.Segments {
		code, err := encodeSegment(fam, seg, spec, strict)
		if err != nil {
			return "", err
		}
		b.WriteString(code)
	}

	out := b.String()
	if len(out) != fam.CodeLen {
		return "", fmt.Errorf("family %s: assembled %d chars, declared length is %d", fam.Key, len(out), fam.CodeLen)
	}
	return out, nil
}

func encodeSegment(fam *Family, seg Segment, spec model.UnitSpec, strict bool) (string, error) {
	if seg.Numeric {
		return encodeCapacity(fam, seg, spec.CapacityBTU, strict)
	}

	value := attrValue(spec, seg.Attr)
	if value == "" {
		if strict {
			return "", &MissingAttributeError{Family: fam.Key, Segment: seg.Name}
		}
		return seg.Default, nil
	}
	for code, c := range seg.Codes {
		if c.Value == value {
			return code, nil
		}
	}
	// voltage given without phase count: accept when only one code fits
	if seg.Attr == AttrVoltage && !strings.Contains(value, "/") {
		match := ""
		for code, c := range seg.Codes {
			if volts, _, _ := strings.Cut(c.Value, "/"); volts == value {
				if match != "" {
					return "", &InvalidCodeError{Family: fam.Key, Segment: seg.Name, Value: value}
				}
				match = code
			}
		}
		if match != "" {
			return match, nil
		}
	}
	return "", &InvalidCodeError{Family: fam.Key, Segment: seg.Name, Value: value}
}

func encodeCapacity(fam *Family, seg Segment, btu int, strict bool) (string, error) {
	if btu == 0 {
		if strict {
			return "", &MissingAttributeError{Family: fam.Key, Segment: seg.Name}
		}
		return seg.Default, nil
	}
	if btu < 0 || btu%fam.Scale != 0 {
		return "", &InvalidCodeError{Family: fam.Key, Segment: seg.Name, Value: strconv.Itoa(btu)}
	}
	units := btu / fam.Scale
	code := fmt.Sprintf("%0*d", seg.Width, units)
	if len(code) != seg.Width {
		return "", &InvalidCodeError{Family: fam.Key, Segment: seg.Name, Value: strconv.Itoa(btu)}
	}
	return code, nil
}

func attrValue(spec model.UnitSpec, attr Attr) string {
	switch attr {
	case AttrSystemType:
		return string(spec.SystemType)
	case AttrSeries:
		return spec.Series
	case AttrVoltage:
		if spec.Voltage == "" {
			return ""
		}
		if spec.Phases == "" {
			return spec.Voltage
		}
		return spec.Voltage + "/" + spec.Phases
	case AttrRefrigerant:
		return spec.Refrigerant
	case AttrEfficiency:
		return string(spec.Efficiency)
	case AttrDrive:
		return spec.Drive
	case AttrControls:
		return spec.Controls
	case AttrCoil:
		return spec.Coil
	case AttrRevision:
		return spec.Revision
	}
	return ""
}
