package nomenclature

import (
	"strings"

	"crossover-service/internal/crossover/model"
)

// Decoded carries the attribute record plus the data-quality signal: segment
// names that fell back to their default code because the input was short or
// carried an unknown code. Fallback is deliberate policy; callers always get
// a complete spec and can prompt for the flagged fields.
type Decoded struct {
	Spec          model.UnitSpec `json:"spec"`
	LowConfidence []string       `json:"lowConfidence,omitempty"`
}

// DecodeAuto decodes a model number, inferring the family from its prefix
// (longest registered prefix wins).
func (r *Registry) DecodeAuto(modelNumber string) (Decoded, error) {
	canon := canonicalize(modelNumber)
	if canon == "" {
		return Decoded{}, &MalformedInputError{Reason: "empty model number"}
	}
	fam, err := r.Infer(canon)
	if err != nil {
		return Decoded{}, err
	}
	return r.decode(fam, canon)
}

// Decode decodes a model number against an explicitly named family.
func (r *Registry) Decode(modelNumber, familyKey string) (Decoded, error) {
	canon := canonicalize(modelNumber)
	if canon == "" {
		return Decoded{}, &MalformedInputError{Reason: "empty model number"}
	}
	fam, err := r.Family(familyKey)
	if err != nil {
		return Decoded{}, err
	}
	return r.decode(fam, canon)
}

func (r *Registry) decode(fam *Family, canon string) (Decoded, error) {
	out := Decoded{Spec: model.UnitSpec{Model: canon, Family: fam.Key}}
	for _, seg := range fam.Segments {
		code, ok := sliceCode(canon, seg)
		if !ok {
			code = seg.Default
		}

		if seg.Numeric {
			n, err := parseNumericCode(code, seg.Width)
			if err != nil {
				// non-digit slice: fall back like any other unknown code
				n, _ = parseNumericCode(seg.Default, seg.Width)
				ok = false
			}
			out.Spec.CapacityBTU = n * fam.Scale
		} else {
			c, known := seg.Codes[code]
			if !known {
				c = seg.Codes[seg.Default]
				ok = false
			}
			applyAttr(&out.Spec, seg.Attr, c.Value)
		}
		if !ok {
			out.LowConfidence = append(out.LowConfidence, seg.Name)
		}
	}
	return out, nil
}

// sliceCode cuts the segment's slice out of the model number. A short slice
// (truncated input) reports !ok so the caller applies the default code.
func sliceCode(canon string, seg Segment) (string, bool) {
	if seg.Start+seg.Width > len(canon) {
		return "", false
	}
	return canon[seg.Start : seg.Start+seg.Width], true
}

func applyAttr(spec *model.UnitSpec, attr Attr, value string) {
	switch attr {
	case AttrSystemType:
		spec.SystemType = model.SystemType(value)
	case AttrSeries:
		spec.Series = value
	case AttrCapacity:
		// CapacityBTU set by the numeric path
	case AttrVoltage:
		volts, phases, found := strings.Cut(value, "/")
		spec.Voltage = volts
		if found {
			spec.Phases = phases
		}
	case AttrRefrigerant:
		spec.Refrigerant = value
	case AttrEfficiency:
		spec.Efficiency = model.EfficiencyTier(value)
	case AttrDrive:
		spec.Drive = value
	case AttrControls:
		spec.Controls = value
	case AttrCoil:
		spec.Coil = value
	case AttrRevision:
		spec.Revision = value
	}
}
