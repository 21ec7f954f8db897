package nomenclature

import (
	"fmt"
	"strings"
)

// Attr identifies which UnitSpec attribute a segment carries.
type Attr string

const (
	AttrSystemType  Attr = "system_type"
	AttrSeries      Attr = "series"
	AttrCapacity    Attr = "capacity"
	AttrVoltage     Attr = "voltage"
	AttrRefrigerant Attr = "refrigerant"
	AttrEfficiency  Attr = "efficiency"
	AttrDrive       Attr = "drive"
	AttrControls    Attr = "controls"
	AttrCoil        Attr = "coil"
	AttrRevision    Attr = "revision"
)

// Code is one entry of a segment's code table.
type Code struct {
	Value       string `yaml:"value"`       // semantic value, e.g. "460/3"
	Description string `yaml:"description"` // human-facing label
}

// Segment is one fixed-width slice of a family's model number.
// Numeric segments carry no code table; the slice is parsed as a
// zero-padded integer and multiplied by the family scale factor.
type Segment struct {
	Name    string          `yaml:"name"`
	Attr    Attr            `yaml:"attr"`
	Start   int             `yaml:"start"`
	Width   int             `yaml:"width"`
	Default string          `yaml:"default"`
	Numeric bool            `yaml:"numeric,omitempty"`
	Codes   map[string]Code `yaml:"codes,omitempty"`
}

// Family is a product line with its own fixed model-number layout.
type Family struct {
	Key         string    `yaml:"key"` // also the model-number prefix
	Description string    `yaml:"description"`
	CodeLen     int       `yaml:"code_length"`
	Scale       int       `yaml:"scale"` // BTU/hr per capacity unit
	Segments    []Segment `yaml:"segments"`
}

// validate checks the structural invariants: segments contiguous from
// position 0, widths summing to CodeLen, defaults resolvable, and no
// duplicate semantic values inside one code table (a duplicate value would
// make the encoder's reverse lookup ambiguous).
func (f *Family) validate() error {
	if f.Key == "" {
		return fmt.Errorf("family with empty key")
	}
	if f.CodeLen <= 0 {
		return fmt.Errorf("family %s: code length must be positive", f.Key)
	}
	next := 0
	for _, seg := range f.Segments {
		if seg.Name == "" {
			return fmt.Errorf("family %s: segment at position %d has no name", f.Key, seg.Start)
		}
		if seg.Start != next {
			return fmt.Errorf("family %s: segment %s starts at %d, want %d", f.Key, seg.Name, seg.Start, next)
		}
		if seg.Width <= 0 {
			return fmt.Errorf("family %s: segment %s has width %d", f.Key, seg.Name, seg.Width)
		}
		next += seg.Width

		if seg.Numeric {
			if f.Scale <= 0 {
				return fmt.Errorf("family %s: numeric segment %s but scale is %d", f.Key, seg.Name, f.Scale)
			}
			if _, err := parseNumericCode(seg.Default, seg.Width); err != nil {
				return fmt.Errorf("family %s: segment %s default %q: %w", f.Key, seg.Name, seg.Default, err)
			}
			continue
		}
		if len(seg.Codes) == 0 {
			return fmt.Errorf("family %s: segment %s has an empty code table", f.Key, seg.Name)
		}
		if _, ok := seg.Codes[seg.Default]; !ok {
			return fmt.Errorf("family %s: segment %s default code %q not in table", f.Key, seg.Name, seg.Default)
		}
		seen := make(map[string]string, len(seg.Codes))
		for code, c := range seg.Codes {
			if len(code) != seg.Width {
				return fmt.Errorf("family %s: segment %s code %q is not %d chars", f.Key, seg.Name, code, seg.Width)
			}
			if prev, dup := seen[c.Value]; dup {
				return fmt.Errorf("family %s: segment %s codes %q and %q both map to %q", f.Key, seg.Name, prev, code, c.Value)
			}
			seen[c.Value] = code
		}
	}
	if next != f.CodeLen {
		return fmt.Errorf("family %s: segment widths sum to %d, declared length is %d", f.Key, next, f.CodeLen)
	}
	return nil
}

func parseNumericCode(code string, width int) (int, error) {
	if len(code) != width {
		return 0, fmt.Errorf("numeric code %q is not %d digits", code, width)
	}
	n := 0
	for _, r := range code {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("numeric code %q contains non-digit", code)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

// canonicalize strips separators and uppercases a raw model number so that
// hand-typed variants like "ph4-048 4ahdeaa" slice the same as catalog text.
func canonicalize(model string) string {
	var b strings.Builder
	b.Grow(len(model))
	for _, r := range strings.ToUpper(strings.TrimSpace(model)) {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		}
	}
	return b.String()
}
