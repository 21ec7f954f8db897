package nomenclature

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltins(t *testing.T) {
	reg, err := Load("")
	require.NoError(t, err)

	fams := reg.Families()
	require.Len(t, fams, 3)
	assert.Equal(t, "PA", fams[0].Key)
	assert.Equal(t, "PG", fams[1].Key)
	assert.Equal(t, "PH", fams[2].Key)

	for _, f := range fams {
		sum := 0
		for _, seg := range f.Segments {
			sum += seg.Width
		}
		assert.Equal(t, f.CodeLen, sum, "family %s segment widths must cover the code length", f.Key)
	}
}

func TestFamilyLookup(t *testing.T) {
	reg, err := Load("")
	require.NoError(t, err)

	f, err := reg.Family("ph")
	require.NoError(t, err)
	assert.Equal(t, "PH", f.Key)

	_, err = reg.Family("ZZ")
	var unknown *UnknownFamilyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ZZ", unknown.Key)
}

func TestInferLongestPrefixWins(t *testing.T) {
	short := testFamily("P", 12)
	long := testFamily("PH", 13)
	reg, err := NewRegistry([]*Family{short, long})
	require.NoError(t, err)

	f, err := reg.Infer("PH40484AHDEAA")
	require.NoError(t, err)
	assert.Equal(t, "PH", f.Key)

	f, err = reg.Infer("PX40484AHDEAA")
	require.NoError(t, err)
	assert.Equal(t, "P", f.Key)

	_, err = reg.Infer("QQ123")
	var unknown *UnknownFamilyError
	require.ErrorAs(t, err, &unknown)
}

func TestValidateRejectsBadFamilies(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Family)
	}{
		{"widths do not sum to code length", func(f *Family) { f.CodeLen = 20 }},
		{"gap between segments", func(f *Family) { f.Segments[1].Start = 5 }},
		{"duplicate semantic values in one table", func(f *Family) {
			f.Segments[1].Codes["9"] = Code{Value: "460/3"}
		}},
		{"default code not in table", func(f *Family) { f.Segments[1].Default = "7" }},
		{"code width mismatch", func(f *Family) {
			f.Segments[1].Codes["44"] = Code{Value: "550/3"}
		}},
		{"numeric segment without scale", func(f *Family) { f.Scale = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFamily("TT", 13)
			tt.mutate(f)
			_, err := NewRegistry([]*Family{f})
			assert.Error(t, err)
		})
	}
}

func TestLoadRegistryFile(t *testing.T) {
	doc := `
families:
  - key: XR
    description: test line
    code_length: 6
    scale: 1000
    segments:
      - name: family
        attr: system_type
        start: 0
        width: 2
        default: XR
        codes:
          XR: {value: straight_ac, description: test line}
      - name: capacity
        attr: capacity
        start: 2
        width: 3
        default: "024"
        numeric: true
      - name: voltage
        attr: voltage
        start: 5
        width: 1
        default: "4"
        codes:
          "4": {value: 460/3, description: 460V three phase}
`
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	reg, err := Load(path)
	require.NoError(t, err)

	dec, err := reg.DecodeAuto("XR0604")
	require.NoError(t, err)
	assert.Equal(t, 60000, dec.Spec.CapacityBTU)
	assert.Equal(t, "460", dec.Spec.Voltage)
	assert.Empty(t, dec.LowConfidence)
}

// testFamily builds a minimal valid family: 2-char prefix, 3-digit capacity,
// 1-char voltage, padded with a revision segment to the requested length.
func testFamily(key string, codeLen int) *Family {
	prefix := len(key)
	f := &Family{
		Key:     key,
		CodeLen: codeLen,
		Scale:   1000,
		Segments: []Segment{
			{Name: "family", Attr: AttrSystemType, Start: 0, Width: prefix, Default: key,
				Codes: map[string]Code{key: {Value: "straight_ac"}}},
			{Name: "voltage", Attr: AttrVoltage, Start: prefix, Width: 1, Default: "4",
				Codes: map[string]Code{
					"3": {Value: "208-230/3"},
					"4": {Value: "460/3"},
				}},
			{Name: "capacity", Attr: AttrCapacity, Start: prefix + 1, Width: 3, Default: "036", Numeric: true},
		},
	}
	used := prefix + 4
	f.Segments = append(f.Segments, Segment{
		Name: "revision", Attr: AttrRevision, Start: used, Width: codeLen - used, Default: pad("A", codeLen-used),
		Codes: map[string]Code{pad("A", codeLen-used): {Value: "A"}},
	})
	return f
}

func pad(s string, width int) string {
	for len(s) < width {
		s += "A"
	}
	return s
}
