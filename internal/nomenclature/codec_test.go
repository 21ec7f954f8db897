package nomenclature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossover-service/internal/crossover/model"
)

func mustRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := Load("")
	require.NoError(t, err)
	return reg
}

func TestDecodeFullModelNumber(t *testing.T) {
	reg := mustRegistry(t)

	dec, err := reg.DecodeAuto("PH40484AHDEAA")
	require.NoError(t, err)
	assert.Empty(t, dec.LowConfidence)

	spec := dec.Spec
	assert.Equal(t, "PH", spec.Family)
	assert.Equal(t, model.SystemHeatPump, spec.SystemType)
	assert.Equal(t, "4", spec.Series)
	assert.Equal(t, 48000, spec.CapacityBTU)
	assert.InDelta(t, 4.0, spec.Tonnage(), 1e-9)
	assert.Equal(t, "460", spec.Voltage)
	assert.Equal(t, "3", spec.Phases)
	assert.Equal(t, "R-410A", spec.Refrigerant)
	assert.Equal(t, model.EfficiencyHigh, spec.Efficiency)
	assert.Equal(t, "direct", spec.Drive)
	assert.Equal(t, "electromechanical", spec.Controls)
	assert.Equal(t, "aluminum", spec.Coil)
	assert.Equal(t, "A", spec.Revision)
}

func TestDecodeCanonicalizesInput(t *testing.T) {
	reg := mustRegistry(t)

	dec, err := reg.DecodeAuto(" ph4-048 4ahdeaa ")
	require.NoError(t, err)
	assert.Equal(t, "PH40484AHDEAA", dec.Spec.Model)
	assert.Empty(t, dec.LowConfidence)
}

func TestDecodeTruncatedInputFallsBack(t *testing.T) {
	reg := mustRegistry(t)

	// one char short: the revision segment cannot be sliced and takes its
	// default, flagged low-confidence instead of failing
	dec, err := reg.DecodeAuto("PH40484AHDEA")
	require.NoError(t, err)
	assert.Equal(t, []string{"revision"}, dec.LowConfidence)
	assert.Equal(t, "A", dec.Spec.Revision)
	assert.Equal(t, 48000, dec.Spec.CapacityBTU)
}

func TestDecodeUnknownCodeFallsBack(t *testing.T) {
	reg := mustRegistry(t)

	// "9" is not a voltage code; decode keeps going with the default
	dec, err := reg.DecodeAuto("PH40489AHDEAA")
	require.NoError(t, err)
	assert.Equal(t, []string{"voltage"}, dec.LowConfidence)
	assert.Equal(t, "460", dec.Spec.Voltage)
}

func TestDecodeNonDigitCapacityFallsBack(t *testing.T) {
	reg := mustRegistry(t)

	dec, err := reg.DecodeAuto("PH4X4Y4AHDEAA")
	require.NoError(t, err)
	assert.Contains(t, dec.LowConfidence, "capacity")
	assert.Equal(t, 36000, dec.Spec.CapacityBTU) // default 036
}

func TestDecodeErrors(t *testing.T) {
	reg := mustRegistry(t)

	_, err := reg.DecodeAuto("")
	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)

	_, err = reg.DecodeAuto("   --- ")
	require.ErrorAs(t, err, &malformed)

	_, err = reg.DecodeAuto("ZZ40484AHDEAA")
	var unknown *UnknownFamilyError
	require.ErrorAs(t, err, &unknown)

	_, err = reg.Decode("PH40484AHDEAA", "QQ")
	require.ErrorAs(t, err, &unknown)
}

func TestEncodeAssemblesModelNumber(t *testing.T) {
	reg := mustRegistry(t)

	out, err := reg.Encode("PG", model.UnitSpec{
		SystemType:  model.SystemGasElectric,
		Series:      "5",
		CapacityBTU: 90000,
		Voltage:     "575",
		Phases:      "3",
		Refrigerant: "R-454B",
		Efficiency:  model.EfficiencyStandard,
		Drive:       "belt",
		Controls:    "ddc",
		Coil:        "e-coated",
		Revision:    "B",
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "PG50905BSBCEB", out)
	assert.Len(t, out, 13)
}

func TestEncodeDefaultsForMissingAttributes(t *testing.T) {
	reg := mustRegistry(t)

	out, err := reg.Encode("PA", model.UnitSpec{CapacityBTU: 60000}, false)
	require.NoError(t, err)
	assert.Equal(t, "PA40604ASDEAA", out)
}

func TestEncodeStrictModeRequiresAttributes(t *testing.T) {
	reg := mustRegistry(t)

	_, err := reg.Encode("PA", model.UnitSpec{SystemType: model.SystemStraightAC, CapacityBTU: 60000}, true)
	var missing *MissingAttributeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "series", missing.Segment)
}

func TestEncodeInvalidVoltage(t *testing.T) {
	reg := mustRegistry(t)

	_, err := reg.Encode("PH", model.UnitSpec{
		SystemType:  model.SystemHeatPump,
		CapacityBTU: 48000,
		Voltage:     "999",
	}, false)
	var invalid *InvalidCodeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "voltage", invalid.Segment)
	assert.Equal(t, "999", invalid.Value)
	assert.Equal(t, "PH", invalid.Family)
}

func TestEncodeVoltageWithoutPhases(t *testing.T) {
	reg := mustRegistry(t)

	// "460" matches exactly one code even without a phase count
	out, err := reg.Encode("PH", model.UnitSpec{Voltage: "460"}, false)
	require.NoError(t, err)
	assert.Equal(t, byte('4'), out[6])

	// "208-230" is ambiguous between single and three phase
	_, err = reg.Encode("PH", model.UnitSpec{Voltage: "208-230"}, false)
	var invalid *InvalidCodeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "voltage", invalid.Segment)
}

func TestEncodeInvalidCapacity(t *testing.T) {
	reg := mustRegistry(t)

	var invalid *InvalidCodeError

	// not a multiple of the scale factor
	_, err := reg.Encode("PH", model.UnitSpec{CapacityBTU: 48500}, false)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "capacity", invalid.Segment)

	// too large for the 3-digit segment
	_, err = reg.Encode("PH", model.UnitSpec{CapacityBTU: 1200000}, false)
	require.ErrorAs(t, err, &invalid)
}

func TestEncodeWrongSystemTypeForFamily(t *testing.T) {
	reg := mustRegistry(t)

	_, err := reg.Encode("PA", model.UnitSpec{SystemType: model.SystemHeatPump}, false)
	var invalid *InvalidCodeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "family", invalid.Segment)
}

// Round-trip: whatever encode produces, decode recovers, and re-encoding the
// decoded spec reproduces the model number byte for byte.
func TestCodecRoundTrip(t *testing.T) {
	reg := mustRegistry(t)

	specs := []struct {
		family string
		spec   model.UnitSpec
	}{
		{"PH", model.UnitSpec{SystemType: model.SystemHeatPump, Series: "4", CapacityBTU: 48000,
			Voltage: "460", Phases: "3", Refrigerant: "R-410A", Efficiency: model.EfficiencyHigh,
			Drive: "direct", Controls: "electromechanical", Coil: "aluminum", Revision: "A"}},
		{"PG", model.UnitSpec{SystemType: model.SystemGasElectric, Series: "2", CapacityBTU: 120000,
			Voltage: "208-230", Phases: "1", Refrigerant: "R-454B", Efficiency: model.EfficiencyStandard,
			Drive: "belt", Controls: "ddc", Coil: "copper", Revision: "C"}},
		{"PA", model.UnitSpec{SystemType: model.SystemStraightAC, Series: "3", CapacityBTU: 24000,
			Voltage: "208-230", Phases: "3", Refrigerant: "R-410A", Efficiency: model.EfficiencyStandard,
			Drive: "direct", Controls: "electromechanical", Coil: "e-coated", Revision: "B"}},
	}
	for _, tc := range specs {
		encoded, err := reg.Encode(tc.family, tc.spec, true)
		require.NoError(t, err, "family %s", tc.family)

		dec, err := reg.DecodeAuto(encoded)
		require.NoError(t, err)
		assert.Empty(t, dec.LowConfidence)

		want := tc.spec
		want.Model = encoded
		want.Family = tc.family
		assert.Equal(t, want, dec.Spec)

		again, err := reg.Encode(tc.family, dec.Spec, true)
		require.NoError(t, err)
		assert.Equal(t, encoded, again)
	}
}
