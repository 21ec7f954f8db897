package service

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"crossover-service/internal/crossover/model"
)

// CapacityBand awards Points when the absolute tonnage difference is at most
// MaxDelta. Bands are checked in order; boundaries are inclusive.
type CapacityBand struct {
	MaxDelta float64 `yaml:"max_delta"`
	Points   float64 `yaml:"points"`
}

// Weights is the scorer's entire tunable surface. The partial-credit
// constants (cross-system 15, phase-with-voltage 5) are carried over from
// field practice as-is; adjust them here, not in code.
type Weights struct {
	SystemType      float64 `yaml:"system_type"`
	SystemTypeCross float64 `yaml:"system_type_cross"`

	Capacity      float64        `yaml:"capacity"`
	CapacityBands []CapacityBand `yaml:"capacity_bands"`

	Voltage float64 `yaml:"voltage"`

	Phase            float64 `yaml:"phase"`
	PhaseVoltageOnly float64 `yaml:"phase_voltage_only"`

	Efficiency      float64 `yaml:"efficiency"`
	SEERPenaltyRate float64 `yaml:"seer_penalty_rate"`

	SEERTargets map[model.EfficiencyTier]float64 `yaml:"seer_targets"`
}

// DefaultWeights returns the standard 100-point table.
func DefaultWeights() Weights {
	return Weights{
		SystemType:      25,
		SystemTypeCross: 15,
		Capacity:        30,
		CapacityBands: []CapacityBand{
			{MaxDelta: 0, Points: 30},
			{MaxDelta: 0.5, Points: 25},
			{MaxDelta: 1.0, Points: 20},
			{MaxDelta: 1.5, Points: 10},
		},
		Voltage:          20,
		Phase:            10,
		PhaseVoltageOnly: 5,
		Efficiency:       15,
		SEERPenaltyRate:  2,
		SEERTargets: map[model.EfficiencyTier]float64{
			model.EfficiencyStandard: 14,
			model.EfficiencyHigh:     16,
		},
	}
}

// LoadWeights reads a weights YAML, falling back to defaults when path is
// empty. Declared weights must still sum to 100 so scores keep their scale.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	if path == "" {
		return w, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, fmt.Errorf("read weights file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return Weights{}, fmt.Errorf("parse weights file %s: %w", path, err)
	}
	if sum := w.SystemType + w.Capacity + w.Voltage + w.Phase + w.Efficiency; sum != 100 {
		return Weights{}, fmt.Errorf("weights file %s: factor weights sum to %v, want 100", path, sum)
	}
	return w, nil
}

// Score computes the weighted compatibility of a candidate replacement
// against the original unit, with the full per-factor breakdown so
// reporting can explain the number instead of just showing it. No model
// number is special-cased; everything flows from the weight table.
func Score(original, candidate model.UnitSpec, eff model.EfficiencyTier, w Weights) model.Breakdown {
	bd := model.Breakdown{}

	// system type: full credit on match, partial for the heat-pump /
	// gas-electric pair (shared outdoor footprint)
	sys := 0.0
	switch {
	case original.SystemType == candidate.SystemType:
		sys = w.SystemType
	case crossPair(original.SystemType, candidate.SystemType):
		sys = w.SystemTypeCross
	}
	bd.Factors = append(bd.Factors, model.Factor{
		Name:      "system_type",
		Weight:    w.SystemType,
		Original:  string(original.SystemType),
		Candidate: string(candidate.SystemType),
		Points:    sys,
	})

	// capacity: banded by absolute tonnage difference
	delta := math.Abs(original.Tonnage() - candidate.Tonnage())
	capPts := 0.0
	for _, band := range w.CapacityBands {
		if delta <= band.MaxDelta {
			capPts = band.Points
			break
		}
	}
	bd.Factors = append(bd.Factors, model.Factor{
		Name:      "capacity",
		Weight:    w.Capacity,
		Original:  formatTons(original),
		Candidate: formatTons(candidate),
		Points:    capPts,
	})

	voltMatch := original.Voltage != "" && original.Voltage == candidate.Voltage
	volt := 0.0
	if voltMatch {
		volt = w.Voltage
	}
	bd.Factors = append(bd.Factors, model.Factor{
		Name:      "voltage",
		Weight:    w.Voltage,
		Original:  original.Voltage,
		Candidate: candidate.Voltage,
		Points:    volt,
	})

	phase := 0.0
	switch {
	case original.Phases != "" && original.Phases == candidate.Phases:
		phase = w.Phase
	case voltMatch:
		phase = w.PhaseVoltageOnly
	}
	bd.Factors = append(bd.Factors, model.Factor{
		Name:      "phase",
		Weight:    w.Phase,
		Original:  original.Phases,
		Candidate: candidate.Phases,
		Points:    phase,
	})

	target := w.SEERTargets[eff]
	seer := candidate.SEER
	if seer == 0 && candidate.Efficiency != "" {
		// catalog rows without a SEER column: assume the tier's nominal rating
		seer = w.SEERTargets[candidate.Efficiency]
	}
	penalty := math.Min(w.Efficiency, math.Abs(seer-target)*w.SEERPenaltyRate)
	bd.Factors = append(bd.Factors, model.Factor{
		Name:      "efficiency",
		Weight:    w.Efficiency,
		Original:  "target " + strconv.FormatFloat(target, 'g', -1, 64),
		Candidate: strconv.FormatFloat(seer, 'g', -1, 64),
		Points:    w.Efficiency - penalty,
	})

	for _, f := range bd.Factors {
		bd.Total += f.Points
	}
	return bd
}

func crossPair(a, b model.SystemType) bool {
	return (a == model.SystemHeatPump && b == model.SystemGasElectric) ||
		(a == model.SystemGasElectric && b == model.SystemHeatPump)
}

func formatTons(u model.UnitSpec) string {
	return strconv.FormatFloat(u.Tonnage(), 'g', -1, 64) + "t"
}
