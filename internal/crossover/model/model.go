package model

// SystemType is the broad equipment category encoded in a model number.
type SystemType string

const (
	SystemHeatPump    SystemType = "heat_pump"
	SystemGasElectric SystemType = "gas_electric"
	SystemStraightAC  SystemType = "straight_ac"
)

// EfficiencyTier selects the SEER target the scorer compares candidates against.
type EfficiencyTier string

const (
	EfficiencyStandard EfficiencyTier = "standard"
	EfficiencyHigh     EfficiencyTier = "high"
)

// SizeMatch classifies a candidate's capacity relative to a reference capacity.
type SizeMatch string

const (
	SizeSmaller SizeMatch = "smaller"
	SizeDirect  SizeMatch = "direct"
	SizeLarger  SizeMatch = "larger"
)

// UnitSpec is the canonical attribute record produced by decoding a model
// number or assembled from catalog columns. Zero values mean "unknown";
// catalog-only fields (sound, dimensions, amperage, ...) are never encoded
// into a model number.
type UnitSpec struct {
	Model       string         `json:"model,omitempty"`
	Family      string         `json:"family,omitempty"`
	SystemType  SystemType     `json:"systemType,omitempty"`
	Series      string         `json:"series,omitempty"`
	CapacityBTU int            `json:"capacityBTU,omitempty"`
	Voltage     string         `json:"voltage,omitempty"`
	Phases      string         `json:"phases,omitempty"`
	Refrigerant string         `json:"refrigerant,omitempty"`
	Efficiency  EfficiencyTier `json:"efficiency,omitempty"`
	Drive       string         `json:"drive,omitempty"`
	Controls    string         `json:"controls,omitempty"`
	Coil        string         `json:"coil,omitempty"`
	Revision    string         `json:"revision,omitempty"`

	SEER float64 `json:"seer,omitempty"`
	EER  float64 `json:"eer,omitempty"`
	HSPF float64 `json:"hspf,omitempty"`

	SoundDB      float64 `json:"soundDB,omitempty"`
	Dimensions   string  `json:"dimensions,omitempty"`
	WeightLB     float64 `json:"weightLB,omitempty"`
	AmpsRLA      float64 `json:"ampsRLA,omitempty"`
	MaxFuseA     int     `json:"maxFuseA,omitempty"`
	CoolingRange string  `json:"coolingRange,omitempty"`
	HeatingRange string  `json:"heatingRange,omitempty"`
}

// Tonnage derives nominal tons from BTU/hr (12000 BTU/hr per ton).
func (u UnitSpec) Tonnage() float64 { return float64(u.CapacityBTU) / 12000 }

// Factor is one scored dimension of a compatibility comparison.
type Factor struct {
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	Original  string  `json:"original"`
	Candidate string  `json:"candidate"`
	Points    float64 `json:"points"`
}

// Breakdown is the full per-factor explanation of a compatibility score.
// Total is always the sum of Factor.Points and never exceeds the sum of
// declared weights (100 with default weights).
type Breakdown struct {
	Factors []Factor `json:"factors"`
	Total   float64  `json:"total"`
}

// Mapping names the catalog columns the crossover search reads.
type Mapping struct {
	ModelKey  string // column with the candidate model number
	SEERKey   string // numeric SEER column (optional)
	PriceKey  string // list-price column (optional)
	HeaderRow int    // header row (1-based)
}

// Options tunes a crossover search.
type Options struct {
	Efficiency   EfficiencyTier // SEER target selector for the scorer
	ToleranceBTU int            // size-match tolerance, exact BTU by default
	MinScore     float64        // drop candidates scoring below this
	Threshold    float64        // similarity floor for model-number suggestions (0..1)
	Limit        int            // max result rows, 0 = unlimited
}

// ResultRow is one annotated catalog candidate.
type ResultRow struct {
	Model         string    `json:"model"`
	SizeMatch     SizeMatch `json:"sizeMatch"`
	Score         float64   `json:"score"`
	Breakdown     Breakdown `json:"breakdown"`
	CapacityBTU   int       `json:"capacityBTU"`
	Tonnage       float64   `json:"tonnage"`
	Price         float64   `json:"price,omitempty"`
	LowConfidence []string  `json:"lowConfidence,omitempty"`
}

// Suggestion is a near-miss model number offered when decoding fails.
type Suggestion struct {
	Model      string  `json:"model"`
	Similarity float64 `json:"similarity"`
}

// Result is the outcome of a crossover search over one catalog.
type Result struct {
	Original    UnitSpec         `json:"original"`
	Rows        []ResultRow      `json:"rows"`
	Undecodable []map[string]any `json:"undecodable"`
	Opts        Options          `json:"opts"`
	Map         Mapping          `json:"map"`
}
