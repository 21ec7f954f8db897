package nomenclature

// Built-in nomenclature tables for the packaged rooftop lines. The three
// families share one layout after the 2-letter prefix; only the prefix
// segment (system type) differs. Overridable via the registry YAML file.

const packagedCodeLen = 13

func builtinFamilies() []*Family {
	return []*Family{
		packagedFamily("PH", "heat_pump", "Packaged heat pump, convertible rooftop"),
		packagedFamily("PG", "gas_electric", "Packaged gas heat / electric cool rooftop"),
		packagedFamily("PA", "straight_ac", "Packaged straight cooling rooftop"),
	}
}

func packagedFamily(key, systemType, description string) *Family {
	return &Family{
		Key:         key,
		Description: description,
		CodeLen:     packagedCodeLen,
		Scale:       1000, // capacity digits are MBH (thousands of BTU/hr)
		Segments: []Segment{
			{
				Name: "family", Attr: AttrSystemType, Start: 0, Width: 2, Default: key,
				Codes: map[string]Code{
					key: {Value: systemType, Description: description},
				},
			},
			{
				Name: "series", Attr: AttrSeries, Start: 2, Width: 1, Default: "4",
				Codes: map[string]Code{
					"2": {Value: "2", Description: "Design series 2"},
					"3": {Value: "3", Description: "Design series 3"},
					"4": {Value: "4", Description: "Design series 4"},
					"5": {Value: "5", Description: "Design series 5"},
				},
			},
			{
				Name: "capacity", Attr: AttrCapacity, Start: 3, Width: 3, Default: "036",
				Numeric: true,
			},
			{
				Name: "voltage", Attr: AttrVoltage, Start: 6, Width: 1, Default: "4",
				Codes: map[string]Code{
					"1": {Value: "208-230/1", Description: "208-230V single phase 60Hz"},
					"3": {Value: "208-230/3", Description: "208-230V three phase 60Hz"},
					"4": {Value: "460/3", Description: "460V three phase 60Hz"},
					"5": {Value: "575/3", Description: "575V three phase 60Hz"},
				},
			},
			{
				Name: "refrigerant", Attr: AttrRefrigerant, Start: 7, Width: 1, Default: "A",
				Codes: map[string]Code{
					"A": {Value: "R-410A", Description: "R-410A"},
					"B": {Value: "R-454B", Description: "R-454B low-GWP"},
				},
			},
			{
				Name: "efficiency", Attr: AttrEfficiency, Start: 8, Width: 1, Default: "S",
				Codes: map[string]Code{
					"S": {Value: "standard", Description: "Standard efficiency"},
					"H": {Value: "high", Description: "High efficiency"},
				},
			},
			{
				Name: "drive", Attr: AttrDrive, Start: 9, Width: 1, Default: "D",
				Codes: map[string]Code{
					"D": {Value: "direct", Description: "Direct drive supply fan"},
					"B": {Value: "belt", Description: "Belt drive supply fan"},
				},
			},
			{
				Name: "controls", Attr: AttrControls, Start: 10, Width: 1, Default: "E",
				Codes: map[string]Code{
					"E": {Value: "electromechanical", Description: "Electromechanical controls"},
					"C": {Value: "ddc", Description: "Factory DDC controller"},
				},
			},
			{
				Name: "coil", Attr: AttrCoil, Start: 11, Width: 1, Default: "A",
				Codes: map[string]Code{
					"A": {Value: "aluminum", Description: "Aluminum fin / copper tube"},
					"C": {Value: "copper", Description: "Copper fin / copper tube"},
					"E": {Value: "e-coated", Description: "E-coated coil"},
				},
			},
			{
				Name: "revision", Attr: AttrRevision, Start: 12, Width: 1, Default: "A",
				Codes: map[string]Code{
					"A": {Value: "A", Description: "Initial release"},
					"B": {Value: "B", Description: "First revision"},
					"C": {Value: "C", Description: "Second revision"},
				},
			},
		},
	}
}
