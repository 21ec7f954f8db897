package service

import (
	"sort"
	"strings"

	"crossover-service/internal/crossover/model"
	"crossover-service/internal/nomenclature"
	"crossover-service/internal/utils"
)

// Run is the crossover search: every catalog row is decoded, classified by
// size against the original and scored, then the annotated rows are sorted
// best-first. Rows whose model number cannot be decoded are reported
// separately rather than dropped silently.
func Run(reg *nomenclature.Registry, weights Weights, original model.UnitSpec, rows []map[string]string, mapping model.Mapping, opt model.Options) model.Result {
	res := model.Result{
		Original:    original,
		Rows:        make([]model.ResultRow, 0, len(rows)),
		Undecodable: make([]map[string]any, 0),
		Opts:        opt,
		Map:         mapping,
	}
	if opt.Efficiency == "" {
		opt.Efficiency = model.EfficiencyStandard
		res.Opts.Efficiency = opt.Efficiency
	}

	for _, row := range rows {
		raw := strings.TrimSpace(row[mapping.ModelKey])
		if raw == "" {
			continue
		}
		dec, err := reg.DecodeAuto(raw)
		if err != nil {
			res.Undecodable = append(res.Undecodable, map[string]any{
				"model":  raw,
				"reason": err.Error(),
			})
			continue
		}

		cand := dec.Spec
		if mapping.SEERKey != "" {
			if f, ok := utils.ParseFloat(row[mapping.SEERKey]); ok {
				cand.SEER = f
			}
		}
		price := 0.0
		if mapping.PriceKey != "" {
			if f, ok := utils.ParseFloat(row[mapping.PriceKey]); ok {
				price = f
			}
		}

		bd := Score(original, cand, opt.Efficiency, weights)
		if bd.Total < opt.MinScore {
			continue
		}
		res.Rows = append(res.Rows, model.ResultRow{
			Model:         cand.Model,
			SizeMatch:     Classify(original.CapacityBTU, cand.CapacityBTU, opt.ToleranceBTU),
			Score:         bd.Total,
			Breakdown:     bd,
			CapacityBTU:   cand.CapacityBTU,
			Tonnage:       cand.Tonnage(),
			Price:         price,
			LowConfidence: dec.LowConfidence,
		})
	}

	sortRows(res.Rows, original.CapacityBTU)
	if opt.Limit > 0 && len(res.Rows) > opt.Limit {
		res.Rows = res.Rows[:opt.Limit]
	}
	return res
}

// best score first; ties broken by smaller capacity delta, then model number
// for a stable order
func sortRows(rows []model.ResultRow, refBTU int) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		di, dj := absInt(rows[i].CapacityBTU-refBTU), absInt(rows[j].CapacityBTU-refBTU)
		if di != dj {
			return di < dj
		}
		return rows[i].Model < rows[j].Model
	})
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
