package service

import (
	"sort"
	"strings"

	"crossover-service/internal/crossover/model"
)

// trigram index over catalog model numbers, used to cut the candidate set
// before running edit distance
type modelIndex struct {
	models []string
	inv    map[string]map[string]struct{} // trigram -> set(model)
}

func buildModelIndex(models []string) *modelIndex {
	idx := &modelIndex{inv: make(map[string]map[string]struct{})}
	seen := make(map[string]struct{}, len(models))
	for _, m := range models {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		idx.models = append(idx.models, m)
		for g := range trigramSet(m) {
			bucket, ok := idx.inv[g]
			if !ok {
				bucket = make(map[string]struct{})
				idx.inv[g] = bucket
			}
			bucket[m] = struct{}{}
		}
	}
	return idx
}

func trigramSet(s string) map[string]struct{} {
	m := make(map[string]struct{})
	if s == "" {
		return m
	}
	p := " " + s + " "
	r := []rune(p)
	if len(r) < 3 {
		m[p] = struct{}{}
		return m
	}
	for i := 0; i <= len(r)-3; i++ {
		m[string(r[i:i+3])] = struct{}{}
	}
	return m
}

func (idx *modelIndex) candidates(s string) []string {
	if s == "" {
		return nil
	}
	seen := make(map[string]struct{})
	for g := range trigramSet(s) {
		if bucket, ok := idx.inv[g]; ok {
			for m := range bucket {
				seen[m] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out) // deterministic order
	return out
}

// Suggest returns the catalog model numbers nearest to an input that failed
// to decode, so the caller can offer "did you mean" corrections instead of a
// bare unknown-family error. Similarity is normalized Damerau-Levenshtein in
// [0..1]; results below threshold are dropped.
func Suggest(input string, catalogModels []string, threshold float64, limit int) []model.Suggestion {
	needle := strings.ToUpper(strings.TrimSpace(input))
	if needle == "" {
		return nil
	}
	idx := buildModelIndex(catalogModels)

	out := make([]model.Suggestion, 0, limit)
	for _, cand := range idx.candidates(needle) {
		if s := similarity(needle, cand); s >= threshold {
			out = append(out, model.Suggestion{Model: cand, Similarity: s})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Similarity != out[j].Similarity {
			return out[i].Similarity > out[j].Similarity
		}
		return out[i].Model < out[j].Model
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	d := damerauLevenshtein(a, b)
	m := len([]rune(a))
	if mb := len([]rune(b)); mb > m {
		m = mb
	}
	return 1 - float64(d)/float64(m)
}
