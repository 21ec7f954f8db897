package service

import (
	"testing"

	"crossover-service/internal/crossover/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		ref, cand int
		tol       int
		want      model.SizeMatch
	}{
		{"exact equality", 48000, 48000, 0, model.SizeDirect},
		{"one BTU under", 48000, 47999, 0, model.SizeSmaller},
		{"one BTU over", 48000, 48001, 0, model.SizeLarger},
		{"within tolerance below", 48000, 42000, 6000, model.SizeDirect},
		{"within tolerance above", 48000, 54000, 6000, model.SizeDirect},
		{"just past tolerance", 48000, 41999, 6000, model.SizeSmaller},
		{"zero reference", 0, 24000, 0, model.SizeLarger},
		{"both zero", 0, 0, 0, model.SizeDirect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ref, tt.cand, tt.tol); got != tt.want {
				t.Errorf("Classify(%d, %d, %d) = %s, want %s", tt.ref, tt.cand, tt.tol, got, tt.want)
			}
		})
	}
}

// for a fixed reference, increasing candidate capacity never moves the
// result backward from larger to smaller
func TestClassifyMonotonic(t *testing.T) {
	rank := map[model.SizeMatch]int{model.SizeSmaller: 0, model.SizeDirect: 1, model.SizeLarger: 2}
	for _, tol := range []int{0, 3000} {
		prev := -1
		for cand := 0; cand <= 96000; cand += 1000 {
			cur := rank[Classify(48000, cand, tol)]
			if cur < prev {
				t.Fatalf("tolerance %d: result went backward at candidate %d", tol, cand)
			}
			prev = cur
		}
	}
}
