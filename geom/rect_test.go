package geom_test

import (
	"testing"

	"cssb/geom"
)

func TestRect_Area(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		height float64
		want   float64
	}{
		{"unit", 1, 1, 1},
		{"plain", 10, 20, 200},
		{"fractional", 2.5, 4, 10},
		{"degenerate", 0, 15, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := geom.NewRect(tt.width, tt.height)
			if got := r.Area(); got != tt.want {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}
