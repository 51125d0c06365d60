package wxchart

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTemperatureRange(t *testing.T) {
	tests := []struct {
		name string
		obs  []Observation
		want ValueRange
	}{
		{"empty", nil, ValueRange{}},
		{"one", temps(4), ValueRange{Min: 4, Max: 4}},
		{"unsorted", temps(3, -1, 9, 2), ValueRange{Min: -1, Max: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, TemperatureRange(tt.obs)); diff != "" {
				t.Errorf("range mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMapValue(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		r     ValueRange
		span  float64
		want  float64
	}{
		{"min is baseline", 10, ValueRange{Min: 10, Max: 30}, 100, 100},
		{"max is top", 30, ValueRange{Min: 10, Max: 30}, 100, 0},
		{"middle", 20, ValueRange{Min: 10, Max: 30}, 100, 50},
		{"degenerate", 7, ValueRange{Min: 7, Max: 7}, 100, 100},
		{"zero span", 7, ValueRange{Min: 0, Max: 10}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapValue(tt.value, tt.r, tt.span); got != tt.want {
				t.Errorf("MapValue(%v, %+v, %v) = %v, want %v", tt.value, tt.r, tt.span, got, tt.want)
			}
		})
	}
}

func TestMapValueFinite(t *testing.T) {
	values := []float64{-1.7e308, -1e6, -40, -0.5, 0, 5e-324, 0.5, 12, 1e6, 1.7e308}

	for _, a := range values {
		for _, b := range values {
			r := ValueRange{Min: min(a, b), Max: max(a, b)}

			for _, v := range values {
				if v < r.Min || v > r.Max {
					continue
				}

				if got := MapValue(v, r, 125); math.IsNaN(got) || math.IsInf(got, 0) {
					t.Errorf("MapValue(%v, %+v, 125) = %v", v, r, got)
				}
			}
		}
	}
}

func TestMapValueExtremeRange(t *testing.T) {
	obs := temps(-1.7e308, 1.7e308)
	r := TemperatureRange(obs)

	tests := []struct {
		value float64
		want  float64
	}{
		{-1.7e308, 125},
		{0, 62.5},
		{1.7e308, 0},
	}

	for _, tt := range tests {
		if got := MapValue(tt.value, r, 125); got != tt.want {
			t.Errorf("MapValue(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestUnmapValue(t *testing.T) {
	r := ValueRange{Min: -5, Max: 35}
	area := NewPlotArea(Size{Width: 300, Height: 200})

	for _, v := range []float64{-5, 0, 12.5, 35} {
		if got := area.ValueAt(area.PointY(v, r), r); math.Abs(got-v) > 1e-9 {
			t.Errorf("ValueAt(PointY(%v)) = %v", v, got)
		}
	}
}

func TestNewPlotArea(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want PlotArea
	}{
		{"default", Size{Width: 400, Height: 200}, PlotArea{X: 50, Y: 25, Width: 325, Height: 125}},
		{"tiny", Size{Width: 10, Height: 10}, PlotArea{X: 50, Y: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, NewPlotArea(tt.size)); diff != "" {
				t.Errorf("plot area mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPointX(t *testing.T) {
	area := PlotArea{X: 50, Y: 25, Width: 200, Height: 100}

	tests := []struct {
		i, n int
		want float64
	}{
		{0, 0, 150},
		{0, 1, 150},
		{0, 2, 50},
		{1, 2, 250},
		{2, 5, 150},
	}

	for _, tt := range tests {
		if got := area.PointX(tt.i, tt.n); got != tt.want {
			t.Errorf("PointX(%d, %d) = %v, want %v", tt.i, tt.n, got, tt.want)
		}
	}
}
