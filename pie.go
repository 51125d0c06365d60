package wxchart

import "image/color"

// Pie layout in pixels.
const (
	PieMargin       = 50
	LegendGap       = 10
	LegendSwatch    = 10
	LegendRowHeight = 15
)

var palette = [...]color.Color{
	color.RGBA{R: 255, A: 255},                 // red
	color.RGBA{G: 255, A: 255},                 // green
	color.RGBA{B: 255, A: 255},                 // blue
	color.RGBA{R: 255, G: 200, A: 255},         // orange
	color.RGBA{G: 255, B: 255, A: 255},         // cyan
	color.RGBA{R: 255, B: 255, A: 255},         // magenta
	color.RGBA{R: 255, G: 255, A: 255},         // yellow
	color.RGBA{R: 255, G: 175, B: 175, A: 255}, // pink
}

// PaletteColor returns the color of the i-th pie slice and legend row.
func PaletteColor(i int) color.Color {
	return palette[i%len(palette)]
}

// SweepAngles returns the angle in degrees of each category, proportional to
// its share of total. All sweeps are zero when total is not positive.
func SweepAngles(counts []CategoryCount, total int) []float64 {
	sweeps := make([]float64, len(counts))
	if total <= 0 {
		return sweeps
	}

	for i, c := range counts {
		sweeps[i] = float64(c.Count) / float64(total) * 360
	}

	return sweeps
}

func drawPie(d *Drawing, obs []Observation, size Size) {
	counts := Aggregate(obs)
	diameter := max(min(size.Width, size.Height)-PieMargin, 0)
	x := (size.Width - diameter) / 2
	y := (size.Height - diameter) / 2
	center := Point{X: x + diameter/2, Y: y + diameter/2}

	var start float64

	for i, sweep := range SweepAngles(counts, len(obs)) {
		d.add(Slice{
			Center:   center,
			Radius:   diameter / 2,
			Start:    start,
			Sweep:    sweep,
			Color:    PaletteColor(i),
			Category: counts[i].Condition,
		})

		start += sweep
	}

	legendX := x + diameter + LegendGap

	for i, c := range counts {
		rowY := y + float64(i*LegendRowHeight)

		d.add(
			Rect{
				Min:    Point{X: legendX, Y: rowY},
				Width:  LegendSwatch,
				Height: LegendSwatch,
				Fill:   PaletteColor(i),
			},
			Text{
				At:    Point{X: legendX + LegendSwatch + 5, Y: rowY + LegendSwatch},
				Text:  c.Condition,
				Color: color.Black,
			},
		)
	}
}
