package wxchart

import (
	"image/color"
	"math"
)

var barColor = color.RGBA{G: 255, B: 255, A: 255}

// BarHeight returns the height of the bar for temperature t when the tallest
// bar is top and the plot area is span pixels high. Bars only grow upward
// from the x-axis: a negative t has no height, and so does every bar when top
// is not positive.
func BarHeight(t, top, span float64) float64 {
	if top <= 0 || t <= 0 {
		return 0
	}

	return t / top * span
}

func drawBar(d *Drawing, obs []Observation, area PlotArea, r ValueRange) {
	slot := math.Floor(area.Width / float64(len(obs)))

	for i := range obs {
		h := BarHeight(obs[i].TemperatureC, r.Max, area.Height)

		d.add(Rect{
			Min:    Point{X: area.X + float64(i)*slot, Y: area.Bottom() - h},
			Width:  max(slot-2, 0),
			Height: h,
			Fill:   barColor,
			Stroke: color.Black,
		})
	}
}
