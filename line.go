package wxchart

import "image/color"

// MarkerRadius is the radius of point markers.
const MarkerRadius = 3

var (
	lineColor    = color.RGBA{B: 255, A: 255}
	scatterColor = color.RGBA{R: 255, A: 255}
)

// drawAxes paints the plot background and the left and bottom axes.
func drawAxes(d *Drawing, area PlotArea) {
	d.add(
		Rect{
			Min:    Point{X: area.X, Y: area.Y},
			Width:  area.Width,
			Height: area.Height,
			Fill:   color.White,
		},
		Line{
			From:  Point{X: area.X, Y: area.Bottom()},
			To:    Point{X: area.X, Y: area.Y},
			Color: color.Black,
		},
		Line{
			From:  Point{X: area.X, Y: area.Bottom()},
			To:    Point{X: area.Right(), Y: area.Bottom()},
			Color: color.Black,
		},
	)
}

func drawLine(d *Drawing, obs []Observation, area PlotArea, r ValueRange) {
	drawAxes(d, area)

	pts := area.points(obs, r)

	if len(pts) == 1 {
		d.add(Marker{Center: pts[0], Radius: MarkerRadius, Color: lineColor})

		return
	}

	d.add(Polyline{Points: pts, Color: lineColor})
}

func drawScatter(d *Drawing, obs []Observation, area PlotArea, r ValueRange) {
	for _, pt := range area.points(obs, r) {
		d.add(Marker{Center: pt, Radius: MarkerRadius, Color: scatterColor})
	}
}
