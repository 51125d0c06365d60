package wxchart

import "image/color"

var areaFillColor = color.NRGBA{G: 150, B: 255, A: 100}

func drawArea(d *Drawing, obs []Observation, area PlotArea, r ValueRange) {
	if len(obs) < 2 {
		d.add(Text{At: placeholderAt, Text: AreaTooSmallMessage, Color: color.Black})

		return
	}

	pts := area.points(obs, r)

	polygon := make([]Point, 0, len(pts)+2)
	polygon = append(polygon, pts...)
	polygon = append(polygon,
		Point{X: area.Right(), Y: area.Bottom()},
		Point{X: area.X, Y: area.Bottom()})

	d.add(
		Polygon{Points: polygon, Fill: areaFillColor},
		Polyline{Points: pts, Color: lineColor},
	)
}
