package wxchart

// ValueRange is the span of temperatures in a dataset.
type ValueRange struct {
	Min, Max float64
}

// TemperatureRange returns the range of the TemperatureC field over obs. The
// zero ValueRange is returned for an empty slice.
func TemperatureRange(obs []Observation) ValueRange {
	if len(obs) == 0 {
		return ValueRange{}
	}

	r := ValueRange{Min: obs[0].TemperatureC, Max: obs[0].TemperatureC}

	for i := range obs[1:] {
		t := obs[i+1].TemperatureC

		if t < r.Min {
			r.Min = t
		}

		if t > r.Max {
			r.Max = t
		}
	}

	return r
}

// Degenerate reports whether all values in the range are equal.
func (r ValueRange) Degenerate() bool {
	return r.Max == r.Min
}

// Fraction returns the position of value in the range, 0 at Min and 1 at Max.
// A degenerate range has span 1 so every value maps onto the baseline. The
// halves are subtracted so ranges wider than the largest float64 stay finite.
func (r ValueRange) Fraction(value float64) float64 {
	if r.Degenerate() {
		return value - r.Min
	}

	span := r.Max/2 - r.Min/2
	if span == 0 {
		span = 1
	}

	return (value/2 - r.Min/2) / span
}

// MapValue converts value to an offset from the top of a pixel span of
// height pixelSpan. r.Min maps to pixelSpan and r.Max maps to 0.
func MapValue(value float64, r ValueRange, pixelSpan float64) float64 {
	return pixelSpan - r.Fraction(value)*pixelSpan
}

// UnmapValue is the inverse of MapValue.
func UnmapValue(offset float64, r ValueRange, pixelSpan float64) float64 {
	if pixelSpan == 0 {
		return r.Min
	}

	f := (pixelSpan - offset) / pixelSpan

	if r.Degenerate() {
		return r.Min + f
	}

	return (1-f)*r.Min + f*r.Max
}

// PlotArea is the pixel rectangle data geometry is drawn in.
type PlotArea struct {
	X, Y          float64
	Width, Height float64
}

// Size is the canvas size in pixels.
type Size struct {
	Width, Height float64
}

// Space around the plot area. LabelPadding is reserved on the axes side, the
// left and the bottom.
const (
	Padding      = 25
	LabelPadding = 25
)

// NewPlotArea returns the plot area of a canvas of size s. A canvas too small
// for the padding gets an empty plot area.
func NewPlotArea(s Size) PlotArea {
	return PlotArea{
		X:      Padding + LabelPadding,
		Y:      Padding,
		Width:  max(s.Width-2*Padding-LabelPadding, 0),
		Height: max(s.Height-2*Padding-LabelPadding, 0),
	}
}

// Bottom is the y coordinate of the x-axis.
func (a PlotArea) Bottom() float64 {
	return a.Y + a.Height
}

// Right is the x coordinate of the right edge.
func (a PlotArea) Right() float64 {
	return a.X + a.Width
}

// PointX returns the x coordinate of the i-th of n points spread evenly over
// the width. A single point is centered.
func (a PlotArea) PointX(i, n int) float64 {
	if n < 2 {
		return a.X + a.Width/2
	}

	return a.X + float64(i)*(a.Width/float64(n-1))
}

// PointY returns the y coordinate of value.
func (a PlotArea) PointY(value float64, r ValueRange) float64 {
	return a.Y + MapValue(value, r, a.Height)
}

// ValueAt returns the value at pixel row y. It is the inverse of PointY.
func (a PlotArea) ValueAt(y float64, r ValueRange) float64 {
	return UnmapValue(y-a.Y, r, a.Height)
}

func (a PlotArea) points(obs []Observation, r ValueRange) []Point {
	pts := make([]Point, len(obs))

	for i := range obs {
		pts[i] = Point{
			X: a.PointX(i, len(obs)),
			Y: a.PointY(obs[i].TemperatureC, r),
		}
	}

	return pts
}
