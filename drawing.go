package wxchart

import "image/color"

// Point is a pixel position. Y grows downward.
type Point struct {
	X, Y float64
}

// Op is a single drawing instruction. The set of instructions is closed, see
// Text, Line, Polyline, Rect, Polygon, Marker and Slice.
type Op interface {
	isOp()
}

// Text draws a label with its baseline starting at At.
type Text struct {
	At    Point
	Text  string
	Color color.Color
}

// Line strokes a single segment.
type Line struct {
	From, To Point
	Color    color.Color
}

// Polyline strokes connected segments through Points. It is not closed.
type Polyline struct {
	Points []Point
	Color  color.Color
}

// Rect is an axis aligned rectangle with its top left corner at Min. A nil
// Fill or Stroke is not painted.
type Rect struct {
	Min           Point
	Width, Height float64
	Fill, Stroke  color.Color
}

// Polygon is a closed path through Points. A nil Fill or Stroke is not
// painted.
type Polygon struct {
	Points       []Point
	Fill, Stroke color.Color
}

// Marker is a filled circle.
type Marker struct {
	Center Point
	Radius float64
	Color  color.Color
}

// Slice is a filled pie wedge. Angles are in degrees, zero at three o'clock
// and increasing counterclockwise as seen on screen.
type Slice struct {
	Center       Point
	Radius       float64
	Start, Sweep float64
	Color        color.Color
	Category     string
}

func (Text) isOp()     {}
func (Line) isOp()     {}
func (Polyline) isOp() {}
func (Rect) isOp()     {}
func (Polygon) isOp()  {}
func (Marker) isOp()   {}
func (Slice) isOp()    {}

// Drawing is the output of a render: the canvas size and the instructions in
// paint order.
type Drawing struct {
	Size Size
	Ops  []Op
}

func (d *Drawing) add(ops ...Op) {
	d.Ops = append(d.Ops, ops...)
}

// Ops returns the instructions of d that have type T, in paint order.
func Ops[T Op](d Drawing) []T {
	var out []T

	for _, op := range d.Ops {
		if v, ok := op.(T); ok {
			out = append(out, v)
		}
	}

	return out
}
