package wxchart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// FontSize is the size of text labels in points.
var FontSize = vg.Points(12)

// Paint replays the instructions of d onto c. One pixel of the drawing is one
// point on the canvas, with the drawing's top left corner at the canvas'
// top left corner.
func Paint(c draw.Canvas, d Drawing) {
	at := func(p Point) vg.Point {
		return vg.Point{
			X: c.Min.X + vg.Length(p.X),
			Y: c.Max.Y - vg.Length(p.Y),
		}
	}

	stroke := func(clr color.Color) draw.LineStyle {
		return draw.LineStyle{Color: clr, Width: vg.Points(1)}
	}

	for _, op := range d.Ops {
		switch op := op.(type) {
		case Text:
			c.FillText(draw.TextStyle{
				Color:   op.Color,
				Font:    font.From(plot.DefaultFont, FontSize),
				Handler: plot.DefaultTextHandler,
			}, at(op.At), op.Text)

		case Line:
			c.StrokeLines(stroke(op.Color), []vg.Point{at(op.From), at(op.To)})

		case Polyline:
			pts := make([]vg.Point, len(op.Points))
			for i, p := range op.Points {
				pts[i] = at(p)
			}

			c.StrokeLines(stroke(op.Color), pts)

		case Rect:
			paintPath(&c, op.Fill, op.Stroke, []vg.Point{
				at(op.Min),
				at(Point{X: op.Min.X + op.Width, Y: op.Min.Y}),
				at(Point{X: op.Min.X + op.Width, Y: op.Min.Y + op.Height}),
				at(Point{X: op.Min.X, Y: op.Min.Y + op.Height}),
			})

		case Polygon:
			pts := make([]vg.Point, len(op.Points))
			for i, p := range op.Points {
				pts[i] = at(p)
			}

			paintPath(&c, op.Fill, op.Stroke, pts)

		case Marker:
			c.DrawGlyph(draw.GlyphStyle{
				Color:  op.Color,
				Radius: vg.Length(op.Radius),
				Shape:  draw.CircleGlyph{},
			}, at(op.Center))

		case Slice:
			if op.Sweep == 0 {
				continue
			}

			center := at(op.Center)

			var p vg.Path

			p.Move(center)
			p.Arc(center, vg.Length(op.Radius), op.Start*math.Pi/180, op.Sweep*math.Pi/180)
			p.Close()

			c.SetColor(op.Color)
			c.Fill(p)
		}
	}
}

func paintPath(c *draw.Canvas, fill, stroke color.Color, pts []vg.Point) {
	if len(pts) == 0 {
		return
	}

	var p vg.Path

	p.Move(pts[0])

	for _, pt := range pts[1:] {
		p.Line(pt)
	}

	p.Close()

	if fill != nil {
		c.SetColor(fill)
		c.Fill(p)
	}

	if stroke != nil {
		c.SetColor(stroke)
		c.SetLineWidth(vg.Points(1))
		c.SetLineDash(nil, 0)
		c.Stroke(p)
	}
}

// Save paints d on a white canvas of d's size and writes it to w in format.
// The formats are those of gonum plot: png, jpg, jpeg, tif, tiff, svg, pdf,
// eps and tex. Raster formats use 72 dpi so image pixels match drawing
// pixels.
func Save(w io.Writer, d Drawing, format string) error {
	width, height := vg.Length(d.Size.Width), vg.Length(d.Size.Height)

	var canvas vg.CanvasWriterTo

	switch format = strings.ToLower(format); format {
	case "png":
		canvas = vgimg.PngCanvas{Canvas: raster(width, height)}
	case "jpg", "jpeg":
		canvas = vgimg.JpegCanvas{Canvas: raster(width, height)}
	case "tif", "tiff":
		canvas = vgimg.TiffCanvas{Canvas: raster(width, height)}
	default:
		c, err := draw.NewFormattedCanvas(width, height, format)
		if err != nil {
			return fmt.Errorf("cannot save as %q: %w", format, err)
		}

		canvas = c

		dc := draw.New(canvas)
		dc.SetColor(color.White)
		dc.Fill(dc.Rectangle.Path())
	}

	Paint(draw.New(canvas), d)

	if _, err := canvas.WriteTo(w); err != nil {
		return err
	}

	return nil
}

func raster(w, h vg.Length) *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(72),
		vgimg.UseBackgroundColor(color.White))
}
