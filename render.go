// Package wxchart renders daily weather observations as charts. Render turns
// an ordered slice of observations into a Drawing, a list of pixel space
// drawing instructions that can be painted onto any surface. Paint and Save
// replay a Drawing onto a gonum plot canvas.
package wxchart

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"endobit.io/app/log"
)

// ErrUnsupportedChartType is returned by Render for a ChartType outside the
// enumerated set.
var ErrUnsupportedChartType = errors.New("unsupported chart type")

// Placeholder messages drawn instead of a chart.
const (
	NoDataMessage       = "No data to display."
	AreaTooSmallMessage = "Area chart requires at least 2 data points."
)

var placeholderAt = Point{X: 10, Y: 20}

// Render computes the drawing instructions for obs as chart type t on a
// canvas of the given size. obs is only read. An empty obs renders a single
// placeholder text for every chart type.
func Render(obs []Observation, t ChartType, size Size) (Drawing, error) {
	d := Drawing{Size: size}

	if len(obs) == 0 {
		d.add(Text{At: placeholderAt, Text: NoDataMessage, Color: color.Black})

		return d, nil
	}

	area := NewPlotArea(size)
	r := TemperatureRange(obs)

	switch t {
	case ChartLine:
		drawLine(&d, obs, area, r)
	case ChartBar:
		drawBar(&d, obs, area, r)
	case ChartArea:
		drawArea(&d, obs, area, r)
	case ChartScatter:
		drawScatter(&d, obs, area, r)
	case ChartPieByCondition:
		drawPie(&d, obs, size)
	default:
		return d, fmt.Errorf("%w: %s", ErrUnsupportedChartType, t)
	}

	return d, nil
}

// Renderer holds the chart state of a hosting view. Each setter records the
// new value and calls OnChange, the host decides when to call Render.
type Renderer struct {
	logger    *slog.Logger
	onChange  func()
	entries   []Observation
	chartType ChartType
	size      Size
}

// WithRendererLogger is an option setting function for NewRenderer. It sets the
// logger used to trace renders.
func WithRendererLogger(logger *slog.Logger) func(*Renderer) {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// OnChange is an option setting function for NewRenderer. fn is called after
// every state change.
func OnChange(fn func()) func(*Renderer) {
	return func(r *Renderer) {
		r.onChange = fn
	}
}

// NewRenderer returns a Renderer drawing line charts on a canvas of size.
func NewRenderer(size Size, opts ...func(*Renderer)) *Renderer {
	r := Renderer{
		logger:    slog.New(slog.DiscardHandler),
		chartType: ChartLine,
		size:      size,
	}

	for _, o := range opts {
		o(&r)
	}

	return &r
}

// SetEntries replaces the dataset. The caller must not modify entries while
// a render is running.
func (r *Renderer) SetEntries(entries []Observation) {
	r.entries = entries
	r.changed()
}

// SetChartType selects the chart type.
func (r *Renderer) SetChartType(t ChartType) {
	r.chartType = t
	r.changed()
}

// SetSize sets the canvas size.
func (r *Renderer) SetSize(s Size) {
	r.size = s
	r.changed()
}

// ChartType returns the selected chart type.
func (r *Renderer) ChartType() ChartType {
	return r.chartType
}

// Render draws the current state.
func (r *Renderer) Render() (Drawing, error) {
	d, err := Render(r.entries, r.chartType, r.size)

	r.logger.Log(context.Background(), log.LevelTrace, "render",
		"chart", r.chartType.String(),
		"entries", len(r.entries),
		"ops", len(d.Ops),
		log.Format("%.0f", "width", r.size.Width),
		log.Format("%.0f", "height", r.size.Height))

	return d, err
}

func (r *Renderer) changed() {
	if r.onChange != nil {
		r.onChange()
	}
}
