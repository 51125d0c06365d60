package wxchart

//go:generate go tool enumer -type ChartType -linecomment

// ChartType selects one of the drawing strategies. The set is closed, a
// value outside it is reported by Render as ErrUnsupportedChartType.
type ChartType int

const (
	ChartLine           ChartType = iota // line
	ChartBar                             // bar
	ChartArea                            // area
	ChartScatter                         // scatter
	ChartPieByCondition                  // pie
)

// MarshalText implements the encoding.TextMarshaler interface for t.
func (t ChartType) MarshalText() (text []byte, err error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface for t.
func (t *ChartType) UnmarshalText(text []byte) error {
	v, err := ChartTypeString(string(text))
	if err != nil {
		return err
	}

	*t = v

	return nil
}
