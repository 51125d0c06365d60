package wxchart

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the layout of the observation date in JSON.
const DateLayout = time.DateOnly

var validate = validator.New()

// Observation is one logged weather record. Observations are passed to the
// renderer by value in an ordered slice, the slice order is the x-axis order.
type Observation struct {
	Date         time.Time
	TemperatureC float64
	HumidityPct  int    `validate:"gte=0,lte=100"`
	Condition    string `validate:"required"`
}

type observationJSON struct {
	Date         string  `json:"date"`
	TemperatureC float64 `json:"temperature_c"`
	HumidityPct  int     `json:"humidity_pct"`
	Condition    string  `json:"condition"`
}

// MarshalJSON implements the json.Marshaler interface for o.
func (o Observation) MarshalJSON() ([]byte, error) {
	return json.Marshal(observationJSON{
		Date:         o.Date.Format(DateLayout),
		TemperatureC: o.TemperatureC,
		HumidityPct:  o.HumidityPct,
		Condition:    o.Condition,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface for o.
func (o *Observation) UnmarshalJSON(data []byte) error {
	var raw observationJSON

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	date, err := time.Parse(DateLayout, raw.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", raw.Date, err)
	}

	*o = Observation{
		Date:         date,
		TemperatureC: raw.TemperatureC,
		HumidityPct:  raw.HumidityPct,
		Condition:    raw.Condition,
	}

	return nil
}

// Validate checks the humidity is a percentage and the condition is set. The
// renderer does not require valid observations, this is for callers that
// accept observations from the outside.
func (o Observation) Validate() error {
	return validate.Struct(o)
}

// ReadObservations decodes one JSON observation per line from r. Blank lines
// are skipped. An invalid line fails the whole read.
func ReadObservations(r io.Reader) ([]Observation, error) {
	var (
		obs  []Observation
		line int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++

		if len(scanner.Bytes()) == 0 {
			continue
		}

		var o Observation

		if err := json.Unmarshal(scanner.Bytes(), &o); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		obs = append(obs, o)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return obs, nil
}

// WriteObservation writes o as a single JSON line.
func WriteObservation(w io.Writer, o Observation) error {
	b, err := json.Marshal(o)
	if err != nil {
		return err
	}

	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}

	return nil
}
