package wxchart

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
)

func TestSave(t *testing.T) {
	obs := conditions("Rain", "Clear", "Rain")
	obs[1].TemperatureC = 12

	for _, chart := range ChartTypeValues() {
		d, err := Render(obs, chart, testSize)
		if err != nil {
			t.Fatal(err)
		}

		t.Run(chart.String()+"/png", func(t *testing.T) {
			var buf bytes.Buffer

			if err := Save(&buf, d, "png"); err != nil {
				t.Fatal(err)
			}

			img, err := png.Decode(&buf)
			if err != nil {
				t.Fatal(err)
			}

			if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 200 {
				t.Errorf("image is %dx%d, want 300x200", b.Dx(), b.Dy())
			}
		})

		t.Run(chart.String()+"/svg", func(t *testing.T) {
			var buf bytes.Buffer

			if err := Save(&buf, d, "SVG"); err != nil {
				t.Fatal(err)
			}

			if !strings.Contains(buf.String(), "<svg") {
				t.Error("output is not an SVG document")
			}
		})
	}
}

func TestSaveUnknownFormat(t *testing.T) {
	d, err := Render(nil, ChartLine, testSize)
	if err != nil {
		t.Fatal(err)
	}

	if err := Save(&bytes.Buffer{}, d, "bmp"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
