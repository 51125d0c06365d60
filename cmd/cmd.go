package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"endobit.io/app/log"
	"endobit.io/wxchart"
)

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level

	if strings.EqualFold(level, "trace") {
		l = log.LevelTrace
	} else if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

// loadConfig reads the optional config file and binds the flags of cmd so
// values resolve as flag, environment, config file, then flag default.
func loadConfig(v *viper.Viper, file string, cmd *cobra.Command) error {
	v.SetEnvPrefix("wxchart")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("wxchart")
		v.AddConfigPath(".")

		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "wxchart"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("cannot read config: %w", err)
		}
	}

	return v.BindPFlags(cmd.Flags())
}

// readObservations reads JSON lines from the named file, or stdin for "-".
func readObservations(name string) ([]wxchart.Observation, error) {
	if name == "" || name == "-" {
		return wxchart.ReadObservations(os.Stdin)
	}

	fin, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer fin.Close()

	return wxchart.ReadObservations(fin)
}

func chartSize(v *viper.Viper) wxchart.Size {
	return wxchart.Size{
		Width:  v.GetFloat64("width"),
		Height: v.GetFloat64("height"),
	}
}

// saveDrawing writes d to the named file. The image format is taken from
// format, or from the file extension when format is empty.
func saveDrawing(name, format string, d wxchart.Drawing) error {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(name), ".")
	}

	fout, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := wxchart.Save(fout, d, format); err != nil {
		_ = fout.Close()

		return err
	}

	return fout.Close()
}

func addChartFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("chart", "c", wxchart.ChartLine.String(),
		"chart type ("+strings.Join(wxchart.ChartTypeStrings(), ", ")+")")
	cmd.Flags().StringP("output", "o", "wxchart.png", "output file")
	cmd.Flags().String("format", "", "image format (default from output extension)")
	cmd.Flags().Float64("width", 400, "canvas width in pixels")
	cmd.Flags().Float64("height", 200, "canvas height in pixels")
}
