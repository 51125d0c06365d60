package main

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"endobit.io/wxchart"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := cobra.Command{
		Use:   "watch",
		Short: "Redraw a chart as observations arrive over MQTT",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chart, err := wxchart.ChartTypeString(a.config.GetString("chart"))
			if err != nil {
				return err
			}

			broker := a.config.GetString("broker")
			if broker == "" {
				return errors.New("broker is required")
			}

			var history []wxchart.Observation

			if input := a.config.GetString("input"); input != "" {
				if history, err = readObservations(input); err != nil {
					return err
				}
			}

			w := watcher{
				Logger: a.logger,
				Feed:   wxchart.NewFeed(broker, a.config.GetString("topic"), wxchart.WithFeedLogger(a.logger)),
				Output: a.config.GetString("output"),
				Format: a.config.GetString("format"),
				Window: a.config.GetInt("window"),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return w.Run(ctx, history, chart, chartSize(a.config))
		},
	}

	cmd.Flags().StringP("input", "i", "", "initial observations JSON lines file")
	cmd.Flags().String("broker", "", "MQTT broker URL")
	cmd.Flags().String("topic", "wxchart/observations", "MQTT topic")
	cmd.Flags().Int("window", 0, "number of most recent observations to chart (0 = all)")
	addChartFlags(&cmd)

	return &cmd
}

type watcher struct {
	Logger *slog.Logger
	Feed   *wxchart.Feed
	Output string
	Format string
	Window int
}

// Run redraws the chart to the output file at start and after every received
// observation until ctx is done.
func (w *watcher) Run(ctx context.Context, history []wxchart.Observation, chart wxchart.ChartType, size wxchart.Size) error {
	var dirty bool

	renderer := wxchart.NewRenderer(size,
		wxchart.WithRendererLogger(w.Logger),
		wxchart.OnChange(func() { dirty = true }))

	renderer.SetChartType(chart)
	renderer.SetEntries(history)

	subscription := make(chan wxchart.FeedUpdate, 1)

	if err := w.Feed.Subscribe(subscription); err != nil {
		w.Logger.Error("cannot subscribe", "error", err)
	}

	ticker := time.NewTicker(1 * time.Minute)

	defer func() {
		ticker.Stop()
		w.Feed.Disconnect()
	}()

	for {
		if dirty {
			dirty = false

			if err := w.redraw(renderer); err != nil {
				return err
			}
		}

		select {
		case <-ticker.C:
			if !w.Feed.IsConnected() {
				if err := w.Feed.Connect(); err != nil {
					w.Logger.Error("cannot reconnect", "error", err)
				}
			}

		case <-ctx.Done():
			w.Logger.Info("interrupted, stopping")

			return nil

		case msg := <-subscription:
			if msg.Error != nil {
				w.Logger.Error("invalid observation", "error", msg.Error)

				continue
			}

			history = append(history, msg.Observation)
			if w.Window > 0 && len(history) > w.Window {
				history = history[len(history)-w.Window:]
			}

			w.Logger.Info("observation",
				slog.String("date", msg.Observation.Date.Format(wxchart.DateLayout)),
				slog.Float64("temperature", msg.Observation.TemperatureC),
				slog.Int("humidity", msg.Observation.HumidityPct),
				slog.String("condition", msg.Observation.Condition))

			renderer.SetEntries(history)
		}
	}
}

func (w *watcher) redraw(r *wxchart.Renderer) error {
	d, err := r.Render()
	if err != nil {
		return err
	}

	if err := saveDrawing(w.Output, w.Format, d); err != nil {
		return err
	}

	w.Logger.Debug("redraw", "output", w.Output, "ops", len(d.Ops))

	return nil
}
