package main

import (
	"github.com/spf13/cobra"

	"endobit.io/wxchart"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := cobra.Command{
		Use:   "render",
		Short: "Render a chart from logged observations",
		Long: `The render command reads observations, one JSON object per line, and draws
them as a line, bar, area, scatter or pie chart. The pie chart counts the
observations by condition.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			chart, err := wxchart.ChartTypeString(a.config.GetString("chart"))
			if err != nil {
				return err
			}

			obs, err := readObservations(a.config.GetString("input"))
			if err != nil {
				return err
			}

			d, err := wxchart.Render(obs, chart, chartSize(a.config))
			if err != nil {
				return err
			}

			output := a.config.GetString("output")

			if err := saveDrawing(output, a.config.GetString("format"), d); err != nil {
				return err
			}

			a.logger.Info("rendered", "chart", chart.String(), "entries", len(obs), "output", output)

			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "-", "input JSON lines file")
	addChartFlags(&cmd)

	return &cmd
}
