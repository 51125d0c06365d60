package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"endobit.io/table"
	"endobit.io/wxchart"
)

func newStatsCmd(a *app) *cobra.Command {
	cmd := cobra.Command{
		Use:   "stats",
		Short: "Show temperature statistics and condition counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			obs, err := readObservations(a.config.GetString("input"))
			if err != nil {
				return err
			}

			summary, ok := wxchart.Summarize(obs)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No data to display.")

				return nil
			}

			type row struct {
				Entries    int
				Average    string `table:"\n(°C)"`
				Min        string `table:"\n(°C)"`
				Max        string `table:"\n(°C)"`
				MostCommon string
			}

			output := table.New()
			output.Write(row{
				Entries:    summary.Count,
				Average:    fmt.Sprintf("%.1f", summary.AverageC),
				Min:        fmt.Sprintf("%.1f", summary.MinC),
				Max:        fmt.Sprintf("%.1f", summary.MaxC),
				MostCommon: summary.CommonCondition,
			})
			_ = output.Flush()

			fmt.Fprintln(cmd.OutOrStdout())

			type category struct {
				Condition string
				Count     int
				Share     string `table:"\n(%)"`
			}

			conditions := table.New()
			for _, c := range wxchart.Aggregate(obs) {
				conditions.Write(category{
					Condition: c.Condition,
					Count:     c.Count,
					Share:     fmt.Sprintf("%.1f", float64(c.Count)/float64(len(obs))*100),
				})
			}
			_ = conditions.Flush()

			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "-", "input JSON lines file")

	return &cmd
}
