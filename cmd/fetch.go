package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"endobit.io/wxchart"
)

func newFetchCmd(a *app) *cobra.Command {
	cmd := cobra.Command{
		Use:   "fetch",
		Short: "Fetch today's observation for a city",
		Long: `The fetch command looks up the current weather of a city with the Open-Meteo
API and prints it as a JSON line, ready to be appended to an observation log.
With --broker set the observation is also published to the MQTT topic.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.config.GetDuration("timeout"))
			defer cancel()

			city := a.config.GetString("city")
			if city == "" {
				return errors.New("city is required")
			}

			client := wxchart.NewClient(wxchart.WithLogger(a.logger))

			obs, err := client.Fetch(ctx, city)
			if err != nil {
				return err
			}

			if err := wxchart.WriteObservation(cmd.OutOrStdout(), obs); err != nil {
				return err
			}

			broker := a.config.GetString("broker")
			if broker == "" {
				return nil
			}

			feed := wxchart.NewFeed(broker, a.config.GetString("topic"), wxchart.WithFeedLogger(a.logger))
			if err := feed.Connect(); err != nil {
				return err
			}

			defer feed.Disconnect()

			return feed.Publish(obs)
		},
	}

	cmd.Flags().String("city", "", "city name")
	cmd.Flags().Duration("timeout", 30*time.Second, "request timeout")
	cmd.Flags().String("broker", "", "MQTT broker URL to publish to")
	cmd.Flags().String("topic", "wxchart/observations", "MQTT topic")

	return &cmd
}
