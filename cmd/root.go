package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"endobit.io/wxchart"
)

type app struct {
	config *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		logLevel   string
		debug      bool
	)

	a := app{
		config: viper.New(),
		logger: slog.Default(),
	}

	cmd := cobra.Command{
		Use:          "wxchart",
		Short:        "Weather observation charts",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(os.Stderr, logLevel)
			if err != nil {
				return err
			}

			a.logger = logger
			slog.SetDefault(logger)

			if debug {
				wxchart.SetMQTTLogger(logger)
			}

			return loadConfig(a.config, configFile, cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./wxchart.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log", slog.LevelInfo.String(), "log level")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log MQTT client internals")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRenderCmd(&a))
	cmd.AddCommand(newStatsCmd(&a))
	cmd.AddCommand(newFetchCmd(&a))
	cmd.AddCommand(newWatchCmd(&a))

	return &cmd
}
