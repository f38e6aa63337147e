// Package main is the entry point for the PriceSliders demo.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	config "github.com/edward-ap/pricesliders/internal/config"
	"github.com/edward-ap/pricesliders/internal/logging"
	"github.com/edward-ap/pricesliders/internal/sliderapp"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		envFile string
		trace   bool
	)
	cmd := &cobra.Command{
		Use:           "pricesliders",
		Short:         "Price and stepped slider demo",
		Long:          `Opens a window with a split-range price slider, a stepped slider and a fuel gauge slider.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.SetTraceEnabled(trace)
			boot := logging.Setup(config.DefaultLogLevel)

			cfg, err := config.LoadWithEnv(envFile)
			if err != nil {
				boot.Warn().Err(err).Msg("config load error, using defaults")
				cfg = config.Default()
			}
			log := logging.Setup(cfg.LogLevel)

			a, err := sliderapp.NewApp(cfg, log)
			if err != nil {
				return err
			}
			a.Run()
			return nil
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", "", "path to a .env file with SLIDERS_* overrides (default .env)")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every drag event")

	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pricesliders %s (%s)\n", version, commit)
		},
	}
}
