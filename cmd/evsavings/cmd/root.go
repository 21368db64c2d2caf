// Package cmd provides the CLI commands for evsavings.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evshift/ev-savings-calculator/internal/config"
	"github.com/evshift/ev-savings-calculator/internal/domain"
	"github.com/evshift/ev-savings-calculator/internal/logging"
)

var (
	ratesFile string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "evsavings",
	Short: "Estimate the savings of switching from an ICE vehicle to electric",
	Long: `evsavings projects the financial and environmental savings of replacing
an internal-combustion vehicle with an electric or hybrid one: discounted
fuel-versus-charging costs, forfeited fuel rewards, carbon tax and CO2
emissions.

Examples:
  evsavings calculate --level 3 --fuel petrol95 --distance 1500 --insurance --financing
  evsavings compare --ice hilux-2.4gd6 --ev byd-atto3 --distance 1800 --rate 0.115 --months 60
  evsavings serve --addr :8080`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&ratesFile, "rates", "", "YAML rate-table override (default: built-in 2025 rates)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func initLogging() {
	level := "info"
	if verbose {
		level = "debug"
	}
	if err := logging.Initialize(level, "console"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
	}
}

// loadRates resolves the rate table from the --rates flag or the built-in
// defaults.
func loadRates() (*domain.RateTable, error) {
	if ratesFile == "" {
		return config.DefaultRateTable(), nil
	}
	return config.LoadRateTable(ratesFile)
}
