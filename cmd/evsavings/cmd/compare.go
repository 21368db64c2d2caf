package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/evshift/ev-savings-calculator/internal/calculation"
	"github.com/evshift/ev-savings-calculator/internal/domain"
	"github.com/evshift/ev-savings-calculator/internal/logging"
	"github.com/evshift/ev-savings-calculator/internal/vehicle"
)

var (
	compareICE      string
	compareEV       string
	compareDistance float64
	compareRate     float64
	compareMonths   int
	compareDeposit  float64
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare monthly costs of an ICE vehicle and an electric one",
	Long: `Compare the monthly loan payment plus running cost of an ICE vehicle
against an electric replacement financed under the same terms. Vehicles
are looked up in the built-in catalog; unknown identifiers use a flagged
fallback estimate.

Example:
  evsavings compare --ice hilux-2.4gd6 --ev byd-atto3 --distance 1800 --rate 0.115 --months 60`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareICE, "ice", "", "ICE vehicle identifier (required)")
	compareCmd.Flags().StringVar(&compareEV, "ev", "", "electric vehicle identifier (required)")
	compareCmd.Flags().Float64Var(&compareDistance, "distance", 0, "monthly distance in km (required)")
	compareCmd.Flags().Float64Var(&compareRate, "rate", 0.115, "annual interest rate as a fraction")
	compareCmd.Flags().IntVar(&compareMonths, "months", 60, "loan term in months")
	compareCmd.Flags().Float64Var(&compareDeposit, "deposit", 0, "deposit in rand")
	_ = compareCmd.MarkFlagRequired("ice")
	_ = compareCmd.MarkFlagRequired("ev")
	_ = compareCmd.MarkFlagRequired("distance")
}

func runCompare(cmd *cobra.Command, _ []string) error {
	if compareDistance <= 0 {
		return fmt.Errorf("--distance must be positive")
	}
	if compareMonths <= 0 {
		return fmt.Errorf("--months must be positive")
	}

	rates, err := loadRates()
	if err != nil {
		return err
	}

	engine := calculation.NewEngine(rates)
	engine.SetLogger(logging.Sugar)

	catalog := vehicle.NewCatalog(vehicle.NewMemoryCache())
	catalog.SetLogger(logging.Sugar)

	ctx := cmd.Context()
	ice := catalog.Lookup(ctx, compareICE)
	ev := catalog.Lookup(ctx, compareEV)

	comparison := engine.CompareVehicles(ice, ev, decimal.NewFromFloat(compareDistance), domain.FinancingTerms{
		AnnualInterestRate: decimal.NewFromFloat(compareRate),
		TermMonths:         compareMonths,
		DepositZAR:         decimal.NewFromFloat(compareDeposit),
	})

	data, err := json.MarshalIndent(comparison, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format comparison: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
