package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/evshift/ev-savings-calculator/internal/calculation"
	"github.com/evshift/ev-savings-calculator/internal/domain"
	"github.com/evshift/ev-savings-calculator/internal/logging"
	"github.com/evshift/ev-savings-calculator/internal/output"
)

var (
	calcLevel     int
	calcFuel      string
	calcDistance  float64
	calcInsurance bool
	calcFinancing bool
	calcSolar     bool
	calcNoBank    bool
	calcTerm      int
	calcFormat    string
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Compute the savings breakdown for one scenario",
	Long: `Compute the full ICE-to-EV savings breakdown for a single usage and
financing scenario.

Examples:
  evsavings calculate --level 3 --fuel petrol95 --distance 1500 --insurance --financing
  evsavings calculate --level 5 --fuel diesel --distance 800 --solar --term 7 --format json`,
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().IntVar(&calcLevel, "level", 1, "reward tier (1-5)")
	calculateCmd.Flags().StringVar(&calcFuel, "fuel", "petrol95", "fuel type (diesel, petrol95, petrol93)")
	calculateCmd.Flags().Float64Var(&calcDistance, "distance", 0, "monthly distance in km (required)")
	calculateCmd.Flags().BoolVar(&calcInsurance, "insurance", false, "insurance add-on active")
	calculateCmd.Flags().BoolVar(&calcFinancing, "financing", false, "financing add-on active")
	calculateCmd.Flags().BoolVar(&calcSolar, "solar", false, "household charges from solar")
	calculateCmd.Flags().BoolVar(&calcNoBank, "no-bank", false, "no bank affiliation (suppresses reward and carbon-tax benefits)")
	calculateCmd.Flags().IntVar(&calcTerm, "term", domain.DefaultLoanTermYears, "loan term in years")
	calculateCmd.Flags().StringVarP(&calcFormat, "format", "f", "cli", "output format (cli, json)")
	_ = calculateCmd.MarkFlagRequired("distance")
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	if calcDistance <= 0 {
		return fmt.Errorf("--distance must be positive")
	}

	rates, err := loadRates()
	if err != nil {
		return err
	}

	formatter, err := output.GetFormatterByName(calcFormat)
	if err != nil {
		return err
	}

	engine := calculation.NewEngine(rates)
	engine.SetLogger(logging.Sugar)

	result := engine.ComputeSavings(domain.CalculationInput{
		RewardLevel:          calcLevel,
		FuelType:             domain.FuelType(calcFuel),
		MonthlyDistanceKm:    decimal.NewFromFloat(calcDistance),
		HasInsuranceAddOn:    calcInsurance,
		HasFinancingAddOn:    calcFinancing,
		HasSolar:             calcSolar,
		HasNoBankAffiliation: calcNoBank,
		LoanTermYears:        calcTerm,
	})

	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
