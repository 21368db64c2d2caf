package domain

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Monetary fields serialize as JSON numbers, matching the public API
	// contract of the calculator endpoints.
	decimal.MarshalJSONWithoutQuotes = true
}

// FuelType identifies the ICE fuel variant used for price and consumption
// lookups. Unknown values are substituted with documented defaults by the
// engine rather than rejected.
type FuelType string

const (
	Diesel   FuelType = "diesel"
	Petrol95 FuelType = "petrol95"
	Petrol93 FuelType = "petrol93"
)

// DefaultLoanTermYears is applied when a caller omits the loan term or
// supplies zero.
const DefaultLoanTermYears = 5

// CalculationInput carries every parameter of a single savings calculation.
// Inputs are never mutated by the engine.
type CalculationInput struct {
	// RewardLevel is the reward-program tier, 1-5.
	RewardLevel int `json:"rewardLevel" yaml:"reward_level"`

	FuelType FuelType `json:"fuelType" yaml:"fuel_type"`

	MonthlyDistanceKm decimal.Decimal `json:"monthlyDistanceKm" yaml:"monthly_distance_km"`

	// HasInsuranceAddOn and HasFinancingAddOn gate the additional
	// per-litre reward-rate components for the caller's tier.
	HasInsuranceAddOn bool `json:"hasInsurance" yaml:"has_insurance"`
	HasFinancingAddOn bool `json:"hasFinancing" yaml:"has_financing"`

	// HasSolar switches EV charging to the reduced solar cost factor and
	// the residual solar emission factor. Neither is zero.
	HasSolar bool `json:"hasSolar" yaml:"has_solar"`

	// HasNoBankAffiliation suppresses the reward and carbon-tax components
	// entirely, independent of the add-on flags.
	HasNoBankAffiliation bool `json:"hasNoBank" yaml:"has_no_bank"`

	LoanTermYears int `json:"loanTermYears" yaml:"loan_term_years"`
}

// Normalized returns a copy of the input with the loan term defaulted.
func (in CalculationInput) Normalized() CalculationInput {
	if in.LoanTermYears <= 0 {
		in.LoanTermYears = DefaultLoanTermYears
	}
	return in
}
