package domain

import (
	"github.com/shopspring/decimal"
)

// CalculationResult is the full savings breakdown for one input. All
// monetary amounts are present values in rand, rounded to cents.
type CalculationResult struct {
	PresentValueRewards decimal.Decimal `json:"presentValueRewards"`
	CarbonTaxSavings    decimal.Decimal `json:"carbonTaxSavings"`

	// FuelSpendSavings is PV(ICE fuel) - PV(EV energy) over the loan term.
	// Negative when charging costs more than the fuel it replaces.
	FuelSpendSavings decimal.Decimal `json:"fuelSpendSavings"`

	// UpfrontSavings = PresentValueRewards + CarbonTaxSavings.
	UpfrontSavings decimal.Decimal `json:"upfrontSavings"`

	// TotalSavings = UpfrontSavings + FuelSpendSavings.
	TotalSavings decimal.Decimal `json:"totalSavings"`

	// StandardBenefits is the fixed reference scenario (tier 4, both
	// add-ons, 5 years) computed at the same distance and fuel type. It is
	// independent of the caller's tier, flags and term.
	StandardBenefits UpfrontBenefits `json:"standardBenefits"`

	CO2 CO2Comparison `json:"co2"`

	// Schedule is the per-year running-cost breakdown over the loan term.
	Schedule []YearCost `json:"schedule,omitempty"`
}

// UpfrontBenefits is the reward + carbon-tax portion of a scenario.
type UpfrontBenefits struct {
	PresentValueRewards decimal.Decimal `json:"presentValueRewards"`
	CarbonTaxSavings    decimal.Decimal `json:"carbonTaxSavings"`
	UpfrontSavings      decimal.Decimal `json:"upfrontSavings"`
}

// CO2Comparison reports monthly emissions in kg CO2 for the ICE vehicle
// and its electric replacement.
type CO2Comparison struct {
	ICEMonthlyKg     decimal.Decimal `json:"iceMonthly"`
	EVMonthlyKg      decimal.Decimal `json:"evMonthly"`
	MonthlySavingsKg decimal.Decimal `json:"monthlySavings"`
	YearlySavingsKg  decimal.Decimal `json:"yearlySavings"`
}

// YearCost is one projection year of the running-cost comparison. Nominal
// amounts carry fuel-price inflation; PV amounts are discounted back to
// year zero.
type YearCost struct {
	Year           int             `json:"year"`
	ICEFuelCost    decimal.Decimal `json:"iceFuelCost"`
	ICEFuelCostPV  decimal.Decimal `json:"iceFuelCostPv"`
	EVEnergyCost   decimal.Decimal `json:"evEnergyCost"`
	EVEnergyCostPV decimal.Decimal `json:"evEnergyCostPv"`
}

// ZeroResult returns a fully populated all-zero result. Boundary layers
// return it alongside an error indicator instead of a partial body.
func ZeroResult() *CalculationResult {
	z := decimal.Zero
	return &CalculationResult{
		PresentValueRewards: z,
		CarbonTaxSavings:    z,
		FuelSpendSavings:    z,
		UpfrontSavings:      z,
		TotalSavings:        z,
		StandardBenefits: UpfrontBenefits{
			PresentValueRewards: z,
			CarbonTaxSavings:    z,
			UpfrontSavings:      z,
		},
		CO2: CO2Comparison{
			ICEMonthlyKg:     z,
			EVMonthlyKg:      z,
			MonthlySavingsKg: z,
			YearlySavingsKg:  z,
		},
	}
}
