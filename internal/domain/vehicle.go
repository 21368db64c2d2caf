package domain

import (
	"github.com/shopspring/decimal"
)

// VehicleAttributes is the resolved attribute record for one vehicle. The
// engine consumes these as plain data regardless of whether they came from
// the built-in catalog, a cache, or a fallback estimate.
type VehicleAttributes struct {
	ID    string `json:"id,omitempty"`
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`

	PriceZAR decimal.Decimal `json:"price"`

	Electric bool `json:"electric"`

	// FuelType applies to ICE vehicles only.
	FuelType FuelType `json:"fuelType,omitempty"`

	// ConsumptionPer100Km is litres/100km for ICE vehicles. Zero means
	// "use the rate-table figure for the fuel type".
	ConsumptionPer100Km decimal.Decimal `json:"consumptionPer100Km,omitempty"`

	// EnergyPerKmKWh is kWh/km for electric vehicles. Zero means "use the
	// rate-table figure".
	EnergyPerKmKWh decimal.Decimal `json:"energyPerKmKwh,omitempty"`

	// Estimated marks fallback records substituted when a lookup failed.
	Estimated bool `json:"estimated"`
}

// FinancingTerms describes the loan both vehicles are financed under.
type FinancingTerms struct {
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate"`
	TermMonths         int             `json:"termMonths"`
	DepositZAR         decimal.Decimal `json:"deposit"`
}

// VehicleComparison is the monthly-cost comparison between an ICE vehicle
// and an electric replacement financed under the same terms.
type VehicleComparison struct {
	ICEMonthlyPayment decimal.Decimal `json:"iceMonthlyPayment"`
	EVMonthlyPayment  decimal.Decimal `json:"evMonthlyPayment"`

	ICEMonthlyRunningCost decimal.Decimal `json:"iceMonthlyRunningCost"`
	EVMonthlyRunningCost  decimal.Decimal `json:"evMonthlyRunningCost"`

	ICEMonthlyTotal decimal.Decimal `json:"iceMonthlyTotal"`
	EVMonthlyTotal  decimal.Decimal `json:"evMonthlyTotal"`

	// MonthlySavings is ICE total minus EV total; negative when the
	// electric vehicle costs more per month.
	MonthlySavings decimal.Decimal `json:"monthlySavings"`
}
