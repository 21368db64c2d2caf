package domain

import (
	"github.com/shopspring/decimal"
)

// RateTable is the immutable pricing configuration the engine is
// constructed with. It carries every jurisdiction-specific constant so the
// engine itself stays free of magic numbers and can be repriced (or fed
// synthetic tables in tests) without code changes.
type RateTable struct {
	// Fuel prices in rand per litre and consumption in litres per 100 km,
	// keyed by fuel type.
	FuelPrices      map[FuelType]decimal.Decimal `yaml:"fuel_prices"`
	FuelConsumption map[FuelType]decimal.Decimal `yaml:"fuel_consumption"`

	// Defaults substituted when a fuel type is not in the tables above.
	DefaultFuelPrice       decimal.Decimal `yaml:"default_fuel_price"`
	DefaultFuelConsumption decimal.Decimal `yaml:"default_fuel_consumption"`

	// Reward rates in rand per qualifying litre, keyed by tier (1-5).
	RewardBaseRates      map[int]decimal.Decimal `yaml:"reward_base_rates"`
	RewardInsuranceRates map[int]decimal.Decimal `yaml:"reward_insurance_rates"`
	RewardFinancingRates map[int]decimal.Decimal `yaml:"reward_financing_rates"`

	// MonthlySpendCap is the maximum monthly fuel spend that accrues
	// rewards.
	MonthlySpendCap decimal.Decimal `yaml:"monthly_spend_cap"`

	FuelInflation decimal.Decimal `yaml:"fuel_inflation"`
	DiscountRate  decimal.Decimal `yaml:"discount_rate"`

	// Carbon tax in rand per tonne CO2 by calendar year. Years beyond the
	// table forward-fill from its final entry.
	CarbonTaxBaseYear int                     `yaml:"carbon_tax_base_year"`
	CarbonTaxPerTonne map[int]decimal.Decimal `yaml:"carbon_tax_per_tonne"`

	CO2PerLitreKg decimal.Decimal `yaml:"co2_per_litre_kg"`

	// EV charging assumptions.
	EVConsumptionKWhPerKm decimal.Decimal `yaml:"ev_consumption_kwh_per_km"`
	StandardTariff        decimal.Decimal `yaml:"standard_tariff"`
	PremiumTariff         decimal.Decimal `yaml:"premium_tariff"`
	PremiumTariffShare    decimal.Decimal `yaml:"premium_tariff_share"`

	// SolarCostFactor scales charging cost when the household has solar.
	// It is a reduction to a tenth of grid cost, not to zero.
	SolarCostFactor decimal.Decimal `yaml:"solar_cost_factor"`

	// Emission factors in kg CO2 per kWh. The solar factor is small but
	// non-zero (residual lifecycle emissions).
	GridEmissionFactor  decimal.Decimal `yaml:"grid_emission_factor"`
	SolarEmissionFactor decimal.Decimal `yaml:"solar_emission_factor"`
}

// FuelPrice returns the per-litre price for a fuel type and whether it was
// found in the table.
func (rt *RateTable) FuelPrice(ft FuelType) (decimal.Decimal, bool) {
	p, ok := rt.FuelPrices[ft]
	return p, ok
}

// FuelConsumptionPer100Km returns the litres-per-100km figure for a fuel
// type and whether it was found in the table.
func (rt *RateTable) FuelConsumptionPer100Km(ft FuelType) (decimal.Decimal, bool) {
	c, ok := rt.FuelConsumption[ft]
	return c, ok
}

// BlendedTariff is the effective rand-per-kWh charging rate: the standard
// tariff weighted against the premium tariff by the premium share.
func (rt *RateTable) BlendedTariff() decimal.Decimal {
	standardShare := decimal.NewFromInt(1).Sub(rt.PremiumTariffShare)
	return rt.StandardTariff.Mul(standardShare).
		Add(rt.PremiumTariff.Mul(rt.PremiumTariffShare))
}

// CarbonTaxFor returns the carbon-tax rate for a calendar year,
// forward-filling from the table's final entry for later years.
func (rt *RateTable) CarbonTaxFor(year int) decimal.Decimal {
	if rate, ok := rt.CarbonTaxPerTonne[year]; ok {
		return rate
	}
	maxYear := 0
	for y := range rt.CarbonTaxPerTonne {
		if y > maxYear {
			maxYear = y
		}
	}
	return rt.CarbonTaxPerTonne[maxYear]
}
