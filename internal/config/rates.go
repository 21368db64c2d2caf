package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/evshift/ev-savings-calculator/internal/domain"
)

// DefaultRateTable returns the canonical 2025 South African pricing
// assumptions: pump prices, Eskom tariffs, eBucks-style reward tiers and
// the legislated carbon-tax trajectory.
func DefaultRateTable() *domain.RateTable {
	return &domain.RateTable{
		FuelPrices: map[domain.FuelType]decimal.Decimal{
			domain.Diesel:   decimal.NewFromFloat(19.32),
			domain.Petrol95: decimal.NewFromFloat(21.62),
			domain.Petrol93: decimal.NewFromFloat(21.51),
		},
		FuelConsumption: map[domain.FuelType]decimal.Decimal{
			domain.Diesel:   decimal.NewFromFloat(8.0),
			domain.Petrol95: decimal.NewFromFloat(9.5),
			domain.Petrol93: decimal.NewFromFloat(9.3),
		},
		DefaultFuelPrice:       decimal.NewFromFloat(21.62),
		DefaultFuelConsumption: decimal.NewFromFloat(9.0),

		// Base rates are the published per-litre earn rates less the 25%
		// redemption haircut; insurance and financing add-ons double per
		// tier up to R2.00 at tier 5.
		RewardBaseRates: map[int]decimal.Decimal{
			1: decimal.NewFromFloat(0.30),
			2: decimal.NewFromFloat(0.60),
			3: decimal.NewFromFloat(1.20),
			4: decimal.NewFromFloat(2.40),
			5: decimal.NewFromFloat(3.00),
		},
		RewardInsuranceRates: map[int]decimal.Decimal{
			1: decimal.NewFromFloat(0.10),
			2: decimal.NewFromFloat(0.20),
			3: decimal.NewFromFloat(0.40),
			4: decimal.NewFromFloat(0.80),
			5: decimal.NewFromFloat(2.00),
		},
		RewardFinancingRates: map[int]decimal.Decimal{
			1: decimal.NewFromFloat(0.10),
			2: decimal.NewFromFloat(0.20),
			3: decimal.NewFromFloat(0.40),
			4: decimal.NewFromFloat(0.80),
			5: decimal.NewFromFloat(2.00),
		},
		MonthlySpendCap: decimal.NewFromInt(3000),

		FuelInflation: decimal.NewFromFloat(0.09),
		DiscountRate:  decimal.NewFromFloat(0.1095),

		CarbonTaxBaseYear: 2025,
		CarbonTaxPerTonne: map[int]decimal.Decimal{
			2025: decimal.NewFromInt(236),
			2026: decimal.NewFromInt(308),
			2027: decimal.NewFromInt(347),
			2028: decimal.NewFromInt(390),
			2029: decimal.NewFromInt(440),
			2030: decimal.NewFromInt(495),
			2031: decimal.NewFromInt(495),
			2032: decimal.NewFromInt(495),
		},
		CO2PerLitreKg: decimal.NewFromFloat(2.35),

		EVConsumptionKWhPerKm: decimal.NewFromFloat(0.189),
		StandardTariff:        decimal.NewFromFloat(3.7),
		PremiumTariff:         decimal.NewFromFloat(7.0),
		PremiumTariffShare:    decimal.NewFromFloat(0.1),

		SolarCostFactor: decimal.NewFromFloat(0.1),

		GridEmissionFactor:  decimal.NewFromFloat(0.9),
		SolarEmissionFactor: decimal.NewFromFloat(0.09),
	}
}

// LoadRateTable loads a rate-table override from a YAML file and validates
// it.
func LoadRateTable(filename string) (*domain.RateTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var rt domain.RateTable
	if err := yaml.Unmarshal(data, &rt); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ValidateRateTable(&rt); err != nil {
		return nil, fmt.Errorf("rate table validation failed: %w", err)
	}
	return &rt, nil
}

// ValidateRateTable checks a rate table for values the engine cannot
// price against.
func ValidateRateTable(rt *domain.RateTable) error {
	if len(rt.FuelPrices) == 0 {
		return fmt.Errorf("no fuel prices provided")
	}
	for ft, price := range rt.FuelPrices {
		if price.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("fuel price for %s must be positive", ft)
		}
	}
	for ft, consumption := range rt.FuelConsumption {
		if consumption.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("fuel consumption for %s must be positive", ft)
		}
	}
	if rt.DefaultFuelPrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("default fuel price must be positive")
	}
	if rt.DefaultFuelConsumption.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("default fuel consumption must be positive")
	}
	for tier := 1; tier <= 5; tier++ {
		if _, ok := rt.RewardBaseRates[tier]; !ok {
			return fmt.Errorf("reward base rate for tier %d is missing", tier)
		}
	}
	if rt.MonthlySpendCap.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("monthly spend cap must be positive")
	}
	if rt.DiscountRate.IsZero() {
		return fmt.Errorf("discount rate must be non-zero")
	}
	if len(rt.CarbonTaxPerTonne) == 0 {
		return fmt.Errorf("no carbon tax rates provided")
	}
	if _, ok := rt.CarbonTaxPerTonne[rt.CarbonTaxBaseYear]; !ok {
		return fmt.Errorf("carbon tax table has no entry for base year %d", rt.CarbonTaxBaseYear)
	}
	if rt.EVConsumptionKWhPerKm.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("EV consumption must be positive")
	}
	if rt.PremiumTariffShare.IsNegative() || rt.PremiumTariffShare.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("premium tariff share must be between 0 and 1")
	}
	return nil
}
