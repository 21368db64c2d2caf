package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/evshift/ev-savings-calculator/internal/domain"
)

// UpfrontHorizonYears is the fixed horizon for reward and carbon-tax
// present values. Upfront benefits are priced over five years regardless
// of the caller's loan term; this is deliberate product policy, distinct
// from domain.DefaultLoanTermYears.
const UpfrontHorizonYears = 5

// standardRewardLevel is the tier used for the fixed reference scenario.
const standardRewardLevel = 4

// Engine computes ICE-to-EV savings projections against an immutable rate
// table. It holds no per-calculation state; a single Engine is safe for
// concurrent use across independent inputs.
type Engine struct {
	rates  *domain.RateTable
	logger Logger
}

// NewEngine creates an engine bound to the given rate table.
func NewEngine(rates *domain.RateTable) *Engine {
	return &Engine{rates: rates, logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.logger = NopLogger{}
		return
	}
	e.logger = l
}

// ComputeSavings maps one calculation input to its full savings breakdown.
// It never fails for well-formed numeric input: unknown fuel types and
// reward tiers fall back to documented defaults.
func (e *Engine) ComputeSavings(input domain.CalculationInput) *domain.CalculationResult {
	in := input.Normalized()
	fuel := e.fuelProfile(in.FuelType, in.MonthlyDistanceKm)

	pvFuel, pvEnergy, schedule := e.projectRunningCosts(fuel, in)
	fuelSpendSavings := pvFuel.Sub(pvEnergy)

	pvRewards := e.rewardPresentValue(in, fuel)
	carbonTax := e.carbonTaxSavings(in, fuel)
	upfront := pvRewards.Add(carbonTax)
	total := upfront.Add(fuelSpendSavings)

	return &domain.CalculationResult{
		PresentValueRewards: pvRewards.Round(2),
		CarbonTaxSavings:    carbonTax.Round(2),
		FuelSpendSavings:    fuelSpendSavings.Round(2),
		UpfrontSavings:      upfront.Round(2),
		TotalSavings:        total.Round(2),
		StandardBenefits:    e.standardBenefits(in.FuelType, in.MonthlyDistanceKm),
		CO2:                 e.emissionsComparison(in, fuel),
		Schedule:            schedule,
	}
}

// fuelProfile resolves the per-litre price and consumption for a fuel type
// and derives the monthly litres and spend for the given distance.
type fuelProfile struct {
	price         decimal.Decimal
	consumption   decimal.Decimal // litres per 100 km
	monthlyLitres decimal.Decimal
	monthlySpend  decimal.Decimal
	distanceKm    decimal.Decimal
}

func (e *Engine) fuelProfile(ft domain.FuelType, distanceKm decimal.Decimal) fuelProfile {
	price, ok := e.rates.FuelPrice(ft)
	if !ok {
		price = e.rates.DefaultFuelPrice
		e.logger.Warnf("unknown fuel type %q, falling back to default price R%s/l", ft, price)
	}
	consumption, ok := e.rates.FuelConsumptionPer100Km(ft)
	if !ok {
		consumption = e.rates.DefaultFuelConsumption
		e.logger.Warnf("unknown fuel type %q, falling back to default consumption %s l/100km", ft, consumption)
	}

	monthlyLitres := consumption.Mul(distanceKm).Div(hundred)
	return fuelProfile{
		price:         price,
		consumption:   consumption,
		monthlyLitres: monthlyLitres,
		monthlySpend:  monthlyLitres.Mul(price),
		distanceKm:    distanceKm,
	}
}
