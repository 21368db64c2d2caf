package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/evshift/ev-savings-calculator/internal/domain"
)

// rewardPresentValue prices the fuel-reward stream the member forfeits by
// no longer buying fuel. Qualifying spend is capped at the monthly ceiling
// before converting back to litres, and the stream is always valued over
// the fixed upfront horizon, not the loan term.
func (e *Engine) rewardPresentValue(in domain.CalculationInput, fuel fuelProfile) decimal.Decimal {
	rate := e.rewardRatePerLitre(in.RewardLevel, in.HasInsuranceAddOn, in.HasFinancingAddOn, in.HasNoBankAffiliation)
	if rate.IsZero() {
		return decimal.Zero
	}

	qualifyingSpend := decimal.Min(fuel.monthlySpend, e.rates.MonthlySpendCap)
	qualifyingLitres := qualifyingSpend.Div(fuel.price)
	year1Rewards := rate.Mul(qualifyingLitres).Mul(twelve)

	return PresentValueGrowingAnnuity(year1Rewards, e.rates.FuelInflation, e.rates.DiscountRate, UpfrontHorizonYears)
}

// rewardRatePerLitre sums the base, insurance and financing components for
// a tier. Members without a bank affiliation earn nothing regardless of
// add-ons; unknown tiers resolve to zero rates.
func (e *Engine) rewardRatePerLitre(level int, insurance, financing, noBank bool) decimal.Decimal {
	if noBank {
		return decimal.Zero
	}

	rate, ok := e.rates.RewardBaseRates[level]
	if !ok {
		e.logger.Warnf("unknown reward level %d, base rate is zero", level)
	}
	if insurance {
		rate = rate.Add(e.rates.RewardInsuranceRates[level])
	}
	if financing {
		rate = rate.Add(e.rates.RewardFinancingRates[level])
	}
	return rate
}
