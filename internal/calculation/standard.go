package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/evshift/ev-savings-calculator/internal/domain"
)

// standardBenefits computes the fixed comparison scenario shown next to
// every result: tier 4 with both add-ons, bank-affiliated, over the
// upfront horizon. Only the caller's distance and fuel type flow in; the
// rest is pinned so the figure is comparable across members.
func (e *Engine) standardBenefits(ft domain.FuelType, distanceKm decimal.Decimal) domain.UpfrontBenefits {
	reference := domain.CalculationInput{
		RewardLevel:       standardRewardLevel,
		FuelType:          ft,
		MonthlyDistanceKm: distanceKm,
		HasInsuranceAddOn: true,
		HasFinancingAddOn: true,
		LoanTermYears:     UpfrontHorizonYears,
	}
	fuel := e.fuelProfile(ft, distanceKm)

	rewards := e.rewardPresentValue(reference, fuel)
	carbonTax := e.carbonTaxSavings(reference, fuel)

	return domain.UpfrontBenefits{
		PresentValueRewards: rewards.Round(2),
		CarbonTaxSavings:    carbonTax.Round(2),
		UpfrontSavings:      rewards.Add(carbonTax).Round(2),
	}
}
