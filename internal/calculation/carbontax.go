package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/evshift/ev-savings-calculator/internal/domain"
)

// carbonTaxSavings values the carbon tax the driver stops paying on fuel,
// over the fixed upfront horizon starting at the table's base year. Years
// past the table's last entry reuse that entry's rate. Zero for members
// without a bank affiliation.
func (e *Engine) carbonTaxSavings(in domain.CalculationInput, fuel fuelProfile) decimal.Decimal {
	if in.HasNoBankAffiliation {
		return decimal.Zero
	}

	annualLitres := fuel.monthlyLitres.Mul(twelve)
	annualTonnes := annualLitres.Mul(e.rates.CO2PerLitreKg).Div(thousand)

	total := decimal.Zero
	for i := 0; i < UpfrontHorizonYears; i++ {
		rate := e.rates.CarbonTaxFor(e.rates.CarbonTaxBaseYear + i)
		annualCost := annualTonnes.Mul(rate)
		total = total.Add(PresentValueSingle(annualCost, e.rates.DiscountRate, i+1))
	}
	return total
}
