package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/evshift/ev-savings-calculator/internal/domain"
)

// CompareVehicles puts an ICE vehicle and an electric replacement side by
// side under the same financing terms: amortized monthly payment on the
// financed amount plus the monthly running cost at the given distance.
// Vehicle-specific consumption figures take precedence over the rate
// table's fleet averages when present.
func (e *Engine) CompareVehicles(ice, ev domain.VehicleAttributes, monthlyDistanceKm decimal.Decimal, terms domain.FinancingTerms) *domain.VehicleComparison {
	icePayment := MonthlyLoanPayment(financedAmount(ice.PriceZAR, terms.DepositZAR), terms.AnnualInterestRate, terms.TermMonths)
	evPayment := MonthlyLoanPayment(financedAmount(ev.PriceZAR, terms.DepositZAR), terms.AnnualInterestRate, terms.TermMonths)

	iceRunning := e.iceMonthlyRunningCost(ice, monthlyDistanceKm)
	evRunning := e.evMonthlyRunningCost(ev, monthlyDistanceKm)

	iceTotal := icePayment.Add(iceRunning)
	evTotal := evPayment.Add(evRunning)

	return &domain.VehicleComparison{
		ICEMonthlyPayment:     icePayment.Round(2),
		EVMonthlyPayment:      evPayment.Round(2),
		ICEMonthlyRunningCost: iceRunning.Round(2),
		EVMonthlyRunningCost:  evRunning.Round(2),
		ICEMonthlyTotal:       iceTotal.Round(2),
		EVMonthlyTotal:        evTotal.Round(2),
		MonthlySavings:        iceTotal.Sub(evTotal).Round(2),
	}
}

func financedAmount(price, deposit decimal.Decimal) decimal.Decimal {
	principal := price.Sub(deposit)
	if principal.IsNegative() {
		return decimal.Zero
	}
	return principal
}

func (e *Engine) iceMonthlyRunningCost(v domain.VehicleAttributes, distanceKm decimal.Decimal) decimal.Decimal {
	fuel := e.fuelProfile(v.FuelType, distanceKm)
	if v.ConsumptionPer100Km.IsPositive() {
		return v.ConsumptionPer100Km.Mul(distanceKm).Div(hundred).Mul(fuel.price)
	}
	return fuel.monthlySpend
}

func (e *Engine) evMonthlyRunningCost(v domain.VehicleAttributes, distanceKm decimal.Decimal) decimal.Decimal {
	perKm := e.rates.EVConsumptionKWhPerKm
	if v.EnergyPerKmKWh.IsPositive() {
		perKm = v.EnergyPerKmKWh
	}
	return distanceKm.Mul(perKm).Mul(e.rates.BlendedTariff())
}
