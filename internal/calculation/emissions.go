package calculation

import (
	"github.com/evshift/ev-savings-calculator/internal/domain"
)

// emissionsComparison reports monthly tailpipe CO2 for the ICE vehicle
// against the charging-mix emissions of its electric replacement. Solar
// charging uses the residual lifecycle factor, which is small but never
// zero.
func (e *Engine) emissionsComparison(in domain.CalculationInput, fuel fuelProfile) domain.CO2Comparison {
	iceMonthly := fuel.monthlyLitres.Mul(e.rates.CO2PerLitreKg)

	factor := e.rates.GridEmissionFactor
	if in.HasSolar {
		factor = e.rates.SolarEmissionFactor
	}
	evMonthly := fuel.distanceKm.Mul(e.rates.EVConsumptionKWhPerKm).Mul(factor)

	monthlySavings := iceMonthly.Sub(evMonthly)
	return domain.CO2Comparison{
		ICEMonthlyKg:     iceMonthly.Round(2),
		EVMonthlyKg:      evMonthly.Round(2),
		MonthlySavingsKg: monthlySavings.Round(2),
		YearlySavingsKg:  monthlySavings.Mul(twelve).Round(2),
	}
}
