package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/evshift/ev-savings-calculator/internal/domain"
)

// projectRunningCosts discounts the ICE fuel and EV charging costs over
// the loan term and returns their present values together with the
// per-year schedule.
//
// Fuel cost escalates explicitly year by year before discounting; the sum
// is equivalent to the growing-annuity closed form but keeps the nominal
// per-year amounts available for the schedule. EV cost is flat in nominal
// terms: charging is priced at the blended tariff, scaled by the solar
// cost factor when the household charges from its own panels.
func (e *Engine) projectRunningCosts(fuel fuelProfile, in domain.CalculationInput) (pvFuel, pvEnergy decimal.Decimal, schedule []domain.YearCost) {
	rt := e.rates

	year1FuelCost := fuel.monthlySpend.Mul(twelve)

	annualEnergyCost := fuel.distanceKm.Mul(twelve).
		Mul(rt.EVConsumptionKWhPerKm).
		Mul(rt.BlendedTariff())
	if in.HasSolar {
		annualEnergyCost = annualEnergyCost.Mul(rt.SolarCostFactor)
	}

	pvFuel = decimal.Zero
	pvEnergy = decimal.Zero
	schedule = make([]domain.YearCost, 0, in.LoanTermYears)
	inflationFactor := one.Add(rt.FuelInflation)

	for i := 0; i < in.LoanTermYears; i++ {
		nominalFuel := year1FuelCost.Mul(inflationFactor.Pow(decimal.NewFromInt(int64(i))))
		fuelPV := PresentValueSingle(nominalFuel, rt.DiscountRate, i+1)
		energyPV := PresentValueSingle(annualEnergyCost, rt.DiscountRate, i+1)

		pvFuel = pvFuel.Add(fuelPV)
		pvEnergy = pvEnergy.Add(energyPV)

		schedule = append(schedule, domain.YearCost{
			Year:           rt.CarbonTaxBaseYear + i,
			ICEFuelCost:    nominalFuel.Round(2),
			ICEFuelCostPV:  fuelPV.Round(2),
			EVEnergyCost:   annualEnergyCost.Round(2),
			EVEnergyCostPV: energyPV.Round(2),
		})
	}
	return pvFuel, pvEnergy, schedule
}
