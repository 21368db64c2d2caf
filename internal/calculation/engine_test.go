package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evshift/ev-savings-calculator/internal/config"
	"github.com/evshift/ev-savings-calculator/internal/domain"
)

func newTestEngine() *Engine {
	return NewEngine(config.DefaultRateTable())
}

func referenceInput() domain.CalculationInput {
	return domain.CalculationInput{
		RewardLevel:       3,
		FuelType:          domain.Petrol95,
		MonthlyDistanceKm: decimal.NewFromInt(1500),
		HasInsuranceAddOn: true,
		HasFinancingAddOn: true,
		LoanTermYears:     5,
	}
}

// Golden regression for the reference scenario. Values locked against the
// production pricing model.
func TestComputeSavingsReferenceScenario(t *testing.T) {
	result := newTestEngine().ComputeSavings(referenceInput())

	assert.InDelta(t, 14489.53, result.PresentValueRewards.InexactFloat64(), 0.01)
	assert.InDelta(t, 4967.09, result.CarbonTaxSavings.InexactFloat64(), 0.01)
	assert.InDelta(t, 110118.33, result.FuelSpendSavings.InexactFloat64(), 0.01)
	assert.InDelta(t, 19456.63, result.UpfrontSavings.InexactFloat64(), 0.01)
	assert.InDelta(t, 129574.95, result.TotalSavings.InexactFloat64(), 0.01)

	assert.InDelta(t, 28979.07, result.StandardBenefits.PresentValueRewards.InexactFloat64(), 0.01)
	assert.InDelta(t, 4967.09, result.StandardBenefits.CarbonTaxSavings.InexactFloat64(), 0.01)
	assert.InDelta(t, 33946.16, result.StandardBenefits.UpfrontSavings.InexactFloat64(), 0.01)

	assert.InDelta(t, 334.88, result.CO2.ICEMonthlyKg.InexactFloat64(), 0.01)
	assert.InDelta(t, 255.15, result.CO2.EVMonthlyKg.InexactFloat64(), 0.01)
	assert.InDelta(t, 79.72, result.CO2.MonthlySavingsKg.InexactFloat64(), 0.01)
	assert.InDelta(t, 956.70, result.CO2.YearlySavingsKg.InexactFloat64(), 0.01)
}

// Golden regression for a solar diesel scenario with a non-default term.
func TestComputeSavingsSolarDiesel(t *testing.T) {
	result := newTestEngine().ComputeSavings(domain.CalculationInput{
		RewardLevel:       5,
		FuelType:          domain.Diesel,
		MonthlyDistanceKm: decimal.NewFromInt(800),
		HasInsuranceAddOn: true,
		HasSolar:          true,
		LoanTermYears:     8,
	})

	assert.InDelta(t, 16707.40, result.PresentValueRewards.InexactFloat64(), 0.01)
	assert.InDelta(t, 2230.83, result.CarbonTaxSavings.InexactFloat64(), 0.01)
	assert.InDelta(t, 96862.53, result.FuelSpendSavings.InexactFloat64(), 0.01)
	assert.InDelta(t, 115800.76, result.TotalSavings.InexactFloat64(), 0.01)

	assert.InDelta(t, 150.40, result.CO2.ICEMonthlyKg.InexactFloat64(), 0.01)
	assert.InDelta(t, 13.61, result.CO2.EVMonthlyKg.InexactFloat64(), 0.01)

	assert.Len(t, result.Schedule, 8)
}

func TestComputeSavingsAggregationInvariants(t *testing.T) {
	inputs := []domain.CalculationInput{
		referenceInput(),
		{
			RewardLevel:       1,
			FuelType:          domain.Diesel,
			MonthlyDistanceKm: decimal.NewFromInt(400),
			HasSolar:          true,
			LoanTermYears:     3,
		},
		{
			RewardLevel:          5,
			FuelType:             domain.Petrol93,
			MonthlyDistanceKm:    decimal.NewFromInt(3000),
			HasInsuranceAddOn:    true,
			HasFinancingAddOn:    true,
			HasNoBankAffiliation: true,
			LoanTermYears:        10,
		},
	}

	engine := newTestEngine()
	for _, in := range inputs {
		result := engine.ComputeSavings(in)

		upfront := result.PresentValueRewards.Add(result.CarbonTaxSavings)
		assert.InDelta(t, upfront.InexactFloat64(), result.UpfrontSavings.InexactFloat64(), 0.011)

		total := result.UpfrontSavings.Add(result.FuelSpendSavings)
		assert.InDelta(t, total.InexactFloat64(), result.TotalSavings.InexactFloat64(), 0.011)
	}
}

func TestComputeSavingsNoBankAffiliation(t *testing.T) {
	in := referenceInput()
	in.HasNoBankAffiliation = true

	result := newTestEngine().ComputeSavings(in)

	assert.True(t, result.PresentValueRewards.IsZero(), "rewards must be suppressed")
	assert.True(t, result.CarbonTaxSavings.IsZero(), "carbon tax must be suppressed")
	assert.True(t, result.UpfrontSavings.IsZero())
	// Fuel savings and emissions are unaffected by bank affiliation.
	assert.InDelta(t, 110118.33, result.FuelSpendSavings.InexactFloat64(), 0.01)
	assert.InDelta(t, 79.72, result.CO2.MonthlySavingsKg.InexactFloat64(), 0.01)
}

// standardBenefits is pinned to tier 4 with both add-ons over 5 years; the
// caller's tier, flags and term must not leak into it.
func TestStandardBenefitsInvariantToCallerFlags(t *testing.T) {
	engine := newTestEngine()
	baseline := engine.ComputeSavings(referenceInput()).StandardBenefits

	variants := []func(*domain.CalculationInput){
		func(in *domain.CalculationInput) { in.RewardLevel = 1 },
		func(in *domain.CalculationInput) { in.HasInsuranceAddOn = false },
		func(in *domain.CalculationInput) { in.HasFinancingAddOn = false },
		func(in *domain.CalculationInput) { in.HasNoBankAffiliation = true },
		func(in *domain.CalculationInput) { in.LoanTermYears = 10 },
	}

	for _, mutate := range variants {
		in := referenceInput()
		mutate(&in)
		got := engine.ComputeSavings(in).StandardBenefits
		assert.True(t, baseline.PresentValueRewards.Equal(got.PresentValueRewards))
		assert.True(t, baseline.CarbonTaxSavings.Equal(got.CarbonTaxSavings))
		assert.True(t, baseline.UpfrontSavings.Equal(got.UpfrontSavings))
	}
}

// Reward accrual is capped at the monthly spend ceiling: any distance whose
// fuel spend exceeds it earns the same reward value.
func TestRewardQualifyingSpendCap(t *testing.T) {
	engine := newTestEngine()

	in := domain.CalculationInput{
		RewardLevel:       2,
		FuelType:          domain.Petrol95,
		MonthlyDistanceKm: decimal.NewFromInt(1500), // spend R3080.85, over the cap
		LoanTermYears:     5,
	}
	atCap := engine.ComputeSavings(in)

	in.MonthlyDistanceKm = decimal.NewFromInt(2000) // spend R4107.80
	farOverCap := engine.ComputeSavings(in)

	require.False(t, atCap.PresentValueRewards.IsZero())
	assert.True(t, atCap.PresentValueRewards.Equal(farOverCap.PresentValueRewards),
		"reward PV must not grow past the cap: %s vs %s", atCap.PresentValueRewards, farOverCap.PresentValueRewards)
	assert.InDelta(t, 4346.86, atCap.PresentValueRewards.InexactFloat64(), 0.01)
}

// The loan term defaults to 5 years when omitted.
func TestLoanTermDefaulting(t *testing.T) {
	engine := newTestEngine()

	in := referenceInput()
	in.LoanTermYears = 0
	defaulted := engine.ComputeSavings(in)

	explicit := engine.ComputeSavings(referenceInput())
	assert.True(t, defaulted.TotalSavings.Equal(explicit.TotalSavings))
	assert.Len(t, defaulted.Schedule, domain.DefaultLoanTermYears)
}

// The reward horizon stays at 5 years even when the loan runs longer; only
// the fuel-spend component responds to the term.
func TestUpfrontHorizonIndependentOfLoanTerm(t *testing.T) {
	engine := newTestEngine()

	fiveYear := engine.ComputeSavings(referenceInput())

	in := referenceInput()
	in.LoanTermYears = 9
	nineYear := engine.ComputeSavings(in)

	assert.True(t, fiveYear.PresentValueRewards.Equal(nineYear.PresentValueRewards))
	assert.True(t, fiveYear.CarbonTaxSavings.Equal(nineYear.CarbonTaxSavings))
	assert.True(t, nineYear.FuelSpendSavings.GreaterThan(fiveYear.FuelSpendSavings))
}

// Unknown fuel types use the documented defaults instead of failing.
func TestUnknownFuelTypeFallback(t *testing.T) {
	in := referenceInput()
	in.FuelType = domain.FuelType("lpg")

	result := newTestEngine().ComputeSavings(in)

	// 9.0 l/100km * 1500 km * 2.35 kg/l = 317.25 kg/month.
	assert.InDelta(t, 317.25, result.CO2.ICEMonthlyKg.InexactFloat64(), 0.01)
	assert.True(t, result.TotalSavings.IsPositive())
}

func TestScheduleDiscountsEachYear(t *testing.T) {
	result := newTestEngine().ComputeSavings(referenceInput())
	require.Len(t, result.Schedule, 5)

	var pvFuelSum, pvEnergySum decimal.Decimal
	for i, yc := range result.Schedule {
		assert.Equal(t, 2025+i, yc.Year)
		assert.True(t, yc.ICEFuelCostPV.LessThan(yc.ICEFuelCost), "PV must be below nominal")
		pvFuelSum = pvFuelSum.Add(yc.ICEFuelCostPV)
		pvEnergySum = pvEnergySum.Add(yc.EVEnergyCostPV)
	}
	// Schedule rows reconcile with the aggregate fuel-spend savings.
	assert.InDelta(t, result.FuelSpendSavings.InexactFloat64(), pvFuelSum.Sub(pvEnergySum).InexactFloat64(), 0.06)
}
