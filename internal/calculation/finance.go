package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	one      = decimal.NewFromInt(1)
	twelve   = decimal.NewFromInt(12)
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// rateEpsilon is the threshold below which the growth and discount rates
// are treated as equal, switching the growing annuity to its degenerate
// closed form.
var rateEpsilon = decimal.New(1, -9)

// PresentValueSingle discounts one cash flow occurring at the end of
// period periodIndex (1-based) back to today.
func PresentValueSingle(cashFlow, discountRate decimal.Decimal, periodIndex int) decimal.Decimal {
	factor := one.Add(discountRate).Pow(decimal.NewFromInt(int64(periodIndex)))
	return cashFlow.Div(factor)
}

// PresentValueGrowingAnnuity is the present value of numPeriods annual
// cash flows starting at cashFlowYear1 and growing at growthRate each
// subsequent year, discounted at discountRate.
//
// When the two rates coincide the general closed form divides by zero; the
// degenerate branch mirrors the production pricing model
// (cf * n / (1+d)^n) rather than the analytic limit of the general
// formula, so behavior at the boundary is intentionally discontinuous.
// Callers must pass numPeriods > 0.
func PresentValueGrowingAnnuity(cashFlowYear1, growthRate, discountRate decimal.Decimal, numPeriods int) decimal.Decimal {
	n := decimal.NewFromInt(int64(numPeriods))
	discountFactor := one.Add(discountRate).Pow(n)

	if growthRate.Sub(discountRate).Abs().LessThan(rateEpsilon) {
		return cashFlowYear1.Mul(n).Div(discountFactor)
	}

	growthFactor := one.Add(growthRate).Pow(n)
	return cashFlowYear1.
		Mul(growthFactor.Sub(discountFactor)).
		Div(growthRate.Sub(discountRate)).
		Div(discountFactor)
}

// MonthlyLoanPayment is the standard amortization payment
// P * r / (1 - (1+r)^-n) for a principal financed at annualRate over
// termMonths. A zero rate degrades to straight-line repayment.
func MonthlyLoanPayment(principal, annualRate decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	months := decimal.NewFromInt(int64(termMonths))
	if annualRate.IsZero() {
		return principal.Div(months)
	}
	monthlyRate := annualRate.Div(twelve)
	compound := one.Add(monthlyRate).Pow(months)
	return principal.Mul(monthlyRate).Div(one.Sub(one.Div(compound)))
}
