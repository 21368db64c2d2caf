package output

import (
	"fmt"
	"strings"

	"github.com/evshift/ev-savings-calculator/internal/domain"
	money "github.com/evshift/ev-savings-calculator/pkg/decimal"
)

// ConsoleFormatter renders a plain-text savings report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "cli" }

func (c ConsoleFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var b strings.Builder

	b.WriteString("EV SAVINGS SUMMARY\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&b, "%-32s %14s\n", "Reward present value:", money.NewMoneyFromDecimal(result.PresentValueRewards).Format())
	fmt.Fprintf(&b, "%-32s %14s\n", "Carbon tax savings:", money.NewMoneyFromDecimal(result.CarbonTaxSavings).Format())
	fmt.Fprintf(&b, "%-32s %14s\n", "Upfront savings:", money.NewMoneyFromDecimal(result.UpfrontSavings).Format())
	fmt.Fprintf(&b, "%-32s %14s\n", "Fuel spend savings:", money.NewMoneyFromDecimal(result.FuelSpendSavings).Format())
	fmt.Fprintf(&b, "%-32s %14s\n\n", "Total savings:", money.NewMoneyFromDecimal(result.TotalSavings).Format())

	b.WriteString("Standard benefits (tier 4, 5 years)\n")
	fmt.Fprintf(&b, "  %-30s %14s\n", "Reward present value:", money.NewMoneyFromDecimal(result.StandardBenefits.PresentValueRewards).Format())
	fmt.Fprintf(&b, "  %-30s %14s\n", "Carbon tax savings:", money.NewMoneyFromDecimal(result.StandardBenefits.CarbonTaxSavings).Format())
	fmt.Fprintf(&b, "  %-30s %14s\n\n", "Upfront savings:", money.NewMoneyFromDecimal(result.StandardBenefits.UpfrontSavings).Format())

	b.WriteString("CO2 emissions (kg/month)\n")
	fmt.Fprintf(&b, "  %-30s %14s\n", "ICE vehicle:", result.CO2.ICEMonthlyKg.StringFixed(2))
	fmt.Fprintf(&b, "  %-30s %14s\n", "Electric vehicle:", result.CO2.EVMonthlyKg.StringFixed(2))
	fmt.Fprintf(&b, "  %-30s %14s\n", "Monthly savings:", result.CO2.MonthlySavingsKg.StringFixed(2))
	fmt.Fprintf(&b, "  %-30s %14s\n", "Yearly savings:", result.CO2.YearlySavingsKg.StringFixed(2))

	if len(result.Schedule) > 0 {
		b.WriteString("\nRunning costs by year (present value)\n")
		fmt.Fprintf(&b, "  %-6s %14s %14s\n", "Year", "ICE fuel", "EV energy")
		for _, yc := range result.Schedule {
			fmt.Fprintf(&b, "  %-6d %14s %14s\n",
				yc.Year,
				money.NewMoneyFromDecimal(yc.ICEFuelCostPV).Format(),
				money.NewMoneyFromDecimal(yc.EVEnergyCostPV).Format())
		}
	}

	return []byte(b.String()), nil
}
