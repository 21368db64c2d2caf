package output

import (
	"fmt"

	"github.com/evshift/ev-savings-calculator/internal/domain"
)

// Formatter renders a calculation result for one output target.
// Implementations are pure: no side effects besides deterministic
// formatting.
type Formatter interface {
	Format(result *domain.CalculationResult) ([]byte, error)
	// Name returns a short identifier for flag matching and logging.
	Name() string
}

var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) (Formatter, error) {
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown output format %q", name)
}
