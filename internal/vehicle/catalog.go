// Package vehicle resolves vehicle attribute records for the comparison
// calculator. The engine never calls this package; it only consumes the
// resolved records. Lookup failures never propagate: unknown identifiers
// produce a flagged fallback estimate so the engine always receives
// well-formed numeric input.
package vehicle

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/evshift/ev-savings-calculator/internal/calculation"
	"github.com/evshift/ev-savings-calculator/internal/domain"
)

// Catalog serves vehicle attribute records from a built-in table fronted
// by a cache.
type Catalog struct {
	entries map[string]domain.VehicleAttributes
	cache   Cache
	logger  calculation.Logger
}

// NewCatalog creates a catalog with the built-in vehicle table. A nil
// cache disables caching.
func NewCatalog(cache Cache) *Catalog {
	return &Catalog{
		entries: builtinVehicles(),
		cache:   cache,
		logger:  calculation.NopLogger{},
	}
}

// SetLogger sets the catalog logger. A nil logger restores the no-op.
func (c *Catalog) SetLogger(l calculation.Logger) {
	if l == nil {
		c.logger = calculation.NopLogger{}
		return
	}
	c.logger = l
}

// Lookup resolves an identifier to vehicle attributes. Unknown identifiers
// return a fallback estimate flagged Estimated; cache failures fall
// through to the catalog.
func (c *Catalog) Lookup(ctx context.Context, identifier string) domain.VehicleAttributes {
	if c.cache != nil {
		if raw, ok := c.cache.Get(ctx, cacheKey(identifier)); ok {
			var attrs domain.VehicleAttributes
			if err := json.Unmarshal([]byte(raw), &attrs); err == nil {
				return attrs
			}
			c.logger.Warnf("discarding corrupt cache entry for %q", identifier)
		}
	}

	attrs, ok := c.entries[identifier]
	if !ok {
		c.logger.Warnf("vehicle %q not in catalog, substituting fallback estimate", identifier)
		attrs = FallbackEstimate(identifier)
	}

	if c.cache != nil {
		if raw, err := json.Marshal(attrs); err == nil {
			if err := c.cache.Set(ctx, cacheKey(identifier), string(raw)); err != nil {
				c.logger.Warnf("failed to cache vehicle %q: %v", identifier, err)
			}
		}
	}
	return attrs
}

func cacheKey(identifier string) string {
	return "vehicle:" + identifier
}

// FallbackEstimate is the documented stand-in record for identifiers the
// catalog cannot resolve: a mid-market petrol hatch at fleet-average
// consumption.
func FallbackEstimate(identifier string) domain.VehicleAttributes {
	return domain.VehicleAttributes{
		ID:        identifier,
		PriceZAR:  decimal.NewFromInt(450000),
		FuelType:  domain.Petrol95,
		Estimated: true,
	}
}

func builtinVehicles() map[string]domain.VehicleAttributes {
	return map[string]domain.VehicleAttributes{
		"polo-1.0tsi": {
			ID: "polo-1.0tsi", Make: "Volkswagen", Model: "Polo 1.0 TSI",
			PriceZAR: decimal.NewFromInt(366600), FuelType: domain.Petrol95,
			ConsumptionPer100Km: decimal.NewFromFloat(5.5),
		},
		"corolla-cross-1.8": {
			ID: "corolla-cross-1.8", Make: "Toyota", Model: "Corolla Cross 1.8 XS",
			PriceZAR: decimal.NewFromInt(414800), FuelType: domain.Petrol95,
			ConsumptionPer100Km: decimal.NewFromFloat(6.8),
		},
		"hilux-2.4gd6": {
			ID: "hilux-2.4gd6", Make: "Toyota", Model: "Hilux 2.4 GD-6",
			PriceZAR: decimal.NewFromInt(562200), FuelType: domain.Diesel,
			ConsumptionPer100Km: decimal.NewFromFloat(7.9),
		},
		"byd-atto3": {
			ID: "byd-atto3", Make: "BYD", Model: "Atto 3 Standard",
			PriceZAR: decimal.NewFromInt(548000), Electric: true,
			EnergyPerKmKWh: decimal.NewFromFloat(0.16),
		},
		"gwm-ora-03": {
			ID: "gwm-ora-03", Make: "GWM", Model: "Ora 03 300 Super Luxury",
			PriceZAR: decimal.NewFromInt(686950), Electric: true,
			EnergyPerKmKWh: decimal.NewFromFloat(0.167),
		},
		"volvo-ex30": {
			ID: "volvo-ex30", Make: "Volvo", Model: "EX30 Single Motor",
			PriceZAR: decimal.NewFromInt(791900), Electric: true,
			EnergyPerKmKWh: decimal.NewFromFloat(0.17),
		},
	}
}
