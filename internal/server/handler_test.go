package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/evshift/ev-savings-calculator/internal/calculation"
	"github.com/evshift/ev-savings-calculator/internal/config"
	"github.com/evshift/ev-savings-calculator/internal/vehicle"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	engine := calculation.NewEngine(config.DefaultRateTable())
	catalog := vehicle.NewCatalog(vehicle.NewMemoryCache())
	return New(engine, catalog, nil, zap.NewNop().Sugar(), "test")
}

func postJSON(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleCalculate(t *testing.T) {
	rec := postJSON(t, newTestServer(t), "/calculate", `{
		"rewardLevel": 3,
		"fuelType": "petrol95",
		"monthlyDistanceKm": 1500,
		"hasInsurance": true,
		"hasFinancing": true,
		"hasSolar": false,
		"hasNoBank": false,
		"loanTermYears": 5
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		PresentValueRewards float64 `json:"presentValueRewards"`
		CarbonTaxSavings    float64 `json:"carbonTaxSavings"`
		FuelSpendSavings    float64 `json:"fuelSpendSavings"`
		UpfrontSavings      float64 `json:"upfrontSavings"`
		TotalSavings        float64 `json:"totalSavings"`
		Error               string  `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Empty(t, resp.Error)
	assert.InDelta(t, 14489.53, resp.PresentValueRewards, 0.01)
	assert.InDelta(t, 129574.95, resp.TotalSavings, 0.01)
	assert.InDelta(t, resp.UpfrontSavings, resp.PresentValueRewards+resp.CarbonTaxSavings, 0.011)
	assert.InDelta(t, resp.TotalSavings, resp.UpfrontSavings+resp.FuelSpendSavings, 0.011)
}

// The loan term defaults to 5 years when the field is absent.
func TestHandleCalculateDefaultsTerm(t *testing.T) {
	rec := postJSON(t, newTestServer(t), "/calculate", `{
		"rewardLevel": 3,
		"fuelType": "petrol95",
		"monthlyDistanceKm": 1500,
		"hasInsurance": true,
		"hasFinancing": true
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		TotalSavings float64 `json:"totalSavings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 129574.95, resp.TotalSavings, 0.01)
}

// Malformed or missing input yields a well-formed zeroed structure plus an
// error indicator, never a bare failure.
func TestHandleCalculateBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"fuelType":`},
		{name: "missing distance", body: `{"rewardLevel": 3, "fuelType": "petrol95"}`},
		{name: "negative distance", body: `{"rewardLevel": 3, "fuelType": "petrol95", "monthlyDistanceKm": -10}`},
		{name: "missing fuel type", body: `{"rewardLevel": 3, "monthlyDistanceKm": 1500}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, newTestServer(t), "/calculate", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp struct {
				TotalSavings     *float64 `json:"totalSavings"`
				StandardBenefits *struct {
					UpfrontSavings *float64 `json:"upfrontSavings"`
				} `json:"standardBenefits"`
				CO2 *struct {
					ICEMonthly *float64 `json:"iceMonthly"`
				} `json:"co2"`
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.NotEmpty(t, resp.Error)
			// Zeroed fields are present, not omitted.
			require.NotNil(t, resp.TotalSavings)
			assert.Zero(t, *resp.TotalSavings)
			require.NotNil(t, resp.StandardBenefits)
			require.NotNil(t, resp.StandardBenefits.UpfrontSavings)
			assert.Zero(t, *resp.StandardBenefits.UpfrontSavings)
			require.NotNil(t, resp.CO2)
			require.NotNil(t, resp.CO2.ICEMonthly)
			assert.Zero(t, *resp.CO2.ICEMonthly)
		})
	}
}

func TestHandleCompare(t *testing.T) {
	rec := postJSON(t, newTestServer(t), "/compare", `{
		"iceVehicleId": "hilux-2.4gd6",
		"evVehicleId": "byd-atto3",
		"monthlyDistanceKm": 1800,
		"financing": {"annualInterestRate": 0.115, "termMonths": 60}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Comparison struct {
			ICEMonthlyTotal float64 `json:"iceMonthlyTotal"`
			EVMonthlyTotal  float64 `json:"evMonthlyTotal"`
			MonthlySavings  float64 `json:"monthlySavings"`
		} `json:"comparison"`
		ICEVehicle struct {
			Estimated bool `json:"estimated"`
		} `json:"iceVehicle"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Empty(t, resp.Error)
	assert.False(t, resp.ICEVehicle.Estimated)
	assert.InDelta(t, resp.Comparison.MonthlySavings,
		resp.Comparison.ICEMonthlyTotal-resp.Comparison.EVMonthlyTotal, 0.011)
}

// Unknown vehicle identifiers resolve to flagged fallback estimates, never
// an error.
func TestHandleCompareFallbackVehicle(t *testing.T) {
	rec := postJSON(t, newTestServer(t), "/compare", `{
		"iceVehicleId": "no-such-vehicle",
		"evVehicleId": "byd-atto3",
		"monthlyDistanceKm": 1500,
		"financing": {"annualInterestRate": 0.115, "termMonths": 60}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		ICEVehicle struct {
			Estimated bool `json:"estimated"`
		} `json:"iceVehicle"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.ICEVehicle.Estimated)
}

func TestHandleCompareBadInput(t *testing.T) {
	rec := postJSON(t, newTestServer(t), "/compare", `{"monthlyDistanceKm": 1500}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestHealthAndVersion(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test")
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"), "third request within the window must be rejected")
	assert.True(t, rl.Allow("10.0.0.2"), "budgets are per client")
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	handler := RateLimitMiddleware(rl, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
