package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/evshift/ev-savings-calculator/internal/domain"
)

// calculateResponse is the /calculate body. On error the result fields are
// present and zeroed rather than omitted, so clients always receive a
// well-formed structure.
type calculateResponse struct {
	domain.CalculationResult
	Error string `json:"error,omitempty"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var in domain.CalculationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.log.Infow("rejecting calculate request", "reason", "invalid body", "error", err)
		s.writeJSON(w, http.StatusBadRequest, calculateResponse{
			CalculationResult: *domain.ZeroResult(),
			Error:             "invalid request body",
		})
		return
	}

	if err := validateCalculationInput(in); err != nil {
		s.log.Infow("rejecting calculate request", "reason", err.Error())
		s.writeJSON(w, http.StatusBadRequest, calculateResponse{
			CalculationResult: *domain.ZeroResult(),
			Error:             err.Error(),
		})
		return
	}

	result := s.engine.ComputeSavings(in)
	s.writeJSON(w, http.StatusOK, calculateResponse{CalculationResult: *result})
}

// validateCalculationInput covers the boundary checks only; category
// values the engine can default (fuel type, reward tier) are not rejected
// here.
func validateCalculationInput(in domain.CalculationInput) error {
	if in.MonthlyDistanceKm.LessThanOrEqual(decimal.Zero) {
		return errors.New("monthlyDistanceKm must be positive")
	}
	if in.FuelType == "" {
		return errors.New("fuelType is required")
	}
	if in.RewardLevel < 0 {
		return errors.New("rewardLevel must not be negative")
	}
	if in.LoanTermYears < 0 {
		return errors.New("loanTermYears must not be negative")
	}
	return nil
}

// compareRequest accepts either catalog identifiers or inline attribute
// records for each vehicle.
type compareRequest struct {
	ICEVehicleID string                    `json:"iceVehicleId,omitempty"`
	EVVehicleID  string                    `json:"evVehicleId,omitempty"`
	ICEVehicle   *domain.VehicleAttributes `json:"iceVehicle,omitempty"`
	EVVehicle    *domain.VehicleAttributes `json:"evVehicle,omitempty"`

	MonthlyDistanceKm decimal.Decimal       `json:"monthlyDistanceKm"`
	Financing         domain.FinancingTerms `json:"financing"`
}

type compareResponse struct {
	Comparison *domain.VehicleComparison `json:"comparison,omitempty"`
	ICEVehicle domain.VehicleAttributes  `json:"iceVehicle"`
	EVVehicle  domain.VehicleAttributes  `json:"evVehicle"`
	Error      string                    `json:"error,omitempty"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, compareResponse{Error: "invalid request body"})
		return
	}

	if err := validateCompareRequest(req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, compareResponse{Error: err.Error()})
		return
	}

	ice := s.resolveVehicle(r, req.ICEVehicle, req.ICEVehicleID)
	ev := s.resolveVehicle(r, req.EVVehicle, req.EVVehicleID)

	comparison := s.engine.CompareVehicles(ice, ev, req.MonthlyDistanceKm, req.Financing)
	s.writeJSON(w, http.StatusOK, compareResponse{
		Comparison: comparison,
		ICEVehicle: ice,
		EVVehicle:  ev,
	})
}

func validateCompareRequest(req compareRequest) error {
	if req.ICEVehicle == nil && req.ICEVehicleID == "" {
		return errors.New("iceVehicle or iceVehicleId is required")
	}
	if req.EVVehicle == nil && req.EVVehicleID == "" {
		return errors.New("evVehicle or evVehicleId is required")
	}
	if req.MonthlyDistanceKm.LessThanOrEqual(decimal.Zero) {
		return errors.New("monthlyDistanceKm must be positive")
	}
	if req.Financing.TermMonths <= 0 {
		return errors.New("financing.termMonths must be positive")
	}
	if req.Financing.AnnualInterestRate.IsNegative() {
		return errors.New("financing.annualInterestRate must not be negative")
	}
	return nil
}

func (s *Server) resolveVehicle(r *http.Request, inline *domain.VehicleAttributes, id string) domain.VehicleAttributes {
	if inline != nil {
		return *inline
	}
	return s.catalog.Lookup(r.Context(), id)
}
