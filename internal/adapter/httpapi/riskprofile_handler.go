package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/vmcoelho/bancaflow-backend/internal/domain"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/riskprofile"
)

type updateRiskProfileRequest struct {
	InitialBalance *string `json:"initial_balance"`
	RiskLevel      *int    `json:"risk_level"`
	StopLoss       *string `json:"stop_loss"`
	ProfitTarget   *string `json:"profit_target"`
	ProfileType    *string `json:"profile_type"`
}

type initializeRiskProfileRequest struct {
	InitialBalance string `json:"initial_balance"`
}

type riskProfileResponse struct {
	InitialBalance string `json:"initial_balance"`
	RiskLevel      int    `json:"risk_level"`
	StopLoss       string `json:"stop_loss"`
	ProfitTarget   string `json:"profit_target"`
	ProfileType    string `json:"profile_type"`
	ProfileTitle   string `json:"profile_title"`
	ProfileColor   string `json:"profile_color"`
	IsInitialized  bool   `json:"is_initialized"`
}

func toRiskProfileResponse(p *domain.RiskProfile) riskProfileResponse {
	meta := domain.MetaFor(p.ProfileType)
	return riskProfileResponse{
		InitialBalance: p.InitialBalance.String(),
		RiskLevel:      p.RiskLevel,
		StopLoss:       p.StopLoss.String(),
		ProfitTarget:   p.ProfitTarget.String(),
		ProfileType:    string(p.ProfileType),
		ProfileTitle:   meta.Title,
		ProfileColor:   meta.Color,
		IsInitialized:  p.IsInitialized,
	}
}

func (s *Server) handleGetRiskProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.RiskProfileService.GetProfile(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRiskProfileResponse(profile))
}

func (s *Server) handleUpdateRiskProfile(w http.ResponseWriter, r *http.Request) {
	var req updateRiskProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	var patch riskprofile.RiskProfilePatch
	patch.RiskLevel = req.RiskLevel
	if req.InitialBalance != nil {
		balance, err := decimal.NewFromString(*req.InitialBalance)
		if err != nil {
			writeBadRequest(w, "invalid initial_balance format")
			return
		}
		patch.InitialBalance = &balance
	}
	if req.StopLoss != nil {
		stopLoss, err := decimal.NewFromString(*req.StopLoss)
		if err != nil {
			writeBadRequest(w, "invalid stop_loss format")
			return
		}
		patch.StopLoss = &stopLoss
	}
	if req.ProfitTarget != nil {
		target, err := decimal.NewFromString(*req.ProfitTarget)
		if err != nil {
			writeBadRequest(w, "invalid profit_target format")
			return
		}
		patch.ProfitTarget = &target
	}
	if req.ProfileType != nil {
		profileType := domain.ProfileType(*req.ProfileType)
		patch.ProfileType = &profileType
	}

	profile, err := s.RiskProfileService.UpdateProfile(r.Context(), userIDFrom(r), patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRiskProfileResponse(profile))
}

func (s *Server) handleInitializeRiskProfile(w http.ResponseWriter, r *http.Request) {
	var req initializeRiskProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	balance, err := decimal.NewFromString(req.InitialBalance)
	if err != nil {
		writeBadRequest(w, "invalid initial_balance format")
		return
	}

	profile, err := s.RiskProfileService.InitializeDefault(r.Context(), userIDFrom(r), balance)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRiskProfileResponse(profile))
}

func (s *Server) handleResetRiskProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.RiskProfileService.Reset(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRiskProfileResponse(profile))
}
