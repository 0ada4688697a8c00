// Package httpapi exposes the application services over a JSON REST API.
// Routing, response shaping, and error mapping live here; all business rules
// stay in the usecase layer.
package httpapi

import (
	"net/http"

	"github.com/vmcoelho/bancaflow-backend/internal/usecase/auth"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/ledger"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/objective"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/reporting"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/riskprofile"
)

// Server implements the REST API over the usecase services
type Server struct {
	AuthService        *auth.AuthService
	LedgerService      *ledger.LedgerService
	ObjectiveService   *objective.ObjectiveService
	RiskProfileService *riskprofile.RiskProfileService
	ReportingService   *reporting.ReportingService
}

// NewServer creates a new API server instance
func NewServer(
	authService *auth.AuthService,
	ledgerService *ledger.LedgerService,
	objectiveService *objective.ObjectiveService,
	riskProfileService *riskprofile.RiskProfileService,
	reportingService *reporting.ReportingService,
) *Server {
	return &Server{
		AuthService:        authService,
		LedgerService:      ledgerService,
		ObjectiveService:   objectiveService,
		RiskProfileService: riskProfileService,
		ReportingService:   reportingService,
	}
}

// Router builds the HTTP handler with all routes registered.
// Everything except /health and the auth endpoints requires a bearer token.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /api/v1/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	mux.Handle("POST /api/v1/auth/logout", s.requireAuth(s.handleLogout))

	mux.Handle("GET /api/v1/transactions", s.requireAuth(s.handleListTransactions))
	mux.Handle("POST /api/v1/transactions", s.requireAuth(s.handleRecordTransaction))
	mux.Handle("PUT /api/v1/transactions/{id}", s.requireAuth(s.handleEditTransaction))
	mux.Handle("DELETE /api/v1/transactions/{id}", s.requireAuth(s.handleDeleteTransaction))
	mux.Handle("GET /api/v1/transactions/summary", s.requireAuth(s.handleBalanceSummary))
	mux.Handle("GET /api/v1/transactions/monthly", s.requireAuth(s.handleMonthlySummary))
	mux.Handle("GET /api/v1/transactions/categories", s.requireAuth(s.handleCategorySummary))

	mux.Handle("GET /api/v1/objectives", s.requireAuth(s.handleListObjectives))
	mux.Handle("POST /api/v1/objectives", s.requireAuth(s.handleCreateObjective))
	mux.Handle("PUT /api/v1/objectives/{id}", s.requireAuth(s.handleUpdateObjective))
	mux.Handle("DELETE /api/v1/objectives/{id}", s.requireAuth(s.handleDeleteObjective))

	mux.Handle("GET /api/v1/risk-profile", s.requireAuth(s.handleGetRiskProfile))
	mux.Handle("PUT /api/v1/risk-profile", s.requireAuth(s.handleUpdateRiskProfile))
	mux.Handle("POST /api/v1/risk-profile/initialize", s.requireAuth(s.handleInitializeRiskProfile))
	mux.Handle("POST /api/v1/risk-profile/reset", s.requireAuth(s.handleResetRiskProfile))

	mux.Handle("GET /api/v1/dashboard", s.requireAuth(s.handleDashboard))

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
