package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vmcoelho/bancaflow-backend/internal/domain"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/ledger"
)

// Amounts travel as strings so the decimal representation is never mangled
// by a float round-trip on either side of the wire.
type recordTransactionRequest struct {
	Kind          string `json:"kind"`
	Amount        string `json:"amount"`
	Category      string `json:"category"`
	Timestamp     string `json:"timestamp"` // RFC3339, empty means now
	IsInitialBank bool   `json:"is_initial_bank"`
	Description   string `json:"description"`
}

type editTransactionRequest struct {
	Kind          *string `json:"kind"`
	Amount        *string `json:"amount"`
	Category      *string `json:"category"`
	Timestamp     *string `json:"timestamp"`
	IsInitialBank *bool   `json:"is_initial_bank"`
	Description   *string `json:"description"`
}

type transactionResponse struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	Amount        string    `json:"amount"`
	Category      string    `json:"category"`
	Timestamp     time.Time `json:"timestamp"`
	IsInitialBank bool      `json:"is_initial_bank"`
	Description   string    `json:"description,omitempty"`
}

type balanceSummaryResponse struct {
	Balance          string `json:"balance"`
	TotalDeposits    string `json:"total_deposits"`
	TotalWithdrawals string `json:"total_withdrawals"`
	InitialBankroll  string `json:"initial_bankroll"`
}

type monthlySummaryResponse struct {
	Month       string `json:"month"`
	Deposits    string `json:"deposits"`
	Withdrawals string `json:"withdrawals"`
	Net         string `json:"net"`
}

type categorySummaryResponse struct {
	Category    string `json:"category"`
	Deposits    string `json:"deposits"`
	Withdrawals string `json:"withdrawals"`
	TotalAbs    string `json:"total_abs"`
}

func toTransactionResponse(tx *domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:            tx.ID.String(),
		Kind:          string(tx.Kind),
		Amount:        tx.Amount.String(),
		Category:      tx.Category,
		Timestamp:     tx.Timestamp,
		IsInitialBank: tx.IsInitialBank,
		Description:   tx.Description,
	}
}

func (s *Server) handleRecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req recordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeBadRequest(w, "invalid amount format")
		return
	}

	var timestamp time.Time
	if req.Timestamp != "" {
		timestamp, err = time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			writeBadRequest(w, "invalid timestamp format, expected RFC3339")
			return
		}
	}

	tx, err := s.LedgerService.RecordTransaction(r.Context(), ledger.RecordTransactionInput{
		UserID:        userIDFrom(r),
		Kind:          domain.TransactionKind(req.Kind),
		Amount:        amount,
		Category:      req.Category,
		Timestamp:     timestamp,
		IsInitialBank: req.IsInitialBank,
		Description:   req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}

func (s *Server) handleEditTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid transaction id")
		return
	}

	var req editTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	var patch ledger.TransactionPatch
	if req.Kind != nil {
		kind := domain.TransactionKind(*req.Kind)
		patch.Kind = &kind
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			writeBadRequest(w, "invalid amount format")
			return
		}
		patch.Amount = &amount
	}
	if req.Timestamp != nil {
		timestamp, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err != nil {
			writeBadRequest(w, "invalid timestamp format, expected RFC3339")
			return
		}
		patch.Timestamp = &timestamp
	}
	patch.Category = req.Category
	patch.IsInitialBank = req.IsInitialBank
	patch.Description = req.Description

	tx, err := s.LedgerService.EditTransaction(r.Context(), userIDFrom(r), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponse(tx))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid transaction id")
		return
	}

	if err := s.LedgerService.DeleteTransaction(r.Context(), userIDFrom(r), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.LedgerService.ListTransactions(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	result := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		result = append(result, toTransactionResponse(tx))
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleBalanceSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.LedgerService.GetBalanceSummary(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceSummaryResponse{
		Balance:          summary.Balance.String(),
		TotalDeposits:    summary.TotalDeposits.String(),
		TotalWithdrawals: summary.TotalWithdrawals.String(),
		InitialBankroll:  summary.InitialBankroll.String(),
	})
}

func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	months, err := s.LedgerService.GetMonthlySummary(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	result := make([]monthlySummaryResponse, 0, len(months))
	for _, m := range months {
		result = append(result, monthlySummaryResponse{
			Month:       m.Month,
			Deposits:    m.Deposits.String(),
			Withdrawals: m.Withdrawals.String(),
			Net:         m.Net.String(),
		})
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCategorySummary(w http.ResponseWriter, r *http.Request) {
	categories, err := s.LedgerService.GetCategorySummary(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	result := make([]categorySummaryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, categorySummaryResponse{
			Category:    c.Category,
			Deposits:    c.Deposits.String(),
			Withdrawals: c.Withdrawals.String(),
			TotalAbs:    c.TotalAbs.String(),
		})
	}

	writeJSON(w, http.StatusOK, result)
}
