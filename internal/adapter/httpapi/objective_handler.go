package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vmcoelho/bancaflow-backend/internal/usecase/objective"
)

type createObjectiveRequest struct {
	Title         string `json:"title"`
	TargetAmount  string `json:"target_amount"`
	CurrentAmount string `json:"current_amount"`
	Deadline      string `json:"deadline"` // RFC3339
}

type updateObjectiveRequest struct {
	Title         *string `json:"title"`
	TargetAmount  *string `json:"target_amount"`
	CurrentAmount *string `json:"current_amount"`
	Deadline      *string `json:"deadline"`
}

type objectiveResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	Deadline      time.Time `json:"deadline"`
	CreatedAt     time.Time `json:"created_at"`
	Progress      string    `json:"progress"`
	DaysRemaining int       `json:"days_remaining"`
	Color         string    `json:"color"`
}

func toObjectiveResponse(p objective.ObjectiveProgress) objectiveResponse {
	return objectiveResponse{
		ID:            p.Objective.ID.String(),
		Title:         p.Objective.Title,
		TargetAmount:  p.Objective.TargetAmount.String(),
		CurrentAmount: p.Objective.CurrentAmount.String(),
		Deadline:      p.Objective.Deadline,
		CreatedAt:     p.Objective.CreatedAt,
		Progress:      p.Percent.String(),
		DaysRemaining: p.DaysRemaining,
		Color:         string(p.Color),
	}
}

func (s *Server) handleCreateObjective(w http.ResponseWriter, r *http.Request) {
	var req createObjectiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	target, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		writeBadRequest(w, "invalid target_amount format")
		return
	}

	current := decimal.Zero
	if req.CurrentAmount != "" {
		current, err = decimal.NewFromString(req.CurrentAmount)
		if err != nil {
			writeBadRequest(w, "invalid current_amount format")
			return
		}
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		writeBadRequest(w, "invalid deadline format, expected RFC3339")
		return
	}

	obj, err := s.ObjectiveService.CreateObjective(r.Context(), objective.CreateObjectiveInput{
		UserID:        userIDFrom(r),
		Title:         req.Title,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	progress, err := s.ObjectiveService.GetObjective(r.Context(), userIDFrom(r), obj.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toObjectiveResponse(*progress))
}

func (s *Server) handleUpdateObjective(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid objective id")
		return
	}

	var req updateObjectiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	var patch objective.ObjectivePatch
	patch.Title = req.Title
	if req.TargetAmount != nil {
		target, err := decimal.NewFromString(*req.TargetAmount)
		if err != nil {
			writeBadRequest(w, "invalid target_amount format")
			return
		}
		patch.TargetAmount = &target
	}
	if req.CurrentAmount != nil {
		current, err := decimal.NewFromString(*req.CurrentAmount)
		if err != nil {
			writeBadRequest(w, "invalid current_amount format")
			return
		}
		patch.CurrentAmount = &current
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			writeBadRequest(w, "invalid deadline format, expected RFC3339")
			return
		}
		patch.Deadline = &deadline
	}

	if _, err := s.ObjectiveService.UpdateObjective(r.Context(), userIDFrom(r), id, patch); err != nil {
		writeError(w, err)
		return
	}

	progress, err := s.ObjectiveService.GetObjective(r.Context(), userIDFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toObjectiveResponse(*progress))
}

func (s *Server) handleDeleteObjective(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid objective id")
		return
	}

	if err := s.ObjectiveService.DeleteObjective(r.Context(), userIDFrom(r), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListObjectives(w http.ResponseWriter, r *http.Request) {
	objectives, err := s.ObjectiveService.ListObjectives(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	result := make([]objectiveResponse, 0, len(objectives))
	for _, p := range objectives {
		result = append(result, toObjectiveResponse(p))
	}

	writeJSON(w, http.StatusOK, result)
}
