package httpapi

import "net/http"

type dashboardResponse struct {
	Balance                  string `json:"balance"`
	TotalDeposits            string `json:"total_deposits"`
	TotalWithdrawals         string `json:"total_withdrawals"`
	CumulativeInitialBalance string `json:"cumulative_initial_balance"`
	OperationResult          string `json:"operation_result"`
	RealProfit               string `json:"real_profit"`
	ROI                      string `json:"roi,omitempty"` // omitted when undefined
	ROIDefined               bool   `json:"roi_defined"`
	AutomaticProfitTarget    string `json:"automatic_profit_target"`
	StopLossTriggered        bool   `json:"stop_loss_triggered"`
	StopLossDeficit          string `json:"stop_loss_deficit"`
	ProfitTargetAchieved     bool   `json:"profit_target_achieved"`
	ProfitTargetSurplus      string `json:"profit_target_surplus"`
	HasInitializationIssue   bool   `json:"has_initialization_issue"`
	ProfileType              string `json:"profile_type"`
	ProfileTitle             string `json:"profile_title"`
	ProfileColor             string `json:"profile_color"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := s.ReportingService.BuildDashboard(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := dashboardResponse{
		Balance:                  summary.Balance.String(),
		TotalDeposits:            summary.TotalDeposits.String(),
		TotalWithdrawals:         summary.TotalWithdrawals.String(),
		CumulativeInitialBalance: summary.CumulativeInitialBalance.String(),
		OperationResult:          summary.OperationResult.String(),
		RealProfit:               summary.RealProfit.String(),
		ROIDefined:               summary.ROIDefined,
		AutomaticProfitTarget:    summary.AutomaticProfitTarget.String(),
		StopLossTriggered:        summary.StopLoss.Triggered,
		StopLossDeficit:          summary.StopLoss.Deficit.String(),
		ProfitTargetAchieved:     summary.ProfitTarget.Achieved,
		ProfitTargetSurplus:      summary.ProfitTarget.Surplus.String(),
		HasInitializationIssue:   summary.HasInitializationIssue,
		ProfileType:              string(summary.ProfileType),
		ProfileTitle:             summary.ProfileMeta.Title,
		ProfileColor:             summary.ProfileMeta.Color,
	}
	if summary.ROIDefined {
		resp.ROI = summary.ROI.String()
	}

	writeJSON(w, http.StatusOK, resp)
}
