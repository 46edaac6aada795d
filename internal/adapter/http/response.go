package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"icp-crowdfunding/internal/core/domain"
	"icp-crowdfunding/internal/core/port"
)

type errorResp struct {
	Error string `json:"error"`
}

type contributorResp struct {
	Principal string `json:"principal"`
	Amount    uint64 `json:"amount"`
}

type campaignResp struct {
	ID              uint64            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Creator         string            `json:"creator"`
	GoalAmount      uint64            `json:"goal_amount"`
	CurrentAmount   uint64            `json:"current_amount"`
	Deadline        uint64            `json:"deadline"`
	IsActive        bool              `json:"is_active"`
	Contributors    []contributorResp `json:"contributors"`
	ProgressPercent float64           `json:"progress_percent"`
	RemainingNs     uint64            `json:"remaining_ns"`
}

func toCampaignResp(v port.CampaignView) campaignResp {
	c := v.Campaign
	list := c.ContributorList()
	contributors := make([]contributorResp, 0, len(list))
	for _, e := range list {
		contributors = append(contributors, contributorResp{Principal: e.Principal.String(), Amount: e.Amount})
	}
	return campaignResp{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		Creator:         c.Creator.String(),
		GoalAmount:      c.GoalAmount,
		CurrentAmount:   c.CurrentAmount,
		Deadline:        c.Deadline,
		IsActive:        c.IsActive,
		Contributors:    contributors,
		ProgressPercent: v.Progress,
		RemainingNs:     v.RemainingNs,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResp{Error: msg})
}

// writeDomainError maps ledger errors onto HTTP statuses. The body carries
// the ledger's own message. Anything unexpected is logged and reported as
// HTTP 500.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	for _, m := range []struct {
		target error
		status int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrInactive, http.StatusConflict},
		{domain.ErrExpired, http.StatusConflict},
		{domain.ErrStillActive, http.StatusConflict},
		{domain.ErrAmountOverflow, http.StatusUnprocessableEntity},
	} {
		if errors.Is(err, m.target) {
			h.writeError(w, m.status, m.target.Error())
			return
		}
	}
	h.logger.Error("internal error", slog.Any("error", err))
	h.writeError(w, http.StatusInternalServerError, "internal error")
}

// campaignID parses the {id} path parameter.
func campaignID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
}
