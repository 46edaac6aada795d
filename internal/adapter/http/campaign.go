package httpadapter

import (
	"encoding/json"
	"net/http"

	"icp-crowdfunding/internal/core/port"
)

type createCampaignReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	GoalAmount  uint64 `json:"goal_amount"`
	Deadline    uint64 `json:"deadline"`
}

type createCampaignResp struct {
	ID uint64 `json:"id"`
}

type contributeReq struct {
	Amount *uint64 `json:"amount"`
}

// handleCreateCampaign creates a campaign owned by the caller. Invalid JSON
// results in HTTP 400. On success it returns HTTP 201 with the new id.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	id, err := h.svc.CreateCampaign(r.Context(), principalFrom(r.Context()), port.CreateCampaignReq{
		Name:        req.Name,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
		Deadline:    req.Deadline,
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, createCampaignResp{ID: id})
}

// handleListCampaigns returns campaigns, optionally narrowed by the `q`
// text search and `status` filter and ordered by `sort`. Without parameters
// every campaign is returned in ascending id order. Unknown status or sort
// values result in HTTP 400.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, err := port.ParseListFilter(q.Get("q"), q.Get("status"), q.Get("sort"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	views, err := h.svc.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	resp := make([]campaignResp, 0, len(views))
	for _, v := range views {
		resp = append(resp, toCampaignResp(v))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleGetCampaign returns one campaign. Unknown ids result in HTTP 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	view, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResp(*view))
}

// handleContribute records a contribution from the caller. A missing amount
// is HTTP 400; a closed or expired campaign is HTTP 409. On success it
// returns HTTP 204.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	var req contributeReq
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount == nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err = h.svc.Contribute(r.Context(), principalFrom(r.Context()), id, *req.Amount); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleIsSuccessful reports whether the campaign met its goal. Before the
// deadline it responds with HTTP 409.
func (h *Handler) handleIsSuccessful(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	ok, err := h.svc.IsSuccessful(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"successful": ok})
}

// handleGetContribution returns the caller's total for the campaign.
func (h *Handler) handleGetContribution(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	amount, err := h.svc.GetContribution(r.Context(), principalFrom(r.Context()), id)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]uint64{"amount": amount})
}
