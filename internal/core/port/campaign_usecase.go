package port

import (
	"context"

	"icp-crowdfunding/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the
// crowdfunding ledger. This interface represents the primary port into the
// application domain. The caller identity is always passed explicitly by
// the inbound adapter.
type CampaignUseCase interface {
	// CreateCampaign stores a new campaign owned by caller and returns its id.
	CreateCampaign(ctx context.Context, caller domain.Principal, req CreateCampaignReq) (uint64, error)

	// Contribute records amount from caller. It fails with
	// domain.ErrNotFound, domain.ErrInactive, domain.ErrExpired or
	// domain.ErrAmountOverflow.
	Contribute(ctx context.Context, caller domain.Principal, campaignID, amount uint64) error

	// GetCampaign returns the campaign or domain.ErrNotFound.
	GetCampaign(ctx context.Context, campaignID uint64) (*CampaignView, error)

	// ListCampaigns returns the campaigns passing filter. The zero filter
	// returns every campaign ordered by id.
	ListCampaigns(ctx context.Context, filter ListFilter) ([]CampaignView, error)

	// IsSuccessful reports whether the campaign met its goal once its
	// deadline passed. Before the deadline it fails with
	// domain.ErrStillActive.
	IsSuccessful(ctx context.Context, campaignID uint64) (bool, error)

	// GetContribution returns caller's total for the campaign, 0 if none.
	GetContribution(ctx context.Context, caller domain.Principal, campaignID uint64) (uint64, error)
}

// CreateCampaignReq carries the creator-supplied campaign fields.
type CreateCampaignReq struct {
	Name        string
	Description string
	GoalAmount  uint64
	Deadline    uint64
}

// CampaignView is a campaign snapshot together with values derived at the
// time it was read. It is a DTO used by the HTTP layer.
type CampaignView struct {
	Campaign    domain.Campaign
	Progress    float64
	RemainingNs uint64
}
