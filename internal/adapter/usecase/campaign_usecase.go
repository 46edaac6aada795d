package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"icp-crowdfunding/internal/core/domain"
	"icp-crowdfunding/internal/core/ledger"
	"icp-crowdfunding/internal/core/port"
)

// CampaignUseCase provides the crowdfunding operations. It reads the clock
// once per call and hands the timestamp to the ledger, then records what
// happened in the journal and metrics.
type CampaignUseCase struct {
	ledger  *ledger.CampaignLedger
	clock   port.Clock
	journal port.EventJournal
	metrics port.LedgerMetrics
	logger  *slog.Logger
}

// Option customises a CampaignUseCase.
type Option func(*CampaignUseCase)

// WithJournal sets the audit journal. The default discards events.
func WithJournal(j port.EventJournal) Option {
	return func(u *CampaignUseCase) { u.journal = j }
}

// WithMetrics sets the metrics sink. The default discards observations.
func WithMetrics(m port.LedgerMetrics) Option {
	return func(u *CampaignUseCase) { u.metrics = m }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(u *CampaignUseCase) { u.logger = l }
}

// NewCampaignUseCase creates a new usecase on top of the given ledger.
func NewCampaignUseCase(l *ledger.CampaignLedger, clock port.Clock, opts ...Option) *CampaignUseCase {
	u := &CampaignUseCase{
		ledger:  l,
		clock:   clock,
		journal: port.NopJournal{},
		metrics: port.NopMetrics{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateCampaign stores a campaign owned by caller.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, caller domain.Principal, req port.CreateCampaignReq) (uint64, error) {
	id := u.ledger.Create(req.Name, req.Description, req.GoalAmount, req.Deadline, caller)
	u.metrics.CampaignCreated()
	u.record(ctx, domain.LedgerEvent{
		Kind:       domain.EventCampaignCreated,
		CampaignID: id,
		Principal:  caller,
		Amount:     req.GoalAmount,
		At:         u.clock.Now(),
	})
	u.logger.Debug("campaign created", slog.Uint64("campaign_id", id), slog.String("creator", caller.String()))
	return id, nil
}

// Contribute records a contribution. A contribution arriving after the
// deadline closes the campaign and is journalled as an expiry.
func (u *CampaignUseCase) Contribute(ctx context.Context, caller domain.Principal, campaignID, amount uint64) error {
	now := u.clock.Now()
	ev := domain.LedgerEvent{
		Kind:       domain.EventContributionRecorded,
		CampaignID: campaignID,
		Principal:  caller,
		Amount:     amount,
		At:         now,
	}

	err := u.ledger.Contribute(campaignID, amount, caller, now)
	if err != nil {
		reason := rejectReason(err)
		u.metrics.ContributionRejected(reason)
		ev.Kind = domain.EventContributionRejected
		if errors.Is(err, domain.ErrExpired) {
			ev.Kind = domain.EventCampaignExpired
		}
		ev.Reason = reason
		if !errors.Is(err, domain.ErrNotFound) {
			u.record(ctx, ev)
		}
		return err
	}

	u.metrics.ContributionAccepted(amount)
	u.record(ctx, ev)
	return nil
}

// GetCampaign returns a snapshot of the campaign.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, campaignID uint64) (*port.CampaignView, error) {
	c, err := u.ledger.Get(campaignID)
	if err != nil {
		return nil, err
	}
	view := u.view(c, u.clock.Now())
	return &view, nil
}

// ListCampaigns returns the campaigns passing filter. Status filtering and
// the derived fields use the same clock reading.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, filter port.ListFilter) ([]port.CampaignView, error) {
	now := u.clock.Now()
	campaigns := u.ledger.List()
	views := make([]port.CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		if !filter.Match(c, now) {
			continue
		}
		views = append(views, u.view(c, now))
	}
	filter.Order(views)
	return views, nil
}

// IsSuccessful reports whether the campaign reached its goal.
func (u *CampaignUseCase) IsSuccessful(ctx context.Context, campaignID uint64) (bool, error) {
	return u.ledger.IsSuccessful(campaignID, u.clock.Now())
}

// GetContribution returns caller's recorded total for the campaign.
func (u *CampaignUseCase) GetContribution(ctx context.Context, caller domain.Principal, campaignID uint64) (uint64, error) {
	return u.ledger.Contribution(campaignID, caller)
}

func (u *CampaignUseCase) view(c domain.Campaign, now uint64) port.CampaignView {
	return port.CampaignView{
		Campaign:    c,
		Progress:    c.Progress(),
		RemainingNs: c.Remaining(now),
	}
}

// record appends ev to the journal. A journal failure is logged and does
// not change the outcome of the ledger operation.
func (u *CampaignUseCase) record(ctx context.Context, ev domain.LedgerEvent) {
	ev.Token = uuid.NewString()
	if err := u.journal.Append(ctx, ev); err != nil {
		u.logger.Error("journal append error",
			slog.String("kind", string(ev.Kind)),
			slog.Uint64("campaign_id", ev.CampaignID),
			slog.Any("error", err))
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInactive):
		return "inactive"
	case errors.Is(err, domain.ErrExpired):
		return "expired"
	case errors.Is(err, domain.ErrAmountOverflow):
		return "overflow"
	default:
		return "unknown"
	}
}
