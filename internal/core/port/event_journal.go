package port

import (
	"context"

	"icp-crowdfunding/internal/core/domain"
)

// EventJournal is an outbound port that keeps an append-only audit trail of
// ledger activity. The ledger never reads it back. Implementations must be
// safe for concurrent use.
type EventJournal interface {
	Append(ctx context.Context, ev domain.LedgerEvent) error
}

// LedgerMetrics receives counters about ledger activity.
type LedgerMetrics interface {
	CampaignCreated()
	ContributionAccepted(amount uint64)
	ContributionRejected(reason string)
}

// NopJournal discards every event.
type NopJournal struct{}

func (NopJournal) Append(context.Context, domain.LedgerEvent) error { return nil }

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) CampaignCreated()            {}
func (NopMetrics) ContributionAccepted(uint64) {}
func (NopMetrics) ContributionRejected(string) {}
