package domain

// EventKind names what happened to a campaign.
type EventKind string

const (
	EventCampaignCreated      EventKind = "campaign_created"
	EventContributionRecorded EventKind = "contribution_recorded"
	EventContributionRejected EventKind = "contribution_rejected"
	EventCampaignExpired      EventKind = "campaign_expired"
)

// LedgerEvent is an audit record of a ledger mutation or rejected attempt.
type LedgerEvent struct {
	Token      string
	Kind       EventKind
	CampaignID uint64
	Principal  Principal
	Amount     uint64
	At         uint64 // unix nanoseconds
	Reason     string // empty unless the attempt was rejected
}
