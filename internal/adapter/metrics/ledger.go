package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LedgerMetrics implements port.LedgerMetrics with Prometheus collectors.
type LedgerMetrics struct {
	campaignsCreated      prometheus.Counter
	contributionsAccepted prometheus.Counter
	contributionsRejected *prometheus.CounterVec
	amountRaised          prometheus.Counter
}

// NewLedgerMetrics registers the ledger collectors on reg.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	f := promauto.With(reg)
	return &LedgerMetrics{
		campaignsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "crowdfunding_campaigns_created_total",
			Help: "total number of campaigns created",
		}),
		contributionsAccepted: f.NewCounter(prometheus.CounterOpts{
			Name: "crowdfunding_contributions_accepted_total",
			Help: "total number of contributions recorded",
		}),
		contributionsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "crowdfunding_contributions_rejected_total",
			Help: "total number of rejected contribution attempts by reason",
		}, []string{"reason"}),
		amountRaised: f.NewCounter(prometheus.CounterOpts{
			Name: "crowdfunding_amount_raised_total",
			Help: "sum of all recorded contribution amounts",
		}),
	}
}

func (m *LedgerMetrics) CampaignCreated() {
	m.campaignsCreated.Inc()
}

func (m *LedgerMetrics) ContributionAccepted(amount uint64) {
	m.contributionsAccepted.Inc()
	m.amountRaised.Add(float64(amount))
}

func (m *LedgerMetrics) ContributionRejected(reason string) {
	m.contributionsRejected.WithLabelValues(reason).Inc()
}
