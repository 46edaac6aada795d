package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLedgerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLedgerMetrics(reg)

	m.CampaignCreated()
	m.ContributionAccepted(40)
	m.ContributionAccepted(2)
	m.ContributionRejected("expired")

	assert.InDelta(t, 1, testutil.ToFloat64(m.campaignsCreated), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.contributionsAccepted), 0)
	assert.InDelta(t, 42, testutil.ToFloat64(m.amountRaised), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.contributionsRejected.WithLabelValues("expired")), 0)
}
