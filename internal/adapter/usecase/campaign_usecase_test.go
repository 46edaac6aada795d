package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"icp-crowdfunding/internal/adapter/metrics"
	"icp-crowdfunding/internal/core/domain"
	"icp-crowdfunding/internal/core/ledger"
	"icp-crowdfunding/internal/core/port"
	"icp-crowdfunding/internal/core/port/mocks"
)

type fakeClock struct{ now uint64 }

func (c *fakeClock) Now() uint64 { return c.now }

func kind(k domain.EventKind) interface{} {
	return mock.MatchedBy(func(ev domain.LedgerEvent) bool {
		return ev.Kind == k && ev.Token != ""
	})
}

// TestContributionLifecycle walks a campaign from creation through expiry
// and checks the journal sees every step.
func TestContributionLifecycle(t *testing.T) {
	journal := mocks.NewMockEventJournal(t)
	clock := &fakeClock{now: 100}

	journal.EXPECT().Append(mock.Anything, kind(domain.EventCampaignCreated)).Return(nil).Once()
	journal.EXPECT().Append(mock.Anything, kind(domain.EventContributionRecorded)).Return(nil).Once()
	journal.EXPECT().Append(mock.Anything, kind(domain.EventCampaignExpired)).Return(nil).Once()
	journal.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(ev domain.LedgerEvent) bool {
			return ev.Kind == domain.EventContributionRejected && ev.Reason == "inactive"
		})).
		Return(nil).Once()

	svc := NewCampaignUseCase(ledger.New(), clock, WithJournal(journal))
	ctx := context.Background()

	id, err := svc.CreateCampaign(ctx, "alice", port.CreateCampaignReq{Name: "a", GoalAmount: 100, Deadline: 1100})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	clock.now = 110
	require.NoError(t, svc.Contribute(ctx, "bob", id, 60))

	view, err := svc.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(60), view.Campaign.CurrentAmount)
	assert.InDelta(t, 60, view.Progress, 1e-9)
	assert.Equal(t, uint64(990), view.RemainingNs)

	_, err = svc.IsSuccessful(ctx, id)
	require.ErrorIs(t, err, domain.ErrStillActive)

	clock.now = 2100
	err = svc.Contribute(ctx, "bob", id, 50)
	require.ErrorIs(t, err, domain.ErrExpired)
	assert.Equal(t, "Campaign has ended", errors.Unwrap(err).Error())

	err = svc.Contribute(ctx, "bob", id, 50)
	require.ErrorIs(t, err, domain.ErrInactive)

	ok, err := svc.IsSuccessful(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	amount, err := svc.GetContribution(ctx, "bob", id)
	require.NoError(t, err)
	assert.Equal(t, uint64(60), amount)
}

// TestJournalFailureDoesNotFailContribution ensures the audit trail never
// changes the ledger outcome.
func TestJournalFailureDoesNotFailContribution(t *testing.T) {
	journal := mocks.NewMockEventJournal(t)
	journal.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("db down"))

	l := ledger.New()
	svc := NewCampaignUseCase(l, &fakeClock{now: 1}, WithJournal(journal))
	ctx := context.Background()

	id, err := svc.CreateCampaign(ctx, "alice", port.CreateCampaignReq{GoalAmount: 10, Deadline: 10})
	require.NoError(t, err)
	require.NoError(t, svc.Contribute(ctx, "bob", id, 5))

	c, err := l.Get(id)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), c.CurrentAmount)
}

// TestUnknownCampaignIsNotJournalled ensures attempts against missing ids
// only reach the metrics.
func TestUnknownCampaignIsNotJournalled(t *testing.T) {
	journal := mocks.NewMockEventJournal(t)
	svc := NewCampaignUseCase(ledger.New(), &fakeClock{}, WithJournal(journal),
		WithMetrics(metrics.NewLedgerMetrics(prometheus.NewRegistry())))

	err := svc.Contribute(context.Background(), "bob", 3, 5)
	require.ErrorIs(t, err, domain.ErrNotFound)
	journal.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

// TestOverflowIsJournalledAsRejection ensures an overflowing contribution is
// recorded with its reason and leaves the totals untouched.
func TestOverflowIsJournalledAsRejection(t *testing.T) {
	journal := mocks.NewMockEventJournal(t)
	journal.EXPECT().Append(mock.Anything, kind(domain.EventCampaignCreated)).Return(nil).Once()
	journal.EXPECT().Append(mock.Anything, kind(domain.EventContributionRecorded)).Return(nil).Once()
	journal.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(ev domain.LedgerEvent) bool {
			return ev.Kind == domain.EventContributionRejected &&
				ev.Reason == "overflow" &&
				ev.Principal == "bob" &&
				ev.Amount == 1
		})).
		Return(nil).Once()

	svc := NewCampaignUseCase(ledger.New(), &fakeClock{now: 1}, WithJournal(journal))
	ctx := context.Background()

	id, err := svc.CreateCampaign(ctx, "alice", port.CreateCampaignReq{GoalAmount: 10, Deadline: 10})
	require.NoError(t, err)
	require.NoError(t, svc.Contribute(ctx, "alice", id, math.MaxUint64))

	err = svc.Contribute(ctx, "bob", id, 1)
	require.ErrorIs(t, err, domain.ErrAmountOverflow)

	amount, err := svc.GetContribution(ctx, "bob", id)
	require.NoError(t, err)
	assert.Zero(t, amount)
}

func TestListCampaigns(t *testing.T) {
	svc := NewCampaignUseCase(ledger.New(), &fakeClock{now: 50})
	ctx := context.Background()
	for _, name := range []string{"one", "two", "three"} {
		_, err := svc.CreateCampaign(ctx, "alice", port.CreateCampaignReq{Name: name, GoalAmount: 1, Deadline: 100})
		require.NoError(t, err)
	}

	views, err := svc.ListCampaigns(ctx, port.ListFilter{})
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "one", views[0].Campaign.Name)
	assert.Equal(t, "three", views[2].Campaign.Name)
	assert.Equal(t, uint64(50), views[1].RemainingNs)

	views, err = svc.ListCampaigns(ctx, port.ListFilter{Query: "T", Sort: port.SortNewest})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "three", views[0].Campaign.Name)
	assert.Equal(t, "two", views[1].Campaign.Name)
}
