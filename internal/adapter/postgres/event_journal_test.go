package postgres

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"icp-crowdfunding/internal/core/domain"
	"icp-crowdfunding/internal/db"
)

func TestNumeric(t *testing.T) {
	n := numeric(math.MaxUint64)
	require.True(t, n.Valid)
	assert.Equal(t, "18446744073709551615", n.Int.String())
	assert.Zero(t, n.Exp)
}

// TestAppend runs against a real database when PSQL_TEST_ADDRESS is set.
func TestAppend(t *testing.T) {
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	require.NoError(t, db.Migrate(addr))

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, addr)
	require.NoError(t, err)
	defer pool.Close()

	j := NewEventJournal(pool)
	ev := domain.LedgerEvent{
		Token:      uuid.NewString(),
		Kind:       domain.EventContributionRecorded,
		CampaignID: 1,
		Principal:  "alice",
		Amount:     math.MaxUint64,
		At:         42,
	}
	require.NoError(t, j.Append(ctx, ev))
	require.NoError(t, j.Append(ctx, ev))

	var count int
	var amount string
	var reason *string
	err = pool.QueryRow(ctx, `SELECT count(*) OVER (), amount::text, reason FROM ledger_events WHERE token = $1`, ev.Token).
		Scan(&count, &amount, &reason)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "18446744073709551615", amount)
	assert.Nil(t, reason)
}
