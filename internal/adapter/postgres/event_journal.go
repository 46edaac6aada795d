package postgres

import (
	"context"
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"icp-crowdfunding/internal/core/domain"
)

// EventJournal implements port.EventJournal using pgxpool for PostgreSQL.
// Rows are only ever inserted; the ledger does not read them back.
type EventJournal struct {
	pool *pgxpool.Pool
}

// NewEventJournal returns a new journal instance.
func NewEventJournal(pool *pgxpool.Pool) *EventJournal {
	return &EventJournal{pool: pool}
}

// Append inserts ev into ledger_events. Duplicate tokens are ignored.
func (j *EventJournal) Append(ctx context.Context, ev domain.LedgerEvent) error {
	_, err := j.pool.Exec(ctx, `INSERT INTO ledger_events
    (token, kind, campaign_id, principal, amount, occurred_at_ns, reason)
VALUES ($1,$2,$3,$4,$5,$6,NULLIF($7,'')) ON CONFLICT (token) DO NOTHING`,
		ev.Token,
		string(ev.Kind),
		numeric(ev.CampaignID),
		ev.Principal.String(),
		numeric(ev.Amount),
		numeric(ev.At),
		ev.Reason,
	)
	if err != nil {
		return fmt.Errorf("append %s event for campaign %d: %w", ev.Kind, ev.CampaignID, err)
	}
	return nil
}

// numeric converts an unsigned ledger value to NUMERIC; BIGINT cannot hold
// the upper half of the uint64 range.
func numeric(v uint64) pgtype.Numeric {
	return pgtype.Numeric{Int: new(big.Int).SetUint64(v), Valid: true}
}
