package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"icp-crowdfunding/internal/config/configs"
)

// journalAppName tags journal connections in pg_stat_activity.
const journalAppName = "crowdfunding-journal"

// NewPostgresPool opens the pool backing the ledger event journal. It is
// only called when the journal is enabled. The journal issues one INSERT
// per ledger mutation, so the pool is kept small. Connectivity is verified
// with a 5 second ping; on failure the pool is closed. The caller must
// close the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, fmt.Errorf("parse journal address: %w", err)
	}
	poolConf.MaxConns = 4
	poolConf.ConnConfig.RuntimeParams["application_name"] = journalAppName

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping journal database: %w", err)
	}
	return pool, nil
}
