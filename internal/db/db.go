package db

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MustOpenPool opens the cart database or exits. Called once at startup.
func MustOpenPool(ctx context.Context, dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("ping db: %v", err)
	}

	return pool
}
