package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrCorruptEntry marks a persisted cart entry that no longer deserializes.
// Callers treat it as an empty cart, never as a fatal error.
var ErrCorruptEntry = errors.New("corrupt cart entry")

// DBPool matches the methods from *pgxpool.Pool that the repository uses, so
// tests can substitute a mock pool.
type DBPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores each owner's cart as a single row holding the
// serialized line array. Last writer wins; there is no cross-session merge.
type PostgresRepository struct {
	pool DBPool
}

func NewPostgresRepository(pool DBPool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Load(ctx context.Context, ownerID string) ([]LineItem, error) {
	var raw []byte
	row := r.pool.QueryRow(ctx, `SELECT lines FROM cart_entries WHERE owner_id=$1`, ownerID)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart entry: %w", err)
	}

	var lines []LineItem
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptEntry, err)
	}
	return lines, nil
}

func (r *PostgresRepository) Save(ctx context.Context, ownerID string, lines []LineItem) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart entry: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO cart_entries(owner_id, lines)
		VALUES($1, $2)
		ON CONFLICT (owner_id) DO UPDATE SET lines=EXCLUDED.lines, updated_at=now()
	`, ownerID, raw)
	if err != nil {
		return fmt.Errorf("save cart entry: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Clear(ctx context.Context, ownerID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cart_entries WHERE owner_id=$1`, ownerID); err != nil {
		return fmt.Errorf("clear cart entry: %w", err)
	}
	return nil
}
