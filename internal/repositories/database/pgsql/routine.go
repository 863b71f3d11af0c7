package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// callScalarRoutine executes a SELECT fn(...) statement and returns the
// routine's single JSON scalar. The connection is acquired for this one call
// and released on every exit path. A nil payload with a nil error means the
// routine returned SQL NULL or no row at all.
func callScalarRoutine(ctx context.Context, pool *pgxpool.Pool, sql string, args ...any) (json.RawMessage, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	var payload []byte
	err = conn.QueryRow(ctx, sql, args...).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("routine execution failed: %w", err)
	}
	return payload, nil
}
