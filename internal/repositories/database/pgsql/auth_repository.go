package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/myaccountdemo/account_api/internal/core/domain"
	portsrepo "github.com/myaccountdemo/account_api/internal/core/ports/repositories"
)

type PgxAuthRepository struct {
	db *pgxpool.Pool
}

func newPgxAuthRepository(db *pgxpool.Pool) portsrepo.AuthRepository {
	return &PgxAuthRepository{db: db}
}

var _ portsrepo.AuthRepository = (*PgxAuthRepository)(nil)

func (r *PgxAuthRepository) Authenticate(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	var result domain.AuthResult
	err = conn.QueryRow(ctx,
		`SELECT success, message, user_id FROM authenticate_user_with_message($1, $2)`,
		username, password,
	).Scan(&result.Success, &result.Message, &result.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("authenticate_user_with_message: %w", err)
	}
	return &result, nil
}
