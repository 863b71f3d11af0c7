package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/myaccountdemo/account_api/internal/core/ports/repositories"
	"github.com/myaccountdemo/account_api/internal/models"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) CreateUser(ctx context.Context, user models.User, password string) (json.RawMessage, error) {
	payload, err := callScalarRoutine(ctx, r.db,
		`SELECT create_user($1, $2, $3, $4, $5)`,
		user.Username,
		user.Email,
		user.MobileNo,
		user.FullName,
		password,
	)
	if err != nil {
		return nil, fmt.Errorf("create_user: %w", err)
	}
	return payload, nil
}

func (r *PgxUserRepository) FetchBasicInfo(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id, username FROM get_users_sorted()`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users basic info: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Username); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}
