package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"staybook/internal/infra"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

const userCredentialsSQL = `
SELECT id, email, password_hash, role, is_active
FROM users
WHERE email = $1`

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserCredentialsView, error) {
	var (
		view queries.UserCredentialsView
		id   pgtype.UUID
	)
	err := s.pool.QueryRow(ctx, userCredentialsSQL, email).Scan(
		&id, &view.Email, &view.PasswordHash, &view.Role, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	view.ID = uuid.UUID(id.Bytes)
	return &view, nil
}

const userViewSQL = `
SELECT id, email, role, is_active, last_login
FROM users
WHERE id = $1`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var (
		view      queries.UserView
		userID    pgtype.UUID
		lastLogin pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, userViewSQL, pgconv.UUIDToPgtype(id)).Scan(
		&userID, &view.Email, &view.Role, &view.IsActive, &lastLogin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	view.ID = uuid.UUID(userID.Bytes)
	if lastLogin.Valid {
		t := lastLogin.Time
		view.LastLogin = &t
	}
	return &view, nil
}
