package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Domenick1991/booktofly/internal/domain"
)

type PrincipalRepository interface {
	GetByName(ctx context.Context, username string) (*domain.Principal, error)
	Create(ctx context.Context, principal *domain.Principal) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

// PGPrincipalRepository serves both principal kinds; the table ("users" or
// "admins") is fixed at construction. All username matching is
// case-insensitive, backed by a unique index on lower(username).
type PGPrincipalRepository struct {
	db    *pgxpool.Pool
	table string
}

func NewUserRepository(db *pgxpool.Pool) PrincipalRepository {
	return &PGPrincipalRepository{db: db, table: "users"}
}

func NewAdminRepository(db *pgxpool.Pool) PrincipalRepository {
	return &PGPrincipalRepository{db: db, table: "admins"}
}

func (r *PGPrincipalRepository) GetByName(ctx context.Context, username string) (*domain.Principal, error) {
	query := fmt.Sprintf(`SELECT username, password_hash FROM %s WHERE lower(username) = lower($1)`, r.table)
	row := r.db.QueryRow(ctx, query, username)
	var p domain.Principal
	if err := row.Scan(&p.Username, &p.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPrincipalRepository) Create(ctx context.Context, principal *domain.Principal) error {
	query := fmt.Sprintf(`INSERT INTO %s (username, password_hash) VALUES ($1, $2)`, r.table)
	if _, err := r.db.Exec(ctx, query, principal.Username, principal.PasswordHash); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *PGPrincipalRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	query := fmt.Sprintf(`UPDATE %s SET password_hash = $1 WHERE lower(username) = lower($2)`, r.table)
	res, err := r.db.Exec(ctx, query, passwordHash, username)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ PrincipalRepository = (*PGPrincipalRepository)(nil)
