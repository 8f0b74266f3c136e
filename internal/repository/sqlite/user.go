package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/searchproxy/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
//
// Each call runs under the database's bounded timeout; failures other
// than an absent row surface as domain.ErrStoreUnavailable so callers
// can tell an outage apart from a missing user.
type UserRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB, timeout: db.timeout}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	user := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT username, email, full_name, hashed_password, disabled
		 FROM users WHERE username = ?`, username,
	).Scan(&user.Username, &user.Email, &user.FullName, &user.HashedPassword, &user.Disabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: query user: %v", domain.ErrStoreUnavailable, err)
	}
	return user, nil
}

// Upsert writes the full record keyed by username, overwriting any
// existing row. Idempotent; no partial-field update semantics.
func (r *UserRepository) Upsert(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, email, full_name, hashed_password, disabled)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
		     email = excluded.email,
		     full_name = excluded.full_name,
		     hashed_password = excluded.hashed_password,
		     disabled = excluded.disabled`,
		user.Username, user.Email, user.FullName, user.HashedPassword, user.Disabled,
	)
	if err != nil {
		return fmt.Errorf("%w: upsert user: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}
