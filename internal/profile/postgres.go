package profile

import (
	"context"
	"database/sql"
	"errors"

	"shelf-auth/internal/db"
)

// PostgresStore is the canonical profile store. It relies on the
// unique index on user_profiles.email; ON CONFLICT DO NOTHING turns
// the duplicate-insert race into a no-op.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*Profile, error) {
	var p Profile
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, username, created_at
		FROM user_profiles
		WHERE email = $1
	`, email).Scan(&p.ID, &p.Email, &p.Username, &p.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *PostgresStore) Insert(ctx context.Context, p Profile) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO user_profiles (email, username)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING
	`, p.Email, p.Username)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows == 1, nil
}
