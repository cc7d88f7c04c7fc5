package db

import (
	"context"
	"database/sql"
)

const profileMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS user_profiles (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    email text NOT NULL,
    username text NOT NULL DEFAULT 'unknown',
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS user_profiles_email_unique
ON user_profiles (email);
`

// RunMigration applies the profile schema. The unique index on email
// is what makes insert-if-absent reconciliation safe under concurrent
// callbacks.
func RunMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, profileMigration)
	return err
}
