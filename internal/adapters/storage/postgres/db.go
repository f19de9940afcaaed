package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate aplica el esquema. Idempotente: corre en cada arranque.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id              TEXT PRIMARY KEY,
			first_name      TEXT NOT NULL,
			last_name       TEXT NOT NULL,
			email           TEXT NOT NULL UNIQUE,
			password        TEXT NOT NULL,
			role            TEXT NOT NULL DEFAULT 'user',
			last_connection TIMESTAMPTZ,
			created_at      TIMESTAMPTZ NOT NULL,
			updated_at      TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_pets (
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			pet_id  TEXT NOT NULL,
			PRIMARY KEY (user_id, pet_id)
		)`,
		`CREATE TABLE IF NOT EXISTS pets (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			species       TEXT NOT NULL,
			birth_date    DATE,
			adopted       BOOLEAN NOT NULL DEFAULT FALSE,
			owner_user_id TEXT,
			image         TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS adoptions (
			id            TEXT PRIMARY KEY,
			owner_user_id TEXT NOT NULL,
			pet_id        TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_adoptions_owner ON adoptions(owner_user_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
