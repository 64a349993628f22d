package database

import (
	"context"
	"fmt"
)

// schema creates the five application tables. Statements must stay
// idempotent; Migrate runs on every boot.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS blogs (
		id           UUID PRIMARY KEY,
		title        TEXT NOT NULL,
		slug         TEXT NOT NULL UNIQUE,
		excerpt      TEXT NOT NULL,
		content      TEXT NOT NULL,
		cover_image  TEXT,
		tags         TEXT[] NOT NULL DEFAULT '{}',
		author       TEXT NOT NULL,
		published_at DATE NOT NULL,
		views        INT NOT NULL DEFAULT 0,
		read_time    INT NOT NULL DEFAULT 5,
		published    BOOLEAN NOT NULL DEFAULT TRUE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id            UUID PRIMARY KEY,
		name          TEXT NOT NULL,
		description   TEXT NOT NULL,
		contributions TEXT NOT NULL,
		stack         TEXT[] NOT NULL DEFAULT '{}',
		challenges    TEXT NOT NULL,
		achievements  TEXT NOT NULL,
		link          TEXT,
		github_url    TEXT,
		live_url      TEXT,
		image         TEXT,
		sort_order    INT NOT NULL DEFAULT 0,
		featured      BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		category   TEXT NOT NULL CHECK (category IN ('backend', 'database', 'frontend', 'other')),
		level      INT NOT NULL DEFAULT 50,
		icon       TEXT,
		sort_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		message    TEXT NOT NULL,
		read       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate bootstraps the schema.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schema {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}
	}
	return nil
}
