// Package postgres implements the repository ports on a pgx connection pool.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"schedlink/internal/domain"
)

// DB bundles the pool behind every repository port.
type DB struct {
	pool *pgxpool.Pool
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.AvailabilityRepository = (*DB)(nil)
var _ domain.LinkRepository = (*DB)(nil)
var _ domain.BookingRepository = (*DB)(nil)
var _ domain.CalendarTokenRepository = (*DB)(nil)

// Open connects, pings and migrates the schema.
func Open(ctx context.Context, url string) (*DB, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	d := &DB{pool: pool}
	if err := d.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) Close() {
	d.pool.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS availabilities (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			start_time TIME NOT NULL,
			end_time TIME NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_availabilities_user_date ON availabilities(user_id, date);`,
		`CREATE TABLE IF NOT EXISTS booking_links (
			id UUID PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id UUID PRIMARY KEY,
			link_id UUID NOT NULL REFERENCES booking_links(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			start_time TIME NOT NULL,
			end_time TIME NOT NULL,
			visitor_name TEXT NOT NULL,
			visitor_email TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			UNIQUE (link_id, date, start_time)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_link_date ON bookings(link_id, date);`,
		`CREATE TABLE IF NOT EXISTS calendar_tokens (
			user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			token JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := d.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
