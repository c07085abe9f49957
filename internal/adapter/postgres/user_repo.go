package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"schedlink/internal/domain"
)

func (d *DB) CreateUser(ctx context.Context, u *domain.User) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &domain.ConflictError{Reason: "email already in use"}
	}
	return err
}

func (d *DB) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return d.findUser(ctx, `SELECT id, name, email, password_hash, created_at FROM users WHERE email=$1`, email)
}

func (d *DB) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	return d.findUser(ctx, `SELECT id, name, email, password_hash, created_at FROM users WHERE id=$1`, id)
}

func (d *DB) findUser(ctx context.Context, query, arg string) (*domain.User, error) {
	var u domain.User
	err := d.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Reason: "user not found"}
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *DB) SaveCalendarToken(ctx context.Context, userID string, token []byte) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO calendar_tokens (user_id, token, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET token=EXCLUDED.token, updated_at=EXCLUDED.updated_at`,
		userID, token, time.Now().UTC(),
	)
	return err
}

func (d *DB) CalendarToken(ctx context.Context, userID string) ([]byte, error) {
	var raw []byte
	err := d.pool.QueryRow(ctx,
		`SELECT token FROM calendar_tokens WHERE user_id=$1`, userID,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Reason: "calendar not connected"}
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}
