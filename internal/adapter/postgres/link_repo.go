package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"schedlink/internal/domain"
)

func (d *DB) CreateLink(ctx context.Context, l *domain.BookingLink) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO booking_links (id, slug, user_id, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.Slug, l.UserID, l.Active, l.CreatedAt,
	)
	return err
}

// FindLinkBySlug resolves only active links; deactivated slugs look absent
// to visitors.
func (d *DB) FindLinkBySlug(ctx context.Context, slug string) (*domain.BookingLink, error) {
	var l domain.BookingLink
	err := d.pool.QueryRow(ctx,
		`SELECT id, slug, user_id, is_active, created_at
		 FROM booking_links WHERE slug=$1 AND is_active`, slug,
	).Scan(&l.ID, &l.Slug, &l.UserID, &l.Active, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Reason: "booking link not found"}
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (d *DB) ListLinks(ctx context.Context, userID string) ([]domain.BookingLink, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT id, slug, user_id, is_active, created_at
		 FROM booking_links WHERE user_id=$1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BookingLink
	for rows.Next() {
		var l domain.BookingLink
		if err := rows.Scan(&l.ID, &l.Slug, &l.UserID, &l.Active, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (d *DB) DeactivateLink(ctx context.Context, id, userID string) (bool, error) {
	res, err := d.pool.Exec(ctx,
		`UPDATE booking_links SET is_active=FALSE
		 WHERE id=$1 AND user_id=$2 AND is_active`, id, userID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
