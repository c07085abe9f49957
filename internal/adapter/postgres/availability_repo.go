package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"schedlink/internal/domain"
)

// CreateWindow inserts a window after an overlap check against the owner's
// existing windows for the date. The owner's user row is locked first so two
// concurrent creates for the same owner serialize and cannot both pass the
// check.
func (d *DB) CreateWindow(ctx context.Context, w *domain.AvailabilityWindow) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var ownerID string
	err = tx.QueryRow(ctx,
		`SELECT id FROM users WHERE id=$1 FOR UPDATE`, w.UserID,
	).Scan(&ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.NotFoundError{Reason: "user not found"}
	}
	if err != nil {
		return err
	}

	var existingID string
	err = tx.QueryRow(ctx,
		`SELECT id FROM availabilities
		 WHERE user_id=$1 AND date=$2 AND start_time < $4::time AND end_time > $3::time
		 LIMIT 1`,
		w.UserID, w.Date, w.StartTime, w.EndTime,
	).Scan(&existingID)
	if err == nil {
		return &domain.ConflictError{Reason: "availability overlaps with an existing window"}
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO availabilities (id, user_id, date, start_time, end_time, created_at)
		 VALUES ($1, $2, $3, $4::time, $5::time, $6)`,
		w.ID, w.UserID, w.Date, w.StartTime, w.EndTime, w.CreatedAt,
	)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (d *DB) ListWindows(ctx context.Context, userID string) ([]domain.AvailabilityWindow, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT id, user_id, to_char(date, 'YYYY-MM-DD'),
		        to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'), created_at
		 FROM availabilities WHERE user_id=$1
		 ORDER BY date, start_time`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWindows(rows)
}

func (d *DB) ListWindowsForDate(ctx context.Context, userID, date string) ([]domain.AvailabilityWindow, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT id, user_id, to_char(date, 'YYYY-MM-DD'),
		        to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'), created_at
		 FROM availabilities WHERE user_id=$1 AND date=$2
		 ORDER BY start_time`, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWindows(rows)
}

func (d *DB) DeleteWindow(ctx context.Context, id, userID string) (bool, error) {
	res, err := d.pool.Exec(ctx,
		`DELETE FROM availabilities WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func scanWindows(rows pgx.Rows) ([]domain.AvailabilityWindow, error) {
	var out []domain.AvailabilityWindow
	for rows.Next() {
		var w domain.AvailabilityWindow
		if err := rows.Scan(&w.ID, &w.UserID, &w.Date, &w.StartTime, &w.EndTime, &w.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
