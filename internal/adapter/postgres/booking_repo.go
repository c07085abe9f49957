package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"schedlink/internal/domain"
)

const uniqueViolation = "23505"

// CreateBooking commits a booking inside a serializable transaction. The
// existence check takes a FOR UPDATE lock on the (link, date, start_time)
// key, so a concurrent attempt on the same slot blocks until this
// transaction finishes, then observes the row and fails cleanly. The unique
// constraint on the same tuple is the second line of defense: a violation at
// insert or commit is reported as the same conflict.
func (d *DB) CreateBooking(ctx context.Context, b *domain.Booking) error {
	tx, err := d.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var existingID string
	err = tx.QueryRow(ctx,
		`SELECT id FROM bookings
		 WHERE link_id=$1 AND date=$2 AND start_time=$3::time
		 FOR UPDATE`,
		b.LinkID, b.Date, b.StartTime,
	).Scan(&existingID)
	if err == nil {
		return &domain.ConflictError{Reason: "slot already booked"}
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO bookings (id, link_id, date, start_time, end_time, visitor_name, visitor_email, created_at)
		 VALUES ($1, $2, $3, $4::time, $5::time, $6, $7, $8)`,
		b.ID, b.LinkID, b.Date, b.StartTime, b.EndTime, b.VisitorName, b.VisitorEmail, b.CreatedAt,
	)
	if err != nil {
		return mapBookingErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapBookingErr(err)
	}
	return nil
}

func mapBookingErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &domain.ConflictError{Reason: "slot already booked"}
	}
	return err
}

func (d *DB) ListBookings(ctx context.Context, linkID, date string) ([]domain.Booking, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT id, link_id, to_char(date, 'YYYY-MM-DD'),
		        to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'),
		        visitor_name, visitor_email, created_at
		 FROM bookings WHERE link_id=$1 AND date=$2
		 ORDER BY start_time`, linkID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.LinkID, &b.Date, &b.StartTime, &b.EndTime,
			&b.VisitorName, &b.VisitorEmail, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
