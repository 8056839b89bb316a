package repository

import (
	"context"
	"errors"

	"github.com/KamylovMurad/API-hotel/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListActiveByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
	UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, room_id, user_id, start_date, end_date, status, created_at`

// exclusionViolation is the Postgres error code raised by the
// bookings_no_overlap constraint when two active bookings would collide.
const exclusionViolation = "23P01"

// Create inserts a booking with status 'booked'. The room row is locked for
// the duration of the transaction so the overlap re-check and the insert are
// serialized against concurrent requests for the same room; the exclusion
// constraint backstops both.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var roomID int64
	if err := tx.QueryRow(ctx, `SELECT id FROM rooms WHERE id=$1 FOR UPDATE`, booking.RoomID).Scan(&roomID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return err
	}

	var occupied bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id=$1 AND status IN ('booked', 'confirmed') AND start_date <= $2 AND end_date >= $3
		)`, booking.RoomID, booking.EndDate, booking.StartDate).Scan(&occupied); err != nil {
		return err
	}
	if occupied {
		return domain.ErrRoomUnavailable
	}

	booking.Status = domain.BookingStatusBooked
	if err := tx.QueryRow(ctx, `INSERT INTO bookings (room_id, user_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`, booking.RoomID, booking.UserID, booking.StartDate, booking.EndDate, booking.Status).
		Scan(&booking.ID, &booking.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == exclusionViolation {
			return domain.ErrRoomUnavailable
		}
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE id=$1", id)
	return scanBooking(row)
}

// GetByIDForUser scopes the lookup to the owning user, so a foreign booking
// is indistinguishable from a missing one.
func (r *PGBookingRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE id=$1 AND user_id=$2", id, userID)
	return scanBooking(row)
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE user_id=$1 ORDER BY created_at DESC, id DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *PGBookingRepository) ListActiveByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE room_id=$1 AND status IN ('booked', 'confirmed') ORDER BY start_date", roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

// UpdateStatusFrom is a compare-and-set: the row is updated only while it is
// still in the expected prior status. A miss surfaces as ErrBookingNotFound;
// the caller re-reads to tell a vanished row from a concurrent transition.
func (r *PGBookingRepository) UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1 WHERE id=$2 AND status=$3 RETURNING `+bookingColumns, to, id, from)
	return scanBooking(row)
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.RoomID, &b.UserID, &b.StartDate, &b.EndDate, &b.Status, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.RoomID, &b.UserID, &b.StartDate, &b.EndDate, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
