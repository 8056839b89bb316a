package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KamylovMurad/API-hotel/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DateWindow is a closed [Start, End] date interval used to exclude rooms
// with an active overlapping booking from a listing.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// RoomFilter collects the optional listing filters. Nil pointers mean the
// filter is not applied. Ordering accepts price|capacity with an optional
// leading '-' for descending; anything else falls back to the default.
type RoomFilter struct {
	Price       *float64
	PriceGTE    *float64
	PriceLTE    *float64
	Capacity    *int
	CapacityGTE *int
	CapacityLTE *int
	Search      string
	Ordering    string
	Window      *DateWindow
}

type RoomRepository interface {
	List(ctx context.Context, filter RoomFilter) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
}

type PGRoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) RoomRepository {
	return &PGRoomRepository{db: db}
}

const roomColumns = `id, name, price, capacity, COALESCE(type, ''), description, is_popular, created_at`

// buildRoomListQuery renders the filter into a single SELECT. Field filters
// and the date-window exclusion are combined in one WHERE clause, so a
// price- or capacity-filtered listing stays filtered when a window is set.
func buildRoomListQuery(filter RoomFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Price != nil {
		conds = append(conds, "price = "+arg(*filter.Price))
	}
	if filter.PriceGTE != nil {
		conds = append(conds, "price >= "+arg(*filter.PriceGTE))
	}
	if filter.PriceLTE != nil {
		conds = append(conds, "price <= "+arg(*filter.PriceLTE))
	}
	if filter.Capacity != nil {
		conds = append(conds, "capacity = "+arg(*filter.Capacity))
	}
	if filter.CapacityGTE != nil {
		conds = append(conds, "capacity >= "+arg(*filter.CapacityGTE))
	}
	if filter.CapacityLTE != nil {
		conds = append(conds, "capacity <= "+arg(*filter.CapacityLTE))
	}
	if filter.Search != "" {
		conds = append(conds, "name ILIKE "+arg("%"+filter.Search+"%"))
	}
	if filter.Window != nil {
		start := arg(filter.Window.Start)
		end := arg(filter.Window.End)
		conds = append(conds, fmt.Sprintf(
			`NOT EXISTS (SELECT 1 FROM bookings b WHERE b.room_id = rooms.id AND b.status IN ('booked', 'confirmed') AND b.start_date <= %s AND b.end_date >= %s)`,
			end, start))
	}

	query := "SELECT " + roomColumns + " FROM rooms"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY " + orderClause(filter.Ordering)
	return query, args
}

// orderClause maps the requested ordering to a deterministic ORDER BY,
// always chaining name and id so equal keys list in a stable order.
func orderClause(ordering string) string {
	switch ordering {
	case "price":
		return "price ASC, name ASC, id ASC"
	case "-price":
		return "price DESC, name ASC, id ASC"
	case "capacity":
		return "capacity ASC, name ASC, id ASC"
	case "-capacity":
		return "capacity DESC, name ASC, id ASC"
	default:
		return "price ASC, name ASC, id ASC"
	}
}

func (r *PGRoomRepository) List(ctx context.Context, filter RoomFilter) ([]domain.Room, error) {
	query, args := buildRoomListQuery(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Price, &room.Capacity, &room.Type, &room.Description, &room.IsPopular, &room.CreatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *PGRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	row := r.db.QueryRow(ctx, "SELECT "+roomColumns+" FROM rooms WHERE id=$1", id)
	var room domain.Room
	if err := row.Scan(&room.ID, &room.Name, &room.Price, &room.Capacity, &room.Type, &room.Description, &room.IsPopular, &room.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *PGRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	var roomType *string
	if room.Type != "" {
		t := string(room.Type)
		roomType = &t
	}
	return r.db.QueryRow(ctx, `INSERT INTO rooms (name, price, capacity, type, description, is_popular)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`, room.Name, room.Price, room.Capacity, roomType, room.Description, room.IsPopular).
		Scan(&room.ID, &room.CreatedAt)
}

var _ RoomRepository = (*PGRoomRepository)(nil)
