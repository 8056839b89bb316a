package domain

import (
	"fmt"
	"time"
)

type RoomType string

const (
	RoomTypeLuxe     RoomType = "luxe"
	RoomTypeEconomy  RoomType = "economy"
	RoomTypeStandard RoomType = "standard"
)

const (
	MinCapacity = 1
	MaxCapacity = 7
)

type Room struct {
	ID          int64
	Name        string
	Price       float64
	Capacity    int
	Type        RoomType
	Description string
	IsPopular   bool
	CreatedAt   time.Time
}

// Validate enforces the catalog invariants on an incoming room record.
func (r *Room) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRoom)
	}
	if r.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidRoom)
	}
	if r.Capacity < MinCapacity || r.Capacity > MaxCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidRoom, MinCapacity, MaxCapacity)
	}
	switch r.Type {
	case "", RoomTypeLuxe, RoomTypeEconomy, RoomTypeStandard:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRoom, r.Type)
	}
	return nil
}
