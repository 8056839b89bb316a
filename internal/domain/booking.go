package domain

import "time"

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusConfirmed BookingStatus = "confirmed"
)

type Booking struct {
	ID        int64
	RoomID    int64
	UserID    int64
	StartDate time.Time
	EndDate   time.Time
	Status    BookingStatus
	CreatedAt time.Time
}

// Active reports whether the booking counts as occupying its room.
// Cancelled bookings never block a window.
func (b *Booking) Active() bool {
	return b.Status == BookingStatusBooked || b.Status == BookingStatusConfirmed
}

// Overlaps reports whether the booking's closed date interval intersects
// [start, end]: two closed intervals overlap iff each one's start is not
// after the other's end.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}
