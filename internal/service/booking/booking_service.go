package booking

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/KamylovMurad/API-hotel/internal/domain"
	"github.com/KamylovMurad/API-hotel/internal/kafka"
	"github.com/KamylovMurad/API-hotel/internal/repository"
)

type BookingUseCase interface {
	Create(ctx context.Context, user *domain.User, roomID int64, start, end time.Time) (*domain.Booking, error)
	Cancel(ctx context.Context, actor *domain.User, bookingID int64) (*domain.Booking, error)
	Confirm(ctx context.Context, actor *domain.User, bookingID int64) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	rooms              repository.RoomRepository
	producer           Producer
	eventsTopic        string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	rooms repository.RoomRepository,
	producer Producer,
	eventsTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:    bookings,
		rooms:       rooms,
		producer:    producer,
		eventsTopic: eventsTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create books a room for [start, end]. The availability check here is the
// fast path; the repository repeats it inside a transaction holding the room
// row, so two concurrent requests for the same window cannot both insert.
func (s *BookingService) Create(ctx context.Context, user *domain.User, roomID int64, start, end time.Time) (*domain.Booking, error) {
	if start.After(end) {
		return nil, domain.ErrInvalidRange
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	available, err := s.IsAvailable(ctx, room.ID, start, end)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, domain.ErrRoomUnavailable
	}

	booking := &domain.Booking{
		RoomID:    room.ID,
		UserID:    user.ID,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", booking, room.Name, user.Username)
	return booking, nil
}

// IsAvailable reports whether the room has no active booking overlapping
// the closed interval [start, end].
func (s *BookingService) IsAvailable(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	existing, err := s.bookings.ListActiveByRoom(ctx, roomID)
	if err != nil {
		return false, err
	}
	for i := range existing {
		if existing[i].Active() && existing[i].Overlaps(start, end) {
			return false, nil
		}
	}
	return true, nil
}

// Cancel moves a booking from booked to cancelled. Non-privileged actors can
// only see their own bookings, so a foreign id fails as not-found rather
// than as an authorization error.
func (s *BookingService) Cancel(ctx context.Context, actor *domain.User, bookingID int64) (*domain.Booking, error) {
	booking, err := s.lookup(ctx, actor, bookingID)
	if err != nil {
		return nil, err
	}
	if err := transitionErr(booking.Status); err != nil {
		return nil, err
	}

	updated, err := s.bookings.UpdateStatusFrom(ctx, bookingID, domain.BookingStatusBooked, domain.BookingStatusCancelled)
	if err != nil {
		// The CAS lost a race: reclassify against the current row.
		return nil, s.reclassify(ctx, actor, bookingID, err)
	}

	s.publish(ctx, "booking_cancelled", updated, "", actor.Username)
	return updated, nil
}

// Confirm is the administrative transition booked -> confirmed.
func (s *BookingService) Confirm(ctx context.Context, actor *domain.User, bookingID int64) (*domain.Booking, error) {
	if actor == nil || !actor.IsSuperuser {
		return nil, domain.ErrForbidden
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := transitionErr(booking.Status); err != nil {
		return nil, err
	}

	updated, err := s.bookings.UpdateStatusFrom(ctx, bookingID, domain.BookingStatusBooked, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, s.reclassify(ctx, actor, bookingID, err)
	}

	s.publish(ctx, "booking_confirmed", updated, "", actor.Username)
	return updated, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) lookup(ctx context.Context, actor *domain.User, bookingID int64) (*domain.Booking, error) {
	if actor != nil && actor.IsSuperuser {
		return s.bookings.GetByID(ctx, bookingID)
	}
	if actor == nil {
		return nil, domain.ErrBookingNotFound
	}
	return s.bookings.GetByIDForUser(ctx, bookingID, actor.ID)
}

// transitionErr maps a terminal status to its state-machine error. Only
// 'booked' has outgoing transitions.
func transitionErr(status domain.BookingStatus) error {
	switch status {
	case domain.BookingStatusCancelled:
		return domain.ErrAlreadyCancelled
	case domain.BookingStatusConfirmed:
		return domain.ErrBookingImmutable
	default:
		return nil
	}
}

// reclassify re-reads the booking after a missed compare-and-set and
// translates its current status into the right failure.
func (s *BookingService) reclassify(ctx context.Context, actor *domain.User, bookingID int64, casErr error) error {
	booking, err := s.lookup(ctx, actor, bookingID)
	if err != nil {
		return err
	}
	if err := transitionErr(booking.Status); err != nil {
		return err
	}
	return casErr
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, roomName, username string) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	if roomName == "" {
		if room, err := s.rooms.GetByID(ctx, booking.RoomID); err == nil {
			roomName = room.Name
		}
	}
	event := kafka.BookingEvent{
		Type:      eventType,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		RoomName:  roomName,
		Username:  username,
		Status:    string(booking.Status),
		StartDate: booking.StartDate,
		EndDate:   booking.EndDate,
	}
	key := strconv.FormatInt(booking.ID, 10)
	if err := s.producer.Publish(ctx, s.eventsTopic, key, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %d: %v", eventType, booking.ID, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %d: %v", eventType, booking.ID, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
