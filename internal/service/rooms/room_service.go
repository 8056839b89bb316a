package rooms

import (
	"context"
	"time"

	"github.com/KamylovMurad/API-hotel/internal/domain"
	"github.com/KamylovMurad/API-hotel/internal/repository"
)

type RoomUseCase interface {
	List(ctx context.Context, query ListQuery) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Create(ctx context.Context, actor *domain.User, room *domain.Room) error
}

type Cache interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
	SetRooms(ctx context.Context, rooms []domain.Room) error
	InvalidateRooms(ctx context.Context) error
}

// ListQuery carries the field filters plus an optional availability window.
// The window only takes effect when both dates are present; a partial window
// is ignored rather than rejected.
type ListQuery struct {
	Filter    repository.RoomFilter
	StartDate *time.Time
	EndDate   *time.Time
}

type RoomService struct {
	repo  repository.RoomRepository
	cache Cache
}

func NewRoomService(repo repository.RoomRepository, cache Cache) *RoomService {
	return &RoomService{repo: repo, cache: cache}
}

func (s *RoomService) List(ctx context.Context, query ListQuery) ([]domain.Room, error) {
	filter := query.Filter
	if query.StartDate != nil && query.EndDate != nil {
		filter.Window = &repository.DateWindow{Start: *query.StartDate, End: *query.EndDate}
	}

	if s.cache != nil && isDefaultListing(filter) {
		if cached, err := s.cache.GetRooms(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	roomList, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && isDefaultListing(filter) {
		_ = s.cache.SetRooms(ctx, roomList)
	}
	return roomList, nil
}

func (s *RoomService) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a room to the catalog. Only privileged users may call it.
func (s *RoomService) Create(ctx context.Context, actor *domain.User, room *domain.Room) error {
	if actor == nil || !actor.IsSuperuser {
		return domain.ErrForbidden
	}
	if err := room.Validate(); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, room); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateRooms(ctx)
	}
	return nil
}

// isDefaultListing reports whether the query is the plain unfiltered room
// list in default order, the only shape served from the cache.
func isDefaultListing(filter repository.RoomFilter) bool {
	return filter.Price == nil && filter.PriceGTE == nil && filter.PriceLTE == nil &&
		filter.Capacity == nil && filter.CapacityGTE == nil && filter.CapacityLTE == nil &&
		filter.Search == "" && filter.Window == nil &&
		(filter.Ordering == "" || filter.Ordering == "price")
}

var _ RoomUseCase = (*RoomService)(nil)
