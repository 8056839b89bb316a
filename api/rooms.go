package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/KamylovMurad/API-hotel/internal/domain"
	"github.com/KamylovMurad/API-hotel/internal/service/rooms"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type RoomHandler struct {
	service rooms.RoomUseCase
}

type roomResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	Type        string  `json:"type,omitempty"`
	CreatedAt   string  `json:"created_at"`
	IsPopular   bool    `json:"is_popular"`
}

type createRoomRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity" binding:"required"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	IsPopular   bool    `json:"is_popular"`
}

func NewRoomHandler(service rooms.RoomUseCase) *RoomHandler {
	return &RoomHandler{service: service}
}

// List serves GET /available/. The date window filters out rooms with an
// active overlapping booking, but only when both start_date and end_date
// are supplied; a lone date is silently ignored.
func (h *RoomHandler) List(c *gin.Context) {
	query, err := parseListQuery(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	roomList, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]roomResponse, 0, len(roomList))
	for i := range roomList {
		out = append(out, toRoomResponse(&roomList[i]))
	}
	respondSuccess(c, http.StatusOK, out, "")
}

// Create serves POST /rooms/ (admin only).
func (h *RoomHandler) Create(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "name and capacity are required")
		return
	}

	actor, _ := currentUser(c)
	room := &domain.Room{
		Name:        req.Name,
		Price:       req.Price,
		Capacity:    req.Capacity,
		Type:        domain.RoomType(req.Type),
		Description: req.Description,
		IsPopular:   req.IsPopular,
	}
	if err := h.service.Create(c.Request.Context(), actor, room); err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			respondError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, domain.ErrInvalidRoom):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respondSuccess(c, http.StatusCreated, toRoomResponse(room), "Room created successfully")
}

func parseListQuery(c *gin.Context) (rooms.ListQuery, error) {
	var query rooms.ListQuery

	var err error
	if query.Filter.Price, err = floatParam(c, "price"); err != nil {
		return query, err
	}
	if query.Filter.PriceGTE, err = floatParam(c, "price_gte"); err != nil {
		return query, err
	}
	if query.Filter.PriceLTE, err = floatParam(c, "price_lte"); err != nil {
		return query, err
	}
	if query.Filter.Capacity, err = intParam(c, "capacity"); err != nil {
		return query, err
	}
	if query.Filter.CapacityGTE, err = intParam(c, "capacity_gte"); err != nil {
		return query, err
	}
	if query.Filter.CapacityLTE, err = intParam(c, "capacity_lte"); err != nil {
		return query, err
	}
	query.Filter.Search = c.Query("search")
	query.Filter.Ordering = c.Query("ordering")

	if query.StartDate, err = dateParam(c, "start_date"); err != nil {
		return query, err
	}
	if query.EndDate, err = dateParam(c, "end_date"); err != nil {
		return query, err
	}
	return query, nil
}

func floatParam(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	return &v, nil
}

func intParam(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	return &v, nil
}

func dateParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, errors.New("invalid " + name + ": expected YYYY-MM-DD")
	}
	return &v, nil
}

func toRoomResponse(room *domain.Room) roomResponse {
	return roomResponse{
		ID:          room.ID,
		Name:        room.Name,
		Description: room.Description,
		Price:       room.Price,
		Capacity:    room.Capacity,
		Type:        string(room.Type),
		CreatedAt:   room.CreatedAt.Format(time.RFC3339),
		IsPopular:   room.IsPopular,
	}
}
