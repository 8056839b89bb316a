package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/KamylovMurad/API-hotel/internal/domain"
	"github.com/KamylovMurad/API-hotel/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type reserveRequest struct {
	Room      int64  `json:"room" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type bookingRef struct {
	ID int64 `json:"id" binding:"required"`
}

type bookingResponse struct {
	ID        int64  `json:"id"`
	Room      int64  `json:"room"`
	CreatedAt string `json:"created_at"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// Reserve serves POST /reserve/.
func (h *BookingHandler) Reserve(c *gin.Context) {
	var req reserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "room, start_date and end_date are required")
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid start_date: expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid end_date: expected YYYY-MM-DD")
		return
	}

	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	created, err := h.service.Create(c.Request.Context(), user, req.Room, start, end)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, toBookingResponse(created), "Booking created successfully")
}

// ListMine serves GET /bookings/.
func (h *BookingHandler) ListMine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	bookings, err := h.service.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	respondSuccess(c, http.StatusOK, out, "")
}

// Cancel serves POST /bookings/cancel/.
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req bookingRef
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "id is required")
		return
	}

	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	cancelled, err := h.service.Cancel(c.Request.Context(), user, req.ID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, toBookingResponse(cancelled), "Booking cancelled successfully")
}

// Confirm serves POST /bookings/confirm/ (admin only).
func (h *BookingHandler) Confirm(c *gin.Context) {
	var req bookingRef
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "id is required")
		return
	}

	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	confirmed, err := h.service.Confirm(c.Request.Context(), user, req.ID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, toBookingResponse(confirmed), "Booking confirmed successfully")
}

// respondBookingError maps the business errors onto the envelope. Every
// booking failure is terminal for the request; nothing is retried.
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrBookingImmutable):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		respondError(c, http.StatusForbidden, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:        b.ID,
		Room:      b.RoomID,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		StartDate: b.StartDate.Format(dateLayout),
		EndDate:   b.EndDate.Format(dateLayout),
		Status:    string(b.Status),
	}
}
