package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KamylovMurad/API-hotel/internal/domain"
	"github.com/KamylovMurad/API-hotel/internal/service/rooms"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRoomUseCase is a mock implementation of rooms.RoomUseCase
type MockRoomUseCase struct {
	mock.Mock
}

func (m *MockRoomUseCase) List(ctx context.Context, query rooms.ListQuery) ([]domain.Room, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomUseCase) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomUseCase) Create(ctx context.Context, actor *domain.User, room *domain.Room) error {
	args := m.Called(ctx, actor, room)
	return args.Error(0)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestRoomHandler_List(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/available/", nil)

	roomList := []domain.Room{
		{ID: 1, Name: "Standard 12", Price: 3500, Capacity: 2, Type: domain.RoomTypeStandard},
	}

	mockService.On("List", c.Request.Context(), rooms.ListQuery{}).Return(roomList, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "success", resp.Status)

	mockService.AssertExpectations(t)
}

func TestRoomHandler_List_WithFilters(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/available/?capacity_gte=2&price_lte=5000&ordering=-price&start_date=2024-06-01&end_date=2024-06-05", nil)

	capacity := 2
	price := float64(5000)
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)

	expected := rooms.ListQuery{StartDate: &start, EndDate: &end}
	expected.Filter.CapacityGTE = &capacity
	expected.Filter.PriceLTE = &price
	expected.Filter.Ordering = "-price"

	mockService.On("List", c.Request.Context(), expected).Return([]domain.Room{}, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestRoomHandler_List_BadParam(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/available/?price=abc", nil)

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "error", resp.Status)
	mockService.AssertNotCalled(t, "List")
}

func TestRoomHandler_List_BadDate(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/available/?start_date=01.06.2024", nil)

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "List")
}

func TestRoomHandler_Create(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"name": "Luxe 1", "price": 9000, "capacity": 4, "type": "luxe"}`
	c.Request = httptest.NewRequest("POST", "/rooms/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	admin := &domain.User{ID: 1, Username: "admin", IsSuperuser: true}
	c.Set(userContextKey, admin)

	mockService.On("Create", c.Request.Context(), admin, mock.AnythingOfType("*domain.Room")).Return(nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Room created successfully", resp.Details)
	mockService.AssertExpectations(t)
}

func TestRoomHandler_Create_Forbidden(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"name": "Luxe 1", "price": 9000, "capacity": 4}`
	c.Request = httptest.NewRequest("POST", "/rooms/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	user := &domain.User{ID: 7, Username: "guest"}
	c.Set(userContextKey, user)

	mockService.On("Create", c.Request.Context(), user, mock.Anything).Return(domain.ErrForbidden)

	handler.Create(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertExpectations(t)
}

func TestRoomHandler_Create_InvalidBody(t *testing.T) {
	mockService := &MockRoomUseCase{}
	handler := NewRoomHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/rooms/", strings.NewReader(`{"price": 100}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}
