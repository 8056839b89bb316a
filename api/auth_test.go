package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KamylovMurad/API-hotel/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of auth.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, username, password string) (*domain.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthUseCase) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestAuthHandler_Register(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, 3600)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"username": "ivan", "password": "correct-horse7"}`
	c.Request = httptest.NewRequest("POST", "/register/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	user := &domain.User{ID: 7, Username: "ivan"}
	mockService.On("Register", c.Request.Context(), "ivan", "correct-horse7").Return(user, "token-1", nil)

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Registration successful", resp.Details)
	assert.Contains(t, w.Header().Get("Set-Cookie"), sessionCookie+"=token-1")

	mockService.AssertExpectations(t)
}

func TestAuthHandler_Register_WeakPassword(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, 3600)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"username": "ivan", "password": "1234"}`
	c.Request = httptest.NewRequest("POST", "/register/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Register", c.Request.Context(), "ivan", "1234").Return(nil, "", domain.ErrWeakPassword)

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "error", resp.Status)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, 3600)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/register/", strings.NewReader(`{"username": "ivan"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Register")
}

func TestAuthHandler_Login(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, 3600)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"username": "ivan", "password": "correct-horse7"}`
	c.Request = httptest.NewRequest("POST", "/login/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	user := &domain.User{ID: 7, Username: "ivan"}
	mockService.On("Login", c.Request.Context(), "ivan", "correct-horse7").Return(user, "token-1", nil)

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "success", resp.Status)
	assert.Contains(t, w.Header().Get("Set-Cookie"), sessionCookie+"=token-1")
	mockService.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, 3600)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"username": "ivan", "password": "wrong"}`
	c.Request = httptest.NewRequest("POST", "/login/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Login", c.Request.Context(), "ivan", "wrong").Return(nil, "", domain.ErrInvalidCredentials)

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Invalid credentials", resp.Details)
}

func TestAuthHandler_Logout(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService, 3600)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/logout/", nil)
	c.Request.AddCookie(&http.Cookie{Name: sessionCookie, Value: "token-1"})

	mockService.On("Logout", c.Request.Context(), "token-1").Return(nil)

	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Logged out successfully", resp.Details)
	mockService.AssertExpectations(t)
}
