package api

import (
	"errors"
	"net/http"

	"github.com/KamylovMurad/API-hotel/internal/domain"
	"github.com/KamylovMurad/API-hotel/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service      auth.AuthUseCase
	cookieMaxAge int
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func NewAuthHandler(service auth.AuthUseCase, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{service: service, cookieMaxAge: cookieMaxAge}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	h.setSessionCookie(c, token)
	respondSuccess(c, http.StatusCreated, userResponse{ID: user.ID, Username: user.Username}, "Registration successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}

	h.setSessionCookie(c, token)
	respondSuccess(c, http.StatusOK, userResponse{ID: user.ID, Username: user.Username}, "")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), sessionToken(c)); err != nil {
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	respondSuccess(c, http.StatusOK, nil, "Logged out successfully")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookie, token, h.cookieMaxAge, "/", "", false, true)
}
