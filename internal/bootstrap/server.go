package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/KamylovMurad/API-hotel/api"
	"github.com/KamylovMurad/API-hotel/config"
	"github.com/KamylovMurad/API-hotel/internal/service/auth"
	"github.com/KamylovMurad/API-hotel/internal/service/booking"
	"github.com/KamylovMurad/API-hotel/internal/service/rooms"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, authSvc auth.AuthUseCase, roomSvc rooms.RoomUseCase, bookingSvc booking.BookingUseCase) error {
	router := NewRouter(cfg, authSvc, roomSvc, bookingSvc)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter wires the handlers, middleware and routes.
func NewRouter(cfg *config.Config, authSvc auth.AuthUseCase, roomSvc rooms.RoomUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	cookieMaxAge := cfg.Session.TTLHours * 3600
	authHandler := api.NewAuthHandler(authSvc, cookieMaxAge)
	roomHandler := api.NewRoomHandler(roomSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)

	authed := api.RequireAuth(authSvc)
	guest := api.GuestOnly(authSvc)
	admin := api.RequireAdmin()

	router.GET("/", api.Root)
	router.POST("/register/", guest, authHandler.Register)
	router.POST("/login/", guest, authHandler.Login)
	router.GET("/logout/", authed, authHandler.Logout)

	router.GET("/available/", roomHandler.List)
	router.POST("/rooms/", authed, admin, roomHandler.Create)

	router.POST("/reserve/", authed, bookingHandler.Reserve)
	router.GET("/bookings/", authed, bookingHandler.ListMine)
	router.POST("/bookings/cancel/", authed, bookingHandler.Cancel)
	router.POST("/bookings/confirm/", authed, admin, bookingHandler.Confirm)

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFile("/swagger/openapi.json", filepath.Join(cfg.HTTP.SwaggerDir, "openapi.json"))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return router
}
