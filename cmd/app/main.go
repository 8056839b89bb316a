package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KamylovMurad/API-hotel/config"
	"github.com/KamylovMurad/API-hotel/internal/bootstrap"
	"github.com/KamylovMurad/API-hotel/internal/cache"
	"github.com/KamylovMurad/API-hotel/internal/kafka"
	"github.com/KamylovMurad/API-hotel/internal/repository"
	"github.com/KamylovMurad/API-hotel/internal/service/auth"
	"github.com/KamylovMurad/API-hotel/internal/service/booking"
	"github.com/KamylovMurad/API-hotel/internal/service/rooms"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.RoomsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	roomRepo := repository.NewRoomRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	authService := auth.NewAuthService(userRepo, redisCache, time.Duration(cfg.Session.TTLHours)*time.Hour)
	roomService := rooms.NewRoomService(roomRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		roomRepo,
		producer,
		cfg.Kafka.BookingEventsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, authService, roomService, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
