package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/KamylovMurad/API-hotel/config"
	"github.com/KamylovMurad/API-hotel/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client   *redis.Client
	roomsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, roomsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		roomsTTL: roomsTTL,
	}
}

// GetRooms returns the cached unfiltered room list, or nil on a miss.
func (c *RedisCache) GetRooms(ctx context.Context) ([]domain.Room, error) {
	data, err := c.client.Get(ctx, roomsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var rooms []domain.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *RedisCache) SetRooms(ctx context.Context, rooms []domain.Room) error {
	payload, err := json.Marshal(rooms)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, roomsKey(), payload, c.roomsTTL).Err()
}

func (c *RedisCache) InvalidateRooms(ctx context.Context) error {
	return c.client.Del(ctx, roomsKey()).Err()
}

// CreateSession stores token -> user id with the given TTL. Sessions live
// only in redis; there is no SQL table behind them.
func (c *RedisCache) CreateSession(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	return c.client.Set(ctx, sessionKey(token), userID, ttl).Err()
}

func (c *RedisCache) GetSession(ctx context.Context, token string) (int64, error) {
	val, err := c.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, domain.ErrSessionNotFound
		}
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (c *RedisCache) DeleteSession(ctx context.Context, token string) error {
	return c.client.Del(ctx, sessionKey(token)).Err()
}

func roomsKey() string {
	return "cache:rooms"
}

func sessionKey(token string) string {
	return "session:" + token
}
