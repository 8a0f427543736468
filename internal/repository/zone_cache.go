package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

const zoneSnapshotKey = "zones:snapshot"

// ZoneCache хранит снимок активных зон в Redis на случай недоступности бд
type ZoneCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewZoneCache(redisClient *redis.Client, ttl time.Duration) service.ZoneCache {
	return &ZoneCache{redisClient: redisClient, ttl: ttl}
}

// SaveZones сохраняет снимок зон в Redis
func (c *ZoneCache) SaveZones(ctx context.Context, zones []*models.ZoneRecord) error {
	val, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("failed to marshal zones for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, zoneSnapshotKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set zones in cache: %w", err)
	}
	return nil
}

// LoadZones пытается получить снимок зон из Redis
func (c *ZoneCache) LoadZones(ctx context.Context) ([]*models.ZoneRecord, error) {
	val, err := c.redisClient.Get(ctx, zoneSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get zones from cache: %w", err)
	}

	zones := make([]*models.ZoneRecord, 0)
	if err := json.Unmarshal(val, &zones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal zones from cache: %w", err)
	}
	return zones, nil
}
