package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

const passLockKey = "efir:pass_lock"

// удаляет ключ, только если он все еще принадлежит владельцу токена
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// PassLock - блокировка прохода обнаружения в Redis, общая для всех экземпляров движка
type PassLock struct {
	redisClient *redis.Client
}

func NewPassLock(redisClient *redis.Client) service.PassLock {
	return &PassLock{redisClient: redisClient}
}

// Acquire пытается занять блокировку на ttl. ok = false, если ее держит другой экземпляр.
func (l *PassLock) Acquire(ctx context.Context, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.redisClient.SetNX(ctx, passLockKey, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire pass lock: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *PassLock) Release(ctx context.Context, token string) error {
	if err := releaseScript.Run(ctx, l.redisClient, []string{passLockKey}, token).Err(); err != nil {
		return fmt.Errorf("failed to release pass lock: %w", err)
	}
	return nil
}
