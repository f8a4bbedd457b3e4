package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prosocial/zen-api/internal/config"
	"github.com/prosocial/zen-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SnapshotCache guarda snapshots de dashboard serializados em JSON no Redis,
// um por estúdio. Cache miss retorna (nil, nil).
type SnapshotCache struct {
	client *redis.Client
}

func NewSnapshotCache(client *redis.Client) *SnapshotCache {
	return &SnapshotCache{client: client}
}

// NewRedisClient cria o cliente Redis e valida a conexão.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao conectar no Redis")
	}

	return client, nil
}

func snapshotKey(studioID int) string {
	return fmt.Sprintf("dashboard:snapshot:%d", studioID)
}

func (c *SnapshotCache) Get(ctx context.Context, studioID int) (*domain.DashboardSnapshot, error) {
	data, err := c.client.Get(ctx, snapshotKey(studioID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler snapshot do cache")
	}

	var snapshot domain.DashboardSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, errors.Wrap(err, "erro ao deserializar snapshot do cache")
	}

	return &snapshot, nil
}

func (c *SnapshotCache) Set(ctx context.Context, studioID int, snapshot *domain.DashboardSnapshot, ttl time.Duration) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar snapshot para o cache")
	}

	return c.client.Set(ctx, snapshotKey(studioID), data, ttl).Err()
}

func (c *SnapshotCache) Invalidate(ctx context.Context, studioID int) error {
	return c.client.Del(ctx, snapshotKey(studioID)).Err()
}
