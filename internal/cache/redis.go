package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"

	"github.com/emrgen/wiki/internal/model"
)

const entryTTL = time.Hour

func entryKey(id string) string {
	return "entry:" + id
}

var _ EntryCache = (*RedisEntryCache)(nil)

type RedisEntryCache struct {
	client *redis.Client
}

func NewRedisEntryCache(addr string) *RedisEntryCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password set
		DB:       0,  // Use default DB
		Protocol: 2,  // Connection protocol
	})

	return &RedisEntryCache{client: client}
}

func (r *RedisEntryCache) GetEntry(ctx context.Context, id uuid.UUID) (*model.Entry, error) {
	res := r.client.Get(ctx, entryKey(id.String()))
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return nil, nil
		}
		return nil, res.Err()
	}

	buf, err := res.Bytes()
	if err != nil {
		return nil, err
	}

	entry := &model.Entry{}
	err = json.Unmarshal(buf, entry)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *RedisEntryCache) SetEntry(ctx context.Context, entry *model.Entry) error {
	marshal, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, entryKey(entry.ID), marshal, entryTTL).Err()
}

func (r *RedisEntryCache) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, entryKey(id.String())).Err()
}
