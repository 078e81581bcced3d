package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/nmoretto/fieldops/types"
)

// pingTimeout bounds the connectivity check at construction.
const pingTimeout = 3 * time.Second

// RedisStore keeps the save record under a single key.
type RedisStore struct {
	client *redis.Client
	key    string
	log    zerolog.Logger
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to addr and verifies the server answers a ping
// before returning the store.
func NewRedisStore(addr, key string, log zerolog.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	log.Debug().Str("addr", addr).Str("key", key).Msg("redis store connected")
	return &RedisStore{client: client, key: key, log: log}, nil
}

func (s *RedisStore) Save(ctx context.Context, rec types.PlayerRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding save record: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	s.log.Debug().Str("key", s.key).Int("bytes", len(data)).Msg("save record written")
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (types.PlayerRecord, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return types.PlayerRecord{}, ErrNoSave
		}
		return types.PlayerRecord{}, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	var rec types.PlayerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return types.PlayerRecord{}, fmt.Errorf("decoding save record: %w", err)
	}
	return rec, nil
}

// Close releases the client connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
