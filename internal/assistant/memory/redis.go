package memory

import (
	"context"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session history in Redis with a TTL.
type RedisStore struct {
	cli *redis.Client
	ttl time.Duration
}

func NewRedisStore(cli *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisStore{cli: cli, ttl: ttl}
}

// NewRedisStoreFromURL connects and pings before returning a store.
func NewRedisStoreFromURL(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	cli := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cli.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return NewRedisStore(cli, ttl), nil
}

func (s *RedisStore) sessionKey(sessionID string) string {
	return "chat:session:" + sessionID
}

func (s *RedisStore) Read(ctx context.Context, sessionID string) ([]*schema.Message, error) {
	b, err := s.cli.Get(ctx, s.sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeMessages(b)
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, msgs ...*schema.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	existing, err := s.Read(ctx, sessionID)
	if err != nil {
		return err
	}
	b, err := encodeMessages(append(existing, msgs...))
	if err != nil {
		return err
	}
	return s.cli.Set(ctx, s.sessionKey(sessionID), b, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.cli.Del(ctx, s.sessionKey(sessionID)).Err()
}
