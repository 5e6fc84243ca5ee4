package verification

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// codeKeyPrefix is the key prefix for pending codes in Redis
const codeKeyPrefix = "verification_code:"

// Config holds configuration for the Redis verification repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// CodeTTL is how long an unconsumed code stays valid. Zero disables
	// expiry.
	CodeTTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed verification repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.CodeTTL,
	}, nil
}

// BindCode stores a pending code, overwriting any prior one
func (r *redisRepository) BindCode(ctx context.Context, input *BindCodeInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	key := codeKey(input.ChatID)
	if err := r.client.Set(ctx, key, input.Code, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to bind code: %w", err)
	}

	return nil
}

// ConsumeCode retrieves and removes the pending code in one round trip
func (r *redisRepository) ConsumeCode(ctx context.Context, input *ConsumeCodeInput) (*ConsumeCodeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := codeKey(input.ChatID)
	value, err := r.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("failed to consume code: %w", err)
	}

	code, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored code %q: %w", value, err)
	}

	return &ConsumeCodeOutput{
		Code: code,
	}, nil
}

// ClearCode removes any pending code
func (r *redisRepository) ClearCode(ctx context.Context, input *ClearCodeInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.client.Del(ctx, codeKey(input.ChatID)).Err(); err != nil {
		return fmt.Errorf("failed to clear code: %w", err)
	}

	return nil
}

func codeKey(chatID int64) string {
	return fmt.Sprintf("%s%d", codeKeyPrefix, chatID)
}
