package preferences

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"

	"github.com/osrstools/dps-store/errors"
	"github.com/osrstools/dps-store/osrs"
	redisclient "github.com/osrstools/dps-store/redis"
)

// prefsKey is the single record the calculator persists.
const prefsKey = "dps-calc-prefs"

const errPrefsNil = "preferences cannot be nil"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig holds the dependencies for the Redis-backed repository
type RedisConfig struct {
	Client redisclient.Client
}

// NewRedis creates a new Redis-backed preferences repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	result, err := r.client.Get(ctx, prefsKey).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, errors.NotFound("no preferences persisted yet")
		}
		return nil, errors.Wrapf(err, "failed to get preferences").
			WithMeta("key", prefsKey)
	}

	var prefs osrs.PreferencesPartial
	if err := json.Unmarshal([]byte(result), &prefs); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal preferences").
			WithMeta("key", prefsKey)
	}

	return &GetOutput{Preferences: &prefs}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.Preferences == nil {
		return nil, errors.InvalidArgument(errPrefsNil)
	}

	data, err := json.Marshal(input.Preferences)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal preferences")
	}

	// No TTL; the record lives until the user changes it again.
	if err := r.client.Set(ctx, prefsKey, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save preferences").
			WithMeta("key", prefsKey)
	}

	return &SetOutput{}, nil
}
