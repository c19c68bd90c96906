package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/questx-lab/questlog/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrSettingNotStored is returned when a setting has never been written.
	ErrSettingNotStored = errors.New("setting is not stored")

	ErrSettingStorageDisabled = errors.New("setting storage is disabled")
)

type SettingRepository interface {
	Get(ctx context.Context, scope, name string) (any, error)
	Set(ctx context.Context, scope, name string, value any) error
}

type settingRepository struct {
	redisClient xredis.Client
}

// NewSettingRepository stores settings in redis hashes. With a nil client nothing is stored and
// every setting keeps its default.
func NewSettingRepository(redisClient xredis.Client) *settingRepository {
	return &settingRepository{redisClient: redisClient}
}

func (r *settingRepository) key(scope string) string {
	return "questlog:settings:" + scope
}

func (r *settingRepository) Get(ctx context.Context, scope, name string) (any, error) {
	if r.redisClient == nil {
		return nil, ErrSettingNotStored
	}

	raw, err := r.redisClient.HGet(ctx, r.key(scope), name)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSettingNotStored
		}

		return nil, err
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, err
	}

	return value, nil
}

func (r *settingRepository) Set(ctx context.Context, scope, name string, value any) error {
	if r.redisClient == nil {
		return ErrSettingStorageDisabled
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return r.redisClient.HSet(ctx, r.key(scope), name, string(b))
}
