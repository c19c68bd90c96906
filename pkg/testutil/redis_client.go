package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MockRedisClient is an in-memory xredis.Client. A non-nil Err is returned by every call.
type MockRedisClient struct {
	Err error

	mu     sync.Mutex
	values map[string]string
	hashes map[string]map[string]string
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		values: map[string]string{},
		hashes: map[string]map[string]string{},
	}
}

func (m *MockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok, nil
}

func (m *MockRedisClient) Del(ctx context.Context, keys ...string) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
		delete(m.hashes, key)
	}

	return nil
}

func (m *MockRedisClient) Set(ctx context.Context, key, value string) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockRedisClient) SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error {
	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	return m.Set(ctx, key, string(b))
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", redis.Nil
	}

	return v, nil
}

func (m *MockRedisClient) GetObj(ctx context.Context, key string, v any) error {
	s, err := m.Get(ctx, key)
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(s), v)
}

func (m *MockRedisClient) HSet(ctx context.Context, key, field, value string) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hashes[key] == nil {
		m.hashes[key] = map[string]string{}
	}
	m.hashes[key][field] = value
	return nil
}

func (m *MockRedisClient) HGet(ctx context.Context, key, field string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.hashes[key][field]
	if !ok {
		return "", redis.Nil
	}

	return v, nil
}

func (m *MockRedisClient) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	result := map[string]string{}
	for k, v := range m.hashes[key] {
		result[k] = v
	}

	return result, nil
}
