package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	m.ttls[key] = ttl
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func (m *memoryCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok
}

func TestCacheServiceRoundTripUsesDefaultTTL(t *testing.T) {
	repo := newMemoryCache()
	svc := NewCacheService(repo, NewMetricsService(), time.Minute, nil, true)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "k", map[string]int{"a": 1}, 0))
	assert.Equal(t, time.Minute, repo.ttls["k"])

	var dest map[string]int
	hit, err := svc.Get(ctx, "k", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, dest["a"])

	require.NoError(t, svc.Delete(ctx, "k"))
	hit, err = svc.Get(ctx, "k", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := newMemoryCache()
	svc := NewCacheService(repo, nil, 0, nil, false)

	require.NoError(t, svc.Set(context.Background(), "k", 1, 0))
	assert.False(t, repo.has("k"))
	hit, err := svc.Get(context.Background(), "k", new(int))
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheServiceSurfacesBackendErrors(t *testing.T) {
	repo := newMemoryCache()
	repo.getErr = errors.New("connection refused")
	svc := NewCacheService(repo, nil, 0, nil, true)

	hit, err := svc.Get(context.Background(), "k", new(int))
	assert.Error(t, err)
	assert.False(t, hit)
}
