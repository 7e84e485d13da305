package redis_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraredis "github.com/retailchain/franchise-api/internal/infrastructure/redis"
)

type cachedFranchise struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T) (*infraredis.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	cache := infraredis.NewCacheWithClient(client)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestCacheSetGet(t *testing.T) {
	cache, _ := newTestCache(t)

	in := cachedFranchise{ID: 1, Name: "Acme"}
	require.NoError(t, cache.Set("franchise:1", in, 10*time.Minute))

	var out cachedFranchise
	hit, err := cache.Get("franchise:1", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, in, out)
}

func TestCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	var out cachedFranchise
	hit, err := cache.Get("franchise:99", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheCorruptValueIsMiss(t *testing.T) {
	cache, mr := newTestCache(t)

	// Un blob que no es JSON válido cuenta como miss, no como error
	require.NoError(t, mr.Set("franchise:1", "{esto no es json"))

	var out cachedFranchise
	hit, err := cache.Get("franchise:1", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheDelete(t *testing.T) {
	cache, _ := newTestCache(t)

	require.NoError(t, cache.Set("franchise:1", cachedFranchise{ID: 1, Name: "Acme"}, time.Minute))
	require.NoError(t, cache.Delete("franchise:1"))

	var out cachedFranchise
	hit, err := cache.Get("franchise:1", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	// Borrar una key inexistente no es error
	require.NoError(t, cache.Delete("franchise:1"))
}

func TestCacheTTLExpires(t *testing.T) {
	cache, mr := newTestCache(t)

	require.NoError(t, cache.Set("franchise:1", cachedFranchise{ID: 1, Name: "Acme"}, 10*time.Minute))
	assert.Equal(t, 10*time.Minute, mr.TTL("franchise:1"))

	mr.FastForward(11 * time.Minute)

	var out cachedFranchise
	hit, err := cache.Get("franchise:1", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheGetConnectionError(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	// Con Redis caído el error sube al llamador, que decide degradar
	var out cachedFranchise
	hit, err := cache.Get("franchise:1", &out)
	assert.False(t, hit)
	assert.Error(t, err)
}
