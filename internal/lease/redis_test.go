package lease

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// newTestClient starts a disposable Redis container. The test is skipped when
// no container runtime is reachable.
func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	
	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "start redis container")
	
	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)
	
	client := redis.NewClient(opts)
	require.NoError(t, client.Ping(ctx).Err())
	
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestAcquireIsExclusive(t *testing.T) {
	client := newTestClient(t)
	l := NewRedisLease(client, WithPrefix("test:lease:"+uuid.NewString()))
	ctx := context.Background()
	
	release, acquired, err := l.Acquire(ctx, "n1")
	require.NoError(t, err)
	require.True(t, acquired)
	
	_, acquired, err = l.Acquire(ctx, "n1")
	require.NoError(t, err)
	assert.False(t, acquired)
	
	_, acquired, err = l.Acquire(ctx, "n2")
	require.NoError(t, err)
	assert.True(t, acquired)
	
	release()
	
	release, acquired, err = l.Acquire(ctx, "n1")
	require.NoError(t, err)
	assert.True(t, acquired)
	release()
}

func TestAcquireConcurrentSingleWinner(t *testing.T) {
	client := newTestClient(t)
	l := NewRedisLease(client, WithPrefix("test:lease:"+uuid.NewString()))
	ctx := context.Background()
	
	const contenders = 16
	var (
		wg      sync.WaitGroup
		winners atomic.Int32
		start   = make(chan struct{})
	)
	for range contenders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, acquired, err := l.Acquire(ctx, "n1")
			assert.NoError(t, err)
			if acquired {
				winners.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()
	
	assert.EqualValues(t, 1, winners.Load())
}

func TestReleaseKeepsForeignLease(t *testing.T) {
	client := newTestClient(t)
	prefix := "test:lease:" + uuid.NewString()
	l := NewRedisLease(client, WithPrefix(prefix), WithTTL(50*time.Millisecond))
	ctx := context.Background()
	
	staleRelease, acquired, err := l.Acquire(ctx, "n1")
	require.NoError(t, err)
	require.True(t, acquired)
	
	require.Eventually(t, func() bool {
		_, acquired, err := l.Acquire(ctx, "n1")
		return err == nil && acquired
	}, time.Second, 20*time.Millisecond)
	
	staleRelease()
	
	exists, err := client.Exists(ctx, prefix+":n1").Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, exists)
	
	client.Del(ctx, prefix+":n1")
}

func TestAcquireAfterCancelledContextStillReleases(t *testing.T) {
	client := newTestClient(t)
	l := NewRedisLease(client, WithPrefix("test:lease:"+uuid.NewString()))
	ctx, cancel := context.WithCancel(context.Background())
	
	release, acquired, err := l.Acquire(ctx, "n1")
	require.NoError(t, err)
	require.True(t, acquired)
	
	cancel()
	release()
	
	_, acquired, err = l.Acquire(context.Background(), "n1")
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestDefaults(t *testing.T) {
	l := NewRedisLease(nil, WithTTL(0))
	
	assert.Equal(t, DefaultPrefix, l.prefix)
	assert.Equal(t, DefaultTTL, l.ttl)
	assert.Equal(t, "lease:notification:abc", l.key("abc"))
}
