package lease

import (
	"context"
	"errors"
	"fmt"
	"time"
	
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultPrefix = "lease:notification"
	DefaultTTL    = 5 * time.Minute
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lease that someone else re-acquired is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Client is satisfied by *redis.Client and *redis.ClusterClient.
type Client interface {
	redis.Scripter
	SetArgs(ctx context.Context, key string, value interface{}, a redis.SetArgs) *redis.StatusCmd
}

// RedisLease is a single-instance Redis lock with a bounded lifetime.
type RedisLease struct {
	client Client
	prefix string
	ttl    time.Duration
}

type Option func(*RedisLease)

func WithPrefix(prefix string) Option {
	return func(l *RedisLease) {
		l.prefix = prefix
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(l *RedisLease) {
		if ttl > 0 {
			l.ttl = ttl
		}
	}
}

func NewRedisLease(client Client, opts ...Option) *RedisLease {
	l := &RedisLease{
		client: client,
		prefix: DefaultPrefix,
		ttl:    DefaultTTL,
	}
	
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *RedisLease) key(name string) string {
	return fmt.Sprintf("%s:%s", l.prefix, name)
}

// Acquire implements notification.Lease.
func (l *RedisLease) Acquire(ctx context.Context, name string) (func(), bool, error) {
	key := l.key(name)
	token := uuid.NewString()
	
	err := l.client.SetArgs(ctx, key, token, redis.SetArgs{Mode: "NX", TTL: l.ttl}).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		
		return nil, false, fmt.Errorf("failed to acquire lease %s: %w", key, err)
	}
	
	release := func() {
		// Release must run even when the task context is already cancelled.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		
		_ = releaseScript.Run(ctx, l.client, []string{key}, token).Err()
	}
	
	return release, true, nil
}
