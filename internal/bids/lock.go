package bids

import (
	"context"
	"time"

	"agromart-backend/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "bidlock:"

// releaseScript deletes the lock only when it still holds our token, so an
// expired lock taken over by another request is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Locker serializes bid placement per land with a Redis SET NX lock.
// Placements on different lands never contend; two placements on the same
// land run their read-validate-append sequence one after the other.
type Locker struct {
	Rdb *redis.Client
	// TTL bounds how long a crashed holder can block a land. Zero means 5s.
	TTL time.Duration
	// RetryInterval is the poll interval while waiting. Zero means 25ms.
	RetryInterval time.Duration
}

func (l *Locker) ttl() time.Duration {
	if l.TTL > 0 {
		return l.TTL
	}
	return 5 * time.Second
}

func (l *Locker) retryInterval() time.Duration {
	if l.RetryInterval > 0 {
		return l.RetryInterval
	}
	return 25 * time.Millisecond
}

// Acquire blocks until the per-land lock is held or ctx is done. The returned
// release func is safe to call once; release failures only shorten the lock
// to its TTL.
func (l *Locker) Acquire(ctx context.Context, landID uuid.UUID) (func(), error) {
	key := lockKeyPrefix + landID.String()
	token := uuid.NewString()

	for {
		ok, err := l.Rdb.SetNX(ctx, key, token, l.ttl()).Result()
		if err != nil {
			return nil, apperr.Store(err)
		}
		if ok {
			return func() {
				releaseScript.Run(context.Background(), l.Rdb, []string{key}, token)
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, apperr.Store(ctx.Err())
		case <-time.After(l.retryInterval()):
		}
	}
}
