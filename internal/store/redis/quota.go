package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultWindow is the length of one quota window.
const DefaultWindow = time.Minute

// Quota is a fixed-window counter shared by every instance using the same
// Redis. It caps GitHub search requests per window.
type Quota struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewQuota allows limit reservations per window. A non-positive limit
// allows everything.
func NewQuota(client *redis.Client, limit int, window time.Duration) *Quota {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Quota{
		client: client,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

// Reserve takes one slot of the current window. It returns false once the
// window is exhausted. The counter expires with its window.
func (q *Quota) Reserve(ctx context.Context) (bool, error) {
	if q.limit <= 0 {
		return true, nil
	}

	key := QuotaKey(q.now(), q.window)

	var incr *redis.IntCmd
	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		// twice the window so a slow clock on another instance still sees it
		pipe.Expire(ctx, key, 2*q.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("reserve quota slot: %w", err)
	}

	return allowed(incr.Val(), q.limit), nil
}

// Used returns the number of slots taken in the current window.
func (q *Quota) Used(ctx context.Context) (int64, error) {
	n, err := q.client.Get(ctx, QuotaKey(q.now(), q.window)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read quota window: %w", err)
	}
	return n, nil
}

// Ping checks that the backing Redis answers.
func (q *Quota) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}

func allowed(count, limit int64) bool {
	return count <= limit
}
