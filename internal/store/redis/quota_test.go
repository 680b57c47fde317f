package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestQuotaKey(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b time.Time
		same bool
	}{
		{"same minute", base.Add(5 * time.Second), base.Add(59 * time.Second), true},
		{"next minute", base.Add(59 * time.Second), base.Add(60 * time.Second), false},
		{"timezone independent", base, base.In(time.FixedZone("CET", 3600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka, kb := QuotaKey(tt.a, time.Minute), QuotaKey(tt.b, time.Minute)
			if (ka == kb) != tt.same {
				t.Errorf("QuotaKey(%v) = %q, QuotaKey(%v) = %q, same = %v", tt.a, ka, tt.b, kb, tt.same)
			}
			if !strings.HasPrefix(ka, KeyPrefixQuota) {
				t.Errorf("key %q lacks prefix", ka)
			}
		})
	}
}

func TestAllowed(t *testing.T) {
	if !allowed(10, 10) {
		t.Error("the last slot of a window should be allowed")
	}
	if allowed(11, 10) {
		t.Error("a slot past the limit should be refused")
	}
}

func TestQuotaWithoutLimit(t *testing.T) {
	q := NewQuota(nil, 0, 0)
	ok, err := q.Reserve(context.Background())
	if err != nil || !ok {
		t.Errorf("Reserve() = %v, %v, want true without a limit", ok, err)
	}
	if q.window != DefaultWindow {
		t.Errorf("window = %v, want default", q.window)
	}
}

func TestQuotaUnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer func() { _ = client.Close() }()

	q := NewQuota(client, 5, time.Minute)
	if _, err := q.Reserve(context.Background()); err == nil {
		t.Error("Reserve() should report an unreachable Redis")
	}
	if err := q.Ping(context.Background()); err == nil {
		t.Error("Ping() should report an unreachable Redis")
	}
	if _, err := q.Used(context.Background()); err == nil {
		t.Error("Used() should report an unreachable Redis")
	}
}
