package redis

import (
	"fmt"
	"time"
)

const (
	// KeyPrefixQuota is the prefix for GitHub search quota windows
	KeyPrefixQuota = "prepscout:quota:github:"
)

// QuotaKey returns the counter key of the window containing t.
// Windows are aligned on multiples of size since the Unix epoch.
func QuotaKey(t time.Time, size time.Duration) string {
	return fmt.Sprintf("%s%d", KeyPrefixQuota, WindowStart(t, size).Unix())
}

// WindowStart truncates t to the beginning of its window.
func WindowStart(t time.Time, size time.Duration) time.Time {
	return t.UTC().Truncate(size)
}
