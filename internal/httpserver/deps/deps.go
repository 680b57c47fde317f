package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/prepscout/internal/logger"
	"github.com/MrSnakeDoc/prepscout/internal/research"
)

// Researcher runs one research request.
type Researcher interface {
	Run(ctx context.Context, company, role string) (*research.Report, error)
}

// QuotaStatus is the shared search quota as seen by /readyz.
type QuotaStatus interface {
	Ping(ctx context.Context) error
	Used(ctx context.Context) (int64, error)
}

type Deps struct {
	Logger             logger.Logger
	Research           Researcher
	Title              string // page title
	Description        string // shown under the title
	StartTime          time.Time
	Version            string
	Commit             string
	BuildDate          string
	GoVersion          string
	TimeNow            func() time.Time // for testing, defaults to time.Now
	AllowedCIDRS       []string         // IPs allowed to access healthz/readyz endpoints
	TrustProxy         bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RateLimitBurst     int              // research requests per client before throttling
	RateLimitPerMinute int              // research token refill per client
	GitHubAPIURL       string
	GitHubToken        bool        // a token is configured, not the token itself
	ModelKeySet        bool        // the generative model has an API key
	VideoProvider      string      // "ytdlp" | "api"
	Quota              QuotaStatus // nil when the shared search quota is disabled
}

// Now returns TimeNow() or time.Now when unset.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
