package research

import (
	"fmt"
	"time"

	"github.com/MrSnakeDoc/prepscout/internal/domain"
	"github.com/MrSnakeDoc/prepscout/internal/sources/gemini"
)

// Report is everything one research run produced. It is built once and
// only read afterwards.
type Report struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	RunID     string
	Company   string
	Role      string // trimmed, original case
	StartedAt time.Time
	Duration  time.Duration

	// ─────────────────────────────
	// Sections, in page order
	// ─────────────────────────────

	Overview gemini.Result
	Topics   []VideoSection

	// RoleVideos is nil when no role was given.
	RoleVideos *VideoSection

	Resources []domain.Resource
	// FromFallback is set when the live search found nothing and the
	// curated table was used instead.
	FromFallback bool
	Queries      []string

	General []domain.GeneralResource
}

// VideoSection is one heading with its videos. Warning is set when the
// list is empty, Err when the search itself failed.
type VideoSection struct {
	Heading string
	Intro   string // optional sentence above the videos
	Query   string
	Videos  []domain.Video
	Warning string
	Err     error
}

// ResourcesIntro is the sentence shown above the repository links.
func (r *Report) ResourcesIntro() string {
	if r.Role != "" {
		return fmt.Sprintf("Relevant repository links for interview preparation for %s positions at %s:", r.Role, r.Company)
	}
	return fmt.Sprintf("Relevant repository links for interview preparation for %s:", r.Company)
}

func (r *Report) ResourcesInfo() string {
	return fmt.Sprintf("These resources can help you prepare for technical interviews and the hiring process at %s.", r.Company)
}

func (r *Report) ResourcesWarning() string {
	return fmt.Sprintf("Resources are not available for %s. Please try a different company name or check the general resources below.", r.Company)
}
