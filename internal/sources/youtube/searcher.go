package youtube

import (
	"context"

	"github.com/MrSnakeDoc/prepscout/internal/domain"
)

// DefaultLimit is the number of videos shown per topic.
const DefaultLimit = 3

// Searcher returns up to limit videos for a free-text query.
// Entries missing a title or an id are never returned.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Video, error)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
