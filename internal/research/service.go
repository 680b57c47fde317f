package research

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/prepscout/internal/domain"
	"github.com/MrSnakeDoc/prepscout/internal/logger"
	"github.com/MrSnakeDoc/prepscout/internal/sources/gemini"
	"github.com/MrSnakeDoc/prepscout/internal/sources/youtube"
)

// ErrEmptyCompany is returned before any external call when no company is given.
var ErrEmptyCompany = errors.New("please enter a company name")

type OverviewGenerator interface {
	Generate(ctx context.Context, company, role string) gemini.Result
}

type RepoSearcher interface {
	Search(ctx context.Context, queries []string) []domain.RepoRecord
}

type Options struct {
	MaxResources   int
	VideosPerTopic int
}

// Service runs research requests. Each run is sequential; the Service
// itself holds no per-run state and is safe for concurrent use.
type Service struct {
	overview OverviewGenerator
	videos   youtube.Searcher
	repos    RepoSearcher
	opts     Options
	log      logger.Logger

	now   func() time.Time
	newID func() string
}

func NewService(overview OverviewGenerator, videos youtube.Searcher, repos RepoSearcher, opts Options, log logger.Logger) *Service {
	if opts.MaxResources <= 0 {
		opts.MaxResources = domain.DefaultMaxResources
	}
	if opts.VideosPerTopic <= 0 {
		opts.VideosPerTopic = youtube.DefaultLimit
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		overview: overview,
		videos:   videos,
		repos:    repos,
		opts:     opts,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Run researches one company. Only an empty company is an error; every
// external failure degrades into the report.
func (s *Service) Run(ctx context.Context, company, role string) (*Report, error) {
	company = strings.TrimSpace(company)
	role = strings.TrimSpace(role)
	if company == "" {
		return nil, ErrEmptyCompany
	}

	rep := &Report{
		RunID:     s.newID(),
		Company:   company,
		Role:      role,
		StartedAt: s.now(),
		General:   domain.RecommendedResources,
	}
	log := s.log.With(
		logger.String("run_id", rep.RunID),
		logger.String("company", company),
		logger.String("role", role),
	)
	log.Info("research started")

	rep.Overview = s.overview.Generate(ctx, company, role)

	for _, topic := range domain.VideoTopics {
		rep.Topics = append(rep.Topics, s.topicVideos(ctx, log, company, topic))
	}

	if role != "" {
		rep.RoleVideos = s.roleVideos(ctx, log, company, role)
	}

	s.resources(ctx, log, rep)

	rep.Duration = s.now().Sub(rep.StartedAt)
	log.Info("research finished",
		logger.Int("resources", len(rep.Resources)),
		logger.Bool("fallback", rep.FromFallback),
		logger.Duration("took", rep.Duration),
	)
	return rep, nil
}

func (s *Service) topicVideos(ctx context.Context, log logger.Logger, company, topic string) VideoSection {
	sec := VideoSection{
		Heading: domain.TopicHeading(topic),
		Query:   company + " " + topic,
	}

	videos, err := s.videos.Search(ctx, sec.Query, s.opts.VideosPerTopic)
	if err != nil {
		log.Warn("video search failed", logger.String("query", sec.Query), logger.Error(err))
		sec.Err = err
	}
	sec.Videos = videos

	if len(sec.Videos) == 0 {
		sec.Warning = fmt.Sprintf("No videos found for '%s'.", topic)
	}
	return sec
}

func (s *Service) roleVideos(ctx context.Context, log logger.Logger, company, role string) *VideoSection {
	sec := &VideoSection{
		Heading: domain.RoleHeading(role) + " at " + company,
		Query:   domain.RoleVideoQuery(company, role),
	}

	videos, err := s.videos.Search(ctx, sec.Query, youtube.DefaultLimit)
	if err != nil {
		log.Warn("role video search failed", logger.String("query", sec.Query), logger.Error(err))
		sec.Err = err
	}
	sec.Videos = domain.FilterRoleVideos(videos, company, role)

	if len(sec.Videos) == 0 {
		sec.Warning = fmt.Sprintf("Videos are not available for %s positions at %s.", role, company)
	} else {
		sec.Intro = fmt.Sprintf("Videos specific to %s positions at %s:", role, company)
	}
	return sec
}

func (s *Service) resources(ctx context.Context, log logger.Logger, rep *Report) {
	rep.Queries = domain.BuildQueries(rep.Company, rep.Role)

	records := s.repos.Search(ctx, rep.Queries)
	rep.Resources = domain.FilterResources(records, rep.Company, rep.Role, s.opts.MaxResources)

	log.Debug("repository records filtered",
		logger.Int("records", len(records)),
		logger.Int("kept", len(rep.Resources)),
	)

	if len(rep.Resources) == 0 {
		rep.Resources = domain.FallbackResources(rep.Company, rep.Role)
		rep.FromFallback = len(rep.Resources) > 0
		log.Info("no live resources, using curated table", logger.Int("fallback", len(rep.Resources)))
	}
}
