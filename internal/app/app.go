package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/prepscout/internal/config"
	"github.com/MrSnakeDoc/prepscout/internal/httpserver"
	"github.com/MrSnakeDoc/prepscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/prepscout/internal/logger"
	"github.com/MrSnakeDoc/prepscout/internal/redis"
	"github.com/MrSnakeDoc/prepscout/internal/research"
	"github.com/MrSnakeDoc/prepscout/internal/sources/gemini"
	"github.com/MrSnakeDoc/prepscout/internal/sources/github"
	"github.com/MrSnakeDoc/prepscout/internal/sources/youtube"
	redisstore "github.com/MrSnakeDoc/prepscout/internal/store/redis"
	"github.com/MrSnakeDoc/prepscout/internal/utils"
	"github.com/MrSnakeDoc/prepscout/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

// New loads the configuration and wires every component. Only a bad
// configuration is fatal; an unreachable Redis disables the shared quota.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	loggerClient := logger.New(cfg.Logging.Level, cfg.Logging.Pretty)
	loggerClient.Debug("configuration loaded",
		logger.String("path", cfg.Path),
		logger.Any("config", cfg.Redacted()))

	a := &App{cfg: cfg, logger: loggerClient}

	var quota *redisstore.Quota
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(context.Background(), redis.OptionsFromConfig(cfg.Redis), loggerClient)
		if err != nil {
			loggerClient.Warn("shared search quota disabled", logger.Error(err))
		} else {
			a.redisClient = client
			quota = redisstore.NewQuota(client, cfg.Research.GitHubQuotaPerMinute, redisstore.DefaultWindow)
		}
	} else {
		loggerClient.Info("redis not configured, shared search quota disabled")
	}

	ghOpts := []github.Option{
		github.WithToken(cfg.APIs.GitHub.Token),
		github.WithTimeout(cfg.Research.SearchTimeout),
		github.WithPause(cfg.Research.SearchPause),
		github.WithLogger(loggerClient.With(logger.String("component", "github"))),
	}
	if quota != nil {
		ghOpts = append(ghOpts, github.WithQuota(quota))
	}
	repos := github.New(cfg.Sources.GitHubAPIURL, ghOpts...)

	videos := newVideoSearcher(cfg, loggerClient)

	model := gemini.NewModel(gemini.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.APIs.Google.APIKey,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	})
	overview := gemini.NewOverview(model, loggerClient.With(logger.String("component", "gemini")))

	svc := research.NewService(overview, videos, repos, research.Options{
		MaxResources:   cfg.Research.MaxResources,
		VideosPerTopic: cfg.Research.VideosPerTopic,
	}, loggerClient)

	d := deps.Deps{
		Logger:             loggerClient,
		Research:           svc,
		Title:              cfg.App.Title,
		Description:        cfg.App.Description,
		StartTime:          time.Now(),
		Version:            version.Version,
		Commit:             version.Commit,
		BuildDate:          version.BuildDate,
		GoVersion:          version.GoVersion,
		TimeNow:            time.Now,
		AllowedCIDRS:       cfg.Access.AllowedCIDRs,
		TrustProxy:         cfg.Access.TrustProxy,
		RateLimitBurst:     cfg.Access.RateLimitBurst,
		RateLimitPerMinute: cfg.Access.RateLimitPerMinute,
		GitHubAPIURL:       cfg.Sources.GitHubAPIURL,
		GitHubToken:        cfg.APIs.GitHub.Token != "",
		ModelKeySet:        cfg.APIs.Google.APIKey != "",
		VideoProvider:      cfg.Videos.Provider,
	}
	if quota != nil {
		d.Quota = quota
	}

	a.server = httpserver.New(cfg, loggerClient, d)
	return a, nil
}

func newVideoSearcher(cfg *config.Config, log logger.Logger) youtube.Searcher {
	if cfg.Videos.Provider == "api" {
		log.Info("videos searched through the YouTube Data API")
		return youtube.NewDataAPI(cfg.Videos.APIBaseURL, cfg.APIs.YouTube.APIKey, cfg.Videos.Timeout, &http.Client{})
	}
	log.Info("videos searched through yt-dlp", logger.String("path", cfg.Videos.YtDlpPath))
	return youtube.NewYtDlp(cfg.Videos.YtDlpPath, cfg.Videos.Timeout, log.With(logger.String("component", "yt-dlp")))
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting %s on %s", version.String(), a.cfg.Server.Listen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		utils.CloseLogged(a.redisClient, "redis", a.logger)
	}

	a.logger.Info("✅ prepscout stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
