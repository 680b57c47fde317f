package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are the config file candidates, checked in order.
var DefaultPaths = []string{"config/config.yaml", "config.yaml"}

// ErrNotFound is returned when none of the candidate files exist.
var ErrNotFound = errors.New("configuration file not found")

const redacted = "***REDACTED***"

type Config struct {
	App      AppConfig      `yaml:"app"`
	APIs     APIsConfig     `yaml:"apis"`
	Sources  SourcesConfig  `yaml:"sources"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Research ResearchConfig `yaml:"research"`
	Videos   VideosConfig   `yaml:"videos"`
	LLM      LLMConfig      `yaml:"llm"`
	Redis    RedisConfig    `yaml:"redis"`
	Access   AccessConfig   `yaml:"access"`

	// Path is the file the config was read from.
	Path string `yaml:"-"`
}

type AppConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type APIsConfig struct {
	Google  KeyConfig `yaml:"google"`
	YouTube KeyConfig `yaml:"youtube"`
	GitHub  struct {
		Token string `yaml:"token"` // optional, raises the search quota
	} `yaml:"github"`
}

type KeyConfig struct {
	APIKey string `yaml:"api_key"`
}

type SourcesConfig struct {
	GitHubAPIURL string `yaml:"github_api_url"` // ex: https://api.github.com
}

type ServerConfig struct {
	Listen          string        `yaml:"listen"`           // ex: ":8501"
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // ex: 5s
	RequestTimeout  time.Duration `yaml:"request_timeout"`  // whole research run, ex: 3m
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
	Pretty bool   `yaml:"pretty"` // true => zap dev (color), false => zap prod (JSON)
}

type ResearchConfig struct {
	MaxResources         int           `yaml:"max_resources"`           // repository links shown, default 8
	VideosPerTopic       int           `yaml:"videos_per_topic"`        // default 3
	SearchTimeout        time.Duration `yaml:"search_timeout"`          // per GitHub request, default 5s
	SearchPause          time.Duration `yaml:"search_pause"`            // between GitHub requests, default 200ms
	GitHubQuotaPerMinute int           `yaml:"github_quota_per_minute"` // shared window, only with redis
}

type VideosConfig struct {
	Provider   string        `yaml:"provider"`     // "ytdlp" | "api"
	YtDlpPath  string        `yaml:"ytdlp_path"`   // binary name or path
	Timeout    time.Duration `yaml:"timeout"`      // per search
	APIBaseURL string        `yaml:"api_base_url"` // YouTube Data API v3 base
}

type LLMConfig struct {
	BaseURL     string        `yaml:"base_url"` // OpenAI-compatible endpoint
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
}

type RedisConfig struct {
	Addr           string        `yaml:"addr"` // empty disables the shared quota
	Username       string        `yaml:"username"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

type AccessConfig struct {
	AllowedCIDRs       []string `yaml:"allowed_cidrs"` // restricts /healthz and /readyz, empty = open
	TrustProxy         bool     `yaml:"trust_proxy"`
	RateLimitBurst     int      `yaml:"rate_limit_burst"`
	RateLimitPerMinute int      `yaml:"rate_limit_per_minute"`
}

// Defaults returns a Config populated with every optional setting.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:          ":8501",
			ShutdownTimeout: 5 * time.Second,
			RequestTimeout:  3 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: true,
		},
		Research: ResearchConfig{
			MaxResources:         8,
			VideosPerTopic:       3,
			SearchTimeout:        5 * time.Second,
			SearchPause:          200 * time.Millisecond,
			GitHubQuotaPerMinute: 10,
		},
		Videos: VideosConfig{
			Provider:   "ytdlp",
			YtDlpPath:  "yt-dlp",
			Timeout:    30 * time.Second,
			APIBaseURL: "https://www.googleapis.com/youtube/v3",
		},
		LLM: LLMConfig{
			BaseURL:     "https://generativelanguage.googleapis.com/v1beta/openai",
			Temperature: 0.2,
			MaxTokens:   4096,
			Timeout:     60 * time.Second,
		},
		Redis: RedisConfig{
			ConnectTimeout: 5 * time.Second,
		},
		Access: AccessConfig{
			RateLimitBurst:     5,
			RateLimitPerMinute: 10,
		},
	}
}

// Load reads an optional .env, locates the config file, applies environment
// overrides and validates the result.
func Load() (*Config, error) {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	paths := DefaultPaths
	if explicit := env.Str("PREPSCOUT_CONFIG", ""); explicit != "" {
		paths = append([]string{explicit}, paths...)
	}

	path, err := Locate(paths)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

// Locate returns the first existing regular file among paths.
func Locate(paths []string) (string, error) {
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err == nil && !fi.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: looked in %s", ErrNotFound, strings.Join(paths, ", "))
}

// LoadFile parses a YAML file on top of Defaults. It does not validate.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}
	cfg.Path = path
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Listen = env.Str("PREPSCOUT_LISTEN", cfg.Server.Listen)
	cfg.Logging.Level = env.Str("PREPSCOUT_LOG_LEVEL", cfg.Logging.Level)
	if v := env.Str("PREPSCOUT_PRETTY_LOG", ""); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Logging.Pretty = b
		}
	}
	cfg.APIs.Google.APIKey = env.Str("GEMINI_API_KEY", cfg.APIs.Google.APIKey)
	cfg.APIs.YouTube.APIKey = env.Str("YOUTUBE_API_KEY", cfg.APIs.YouTube.APIKey)
	cfg.APIs.GitHub.Token = env.Str("GITHUB_TOKEN", cfg.APIs.GitHub.Token)
	cfg.Redis.Addr = env.Str("PREPSCOUT_REDIS_ADDR", cfg.Redis.Addr)
}

// Validate checks required keys and limits.
func (c *Config) Validate() error {
	var errs []error

	required := []struct {
		key, val string
	}{
		{"apis.google.api_key", c.APIs.Google.APIKey},
		{"apis.youtube.api_key", c.APIs.YouTube.APIKey},
		{"sources.github_api_url", c.Sources.GitHubAPIURL},
		{"app.title", c.App.Title},
		{"app.description", c.App.Description},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.key))
		}
	}

	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.request_timeout must be > 0, got %v", c.Server.RequestTimeout))
	}
	if c.Research.MaxResources <= 0 {
		errs = append(errs, fmt.Errorf("research.max_resources must be > 0, got %d", c.Research.MaxResources))
	}
	if c.Research.VideosPerTopic <= 0 {
		errs = append(errs, fmt.Errorf("research.videos_per_topic must be > 0, got %d", c.Research.VideosPerTopic))
	}
	if c.Research.SearchTimeout <= 0 {
		errs = append(errs, fmt.Errorf("research.search_timeout must be > 0, got %v", c.Research.SearchTimeout))
	}
	if c.Research.SearchPause < 0 {
		errs = append(errs, fmt.Errorf("research.search_pause must be >= 0, got %v", c.Research.SearchPause))
	}
	switch c.Videos.Provider {
	case "ytdlp", "api":
	default:
		errs = append(errs, fmt.Errorf("videos.provider must be ytdlp or api, got %q", c.Videos.Provider))
	}

	return errors.Join(errs...)
}

// Redacted returns a copy safe to log.
func (c *Config) Redacted() Config {
	cp := *c
	if cp.APIs.Google.APIKey != "" {
		cp.APIs.Google.APIKey = redacted
	}
	if cp.APIs.YouTube.APIKey != "" {
		cp.APIs.YouTube.APIKey = redacted
	}
	if cp.APIs.GitHub.Token != "" {
		cp.APIs.GitHub.Token = redacted
	}
	if cp.Redis.Password != "" {
		cp.Redis.Password = redacted
	}
	return cp
}
