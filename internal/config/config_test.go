package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const validYAML = `
app:
  title: "Company Research Assistant"
  description: "Research a company before your interview"
apis:
  google:
    api_key: "g-key"
  youtube:
    api_key: "yt-key"
sources:
  github_api_url: "https://api.github.com"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", validYAML)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.App.Title != "Company Research Assistant" {
		t.Errorf("App.Title = %q", cfg.App.Title)
	}
	if cfg.Sources.GitHubAPIURL != "https://api.github.com" {
		t.Errorf("GitHubAPIURL = %q", cfg.Sources.GitHubAPIURL)
	}
	if cfg.Research.MaxResources != 8 {
		t.Errorf("MaxResources = %d, want 8", cfg.Research.MaxResources)
	}
	if cfg.Research.SearchTimeout != 5*time.Second {
		t.Errorf("SearchTimeout = %v, want 5s", cfg.Research.SearchTimeout)
	}
	if cfg.Research.SearchPause != 200*time.Millisecond {
		t.Errorf("SearchPause = %v, want 200ms", cfg.Research.SearchPause)
	}
	if cfg.Videos.Provider != "ytdlp" {
		t.Errorf("Videos.Provider = %q, want ytdlp", cfg.Videos.Provider)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	content := validYAML + `
server:
  listen: ":9000"
research:
  max_resources: 5
  search_pause: 1s
videos:
  provider: api
`
	path := writeFile(t, t.TempDir(), "config.yaml", content)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Server.Listen != ":9000" {
		t.Errorf("Listen = %q, want :9000", cfg.Server.Listen)
	}
	if cfg.Research.MaxResources != 5 {
		t.Errorf("MaxResources = %d, want 5", cfg.Research.MaxResources)
	}
	if cfg.Research.SearchPause != time.Second {
		t.Errorf("SearchPause = %v, want 1s", cfg.Research.SearchPause)
	}
	// untouched defaults survive a partial section
	if cfg.Research.VideosPerTopic != 3 {
		t.Errorf("VideosPerTopic = %d, want 3", cfg.Research.VideosPerTopic)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.Server.ShutdownTimeout)
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "app: [unclosed")
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() with invalid yaml should return error")
	}
}

func TestValidateMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantKey string
	}{
		{"google key", func(c *Config) { c.APIs.Google.APIKey = "" }, "apis.google.api_key"},
		{"youtube key", func(c *Config) { c.APIs.YouTube.APIKey = " " }, "apis.youtube.api_key"},
		{"github url", func(c *Config) { c.Sources.GitHubAPIURL = "" }, "sources.github_api_url"},
		{"title", func(c *Config) { c.App.Title = "" }, "app.title"},
		{"description", func(c *Config) { c.App.Description = "" }, "app.description"},
		{"max resources", func(c *Config) { c.Research.MaxResources = 0 }, "research.max_resources"},
		{"provider", func(c *Config) { c.Videos.Provider = "vimeo" }, "videos.provider"},
		{"request timeout", func(c *Config) { c.Server.RequestTimeout = 0 }, "server.request_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.yaml", validYAML)
			cfg, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantKey)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	nested := writeFile(t, dir, "config/config.yaml", validYAML)
	flat := writeFile(t, dir, "config.yaml", validYAML)

	got, err := Locate([]string{nested, flat})
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if got != nested {
		t.Errorf("Locate() = %q, want first candidate %q", got, nested)
	}

	got, err = Locate([]string{filepath.Join(dir, "missing.yaml"), flat})
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if got != flat {
		t.Errorf("Locate() = %q, want %q", got, flat)
	}

	// a directory is not a config file
	if _, err := Locate([]string{filepath.Join(dir, "config")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Locate(dir) error = %v, want ErrNotFound", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("PREPSCOUT_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Chdir(t.TempDir())

	_, err := Load()
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", validYAML)
	t.Setenv("PREPSCOUT_CONFIG", path)
	t.Setenv("PREPSCOUT_LISTEN", ":7777")
	t.Setenv("PREPSCOUT_PRETTY_LOG", "false")
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Listen != ":7777" {
		t.Errorf("Listen = %q, want :7777", cfg.Server.Listen)
	}
	if cfg.Logging.Pretty {
		t.Error("Pretty should be overridden to false")
	}
	if cfg.APIs.GitHub.Token != "ghp_test" {
		t.Errorf("GitHub token = %q", cfg.APIs.GitHub.Token)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestRedacted(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", validYAML)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	cfg.Redis.Password = "secret"

	r := cfg.Redacted()
	for _, v := range []string{r.APIs.Google.APIKey, r.APIs.YouTube.APIKey, r.Redis.Password} {
		if v != redacted {
			t.Errorf("secret not redacted: %q", v)
		}
	}
	if r.APIs.GitHub.Token != "" {
		t.Errorf("empty token should stay empty, got %q", r.APIs.GitHub.Token)
	}
	if cfg.APIs.Google.APIKey != "g-key" {
		t.Error("Redacted() must not mutate the original")
	}
}
