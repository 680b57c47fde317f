package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MrSnakeDoc/prepscout/internal/config"
	"github.com/MrSnakeDoc/prepscout/internal/httpserver/deps"
	"github.com/MrSnakeDoc/prepscout/internal/logger"
	"github.com/MrSnakeDoc/prepscout/internal/research"
)

type stubResearcher struct{}

func (stubResearcher) Run(_ context.Context, company, role string) (*research.Report, error) {
	return &research.Report{RunID: "r", Company: company, Role: role}, nil
}

func newTestServer(t *testing.T, d deps.Deps) http.Handler {
	t.Helper()
	cfg := config.Defaults()
	d.Logger = logger.Nop()
	d.Research = stubResearcher{}
	d.StartTime = time.Now()
	d.GitHubAPIURL = "https://api.github.com"
	d.ModelKeySet = true
	return New(cfg, d.Logger, d).Handler()
}

func TestRoutes(t *testing.T) {
	h := newTestServer(t, deps.Deps{RateLimitBurst: 5, RateLimitPerMinute: 10})

	tests := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodHead, "/", http.StatusOK},
		{http.MethodGet, "/research?company=Google", http.StatusOK},
		{http.MethodGet, "/research", http.StatusBadRequest},
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/missing", http.StatusNotFound},
		{http.MethodPost, "/research", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestResearchIsRateLimited(t *testing.T) {
	h := newTestServer(t, deps.Deps{RateLimitBurst: 1, RateLimitPerMinute: 1})

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/research?company=Google", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 429]", codes)
	}

	// the form itself is never throttled
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("index status = %d", w.Code)
	}
}

func TestOpsEndpointsRestrictedByCIDR(t *testing.T) {
	h := newTestServer(t, deps.Deps{AllowedCIDRS: []string{"10.0.0.0/8"}, RateLimitBurst: 5, RateLimitPerMinute: 10})

	for _, path := range []string{"/healthz", "/readyz"} {
		r := httptest.NewRequest(http.MethodGet, path, nil) // RemoteAddr 192.0.2.1
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s from outside: status = %d, want 403", path, w.Code)
		}

		r = httptest.NewRequest(http.MethodGet, path, nil)
		r.RemoteAddr = "10.1.1.1:5000"
		w = httptest.NewRecorder()
		h.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Errorf("%s from inside: status = %d, want 200", path, w.Code)
		}
	}

	// the research page stays public
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/research?company=Google", nil))
	if w.Code != http.StatusOK {
		t.Errorf("research status = %d", w.Code)
	}
}
