package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/prepscout/internal/httpserver/deps"
)

const pingTimeout = 2 * time.Second

type componentStatus struct {
	OK     bool   `json:"ok"`
	Mode   string `json:"mode,omitempty"`
	Impact string `json:"impact,omitempty"`
	Error  string `json:"error,omitempty"`
	Used   *int64 `json:"used,omitempty"` // quota slots taken in the current window
}

type readyzResponse struct {
	Ready      bool                       `json:"ready"`
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Readyz reports whether a research run can currently succeed. A missing
// model key or GitHub endpoint makes the service not ready; an
// unreachable Redis only degrades it, searches then run without the
// shared quota.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"github": checkGitHub(d),
			"model":  checkModel(d),
			"videos": {OK: true, Mode: d.VideoProvider},
			"redis":  checkRedis(r.Context(), d),
		}

		resp := readyzResponse{
			Ready:      components["github"].OK && components["model"].OK,
			Mode:       determineMode(components),
			Components: components,
		}

		status := http.StatusOK
		if !resp.Ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, resp)
	}
}

func determineMode(components map[string]componentStatus) string {
	for _, name := range []string{"github", "model"} {
		if !components[name].OK {
			return "critical"
		}
	}
	if !components["redis"].OK {
		return "degraded"
	}
	return "optimal"
}

func checkGitHub(d deps.Deps) componentStatus {
	if d.GitHubAPIURL == "" {
		return componentStatus{OK: false, Error: "endpoint not configured"}
	}
	if d.GitHubToken {
		return componentStatus{OK: true, Mode: "token"}
	}
	return componentStatus{OK: true, Mode: "anonymous", Impact: "low-search-quota"}
}

func checkModel(d deps.Deps) componentStatus {
	if !d.ModelKeySet {
		return componentStatus{OK: false, Error: "api key missing"}
	}
	return componentStatus{OK: true}
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.Quota == nil {
		return componentStatus{OK: true, Mode: "disabled", Impact: "no-shared-quota"}
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := d.Quota.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "shared-quota-bypassed",
			Error:  err.Error(),
		}
	}
	st := componentStatus{OK: true, Mode: "shared-quota"}
	if used, err := d.Quota.Used(ctx); err == nil {
		st.Used = &used
	}
	return st
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
