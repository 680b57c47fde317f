package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MrSnakeDoc/prepscout/internal/domain"
	"github.com/MrSnakeDoc/prepscout/internal/utils"
)

const DefaultAPIBaseURL = "https://www.googleapis.com/youtube/v3"

// DataAPI searches through the YouTube Data API v3 search endpoint.
type DataAPI struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *http.Client
}

func NewDataAPI(baseURL, apiKey string, timeout time.Duration, h *http.Client) *DataAPI {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	if h == nil {
		h = &http.Client{}
	}
	return &DataAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
		http:    h,
	}
}

type apiSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

func (d *DataAPI) Search(ctx context.Context, query string, limit int) ([]domain.Video, error) {
	limit = normalizeLimit(limit)

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(limit))
	params.Set("key", d.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := d.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube data API: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("youtube data API %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result apiSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode youtube data API: %w", err)
	}

	videos := make([]domain.Video, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID == "" || item.Snippet.Title == "" {
			continue
		}
		videos = append(videos, domain.NewVideo(item.ID.VideoID, item.Snippet.Title))
		if len(videos) == limit {
			break
		}
	}
	return videos, nil
}
