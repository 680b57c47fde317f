package youtube

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/MrSnakeDoc/prepscout/internal/domain"
	"github.com/MrSnakeDoc/prepscout/internal/logger"
)

const maxLineSize = 1 << 20

// YtDlp searches through the yt-dlp binary in flat-playlist mode, so
// nothing is downloaded and each result is one JSON line on stdout.
type YtDlp struct {
	path    string
	timeout time.Duration
	log     logger.Logger
}

func NewYtDlp(path string, timeout time.Duration, log logger.Logger) *YtDlp {
	if path == "" {
		path = "yt-dlp"
	}
	if log == nil {
		log = logger.Nop()
	}
	return &YtDlp{path: path, timeout: timeout, log: log}
}

type flatEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (y *YtDlp) Search(ctx context.Context, query string, limit int) ([]domain.Video, error) {
	limit = normalizeLimit(limit)

	if y.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.timeout)
		defer cancel()
	}

	args := []string{
		"--dump-json",
		"--no-download",
		"--flat-playlist",
		"--no-warnings",
		"--quiet",
		fmt.Sprintf("ytsearch%d:%s", limit, query),
	}

	cmd := exec.CommandContext(ctx, y.path, args...)
	cmd.Env = append(os.Environ(), "PYTHONIOENCODING=utf-8")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start yt-dlp: %w", err)
	}

	videos, parseErr := y.parse(stdout, limit)

	// drain so Wait does not block on a full pipe
	_, _ = io.Copy(io.Discard, stdout)

	if err := cmd.Wait(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("yt-dlp failed: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("yt-dlp failed: %w", err)
	}
	if parseErr != nil {
		return nil, fmt.Errorf("read yt-dlp output: %w", parseErr)
	}

	return videos, nil
}

// parse reads one JSON entry per line. Undecodable lines and entries with
// no title or id are skipped.
func (y *YtDlp) parse(r io.Reader, limit int) ([]domain.Video, error) {
	videos := make([]domain.Video, 0, limit)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var e flatEntry
		if err := json.Unmarshal(line, &e); err != nil {
			y.log.Debug("skipping invalid yt-dlp line", logger.Error(err))
			continue
		}
		if e.ID == "" || e.Title == "" {
			continue
		}

		videos = append(videos, domain.NewVideo(e.ID, e.Title))
		if len(videos) == limit {
			break
		}
	}

	return videos, scanner.Err()
}
