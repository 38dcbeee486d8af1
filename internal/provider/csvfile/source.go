package csvfile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// Source yields the full roster CSV text. Fetch is attempted once per call;
// there is no retry.
type Source interface {
	Fetch(ctx context.Context) (string, error)
	String() string
}

// NewSource picks an HTTPSource for http(s) locations and a FileSource for
// everything else. A zero timeout means the HTTP fetch is bounded only by ctx.
func NewSource(location string, timeout time.Duration, logger *slog.Logger) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, timeout, logger)
	}
	return FileSource{Path: location}
}

// --------------------------------------------------------------------------
// File
// --------------------------------------------------------------------------

// FileSource reads the CSV from the local filesystem.
type FileSource struct {
	Path string
}

// Fetch reads the whole file.
func (s FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.Path, err)
	}
	return string(b), nil
}

func (s FileSource) String() string { return s.Path }

// --------------------------------------------------------------------------
// HTTP
// --------------------------------------------------------------------------

// HTTPSource downloads the CSV with a single GET.
type HTTPSource struct {
	httpClient *http.Client
	url        string
	logger     *slog.Logger
}

// NewHTTPSource creates an HTTP source for url.
func NewHTTPSource(url string, timeout time.Duration, logger *slog.Logger) *HTTPSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPSource{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		logger:     logger,
	}
}

// Fetch performs the GET and returns the body as text. Non-200 responses are
// errors.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s returned %d: %s", s.url, resp.StatusCode, truncate(body, 200))
	}

	s.logger.Debug("Roster CSV downloaded", "url", s.url, "bytes", len(body), "duration", time.Since(start))
	return string(body), nil
}

func (s *HTTPSource) String() string { return s.url }

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
