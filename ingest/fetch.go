package ingest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// ErrNoSource indicates that no input source was configured at all.
var ErrNoSource = errors.New("no input source configured")

// Fetcher acquires the raw input table from a URL or a local file.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a fetcher with a default HTTP client.
func NewFetcher() *Fetcher {
	return &Fetcher{httpClient: &http.Client{}}
}

// Fetch returns the raw bytes behind urlOrPath. Anything not starting
// with http:// or https:// is treated as a local file path.
func (f *Fetcher) Fetch(urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, ErrNoSource
	}

	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	resp, err := f.httpClient.Get(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}

	return io.ReadAll(resp.Body)
}
