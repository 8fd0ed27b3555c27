package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultFetchTimeout = 30 * time.Second

// httpClient is shared by all remote fetches.
var httpClient = &http.Client{Timeout: defaultFetchTimeout}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Fetch opens a catalog source for reading.
// Sources are local file paths, file:// URLs or http(s) URLs.
// The caller must close the returned reader.
func Fetch(ctx context.Context, source string) (io.ReadCloser, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: empty source", ErrUnsupportedSource)
	}

	if IsRemote(source) {
		return fetchHTTP(ctx, source)
	}

	path := source
	if strings.Contains(source, "://") {
		u, err := url.Parse(source)
		if err != nil {
			return nil, err
		}
		if u.Scheme != "file" {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, u.Scheme)
		}
		path = u.Path
	}
	return os.Open(path)
}

func fetchHTTP(ctx context.Context, source string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status fetching %s: %s", source, resp.Status)
	}
	return resp.Body, nil
}
