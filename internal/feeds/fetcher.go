package feeds

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jamespfennell/gtfs"

	"nexttrain.nyc/internal/logging"
)

// Fetcher performs one HTTP GET plus protobuf decode per feed endpoint.
// It does not retry; re-polling is the monitor loop's job.
type Fetcher struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewFetcher(baseURL string, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// URL resolves an endpoint to its feed URL. The MTA appends non-default
// suffixes to the base URL with a hyphen.
func (f *Fetcher) URL(endpoint Endpoint) string {
	if endpoint == EndpointDefault {
		return f.baseURL
	}
	return fmt.Sprintf("%s-%s", f.baseURL, endpoint)
}

// Fetch retrieves one endpoint's feed and decodes it. Failures come in
// three kinds: transport errors (wrapped), HTTPStatusError for non-2xx
// responses, and decode errors (wrapped). All are non-fatal to the
// aggregate query.
func (f *Fetcher) Fetch(ctx context.Context, endpoint Endpoint) (*gtfs.Realtime, error) {
	url := f.URL(endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/x-protobuf")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, f.logger, "feed_response_body")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}

	realtime, err := gtfs.ParseRealtime(b, &gtfs.ParseRealtimeOptions{})
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}

	return realtime, nil
}
