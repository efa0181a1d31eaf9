package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/multierr"

	"github.com/vendascope/backend/pkg/logger"
)

// Source identifies where a batch of records came from.
type Source string

const (
	SourceSheet    Source = "sheet"
	SourceFallback Source = "fallback"
)

// maxBodyBytes bounds how much of the export we are willing to read; the
// real sheet is a few hundred KB at most.
const maxBodyBytes = 16 << 20

// Client fetches the spreadsheet CSV export and falls back to the embedded
// dataset when the live feed is unavailable or yields no rows.
type Client struct {
	url         string
	httpClient  *http.Client
	maxAttempts int
	logg        *logger.Logger
}

type ClientParams struct {
	URL          string
	FetchTimeout time.Duration
	MaxAttempts  int
	Logger       *logger.Logger
}

func NewClient(params ClientParams) (*Client, error) {
	if params.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if params.FetchTimeout <= 0 {
		params.FetchTimeout = 10 * time.Second
	}
	if params.MaxAttempts <= 0 {
		params.MaxAttempts = 3
	}
	return &Client{
		url:         params.URL,
		httpClient:  &http.Client{Timeout: params.FetchTimeout},
		maxAttempts: params.MaxAttempts,
		logg:        params.Logger,
	}, nil
}

// Fetch returns the current raw record batch and its source. The live feed
// failing is routine and handled by falling back; the returned error is
// non-nil only when the fallback itself produces no rows, which means
// there is no data to serve at all.
func (c *Client) Fetch(ctx context.Context) ([]Record, Source, error) {
	var fetchErr error
	if c.url != "" {
		records, err := c.fetchSheet(ctx)
		if err == nil && len(records) > 0 {
			return records, SourceSheet, nil
		}
		fetchErr = err
		if err == nil {
			fetchErr = errors.New("sheet export parsed to zero rows")
		}
		c.logg.Warn(c.logg.WithField(ctx, "error", fetchErr.Error()), "live feed unavailable, using fallback dataset")
	}

	records, err := FallbackRecords()
	if err != nil {
		return nil, SourceFallback, multierr.Append(fetchErr, err)
	}
	if len(records) == 0 {
		return nil, SourceFallback, multierr.Append(fetchErr, errors.New("fallback dataset is empty"))
	}
	return records, SourceFallback, nil
}

func (c *Client) fetchSheet(ctx context.Context) ([]Record, error) {
	backoff := retry.WithMaxRetries(uint64(c.maxAttempts-1), retry.NewFibonacci(500*time.Millisecond))

	var body string
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("sheet export returned status %d", resp.StatusCode)
			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				return retry.RetryableError(err)
			}
			return err
		}

		raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return retry.RetryableError(err)
		}
		body = string(raw)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return Parse(body), nil
}
