package wikipedia

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sethvargo/go-retry"

	"github.com/persistorai/wikigraph/internal/metrics"
	"github.com/persistorai/wikigraph/internal/models"
)

const maxResponseBytes = 8 << 20 // 8 MB

// statusError is a non-200 upstream response.
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("wikipedia returned status %d", e.status)
}

// get performs a rate-limited GET with retries behind the circuit breaker.
// A 404 yields models.ErrArticleNotFound; every other failure wraps
// models.ErrProviderUnavailable.
func (c *Client) get(ctx context.Context, kind, rawURL string) ([]byte, error) {
	if err := c.breaker.allow(); err != nil {
		metrics.ProviderRequests.WithLabelValues(kind, "circuit_open").Inc()
		return nil, fmt.Errorf("%w: %w", models.ErrProviderUnavailable, err)
	}

	backoff := retry.WithMaxRetries(c.cfg.MaxRetries, retry.NewExponential(c.cfg.RetryBase))

	var body []byte

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		b, err := c.doGet(ctx, rawURL)
		if err != nil {
			if retryable(ctx, err) {
				return retry.RetryableError(err)
			}

			return err
		}

		body = b

		return nil
	})

	switch {
	case err == nil:
		c.breaker.recordSuccess()
		metrics.ProviderRequests.WithLabelValues(kind, "ok").Inc()

		return body, nil
	case errors.Is(err, models.ErrArticleNotFound):
		c.breaker.recordSuccess()
		metrics.ProviderRequests.WithLabelValues(kind, "not_found").Inc()

		return nil, err
	case ctx.Err() != nil:
		metrics.ProviderRequests.WithLabelValues(kind, "canceled").Inc()
		return nil, fmt.Errorf("%w: %w", models.ErrProviderUnavailable, err)
	default:
		c.breaker.recordFailure()
		metrics.ProviderRequests.WithLabelValues(kind, "error").Inc()

		return nil, fmt.Errorf("%w: %w", models.ErrProviderUnavailable, err)
	}
}

func (c *Client) doGet(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json, text/html")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling wikipedia: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain body so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20)) //nolint:errcheck // best-effort drain before close.

		if resp.StatusCode == http.StatusNotFound {
			return nil, models.ErrArticleNotFound
		}

		return nil, &statusError{status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return body, nil
}

// retryable reports whether err is worth another attempt: throttling, server
// errors and transport failures, unless the caller has given up.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, models.ErrArticleNotFound) {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.status == http.StatusTooManyRequests || se.status >= http.StatusInternalServerError
	}

	return true
}
