package maps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"moving-quote-service/internal/domain"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (o *GoogleMapsProvider) newRequest(
	ctx context.Context,
	path string,
	query url.Values,
) (*http.Request, error) {
	query.Set("key", o.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (o *GoogleMapsProvider) do(req *http.Request) (*http.Response, error) {
	resp, err := o.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry sends a request up to maxAttempts times. Only transient failures
// (network errors, 429 and 5xx responses) are retried, with exponential backoff
// while respecting context cancellation. The returned error is already classified.
func (o *GoogleMapsProvider) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, classifyTransportError(err)
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := o.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isTransient(err) || attempt == o.maxAttempts {
			break
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, classifyTransportError(ctx.Err())
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, classifyTransportError(lastErr)
}

func isTransient(err error) bool {
	var he *httpStatusError
	if errors.As(err, &he) {
		switch he.Code {
		case 429, 500, 502, 503, 504:
			return true
		}
		return false
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// classifyTransportError maps HTTP and network failures to domain adapter errors.
func classifyTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var he *httpStatusError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", domain.ErrQuotaExceeded, he)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", domain.ErrInvalidKey, he)
		default:
			return fmt.Errorf("%w: %v", domain.ErrNetwork, he)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
}

// statusError maps a request-level API status to a domain adapter error.
func statusError(status, message string) error {
	var kind error
	switch status {
	case "ZERO_RESULTS":
		kind = domain.ErrAddressNotFound
	case "REQUEST_DENIED":
		kind = domain.ErrInvalidKey
	case "INVALID_REQUEST", "MAX_ELEMENTS_EXCEEDED", "MAX_DIMENSIONS_EXCEEDED":
		kind = domain.ErrInvalidRequest
	case "OVER_QUERY_LIMIT", "OVER_DAILY_LIMIT":
		kind = domain.ErrQuotaExceeded
	default:
		kind = domain.ErrUpstream
	}

	if message != "" {
		return fmt.Errorf("%w: status %s: %s", kind, status, message)
	}
	return fmt.Errorf("%w: status %s", kind, status)
}
