package gemini

import (
	"context"
	"net/http"
	"time"

	"matrixdiff/internal"
)

// httpError is a non-2xx response from the embedding endpoint.
type httpError struct {
	status int
	body   string
}

func (e *httpError) Error() string {
	msg := "embedContent http " + http.StatusText(e.status)
	if e.body != "" {
		msg += ": " + e.body
	}
	return msg
}

// transportError is a network-level failure before a response arrived.
type transportError struct {
	cause error
}

func (e *transportError) Error() string {
	return "embedContent request failed: " + e.cause.Error()
}

func (e *transportError) Unwrap() error {
	return e.cause
}

// isRetryable reports whether an attempt is worth repeating. Network
// failures, rate limits, and server errors are transient; auth and other
// client errors are not.
func isRetryable(err error) bool {
	if httpErr, ok := err.(*httpError); ok {
		return httpErr.status == http.StatusTooManyRequests || httpErr.status >= 500
	}
	_, ok := err.(*transportError)
	return ok
}

// retryWithBackoff runs fn up to maxRetries+1 times with exponential
// backoff (1s, 2s, 4s, ...) between retryable failures.
func retryWithBackoff(ctx context.Context, maxRetries int, logger *internal.Logger, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}
		if attempt < maxRetries {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			logger.Warn("[gemini] attempt %d/%d failed, retrying in %s: %v",
				attempt+1, maxRetries+1, backoff, lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return lastErr
}
