package summarizer

import (
	"context"
	"errors"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// backoff returns an exponential delay with full jitter for the given retry attempt (1-based).
func backoff(attempt int, base, maxDelay time.Duration) time.Duration {
	if base <= 0 {
		base = time.Millisecond
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d > maxDelay {
			d = maxDelay
			break
		}
	}
	return time.Duration(rand.Int64N(d.Milliseconds()+1)) * time.Millisecond // #nosec G404 -- jitter only
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// isQuotaError reports rate-limit responses that should move on to the next API key.
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// retryable reports whether another attempt may succeed: server errors, rate
// limits, timeouts and empty responses. Nothing is retried once the caller's
// context is done.
func retryable(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, errEmptyResponse) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code >= http.StatusInternalServerError ||
			apiErr.Code == http.StatusTooManyRequests ||
			apiErr.Code == http.StatusRequestTimeout
	}
	if isQuotaError(err) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
