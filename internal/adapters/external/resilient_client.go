// Package external provides adapters for external services
// These adapters implement ports for the upstream weather providers and the snapshot stores.
package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BreakerSettings configures the circuit breaker guarding one upstream
type BreakerSettings struct {
	Name        string
	MaxFailures uint32
	OpenTimeout time.Duration
}

var (
	errUnexpectedStatus = stderrors.New("unexpected status code")
	errCircuitOpen      = stderrors.New("circuit breaker open")
)

func newCircuitBreaker(s BreakerSettings) *gobreaker.CircuitBreaker {
	maxFailures := s.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	openTimeout := s.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = time.Minute
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	})
}

// getJSON sends req through the breaker and decodes a 2xx body into target.
// There is no retry here; callers decide whether to try again.
func getJSON(ctx context.Context, client HTTPClient, cb *gobreaker.CircuitBreaker, req *http.Request, target interface{}) error {
	_, err := cb.Execute(func() (interface{}, error) {
		resp, err := client.Do(req.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
		}
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return nil, nil
	})

	if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", errCircuitOpen, err)
	}
	return err
}
