package wikipedia

import (
	"errors"
	"sync"
	"time"

	"github.com/persistorai/wikigraph/internal/metrics"
)

// Circuit breaker configuration.
const (
	cbFailureThreshold = 5
	cbCooldown         = 30 * time.Second
)

// Circuit breaker states.
const (
	cbClosed   = iota // Normal operation.
	cbOpen            // Fail fast.
	cbHalfOpen        // Probe with one request.
)

// ErrCircuitOpen is returned when upstream calls are being rejected without
// contacting Wikipedia.
var ErrCircuitOpen = errors.New("wikipedia circuit breaker is open")

type circuitBreaker struct {
	mu            sync.Mutex
	state         int
	failures      int
	lastFailureAt time.Time
	now           func() time.Time
}

func newCircuitBreaker() *circuitBreaker {
	return &circuitBreaker{state: cbClosed, now: time.Now}
}

// allow checks whether a request may proceed. After the cooldown an open
// breaker lets a single probe through.
func (b *circuitBreaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case cbOpen:
		if b.now().Sub(b.lastFailureAt) >= cbCooldown {
			b.setState(cbHalfOpen)
			return nil
		}

		return ErrCircuitOpen
	case cbHalfOpen:
		return ErrCircuitOpen
	}

	return nil
}

func (b *circuitBreaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	b.setState(cbClosed)
}

func (b *circuitBreaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	b.lastFailureAt = b.now()

	if b.failures >= cbFailureThreshold || b.state == cbHalfOpen {
		b.setState(cbOpen)
	}
}

// stateName reports the current state for health output.
func (b *circuitBreaker) stateName() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case cbOpen:
		return "open"
	case cbHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

// setState must be called with mu held.
func (b *circuitBreaker) setState(s int) {
	b.state = s
	metrics.ProviderCircuitState.Set(float64(s))
}
