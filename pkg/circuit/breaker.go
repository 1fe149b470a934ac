package circuit

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// State represents circuit breaker state
type State int

const (
	StateClosed   State = iota // normal operation, calls pass through
	StateOpen                  // calls fail fast
	StateHalfOpen              // probing whether the dependency recovered
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

var ErrCircuitOpen = errors.New("circuit breaker is open")

// Config defines circuit breaker behavior
type Config struct {
	Threshold        int           // consecutive failures before opening
	Cooldown         time.Duration // time to wait before half-open
	SuccessThreshold int           // successes needed to close from half-open
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Threshold:        5,
		Cooldown:         30 * time.Second,
		SuccessThreshold: 2,
	}
}

// Breaker trips after a run of consecutive failures and fails fast until the
// cooldown elapses, then lets probes through until it closes again.
type Breaker struct {
	mu          sync.Mutex
	state       State
	failures    int
	successes   int
	lastFailure time.Time
	config      Config
	logger      *zap.Logger
	name        string
}

// NewBreaker creates a new circuit breaker
func NewBreaker(name string, config Config, logger *zap.Logger) *Breaker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Breaker{
		state:  StateClosed,
		config: config,
		logger: logger,
		name:   name,
	}
}

// Execute wraps fn with circuit breaker logic.
func (b *Breaker) Execute(fn func() error) error {
	if err := b.Allow(); err != nil {
		return err
	}
	err := fn()
	b.Record(err)
	return err
}

// Allow reports whether a call may proceed.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateOpen:
		if time.Since(b.lastFailure) >= b.config.Cooldown {
			b.transitionTo(StateHalfOpen)
			return nil
		}
		return ErrCircuitOpen
	default:
		return nil
	}
}

// Record registers the outcome of a call.
func (b *Breaker) Record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.failures++
		b.successes = 0
		b.lastFailure = time.Now()

		if b.state == StateHalfOpen || b.failures >= b.config.Threshold {
			b.transitionTo(StateOpen)
		}
		return
	}

	switch b.state {
	case StateHalfOpen:
		b.successes++
		if b.successes >= b.config.SuccessThreshold {
			b.transitionTo(StateClosed)
		}
	case StateClosed:
		b.failures = 0
	}
}

// State returns the current state
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// IsOpen reports whether calls would currently fail fast
func (b *Breaker) IsOpen() bool {
	return b.State() == StateOpen
}

func (b *Breaker) transitionTo(next State) {
	if b.state == next {
		return
	}

	b.logger.Info("Circuit breaker state change",
		zap.String("breaker", b.name),
		zap.String("from", b.state.String()),
		zap.String("to", next.String()),
		zap.Int("failures", b.failures),
	)

	b.state = next
	if next == StateClosed {
		b.failures = 0
		b.successes = 0
	}
	if next == StateHalfOpen {
		b.successes = 0
	}
}
