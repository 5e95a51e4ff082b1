package search

import "context"

// Option configures a Solver via functional arguments.
type Option func(*Config)

// Config holds the tunable parameters of a Solver.
type Config struct {
	// MaxAnswers bounds how many completed boards are retained: positive
	// caps the count and stops the search once that many are recorded,
	// zero retains none (the search still runs, and stops at the first
	// completed board or at exhaustion), negative is unlimited.
	MaxAnswers int

	// Ctx allows cooperative cancellation between queue pops.
	Ctx context.Context
}

// DefaultConfig returns a Config with unlimited answers and
// context.Background().
func DefaultConfig() Config {
	return Config{
		MaxAnswers: -1,
		Ctx:        context.Background(),
	}
}

// WithMaxAnswers sets the answer-retention cap.
func WithMaxAnswers(n int) Option {
	return func(c *Config) { c.MaxAnswers = n }
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		if ctx != nil {
			c.Ctx = ctx
		}
	}
}
