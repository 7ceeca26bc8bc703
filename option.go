package simplex

import (
	"fmt"
	"math"
)

const (
	// DefaultTolerance is the deviation from 0 and 1 accepted when deciding
	// whether a tableau column is the column of a basic variable.
	DefaultTolerance = 1e-9

	// DefaultIterationFactor scales rows+columns of a tableau into the
	// default pivot limit.
	DefaultIterationFactor = 50
)

// settings collects everything an Option can change. Both the
// package-level solve functions and Model carry one.
type settings struct {
	logger        Logger
	maxIterations int
	tolerance     float64
}

func defaultSettings() settings {
	return settings{
		logger:    noopLogger{},
		tolerance: DefaultTolerance,
	}
}

type Option func(*settings) error

func buildSettings(opts []Option) (settings, error) {
	s := defaultSettings()
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return s, fmt.Errorf("applying option: %w", err)
		}
	}

	return s, nil
}

// iterationLimit returns the pivot limit for a tableau of the given size.
func (s settings) iterationLimit(rows, cols int) int {
	if s.maxIterations > 0 {
		return s.maxIterations
	}

	return DefaultIterationFactor * (rows + cols)
}

func WithLogger(logger Logger) Option {
	return func(s *settings) error {
		if logger == nil {
			logger = noopLogger{}
		}
		s.logger = logger

		return nil
	}
}

// WithMaxIterations bounds the number of pivots a single solve may
// perform before giving up with ErrDidNotConverge. Zero selects the
// default limit of DefaultIterationFactor*(rows+columns).
func WithMaxIterations(n int) Option {
	return func(s *settings) error {
		if n < 0 {
			return fmt.Errorf("negative iteration limit: %d", n)
		}
		s.maxIterations = n

		return nil
	}
}

// WithTolerance sets the deviation accepted when reading basic variables
// out of the final tableau. A tolerance of 0 means exact comparison.
func WithTolerance(tol float64) Option {
	return func(s *settings) error {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			return fmt.Errorf("invalid tolerance: %v", tol)
		}
		s.tolerance = tol

		return nil
	}
}
