package framework

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is wrapped by every error caused by a bad
	// parameter or a missing collaborator. A run must not continue after it.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrObjectiveMismatch reports two solutions with a different number of
	// objectives being compared together.
	ErrObjectiveMismatch = errors.New("objective length mismatch")

	// ErrNilRandomSource is returned when a stochastic component is built
	// without a random source.
	ErrNilRandomSource = errors.New("random source is required")

	// ErrEmptyPopulation is returned when a population or an archive ends up
	// empty in the middle of a run.
	ErrEmptyPopulation = errors.New("population is empty")
)

// CheckObjectives returns an error wrapping ErrObjectiveMismatch when a and b
// do not carry the same number of objectives.
func CheckObjectives(a, b *Solution) error {
	if len(a.Objectives) != len(b.Objectives) {
		return fmt.Errorf("%w: %d != %d", ErrObjectiveMismatch, len(a.Objectives), len(b.Objectives))
	}
	return nil
}

// InvalidConfigf formats a configuration error.
func InvalidConfigf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
