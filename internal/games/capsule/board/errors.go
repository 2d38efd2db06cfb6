package board

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for grid coordinates or palette indices
	// outside their valid bounds.
	ErrOutOfRange = errors.New("board: out of range")

	// ErrConfiguration is returned when DifficultyParams are internally
	// inconsistent.
	ErrConfiguration = errors.New("board: invalid configuration")
)

// OutOfRangeError describes a rejected coordinate or palette index.
type OutOfRangeError struct {
	What  string
	Row   int
	Col   int
	Limit int
}

func (e *OutOfRangeError) Error() string {
	if e.What == "color" {
		return fmt.Sprintf("board: color index %d outside palette of %d", e.Row, e.Limit)
	}
	return fmt.Sprintf("board: %s (%d, %d) out of range", e.What, e.Row, e.Col)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// ConfigurationError reports which field of a DifficultyParams value is bad.
type ConfigurationError struct {
	Field string
	Got   int
	Want  int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("board: %s has %d rows, want %d", e.Field, e.Got, e.Want)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
