package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze generation.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrEndpointOutOfBounds is returned when start or end lies off the board.
	ErrEndpointOutOfBounds = errors.New("maze: endpoint out of bounds")

	// ErrBadOption is returned when an invalid Option is supplied.
	ErrBadOption = errors.New("maze: invalid option supplied")
)

// Source is the randomness Generate draws from. *rand.Rand satisfies it.
// Intn must return a value in [0, n) for n > 0.
type Source interface {
	Intn(n int) int
}

// Option configures Generate via functional arguments.
// An invalid Option is recorded and surfaced as ErrBadOption by Generate.
type Option func(*Options)

// Options holds generation parameters.
type Options struct {
	// Source supplies every random choice. Nil means a time-seeded stream.
	Source Source

	// ExtraCarving clears floor(rows·cols/50) random interior cells after
	// the backtracker finishes.
	ExtraCarving bool

	err error
}

// DefaultOptions returns Options with a time-seeded source and extra
// carving enabled.
func DefaultOptions() Options {
	return Options{
		Source:       nil,
		ExtraCarving: true,
	}
}

// WithSource makes Generate draw from src. A nil src is rejected.
func WithSource(src Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = fmt.Errorf("%w: source is nil", ErrBadOption)
			return
		}
		o.Source = src
	}
}

// WithSeed makes Generate deterministic. Seed 0 maps to a fixed default
// stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Source = rngFromSeed(seed)
	}
}

// WithExtraCarving toggles the loop-adding pass.
func WithExtraCarving(on bool) Option {
	return func(o *Options) {
		o.ExtraCarving = on
	}
}
