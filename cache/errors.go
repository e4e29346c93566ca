package cache

import (
	"fmt"

	"github.com/facebookgo/stack"
	"github.com/facebookgo/stackerr"
	"github.com/pkg/errors"

	"github.com/skipor/lru/internal/util"
)

// ErrInvalidCapacity is root cause of every ConfigurationError.
// errors.Is(err, ErrInvalidCapacity) works on errors returned by New and Config.Validate.
var ErrInvalidCapacity = errors.New("capacity should be positive")

// ConfigurationError means that cache can not be constructed from provided Config.
type ConfigurationError struct {
	Capacity int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid cache config: capacity %v: %v", e.Capacity, ErrInvalidCapacity)
}

func (e *ConfigurationError) Cause() error  { return ErrInvalidCapacity }
func (e *ConfigurationError) Unwrap() error { return ErrInvalidCapacity }

// IsConfigurationError reports whether err is ConfigurationError, possibly with attached stack trace.
func IsConfigurationError(err error) bool {
	_, ok := util.Unwrap(err).(*ConfigurationError)
	return ok
}

// stackError is stackerr.Error that supports errors.Is and errors.As.
type stackError struct {
	err *stackerr.Error
}

func (e stackError) Error() string            { return e.err.Error() }
func (e stackError) Underlying() error        { return e.err.Underlying() }
func (e stackError) MultiStack() *stack.Multi { return e.err.MultiStack() }
func (e stackError) Unwrap() error            { return e.Underlying() }

// withStack attaches caller stack to err.
func withStack(err error) error {
	if se, ok := stackerr.WrapSkip(err, 1).(*stackerr.Error); ok {
		return stackError{se}
	}
	return err
}
