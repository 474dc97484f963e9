// Package recovery converts panics into errors.
// Encoders panic on formula trees that were built by hand with values
// outside their enumerations; scan evaluation must not crash its host.
package recovery

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// ErrPanic is matched by every error produced from a recovered panic.
var ErrPanic = errors.New("panic recovered")

// PanicError describes a recovered panic.
type PanicError struct {
	Operation string
	Value     any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s panicked: %v", e.Operation, e.Value)
}

// Is reports whether target is ErrPanic.
func (e *PanicError) Is(target error) bool { return target == ErrPanic }

// RecoverToError wraps a function call with panic recovery.
// If the function panics, the panic is logged and returned as a *PanicError.
//
// Example:
//
//	err := recovery.RecoverToError(logger, "Codec.Close", packer.Close)
func RecoverToError(logger *slog.Logger, operation string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logPanic(logger, "Panic recovered", operation, r)
			err = &PanicError{Operation: operation, Value: r}
		}
	}()

	return fn()
}

// RecoverToValue wraps a function that returns a value and error.
// If the function panics, returns zero value and a *PanicError.
//
// Example:
//
//	blob, err := recovery.RecoverToValue(logger, "MarshalCriteria", func() ([]byte, error) {
//	    return packer.Pack(zenith.EncodeBoolean(node))
//	})
func RecoverToValue[T any](logger *slog.Logger, operation string, fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			logPanic(logger, "Panic recovered", operation, r)

			var zero T
			result = zero
			err = &PanicError{Operation: operation, Value: r}
		}
	}()

	return fn()
}

// Recover wraps a void function with panic recovery.
// Logs the panic but doesn't return an error.
// Use for cleanup operations where errors can't be returned.
func Recover(logger *slog.Logger, operation string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logPanic(logger, "Panic recovered in cleanup", operation, r)
		}
	}()

	fn()
}

func logPanic(logger *slog.Logger, msg, operation string, r any) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error(msg,
		"operation", operation,
		"panic", r,
		"stack", string(debug.Stack()),
	)
}
