package logger

import "context"

// Recover traps panics and reports them as fatal errors.
// Usage: defer logger.Recover(ctx)
func Recover(ctx context.Context) {
	if r := recover(); r != nil {
		// Suppress further panics during recovery to avoid loops.
		defer func() { _ = recover() }()

		// An intentional Fatal panic has already been logged.
		if _, ok := r.(FatalError); ok {
			return
		}
		Fatal(ctx, "panic: %v", r)
	}
}
