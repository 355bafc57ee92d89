package middleware

import (
	"context"
	"reflect"
)

// Func is the signature for schema generation functions. It takes the type to
// generate a document for and returns the serialized document text.
type Func func(ctx context.Context, t reflect.Type) (string, error)

// Middleware wraps a Func with additional behavior.
type Middleware func(next Func) Func

// Chain composes multiple middleware into a single middleware.
// Middleware are applied in order, so Chain(m1, m2, m3) results in
// m1 wrapping m2 wrapping m3 wrapping the final generator.
func Chain(middlewares ...Middleware) Middleware {
	return func(final Func) Func {
		// Apply middleware in reverse order so they execute in order
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// DefaultStack returns the recommended middleware stack: panic recovery and
// logging.
func DefaultStack(logger Logger) []Middleware {
	return []Middleware{
		Recover(),
		Logging(logger),
	}
}
