// Package middleware provides wrappers around the schema generation
// function.
//
// Middleware follows the standard pattern where each middleware wraps the
// next generator in the chain, allowing pre- and post-processing of
// generation calls.
//
// # Basic Usage
//
// Create and compose middleware around the generator:
//
//	gen := middleware.Chain(
//	    middleware.Recover(),
//	    middleware.Logging(logger),
//	)(func(ctx context.Context, t reflect.Type) (string, error) {
//	    return funcschema.GenerateType(t)
//	})
//
//	doc, err := gen(ctx, reflect.TypeOf(WeatherQuery{}))
//
// # Available Middleware
//
//   - Recover: Catches panics and converts them to errors
//   - Logging: Logs generation details and timing
//   - OTel: Adds OpenTelemetry tracing and metrics
//
// # Default Stack
//
// A pre-configured stack is available for common use:
//
//	// Recover + Logging
//	stack := middleware.DefaultStack(logger)
//
// # Custom Middleware
//
// Implement custom middleware using the Middleware type:
//
//	func Memoize(cache map[reflect.Type]string) middleware.Middleware {
//	    return func(next middleware.Func) middleware.Func {
//	        return func(ctx context.Context, t reflect.Type) (string, error) {
//	            if doc, ok := cache[t]; ok {
//	                return doc, nil
//	            }
//	            doc, err := next(ctx, t)
//	            if err == nil {
//	                cache[t] = doc
//	            }
//	            return doc, err
//	        }
//	    }
//	}
package middleware
