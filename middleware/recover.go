package middleware

import (
	"context"
	"fmt"
	"reflect"
)

// PanicHandler is called when a panic is recovered.
type PanicHandler func(ctx context.Context, t reflect.Type, panicVal any) (string, error)

// Recover returns middleware that catches panics and converts them to errors.
// Misbehaving Enum or Annotated implementations are the usual source.
func Recover() Middleware {
	return RecoverWithHandler(defaultPanicHandler)
}

// RecoverWithHandler returns middleware that catches panics and calls the
// provided handler. This allows for custom panic handling such as logging or
// alerting.
func RecoverWithHandler(handler PanicHandler) Middleware {
	return func(next Func) Func {
		return func(ctx context.Context, t reflect.Type) (doc string, err error) {
			defer func() {
				if r := recover(); r != nil {
					doc, err = handler(ctx, t, r)
				}
			}()
			return next(ctx, t)
		}
	}
}

// defaultPanicHandler converts a panic value to an error.
func defaultPanicHandler(_ context.Context, t reflect.Type, panicVal any) (string, error) {
	return "", fmt.Errorf("generating schema for %s: panic: %v", typeName(t), panicVal)
}
