package middleware

import (
	"context"
	"reflect"
	"time"
)

// Logger is the interface for structured logging.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F creates a new Field with the given key and value.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logging returns middleware that logs generation details.
// Successful generations are logged at info level, failures at error level.
func Logging(logger Logger) Middleware {
	return func(next Func) Func {
		return func(ctx context.Context, t reflect.Type) (string, error) {
			start := time.Now()

			doc, err := next(ctx, t)

			fields := []Field{
				F("type", typeName(t)),
				F("duration", time.Since(start)),
			}

			if err != nil {
				fields = append(fields, F("error", err.Error()))
				logger.Error("schema generation failed", fields...)
			} else {
				logger.Info("schema generated", fields...)
			}

			return doc, err
		}
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// NopLogger is a logger that discards all log entries.
type NopLogger struct{}

func (NopLogger) Info(msg string, fields ...Field)  {}
func (NopLogger) Error(msg string, fields ...Field) {}
func (NopLogger) Debug(msg string, fields ...Field) {}
func (NopLogger) Warn(msg string, fields ...Field)  {}
