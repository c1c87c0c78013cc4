package logging

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Field constructors, re-exported so callers do not import zap directly.

func String(key, val string) Field          { return zap.String(key, val) }
func Int(key string, val int) Field         { return zap.Int(key, val) }
func Int64(key string, val int64) Field     { return zap.Int64(key, val) }
func Float64(key string, val float64) Field { return zap.Float64(key, val) }
func Bool(key string, val bool) Field       { return zap.Bool(key, val) }
func Error(err error) Field                 { return zap.Error(err) }
func Time(key string, val time.Time) Field  { return zap.Time(key, val) }
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}
func Any(key string, val interface{}) Field  { return zap.Any(key, val) }
func Strings(key string, val []string) Field { return zap.Strings(key, val) }

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID stores a request ID in the context for log correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context, if any.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

func contextFields(ctx context.Context) []Field {
	var fields []Field
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	return fields
}
