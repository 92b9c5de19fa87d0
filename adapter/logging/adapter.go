// Package logging adapts zap to the domain logging port.
package logging

import (
	"time"

	"go.uber.org/zap"

	"lingua-proxy/domain/port"
)

// ZapLogger adapts a zap.SugaredLogger to port.Logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger creates a zap-backed logger.
func NewZapLogger(sugar *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{sugar: sugar}
}

// Debug logs a debug message.
func (z *ZapLogger) Debug(msg string, fields ...port.Field) {
	z.sugar.Debugw(msg, toPairs(fields)...)
}

// Info logs an info message.
func (z *ZapLogger) Info(msg string, fields ...port.Field) {
	z.sugar.Infow(msg, toPairs(fields)...)
}

// Warn logs a warning message.
func (z *ZapLogger) Warn(msg string, fields ...port.Field) {
	z.sugar.Warnw(msg, toPairs(fields)...)
}

// Error logs an error message.
func (z *ZapLogger) Error(msg string, fields ...port.Field) {
	z.sugar.Errorw(msg, toPairs(fields)...)
}

// With returns a new logger with the given fields attached.
func (z *ZapLogger) With(fields ...port.Field) port.Logger {
	if len(fields) == 0 {
		return z
	}
	return NewZapLogger(z.sugar.With(toPairs(fields)...))
}

func toPairs(fields []port.Field) []any {
	if len(fields) == 0 {
		return nil
	}
	pairs := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		pairs = append(pairs, f.Key, convertValue(f.Value))
	}
	return pairs
}

func convertValue(value any) any {
	switch v := value.(type) {
	case time.Duration:
		return v.Milliseconds()
	case error:
		if v != nil {
			return v.Error()
		}
		return ""
	default:
		return v
	}
}
