package layout

import "go.uber.org/zap"

// logging.go defines the Logger that LayoutContext carries, so that no
// algorithm file imports a logging library directly. No layout pass in this
// package writes to it. The teacher has no
// logging at all; zap is grounded on the rest of the retrieval pack, which
// reaches for it as the default structured logger.

// Logger is the subset of *zap.Logger held by LayoutContext. Kept as an
// interface so callers can substitute zap's no-op logger,
// a test observer, or their own implementation.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
}

// noopLogger discards everything; used when a LayoutContext is built
// without WithLogger.
type noopLogger struct{}

func (noopLogger) Debug(msg string, fields ...zap.Field) {}
func (noopLogger) Warn(msg string, fields ...zap.Field)  {}

var defaultLogger Logger = noopLogger{}

// NewProductionLogger builds a zap-backed Logger suitable for
// WithLogger(ctx, ...), logging at Info level and above to stderr in
// JSON form.
func NewProductionLogger() (Logger, error) {
	zl, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return zapLogger{zl}, nil
}

type zapLogger struct{ l *zap.Logger }

func (z zapLogger) Debug(msg string, fields ...zap.Field) { z.l.Debug(msg, fields...) }
func (z zapLogger) Warn(msg string, fields ...zap.Field)  { z.l.Warn(msg, fields...) }
