package log

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a logger writing to w. It logs JSON at info level, or
// console lines at debug level when debug is set.
func NewLogger(w io.Writer, debug bool) *zap.Logger {
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	level := zap.InfoLevel
	if debug {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zap.DebugLevel
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), level))
}

// WithTestEffectHandler installs a debug-level console log handler writing to w.
func WithTestEffectHandler(
	ctx context.Context,
	w io.Writer,
) (context.Context, func() context.Context) {
	return WithZapEffectHandler(ctx, 1, NewLogger(w, true))
}
