package errors

import (
	"go.uber.org/zap"
)

// LogHandler is an ErrorHandler that writes errors to a zap logger.
type LogHandler struct {
	// Logger receives the entries. A nil Logger uses zap.L().
	Logger *zap.Logger
	// Verbose attaches stack traces to every entry.
	Verbose bool
}

func (h *LogHandler) logger() *zap.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return zap.L()
}

func (h *LogHandler) stack(trace string) []zap.Field {
	if !h.Verbose || trace == "" {
		return nil
	}
	return []zap.Field{zap.String("stack", trace)}
}

// HandleError logs a DriftError.
func (h *LogHandler) HandleError(err *DriftError) {
	if err == nil {
		return
	}
	fields := append([]zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}, h.stack(err.StackTrace)...)
	h.logger().Error("drift error", fields...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := append([]zap.Field{
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
	}, h.stack(err.StackTrace)...)
	h.logger().Error("drift panic", fields...)
}

// HandleBuildError logs a BuildError.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	fields := append([]zap.Field{
		zap.String("widget", err.Widget),
		zap.String("element", err.Element),
		zap.String("error", err.Error()),
	}, h.stack(err.StackTrace)...)
	h.logger().Error("drift build error", fields...)
}
