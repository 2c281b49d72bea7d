// Package logging wires log/slog to a rotating file sink for the CLI, and
// provides the small context-group helper commands use to attach per-run
// fields (run ID, target path) to every subsequent log line.
package logging

import (
	"context"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey struct{}

// Logger builds a slog.Logger writing to w at the given level. When jsonFlag
// is true records are emitted as JSON (for machine consumption); otherwise
// a human-readable text handler is used, matching the CLI's default.
func Logger(w io.Writer, jsonFlag bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if jsonFlag {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// RotatingWriter returns an io.Writer backed by lumberjack, rotating at
// 100MB and keeping 5 backups, for the CLI's --log-file flag.
func RotatingWriter(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     28,
		Compress:   true,
	}
}

// AppendCtx attaches an slog.Attr (typically a slog.Group, e.g. a run ID and
// target path) to ctx, merging with any attrs already attached by an outer
// call.
func AppendCtx(ctx context.Context, attr slog.Attr) context.Context {
	existing, _ := ctx.Value(ctxKey{}).([]slog.Attr)
	return context.WithValue(ctx, ctxKey{}, append(existing, attr))
}

// FromCtx returns the attrs accumulated on ctx via AppendCtx, for a handler
// wrapper (or a caller building one log line) to splice in.
func FromCtx(ctx context.Context) []slog.Attr {
	attrs, _ := ctx.Value(ctxKey{}).([]slog.Attr)
	return attrs
}

// ctxHandler is a slog.Handler decorator that injects AppendCtx attrs into
// every record, so library code logging through a context-derived logger
// doesn't need to re-specify run correlation fields at each call site.
type ctxHandler struct {
	slog.Handler
}

// WithCtx wraps base so records logged through the returned logger pick up
// any attrs stashed on the context passed to its *Context methods.
func WithCtx(base *slog.Logger) *slog.Logger {
	return slog.New(ctxHandler{Handler: base.Handler()})
}

func (h ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs := FromCtx(ctx); len(attrs) > 0 {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}
