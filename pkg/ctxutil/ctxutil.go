// Package ctxutil carries request and run identity through context.Context so
// that log handlers can attach it without every call site repeating it.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	requestIDKey struct{}
	runIDKey     struct{}
)

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx reports the authenticated owner. uuid.Nil is never a valid owner.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return nonNil(ctx.Value(userIDKey{}))
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithRunID marks ctx as belonging to a generation run.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

func RunIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return nonNil(ctx.Value(runIDKey{}))
}

func nonNil(v any) (uuid.UUID, bool) {
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// LogAttrs returns the identity attributes present in ctx, in a stable order.
func LogAttrs(ctx context.Context) []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if id, ok := UserIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("user_id", id.String()))
	}
	if id, ok := RunIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("run_id", id.String()))
	}
	return attrs
}
