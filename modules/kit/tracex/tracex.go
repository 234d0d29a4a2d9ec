package tracex

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type ctxKey uint8

const (
	traceKey ctxKey = iota
	spanKey
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceKey, traceID)
}

func TraceIDFrom(ctx context.Context) (string, bool) {
	return stringFrom(ctx, traceKey)
}

func WithSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, spanKey, spanID)
}

func SpanIDFrom(ctx context.Context) (string, bool) {
	return stringFrom(ctx, spanKey)
}

// NewTraceID 32 位十六进制，与 W3C trace-id 长度一致。
func NewTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Ensure 已有 trace_id 时原样返回，否则生成一个新的。
func Ensure(ctx context.Context) (context.Context, string) {
	if id, ok := TraceIDFrom(ctx); ok {
		return ctx, id
	}
	id := NewTraceID()
	return WithTraceID(ctx, id), id
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	s, ok := ctx.Value(key).(string)
	return s, ok && s != ""
}
