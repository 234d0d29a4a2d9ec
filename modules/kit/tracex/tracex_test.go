package tracex

import (
	"context"
	"testing"
)

func TestTraceID_写入后可读回(t *testing.T) {
	ctx := WithTraceID(context.Background(), "t-1")
	if got, ok := TraceIDFrom(ctx); !ok || got != "t-1" {
		t.Fatalf("期望读回 t-1, got=%q ok=%v", got, ok)
	}
	if _, ok := SpanIDFrom(ctx); ok {
		t.Fatalf("期望未设置 span_id 时返回 false")
	}
}

func TestEnsure_不覆盖已有trace(t *testing.T) {
	ctx, id := Ensure(context.Background())
	if len(id) != 32 {
		t.Fatalf("期望生成 32 位 trace_id, got=%q", id)
	}
	again, id2 := Ensure(ctx)
	if id2 != id || again != ctx {
		t.Fatalf("期望已有 trace_id 时原样返回, got=%q want=%q", id2, id)
	}
}

func TestTraceIDFrom_空字符串视为不存在(t *testing.T) {
	ctx := WithTraceID(context.Background(), "")
	if _, ok := TraceIDFrom(ctx); ok {
		t.Fatalf("期望空 trace_id 返回 false")
	}
}
