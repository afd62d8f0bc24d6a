package ctxutil

import (
	"context"
	"testing"
)

func TestLogFields(t *testing.T) {
	if got := LogFields(context.Background()); got != nil {
		t.Fatalf("expected no fields without trace data, got %v", got)
	}

	ctx := WithTraceData(context.Background(), &TraceData{TraceID: "t-1", RequestID: "r-1"})
	got := LogFields(ctx)
	want := []interface{}{"trace_id", "t-1", "request_id", "r-1"}
	if len(got) != len(want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fields[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	ctx = WithTraceData(context.Background(), &TraceData{RequestID: "r-2"})
	if got := LogFields(ctx); len(got) != 2 || got[1] != "r-2" {
		t.Fatalf("fields = %v, want only request_id", got)
	}
}
