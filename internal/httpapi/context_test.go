package httpapi

import (
	"context"
	"testing"
	"time"
)

func TestJoinContextsCancelsOnEither(t *testing.T) {
	a, cancelA := context.WithCancel(context.Background())
	b := context.Background()
	joined, cancel := joinContexts(a, b)
	defer cancel()

	cancelA()
	select {
	case <-joined.Done():
	case <-time.After(time.Second):
		t.Fatal("joined context not canceled when first parent canceled")
	}
}

func TestSetBaseContextNilResets(t *testing.T) {
	orig := serverBaseCtx
	t.Cleanup(func() { serverBaseCtx = orig })

	ctx, cancel := context.WithCancel(context.Background())
	SetBaseContext(ctx)
	if serverBaseCtx != ctx {
		t.Fatal("base context not installed")
	}
	cancel()
	SetBaseContext(nil)
	if serverBaseCtx.Err() != nil {
		t.Fatal("nil did not reset to a live background context")
	}
}
