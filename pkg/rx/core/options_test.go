package core

import (
	"context"
	"testing"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if got := GetWorkerMaxCount(ctx, 7); got != 7 {
		t.Errorf("expected default 7, got %d", got)
	}
	if !IsProcessRemainingEnabled(ctx, true) {
		t.Errorf("expected default true")
	}
}

func TestOptions_FromContext(t *testing.T) {
	t.Parallel()
	ctx := WithProcessOptions(WithWorkerOptions(context.Background(), 3), false)

	if got := GetWorkerMaxCount(ctx, 7); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if IsProcessRemainingEnabled(ctx, true) {
		t.Errorf("expected process remaining disabled")
	}
}
