package observable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/rxbox/pkg/rx/rxtest"
	"github.com/ib-77/rxbox/pkg/rx/scheduler"
)

// runLoopUntilDone drives loop on the calling goroutine until rec has seen a
// terminal notification.
func runLoopUntilDone[T any](t *testing.T, ctx context.Context, loop *scheduler.Loop, rec *rxtest.Recorder[T]) {
	t.Helper()
	go func() {
		_ = rec.Wait(ctx)
		loop.Quit()
	}()
	require.NoError(t, loop.Run(ctx))
}
