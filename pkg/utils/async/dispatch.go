package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/rtcfetch/pkg/utils/errutil"
	"github.com/m-mizutani/rtcfetch/pkg/utils/logging"
)

// Dispatch runs handler in a new goroutine. The handler gets a background
// context that keeps the caller's logger but not its cancellation, so a
// fetch started from an HTTP request outlives the request. Panics and
// returned errors are logged.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				logging.From(newCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(stack))
			}
		}()

		if err := handler(newCtx); err != nil {
			errutil.Handle(newCtx, "error in async handler", err)
		}
	}()
}

// newBackgroundContext creates a context.Background() carrying the logger of ctx
func newBackgroundContext(ctx context.Context) context.Context {
	return logging.With(context.Background(), logging.From(ctx))
}
