package errutil_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/rtcfetch/pkg/utils/errutil"
	"github.com/m-mizutani/rtcfetch/pkg/utils/logging"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (r *eventRecorder) Flush(time.Duration) bool {
	return true
}

func (r *eventRecorder) FlushWithContext(context.Context) bool {
	return true
}

func (r *eventRecorder) Configure(sentry.ClientOptions) {}

func (r *eventRecorder) Close() {}

func (r *eventRecorder) SendEvent(event *sentry.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func newLogContext() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	return logging.With(context.Background(), logger), &buf
}

func bindSentry(t *testing.T) *eventRecorder {
	t.Helper()
	transport := &eventRecorder{}
	client, err := sentry.NewClient(sentry.ClientOptions{Transport: transport})
	gt.NoError(t, err)

	hub := sentry.CurrentHub()
	previous := hub.Client()
	hub.BindClient(client)
	t.Cleanup(func() {
		hub.BindClient(previous)
	})
	return transport
}

func TestHandle(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantLogged bool
		wantAttrs  map[string]any
	}{
		{
			name:       "goerr values become attributes",
			err:        goerr.Wrap(errors.New("exit status 1"), "lscm failed", goerr.V("fetch_id", "f-1"), goerr.V("exit_code", 3)),
			wantLogged: true,
			wantAttrs:  map[string]any{"fetch_id": "f-1", "exit_code": float64(3)},
		},
		{
			name:       "plain error",
			err:        errors.New("disk full"),
			wantLogged: true,
			wantAttrs:  map[string]any{"error": "disk full"},
		},
		{
			name:       "nil error",
			err:        nil,
			wantLogged: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, buf := newLogContext()
			errutil.Handle(ctx, "Failed to record fetch result", tc.err)

			if !tc.wantLogged {
				gt.Equal(t, buf.Len(), 0)
				return
			}

			var entry map[string]any
			gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			gt.Equal(t, entry["msg"], any("Failed to record fetch result"))
			gt.Equal(t, entry["level"], any("ERROR"))
			for k, v := range tc.wantAttrs {
				gt.Equal(t, entry[k], v)
			}
		})
	}
}

func TestHandle_WithoutSentryClient(t *testing.T) {
	hub := sentry.CurrentHub()
	previous := hub.Client()
	hub.BindClient(nil)
	t.Cleanup(func() {
		hub.BindClient(previous)
	})

	ctx, buf := newLogContext()
	errutil.Handle(ctx, "Unexpected error during RTC operations", errors.New("boom"))
	gt.String(t, buf.String()).Contains("Unexpected error during RTC operations")
}

func TestHandle_WithSentryClient(t *testing.T) {
	transport := bindSentry(t)

	ctx, buf := newLogContext()
	errutil.Handle(ctx, "Error during RTC operations", goerr.New("login refused"))
	gt.String(t, buf.String()).Contains("login refused")

	transport.mu.Lock()
	defer transport.mu.Unlock()
	gt.Equal(t, len(transport.events), 1)
	gt.Equal(t, transport.events[0].Tags["message"], "Error during RTC operations")
}
