package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/cli/config"
	"github.com/m-mizutani/rtcfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/rtcfetch/pkg/usecase"
	"github.com/m-mizutani/rtcfetch/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// fetchConfig groups everything needed to build the fetch use case
type fetchConfig struct {
	lscm      config.LSCM
	sentry    config.Sentry
	slack     config.Slack
	firestore config.Firestore
}

func (c *fetchConfig) Flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, c.lscm.Flags()...)
	flags = append(flags, c.sentry.Flags()...)
	flags = append(flags, c.slack.Flags()...)
	flags = append(flags, c.firestore.Flags()...)
	return flags
}

// build wires the fetch use case. The returned cleanup must be called once
// the use case is no longer needed.
func (c *fetchConfig) build(ctx context.Context) (interfaces.FetchUseCase, func(), error) {
	flushSentry, err := c.sentry.Configure()
	if err != nil {
		return nil, nil, err
	}
	cleanups := []func(){flushSentry}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	var opts []usecase.FetchOption
	if notifier := c.slack.Configure(); notifier != nil {
		opts = append(opts, usecase.WithNotifier(notifier))
	}

	recorder, err := c.firestore.Configure(ctx)
	if err != nil {
		cleanup()
		return nil, nil, goerr.Wrap(err, "failed to configure fetch history")
	}
	if recorder != nil {
		opts = append(opts, usecase.WithRecorder(recorder))
		cleanups = append(cleanups, func() {
			if err := recorder.Close(); err != nil {
				logging.From(ctx).Warn("Failed to close firestore client", "error", err)
			}
		})
	}

	return usecase.NewFetch(c.lscm.Configure(), opts...), cleanup, nil
}
