// Package rtc drives the RTC SCM command line client (lscm).
package rtc

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
	"github.com/m-mizutani/rtcfetch/pkg/utils/logging"
)

// DefaultBinary is the lscm executable looked up in PATH
const DefaultBinary = "lscm"

const redacted = "[REDACTED]"

type client struct {
	runner  interfaces.CommandRunner
	binary  string
	timeout time.Duration
}

// Option is a functional option for the client
type Option func(*client)

// WithBinary overrides the lscm executable
func WithBinary(binary string) Option {
	return func(c *client) {
		c.binary = binary
	}
}

// WithTimeout bounds each lscm invocation. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *client) {
		c.timeout = timeout
	}
}

// NewClient creates an RTCClient that shells out through runner
func NewClient(runner interfaces.CommandRunner, opts ...Option) interfaces.RTCClient {
	c := &client{
		runner: runner,
		binary: DefaultBinary,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login runs `lscm login -r <server> -u <user> -P <password>`
func (c *client) Login(ctx context.Context, serverURL, username string, password model.Password) error {
	args := []string{"login", "-r", serverURL, "-u", username, "-P", string(password)}

	logging.From(ctx).Debug("Running lscm login",
		"binary", c.binary,
		"server_url", serverURL,
		"username", username,
	)

	return c.run(ctx, "login", args, string(password))
}

// Load runs `lscm load <workspace> -d <dir>`
func (c *client) Load(ctx context.Context, workspace, targetDir string) error {
	args := []string{"load", workspace, "-d", targetDir}

	logging.From(ctx).Debug("Running lscm load",
		"binary", c.binary,
		"repository_workspace", workspace,
		"target_directory", targetDir,
	)

	return c.run(ctx, "load", args, "")
}

func (c *client) run(ctx context.Context, operation string, args []string, secret string) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		return goerr.Wrap(err, "failed to run lscm",
			goerr.V("operation", operation),
			goerr.V("binary", c.binary),
		)
	}

	if result.ExitCode != 0 {
		stderr := scrub(result.StderrText(), secret)
		return goerr.Wrap(&model.CommandError{
			Operation: operation,
			ExitCode:  result.ExitCode,
			Stderr:    stderr,
		}, "lscm exited with non-zero status",
			goerr.V("operation", operation),
			goerr.V("exit_code", result.ExitCode),
			goerr.V("stderr", stderr),
		)
	}

	return nil
}

// scrub removes secret from text, in case the client echoes it back
func scrub(text, secret string) string {
	if secret == "" {
		return text
	}
	return strings.ReplaceAll(text, secret, redacted)
}
