// Package command runs external processes and captures their output.
package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
)

// waitDelay bounds how long Run waits for output after the process is killed
const waitDelay = 5 * time.Second

type runner struct{}

// NewRunner returns a CommandRunner backed by os/exec
func NewRunner() interfaces.CommandRunner {
	return &runner{}
}

// Run executes name with args and waits for it. Stdout and stderr are
// captured separately. A non-zero exit is not an error.
func (r *runner) Run(ctx context.Context, name string, args ...string) (*model.CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &model.CommandResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, goerr.Wrap(ctxErr, "command was interrupted", goerr.V("command", name))
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, goerr.Wrap(err, "failed to run command", goerr.V("command", name))
	}

	return result, nil
}
