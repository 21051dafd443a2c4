package interfaces

import (
	"context"

	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
)

// CommandRunner runs an external command and captures its output. A non-zero
// exit is reported through CommandResult.ExitCode, not as an error; the error
// is reserved for failures to run the command at all.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (*model.CommandResult, error)
}

// RTCClient defines operations against a Rational Team Concert server
type RTCClient interface {
	// Login authenticates against the repository at serverURL
	Login(ctx context.Context, serverURL, username string, password model.Password) error

	// Load materializes the named repository workspace into targetDir
	Load(ctx context.Context, workspace, targetDir string) error
}

// FetchRecorder persists fetch results
type FetchRecorder interface {
	Record(ctx context.Context, result *model.FetchResult) error
}

// Notifier reports failed fetches to humans
type Notifier interface {
	NotifyFailure(ctx context.Context, result *model.FetchResult) error
}
