package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
	"github.com/m-mizutani/rtcfetch/pkg/domain/types"
	"github.com/m-mizutani/rtcfetch/pkg/utils/errutil"
	"github.com/m-mizutani/rtcfetch/pkg/utils/logging"
)

const targetDirPerm = 0755

type fetchUseCase struct {
	client   interfaces.RTCClient
	recorder interfaces.FetchRecorder
	notifier interfaces.Notifier
}

// FetchOption is a functional option for the fetch use case
type FetchOption func(*fetchUseCase)

// WithRecorder stores every fetch result
func WithRecorder(recorder interfaces.FetchRecorder) FetchOption {
	return func(uc *fetchUseCase) {
		uc.recorder = recorder
	}
}

// WithNotifier reports failed fetches
func WithNotifier(notifier interfaces.Notifier) FetchOption {
	return func(uc *fetchUseCase) {
		uc.notifier = notifier
	}
}

// NewFetch creates a new instance of FetchUseCase
func NewFetch(client interfaces.RTCClient, opts ...FetchOption) interfaces.FetchUseCase {
	uc := &fetchUseCase{
		client: client,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Fetch loads one workspace into params.TargetDirectory. The returned result
// is never nil. The error is non-nil only for incomplete parameters or an
// unusable target directory; login and load failures are logged and absorbed.
func (uc *fetchUseCase) Fetch(ctx context.Context, params *model.ConnectionParams) (*model.FetchResult, error) {
	return uc.fetch(ctx, "", params)
}

func (uc *fetchUseCase) fetch(ctx context.Context, name string, params *model.ConnectionParams) (*model.FetchResult, error) {
	result := &model.FetchResult{
		ID:        uuid.NewString(),
		Source:    name,
		Stage:     model.FetchStageValidate,
		StartedAt: time.Now(),
	}

	logger := logging.From(ctx).With("fetch_id", result.ID)
	if name != "" {
		logger = logger.With("source", name)
	}
	ctx = logging.With(ctx, logger)

	if params == nil {
		params = &model.ConnectionParams{}
	}
	result.ServerURL = params.ServerURL
	result.RepositoryWorkspace = params.RepositoryWorkspace
	result.TargetDirectory = params.TargetDirectory

	if err := params.Validate(); err != nil {
		logger.Error("Rejected fetch with incomplete connection parameters", "error", err)
		uc.reject(ctx, result, err)
		return result, err
	}

	logger.Info("Starting fetch process for RTC workspace",
		"repository_workspace", params.RepositoryWorkspace,
		"server_url", params.ServerURL,
		"project_area", params.ProjectArea,
		"target_directory", params.TargetDirectory,
	)

	result.Stage = model.FetchStageDirectory
	created, err := ensureDirectory(params.TargetDirectory)
	if err != nil {
		logger.Error("Failed to create directory",
			"target_directory", params.TargetDirectory,
			"error", err,
		)
		uc.reject(ctx, result, err)
		return result, err
	}
	result.CreatedDirectory = created
	if created {
		logger.Info("Created directory", "target_directory", params.TargetDirectory)
	}

	result.Stage = model.FetchStageLogin
	logger.Info("Authenticating with RTC server", "server_url", params.ServerURL)
	if err := uc.runStep(ctx, func(ctx context.Context) error {
		return uc.client.Login(ctx, params.ServerURL, params.Username, params.Password)
	}); err != nil {
		uc.fail(ctx, result, err)
		return result, nil
	}

	result.Stage = model.FetchStageLoad
	logger.Info("Loading workspace",
		"repository_workspace", params.RepositoryWorkspace,
		"target_directory", params.TargetDirectory,
	)
	if err := uc.runStep(ctx, func(ctx context.Context) error {
		return uc.client.Load(ctx, params.RepositoryWorkspace, params.TargetDirectory)
	}); err != nil {
		uc.fail(ctx, result, err)
		return result, nil
	}

	result.Stage = model.FetchStageDone
	result.Status = model.FetchStatusSucceeded
	uc.finish(ctx, result)

	logger.Info("Successfully loaded workspace",
		"repository_workspace", params.RepositoryWorkspace,
		"target_directory", params.TargetDirectory,
		"duration", result.Duration,
	)
	return result, nil
}

// ensureDirectory creates dir and its parents when missing. It reports
// whether the directory was created by this call.
func ensureDirectory(dir string) (bool, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, &model.DirectoryError{Path: dir, Err: errors.New("path exists and is not a directory")}
	case !errors.Is(err, os.ErrNotExist):
		return false, &model.DirectoryError{Path: dir, Err: err}
	}

	if err := os.MkdirAll(dir, targetDirPerm); err != nil {
		return false, &model.DirectoryError{Path: dir, Err: err}
	}
	return true, nil
}

// runStep calls fn and converts a panic into types.ErrUnexpected
func (uc *fetchUseCase) runStep(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = goerr.Wrap(types.ErrUnexpected, "panic during RTC operation",
				goerr.V("recover", fmt.Sprint(r)))
		}
	}()
	return fn(ctx)
}

// fail records a login or load failure. It does not propagate it.
func (uc *fetchUseCase) fail(ctx context.Context, result *model.FetchResult, err error) {
	result.Status = model.FetchStatusFailed
	result.Error = err.Error()

	var cmdErr *model.CommandError
	if errors.As(err, &cmdErr) {
		result.Stderr = cmdErr.Stderr
		errutil.Handle(ctx, "Error during RTC operations", err)
	} else {
		errutil.Handle(ctx, "Unexpected error during RTC operations", err)
	}

	uc.finish(ctx, result)
}

func (uc *fetchUseCase) reject(ctx context.Context, result *model.FetchResult, err error) {
	result.Status = model.FetchStatusRejected
	result.Error = err.Error()
	uc.finish(ctx, result)
}

// finish stamps the duration and hands the result to the configured sinks.
// Sink failures never change the outcome.
func (uc *fetchUseCase) finish(ctx context.Context, result *model.FetchResult) {
	result.Duration = time.Since(result.StartedAt)

	if uc.recorder != nil {
		if err := uc.recorder.Record(ctx, result); err != nil {
			errutil.Handle(ctx, "Failed to record fetch result", err)
		}
	}

	if uc.notifier != nil && !result.Succeeded() {
		if err := uc.notifier.NotifyFailure(ctx, result); err != nil {
			errutil.Handle(ctx, "Failed to send failure notification", err)
		}
	}
}
