package model_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
	"github.com/m-mizutani/rtcfetch/pkg/domain/types"
)

func TestCommandError(t *testing.T) {
	err := &model.CommandError{Operation: "load", ExitCode: 2, Stderr: "workspace not found"}
	gt.True(t, errors.Is(err, types.ErrCommandExecution))
	gt.False(t, errors.Is(err, types.ErrUnexpected))
	gt.Equal(t, err.Error(), "lscm load failed: workspace not found")

	quiet := &model.CommandError{Operation: "login", ExitCode: 1}
	gt.Equal(t, quiet.Error(), "lscm login exited with a non-zero status")
}

func TestDirectoryError(t *testing.T) {
	err := &model.DirectoryError{Path: "/srv/rtc", Err: fs.ErrPermission}
	gt.True(t, errors.Is(err, types.ErrDirectoryCreation))
	gt.True(t, errors.Is(err, fs.ErrPermission))
	gt.String(t, err.Error()).Contains("/srv/rtc")
}
