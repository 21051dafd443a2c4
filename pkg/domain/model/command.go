package model

import (
	"strings"

	"github.com/m-mizutani/rtcfetch/pkg/domain/types"
)

// CommandResult holds the captured output of an external command
type CommandResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// StderrText returns stderr with surrounding whitespace removed
func (r *CommandResult) StderrText() string {
	return strings.TrimSpace(string(r.Stderr))
}

// CommandError is returned when an lscm invocation exits with a non-zero
// status. It matches types.ErrCommandExecution under errors.Is.
type CommandError struct {
	Operation string // "login" or "load"
	ExitCode  int
	Stderr    string
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return "lscm " + e.Operation + " exited with a non-zero status"
	}
	return "lscm " + e.Operation + " failed: " + e.Stderr
}

// Is reports whether target is types.ErrCommandExecution
func (e *CommandError) Is(target error) bool {
	return target == types.ErrCommandExecution
}

// DirectoryError is returned when the target directory cannot be prepared.
// It matches types.ErrDirectoryCreation under errors.Is and unwraps to the
// underlying filesystem error.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return "failed to create directory '" + e.Path + "': " + e.Err.Error()
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// Is reports whether target is types.ErrDirectoryCreation
func (e *DirectoryError) Is(target error) bool {
	return target == types.ErrDirectoryCreation
}
