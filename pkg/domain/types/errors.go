package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrMissingParameter means a required connection field is absent or empty.
	ErrMissingParameter = goerr.New("missing connection parameter")

	// ErrDirectoryCreation means the target directory could not be prepared.
	ErrDirectoryCreation = goerr.New("failed to create target directory")

	// ErrCommandExecution means the lscm client exited with a non-zero status.
	ErrCommandExecution = goerr.New("lscm command failed")

	// ErrUnexpected covers any other failure during login or load.
	ErrUnexpected = goerr.New("unexpected error during RTC operation")

	// ErrInvalidConfig is returned for malformed configuration input.
	ErrInvalidConfig = goerr.New("invalid configuration")
)
