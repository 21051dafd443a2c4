package interfaces

import (
	"context"

	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
)

// FetchUseCase fetches RTC workspaces into local directories
type FetchUseCase interface {
	// Fetch loads one workspace. Only missing parameters and directory
	// failures are returned as errors; lscm failures are logged and reported
	// through the result.
	Fetch(ctx context.Context, params *model.ConnectionParams) (*model.FetchResult, error)

	// FetchAll fetches each source in order and never stops early
	FetchAll(ctx context.Context, sources []*model.Source) []*model.FetchResult
}

// MetadataUseCase exposes connector metadata to the hosting framework
type MetadataUseCase interface {
	Icon() string
	ConnectionData() model.ConnectionData
}
