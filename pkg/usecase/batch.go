package usecase

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
	"github.com/m-mizutani/rtcfetch/pkg/domain/types"
	"github.com/m-mizutani/rtcfetch/pkg/utils/logging"
)

// FetchAll fetches every source in order. A source that fails, for any
// reason, gets a failed or rejected result and the batch moves on. Sources
// whose target directory was already claimed by an earlier source are
// rejected without running lscm.
func (uc *fetchUseCase) FetchAll(ctx context.Context, sources []*model.Source) []*model.FetchResult {
	logger := logging.From(ctx)
	logger.Info("Starting batch fetch", "sources", len(sources))

	claimed := make(map[string]string, len(sources))
	results := make([]*model.FetchResult, 0, len(sources))

	for i, src := range sources {
		name := src.Name
		if name == "" {
			name = src.RepositoryWorkspace
		}

		if src.TargetDirectory != "" {
			dir := targetKey(src.TargetDirectory)
			if owner, ok := claimed[dir]; ok {
				err := goerr.Wrap(types.ErrInvalidConfig, "target directory is shared with another source",
					goerr.V("index", i),
					goerr.V("target_directory", dir),
					goerr.V("claimed_by", owner),
				)
				result := &model.FetchResult{
					ID:                  uuid.NewString(),
					Source:              name,
					ServerURL:           src.ServerURL,
					RepositoryWorkspace: src.RepositoryWorkspace,
					TargetDirectory:     src.TargetDirectory,
					Stage:               model.FetchStageValidate,
					StartedAt:           time.Now(),
				}
				srcCtx := logging.With(ctx, logger.With("fetch_id", result.ID, "source", name))
				logging.From(srcCtx).Error("Skipped source", "error", err)
				uc.reject(srcCtx, result, err)
				results = append(results, result)
				continue
			}
			claimed[dir] = name
		}

		result, err := uc.fetch(ctx, name, src.Params())
		if err != nil {
			logger.Warn("Source rejected, continuing with next source", "source", name)
		}
		results = append(results, result)
	}

	var succeeded, failed, rejected int
	for _, r := range results {
		switch r.Status {
		case model.FetchStatusSucceeded:
			succeeded++
		case model.FetchStatusFailed:
			failed++
		default:
			rejected++
		}
	}

	logger.Info("Finished batch fetch",
		"succeeded", succeeded,
		"failed", failed,
		"rejected", rejected,
	)
	return results
}

// targetKey identifies a target directory regardless of how it is spelled.
// Relative paths resolve against the working directory.
func targetKey(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}
