package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/cli/config"
	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdFetch() *cli.Command {
	var (
		sourceCfg config.Source
		fetchCfg  fetchConfig
		strict    bool
		output    string
	)

	flags := append(sourceCfg.Flags(), fetchCfg.Flags()...)
	flags = append(flags,
		&cli.BoolFlag{
			Name:        "strict",
			Usage:       "Exit with an error when any login or load fails",
			Destination: &strict,
			Sources:     cli.EnvVars("RTCFETCH_STRICT"),
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Write fetch results as JSON to this file ('-' for stdout)",
			Destination: &output,
			Sources:     cli.EnvVars("RTCFETCH_OUTPUT"),
		},
	)

	return &cli.Command{
		Name:    "fetch",
		Aliases: []string{"f"},
		Usage:   "Log in to RTC and load workspaces",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			fetchUC, cleanup, err := fetchCfg.build(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sources, err := sourceCfg.Load()
			if err != nil {
				return err
			}

			if len(sources) == 0 || sourceCfg.HasFlags() {
				sources = append(sources, &sourceCfg.Source)
			}

			results := fetchUC.FetchAll(ctx, sources)

			if err := writeResults(output, results); err != nil {
				return err
			}

			return checkResults(results, strict)
		},
	}
}

// checkResults turns the results into the exit status. Rejected sources
// always fail the command; login and load failures only with strict.
func checkResults(results []*model.FetchResult, strict bool) error {
	var rejected, failed []string
	for _, r := range results {
		name := r.Source
		if name == "" {
			name = r.RepositoryWorkspace
		}
		switch r.Status {
		case model.FetchStatusRejected:
			rejected = append(rejected, name)
		case model.FetchStatusFailed:
			failed = append(failed, name)
		}
	}

	if len(rejected) > 0 {
		return goerr.New("some sources were rejected", goerr.V("sources", rejected))
	}
	if strict && len(failed) > 0 {
		return goerr.New("some fetches failed", goerr.V("sources", failed))
	}
	return nil
}

func writeResults(path string, results []*model.FetchResult) error {
	if path == "" {
		return nil
	}

	raw, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode fetch results")
	}
	raw = append(raw, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(raw)
	} else {
		err = os.WriteFile(path, raw, 0600)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to write fetch results", goerr.V("path", path))
	}
	return nil
}
