package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
	"github.com/m-mizutani/rtcfetch/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Source holds the connection parameters of one RTC workspace, or the path
// of a TOML file listing several
type Source struct {
	ConfigFile string
	model.Source
}

// sourceFile is the layout of a TOML source file
type sourceFile struct {
	Sources []*model.Source `toml:"source"`
}

// Flags returns CLI flags for source configuration
func (c *Source) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML file with one [[source]] table per workspace",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("RTCFETCH_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Name of the source, used in logs and notifications",
			Destination: &c.Name,
			Sources:     cli.EnvVars("RTCFETCH_NAME"),
		},
		&cli.StringFlag{
			Name:        "server-url",
			Usage:       "RTC repository URL",
			Destination: &c.ServerURL,
			Sources:     cli.EnvVars("RTCFETCH_SERVER_URL"),
		},
		&cli.StringFlag{
			Name:        "project-area",
			Usage:       "RTC project area",
			Destination: &c.ProjectArea,
			Sources:     cli.EnvVars("RTCFETCH_PROJECT_AREA"),
		},
		&cli.StringFlag{
			Name:        "workspace",
			Usage:       "Repository workspace to load",
			Destination: &c.RepositoryWorkspace,
			Sources:     cli.EnvVars("RTCFETCH_REPOSITORY_WORKSPACE"),
		},
		&cli.StringFlag{
			Name:        "target-dir",
			Usage:       "Directory the workspace is loaded into",
			Destination: &c.TargetDirectory,
			Sources:     cli.EnvVars("RTCFETCH_TARGET_DIRECTORY"),
		},
		&cli.StringFlag{
			Name:        "username",
			Usage:       "RTC user ID",
			Destination: &c.Username,
			Sources:     cli.EnvVars("RTCFETCH_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "password",
			Usage:       "RTC password (prefer the environment variable)",
			Destination: &c.Password,
			Sources:     cli.EnvVars("RTCFETCH_PASSWORD"),
		},
	}
}

// HasFlags reports whether any connection field was given directly
func (c *Source) HasFlags() bool {
	return c.ServerURL != "" || c.ProjectArea != "" || c.RepositoryWorkspace != "" ||
		c.TargetDirectory != "" || c.Username != "" || c.Password != ""
}

// Load returns the sources from the config file, if any
func (c *Source) Load() ([]*model.Source, error) {
	if c.ConfigFile == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read source file", goerr.V("path", c.ConfigFile))
	}

	return ParseSources(raw)
}

// ParseSources decodes a TOML source file
func ParseSources(raw []byte) ([]*model.Source, error) {
	var file sourceFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidConfig, "failed to parse source file: "+err.Error())
	}

	if len(file.Sources) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidConfig, "source file has no [[source]] table")
	}

	return file.Sources, nil
}
