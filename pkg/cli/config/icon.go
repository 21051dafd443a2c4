package config

import (
	"github.com/m-mizutani/rtcfetch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Icon holds connector icon configuration
type Icon struct {
	Path string
}

// Flags returns CLI flags for icon configuration
func (c *Icon) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "icon-path",
			Usage:       "SVG file served as the connector icon instead of the built-in one",
			Destination: &c.Path,
			Sources:     cli.EnvVars("RTCFETCH_ICON_PATH"),
		},
	}
}

// Options returns metadata use case options
func (c *Icon) Options() []usecase.MetadataOption {
	if c.Path == "" {
		return nil
	}
	return []usecase.MetadataOption{usecase.WithIconPath(c.Path)}
}
