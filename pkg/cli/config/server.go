package config

import (
	"net"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Server holds the listener settings of the serve command
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
}

func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Listen address (host:port)",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("RTCFETCH_ADDR"),
		},
		&cli.DurationFlag{
			Name:        "shutdown-timeout",
			Usage:       "Time allowed for in-flight requests on shutdown",
			Value:       10 * time.Second,
			Destination: &c.ShutdownTimeout,
			Sources:     cli.EnvVars("RTCFETCH_SHUTDOWN_TIMEOUT"),
		},
	}
}

// Validate checks that Addr is a host:port pair and the timeout is positive
func (c *Server) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return goerr.Wrap(types.ErrInvalidConfig, "invalid listen address",
			goerr.V("addr", c.Addr),
			goerr.V("cause", err.Error()),
		)
	}
	if c.ShutdownTimeout <= 0 {
		return goerr.Wrap(types.ErrInvalidConfig, "shutdown timeout must be positive",
			goerr.V("shutdown_timeout", c.ShutdownTimeout.String()),
		)
	}
	return nil
}
