package config

import (
	"time"

	"github.com/m-mizutani/rtcfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/rtcfetch/pkg/infra/command"
	"github.com/m-mizutani/rtcfetch/pkg/infra/rtc"
	"github.com/urfave/cli/v3"
)

// LSCM holds configuration of the RTC SCM command line client
type LSCM struct {
	Binary  string
	Timeout time.Duration
}

// Flags returns CLI flags for lscm configuration
func (c *LSCM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "lscm-binary",
			Usage:       "Path to the lscm executable",
			Value:       rtc.DefaultBinary,
			Destination: &c.Binary,
			Sources:     cli.EnvVars("RTCFETCH_LSCM_BINARY"),
		},
		&cli.DurationFlag{
			Name:        "lscm-timeout",
			Usage:       "Timeout for each lscm invocation (0 disables)",
			Value:       0,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("RTCFETCH_LSCM_TIMEOUT"),
		},
	}
}

// Configure builds the RTC client
func (c *LSCM) Configure() interfaces.RTCClient {
	binary := c.Binary
	if binary == "" {
		binary = rtc.DefaultBinary
	}

	return rtc.NewClient(
		command.NewRunner(),
		rtc.WithBinary(binary),
		rtc.WithTimeout(c.Timeout),
	)
}
