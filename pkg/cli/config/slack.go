package config

import (
	"github.com/m-mizutani/rtcfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/rtcfetch/pkg/infra/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds failure notification configuration
type Slack struct {
	WebhookURL string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL for failed fetch notifications",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("RTCFETCH_SLACK_WEBHOOK_URL"),
		},
	}
}

// Configure returns the notifier, or nil when no webhook is set
func (c *Slack) Configure() interfaces.Notifier {
	if c.WebhookURL == "" {
		return nil
	}
	return slack.NewNotifier(c.WebhookURL)
}
