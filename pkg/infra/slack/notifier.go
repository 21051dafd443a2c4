// Package slack posts failed fetches to a Slack incoming webhook.
package slack

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/rtcfetch/pkg/domain/model"
	"github.com/slack-go/slack"
)

// maxStderrLen keeps messages under Slack's attachment field limit
const maxStderrLen = 1500

type notifier struct {
	webhookURL string
}

// NewNotifier creates a Notifier that posts to webhookURL
func NewNotifier(webhookURL string) interfaces.Notifier {
	return &notifier{webhookURL: webhookURL}
}

// NotifyFailure posts a summary of result
func (n *notifier) NotifyFailure(ctx context.Context, result *model.FetchResult) error {
	if err := slack.PostWebhookContext(ctx, n.webhookURL, buildMessage(result)); err != nil {
		return goerr.Wrap(err, "failed to post slack webhook", goerr.V("fetch_id", result.ID))
	}
	return nil
}

func buildMessage(result *model.FetchResult) *slack.WebhookMessage {
	fields := []slack.AttachmentField{
		{Title: "Workspace", Value: result.RepositoryWorkspace, Short: true},
		{Title: "Stage", Value: string(result.Stage), Short: true},
		{Title: "Server", Value: result.ServerURL, Short: true},
		{Title: "Target", Value: result.TargetDirectory, Short: true},
	}
	if result.Stderr != "" {
		fields = append(fields, slack.AttachmentField{Title: "stderr", Value: "```" + truncate(result.Stderr, maxStderrLen) + "```"})
	} else if result.Error != "" {
		fields = append(fields, slack.AttachmentField{Title: "Error", Value: result.Error})
	}

	title := fmt.Sprintf("RTC fetch %s: %s", result.Status, result.RepositoryWorkspace)
	if result.Source != "" {
		title = fmt.Sprintf("RTC fetch %s: %s (%s)", result.Status, result.RepositoryWorkspace, result.Source)
	}

	return &slack.WebhookMessage{
		Text: title,
		Attachments: []slack.Attachment{
			{
				Color:  "danger",
				Fields: fields,
				Footer: "fetch " + result.ID,
			},
		},
	}
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
