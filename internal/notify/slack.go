package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"sortbench/internal/analysis"
	"sortbench/internal/benchmark"
)

// ErrWebhookNotConfigured is returned by Notify when no webhook URL is set.
var ErrWebhookNotConfigured = errors.New("slack webhook URL is not configured")

// Notifier delivers a plain-text message somewhere.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// SlackNotifier posts messages to a Slack incoming webhook.
type SlackNotifier struct {
	WebhookURL string
	Client     *http.Client
}

// NewSlackNotifier creates a new SlackNotifier.
func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		WebhookURL: webhookURL,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify sends text to the configured webhook.
func (s *SlackNotifier) Notify(ctx context.Context, text string) error {
	if s.WebhookURL == "" {
		return ErrWebhookNotConfigured
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	msg := &slack.WebhookMessage{Text: text}
	if err := slack.PostWebhookCustomHTTPContext(ctx, s.WebhookURL, client, msg); err != nil {
		return fmt.Errorf("failed to send slack notification: %w", err)
	}
	return nil
}

// RunMessage summarises a completed run: how many results it produced, the
// overall winner, and the fastest algorithm for each large scenario.
func RunMessage(results []benchmark.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Sorting benchmark finished* with %d results.\n", len(results))

	rep := analysis.Analyze(results)
	if rep.HasOverallWinner {
		fmt.Fprintf(&b, "Overall winner on random data: *%s* (%.6fs average)\n",
			rep.OverallWinner.Algorithm, rep.OverallWinner.Mean)
	}

	var large []analysis.Winner
	for _, w := range rep.Winners {
		if w.Scenario.Size >= analysis.LargeInputSize {
			large = append(large, w)
		}
	}
	if len(large) > 0 {
		b.WriteString("Fastest on large inputs:\n")
		for _, w := range large {
			fmt.Fprintf(&b, "• %s: %s (%.6fs)\n", w.Scenario, w.Result.Algorithm, w.Result.TimeSeconds)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
