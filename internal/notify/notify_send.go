package notify

import (
	"context"

	"github.com/mblarsen/trans-selection/internal/runner"
)

// NotifySendNotifier sends notifications using notify-send. Its exit status
// is never checked; only a failure to launch it is returned.
type NotifySendNotifier struct {
	runner Runner
}

// NewNotifySend returns a NotifySendNotifier running through r.
func NewNotifySend(r Runner) *NotifySendNotifier {
	return &NotifySendNotifier{runner: r}
}

// Notify sends a desktop notification.
func (n *NotifySendNotifier) Notify(ctx context.Context, title, message string) error {
	_, err := n.runner.Run(ctx, []string{"notify-send", title, message}, runner.Options{Capture: true})
	return err
}

// Alert sends a desktop notification with critical urgency.
func (n *NotifySendNotifier) Alert(ctx context.Context, title, message string) error {
	_, err := n.runner.Run(ctx, []string{"notify-send", "-u", "critical", title, message}, runner.Options{Capture: true})
	return err
}
