// Package notify shows desktop notifications.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/mblarsen/trans-selection/internal/runner"
)

// Notifier is an interface for sending desktop notifications.
type Notifier interface {
	// Notify sends a normal-urgency desktop notification.
	Notify(ctx context.Context, title, message string) error
	// Alert sends a critical-urgency desktop notification.
	Alert(ctx context.Context, title, message string) error
}

// Backend names a Notifier implementation.
type Backend string

const (
	BackendNotifySend Backend = "notify-send"
	BackendBeeep      Backend = "beeep"
)

// Executable returns the program the backend needs on the search path, or ""
// when it talks to the notification daemon directly.
func (b Backend) Executable() string {
	switch Backend(strings.ToLower(strings.TrimSpace(string(b)))) {
	case "", BackendNotifySend:
		return "notify-send"
	default:
		return ""
	}
}

// New returns the Notifier for backend. r is only used by notify-send.
func New(backend string, r Runner) (Notifier, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(backend))) {
	case "", BackendNotifySend:
		return &NotifySendNotifier{runner: r}, nil
	case BackendBeeep:
		return &BeeepNotifier{}, nil
	default:
		return nil, fmt.Errorf("unsupported notifier backend: %q", backend)
	}
}

// Runner executes external commands.
type Runner interface {
	Run(ctx context.Context, args []string, opts runner.Options) (runner.Result, error)
}
