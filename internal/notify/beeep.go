package notify

import (
	"context"
	"log/slog"

	"github.com/gen2brain/beeep"
)

// AppName is reported to the notification daemon by BeeepNotifier.
const AppName = "trans-selection"

// Overridable for testing.
var (
	beeepNotify = beeep.Notify
	beeepBeep   = beeep.Beep
)

// BeeepNotifier talks to the notification daemon over D-Bus instead of
// spawning notify-send.
type BeeepNotifier struct{}

// Notify sends a desktop notification.
func (n *BeeepNotifier) Notify(_ context.Context, title, message string) error {
	beeep.AppName = AppName
	return beeepNotify(title, message, "")
}

// Alert sends a desktop notification and then sounds the system beep. Only
// the notification can fail the call; most desktop sessions have no access
// to the console speaker.
func (n *BeeepNotifier) Alert(_ context.Context, title, message string) error {
	beeep.AppName = AppName
	if err := beeepNotify(title, message, ""); err != nil {
		return err
	}
	if err := beeepBeep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
		slog.Debug("beep failed", "err", err)
	}
	return nil
}
