package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/charmbracelet/fang"

	"github.com/mblarsen/trans-selection/internal/config"
	"github.com/mblarsen/trans-selection/internal/notify"
	"github.com/mblarsen/trans-selection/internal/runner"
)

// ErrFailed means the pipeline ended in the Failed state. The user has
// already seen the critical notification.
var ErrFailed = errors.New("translation failed")

func handleError(w io.Writer, styles fang.Styles, err error) {
	if errors.Is(err, ErrFailed) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// notifySetupError tells the user about errors that happen before the
// pipeline exists, e.g. a broken config file. There is no terminal to print
// to when started from a hotkey.
func notifySetupError(ctx context.Context, err error) {
	slog.Error("setup failed", "err", err)
	n := notify.NewNotifySend(runner.New())
	if nerr := n.Alert(ctx, config.Default().Notification.FailureTitle, err.Error()); nerr != nil {
		slog.Warn("failed to send failure notification", "err", nerr)
	}
}
