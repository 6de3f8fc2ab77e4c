// Package pipeline runs the read → translate → notify → copy sequence once.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mblarsen/trans-selection/internal/config"
	"github.com/mblarsen/trans-selection/internal/failure"
	"github.com/mblarsen/trans-selection/internal/notify"
)

// State is a step of the driver. Done, NoSelection and Failed are terminal.
type State int

const (
	CheckingAvailability State = iota
	ReadingSelection
	Translating
	Notifying
	WritingClipboard
	Done
	NoSelection
	Failed
)

func (s State) String() string {
	switch s {
	case CheckingAvailability:
		return "checking-availability"
	case ReadingSelection:
		return "reading-selection"
	case Translating:
		return "translating"
	case Notifying:
		return "notifying"
	case WritingClipboard:
		return "writing-clipboard"
	case Done:
		return "done"
	case NoSelection:
		return "no-selection"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ToolFinder reports whether an executable is installed.
type ToolFinder interface {
	Available(name string) bool
}

// Board reads selection buffers and writes the clipboard.
type Board interface {
	Paster
	Copy(ctx context.Context, text string) error
}

// Translator translates normalized text.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Result describes how a run ended.
type Result struct {
	State       State
	Text        string
	Translation string
	Err         error
}

// Driver wires the stages together.
type Driver struct {
	settings   config.Settings
	finder     ToolFinder
	board      Board
	translator Translator
	notifier   notify.Notifier
}

// NewDriver returns a Driver. settings is copied and never modified.
func NewDriver(settings config.Settings, finder ToolFinder, board Board, translator Translator, notifier notify.Notifier) *Driver {
	return &Driver{
		settings:   settings,
		finder:     finder,
		board:      board,
		translator: translator,
		notifier:   notifier,
	}
}

// Run executes the pipeline once. Every fatal error ends in the Failed state
// with a single critical notification; Run itself never fails.
func (d *Driver) Run(ctx context.Context) Result {
	res := d.run(ctx)
	if res.State != Failed {
		return res
	}

	var fe *failure.Error
	if !errors.As(res.Err, &fe) {
		fe = failure.NewCommandExecution(res.Err)
	}
	switch fe.Kind {
	case failure.ToolUnavailable:
		slog.Error("Operation failed: translator is not installed", "err", fe)
	case failure.CommandExecution:
		slog.Error("Operation failed: command did not succeed", "err", fe)
	case failure.EmptyTranslationResult:
		slog.Error("Operation failed: translation was empty", "err", fe)
	default:
		slog.Error("Operation failed", "err", fe)
	}
	if err := d.notifier.Alert(ctx, d.settings.Notification.FailureTitle, fe.Message); err != nil {
		slog.Warn("failed to send failure notification", "err", err)
	}
	return res
}

func (d *Driver) run(ctx context.Context) Result {
	tool := d.settings.Translator.Command
	if !d.finder.Available(tool) {
		return Result{State: Failed, Err: failure.NewToolUnavailable(tool, d.settings.Translator.Package)}
	}

	outcome := ReadSelection(ctx, d.board)
	switch outcome.Status {
	case SelectionReadError:
		return Result{State: Failed, Err: outcome.Err}
	case SelectionNotFound:
		slog.Info("No content found in clipboard to translate.")
		if err := d.notifier.Notify(ctx, d.settings.Notification.NoSelectionTitle, d.settings.Notification.NoSelectionBody); err != nil {
			slog.Warn("failed to send notification", "err", err)
		}
		return Result{State: NoSelection}
	}

	translated, err := d.translator.Translate(ctx, outcome.Text)
	if err != nil {
		return Result{State: Failed, Text: outcome.Text, Err: err}
	}
	res := Result{State: Notifying, Text: outcome.Text, Translation: translated}

	slog.Info("Sending notification...")
	if err := d.notifier.Notify(ctx, d.settings.Notification.Title, translated); err != nil {
		slog.Warn("failed to send notification", "err", err)
	}

	res.State = WritingClipboard
	if translated != "" {
		slog.Info("Copying final translated text to clipboard...")
		if err := d.board.Copy(ctx, translated); err != nil {
			slog.Warn("failed to copy translation to clipboard", "err", err)
		} else {
			slog.Info("Done.")
		}
	}

	res.State = Done
	return res
}
