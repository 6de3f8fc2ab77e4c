// Package translator runs translate-shell to translate a piece of text.
package translator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mblarsen/trans-selection/internal/failure"
	"github.com/mblarsen/trans-selection/internal/runner"
)

// Runner executes external commands.
type Runner interface {
	Run(ctx context.Context, args []string, opts runner.Options) (runner.Result, error)
}

// Translator invokes the translation engine once per call.
type Translator struct {
	// Command is the engine executable, e.g. "trans".
	Command string
	// Package is the engine's distribution name, used in user-facing messages.
	Package string
	// Brief is the flag selecting translation-only output.
	Brief string
	// Target is an optional language selector such as ":de".
	Target string
	// Extra holds any further engine arguments.
	Extra []string

	runner Runner
}

// New returns a Translator that runs command through r.
func New(r Runner, command, pkg, brief string) *Translator {
	return &Translator{Command: command, Package: pkg, Brief: brief, runner: r}
}

// Args returns the full argument vector used to translate text.
func (t *Translator) Args(text string) []string {
	args := []string{t.Command}
	if t.Brief != "" {
		args = append(args, t.Brief)
	}
	if t.Target != "" {
		args = append(args, t.Target)
	}
	args = append(args, t.Extra...)
	return append(args, text)
}

// Translate returns the engine's trimmed output for text. Both a failed
// process and an empty result are reported as a *failure.Error.
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	slog.Info("Attempting translation", "engine", t.Package)
	res, err := t.runner.Run(ctx, t.Args(text), runner.Options{Capture: true, Check: true})
	if err != nil {
		return "", failure.NewCommandExecution(err)
	}

	translated := strings.TrimSpace(res.Stdout)
	if translated == "" {
		return "", failure.NewEmptyTranslationResult(t.Package)
	}

	slog.Info("Translation successful.")
	return translated, nil
}
