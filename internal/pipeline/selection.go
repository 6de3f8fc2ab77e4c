package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mblarsen/trans-selection/internal/clipboard"
	"github.com/mblarsen/trans-selection/internal/failure"
)

// SelectionStatus is the kind of outcome ReadSelection produced.
type SelectionStatus int

const (
	SelectionFound SelectionStatus = iota
	SelectionNotFound
	SelectionReadError
)

// SelectionOutcome is the three-way result of reading the selection buffers.
type SelectionOutcome struct {
	Status SelectionStatus
	// Text is the normalized text when Status is SelectionFound.
	Text string
	// Err is set when Status is SelectionReadError.
	Err error
}

// Paster reads a selection buffer.
type Paster interface {
	Paste(ctx context.Context, sel clipboard.Selection) (string, error)
}

// ReadSelection returns the primary selection, or the clipboard when the
// primary selection is empty. The clipboard is only read if needed.
func ReadSelection(ctx context.Context, p Paster) SelectionOutcome {
	slog.Info("Getting clipboard content (trying primary selection)...")
	text, err := p.Paste(ctx, clipboard.Primary)
	if err != nil {
		return SelectionOutcome{Status: SelectionReadError, Err: failure.NewCommandExecution(err)}
	}
	content := strings.TrimSpace(text)

	if content == "" {
		slog.Info("Primary selection empty, trying regular clipboard...")
		text, err = p.Paste(ctx, clipboard.Clipboard)
		if err != nil {
			return SelectionOutcome{Status: SelectionReadError, Err: failure.NewCommandExecution(err)}
		}
		content = strings.TrimSpace(text)
	}

	if content == "" {
		return SelectionOutcome{Status: SelectionNotFound}
	}
	return SelectionOutcome{Status: SelectionFound, Text: Normalize(content)}
}

// lineBreaks maps every line boundary to "\n": CRLF, CR, vertical tab,
// form feed, the file/group/record separators, NEL and the Unicode line and
// paragraph separators.
var lineBreaks = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\v", "\n",
	"\f", "\n",
	"\x1c", "\n",
	"\x1d", "\n",
	"\x1e", "\n",
	"\u0085", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

// Normalize trims text and joins its lines with single spaces.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.Join(strings.Split(lineBreaks.Replace(text), "\n"), " ")
}
