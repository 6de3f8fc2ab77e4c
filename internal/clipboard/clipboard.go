// Package clipboard reads and writes the desktop selection buffers through
// the wl-clipboard, xclip or xsel command-line tools.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mblarsen/trans-selection/internal/runner"
)

// Runner executes external commands.
type Runner interface {
	Run(ctx context.Context, args []string, opts runner.Options) (runner.Result, error)
}

// Selection names one of the two buffers a desktop session exposes.
type Selection int

const (
	// Primary is the most recently highlighted text.
	Primary Selection = iota
	// Clipboard is the explicit copy/paste buffer.
	Clipboard
)

func (s Selection) String() string {
	if s == Primary {
		return "primary"
	}
	return "clipboard"
}

// Backend identifies a clipboard command backend.
type Backend string

const (
	BackendAuto        Backend = "auto"
	BackendWlClipboard Backend = "wl-clipboard"
	BackendXclip       Backend = "xclip"
	BackendXsel        Backend = "xsel"
)

// ErrUnsupportedBackend is returned for backend names this package does not know.
var ErrUnsupportedBackend = errors.New("unsupported clipboard backend")

// Reader returns the executable used to read from the backend.
func (b Backend) Reader() string {
	if b == BackendWlClipboard {
		return "wl-paste"
	}
	return string(b)
}

// Writer returns the executable used to write to the backend.
func (b Backend) Writer() string {
	if b == BackendWlClipboard {
		return "wl-copy"
	}
	return string(b)
}

func (b Backend) pasteArgs(sel Selection) []string {
	switch b {
	case BackendXclip:
		if sel == Primary {
			return []string{"xclip", "-o", "-selection", "primary"}
		}
		return []string{"xclip", "-o", "-selection", "clipboard"}
	case BackendXsel:
		if sel == Primary {
			return []string{"xsel", "--primary", "--output"}
		}
		return []string{"xsel", "--clipboard", "--output"}
	default:
		if sel == Primary {
			return []string{"wl-paste", "-p"}
		}
		return []string{"wl-paste"}
	}
}

func (b Backend) copyArgs() []string {
	switch b {
	case BackendXclip:
		return []string{"xclip", "-selection", "clipboard"}
	case BackendXsel:
		return []string{"xsel", "--clipboard", "--input"}
	default:
		return []string{"wl-copy"}
	}
}

// Board reads and writes selection buffers through one backend.
type Board struct {
	backend Backend
	runner  Runner
}

// New returns a Board for a concrete (already resolved) backend.
func New(backend Backend, r Runner) *Board {
	return &Board{backend: backend, runner: r}
}

// Backend returns the backend the board talks to.
func (b *Board) Backend() Backend {
	return b.backend
}

// Paste returns the raw contents of sel. An empty buffer is not an error:
// the readers exit non-zero with nothing on stdout when there is nothing to
// paste, so only launch failures are reported.
func (b *Board) Paste(ctx context.Context, sel Selection) (string, error) {
	res, err := b.runner.Run(ctx, b.backend.pasteArgs(sel), runner.Options{Capture: true})
	if err != nil {
		return "", fmt.Errorf("read %s selection: %w", sel, err)
	}
	return res.Stdout, nil
}

// Copy replaces the clipboard buffer with text. The writer's own output is
// discarded; wl-copy forks a server that would otherwise hold the pipe open.
func (b *Board) Copy(ctx context.Context, text string) error {
	_, err := b.runner.Run(ctx, b.backend.copyArgs(), runner.Options{Stdin: text, Check: true})
	if err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Resolve converts a configured backend name into a concrete backend. "auto"
// (or empty) picks the first backend that fits the display server and whose
// reader is installed, falling back to wl-clipboard.
func Resolve(name string, available func(string) bool) (Backend, error) {
	requested := Backend(strings.ToLower(strings.TrimSpace(name)))
	if requested == "" {
		requested = BackendAuto
	}
	switch requested {
	case BackendAuto:
		return autoBackend(available), nil
	case BackendWlClipboard, BackendXclip, BackendXsel:
		return requested, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedBackend, name)
	}
}

// autoBackend tries wl-clipboard on a Wayland session, then xclip and xsel
// when an X display (possibly XWayland) is reachable.
func autoBackend(available func(string) bool) Backend {
	var candidates []Backend
	if strings.EqualFold(env("XDG_SESSION_TYPE"), "wayland") || env("WAYLAND_DISPLAY") != "" {
		candidates = append(candidates, BackendWlClipboard)
	}
	if env("DISPLAY") != "" {
		candidates = append(candidates, BackendXclip, BackendXsel)
	}
	if len(candidates) == 0 {
		return BackendWlClipboard
	}
	for _, candidate := range candidates {
		if available(candidate.Reader()) {
			return candidate
		}
	}
	return candidates[0]
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
