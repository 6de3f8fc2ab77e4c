// Package config holds the settings of a single trans-selection run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Settings is built once at start-up and passed by value afterwards.
type Settings struct {
	Notification Notification `toml:"notification" yaml:"notification"`
	Translator   Translator   `toml:"translator" yaml:"translator"`
	Clipboard    Clipboard    `toml:"clipboard" yaml:"clipboard"`
}

// Notification configures the desktop notifications.
type Notification struct {
	Title            string `toml:"title" yaml:"title"`
	FailureTitle     string `toml:"failure_title" yaml:"failure_title"`
	NoSelectionTitle string `toml:"no_selection_title" yaml:"no_selection_title"`
	NoSelectionBody  string `toml:"no_selection_body" yaml:"no_selection_body"`
	Backend          string `toml:"backend" yaml:"backend"`
}

// Translator configures the translation engine invocation.
type Translator struct {
	Command string   `toml:"command" yaml:"command"`
	Package string   `toml:"package" yaml:"package"`
	Brief   string   `toml:"brief" yaml:"brief"`
	Target  string   `toml:"target" yaml:"target"`
	Extra   []string `toml:"extra" yaml:"extra"`
}

// Clipboard selects the clipboard tools.
type Clipboard struct {
	Backend string `toml:"backend" yaml:"backend"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Notification: Notification{
			Title:            "Translated",
			FailureTitle:     "Translation Failed",
			NoSelectionTitle: "Translation",
			NoSelectionBody:  "No text selected or copied.",
			Backend:          "notify-send",
		},
		Translator: Translator{
			Command: "trans",
			Package: "trans-shell",
			Brief:   "-b",
		},
		Clipboard: Clipboard{
			Backend: "auto",
		},
	}
}

// Load reads a TOML or YAML file from the given path on top of the defaults
// and validates the result.
func Load(path string) (Settings, error) {
	settings := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, err
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	default:
		md, err := toml.DecodeFile(path, &settings)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return Settings{}, err
			}
			return Settings{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return Settings{}, fmt.Errorf("%w: %s: unknown keys: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
		}
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return settings, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Backend names accepted in the config file; an empty name means the default.
var (
	notificationBackends = []string{"", "notify-send", "beeep"}
	clipboardBackends    = []string{"", "auto", "wl-clipboard", "xclip", "xsel"}
)

// Validate checks required fields and backend names.
func (s Settings) Validate() error {
	if s.Notification.Title == "" {
		return fmt.Errorf("%w: notification.title is required", ErrInvalidConfig)
	}
	if s.Notification.FailureTitle == "" {
		return fmt.Errorf("%w: notification.failure_title is required", ErrInvalidConfig)
	}
	if s.Translator.Command == "" {
		return fmt.Errorf("%w: translator.command is required", ErrInvalidConfig)
	}
	if strings.ContainsAny(s.Translator.Command, " \t") {
		return fmt.Errorf("%w: translator.command must be a single executable, use translator.extra for arguments", ErrInvalidConfig)
	}
	if s.Translator.Package == "" {
		return fmt.Errorf("%w: translator.package is required", ErrInvalidConfig)
	}
	if !knownBackend(notificationBackends, s.Notification.Backend) {
		return fmt.Errorf("%w: unsupported notification.backend %q", ErrInvalidConfig, s.Notification.Backend)
	}
	if !knownBackend(clipboardBackends, s.Clipboard.Backend) {
		return fmt.Errorf("%w: unsupported clipboard.backend %q", ErrInvalidConfig, s.Clipboard.Backend)
	}
	return nil
}

func knownBackend(names []string, name string) bool {
	return slices.Contains(names, strings.ToLower(strings.TrimSpace(name)))
}

// Encode renders s as TOML.
func Encode(s Settings) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
