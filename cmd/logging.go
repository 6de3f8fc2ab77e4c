package cmd

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const logLevelEnv = "TRANS_SELECTION_LOG_LEVEL"

func setupLogging(cmd *cobra.Command) {
	logLevel := slog.LevelInfo
	levelStr, _ := cmd.Flags().GetString("log-level")
	if levelStr == "" {
		levelStr = os.Getenv(logLevelEnv)
	}
	if levelStr != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(levelStr)); err == nil {
			logLevel = l
		}
	}

	w := cmd.ErrOrStderr()
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
			NoColor:    !isTTY(w),
		}),
	))
}

func isTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}
