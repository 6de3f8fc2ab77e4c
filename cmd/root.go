package cmd

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X github.com/mblarsen/trans-selection/cmd.Version=x.y.z".
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "trans-selection",
	Short: "Translate the selected text and put the translation on the clipboard.",
	Long: `trans-selection reads the primary selection (or, when nothing is
selected, the clipboard), translates it with translate-shell, shows the
translation as a desktop notification and copies it to the clipboard.

Bind it to a hotkey in your compositor, e.g. for sway:

  bindsym $mod+t exec trans-selection`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { setupLogging(cmd); return nil },
	RunE:              runPipeline,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
		fang.WithErrorHandler(handleError),
	)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default $XDG_CONFIG_HOME/trans-selection/config.toml).")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (env TRANS_SELECTION_LOG_LEVEL).")
}
