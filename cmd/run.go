package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mblarsen/trans-selection/internal/clipboard"
	"github.com/mblarsen/trans-selection/internal/config"
	"github.com/mblarsen/trans-selection/internal/notify"
	"github.com/mblarsen/trans-selection/internal/pipeline"
	"github.com/mblarsen/trans-selection/internal/runner"
	"github.com/mblarsen/trans-selection/internal/translator"
	"github.com/mblarsen/trans-selection/internal/xdgpath"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Translate the current selection (same as running without a command).",
	Args:  cobra.NoArgs,
	RunE:  runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		notifySetupError(ctx, err)
		return err
	}
	driver, err := newDriver(settings)
	if err != nil {
		notifySetupError(ctx, err)
		return err
	}

	res := driver.Run(ctx)
	slog.Debug("pipeline finished", "state", res.State)
	switch res.State {
	case pipeline.Failed:
		return fmt.Errorf("%w: %v", ErrFailed, res.Err)
	case pipeline.Done:
		fmt.Fprintln(cmd.OutOrStdout(), res.Translation)
	}
	return nil
}

func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.Load(path)
	}
	path, err := xdgpath.ConfigPath("config.toml")
	if err != nil {
		return config.Settings{}, err
	}
	return config.LoadOrDefault(path)
}

func newDriver(settings config.Settings) (*pipeline.Driver, error) {
	r := runner.New()

	backend, err := clipboard.Resolve(settings.Clipboard.Backend, r.Available)
	if err != nil {
		return nil, err
	}
	slog.Debug("using clipboard backend", "backend", backend)

	notifier, err := notify.New(settings.Notification.Backend, r)
	if err != nil {
		return nil, err
	}

	tr := translator.New(r, settings.Translator.Command, settings.Translator.Package, settings.Translator.Brief)
	tr.Target = settings.Translator.Target
	tr.Extra = settings.Translator.Extra

	return pipeline.NewDriver(settings, r, clipboard.New(backend, r), tr, notifier), nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
