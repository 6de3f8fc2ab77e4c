package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mblarsen/trans-selection/internal/clipboard"
	"github.com/mblarsen/trans-selection/internal/notify"
	"github.com/mblarsen/trans-selection/internal/runner"
)

type requiredTool struct {
	Role string
	Name string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the external tools are installed.",
	Long: `Check that the translator, the clipboard tools and the notifier configured
for this session can be found on $PATH.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		backend, err := clipboard.Resolve(settings.Clipboard.Backend, runner.Available)
		if err != nil {
			return err
		}

		tools := []requiredTool{
			{Role: "translator", Name: settings.Translator.Command},
			{Role: "clipboard reader", Name: backend.Reader()},
			{Role: "clipboard writer", Name: backend.Writer()},
		}
		if exe := notify.Backend(settings.Notification.Backend).Executable(); exe != "" {
			tools = append(tools, requiredTool{Role: "notifier", Name: exe})
		}

		out := cmd.OutOrStdout()
		missing := 0
		for _, t := range tools {
			path, err := runner.LookPath(t.Name)
			if err != nil {
				missing++
				fmt.Fprintf(out, "✗ %-16s %s (not found)\n", t.Role, t.Name)
				continue
			}
			fmt.Fprintf(out, "✓ %-16s %s\n", t.Role, path)
		}

		if missing > 0 {
			return fmt.Errorf("%d required tool(s) missing; the translator is provided by '%s'", missing, settings.Translator.Package)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
