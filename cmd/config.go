package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mblarsen/trans-selection/internal/config"
	"github.com/mblarsen/trans-selection/internal/fileutil"
	"github.com/mblarsen/trans-selection/internal/xdgpath"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file.",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file.",
	Long: `Write the default configuration to the path given by --config, or to
$XDG_CONFIG_HOME/trans-selection/config.toml. An existing file is left alone
unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Encode(config.Default())
		if err != nil {
			return err
		}
		if print, _ := cmd.Flags().GetBool("print"); print {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}

		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			if path, err = xdgpath.ConfigPath("config.toml"); err != nil {
				return err
			}
		}
		force, _ := cmd.Flags().GetBool("force")
		if err := fileutil.AtomicWriteFile(path, data, 0644, force); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the default configuration file path.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := xdgpath.ConfigPath("config.toml")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("print", false, "Print the default configuration to stdout instead of writing it.")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing configuration file.")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
