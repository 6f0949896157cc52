package cli

import (
	"fmt"

	"github.com/mgpai22/subsplit/internal/config"
	"github.com/mgpai22/subsplit/internal/logging"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the subsplit configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration file",
	Long: `Write a commented sample configuration to the --config path, or to
subsplit/config.toml in the user config directory when no path is given.`,
	Args: cobra.NoArgs,
	// the target file may not exist yet, so skip loading it
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)
		return nil
	},
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.ExpandPath(configFlag)
	if err != nil {
		return err
	}
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	force, _ := cmd.Flags().GetBool("force")
	if err := config.CreateSample(path, force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample config: %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out, err := cfg.Marshal()
	if err != nil {
		return err
	}

	source := configPath
	if !configSeen {
		source = "built-in defaults"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, out)
	return nil
}
