package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shsift/shsift/core/config"
)

// initCmd materializes the default configuration for customization.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the config directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		_, err := config.Initialize(afero.NewOsFs(), cfgPath, logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
