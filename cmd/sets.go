package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setsShowNames bool

// setsCmd shows the configured reference sets.
var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the configured reference sets.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		for _, set := range cfg.ReferenceSets() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d names)\n", set.Name(), set.Len())
			if setsShowNames {
				for _, name := range set.Names() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setsCmd)

	setsCmd.Flags().BoolVar(&setsShowNames, "names", false, "list every name in each set")
}
