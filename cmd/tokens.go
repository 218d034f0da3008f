package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shsift/shsift/core/scan"
)

var tokensNormalize bool

// tokensCmd dumps the raw scanner output for debugging the heuristics.
var tokensCmd = &cobra.Command{
	Use:   "tokens SCRIPT",
	Short: "Dump the candidate command tokens found in a script.",
	Long: `Prints every word the lexical scanner captures in command position, in
source order, before any classification. Useful when a report looks wrong
and you want to see what the scanner actually extracted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		data, err := afero.ReadFile(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}

		tokens := scan.ScanWithOptions(string(data), scan.Options{
			LegacyEscapeParity: legacyEscapes,
		})
		if tokensNormalize {
			tokens = scan.Normalize(tokens)
		}
		for _, t := range tokens {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", t.Line, t.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVar(&tokensNormalize, "normalize", false, "sort and deduplicate the tokens")
	tokensCmd.Flags().BoolVar(&legacyEscapes, "legacy-escapes", false, "use the historical quote-escape check")
}
