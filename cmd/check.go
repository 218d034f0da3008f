package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shsift/shsift/core/audit"
	"github.com/shsift/shsift/core/report"
)

var (
	checkEngine   string
	checkFormat   string
	legacyEscapes bool
	noColor       bool
)

// Exit codes: 0 every script resolved, 1 unresolved commands found,
// 2 at least one script was rejected before scanning.
var checkCmd = &cobra.Command{
	Use:   "check SCRIPT [SCRIPT...]",
	Short: "Report unresolved commands in the given scripts.",
	Long: `Scans each script and reports every invoked command name that no
reference set resolves. Scripts are audited independently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		engine := audit.Engine(cfg.Engine)
		if cmd.Flags().Changed("engine") {
			engine = audit.Engine(checkEngine)
		}
		legacy := cfg.LegacyEscapes
		if cmd.Flags().Changed("legacy-escapes") {
			legacy = legacyEscapes
		}

		auditor := audit.New(afero.NewOsFs(), cfg, audit.Options{
			Engine:             engine,
			LegacyEscapeParity: legacy,
		}, logger)

		printer := report.NewPrinter(cmd.OutOrStdout(), cfg.Color && !noColor, verbose)

		var results []*audit.Result
		exit := 0
		for _, script := range args {
			res, err := auditor.Audit(script)
			if err != nil {
				printer.PrintError(err)
				exit = 2
				continue
			}
			results = append(results, res)
			if res.Status == audit.StatusUnresolved && exit == 0 {
				exit = 1
			}
		}

		if checkFormat == "json" {
			if err := report.WriteJSON(cmd.OutOrStdout(), results); err != nil {
				return err
			}
		} else {
			for _, res := range results {
				printer.Print(res)
			}
		}

		exitStatus = exit
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkEngine, "engine", "scanner", "extraction engine: scanner or ast")
	checkCmd.Flags().StringVar(&checkFormat, "format", "text", "output format: text or json")
	checkCmd.Flags().BoolVar(&legacyEscapes, "legacy-escapes", false, "use the historical quote-escape check")
	checkCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
