package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shsift/shsift/core/config"
)

var (
	cfgPath string
	verbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
)

// loadConfig reads the configuration, falling back to the built-in
// defaults when no file exists at the config path.
func loadConfig() (*config.Configuration, error) {
	return config.Load(afero.NewOsFs(), cfgPath)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shsift",
	Short: "Sift shell scripts for unresolved external commands",
	Long: `shsift scans shell scripts and reports which invoked commands are not
covered by locally declared names, shell reserved words, or the configured
utility lists.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

// exitStatus is set by subcommands that finish without a hard error but
// still need a nonzero process exit code. Applied once, here, so deferred
// cleanup inside RunE always runs.
var exitStatus int

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
	if exitStatus != 0 {
		os.Exit(exitStatus)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
