package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/capfs/pkg/capfs"
	"github.com/arthur-debert/capfs/pkg/capfs/virtual"
)

var (
	rootPath string
	logLevel string
	logger   zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "capfs",
	Short: "Browse and edit files through a capped filesystem view",
	Long: `capfs confines filesystem access to a bounded subtree (the "cap") and
exposes cap-relative virtual paths, so relative paths supplied on the
command line can never escape the designated root.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := capfs.LogLevelFromString(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logger = capfs.NewLogger(os.Stderr, level)
		capfs.SetLogger(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootPath, "root", "", "cap root (default is the working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newLsCommand())
	rootCmd.AddCommand(newFindCommand())
	rootCmd.AddCommand(newStatCommand())
	rootCmd.AddCommand(newCatCommand())
	rootCmd.AddCommand(newWriteCommand())
	rootCmd.AddCommand(newMkdirCommand())
}

// capView constructs the confined view all subcommands operate through.
func capView() *virtual.Directory {
	if rootPath == "" {
		return capfs.New()
	}
	return capfs.NewAt(rootPath)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number of capfs`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("capfs version %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
