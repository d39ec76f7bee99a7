package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "swiftflagcleaner [paths...]",
	Short:            "swiftflagcleaner - permanently enable a feature flag and strip its #if scaffolding",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'swiftflagcleaner' is entered
			_ = cmd.Help()
			return
		}
		// Format: swiftflagcleaner [path1 path2 ...] => behaves like the clean subcommand
		cleanCmd.Run(cleanCmd, args)
	},
}

func Execute() error {
	logger, _ = zap.NewProduction()
	defer logger.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Timeout for the whole run")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(watchCmd)
}
