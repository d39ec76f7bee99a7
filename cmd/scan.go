package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daonguyenios/SwiftFlagCleaner/cleaner"
	"github.com/daonguyenios/SwiftFlagCleaner/scanner"
)

var scanFlagName string

// scanCmd lists the files the clean subcommand would consider, without
// rewriting anything.
var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "List candidate files that mention the flag",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		flag := scanFlagName
		if flag == "" {
			config, err := cleaner.ParseConfigurationFile(cfgFile)
			if err != nil {
				logger.Fatal("Failed to read configuration", zap.Error(err))
			}
			flag = config.Flag
		}
		if flag == "" {
			fmt.Println("error: Please provide a flag name with --flag")
			os.Exit(1)
		}

		var paths []string
		for _, root := range args {
			files, err := scanner.New(root, cleaner.DefaultExtensions...).ScanContaining(flag)
			if err != nil {
				logger.Error("Error scanning path", zap.String("path", root), zap.Error(err))
				continue
			}
			for _, f := range files {
				paths = append(paths, f.Path)
			}
		}

		sort.Strings(paths)
		for _, p := range paths {
			fmt.Println(p)
		}
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanFlagName, "flag", "f", "", "Feature flag to search for")
}
