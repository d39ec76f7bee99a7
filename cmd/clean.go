package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daonguyenios/SwiftFlagCleaner/cleaner"
	"github.com/daonguyenios/SwiftFlagCleaner/internal"
	tt "github.com/daonguyenios/SwiftFlagCleaner/internal/types"
)

var (
	flagName        string
	dryRun          bool
	verbose         bool
	ignorePaths     string
	cleanJsonOutput bool
	outPath         string
)

var cleanCmd = &cobra.Command{
	Use:   "clean [paths...]",
	Short: "Resolve the flag to permanently-true and rewrite the tree",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := cleaner.New(flagName, dryRun, logger, cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize clean engine", zap.Error(err))
		}

		if ignorePaths != "" {
			paths := strings.Split(ignorePaths, ",")
			for _, path := range paths {
				engine.IgnorePath(strings.TrimSpace(path))
			}
		}

		config, err := cleaner.ParseConfigurationFile(cfgFile)
		if err != nil {
			logger.Fatal("Failed to read configuration", zap.Error(err))
		}

		runCleanProcess(ctx, logger, engine, args, config.Extensions, cleanJsonOutput, outPath)
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&flagName, "flag", "f", "", "Feature flag to resolve to permanently-true")
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute outcomes without touching the filesystem")
	cleanCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also list unchanged files in the report")
	cleanCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
	cleanCmd.Flags().BoolVar(&cleanJsonOutput, "json", false, "Output results in JSON format")
	cleanCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func runCleanProcess(ctx context.Context, logger *zap.Logger, engine cleaner.CleanEngine, paths []string, extensions []string, isJson bool, jsonOutput string) {
	results, err := cleaner.ProcessFiles(ctx, logger, engine, paths, extensions)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	printResults(logger, results, isJson, jsonOutput)

	for _, r := range results {
		if r.Outcome == tt.OutcomeFailed {
			os.Exit(1)
		}
	}
}

func printResults(logger *zap.Logger, results []tt.FileResult, isJson bool, jsonOutput string) {
	if !isJson {
		fmt.Println(internal.FormatResults(results, verbose))
		return
	}

	d, err := json.Marshal(results)
	if err != nil {
		logger.Error("Error marshalling results to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	f, err := os.Create(jsonOutput)
	if err != nil {
		logger.Error("Error creating JSON output file", zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := f.Write(d); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
