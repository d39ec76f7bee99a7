// Package cleaner is the public entry point: configuration, engine
// construction, and batch processing of files and directory trees.
package cleaner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/daonguyenios/SwiftFlagCleaner/internal"
	"github.com/daonguyenios/SwiftFlagCleaner/internal/types"
	"github.com/daonguyenios/SwiftFlagCleaner/scanner"
)

// CleanEngine is what the batch helpers need from an engine.
type CleanEngine interface {
	Run(path string) types.FileResult
	Flag() string
	IgnorePath(path string)
}

// Config mirrors the .swiftflagcleaner.yaml file.
type Config struct {
	Name string `yaml:"name"`
	// Flag is the default target flag when the command line gives none.
	Flag        string   `yaml:"flag"`
	Extensions  []string `yaml:"extensions,omitempty"`
	IgnorePaths []string `yaml:"ignore-paths,omitempty"`
}

// DefaultExtensions are the dialects processed when the config lists none.
var DefaultExtensions = []string{".swift", ".h", ".m", ".mm"}

// New builds an engine for the given flag, applying config ignore paths.
func New(flag string, dryRun bool, logger *zap.Logger, configurationPath string) (*internal.Engine, error) {
	config, err := ParseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}

	if flag == "" {
		flag = config.Flag
	}
	engine, err := internal.NewEngine(flag, dryRun, logger)
	if err != nil {
		return nil, err
	}
	for _, p := range config.IgnorePaths {
		engine.IgnorePath(p)
	}
	return engine, nil
}

// ProcessFiles runs the pipeline over several paths and merges results.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine CleanEngine,
	paths []string,
	extensions []string,
) ([]types.FileResult, error) {
	var all []types.FileResult
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, engine, path, extensions)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, results...)
	}
	return all, nil
}

// ProcessPath runs the pipeline over a file or directory tree. Directories
// are scanned for candidate files, pre-filtered by textual containment of
// the flag name, and processed on NumCPU workers. Results flow back over a
// buffered channel and are collected after every dispatched file reports.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine CleanEngine,
	path string,
	extensions []string,
) ([]types.FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		return []types.FileResult{engine.Run(path)}, nil
	}

	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	candidates, err := scanner.New(path, extensions...).ScanContaining(engine.Flag())
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}

	resultChan := make(chan types.FileResult, len(candidates))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(candidates),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	dispatched := 0
	for _, candidate := range candidates {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			dispatched++
			go func(fp string) {
				defer func() { <-sem }()
				resultChan <- engine.Run(fp)
				bar.Add(1)
			}(candidate.Path)
		}
	}

	results := make([]types.FileResult, 0, dispatched)
	for i := 0; i < dispatched; i++ {
		results = append(results, <-resultChan)
	}

	fmt.Println()
	return results, nil
}

// ParseConfigurationFile loads a yaml config; a missing path yields the
// zero config.
func ParseConfigurationFile(configurationPath string) (Config, error) {
	var config Config
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing %s: %w", filepath.Base(configurationPath), err)
	}
	return config, nil
}
