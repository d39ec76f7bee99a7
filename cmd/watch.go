package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daonguyenios/SwiftFlagCleaner/cleaner"
	"github.com/daonguyenios/SwiftFlagCleaner/internal"
	tt "github.com/daonguyenios/SwiftFlagCleaner/internal/types"
)

var watchFlagName string

// watchCmd keeps the cleaner running and resolves the flag in files as
// they change, until interrupted.
var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Watch directories and clean files as they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide directory paths")
			os.Exit(1)
		}

		engine, err := cleaner.New(watchFlagName, false, logger, cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize clean engine", zap.Error(err))
		}

		results, err := engine.StartWatching(args)
		if err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer engine.StopWatching()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		for {
			select {
			case r, ok := <-results:
				if !ok {
					return
				}
				if r.Outcome != tt.OutcomeUnchanged {
					fmt.Print(internal.FormatResults([]tt.FileResult{r}, false))
				}
			case <-stop:
				return
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchFlagName, "flag", "f", "", "Feature flag to resolve on change")
}
