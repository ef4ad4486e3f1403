// Copyright 2026 go-typesort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command sortbench exercises the typesort engine from the command line.
//
// Usage:
//
//	sortbench run --family float64 --algo quicksort --count 1000000
//	sortbench run --family bytes --width 16 --algo mergesort --indirect
//	sortbench families
//
// The run subcommand generates reproducible random data, times the
// requested configuration, and verifies the result. The families
// subcommand lists every installed (family, algorithm) pair of the
// default registry.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var verbose bool

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		// Logging is the tool's output channel; nothing sensible to do.
		panic(err)
	}
	return logger
}

func main() {
	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "Benchmark and exercise the typesort engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newRunCmd(), newFamiliesCmd())

	if err := root.Execute(); err != nil {
		newLogger().Error("sortbench failed", zap.Error(err))
		os.Exit(1)
	}
}
