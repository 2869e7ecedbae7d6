// Copyright 2026 Pine Authors
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

// Command pinevm is a small operational driver for the Pine VM: it
// exercises evaluation, expression encode/decode, and the Elm
// pretty-printer from the shell. It is not a reimplementation of the
// source-language compiler CLI, which is out of scope (§1).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pine-vm/pine/internal/pinedebug"
	"github.com/pine-vm/pine/pine"
)

var (
	flagLogJSON  bool
	flagLogDebug bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pinevm",
		Short: "Drive the Pine virtual machine from the shell",
	}
	root.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "emit logs as JSON instead of text")
	root.PersistentFlags().BoolVar(&flagLogDebug, "debug", false, "log at debug level (cache hits/misses, overrides)")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newStatsCmd())
	return root
}

func newVM() *pine.VM {
	level := slog.LevelInfo
	if flagLogDebug {
		level = slog.LevelDebug
	}
	logger := pinedebug.NewLogger(flagLogJSON, level)
	return pine.New(pine.WithLogger(logger))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
