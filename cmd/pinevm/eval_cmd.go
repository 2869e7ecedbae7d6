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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pine-vm/pine/value"
)

func newEvalCmd() *cobra.Command {
	var exprPath, envPath string
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate an encoded Pine expression under an environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			exprValueData, err := os.ReadFile(exprPath)
			if err != nil {
				return fmt.Errorf("read --expr: %w", err)
			}
			exprValue, err := readValueJSON(exprValueData)
			if err != nil {
				return fmt.Errorf("--expr: %w", err)
			}

			var env value.Value = value.EmptyList()
			if envPath != "" {
				envData, err := os.ReadFile(envPath)
				if err != nil {
					return fmt.Errorf("read --env: %w", err)
				}
				env, err = readValueJSON(envData)
				if err != nil {
					return fmt.Errorf("--env: %w", err)
				}
			}

			vm := newVM()
			expr, err := vm.DecodeExpression(exprValue)
			if err != nil {
				return fmt.Errorf("decode expression: %w", err)
			}
			result, err := vm.Evaluate(context.Background(), expr, env)
			if err != nil {
				return fmt.Errorf("evaluate: %w", err)
			}

			out, err := writeValueJSON(result)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if elmValue, err := vm.ElmFromPine(result); err == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "# "+vm.ElmValueToExpressionString(elmValue))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&exprPath, "expr", "", "path to a JSON-encoded Pine value holding the encoded expression (required)")
	cmd.Flags().StringVar(&envPath, "env", "", "path to a JSON-encoded Pine value to use as the environment (default: empty list)")
	cmd.MarkFlagRequired("expr")
	return cmd
}
