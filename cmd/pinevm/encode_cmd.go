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
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var exprPath string
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a JSON-described expression into its Pine value representation",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(exprPath)
			if err != nil {
				return fmt.Errorf("read --expr: %w", err)
			}
			expr, err := readExprJSON(data)
			if err != nil {
				return fmt.Errorf("--expr: %w", err)
			}

			vm := newVM()
			encoded, err := vm.EncodeExpression(expr)
			if err != nil {
				return fmt.Errorf("encode expression: %w", err)
			}

			out, err := writeValueJSON(encoded)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&exprPath, "expr", "", "path to a JSON-described expression (required)")
	cmd.MarkFlagRequired("expr")
	return cmd
}
