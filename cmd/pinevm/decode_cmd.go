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

func newDecodeCmd() *cobra.Command {
	var valuePath string
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a JSON-encoded Pine value as an expression and print its Elm form",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(valuePath)
			if err != nil {
				return fmt.Errorf("read --value: %w", err)
			}
			v, err := readValueJSON(data)
			if err != nil {
				return fmt.Errorf("--value: %w", err)
			}

			vm := newVM()
			expr, err := vm.DecodeExpression(v)
			if err != nil {
				return fmt.Errorf("decode expression: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%#v\n", expr)

			if elmValue, elmErr := vm.ElmFromPine(v); elmErr == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "# "+vm.ElmValueToExpressionString(elmValue))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&valuePath, "value", "", "path to a JSON-encoded Pine value holding the encoded expression (required)")
	cmd.MarkFlagRequired("value")
	return cmd
}
