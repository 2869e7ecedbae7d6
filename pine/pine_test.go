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

package pine

import (
	"context"
	"testing"

	"github.com/pine-vm/pine/syntax"
	"github.com/pine-vm/pine/value"
)

func TestVMEvaluateAndPrettyPrint(t *testing.T) {
	vm := New()
	expr := &syntax.KernelApplication{
		Function: "add_int",
		Argument: &syntax.List{Elements: []syntax.Expr{
			&syntax.Literal{Value: value.BlobFromInt64(40)},
			&syntax.Literal{Value: value.BlobFromInt64(2)},
		}},
	}
	result, err := vm.Evaluate(context.Background(), expr, value.EmptyList())
	if err != nil {
		t.Fatal(err)
	}
	elmValue, err := vm.ElmFromPine(result)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := vm.ElmValueToExpressionString(elmValue), "42"; got != want {
		t.Errorf("ElmValueToExpressionString(42) = %q, want %q", got, want)
	}
}

func TestVMEncodeDecodeExpressionRoundTrip(t *testing.T) {
	vm := New()
	expr := &syntax.Conditional{
		Condition: &syntax.Literal{Value: syntax.TrueValue},
		IfTrue:    &syntax.Literal{Value: value.BlobFromInt64(1)},
		IfFalse:   &syntax.Literal{Value: value.BlobFromInt64(2)},
	}
	encoded, err := vm.EncodeExpression(expr)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := vm.DecodeExpression(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if !syntax.Equal(expr, decoded) {
		t.Errorf("round-trip mismatch")
	}
}
