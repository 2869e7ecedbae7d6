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

package syntax

import (
	"testing"

	"github.com/pine-vm/pine/value"
)

func TestRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		expr Expr
	}{
		{"literal", &Literal{Value: value.BlobFromInt64(5)}},
		{
			"list",
			&List{Elements: []Expr{
				&Literal{Value: value.BlobFromInt64(1)},
				&Literal{Value: value.BlobFromInt64(2)},
			}},
		},
		{"environment", &Environment{}},
		{
			"conditional",
			&Conditional{
				Condition: &Literal{Value: TrueValue},
				IfTrue:    &Literal{Value: value.BlobFromInt64(1)},
				IfFalse:   &Literal{Value: value.BlobFromInt64(2)},
			},
		},
		{
			"kernel application",
			&KernelApplication{
				Function: "add_int",
				Argument: &Environment{},
			},
		},
		{
			"decode and evaluate",
			&DecodeAndEvaluate{
				Expression:  &Literal{Value: value.EmptyList()},
				Environment: &Environment{},
			},
		},
		{
			"string tag",
			&StringTag{Tag: "note", Tagged: &Literal{Value: value.BlobFromInt64(7)}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := Encode(tc.expr)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			decoded, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !Equal(tc.expr, decoded) {
				t.Errorf("round-trip mismatch: got %#v, want %#v", decoded, tc.expr)
			}
		})
	}
}

func TestDecodeRejectsUnknownTag(t *testing.T) {
	v := value.NewList([]value.Value{value.ListFromString("NotAThing"), value.EmptyList()})
	if _, err := Decode(v); err == nil {
		t.Error("expected error decoding unknown tag")
	}
}

func TestDelegatingNotEncodable(t *testing.T) {
	d := &Delegating{Name: "native-shortcut"}
	if _, err := Encode(d); err == nil {
		t.Error("expected error encoding a Delegating expression")
	}
}
