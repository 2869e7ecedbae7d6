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

package elm

import (
	"math/big"
	"testing"

	"github.com/pine-vm/pine/value"
)

// TestRecordRoundTrip is end-to-end scenario 5 of §8.
func TestRecordRoundTrip(t *testing.T) {
	rec := NewRecord([]RecordField{
		{Name: "x", Value: NewInteger(big.NewInt(1))},
		{Name: "y", Value: NewInteger(big.NewInt(2))},
	})
	pv, err := ToPine(rec)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromPine(pv)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := back.(*Record)
	if !ok {
		t.Fatalf("decoded value is a %T, want *Record", back)
	}
	if len(got.Fields) != 2 || got.Fields[0].Name != "x" || got.Fields[1].Name != "y" {
		t.Errorf("got fields %+v, want [x y] in order", got.Fields)
	}
}

func TestRecordOutOfOrderFieldsIsDecodeError(t *testing.T) {
	// A list shaped like record fields ("y" before "x") must hard-fail,
	// not silently decode as a plain list.
	pv := value.NewList([]value.Value{
		value.NewList([]value.Value{value.ListFromString("y"), value.BlobFromInt64(2)}),
		value.NewList([]value.Value{value.ListFromString("x"), value.BlobFromInt64(1)}),
	})
	if _, err := FromPine(pv); err == nil {
		t.Error("expected a decode error for out-of-order record fields")
	}
}

// TestDictPrettyPrint is end-to-end scenario 6 of §8.
func TestDictPrettyPrint(t *testing.T) {
	empty := func(name string) *Tag { return NewTag(name, nil) }
	node := NewTag("RBNode_elm_builtin", []Value{
		NewTag("Red", nil),
		&Str{S: "a"},
		NewInteger(big.NewInt(1)),
		empty("RBEmpty_elm_builtin"),
		empty("RBEmpty_elm_builtin"),
	})
	got := Sprint(node)
	want := `Dict.fromList [("a",1)]`
	if got != want {
		t.Errorf("Sprint(dict) = %q, want %q", got, want)
	}
}

func TestSetPrettyPrint(t *testing.T) {
	dict := NewTag("RBNode_elm_builtin", []Value{
		NewTag("Red", nil),
		NewInteger(big.NewInt(3)),
		NewTag("Unit", nil),
		NewTag("RBEmpty_elm_builtin", nil),
		NewTag("RBEmpty_elm_builtin", nil),
	})
	set := NewTag("Set_elm_builtin", []Value{dict})
	got := Sprint(set)
	want := "Set.fromList [3]"
	if got != want {
		t.Errorf("Sprint(set) = %q, want %q", got, want)
	}
}

func TestEmptyDictAndSet(t *testing.T) {
	if got := Sprint(NewTag("RBEmpty_elm_builtin", nil)); got != "Dict.empty" {
		t.Errorf("Sprint(empty dict) = %q, want Dict.empty", got)
	}
	emptySet := NewTag("Set_elm_builtin", []Value{NewTag("RBEmpty_elm_builtin", nil)})
	if got := Sprint(emptySet); got != "Set.empty" {
		t.Errorf("Sprint(empty set) = %q, want Set.empty", got)
	}
}

func TestTupleHeuristic(t *testing.T) {
	// Pairwise-different types -> tuple form.
	mixed := NewList([]Value{NewInteger(big.NewInt(1)), &Str{S: "a"}})
	if got, want := Sprint(mixed), `(1, "a")`; got != want {
		t.Errorf("Sprint(mixed pair) = %q, want %q", got, want)
	}

	// Same scalar type throughout -> list form.
	sameType := NewList([]Value{NewInteger(big.NewInt(1)), NewInteger(big.NewInt(2))})
	if got, want := Sprint(sameType), "[1, 2]"; got != want {
		t.Errorf("Sprint(same-type pair) = %q, want %q", got, want)
	}

	// Unknown-vs-unknown (two lists) never proven unequal -> list form.
	twoLists := NewList([]Value{
		NewList([]Value{NewInteger(big.NewInt(1))}),
		NewList([]Value{NewInteger(big.NewInt(2)), NewInteger(big.NewInt(3))}),
	})
	if got := Sprint(twoLists); got != "[[1], [2, 3]]" {
		t.Errorf("Sprint(two lists) = %q, want list form", got)
	}

	// Four elements never applies the heuristic, even if pairwise different.
	four := NewList([]Value{
		NewInteger(big.NewInt(1)), &Str{S: "a"}, NewInteger(big.NewInt(2)), &Str{S: "b"},
	})
	if got, want := Sprint(four), `[1, "a", 2, "b"]`; got != want {
		t.Errorf("Sprint(four mixed) = %q, want %q", got, want)
	}
}

func TestPineAsElmRoundTrip(t *testing.T) {
	original := value.NewList([]value.Value{
		value.NewBlob([]byte{1, 2, 3}),
		value.NewList([]value.Value{value.NewBlob(nil)}),
	})
	encoded := EncodePineAsElm(original)
	decoded, err := DecodeElmAsPine(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(original, decoded) {
		t.Errorf("round-trip mismatch: got %v, want %v", decoded, original)
	}
}

func TestFromPineDefaultsCodePointListToListNotString(t *testing.T) {
	pv := value.ListFromString("hi")
	got, err := FromPine(pv)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(*List); !ok {
		t.Errorf("FromPine default should yield *List for a code-point list, got %T", got)
	}

	gotStr, err := FromPineAsString(pv)
	if err != nil {
		t.Fatal(err)
	}
	s, ok := gotStr.(*Str)
	if !ok || s.S != "hi" {
		t.Errorf("FromPineAsString(%q) = %#v, want Str{hi}", "hi", gotStr)
	}
}
