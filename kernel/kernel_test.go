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

package kernel

import (
	"testing"

	"github.com/pine-vm/pine/syntax"
	"github.com/pine-vm/pine/value"
)

func ints(ns ...int64) *value.List {
	elems := make([]value.Value, len(ns))
	for i, n := range ns {
		elems[i] = value.BlobFromInt64(n)
	}
	return value.NewList(elems)
}

func TestAddInt(t *testing.T) {
	got, err := addInt(ints(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, value.BlobFromInt64(5)) {
		t.Errorf("add_int(2, 3) = %v, want 5", got)
	}
}

func TestDivIntByZero(t *testing.T) {
	_, err := divInt(ints(10, 0))
	if err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestSkipTakeClampToBounds(t *testing.T) {
	coll := ints(1, 2, 3)
	got, err := skip(value.NewList([]value.Value{value.BlobFromInt64(100), coll}))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, value.EmptyList()) {
		t.Errorf("skip(100, [1,2,3]) = %v, want []", got)
	}

	got, err = take(value.NewList([]value.Value{value.BlobFromInt64(-5), coll}))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, value.EmptyList()) {
		t.Errorf("take(-5, [1,2,3]) = %v, want []", got)
	}
}

func TestReverseBlobAndList(t *testing.T) {
	got, err := reverse(value.NewBlob([]byte{1, 2, 3}))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, value.NewBlob([]byte{3, 2, 1})) {
		t.Errorf("reverse(blob) = %v", got)
	}
}

func TestConcatMixedKindTakesElementKind(t *testing.T) {
	mixed := value.NewList([]value.Value{
		value.NewBlob([]byte{1}),
		value.NewList([]value.Value{value.BlobFromInt64(9)}),
	})
	got, err := concat(mixed)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, value.NewList([]value.Value{value.BlobFromInt64(9)})) {
		t.Errorf("concat(mixed) = %v, want list [9]", got)
	}
}

func TestIsSortedAscendingInt(t *testing.T) {
	sorted, err := isSortedAscendingInt(ints(1, 2, 2, 5))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(sorted, syntax.TrueValue) {
		t.Errorf("expected [1,2,2,5] to be sorted")
	}

	unsorted, err := isSortedAscendingInt(ints(3, 1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(unsorted, syntax.FalseValue) {
		t.Errorf("expected [3,1,2] to not be sorted")
	}
}

func TestEqualKernel(t *testing.T) {
	got, err := equalFn(ints(4, 4, 4))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, syntax.TrueValue) {
		t.Errorf("expected [4,4,4] to be pairwise equal")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("does_not_exist"); err == nil {
		t.Error("expected error looking up unknown kernel function")
	}
}
