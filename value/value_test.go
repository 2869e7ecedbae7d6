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

package value

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestEqual(t *testing.T) {
	testCases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"empty blob vs empty blob", EmptyBlob(), EmptyBlob(), true},
		{"empty list vs empty list", EmptyList(), EmptyList(), true},
		{"empty blob vs empty list", EmptyBlob(), EmptyList(), false},
		{"equal blobs", NewBlob([]byte{1, 2, 3}), NewBlob([]byte{1, 2, 3}), true},
		{"unequal blobs", NewBlob([]byte{1, 2, 3}), NewBlob([]byte{1, 2, 4}), false},
		{
			"equal lists",
			NewList([]Value{NewBlob([]byte{1}), NewBlob([]byte{2})}),
			NewList([]Value{NewBlob([]byte{1}), NewBlob([]byte{2})}),
			true,
		},
		{
			"lists differing in length",
			NewList([]Value{NewBlob([]byte{1})}),
			NewList([]Value{NewBlob([]byte{1}), NewBlob([]byte{2})}),
			false,
		},
		{"blob vs list never equal", NewBlob([]byte{}), NewList(nil), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestHashStableForEqualValues(t *testing.T) {
	a := NewList([]Value{NewBlob([]byte{1, 2}), NewBlob([]byte{3})})
	b := NewList([]Value{NewBlob([]byte{1, 2}), NewBlob([]byte{3})})
	if !Equal(a, b) {
		t.Fatalf("precondition failed: a and b should be equal")
	}
	if Hash(a) != Hash(b) {
		t.Errorf("Hash(a) = %d, Hash(b) = %d, want equal", Hash(a), Hash(b))
	}
}

func TestIntRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	cases := []int64{0, 1, -1, 127, -127, 255, 256, -256, 1 << 40, -(1 << 40)}
	for i := 0; i < 50; i++ {
		cases = append(cases, r.Int63()-r.Int63())
	}
	for _, n := range cases {
		b := BlobFromInt(big.NewInt(n))
		got, err := IntFromBlob(b)
		if err != nil {
			t.Fatalf("IntFromBlob(%d): %v", n, err)
		}
		if got.Cmp(big.NewInt(n)) != 0 {
			t.Errorf("round-trip(%d) = %s", n, got)
		}
	}
}

func TestIntFromBlobRejectsInvalid(t *testing.T) {
	if _, err := IntFromBlob(EmptyBlob()); err == nil {
		t.Error("expected error decoding empty blob as integer")
	}
	if _, err := IntFromBlob(NewBlob([]byte{0x01, 0x02})); err == nil {
		t.Error("expected error decoding blob with invalid sign byte")
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "héllo wörld", "🙂🙃", "a\x00b"} {
		l := ListFromString(s)
		got, err := StringFromList(l)
		if err != nil {
			t.Fatalf("StringFromList(%q): %v", s, err)
		}
		if got != s {
			t.Errorf("round-trip(%q) = %q", s, got)
		}
	}
}

func TestInterningIsOptionalAndDoesNotAffectEquality(t *testing.T) {
	fresh := BlobFromInt64(42)
	interned, ok := InternedInt(42)
	if !ok {
		t.Fatal("expected 42 to be interned")
	}
	if !Equal(fresh, interned) {
		t.Error("interned and freshly constructed values of the same integer must be equal")
	}
	if _, ok := InternedInt(1_000_000); ok {
		t.Error("expected large integer to not be interned")
	}
}
