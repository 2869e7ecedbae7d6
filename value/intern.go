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

import "math/big"

// Interning tables for popular Pine values, built once at package
// init and read-only thereafter. Lookup is optional: a miss always
// falls back to freshly constructing the value, so correctness never
// depends on interning (§9).

const (
	internIntLow  = -100
	internIntHigh = 299 // inclusive
)

var internedInts [internIntHigh - internIntLow + 1]*Blob

// internedBlobHashes and internedListHashes let Hash look up a
// precomputed hash for an interned value by pointer, rather than
// rehashing its bytes on every call.
var internedBlobHashes = make(map[*Blob]uint64)
var internedListHashes = make(map[*List]uint64)

func init() {
	for i := range internedInts {
		b := blobFromIntRaw(big.NewInt(int64(i + internIntLow)))
		internedInts[i] = b
		internedBlobHashes[b] = computeHash(b)
	}
}

// InternedInt returns the frozen Blob for n if n falls in the popular
// small-integer range, and (nil, false) otherwise.
func InternedInt(n int64) (*Blob, bool) {
	if n < internIntLow || n > internIntHigh {
		return nil, false
	}
	return internedInts[n-internIntLow], true
}

const internCodepointHigh = 4000 // exclusive

var internedCodepoints [internCodepointHigh]*Blob

func init() {
	for i := range internedCodepoints {
		b := blobFromIntRaw(big.NewInt(int64(i)))
		internedCodepoints[i] = b
		internedBlobHashes[b] = computeHash(b)
	}
}

// InternedCodepoint returns the frozen Blob encoding code point cp if
// cp is in [0, 4000), and (nil, false) otherwise.
func InternedCodepoint(cp rune) (*Blob, bool) {
	if cp < 0 || int(cp) >= internCodepointHigh {
		return nil, false
	}
	return internedCodepoints[cp], true
}

// popularStrings lists the strings frequent enough in practice (short
// keywords, common field names) to warrant a frozen List in the pool.
var popularStrings = []string{
	"", "List", "Literal", "Blob", "true", "false",
	"Nothing", "Just", "Ok", "Err",
}

var internedStrings map[string]*List

func init() {
	internedStrings = make(map[string]*List, len(popularStrings))
	for _, s := range popularStrings {
		l := ListFromString(s)
		internedStrings[s] = l
		internedListHashes[l] = computeHash(l)
	}
}

// InternedString returns the frozen List encoding of s if s is in the
// popular-string table, and (nil, false) otherwise.
func InternedString(s string) (*List, bool) {
	l, ok := internedStrings[s]
	return l, ok
}
