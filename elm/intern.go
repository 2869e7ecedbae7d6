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

import "math/big"

// Interning tables mirroring value.Intern*, but over the Elm domain's
// own Integer/Char/Str representations (§4.5). Lookup is optional and
// never required for correctness: a miss simply constructs a fresh
// value.
const (
	internIntLow  = -100
	internIntHigh = 299
)

var internedIntegers [internIntHigh - internIntLow + 1]*Integer

func init() {
	for i := range internedIntegers {
		internedIntegers[i] = &Integer{N: big.NewInt(int64(i + internIntLow))}
	}
}

// InternedInteger returns the frozen Integer for n if it falls in the
// popular small-integer range.
func InternedInteger(n int64) (*Integer, bool) {
	if n < internIntLow || n > internIntHigh {
		return nil, false
	}
	return internedIntegers[n-internIntLow], true
}

const internCharHigh = 4000

var internedChars [internCharHigh]*Char

func init() {
	for i := range internedChars {
		internedChars[i] = &Char{R: rune(i)}
	}
}

// InternedChar returns the frozen Char for code point r if r is in
// [0, 4000).
func InternedChar(r rune) (*Char, bool) {
	if r < 0 || int(r) >= internCharHigh {
		return nil, false
	}
	return internedChars[r], true
}

var popularStrings = []string{
	"", "Nothing", "Just", "Ok", "Err", "True", "False", "Unit",
}

var internedStrings map[string]*Str

func init() {
	internedStrings = make(map[string]*Str, len(popularStrings))
	for _, s := range popularStrings {
		internedStrings[s] = &Str{S: s}
	}
}

// InternedStr returns the frozen Str for s if s is in the
// popular-string table.
func InternedStr(s string) (*Str, bool) {
	v, ok := internedStrings[s]
	return v, ok
}
