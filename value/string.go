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

	pineerrors "github.com/pine-vm/pine/errors"
)

// ListFromString encodes a string as a List whose every element is a
// Blob encoding one Unicode code point as a non-negative signed
// integer, in §4.1's integer encoding. Popular strings (§4.5 point 5)
// return the shared interned List instead of a fresh one.
func ListFromString(s string) *List {
	if l, ok := InternedString(s); ok {
		return l
	}
	elems := make([]Value, 0, len(s))
	for _, r := range s {
		elems = append(elems, BlobFromInt64(int64(r)))
	}
	return NewList(elems)
}

// StringFromList decodes l as a string. It fails if any element is not
// a Blob encoding a non-negative integer in the valid Unicode
// code-point range.
func StringFromList(l *List) (string, error) {
	runes := make([]rune, 0, len(l.elems))
	for i, e := range l.elems {
		b, ok := e.(*Blob)
		if !ok {
			return "", pineerrors.Newf(pineerrors.Decode, "string element %d is a %s, not a blob", i, e.Kind())
		}
		n, err := IntFromBlob(b)
		if err != nil {
			return "", pineerrors.Wrapf(err, "string element %d", i)
		}
		if n.Sign() < 0 || n.Cmp(big.NewInt(0x10FFFF)) > 0 {
			return "", pineerrors.Newf(pineerrors.Decode, "string element %d: %s is not a valid code point", i, n)
		}
		runes = append(runes, rune(n.Int64()))
	}
	return string(runes), nil
}
