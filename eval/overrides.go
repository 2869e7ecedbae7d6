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

package eval

import (
	"github.com/pine-vm/pine/syntax"
	"github.com/pine-vm/pine/value"
)

// decodeOverrideEntry pairs a specific encoded-function value with the
// Delegating expression a host wants DecodeAndEvaluate to use instead
// of decoding and interpreting it (§4.3, §9).
type decodeOverrideEntry struct {
	value value.Value
	expr  *syntax.Delegating
}

// decodeOverrideTable is immutable after VM construction (§3).
type decodeOverrideTable struct {
	byHash map[uint64][]decodeOverrideEntry
}

// newDecodeOverrideTable builds a lookup table from a host-supplied
// map of encoded function values to their native shortcut.
func newDecodeOverrideTable(overrides map[value.Value]*syntax.Delegating) *decodeOverrideTable {
	t := &decodeOverrideTable{byHash: make(map[uint64][]decodeOverrideEntry, len(overrides))}
	for v, expr := range overrides {
		h := value.Hash(v)
		t.byHash[h] = append(t.byHash[h], decodeOverrideEntry{value: v, expr: expr})
	}
	return t
}

func (t *decodeOverrideTable) lookup(v value.Value) (*syntax.Delegating, bool) {
	if t == nil {
		return nil, false
	}
	for _, e := range t.byHash[value.Hash(v)] {
		if value.Equal(e.value, v) {
			return e.expr, true
		}
	}
	return nil, false
}
