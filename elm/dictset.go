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

import "strings"

// dictEntry is one (key, value) pair recovered from a
// RBNode_elm_builtin / RBEmpty_elm_builtin tree (§4.5).
type dictEntry struct {
	key, value Value
}

// asDictTag walks t as a persistent red-black tree rooted at an
// RBNode_elm_builtin/RBEmpty_elm_builtin Tag and returns its entries in
// ascending key order via an in-order traversal, or ok=false if t does
// not have that shape.
func asDictTag(t *Tag) (entries []dictEntry, ok bool) {
	switch t.Name {
	case "RBEmpty_elm_builtin":
		if len(t.Args) != 0 {
			return nil, false
		}
		return nil, true
	case "RBNode_elm_builtin":
		if len(t.Args) != 5 {
			return nil, false
		}
		// Args: color, key, value, left, right.
		key, value := t.Args[1], t.Args[2]
		left, ok := t.Args[3].(*Tag)
		if !ok {
			return nil, false
		}
		right, ok := t.Args[4].(*Tag)
		if !ok {
			return nil, false
		}
		leftEntries, ok := asDictTag(left)
		if !ok {
			return nil, false
		}
		rightEntries, ok := asDictTag(right)
		if !ok {
			return nil, false
		}
		out := make([]dictEntry, 0, len(leftEntries)+1+len(rightEntries))
		out = append(out, leftEntries...)
		out = append(out, dictEntry{key: key, value: value})
		out = append(out, rightEntries...)
		return out, true
	default:
		return nil, false
	}
}

// asSetTag recognizes Set_elm_builtin, which wraps a single dict
// argument whose values carry no information.
func asSetTag(t *Tag) (keys []Value, ok bool) {
	if t.Name != "Set_elm_builtin" || len(t.Args) != 1 {
		return nil, false
	}
	inner, ok := t.Args[0].(*Tag)
	if !ok {
		return nil, false
	}
	entries, ok := asDictTag(inner)
	if !ok {
		return nil, false
	}
	keys = make([]Value, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	return keys, true
}

func printDictTag(b *strings.Builder, entries []dictEntry) {
	if len(entries) == 0 {
		b.WriteString("Dict.empty")
		return
	}
	b.WriteString("Dict.fromList [")
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		sprint(b, e.key, false)
		b.WriteByte(',')
		sprint(b, e.value, false)
		b.WriteByte(')')
	}
	b.WriteByte(']')
}

func printSetTag(b *strings.Builder, keys []Value) {
	if len(keys) == 0 {
		b.WriteString("Set.empty")
		return
	}
	b.WriteString("Set.fromList [")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		sprint(b, k, false)
	}
	b.WriteByte(']')
}
