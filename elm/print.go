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
	"fmt"
	"strings"
)

// Sprint renders v as Elm source-like text, the way a REPL or test
// failure diff would show it. It is the elm_value_to_expression_string
// operation of §6.
func Sprint(v Value) string {
	var b strings.Builder
	sprint(&b, v, false)
	return b.String()
}

func sprint(b *strings.Builder, v Value, parenthesizeIfCompound bool) {
	switch x := v.(type) {
	case *Integer:
		if parenthesizeIfCompound && x.N.Sign() < 0 {
			b.WriteByte('(')
			b.WriteString(x.N.String())
			b.WriteByte(')')
			return
		}
		b.WriteString(x.N.String())

	case *Char:
		b.WriteByte('\'')
		b.WriteString(escapeRune(x.R))
		b.WriteByte('\'')

	case *Str:
		b.WriteByte('"')
		b.WriteString(escapeString(x.S))
		b.WriteByte('"')

	case *List:
		printList(b, x)

	case *Record:
		printRecord(b, x)

	case *Tag:
		printTag(b, x, parenthesizeIfCompound)

	case *Internal:
		fmt.Fprintf(b, "<internal: %s>", x.Note)
	}
}

func printList(b *strings.Builder, l *List) {
	if kvs, ok := asTuple(l.Elements); ok {
		b.WriteByte('(')
		for i, e := range kvs {
			if i > 0 {
				b.WriteString(", ")
			}
			sprint(b, e, false)
		}
		b.WriteByte(')')
		return
	}
	b.WriteByte('[')
	for i, e := range l.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		sprint(b, e, false)
	}
	b.WriteByte(']')
}

// asTuple applies the tuple-vs-list heuristic of §4.5: a list of 2 or 3
// elements whose types are pairwise not-all-equal prints as a tuple.
// typesEqual is an option: a definite "not equal" on any pair forces
// the tuple form; anything else (all known-equal, or some unknown)
// defaults to the list form.
func asTuple(elems []Value) ([]Value, bool) {
	if len(elems) != 2 && len(elems) != 3 {
		return nil, false
	}
	for i := 0; i < len(elems); i++ {
		for j := i + 1; j < len(elems); j++ {
			if eq, known := typesEqual(elems[i], elems[j]); known && !eq {
				return elems, true
			}
		}
	}
	return nil, false
}

// typesEqual reports whether a and b have the same Elm type, and
// whether that judgement is known. Scalar kinds are always known;
// List, Record, Tag and Internal report unknown since their element
// types may differ structurally in ways this package does not track.
func typesEqual(a, b Value) (equal, known bool) {
	switch b.(type) {
	case *Integer, *Char, *Str:
	default:
		return false, false
	}
	switch a.(type) {
	case *Integer:
		_, ok := b.(*Integer)
		return ok, true
	case *Char:
		_, ok := b.(*Char)
		return ok, true
	case *Str:
		_, ok := b.(*Str)
		return ok, true
	default:
		return false, false
	}
}

func printRecord(b *strings.Builder, r *Record) {
	if len(r.Fields) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{ ")
	for i, f := range r.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(" = ")
		sprint(b, f.Value, false)
	}
	b.WriteString(" }")
}

func printTag(b *strings.Builder, t *Tag, parenthesizeIfCompound bool) {
	if keys, ok := asSetTag(t); ok {
		printSetTag(b, keys)
		return
	}
	if entries, ok := asDictTag(t); ok {
		printDictTag(b, entries)
		return
	}
	if len(t.Args) == 0 {
		b.WriteString(t.Name)
		return
	}
	open, close := "", ""
	if parenthesizeIfCompound {
		open, close = "(", ")"
	}
	b.WriteString(open)
	b.WriteString(t.Name)
	for _, a := range t.Args {
		b.WriteByte(' ')
		sprint(b, a, true)
	}
	b.WriteString(close)
}

func escapeRune(r rune) string {
	switch r {
	case '\'':
		return "\\'"
	case '\\':
		return "\\\\"
	case '\n':
		return "\\n"
	case '\t':
		return "\\t"
	default:
		return string(r)
	}
}

func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString("\\\"")
		case '\\':
			b.WriteString("\\\\")
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
