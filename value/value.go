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

// Package value implements the Pine value model: an immutable tree of
// bytes with exactly two shapes, blob and list. This is the uniform
// substrate the rest of the VM is built on; see the package docs of
// syntax, eval and elm for the layers built on top of it.
package value

import "bytes"

// Value is a Pine value: either a Blob or a List. The interface is
// closed — Blob and List are the only implementations — callers
// should type-switch rather than add new kinds.
type Value interface {
	// pine marks Value as implementable only within this package.
	pine()

	// Kind reports which of the two Pine value shapes v has.
	Kind() Kind
}

// Kind identifies which of the two Pine value shapes a Value has.
type Kind int

const (
	// BlobKind is the Kind of a Blob value.
	BlobKind Kind = iota
	// ListKind is the Kind of a List value.
	ListKind
)

func (k Kind) String() string {
	switch k {
	case BlobKind:
		return "blob"
	case ListKind:
		return "list"
	default:
		return "invalid"
	}
}

// Blob is an immutable byte sequence.
type Blob struct {
	bytes []byte
}

func (*Blob) pine()      {}
func (*Blob) Kind() Kind { return BlobKind }

// Bytes returns the blob's content. Callers must not mutate the
// returned slice.
func (b *Blob) Bytes() []byte { return b.bytes }

// Len reports the number of bytes in the blob.
func (b *Blob) Len() int { return len(b.bytes) }

// List is an immutable ordered sequence of Pine values.
type List struct {
	elems []Value
}

func (*List) pine()      {}
func (*List) Kind() Kind { return ListKind }

// Elems returns the list's elements. Callers must not mutate the
// returned slice.
func (l *List) Elems() []Value { return l.elems }

// Len reports the number of elements in the list.
func (l *List) Len() int { return len(l.elems) }

var (
	emptyBlob = &Blob{bytes: []byte{}}
	emptyList = &List{elems: []Value{}}
)

// NewBlob constructs a Blob value. The empty blob is a shared
// singleton distinct from the empty list.
func NewBlob(b []byte) *Blob {
	if len(b) == 0 {
		return emptyBlob
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return &Blob{bytes: cp}
}

// NewList constructs a List value from its elements. The empty list
// is a shared singleton distinct from the empty blob.
func NewList(elems []Value) *List {
	if len(elems) == 0 {
		return emptyList
	}
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return &List{elems: cp}
}

// EmptyBlob is the canonical zero-length Blob.
func EmptyBlob() *Blob { return emptyBlob }

// EmptyList is the canonical zero-length List.
func EmptyList() *List { return emptyList }

// Equal reports whether a and b are structurally equal: two blobs are
// equal iff byte-equal, two lists are equal iff same length and
// element-wise equal, and a blob is never equal to a list.
func Equal(a, b Value) bool {
	if a == b {
		return true
	}
	switch x := a.(type) {
	case *Blob:
		y, ok := b.(*Blob)
		return ok && bytes.Equal(x.bytes, y.bytes)
	case *List:
		y, ok := b.(*List)
		if !ok || len(x.elems) != len(y.elems) {
			return false
		}
		for i, xe := range x.elems {
			if !Equal(xe, y.elems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
