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
	"math/big"

	pineerrors "github.com/pine-vm/pine/errors"
	"github.com/pine-vm/pine/value"
)

func length(v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case *value.Blob:
		return value.BlobFromInt64(int64(x.Len())), nil
	case *value.List:
		return value.BlobFromInt64(int64(x.Len())), nil
	default:
		return nil, pineerrors.Newf(pineerrors.Internal, "unreachable value kind")
	}
}

// listHead returns the first element, or the empty list for an empty
// list — a soft-failure convention, not a TypeMismatch.
func listHead(v value.Value) (value.Value, error) {
	l, ok := v.(*value.List)
	if !ok || l.Len() == 0 {
		return value.EmptyList(), nil
	}
	return l.Elems()[0], nil
}

// decodeSkipTakeArgs decodes the shared ([signed-int, list-or-blob])
// argument shape of skip and take, clamping n into [0, len(coll)].
func decodeSkipTakeArgs(v value.Value) (n int, coll value.Value, err error) {
	l, ok := v.(*value.List)
	if !ok || l.Len() != 2 {
		return 0, nil, pineerrors.Newf(pineerrors.TypeMismatch, "expected [count, collection], got a %s", v.Kind())
	}
	countBlob, ok := l.Elems()[0].(*value.Blob)
	if !ok {
		return 0, nil, pineerrors.Newf(pineerrors.TypeMismatch, "count must be a blob-encoded integer")
	}
	count, err := value.IntFromBlob(countBlob)
	if err != nil {
		return 0, nil, pineerrors.Wrapf(err, "count")
	}
	coll = l.Elems()[1]
	size := collLen(coll)
	clamped := count
	if clamped.Sign() < 0 {
		clamped = big.NewInt(0)
	} else if clamped.Cmp(big.NewInt(int64(size))) > 0 {
		clamped = big.NewInt(int64(size))
	}
	return int(clamped.Int64()), coll, nil
}

func collLen(v value.Value) int {
	switch x := v.(type) {
	case *value.Blob:
		return x.Len()
	case *value.List:
		return x.Len()
	default:
		return 0
	}
}

func skip(v value.Value) (value.Value, error) {
	n, coll, err := decodeSkipTakeArgs(v)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "skip")
	}
	switch x := coll.(type) {
	case *value.Blob:
		return value.NewBlob(x.Bytes()[n:]), nil
	case *value.List:
		return value.NewList(x.Elems()[n:]), nil
	default:
		return value.EmptyList(), nil
	}
}

func take(v value.Value) (value.Value, error) {
	n, coll, err := decodeSkipTakeArgs(v)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "take")
	}
	switch x := coll.(type) {
	case *value.Blob:
		return value.NewBlob(x.Bytes()[:n]), nil
	case *value.List:
		return value.NewList(x.Elems()[:n]), nil
	default:
		return value.EmptyList(), nil
	}
}

func reverse(v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case *value.Blob:
		b := x.Bytes()
		out := make([]byte, len(b))
		for i, c := range b {
			out[len(b)-1-i] = c
		}
		return value.NewBlob(out), nil
	case *value.List:
		e := x.Elems()
		out := make([]value.Value, len(e))
		for i, c := range e {
			out[len(e)-1-i] = c
		}
		return value.NewList(out), nil
	default:
		return value.EmptyList(), nil
	}
}

// concat left-folds a list of collections. Mixed blob/list elements
// take the kind of each element as it is folded in (§9 open question:
// fixed here as "take the element's kind" to match observed behavior).
func concat(v value.Value) (value.Value, error) {
	l, ok := v.(*value.List)
	if !ok {
		return value.EmptyList(), nil
	}
	if l.Len() == 0 {
		return value.EmptyList(), nil
	}
	// An element of the other kind replaces the accumulator, so the
	// fold leaves the concatenation of the trailing run of elements
	// sharing the last element's kind.
	elems := l.Elems()
	start := len(elems) - 1
	for start > 0 && elems[start-1].Kind() == elems[start].Kind() {
		start--
	}
	elems = elems[start:]
	switch elems[0].(type) {
	case *value.Blob:
		var out []byte
		for _, e := range elems {
			b, ok := e.(*value.Blob)
			if !ok {
				continue
			}
			out = append(out, b.Bytes()...)
		}
		return value.NewBlob(out), nil
	case *value.List:
		var out []value.Value
		for _, e := range elems {
			sub, ok := e.(*value.List)
			if !ok {
				continue
			}
			out = append(out, sub.Elems()...)
		}
		return value.NewList(out), nil
	default:
		return value.EmptyList(), nil
	}
}
