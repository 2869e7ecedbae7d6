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
	"math/big"

	pineerrors "github.com/pine-vm/pine/errors"
	"github.com/pine-vm/pine/value"
)

// EncodePineAsElm encodes a Pine value literally, as data, into the
// Elm domain (§4.5, §6): a blob becomes BlobValue [b0, b1, ...] and a
// list becomes ListValue [encoded-children]. This is distinct from
// FromPine, which applies the recognizer protocol to produce a
// higher-level view; EncodePineAsElm is the "quote a Pine value"
// operation self-hosted compilers use to manipulate Pine expressions
// as ordinary Elm data.
func EncodePineAsElm(v value.Value) Value {
	switch x := v.(type) {
	case *value.Blob:
		bytes := x.Bytes()
		args := make([]Value, len(bytes))
		for i, c := range bytes {
			args[i] = NewInteger(big.NewInt(int64(c)))
		}
		return NewTag("BlobValue", []Value{NewList(args)})
	case *value.List:
		elems := x.Elems()
		children := make([]Value, len(elems))
		for i, e := range elems {
			children[i] = EncodePineAsElm(e)
		}
		return NewTag("ListValue", []Value{NewList(children)})
	default:
		panic("unreachable value kind")
	}
}

// DecodeElmAsPine is the inverse of EncodePineAsElm. It is total on
// well-formed BlobValue/ListValue input and fails with a Decode error
// otherwise.
func DecodeElmAsPine(v Value) (value.Value, error) {
	t, ok := v.(*Tag)
	if !ok || len(t.Args) != 1 {
		return nil, pineerrors.Newf(pineerrors.Decode, "expected BlobValue or ListValue, got %T", v)
	}
	argList, ok := t.Args[0].(*List)
	if !ok {
		return nil, pineerrors.Newf(pineerrors.Decode, "%s argument must be a list", t.Name)
	}

	switch t.Name {
	case "BlobValue":
		out := make([]byte, len(argList.Elements))
		for i, e := range argList.Elements {
			n, ok := e.(*Integer)
			if !ok || n.N.Sign() < 0 || n.N.Cmp(big.NewInt(255)) > 0 {
				return nil, pineerrors.Newf(pineerrors.Decode, "BlobValue byte [%d] is not in [0, 255]", i)
			}
			out[i] = byte(n.N.Int64())
		}
		return value.NewBlob(out), nil

	case "ListValue":
		elems := make([]value.Value, len(argList.Elements))
		for i, e := range argList.Elements {
			pv, err := DecodeElmAsPine(e)
			if err != nil {
				return nil, pineerrors.Wrapf(err, "ListValue element [%d]", i)
			}
			elems[i] = pv
		}
		return value.NewList(elems), nil

	default:
		return nil, pineerrors.Newf(pineerrors.Decode, "unknown Pine-as-Elm tag %q", t.Name)
	}
}
