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
	"sort"

	pineerrors "github.com/pine-vm/pine/errors"
	"github.com/pine-vm/pine/value"
)

const maxCodePoint = 0x10FFFF

// FromPine decodes a Pine value into the Elm domain following the
// recognizer protocol of §4.5. A blob decodes as an Integer when it
// validates; a list of valid code-point blobs decodes as a List of
// Integer (not Str) by default — callers that know from outside
// context that a value denotes text should use FromPineAsString
// instead, since Pine itself carries no type information to settle
// the ambiguity (§4.5 point 1).
func FromPine(v value.Value) (Value, error) {
	return fromPine(v, false)
}

// FromPineAsString is FromPine but resolves the list-of-code-points
// ambiguity in favor of Str when the list validates as one.
func FromPineAsString(v value.Value) (Value, error) {
	return fromPine(v, true)
}

func fromPine(v value.Value, preferString bool) (Value, error) {
	switch x := v.(type) {
	case *value.Blob:
		n, err := value.IntFromBlob(x)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "decode blob as Elm value")
		}
		return NewInteger(n), nil

	case *value.List:
		elems := x.Elems()

		if preferString {
			if s, ok := tryDecodeString(elems); ok {
				return NewStr(s), nil
			}
		}

		if rec, ok, err := tryDecodeRecord(elems, preferString); err != nil {
			return nil, err
		} else if ok {
			return rec, nil
		}

		if tag, ok, err := tryDecodeTag(elems, preferString); err != nil {
			return nil, err
		} else if ok {
			return tag, nil
		}

		out := make([]Value, len(elems))
		for i, e := range elems {
			ev, err := fromPine(e, preferString)
			if err != nil {
				return nil, pineerrors.Wrapf(err, "list element [%d]", i)
			}
			out[i] = ev
		}
		return NewList(out), nil

	default:
		return nil, pineerrors.Newf(pineerrors.Internal, "unreachable value kind")
	}
}

func tryDecodeString(elems []value.Value) (string, bool) {
	if len(elems) == 0 {
		return "", false
	}
	runes := make([]rune, 0, len(elems))
	for _, e := range elems {
		b, ok := e.(*value.Blob)
		if !ok {
			return "", false
		}
		n, err := value.IntFromBlob(b)
		if err != nil || n.Sign() < 0 || n.Cmp(big.NewInt(maxCodePoint)) > 0 {
			return "", false
		}
		runes = append(runes, rune(n.Int64()))
	}
	return string(runes), true
}

// tryDecodeRecord recognizes the record shape of §4.5 point 2: every
// element is [name, value] with name starting lowercase. A
// record-shaped-but-misordered list is a hard decode error, not a
// silent fallback to List, per spec. The empty list is never treated
// as a (vacuous) record: it decodes as an empty List, matching how
// Dict/Set's own empty sentinels are represented as named Tags
// instead.
func tryDecodeRecord(elems []value.Value, preferString bool) (*Record, bool, error) {
	if len(elems) == 0 {
		return nil, false, nil
	}
	type candidate struct {
		name  string
		value value.Value
	}
	candidates := make([]candidate, 0, len(elems))
	for _, e := range elems {
		pair, ok := e.(*value.List)
		if !ok || pair.Len() != 2 {
			return nil, false, nil
		}
		nameList, ok := pair.Elems()[0].(*value.List)
		if !ok {
			return nil, false, nil
		}
		name, err := value.StringFromList(nameList)
		if err != nil || !startsLower(name) {
			return nil, false, nil
		}
		candidates = append(candidates, candidate{name: name, value: pair.Elems()[1]})
	}

	ascending := sort.SliceIsSorted(candidates, func(i, j int) bool {
		return candidates[i].name < candidates[j].name
	})
	if !ascending {
		return nil, false, pineerrors.Newf(pineerrors.Decode,
			"record-shaped list with %d fields is not in strictly ascending field-name order", len(candidates))
	}
	for i := 1; i < len(candidates); i++ {
		if candidates[i-1].name == candidates[i].name {
			return nil, false, pineerrors.Newf(pineerrors.Decode,
				"record-shaped list with %d fields has a duplicate field name %q", len(candidates), candidates[i].name)
		}
	}

	fields := make([]RecordField, len(candidates))
	for i, c := range candidates {
		fv, err := fromPine(c.value, preferString)
		if err != nil {
			return nil, false, pineerrors.Wrapf(err, "record field %q", c.name)
		}
		fields[i] = RecordField{Name: c.name, Value: fv}
	}
	return NewRecord(fields), true, nil
}

// tryDecodeTag recognizes the tag shape of §4.5 point 3: a two-element
// list [String tag-name, List arguments] where tag-name starts
// uppercase.
func tryDecodeTag(elems []value.Value, preferString bool) (*Tag, bool, error) {
	if len(elems) != 2 {
		return nil, false, nil
	}
	nameList, ok := elems[0].(*value.List)
	if !ok {
		return nil, false, nil
	}
	name, err := value.StringFromList(nameList)
	if err != nil || !startsUpper(name) {
		return nil, false, nil
	}
	argsList, ok := elems[1].(*value.List)
	if !ok {
		return nil, false, nil
	}
	args := make([]Value, len(argsList.Elems()))
	for i, a := range argsList.Elems() {
		av, err := fromPine(a, preferString)
		if err != nil {
			return nil, false, pineerrors.Wrapf(err, "tag %q argument [%d]", name, i)
		}
		args[i] = av
	}
	return NewTag(name, args), true, nil
}

func startsLower(s string) bool {
	return len(s) > 0 && s[0] >= 'a' && s[0] <= 'z'
}

func startsUpper(s string) bool {
	return len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z'
}

// ToPine encodes an Elm value back into a Pine value. Internal values
// have no Pine representation and produce a Decode error.
func ToPine(v Value) (value.Value, error) {
	switch x := v.(type) {
	case *Integer:
		return value.BlobFromInt(x.N), nil
	case *Char:
		return value.BlobFromInt64(int64(x.R)), nil
	case *Str:
		return value.ListFromString(x.S), nil
	case *List:
		elems := make([]value.Value, len(x.Elements))
		for i, e := range x.Elements {
			pv, err := ToPine(e)
			if err != nil {
				return nil, pineerrors.Wrapf(err, "list element [%d]", i)
			}
			elems[i] = pv
		}
		return value.NewList(elems), nil
	case *Tag:
		args := make([]value.Value, len(x.Args))
		for i, a := range x.Args {
			pv, err := ToPine(a)
			if err != nil {
				return nil, pineerrors.Wrapf(err, "tag %q argument [%d]", x.Name, i)
			}
			args[i] = pv
		}
		return value.NewList([]value.Value{
			value.ListFromString(x.Name),
			value.NewList(args),
		}), nil
	case *Record:
		elems := make([]value.Value, len(x.Fields))
		for i, f := range x.Fields {
			pv, err := ToPine(f.Value)
			if err != nil {
				return nil, pineerrors.Wrapf(err, "record field %q", f.Name)
			}
			elems[i] = value.NewList([]value.Value{value.ListFromString(f.Name), pv})
		}
		return value.NewList(elems), nil
	case *Internal:
		return nil, pineerrors.Newf(pineerrors.Decode, "internal Elm value %q has no Pine representation", x.Note)
	default:
		return nil, pineerrors.Newf(pineerrors.Internal, "unreachable Elm value variant %T", v)
	}
}
