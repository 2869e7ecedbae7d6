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
	pineerrors "github.com/pine-vm/pine/errors"
	"github.com/pine-vm/pine/syntax"
	"github.com/pine-vm/pine/value"
)

// equalFn implements "equal": true iff all elements of a list are
// pairwise equal (including the vacuous empty-list case), or iff a
// blob's bytes are all equal. Never fails.
func equalFn(v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case *value.List:
		elems := x.Elems()
		for i := 1; i < len(elems); i++ {
			if !value.Equal(elems[0], elems[i]) {
				return boolValue(false), nil
			}
		}
		return boolValue(true), nil
	case *value.Blob:
		b := x.Bytes()
		for i := 1; i < len(b); i++ {
			if b[i] != b[0] {
				return boolValue(false), nil
			}
		}
		return boolValue(true), nil
	default:
		return boolValue(false), nil
	}
}

func decodeBool(v value.Value) (bool, error) {
	switch {
	case value.Equal(v, syntax.TrueValue):
		return true, nil
	case value.Equal(v, syntax.FalseValue):
		return false, nil
	default:
		return false, pineerrors.Newf(pineerrors.TypeMismatch, "expected a Bool, got a value that is neither True nor False")
	}
}

// logicalNot requires a Bool argument and hard-fails otherwise, per §4.4.
func logicalNot(v value.Value) (value.Value, error) {
	b, err := decodeBool(v)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "logical_not")
	}
	return boolValue(!b), nil
}

func foldBools(v value.Value, identity, absorbing bool) (value.Value, error) {
	l, ok := v.(*value.List)
	if !ok {
		return nil, pineerrors.Newf(pineerrors.TypeMismatch, "expected a list of Bool, got a %s", v.Kind())
	}
	acc := identity
	for _, e := range l.Elems() {
		b, err := decodeBool(e)
		if err != nil {
			return nil, err
		}
		if b == absorbing {
			return boolValue(absorbing), nil
		}
		acc = acc && b == identity
	}
	return boolValue(acc), nil
}

func logicalAnd(v value.Value) (value.Value, error) {
	r, err := foldBools(v, true, false)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "logical_and")
	}
	return r, nil
}

func logicalOr(v value.Value) (value.Value, error) {
	r, err := foldBools(v, false, true)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "logical_or")
	}
	return r, nil
}
