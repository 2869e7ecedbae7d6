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

func decodeIntList(v value.Value) ([]*big.Int, error) {
	l, ok := v.(*value.List)
	if !ok {
		return nil, pineerrors.Newf(pineerrors.TypeMismatch, "expected a list of integers, got a %s", v.Kind())
	}
	if l.Len() == 0 {
		return nil, pineerrors.Newf(pineerrors.TypeMismatch, "integer operation requires at least one operand")
	}
	out := make([]*big.Int, l.Len())
	for i, e := range l.Elems() {
		b, ok := e.(*value.Blob)
		if !ok {
			return nil, pineerrors.Newf(pineerrors.TypeMismatch, "operand [%d] is a %s, not a blob-encoded integer", i, e.Kind())
		}
		n, err := value.IntFromBlob(b)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "operand [%d]", i)
		}
		out[i] = n
	}
	return out, nil
}

func negInt(v value.Value) (value.Value, error) {
	b, ok := v.(*value.Blob)
	if !ok {
		return nil, pineerrors.Newf(pineerrors.TypeMismatch, "neg_int expects a blob-encoded integer, got a %s", v.Kind())
	}
	n, err := value.IntFromBlob(b)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "neg_int")
	}
	return value.BlobFromInt(new(big.Int).Neg(n)), nil
}

func addInt(v value.Value) (value.Value, error) {
	ns, err := decodeIntList(v)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "add_int")
	}
	acc := new(big.Int).Set(ns[0])
	for _, n := range ns[1:] {
		acc.Add(acc, n)
	}
	return value.BlobFromInt(acc), nil
}

func subInt(v value.Value) (value.Value, error) {
	ns, err := decodeIntList(v)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "sub_int")
	}
	acc := new(big.Int).Set(ns[0])
	for _, n := range ns[1:] {
		acc.Sub(acc, n)
	}
	return value.BlobFromInt(acc), nil
}

func mulInt(v value.Value) (value.Value, error) {
	ns, err := decodeIntList(v)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "mul_int")
	}
	acc := new(big.Int).Set(ns[0])
	for _, n := range ns[1:] {
		acc.Mul(acc, n)
	}
	return value.BlobFromInt(acc), nil
}

func divInt(v value.Value) (value.Value, error) {
	ns, err := decodeIntList(v)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "div_int")
	}
	acc := new(big.Int).Set(ns[0])
	for i, n := range ns[1:] {
		if n.Sign() == 0 {
			return nil, pineerrors.Newf(pineerrors.DivisionByZero, "div_int: divisor [%d] is zero", i+1)
		}
		acc.Quo(acc, n)
	}
	return value.BlobFromInt(acc), nil
}
