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

package syntax

import (
	pineerrors "github.com/pine-vm/pine/errors"
	"github.com/pine-vm/pine/value"
)

// Encode converts e into its canonical Pine-value representation
// (§4.2): a two-element list [tag-name-as-string, payload]. Delegating
// expressions are not encodable and produce an Internal error.
func Encode(e Expr) (value.Value, error) {
	switch x := e.(type) {
	case *Literal:
		return tagged("Literal", x.Value), nil

	case *List:
		elems := make([]value.Value, len(x.Elements))
		for i, sub := range x.Elements {
			ev, err := Encode(sub)
			if err != nil {
				return nil, pineerrors.Wrapf(err, "list element [%d]", i)
			}
			elems[i] = ev
		}
		return tagged("List", value.NewList(elems)), nil

	case *Environment:
		return tagged("Environment", value.EmptyList()), nil

	case *Conditional:
		cond, err := Encode(x.Condition)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "conditional condition")
		}
		ifTrue, err := Encode(x.IfTrue)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "conditional ifTrue")
		}
		ifFalse, err := Encode(x.IfFalse)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "conditional ifFalse")
		}
		return tagged("Conditional", record(
			field{"condition", cond},
			field{"ifTrue", ifTrue},
			field{"ifFalse", ifFalse},
		)), nil

	case *KernelApplication:
		arg, err := Encode(x.Argument)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "kernel application argument")
		}
		return tagged("KernelApplication", record(
			field{"functionName", value.ListFromString(x.Function)},
			field{"argument", arg},
		)), nil

	case *DecodeAndEvaluate:
		expr, err := Encode(x.Expression)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "decode-and-evaluate expression")
		}
		env, err := Encode(x.Environment)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "decode-and-evaluate environment")
		}
		return tagged("DecodeAndEvaluate", record(
			field{"expression", expr},
			field{"environment", env},
		)), nil

	case *StringTag:
		tv, err := Encode(x.Tagged)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "string-tag payload")
		}
		payload := value.NewList([]value.Value{value.ListFromString(x.Tag), tv})
		return tagged("StringTag", payload), nil

	case *Delegating:
		return nil, pineerrors.Newf(pineerrors.Internal, "delegating expression %q is not encodable", x.Name)

	default:
		return nil, pineerrors.Newf(pineerrors.Internal, "unreachable expression variant %T", e)
	}
}

func tagged(name string, payload value.Value) *value.List {
	return value.NewList([]value.Value{value.ListFromString(name), payload})
}

type field struct {
	name  string
	value value.Value
}

func record(fields ...field) *value.List {
	elems := make([]value.Value, len(fields))
	for i, f := range fields {
		elems[i] = value.NewList([]value.Value{value.ListFromString(f.name), f.value})
	}
	return value.NewList(elems)
}
