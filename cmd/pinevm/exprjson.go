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

package main

import (
	"encoding/json"
	"fmt"

	pineerrors "github.com/pine-vm/pine/errors"
	"github.com/pine-vm/pine/syntax"
)

// exprJSON is a friendlier textual notation for syntax.Expr than
// round-tripping through its own encoded Pine value, used by the
// `encode` subcommand. It mirrors the table in §4.2 rather
// than inventing a new shape.
type exprJSON struct {
	Literal           *jsonValue             `json:"literal,omitempty"`
	List              []exprJSON             `json:"list,omitempty"`
	Environment       *struct{}              `json:"environment,omitempty"`
	Conditional       *conditionalJSON       `json:"conditional,omitempty"`
	KernelApplication *kernelApplicationJSON `json:"kernelApplication,omitempty"`
	DecodeAndEvaluate *decodeAndEvaluateJSON `json:"decodeAndEvaluate,omitempty"`
	StringTag         *stringTagJSON         `json:"stringTag,omitempty"`
}

type conditionalJSON struct {
	Condition exprJSON `json:"condition"`
	IfTrue    exprJSON `json:"ifTrue"`
	IfFalse   exprJSON `json:"ifFalse"`
}

type kernelApplicationJSON struct {
	FunctionName string   `json:"functionName"`
	Argument     exprJSON `json:"argument"`
}

type decodeAndEvaluateJSON struct {
	Expression  exprJSON `json:"expression"`
	Environment exprJSON `json:"environment"`
}

type stringTagJSON struct {
	Tag    string   `json:"tag"`
	Tagged exprJSON `json:"tagged"`
}

func (j exprJSON) toExpr() (syntax.Expr, error) {
	switch {
	case j.Literal != nil:
		v, err := j.Literal.toValue()
		if err != nil {
			return nil, pineerrors.Wrapf(err, "literal")
		}
		return &syntax.Literal{Value: v}, nil
	case j.List != nil:
		elems := make([]syntax.Expr, len(j.List))
		for i, e := range j.List {
			sub, err := e.toExpr()
			if err != nil {
				return nil, pineerrors.Wrapf(err, "list element [%d]", i)
			}
			elems[i] = sub
		}
		return &syntax.List{Elements: elems}, nil
	case j.Environment != nil:
		return &syntax.Environment{}, nil
	case j.Conditional != nil:
		cond, err := j.Conditional.Condition.toExpr()
		if err != nil {
			return nil, pineerrors.Wrapf(err, "conditional condition")
		}
		ifTrue, err := j.Conditional.IfTrue.toExpr()
		if err != nil {
			return nil, pineerrors.Wrapf(err, "conditional ifTrue")
		}
		ifFalse, err := j.Conditional.IfFalse.toExpr()
		if err != nil {
			return nil, pineerrors.Wrapf(err, "conditional ifFalse")
		}
		return &syntax.Conditional{Condition: cond, IfTrue: ifTrue, IfFalse: ifFalse}, nil
	case j.KernelApplication != nil:
		arg, err := j.KernelApplication.Argument.toExpr()
		if err != nil {
			return nil, pineerrors.Wrapf(err, "kernel application argument")
		}
		return &syntax.KernelApplication{Function: j.KernelApplication.FunctionName, Argument: arg}, nil
	case j.DecodeAndEvaluate != nil:
		expr, err := j.DecodeAndEvaluate.Expression.toExpr()
		if err != nil {
			return nil, pineerrors.Wrapf(err, "decode-and-evaluate expression")
		}
		env, err := j.DecodeAndEvaluate.Environment.toExpr()
		if err != nil {
			return nil, pineerrors.Wrapf(err, "decode-and-evaluate environment")
		}
		return &syntax.DecodeAndEvaluate{Expression: expr, Environment: env}, nil
	case j.StringTag != nil:
		tagged, err := j.StringTag.Tagged.toExpr()
		if err != nil {
			return nil, pineerrors.Wrapf(err, "string-tag payload")
		}
		return &syntax.StringTag{Tag: j.StringTag.Tag, Tagged: tagged}, nil
	default:
		return nil, pineerrors.Newf(pineerrors.Decode, "empty expression JSON object")
	}
}

func readExprJSON(data []byte) (syntax.Expr, error) {
	var j exprJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse expression JSON: %w", err)
	}
	return j.toExpr()
}
