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

import "github.com/pine-vm/pine/value"

// Equal reports whether a and b are the same expression tree,
// structurally. Delegating expressions are compared by name only: Fn
// is a Go closure and not comparable for structural purposes.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Literal:
		y, ok := b.(*Literal)
		return ok && value.Equal(x.Value, y.Value)
	case *List:
		y, ok := b.(*List)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equal(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *Environment:
		_, ok := b.(*Environment)
		return ok
	case *Conditional:
		y, ok := b.(*Conditional)
		return ok && Equal(x.Condition, y.Condition) && Equal(x.IfTrue, y.IfTrue) && Equal(x.IfFalse, y.IfFalse)
	case *KernelApplication:
		y, ok := b.(*KernelApplication)
		return ok && x.Function == y.Function && Equal(x.Argument, y.Argument)
	case *DecodeAndEvaluate:
		y, ok := b.(*DecodeAndEvaluate)
		return ok && Equal(x.Expression, y.Expression) && Equal(x.Environment, y.Environment)
	case *StringTag:
		y, ok := b.(*StringTag)
		return ok && x.Tag == y.Tag && Equal(x.Tagged, y.Tagged)
	case *Delegating:
		y, ok := b.(*Delegating)
		return ok && x.Name == y.Name
	default:
		return false
	}
}
