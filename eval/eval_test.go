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

package eval

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pine-vm/pine/syntax"
	"github.com/pine-vm/pine/value"
)

func mustEval(t *testing.T, e *Evaluator, expr syntax.Expr, env value.Value) value.Value {
	t.Helper()
	v, err := e.Evaluate(context.Background(), expr, env)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return v
}

// TestIntegerArithmetic is end-to-end scenario 1 of §8.
func TestIntegerArithmetic(t *testing.T) {
	e := New()
	expr := &syntax.KernelApplication{
		Function: "add_int",
		Argument: &syntax.List{Elements: []syntax.Expr{
			&syntax.Literal{Value: value.BlobFromInt64(2)},
			&syntax.Literal{Value: value.BlobFromInt64(3)},
		}},
	}
	got := mustEval(t, e, expr, value.EmptyList())
	want := value.NewBlob([]byte{0x00, 0x05})
	if !value.Equal(got, want) {
		t.Errorf("add_int(2, 3) = %v, want %v", got, want)
	}
}

// TestConditional is end-to-end scenario 2 of §8.
func TestConditional(t *testing.T) {
	e := New()
	build := func(cond value.Value) syntax.Expr {
		return &syntax.Conditional{
			Condition: &syntax.Literal{Value: cond},
			IfTrue:    &syntax.Literal{Value: value.BlobFromInt64(1)},
			IfFalse:   &syntax.Literal{Value: value.BlobFromInt64(2)},
		}
	}
	if got := mustEval(t, e, build(syntax.TrueValue), value.EmptyList()); !value.Equal(got, value.BlobFromInt64(1)) {
		t.Errorf("True branch = %v, want 1", got)
	}
	if got := mustEval(t, e, build(syntax.FalseValue), value.EmptyList()); !value.Equal(got, value.BlobFromInt64(2)) {
		t.Errorf("False branch = %v, want 2", got)
	}
	if got := mustEval(t, e, build(value.EmptyList()), value.EmptyList()); !value.Equal(got, value.BlobFromInt64(2)) {
		t.Errorf("non-True condition = %v, want 2 (treated as False)", got)
	}
}

// TestEnvironment is end-to-end scenario 3 of §8.
func TestEnvironment(t *testing.T) {
	e := New()
	env := value.NewList([]value.Value{value.BlobFromInt64(7), value.BlobFromInt64(9)})
	got := mustEval(t, e, &syntax.Environment{}, env)
	if diff := cmp.Diff(env.Elems(), got.(*value.List).Elems(), cmp.Comparer(value.Equal)); diff != "" {
		t.Errorf("Environment mismatch (-want +got):\n%s", diff)
	}
}

// TestDecodeAndEvaluate is end-to-end scenario 4 of §8.
func TestDecodeAndEvaluate(t *testing.T) {
	e := New()
	fnExpr := &syntax.KernelApplication{Function: "length", Argument: &syntax.Environment{}}
	fnValue, err := syntax.Encode(fnExpr)
	if err != nil {
		t.Fatal(err)
	}
	abc := value.NewList([]value.Value{value.BlobFromInt64(1), value.BlobFromInt64(2), value.BlobFromInt64(3)})
	expr := &syntax.DecodeAndEvaluate{
		Expression:  &syntax.Literal{Value: fnValue},
		Environment: &syntax.Literal{Value: abc},
	}
	got := mustEval(t, e, expr, value.EmptyList())
	if !value.Equal(got, value.BlobFromInt64(3)) {
		t.Errorf("length([a,b,c]) = %v, want 3", got)
	}
}

func TestDecodeAndEvaluateUsesDecodeOverride(t *testing.T) {
	marker := value.BlobFromInt64(424242)
	called := false
	delegate := &syntax.Delegating{
		Name: "test-shortcut",
		Fn: func(env value.Value) (value.Value, error) {
			called = true
			return env, nil
		},
	}
	e := New(WithDecodeOverrides(map[value.Value]*syntax.Delegating{marker: delegate}))

	expr := &syntax.DecodeAndEvaluate{
		Expression:  &syntax.Literal{Value: marker},
		Environment: &syntax.Literal{Value: value.BlobFromInt64(1)},
	}
	got := mustEval(t, e, expr, value.EmptyList())
	if !called {
		t.Fatal("expected decode override's Fn to be invoked")
	}
	if !value.Equal(got, value.BlobFromInt64(1)) {
		t.Errorf("got %v, want environment echoed back", got)
	}
}

func TestCacheHitAvoidsReEvaluation(t *testing.T) {
	e := New(WithCacheWriteThreshold(0)) // force every evaluation to be cached
	calls := 0
	fnExpr := &syntax.Delegating{
		Name: "counting",
		Fn: func(env value.Value) (value.Value, error) {
			calls++
			return env, nil
		},
	}
	fv := value.BlobFromInt64(1) // arbitrary distinct "function value"
	av := value.BlobFromInt64(2)

	e.overrides = newDecodeOverrideTable(map[value.Value]*syntax.Delegating{fv: fnExpr})

	expr := &syntax.DecodeAndEvaluate{
		Expression:  &syntax.Literal{Value: fv},
		Environment: &syntax.Literal{Value: av},
	}
	mustEval(t, e, expr, value.EmptyList())
	mustEval(t, e, expr, value.EmptyList())

	if calls != 1 {
		t.Errorf("expected the delegate to run once and be served from cache thereafter, ran %d times", calls)
	}
	if e.CacheSize() != 1 {
		t.Errorf("CacheSize() = %d, want 1", e.CacheSize())
	}
}

func TestDeterminism(t *testing.T) {
	e := New()
	expr := &syntax.KernelApplication{
		Function: "mul_int",
		Argument: &syntax.List{Elements: []syntax.Expr{
			&syntax.Literal{Value: value.BlobFromInt64(6)},
			&syntax.Literal{Value: value.BlobFromInt64(7)},
		}},
	}
	first := mustEval(t, e, expr, value.EmptyList())
	for i := 0; i < 5; i++ {
		got := mustEval(t, e, expr, value.EmptyList())
		if !value.Equal(got, first) {
			t.Errorf("non-deterministic result: %v vs %v", got, first)
		}
	}
}
