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

// Package pine is the Pine VM's public facade (§6): it wires the
// value, syntax, eval, kernel and elm layers behind the handful of
// entry points an embedder needs.
package pine

import (
	"context"

	"github.com/pine-vm/pine/elm"
	"github.com/pine-vm/pine/eval"
	"github.com/pine-vm/pine/syntax"
	"github.com/pine-vm/pine/value"
)

// VM is a single Pine virtual machine instance: an evaluator with its
// own memoization cache. It is not safe for concurrent use (§5).
type VM struct {
	evaluator *eval.Evaluator
}

// Option configures a VM at construction time.
type Option = eval.Option

// WithDecodeOverrides, WithCacheWriteThreshold, WithLogger and
// WithPollHook are re-exported from eval for convenience so callers
// only need to import this package.
var (
	WithDecodeOverrides     = eval.WithDecodeOverrides
	WithCacheWriteThreshold = eval.WithCacheWriteThreshold
	WithLogger              = eval.WithLogger
	WithPollHook            = eval.WithPollHook
)

// New constructs a VM.
func New(opts ...Option) *VM {
	return &VM{evaluator: eval.New(opts...)}
}

// Evaluate is the central entry point: it reduces expr under env to a
// Pine value.
func (vm *VM) Evaluate(ctx context.Context, expr syntax.Expr, env value.Value) (value.Value, error) {
	return vm.evaluator.Evaluate(ctx, expr, env)
}

// EncodeExpression converts a Pine expression into its canonical Pine
// value representation.
func (vm *VM) EncodeExpression(e syntax.Expr) (value.Value, error) {
	return syntax.Encode(e)
}

// DecodeExpression is the inverse of EncodeExpression.
func (vm *VM) DecodeExpression(v value.Value) (syntax.Expr, error) {
	return syntax.Decode(v)
}

// EncodePineAsElm encodes a Pine value literally as Elm data
// (BlobValue/ListValue), for self-hosted compilers that manipulate
// Pine expressions as ordinary values.
func (vm *VM) EncodePineAsElm(v value.Value) elm.Value {
	return elm.EncodePineAsElm(v)
}

// DecodeElmAsPine is the inverse of EncodePineAsElm.
func (vm *VM) DecodeElmAsPine(v elm.Value) (value.Value, error) {
	return elm.DecodeElmAsPine(v)
}

// ElmFromPine decodes a Pine value into the higher-level Elm domain
// (integer, character, string, list, tag, record) via the recognizer
// protocol of §4.5.
func (vm *VM) ElmFromPine(v value.Value) (elm.Value, error) {
	return elm.FromPine(v)
}

// ElmValueToExpressionString renders an Elm value as Elm source-like
// text, for diagnostics and test failure output.
func (vm *VM) ElmValueToExpressionString(v elm.Value) string {
	return elm.Sprint(v)
}

// CacheSize, CacheLookupCount and MaxEnvSize are the read-only
// observability counters of §6.
func (vm *VM) CacheSize() int        { return vm.evaluator.CacheSize() }
func (vm *VM) CacheLookupCount() int { return vm.evaluator.CacheLookupCount() }
func (vm *VM) MaxEnvSize() int       { return vm.evaluator.MaxEnvSize() }
