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

// Package eval implements the Pine expression evaluator (§4.3): a
// tree-walking interpreter carrying the function-application
// memoization cache and an optional decode-override table.
package eval

import (
	"context"
	"log/slog"
	"time"

	pineerrors "github.com/pine-vm/pine/errors"
	"github.com/pine-vm/pine/kernel"
	"github.com/pine-vm/pine/syntax"
	"github.com/pine-vm/pine/value"
)

// Evaluator is a single Pine VM's evaluation engine. It owns the
// memoization cache and is not safe for concurrent use (§5): if shared
// across goroutines, callers must serialize access themselves.
type Evaluator struct {
	cache               *applicationCache
	overrides           *decodeOverrideTable
	logger              *slog.Logger
	cacheWriteThreshold time.Duration
	maxEnvSize          int

	// pollHook, if set, is consulted at the start of every dispatch and
	// may return ErrorKind Cancelled to cooperatively abort evaluation
	// (§5). It is the only permitted interrupt point.
	pollHook func(context.Context) error
}

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithDecodeOverrides installs a host-supplied table mapping specific
// encoded function values to native Delegating shortcuts.
func WithDecodeOverrides(overrides map[value.Value]*syntax.Delegating) Option {
	return func(e *Evaluator) { e.overrides = newDecodeOverrideTable(overrides) }
}

// WithCacheWriteThreshold sets the minimum evaluation duration (§9)
// before a DecodeAndEvaluate result is inserted into the cache.
// Default 4ms, matching the heuristic copied from the source.
func WithCacheWriteThreshold(d time.Duration) Option {
	return func(e *Evaluator) { e.cacheWriteThreshold = d }
}

// WithLogger installs a logger for cache and override diagnostics,
// overriding the slog.Default() used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) { e.logger = l }
}

// WithPollHook installs a cooperative cancellation hook (§5, §7).
func WithPollHook(hook func(context.Context) error) Option {
	return func(e *Evaluator) { e.pollHook = hook }
}

// New constructs an Evaluator with its memoization cache empty.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		cache:               newApplicationCache(),
		logger:              slog.Default(),
		cacheWriteThreshold: 4 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CacheSize reports the number of entries currently in the
// memoization cache.
func (e *Evaluator) CacheSize() int { return e.cache.size }

// CacheLookupCount reports the number of cache lookups performed so
// far across this Evaluator's lifetime.
func (e *Evaluator) CacheLookupCount() int { return e.cache.lookups }

// MaxEnvSize reports, for diagnostics (§3, §6), the larger of the
// largest environment value (by element/byte count) this Evaluator has
// observed as an Environment expression's result and the largest
// argument length stored in the cache.
func (e *Evaluator) MaxEnvSize() int {
	if e.cache.maxArgLen > e.maxEnvSize {
		return e.cache.maxArgLen
	}
	return e.maxEnvSize
}

// Evaluate is the evaluator's central entry point (§4.3, §6).
func (e *Evaluator) Evaluate(ctx context.Context, expr syntax.Expr, env value.Value) (value.Value, error) {
	if e.pollHook != nil {
		if err := e.pollHook(ctx); err != nil {
			return nil, pineerrors.Wrapf(err, "evaluate")
		}
	}

	switch x := expr.(type) {
	case *syntax.Literal:
		return x.Value, nil

	case *syntax.List:
		elems := make([]value.Value, len(x.Elements))
		for i, sub := range x.Elements {
			v, err := e.Evaluate(ctx, sub, env)
			if err != nil {
				return nil, pineerrors.Wrapf(err, "list element [%d]", i)
			}
			elems[i] = v
		}
		return value.NewList(elems), nil

	case *syntax.Environment:
		if n := envSize(env); n > e.maxEnvSize {
			e.maxEnvSize = n
		}
		return env, nil

	case *syntax.Conditional:
		c, err := e.Evaluate(ctx, x.Condition, env)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "conditional condition")
		}
		if syntax.IsTrue(c) {
			v, err := e.Evaluate(ctx, x.IfTrue, env)
			if err != nil {
				return nil, pineerrors.Wrapf(err, "conditional ifTrue")
			}
			return v, nil
		}
		v, err := e.Evaluate(ctx, x.IfFalse, env)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "conditional ifFalse")
		}
		return v, nil

	case *syntax.KernelApplication:
		arg, err := e.Evaluate(ctx, x.Argument, env)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "kernel application argument")
		}
		fn, err := kernel.Lookup(x.Function)
		if err != nil {
			return nil, err
		}
		result, err := fn(arg)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "kernel application %q", x.Function)
		}
		return result, nil

	case *syntax.DecodeAndEvaluate:
		return e.evalDecodeAndEvaluate(ctx, x, env)

	case *syntax.StringTag:
		v, err := e.Evaluate(ctx, x.Tagged, env)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "string tag %q", x.Tag)
		}
		return v, nil

	case *syntax.Delegating:
		v, err := x.Fn(env)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "delegating %q", x.Name)
		}
		return v, nil

	default:
		return nil, pineerrors.Newf(pineerrors.Internal, "unreachable expression variant %T", expr)
	}
}

func (e *Evaluator) evalDecodeAndEvaluate(ctx context.Context, x *syntax.DecodeAndEvaluate, env value.Value) (value.Value, error) {
	fv, err := e.Evaluate(ctx, x.Expression, env)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "decode-and-evaluate expression")
	}

	fnExpr, err := e.decodeFunctionExpr(fv)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "decode-and-evaluate expression")
	}

	av, err := e.Evaluate(ctx, x.Environment, env)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "decode-and-evaluate environment")
	}

	if cached, ok := e.cache.get(fv, av); ok {
		e.logger.Debug("pine: application cache hit", "cache_size", e.cache.size)
		return cached, nil
	}

	start := time.Now()
	result, err := e.Evaluate(ctx, fnExpr, av)
	if err != nil {
		return nil, err
	}
	if time.Since(start) >= e.cacheWriteThreshold {
		e.cache.put(fv, av, result)
		e.logger.Debug("pine: application cache store", "cache_size", e.cache.size)
	}
	return result, nil
}

// decodeFunctionExpr consults the decode-override table before falling
// back to syntax.Decode, per §4.3.
func (e *Evaluator) decodeFunctionExpr(fv value.Value) (syntax.Expr, error) {
	if d, ok := e.overrides.lookup(fv); ok {
		return d, nil
	}
	return syntax.Decode(fv)
}

func envSize(v value.Value) int {
	switch x := v.(type) {
	case *value.Blob:
		return x.Len()
	case *value.List:
		return x.Len()
	default:
		return 0
	}
}
