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

import "github.com/pine-vm/pine/value"

// cacheEntry is one function-application cache entry (§3): a
// (function-value, argument-value) key mapped to the resulting value.
type cacheEntry struct {
	fn     value.Value
	arg    value.Value
	result value.Value
}

// applicationCache is the evaluator's memoization cache. It is never
// invalidated — DecodeAndEvaluate is pure, so a given (fn, arg) pair
// always yields the same result — and grows unboundedly in this base
// implementation (§9: an LRU cap is a production concern, not a
// semantic one; eviction, if added, must not change results).
type applicationCache struct {
	buckets map[uint64][]cacheEntry

	size      int
	lookups   int
	maxArgLen int
}

func newApplicationCache() *applicationCache {
	return &applicationCache{buckets: make(map[uint64][]cacheEntry)}
}

func cacheKeyHash(fn, arg value.Value) uint64 {
	// Combine the two hashes by XOR after a multiplicative spread of
	// the first, so that swapping fn and arg (which would
	// be a different, meaningless key) does not collide trivially.
	h := value.Hash(fn)
	return h*1099511628211 ^ value.Hash(arg)
}

func (c *applicationCache) get(fn, arg value.Value) (value.Value, bool) {
	c.lookups++
	key := cacheKeyHash(fn, arg)
	for _, e := range c.buckets[key] {
		if value.Equal(e.fn, fn) && value.Equal(e.arg, arg) {
			return e.result, true
		}
	}
	return nil, false
}

func (c *applicationCache) put(fn, arg, result value.Value) {
	key := cacheKeyHash(fn, arg)
	for _, e := range c.buckets[key] {
		if value.Equal(e.fn, fn) && value.Equal(e.arg, arg) {
			return
		}
	}
	c.buckets[key] = append(c.buckets[key], cacheEntry{fn: fn, arg: arg, result: result})
	c.size++
	if argLen := collLen(arg); argLen > c.maxArgLen {
		c.maxArgLen = argLen
	}
}

func collLen(v value.Value) int {
	switch x := v.(type) {
	case *value.Blob:
		return x.Len()
	case *value.List:
		return x.Len()
	default:
		return 0
	}
}
