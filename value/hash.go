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

package value

import "hash/maphash"

// processSeed is fixed for the lifetime of the process so that Hash is
// stable across repeated calls within one run, as required by §4.1.
// Pine values are never hashed across processes (the cache and
// interning tables are process-local), so stability need not extend
// further than that.
var processSeed = maphash.MakeSeed()

// blobTag and listTag separate the hash spaces of the two Kinds so that
// an empty blob and an empty list, which compare unequal, also hash
// differently.
const (
	blobTag byte = 0
	listTag byte = 1
)

// Hash returns a structural hash of v: equal values (per Equal) always
// share a hash. Blob hashes its bytes; List hashes the contents of its
// elements, in order, into the same hash. Interned values (§4.5 point 5) look up a
// precomputed hash by pointer instead of rehashing their bytes.
func Hash(v Value) uint64 {
	switch x := v.(type) {
	case *Blob:
		if h, ok := internedBlobHashes[x]; ok {
			return h
		}
	case *List:
		if h, ok := internedListHashes[x]; ok {
			return h
		}
	}
	var h maphash.Hash
	h.SetSeed(processSeed)
	hashInto(&h, v)
	return h.Sum64()
}

func computeHash(v Value) uint64 {
	var h maphash.Hash
	h.SetSeed(processSeed)
	hashInto(&h, v)
	return h.Sum64()
}

func hashInto(h *maphash.Hash, v Value) {
	switch x := v.(type) {
	case *Blob:
		h.WriteByte(blobTag)
		h.Write(x.bytes)
	case *List:
		h.WriteByte(listTag)
		for _, e := range x.elems {
			hashInto(h, e)
		}
	}
}
