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
	"sort"

	"github.com/pine-vm/pine/value"
)

// CompareInt defines the total ordering used by is_sorted_ascending_int
// (§4.4): blob-blob compares as signed integers (non-decodable blobs
// compare equal among themselves and less than any decodable blob);
// list-list compares by length; blob is always less than list.
func CompareInt(a, b value.Value) int {
	ab, aIsBlob := a.(*value.Blob)
	bb, bIsBlob := b.(*value.Blob)

	switch {
	case aIsBlob && bIsBlob:
		an, aErr := value.IntFromBlob(ab)
		bn, bErr := value.IntFromBlob(bb)
		switch {
		case aErr != nil && bErr != nil:
			return 0
		case aErr != nil:
			return -1
		case bErr != nil:
			return 1
		default:
			return an.Cmp(bn)
		}
	case aIsBlob && !bIsBlob:
		return -1
	case !aIsBlob && bIsBlob:
		return 1
	default:
		al := a.(*value.List).Len()
		bl := b.(*value.List).Len()
		switch {
		case al < bl:
			return -1
		case al > bl:
			return 1
		default:
			return 0
		}
	}
}

func isSortedAscendingInt(v value.Value) (value.Value, error) {
	l, ok := v.(*value.List)
	if !ok {
		return boolValue(false), nil
	}
	elems := l.Elems()
	sorted := sort.SliceIsSorted(elems, func(i, j int) bool {
		return CompareInt(elems[i], elems[j]) < 0
	})
	return boolValue(sorted), nil
}
