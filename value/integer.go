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

import (
	"math/big"

	pineerrors "github.com/pine-vm/pine/errors"
)

// Sign bytes used as the first byte of an integer-encoded Blob.
const (
	signPositive byte = 0x00
	signNegative byte = 0x04
)

// BlobFromInt encodes n as a Blob: a sign byte (0x00 non-negative,
// 0x04 negative) followed by the big-endian minimal-magnitude byte
// sequence of |n|. When n falls within one of the interning tables
// (§4.5 point 5) it returns the shared Blob instead of a fresh one, so
// Equal's pointer check short-circuits for popular values.
func BlobFromInt(n *big.Int) *Blob {
	if n.IsInt64() {
		return BlobFromInt64(n.Int64())
	}
	return blobFromIntRaw(n)
}

// blobFromIntRaw is the uninterned encode path, used directly by the
// interning tables themselves to avoid consulting a table while it is
// still being built.
func blobFromIntRaw(n *big.Int) *Blob {
	sign := signPositive
	if n.Sign() < 0 {
		sign = signNegative
	}
	mag := new(big.Int).Abs(n).Bytes() // already minimal big-endian magnitude
	out := make([]byte, 0, 1+len(mag))
	out = append(out, sign)
	out = append(out, mag...)
	return NewBlob(out)
}

// IntFromBlob decodes b as a signed integer. It rejects blobs of
// length 0 and blobs whose sign byte is outside {0x00, 0x04}.
func IntFromBlob(b *Blob) (*big.Int, error) {
	raw := b.bytes
	if len(raw) == 0 {
		return nil, pineerrors.Newf(pineerrors.Decode, "cannot decode empty blob as integer")
	}
	sign := raw[0]
	if sign != signPositive && sign != signNegative {
		return nil, pineerrors.Newf(pineerrors.Decode, "invalid sign byte 0x%02x decoding integer", sign)
	}
	n := new(big.Int).SetBytes(raw[1:])
	if sign == signNegative {
		n.Neg(n)
	}
	return n, nil
}

// IntFromBlobValue is a convenience wrapper over IntFromBlob for
// callers holding a Value known to be a *Blob.
func IntFromBlobValue(v Value) (*big.Int, error) {
	b, ok := v.(*Blob)
	if !ok {
		return nil, pineerrors.Newf(pineerrors.Decode, "cannot decode %s as integer", v.Kind())
	}
	return IntFromBlob(b)
}

// BlobFromInt64 is a convenience wrapper over BlobFromInt for small,
// statically known integers. It consults the small-integer and
// low-codepoint interning tables before falling back to a fresh
// encode.
func BlobFromInt64(n int64) *Blob {
	if b, ok := InternedInt(n); ok {
		return b
	}
	if n >= 0 && n < internCodepointHigh {
		if b, ok := InternedCodepoint(rune(n)); ok {
			return b
		}
	}
	return blobFromIntRaw(big.NewInt(n))
}
