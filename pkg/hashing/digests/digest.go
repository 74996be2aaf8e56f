// Copyright 2026 The xmphash Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package digests provides the value type for computed message digests.
//
// A Digest pairs an algorithm name with the raw digest bytes. It is
// effectively immutable: fields are unexported and both the constructor and
// the byte accessor copy the underlying slice.
package digests

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Digest is a finalized message digest produced by a hasher.
//
// The zero value is an empty digest with no algorithm name; it is returned
// alongside a non-nil error by operations that fail.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest creates a Digest for the given algorithm and raw digest bytes.
// The value slice is copied so later mutation by the caller cannot be
// observed through the Digest.
func NewDigest(algorithm string, value []byte) Digest {
	cp := make([]byte, len(value))
	copy(cp, value)

	return Digest{
		algorithm: algorithm,
		value:     cp,
	}
}

// Algorithm returns the name of the algorithm that produced this digest,
// e.g. "crc32" or "sha256".
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	cp := make([]byte, len(d.value))
	copy(cp, d.value)
	return cp
}

// Hex returns the lowercase hexadecimal rendering of the digest bytes.
// For CRC32 digests the bytes are big-endian, so the hex string matches the
// conventional PNG/zlib presentation (e.g. "cbf43926" for "123456789").
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the length in bytes of the digest value.
func (d Digest) Size() int {
	return len(d.value)
}

// String returns "algorithm:hexvalue", e.g. "sha256:e3b0c442...".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether two digests have the same algorithm name and the
// same value. The value comparison runs in constant time so Equal is safe
// to use when checking untrusted input against an expected digest.
func (d Digest) Equal(other Digest) bool {
	if d.algorithm != other.algorithm {
		return false
	}
	return EqualValues(d.value, other.value)
}

// EqualValues compares two raw digest values in constant time.
func EqualValues(a, b []byte) bool {
	return len(a) == len(b) && subtle.ConstantTimeCompare(a, b) == 1
}
