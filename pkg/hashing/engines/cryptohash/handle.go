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

package cryptohash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// catalogEntry describes one algorithm the crypto engine can resolve:
// its digest size and a constructor for a fresh context.
type catalogEntry struct {
	size    int
	newHash func() (hash.Hash, error)
}

// catalog maps case-sensitive algorithm names to their digest contexts.
// Populated once at init and read-only afterwards.
var catalog = map[string]catalogEntry{
	"md5":    {md5.Size, func() (hash.Hash, error) { return md5.New(), nil }},
	"sha1":   {sha1.Size, func() (hash.Hash, error) { return sha1.New(), nil }},
	"sha224": {sha256.Size224, func() (hash.Hash, error) { return sha256.New224(), nil }},
	"sha256": {sha256.Size, func() (hash.Hash, error) { return sha256.New(), nil }},
	"sha384": {sha512.Size384, func() (hash.Hash, error) { return sha512.New384(), nil }},
	"sha512": {sha512.Size, func() (hash.Hash, error) { return sha512.New(), nil }},
	"blake2b": {blake2b.Size, func() (hash.Hash, error) {
		return blake2b.New512(nil)
	}},
	"sha3-256": {32, func() (hash.Hash, error) { return sha3.New256(), nil }},
	"sha3-512": {64, func() (hash.Hash, error) { return sha3.New512(), nil }},
}

// Handle exclusively owns one opaque digest context. It is not safe to
// share a Handle between goroutines; Clone produces an independent context
// carrying the same accumulated state for that purpose.
//
// Handles are created through resolve, which separates the two construction
// failure modes: an unrecognized name (invalid argument, the algorithm
// simply does not exist) and a context initialization failure reported by
// the crypto library.
type Handle struct {
	algorithm string
	size      int
	newHash   func() (hash.Hash, error)
	h         hash.Hash
}

// resolve looks up the algorithm name and acquires an initialized context
// for it.
func resolve(algorithm string) (*Handle, error) {
	entry, ok := catalog[algorithm]
	if !ok {
		return nil, fmt.Errorf("unrecognized digest name %q", algorithm)
	}

	h, err := entry.newHash()
	if err != nil {
		return nil, fmt.Errorf("unable to initialize %s digest context: %w", algorithm, err)
	}

	return &Handle{
		algorithm: algorithm,
		size:      entry.size,
		newHash:   entry.newHash,
		h:         h,
	}, nil
}

// Write folds data into the owned context.
func (hd *Handle) Write(data []byte) error {
	_, err := hd.h.Write(data)
	return err
}

// SumInto writes the current digest into buf without disturbing the
// accumulated state. buf must be exactly Size bytes.
func (hd *Handle) SumInto(buf []byte) error {
	sum := hd.h.Sum(nil)
	if len(sum) != len(buf) {
		return fmt.Errorf("%s digest context produced %d bytes, expected %d",
			hd.algorithm, len(sum), len(buf))
	}
	copy(buf, sum)
	return nil
}

// Reset re-initializes the owned context for the same resolved algorithm,
// discarding accumulated state.
func (hd *Handle) Reset() error {
	hd.h.Reset()
	return nil
}

// Clone allocates a brand-new context and copies the accumulated state into
// it, so the two handles can diverge without affecting each other. The copy
// goes through the context's serialized state (encoding.BinaryMarshaler);
// every algorithm in the catalog supports this. A context that cannot be
// deep-copied is a hard error, since a half-copied context would be unsafe
// for both sides.
func (hd *Handle) Clone() (*Handle, error) {
	m, ok := hd.h.(encoding.BinaryMarshaler)
	if !ok {
		return nil, fmt.Errorf("%s digest context does not support state export", hd.algorithm)
	}
	state, err := m.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("export %s digest state: %w", hd.algorithm, err)
	}

	fresh, err := hd.newHash()
	if err != nil {
		return nil, fmt.Errorf("unable to initialize %s digest context: %w", hd.algorithm, err)
	}
	u, ok := fresh.(encoding.BinaryUnmarshaler)
	if !ok {
		return nil, fmt.Errorf("%s digest context does not support state import", hd.algorithm)
	}
	if err := u.UnmarshalBinary(state); err != nil {
		return nil, fmt.Errorf("import %s digest state: %w", hd.algorithm, err)
	}

	return &Handle{
		algorithm: hd.algorithm,
		size:      hd.size,
		newHash:   hd.newHash,
		h:         fresh,
	}, nil
}

// Algorithm returns the resolved algorithm name.
func (hd *Handle) Algorithm() string {
	return hd.algorithm
}

// Size returns the digest size in bytes of the resolved algorithm.
func (hd *Handle) Size() int {
	return hd.size
}
