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

// Package cryptohash adapts cryptographic digest contexts from the Go
// crypto libraries (crypto/sha256 and friends, golang.org/x/crypto blake2b
// and sha3) to the streaming hasher contract.
//
// Each hasher owns exactly one digest context through a Handle, resolved
// from an algorithm name at construction time. An unknown name fails
// construction; a hasher is never created in an unusable state.
package cryptohash

import (
	hashengines "github.com/mincardona/xmphash/pkg/hashing/engines"
)

// engine delegates the accumulator operations to the crypto context owned
// by its handle. The finalize-once state machine lives in hashengines, not
// here.
type engine struct {
	handle *Handle
}

var _ hashengines.Engine = (*engine)(nil)

// New returns a hasher for the named cryptographic algorithm, e.g.
// "sha256" or "blake2b". The name is case-sensitive. An unrecognized name
// or a context initialization failure is returned as an error and no hasher
// is created.
func New(algorithm string) (hashengines.StreamingHasher, error) {
	handle, err := resolve(algorithm)
	if err != nil {
		return nil, err
	}
	return hashengines.NewHasher(&engine{handle: handle}), nil
}

// SupportedAlgorithms returns the names this package can resolve. The
// global registry is the usual lookup surface; this exists for tests and
// documentation.
func SupportedAlgorithms() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}

func (e *engine) Consume(data []byte) error {
	return e.handle.Write(data)
}

func (e *engine) Sum(buf []byte) error {
	return e.handle.SumInto(buf)
}

func (e *engine) Reset() error {
	return e.handle.Reset()
}

func (e *engine) Clone() (hashengines.Engine, error) {
	handle, err := e.handle.Clone()
	if err != nil {
		return nil, err
	}
	return &engine{handle: handle}, nil
}

func (e *engine) DigestSize() int {
	return e.handle.Size()
}

func (e *engine) Name() string {
	return e.handle.Algorithm()
}

func init() {
	for name, entry := range catalog {
		name := name
		hashengines.MustRegister(name, entry.size, func() (hashengines.StreamingHasher, error) {
			return New(name)
		})
	}
}
