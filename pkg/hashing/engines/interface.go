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

// Package hashengines defines the streaming hasher contract shared by every
// digest algorithm, along with the registry that maps algorithm names to
// implementations.
//
// A StreamingHasher is a sequential accumulator with two states, Active and
// Finalized. Consume only works while Active, Finalize is the single
// transition from Active to Finalized, and Reset returns the hasher to
// Active with a fresh accumulator. The state machine is enforced once, in
// this package, so algorithm implementations only provide the arithmetic.
//
// A single hasher must not be used from multiple goroutines concurrently.
// Distinct hashers share no mutable state and may run in parallel over the
// same input.
package hashengines

import (
	"errors"

	"github.com/mincardona/xmphash/pkg/hashing/digests"
)

// Errors returned by the shared hasher state machine. Engine-specific
// failures are returned as distinct errors by the underlying engine and
// wrapped where useful; callers can test for these with errors.Is.
var (
	// ErrFinalized is returned by Consume and Finalize after a successful
	// Finalize, until the hasher is Reset.
	ErrFinalized = errors.New("hasher is already finalized")

	// ErrShortBuffer is returned by Finalize when the destination buffer is
	// nil or smaller than DigestSize.
	ErrShortBuffer = errors.New("buffer is smaller than the digest size")
)

// StreamingHasher is the uniform incremental interface over every supported
// digest algorithm, whether computed locally (crc32) or by delegating to a
// crypto library engine (sha256, blake2b, ...).
type StreamingHasher interface {
	// Consume appends data to the accumulator. It may be called any number
	// of times before Finalize, with chunks of any size including zero; the
	// final digest depends only on the concatenation of all chunks. Returns
	// ErrFinalized if the hasher has been finalized and not reset.
	Consume(data []byte) error

	// Finalize computes the digest into buf, writing exactly DigestSize
	// bytes, and moves the hasher to the Finalized state. It fails with
	// ErrShortBuffer if len(buf) < DigestSize and with ErrFinalized if the
	// digest was already produced; in both cases nothing is written and the
	// accumulator is unchanged.
	Finalize(buf []byte) error

	// Compute is a convenience wrapper around Finalize that allocates the
	// buffer and packages the result with the algorithm name. It observes
	// the same state machine as Finalize.
	Compute() (digests.Digest, error)

	// Reset reinitializes the accumulator to the algorithm's initial value
	// and returns the hasher to the Active state. Reset after Finalize makes
	// the hasher behave as newly constructed.
	Reset() error

	// Clone returns an independent hasher carrying the same accumulated
	// state, including whether it is finalized. Feeding the clone does not
	// affect the original. Fails if the underlying engine's state cannot be
	// duplicated.
	Clone() (StreamingHasher, error)

	// DigestSize returns the fixed output length in bytes. It is valid in
	// any state and constant for the life of the hasher.
	DigestSize() int

	// Name returns the display identifier of the algorithm, e.g. "crc32".
	Name() string
}

// Engine is the algorithm-side contract. Implementations hold only the
// accumulator; the finalize-once bookkeeping is layered on top by NewHasher
// and never duplicated per algorithm.
type Engine interface {
	// Consume folds data into the accumulator. Never called after a
	// successful Sum until Reset.
	Consume(data []byte) error

	// Sum writes the current digest into buf, which is guaranteed by the
	// caller to be exactly DigestSize bytes. Sum must not mutate the
	// accumulator, so a failed surrounding Finalize leaves the engine
	// usable.
	Sum(buf []byte) error

	// Reset restores the accumulator to the algorithm's initial value.
	Reset() error

	// Clone returns an independent engine with equivalent accumulator state.
	Clone() (Engine, error)

	// DigestSize returns the fixed output length in bytes.
	DigestSize() int

	// Name returns the algorithm's display identifier.
	Name() string
}

// stateHasher wraps an Engine with the Active/Finalized state machine. It is
// the only place the finalized flag exists.
type stateHasher struct {
	engine    Engine
	finalized bool
}

var _ StreamingHasher = (*stateHasher)(nil)

// NewHasher wraps an algorithm engine in the shared state machine. Algorithm
// packages call this from their constructors; drivers normally go through
// Create instead.
func NewHasher(e Engine) StreamingHasher {
	return &stateHasher{engine: e}
}

func (h *stateHasher) Consume(data []byte) error {
	if h.finalized {
		return ErrFinalized
	}
	if len(data) == 0 {
		return nil
	}
	return h.engine.Consume(data)
}

func (h *stateHasher) Finalize(buf []byte) error {
	if h.finalized {
		return ErrFinalized
	}
	size := h.engine.DigestSize()
	if len(buf) < size {
		return ErrShortBuffer
	}
	if err := h.engine.Sum(buf[:size]); err != nil {
		return err
	}
	h.finalized = true
	return nil
}

func (h *stateHasher) Compute() (digests.Digest, error) {
	buf := make([]byte, h.engine.DigestSize())
	if err := h.Finalize(buf); err != nil {
		return digests.Digest{}, err
	}
	return digests.NewDigest(h.engine.Name(), buf), nil
}

func (h *stateHasher) Reset() error {
	if err := h.engine.Reset(); err != nil {
		return err
	}
	h.finalized = false
	return nil
}

func (h *stateHasher) Clone() (StreamingHasher, error) {
	e, err := h.engine.Clone()
	if err != nil {
		return nil, err
	}
	return &stateHasher{engine: e, finalized: h.finalized}, nil
}

func (h *stateHasher) DigestSize() int {
	return h.engine.DigestSize()
}

func (h *stateHasher) Name() string {
	return h.engine.Name()
}
