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

package hashengines

import (
	"errors"
	"testing"
)

// stubEngine records calls so the tests can observe exactly what the state
// machine forwards to the algorithm side.
type stubEngine struct {
	consumed []byte
	sumErr   error
	resets   int
	sums     int
}

func (s *stubEngine) Consume(data []byte) error {
	s.consumed = append(s.consumed, data...)
	return nil
}

func (s *stubEngine) Sum(buf []byte) error {
	s.sums++
	if s.sumErr != nil {
		return s.sumErr
	}
	for i := range buf {
		buf[i] = byte(i)
	}
	return nil
}

func (s *stubEngine) Reset() error {
	s.resets++
	s.consumed = nil
	return nil
}

func (s *stubEngine) Clone() (Engine, error) {
	cp := *s
	cp.consumed = append([]byte(nil), s.consumed...)
	return &cp, nil
}

func (s *stubEngine) DigestSize() int { return 4 }
func (s *stubEngine) Name() string    { return "stub" }

func TestStateHasher_ZeroLengthConsumeSkipsEngine(t *testing.T) {
	e := &stubEngine{}
	h := NewHasher(e)

	if err := h.Consume(nil); err != nil {
		t.Fatalf("Consume(nil) error = %v", err)
	}
	if err := h.Consume([]byte{}); err != nil {
		t.Fatalf("Consume(empty) error = %v", err)
	}
	if len(e.consumed) != 0 {
		t.Errorf("engine saw %d bytes from empty consumes", len(e.consumed))
	}
}

func TestStateHasher_FinalizeTrimsBufferToDigestSize(t *testing.T) {
	e := &stubEngine{}
	h := NewHasher(e)

	// Oversized buffers are allowed; only the first DigestSize bytes are
	// written.
	buf := []byte{0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa}
	if err := h.Finalize(buf); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if buf[4] != 0xaa || buf[5] != 0xaa {
		t.Errorf("Finalize() wrote past DigestSize: % x", buf)
	}
}

func TestStateHasher_EngineSumFailureDoesNotFinalize(t *testing.T) {
	sumErr := errors.New("engine failure")
	e := &stubEngine{sumErr: sumErr}
	h := NewHasher(e)

	if err := h.Finalize(make([]byte, 4)); !errors.Is(err, sumErr) {
		t.Fatalf("Finalize() error = %v, want engine failure", err)
	}

	// The failed finalize must leave the hasher Active.
	e.sumErr = nil
	if err := h.Finalize(make([]byte, 4)); err != nil {
		t.Errorf("Finalize() after engine recovery: error = %v", err)
	}
}

func TestStateHasher_ResetReturnsToActive(t *testing.T) {
	e := &stubEngine{}
	h := NewHasher(e)

	if _, err := h.Compute(); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if err := h.Consume([]byte("x")); !errors.Is(err, ErrFinalized) {
		t.Fatalf("Consume() after Compute: error = %v, want ErrFinalized", err)
	}

	if err := h.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if e.resets != 1 {
		t.Errorf("engine resets = %d, want 1", e.resets)
	}
	if err := h.Consume([]byte("x")); err != nil {
		t.Errorf("Consume() after Reset: error = %v", err)
	}
	if _, err := h.Compute(); err != nil {
		t.Errorf("Compute() after Reset: error = %v", err)
	}
}

func TestStateHasher_CloneCarriesFinalizedFlag(t *testing.T) {
	h := NewHasher(&stubEngine{})
	if _, err := h.Compute(); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	clone, err := h.Clone()
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if err := clone.Consume([]byte("x")); !errors.Is(err, ErrFinalized) {
		t.Errorf("finalized clone accepted input: error = %v, want ErrFinalized", err)
	}

	// Resetting the clone must not reactivate the original.
	if err := clone.Reset(); err != nil {
		t.Fatalf("Reset(clone) error = %v", err)
	}
	if err := h.Consume([]byte("x")); !errors.Is(err, ErrFinalized) {
		t.Errorf("original reactivated by clone reset: error = %v, want ErrFinalized", err)
	}
}
