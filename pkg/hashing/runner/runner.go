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

// Package runner drives a set of heterogeneous hashers over one input
// stream. It reads the stream in bounded chunks and feeds each chunk to
// every hasher, so arbitrarily large inputs are processed in constant
// memory and all digests come from a single pass.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/mincardona/xmphash/pkg/config"
	"github.com/mincardona/xmphash/pkg/hashing/digests"
	hashengines "github.com/mincardona/xmphash/pkg/hashing/engines"
	"github.com/mincardona/xmphash/pkg/logging"
)

// StdinPath is the file argument that selects standard input.
const StdinPath = "-"

// Result is one finalized digest from a run, in the order the algorithms
// were configured.
type Result struct {
	// Algorithm is the display name of the hasher that produced the digest.
	Algorithm string
	// Digest is the finalized digest value.
	Digest digests.Digest
}

// Runner feeds one input stream to a fixed set of hashers. A Runner is
// reusable across inputs via Reset, but must not be used from multiple
// goroutines at once; each hasher it owns is fed from exactly one goroutine
// per chunk.
type Runner struct {
	hashers   []hashengines.StreamingHasher
	chunkSize int
	logger    logging.Logger
}

// New builds a Runner from the hashing configuration. Each configured
// algorithm gets its own hasher; duplicate names get independent instances.
func New(cfg *config.HashingConfig, logger logging.Logger) (*Runner, error) {
	hashers, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &Runner{
		hashers:   hashers,
		chunkSize: cfg.ChunkSize(),
		logger:    logging.EnsureLogger(logger),
	}, nil
}

// Algorithms returns the hasher names in run order.
func (r *Runner) Algorithms() []string {
	names := make([]string, len(r.hashers))
	for i, h := range r.hashers {
		names[i] = h.Name()
	}
	return names
}

// Run streams src through every hasher and finalizes them all. Each chunk
// is handed to all hashers concurrently; the hashers share no state, so no
// locking is involved. Cancellation is checked between chunks: an expired
// context aborts the run with the context's error.
//
// After a successful Run the hashers are finalized; call Reset before
// reusing the Runner.
func (r *Runner) Run(ctx context.Context, src io.Reader) ([]Result, error) {
	buf := make([]byte, r.chunkSize)
	var total int64

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			total += int64(n)
			if err := r.consumeChunk(buf[:n]); err != nil {
				return nil, err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed while reading input: %w", readErr)
		}
	}

	r.logger.Debug("consumed %d bytes across %d hashers", total, len(r.hashers))

	results := make([]Result, 0, len(r.hashers))
	for _, h := range r.hashers {
		d, err := h.Compute()
		if err != nil {
			return nil, fmt.Errorf("failed to finalize hasher %q: %w", h.Name(), err)
		}
		results = append(results, Result{Algorithm: h.Name(), Digest: d})
	}
	return results, nil
}

// consumeChunk fans one chunk out to every hasher in parallel. The chunk is
// read-only to the hashers, so sharing the buffer is safe; the buffer is
// not reused until Wait returns.
func (r *Runner) consumeChunk(chunk []byte) error {
	if len(r.hashers) == 1 {
		// Not worth a goroutine for a single hasher.
		h := r.hashers[0]
		if err := h.Consume(chunk); err != nil {
			return fmt.Errorf("hasher %q failed to consume data: %w", h.Name(), err)
		}
		return nil
	}

	var g errgroup.Group
	for _, h := range r.hashers {
		h := h
		g.Go(func() error {
			if err := h.Consume(chunk); err != nil {
				return fmt.Errorf("hasher %q failed to consume data: %w", h.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}

// RunFile hashes the named file, or standard input if path is StdinPath.
func (r *Runner) RunFile(ctx context.Context, path string) ([]Result, error) {
	if path == StdinPath {
		return r.Run(ctx, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	return r.Run(ctx, f)
}

// Reset returns every hasher to its initial Active state so the Runner can
// process another input.
func (r *Runner) Reset() error {
	for _, h := range r.hashers {
		if err := h.Reset(); err != nil {
			return fmt.Errorf("failed to reset hasher %q: %w", h.Name(), err)
		}
	}
	return nil
}
