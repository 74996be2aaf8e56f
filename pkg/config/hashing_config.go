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

// Package config holds the hashing run configuration built from CLI flags
// and turns it into a set of ready hashers.
package config

import (
	"fmt"

	hashengines "github.com/mincardona/xmphash/pkg/hashing/engines"
)

// DefaultChunkSize is the read buffer size used when none is configured.
const DefaultChunkSize = 4096

// HashingConfig describes one hashing run: which algorithms to compute and
// how the input is read. Customize via method chaining, then call Build.
type HashingConfig struct {
	// Algorithm names, in the order digests will be reported. Duplicates
	// are allowed; each occurrence gets its own independent hasher.
	algorithms []string

	// Read buffer size in bytes.
	chunkSize int

	// Whether input files are read in binary mode. Always true on
	// non-Windows platforms; retained for CLI compatibility.
	binaryMode bool

	// Whether output lines end in NUL instead of newline.
	zeroTerminate bool

	// Whether a failed file is skipped instead of aborting a multi-file
	// run.
	continueOnError bool
}

// NewHashingConfig creates a hashing configuration with defaults: no
// algorithms selected, 4KiB chunks, binary read mode, newline-terminated
// output.
func NewHashingConfig() *HashingConfig {
	return &HashingConfig{
		algorithms:      []string{},
		chunkSize:       DefaultChunkSize,
		binaryMode:      true,
		zeroTerminate:   false,
		continueOnError: false,
	}
}

// WithAlgorithms sets the algorithms to compute, replacing any previous
// selection. Names are case-sensitive and validated in Build.
func (c *HashingConfig) WithAlgorithms(names ...string) *HashingConfig {
	c.algorithms = append([]string{}, names...)
	return c
}

// WithChunkSize sets the read buffer size in bytes. Validated in Build.
func (c *HashingConfig) WithChunkSize(n int) *HashingConfig {
	c.chunkSize = n
	return c
}

// WithTextMode switches input reading to text mode.
func (c *HashingConfig) WithTextMode() *HashingConfig {
	c.binaryMode = false
	return c
}

// WithZeroTermination makes output lines end in NUL instead of newline.
func (c *HashingConfig) WithZeroTermination(zero bool) *HashingConfig {
	c.zeroTerminate = zero
	return c
}

// WithContinueOnError makes a multi-file run keep going past per-file
// failures.
func (c *HashingConfig) WithContinueOnError(keepGoing bool) *HashingConfig {
	c.continueOnError = keepGoing
	return c
}

// Algorithms returns the configured algorithm names.
func (c *HashingConfig) Algorithms() []string {
	return append([]string{}, c.algorithms...)
}

// ChunkSize returns the configured read buffer size.
func (c *HashingConfig) ChunkSize() int {
	return c.chunkSize
}

// BinaryMode reports whether input is read in binary mode.
func (c *HashingConfig) BinaryMode() bool {
	return c.binaryMode
}

// ZeroTerminate reports whether output lines end in NUL.
func (c *HashingConfig) ZeroTerminate() bool {
	return c.zeroTerminate
}

// ContinueOnError reports whether per-file failures are skipped.
func (c *HashingConfig) ContinueOnError() bool {
	return c.continueOnError
}

// Validate checks the configuration without building hashers.
func (c *HashingConfig) Validate() error {
	if len(c.algorithms) == 0 {
		return fmt.Errorf("no hash algorithms selected")
	}
	if c.chunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.chunkSize)
	}
	for _, name := range c.algorithms {
		if !hashengines.IsSupported(name) {
			return fmt.Errorf("unsupported hash algorithm: %s (supported: %v)",
				name, hashengines.SupportedAlgorithms())
		}
	}
	return nil
}

// Build validates the configuration and creates one fresh hasher per
// configured algorithm, in selection order.
func (c *HashingConfig) Build() ([]hashengines.StreamingHasher, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	hashers := make([]hashengines.StreamingHasher, 0, len(c.algorithms))
	for _, name := range c.algorithms {
		h, err := hashengines.Create(name)
		if err != nil {
			return nil, err
		}
		hashers = append(hashers, h)
	}
	return hashers, nil
}
