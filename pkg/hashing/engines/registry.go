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
	"fmt"
	"sort"
	"sync"
)

// HasherFactory creates a fresh hasher in the Active state.
type HasherFactory func() (StreamingHasher, error)

var (
	registry = make(map[string]registration)
	mu       sync.RWMutex
)

type registration struct {
	factory    HasherFactory
	digestSize int
}

// crc32DigestSize is the smallest digest any algorithm in this tool
// produces; MaxDigestSize never reports less, so a buffer of that size fits
// every digest even before any algorithm is registered.
const crc32DigestSize = 4

// Register adds a hasher factory under the given algorithm name. Names are
// case-sensitive. digestSize is the fixed output length of the algorithm and
// must match what the produced hashers report. Registering a name twice is
// an error.
func Register(algorithm string, digestSize int, factory HasherFactory) error {
	mu.Lock()
	defer mu.Unlock()

	if algorithm == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}
	if digestSize <= 0 {
		return fmt.Errorf("digest size must be positive, got %d", digestSize)
	}
	if _, exists := registry[algorithm]; exists {
		return fmt.Errorf("hash algorithm %q already registered", algorithm)
	}

	registry[algorithm] = registration{factory: factory, digestSize: digestSize}
	return nil
}

// MustRegister registers a hasher factory or panics. Intended for package
// init, where a failure is a programming error.
func MustRegister(algorithm string, digestSize int, factory HasherFactory) {
	if err := Register(algorithm, digestSize, factory); err != nil {
		panic(fmt.Sprintf("failed to register hash algorithm %q: %v", algorithm, err))
	}
}

// Create returns a fresh hasher for the named algorithm. An unrecognized
// name is an error listing the supported algorithms; no default is ever
// substituted.
func Create(algorithm string) (StreamingHasher, error) {
	mu.RLock()
	reg, exists := registry[algorithm]
	mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unsupported hash algorithm: %s (supported: %v)",
			algorithm, SupportedAlgorithms())
	}

	h, err := reg.factory()
	if err != nil {
		return nil, fmt.Errorf("failed to create hasher for %q: %w", algorithm, err)
	}
	return h, nil
}

// SupportedAlgorithms returns the sorted list of registered algorithm names.
func SupportedAlgorithms() []string {
	mu.RLock()
	defer mu.RUnlock()

	algorithms := make([]string, 0, len(registry))
	for algo := range registry {
		algorithms = append(algorithms, algo)
	}
	sort.Strings(algorithms)
	return algorithms
}

// IsSupported reports whether the named algorithm is registered.
func IsSupported(algorithm string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, exists := registry[algorithm]
	return exists
}

// DigestSize returns the output length in bytes of the named algorithm
// without constructing a hasher, or an error for an unrecognized name.
func DigestSize(algorithm string) (int, error) {
	mu.RLock()
	reg, exists := registry[algorithm]
	mu.RUnlock()

	if !exists {
		return 0, fmt.Errorf("unsupported hash algorithm: %s (supported: %v)",
			algorithm, SupportedAlgorithms())
	}
	return reg.digestSize, nil
}

// MaxDigestSize returns the largest digest size across all registered
// algorithms, and never less than the CRC32 size. Callers can size one
// output buffer for any algorithm they may select.
func MaxDigestSize() int {
	mu.RLock()
	defer mu.RUnlock()

	max := crc32DigestSize
	for _, reg := range registry {
		if reg.digestSize > max {
			max = reg.digestSize
		}
	}
	return max
}

// Unregister removes an algorithm from the registry. Primarily useful in
// tests.
func Unregister(algorithm string) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[algorithm]; !exists {
		return fmt.Errorf("hash algorithm %q not registered", algorithm)
	}
	delete(registry, algorithm)
	return nil
}
