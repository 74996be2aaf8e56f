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

package runner

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mincardona/xmphash/pkg/hashing/digests"
	hashengines "github.com/mincardona/xmphash/pkg/hashing/engines"
)

// Expectation is one parsed "name=hexdigest" pair from a check invocation.
type Expectation struct {
	// Algorithm is the case-sensitive algorithm name.
	Algorithm string
	// Digest is the decoded expected digest value.
	Digest []byte
}

// CheckResult reports whether one computed digest matched its expectation.
type CheckResult struct {
	// Algorithm is the algorithm name the comparison was made for.
	Algorithm string
	// Match is true when the computed digest equals the expected one.
	Match bool
}

// ParseExpectations parses a comma-separated list of "name=hexdigest"
// pairs, e.g. "crc32=cbf43926,sha256=e3b0...". Every pair is validated
// before any hashing starts: the algorithm must be registered, the digest
// must be valid hex of exactly the algorithm's digest size. Both hex cases
// are accepted.
func ParseExpectations(spec string) ([]Expectation, error) {
	if spec == "" {
		return nil, fmt.Errorf("no digest expectations given")
	}

	parts := strings.Split(spec, ",")
	expectations := make([]Expectation, 0, len(parts))
	for _, part := range parts {
		name, hexDigest, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("malformed expectation %q: want name=hexdigest", part)
		}
		if name == "" {
			return nil, fmt.Errorf("malformed expectation %q: empty algorithm name", part)
		}

		size, err := hashengines.DigestSize(name)
		if err != nil {
			return nil, err
		}

		value, err := hex.DecodeString(strings.ToLower(hexDigest))
		if err != nil {
			return nil, fmt.Errorf("malformed digest for %q: %w", name, err)
		}
		if len(value) != size {
			return nil, fmt.Errorf("digest for %q is %d bytes, want %d", name, len(value), size)
		}

		expectations = append(expectations, Expectation{Algorithm: name, Digest: value})
	}
	return expectations, nil
}

// Algorithms returns the algorithm names of the expectations, in order.
func Algorithms(expectations []Expectation) []string {
	names := make([]string, len(expectations))
	for i, e := range expectations {
		names[i] = e.Algorithm
	}
	return names
}

// Compare matches computed results against expectations pairwise. The two
// slices must line up, which they do when the Runner was built from
// Algorithms(expectations). Digest comparison is constant-time.
func Compare(results []Result, expectations []Expectation) ([]CheckResult, error) {
	if len(results) != len(expectations) {
		return nil, fmt.Errorf("have %d results for %d expectations", len(results), len(expectations))
	}

	checks := make([]CheckResult, len(results))
	for i, res := range results {
		exp := expectations[i]
		if res.Algorithm != exp.Algorithm {
			return nil, fmt.Errorf("result %d is for %q, expected %q", i, res.Algorithm, exp.Algorithm)
		}
		checks[i] = CheckResult{
			Algorithm: exp.Algorithm,
			Match:     digests.EqualValues(res.Digest.Value(), exp.Digest),
		}
	}
	return checks, nil
}
