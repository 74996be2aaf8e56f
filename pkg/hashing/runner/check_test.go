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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mincardona/xmphash/pkg/config"
)

func TestParseExpectations(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{name: "single pair", spec: "crc32=cbf43926"},
		{
			name: "multiple pairs",
			spec: "crc32=cbf43926,sha256=15e2b0d3c33891ebb0f1ef609ec419420c20e320ce94c65fbc8c3312448eb225",
		},
		{name: "uppercase hex accepted", spec: "crc32=CBF43926"},
		{name: "empty spec", spec: "", wantErr: true},
		{name: "missing equals", spec: "crc32", wantErr: true},
		{name: "empty name", spec: "=cbf43926", wantErr: true},
		{name: "unknown algorithm", spec: "whirlpool=00", wantErr: true},
		{name: "odd hex length", spec: "crc32=cbf4392", wantErr: true},
		{name: "non-hex digest", spec: "crc32=cbf4392g", wantErr: true},
		{name: "wrong digest length", spec: "crc32=cbf439", wantErr: true},
		{name: "trailing comma", spec: "crc32=cbf43926,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exps, err := ParseExpectations(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseExpectations(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if !tt.wantErr && len(exps) == 0 {
				t.Error("ParseExpectations() returned no expectations without error")
			}
		})
	}
}

func TestParseExpectations_DecodesDigest(t *testing.T) {
	exps, err := ParseExpectations("crc32=CBF43926")
	if err != nil {
		t.Fatalf("ParseExpectations() error = %v", err)
	}
	if exps[0].Algorithm != "crc32" {
		t.Errorf("Algorithm = %q, want %q", exps[0].Algorithm, "crc32")
	}
	if want := []byte{0xcb, 0xf4, 0x39, 0x26}; !bytes.Equal(exps[0].Digest, want) {
		t.Errorf("Digest = % x, want % x", exps[0].Digest, want)
	}
}

func checkFile(t *testing.T, spec string, input string) []CheckResult {
	t.Helper()

	exps, err := ParseExpectations(spec)
	if err != nil {
		t.Fatalf("ParseExpectations() error = %v", err)
	}

	cfg := config.NewHashingConfig().WithAlgorithms(Algorithms(exps)...)
	r, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	results, err := r.Run(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	checks, err := Compare(results, exps)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	return checks
}

func TestCompare_AllMatch(t *testing.T) {
	checks := checkFile(t,
		"crc32=cbf43926,sha256=15e2b0d3c33891ebb0f1ef609ec419420c20e320ce94c65fbc8c3312448eb225",
		"123456789")

	for _, c := range checks {
		if !c.Match {
			t.Errorf("%s: Match = false, want true", c.Algorithm)
		}
	}
}

func TestCompare_Mismatch(t *testing.T) {
	checks := checkFile(t, "crc32=00000000,sha256=15e2b0d3c33891ebb0f1ef609ec419420c20e320ce94c65fbc8c3312448eb225",
		"123456789")

	if checks[0].Match {
		t.Error("crc32: Match = true for wrong digest")
	}
	if !checks[1].Match {
		t.Error("sha256: Match = false for correct digest")
	}
}

func TestCompare_LengthMismatch(t *testing.T) {
	exps, err := ParseExpectations("crc32=cbf43926")
	if err != nil {
		t.Fatalf("ParseExpectations() error = %v", err)
	}
	if _, err := Compare(nil, exps); err == nil {
		t.Error("Compare() with mismatched lengths succeeded, want error")
	}
}
