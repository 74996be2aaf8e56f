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

package config

import (
	"testing"

	_ "github.com/mincardona/xmphash/pkg/hashing/engines/crc32"
	_ "github.com/mincardona/xmphash/pkg/hashing/engines/cryptohash"
)

func TestNewHashingConfig_Defaults(t *testing.T) {
	c := NewHashingConfig()

	if got := c.ChunkSize(); got != DefaultChunkSize {
		t.Errorf("ChunkSize() = %d, want %d", got, DefaultChunkSize)
	}
	if !c.BinaryMode() {
		t.Error("BinaryMode() = false, want true")
	}
	if c.ZeroTerminate() {
		t.Error("ZeroTerminate() = true, want false")
	}
	if c.ContinueOnError() {
		t.Error("ContinueOnError() = true, want false")
	}
	if len(c.Algorithms()) != 0 {
		t.Errorf("Algorithms() = %v, want none", c.Algorithms())
	}
}

func TestHashingConfig_Chaining(t *testing.T) {
	c := NewHashingConfig().
		WithAlgorithms("crc32", "sha256").
		WithChunkSize(8192).
		WithTextMode().
		WithZeroTermination(true).
		WithContinueOnError(true)

	if got := c.Algorithms(); len(got) != 2 || got[0] != "crc32" || got[1] != "sha256" {
		t.Errorf("Algorithms() = %v, want [crc32 sha256]", got)
	}
	if got := c.ChunkSize(); got != 8192 {
		t.Errorf("ChunkSize() = %d, want 8192", got)
	}
	if c.BinaryMode() {
		t.Error("BinaryMode() = true after WithTextMode()")
	}
	if !c.ZeroTerminate() {
		t.Error("ZeroTerminate() = false, want true")
	}
	if !c.ContinueOnError() {
		t.Error("ContinueOnError() = false, want true")
	}
}

func TestHashingConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *HashingConfig
		wantErr bool
	}{
		{
			name:    "valid",
			cfg:     NewHashingConfig().WithAlgorithms("crc32"),
			wantErr: false,
		},
		{
			name:    "no algorithms",
			cfg:     NewHashingConfig(),
			wantErr: true,
		},
		{
			name:    "unknown algorithm",
			cfg:     NewHashingConfig().WithAlgorithms("crc32", "whirlpool"),
			wantErr: true,
		},
		{
			name:    "zero chunk size",
			cfg:     NewHashingConfig().WithAlgorithms("crc32").WithChunkSize(0),
			wantErr: true,
		},
		{
			name:    "negative chunk size",
			cfg:     NewHashingConfig().WithAlgorithms("crc32").WithChunkSize(-1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashingConfig_BuildCreatesIndependentHashers(t *testing.T) {
	// Duplicate names are computed independently, once per occurrence.
	c := NewHashingConfig().WithAlgorithms("crc32", "crc32", "sha256")

	hashers, err := c.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(hashers) != 3 {
		t.Fatalf("Build() returned %d hashers, want 3", len(hashers))
	}

	if err := hashers[0].Consume([]byte("only the first")); err != nil {
		t.Fatalf("Consume() error = %v", err)
	}

	d0, err := hashers[0].Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	d1, err := hashers[1].Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if d0.Equal(d1) {
		t.Error("hashers for duplicate algorithm names share state")
	}
	if got, want := d1.Hex(), "00000000"; got != want {
		t.Errorf("untouched crc32 digest = %q, want %q", got, want)
	}
}
