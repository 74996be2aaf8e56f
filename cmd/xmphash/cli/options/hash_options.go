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

package options

import (
	"github.com/mincardona/xmphash/pkg/config"
	"github.com/spf13/cobra"
)

// HashOptions defines flags for the hash command.
type HashOptions struct {
	ChunkSizeFlags

	// Binary requests binary read mode (the default).
	Binary bool
	// Text requests text read mode. Mutually exclusive with Binary.
	Text bool
	// ZeroTerminate ends each output line with NUL instead of newline.
	ZeroTerminate bool
	// ContinueOnError keeps hashing remaining inputs after one fails.
	ContinueOnError bool
}

var _ FlagAdder = (*HashOptions)(nil)

// AddFlags adds hash command flags to the cobra command. The binary and
// text flags both set the read mode, so passing both is rejected.
func (o *HashOptions) AddFlags(cmd *cobra.Command) {
	o.ChunkSizeFlags.AddFlags(cmd)

	cmd.Flags().BoolVarP(&o.Binary, "binary", "b", false,
		"Read inputs in binary mode. [default; no effect except on Windows]")
	cmd.Flags().BoolVarP(&o.Text, "text", "a", false,
		"Read inputs in text mode. [no effect except on Windows]")
	cmd.MarkFlagsMutuallyExclusive("binary", "text")

	cmd.Flags().BoolVarP(&o.ZeroTerminate, "zero", "z", false,
		"End each output line with NUL instead of newline.")
	cmd.Flags().BoolVar(&o.ContinueOnError, "continue", false,
		"Continue with remaining inputs after a failure.")
}

// ToConfig builds the hashing configuration for the given algorithm names.
func (o *HashOptions) ToConfig(algorithms []string) *config.HashingConfig {
	cfg := config.NewHashingConfig().
		WithAlgorithms(algorithms...).
		WithChunkSize(o.ChunkSize).
		WithZeroTermination(o.ZeroTerminate).
		WithContinueOnError(o.ContinueOnError)
	if o.Text {
		cfg = cfg.WithTextMode()
	}
	return cfg
}
