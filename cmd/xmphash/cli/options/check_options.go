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

// CheckOptions defines flags for the check command.
type CheckOptions struct {
	ChunkSizeFlags

	// Quiet suppresses the per-algorithm OK lines; mismatches still print.
	Quiet bool
}

var _ FlagAdder = (*CheckOptions)(nil)

// AddFlags adds check command flags to the cobra command.
func (o *CheckOptions) AddFlags(cmd *cobra.Command) {
	o.ChunkSizeFlags.AddFlags(cmd)

	cmd.Flags().BoolVarP(&o.Quiet, "quiet", "q", false,
		"Only print digests that do not match.")
}

// ToConfig builds the hashing configuration for the given algorithm names.
func (o *CheckOptions) ToConfig(algorithms []string) *config.HashingConfig {
	return config.NewHashingConfig().
		WithAlgorithms(algorithms...).
		WithChunkSize(o.ChunkSize)
}
