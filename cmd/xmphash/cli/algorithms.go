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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	hashengines "github.com/mincardona/xmphash/pkg/hashing/engines"
)

// Algorithms creates the algorithms command, which lists every registered
// algorithm together with its digest size in bytes.
func Algorithms() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported hash algorithms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, name := range hashengines.SupportedAlgorithms() {
				size, err := hashengines.DigestSize(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s (%d bytes)\n", name, size)
			}
			return nil
		},
	}
}
