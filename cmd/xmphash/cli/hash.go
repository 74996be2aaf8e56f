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
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mincardona/xmphash/cmd/xmphash/cli/options"
	"github.com/mincardona/xmphash/pkg/hashing/runner"
	"github.com/mincardona/xmphash/pkg/tracing"
	"github.com/mincardona/xmphash/pkg/utils"
)

// Hash creates the hash command. It computes one digest per requested
// algorithm over each input file in a single streaming pass.
//
// Returns a *cobra.Command configured for digest computation.
func Hash() *cobra.Command {
	o := &options.HashOptions{}

	long := `Compute digests of files.

Streams each FILE once and computes every algorithm in ALGORITHMS over it,
printing one "name: hexdigest" line per algorithm. ALGORITHMS is a
comma-separated, case-sensitive list; repeating a name computes it again
independently. Pass "-" as FILE to read standard input.

Run "xmphash algorithms" to see the available algorithm names.`

	cmd := &cobra.Command{
		Use:   "hash [OPTIONS] ALGORITHMS FILE...",
		Short: "Compute digests of files.",
		Long:  long,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(cmd.Context(), o, args[0], args[1:], cmd.OutOrStdout())
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runHash(ctx context.Context, o *options.HashOptions, algorithmList string, files []string, w io.Writer) error {
	algorithms := strings.Split(algorithmList, ",")
	// With --continue a bad path is a per-file failure to skip, not a usage
	// error, so each file is checked inside the loop instead.
	if !o.ContinueOnError {
		if err := utils.ValidateInputFiles("FILE", files); err != nil {
			return err
		}
	}

	logger := ro.NewLogger()
	r, err := runner.New(o.ToConfig(algorithms), logger)
	if err != nil {
		return err
	}

	attrs := map[string]interface{}{
		"xmphash.algorithms": algorithmList,
		"xmphash.inputs":     len(files),
		"xmphash.chunk_size": o.ChunkSize,
	}
	return tracing.Run(ctx, "Hash", attrs, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, ro.Timeout)
		defer cancel()

		terminator := byte('\n')
		if o.ZeroTerminate {
			terminator = 0
		}

		var failed int
		for i, path := range files {
			if i > 0 {
				if err := r.Reset(); err != nil {
					return err
				}
			}

			results, err := r.RunFile(ctx, path)
			if err != nil {
				if !o.ContinueOnError {
					return err
				}
				logger.Error("skipping %s: %v", path, err)
				failed++
				continue
			}

			if len(files) > 1 {
				fmt.Fprintf(w, "%s:%c", path, terminator)
			}
			for _, res := range results {
				fmt.Fprintf(w, "%s: %s%c", res.Algorithm, res.Digest.Hex(), terminator)
			}
		}

		if failed > 0 {
			return errors.New("some inputs could not be hashed")
		}
		return nil
	})
}
