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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mincardona/xmphash/cmd/xmphash/cli/options"
	"github.com/mincardona/xmphash/pkg/hashing/runner"
	"github.com/mincardona/xmphash/pkg/tracing"
	"github.com/mincardona/xmphash/pkg/utils"
)

// mismatchError reports failed digest comparisons and maps them to a
// dedicated process exit code.
type mismatchError struct {
	mismatches int
	total      int
}

func (e *mismatchError) Error() string {
	return fmt.Sprintf("%d of %d digests did not match", e.mismatches, e.total)
}

func (e *mismatchError) ExitCode() int { return 1 }

// Check creates the check command. It recomputes the named digests over a
// file and compares them with the expected values.
//
// Returns a *cobra.Command configured for digest verification.
func Check() *cobra.Command {
	o := &options.CheckOptions{}

	long := `Verify file digests against expected values.

EXPECTATIONS is a comma-separated list of name=hexdigest pairs, for example:

    xmphash check crc32=cbf43926,sha256=15e2b0d3... data.bin

Each named digest is recomputed over FILE in a single streaming pass and
compared with the expected value. One "name: OK" or "name: MISMATCH" line
is printed per pair; the exit status is nonzero if any digest differs.
Pass "-" as FILE to read standard input.`

	cmd := &cobra.Command{
		Use:   "check [OPTIONS] EXPECTATIONS FILE",
		Short: "Verify file digests against expected values.",
		Long:  long,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), o, args[0], args[1], cmd.OutOrStdout())
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runCheck(ctx context.Context, o *options.CheckOptions, expectationList, path string, w io.Writer) error {
	expectations, err := runner.ParseExpectations(expectationList)
	if err != nil {
		return err
	}
	if err := utils.ValidateInputFile("FILE", path); err != nil {
		return err
	}

	logger := ro.NewLogger()
	r, err := runner.New(o.ToConfig(runner.Algorithms(expectations)), logger)
	if err != nil {
		return err
	}

	attrs := map[string]interface{}{
		"xmphash.expectations": len(expectations),
		"xmphash.input":        path,
		"xmphash.chunk_size":   o.ChunkSize,
	}
	return tracing.Run(ctx, "Check", attrs, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, ro.Timeout)
		defer cancel()

		results, err := r.RunFile(ctx, path)
		if err != nil {
			return err
		}

		checks, err := runner.Compare(results, expectations)
		if err != nil {
			return err
		}

		var mismatches int
		for _, c := range checks {
			if !c.Match {
				mismatches++
				fmt.Fprintf(w, "%s: MISMATCH\n", c.Algorithm)
				continue
			}
			if !o.Quiet {
				fmt.Fprintf(w, "%s: OK\n", c.Algorithm)
			}
		}

		if mismatches > 0 {
			return &mismatchError{mismatches: mismatches, total: len(checks)}
		}
		return nil
	})
}
