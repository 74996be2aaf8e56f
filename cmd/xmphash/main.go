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

package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/mincardona/xmphash/cmd/xmphash/cli"
	"github.com/mincardona/xmphash/pkg/tracing"

	// Register the built-in hash engines.
	_ "github.com/mincardona/xmphash/pkg/hashing/engines/crc32"
	_ "github.com/mincardona/xmphash/pkg/hashing/engines/cryptohash"
)

type ExitCoder interface {
	error
	ExitCode() int
}

func main() {
	log.SetFlags(0)
	os.Exit(run())
}

func run() int {
	if err := tracing.InitFromEnv(); err != nil {
		log.Printf("warning: tracing disabled: %v", err)
	}
	defer func() {
		_ = tracing.Shutdown(context.Background())
	}()

	if err := cli.New().Execute(); err != nil {
		log.Printf("error during command execution: %v", err)

		var ec ExitCoder
		if errors.As(err, &ec) {
			return ec.ExitCode()
		}
		return 1
	}
	return 0
}
