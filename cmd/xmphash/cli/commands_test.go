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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mincardona/xmphash/pkg/hashing/engines/crc32"
	_ "github.com/mincardona/xmphash/pkg/hashing/engines/cryptohash"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return path
}

func TestHashCommand(t *testing.T) {
	path := writeTestFile(t, "123456789")

	out, err := execute(t, "hash", "crc32,sha256", path)
	if err != nil {
		t.Fatalf("hash command failed: %v", err)
	}

	want := "crc32: cbf43926\n" +
		"sha256: 15e2b0d3c33891ebb0f1ef609ec419420c20e320ce94c65fbc8c3312448eb225\n"
	if out != want {
		t.Errorf("hash output = %q, want %q", out, want)
	}
}

func TestHashCommandZeroTerminated(t *testing.T) {
	path := writeTestFile(t, "123456789")

	out, err := execute(t, "hash", "--zero", "crc32", path)
	if err != nil {
		t.Fatalf("hash command failed: %v", err)
	}
	if want := "crc32: cbf43926\x00"; out != want {
		t.Errorf("hash output = %q, want %q", out, want)
	}
}

func TestHashCommandUnknownAlgorithm(t *testing.T) {
	path := writeTestFile(t, "data")

	if _, err := execute(t, "hash", "no-such-algo", path); err == nil {
		t.Error("hash with unknown algorithm succeeded, want error")
	}
}

func TestHashCommandMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	if _, err := execute(t, "hash", "crc32", missing); err == nil {
		t.Error("hash with missing file succeeded, want error")
	}
}

func TestHashCommandContinueSkipsFailedInputs(t *testing.T) {
	good := writeTestFile(t, "123456789")
	missing := filepath.Join(t.TempDir(), "missing")

	out, err := execute(t, "hash", "--continue", "crc32", missing, good)
	if err == nil {
		t.Error("hash --continue with a failed input succeeded, want nonzero error")
	}
	if !strings.Contains(out, "crc32: cbf43926") {
		t.Errorf("hash --continue output missing digest of good file:\n%s", out)
	}
}

func TestHashCommandStopsAtFirstFailureWithoutContinue(t *testing.T) {
	good := writeTestFile(t, "123456789")
	missing := filepath.Join(t.TempDir(), "missing")

	out, err := execute(t, "hash", "crc32", missing, good)
	if err == nil {
		t.Error("hash with a missing input succeeded, want error")
	}
	if strings.Contains(out, "cbf43926") {
		t.Errorf("hash without --continue still produced digests:\n%s", out)
	}
}

func TestHashCommandBinaryAndTextConflict(t *testing.T) {
	path := writeTestFile(t, "data")

	if _, err := execute(t, "hash", "--binary", "--text", "crc32", path); err == nil {
		t.Error("hash with both --binary and --text succeeded, want error")
	}
}

func TestCheckCommand(t *testing.T) {
	path := writeTestFile(t, "123456789")

	out, err := execute(t, "check", "crc32=cbf43926", path)
	if err != nil {
		t.Fatalf("check command failed: %v", err)
	}
	if want := "crc32: OK\n"; out != want {
		t.Errorf("check output = %q, want %q", out, want)
	}
}

func TestCheckCommandMismatch(t *testing.T) {
	path := writeTestFile(t, "123456789")

	out, err := execute(t, "check", "crc32=00000000", path)
	if err == nil {
		t.Fatal("check with wrong digest succeeded, want error")
	}
	if !strings.Contains(out, "crc32: MISMATCH") {
		t.Errorf("check output = %q, want MISMATCH line", out)
	}

	var ec interface{ ExitCode() int }
	if !errors.As(err, &ec) || ec.ExitCode() != 1 {
		t.Errorf("check mismatch error = %v, want exit code 1", err)
	}
}

func TestAlgorithmsCommand(t *testing.T) {
	out, err := execute(t, "algorithms")
	if err != nil {
		t.Fatalf("algorithms command failed: %v", err)
	}
	for _, want := range []string{"crc32 (4 bytes)", "sha256 (32 bytes)", "blake2b (64 bytes)"} {
		if !strings.Contains(out, want) {
			t.Errorf("algorithms output missing %q:\n%s", want, out)
		}
	}
}
