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

package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(file, []byte("payload"), 0o600); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "existing file", path: file, wantErr: false},
		{name: "stdin sentinel", path: StdinPath, wantErr: false},
		{name: "empty path", path: "", wantErr: true},
		{name: "missing file", path: filepath.Join(dir, "missing"), wantErr: true},
		{name: "directory", path: dir, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateInputFile("input", tc.path)
			if gotErr := err != nil; gotErr != tc.wantErr {
				t.Errorf("ValidateInputFile(%q) error = %v, wantErr %v", tc.path, err, tc.wantErr)
			}
		})
	}
}

func TestValidateInputFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(file, []byte("payload"), 0o600); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	if err := ValidateInputFiles("inputs", nil); err == nil {
		t.Error("ValidateInputFiles(nil) = nil, want error")
	}
	if err := ValidateInputFiles("inputs", []string{file, StdinPath}); err != nil {
		t.Errorf("ValidateInputFiles(valid) = %v, want nil", err)
	}
	if err := ValidateInputFiles("inputs", []string{file, filepath.Join(dir, "missing")}); err == nil {
		t.Error("ValidateInputFiles(with missing) = nil, want error")
	}
}
