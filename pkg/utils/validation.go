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

// Package utils holds small argument-validation helpers shared by the CLI
// commands.
package utils

import (
	"fmt"
	"os"
)

// StdinPath is the conventional file argument selecting standard input.
// Validators accept it without consulting the filesystem.
const StdinPath = "-"

// ValidateInputFile checks that path names a readable input source for
// hashing: either StdinPath or an existing regular file (not a directory).
func ValidateInputFile(fieldName, path string) error {
	if path == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if path == StdinPath {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s %q does not exist", fieldName, path)
		}
		return fmt.Errorf("checking %s %q: %w", fieldName, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s %q is a directory, expected file", fieldName, path)
	}
	return nil
}

// ValidateInputFiles validates every path in the slice with
// ValidateInputFile, returning the first failure.
func ValidateInputFiles(fieldName string, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("%s requires at least one path", fieldName)
	}
	for i, path := range paths {
		if err := ValidateInputFile(fmt.Sprintf("%s[%d]", fieldName, i), path); err != nil {
			return err
		}
	}
	return nil
}
