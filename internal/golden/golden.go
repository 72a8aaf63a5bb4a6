// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package golden runs file-based test corpora: table-driven tests where
// the table lives in the filesystem.
//
// Each file under the corpus root with the configured extension is one
// test case; its expected outputs live next to it with an extra extension
// appended. Setting the refresh environment variable to a glob rewrites
// the expectation files matching it instead of comparing.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// A Corpus describes one test data corpus.
type Corpus struct {
	// Root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// Environment variable consulted for "refresh" mode. Its value is a
	// glob over test case names; matching cases have their expectation
	// files regenerated from the test's actual output.
	Refresh string

	// Extension (without the dot) of files that define a test case.
	Extension string

	// Extensions (appended after the test case's name) of the expected
	// output files. A missing file is an expectation of emptiness.
	Outputs []string
}

// Run executes test over every case in the corpus. test returns one
// string per corpus output.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string) []string) {
	testDir := callerDir(1)
	root := filepath.Join(testDir, c.Root)

	var cases []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			cases = append(cases, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking testdata:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob in $%s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing expectations because %s=%s", c.Refresh, refresh)
		t.Fail() // A refresh run must not pass CI by accident.
	}

	for _, casePath := range cases {
		name, _ := filepath.Rel(testDir, casePath)
		t.Run(name, func(t *testing.T) {
			bytes, err := os.ReadFile(casePath)
			if err != nil {
				t.Fatalf("golden: error while loading input %q: %v", casePath, err)
			}

			results := test(t, name, string(bytes))
			if len(results) != len(c.Outputs) {
				t.Fatalf("golden: test returned %d outputs, corpus declares %d", len(results), len(c.Outputs))
			}

			refreshThis, _ := doublestar.Match(refresh, name)
			for i, ext := range c.Outputs {
				outPath := fmt.Sprint(casePath, ".", ext)
				if refreshThis {
					c.rewrite(t, outPath, results[i])
					continue
				}

				want, err := os.ReadFile(outPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("golden: error while loading expectation %q: %v", outPath, err)
					continue
				}
				if diff := diff(results[i], string(want)); diff != "" {
					t.Errorf("mismatch for %q:\n%s", outPath, diff)
				}
			}
		})
	}
}

func (c Corpus) rewrite(t *testing.T, path, content string) {
	if content == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("golden: error while deleting expectation %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(content), 0o666); err != nil {
		t.Errorf("golden: error while writing expectation %q: %v", path, err)
	}
}

// diff returns "" if got matches want, and a unified diff otherwise.
func diff(got, want string) string {
	if got == want {
		return ""
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	// Colorize insertions and deletions to make the diff scannable.
	lines := strings.Split(text, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "+"):
			lines[i] = "\033[1;92m" + s + "\033[0m"
		case strings.HasPrefix(s, "-"):
			lines[i] = "\033[1;91m" + s + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		panic("cfmt/golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
