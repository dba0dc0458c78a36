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

// Package golden runs filesystem-driven golden tests: a corpus of
// input files, each paired with expected-output files living next to
// it.
//
// A test declares a [Corpus] and calls [Corpus.Run]. Every input file
// under Root whose extension matches Extension becomes a subtest; the
// Test callback renders one string per declared [Output], and each is
// compared against the file named by appending that output's extension
// to the input's name. Setting the environment variable named by
// Refresh to a glob selects tests whose expected files are rewritten
// in place instead of compared; a refreshing run always fails, so
// stale goldens cannot slip through CI.
package golden

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a golden-test corpus: table-driven tests whose
// table is a directory tree.
type Corpus struct {
	// Root is the directory holding the corpus, relative to the file
	// that calls [Corpus.Run].
	Root string

	// Refresh names an environment variable. When that variable is
	// set, its value is a doublestar glob selecting the subtests whose
	// expected outputs are rewritten from the rendered values.
	Refresh string

	// Extension is the extension, without the dot, of the corpus's
	// input files.
	Extension string

	// Outputs describes the expected-output files of each test case.
	Outputs []Output

	// Test runs one test case. path is the input file's path relative
	// to the calling test's directory and text is its contents; the
	// returned strings correspond to the elements of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one expected-output file of a test case.
type Output struct {
	// Extension is appended, after a dot, to the input file's name to
	// locate this output's expected value. A missing file stands for
	// an expected value of "".
	Extension string

	// Compare compares rendered against expected, returning "" on a
	// match and a description of the difference otherwise. Nil means
	// byte equality, reported as a unified diff.
	Compare Compare
}

// Compare is a comparison function between a rendered output and its
// expected value. It returns "" when they match.
type Compare func(got, want string) string

// Run runs the corpus as subtests of t.
func (c Corpus) Run(t *testing.T) {
	dir := callerDir()
	root := filepath.Join(dir, c.Root)

	var inputs []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			inputs = append(inputs, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("golden: could not walk corpus root %q: %v", root, err)
	}
	if len(inputs) == 0 {
		t.Fatalf("golden: no .%s files under %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: %s is not a valid glob: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		// A refreshing run must not pass, or a CI job with the
		// variable set would silently bless whatever was rendered.
		t.Logf("golden: refreshing expected outputs because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, input := range inputs {
		name, err := filepath.Rel(dir, input)
		if err != nil {
			t.Fatalf("golden: could not relativize %q: %v", input, err)
		}

		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(input)
			if err != nil {
				t.Fatalf("golden: could not read input %q: %v", input, err)
			}

			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("golden: Test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			rewrite, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				path := input + "." + output.Extension
				if rewrite {
					c.rewrite(t, path, results[i])
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("golden: could not read expected output %q: %v", path, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if mismatch := compare(results[i], string(want)); mismatch != "" {
					t.Errorf("golden: mismatch for %q:\n%s", path, mismatch)
				}
			}
		})
	}
}

// rewrite replaces one expected-output file, deleting it when the
// rendered output is empty.
func (c Corpus) rewrite(t *testing.T, path, text string) {
	if text == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("golden: could not delete %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Errorf("golden: could not write %q: %v", path, err)
	}
}

// Diff is the default [Compare]: byte equality, with mismatches
// rendered as a colorized unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

// callerDir returns the directory of the file that called [Corpus.Run].
func callerDir() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("golden: could not determine the calling test's directory")
	}
	return filepath.Dir(file)
}
