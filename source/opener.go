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

package source

import (
	"errors"
	"io"
	"io/fs"
	"strings"
)

// Opener is a mechanism for fetching the text of schema documents by
// path.
//
// Incremental queries key their results by path, not by opener, so a
// given executor should only ever see one Opener.
type Opener interface {
	// Open returns the text of the document at path.
	//
	// A return value of [fs.ErrNotExist] is given special treatment by
	// some Opener adapters, such as the [Openers] type.
	Open(path string) (string, error)
}

// Map implements [Opener] via lookup in a plain map from path to text.
//
// Missing entries result in [fs.ErrNotExist].
type Map map[string]string

// Open implements [Opener].
func (m Map) Open(path string) (string, error) {
	text, ok := m[path]
	if !ok {
		return "", fs.ErrNotExist
	}
	return text, nil
}

// FS wraps an [fs.FS] to give it an [Opener] interface.
type FS struct {
	fs.FS

	// If not nil, paths are passed to this function before being
	// forwarded to the wrapped filesystem.
	PathMapper func(string) string
}

// Open implements [Opener].
func (f *FS) Open(path string) (string, error) {
	if f.PathMapper != nil {
		path = f.PathMapper(path)
	}

	file, err := f.FS.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var buf strings.Builder
	if _, err := io.Copy(&buf, file); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Openers wraps a sequence of [Opener]s.
//
// When calling Open, it calls each Opener in sequence until one does
// not return [fs.ErrNotExist].
type Openers []Opener

// Open implements [Opener].
func (o *Openers) Open(path string) (string, error) {
	for _, opener := range *o {
		text, err := opener.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return text, err
	}
	return "", fs.ErrNotExist
}
