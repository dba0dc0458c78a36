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

package report

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf16"
)

// File is a source file that spans and diagnostics refer to.
type File struct {
	// The path the file was loaded from. It need not exist on any
	// filesystem; it identifies the file in diagnostics and deduplicates
	// spans by file.
	Path string

	// The complete text of the file.
	Text string
}

// Span is a half-open byte range [Start, End) within a file.
//
// The zero Span refers to nothing; every node-less query result carries
// one.
type Span struct {
	File       File
	Start, End int
}

// Spanner is any value that knows its source span.
type Spanner interface {
	Span() Span
}

// IsZero reports whether this is the zero span.
func (s Span) IsZero() bool { return s == Span{} }

// Len returns the number of bytes this span covers.
func (s Span) Len() int { return s.End - s.Start }

// Text returns the text this span covers.
func (s Span) Text() string {
	if s.IsZero() {
		return ""
	}
	return s.File.Text[s.Start:s.End]
}

// Span implements [Spanner].
func (s Span) Span() Span { return s }

// Location is a user-displayable position within a source file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed. Column is a
	// display-width measure, not a byte or rune count: a tab advances to
	// the next tabstop, and widths follow Unicode grapheme segmentation
	// (an ASCII letter is one column, 貓 is two).
	//
	// A zero Line works as an "unknown" sentinel.
	Line, Column int

	// The UTF-16 code-unit offset of this location from the start of its
	// line, for the benefit of LSP-shaped consumers.
	UTF16 int
}

// IndexedFile carries a lazily built line index for a [File], making
// offset-to-[Location] lookups O(log n) after the first.
type IndexedFile struct {
	file File

	once sync.Once
	// Byte offset of the start of each line, i.e. the index after each
	// \n plus a leading 0. Binary-searchable.
	lines []int
	// Per-line prefix sums of the text's length in UTF-16 code units.
	utf16Lines []int
}

// NewIndexedFile constructs an index for file. Indexing happens on the
// first lookup, not here.
func NewIndexedFile(file File) *IndexedFile {
	return &IndexedFile{file: file}
}

// File returns the file this index indexes.
func (i *IndexedFile) File() File { return i.file }

// Span builds a span over [start, end) in the indexed file.
func (i *IndexedFile) Span(start, end int) Span {
	return Span{File: i.file, Start: start, End: end}
}

// Location computes full location information for a byte offset.
func (i *IndexedFile) Location(offset int) Location {
	i.once.Do(i.index)

	// Find the line containing offset: the greatest line start <= offset.
	line, exact := slices.BinarySearch(i.lines, offset)
	if !exact {
		line--
	}

	prefix := i.file.Text[i.lines[line]:offset]

	var utf16Col int
	for _, r := range prefix {
		utf16Col += utf16.RuneLen(r)
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: Width(0, prefix) + 1,
		UTF16:  utf16Col,
	}
}

func (i *IndexedFile) index() {
	var next, next16 int
	text := i.file.Text
	for {
		i.lines = append(i.lines, next)
		i.utf16Lines = append(i.utf16Lines, next16)

		newline := strings.IndexByte(text, '\n')
		if newline == -1 {
			return
		}

		line := text[:newline+1]
		text = text[newline+1:]
		next += len(line)
		for _, r := range line {
			next16 += utf16.RuneLen(r)
		}
	}
}
