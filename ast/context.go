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

package ast

import (
	"fmt"
	"sync"

	"github.com/tanqidong1992/protobuf-dt/internal/arena"
	"github.com/tanqidong1992/protobuf-dt/internal/interval"
	"github.com/tanqidong1992/protobuf-dt/report"
)

// Context owns every node of one file's syntax tree.
//
// Nodes are allocated out of per-kind arenas and referred to by
// compressed pointers, so a handle into a context is two words: the
// context itself and the node's index. A context always contains at
// least one node, the [File] root returned by [Context.Root].
type Context struct {
	file  *report.IndexedFile
	decls decls

	declIndex struct {
		once sync.Once
		tree interval.Tree[int32, rawRef]
	}
}

// NewContext creates a fresh context for the given file, containing
// only the root [File] node.
func NewContext(file report.File) *Context {
	c := &Context{file: report.NewIndexedFile(file)}
	c.decls.files.New(rawFile{})
	return c
}

// Path returns the path of the file this context is for.
func (c *Context) Path() string {
	return c.file.File().Path
}

// Text returns the text of the file this context is for.
func (c *Context) Text() string {
	return c.file.File().Text
}

// Source returns an indexed view of the file's text, for resolving
// offsets into line and column information.
func (c *Context) Source() *report.IndexedFile {
	return c.file
}

// Root returns the root node of this context's tree.
func (c *Context) Root() File {
	return File{wrapDecl(c, arena.Pointer[rawFile](1))}
}

// Nodes returns the node construction API for this context.
func (c *Context) Nodes() Nodes {
	return Nodes{c}
}

// Len returns the total number of nodes allocated in this context.
func (c *Context) Len() int {
	d := &c.decls
	return d.files.Len() + d.syntaxes.Len() + d.packages.Len() +
		d.imports.Len() + d.options.Len() + d.messages.Len() +
		d.enums.Len() + d.enumValues.Len() + d.fields.Len() +
		d.extends.Len() + d.services.Len() + d.methods.Len()
}

// NewSpan creates a span over this context's file.
//
// Panics if the bounds are out of order or out of range for the file's
// text.
func (c *Context) NewSpan(start, end int) report.Span {
	if start > end {
		panic(fmt.Sprintf("ast: called NewSpan() with out-of-order bounds: %d > %d", start, end))
	}
	if end > len(c.Text()) {
		panic(fmt.Sprintf("ast: NewSpan() argument out of bounds: %d > %d", end, len(c.Text())))
	}
	return report.Span{File: c.file.File(), Start: start, End: end}
}

// checkSpan validates that a span handed to a node constructor actually
// belongs to this context's file. The zero span is always allowed; it
// marks a node with no source location.
func (c *Context) checkSpan(s report.Span) {
	if s.IsZero() {
		return
	}
	if s.File != c.file.File() {
		panic(fmt.Sprintf("ast: span for %q used in context for %q", s.File.Path, c.Path()))
	}
	if s.Start > s.End || s.End > len(c.Text()) {
		panic(fmt.Sprintf("ast: span [%d, %d) out of bounds for %q", s.Start, s.End, c.Path()))
	}
}

// span converts stored span bytes back into a [report.Span].
func (c *Context) span(s rawSpan) report.Span {
	if s == (rawSpan{}) {
		return report.Span{}
	}
	return report.Span{File: c.file.File(), Start: int(s.start), End: int(s.end)}
}

// rawSpan is the arena representation of a node's source location.
// The zero value means "no location".
type rawSpan struct {
	start, end int32
}

func newRawSpan(s report.Span) rawSpan {
	return rawSpan{start: int32(s.Start), end: int32(s.End)}
}

// Contextual is any type that carries an [Context].
type Contextual interface {
	// Context returns this type's context.
	//
	// Zero values of [Contextual] types return nil.
	Context() *Context
}

// withContext is an embeddable struct that provides a type with a
// context and causes it to implement [Contextual].
type withContext struct {
	ctx *Context
}

// Context implements [Contextual].
func (c withContext) Context() *Context {
	return c.ctx
}

// IsZero reports whether this is a zero value, i.e. one with no
// context.
func (c withContext) IsZero() bool {
	return c.ctx == nil
}

// panicIfNotOurs panics if any of the given values has a context other
// than c's. Zero contexts are not checked, since they cannot introduce
// cross-context aliasing.
func (c *Context) panicIfNotOurs(that ...Contextual) {
	for _, that := range that {
		if that == nil {
			continue
		}
		c2 := that.Context()
		if c2 == nil || c2 == c {
			continue
		}
		panic(fmt.Sprintf(
			"ast: attempt to mix different contexts: %p(%q) and %p(%q)",
			c, c.Path(), c2, c2.Path(),
		))
	}
}
