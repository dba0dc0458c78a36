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
	"github.com/tanqidong1992/protobuf-dt/report"
)

// Syntax is a declaration of the form "syntax = <value>;", stating
// which dialect a file is written in.
type Syntax struct {
	declImpl[rawSyntax]
}

type rawSyntax struct {
	parent rawRef
	value  string
	span   rawSpan
}

// Value returns the declared syntax identifier, such as "proto3". This
// is the content of the string literal, without quotes.
func (s Syntax) Value() string {
	if s.IsZero() {
		return ""
	}
	return s.raw().value
}

// Span returns this declaration's source location.
func (s Syntax) Span() report.Span {
	if s.IsZero() {
		return report.Span{}
	}
	return s.ctx.span(s.raw().span)
}

// Package is a declaration of the form "package <path>;", placing a
// file's definitions under a dotted namespace.
type Package struct {
	declImpl[rawPackage]
}

type rawPackage struct {
	parent rawRef
	path   string
	span   rawSpan
}

// Path returns the declared package path, such as "google.protobuf".
// An anonymous package declaration returns "".
func (p Package) Path() string {
	if p.IsZero() {
		return ""
	}
	return p.raw().path
}

// Span returns this declaration's source location.
func (p Package) Span() report.Span {
	if p.IsZero() {
		return report.Span{}
	}
	return p.ctx.span(p.raw().span)
}

// ImportModifier distinguishes the flavors of an import declaration.
type ImportModifier int8

const (
	// ImportDefault is a plain import.
	ImportDefault ImportModifier = iota
	// ImportPublic re-exports the imported file to this file's
	// importers.
	ImportPublic
	// ImportWeak marks the import as tolerating an absent file.
	ImportWeak
)

// String implements [fmt.Stringer].
func (m ImportModifier) String() string {
	switch m {
	case ImportPublic:
		return "public"
	case ImportWeak:
		return "weak"
	default:
		return ""
	}
}

// Import is a declaration of the form "import [public|weak] <path>;".
type Import struct {
	declImpl[rawImport]
}

type rawImport struct {
	parent   rawRef
	path     string
	modifier ImportModifier
	target   rawLink
	span     rawSpan
}

// Path returns the imported path as written, such as "foo/bar.proto".
func (i Import) Path() string {
	if i.IsZero() {
		return ""
	}
	return i.raw().path
}

// Modifier returns the import's modifier, if any.
func (i Import) Modifier() ImportModifier {
	if i.IsZero() {
		return ImportDefault
	}
	return i.raw().modifier
}

// IsPublic reports whether this is an "import public".
func (i Import) IsPublic() bool {
	return i.Modifier() == ImportPublic
}

// IsWeak reports whether this is an "import weak".
func (i Import) IsWeak() bool {
	return i.Modifier() == ImportWeak
}

// Target returns the file this import resolved to, or zero if it has
// not been resolved.
func (i Import) Target() File {
	if i.IsZero() {
		return File{}
	}
	return i.raw().target.decl().AsFile()
}

// SetTarget records the file this import resolved to. The target may
// belong to any context. A zero file clears the link.
func (i Import) SetTarget(f File) {
	i.raw().target = linkTo(f.AsAny())
}

// Span returns this declaration's source location.
func (i Import) Span() report.Span {
	if i.IsZero() {
		return report.Span{}
	}
	return i.ctx.span(i.raw().span)
}
