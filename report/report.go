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

// Package report provides the diagnostic values this module's checks
// produce.
//
// A diagnostic is not an error in the Go sense: absence of a result is
// an ordinary zero value, and structural misuse is a panic. Diagnostics
// exist for findings about the *schema text*, accumulated in a [Report]
// and rendered by whatever front end hosts the library.
package report

import (
	"cmp"
	"fmt"
	"slices"
)

// Diagnostic severities.
const (
	Error Level = 1 + iota
	Warning
	Remark
)

// Level is the severity of a diagnostic.
type Level int8

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("Level(%d)", int8(l))
	}
}

// Diagnostic is one finding about a source file.
type Diagnostic struct {
	// The error that prompted this diagnostic; Err.Error() is the
	// message shown to users.
	Err error

	// The severity this finding is reported at.
	Level Level

	// A stable identifier for the class of finding, such as a message
	// catalog code. May be empty.
	Code string

	span  Span
	notes []string
	help  []string
}

// Primary returns the primary location of this diagnostic. It is zero
// for file-level findings.
func (d *Diagnostic) Primary() Span { return d.span }

// Notes returns context the diagnostic was annotated with.
func (d *Diagnostic) Notes() []string { return d.notes }

// Help returns remediation suggestions the diagnostic was annotated with.
func (d *Diagnostic) Help() []string { return d.help }

// DiagnosticOption is configuration applied to a [Diagnostic] as it is
// pushed onto a [Report].
type DiagnosticOption func(*Diagnostic)

// Snippet attaches the span of some node as the diagnostic's primary
// location.
func Snippet(at Spanner) DiagnosticOption {
	return SnippetAt(at.Span())
}

// SnippetAt is like [Snippet], for an already-extracted span.
func SnippetAt(span Span) DiagnosticOption {
	return func(d *Diagnostic) { d.span = span }
}

// Code tags the diagnostic with a stable identifier.
func Code(code string) DiagnosticOption {
	return func(d *Diagnostic) { d.Code = code }
}

// Note attaches context prose to the diagnostic.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.notes = append(d.notes, fmt.Sprintf(format, args...))
	}
}

// Help attaches a remediation suggestion to the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.help = append(d.help, fmt.Sprintf(format, args...))
	}
}

// Report is a collection of diagnostics.
type Report []Diagnostic

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err error, opts ...DiagnosticOption) {
	r.push(err, Error, opts)
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err error, opts ...DiagnosticOption) {
	r.push(err, Warning, opts)
}

// Remark pushes a remark diagnostic onto this report.
func (r *Report) Remark(err error, opts ...DiagnosticOption) {
	r.push(err, Remark, opts)
}

// HasErrors reports whether any diagnostic is [Error]-level.
func (r Report) HasErrors() bool {
	return slices.ContainsFunc(r, func(d Diagnostic) bool { return d.Level == Error })
}

// Sort orders diagnostics by file, then span start, then severity. The
// sort is stable, so diagnostics at one location keep insertion order.
func (r Report) Sort() {
	slices.SortStableFunc(r, func(a, b Diagnostic) int {
		if c := cmp.Compare(a.span.File.Path, b.span.File.Path); c != 0 {
			return c
		}
		if c := cmp.Compare(a.span.Start, b.span.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Level, b.Level)
	})
}

func (r *Report) push(err error, level Level, opts []DiagnosticOption) {
	*r = append(*r, Diagnostic{Err: err, Level: level})
	d := &(*r)[len(*r)-1]
	for _, opt := range opts {
		opt(d)
	}
}
