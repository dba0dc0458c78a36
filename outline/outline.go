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

// Package outline renders the declaration structure of a file as
// indented text, one line per declaration.
//
// This is the structural view an editor's outline pane shows: imports
// and options at their positions, type declarations with their members
// nested beneath them. The output is stable and meant for golden tests
// and quick inspection; it is not a formatter.
package outline

import (
	"fmt"
	"strings"

	"github.com/tanqidong1992/protobuf-dt/ast"
	"github.com/tanqidong1992/protobuf-dt/seq"
)

// Render renders the outline of f. Every line of the result ends in a
// newline; the zero file renders as the empty string.
func Render(f ast.File) string {
	if f.IsZero() {
		return ""
	}
	var sb strings.Builder
	renderAll(&sb, f.Decls(), 0)
	return sb.String()
}

func renderAll(sb *strings.Builder, decls seq.Indexer[ast.DeclAny], depth int) {
	for d := range seq.Values(decls) {
		render(sb, d, depth)
	}
}

func render(sb *strings.Builder, d ast.DeclAny, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))

	switch d.Kind() {
	case ast.DeclKindSyntax:
		fmt.Fprintf(sb, "syntax %q\n", d.AsSyntax().Value())

	case ast.DeclKindPackage:
		fmt.Fprintf(sb, "package %s\n", d.AsPackage().Path())

	case ast.DeclKindImport:
		imp := d.AsImport()
		switch {
		case imp.IsPublic():
			fmt.Fprintf(sb, "import public %q\n", imp.Path())
		case imp.IsWeak():
			fmt.Fprintf(sb, "import weak %q\n", imp.Path())
		default:
			fmt.Fprintf(sb, "import %q\n", imp.Path())
		}

	case ast.DeclKindOption:
		o := d.AsOption()
		fmt.Fprintf(sb, "option %s = %s\n", o.Name(), o.Value())

	case ast.DeclKindMessage:
		m := d.AsMessage()
		fmt.Fprintf(sb, "message %s\n", m.Name())
		renderAll(sb, m.Decls(), depth+1)

	case ast.DeclKindEnum:
		e := d.AsEnum()
		fmt.Fprintf(sb, "enum %s\n", e.Name())
		renderAll(sb, e.Decls(), depth+1)

	case ast.DeclKindEnumValue:
		v := d.AsEnumValue()
		fmt.Fprintf(sb, "%s = %d\n", v.Name(), v.Number())

	case ast.DeclKindField:
		sb.WriteString(fieldLine(d.AsField()))
		sb.WriteByte('\n')

	case ast.DeclKindExtend:
		e := d.AsExtend()
		fmt.Fprintf(sb, "extend %s\n", e.Extendee())
		renderAll(sb, e.Decls(), depth+1)

	case ast.DeclKindService:
		s := d.AsService()
		fmt.Fprintf(sb, "service %s\n", s.Name())
		renderAll(sb, s.Decls(), depth+1)

	case ast.DeclKindMethod:
		m := d.AsMethod()
		fmt.Fprintf(sb, "rpc %s(%s) returns (%s)\n",
			m.Name(), m.Input().Path(), m.Output().Path())

	default:
		fmt.Fprintf(sb, "<%v>\n", d.Kind())
	}
}

// fieldLine renders a field the way it was written: label, type, name,
// and number, skipping whichever parts are absent.
func fieldLine(f ast.Field) string {
	parts := make([]string, 0, 3)
	if label := f.Label().String(); label != "" {
		parts = append(parts, label)
	}
	if ty := f.Type().Path(); ty != "" {
		parts = append(parts, ty)
	}
	if f.Name() != "" {
		parts = append(parts, f.Name())
	}
	line := strings.Join(parts, " ")
	if f.Number() != 0 {
		line += fmt.Sprintf(" = %d", f.Number())
	}
	return line
}
