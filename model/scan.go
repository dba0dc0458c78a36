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

package model

import (
	"github.com/tanqidong1992/protobuf-dt/ast"
	"github.com/tanqidong1992/protobuf-dt/internal/ext/iterx"
	"github.com/tanqidong1992/protobuf-dt/seq"
)

// SyntaxOf returns the first syntax declaration of the file containing
// node, or zero if the file has none.
func SyntaxOf(node ast.DeclAny) ast.Syntax {
	root := RootOf(node)
	syntax, _ := iterx.First(iterx.FilterMap(seq.Values(root.Decls()), func(d ast.DeclAny) (ast.Syntax, bool) {
		s := d.AsSyntax()
		return s, !s.IsZero()
	}))
	return syntax
}

// PackageOf returns the package that node's file is declared in, or
// zero if the file has no package declaration.
//
// When a malformed file declares several packages, the first one wins,
// so every node of one tree agrees on its package.
func PackageOf(node ast.DeclAny) ast.Package {
	root := RootOf(node)
	pkg, _ := iterx.First(iterx.FilterMap(seq.Values(root.Decls()), func(d ast.DeclAny) (ast.Package, bool) {
		p := d.AsPackage()
		return p, !p.IsZero()
	}))
	return pkg
}

// ImportsIn returns the file's top-level import declarations as a
// read-only view, in source order. Public and weak imports are
// included.
func ImportsIn(f ast.File) seq.Indexer[ast.Import] {
	return collectImports(f, func(ast.Import) bool { return true })
}

// PublicImportsIn returns the file's top-level public imports as a
// read-only view, in source order. The result is always a subset of
// [ImportsIn] in the same relative order.
func PublicImportsIn(f ast.File) seq.Indexer[ast.Import] {
	return collectImports(f, ast.Import.IsPublic)
}

func collectImports(f ast.File, keep func(ast.Import) bool) seq.Indexer[ast.Import] {
	var imports []ast.Import
	for d := range seq.Values(f.Decls()) {
		if i := d.AsImport(); !i.IsZero() && keep(i) {
			imports = append(imports, i)
		}
	}
	return seq.NewSlice(imports, func(_ int, i ast.Import) ast.Import { return i })
}
