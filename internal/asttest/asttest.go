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

// Package asttest builds syntax trees out of YAML fixtures, standing in
// for the external parser in tests.
//
// A fixture describes one file:
//
//	path: demo.proto
//	decls:
//	  - syntax: proto3
//	  - package: demo
//	  - import: {path: base.proto, public: true}
//	  - message:
//	      name: Person
//	      members:
//	        - field: {name: name, type: string, number: 1}
//	        - field: {name: kind, type: Kind, number: 2}
//	        - enum:
//	            name: Kind
//	            members:
//	              - value: {name: KIND_UNSPECIFIED, number: 0}
//	  - extend:
//	      target: Person
//	      members:
//	        - field: {name: alias, type: string, number: 100}
//	  - service:
//	      name: Directory
//	      members:
//	        - rpc: {name: Lookup, input: Person, output: Person}
//
// or several, as entries of a top-level "files:" list. Declarations
// and members are single-key list entries so that source order,
// including interleaving of different kinds, survives into the tree.
//
// Field types name either a predeclared scalar or a message or enum
// declared anywhere in the fixture. Messages and enums register under
// their simple name, their nesting-qualified name (Outer.Kind), and
// their package-qualified name; references may use any of these.
// Import paths resolve against the fixture's other files. A reference
// that resolves to nothing fails the test, except where the fixture
// says unresolved: true.
package asttest

import (
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/tanqidong1992/protobuf-dt/ast"
	"github.com/tanqidong1992/protobuf-dt/ast/predeclared"
	"github.com/tanqidong1992/protobuf-dt/report"
)

// Build builds the tree described by a single-file fixture.
func Build(t *testing.T, text string) ast.File {
	t.Helper()

	var spec fileSpec
	decode(t, text, &spec)
	b := newBuilder(t)
	file := b.file(spec)
	b.finish()
	return file
}

// BuildSet builds every tree of a multi-file fixture, in fixture
// order. Cross-file references resolve across the whole set.
func BuildSet(t *testing.T, text string) []ast.File {
	t.Helper()

	var spec setSpec
	decode(t, text, &spec)
	if len(spec.Files) == 0 {
		t.Fatalf("asttest: fixture has no files")
	}

	b := newBuilder(t)
	files := make([]ast.File, len(spec.Files))
	for i, fs := range spec.Files {
		files[i] = b.file(fs)
	}
	b.finish()
	return files
}

type setSpec struct {
	Files []fileSpec `yaml:"files"`
}

type fileSpec struct {
	Path  string      `yaml:"path"`
	Decls []yaml.Node `yaml:"decls"`
}

type importSpec struct {
	Path   string `yaml:"path"`
	Public bool   `yaml:"public"`
	Weak   bool   `yaml:"weak"`
}

type optionSpec struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type messageSpec struct {
	Name    string      `yaml:"name"`
	Members []yaml.Node `yaml:"members"`
}

type enumSpec struct {
	Name    string      `yaml:"name"`
	Members []yaml.Node `yaml:"members"`
}

type valueSpec struct {
	Name    string       `yaml:"name"`
	Number  int32        `yaml:"number"`
	Options []optionSpec `yaml:"options"`
}

type fieldSpec struct {
	Name       string       `yaml:"name"`
	Type       string       `yaml:"type"`
	Number     int32        `yaml:"number"`
	Label      string       `yaml:"label"`
	Options    []optionSpec `yaml:"options"`
	Unresolved bool         `yaml:"unresolved"`
}

type extendSpec struct {
	Target     string      `yaml:"target"`
	Members    []yaml.Node `yaml:"members"`
	Unresolved bool        `yaml:"unresolved"`
}

type serviceSpec struct {
	Name    string      `yaml:"name"`
	Members []yaml.Node `yaml:"members"`
}

type rpcSpec struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// builder accumulates named definitions across a whole fixture, then
// resolves references in a second pass once everything exists.
type builder struct {
	t     *testing.T
	scope map[string]ast.DeclAny
	files map[string]ast.File
	links []func()
}

func newBuilder(t *testing.T) *builder {
	return &builder{
		t:     t,
		scope: make(map[string]ast.DeclAny),
		files: make(map[string]ast.File),
	}
}

// finish runs the deferred resolution pass.
func (b *builder) finish() {
	for _, link := range b.links {
		link()
	}
}

func (b *builder) file(spec fileSpec) ast.File {
	b.t.Helper()
	if spec.Path == "" {
		b.t.Fatalf("asttest: fixture file has no path")
	}

	ctx := ast.NewContext(report.File{Path: spec.Path})
	file := ctx.Root()
	b.files[spec.Path] = file

	// The file's package prefixes every name it defines; scan for it
	// before building so definitions preceding the package declaration
	// still register qualified.
	var pkg string
	for _, n := range spec.Decls {
		if key, value := entry(b.t, n); key == "package" {
			decodeValue(b.t, value, &pkg)
			break
		}
	}

	for _, n := range spec.Decls {
		file.Append(b.decl(ctx, n, pkg, nil))
	}
	return file
}

// decl builds one declaration list entry. prefix is the dotted path of
// enclosing definitions, used to register qualified names.
func (b *builder) decl(ctx *ast.Context, n yaml.Node, pkg string, prefix []string) ast.DeclAny {
	b.t.Helper()
	nodes := ctx.Nodes()

	key, value := entry(b.t, n)
	switch key {
	case "syntax":
		var v string
		decodeValue(b.t, value, &v)
		return nodes.NewSyntax(ast.SyntaxArgs{Value: v}).AsAny()

	case "package":
		var v string
		decodeValue(b.t, value, &v)
		return nodes.NewPackage(ast.PackageArgs{Path: v}).AsAny()

	case "import":
		var spec importSpec
		decodeValue(b.t, value, &spec)
		mod := ast.ImportDefault
		switch {
		case spec.Public:
			mod = ast.ImportPublic
		case spec.Weak:
			mod = ast.ImportWeak
		}
		imp := nodes.NewImport(ast.ImportArgs{Path: spec.Path, Modifier: mod})
		b.links = append(b.links, func() {
			if target, ok := b.files[spec.Path]; ok {
				imp.SetTarget(target)
			}
		})
		return imp.AsAny()

	case "option":
		var spec optionSpec
		decodeValue(b.t, value, &spec)
		return nodes.NewOption(ast.OptionArgs{Name: spec.Name, Value: spec.Value}).AsAny()

	case "message":
		var spec messageSpec
		decodeValue(b.t, value, &spec)
		msg := nodes.NewMessage(ast.MessageArgs{Name: spec.Name})
		path := append(slices.Clone(prefix), spec.Name)
		b.define(pkg, path, msg.AsAny())
		for _, member := range spec.Members {
			msg.Append(b.decl(ctx, member, pkg, path))
		}
		return msg.AsAny()

	case "enum":
		var spec enumSpec
		decodeValue(b.t, value, &spec)
		enum := nodes.NewEnum(ast.EnumArgs{Name: spec.Name})
		path := append(slices.Clone(prefix), spec.Name)
		b.define(pkg, path, enum.AsAny())
		for _, member := range spec.Members {
			enum.Append(b.decl(ctx, member, pkg, path))
		}
		return enum.AsAny()

	case "value":
		var spec valueSpec
		decodeValue(b.t, value, &spec)
		v := nodes.NewEnumValue(ast.EnumValueArgs{Name: spec.Name, Number: spec.Number})
		for _, o := range spec.Options {
			v.AppendOption(nodes.NewOption(ast.OptionArgs{Name: o.Name, Value: o.Value}))
		}
		return v.AsAny()

	case "field":
		var spec fieldSpec
		decodeValue(b.t, value, &spec)
		field := nodes.NewField(ast.FieldArgs{
			Name:   spec.Name,
			Label:  ast.LabelByName(spec.Label),
			Number: spec.Number,
		})
		for _, o := range spec.Options {
			field.AppendOption(nodes.NewOption(ast.OptionArgs{Name: o.Name, Value: o.Value}))
		}
		if spec.Type != "" {
			b.links = append(b.links, func() {
				field.SetType(b.typeRef(spec.Type, spec.Unresolved))
			})
		}
		return field.AsAny()

	case "extend":
		var spec extendSpec
		decodeValue(b.t, value, &spec)
		ext := nodes.NewExtend(ast.ExtendArgs{Extendee: spec.Target})
		for _, member := range spec.Members {
			ext.Append(b.decl(ctx, member, pkg, prefix))
		}
		b.links = append(b.links, func() {
			if spec.Unresolved {
				return
			}
			target := b.lookup(spec.Target).AsMessage()
			if target.IsZero() {
				b.t.Fatalf("asttest: extend target %q is not a message", spec.Target)
			}
			ext.SetTarget(target)
		})
		return ext.AsAny()

	case "service":
		var spec serviceSpec
		decodeValue(b.t, value, &spec)
		svc := nodes.NewService(ast.ServiceArgs{Name: spec.Name})
		for _, member := range spec.Members {
			svc.Append(b.decl(ctx, member, pkg, prefix))
		}
		return svc.AsAny()

	case "rpc":
		var spec rpcSpec
		decodeValue(b.t, value, &spec)
		method := nodes.NewMethod(ast.MethodArgs{Name: spec.Name})
		b.links = append(b.links, func() {
			// Set both at once so the handles observe a consistent pair.
			in := b.typeRef(spec.Input, false)
			out := b.typeRef(spec.Output, false)
			method.SetSignature(in, out)
		})
		return method.AsAny()

	default:
		b.t.Fatalf("asttest: unknown declaration kind %q", key)
		panic("unreachable")
	}
}

// define registers a message or enum under every name a fixture may
// refer to it by. Earlier definitions win collisions; fixtures that
// need to disambiguate use the qualified forms.
func (b *builder) define(pkg string, path []string, d ast.DeclAny) {
	qualified := strings.Join(path, ".")
	names := []string{qualified, path[len(path)-1]}
	if pkg != "" {
		names = append(names, pkg+"."+qualified)
	}
	for _, name := range names {
		if _, taken := b.scope[name]; !taken {
			b.scope[name] = d
		}
	}
}

func (b *builder) lookup(name string) ast.DeclAny {
	return b.scope[name]
}

// typeRef resolves a type name from a fixture: a predeclared scalar,
// or a message or enum defined somewhere in the fixture.
func (b *builder) typeRef(name string, unresolved bool) ast.TypeRef {
	b.t.Helper()
	if name == "" {
		return ast.TypeRef{}
	}
	if scalar := predeclared.Lookup(name); scalar != predeclared.Unknown {
		return ast.ScalarType(scalar)
	}
	if unresolved {
		return ast.NamedType(name, ast.DeclAny{})
	}
	target := b.lookup(name)
	if target.IsZero() {
		b.t.Fatalf("asttest: type %q is not defined anywhere in the fixture", name)
	}
	return ast.NamedType(name, target)
}

func decode(t *testing.T, text string, into any) {
	t.Helper()
	if err := yaml.Unmarshal([]byte(text), into); err != nil {
		t.Fatalf("asttest: invalid fixture: %v", err)
	}
}

func decodeValue(t *testing.T, n *yaml.Node, into any) {
	t.Helper()
	if err := n.Decode(into); err != nil {
		t.Fatalf("asttest: invalid fixture entry: %v", err)
	}
}

// entry splits a single-key mapping like {field: {...}} into its key
// and value.
func entry(t *testing.T, n yaml.Node) (string, *yaml.Node) {
	t.Helper()
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		t.Fatalf("asttest: declaration entries must be single-key mappings (line %d)", n.Line)
	}
	return n.Content[0].Value, n.Content[1]
}
