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

	"github.com/tanqidong1992/protobuf-dt/internal/arena"
	"github.com/tanqidong1992/protobuf-dt/report"
	"github.com/tanqidong1992/protobuf-dt/seq"
)

// DeclKind identifies the kind of node a [DeclAny] refers to.
type DeclKind int8

const (
	DeclKindInvalid DeclKind = iota
	DeclKindFile
	DeclKindSyntax
	DeclKindPackage
	DeclKindImport
	DeclKindOption
	DeclKindMessage
	DeclKindEnum
	DeclKindEnumValue
	DeclKindField
	DeclKindExtend
	DeclKindService
	DeclKindMethod
)

// String implements [fmt.Stringer].
func (k DeclKind) String() string {
	switch k {
	case DeclKindFile:
		return "file"
	case DeclKindSyntax:
		return "syntax"
	case DeclKindPackage:
		return "package"
	case DeclKindImport:
		return "import"
	case DeclKindOption:
		return "option"
	case DeclKindMessage:
		return "message"
	case DeclKindEnum:
		return "enum"
	case DeclKindEnumValue:
		return "enum value"
	case DeclKindField:
		return "field"
	case DeclKindExtend:
		return "extend"
	case DeclKindService:
		return "service"
	case DeclKindMethod:
		return "method"
	default:
		return fmt.Sprintf("DeclKind(%d)", int8(k))
	}
}

// DeclAny is any declaration in a file's tree.
//
// It is the type-erased form of the concrete handle types; conceptually
// a tagged union of all of them. Use [DeclAny.Kind] to inspect which
// kind of node it is, and the As* methods to narrow it back to a
// concrete handle. Narrowing to the wrong kind yields a zero handle.
type DeclAny struct {
	withContext

	ptr  arena.Untyped
	kind DeclKind
}

// Kind returns the kind of declaration this is.
func (d DeclAny) Kind() DeclKind {
	if d.IsZero() {
		return DeclKindInvalid
	}
	return d.kind
}

// IsZero reports whether this is the zero declaration.
func (d DeclAny) IsZero() bool {
	return d.ctx == nil || d.ptr.Nil()
}

// AsFile narrows this declaration to a [File], or returns zero.
func (d DeclAny) AsFile() File {
	if d.kind != DeclKindFile {
		return File{}
	}
	return File{wrapDecl(d.ctx, arena.Pointer[rawFile](d.ptr))}
}

// AsSyntax narrows this declaration to a [Syntax], or returns zero.
func (d DeclAny) AsSyntax() Syntax {
	if d.kind != DeclKindSyntax {
		return Syntax{}
	}
	return Syntax{wrapDecl(d.ctx, arena.Pointer[rawSyntax](d.ptr))}
}

// AsPackage narrows this declaration to a [Package], or returns zero.
func (d DeclAny) AsPackage() Package {
	if d.kind != DeclKindPackage {
		return Package{}
	}
	return Package{wrapDecl(d.ctx, arena.Pointer[rawPackage](d.ptr))}
}

// AsImport narrows this declaration to an [Import], or returns zero.
func (d DeclAny) AsImport() Import {
	if d.kind != DeclKindImport {
		return Import{}
	}
	return Import{wrapDecl(d.ctx, arena.Pointer[rawImport](d.ptr))}
}

// AsOption narrows this declaration to an [Option], or returns zero.
func (d DeclAny) AsOption() Option {
	if d.kind != DeclKindOption {
		return Option{}
	}
	return Option{wrapDecl(d.ctx, arena.Pointer[rawOption](d.ptr))}
}

// AsMessage narrows this declaration to a [Message], or returns zero.
func (d DeclAny) AsMessage() Message {
	if d.kind != DeclKindMessage {
		return Message{}
	}
	return Message{wrapDecl(d.ctx, arena.Pointer[rawMessage](d.ptr))}
}

// AsEnum narrows this declaration to an [Enum], or returns zero.
func (d DeclAny) AsEnum() Enum {
	if d.kind != DeclKindEnum {
		return Enum{}
	}
	return Enum{wrapDecl(d.ctx, arena.Pointer[rawEnum](d.ptr))}
}

// AsEnumValue narrows this declaration to an [EnumValue], or returns
// zero.
func (d DeclAny) AsEnumValue() EnumValue {
	if d.kind != DeclKindEnumValue {
		return EnumValue{}
	}
	return EnumValue{wrapDecl(d.ctx, arena.Pointer[rawEnumValue](d.ptr))}
}

// AsField narrows this declaration to a [Field], or returns zero.
func (d DeclAny) AsField() Field {
	if d.kind != DeclKindField {
		return Field{}
	}
	return Field{wrapDecl(d.ctx, arena.Pointer[rawField](d.ptr))}
}

// AsExtend narrows this declaration to an [Extend], or returns zero.
func (d DeclAny) AsExtend() Extend {
	if d.kind != DeclKindExtend {
		return Extend{}
	}
	return Extend{wrapDecl(d.ctx, arena.Pointer[rawExtend](d.ptr))}
}

// AsService narrows this declaration to a [Service], or returns zero.
func (d DeclAny) AsService() Service {
	if d.kind != DeclKindService {
		return Service{}
	}
	return Service{wrapDecl(d.ctx, arena.Pointer[rawService](d.ptr))}
}

// AsMethod narrows this declaration to a [Method], or returns zero.
func (d DeclAny) AsMethod() Method {
	if d.kind != DeclKindMethod {
		return Method{}
	}
	return Method{wrapDecl(d.ctx, arena.Pointer[rawMethod](d.ptr))}
}

// Parent returns the declaration this one is contained in, or zero for
// a [File] and for nodes not yet inserted anywhere.
func (d DeclAny) Parent() DeclAny {
	if d.IsZero() {
		return DeclAny{}
	}
	slot := d.ctx.parentSlot(d)
	if slot == nil {
		return DeclAny{}
	}
	return slot.with(d.ctx)
}

// Decls returns the declarations directly contained in this one: a
// container's members, or a field's compact options. Leaf declarations
// yield an empty sequence.
func (d DeclAny) Decls() seq.Indexer[DeclAny] {
	if d.IsZero() {
		return declList{}
	}
	return declList{d.ctx, d.ctx.bodySlot(d)}
}

// Span returns this declaration's source location.
func (d DeclAny) Span() report.Span {
	switch d.Kind() {
	case DeclKindFile:
		return d.AsFile().Span()
	case DeclKindSyntax:
		return d.AsSyntax().Span()
	case DeclKindPackage:
		return d.AsPackage().Span()
	case DeclKindImport:
		return d.AsImport().Span()
	case DeclKindOption:
		return d.AsOption().Span()
	case DeclKindMessage:
		return d.AsMessage().Span()
	case DeclKindEnum:
		return d.AsEnum().Span()
	case DeclKindEnumValue:
		return d.AsEnumValue().Span()
	case DeclKindField:
		return d.AsField().Span()
	case DeclKindExtend:
		return d.AsExtend().Span()
	case DeclKindService:
		return d.AsService().Span()
	case DeclKindMethod:
		return d.AsMethod().Span()
	default:
		return report.Span{}
	}
}

// ref converts this declaration into an intra-context reference.
func (d DeclAny) ref() rawRef {
	return rawRef{ptr: d.ptr, kind: d.kind}
}

// declImpl is the common representation of the concrete handle types:
// a context plus a compressed pointer into one of its arenas.
type declImpl[Raw any] struct {
	withContext
	ptr arena.Pointer[Raw]
}

func wrapDecl[Raw any](ctx *Context, ptr arena.Pointer[Raw]) declImpl[Raw] {
	if ctx == nil || ptr.Nil() {
		return declImpl[Raw]{}
	}
	return declImpl[Raw]{withContext{ctx}, ptr}
}

// IsZero reports whether this is the zero handle.
func (d declImpl[Raw]) IsZero() bool {
	return d.ctx == nil || d.ptr.Nil()
}

// AsAny type-erases this handle.
func (d declImpl[Raw]) AsAny() DeclAny {
	if d.IsZero() {
		return DeclAny{}
	}
	kind, _ := declArena[Raw](&d.ctx.decls)
	return DeclAny{d.withContext, d.ptr.Untyped(), kind}
}

// raw returns the node's arena storage. Callers must check IsZero
// first; dereferencing a zero handle panics.
func (d declImpl[Raw]) raw() *Raw {
	_, a := declArena[Raw](&d.ctx.decls)
	return d.ptr.In(a)
}

// decls is the collection of arenas a [Context] allocates nodes from.
type decls struct {
	files      arena.Arena[rawFile]
	syntaxes   arena.Arena[rawSyntax]
	packages   arena.Arena[rawPackage]
	imports    arena.Arena[rawImport]
	options    arena.Arena[rawOption]
	messages   arena.Arena[rawMessage]
	enums      arena.Arena[rawEnum]
	enumValues arena.Arena[rawEnumValue]
	fields     arena.Arena[rawField]
	extends    arena.Arena[rawExtend]
	services   arena.Arena[rawService]
	methods    arena.Arena[rawMethod]
}

// declArena maps a raw node type to its kind and its arena within d.
func declArena[Raw any](d *decls) (DeclKind, *arena.Arena[Raw]) {
	var (
		kind DeclKind
		a    any
	)
	switch any((*Raw)(nil)).(type) {
	case *rawFile:
		kind, a = DeclKindFile, &d.files
	case *rawSyntax:
		kind, a = DeclKindSyntax, &d.syntaxes
	case *rawPackage:
		kind, a = DeclKindPackage, &d.packages
	case *rawImport:
		kind, a = DeclKindImport, &d.imports
	case *rawOption:
		kind, a = DeclKindOption, &d.options
	case *rawMessage:
		kind, a = DeclKindMessage, &d.messages
	case *rawEnum:
		kind, a = DeclKindEnum, &d.enums
	case *rawEnumValue:
		kind, a = DeclKindEnumValue, &d.enumValues
	case *rawField:
		kind, a = DeclKindField, &d.fields
	case *rawExtend:
		kind, a = DeclKindExtend, &d.extends
	case *rawService:
		kind, a = DeclKindService, &d.services
	case *rawMethod:
		kind, a = DeclKindMethod, &d.methods
	default:
		panic(fmt.Sprintf("ast: unknown decl type %T", (*Raw)(nil)))
	}
	return kind, a.(*arena.Arena[Raw])
}

// rawRef is an intra-context reference to a node: its kind and arena
// index. The zero value refers to nothing.
type rawRef struct {
	ptr  arena.Untyped
	kind DeclKind
}

// with wraps this reference into a declaration handle for ctx.
func (r rawRef) with(ctx *Context) DeclAny {
	if r.ptr.Nil() {
		return DeclAny{}
	}
	return DeclAny{withContext{ctx}, r.ptr, r.kind}
}

// rawLink is a reference to a node in an arbitrary context. Links are
// how resolved cross-file information (type references, import and
// extend targets) is stored. A nil context means unresolved.
type rawLink struct {
	ctx  *Context
	ptr  arena.Untyped
	kind DeclKind
}

// decl returns the linked declaration, or zero if unresolved.
func (l rawLink) decl() DeclAny {
	if l.ctx == nil || l.ptr.Nil() {
		return DeclAny{}
	}
	return DeclAny{withContext{l.ctx}, l.ptr, l.kind}
}

func linkTo(d DeclAny) rawLink {
	if d.IsZero() {
		return rawLink{}
	}
	return rawLink{ctx: d.ctx, ptr: d.ptr, kind: d.kind}
}

// rawBody is the ordered list of declarations a container node holds.
// Kinds and pointers are co-indexed; storing them separately avoids
// padding every entry out to eight bytes.
type rawBody struct {
	kinds []DeclKind
	ptrs  []arena.Untyped
}

// declList is a [seq.Indexer] view over a rawBody. A nil raw is an
// empty list, so leaves and zero handles need no special casing.
type declList struct {
	ctx *Context
	raw *rawBody
}

var _ seq.Indexer[DeclAny] = declList{}

func (l declList) Len() int {
	if l.raw == nil {
		return 0
	}
	return len(l.raw.ptrs)
}

func (l declList) At(idx int) DeclAny {
	return DeclAny{withContext{l.ctx}, l.raw.ptrs[idx], l.raw.kinds[idx]}
}

// parentSlot returns the storage for a node's parent back-reference,
// or nil for a [File], which cannot have a parent.
func (c *Context) parentSlot(d DeclAny) *rawRef {
	switch d.kind {
	case DeclKindFile:
		return nil
	case DeclKindSyntax:
		return &arena.Pointer[rawSyntax](d.ptr).In(&c.decls.syntaxes).parent
	case DeclKindPackage:
		return &arena.Pointer[rawPackage](d.ptr).In(&c.decls.packages).parent
	case DeclKindImport:
		return &arena.Pointer[rawImport](d.ptr).In(&c.decls.imports).parent
	case DeclKindOption:
		return &arena.Pointer[rawOption](d.ptr).In(&c.decls.options).parent
	case DeclKindMessage:
		return &arena.Pointer[rawMessage](d.ptr).In(&c.decls.messages).parent
	case DeclKindEnum:
		return &arena.Pointer[rawEnum](d.ptr).In(&c.decls.enums).parent
	case DeclKindEnumValue:
		return &arena.Pointer[rawEnumValue](d.ptr).In(&c.decls.enumValues).parent
	case DeclKindField:
		return &arena.Pointer[rawField](d.ptr).In(&c.decls.fields).parent
	case DeclKindExtend:
		return &arena.Pointer[rawExtend](d.ptr).In(&c.decls.extends).parent
	case DeclKindService:
		return &arena.Pointer[rawService](d.ptr).In(&c.decls.services).parent
	case DeclKindMethod:
		return &arena.Pointer[rawMethod](d.ptr).In(&c.decls.methods).parent
	default:
		panic(fmt.Sprintf("ast: unknown decl kind %v", d.kind))
	}
}

// bodySlot returns the storage for a node's contained declarations, or
// nil for leaf kinds.
func (c *Context) bodySlot(d DeclAny) *rawBody {
	switch d.kind {
	case DeclKindFile:
		return &arena.Pointer[rawFile](d.ptr).In(&c.decls.files).body
	case DeclKindMessage:
		return &arena.Pointer[rawMessage](d.ptr).In(&c.decls.messages).body
	case DeclKindEnum:
		return &arena.Pointer[rawEnum](d.ptr).In(&c.decls.enums).body
	case DeclKindEnumValue:
		return &arena.Pointer[rawEnumValue](d.ptr).In(&c.decls.enumValues).body
	case DeclKindField:
		return &arena.Pointer[rawField](d.ptr).In(&c.decls.fields).body
	case DeclKindExtend:
		return &arena.Pointer[rawExtend](d.ptr).In(&c.decls.extends).body
	case DeclKindService:
		return &arena.Pointer[rawService](d.ptr).In(&c.decls.services).body
	case DeclKindMethod:
		return &arena.Pointer[rawMethod](d.ptr).In(&c.decls.methods).body
	default:
		return nil
	}
}

// appendDecl inserts child at the end of owner's body and points the
// child's parent link back at owner.
func appendDecl(owner, child DeclAny) {
	if owner.IsZero() {
		panic("ast: appended to a zero declaration")
	}
	ctx := owner.Context()
	ctx.panicIfNotOurs(child)
	if child.IsZero() {
		panic("ast: appended a zero declaration")
	}
	if child.Kind() == DeclKindFile {
		panic("ast: a file cannot be contained in another declaration")
	}

	slot := ctx.parentSlot(child)
	if !slot.ptr.Nil() {
		panic(fmt.Sprintf(
			"ast: %v is already contained in a %v; a declaration can be inserted at most once",
			child.Kind(), slot.kind,
		))
	}
	*slot = owner.ref()

	body := ctx.bodySlot(owner)
	body.kinds = append(body.kinds, child.kind)
	body.ptrs = append(body.ptrs, child.ptr)
}
