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
	"github.com/tanqidong1992/protobuf-dt/seq"
)

// Message is a message definition: a named, ordered collection of
// fields and nested definitions.
type Message struct {
	declImpl[rawMessage]
}

type rawMessage struct {
	parent rawRef
	name   string
	body   rawBody
	span   rawSpan
}

// Name returns the message's declared name.
func (m Message) Name() string {
	if m.IsZero() {
		return ""
	}
	return m.raw().name
}

// Decls returns the message's members, in source order. This includes
// every kind of member: fields, options, nested messages and enums,
// extension blocks, and so on.
func (m Message) Decls() seq.Indexer[DeclAny] {
	return m.AsAny().Decls()
}

// Append adds a member at the end of the message.
func (m Message) Append(d DeclAny) {
	appendDecl(m.AsAny(), d)
}

// Span returns this declaration's source location.
func (m Message) Span() report.Span {
	if m.IsZero() {
		return report.Span{}
	}
	return m.ctx.span(m.raw().span)
}

// Enum is an enum definition: a named set of constant values.
type Enum struct {
	declImpl[rawEnum]
}

type rawEnum struct {
	parent rawRef
	name   string
	body   rawBody
	span   rawSpan
}

// Name returns the enum's declared name.
func (e Enum) Name() string {
	if e.IsZero() {
		return ""
	}
	return e.raw().name
}

// Decls returns the enum's members, in source order.
func (e Enum) Decls() seq.Indexer[DeclAny] {
	return e.AsAny().Decls()
}

// Append adds a member at the end of the enum.
func (e Enum) Append(d DeclAny) {
	appendDecl(e.AsAny(), d)
}

// Span returns this declaration's source location.
func (e Enum) Span() report.Span {
	if e.IsZero() {
		return report.Span{}
	}
	return e.ctx.span(e.raw().span)
}

// Extend is an extension block: a declaration of the form
// "extend <message> { ... }" that adds fields to a message defined
// elsewhere.
type Extend struct {
	declImpl[rawExtend]
}

type rawExtend struct {
	parent   rawRef
	extendee string
	target   rawLink
	body     rawBody
	span     rawSpan
}

// Extendee returns the path of the extended message as written, such
// as "Person" or "foo.bar.Person".
func (e Extend) Extendee() string {
	if e.IsZero() {
		return ""
	}
	return e.raw().extendee
}

// Target returns the message this block resolved to, or zero if it has
// not been resolved. The target may live in another file.
func (e Extend) Target() Message {
	if e.IsZero() {
		return Message{}
	}
	return e.raw().target.decl().AsMessage()
}

// SetTarget records the message this block extends. The target may
// belong to any context. A zero message clears the link.
func (e Extend) SetTarget(m Message) {
	e.raw().target = linkTo(m.AsAny())
}

// Decls returns the block's members, in source order.
func (e Extend) Decls() seq.Indexer[DeclAny] {
	return e.AsAny().Decls()
}

// Append adds a member at the end of the block.
func (e Extend) Append(d DeclAny) {
	appendDecl(e.AsAny(), d)
}

// Span returns this declaration's source location.
func (e Extend) Span() report.Span {
	if e.IsZero() {
		return report.Span{}
	}
	return e.ctx.span(e.raw().span)
}

// Service is a service definition: a named collection of methods.
type Service struct {
	declImpl[rawService]
}

type rawService struct {
	parent rawRef
	name   string
	body   rawBody
	span   rawSpan
}

// Name returns the service's declared name.
func (s Service) Name() string {
	if s.IsZero() {
		return ""
	}
	return s.raw().name
}

// Decls returns the service's members, in source order.
func (s Service) Decls() seq.Indexer[DeclAny] {
	return s.AsAny().Decls()
}

// Append adds a member at the end of the service.
func (s Service) Append(d DeclAny) {
	appendDecl(s.AsAny(), d)
}

// Span returns this declaration's source location.
func (s Service) Span() report.Span {
	if s.IsZero() {
		return report.Span{}
	}
	return s.ctx.span(s.raw().span)
}
