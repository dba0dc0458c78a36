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

// Package validation checks schema trees for findings a front end
// should surface: syntax identifiers, field numbering, and import
// resolution.
//
// Findings are not errors; they accumulate as diagnostics in a
// [report.Report], each tagged with a stable catalog code so front
// ends can filter, localize, or re-render them.
package validation

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tanqidong1992/protobuf-dt/report"
)

// Code identifies one class of finding in the message catalog.
type Code string

// All codes in the message catalog.
const (
	ExpectedFieldName            Code = "expected-field-name"
	ExpectedFieldNumber          Code = "expected-field-number"
	ExpectedSyntaxIdentifier     Code = "expected-syntax-identifier"
	FieldNumberAlreadyUsed       Code = "field-number-already-used"
	FieldNumbersMustBePositive   Code = "field-numbers-must-be-positive"
	ImportNotFound               Code = "import-not-found"
	MissingFieldNumber           Code = "missing-field-number"
	UnrecognizedSyntaxIdentifier Code = "unrecognized-syntax-identifier"
)

//go:embed messages.yaml
var messagesYAML []byte

// templates is the loaded catalog. It is built once and never written
// again, so lock-free reads are safe.
var templates = func() map[Code]string {
	var entries []struct {
		Code    Code   `yaml:"code"`
		Message string `yaml:"message"`
	}
	if err := yaml.Unmarshal(messagesYAML, &entries); err != nil {
		panic(fmt.Sprintf("validation: malformed message catalog: %v", err))
	}

	m := make(map[Code]string, len(entries))
	for _, e := range entries {
		if e.Code == "" || e.Message == "" {
			panic(fmt.Sprintf("validation: incomplete catalog entry %q", e.Code))
		}
		if _, dup := m[e.Code]; dup {
			panic(fmt.Sprintf("validation: duplicate catalog code %q", e.Code))
		}
		m[e.Code] = e.Message
	}
	return m
}()

// Message returns the catalog template for this code.
//
// Unknown codes panic: the catalog and the constants above are
// maintained together, so a miss is a programming error.
func (c Code) Message() string {
	template, ok := templates[c]
	if !ok {
		panic(fmt.Sprintf("validation: unknown message code %q", c))
	}
	return template
}

// Errorf formats this code's catalog template into an error.
func (c Code) Errorf(args ...any) error {
	return fmt.Errorf(c.Message(), args...)
}

// diag pushes an error-level finding for code onto r, located at the
// given node.
func diag(r *report.Report, code Code, at report.Spanner, args ...any) {
	r.Error(code.Errorf(args...),
		report.Snippet(at),
		report.Code(string(code)),
	)
}
