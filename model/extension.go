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
	"github.com/tanqidong1992/protobuf-dt/walk"
)

// MessageFrom returns the message an extension block extends, or zero
// if the block's target has not been resolved.
func MessageFrom(e ast.Extend) ast.Message {
	return e.Target()
}

// ExtensionsOf collects every extension block under root whose
// resolved target is m, at any nesting depth, in pre-order discovery
// order. Blocks with unresolved targets and blocks extending other
// messages are skipped. Returns nil when there are none.
//
// Matching is by node identity, not by name: a message that merely
// shares m's name does not match.
func ExtensionsOf(m ast.Message, root ast.File) []ast.Extend {
	if m.IsZero() || root.IsZero() {
		return nil
	}

	var found []ast.Extend
	seen := make(map[ast.Extend]struct{})
	for d := range walk.OfKind(root.AsAny(), ast.DeclKindExtend) {
		ext := d.AsExtend()
		if MessageFrom(ext) != m {
			continue
		}
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		found = append(found, ext)
	}
	return found
}

// LocalExtensionsOf collects the extension blocks that extend m within
// m's own file. Extensions of m declared in other files are invisible
// to this query; discovering those is the caller's composition over
// whatever import closure it cares about.
func LocalExtensionsOf(m ast.Message) []ast.Extend {
	if m.IsZero() {
		return nil
	}
	return ExtensionsOf(m, RootOf(m.AsAny()))
}
