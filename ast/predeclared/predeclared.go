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

// Package predeclared provides the identifiers with a special meaning in
// a Protobuf-like schema language.
//
// These are not keywords: they are names the language injects into scope
// wherever a type path may appear. A field typed string resolves to the
// built-in string type even when a message named string exists nearby.
package predeclared

import "fmt"

// Name is one of the built-in scalar type names.
type Name byte

const (
	Unknown Name = iota

	// Varint types: 32/64-bit signed, unsigned, and Zig-Zag.
	Int32
	Int64
	UInt32
	UInt64
	SInt32
	SInt64

	// Fixed integer types: 32/64-bit unsigned and signed.
	Fixed32
	Fixed64
	SFixed32
	SFixed64

	// Floating-point types: 32/64-bit, using C-style names.
	Float
	Double

	Bool   // Booleans.
	String // Textual strings (ostensibly UTF-8).
	Bytes  // Arbitrary byte blobs.

	total // Must be last.

	// Aliases for the floating-point types with explicit bit-sizes.
	Float32 = Float
	Float64 = Double
)

var names = [total]string{
	Unknown:  "unknown",
	Int32:    "int32",
	Int64:    "int64",
	UInt32:   "uint32",
	UInt64:   "uint64",
	SInt32:   "sint32",
	SInt64:   "sint64",
	Fixed32:  "fixed32",
	Fixed64:  "fixed64",
	SFixed32: "sfixed32",
	SFixed64: "sfixed64",
	Float:    "float",
	Double:   "double",
	Bool:     "bool",
	String:   "string",
	Bytes:    "bytes",
}

var byName = func() map[string]Name {
	m := make(map[string]Name, total)
	for n := Name(1); n < total; n++ {
		m[names[n]] = n
	}
	return m
}()

// String implements [fmt.Stringer].
func (n Name) String() string {
	if n >= total {
		return fmt.Sprintf("Name(%d)", byte(n))
	}
	return names[n]
}

// Lookup looks up a builtin type by name.
//
// If name does not name a builtin, returns [Unknown].
func Lookup(name string) Name {
	return byName[name]
}
