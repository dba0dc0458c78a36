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

package predeclared

import "google.golang.org/protobuf/types/descriptorpb"

// FieldDescriptorType maps a scalar name to the corresponding descriptor
// type tag, for handing resolved fields to descriptor-based tooling.
//
// ok is false when n is not a scalar; message/enum fields get their tag
// from the resolved target, not from the type name.
func (n Name) FieldDescriptorType() (_ descriptorpb.FieldDescriptorProto_Type, ok bool) {
	switch n {
	case Double:
		return descriptorpb.FieldDescriptorProto_TYPE_DOUBLE, true
	case Float:
		return descriptorpb.FieldDescriptorProto_TYPE_FLOAT, true
	case Int64:
		return descriptorpb.FieldDescriptorProto_TYPE_INT64, true
	case UInt64:
		return descriptorpb.FieldDescriptorProto_TYPE_UINT64, true
	case Int32:
		return descriptorpb.FieldDescriptorProto_TYPE_INT32, true
	case Fixed64:
		return descriptorpb.FieldDescriptorProto_TYPE_FIXED64, true
	case Fixed32:
		return descriptorpb.FieldDescriptorProto_TYPE_FIXED32, true
	case Bool:
		return descriptorpb.FieldDescriptorProto_TYPE_BOOL, true
	case String:
		return descriptorpb.FieldDescriptorProto_TYPE_STRING, true
	case Bytes:
		return descriptorpb.FieldDescriptorProto_TYPE_BYTES, true
	case UInt32:
		return descriptorpb.FieldDescriptorProto_TYPE_UINT32, true
	case SFixed32:
		return descriptorpb.FieldDescriptorProto_TYPE_SFIXED32, true
	case SFixed64:
		return descriptorpb.FieldDescriptorProto_TYPE_SFIXED64, true
	case SInt32:
		return descriptorpb.FieldDescriptorProto_TYPE_SINT32, true
	case SInt64:
		return descriptorpb.FieldDescriptorProto_TYPE_SINT64, true
	default:
		return 0, false
	}
}
