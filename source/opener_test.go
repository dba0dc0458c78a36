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

package source_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanqidong1992/protobuf-dt/source"
)

func TestMap(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	m := source.Map{"a.proto": `syntax = "proto3";`}

	text, err := m.Open("a.proto")
	assert.NoError(err)
	assert.Equal(`syntax = "proto3";`, text)

	_, err = m.Open("missing.proto")
	assert.ErrorIs(err, fs.ErrNotExist)
}

func TestFS(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	fsys := fstest.MapFS{
		"proto/a.proto": &fstest.MapFile{Data: []byte("package a;")},
	}

	opener := &source.FS{FS: fsys}
	text, err := opener.Open("proto/a.proto")
	assert.NoError(err)
	assert.Equal("package a;", text)

	_, err = opener.Open("proto/missing.proto")
	assert.ErrorIs(err, fs.ErrNotExist)

	mapped := &source.FS{
		FS:         fsys,
		PathMapper: func(path string) string { return "proto/" + path },
	}
	text, err = mapped.Open("a.proto")
	assert.NoError(err)
	assert.Equal("package a;", text)
}

func TestOpeners(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	primary := source.Map{"a.proto": "first"}
	fallback := source.Map{
		"a.proto": "shadowed",
		"b.proto": "second",
	}
	chain := source.Openers{primary, fallback}

	text, err := chain.Open("a.proto")
	require.NoError(err)
	assert.Equal("first", text, "earlier openers win")

	text, err = chain.Open("b.proto")
	require.NoError(err)
	assert.Equal("second", text)

	_, err = chain.Open("c.proto")
	assert.ErrorIs(err, fs.ErrNotExist)
}
