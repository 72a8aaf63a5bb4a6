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

package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/cfmt/style"
	"github.com/bufbuild/cfmt/width"
)

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := style.Parse([]byte(`
TabWidth: 4
Encoding: Binary
ForEachMacros: [FOREACH, LIST_FOR_EACH]
MacroBlockBegin: "^NS_MAP_BEGIN$"
MacroBlockEnd: "^NS_MAP_END$"
`))
	require.NoError(t, err)
	assert.Equal(t, 4, s.TabWidth)
	assert.Equal(t, width.Binary, s.Encoding)
	assert.Equal(t, []string{"FOREACH", "LIST_FOR_EACH"}, s.ForEachMacros)
	assert.Equal(t, "^NS_MAP_BEGIN$", s.MacroBlockBegin)
	assert.Equal(t, "^NS_MAP_END$", s.MacroBlockEnd)
}

func TestParseKeepsDefaults(t *testing.T) {
	t.Parallel()

	s, err := style.Parse([]byte("TabWidth: 2"))
	require.NoError(t, err)

	def := style.Default()
	assert.Equal(t, 2, s.TabWidth)
	assert.Equal(t, def.Encoding, s.Encoding)
	assert.Equal(t, def.ForEachMacros, s.ForEachMacros)
	assert.Equal(t, "", s.MacroBlockBegin)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := style.Parse([]byte("TabWidth: 0"))
	assert.Error(t, err)

	_, err = style.Parse([]byte("Encoding: EBCDIC"))
	assert.Error(t, err)

	_, err = style.Parse([]byte(`MacroBlockBegin: "("`))
	assert.Error(t, err)

	_, err = style.Parse([]byte(":::not yaml"))
	assert.Error(t, err)
}

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	assert.NoError(t, style.Default().Validate())
}
