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

package width_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/cfmt/width"
)

func TestColumnWidthWithTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		startColumn int
		tabWidth    int
		encoding    width.Encoding
		want        int
	}{
		{"plain", "hello", 0, 8, width.UTF8, 5},
		{"empty", "", 10, 8, width.UTF8, 0},
		{"tab from zero", "\t", 0, 8, width.UTF8, 8},
		{"tab mid stop", "\t", 3, 8, width.UTF8, 5},
		{"tab at stop", "\t", 8, 8, width.UTF8, 8},
		{"two tabs tw4", "\t\t", 0, 4, width.UTF8, 8},
		{"text then tab", "ab\tc", 0, 4, width.UTF8, 5},
		{"start offsets tab", "a\t", 2, 4, width.UTF8, 2},
		{"wide glyphs", "你好", 0, 8, width.UTF8, 4},
		{"wide then tab", "你\t", 0, 4, width.UTF8, 4},
		{"binary counts bytes", "你好", 0, 8, width.Binary, 6},
		{"binary tab", "a\tb", 0, 4, width.Binary, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := width.ColumnWidthWithTabs(tt.text, tt.startColumn, tt.tabWidth, tt.encoding)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, width.StringWidth("abc", width.UTF8))
	assert.Equal(t, 2, width.StringWidth("世", width.UTF8))
	assert.Equal(t, 3, width.StringWidth("世", width.Binary))
}

func TestNonPositiveTabWidth(t *testing.T) {
	t.Parallel()

	// A broken tab width falls back to the default rather than dividing
	// by zero.
	assert.Equal(t, width.DefaultTabWidth, width.ColumnWidthWithTabs("\t", 0, 0, width.UTF8))
}
