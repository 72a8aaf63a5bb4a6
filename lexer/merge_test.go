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

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/cfmt/source"
	"github.com/bufbuild/cfmt/style"
	"github.com/bufbuild/cfmt/token"
)

// produce steps the lexer by n tokens without running the merge rules, so
// individual rules can be exercised in isolation.
func produce(l *Lexer, n int) {
	for range n {
		l.stream.Append(l.next())
	}
}

func TestTryMergeTokens(t *testing.T) {
	t.Parallel()

	l := New(source.NewFile("test.cc", "x);"), style.Default())
	produce(l, 3)

	ok := l.tryMergeTokens([]token.Kind{token.RParen, token.Semi}, token.ImplicitStringLiteral)
	require.True(t, ok)

	require.Equal(t, 2, l.stream.Len())
	merged := l.stream.Last()
	assert.Equal(t, ");", merged.Text)
	assert.Equal(t, token.RParen, merged.Kind, "the head token keeps its kind")
	assert.Equal(t, token.ImplicitStringLiteral, merged.Semantic)
	assert.Equal(t, 2, merged.FirstLineColumnWidth)
}

func TestTryMergeTokensRejectsWhitespace(t *testing.T) {
	t.Parallel()

	l := New(source.NewFile("test.cc", "x ) ;"), style.Default())
	produce(l, 3)

	ok := l.tryMergeTokens([]token.Kind{token.RParen, token.Semi}, token.ImplicitStringLiteral)
	assert.False(t, ok)
	assert.Equal(t, 3, l.stream.Len())
}

func TestTryMergeTokensRejectsKindMismatch(t *testing.T) {
	t.Parallel()

	l := New(source.NewFile("test.cc", "x);"), style.Default())
	produce(l, 3)

	assert.False(t, l.tryMergeTokens([]token.Kind{token.LParen, token.Semi}, token.SemanticNone))
	assert.False(t, l.tryMergeTokens([]token.Kind{token.RParen, token.Comma}, token.SemanticNone))
	assert.False(t, l.tryMergeTokens(
		[]token.Kind{token.Identifier, token.RParen, token.Semi, token.Semi}, token.SemanticNone))
}

func TestStashedShiftHalf(t *testing.T) {
	t.Parallel()

	l := New(source.NewFile("test.cc", "a<<b"), style.Default())
	produce(l, 3) // a, then the split "<", then the stashed "<".

	second := l.stream.Last()
	assert.Equal(t, token.Less, second.Kind)
	assert.Equal(t, "<", second.Text)
	assert.Equal(t, 2, second.Offset)
	assert.Equal(t, 2, second.OriginalColumn)
	assert.False(t, second.HasWhitespaceBefore())
}
