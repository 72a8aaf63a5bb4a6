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

package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/cfmt/scanner"
	"github.com/bufbuild/cfmt/source"
	"github.com/bufbuild/cfmt/token"
)

type raw struct {
	kind token.Kind
	text string
}

// scanAll scans text to EOF and returns the tokens with their spellings
// resolved, excluding the EOF token.
func scanAll(t *testing.T, text string) []raw {
	t.Helper()

	file := source.NewFile("test.cc", text)
	s := scanner.New(file)

	var got []raw
	for {
		tok := s.Next()
		if tok.Kind == token.EOF {
			require.Equal(t, len(text), tok.Offset)
			require.Equal(t, 0, tok.Length)
			return got
		}
		got = append(got, raw{tok.Kind, text[tok.Offset : tok.Offset+tok.Length]})
	}
}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []raw
	}{
		{
			"shift", "x << y",
			[]raw{
				{token.RawIdentifier, "x"},
				{token.Unknown, " "},
				{token.LessLess, "<<"},
				{token.Unknown, " "},
				{token.RawIdentifier, "y"},
			},
		},
		{
			"nested template", "vector<vector<int>>",
			[]raw{
				{token.RawIdentifier, "vector"},
				{token.Less, "<"},
				{token.RawIdentifier, "vector"},
				{token.Less, "<"},
				{token.RawIdentifier, "int"},
				{token.GreaterGreater, ">>"},
			},
		},
		{
			"line comment", "// hi\nx",
			[]raw{
				{token.Comment, "// hi"},
				{token.Unknown, "\n"},
				{token.RawIdentifier, "x"},
			},
		},
		{
			"block comment", "/* a\nb */x",
			[]raw{
				{token.Comment, "/* a\nb */"},
				{token.RawIdentifier, "x"},
			},
		},
		{
			"unterminated block comment", "/* a",
			[]raw{{token.Comment, "/* a"}},
		},
		{
			"string", `x = "a\"b";`,
			[]raw{
				{token.RawIdentifier, "x"},
				{token.Unknown, " "},
				{token.Punct, "="},
				{token.Unknown, " "},
				{token.String, `"a\"b"`},
				{token.Semi, ";"},
			},
		},
		{
			"unterminated string", `"abc`,
			[]raw{{token.Unknown, `"abc`}},
		},
		{
			"unterminated string at newline", "\"abc\nx",
			[]raw{
				{token.Unknown, `"abc`},
				{token.Unknown, "\n"},
				{token.RawIdentifier, "x"},
			},
		},
		{
			"char constant", "'a' 'b'",
			[]raw{
				{token.CharConstant, "'a'"},
				{token.Unknown, " "},
				{token.CharConstant, "'b'"},
			},
		},
		{
			"escaped newline is trivia", "a \\\nb",
			[]raw{
				{token.RawIdentifier, "a"},
				{token.Unknown, " \\\n"},
				{token.RawIdentifier, "b"},
			},
		},
		{
			"lone backslash", "\\x",
			[]raw{
				{token.Unknown, "\\"},
				{token.RawIdentifier, "x"},
			},
		},
		{
			"numbers", "0x1p+3f 1'000 .5",
			[]raw{
				{token.Number, "0x1p+3f"},
				{token.Unknown, " "},
				{token.Number, "1'000"},
				{token.Unknown, " "},
				{token.Number, ".5"},
			},
		},
		{
			"directive", "#define X",
			[]raw{
				{token.Hash, "#"},
				{token.RawIdentifier, "define"},
				{token.Unknown, " "},
				{token.RawIdentifier, "X"},
			},
		},
		{
			"maximal munch", "a<<=b...c",
			[]raw{
				{token.RawIdentifier, "a"},
				{token.Punct, "<<="},
				{token.RawIdentifier, "b"},
				{token.Punct, "..."},
				{token.RawIdentifier, "c"},
			},
		},
		{
			"stray backtick", "a ` b",
			[]raw{
				{token.RawIdentifier, "a"},
				{token.Unknown, " "},
				{token.Unknown, "`"},
				{token.Unknown, " "},
				{token.RawIdentifier, "b"},
			},
		},
		{
			"punctuation kinds", "({[<>]});,",
			[]raw{
				{token.LParen, "("},
				{token.LBrace, "{"},
				{token.LSquare, "["},
				{token.Less, "<"},
				{token.Greater, ">"},
				{token.RSquare, "]"},
				{token.RBrace, "}"},
				{token.RParen, ")"},
				{token.Semi, ";"},
				{token.Comma, ","},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scanAll(t, tt.text))
		})
	}
}

func TestEOFIsSticky(t *testing.T) {
	t.Parallel()

	s := scanner.New(source.NewFile("test.cc", "x"))
	s.Next()
	for range 3 {
		assert.Equal(t, token.EOF, s.Next().Kind)
	}
}

func TestResetAt(t *testing.T) {
	t.Parallel()

	text := "int a;"
	s := scanner.New(source.NewFile("test.cc", text))
	for s.Next().Kind != token.EOF {
	}

	s.ResetAt(4)
	tok := s.Next()
	assert.Equal(t, token.RawIdentifier, tok.Kind)
	assert.Equal(t, "a", text[tok.Offset:tok.Offset+tok.Length])
}
