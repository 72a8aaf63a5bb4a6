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

// Package token defines the enriched tokens the lexing pass produces.
//
// A [Token] is a raw scanner token annotated with everything a line
// breaking engine needs to know about its surroundings: display columns,
// preceding newlines and whitespace, escaped-newline detection, and
// semantic hints such as conflict markers or for-each macros. Tokens are
// allocated on a per-pass arena owned by a [Stream] and referenced by
// stable pointers; they are never freed individually.
package token

import "github.com/bufbuild/cfmt/symbol"

// Token is one enriched token.
//
// Text is a borrowed view into the original source buffer and must not
// outlive it. All whitespace-related fields describe the trivia between
// this token and the previous one.
type Token struct {
	// Kind is the token's lexical category.
	Kind Kind

	// Text is the token's spelling, borrowed from the source buffer.
	Text string

	// Offset is the byte offset of Text within the source buffer.
	Offset int

	// Symbol is the interned identifier record. Only set for tokens of
	// kind [Identifier].
	Symbol *symbol.Info

	// Semantic is the formatting-relevant semantic hint, if any.
	Semantic Semantic

	// OriginalColumn is the display column at which the token starts in
	// the unformatted source.
	OriginalColumn int

	// FirstLineColumnWidth is the display width of the token, or of its
	// first line if it is multi-line.
	FirstLineColumnWidth int

	// LastLineColumnWidth is the display width of the token's last line,
	// measured from column 0. Only meaningful if IsMultiline is set.
	LastLineColumnWidth int

	// IsMultiline is whether the token's text contains a newline.
	IsMultiline bool

	// IsFirstInFile is whether this is the first token produced by the
	// pass.
	IsFirstInFile bool

	// UserNewlinesBefore counts the newlines in the trivia immediately
	// preceding this token (including escaped ones).
	UserNewlinesBefore int

	// HasUnescapedNewlineBefore is whether the most recent preceding
	// newline was not escaped by a backslash.
	HasUnescapedNewlineBefore bool

	// LastNewlineOffset is the offset, within the preceding trivia, of the
	// byte just after the most recent newline (or carriage return).
	LastNewlineOffset int

	// WhitespaceStart and WhitespaceEnd delimit the trivia preceding this
	// token, as byte offsets into the source buffer.
	WhitespaceStart, WhitespaceEnd int

	// IsUnterminatedLiteral is whether this token is a string literal the
	// scanner found no closing quote for.
	IsUnterminatedLiteral bool

	// Finalized is whether this token lies in a format-disabled region and
	// must be passed through byte-exact.
	Finalized bool
}

// Is returns whether this token has the given kind.
func (t *Token) Is(k Kind) bool {
	return t.Kind == k
}

// IsNot returns whether this token does not have the given kind.
func (t *Token) IsNot(k Kind) bool {
	return t.Kind != k
}

// EndOffset returns the byte offset just past this token's text.
func (t *Token) EndOffset() int {
	return t.Offset + len(t.Text)
}

// HasWhitespaceBefore returns whether any trivia separates this token from
// the previous one.
func (t *Token) HasWhitespaceBefore() bool {
	return t.WhitespaceStart != t.WhitespaceEnd
}
