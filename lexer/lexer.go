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

// Package lexer turns a raw, whitespace-preserving token sequence into the
// enriched stream a line-breaking engine consumes.
//
// The lexer folds trivia into per-token metadata (columns, newline counts,
// escaped-newline detection), reshapes token boundaries the raw grammar
// gets wrong for formatting purposes (wide shift punctuation, vendor
// string-literal macros, version-control conflict markers), and tags
// tokens with semantic hints such as for-each macros and format-disabled
// regions.
package lexer

import (
	"regexp"
	"strings"

	"github.com/tidwall/btree"

	"github.com/bufbuild/cfmt/scanner"
	"github.com/bufbuild/cfmt/source"
	"github.com/bufbuild/cfmt/style"
	"github.com/bufbuild/cfmt/symbol"
	"github.com/bufbuild/cfmt/token"
	"github.com/bufbuild/cfmt/width"
)

// The sentinel comments delimiting a format-disabled region.
const (
	formatOffLine  = "// clang-format off"
	formatOffBlock = "/* clang-format off */"
	formatOnLine   = "// clang-format on"
	formatOnBlock  = "/* clang-format on */"
)

// Source supplies raw tokens to the lexer. *[scanner.Scanner] implements
// it.
type Source interface {
	Next() scanner.Raw
	ResetAt(offset int)
}

// Lexer enriches the raw token stream of one source file.
//
// A Lexer runs exactly one pass; construct a new one per file. It is not
// safe for concurrent use.
type Lexer struct {
	file    *source.File
	style   style.Style
	source  Source
	symbols *symbol.Table
	stream  *token.Stream

	forEachMacros   btree.Set[string]
	macroBlockBegin *regexp.Regexp
	macroBlockEnd   *regexp.Regexp

	// stash holds the pending second half of a split shift operator.
	// There is never more than one.
	stash *token.Token

	isFirstToken bool

	// column is the display column the next token would start at.
	column int

	// trailingWhitespace is the number of blank bytes trimmed off the end
	// of the previous comment token, deferred into the next token's
	// leading whitespace.
	trailingWhitespace int

	// firstInLineIndex is the index of the most recent token that began a
	// new physical line (or is itself multi-line).
	firstInLineIndex int

	formattingDisabled bool
}

// New constructs a lexer over the given file.
//
// The style must be valid (see [style.Style.Validate]); in particular the
// macro block patterns must compile.
func New(file *source.File, st style.Style) *Lexer {
	return NewWithSource(file, st, scanner.New(file))
}

// NewWithSource is like [New], but reads raw tokens from src instead of a
// fresh scanner over the file.
func NewWithSource(file *source.File, st style.Style, src Source) *Lexer {
	l := &Lexer{
		file:         file,
		style:        st,
		source:       src,
		symbols:      symbol.NewTable(),
		stream:       token.NewStream(file),
		isFirstToken: true,
	}
	for _, name := range st.ForEachMacros {
		l.forEachMacros.Insert(name)
	}
	if st.MacroBlockBegin != "" {
		l.macroBlockBegin = regexp.MustCompile(st.MacroBlockBegin)
	}
	if st.MacroBlockEnd != "" {
		l.macroBlockEnd = regexp.MustCompile(st.MacroBlockEnd)
	}
	return l
}

// Stream returns the token stream this lexer produces into.
func (l *Lexer) Stream() *token.Stream {
	return l.stream
}

// Lex runs the pass to completion and returns the produced token
// sequence. The sequence always ends in exactly one [token.EOF] token.
//
// Panics if the pass has already completed.
func (l *Lexer) Lex() []*token.Token {
	if last := l.stream.Last(); last != nil && last.Is(token.EOF) {
		panic("cfmt/lexer: Lex called on a completed pass")
	}

	for {
		l.stream.Append(l.next())
		l.tryMergePrevious()

		last := l.stream.Last()
		if last.UserNewlinesBefore > 0 || last.IsMultiline {
			l.firstInLineIndex = l.stream.Len() - 1
		}
		if last.Is(token.EOF) {
			break
		}
	}
	return l.stream.Tokens()
}

// Reset repositions the pass at an arbitrary byte offset of the same file.
//
// In-flight state (the stash and any deferred comment whitespace) is
// discarded; tokens already produced are kept. If the pass had already
// completed, the trailing EOF token is dropped so that resuming still
// yields a sequence with a single EOF at the end.
func (l *Lexer) Reset(offset int) {
	l.stash = nil
	l.trailingWhitespace = 0
	l.source.ResetAt(offset)
	if last := l.stream.Last(); last != nil && last.Is(token.EOF) {
		l.stream.Truncate(l.stream.Len() - 1)
	}
}

// next produces exactly one token.
func (l *Lexer) next() *token.Token {
	if tok := l.stash; tok != nil {
		l.stash = nil
		return tok
	}
	return l.scanToken()
}

// scanToken fetches raw tokens, folding trivia until a substantive token
// appears, then finalizes that token's metadata and classification.
func (l *Lexer) scanToken() *token.Token {
	tok := l.stream.NewToken()
	l.readRaw(tok)

	whitespaceStart := tok.Offset - l.trailingWhitespace
	tok.IsFirstInFile = l.isFirstToken
	l.isFirstToken = false

	// Consume and record whitespace until we find a significant token.
	whitespaceLen := l.trailingWhitespace
	for tok.Kind.IsTrivia() {
		if !l.foldTrivia(tok, whitespaceLen) {
			// The trivia contained real content and is now an implicit
			// string literal; it is the token we emit.
			break
		}
		whitespaceLen += len(tok.Text)
		l.readRaw(tok)
	}

	// A token that starts with escaped newlines gets them counted as
	// whitespace instead; this pattern is frequent in macro bodies.
	for len(tok.Text) > 1 && tok.Text[0] == '\\' && tok.Text[1] == '\n' {
		tok.UserNewlinesBefore++
		tok.LastNewlineOffset = 2
		whitespaceLen += 2
		l.column = 0
		tok.Text = tok.Text[2:]
		tok.Offset += 2
	}

	tok.WhitespaceStart = whitespaceStart
	tok.WhitespaceEnd = whitespaceStart + whitespaceLen
	tok.OriginalColumn = l.column

	l.trailingWhitespace = 0
	switch tok.Kind {
	case token.Comment:
		// Trailing blanks belong to the next token's leading whitespace,
		// not to the comment.
		trimmed := strings.TrimRight(tok.Text, " \t\v\f")
		l.trailingWhitespace = len(tok.Text) - len(trimmed)
		tok.Text = trimmed
	case token.RawIdentifier:
		tok.Symbol = l.symbols.Intern(tok.Text)
		tok.Kind = token.Identifier
	case token.LessLess:
		l.splitShift(tok, token.Less)
	case token.GreaterGreater:
		l.splitShift(tok, token.Greater)
	}

	l.measure(tok)
	l.classify(tok)
	return tok
}

// readRaw reads one raw token from the source into tok, leaving any
// already-accumulated whitespace metadata alone.
func (l *Lexer) readRaw(tok *token.Token) {
	raw := l.source.Next()
	text := l.file.Text()
	tok.Kind = raw.Kind
	tok.Offset = raw.Offset
	tok.Text = text[raw.Offset : raw.Offset+raw.Length]

	// For formatting, treat unterminated string literals like normal
	// string literals.
	if tok.Kind == token.Unknown && strings.HasPrefix(tok.Text, `"`) {
		tok.Kind = token.String
		tok.IsUnterminatedLiteral = true
	}

	// The "on" sentinel clears the flag before the token is marked and
	// the "off" sentinel sets it after, so neither sentinel is finalized
	// but everything strictly between them is.
	if tok.Kind == token.Comment && (tok.Text == formatOnLine || tok.Text == formatOnBlock) {
		l.formattingDisabled = false
	}
	tok.Finalized = l.formattingDisabled
	if tok.Kind == token.Comment && (tok.Text == formatOffLine || tok.Text == formatOffBlock) {
		l.formattingDisabled = true
	}
}

// foldTrivia scans one trivia token's text, folding it into tok's
// whitespace metadata and the running column.
//
// Returns false if a non-whitespace byte (or a backslash that doesn't
// escape a newline) forces the whole pending token to be kept as an
// implicit string literal instead of whitespace.
func (l *Lexer) foldTrivia(tok *token.Token, whitespaceLen int) bool {
	text := tok.Text
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			tok.UserNewlinesBefore++
			tok.HasUnescapedNewlineBefore = !escapesNewline(text, i-1)
			tok.LastNewlineOffset = whitespaceLen + i + 1
			l.column = 0
		case '\r':
			tok.LastNewlineOffset = whitespaceLen + i + 1
			l.column = 0
		case '\f', '\v':
			l.column = 0
		case ' ':
			l.column++
		case '\t':
			l.column += l.style.TabWidth - l.column%l.style.TabWidth
		case '\\':
			if i+1 == len(text) || (text[i+1] != '\r' && text[i+1] != '\n') {
				tok.Semantic = token.ImplicitStringLiteral
			}
		default:
			tok.Semantic = token.ImplicitStringLiteral
		}
		if tok.Semantic == token.ImplicitStringLiteral {
			return false
		}
	}
	return true
}

// escapesNewline reports whether a newline appearing just after pos is
// escaped: an odd number of consecutive backslashes precedes it. A '\r'
// at pos is skipped first, since it is just part of "\r\n".
func escapesNewline(text string, pos int) bool {
	if pos >= 0 && text[pos] == '\r' {
		pos--
	}
	count := 0
	for ; pos >= 0 && text[pos] == '\\'; pos-- {
		count++
	}
	return count%2 == 1
}

// splitShift truncates a two-character shift token to its first character
// and stashes a synthesized token for the second, to be emitted on the
// next call. The line-breaking engine wants `<<` and `>>` as individually
// breakable characters; rule-based merging later recombines `<<` where no
// template ambiguity exists.
func (l *Lexer) splitShift(tok *token.Token, half token.Kind) {
	tok.Kind = half
	tok.Text = tok.Text[:1]
	l.column++

	second := l.stream.NewToken()
	second.Kind = half
	second.Text = l.file.Text()[tok.Offset+1 : tok.Offset+2]
	second.Offset = tok.Offset + 1
	second.OriginalColumn = tok.OriginalColumn + 1
	second.FirstLineColumnWidth = 1
	second.WhitespaceStart = second.Offset
	second.WhitespaceEnd = second.Offset
	l.stash = second
}

// measure computes the token's display widths and advances the running
// column.
func (l *Lexer) measure(tok *token.Token) {
	text := tok.Text
	nl := strings.IndexByte(text, '\n')
	if nl == -1 {
		tok.FirstLineColumnWidth = width.ColumnWidthWithTabs(
			text, l.column, l.style.TabWidth, l.style.Encoding)
		l.column += tok.FirstLineColumnWidth
		return
	}

	tok.IsMultiline = true
	tok.FirstLineColumnWidth = width.ColumnWidthWithTabs(
		text[:nl], l.column, l.style.TabWidth, l.style.Encoding)

	// The last line of the token always starts in column 0, so its width
	// does not depend on where the token begins.
	tok.LastLineColumnWidth = width.ColumnWidthWithTabs(
		text[strings.LastIndexByte(text, '\n')+1:], 0, l.style.TabWidth, l.style.Encoding)
	l.column = tok.LastLineColumnWidth
}

// classify tags identifiers with their formatting-relevant semantic
// types.
func (l *Lexer) classify(tok *token.Token) {
	if tok.Kind != token.Identifier {
		return
	}

	// A for-each macro's own definition must not be treated as a loop:
	// skip the tag right after the preprocessor "define" keyword.
	prev := l.stream.Last()
	afterDefine := prev != nil && prev.Symbol.PPKeyword() == symbol.PPDefine
	if !afterDefine && l.forEachMacros.Contains(tok.Text) {
		tok.Semantic = token.ForEachMacro
		return
	}

	if tok.Symbol.IsKeyword() {
		return
	}
	if l.macroBlockBegin != nil && l.macroBlockBegin.MatchString(tok.Text) {
		tok.Semantic = token.MacroBlockBegin
	} else if l.macroBlockEnd != nil && l.macroBlockEnd.MatchString(tok.Text) {
		tok.Semantic = token.MacroBlockEnd
	}
}
