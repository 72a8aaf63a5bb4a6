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

// Package scanner provides the raw, whitespace-preserving scanner for
// C-family source.
//
// The scanner is deliberately primitive: it carves the input into spans
// and kinds and nothing more. Trivia (whitespace runs, including
// backslash-newline splices, and stray unrecognizable bytes) surfaces as
// [token.Unknown] tokens instead of being discarded; the lexer package
// folds it into the metadata of the tokens that follow.
package scanner

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/cfmt/source"
	"github.com/bufbuild/cfmt/token"
)

// Raw is a primitive token: a kind and a byte span of the source.
type Raw struct {
	Kind   token.Kind
	Offset int
	Length int
}

// Scanner scans a source file into [Raw] tokens.
//
// The zero Scanner is not usable; construct one with [New].
type Scanner struct {
	file   *source.File
	cursor int
}

// New constructs a scanner over the given file, positioned at its start.
func New(file *source.File) *Scanner {
	return &Scanner{file: file}
}

// ResetAt repositions the scanner at an arbitrary byte offset within the
// same file.
func (s *Scanner) ResetAt(offset int) {
	s.cursor = offset
}

// Next returns the next raw token.
//
// At end of input it returns a zero-length [token.EOF] token, and keeps
// returning it on subsequent calls.
func (s *Scanner) Next() Raw {
	text := s.file.Text()
	start := s.cursor
	if start >= len(text) {
		return Raw{Kind: token.EOF, Offset: len(text)}
	}

	b := text[start]
	switch {
	case isSpace(b) || b == '\\':
		s.takeTrivia()
		if s.cursor == start {
			// A backslash that doesn't splice a line.
			s.cursor++
		}
		return s.raw(token.Unknown, start)

	case b == '/' && s.peekAt(start+1) == '/':
		s.cursor += len("//")
		if nl := strings.IndexByte(text[s.cursor:], '\n'); nl != -1 {
			s.cursor += nl
		} else {
			s.cursor = len(text)
		}
		if s.cursor > start && text[s.cursor-1] == '\r' {
			s.cursor--
		}
		return s.raw(token.Comment, start)

	case b == '/' && s.peekAt(start+1) == '*':
		s.cursor += len("/*")
		if end := strings.Index(text[s.cursor:], "*/"); end != -1 {
			s.cursor += end + len("*/")
		} else {
			// Unterminated block comment; run to end of input.
			s.cursor = len(text)
		}
		return s.raw(token.Comment, start)

	case b == '"':
		return s.lexQuoted('"', token.String)

	case b == '\'':
		return s.lexQuoted('\'', token.CharConstant)

	case isDigit(b) || (b == '.' && isDigit(s.peekAt(start+1))):
		return s.lexNumber()

	case isIdentStart(b):
		for s.cursor < len(text) && isIdentContinue(text[s.cursor]) {
			s.cursor++
		}
		return s.raw(token.RawIdentifier, start)

	default:
		if kind, ok := s.lexPunct(); ok {
			return s.raw(kind, start)
		}

		// Consume a run of unrecognizable grapheme clusters so that e.g. a
		// stray emoji comes out as one token, not one per byte.
		for gs := uniseg.NewGraphemes(text[s.cursor:]); gs.Next(); {
			g := gs.Str()
			if isRecognized(g[0]) {
				break
			}
			s.cursor += len(g)
		}
		return s.raw(token.Unknown, start)
	}
}

func (s *Scanner) raw(kind token.Kind, start int) Raw {
	return Raw{Kind: kind, Offset: start, Length: s.cursor - start}
}

func (s *Scanner) peekAt(offset int) byte {
	text := s.file.Text()
	if offset >= len(text) {
		return 0
	}
	return text[offset]
}

// takeTrivia consumes a maximal run of whitespace and backslash-newline
// splices.
func (s *Scanner) takeTrivia() {
	text := s.file.Text()
	for s.cursor < len(text) {
		b := text[s.cursor]
		if isSpace(b) {
			s.cursor++
			continue
		}
		if b == '\\' {
			next := s.cursor + 1
			if s.peekAt(next) == '\r' {
				next++
			}
			if s.peekAt(next) == '\n' {
				s.cursor = next + 1
				continue
			}
		}
		break
	}
}

// lexQuoted consumes a string or character literal.
//
// An unescaped newline or end of input before the closing quote leaves the
// literal unterminated; the token then comes back as [token.Unknown] with
// its text still beginning with the quote, and the lexer decides how to
// degrade.
func (s *Scanner) lexQuoted(quote byte, kind token.Kind) Raw {
	text := s.file.Text()
	start := s.cursor
	s.cursor++ // The opening quote.

	for s.cursor < len(text) {
		switch text[s.cursor] {
		case '\\':
			s.cursor += 2
			if s.cursor > len(text) {
				s.cursor = len(text)
			}
		case quote:
			s.cursor++
			return s.raw(kind, start)
		case '\n':
			return s.raw(token.Unknown, start)
		default:
			s.cursor++
		}
	}
	return s.raw(token.Unknown, start)
}

// lexNumber consumes a preprocessing number: a superset of every valid
// C/C++ numeric literal. Validation is not this layer's job.
func (s *Scanner) lexNumber() Raw {
	text := s.file.Text()
	start := s.cursor
	s.cursor++

	for s.cursor < len(text) {
		b := text[s.cursor]
		switch {
		case (b == 'e' || b == 'E' || b == 'p' || b == 'P') &&
			(s.peekAt(s.cursor+1) == '+' || s.peekAt(s.cursor+1) == '-'):
			s.cursor += 2
		case isDigit(b) || isAlpha(b) || b == '_' || b == '.':
			s.cursor++
		case b == '\'' && isAlnum(s.peekAt(s.cursor+1)):
			// C++14 digit separator.
			s.cursor += 2
		default:
			return s.raw(token.Number, start)
		}
	}
	return s.raw(token.Number, start)
}

// Multi-character punctuators, longest first. Maximal munch.
var (
	puncts3 = []string{"<<=", ">>=", "...", "->*", "<=>"}
	puncts2 = []string{
		"<<", ">>", "<=", ">=", "==", "!=", "&&", "||", "->", "++", "--",
		"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "::", "##", ".*",
	}
)

const punctSingles = "()[]{}<>;,#.+-*/%&|^~!?:="

var punctKinds = map[string]token.Kind{
	"<<": token.LessLess,
	">>": token.GreaterGreater,
	"<":  token.Less,
	">":  token.Greater,
	"(":  token.LParen,
	")":  token.RParen,
	"{":  token.LBrace,
	"}":  token.RBrace,
	"[":  token.LSquare,
	"]":  token.RSquare,
	";":  token.Semi,
	",":  token.Comma,
	"#":  token.Hash,
}

func (s *Scanner) lexPunct() (token.Kind, bool) {
	rest := s.file.Text()[s.cursor:]
	for _, p := range puncts3 {
		if strings.HasPrefix(rest, p) {
			s.cursor += len(p)
			return token.Punct, true
		}
	}
	for _, p := range puncts2 {
		if strings.HasPrefix(rest, p) {
			s.cursor += len(p)
			return punctKind(p), true
		}
	}
	if strings.IndexByte(punctSingles, rest[0]) != -1 {
		s.cursor++
		return punctKind(rest[:1]), true
	}
	return token.Unknown, false
}

func punctKind(p string) token.Kind {
	if kind, ok := punctKinds[p]; ok {
		return kind
	}
	return token.Punct
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlnum(b byte) bool {
	return isDigit(b) || isAlpha(b)
}

func isIdentStart(b byte) bool {
	return isAlpha(b) || b == '_' || b == '$'
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

// isRecognized reports whether a byte starts any token class the scanner
// knows; the unrecognized-run loop stops at these.
func isRecognized(b byte) bool {
	return isSpace(b) || isIdentStart(b) || isDigit(b) ||
		b == '"' || b == '\'' || b == '\\' ||
		strings.IndexByte(punctSingles, b) != -1
}
