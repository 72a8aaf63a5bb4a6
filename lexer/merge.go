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
	"strings"

	"github.com/bufbuild/cfmt/token"
	"github.com/bufbuild/cfmt/width"
)

// tryMergePrevious runs the merge rules, in fixed priority, after every
// append; the first rule that fires wins.
func (l *Lexer) tryMergePrevious() {
	if l.tryMergeTMacro() {
		return
	}
	if l.tryMergeConflictMarkers() {
		return
	}
	if l.tryMergeLessLess() {
		return
	}
}

// tryMergeLessLess merges X,less,less,Y into X,lessless,Y unless X or Y
// is itself a less.
//
// There is deliberately no counterpart for '>': a pair of them may be two
// template closers, and recombining those would corrupt the line below.
func (l *Lexer) tryMergeLessLess() bool {
	n := l.stream.Len()
	if n < 3 {
		return false
	}
	if n > 3 && l.stream.At(n-4).Is(token.Less) {
		return false
	}

	first, second, after := l.stream.At(n-3), l.stream.At(n-2), l.stream.At(n-1)
	if first.IsNot(token.Less) || second.IsNot(token.Less) || after.Is(token.Less) {
		return false
	}

	// Only merge if there currently is no whitespace between the two "<".
	if second.HasWhitespaceBefore() {
		return false
	}

	first.Kind = token.LessLess
	first.Text = l.file.Text()[first.Offset : first.Offset+len("<<")]
	first.FirstLineColumnWidth++
	l.stream.Remove(n - 2)
	return true
}

// tryMergeTokens merges a fixed sequence of kinds at the tail of the
// stream into its first token, relabeled with the given semantic type.
// Adjacent tokens in the match must have no intervening whitespace.
func (l *Lexer) tryMergeTokens(kinds []token.Kind, semantic token.Semantic) bool {
	n := l.stream.Len()
	if n < len(kinds) {
		return false
	}

	first := n - len(kinds)
	if l.stream.At(first).IsNot(kinds[0]) {
		return false
	}
	var addLength int
	for i := 1; i < len(kinds); i++ {
		tok := l.stream.At(first + i)
		if tok.IsNot(kinds[i]) || tok.HasWhitespaceBefore() {
			return false
		}
		addLength += len(tok.Text)
	}

	head := l.stream.At(first)
	head.Text = l.file.Text()[head.Offset : head.EndOffset()+addLength]
	head.FirstLineColumnWidth += addLength
	head.Semantic = semantic
	l.stream.Truncate(first + 1)
	return true
}

// tryMergeTMacro collapses the four tokens of `_T("...")` into a single
// string literal spanning the whole construct. The result inherits the
// identifier's position and whitespace metadata, since the identifier is
// the true start of the literal.
func (l *Lexer) tryMergeTMacro() bool {
	n := l.stream.Len()
	if n < 4 {
		return false
	}
	last := l.stream.At(n - 1)
	if last.IsNot(token.RParen) {
		return false
	}
	str := l.stream.At(n - 2)
	if str.IsNot(token.String) || str.IsMultiline {
		return false
	}
	if l.stream.At(n-3).IsNot(token.LParen) {
		return false
	}
	macro := l.stream.At(n - 4)
	if macro.Text != "_T" {
		return false
	}

	str.Text = l.file.Text()[macro.Offset:last.EndOffset()]
	str.Offset = macro.Offset
	str.IsFirstInFile = macro.IsFirstInFile
	str.LastNewlineOffset = macro.LastNewlineOffset
	str.WhitespaceStart = macro.WhitespaceStart
	str.WhitespaceEnd = macro.WhitespaceEnd
	str.OriginalColumn = macro.OriginalColumn
	str.UserNewlinesBefore = macro.UserNewlinesBefore
	str.HasUnescapedNewlineBefore = macro.HasUnescapedNewlineBefore
	str.FirstLineColumnWidth = width.ColumnWidthWithTabs(
		str.Text, str.OriginalColumn, l.style.TabWidth, l.style.Encoding)

	l.stream.Truncate(n - 4)
	l.stream.Append(str)
	return true
}

// tryMergeConflictMarkers collapses a line that begins with a
// version-control conflict marker into a single opaque token.
//
// Conflict lines look like:
//
//	>>>>>>> /file/in/file/system at revision 1234
//
// The merge only triggers once the line is complete: when the newly
// appended token starts a new line, or at end of input.
func (l *Lexer) tryMergeConflictMarkers() bool {
	last := l.stream.Last()
	if last.UserNewlinesBefore == 0 && last.IsNot(token.EOF) {
		return false
	}

	// The collapse keeps the newly appended token, so the candidate line
	// must hold at least one token besides it.
	n := l.stream.Len()
	if l.firstInLineIndex >= n-1 {
		return false
	}

	// Re-derive the start of the current physical line from the raw
	// buffer. Earlier merges may already have run on this line, so token
	// boundaries cannot be trusted here; the raw bytes can.
	buffer := l.file.Text()
	firstInLineOffset := l.stream.At(l.firstInLineIndex).Offset
	lineOffset := strings.LastIndexByte(buffer[:firstInLineOffset], '\n') + 1

	lineStart := buffer[lineOffset:]
	if firstSpace := strings.IndexAny(lineStart, " \n"); firstSpace != -1 {
		lineStart = lineStart[:firstSpace]
	}

	var semantic token.Semantic
	switch lineStart {
	case "<<<<<<<", ">>>>":
		semantic = token.ConflictStart
	case "|||||||", "=======", "====":
		semantic = token.ConflictAlternative
	case ">>>>>>>", "<<<<":
		semantic = token.ConflictEnd
	default:
		return false
	}

	next := last
	l.stream.Truncate(l.firstInLineIndex + 1)

	// No need to rebuild complete metadata for the merged token: the
	// formatter must not touch anything around conflict markers, so it
	// echoes the original bytes and skips the token wholesale. The kind
	// is an arbitrary placeholder.
	merged := l.stream.Last()
	merged.Semantic = semantic
	merged.Kind = token.Unknown

	l.stream.Append(next)
	return true
}
