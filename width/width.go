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

// Package width computes the display width of source text.
//
// Width is measured in terminal columns: tabs expand to the next tab stop,
// and in UTF-8 mode multi-byte glyphs are measured by their rendered width
// (East Asian wide characters count as two columns), not their byte count.
package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop width used when a caller passes a
// non-positive one.
const DefaultTabWidth = 8

// Encoding selects how the bytes of source text map to glyphs.
type Encoding byte

const (
	// UTF8 measures text as UTF-8: glyph widths come from the Unicode
	// grapheme segmentation rules.
	UTF8 Encoding = iota
	// Binary measures text byte-by-byte; every byte is one column. Used
	// for files that are not valid UTF-8.
	Binary
)

// String implements [fmt.Stringer].
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF8"
	case Binary:
		return "Binary"
	default:
		return "width.Encoding(" + string('0'+byte(e)) + ")"
	}
}

// StringWidth returns the display width of text, which must not contain
// tabs or newlines.
func StringWidth(text string, encoding Encoding) int {
	if encoding == Binary {
		return len(text)
	}
	return uniseg.StringWidth(text)
}

// ColumnWidthWithTabs returns the number of columns text occupies when
// rendered starting at startColumn.
//
// Tab stops are multiples of tabWidth, so the width of a tab depends on
// the column it lands on; this is why the starting column is part of the
// input. The text must not contain newlines.
func ColumnWidthWithTabs(text string, startColumn, tabWidth int, encoding Encoding) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}

	column := startColumn
	for {
		tab := strings.IndexByte(text, '\t')
		if tab == -1 {
			column += StringWidth(text, encoding)
			break
		}
		column += StringWidth(text[:tab], encoding)
		column += tabWidth - column%tabWidth
		text = text[tab+1:]
	}
	return column - startColumn
}
