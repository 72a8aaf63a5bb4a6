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

// Package source provides the immutable source buffers that lexing
// operates on.
//
// Tokens borrow their text directly out of a [File]; nothing in this
// module copies source bytes. A File must therefore outlive every token
// stream produced from it.
package source

import (
	"slices"
	"strings"
	"sync"
)

// File is a source code file.
//
// It contains additional book-keeping information for resolving byte
// offsets to line/column locations. Files are immutable once created.
//
// A nil *File behaves like an empty file with the path "".
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of the line lengths of text: the byte offset after each
	// \n in the file, with a leading 0. Given a byte offset, a binary
	// search on this slice recovers the line containing that offset.
	lineIndex []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's filesystem path.
//
// It doesn't need to be a real path; it is only used for labeling output.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Span returns a span over the given byte offsets of this file.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}
	return Span{f, start, end}
}

// Location resolves a byte offset to a 1-indexed line and column.
//
// The column is measured in bytes from the start of the line; display
// columns are the width package's concern, not this one's.
//
// This operation is O(log n).
func (f *File) Location(offset int) Location {
	if f == nil || offset == 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}

	lines := f.lines()

	// Find the largest index such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: offset - lines[line] + 1,
	}
}

func (f *File) lines() []int {
	if f == nil {
		return nil
	}

	// Compute the prefix sum on-demand.
	f.once.Do(func() {
		var next int
		text := f.Text()
		for {
			// We add 1 to the return value of IndexByte because we want to
			// work with the index immediately *after* the newline byte.
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}
		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}

// Location is a user-visible location within a source file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed.
	Line, Column int
}
