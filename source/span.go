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

package source

import "fmt"

// Span is a byte range within a [File].
//
// The zero span is the "nil span", which points at no file at all.
type Span struct {
	*File

	// Start and End are byte offsets into the file's text. They obey the
	// usual slicing rules: 0 <= Start <= End <= len(text).
	Start, End int
}

// Nil returns whether this is the nil span.
func (s Span) Nil() bool {
	return s.File == nil
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the text this span refers to.
func (s Span) Text() string {
	return s.File.Text()[s.Start:s.End]
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	if s.Nil() {
		return "<nil>"
	}
	loc := s.Location(s.Start)
	return fmt.Sprintf("%s:%d:%d", s.Path(), loc.Line, loc.Column)
}
