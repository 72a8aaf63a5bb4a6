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

package token

import (
	"iter"

	"github.com/bufbuild/cfmt/internal/arena"
	"github.com/bufbuild/cfmt/source"
)

// Stream is the ordered token sequence produced by one lexing pass.
//
// It is append-only, except that merge rules may collapse a contiguous
// tail range into fewer tokens. Tokens live on the stream's arena; the
// sequence itself stores stable handles, so collapsing the sequence never
// invalidates a token a caller already holds.
//
// Once a token of kind [EOF] has been appended the stream is complete and
// further appends panic; exactly one EOF exists in a finished stream,
// always last.
type Stream struct {
	file  *source.File
	arena arena.Arena[Token]
	toks  []*Token
}

// NewStream constructs an empty stream over the given file.
func NewStream(file *source.File) *Stream {
	return &Stream{file: file}
}

// File returns the source file this stream lexes.
func (s *Stream) File() *source.File {
	return s.file
}

// NewToken allocates a fresh token on this stream's arena without
// appending it to the sequence.
func (s *Stream) NewToken() *Token {
	return s.arena.New(Token{})
}

// Append appends a token to the sequence.
//
// Panics if the stream already ends in an EOF token.
func (s *Stream) Append(tok *Token) {
	if n := len(s.toks); n > 0 && s.toks[n-1].Is(EOF) {
		panic("cfmt/token: append to a completed stream")
	}
	s.toks = append(s.toks, tok)
}

// Len returns the number of tokens in the sequence.
func (s *Stream) Len() int {
	return len(s.toks)
}

// At returns the nth token of the sequence.
func (s *Stream) At(n int) *Token {
	return s.toks[n]
}

// Last returns the final token of the sequence, or nil if it is empty.
func (s *Stream) Last() *Token {
	if len(s.toks) == 0 {
		return nil
	}
	return s.toks[len(s.toks)-1]
}

// Truncate shortens the sequence to n tokens. The dropped tokens remain
// alive on the arena; only their membership in the sequence ends.
func (s *Stream) Truncate(n int) {
	s.toks = s.toks[:n]
}

// Remove deletes the nth token from the sequence, shifting the tail down.
func (s *Stream) Remove(n int) {
	s.toks = append(s.toks[:n], s.toks[n+1:]...)
}

// Tokens returns the token sequence as a slice of handles.
//
// The slice is a view of the stream's internal state; it is valid until
// the next mutation.
func (s *Stream) Tokens() []*Token {
	return s.toks
}

// All returns an iterator over the token sequence.
func (s *Stream) All() iter.Seq2[int, *Token] {
	return func(yield func(int, *Token) bool) {
		for i, tok := range s.toks {
			if !yield(i, tok) {
				return
			}
		}
	}
}
