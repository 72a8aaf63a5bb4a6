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

// Package arena provides a simple typed arena.
//
// Values allocated on an arena are never moved and never freed
// individually; they share the lifetime of the arena itself. This gives
// the token stream its collective-ownership semantics: one lexing pass
// allocates all of its tokens here and the pointers stay valid for as long
// as the produced sequence is referenced.
package arena

// chunkShift is the log2 of the number of values per chunk.
const chunkShift = 8

// Arena is an allocator for values of type T with stable addresses.
//
// Internally it is a table of fixed-capacity chunks. Chunks are never
// resized once allocated, so pointers returned by [Arena.New] remain valid
// across subsequent allocations.
//
// A zero Arena is empty and ready to use.
type Arena[T any] struct {
	chunks [][]T
}

// New allocates a new value on the arena and returns a stable pointer to it.
func (a *Arena[T]) New(value T) *T {
	if len(a.chunks) == 0 || len(a.chunks[len(a.chunks)-1]) == 1<<chunkShift {
		a.chunks = append(a.chunks, make([]T, 0, 1<<chunkShift))
	}

	chunk := &a.chunks[len(a.chunks)-1]
	*chunk = append(*chunk, value)
	return &(*chunk)[len(*chunk)-1]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	if len(a.chunks) == 0 {
		return 0
	}
	return (len(a.chunks)-1)<<chunkShift + len(a.chunks[len(a.chunks)-1])
}

// At returns the nth allocated value.
//
// Panics if n is out of range.
func (a *Arena[T]) At(n int) *T {
	if n < 0 || n >= a.Len() {
		panic("cfmt/arena: index out of range")
	}
	return &a.chunks[n>>chunkShift][n&(1<<chunkShift-1)]
}
