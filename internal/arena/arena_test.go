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

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/cfmt/internal/arena"
)

func TestArena(t *testing.T) {
	t.Parallel()

	var a arena.Arena[int]
	assert.Equal(t, 0, a.Len())

	var ptrs []*int
	for i := range 1000 {
		ptrs = append(ptrs, a.New(i))
	}
	assert.Equal(t, 1000, a.Len())

	// Addresses must be stable: every pointer still refers to the value it
	// was allocated with, and At agrees.
	for i, p := range ptrs {
		assert.Equal(t, i, *p)
		assert.Same(t, p, a.At(i))
	}
}

func TestArenaAtOutOfRange(t *testing.T) {
	t.Parallel()

	var a arena.Arena[string]
	a.New("x")
	assert.Panics(t, func() { a.At(1) })
}
