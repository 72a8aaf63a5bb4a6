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

// Package symbol provides an interning table for identifiers.
//
// Interning serves two purposes: identical identifier spellings share one
// [Info] record (so identity comparison is cheap), and interning is where
// an identifier picks up its language-keyword and preprocessor-keyword
// classification.
package symbol

// Info is the interned record for one identifier spelling.
//
// Two identifiers with the same spelling interned through the same [Table]
// yield the same *Info.
type Info struct {
	name string
	kw   Keyword
	pp   PPKeyword
}

// Name returns the identifier's spelling.
func (i *Info) Name() string {
	return i.name
}

// Keyword returns the language-keyword classification of this identifier,
// or [KwNone] if it is an ordinary name.
func (i *Info) Keyword() Keyword {
	if i == nil {
		return KwNone
	}
	return i.kw
}

// IsKeyword returns whether this identifier is a C/C++ reserved word.
func (i *Info) IsKeyword() bool {
	return i.Keyword() != KwNone
}

// PPKeyword returns the preprocessor-directive classification of this
// identifier, or [PPNone].
func (i *Info) PPKeyword() PPKeyword {
	if i == nil {
		return PPNone
	}
	return i.pp
}

// Table interns identifier spellings.
//
// The zero Table is not usable; construct one with [NewTable]. A Table is
// not safe for concurrent use, matching the single-threaded lexing pass
// that owns it.
type Table struct {
	infos map[string]*Info
}

// NewTable constructs an empty interning table.
func NewTable() *Table {
	return &Table{infos: make(map[string]*Info)}
}

// Intern returns the canonical [Info] for the given spelling, creating it
// on first use.
func (t *Table) Intern(name string) *Info {
	if info, ok := t.infos[name]; ok {
		return info
	}

	info := &Info{
		name: name,
		kw:   keywords[name],
		pp:   ppKeywords[name],
	}
	t.infos[name] = info
	return info
}
