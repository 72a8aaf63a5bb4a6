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

// Package style holds the formatting-style inputs the lexing pass reads.
//
// A [Style] is immutable for the duration of a pass. Styles load from
// YAML, the same shape a .clang-format file uses for these options, and
// are validated up front so the core may assume the patterns compile.
package style

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/cfmt/width"
)

// Style is the set of style options the token-enrichment layer consumes.
type Style struct {
	// TabWidth is the number of columns per tab stop. Must be positive.
	TabWidth int

	// Encoding selects how source bytes map to display columns.
	Encoding width.Encoding

	// ForEachMacros are identifiers treated as loop-construct macros.
	// Matched by exact spelling.
	ForEachMacros []string

	// MacroBlockBegin and MacroBlockEnd are regular expressions matching
	// identifiers that open and close a macro-delimited block. An empty
	// pattern matches nothing.
	MacroBlockBegin string
	MacroBlockEnd   string
}

// Default returns the default style.
func Default() Style {
	return Style{
		TabWidth:      8,
		Encoding:      width.UTF8,
		ForEachMacros: []string{"foreach", "Q_FOREACH", "BOOST_FOREACH"},
	}
}

// rawStyle is the YAML wire shape. Pointers distinguish "absent" from
// "set to the zero value" so that absent options keep their defaults.
type rawStyle struct {
	TabWidth        *int     `yaml:"TabWidth"`
	Encoding        *string  `yaml:"Encoding"`
	ForEachMacros   []string `yaml:"ForEachMacros"`
	MacroBlockBegin *string  `yaml:"MacroBlockBegin"`
	MacroBlockEnd   *string  `yaml:"MacroBlockEnd"`
}

// Parse parses a YAML style document on top of [Default] and validates
// the result.
func Parse(data []byte) (Style, error) {
	var raw rawStyle
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Style{}, fmt.Errorf("cfmt/style: %w", err)
	}

	s := Default()
	if raw.TabWidth != nil {
		s.TabWidth = *raw.TabWidth
	}
	if raw.Encoding != nil {
		switch *raw.Encoding {
		case "UTF8":
			s.Encoding = width.UTF8
		case "Binary":
			s.Encoding = width.Binary
		default:
			return Style{}, fmt.Errorf("cfmt/style: unknown encoding %q", *raw.Encoding)
		}
	}
	if raw.ForEachMacros != nil {
		s.ForEachMacros = raw.ForEachMacros
	}
	if raw.MacroBlockBegin != nil {
		s.MacroBlockBegin = *raw.MacroBlockBegin
	}
	if raw.MacroBlockEnd != nil {
		s.MacroBlockEnd = *raw.MacroBlockEnd
	}

	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// Validate checks that the style is usable: a positive tab width and
// compilable macro-block patterns.
func (s Style) Validate() error {
	if s.TabWidth < 1 {
		return fmt.Errorf("cfmt/style: TabWidth must be positive, got %d", s.TabWidth)
	}
	for _, pattern := range []string{s.MacroBlockBegin, s.MacroBlockEnd} {
		if pattern == "" {
			continue
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("cfmt/style: %w", err)
		}
	}
	return nil
}
