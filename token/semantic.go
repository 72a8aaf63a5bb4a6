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

import "fmt"

// Semantic is a formatting-relevant semantic hint attached to a token over
// and above its [Kind].
type Semantic byte

const (
	SemanticNone Semantic = iota

	// ImplicitStringLiteral marks trivia that turned out to contain
	// non-whitespace bytes; the formatter must preserve it as content.
	ImplicitStringLiteral
	// ForEachMacro marks an identifier configured as a loop-construct
	// macro (e.g. Q_FOREACH).
	ForEachMacro
	// MacroBlockBegin and MacroBlockEnd mark identifiers matching the
	// configured macro block delimiter patterns.
	MacroBlockBegin
	MacroBlockEnd
	// ConflictStart, ConflictAlternative, and ConflictEnd mark collapsed
	// version-control conflict marker lines, which the formatter echoes
	// byte-for-byte.
	ConflictStart
	ConflictAlternative
	ConflictEnd
)

// String implements [fmt.Stringer].
func (s Semantic) String() string {
	switch s {
	case SemanticNone:
		return "None"
	case ImplicitStringLiteral:
		return "ImplicitStringLiteral"
	case ForEachMacro:
		return "ForEachMacro"
	case MacroBlockBegin:
		return "MacroBlockBegin"
	case MacroBlockEnd:
		return "MacroBlockEnd"
	case ConflictStart:
		return "ConflictStart"
	case ConflictAlternative:
		return "ConflictAlternative"
	case ConflictEnd:
		return "ConflictEnd"
	default:
		return fmt.Sprintf("token.Semantic(%d)", int(s))
	}
}
