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

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

const (
	Unknown Kind = iota // Trivia or unrecognized garbage in the input file.

	Comment       // A line or block comment.
	RawIdentifier // An identifier straight from the scanner, not yet interned.
	Identifier    // An interned identifier; Token.Symbol carries its classification.
	Number        // A preprocessing number.
	String        // A string literal.
	CharConstant  // A character literal.

	// Punctuation the enrichment layer consults by kind. Everything else
	// lands on the generic Punct.
	LParen
	RParen
	LBrace
	RBrace
	LSquare
	RSquare
	Semi
	Comma
	Hash
	Less
	Greater
	LessLess
	GreaterGreater
	Punct

	EOF // End of input. Exactly one per stream, always last.
)

// IsTrivia returns whether tokens of this kind are candidates for
// whitespace folding rather than emission.
func (k Kind) IsTrivia() bool {
	return k == Unknown
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Comment:
		return "Comment"
	case RawIdentifier:
		return "RawIdentifier"
	case Identifier:
		return "Identifier"
	case Number:
		return "Number"
	case String:
		return "String"
	case CharConstant:
		return "CharConstant"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LSquare:
		return "LSquare"
	case RSquare:
		return "RSquare"
	case Semi:
		return "Semi"
	case Comma:
		return "Comma"
	case Hash:
		return "Hash"
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	case LessLess:
		return "LessLess"
	case GreaterGreater:
		return "GreaterGreater"
	case Punct:
		return "Punct"
	case EOF:
		return "EOF"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}
