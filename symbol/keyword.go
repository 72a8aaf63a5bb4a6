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

package symbol

// Keyword classifies an identifier as a C/C++ reserved word.
//
// [KwNone] means the identifier is an ordinary name.
type Keyword int

// The C/C++ keywords the formatter cares about. This is not the full
// standard list; it covers the words a layout engine treats specially.
const (
	KwNone Keyword = iota

	KwAlignas
	KwAlignof
	KwAuto
	KwBool
	KwBreak
	KwCase
	KwCatch
	KwChar
	KwClass
	KwConst
	KwConstexpr
	KwContinue
	KwDecltype
	KwDefault
	KwDelete
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExplicit
	KwExtern
	KwFalse
	KwFloat
	KwFor
	KwFriend
	KwGoto
	KwIf
	KwInline
	KwInt
	KwLong
	KwMutable
	KwNamespace
	KwNew
	KwNoexcept
	KwNullptr
	KwOperator
	KwPrivate
	KwProtected
	KwPublic
	KwReturn
	KwShort
	KwSigned
	KwSizeof
	KwStatic
	KwStruct
	KwSwitch
	KwTemplate
	KwThis
	KwThrow
	KwTrue
	KwTry
	KwTypedef
	KwTypeid
	KwTypename
	KwUnion
	KwUnsigned
	KwUsing
	KwVirtual
	KwVoid
	KwVolatile
	KwWhile
)

var keywords = map[string]Keyword{
	"alignas":   KwAlignas,
	"alignof":   KwAlignof,
	"auto":      KwAuto,
	"bool":      KwBool,
	"break":     KwBreak,
	"case":      KwCase,
	"catch":     KwCatch,
	"char":      KwChar,
	"class":     KwClass,
	"const":     KwConst,
	"constexpr": KwConstexpr,
	"continue":  KwContinue,
	"decltype":  KwDecltype,
	"default":   KwDefault,
	"delete":    KwDelete,
	"do":        KwDo,
	"double":    KwDouble,
	"else":      KwElse,
	"enum":      KwEnum,
	"explicit":  KwExplicit,
	"extern":    KwExtern,
	"false":     KwFalse,
	"float":     KwFloat,
	"for":       KwFor,
	"friend":    KwFriend,
	"goto":      KwGoto,
	"if":        KwIf,
	"inline":    KwInline,
	"int":       KwInt,
	"long":      KwLong,
	"mutable":   KwMutable,
	"namespace": KwNamespace,
	"new":       KwNew,
	"noexcept":  KwNoexcept,
	"nullptr":   KwNullptr,
	"operator":  KwOperator,
	"private":   KwPrivate,
	"protected": KwProtected,
	"public":    KwPublic,
	"return":    KwReturn,
	"short":     KwShort,
	"signed":    KwSigned,
	"sizeof":    KwSizeof,
	"static":    KwStatic,
	"struct":    KwStruct,
	"switch":    KwSwitch,
	"template":  KwTemplate,
	"this":      KwThis,
	"throw":     KwThrow,
	"true":      KwTrue,
	"try":       KwTry,
	"typedef":   KwTypedef,
	"typeid":    KwTypeid,
	"typename":  KwTypename,
	"union":     KwUnion,
	"unsigned":  KwUnsigned,
	"using":     KwUsing,
	"virtual":   KwVirtual,
	"void":      KwVoid,
	"volatile":  KwVolatile,
	"while":     KwWhile,
}

// PPKeyword classifies an identifier as a preprocessor directive name.
//
// The classification is positional-context-free: "define" always carries
// [PPDefine], whether or not it follows a '#'. Callers that care about
// directive position must check the surrounding tokens themselves.
type PPKeyword int

// The preprocessor directive names.
const (
	PPNone PPKeyword = iota

	PPDefine
	PPElif
	PPElse
	PPEndif
	PPError
	PPIf
	PPIfdef
	PPIfndef
	PPInclude
	PPLine
	PPPragma
	PPUndef
)

var ppKeywords = map[string]PPKeyword{
	"define":  PPDefine,
	"elif":    PPElif,
	"else":    PPElse,
	"endif":   PPEndif,
	"error":   PPError,
	"if":      PPIf,
	"ifdef":   PPIfdef,
	"ifndef":  PPIfndef,
	"include": PPInclude,
	"line":    PPLine,
	"pragma":  PPPragma,
	"undef":   PPUndef,
}
