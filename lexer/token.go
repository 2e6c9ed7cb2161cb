/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package lexer turns source text into a token stream with synthetic
indent/dedent and line-end markers (§4.1). It is the only stage that looks
at raw bytes; everything downstream works off the returned Token slice.
*/
package lexer

import "github.com/krotik/aster/source"

/*
Kind is a closed set of token kinds (§3.2).
*/
type Kind int

const (
	// Synthetic

	EOF Kind = iota
	NEWLINE
	INDENT
	DEDENT

	// Literals

	INT
	FLOAT
	STRING
	CHAR
	BOOL
	NULL
	IDENT

	// Keywords (only the reserved-word subset; the lexer reports every
	// keyword of §6.2 so the parser can give unimplemented ones a
	// specific diagnostic instead of treating them as identifiers)

	KwLet
	KwVar
	KwFn
	KwReturn
	KwIf
	KwThen
	KwElse
	KwElif
	KwFor
	KwWhile
	KwForever
	KwIn
	KwDo
	KwEnd
	KwMatch
	KwCase
	KwWhen
	KwTry
	KwCatch
	KwFinally
	KwRaise
	KwClass
	KwExtends
	KwImplements
	KwTrait
	KwType
	KwWhere
	KwUse
	KwFrom
	KwImport
	KwExport
	KwAsync
	KwAwait
	KwParallel
	KwSync
	KwTrue
	KwFalse
	KwNull
	KwSelf
	KwAnd
	KwOr
	KwNot
	KwBreak
	KwContinue

	// Operators

	Plus
	Minus
	Star
	Slash
	Percent
	StarStar
	EqEq
	NotEq
	Lt
	LtEq
	Gt
	GtEq
	Amp
	Pipe
	Caret
	Tilde
	Shl
	Shr
	PipeGt
	DotDot
	Arrow   // ->
	FatArrow // =>
	Question
	Bang

	// Delimiters

	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Comma
	Colon
	Semicolon
	Dot
	Assign // =
)

/*
kindNames gives each Kind a stable printable name, used by diagnostics and
by tests that assert on a token stream without depending on lexeme text.
*/
var kindNames = map[Kind]string{
	EOF: "EOF", NEWLINE: "NEWLINE", INDENT: "INDENT", DEDENT: "DEDENT",
	INT: "int", FLOAT: "float", STRING: "string", CHAR: "char", BOOL: "bool", NULL: "null", IDENT: "identifier",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%", StarStar: "**",
	EqEq: "==", NotEq: "!=", Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=",
	Amp: "&", Pipe: "|", Caret: "^", Tilde: "~", Shl: "<<", Shr: ">>",
	PipeGt: "|>", DotDot: "..", Arrow: "->", FatArrow: "=>", Question: "?", Bang: "!",
	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]", LBrace: "{", RBrace: "}",
	Comma: ",", Colon: ":", Semicolon: ";", Dot: ".", Assign: "=",
}

/*
String renders a human-readable token kind name.
*/
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	if n, ok := keywordKindNames[k]; ok {
		return n
	}
	return "?"
}

/*
Token is a single lexical unit: a kind, a span and the original lexeme
text (§3.2). Synthetic tokens (NEWLINE/INDENT/DEDENT/EOF) carry an empty
lexeme.
*/
type Token struct {
	Kind   Kind
	Span   source.Span
	Lexeme string
}
