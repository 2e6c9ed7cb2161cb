/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

/*
keywords is the complete reserved-word list of §6.2. and, or, not are
deliberately absent here - the spec requires them to be lexed as
operators, not identifiers (§4.1 "Operators"), so they are matched by
operatorWords instead.
*/
var keywords = map[string]Kind{
	"let": KwLet, "var": KwVar, "fn": KwFn, "return": KwReturn,
	"if": KwIf, "then": KwThen, "else": KwElse, "elif": KwElif,
	"for": KwFor, "while": KwWhile, "forever": KwForever, "in": KwIn,
	"do": KwDo, "end": KwEnd,
	"match": KwMatch, "case": KwCase, "when": KwWhen,
	"try": KwTry, "catch": KwCatch, "finally": KwFinally, "raise": KwRaise,
	"class": KwClass, "extends": KwExtends, "implements": KwImplements,
	"trait": KwTrait, "type": KwType, "where": KwWhere,
	"use": KwUse, "from": KwFrom, "import": KwImport, "export": KwExport,
	"async": KwAsync, "await": KwAwait, "parallel": KwParallel, "sync": KwSync,
	"true": KwTrue, "false": KwFalse, "null": KwNull, "self": KwSelf,
	"break": KwBreak, "continue": KwContinue,
}

/*
operatorWords are reserved words recognised as operator tokens rather than
identifiers or generic keywords (§4.1).
*/
var operatorWords = map[string]Kind{
	"and": KwAnd, "or": KwOr, "not": KwNot,
}

var keywordKindNames = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords)+len(operatorWords))
	for text, k := range keywords {
		m[k] = text
	}
	for text, k := range operatorWords {
		m[k] = text
	}
	return m
}()

/*
IsKeyword reports whether word is one of the reserved words of §6.2
(including the operator words and/or/not).
*/
func IsKeyword(word string) bool {
	if _, ok := keywords[word]; ok {
		return true
	}
	_, ok := operatorWords[word]
	return ok
}
