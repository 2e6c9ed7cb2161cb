/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

/*
BinOp is an arithmetic binary operator (§3.6 lists the fully disambiguated
set that every stage downstream of the parser must preserve distinctly).
*/
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Mod
	Pow
	BitAnd
	BitOr
	BitXor
	Shl
	Shr
)

var binOpNames = map[BinOp]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%", Pow: "**",
	BitAnd: "&", BitOr: "|", BitXor: "^", Shl: "<<", Shr: ">>",
}

func (o BinOp) String() string { return binOpNames[o] }

/*
CmpOp is a comparison operator.
*/
type CmpOp int

const (
	Eq CmpOp = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

var cmpOpNames = map[CmpOp]string{Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">="}

func (o CmpOp) String() string { return cmpOpNames[o] }

/*
LogicOp is a boolean connective.
*/
type LogicOp int

const (
	And LogicOp = iota
	Or
)

func (o LogicOp) String() string {
	if o == And {
		return "and"
	}
	return "or"
}

/*
UnaryOp is a prefix operator.
*/
type UnaryOp int

const (
	Neg    UnaryOp = iota // -x
	Not                   // not x / !x
	BitNot                // ~x
)

var unaryOpNames = map[UnaryOp]string{Neg: "-", Not: "not", BitNot: "~"}

func (o UnaryOp) String() string { return unaryOpNames[o] }
