/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package mir

import "github.com/krotik/aster/ast"

/*
Op is MIR's own operator enumeration (§4.5 "a fully explicit operator
table... to prevent a class of bugs in which every binary operator
collapses to the same variant"). ast already disambiguates BinOp/CmpOp/
LogicOp/UnaryOp from one another at the parser level; Op exists as a
second, independent disambiguation at the lowering boundary, populated
only through the explicit, exhaustive tables below - a missing table
entry is a lookup miss the lowerer panics on, rather than a silent
fallthrough to some default operator.
*/
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpNeg
	OpNot
	OpBitNot
)

/*
binOpTable is the single mapping function for arithmetic/bitwise
operators, keyed exhaustively over every ast.BinOp constant.
*/
var binOpTable = map[ast.BinOp]Op{
	ast.Add:    OpAdd,
	ast.Sub:    OpSub,
	ast.Mul:    OpMul,
	ast.Div:    OpDiv,
	ast.Mod:    OpMod,
	ast.Pow:    OpPow,
	ast.BitAnd: OpBitAnd,
	ast.BitOr:  OpBitOr,
	ast.BitXor: OpBitXor,
	ast.Shl:    OpShl,
	ast.Shr:    OpShr,
}

/*
cmpOpTable is the single mapping function for comparison operators.
*/
var cmpOpTable = map[ast.CmpOp]Op{
	ast.Eq: OpEq,
	ast.Ne: OpNe,
	ast.Lt: OpLt,
	ast.Le: OpLe,
	ast.Gt: OpGt,
	ast.Ge: OpGe,
}

/*
logicOpTable is the single mapping function for boolean connectives.
*/
var logicOpTable = map[ast.LogicOp]Op{
	ast.And: OpAnd,
	ast.Or:  OpOr,
}

/*
unaryOpTable is the single mapping function for prefix operators.
*/
var unaryOpTable = map[ast.UnaryOp]Op{
	ast.Neg:    OpNeg,
	ast.Not:    OpNot,
	ast.BitNot: OpBitNot,
}

func lowerBinOp(o ast.BinOp) Op {
	op, ok := binOpTable[o]
	if !ok {
		panic("mir: unmapped ast.BinOp")
	}
	return op
}

func lowerCmpOp(o ast.CmpOp) Op {
	op, ok := cmpOpTable[o]
	if !ok {
		panic("mir: unmapped ast.CmpOp")
	}
	return op
}

func lowerLogicOp(o ast.LogicOp) Op {
	op, ok := logicOpTable[o]
	if !ok {
		panic("mir: unmapped ast.LogicOp")
	}
	return op
}

func lowerUnaryOp(o ast.UnaryOp) Op {
	op, ok := unaryOpTable[o]
	if !ok {
		panic("mir: unmapped ast.UnaryOp")
	}
	return op
}
