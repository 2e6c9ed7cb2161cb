/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package types

import "github.com/krotik/aster/ast"

/*
inferBinary types +, -, *, /, %, ** (§4.4 "Binary arithmetic"). + also
accepts two Strings (concatenation); every other operator unifies both
operands with a shared fresh variable rather than the concrete Int Con,
so a Float operand (a literal, or a Float-annotated parameter doing
`x + x`) drives the whole expression to Float through ordinary
unification instead of being rejected against Int. The variable defaults
to Int if nothing ever constrains it (see freshNumeric).
*/
func (inf *Inferencer) inferBinary(env *Env, n *ast.Binary) Type {
	l := inf.inferExpr(env, n.Left)
	r := inf.inferExpr(env, n.Right)

	if n.Op == ast.Add {
		if inf.isStringLike(l) || inf.isStringLike(r) {
			inf.unify(n.Left.Span(), l, String)
			inf.unify(n.Right.Span(), r, String)
			inf.record(n.ID(), String)
			return String
		}
	}

	num := inf.freshNumeric()
	inf.unify(n.Left.Span(), l, num)
	inf.unify(n.Right.Span(), r, num)
	inf.record(n.ID(), num)
	return num
}

/*
isStringLike reports whether t is already resolved (under the running
substitution) to String, used only to pick the + overload; it never
forces an undetermined variable toward String.
*/
func (inf *Inferencer) isStringLike(t Type) bool {
	c, ok := inf.subst.Apply(t).(*Con)
	return ok && c == String
}

/*
inferComparison types ==, !=, <, <=, >, >= (§4.4 "Comparison"): Int and
Float compare against each other directly (so `1 < 2.0` still
type-checks) since neither literal resolves to a variable unification
could otherwise widen; every other pairing (including either operand
still unresolved) falls back to ordinary unification, so `1 < "s"` does
not. Result is always Bool.
*/
func (inf *Inferencer) inferComparison(env *Env, n *ast.Comparison) Type {
	l := inf.inferExpr(env, n.Left)
	r := inf.inferExpr(env, n.Right)
	if !(inf.isNumeric(l) && inf.isNumeric(r)) {
		inf.unify(n.Span(), l, r)
	}
	inf.record(n.ID(), Bool)
	return Bool
}

/*
isNumeric reports whether t is already resolved (under the running
substitution) to Int or Float.
*/
func (inf *Inferencer) isNumeric(t Type) bool {
	c, ok := inf.subst.Apply(t).(*Con)
	return ok && (c == Int || c == Float)
}

/*
inferUnary types -x (operand/result Int or Float via unification), not x
/ !x (operand/result Bool), and ~x (bitwise complement, operand/result
Int).
*/
func (inf *Inferencer) inferUnary(env *Env, n *ast.Unary) Type {
	operand := inf.inferExpr(env, n.Operand)

	var result Type
	switch n.Op {
	case ast.Neg:
		num := inf.freshNumeric()
		inf.unify(n.Operand.Span(), operand, num)
		result = num
	case ast.BitNot:
		inf.unify(n.Operand.Span(), operand, Int)
		result = Int
	default: // ast.Not
		inf.unify(n.Operand.Span(), operand, Bool)
		result = Bool
	}

	inf.record(n.ID(), result)
	return result
}
