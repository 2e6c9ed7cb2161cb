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
inferIfStmt types the statement/block form of a conditional (§4.4):
the condition unifies with Bool, and each branch opens its own scope -
there is no result type to unify since a statement-form if produces no
value.
*/
func (inf *Inferencer) inferIfStmt(env *Env, n *ast.IfStmt) {
	condType := inf.inferExpr(env, n.Cond)
	inf.unify(n.Cond.Span(), condType, Bool)

	thenEnv := env.Child()
	for _, s := range n.Then {
		inf.inferStmt(thenEnv, s)
	}

	if n.Else != nil {
		elseEnv := env.Child()
		for _, s := range n.Else {
			inf.inferStmt(elseEnv, s)
		}
	}
}

/*
inferIfExpr types "if cond then a else b" (§4.4): cond is Bool, the two
branches unify, and the result is their common type; an else-less if has
type Unit.
*/
func (inf *Inferencer) inferIfExpr(env *Env, n *ast.IfExpr) Type {
	condType := inf.inferExpr(env, n.Cond)
	inf.unify(n.Cond.Span(), condType, Bool)

	thenType := inf.inferExpr(env, n.Then)

	var result Type
	if n.Else != nil {
		elseType := inf.inferExpr(env, n.Else)
		inf.unify(n.Span(), thenType, elseType)
		result = thenType
	} else {
		inf.unify(n.Then.Span(), thenType, Unit)
		result = Unit
	}

	inf.record(n.ID(), result)
	return result
}

/*
inferWhile types a condition-tested loop (§4.4): the condition is Bool,
the body is its own scope, the construct itself has type Unit.
*/
func (inf *Inferencer) inferWhile(env *Env, n *ast.While) {
	condType := inf.inferExpr(env, n.Cond)
	inf.unify(n.Cond.Span(), condType, Bool)

	inner := env.Child()
	for _, s := range n.Body {
		inf.inferStmt(inner, s)
	}
}

/*
inferFor types a for-in loop (§4.4): the iterable unifies with List(α),
the loop variable is bound at α inside the body's scope.
*/
func (inf *Inferencer) inferFor(env *Env, n *ast.For) {
	iterType := inf.inferExpr(env, n.Iter)

	elem := inf.fresh()
	inf.unify(n.Iter.Span(), iterType, &List{Elem: elem})

	inner := env.Child()
	inner.Bind(n.Var, Mono(elem))
	for _, s := range n.Body {
		inf.inferStmt(inner, s)
	}
}

/*
inferBlock types a do-block in expression position (§4.4 "Block"): its
own scope, its type is the tail expression's type, or Unit with no tail.
*/
func (inf *Inferencer) inferBlock(env *Env, n *ast.Block) Type {
	inner := env.Child()
	for _, s := range n.Stmts {
		inf.inferStmt(inner, s)
	}

	var result Type
	if n.Tail != nil {
		result = inf.inferExpr(inner, n.Tail)
	} else {
		result = Unit
	}

	inf.record(n.ID(), result)
	return result
}

/*
inferMatchArms is shared by the statement and expression forms of match
(§4.4 "Pattern in match arm"): every arm's pattern unifies with
scrutinee, its bindings enter the arm's own scope at their
non-generalised inferred types, an optional guard must be Bool, and
every arm's body unifies to one common result type.
*/
func (inf *Inferencer) inferMatchArms(env *Env, scrutinee Type, arms []*ast.MatchArm) Type {
	result := inf.fresh()

	for _, arm := range arms {
		inner := env.Child()
		inf.bindPattern(inner, arm.Pattern, scrutinee)

		if arm.Guard != nil {
			guardType := inf.inferExpr(inner, arm.Guard)
			inf.unify(arm.Guard.Span(), guardType, Bool)
		}

		bodyType := inf.inferExpr(inner, arm.Body)
		inf.unify(arm.Body.Span(), bodyType, result)
	}

	return result
}

func (inf *Inferencer) inferMatchStmt(env *Env, n *ast.MatchStmt) {
	scrutinee := inf.inferExpr(env, n.Scrutinee)
	inf.inferMatchArms(env, scrutinee, n.Arms)
}

func (inf *Inferencer) inferMatchExpr(env *Env, n *ast.MatchExpr) Type {
	scrutinee := inf.inferExpr(env, n.Scrutinee)
	result := inf.inferMatchArms(env, scrutinee, n.Arms)
	inf.record(n.ID(), result)
	return result
}
