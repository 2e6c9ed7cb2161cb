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
inferStmt dispatches a single statement to its construct-specific
inference rule, mirroring the resolver's own walkStmt switch one level
later in the pipeline.
*/
func (inf *Inferencer) inferStmt(env *Env, s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Let:
		inf.inferLet(env, n)
	case *ast.Function:
		inf.inferFunction(env, n)
	case *ast.TypeAlias:
		// surface syntax only; resolved on demand wherever it is referenced
	case *ast.IfStmt:
		inf.inferIfStmt(env, n)
	case *ast.While:
		inf.inferWhile(env, n)
	case *ast.For:
		inf.inferFor(env, n)
	case *ast.MatchStmt:
		inf.inferMatchStmt(env, n)
	case *ast.Return:
		var valueType Type
		if n.Value != nil {
			valueType = inf.inferExpr(env, n.Value)
		} else {
			valueType = Unit
		}
		if inf.currentReturn != nil {
			inf.unify(n.Span(), inf.currentReturn, valueType)
		}
		inf.sawReturn = true
	case *ast.Break:
		// nothing to type
	case *ast.Continue:
		// nothing to type
	case *ast.ExprStmt:
		inf.inferExpr(env, n.X)
	case *ast.Assign:
		inf.inferAssign(env, n)
	case *ast.Import:
		// no bindings of its own; meaningful only to the emitter
	case *ast.Class:
		inf.inferClass(env, n)
	}
}

/*
inferExpr dispatches a single expression to its construct-specific
inference rule and returns its type (already recorded against the
node's id by the callee).
*/
func (inf *Inferencer) inferExpr(env *Env, e ast.Expr) Type {
	switch n := e.(type) {
	case *ast.Literal:
		return inf.inferLiteral(n)
	case *ast.Variable:
		return inf.inferVariable(env, n)
	case *ast.Binary:
		return inf.inferBinary(env, n)
	case *ast.Comparison:
		return inf.inferComparison(env, n)
	case *ast.Logical:
		return inf.inferLogical(env, n)
	case *ast.Unary:
		return inf.inferUnary(env, n)
	case *ast.RangeExpr:
		return inf.inferRangeExpr(env, n)
	case *ast.Call:
		return inf.inferCall(env, n)
	case *ast.Index:
		return inf.inferIndex(env, n)
	case *ast.Pipeline:
		return inf.inferPipeline(env, n)
	case *ast.Lambda:
		return inf.inferLambda(env, n)
	case *ast.IfExpr:
		return inf.inferIfExpr(env, n)
	case *ast.Block:
		return inf.inferBlock(env, n)
	case *ast.List:
		return inf.inferList(env, n)
	case *ast.Map:
		return inf.inferMap(env, n)
	case *ast.MatchExpr:
		return inf.inferMatchExpr(env, n)
	default:
		t := inf.fresh()
		inf.record(e.ID(), t)
		return t
	}
}

/*
inferVariable looks up the use's binding in the typing environment
(built in lock-step with the resolver's scope tree) and instantiates it
fresh (§4.4 "Instantiation at use"). A lookup miss only happens when an
earlier stage already reported UndefinedName; it falls back to a fresh
variable so inference can still finish best-effort.
*/
func (inf *Inferencer) inferVariable(env *Env, n *ast.Variable) Type {
	var t Type
	if sc, ok := env.Lookup(n.Name); ok {
		t = inf.instantiate(sc)
	} else {
		t = inf.fresh()
	}
	inf.record(n.ID(), t)
	return t
}
