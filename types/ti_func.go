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

import (
	"github.com/krotik/aster/ast"
	"github.com/krotik/aster/source"
)

/*
functionPlaceholderType builds fn's Func type from its parameter and
return annotations, falling back to a fresh variable wherever the
programmer left one off (§4.4 "Recursion": this is what forward and
mutually recursive calls unify against before the body itself has been
inferred).
*/
func (inf *Inferencer) functionPlaceholderType(fn *ast.Function) *Func {
	params := make([]Type, len(fn.Params))
	for i, p := range fn.Params {
		if p.TypeAnn != nil {
			params[i] = inf.resolveTypeAnn(p.TypeAnn)
		} else {
			params[i] = inf.fresh()
		}
	}

	var result Type
	if fn.ReturnAnn != nil {
		result = inf.resolveTypeAnn(fn.ReturnAnn)
	} else {
		result = inf.fresh()
	}

	return &Func{Params: params, Result: result}
}

/*
inferFunction types a function declaration (§4.4 "Function definition").
Top-level functions already have their placeholder Func type bound mono
in env by inferTopLevel, which this reuses so calls made elsewhere
against the placeholder stay unified with the body that is about to be
checked; a function declared anywhere else (a nested local function)
builds and binds its own placeholder here instead, since only top-level
declarations get the resolver's forward-reference treatment.
*/
func (inf *Inferencer) inferFunction(env *Env, fn *ast.Function) {
	var fnType *Func
	if sc, ok := env.Lookup(fn.Name); ok {
		if f, ok := sc.Type.(*Func); ok {
			fnType = f
		}
	}
	if fnType == nil {
		fnType = inf.functionPlaceholderType(fn)
		env.Bind(fn.Name, Mono(fnType))
	}

	inner := env.Child()
	for i, param := range fn.Params {
		inner.Bind(param.Name, Mono(fnType.Params[i]))
	}

	inf.inferFunctionBody(inner, fn.Span(), fn.Body, fnType.Result)

	env.Bind(fn.Name, generalise(env, inf.subst, fnType))
}

/*
inferFunctionBody walks a function (or method) body with result bound as
the in-flight expected return type: every Return statement encountered,
however deeply nested in control flow, unifies its value against result
(§4.4 "every return statement's expression type unifies with the
function's declared or inferred return type"). A body with no return
statement at all takes its type from its last statement when that is an
expression statement, and is Unit otherwise.
*/
func (inf *Inferencer) inferFunctionBody(env *Env, fallbackSpan source.Span, body []ast.Stmt, result Type) {
	prevReturn, prevSaw := inf.currentReturn, inf.sawReturn
	inf.currentReturn, inf.sawReturn = result, false

	var tail Type = Unit
	for _, s := range body {
		tail = Unit
		if es, ok := s.(*ast.ExprStmt); ok {
			tail = inf.inferExpr(env, es.X)
			continue
		}
		inf.inferStmt(env, s)
	}

	if !inf.sawReturn {
		inf.unify(fallbackSpan, result, tail)
	}

	inf.currentReturn, inf.sawReturn = prevReturn, prevSaw
}

/*
inferCall types f(a1, ..., an) by unifying the callee's type against a
fresh Function([argTypes], freshResult) - an arity mismatch surfaces as
an ordinary unification failure (the Func case of unify requires equal
parameter counts), so no separate arity check is needed.
*/
func (inf *Inferencer) inferCall(env *Env, n *ast.Call) Type {
	calleeType := inf.inferExpr(env, n.Callee)

	argTypes := make([]Type, len(n.Args))
	for i, a := range n.Args {
		argTypes[i] = inf.inferExpr(env, a)
	}

	result := inf.fresh()
	inf.unify(n.Span(), calleeType, &Func{Params: argTypes, Result: result})
	inf.record(n.ID(), result)
	return result
}

/*
inferLambda types |p1, ..., pn| body. Lambdas are never generalised
(§4.4 "Lambda"): they have no let-binding of their own to generalise at,
so each parameter is bound mono and the body is inferred directly
against it.
*/
func (inf *Inferencer) inferLambda(env *Env, n *ast.Lambda) Type {
	inner := env.Child()

	params := make([]Type, len(n.Params))
	for i, p := range n.Params {
		var pt Type
		if p.TypeAnn != nil {
			pt = inf.resolveTypeAnn(p.TypeAnn)
		} else {
			pt = inf.fresh()
		}
		params[i] = pt
		inner.Bind(p.Name, Mono(pt))
	}

	bodyType := inf.inferExpr(inner, n.Body)

	t := &Func{Params: params, Result: bodyType}
	inf.record(n.ID(), t)
	return t
}
