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
inferList types [e1, ..., en] (§4.4 "List literal"): every element
unifies with one shared element type, the result is List(elem). An
empty list's element type stays an unconstrained fresh variable.
*/
func (inf *Inferencer) inferList(env *Env, n *ast.List) Type {
	elem := inf.fresh()
	for _, el := range n.Elements {
		t := inf.inferExpr(env, el)
		inf.unify(el.Span(), t, elem)
	}

	result := &List{Elem: elem}
	inf.record(n.ID(), result)
	return result
}

/*
inferMap types {k1: v1, ...} (§4.4 "Map literal"): keys are always
String (§3.5), values unify with one shared value type, the result is
Map(value).
*/
func (inf *Inferencer) inferMap(env *Env, n *ast.Map) Type {
	value := inf.fresh()
	for _, entry := range n.Entries {
		keyType := inf.inferExpr(env, entry.Key)
		inf.unify(entry.Key.Span(), keyType, String)

		valType := inf.inferExpr(env, entry.Value)
		inf.unify(entry.Value.Span(), valType, value)
	}

	result := &Map{Value: value}
	inf.record(n.ID(), result)
	return result
}

/*
inferIndex types t[i] (§4.4 "Index"): a Map target requires a String
index and yields its value type; anything else is treated as a List
target, requiring an Int index and yielding its element type.
*/
func (inf *Inferencer) inferIndex(env *Env, n *ast.Index) Type {
	targetType := inf.inferExpr(env, n.Target)
	idxType := inf.inferExpr(env, n.Idx)

	elem := inf.fresh()
	if m, ok := inf.subst.Apply(targetType).(*Map); ok {
		inf.unify(n.Idx.Span(), idxType, String)
		inf.unify(n.Target.Span(), m.Value, elem)
	} else {
		inf.unify(n.Idx.Span(), idxType, Int)
		inf.unify(n.Target.Span(), targetType, &List{Elem: elem})
	}

	inf.record(n.ID(), elem)
	return elem
}

/*
inferRangeExpr types the expression-position 0..10 form (the
ast.RangeExpr supplement - see that type's doc comment): both endpoints
unify with Int, the result is List(Int), matching the range built-in's
own type.
*/
func (inf *Inferencer) inferRangeExpr(env *Env, n *ast.RangeExpr) Type {
	lowType := inf.inferExpr(env, n.Low)
	highType := inf.inferExpr(env, n.High)
	inf.unify(n.Low.Span(), lowType, Int)
	inf.unify(n.High.Span(), highType, Int)

	result := &List{Elem: Int}
	inf.record(n.ID(), result)
	return result
}

/*
inferPipeline types x |> f |> g (§6.4 lists its precedence; §4.4 treats
it as sugar for g(f(x))): the initial value threads through each stage
as that stage's sole argument, the pipeline's type is the final stage's
result.
*/
func (inf *Inferencer) inferPipeline(env *Env, n *ast.Pipeline) Type {
	if len(n.Stages) == 0 {
		result := inf.fresh()
		inf.record(n.ID(), result)
		return result
	}

	acc := inf.inferExpr(env, n.Stages[0])
	for _, stage := range n.Stages[1:] {
		fnType := inf.inferExpr(env, stage)
		result := inf.fresh()
		inf.unify(stage.Span(), fnType, &Func{Params: []Type{acc}, Result: result})
		acc = result
	}

	inf.record(n.ID(), acc)
	return acc
}
