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
inferLet types let/var bindings (§4.4 "Generalisation at let"): a plain
"let name = value" generalises value's type over env before binding, so
later uses of name each get their own fresh instance; a "var" binding
(or any destructuring pattern) binds mono instead - mutability and
multi-name destructuring are both reasons the usual let-generalisation
does not apply cleanly, so neither is offered it.
*/
func (inf *Inferencer) inferLet(env *Env, n *ast.Let) {
	valueType := inf.inferExpr(env, n.Value)

	if n.TypeAnn != nil {
		inf.unify(n.Span(), valueType, inf.resolveTypeAnn(n.TypeAnn))
	}

	if v, ok := n.Target.(*ast.VariablePattern); ok && !n.Mutable {
		env.Bind(v.Name, generalise(env, inf.subst, valueType))
		return
	}

	inf.bindPattern(env, n.Target, valueType)
}

/*
inferAssign types "name = value" (§4.4): the resolver has already
confirmed name is var-bound and reachable; the assigned value unifies
with name's existing (instantiated) type.
*/
func (inf *Inferencer) inferAssign(env *Env, n *ast.Assign) {
	valueType := inf.inferExpr(env, n.Value)

	if sc, ok := env.Lookup(n.Name); ok {
		existing := inf.instantiate(sc)
		inf.unify(n.Span(), existing, valueType)
	}
}

/*
inferClass types every method body of a class declaration (a supplement
feature, §9 "Open questions" - see DESIGN.md). There is no nominal class
Type yet (no field-typed record construct exists in package types), so
self is bound at one fresh type shared by every method of the class and
never unified against anything else; this is enough to type-check field
and parameter use inside method bodies without fabricating a structural
type the rest of the language has no way to produce or consume.
*/
func (inf *Inferencer) inferClass(env *Env, n *ast.Class) {
	selfType := inf.fresh()

	for _, m := range n.Methods {
		fnType := inf.functionPlaceholderType(m)

		inner := env.Child()
		inner.Bind("self", Mono(selfType))
		for i, param := range m.Params {
			inner.Bind(param.Name, Mono(fnType.Params[i]))
		}

		inf.inferFunctionBody(inner, m.Span(), m.Body, fnType.Result)
	}
}
