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
inferLogical types and/or (§4.4 "Logical"): both operands Bool, result
Bool.
*/
func (inf *Inferencer) inferLogical(env *Env, n *ast.Logical) Type {
	l := inf.inferExpr(env, n.Left)
	r := inf.inferExpr(env, n.Right)
	inf.unify(n.Left.Span(), l, Bool)
	inf.unify(n.Right.Span(), r, Bool)
	inf.record(n.ID(), Bool)
	return Bool
}
