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
inferLiteral assigns each literal kind its fixed type (§4.4
"Construct-specific rules"): Char is String, since the Language has no
distinct character type.
*/
func (inf *Inferencer) inferLiteral(n *ast.Literal) Type {
	var t Type
	switch n.Kind {
	case ast.IntLit:
		t = Int
	case ast.FloatLit:
		t = Float
	case ast.StringLit, ast.CharLit:
		t = String
	case ast.BoolLit:
		t = Bool
	default:
		t = Null
	}
	inf.record(n.ID(), t)
	return t
}

/*
resolveTypeAnn turns surface syntax (ast.TypeAnn, as written by the
programmer) into a Type. An unknown name becomes a fresh type variable
so inference keeps moving; no diagnostic is reported for it.
*/
func (inf *Inferencer) resolveTypeAnn(ann *ast.TypeAnn) Type {
	if ann == nil {
		return inf.fresh()
	}

	switch ann.Name {
	case "Int":
		return Int
	case "Float":
		return Float
	case "String":
		return String
	case "Bool":
		return Bool
	case "Null":
		return Null
	case "Unit":
		return Unit
	case "List":
		if len(ann.Args) == 1 {
			return &List{Elem: inf.resolveTypeAnn(ann.Args[0])}
		}
		return &List{Elem: inf.fresh()}
	case "Map":
		if len(ann.Args) == 1 {
			return &Map{Value: inf.resolveTypeAnn(ann.Args[0])}
		}
		return &Map{Value: inf.fresh()}
	case "Function":
		params := make([]Type, len(ann.Args))
		for i := range params {
			params[i] = inf.fresh()
		}
		return &Func{Params: params, Result: inf.fresh()}
	default:
		return inf.fresh()
	}
}
