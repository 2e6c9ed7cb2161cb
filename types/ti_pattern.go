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
literalPatternType gives a LiteralPattern its fixed type, mirroring
inferLiteral.
*/
func literalPatternType(p *ast.LiteralPattern) Type {
	switch p.Kind {
	case ast.IntLit:
		return Int
	case ast.FloatLit:
		return Float
	case ast.StringLit, ast.CharLit:
		return String
	case ast.BoolLit:
		return Bool
	default:
		return Null
	}
}

/*
bindPattern unifies pat's shape with scrutinee (the value being matched
or destructured) and binds every name the pattern introduces into env at
its own (non-generalised) type - §4.4 "Pattern in match arm": "the
pattern's type unifies with the scrutinee's type; bindings enter the
arm's scope with their inferred (non-generalised) types". The same rule
is reused for let-destructuring (§4.2 "Pattern parsing"), since both are
one pattern matched once against one value.
*/
func (inf *Inferencer) bindPattern(env *Env, pat ast.Pattern, scrutinee Type) {
	switch p := pat.(type) {
	case *ast.LiteralPattern:
		inf.unify(p.Span(), scrutinee, literalPatternType(p))

	case *ast.VariablePattern:
		env.Bind(p.Name, Mono(scrutinee))

	case *ast.WildcardPattern:
		// binds nothing

	case *ast.TuplePattern:
		elems := make([]Type, len(p.Elements))
		for i := range elems {
			elems[i] = inf.fresh()
		}
		inf.unify(p.Span(), scrutinee, &Tuple{Elements: elems})
		for i, el := range p.Elements {
			inf.bindPattern(env, el, elems[i])
		}

	case *ast.ListPattern:
		elem := inf.fresh()
		inf.unify(p.Span(), scrutinee, &List{Elem: elem})
		for _, el := range p.Elements {
			inf.bindPattern(env, el, elem)
		}

	case *ast.ListConsPattern:
		elem := inf.fresh()
		listType := &List{Elem: elem}
		inf.unify(p.Span(), scrutinee, listType)
		inf.bindPattern(env, p.Head, elem)
		inf.bindPattern(env, p.Tail, listType)

	case *ast.StructPattern:
		// no named record Type exists yet (Class is a supplement feature
		// with no field-type tracking); bind each field pattern at a
		// fresh type rather than leaving it untyped.
		for _, f := range p.Fields {
			inf.bindPattern(env, f.Pattern, inf.fresh())
		}

	case *ast.OrPattern:
		for _, alt := range p.Alternatives {
			inf.bindPattern(env, alt, scrutinee)
		}

	case *ast.RangePattern:
		inf.unify(p.Span(), scrutinee, literalPatternType(p.Low))
		inf.unify(p.Span(), scrutinee, literalPatternType(p.High))
	}
}
