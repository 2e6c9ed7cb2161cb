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
	"github.com/krotik/aster/diag"
	"github.com/krotik/aster/resolve"
	"github.com/krotik/aster/source"
)

/*
Typing is the inferencer's output: every expression NodeId mapped to its
final Type, with the running substitution already applied (§4.4
"Contract").
*/
type Typing map[ast.NodeID]Type

/*
Inferencer carries the mutable state one inference pass over a
compilation unit shares: the fresh-variable counter, the running
substitution, the symbol-use map from the resolver, and the raw
(pre-substitution) type recorded per node as it is inferred.
*/
type Inferencer struct {
	next  int
	subst Subst
	uses  resolve.Uses
	raw   map[ast.NodeID]Type
	bag   *diag.Bag

	// numeric holds the id of every fresh variable handed out by
	// freshNumeric: one shared per arithmetic expression, unified with
	// both operands so `1.0 + 2.0` and a Float parameter's `x + x` flow
	// through as Float instead of being forced against the concrete Int
	// Con. Any left unbound once inference finishes default to Int (§4.4
	// "Binary arithmetic" - untyped integer literals are the common case).
	numeric []int

	// currentReturn/sawReturn track the enclosing function's expected
	// result type while its body is being walked (§4.4 "Function
	// definition"); saved and restored around nested function bodies.
	currentReturn Type
	sawReturn     bool
}

/*
Infer runs §4.4's algorithm over stmts, given the Uses map the resolver
produced. It returns the final Typing (raw types with the substitution
applied) and any diagnostics.
*/
func Infer(stmts []ast.Stmt, uses resolve.Uses) (Typing, *diag.Bag) {
	inf := &Inferencer{subst: Subst{}, uses: uses, raw: make(map[ast.NodeID]Type), bag: diag.NewBag()}

	env := NewEnv()
	for _, name := range resolve.Builtins {
		env.Bind(name, inf.builtinScheme(name))
	}

	inf.inferTopLevel(env, stmts)

	for _, id := range inf.numeric {
		if _, bound := inf.subst[id]; !bound {
			inf.subst[id] = Int
		}
	}

	out := make(Typing, len(inf.raw))
	for id, t := range inf.raw {
		out[id] = inf.subst.Apply(t)
	}
	return out, inf.bag
}

func (inf *Inferencer) fresh() *Var {
	inf.next++
	return &Var{ID: inf.next}
}

/*
freshNumeric returns a fresh variable registered for Int defaulting (see
the numeric field) - used to let both operands of an arithmetic
expression settle on whichever concrete numeric type constrains them,
Int or Float, rather than forcing Int.
*/
func (inf *Inferencer) freshNumeric() *Var {
	v := inf.fresh()
	inf.numeric = append(inf.numeric, v.ID)
	return v
}

/*
unify wraps package-level unify, folding a failure into a TypeMismatch
diagnostic at span and leaving the substitution unchanged on error so a
later stage can still be attempted with best-effort types.
*/
func (inf *Inferencer) unify(span source.Span, a, b Type) {
	s, err := unify(inf.subst, a, b)
	if err != nil {
		ue := err.(*unifyError)
		inf.bag.Add(diag.New(diag.TypeMismatch, span,
			"type mismatch: expected %s, found %s", ue.expected, ue.found))
		return
	}
	inf.subst = s
}

func (inf *Inferencer) record(id ast.NodeID, t Type) {
	inf.raw[id] = t
}

/*
inferTopLevel mirrors the resolver's own two-phase shape (§4.4
"Recursion"): every top-level function name is first bound to a fresh
variable (or its annotation) so forward and mutually recursive calls
type-check, then each statement is inferred in order, and each function
binding is generalised and replaces its placeholder afterwards.
*/
func (inf *Inferencer) inferTopLevel(env *Env, stmts []ast.Stmt) {
	placeholders := make(map[string]Type)

	for _, s := range stmts {
		fn, ok := s.(*ast.Function)
		if !ok {
			continue
		}
		placeholders[fn.Name] = inf.functionPlaceholderType(fn)
		env.Bind(fn.Name, Mono(placeholders[fn.Name]))
	}

	for _, s := range stmts {
		inf.inferStmt(env, s)
	}

	for _, s := range stmts {
		fn, ok := s.(*ast.Function)
		if !ok {
			continue
		}
		env.Bind(fn.Name, generalise(env, inf.subst, placeholders[fn.Name]))
	}
}
