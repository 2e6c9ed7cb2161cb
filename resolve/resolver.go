/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package resolve

import (
	"github.com/krotik/aster/ast"
	"github.com/krotik/aster/diag"
	"github.com/krotik/aster/source"
)

/*
Builtins is the pre-entered symbol set of §6.3. The type inferencer
consults the same name list (package types) to attach each one's type
scheme; this package only needs to know that the name exists and is not
shadowing anything.
*/
var Builtins = []string{
	"print", "println", "len", "range", "input", "str", "int", "float",
	"bool", "type", "abs", "min", "max",
}

/*
Uses records, per Variable/Assign node, the Symbol it resolved to (§4.3).
Infer accepts it alongside the statements but looks names up in its own
typing environment; the emitter never sees it.
*/
type Uses map[ast.NodeID]*Symbol

/*
Resolver performs §4.3's two-phase pass over one file's statement list.
*/
type Resolver struct {
	bag   *diag.Bag
	uses  Uses
	loops int // current loop nesting depth, for break/continue validation
	funcs int // current function nesting depth, for return validation
}

/*
New creates a Resolver ready to process one compilation unit.
*/
func New() *Resolver {
	return &Resolver{bag: diag.NewBag(), uses: make(Uses)}
}

/*
Resolve runs both phases over stmts and returns the Uses map together
with any diagnostics collected. A non-empty diagnostic bag means the Uses
map may be partial and must not be trusted downstream (§4.6).
*/
func Resolve(stmts []ast.Stmt) (Uses, *diag.Bag) {
	r := New()

	module := NewScope("module")
	for _, name := range Builtins {
		module.Declare(name, &Symbol{Name: name, Kind: SymBuiltin})
	}

	r.declareTopLevel(module, stmts)
	r.walkStmts(module, stmts)

	return r.uses, r.bag
}

/*
declareTopLevel is the first phase (§4.3): it walks the top-level
statement list once, just far enough to register every name a later
top-level statement might need to see regardless of source order
(functions, type aliases, classes).
*/
func (r *Resolver) declareTopLevel(scope *Scope, stmts []ast.Stmt) {
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.Function:
			r.declare(scope, n.Name, &Symbol{Name: n.Name, Kind: SymFunction, Decl: n}, n)
		case *ast.TypeAlias:
			r.declare(scope, n.Name, &Symbol{Name: n.Name, Kind: SymTypeAlias, Decl: n}, n)
		case *ast.Class:
			r.declare(scope, n.Name, &Symbol{Name: n.Name, Kind: SymTypeAlias, Decl: n}, n)
			for _, m := range n.Methods {
				qualified := n.Name + "." + m.Name
				r.declare(scope, qualified, &Symbol{Name: qualified, Kind: SymFunction, Decl: m}, m)
			}
		}
	}
}

func (r *Resolver) declare(scope *Scope, name string, sym *Symbol, at ast.Stmt) {
	r.declareAt(scope, name, sym, at.Span())
}

/*
declareAt is declare without requiring a statement to take the span
from, for call sites (match-arm patterns) with no enclosing ast.Stmt of
their own.
*/
func (r *Resolver) declareAt(scope *Scope, name string, sym *Symbol, span source.Span) {
	if !scope.Declare(name, sym) {
		r.bag.Add(diag.New(diag.DuplicateDefinition, span,
			"%q is already defined in this scope", name))
	}
}

// Body walk (second phase)
// ========================

func (r *Resolver) walkStmts(scope *Scope, stmts []ast.Stmt) {
	for _, s := range stmts {
		r.walkStmt(scope, s)
	}
}

func (r *Resolver) walkStmt(scope *Scope, s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Let:
		r.walkExpr(scope, n.Value)
		r.bindPattern(scope, n.Target, n.Mutable, n)

	case *ast.Function:
		inner := scope.NewChild("function " + n.Name)
		r.funcs++
		for _, param := range n.Params {
			r.declare(inner, param.Name, &Symbol{Name: param.Name, Kind: SymParam}, n)
		}
		r.walkStmts(inner, n.Body)
		r.funcs--

	case *ast.TypeAlias:
		// nothing to resolve inside a type annotation

	case *ast.IfStmt:
		r.walkExpr(scope, n.Cond)
		r.walkStmts(scope.NewChild("if-then"), n.Then)
		if n.Else != nil {
			r.walkStmts(scope.NewChild("if-else"), n.Else)
		}

	case *ast.While:
		r.walkExpr(scope, n.Cond)
		r.loops++
		r.walkStmts(scope.NewChild("while"), n.Body)
		r.loops--

	case *ast.For:
		r.walkExpr(scope, n.Iter)
		inner := scope.NewChild("for " + n.Var)
		r.declare(inner, n.Var, &Symbol{Name: n.Var, Kind: SymLet}, n)
		r.loops++
		r.walkStmts(inner, n.Body)
		r.loops--

	case *ast.MatchStmt:
		r.walkExpr(scope, n.Scrutinee)
		r.walkArms(scope, n.Arms)

	case *ast.Return:
		if r.funcs == 0 {
			r.bag.Add(diag.New(diag.InvalidReturnContext, n.Span(),
				"return used outside of a function body"))
		}
		if n.Value != nil {
			r.walkExpr(scope, n.Value)
		}

	case *ast.Break:
		if r.loops == 0 {
			r.bag.Add(diag.New(diag.InvalidBreakContext, n.Span(),
				"break used outside of a loop"))
		}

	case *ast.Continue:
		if r.loops == 0 {
			r.bag.Add(diag.New(diag.InvalidContinueContext, n.Span(),
				"continue used outside of a loop"))
		}

	case *ast.ExprStmt:
		r.walkExpr(scope, n.X)

	case *ast.Assign:
		sym, ok := scope.Lookup(n.Name)
		if !ok {
			r.bag.Add(diag.New(diag.UndefinedName, n.Span(), "undefined name %q", n.Name))
		} else if sym.Kind != SymVar && sym.Kind != SymParam {
			r.bag.Add(diag.New(diag.InvalidAssignTarget, n.Span(),
				"cannot assign to %q: only var-bound names are mutable", n.Name))
		} else {
			r.uses[n.ID()] = sym
		}
		r.walkExpr(scope, n.Value)

	case *ast.Import:
		// no lexical binding: imported names are resolved by the emitter
		// against the host module system, not this scope tree

	case *ast.Class:
		for _, m := range n.Methods {
			inner := scope.NewChild("method " + n.Name + "." + m.Name)
			inner.Declare("self", &Symbol{Name: "self", Kind: SymParam})
			r.funcs++
			for _, param := range m.Params {
				r.declare(inner, param.Name, &Symbol{Name: param.Name, Kind: SymParam}, m)
			}
			r.walkStmts(inner, m.Body)
			r.funcs--
		}
	}
}

func (r *Resolver) bindPattern(scope *Scope, pat ast.Pattern, mutable bool, at ast.Stmt) {
	kind := SymLet
	if mutable {
		kind = SymVar
	}

	switch p := pat.(type) {
	case *ast.VariablePattern:
		r.declare(scope, p.Name, &Symbol{Name: p.Name, Kind: kind, Decl: at}, at)
	case *ast.WildcardPattern:
		// binds nothing
	case *ast.TuplePattern:
		for _, el := range p.Elements {
			r.bindPattern(scope, el, mutable, at)
		}
	case *ast.ListPattern:
		for _, el := range p.Elements {
			r.bindPattern(scope, el, mutable, at)
		}
	case *ast.ListConsPattern:
		r.bindPattern(scope, p.Head, mutable, at)
		r.bindPattern(scope, p.Tail, mutable, at)
	case *ast.StructPattern:
		for _, f := range p.Fields {
			r.bindPattern(scope, f.Pattern, mutable, at)
		}
	case *ast.OrPattern:
		for _, alt := range p.Alternatives {
			r.bindPattern(scope, alt, mutable, at)
		}
	}
}

func (r *Resolver) walkArms(scope *Scope, arms []*ast.MatchArm) {
	for _, arm := range arms {
		inner := scope.NewChild("match-arm")
		r.bindMatchPattern(inner, arm.Pattern)
		if arm.Guard != nil {
			r.walkExpr(inner, arm.Guard)
		}
		r.walkExpr(inner, arm.Body)
	}
}

/*
bindMatchPattern is like bindPattern but always binds let-style (match
bindings are never reassigned, §4.2 "Pattern parsing"); duplicate names
within one arm are reported as shadowing is not meaningful inside a
single pattern.
*/
func (r *Resolver) bindMatchPattern(scope *Scope, pat ast.Pattern) {
	switch p := pat.(type) {
	case *ast.VariablePattern:
		r.declareAt(scope, p.Name, &Symbol{Name: p.Name, Kind: SymLet}, p.Span())
	case *ast.TuplePattern:
		for _, el := range p.Elements {
			r.bindMatchPattern(scope, el)
		}
	case *ast.ListPattern:
		for _, el := range p.Elements {
			r.bindMatchPattern(scope, el)
		}
	case *ast.ListConsPattern:
		r.bindMatchPattern(scope, p.Head)
		r.bindMatchPattern(scope, p.Tail)
	case *ast.StructPattern:
		for _, f := range p.Fields {
			r.bindMatchPattern(scope, f.Pattern)
		}
	case *ast.OrPattern:
		for _, alt := range p.Alternatives {
			r.bindMatchPattern(scope, alt)
		}
	}
}

func (r *Resolver) walkExpr(scope *Scope, e ast.Expr) {
	switch n := e.(type) {
	case *ast.Literal:
		// nothing to resolve

	case *ast.Variable:
		sym, ok := scope.Lookup(n.Name)
		if !ok {
			r.bag.Add(diag.New(diag.UndefinedName, n.Span(), "undefined name %q", n.Name))
			return
		}
		r.uses[n.ID()] = sym

	case *ast.Binary:
		r.walkExpr(scope, n.Left)
		r.walkExpr(scope, n.Right)

	case *ast.Comparison:
		r.walkExpr(scope, n.Left)
		r.walkExpr(scope, n.Right)

	case *ast.Logical:
		r.walkExpr(scope, n.Left)
		r.walkExpr(scope, n.Right)

	case *ast.Unary:
		r.walkExpr(scope, n.Operand)

	case *ast.RangeExpr:
		r.walkExpr(scope, n.Low)
		r.walkExpr(scope, n.High)

	case *ast.Call:
		r.walkExpr(scope, n.Callee)
		for _, a := range n.Args {
			r.walkExpr(scope, a)
		}

	case *ast.Index:
		r.walkExpr(scope, n.Target)
		r.walkExpr(scope, n.Idx)

	case *ast.Pipeline:
		for _, s := range n.Stages {
			r.walkExpr(scope, s)
		}

	case *ast.Lambda:
		inner := scope.NewChild("lambda")
		for _, param := range n.Params {
			inner.Declare(param.Name, &Symbol{Name: param.Name, Kind: SymParam})
		}
		r.walkExpr(inner, n.Body)

	case *ast.IfExpr:
		r.walkExpr(scope, n.Cond)
		r.walkExpr(scope, n.Then)
		if n.Else != nil {
			r.walkExpr(scope, n.Else)
		}

	case *ast.Block:
		inner := scope.NewChild("block")
		r.walkStmts(inner, n.Stmts)
		if n.Tail != nil {
			r.walkExpr(inner, n.Tail)
		}

	case *ast.List:
		for _, el := range n.Elements {
			r.walkExpr(scope, el)
		}

	case *ast.Map:
		for _, entry := range n.Entries {
			r.walkExpr(scope, entry.Key)
			r.walkExpr(scope, entry.Value)
		}

	case *ast.MatchExpr:
		r.walkExpr(scope, n.Scrutinee)
		r.walkArms(scope, n.Arms)
	}
}
