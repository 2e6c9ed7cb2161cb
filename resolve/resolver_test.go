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
	"testing"

	"github.com/krotik/aster/ast"
	"github.com/krotik/aster/diag"
	"github.com/krotik/aster/lexer"
	"github.com/krotik/aster/parser"
	"github.com/krotik/aster/source"
)

func resolveSrc(t *testing.T, src string) ([]ast.Stmt, Uses, *diag.Bag) {
	t.Helper()
	sm := source.NewMap()
	f := sm.AddFile("test.ast", src)
	toks, lb := lexer.Lex(sm, f, src)
	if !lb.Ok() {
		t.Fatalf("unexpected lex diagnostics for %q: %v", src, lb.Items())
	}
	stmts, pb := parser.Parse(toks)
	if !pb.Ok() {
		t.Fatalf("unexpected parse diagnostics for %q: %v", src, pb.Items())
	}
	uses, bag := Resolve(stmts)
	return stmts, uses, bag
}

func hasDiag(bag *diag.Bag, kind diag.Kind) bool {
	for _, d := range bag.Items() {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// A function may call another function defined later in the same file,
// and two functions may call each other, since declareTopLevel registers
// every top-level name before the body walk begins (§4.3).
func TestResolveForwardAndMutualReference(t *testing.T) {
	src := "fn isEven(n) do\n    isOdd(n)\nend\n\nfn isOdd(n) do\n    isEven(n)\nend\n"
	_, _, bag := resolveSrc(t, src)
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

// Every Variable use is recorded in the Uses map, keyed by that node's own
// NodeID, pointing at the Symbol it resolved to.
func TestResolveRecordsVariableUse(t *testing.T) {
	stmts, uses, bag := resolveSrc(t, "let x = 1\nx\n")
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	es := stmts[1].(*ast.ExprStmt)
	v := es.X.(*ast.Variable)
	sym, ok := uses[v.ID()]
	if !ok {
		t.Fatal("expected a Uses entry for the second statement's variable reference")
	}
	if sym.Name != "x" || sym.Kind != SymLet {
		t.Errorf("unexpected symbol: %#v", sym)
	}
}

// Assignment to a var-bound name also records a Uses entry.
func TestResolveRecordsAssignUse(t *testing.T) {
	stmts, uses, bag := resolveSrc(t, "var x = 1\nx = 2\n")
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	a := stmts[1].(*ast.Assign)
	sym, ok := uses[a.ID()]
	if !ok {
		t.Fatal("expected a Uses entry for the assignment")
	}
	if sym.Kind != SymVar {
		t.Errorf("expected SymVar, got %v", sym.Kind)
	}
}

// Shadowing an outer binding in a nested scope is allowed (§8.2).
func TestResolveShadowingAcrossScopesIsAllowed(t *testing.T) {
	src := "let x = 1\nfn f() do\n    let x = 2\n    x\nend\n"
	_, _, bag := resolveSrc(t, src)
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

// Redeclaring a name already bound in the *same* scope is a diagnostic.
func TestResolveDuplicateDefinitionInSameScope(t *testing.T) {
	src := "let x = 1\nlet x = 2\n"
	_, _, bag := resolveSrc(t, src)
	if bag.Ok() {
		t.Fatal("expected a duplicate-definition diagnostic")
	}
	if !hasDiag(bag, diag.DuplicateDefinition) {
		t.Errorf("expected DuplicateDefinition, got %v", bag.Items())
	}
}

func TestResolveUndefinedNameIsDiagnostic(t *testing.T) {
	_, _, bag := resolveSrc(t, "y\n")
	if bag.Ok() {
		t.Fatal("expected an undefined-name diagnostic")
	}
	if !hasDiag(bag, diag.UndefinedName) {
		t.Errorf("expected UndefinedName, got %v", bag.Items())
	}
}

func TestResolveReturnOutsideFunctionIsDiagnostic(t *testing.T) {
	_, _, bag := resolveSrc(t, "return 1\n")
	if !hasDiag(bag, diag.InvalidReturnContext) {
		t.Errorf("expected InvalidReturnContext, got %v", bag.Items())
	}
}

func TestResolveBreakOutsideLoopIsDiagnostic(t *testing.T) {
	_, _, bag := resolveSrc(t, "break\n")
	if !hasDiag(bag, diag.InvalidBreakContext) {
		t.Errorf("expected InvalidBreakContext, got %v", bag.Items())
	}
}

func TestResolveContinueOutsideLoopIsDiagnostic(t *testing.T) {
	_, _, bag := resolveSrc(t, "continue\n")
	if !hasDiag(bag, diag.InvalidContinueContext) {
		t.Errorf("expected InvalidContinueContext, got %v", bag.Items())
	}
}

func TestResolveBreakInsideLoopIsFine(t *testing.T) {
	_, _, bag := resolveSrc(t, "while true do\n    break\nend\n")
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

// Assigning to a let-bound (immutable) name is a diagnostic distinct from
// an undefined name.
func TestResolveAssignToLetBoundNameIsDiagnostic(t *testing.T) {
	src := "let x = 1\nx = 2\n"
	_, _, bag := resolveSrc(t, src)
	if !hasDiag(bag, diag.InvalidAssignTarget) {
		t.Errorf("expected InvalidAssignTarget, got %v", bag.Items())
	}
}

// Regression test: a match arm binding the same name twice must raise
// DuplicateDefinition, mirroring what bindPattern already does for
// let-destructuring (bindMatchPattern previously discarded scope.Declare's
// bool result and let this through silently).
func TestResolveDuplicateNameWithinMatchPatternIsDiagnostic(t *testing.T) {
	src := "let pair = [1, 2]\nmatch pair\n    (a, a) => a\nend\n"
	_, _, bag := resolveSrc(t, src)
	if bag.Ok() {
		t.Fatal("expected a duplicate-definition diagnostic for the repeated pattern name")
	}
	if !hasDiag(bag, diag.DuplicateDefinition) {
		t.Errorf("expected DuplicateDefinition, got %v", bag.Items())
	}
}

// A non-repeating match pattern with several bound names is unaffected by
// the duplicate-name fix.
func TestResolveDistinctNamesWithinMatchPatternIsFine(t *testing.T) {
	src := "let pair = [1, 2]\nmatch pair\n    (a, b) => a\nend\n"
	_, _, bag := resolveSrc(t, src)
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

// Builtins are visible without any declaration and are never reported as
// undefined.
func TestResolveBuiltinsAreVisible(t *testing.T) {
	_, _, bag := resolveSrc(t, `print("hi")`+"\n")
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}
