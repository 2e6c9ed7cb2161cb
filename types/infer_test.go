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
	"testing"

	"github.com/krotik/aster/ast"
	"github.com/krotik/aster/diag"
	"github.com/krotik/aster/lexer"
	"github.com/krotik/aster/parser"
	"github.com/krotik/aster/resolve"
	"github.com/krotik/aster/source"
)

func inferSrc(t *testing.T, src string) ([]ast.Stmt, Typing, *diag.Bag) {
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
	uses, rb := resolve.Resolve(stmts)
	if !rb.Ok() {
		t.Fatalf("unexpected resolve diagnostics for %q: %v", src, rb.Items())
	}
	typing, bag := Infer(stmts, uses)
	return stmts, typing, bag
}

func hasDiag(bag *diag.Bag, kind diag.Kind) bool {
	for _, d := range bag.Items() {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

func conName(t *testing.T, got Type) string {
	t.Helper()
	c, ok := got.(*Con)
	if !ok {
		t.Fatalf("expected *Con, got %#v", got)
	}
	return c.Name
}

// A non-mutable let binding is generalised over its value's free
// variables (§4.4 "Generalisation at let"): each later use instantiates
// its own fresh copy, so the same identity lambda can be applied to an
// Int at one call site and a String at another in the same scope without
// the two uses fighting over one type.
func TestInferLetPolymorphism(t *testing.T) {
	src := "let id = |x| x\nlet a = id(1)\nlet b = id(\"s\")\n"
	stmts, typing, bag := inferSrc(t, src)
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}

	aCall := stmts[1].(*ast.Let).Value.(*ast.Call)
	bCall := stmts[2].(*ast.Let).Value.(*ast.Call)

	if got := conName(t, typing[aCall.ID()]); got != "Int" {
		t.Errorf("id(1): expected Int, got %s", got)
	}
	if got := conName(t, typing[bCall.ID()]); got != "String" {
		t.Errorf("id(\"s\"): expected String, got %s", got)
	}
}

// A top-level function may call itself recursively; inferTopLevel binds
// every top-level function to a placeholder Func type before any body is
// inferred, so the recursive call unifies against that placeholder
// instead of an undefined name (§4.4 "Recursion").
func TestInferRecursion(t *testing.T) {
	src := "fn fact(n) do\n    if n < 1 then\n        return 1\n    else\n        return n * fact(n - 1)\n    end\nend\n"
	stmts, typing, bag := inferSrc(t, src)
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}

	fn := stmts[0].(*ast.Function)
	ifStmt := fn.Body[0].(*ast.IfStmt)
	ret := ifStmt.Else[0].(*ast.Return)
	mul := ret.Value.(*ast.Binary)
	call := mul.Right.(*ast.Call)

	if got := conName(t, typing[call.ID()]); got != "Int" {
		t.Errorf("fact(n - 1): expected Int, got %s", got)
	}
}

// Built-in schemes are polymorphic per call site: print(1) and
// print("s") in the same scope each instantiate their own fresh
// parameter type rather than forcing both arguments to agree (§6.3).
func TestInferBuiltinPolymorphism(t *testing.T) {
	src := "print(1)\nprint(\"s\")\n"
	_, _, bag := inferSrc(t, src)
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

// Regression: 1.0 + 2.0 must type-check as Float. Forcing both operands
// against the concrete Int Con (rather than a shared fresh variable)
// previously rejected this with a spurious TypeMismatch.
func TestInferFloatArithmetic(t *testing.T) {
	stmts, typing, bag := inferSrc(t, "1.0 + 2.0\n")
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	bin := stmts[0].(*ast.ExprStmt).X.(*ast.Binary)
	if got := conName(t, typing[bin.ID()]); got != "Float" {
		t.Errorf("expected Float, got %s", got)
	}
}

// Regression: plain integer-literal arithmetic still defaults to Int when
// nothing else constrains the shared fresh variable.
func TestInferIntArithmeticDefaultsToInt(t *testing.T) {
	stmts, typing, bag := inferSrc(t, "1 + 2\n")
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	bin := stmts[0].(*ast.ExprStmt).X.(*ast.Binary)
	if got := conName(t, typing[bin.ID()]); got != "Int" {
		t.Errorf("expected Int, got %s", got)
	}
}

// Regression: a Float-annotated parameter doing x + x must type-check as
// Float, not fail unification against the concrete Int Con.
func TestInferFloatParameterArithmetic(t *testing.T) {
	src := "fn double(x: Float) do\n    return x + x\nend\n"
	stmts, typing, bag := inferSrc(t, src)
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	fn := stmts[0].(*ast.Function)
	ret := fn.Body[0].(*ast.Return)
	bin := ret.Value.(*ast.Binary)
	if got := conName(t, typing[bin.ID()]); got != "Float" {
		t.Errorf("expected Float, got %s", got)
	}
}

// Regression: 1 < 2.0 must still type-check (as Bool, no diagnostic),
// since Int and Float compare directly rather than being forced through
// unification that can never succeed between two different concrete Cons.
func TestInferIntFloatComparison(t *testing.T) {
	stmts, typing, bag := inferSrc(t, "1 < 2.0\n")
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	cmp := stmts[0].(*ast.ExprStmt).X.(*ast.Comparison)
	if got := conName(t, typing[cmp.ID()]); got != "Bool" {
		t.Errorf("expected Bool, got %s", got)
	}
}

// 1 < "s" must still fail: the isNumeric bypass in inferComparison is
// scoped to Int/Float pairs only, never widened to any mismatched pair.
func TestInferIntStringComparisonStillFails(t *testing.T) {
	_, _, bag := inferSrc(t, "1 < \"s\"\n")
	if bag.Ok() {
		t.Fatal("expected a type-mismatch diagnostic")
	}
	if !hasDiag(bag, diag.TypeMismatch) {
		t.Errorf("expected TypeMismatch, got %v", bag.Items())
	}
}

// Regression: unary negation must also flow Float through rather than
// forcing the concrete Int Con, consistent with binary arithmetic.
func TestInferFloatUnaryNegation(t *testing.T) {
	stmts, typing, bag := inferSrc(t, "-1.0\n")
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	u := stmts[0].(*ast.ExprStmt).X.(*ast.Unary)
	if got := conName(t, typing[u.ID()]); got != "Float" {
		t.Errorf("expected Float, got %s", got)
	}
}

// Mismatched operand types in ordinary (non-numeric) arithmetic are still
// rejected: "a" - 1 has no valid overload.
func TestInferMismatchedArithmeticStillFails(t *testing.T) {
	_, _, bag := inferSrc(t, "\"a\" - 1\n")
	if bag.Ok() {
		t.Fatal("expected a type-mismatch diagnostic")
	}
	if !hasDiag(bag, diag.TypeMismatch) {
		t.Errorf("expected TypeMismatch, got %v", bag.Items())
	}
}

// String concatenation via + still works and is distinct from the
// numeric overload.
func TestInferStringConcatenation(t *testing.T) {
	stmts, typing, bag := inferSrc(t, "\"a\" + \"b\"\n")
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	bin := stmts[0].(*ast.ExprStmt).X.(*ast.Binary)
	if got := conName(t, typing[bin.ID()]); got != "String" {
		t.Errorf("expected String, got %s", got)
	}
}
