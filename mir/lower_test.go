/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package mir

import (
	"testing"

	"github.com/krotik/aster/ast"
	"github.com/krotik/aster/source"
)

var sp source.Span

func TestLowerLet(t *testing.T) {
	g := &ast.IDGen{}
	n := ast.NewLet(g, sp, false, ast.NewVariablePattern(g, sp, "x"), nil, ast.NewIntLiteral(g, sp, 1))

	prog, bag := Lower([]ast.Stmt{n})
	if !bag.Ok() {
		t.Fatal("unexpected diagnostics:", bag.Items())
	}
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 stmt, got %d", len(prog.Stmts))
	}

	let, ok := prog.Stmts[0].(*Let)
	if !ok {
		t.Fatalf("expected *Let, got %T", prog.Stmts[0])
	}
	if len(let.Names) != 1 || let.Names[0] != "x" {
		t.Errorf("unexpected names: %v", let.Names)
	}
	if _, ok := let.Value.(*IntLit); !ok {
		t.Errorf("expected IntLit value, got %T", let.Value)
	}
}

func TestLowerLetTupleDestructure(t *testing.T) {
	g := &ast.IDGen{}
	target := ast.NewTuplePattern(g, sp, []ast.Pattern{
		ast.NewVariablePattern(g, sp, "a"),
		ast.NewWildcardPattern(g, sp),
		ast.NewVariablePattern(g, sp, "b"),
	})
	n := ast.NewLet(g, sp, false, target, nil, ast.NewVariable(g, sp, "triple"))

	prog, bag := Lower([]ast.Stmt{n})
	if !bag.Ok() {
		t.Fatal("unexpected diagnostics:", bag.Items())
	}

	let := prog.Stmts[0].(*Let)
	want := []string{"a", "_", "b"}
	if len(let.Names) != len(want) {
		t.Fatalf("expected %v, got %v", want, let.Names)
	}
	for i, name := range want {
		if let.Names[i] != name {
			t.Errorf("name %d: expected %q, got %q", i, name, let.Names[i])
		}
	}
}

/*
TestLowerBlockSplicesIntoEnclosingSequence checks §4.5's defining
property of Block lowering: a do-block's statements land directly in the
surrounding sequence rather than nested under a Block node of their own,
and its tail expression becomes the enclosing let's value.
*/
func TestLowerBlockSplicesIntoEnclosingSequence(t *testing.T) {
	g := &ast.IDGen{}
	inner := ast.NewExprStmt(g, sp, ast.NewCall(g, sp, ast.NewVariable(g, sp, "print"), []ast.Expr{ast.NewIntLiteral(g, sp, 1)}))
	block := ast.NewBlock(g, sp, []ast.Stmt{inner}, ast.NewIntLiteral(g, sp, 2))
	let := ast.NewLet(g, sp, false, ast.NewVariablePattern(g, sp, "x"), nil, block)

	prog, bag := Lower([]ast.Stmt{let})
	if !bag.Ok() {
		t.Fatal("unexpected diagnostics:", bag.Items())
	}

	if len(prog.Stmts) != 2 {
		t.Fatalf("expected the block's statement and the let to both land at top level, got %d stmts", len(prog.Stmts))
	}
	if _, ok := prog.Stmts[0].(*ExprStmt); !ok {
		t.Errorf("expected the spliced print call first, got %T", prog.Stmts[0])
	}
	letStmt, ok := prog.Stmts[1].(*Let)
	if !ok {
		t.Fatalf("expected *Let second, got %T", prog.Stmts[1])
	}
	if _, ok := letStmt.Value.(*IntLit); !ok {
		t.Errorf("expected the block's tail to become the let's value, got %T", letStmt.Value)
	}
}

func TestLowerBlockWithNoTailIsNull(t *testing.T) {
	g := &ast.IDGen{}
	block := ast.NewBlock(g, sp, nil, nil)
	exprStmt := ast.NewExprStmt(g, sp, block)

	prog, bag := Lower([]ast.Stmt{exprStmt})
	if !bag.Ok() {
		t.Fatal("unexpected diagnostics:", bag.Items())
	}

	es := prog.Stmts[0].(*ExprStmt)
	if _, ok := es.X.(*NullLit); !ok {
		t.Errorf("expected NullLit for a tail-less block, got %T", es.X)
	}
}

/*
TestLowerPipelineFoldsIntoNestedCalls checks the other defining property
of §4.5's lowering contract: x |> f |> g becomes g(f(x)), with no
separate pipeline node surviving into MIR.
*/
func TestLowerPipelineFoldsIntoNestedCalls(t *testing.T) {
	g := &ast.IDGen{}
	pipe := ast.NewPipeline(g, sp, []ast.Expr{
		ast.NewVariable(g, sp, "x"),
		ast.NewVariable(g, sp, "f"),
		ast.NewVariable(g, sp, "g"),
	})
	stmt := ast.NewExprStmt(g, sp, pipe)

	prog, bag := Lower([]ast.Stmt{stmt})
	if !bag.Ok() {
		t.Fatal("unexpected diagnostics:", bag.Items())
	}

	outer, ok := prog.Stmts[0].(*ExprStmt).X.(*Call)
	if !ok {
		t.Fatalf("expected outer *Call, got %T", prog.Stmts[0].(*ExprStmt).X)
	}
	if outer.Callee.(*Variable).Name != "g" {
		t.Errorf("expected outer callee g, got %v", outer.Callee)
	}
	inner, ok := outer.Args[0].(*Call)
	if !ok {
		t.Fatalf("expected inner *Call, got %T", outer.Args[0])
	}
	if inner.Callee.(*Variable).Name != "f" {
		t.Errorf("expected inner callee f, got %v", inner.Callee)
	}
	if inner.Args[0].(*Variable).Name != "x" {
		t.Errorf("expected innermost argument x, got %v", inner.Args[0])
	}
}

func TestLowerOperatorsStayDistinct(t *testing.T) {
	g := &ast.IDGen{}
	cases := []struct {
		op   ast.BinOp
		want Op
	}{
		{ast.Add, OpAdd}, {ast.Sub, OpSub}, {ast.Mul, OpMul}, {ast.Div, OpDiv},
		{ast.Mod, OpMod}, {ast.Pow, OpPow}, {ast.BitAnd, OpBitAnd},
		{ast.BitOr, OpBitOr}, {ast.BitXor, OpBitXor}, {ast.Shl, OpShl}, {ast.Shr, OpShr},
	}
	for _, c := range cases {
		n := ast.NewBinary(g, sp, c.op, ast.NewIntLiteral(g, sp, 1), ast.NewIntLiteral(g, sp, 2))
		stmt := ast.NewExprStmt(g, sp, n)
		prog, bag := Lower([]ast.Stmt{stmt})
		if !bag.Ok() {
			t.Fatal("unexpected diagnostics:", bag.Items())
		}
		got := prog.Stmts[0].(*ExprStmt).X.(*Binary).Op
		if got != c.want {
			t.Errorf("ast.BinOp %v: expected mir.Op %v, got %v", c.op, c.want, got)
		}
	}
}

func TestLowerIfExprMissingElseIsNull(t *testing.T) {
	g := &ast.IDGen{}
	ifExpr := ast.NewIfExpr(g, sp, ast.NewVariable(g, sp, "cond"), ast.NewIntLiteral(g, sp, 1), nil)
	stmt := ast.NewExprStmt(g, sp, ifExpr)

	prog, bag := Lower([]ast.Stmt{stmt})
	if !bag.Ok() {
		t.Fatal("unexpected diagnostics:", bag.Items())
	}

	got := prog.Stmts[0].(*ExprStmt).X.(*IfExpr)
	if _, ok := got.Else.(*NullLit); !ok {
		t.Errorf("expected NullLit else, got %T", got.Else)
	}
}

func TestLowerClassPrependsSelf(t *testing.T) {
	g := &ast.IDGen{}
	method := ast.NewFunction(g, sp, "greet", []ast.Param{{Name: "name"}}, nil, nil)
	class := ast.NewClass(g, sp, "Greeter", "", nil, nil, []*ast.Function{method})

	prog, bag := Lower([]ast.Stmt{class})
	if !bag.Ok() {
		t.Fatal("unexpected diagnostics:", bag.Items())
	}

	cd := prog.Stmts[0].(*ClassDef)
	if len(cd.Methods) != 1 {
		t.Fatalf("expected 1 method, got %d", len(cd.Methods))
	}
	params := cd.Methods[0].Params
	if len(params) != 2 || params[0] != "self" || params[1] != "name" {
		t.Errorf("expected [self name], got %v", params)
	}
}
