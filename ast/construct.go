/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

import "github.com/krotik/aster/source"

/*
This file collects the exported constructors for every node that embeds
the unexported info struct. info's fields cannot be set from outside the
package, so callers (chiefly package parser) build nodes through these
functions rather than composite literals; each constructor stamps a fresh
NodeID from the supplied generator and records the given span.
*/

// Statements
// ==========

func NewLet(g *IDGen, span source.Span, mutable bool, target Pattern, typeAnn *TypeAnn, value Expr) *Let {
	return &Let{info: newInfo(g, span), Mutable: mutable, Target: target, TypeAnn: typeAnn, Value: value}
}

func NewFunction(g *IDGen, span source.Span, name string, params []Param, ret *TypeAnn, body []Stmt) *Function {
	return &Function{info: newInfo(g, span), Name: name, Params: params, ReturnAnn: ret, Body: body}
}

func NewTypeAlias(g *IDGen, span source.Span, name string, ty *TypeAnn) *TypeAlias {
	return &TypeAlias{info: newInfo(g, span), Name: name, Type: ty}
}

func NewIfStmt(g *IDGen, span source.Span, cond Expr, then, els []Stmt) *IfStmt {
	return &IfStmt{info: newInfo(g, span), Cond: cond, Then: then, Else: els}
}

func NewWhile(g *IDGen, span source.Span, cond Expr, body []Stmt) *While {
	return &While{info: newInfo(g, span), Cond: cond, Body: body}
}

func NewFor(g *IDGen, span source.Span, v string, iter Expr, body []Stmt) *For {
	return &For{info: newInfo(g, span), Var: v, Iter: iter, Body: body}
}

func NewMatchStmt(g *IDGen, span source.Span, scrutinee Expr, arms []*MatchArm) *MatchStmt {
	return &MatchStmt{info: newInfo(g, span), Scrutinee: scrutinee, Arms: arms}
}

func NewReturn(g *IDGen, span source.Span, value Expr) *Return {
	return &Return{info: newInfo(g, span), Value: value}
}

func NewBreak(g *IDGen, span source.Span) *Break {
	return &Break{info: newInfo(g, span)}
}

func NewContinue(g *IDGen, span source.Span) *Continue {
	return &Continue{info: newInfo(g, span)}
}

func NewExprStmt(g *IDGen, span source.Span, x Expr) *ExprStmt {
	return &ExprStmt{info: newInfo(g, span), X: x}
}

func NewAssign(g *IDGen, span source.Span, name string, value Expr) *Assign {
	return &Assign{info: newInfo(g, span), Name: name, Value: value}
}

func NewImport(g *IDGen, span source.Span, path, alias string, names []string) *Import {
	return &Import{info: newInfo(g, span), Path: path, Alias: alias, Names: names}
}

func NewClass(g *IDGen, span source.Span, name, extends string, implements []string, fields []Field, methods []*Function) *Class {
	return &Class{info: newInfo(g, span), Name: name, Extends: extends, Implements: implements, Fields: fields, Methods: methods}
}

// Expressions
// ===========

func NewIntLiteral(g *IDGen, span source.Span, v int64) *Literal {
	return &Literal{info: newInfo(g, span), Kind: IntLit, IntVal: v}
}

func NewFloatLiteral(g *IDGen, span source.Span, v float64) *Literal {
	return &Literal{info: newInfo(g, span), Kind: FloatLit, FloatVal: v}
}

func NewStringLiteral(g *IDGen, span source.Span, v string) *Literal {
	return &Literal{info: newInfo(g, span), Kind: StringLit, StringVal: v}
}

func NewCharLiteral(g *IDGen, span source.Span, v string) *Literal {
	return &Literal{info: newInfo(g, span), Kind: CharLit, StringVal: v}
}

func NewBoolLiteral(g *IDGen, span source.Span, v bool) *Literal {
	return &Literal{info: newInfo(g, span), Kind: BoolLit, BoolVal: v}
}

func NewNullLiteral(g *IDGen, span source.Span) *Literal {
	return &Literal{info: newInfo(g, span), Kind: NullLit}
}

func NewVariable(g *IDGen, span source.Span, name string) *Variable {
	return &Variable{info: newInfo(g, span), Name: name}
}

func NewBinary(g *IDGen, span source.Span, op BinOp, l, r Expr) *Binary {
	return &Binary{info: newInfo(g, span), Op: op, Left: l, Right: r}
}

func NewComparison(g *IDGen, span source.Span, op CmpOp, l, r Expr) *Comparison {
	return &Comparison{info: newInfo(g, span), Op: op, Left: l, Right: r}
}

func NewLogical(g *IDGen, span source.Span, op LogicOp, l, r Expr) *Logical {
	return &Logical{info: newInfo(g, span), Op: op, Left: l, Right: r}
}

func NewUnary(g *IDGen, span source.Span, op UnaryOp, operand Expr) *Unary {
	return &Unary{info: newInfo(g, span), Op: op, Operand: operand}
}

func NewRangeExpr(g *IDGen, span source.Span, low, high Expr) *RangeExpr {
	return &RangeExpr{info: newInfo(g, span), Low: low, High: high}
}

func NewCall(g *IDGen, span source.Span, callee Expr, args []Expr) *Call {
	return &Call{info: newInfo(g, span), Callee: callee, Args: args}
}

func NewIndex(g *IDGen, span source.Span, target, idx Expr) *Index {
	return &Index{info: newInfo(g, span), Target: target, Idx: idx}
}

func NewPipeline(g *IDGen, span source.Span, stages []Expr) *Pipeline {
	return &Pipeline{info: newInfo(g, span), Stages: stages}
}

func NewLambda(g *IDGen, span source.Span, params []Param, body Expr) *Lambda {
	return &Lambda{info: newInfo(g, span), Params: params, Body: body}
}

func NewIfExpr(g *IDGen, span source.Span, cond, then, els Expr) *IfExpr {
	return &IfExpr{info: newInfo(g, span), Cond: cond, Then: then, Else: els}
}

func NewBlock(g *IDGen, span source.Span, stmts []Stmt, tail Expr) *Block {
	return &Block{info: newInfo(g, span), Stmts: stmts, Tail: tail}
}

func NewList(g *IDGen, span source.Span, elements []Expr) *List {
	return &List{info: newInfo(g, span), Elements: elements}
}

func NewMap(g *IDGen, span source.Span, entries []MapEntry) *Map {
	return &Map{info: newInfo(g, span), Entries: entries}
}

func NewMatchExpr(g *IDGen, span source.Span, scrutinee Expr, arms []*MatchArm) *MatchExpr {
	return &MatchExpr{info: newInfo(g, span), Scrutinee: scrutinee, Arms: arms}
}

// Patterns
// ========

func NewIntLiteralPattern(g *IDGen, span source.Span, v int64) *LiteralPattern {
	return &LiteralPattern{info: newInfo(g, span), Kind: IntLit, IntVal: v}
}

func NewFloatLiteralPattern(g *IDGen, span source.Span, v float64) *LiteralPattern {
	return &LiteralPattern{info: newInfo(g, span), Kind: FloatLit, FloatVal: v}
}

func NewStringLiteralPattern(g *IDGen, span source.Span, v string) *LiteralPattern {
	return &LiteralPattern{info: newInfo(g, span), Kind: StringLit, StringVal: v}
}

func NewCharLiteralPattern(g *IDGen, span source.Span, v string) *LiteralPattern {
	return &LiteralPattern{info: newInfo(g, span), Kind: CharLit, StringVal: v}
}

func NewBoolLiteralPattern(g *IDGen, span source.Span, v bool) *LiteralPattern {
	return &LiteralPattern{info: newInfo(g, span), Kind: BoolLit, BoolVal: v}
}

func NewNullLiteralPattern(g *IDGen, span source.Span) *LiteralPattern {
	return &LiteralPattern{info: newInfo(g, span), Kind: NullLit}
}

func NewVariablePattern(g *IDGen, span source.Span, name string) *VariablePattern {
	return &VariablePattern{info: newInfo(g, span), Name: name}
}

func NewWildcardPattern(g *IDGen, span source.Span) *WildcardPattern {
	return &WildcardPattern{info: newInfo(g, span)}
}

func NewTuplePattern(g *IDGen, span source.Span, elements []Pattern) *TuplePattern {
	return &TuplePattern{info: newInfo(g, span), Elements: elements}
}

func NewListPattern(g *IDGen, span source.Span, elements []Pattern) *ListPattern {
	return &ListPattern{info: newInfo(g, span), Elements: elements}
}

func NewListConsPattern(g *IDGen, span source.Span, head, tail Pattern) *ListConsPattern {
	return &ListConsPattern{info: newInfo(g, span), Head: head, Tail: tail}
}

func NewStructPattern(g *IDGen, span source.Span, fields []StructField) *StructPattern {
	return &StructPattern{info: newInfo(g, span), Fields: fields}
}

func NewOrPattern(g *IDGen, span source.Span, alts []Pattern) *OrPattern {
	return &OrPattern{info: newInfo(g, span), Alternatives: alts}
}

func NewRangePattern(g *IDGen, span source.Span, low, high *LiteralPattern) *RangePattern {
	return &RangePattern{info: newInfo(g, span), Low: low, High: high}
}
