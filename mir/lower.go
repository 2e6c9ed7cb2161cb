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
	"github.com/krotik/aster/ast"
	"github.com/krotik/aster/diag"
)

/*
lowerer carries the single diagnostic bag lowering accumulates into
(§4.6: a stage's output is invalid iff its bag is non-empty when the
stage finishes). Every diagnostic lowering raises is UnsupportedConstruct:
a lambda whose body needs statements (e.g. a do-block body), which the
target's single-expression lambda cannot hold, and any expression node
lowerExpr has no case for. Package types and package resolve reject
everything else first.
*/
type lowerer struct {
	bag *diag.Bag
}

/*
Lower walks a fully resolved and typed statement list and produces its
MIR Program (§3.6, §4.5). Name resolution and type inference have
already validated the tree by this point, so Lower's own diagnostics are
limited to constructs it deliberately does not support.
*/
func Lower(stmts []ast.Stmt) (*Program, *diag.Bag) {
	lw := &lowerer{bag: diag.NewBag()}

	var out []Stmt
	for _, s := range stmts {
		lw.lowerStmt(s, &out)
	}

	return &Program{Stmts: out}, lw.bag
}

/*
lowerStmt lowers one ast.Stmt into out. Most statements append exactly
one MIR Stmt; TypeAlias appends none, since it is purely a compile-time
declaration with no run-time meaning to lower.
*/
func (lw *lowerer) lowerStmt(s ast.Stmt, out *[]Stmt) {
	switch n := s.(type) {
	case *ast.Let:
		names := lw.lowerLetTarget(n.Target)
		value := lw.lowerExpr(n.Value, out)
		*out = append(*out, &Let{Names: names, Value: value})

	case *ast.Function:
		*out = append(*out, lw.lowerFunction(n))

	case *ast.TypeAlias:
		// compile-time only, nothing to lower

	case *ast.IfStmt:
		var thenOut []Stmt
		for _, s := range n.Then {
			lw.lowerStmt(s, &thenOut)
		}
		var elseOut []Stmt
		if n.Else != nil {
			for _, s := range n.Else {
				lw.lowerStmt(s, &elseOut)
			}
		}
		cond := lw.lowerExpr(n.Cond, out)
		*out = append(*out, &If{Cond: cond, Then: thenOut, Else: elseOut})

	case *ast.While:
		cond := lw.lowerExpr(n.Cond, out)
		var body []Stmt
		for _, s := range n.Body {
			lw.lowerStmt(s, &body)
		}
		*out = append(*out, &While{Cond: cond, Body: body})

	case *ast.For:
		iter := lw.lowerExpr(n.Iter, out)
		var body []Stmt
		for _, s := range n.Body {
			lw.lowerStmt(s, &body)
		}
		*out = append(*out, &For{Var: n.Var, Iter: iter, Body: body})

	case *ast.MatchStmt:
		scrutinee := lw.lowerExpr(n.Scrutinee, out)
		*out = append(*out, &Match{Scrutinee: scrutinee, Arms: lw.lowerArms(n.Arms)})

	case *ast.Return:
		var value Expr
		if n.Value != nil {
			value = lw.lowerExpr(n.Value, out)
		}
		*out = append(*out, &Return{Value: value})

	case *ast.Break:
		*out = append(*out, &Break{})

	case *ast.Continue:
		*out = append(*out, &Continue{})

	case *ast.ExprStmt:
		x := lw.lowerExpr(n.X, out)
		*out = append(*out, &ExprStmt{X: x})

	case *ast.Assign:
		value := lw.lowerExpr(n.Value, out)
		*out = append(*out, &Assign{Name: n.Name, Value: value})

	case *ast.Import:
		*out = append(*out, &Import{Path: n.Path, Names: n.Names})

	case *ast.Class:
		*out = append(*out, lw.lowerClass(n))
	}
}

/*
lowerFunction lowers a named function declaration; methods are lowered
separately by lowerClass so that "self" can be prepended to their
parameter list (§4.5 note on ClassDef).
*/
func (lw *lowerer) lowerFunction(n *ast.Function) *FunctionDef {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Name
	}

	var body []Stmt
	for _, s := range n.Body {
		lw.lowerStmt(s, &body)
	}

	return &FunctionDef{Name: n.Name, Params: params, Body: body}
}

/*
lowerClass lowers a class declaration, prepending "self" to every
method's parameter list since the target language requires it
explicitly where the source leaves it implicit (§4.5, see DESIGN.md).
*/
func (lw *lowerer) lowerClass(n *ast.Class) *ClassDef {
	fields := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		fields[i] = f.Name
	}

	methods := make([]*FunctionDef, len(n.Methods))
	for i, m := range n.Methods {
		fn := lw.lowerFunction(m)
		fn.Params = append([]string{"self"}, fn.Params...)
		methods[i] = fn
	}

	return &ClassDef{Name: n.Name, Extends: n.Extends, Fields: fields, Methods: methods}
}

/*
lowerLetTarget flattens a let/var destructuring target into an ordered
list of bound names (§4.2 "Pattern parsing" restricts let's left-hand
side to tuple/list patterns of names and wildcards). A wildcard becomes
"_", the target language's own discard convention.
*/
func (lw *lowerer) lowerLetTarget(pat ast.Pattern) []string {
	switch p := pat.(type) {
	case *ast.VariablePattern:
		return []string{p.Name}
	case *ast.WildcardPattern:
		return []string{"_"}
	case *ast.TuplePattern:
		var names []string
		for _, el := range p.Elements {
			names = append(names, lw.lowerLetTarget(el)...)
		}
		return names
	case *ast.ListPattern:
		var names []string
		for _, el := range p.Elements {
			names = append(names, lw.lowerLetTarget(el)...)
		}
		return names
	default:
		return []string{"_"}
	}
}

/*
lowerExpr lowers one ast.Expr. Block is the one case that does not
produce a dedicated MIR node: its statements are spliced directly into
out, and its tail expression (or a NullLit standing in for Unit, if
there is none) becomes the returned Expr (§4.5 "Lowering").
*/
func (lw *lowerer) lowerExpr(e ast.Expr, out *[]Stmt) Expr {
	switch n := e.(type) {
	case *ast.Literal:
		return lowerLiteral(n)

	case *ast.Variable:
		return &Variable{Name: n.Name}

	case *ast.Binary:
		left := lw.lowerExpr(n.Left, out)
		right := lw.lowerExpr(n.Right, out)
		return &Binary{Op: lowerBinOp(n.Op), Left: left, Right: right}

	case *ast.Comparison:
		left := lw.lowerExpr(n.Left, out)
		right := lw.lowerExpr(n.Right, out)
		return &Binary{Op: lowerCmpOp(n.Op), Left: left, Right: right}

	case *ast.Logical:
		left := lw.lowerExpr(n.Left, out)
		right := lw.lowerExpr(n.Right, out)
		return &Logical{Op: lowerLogicOp(n.Op), Left: left, Right: right}

	case *ast.Unary:
		operand := lw.lowerExpr(n.Operand, out)
		return &Unary{Op: lowerUnaryOp(n.Op), Operand: operand}

	case *ast.RangeExpr:
		low := lw.lowerExpr(n.Low, out)
		high := lw.lowerExpr(n.High, out)
		return &Range{Low: low, High: high}

	case *ast.Call:
		callee := lw.lowerExpr(n.Callee, out)
		args := make([]Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = lw.lowerExpr(a, out)
		}
		return &Call{Callee: callee, Args: args}

	case *ast.Index:
		target := lw.lowerExpr(n.Target, out)
		idx := lw.lowerExpr(n.Idx, out)
		return &Index{Target: target, Idx: idx}

	case *ast.Pipeline:
		return lw.lowerPipeline(n, out)

	case *ast.Lambda:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Name
		}
		// a lambda body is its own expression scope; nothing it might
		// splice belongs in the enclosing out
		var discard []Stmt
		body := lw.lowerExpr(n.Body, &discard)
		if len(discard) > 0 {
			// the grammar's lambda body is a single expression, so a
			// nested block would only arise from a do-block lambda body;
			// the target language's lambda cannot hold statements
			lw.bag.Add(diag.New(diag.UnsupportedConstruct, n.Span(),
				"lambda body containing statements cannot be emitted as a single expression"))
		}
		return &Lambda{Params: params, Body: body}

	case *ast.IfExpr:
		cond := lw.lowerExpr(n.Cond, out)
		then := lw.lowerExpr(n.Then, out)
		var els Expr
		if n.Else != nil {
			els = lw.lowerExpr(n.Else, out)
		} else {
			els = &NullLit{}
		}
		return &IfExpr{Cond: cond, Then: then, Else: els}

	case *ast.Block:
		for _, s := range n.Stmts {
			lw.lowerStmt(s, out)
		}
		if n.Tail != nil {
			return lw.lowerExpr(n.Tail, out)
		}
		return &NullLit{}

	case *ast.List:
		elems := make([]Expr, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = lw.lowerExpr(el, out)
		}
		return &ListExpr{Elements: elems}

	case *ast.Map:
		entries := make([]MapEntry, len(n.Entries))
		for i, en := range n.Entries {
			entries[i] = MapEntry{
				Key:   lw.lowerExpr(en.Key, out),
				Value: lw.lowerExpr(en.Value, out),
			}
		}
		return &MapExpr{Entries: entries}

	case *ast.MatchExpr:
		scrutinee := lw.lowerExpr(n.Scrutinee, out)
		return &MatchExpr{Scrutinee: scrutinee, Arms: lw.lowerArms(n.Arms)}

	default:
		lw.bag.Add(diag.New(diag.UnsupportedConstruct, e.Span(), "this expression cannot be lowered"))
		return &NullLit{}
	}
}

/*
lowerPipeline folds a pipeline chain into nested calls (§4.5 "Pipeline
chains are lowered to nested calls"): x |> f |> g becomes g(f(x)).
*/
func (lw *lowerer) lowerPipeline(n *ast.Pipeline, out *[]Stmt) Expr {
	if len(n.Stages) == 0 {
		return &NullLit{}
	}

	acc := lw.lowerExpr(n.Stages[0], out)
	for _, stage := range n.Stages[1:] {
		fn := lw.lowerExpr(stage, out)
		acc = &Call{Callee: fn, Args: []Expr{acc}}
	}
	return acc
}

/*
lowerLiteral lowers a literal, folding CharLit into StringLit since the
target language has no distinct character type (§4.4 "Char literal :
String").
*/
func lowerLiteral(n *ast.Literal) Expr {
	switch n.Kind {
	case ast.IntLit:
		return &IntLit{Value: n.IntVal}
	case ast.FloatLit:
		return &FloatLit{Value: n.FloatVal}
	case ast.StringLit, ast.CharLit:
		return &StringLit{Value: n.StringVal}
	case ast.BoolLit:
		return &BoolLit{Value: n.BoolVal}
	default:
		return &NullLit{}
	}
}

func (lw *lowerer) lowerArms(arms []*ast.MatchArm) []*MatchArm {
	out := make([]*MatchArm, len(arms))
	for i, a := range arms {
		var discard []Stmt
		var guard Expr
		if a.Guard != nil {
			guard = lw.lowerExpr(a.Guard, &discard)
		}
		body := lw.lowerExpr(a.Body, &discard)
		out[i] = &MatchArm{Pattern: lw.lowerPattern(a.Pattern), Guard: guard, Body: body}
	}
	return out
}

/*
lowerPattern is a structural copy of ast.Pattern into mir.Pattern
(§4.5: no construct-specific simplification is mandated for patterns).
*/
func (lw *lowerer) lowerPattern(p ast.Pattern) Pattern {
	switch n := p.(type) {
	case *ast.LiteralPattern:
		return &LiteralPattern{
			Kind:      lowerPatternLiteralKind(n.Kind),
			IntVal:    n.IntVal,
			FloatVal:  n.FloatVal,
			StringVal: n.StringVal,
			BoolVal:   n.BoolVal,
		}
	case *ast.VariablePattern:
		return &VariablePattern{Name: n.Name}
	case *ast.WildcardPattern:
		return &WildcardPattern{}
	case *ast.TuplePattern:
		elems := make([]Pattern, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = lw.lowerPattern(el)
		}
		return &TuplePattern{Elements: elems}
	case *ast.ListPattern:
		elems := make([]Pattern, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = lw.lowerPattern(el)
		}
		return &ListPattern{Elements: elems}
	case *ast.ListConsPattern:
		return &ConsPattern{Head: lw.lowerPattern(n.Head), Tail: lw.lowerPattern(n.Tail)}
	case *ast.StructPattern:
		fields := make([]StructField, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = StructField{Name: f.Name, Pattern: lw.lowerPattern(f.Pattern)}
		}
		return &StructPattern{Fields: fields}
	case *ast.OrPattern:
		alts := make([]Pattern, len(n.Alternatives))
		for i, a := range n.Alternatives {
			alts[i] = lw.lowerPattern(a)
		}
		return &OrPattern{Alternatives: alts}
	case *ast.RangePattern:
		low := lw.lowerPattern(n.Low).(*LiteralPattern)
		high := lw.lowerPattern(n.High).(*LiteralPattern)
		return &RangePattern{Low: low, High: high}
	default:
		return &WildcardPattern{}
	}
}

func lowerPatternLiteralKind(k ast.LiteralKind) PatternLiteralKind {
	switch k {
	case ast.IntLit:
		return IntPatternLit
	case ast.FloatLit:
		return FloatPatternLit
	case ast.StringLit, ast.CharLit:
		return StringPatternLit
	case ast.BoolLit:
		return BoolPatternLit
	default:
		return NullPatternLit
	}
}
