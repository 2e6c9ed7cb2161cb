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

import (
	"bytes"
	"fmt"

	"devt.de/krotik/common/stringutil"
)

/*
DumpStmts renders a statement list as an indented tree, in the same style
the teacher's ASTNode.String()/levelString prints its single-tagged tree -
useful for golden-file tests and for debugging a failed parse.
*/
func DumpStmts(stmts []Stmt) string {
	var buf bytes.Buffer
	for _, s := range stmts {
		dumpStmt(s, 0, &buf)
	}
	return buf.String()
}

func indent(buf *bytes.Buffer, level int) {
	buf.WriteString(stringutil.GenerateRollingString(" ", level*2))
}

func dumpStmt(s Stmt, level int, buf *bytes.Buffer) {
	indent(buf, level)

	switch n := s.(type) {
	case *Let:
		kw := "let"
		if n.Mutable {
			kw = "var"
		}
		fmt.Fprintf(buf, "%s %s\n", kw, dumpPatternInline(n.Target))
		dumpExpr(n.Value, level+1, buf)
	case *Function:
		fmt.Fprintf(buf, "fn %s/%d\n", n.Name, len(n.Params))
		for _, st := range n.Body {
			dumpStmt(st, level+1, buf)
		}
	case *TypeAlias:
		fmt.Fprintf(buf, "type %s\n", n.Name)
	case *IfStmt:
		buf.WriteString("if\n")
		for _, st := range n.Then {
			dumpStmt(st, level+1, buf)
		}
		if n.Else != nil {
			indent(buf, level)
			buf.WriteString("else\n")
			for _, st := range n.Else {
				dumpStmt(st, level+1, buf)
			}
		}
	case *While:
		buf.WriteString("while\n")
		for _, st := range n.Body {
			dumpStmt(st, level+1, buf)
		}
	case *For:
		fmt.Fprintf(buf, "for %s\n", n.Var)
		for _, st := range n.Body {
			dumpStmt(st, level+1, buf)
		}
	case *MatchStmt:
		buf.WriteString("match\n")
		dumpArms(n.Arms, level+1, buf)
	case *Return:
		buf.WriteString("return\n")
		if n.Value != nil {
			dumpExpr(n.Value, level+1, buf)
		}
	case *Break:
		buf.WriteString("break\n")
	case *Continue:
		buf.WriteString("continue\n")
	case *ExprStmt:
		buf.WriteString("expr\n")
		dumpExpr(n.X, level+1, buf)
	case *Assign:
		fmt.Fprintf(buf, "assign %s\n", n.Name)
		dumpExpr(n.Value, level+1, buf)
	case *Import:
		fmt.Fprintf(buf, "import %s\n", n.Path)
	case *Class:
		fmt.Fprintf(buf, "class %s\n", n.Name)
		for _, m := range n.Methods {
			dumpStmt(m, level+1, buf)
		}
	default:
		fmt.Fprintf(buf, "<unknown stmt %T>\n", n)
	}
}

func dumpArms(arms []*MatchArm, level int, buf *bytes.Buffer) {
	for _, a := range arms {
		indent(buf, level)
		buf.WriteString("arm\n")
		dumpExpr(a.Body, level+1, buf)
	}
}

func dumpExpr(e Expr, level int, buf *bytes.Buffer) {
	indent(buf, level)

	switch n := e.(type) {
	case *Literal:
		fmt.Fprintf(buf, "%s\n", dumpLiteralInline(n.Kind, n.IntVal, n.FloatVal, n.StringVal, n.BoolVal))
	case *Variable:
		fmt.Fprintf(buf, "var %s\n", n.Name)
	case *Binary:
		fmt.Fprintf(buf, "binop %s\n", n.Op)
		dumpExpr(n.Left, level+1, buf)
		dumpExpr(n.Right, level+1, buf)
	case *Comparison:
		fmt.Fprintf(buf, "cmp %s\n", n.Op)
		dumpExpr(n.Left, level+1, buf)
		dumpExpr(n.Right, level+1, buf)
	case *Logical:
		fmt.Fprintf(buf, "logic %s\n", n.Op)
		dumpExpr(n.Left, level+1, buf)
		dumpExpr(n.Right, level+1, buf)
	case *Unary:
		fmt.Fprintf(buf, "unary %s\n", n.Op)
		dumpExpr(n.Operand, level+1, buf)
	case *Call:
		buf.WriteString("call\n")
		dumpExpr(n.Callee, level+1, buf)
		for _, a := range n.Args {
			dumpExpr(a, level+1, buf)
		}
	case *Index:
		buf.WriteString("index\n")
		dumpExpr(n.Target, level+1, buf)
		dumpExpr(n.Idx, level+1, buf)
	case *Pipeline:
		buf.WriteString("pipeline\n")
		for _, s := range n.Stages {
			dumpExpr(s, level+1, buf)
		}
	case *Lambda:
		fmt.Fprintf(buf, "lambda/%d\n", len(n.Params))
		dumpExpr(n.Body, level+1, buf)
	case *IfExpr:
		buf.WriteString("if-expr\n")
		dumpExpr(n.Cond, level+1, buf)
		dumpExpr(n.Then, level+1, buf)
		if n.Else != nil {
			dumpExpr(n.Else, level+1, buf)
		}
	case *Block:
		buf.WriteString("block\n")
		for _, st := range n.Stmts {
			dumpStmt(st, level+1, buf)
		}
		if n.Tail != nil {
			dumpExpr(n.Tail, level+1, buf)
		}
	case *List:
		buf.WriteString("list\n")
		for _, el := range n.Elements {
			dumpExpr(el, level+1, buf)
		}
	case *Map:
		buf.WriteString("map\n")
		for _, e := range n.Entries {
			dumpExpr(e.Key, level+1, buf)
			dumpExpr(e.Value, level+1, buf)
		}
	case *MatchExpr:
		buf.WriteString("match-expr\n")
		dumpArms(n.Arms, level+1, buf)
	default:
		fmt.Fprintf(buf, "<unknown expr %T>\n", n)
	}
}

func dumpLiteralInline(kind LiteralKind, i int64, f float64, s string, b bool) string {
	switch kind {
	case IntLit:
		return fmt.Sprintf("int %d", i)
	case FloatLit:
		return fmt.Sprintf("float %v", f)
	case StringLit:
		return fmt.Sprintf("string %q", s)
	case BoolLit:
		return fmt.Sprintf("bool %v", b)
	case CharLit:
		return fmt.Sprintf("char %q", s)
	default:
		return "null"
	}
}

func dumpPatternInline(p Pattern) string {
	switch n := p.(type) {
	case *VariablePattern:
		return n.Name
	case *WildcardPattern:
		return "_"
	case *TuplePattern:
		return "(tuple)"
	case *ListPattern:
		return "[list]"
	default:
		return fmt.Sprintf("%T", p)
	}
}
