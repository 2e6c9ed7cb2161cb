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
	"bytes"
	"fmt"

	"devt.de/krotik/common/stringutil"
)

/*
Dump renders a Program as an indented tree, mirroring ast.DumpStmts'
convention - useful for golden-file tests that check lowering shape
without committing to emitted target-language text.
*/
func Dump(p *Program) string {
	var buf bytes.Buffer
	for _, s := range p.Stmts {
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
		fmt.Fprintf(buf, "let %v\n", n.Names)
		dumpExpr(n.Value, level+1, buf)
	case *Assign:
		fmt.Fprintf(buf, "assign %s\n", n.Name)
		dumpExpr(n.Value, level+1, buf)
	case *If:
		buf.WriteString("if\n")
		dumpExpr(n.Cond, level+1, buf)
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
		dumpExpr(n.Cond, level+1, buf)
		for _, st := range n.Body {
			dumpStmt(st, level+1, buf)
		}
	case *For:
		fmt.Fprintf(buf, "for %s\n", n.Var)
		dumpExpr(n.Iter, level+1, buf)
		for _, st := range n.Body {
			dumpStmt(st, level+1, buf)
		}
	case *Match:
		buf.WriteString("match\n")
		dumpExpr(n.Scrutinee, level+1, buf)
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
	case *FunctionDef:
		fmt.Fprintf(buf, "fn %s/%d\n", n.Name, len(n.Params))
		for _, st := range n.Body {
			dumpStmt(st, level+1, buf)
		}
	case *Import:
		fmt.Fprintf(buf, "import %s\n", n.Path)
	case *ClassDef:
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
	case *IntLit:
		fmt.Fprintf(buf, "int %d\n", n.Value)
	case *FloatLit:
		fmt.Fprintf(buf, "float %v\n", n.Value)
	case *StringLit:
		fmt.Fprintf(buf, "string %q\n", n.Value)
	case *BoolLit:
		fmt.Fprintf(buf, "bool %v\n", n.Value)
	case *NullLit:
		buf.WriteString("null\n")
	case *Variable:
		fmt.Fprintf(buf, "var %s\n", n.Name)
	case *Binary:
		fmt.Fprintf(buf, "binop %d\n", n.Op)
		dumpExpr(n.Left, level+1, buf)
		dumpExpr(n.Right, level+1, buf)
	case *Logical:
		fmt.Fprintf(buf, "logic %d\n", n.Op)
		dumpExpr(n.Left, level+1, buf)
		dumpExpr(n.Right, level+1, buf)
	case *Unary:
		fmt.Fprintf(buf, "unary %d\n", n.Op)
		dumpExpr(n.Operand, level+1, buf)
	case *Range:
		buf.WriteString("range\n")
		dumpExpr(n.Low, level+1, buf)
		dumpExpr(n.High, level+1, buf)
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
	case *Lambda:
		fmt.Fprintf(buf, "lambda/%d\n", len(n.Params))
		dumpExpr(n.Body, level+1, buf)
	case *IfExpr:
		buf.WriteString("if-expr\n")
		dumpExpr(n.Cond, level+1, buf)
		dumpExpr(n.Then, level+1, buf)
		dumpExpr(n.Else, level+1, buf)
	case *ListExpr:
		buf.WriteString("list\n")
		for _, el := range n.Elements {
			dumpExpr(el, level+1, buf)
		}
	case *MapExpr:
		buf.WriteString("map\n")
		for _, en := range n.Entries {
			dumpExpr(en.Key, level+1, buf)
			dumpExpr(en.Value, level+1, buf)
		}
	case *MatchExpr:
		buf.WriteString("match-expr\n")
		dumpExpr(n.Scrutinee, level+1, buf)
		dumpArms(n.Arms, level+1, buf)
	default:
		fmt.Fprintf(buf, "<unknown expr %T>\n", n)
	}
}
