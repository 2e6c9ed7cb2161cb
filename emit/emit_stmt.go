/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package emit

import (
	"strings"

	"github.com/krotik/aster/mir"
)

/*
emitStmt renders one MIR statement at the given indentation level.
Statements are emitted in source order (§4.5 "Statements are emitted in
order").
*/
func (e *Emitter) emitStmt(s mir.Stmt, level int) {
	switch n := s.(type) {
	case *mir.Let:
		if len(n.Names) == 1 {
			e.line(level, "%s = %s", n.Names[0], e.exprText(n.Value))
		} else {
			e.line(level, "%s = %s", strings.Join(n.Names, ", "), e.exprText(n.Value))
		}

	case *mir.Assign:
		e.line(level, "%s = %s", n.Name, e.exprText(n.Value))

	case *mir.If:
		e.line(level, "if %s:", e.exprText(n.Cond))
		e.emitBlock(n.Then, level+1)
		if n.Else != nil {
			e.line(level, "else:")
			e.emitBlock(n.Else, level+1)
		}

	case *mir.While:
		e.line(level, "while %s:", e.exprText(n.Cond))
		e.emitBlock(n.Body, level+1)

	case *mir.For:
		e.line(level, "for %s in %s:", n.Var, e.exprText(n.Iter))
		e.emitBlock(n.Body, level+1)

	case *mir.Match:
		e.emitMatchStmt(n, level)

	case *mir.Return:
		if n.Value != nil {
			e.line(level, "return %s", e.exprText(n.Value))
		} else {
			e.line(level, "return")
		}

	case *mir.Break:
		e.line(level, "break")

	case *mir.Continue:
		e.line(level, "continue")

	case *mir.ExprStmt:
		e.line(level, "%s", e.exprText(n.X))

	case *mir.FunctionDef:
		e.line(level, "def %s(%s):", n.Name, strings.Join(n.Params, ", "))
		e.emitBlock(n.Body, level+1)
		e.buf.WriteString("\n")

	case *mir.Import:
		e.emitImport(n, level)

	case *mir.ClassDef:
		e.emitClass(n, level)

	default:
		e.line(level, "pass  # unrecognised statement %T", n)
	}
}

func (e *Emitter) emitBlock(stmts []mir.Stmt, level int) {
	if len(stmts) == 0 {
		e.line(level, "pass")
		return
	}
	for _, s := range stmts {
		e.emitStmt(s, level)
	}
}

func (e *Emitter) emitImport(n *mir.Import, level int) {
	if len(n.Names) == 0 {
		e.line(level, "import %s", n.Path)
		return
	}
	e.line(level, "from %s import %s", n.Path, strings.Join(n.Names, ", "))
}

/*
emitClass renders a class declaration; every method's parameter list
already has "self" prepended by the lowerer (mir.ClassDef's own doc
comment).
*/
func (e *Emitter) emitClass(n *mir.ClassDef, level int) {
	if n.Extends != "" {
		e.line(level, "class %s(%s):", n.Name, n.Extends)
	} else {
		e.line(level, "class %s:", n.Name)
	}

	if len(n.Fields) > 0 {
		e.line(level+1, "def __init__(self, %s):", strings.Join(n.Fields, ", "))
		for _, f := range n.Fields {
			e.line(level+2, "self.%s = %s", f, f)
		}
		e.buf.WriteString("\n")
	}

	if len(n.Methods) == 0 && len(n.Fields) == 0 {
		e.line(level+1, "pass")
		return
	}

	for _, m := range n.Methods {
		e.emitStmt(m, level+1)
	}
}
