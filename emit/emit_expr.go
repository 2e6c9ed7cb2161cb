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
	"fmt"
	"strconv"
	"strings"

	"github.com/krotik/aster/mir"
)

var opSymbols = map[mir.Op]string{
	mir.OpAdd: "+", mir.OpSub: "-", mir.OpMul: "*", mir.OpDiv: "/",
	mir.OpMod: "%", mir.OpPow: "**",
	mir.OpBitAnd: "&", mir.OpBitOr: "|", mir.OpBitXor: "^",
	mir.OpShl: "<<", mir.OpShr: ">>",
	mir.OpEq: "==", mir.OpNe: "!=", mir.OpLt: "<", mir.OpLe: "<=",
	mir.OpGt: ">", mir.OpGe: ">=",
}

var logicSymbols = map[mir.Op]string{mir.OpAnd: "and", mir.OpOr: "or"}

var unarySymbols = map[mir.Op]string{mir.OpNeg: "-", mir.OpNot: "not ", mir.OpBitNot: "~"}

/*
exprText renders e as a Python expression. Every Binary and Logical
expression is unconditionally wrapped in parentheses (§4.5 "every binary
expression is fully parenthesised") rather than consulting a precedence
table, which is the conservative strategy spec.md itself names.
*/
func (e *Emitter) exprText(x mir.Expr) string {
	switch n := x.(type) {
	case *mir.IntLit:
		return strconv.FormatInt(n.Value, 10)
	case *mir.FloatLit:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)
	case *mir.StringLit:
		return pyStringLiteral(n.Value)
	case *mir.BoolLit:
		if n.Value {
			return "True"
		}
		return "False"
	case *mir.NullLit:
		return "None"
	case *mir.Variable:
		return n.Name
	case *mir.Binary:
		return fmt.Sprintf("(%s %s %s)", e.exprText(n.Left), opSymbols[n.Op], e.exprText(n.Right))
	case *mir.Logical:
		return fmt.Sprintf("(%s %s %s)", e.exprText(n.Left), logicSymbols[n.Op], e.exprText(n.Right))
	case *mir.Unary:
		return fmt.Sprintf("(%s%s)", unarySymbols[n.Op], e.exprText(n.Operand))
	case *mir.Range:
		return fmt.Sprintf("range(%s, %s)", e.exprText(n.Low), e.exprText(n.High))
	case *mir.Call:
		return e.emitCall(n)
	case *mir.Index:
		return fmt.Sprintf("%s[%s]", e.exprText(n.Target), e.exprText(n.Idx))
	case *mir.ListExpr:
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = e.exprText(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *mir.MapExpr:
		parts := make([]string, len(n.Entries))
		for i, en := range n.Entries {
			parts[i] = fmt.Sprintf("%s: %s", e.exprText(en.Key), e.exprText(en.Value))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *mir.Lambda:
		return fmt.Sprintf("(lambda %s: %s)", strings.Join(n.Params, ", "), e.exprText(n.Body))
	case *mir.IfExpr:
		return fmt.Sprintf("(%s if %s else %s)", e.exprText(n.Then), e.exprText(n.Cond), e.exprText(n.Else))
	case *mir.MatchExpr:
		return e.emitMatchExpr(n)
	default:
		return "None"
	}
}

func (e *Emitter) emitCall(n *mir.Call) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = e.exprText(a)
	}

	if v, ok := n.Callee.(*mir.Variable); ok {
		if text, handled := emitBuiltinCall(v.Name, args); handled {
			return text
		}
	}

	return fmt.Sprintf("%s(%s)", e.exprText(n.Callee), joinArgs(args))
}

/*
pyStringLiteral renders a Go string as a Python double-quoted string
literal, escaping the characters Python's own grammar requires.
*/
func pyStringLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
