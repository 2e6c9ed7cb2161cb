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
	"bytes"
	"fmt"
	"strings"

	"github.com/krotik/aster/mir"
)

/*
emitMatchStmt renders the statement form of match as a synthesised
helper function called once for its side effect. Both the statement and
expression forms of match share this machinery because Python has no
native match *expression* (its 3.10 match statement is a statement,
same as Python's if/else have no expression form either, hence the
ternary workaround used elsewhere) - generating one small function per
match and calling it is the simplest construct that behaves correctly
in either position: an arm's guard failing simply falls through to the
next arm's own "if", since arms are independent top-level ifs inside the
helper rather than one if/elif chain (see compileArms).
*/
func (e *Emitter) emitMatchStmt(n *mir.Match, level int) {
	name := e.synthMatchFunc(n.Scrutinee, n.Arms)
	e.line(level, "%s(%s)", name, e.exprText(n.Scrutinee))
}

func (e *Emitter) emitMatchExpr(n *mir.MatchExpr) string {
	name := e.synthMatchFunc(n.Scrutinee, n.Arms)
	return fmt.Sprintf("%s(%s)", name, e.exprText(n.Scrutinee))
}

/*
synthMatchFunc builds (and queues for later flushing, see emit.go's
Emit) a helper function of the form:

	def _matchN(subject):
	    if <cond0>:
	        <bindings0>
	        if <guard0>:
	            return <body0>
	    if <cond1>:
	        ...
	    raise RuntimeError("no match arm matched")

Guard failure does not abort the whole match - it only skips that arm's
return, and control falls through to the next arm's own "if" - exactly
the semantics a match expression's guard clause needs (§9 "Match
exhaustiveness checking is unspecified").
*/
func (e *Emitter) synthMatchFunc(scrutinee mir.Expr, arms []*mir.MatchArm) string {
	e.synthCount++
	name := fmt.Sprintf("_match%d", e.synthCount)

	var buf bytes.Buffer
	savedBuf := e.buf
	e.buf = buf

	e.line(0, "def %s(subject):", name)
	for _, arm := range arms {
		cond := e.compilePatternCond(arm.Pattern, "subject")
		e.line(1, "if %s:", cond)

		bindings := e.compilePatternBindings(arm.Pattern, "subject")
		for _, b := range bindings {
			e.line(2, "%s", b)
		}

		if arm.Guard != nil {
			e.line(2, "if %s:", e.exprText(arm.Guard))
			e.line(3, "return %s", e.exprText(arm.Body))
		} else {
			e.line(2, "return %s", e.exprText(arm.Body))
		}
	}
	e.line(1, "raise RuntimeError(\"no match arm matched\")")

	buf = e.buf
	e.buf = savedBuf

	e.synthFuncs = append(e.synthFuncs, buf.String())
	return name
}

/*
compilePatternCond renders the boolean test a pattern performs against
subject, without any bindings.
*/
func (e *Emitter) compilePatternCond(p mir.Pattern, subject string) string {
	switch n := p.(type) {
	case *mir.VariablePattern, *mir.WildcardPattern:
		return "True"

	case *mir.LiteralPattern:
		return fmt.Sprintf("%s == %s", subject, literalPatternText(n))

	case *mir.TuplePattern:
		return e.compileSequenceCond(n.Elements, subject)

	case *mir.ListPattern:
		return e.compileSequenceCond(n.Elements, subject)

	case *mir.ConsPattern:
		headCond := e.compilePatternCond(n.Head, subject+"[0]")
		tailCond := e.compilePatternCond(n.Tail, subject+"[1:]")
		return fmt.Sprintf("(len(%s) >= 1 and %s and %s)", subject, headCond, tailCond)

	case *mir.StructPattern:
		// best-effort: struct/class shape is not nominally typed here
		// (see DESIGN.md), so every field is assumed present
		return "True"

	case *mir.OrPattern:
		parts := make([]string, len(n.Alternatives))
		for i, alt := range n.Alternatives {
			parts[i] = e.compilePatternCond(alt, subject)
		}
		return "(" + strings.Join(parts, " or ") + ")"

	case *mir.RangePattern:
		low := literalPatternText(n.Low)
		high := literalPatternText(n.High)
		return fmt.Sprintf("(%s <= %s <= %s)", low, subject, high)

	default:
		return "True"
	}
}

func (e *Emitter) compileSequenceCond(elements []mir.Pattern, subject string) string {
	parts := []string{fmt.Sprintf("len(%s) == %d", subject, len(elements))}
	for i, el := range elements {
		parts = append(parts, e.compilePatternCond(el, fmt.Sprintf("%s[%d]", subject, i)))
	}
	return "(" + strings.Join(parts, " and ") + ")"
}

/*
compilePatternBindings renders the name bindings a pattern introduces
once its condition has matched.
*/
func (e *Emitter) compilePatternBindings(p mir.Pattern, subject string) []string {
	switch n := p.(type) {
	case *mir.VariablePattern:
		return []string{fmt.Sprintf("%s = %s", n.Name, subject)}

	case *mir.WildcardPattern, *mir.LiteralPattern, *mir.RangePattern:
		return nil

	case *mir.TuplePattern:
		var out []string
		for i, el := range n.Elements {
			out = append(out, e.compilePatternBindings(el, fmt.Sprintf("%s[%d]", subject, i))...)
		}
		return out

	case *mir.ListPattern:
		var out []string
		for i, el := range n.Elements {
			out = append(out, e.compilePatternBindings(el, fmt.Sprintf("%s[%d]", subject, i))...)
		}
		return out

	case *mir.ConsPattern:
		out := e.compilePatternBindings(n.Head, subject+"[0]")
		out = append(out, e.compilePatternBindings(n.Tail, subject+"[1:]")...)
		return out

	case *mir.StructPattern:
		var out []string
		for _, f := range n.Fields {
			out = append(out, e.compilePatternBindings(f.Pattern, fmt.Sprintf("getattr(%s, %q, None)", subject, f.Name))...)
		}
		return out

	case *mir.OrPattern:
		// only meaningful, unambiguous case: every alternative binds
		// the same plain name, so bind it once against the subject
		// (see DESIGN.md)
		if len(n.Alternatives) > 0 {
			if v, ok := n.Alternatives[0].(*mir.VariablePattern); ok {
				for _, alt := range n.Alternatives[1:] {
					if av, ok := alt.(*mir.VariablePattern); !ok || av.Name != v.Name {
						return nil
					}
				}
				return []string{fmt.Sprintf("%s = %s", v.Name, subject)}
			}
		}
		return nil

	default:
		return nil
	}
}

func literalPatternText(n *mir.LiteralPattern) string {
	switch n.Kind {
	case mir.IntPatternLit:
		return fmt.Sprintf("%d", n.IntVal)
	case mir.FloatPatternLit:
		return fmt.Sprintf("%v", n.FloatVal)
	case mir.StringPatternLit:
		return pyStringLiteral(n.StringVal)
	case mir.BoolPatternLit:
		if n.BoolVal {
			return "True"
		}
		return "False"
	default:
		return "None"
	}
}
