/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package types implements Damas-Hindley-Milner inference with
let-polymorphism (§4.4): a small Type/Scheme/Subst data model, Robinson
unification with an occurs check, and one inference function per
construct category, split the way the teacher's interpreter splits its
per-construct runtime evaluation (rt_arithmetic.go, rt_boolean.go, ...)
into ti_*.go files here.
*/
package types

import (
	"fmt"
	"strings"
)

/*
Type is the closed set of type shapes the inferencer works with. Unlike
ast.TypeAnn (surface syntax as written by the programmer), a Type is
always either a concrete constructor application or a variable that
unification can bind.
*/
type Type interface {
	typeNode()
	String() string
}

/*
Var is an unbound (or, once substituted, soon-to-be-bound) type
variable, identified by a fresh id unique within one inference pass
(§4.4 "monotonic counter").
*/
type Var struct {
	ID int
}

func (*Var) typeNode() {}

func (v *Var) String() string { return fmt.Sprintf("t%d", v.ID) }

/*
Con is a concrete nullary type constructor: Int, Float, String, Bool,
Null, Unit.
*/
type Con struct {
	Name string
}

func (*Con) typeNode() {}

func (c *Con) String() string { return c.Name }

var (
	Int    = &Con{Name: "Int"}
	Float  = &Con{Name: "Float"}
	String = &Con{Name: "String"}
	Bool   = &Con{Name: "Bool"}
	Null   = &Con{Name: "Null"}
	Unit   = &Con{Name: "Unit"}
)

/*
List is List(Elem) (§4.4 "List literal").
*/
type List struct {
	Elem Type
}

func (*List) typeNode() {}

func (l *List) String() string { return fmt.Sprintf("List(%s)", l.Elem) }

/*
Tuple is a fixed-size product type, needed for TuplePattern destructuring
(§4.2 "Pattern parsing") - spec.md's illustrative Type list does not name
one, but a pattern-binding for "let (a, b) = ..." has nowhere else to put
each element's type.
*/
type Tuple struct {
	Elements []Type
}

func (*Tuple) typeNode() {}

func (t *Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, p := range t.Elements {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Tuple(%s)", strings.Join(parts, ", "))
}

/*
Map is Map(Value); keys are always String so only the value type varies
(§4.4 "Map literal").
*/
type Map struct {
	Value Type
}

func (*Map) typeNode() {}

func (m *Map) String() string { return fmt.Sprintf("Map(%s)", m.Value) }

/*
Func is Function([params], result) (§4.4 "Function definition" / §6.3).
*/
type Func struct {
	Params []Type
	Result Type
}

func (*Func) typeNode() {}

func (f *Func) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Function([%s], %s)", strings.Join(parts, ", "), f.Result)
}

/*
Scheme is a TypeScheme ∀ᾱ. τ: a type closed over a set of quantified
variable ids (§4.4 "Generalisation at let").
*/
type Scheme struct {
	Vars []int
	Type Type
}

/*
Mono wraps a Type with no quantified variables, the common case for
built-ins whose scheme is just their bare type (non-generic built-ins)
or a use site after instantiation.
*/
func Mono(t Type) *Scheme {
	return &Scheme{Type: t}
}
