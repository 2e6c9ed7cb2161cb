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

/*
Subst is a substitution from type variable id to Type, built up
incrementally by unify (§4.4 "Robinson").
*/
type Subst map[int]Type

/*
Apply pushes s through t, replacing every bound variable with its
substituted value, recursively.
*/
func (s Subst) Apply(t Type) Type {
	switch n := t.(type) {
	case *Var:
		if bound, ok := s[n.ID]; ok {
			return s.Apply(bound)
		}
		return n
	case *List:
		return &List{Elem: s.Apply(n.Elem)}
	case *Map:
		return &Map{Value: s.Apply(n.Value)}
	case *Tuple:
		elems := make([]Type, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = s.Apply(el)
		}
		return &Tuple{Elements: elems}
	case *Func:
		params := make([]Type, len(n.Params))
		for i, p := range n.Params {
			params[i] = s.Apply(p)
		}
		return &Func{Params: params, Result: s.Apply(n.Result)}
	default:
		return t
	}
}

/*
ApplyScheme applies s to a scheme's body without touching variables the
scheme itself quantifies over (they are bound by the scheme, not free).
*/
func (s Subst) ApplyScheme(sc *Scheme) *Scheme {
	filtered := make(Subst, len(s))
	quantified := make(map[int]bool, len(sc.Vars))
	for _, v := range sc.Vars {
		quantified[v] = true
	}
	for k, v := range s {
		if !quantified[k] {
			filtered[k] = v
		}
	}
	return &Scheme{Vars: sc.Vars, Type: filtered.Apply(sc.Type)}
}

/*
compose returns a substitution equivalent to applying s first, then add:
every binding of s has add applied to it, and add's bindings fill in the
variables s leaves unbound (on overlap s's binding is kept; unify only
ever adds a variable s does not bind, so no overlap arises there).
*/
func compose(add, s Subst) Subst {
	out := make(Subst, len(s)+len(add))
	for k, v := range s {
		out[k] = add.Apply(v)
	}
	for k, v := range add {
		if _, exists := out[k]; !exists {
			out[k] = v
		}
	}
	return out
}

/*
occurs reports whether id occurs free within t under s - the occurs
check that prevents building an infinite type (§4.4 "Robinson").
*/
func occurs(s Subst, id int, t Type) bool {
	switch n := s.Apply(t).(type) {
	case *Var:
		return n.ID == id
	case *List:
		return occurs(s, id, n.Elem)
	case *Map:
		return occurs(s, id, n.Value)
	case *Tuple:
		for _, el := range n.Elements {
			if occurs(s, id, el) {
				return true
			}
		}
		return false
	case *Func:
		for _, p := range n.Params {
			if occurs(s, id, p) {
				return true
			}
		}
		return occurs(s, id, n.Result)
	default:
		return false
	}
}

/*
unifyError carries enough context for the inferencer to attach a
TypeMismatch diagnostic at the call site, which alone knows the
offending span.
*/
type unifyError struct {
	expected, found Type
}

func (e *unifyError) Error() string {
	return "type mismatch: expected " + e.expected.String() + ", found " + e.found.String()
}

/*
unify computes the most general substitution making a and b equal under
the running substitution s, per Robinson's algorithm (§4.4): decompose
structurally, bind a variable to a concrete type after the occurs check,
unify two variables either way, and fail with unifyError (carrying both
sides *after* applying s, so the caller reports what the programmer
would recognise) on any other mismatch.
*/
func unify(s Subst, a, b Type) (Subst, error) {
	a = s.Apply(a)
	b = s.Apply(b)

	if av, ok := a.(*Var); ok {
		if bv, ok := b.(*Var); ok && bv.ID == av.ID {
			return s, nil
		}
		if occurs(s, av.ID, b) {
			return s, &unifyError{expected: a, found: b}
		}
		return compose(Subst{av.ID: b}, s), nil
	}

	if bv, ok := b.(*Var); ok {
		if occurs(s, bv.ID, a) {
			return s, &unifyError{expected: a, found: b}
		}
		return compose(Subst{bv.ID: a}, s), nil
	}

	switch an := a.(type) {
	case *Con:
		if bn, ok := b.(*Con); ok && bn.Name == an.Name {
			return s, nil
		}
	case *List:
		if bn, ok := b.(*List); ok {
			return unify(s, an.Elem, bn.Elem)
		}
	case *Map:
		if bn, ok := b.(*Map); ok {
			return unify(s, an.Value, bn.Value)
		}
	case *Tuple:
		if bn, ok := b.(*Tuple); ok && len(an.Elements) == len(bn.Elements) {
			cur := s
			for i := range an.Elements {
				var err error
				cur, err = unify(cur, an.Elements[i], bn.Elements[i])
				if err != nil {
					return s, err
				}
			}
			return cur, nil
		}
	case *Func:
		if bn, ok := b.(*Func); ok && len(an.Params) == len(bn.Params) {
			cur := s
			for i := range an.Params {
				var err error
				cur, err = unify(cur, an.Params[i], bn.Params[i])
				if err != nil {
					return s, err
				}
			}
			return unify(cur, an.Result, bn.Result)
		}
	}

	return s, &unifyError{expected: a, found: b}
}
