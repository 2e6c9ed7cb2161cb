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
Env is a typing environment: a chain of scopes from Symbol name to
Scheme, mirroring package resolve's Scope but keyed for the type
inferencer instead (§4.4 free-variables-of-the-environment computation
needs to walk exactly this chain).
*/
type Env struct {
	parent *Env
	table  map[string]*Scheme
}

/*
NewEnv creates a root environment.
*/
func NewEnv() *Env {
	return &Env{table: make(map[string]*Scheme)}
}

/*
Child creates a nested environment.
*/
func (e *Env) Child() *Env {
	return &Env{parent: e, table: make(map[string]*Scheme)}
}

/*
Bind adds (or shadows) a binding in this exact environment frame.
*/
func (e *Env) Bind(name string, sc *Scheme) {
	e.table[name] = sc
}

/*
Lookup walks outward for name's scheme.
*/
func (e *Env) Lookup(name string) (*Scheme, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if sc, ok := cur.table[name]; ok {
			return sc, true
		}
	}
	return nil, false
}

/*
freeVars collects the free variable ids of t.
*/
func freeVars(t Type, out map[int]bool) {
	switch n := t.(type) {
	case *Var:
		out[n.ID] = true
	case *List:
		freeVars(n.Elem, out)
	case *Map:
		freeVars(n.Value, out)
	case *Tuple:
		for _, el := range n.Elements {
			freeVars(el, out)
		}
	case *Func:
		for _, p := range n.Params {
			freeVars(p, out)
		}
		freeVars(n.Result, out)
	}
}

/*
envFreeVars collects every free variable id mentioned anywhere in e or
its ancestors, after applying s - the set generalisation must exclude
(§4.4 "compute the free variables of τ that do not occur free in the
environment").
*/
func envFreeVars(e *Env, s Subst) map[int]bool {
	out := make(map[int]bool)
	for cur := e; cur != nil; cur = cur.parent {
		for _, sc := range cur.table {
			applied := s.ApplyScheme(sc)
			fv := make(map[int]bool)
			freeVars(applied.Type, fv)
			for id := range fv {
				out[id] = true
			}
		}
	}
	return out
}

/*
generalise closes τ's free variables (minus those free in env) into a
Scheme (§4.4 "Generalisation at let").
*/
func generalise(env *Env, s Subst, t Type) *Scheme {
	applied := s.Apply(t)

	tfv := make(map[int]bool)
	freeVars(applied, tfv)

	efv := envFreeVars(env, s)

	var vars []int
	for id := range tfv {
		if !efv[id] {
			vars = append(vars, id)
		}
	}

	return &Scheme{Vars: vars, Type: applied}
}

/*
instantiate replaces every quantified variable of sc with a fresh one
(§4.4 "Instantiation at use").
*/
func (inf *Inferencer) instantiate(sc *Scheme) Type {
	if len(sc.Vars) == 0 {
		return sc.Type
	}

	mapping := make(Subst, len(sc.Vars))
	for _, id := range sc.Vars {
		mapping[id] = inf.fresh()
	}
	return mapping.Apply(sc.Type)
}
