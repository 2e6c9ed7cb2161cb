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
builtinScheme gives one of the pre-entered names of §6.3 its type
scheme. Each polymorphic entry quantifies over a fresh variable minted
here (once, at environment setup), so every call site instantiates its
own independent copy - print(1) and print("s") never force each other's
argument type together.
*/
func (inf *Inferencer) builtinScheme(name string) *Scheme {
	switch name {
	case "print", "println":
		a := inf.fresh()
		return &Scheme{Vars: []int{a.ID}, Type: &Func{Params: []Type{a}, Result: Unit}}

	case "len":
		a := inf.fresh()
		return &Scheme{Vars: []int{a.ID}, Type: &Func{Params: []Type{&List{Elem: a}}, Result: Int}}

	case "range":
		return Mono(&Func{Params: []Type{Int}, Result: &List{Elem: Int}})

	case "input":
		return Mono(&Func{Params: []Type{String}, Result: String})

	case "str", "type":
		a := inf.fresh()
		return &Scheme{Vars: []int{a.ID}, Type: &Func{Params: []Type{a}, Result: String}}

	case "int":
		a := inf.fresh()
		return &Scheme{Vars: []int{a.ID}, Type: &Func{Params: []Type{a}, Result: Int}}

	case "float":
		a := inf.fresh()
		return &Scheme{Vars: []int{a.ID}, Type: &Func{Params: []Type{a}, Result: Float}}

	case "bool":
		a := inf.fresh()
		return &Scheme{Vars: []int{a.ID}, Type: &Func{Params: []Type{a}, Result: Bool}}

	case "abs":
		return Mono(&Func{Params: []Type{Int}, Result: Int})

	case "min", "max":
		return Mono(&Func{Params: []Type{Int, Int}, Result: Int})

	default:
		return Mono(inf.fresh())
	}
}
