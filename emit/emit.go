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
Package emit renders a mir.Program as Python 3 source text (§1
"Target host language... Python 3", §4.5, §6.5). Python was picked
during spec expansion because it is dynamically typed, has a direct
name for nearly every §6.3 built-in, and its own f-string/print machinery
covers the emission requirements without inventing a target with no
grounding in the retrieval pack.
*/
package emit

import (
	"bytes"
	"fmt"

	"github.com/krotik/aster/config"
	"github.com/krotik/aster/mir"
)

/*
Emitter accumulates rendered Python source. synthCount names the
generated match-expression helper functions uniquely within one
emission (§4.5 "MatchExpr... no native expression form"; see
emit_match.go).
*/
type Emitter struct {
	buf         bytes.Buffer
	indentWidth int
	synthCount  int
	synthFuncs  []string
}

/*
Emit renders prog as a complete Python 3 file: a one-line generator
banner, then every top-level FunctionDef/ClassDef/Import in source
order, then (if the program has any bare top-level statement) a
synthesised main() holding them, called explicitly at the end of the
file (§6.5).
*/
func Emit(prog *mir.Program) string {
	e := &Emitter{indentWidth: config.Int(config.IndentWidth)}

	e.buf.WriteString(config.Str(config.Header))
	e.buf.WriteString("\n\n")

	var defs, plain []mir.Stmt
	for _, s := range prog.Stmts {
		switch s.(type) {
		case *mir.FunctionDef, *mir.ClassDef, *mir.Import:
			defs = append(defs, s)
		default:
			plain = append(plain, s)
		}
	}

	for _, s := range defs {
		e.emitStmt(s, 0)
	}

	// main() is rendered into a side buffer first so that any helper
	// functions synthesised while rendering it (emit_match.go's
	// generated match dispatchers) can be flushed ahead of it - Python
	// only requires a def to have executed before its first call, not
	// before it textually appears relative to other top-level defs, but
	// keeping helpers visually above their caller matches how a human
	// author would order them.
	var body bytes.Buffer
	if len(plain) > 0 {
		savedBuf := e.buf
		e.buf = bytes.Buffer{}

		e.buf.WriteString("def main():\n")
		for _, s := range plain {
			e.emitStmt(s, 1)
		}

		body = e.buf
		e.buf = savedBuf
	}

	for _, fn := range e.synthFuncs {
		e.buf.WriteString(fn)
		e.buf.WriteString("\n")
	}
	e.buf.Write(body.Bytes())

	if len(plain) > 0 {
		e.buf.WriteString("\n\nmain()\n")
	}

	return e.buf.String()
}

func (e *Emitter) writeIndent(level int) {
	for i := 0; i < level*e.indentWidth; i++ {
		e.buf.WriteByte(' ')
	}
}

func (e *Emitter) line(level int, format string, args ...interface{}) {
	e.writeIndent(level)
	fmt.Fprintf(&e.buf, format, args...)
	e.buf.WriteString("\n")
}
