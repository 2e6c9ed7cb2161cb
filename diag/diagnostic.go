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
Package diag holds the compiler's closed taxonomy of error kinds (§7) and
the Diagnostic/Note/Bag machinery every stage uses to accumulate, never
throw, its findings.
*/
package diag

import (
	"fmt"

	"devt.de/krotik/common/stringutil"

	"github.com/krotik/aster/source"
)

/*
Kind is a closed set of diagnostic kinds, grouped by the stage that raises
them (§7).
*/
type Kind string

// Lexical
const (
	UnexpectedCharacter Kind = "unexpected-character"
	UnterminatedString  Kind = "unterminated-string"
	InvalidEscape       Kind = "invalid-escape"
	MalformedNumber     Kind = "malformed-number"
	TabIndentation      Kind = "tab-indentation"
	InconsistentDedent  Kind = "inconsistent-dedent"
)

// Syntactic
const (
	UnexpectedToken Kind = "unexpected-token"
	MissingToken    Kind = "missing-token"
	UnexpectedEOF   Kind = "unexpected-eof"
	InvalidPattern  Kind = "invalid-pattern"
)

// Name resolution
const (
	UndefinedName         Kind = "undefined-name"
	DuplicateDefinition   Kind = "duplicate-definition"
	InvalidReturnContext  Kind = "invalid-return-context"
	InvalidBreakContext   Kind = "invalid-break-context"
	InvalidContinueContext Kind = "invalid-continue-context"
	InvalidAssignTarget   Kind = "invalid-assign-target"
)

// Type
const (
	TypeMismatch    Kind = "type-mismatch"
	ArityMismatch   Kind = "arity-mismatch"
	NotAFunction    Kind = "not-a-function"
	OccursCheck     Kind = "occurs-check"
	AmbiguousType   Kind = "ambiguous-type"
)

// Lowering
const (
	UnsupportedConstruct Kind = "unsupported-construct"
)

/*
Note is an optional piece of context attached to a Diagnostic: up to two
may be printed (§7 "User-visible behaviour").
*/
type Note struct {
	Span    *source.Span
	Message string
}

/*
Diagnostic is a single structured error. It is data, never an exception:
stages collect Diagnostics in a Bag and keep going where doing so is well
defined (§4.6).
*/
type Diagnostic struct {
	Kind    Kind
	Span    source.Span
	Message string
	Notes   []Note
}

/*
New creates a Diagnostic with no notes.
*/
func New(kind Kind, span source.Span, message string, args ...interface{}) *Diagnostic {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return &Diagnostic{Kind: kind, Span: span, Message: message}
}

/*
WithNote appends a contextual note and returns the same Diagnostic for
chaining.
*/
func (d *Diagnostic) WithNote(span *source.Span, message string, args ...interface{}) *Diagnostic {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	d.Notes = append(d.Notes, Note{Span: span, Message: message})
	return d
}

/*
Format renders this diagnostic in the canonical "file:line:col: message"
form required by §7, followed by up to two notes.
*/
func (d *Diagnostic) Format(sm *source.Map) string {
	out := fmt.Sprintf("%s: %s", sm.SpanString(d.Span), d.Message)

	notes := d.Notes
	if len(notes) > 2 {
		notes = notes[:2]
	}

	for _, n := range notes {
		if n.Span != nil {
			out += fmt.Sprintf("\n  note: %s (%s)", n.Message, sm.SpanString(*n.Span))
		} else {
			out += fmt.Sprintf("\n  note: %s", n.Message)
		}
	}

	return out
}

/*
Error implements the error interface so a single Diagnostic can be wrapped
or returned on its own when a caller needs a plain Go error.
*/
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Span, d.Message)
}

/*
Summary returns a one-line "N diagnostics" style summary using the same
pluralisation helper the teacher repo uses for rule-error summaries.
*/
func Summary(ds []*Diagnostic) string {
	return fmt.Sprintf("%d diagnostic%s", len(ds), stringutil.Plural(len(ds)))
}
