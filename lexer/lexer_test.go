/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import (
	"testing"

	"github.com/krotik/aster/diag"
	"github.com/krotik/aster/source"
)

func lexSrc(t *testing.T, src string) ([]Token, *source.Map) {
	t.Helper()
	sm := source.NewMap()
	f := sm.AddFile("test.ast", src)
	toks, bag := Lex(sm, f, src)
	if !bag.Ok() {
		t.Fatalf("unexpected diagnostics for %q: %v", src, bag.Items())
	}
	return toks, sm
}

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func assertKinds(t *testing.T, toks []Token, want ...Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("kind count: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kind %d: got %s, want %s\nfull: %v", i, got[i], want[i], got)
		}
	}
}

// Every token stream ends in exactly one EOF, wherever it appears in the
// sequence (§8.1 universal invariant), regardless of source shape.
func TestLexAlwaysEndsInSingleEOF(t *testing.T) {
	cases := []string{
		"",
		"\n",
		"   \n",
		"let x = 1",
		"let x = 1\n    x\n",
		"# just a comment\n",
	}
	for _, src := range cases {
		toks, _ := lexSrc(t, src)
		if len(toks) == 0 || toks[len(toks)-1].Kind != EOF {
			t.Errorf("src %q: expected trailing EOF, got %v", src, kinds(toks))
		}
		for i, tok := range toks[:len(toks)-1] {
			if tok.Kind == EOF {
				t.Errorf("src %q: EOF at non-final position %d", src, i)
			}
		}
	}
}

func TestLexEmptyInputIsJustEOF(t *testing.T) {
	toks, _ := lexSrc(t, "")
	assertKinds(t, toks, EOF)
}

func TestLexIndentationSynthesized(t *testing.T) {
	src := "fn f() do\n    let x = 1\n    x\nend\n"
	toks, _ := lexSrc(t, src)
	got := kinds(toks)

	wantPrefix := []Kind{KwFn, IDENT, LParen, RParen, KwDo, NEWLINE, INDENT}
	if len(got) < len(wantPrefix) {
		t.Fatalf("too few tokens: %v", got)
	}
	for i, k := range wantPrefix {
		if got[i] != k {
			t.Fatalf("prefix %d: got %s, want %s\nfull: %v", i, got[i], k, got)
		}
	}

	var sawDedent bool
	for _, k := range got {
		if k == DEDENT {
			sawDedent = true
		}
	}
	if !sawDedent {
		t.Errorf("expected a DEDENT closing the block, got %v", got)
	}
}

func TestLexDedentAtEOFDrainsEveryLevel(t *testing.T) {
	src := "if a then\n    if b then\n        1\n"
	toks, _ := lexSrc(t, src)
	got := kinds(toks)

	dedents := 0
	for _, k := range got {
		if k == DEDENT {
			dedents++
		}
	}
	if dedents != 2 {
		t.Errorf("expected 2 trailing DEDENTs for 2 open levels, got %d: %v", dedents, got)
	}
	if got[len(got)-2] != DEDENT || got[len(got)-1] != EOF {
		t.Errorf("expected ...DEDENT EOF at the tail, got %v", got)
	}
}

func TestLexBlankAndCommentLinesProduceNoTokens(t *testing.T) {
	src := "let x = 1\n\n# a comment\n\nlet y = 2\n"
	toks, _ := lexSrc(t, src)
	got := kinds(toks)
	want := []Kind{KwLet, IDENT, Assign, INT, NEWLINE, KwLet, IDENT, Assign, INT, NEWLINE, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexKeywordVsIdentifier(t *testing.T) {
	toks, _ := lexSrc(t, "let letter = 1")
	assertKinds(t, toks, KwLet, IDENT, Assign, INT, NEWLINE, EOF)
	if toks[1].Lexeme != "letter" {
		t.Errorf("expected identifier lexeme %q, got %q", "letter", toks[1].Lexeme)
	}
}

// and/or/not are operator words, never identifiers, per §4.1.
func TestLexOperatorWordsAreNotIdentifiers(t *testing.T) {
	toks, _ := lexSrc(t, "a and b or not c")
	assertKinds(t, toks, IDENT, KwAnd, IDENT, KwOr, KwNot, IDENT, NEWLINE, EOF)
}

func TestLexTwoCharOperatorsPreferLongestMatch(t *testing.T) {
	cases := map[string]Kind{
		"**": StarStar, "==": EqEq, "!=": NotEq, "<=": LtEq, ">=": GtEq,
		"<<": Shl, ">>": Shr, "|>": PipeGt, "..": DotDot, "->": Arrow, "=>": FatArrow,
	}
	for op, want := range cases {
		toks, _ := lexSrc(t, op)
		if toks[0].Kind != want {
			t.Errorf("op %q: got %s, want %s", op, toks[0].Kind, want)
		}
	}
}

func TestLexSingleCharOperatorsNotGreedilyMerged(t *testing.T) {
	// '<' followed by something that doesn't form a two-char op stays alone.
	toks, _ := lexSrc(t, "a < b")
	assertKinds(t, toks, IDENT, Lt, IDENT, NEWLINE, EOF)

	// '*' next to '*' always merges into '**', never two Stars.
	toks, _ = lexSrc(t, "a ** b")
	assertKinds(t, toks, IDENT, StarStar, IDENT, NEWLINE, EOF)
}

func TestLexStringEscapes(t *testing.T) {
	toks, _ := lexSrc(t, `"a\nb\t\\\"c"`)
	assertKinds(t, toks, STRING, NEWLINE, EOF)
	if want := "a\nb\t\\\"c"; toks[0].Lexeme != want {
		t.Errorf("got lexeme %q, want %q", toks[0].Lexeme, want)
	}
}

func TestLexHexAndUnicodeEscapes(t *testing.T) {
	toks, _ := lexSrc(t, `"\x41\u{1F600}"`)
	assertKinds(t, toks, STRING, NEWLINE, EOF)
	want := "A\U0001F600"
	if toks[0].Lexeme != want {
		t.Errorf("got lexeme %q, want %q", toks[0].Lexeme, want)
	}
}

func TestLexCharLiteral(t *testing.T) {
	toks, _ := lexSrc(t, `'x'`)
	assertKinds(t, toks, CHAR, NEWLINE, EOF)
	if toks[0].Lexeme != "x" {
		t.Errorf("got %q, want %q", toks[0].Lexeme, "x")
	}
}

func TestLexIntAndFloatLiterals(t *testing.T) {
	toks, _ := lexSrc(t, "1 2.5 3e2 4.0e-1")
	assertKinds(t, toks, INT, FLOAT, FLOAT, FLOAT, NEWLINE, EOF)
}

func TestLexTabIndentationIsDiagnostic(t *testing.T) {
	sm := source.NewMap()
	src := "if a then\n\tb\n"
	f := sm.AddFile("t.ast", src)
	_, bag := Lex(sm, f, src)
	if bag.Ok() {
		t.Fatal("expected a tab-indentation diagnostic")
	}
	var sawTab bool
	for _, d := range bag.Items() {
		if d.Kind == diag.TabIndentation {
			sawTab = true
		}
	}
	if !sawTab {
		t.Errorf("expected TabIndentation diagnostic, got %v", bag.Items())
	}
}

func TestLexInconsistentDedentIsDiagnostic(t *testing.T) {
	sm := source.NewMap()
	src := "if a then\n    if b then\n        1\n  2\n"
	f := sm.AddFile("t.ast", src)
	_, bag := Lex(sm, f, src)
	if bag.Ok() {
		t.Fatal("expected an inconsistent-dedent diagnostic")
	}
}

func TestLexMalformedNumberIsDiagnostic(t *testing.T) {
	sm := source.NewMap()
	src := "9999999999999999999999999999\n"
	f := sm.AddFile("t.ast", src)
	_, bag := Lex(sm, f, src)
	if bag.Ok() {
		t.Fatal("expected a malformed-number diagnostic")
	}
}

func TestLexUnterminatedStringIsDiagnostic(t *testing.T) {
	sm := source.NewMap()
	src := `"abc`
	f := sm.AddFile("t.ast", src)
	_, bag := Lex(sm, f, src)
	if bag.Ok() {
		t.Fatal("expected an unterminated-string diagnostic")
	}
}

func TestLexInvalidEscapeIsDiagnostic(t *testing.T) {
	sm := source.NewMap()
	src := `"\q"`
	f := sm.AddFile("t.ast", src)
	_, bag := Lex(sm, f, src)
	if bag.Ok() {
		t.Fatal("expected an invalid-escape diagnostic")
	}
}

func TestLexUnexpectedCharacterIsDiagnostic(t *testing.T) {
	sm := source.NewMap()
	src := "a $ b"
	f := sm.AddFile("t.ast", src)
	_, bag := Lex(sm, f, src)
	if bag.Ok() {
		t.Fatal("expected an unexpected-character diagnostic")
	}
}

func TestLexRecoversAfterErrorAndKeepsScanning(t *testing.T) {
	// scanning continues past a lexical error so later stages still see a
	// usable, if partial, token stream (§4.1 "Lex scans... continues on
	// error").
	sm := source.NewMap()
	src := "a $ b\n"
	f := sm.AddFile("t.ast", src)
	toks, bag := Lex(sm, f, src)
	if bag.Ok() {
		t.Fatal("expected a diagnostic")
	}
	got := kinds(toks)
	want := []Kind{IDENT, IDENT, NEWLINE, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexCommentsAreSkipped(t *testing.T) {
	toks, _ := lexSrc(t, "a // line comment\nb /* block */ c\n")
	assertKinds(t, toks, IDENT, NEWLINE, IDENT, IDENT, NEWLINE, EOF)
}
