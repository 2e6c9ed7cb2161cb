/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package compiler

import (
	"strings"
	"testing"
)

// The six scenarios below are the literal end-to-end examples; each is
// a golden-output test over the full pipeline through emit.

func TestScenarioHelloWorld(t *testing.T) {
	res := Compile("hello.aster", `print("Hello, World!")`)

	if !res.Ok() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if !strings.Contains(res.Output, `print("Hello, World!")`) {
		t.Errorf("expected a print call in output, got:\n%s", res.Output)
	}
}

func TestScenarioArithmeticRoundTrip(t *testing.T) {
	src := "let x = 10\n" +
		"let y = 20\n" +
		"let z = x + y\n" +
		"print(z)\n"

	res := Compile("arith.aster", src)

	if !res.Ok() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if !strings.Contains(res.Output, "z = (x + y)") {
		t.Errorf("expected z's addition in output, got:\n%s", res.Output)
	}
	if !strings.Contains(res.Output, "print(z)") {
		t.Errorf("expected print(z) in output, got:\n%s", res.Output)
	}
}

func TestScenarioPolymorphicIdentity(t *testing.T) {
	src := "let id = |x| x\n" +
		"print(id(1))\n" +
		"print(id(\"s\"))\n"

	res := Compile("poly.aster", src)

	if !res.Ok() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if !strings.Contains(res.Output, "id(1)") || !strings.Contains(res.Output, `id("s")`) {
		t.Errorf("expected both applications of id, got:\n%s", res.Output)
	}
}

func TestScenarioPipelineWithBuiltins(t *testing.T) {
	src := "let n = len([1,2,3]) |> str\n" +
		"print(n)\n"

	res := Compile("pipeline.aster", src)

	if !res.Ok() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if !strings.Contains(res.Output, "str(len([1, 2, 3]))") {
		t.Errorf("expected the pipeline folded into nested calls, got:\n%s", res.Output)
	}
}

func TestScenarioRecursiveFactorial(t *testing.T) {
	src := "fn fact(n: Int) -> Int do if n <= 1 then 1 else n * fact(n - 1) end end\n" +
		"print(fact(5))\n"

	res := Compile("fact.aster", src)

	if !res.Ok() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if !strings.Contains(res.Output, "def fact(n):") {
		t.Errorf("expected fact's definition, got:\n%s", res.Output)
	}
	if !strings.Contains(res.Output, "fact(5)") {
		t.Errorf("expected a call to fact(5), got:\n%s", res.Output)
	}
}

func TestScenarioOperatorMappingRegression(t *testing.T) {
	res := Compile("ops.aster", "print(10 * 30 * 5 + 10 * 5 * 60)")

	if !res.Ok() {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if strings.Count(res.Output, "+") != 1 {
		t.Errorf("expected exactly one + operator rendered, got:\n%s", res.Output)
	}
	if strings.Count(res.Output, "*") != 4 {
		t.Errorf("expected exactly four * operators rendered, got:\n%s", res.Output)
	}
}

func TestCompileHaltsAfterLexError(t *testing.T) {
	res := Compile("bad.aster", "let x = @@@")

	if res.Ok() {
		t.Fatalf("expected diagnostics for invalid input, got none")
	}
	if res.Output != "" {
		t.Errorf("expected no output for a failed compilation, got:\n%s", res.Output)
	}
}

func TestCompileHaltsAfterTypeError(t *testing.T) {
	res := Compile("typeerr.aster", "let x = 1 + \"s\"\n")

	if res.Ok() {
		t.Fatalf("expected a type diagnostic, got none")
	}
	if res.Output != "" {
		t.Errorf("expected no output for a failed compilation, got:\n%s", res.Output)
	}
}
