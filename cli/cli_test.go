/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package cli

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withCapturedOutput(f func()) (stdout, stderr string) {
	savedOut, savedErr := osStdout, osStderr
	var outBuf, errBuf bytes.Buffer
	osStdout, osStderr = &outBuf, &errBuf
	defer func() { osStdout, osStderr = savedOut, savedErr }()

	f()

	return outBuf.String(), errBuf.String()
}

func TestRunCompileWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.aster")
	if err := ioutil.WriteFile(src, []byte(`print("Hello, World!")`), 0644); err != nil {
		t.Fatal(err)
	}

	var code int
	out, _ := withCapturedOutput(func() {
		code = Run([]string{"compile", src})
	})

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out, "wrote") {
		t.Errorf("expected a confirmation message, got: %q", out)
	}

	outPath := filepath.Join(dir, "hello.py")
	data, err := ioutil.ReadFile(outPath)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", outPath, err)
	}
	if !strings.Contains(string(data), `print("Hello, World!")`) {
		t.Errorf("expected emitted print call, got:\n%s", data)
	}
}

func TestRunCompileReportsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.aster")
	if err := ioutil.WriteFile(src, []byte("let x = @@@"), 0644); err != nil {
		t.Fatal(err)
	}

	var code int
	_, errOut := withCapturedOutput(func() {
		code = Run([]string{"compile", src})
	})

	if code == 0 {
		t.Fatal("expected a non-zero exit code for a file with diagnostics")
	}
	if !strings.Contains(errOut, "diagnostic") {
		t.Errorf("expected a diagnostics summary, got: %q", errOut)
	}
}

func TestRunCheckDoesNotWriteOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "ok.aster")
	if err := ioutil.WriteFile(src, []byte(`print(1)`), 0644); err != nil {
		t.Fatal(err)
	}

	var code int
	out, _ := withCapturedOutput(func() {
		code = Run([]string{"check", src})
	})

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out, "ok") {
		t.Errorf("expected an ok message, got: %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "ok.py")); err == nil {
		t.Error("check must not write an output file")
	}
}

func TestRunMissingPathIsAnError(t *testing.T) {
	var code int
	withCapturedOutput(func() {
		code = Run([]string{"compile"})
	})
	if code == 0 {
		t.Fatal("expected a non-zero exit code for a missing path")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var code int
	_, errOut := withCapturedOutput(func() {
		code = Run([]string{"frobnicate"})
	})
	if code == 0 {
		t.Fatal("expected a non-zero exit code for an unknown command")
	}
	if !strings.Contains(errOut, "unknown command") {
		t.Errorf("expected an unknown-command message, got: %q", errOut)
	}
}

func TestRunFmtAndLintArePlaceholders(t *testing.T) {
	for _, verb := range []string{"fmt", "lint"} {
		var code int
		_, errOut := withCapturedOutput(func() {
			code = Run([]string{verb, "whatever.aster"})
		})
		if code == 0 {
			t.Errorf("%s: expected a non-zero placeholder exit code", verb)
		}
		if !strings.Contains(errOut, "not yet implemented") {
			t.Errorf("%s: expected a not-yet-implemented message, got: %q", verb, errOut)
		}
	}
}

func TestRunCompileOnMissingFile(t *testing.T) {
	var code int
	_, errOut := withCapturedOutput(func() {
		code = Run([]string{"compile", filepath.Join(t.TempDir(), "missing.aster")})
	})
	if code == 0 {
		t.Fatal("expected a non-zero exit code for a missing file")
	}
	if !strings.Contains(errOut, "no such file") {
		t.Errorf("expected a no-such-file message, got: %q", errOut)
	}
}
