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
Package cli implements the five-verb command surface (§6.1): `compile`,
`check`, and `run` drive the core; `fmt` and `lint` are placeholders.
Replaces the teacher's `cli/ecal.go` + `cli/tool` console/debug/pack
surface, which has no equivalent in a source-to-source batch compiler
with no interactive runtime to attach a console or debugger to.

Flag parsing, usage text, and the os.Args/os.Stderr/os.Exit
indirection (osArgs/osStderr/osExit below) follow `cli/tool/helper.go`
and `cli/tool/format.go` exactly, down to the package-level var
seams that let tests exercise Run without touching the real process.
*/
package cli

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"devt.de/krotik/common/fileutil"

	"github.com/krotik/aster/compiler"
	"github.com/krotik/aster/config"
	"github.com/krotik/aster/diag"
	"github.com/krotik/aster/util"
)

/*
logger receives the compile verb's progress and error lines, independent
of the diagnostics a compilation itself returns (§2.1 "Logging"); the
other verbs do not log.
*/
var logger util.Logger = util.NewStdOutLogger()

/*
osArgs is a local copy of os.Args (used for unit tests).
*/
var osArgs = os.Args

/*
osStdout is a local copy of os.Stdout (used for unit tests).
*/
var osStdout io.Writer = os.Stdout

/*
osStderr is a local copy of os.Stderr (used for unit tests).
*/
var osStderr io.Writer = os.Stderr

/*
osExit is a local variable pointing to os.Exit (used for unit tests).
*/
var osExit = os.Exit

/*
runCandidates is the ordered list of interpreter executables the `run`
verb probes for via exec.LookPath.
*/
var runCandidates = []string{"python3", "python"}

/*
Main is the process entry point: it runs the command found in the real
os.Args and exits with the resulting code. cmd/aster's main package
calls this directly.
*/
func Main() {
	osExit(Run(osArgs[1:]))
}

/*
Run dispatches a single CLI invocation and returns the process exit
code: 0 on success, non-zero on any diagnostic (§6.1).
*/
func Run(args []string) int {
	if len(args) == 0 {
		usage()
		return 1
	}

	verb, rest := args[0], args[1:]

	switch verb {
	case "compile":
		return runCompile(rest)
	case "check":
		return runCheck(rest)
	case "run":
		return runRun(rest)
	case "fmt":
		return runFmt(rest)
	case "lint":
		return runLint(rest)
	case "help", "-help", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(osStderr, "aster: unknown command %q\n\n", verb)
		usage()
		return 1
	}
}

func usage() {
	fmt.Fprintf(osStderr, "Aster %v - a small indentation-sensitive language compiling to Python\n\n", config.ProductVersion)
	fmt.Fprintln(osStderr, "Usage:")
	fmt.Fprintln(osStderr, "    aster compile <path> [-o out]   Compile a file and write the emitted program")
	fmt.Fprintln(osStderr, "    aster check <path>              Compile a file, report diagnostics, write nothing")
	fmt.Fprintln(osStderr, "    aster run <path>                Compile and immediately execute a file")
	fmt.Fprintln(osStderr, "    aster fmt <path>                Format a file (not yet implemented)")
	fmt.Fprintln(osStderr, "    aster lint <path>                Lint a file (not yet implemented)")
	fmt.Fprintln(osStderr)
}

func runCompile(args []string) int {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	out := fs.String("o", "", "output file path (default: input path with its extension replaced by .py)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(osStderr, "compile: missing <path>")
		return 2
	}

	path := fs.Arg(0)
	logger.LogInfo("compiling ", path)
	res, err := compileFile(path)
	if err != nil {
		logger.LogError(err)
		fmt.Fprintln(osStderr, err)
		return 1
	}
	if !res.Ok() {
		logger.LogError(diag.Summary(res.Diagnostics), " in ", path)
		printDiagnostics(res)
		return 1
	}

	outPath := *out
	if outPath == "" {
		outPath = replaceExt(path, ".py")
	}
	if err := ioutil.WriteFile(outPath, []byte(res.Output), 0644); err != nil {
		logger.LogError(err)
		fmt.Fprintln(osStderr, err)
		return 1
	}

	fmt.Fprintf(osStdout, "wrote %s\n", outPath)
	return 0
}

func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(osStderr, "check: missing <path>")
		return 2
	}

	res, err := compileFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(osStderr, err)
		return 1
	}
	if !res.Ok() {
		printDiagnostics(res)
		return 1
	}

	fmt.Fprintln(osStdout, "ok")
	return 0
}

/*
runRun compiles a file and, if it compiles cleanly, executes the
emitted program with the first available interpreter found on PATH
(§6.1 "run" drives the core then hands off to an external collaborator
for execution - the core itself performs no I/O, §5).
*/
func runRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(osStderr, "run: missing <path>")
		return 2
	}

	path := fs.Arg(0)
	res, err := compileFile(path)
	if err != nil {
		fmt.Fprintln(osStderr, err)
		return 1
	}
	if !res.Ok() {
		printDiagnostics(res)
		return 1
	}

	interpreter := ""
	for _, candidate := range runCandidates {
		if p, err := exec.LookPath(candidate); err == nil {
			interpreter = p
			break
		}
	}
	if interpreter == "" {
		fmt.Fprintf(osStderr, "run: no interpreter found (tried %s)\n", strings.Join(runCandidates, ", "))
		return 1
	}

	tmp, err := ioutil.TempFile("", "aster-*.py")
	if err != nil {
		fmt.Fprintln(osStderr, err)
		return 1
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(res.Output); err != nil {
		tmp.Close()
		fmt.Fprintln(osStderr, err)
		return 1
	}
	tmp.Close()

	cmd := exec.Command(interpreter, tmp.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = osStdout
	cmd.Stderr = osStderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		fmt.Fprintln(osStderr, err)
		return 1
	}

	return 0
}

/*
runFmt is a placeholder: reformatting is out of scope for this
compiler (§6.1 lists `fmt` among the two verbs that "are placeholders").
*/
func runFmt(args []string) int {
	fmt.Fprintln(osStderr, "fmt: not yet implemented")
	return 1
}

/*
runLint is a placeholder, see runFmt.
*/
func runLint(args []string) int {
	fmt.Fprintln(osStderr, "lint: not yet implemented")
	return 1
}

/*
compileFile loads and compiles the file at path. fileutil.PathExists
gives a clearer "no such file" message than the generic os.Open error
ioutil.ReadFile would otherwise produce - the same helper the teacher
uses to check for a config file before opening it (cli/tool/interpret.go).
*/
func compileFile(path string) (*compiler.Result, error) {
	if exists, _ := fileutil.PathExists(path); !exists {
		return nil, fmt.Errorf("%s: no such file", path)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(path, string(data)), nil
}

func printDiagnostics(res *compiler.Result) {
	for _, d := range res.Diagnostics {
		fmt.Fprintln(osStderr, d.Format(res.Map))
	}
	fmt.Fprintln(osStderr, diag.Summary(res.Diagnostics))
}

func replaceExt(path, ext string) string {
	trimmed := strings.TrimSuffix(path, filepath.Ext(path))
	return trimmed + ext
}
