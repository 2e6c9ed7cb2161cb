/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package emit

/*
directBuiltins maps a §6.3 built-in name straight onto the Python
built-in of the same behaviour - Python happens to share nearly every
one of these names verbatim, which is part of why it was picked as the
emission target (see SPEC_FULL.md §1).
*/
var directBuiltins = map[string]string{
	"print":   "print",
	"println": "print",
	"len":     "len",
	"range":   "range",
	"input":   "input",
	"str":     "str",
	"int":     "int",
	"float":   "float",
	"bool":    "bool",
	"abs":     "abs",
	"min":     "min",
	"max":     "max",
}

/*
emitBuiltinCall renders a call to a §6.3 built-in given its already
rendered argument expressions. "type" is the one entry that is not a
direct name passthrough: Python's own type() returns the class object,
not a name, so it is emitted as type(x).__name__ to match the
built-in's advertised String result.
*/
func emitBuiltinCall(name string, args []string) (string, bool) {
	if name == "type" {
		arg := "None"
		if len(args) > 0 {
			arg = args[0]
		}
		return "type(" + arg + ").__name__", true
	}

	if target, ok := directBuiltins[name]; ok {
		return target + "(" + joinArgs(args) + ")", true
	}

	return "", false
}

func joinArgs(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += a
	}
	return out
}
