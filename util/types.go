/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

/*
Logger is the interface the cli and batch collaborators release their
log messages to (§2.1 "the CLI collaborator and the batch
concurrent-compile package log through the teacher's util.Logger /
util.LogLevelLogger shape"). Trimmed from the teacher's util/types.go
down to just this interface: the rest of that file (ECALFunction,
ECALDebugger, DebugCommand, ECALImportLocator, ContType) models an
embedded interpreter's runtime and debugger, neither of which this
no-runtime, source-to-source compiler has (§9 "No runtime").
*/
type Logger interface {

	/*
	   LogError adds a new error log message.
	*/
	LogError(v ...interface{})

	/*
	   LogInfo adds a new info log message.
	*/
	LogInfo(v ...interface{})

	/*
	   LogDebug adds a new debug log message.
	*/
	LogDebug(v ...interface{})
}
