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
Package config holds the handful of compiler-wide knobs that do not
belong to any single pipeline stage, following the teacher's own
map[string]interface{}-plus-accessor-functions shape rather than a
struct-per-package config style (§2.1 "Configuration").
*/
package config

import (
	"fmt"
	"strconv"

	"devt.de/krotik/common/errorutil"
)

// Global variables
// ================

/*
ProductVersion is the current version of the compiler.
*/
const ProductVersion = "1.0.0"

/*
Known configuration options.
*/
const (
	// NodeCounterStart records the first NodeID value (0, where a fresh
	// ast.IDGen starts); ast.IDGen does not read this option.
	NodeCounterStart = "NodeCounterStart"

	// WorkerCount is the number of concurrent workers package batch uses
	// to compile independent sources; 0 means runtime.NumCPU().
	WorkerCount = "WorkerCount"

	// IndentWidth is the number of spaces package emit uses per
	// indentation level in generated source.
	IndentWidth = "IndentWidth"

	// Header is the one-line generator banner package emit prepends to
	// every emitted file (§6.5).
	Header = "Header"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	NodeCounterStart: 0,
	WorkerCount:      0,
	IndentWidth:      4,
	Header:           "# Code generated by the Aster compiler. DO NOT EDIT.",
}

/*
Config is the actual config which is used
*/
var Config map[string]interface{}

/*
Initialise the config
*/
func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

// Helper functions
// ================

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
