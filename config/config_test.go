/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"testing"
)

func TestConfig(t *testing.T) {

	if res := Str(IndentWidth); res != "4" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(IndentWidth); res != 4 {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Str(Header); res == "" {
		t.Error("Unexpected empty header")
		return
	}

	if res := Int(WorkerCount); res != 0 {
		t.Error("Unexpected result:", res)
		return
	}
}
