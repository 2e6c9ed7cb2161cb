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
Command aster is the compiler's command-line entry point, mirroring how
the teacher keeps its own main() a thin wrapper over cli/tool's actual
logic (see cli/ecal.go's history in DESIGN.md).
*/
package main

import "github.com/krotik/aster/cli"

func main() {
	cli.Main()
}
