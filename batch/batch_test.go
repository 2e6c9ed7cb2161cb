/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package batch

import (
	"sync/atomic"
	"testing"

	"github.com/krotik/aster/engine/pubsub"
)

func TestRunPreservesInputOrder(t *testing.T) {
	inputs := []Input{
		{Name: "a.aster", Source: `print("a")`},
		{Name: "b.aster", Source: `print("b")`},
		{Name: "c.aster", Source: `print("c")`},
	}

	results := Run(inputs, Options{Workers: 2})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Input.Name != inputs[i].Name {
			t.Errorf("result %d: expected input %s, got %s", i, inputs[i].Name, r.Input.Name)
		}
		if !r.Result.Ok() {
			t.Errorf("result %d: unexpected diagnostics: %v", i, r.Result.Diagnostics)
		}
	}
}

func TestRunReportsDiagnosticsPerFile(t *testing.T) {
	inputs := []Input{
		{Name: "good.aster", Source: `print("ok")`},
		{Name: "bad.aster", Source: `let x = @@@`},
	}

	results := Run(inputs, Options{Workers: 2})

	if !results[0].Result.Ok() {
		t.Errorf("expected good.aster to compile cleanly, got: %v", results[0].Result.Diagnostics)
	}
	if results[1].Result.Ok() {
		t.Errorf("expected bad.aster to fail")
	}
}

func TestRunDefaultsWorkerCountWhenZero(t *testing.T) {
	inputs := []Input{{Name: "only.aster", Source: `print(1)`}}

	results := Run(inputs, Options{})

	if len(results) != 1 || !results[0].Result.Ok() {
		t.Fatalf("expected a single clean compilation, got: %+v", results)
	}
}

func TestRunPostsFileCompiledEvents(t *testing.T) {
	inputs := []Input{
		{Name: "a.aster", Source: `print(1)`},
		{Name: "b.aster", Source: `print(2)`},
	}

	var count int32
	ep := pubsub.NewEventPump()
	ep.AddObserver(FileCompiled, nil, func(event string, source interface{}) {
		atomic.AddInt32(&count, 1)
	})

	Run(inputs, Options{Workers: 2, Events: ep})

	if got := atomic.LoadInt32(&count); got != 2 {
		t.Errorf("expected 2 FileCompiled events, got %d", got)
	}
}
