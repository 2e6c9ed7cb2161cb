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
Package batch runs independent compilations concurrently. §5 "Multiple
compilations share nothing and may be run in parallel by the caller" -
the core itself stays single-threaded and synchronous; this package is
that caller.

The worker pool is a fixed-size goroutine group pulling from a shared
channel, the same producer/consumer shape `engine/taskqueue.go` gives
its task queue, but built directly on channels rather than on the
teacher's `engine/pool.ThreadPool`: that package is the teacher's own
internal thread pool implementation and is not part of this retrieval
pack (`engine/processor.go` and `engine/taskqueue.go` both import
"devt.de/krotik/ecal/engine/pool", which resolves nowhere in the
examples available here - see DESIGN.md). `engine/pubsub.EventPump` has
no such dependency and is fully self-contained, so it is reused
directly here to broadcast per-file completion notifications to any
observer (a CLI progress reporter, for instance) without this package
needing to know who, if anyone, is listening.
*/
package batch

import (
	"runtime"
	"sync"

	"github.com/krotik/aster/compiler"
	"github.com/krotik/aster/config"
	"github.com/krotik/aster/diag"
	"github.com/krotik/aster/engine/pubsub"
	"github.com/krotik/aster/util"
)

/*
FileCompiled is the event name posted to Options.Events (if set) once a
single input has finished compiling, successfully or not.
*/
const FileCompiled = "batch.FileCompiled"

/*
Input is one file to compile.
*/
type Input struct {
	Name   string
	Source string
}

/*
Result pairs an Input with the compiler.Result it produced.
*/
type Result struct {
	Input  Input
	Result *compiler.Result
}

/*
Options configures a batch run.
*/
type Options struct {

	// Workers is the number of concurrent compilations; 0 (the
	// config.WorkerCount default) means runtime.NumCPU().
	Workers int

	// Events, if non-nil, receives a FileCompiled notification
	// (eventSource is the *Result) after every input finishes.
	Events *pubsub.EventPump

	// Logger, if non-nil, receives one log line per completed input
	// (§2.1 "Logging"). Defaults to util.NewNullLogger's silence.
	Logger util.Logger
}

/*
Run compiles every input concurrently, bounded by opts.Workers (or
config.Int(config.WorkerCount), or runtime.NumCPU() if both are zero),
and returns results in the same order as inputs - "Ordering within a
stage is deterministic and source-order-preserving" (§5) is a per-stage
guarantee about core compilation, but a batch caller re-establishing
the same input order for its own output is the natural continuation of
that guarantee at the collaborator boundary.
*/
func Run(inputs []Input, opts Options) []Result {
	workers := opts.Workers
	if workers == 0 {
		workers = config.Int(config.WorkerCount)
	}
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}
	if workers < 1 {
		workers = 1
	}

	logger := opts.Logger
	if logger == nil {
		logger = util.NewNullLogger()
	}

	results := make([]Result, len(inputs))

	jobs := make(chan int)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for i := range jobs {
			in := inputs[i]
			res := Result{Input: in, Result: compiler.Compile(in.Name, in.Source)}
			results[i] = res

			if res.Result.Ok() {
				logger.LogInfo("compiled ", in.Name)
			} else {
				logger.LogError("failed to compile ", in.Name, ": ", diag.Summary(res.Result.Diagnostics))
			}

			if opts.Events != nil {
				opts.Events.PostEvent(FileCompiled, &results[i])
			}
		}
	}

	wg.Add(workers)
	for n := 0; n < workers; n++ {
		go worker()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	return results
}
