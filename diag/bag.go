/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package diag

import (
	"devt.de/krotik/common/sortutil"
)

/*
Bag accumulates Diagnostics for a single stage. A stage's output is
invalid iff its Bag is non-empty after the stage finishes (§4.6); a Bag is
never used to abort processing early - callers keep feeding it and consult
Ok() only once the stage is done.
*/
type Bag struct {
	items []*Diagnostic
}

/*
NewBag creates an empty diagnostic bag.
*/
func NewBag() *Bag {
	return &Bag{}
}

/*
Add records a diagnostic.
*/
func (b *Bag) Add(d *Diagnostic) {
	b.items = append(b.items, d)
}

/*
Ok reports whether no diagnostic has been recorded.
*/
func (b *Bag) Ok() bool {
	return len(b.items) == 0
}

/*
Len returns the number of recorded diagnostics.
*/
func (b *Bag) Len() int {
	return len(b.items)
}

/*
Items returns the recorded diagnostics ordered by span start so that
diagnostics raised out of source order (e.g. a resolver visiting a
closure before a later top-level statement) are reported the way a reader
would expect. Ordering is done with the same PriorityQueue the teacher
repo uses to order queued tasks by priority - here the "priority" is
simply the byte offset, since the queue pops the lowest priority number
first and diagnostics must come out in ascending source order.
*/
func (b *Bag) Items() []*Diagnostic {
	if len(b.items) == 0 {
		return nil
	}

	q := sortutil.NewPriorityQueue()
	for _, d := range b.items {
		q.Push(d, d.Span.Start.Byte)
	}

	ret := make([]*Diagnostic, 0, len(b.items))
	for q.Size() > 0 {
		ret = append(ret, q.Pop().(*Diagnostic))
	}

	return ret
}

/*
Merge appends every diagnostic from other into this bag.
*/
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}
