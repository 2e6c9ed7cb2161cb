/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

import "github.com/krotik/aster/source"

/*
TypeAnn is a source-level type annotation as written by the programmer
(e.g. "Int", "List(Int)", "Function"). It is surface syntax only - the
type inferencer (package types) turns it into a proper Type, instantiated
fresh at every use (§4.4 "Function definition").
*/
type TypeAnn struct {
	NodeSpan source.Span
	Name     string
	Args     []*TypeAnn
}

/*
Span returns the annotation's source span.
*/
func (t *TypeAnn) Span() source.Span { return t.NodeSpan }

/*
Param is a function or lambda parameter: a name plus an optional type
annotation.
*/
type Param struct {
	NodeSpan source.Span
	Name     string
	TypeAnn  *TypeAnn
}

func (p Param) Span() source.Span { return p.NodeSpan }
