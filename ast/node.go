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
Package ast defines the three parallel sum types of the parser's output -
Stmt, Expr and Pattern (§3.3) - as Go interfaces over tagged node structs,
each carrying a stable NodeID and a Span. Unlike the teacher's single
tagged ASTNode tree (one Go type covering every construct, disambiguated
at runtime by a string tag), spec.md requires three genuinely distinct
static types, so this package follows the idiomatic Go sum-type encoding
used across the retrieval pack's other parser implementations instead:
one interface per sum type with an unexported marker method, and one
struct per variant.
*/
package ast

import "github.com/krotik/aster/source"

/*
NodeID is an identifier, unique within one parse, assigned to every Stmt,
Expr and Pattern node in the order the parser constructs them (§3.3).
*/
type NodeID int64

/*
IDGen hands out monotonically increasing NodeIDs for a single parse. A
fresh IDGen must be used per compilation; it is not safe for concurrent
use by more than one parser (§5 - compilations share nothing).
*/
type IDGen struct {
	next NodeID
}

/*
Next returns the next NodeID.
*/
func (g *IDGen) Next() NodeID {
	id := g.next
	g.next++
	return id
}

/*
info is embedded by every concrete node and carries the two fields every
node needs regardless of which sum type it belongs to.
*/
type info struct {
	id   NodeID
	span source.Span
}

/*
ID returns this node's stable identifier.
*/
func (n info) ID() NodeID { return n.id }

/*
Span returns this node's source span.
*/
func (n info) Span() source.Span { return n.span }

func newInfo(g *IDGen, span source.Span) info {
	return info{id: g.Next(), span: span}
}

/*
Stmt is any statement node (§3.3).
*/
type Stmt interface {
	ID() NodeID
	Span() source.Span
	stmtNode()
}

/*
Expr is any expression node (§3.3).
*/
type Expr interface {
	ID() NodeID
	Span() source.Span
	exprNode()
}

/*
Pattern is any pattern node (§3.3).
*/
type Pattern interface {
	ID() NodeID
	Span() source.Span
	patternNode()
}
