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
Package resolve performs the two-phase name resolution pass of §4.3: a
top-level declaration pass that pre-populates the module scope with every
function, class and type alias (so forward references between top-level
definitions work), followed by a body walk that opens and closes lexical
scopes exactly where the grammar introduces them and resolves every
Variable/Assign use against its binding.
*/
package resolve

import (
	"sync"

	"github.com/krotik/aster/ast"
)

/*
SymbolKind classifies what a Symbol names; the resolver uses it to
allow assignment only to var-bound names and parameters. The type
inferencer does not read it (it decides generalisation from the Let
node itself, §4.4 "Let bindings").
*/
type SymbolKind int

const (
	SymLet SymbolKind = iota
	SymVar
	SymParam
	SymFunction
	SymBuiltin
	SymTypeAlias
)

/*
Symbol is one resolved binding: a name, the node that introduced it, and
enough classification for the resolver's own mutability check.
*/
type Symbol struct {
	Name string
	Kind SymbolKind
	Decl ast.Stmt // nil for builtins, parameters, for-loop variables and match bindings
}

/*
Scope is one lexical scope in the parent-chain sense the teacher's
scope.varsScope uses for runtime variable scopes: a name used only for
debugging, a parent link, and a flat symbol table. Unlike the teacher's
scope this one exists only during resolution; nothing downstream keeps
a reference to it.
*/
type Scope struct {
	name    string
	parent  *Scope
	symbols map[string]*Symbol
	mu      sync.RWMutex
}

/*
NewScope creates a root scope with no parent.
*/
func NewScope(name string) *Scope {
	return &Scope{name: name, symbols: make(map[string]*Symbol)}
}

/*
NewChild creates a new scope nested inside s.
*/
func (s *Scope) NewChild(name string) *Scope {
	return &Scope{name: name, parent: s, symbols: make(map[string]*Symbol)}
}

/*
Name returns this scope's debug name (e.g. "function foo", "block").
*/
func (s *Scope) Name() string {
	return s.name
}

/*
Parent returns the enclosing scope, or nil for the module scope.
*/
func (s *Scope) Parent() *Scope {
	return s.parent
}

/*
Declare binds name to sym in this scope, returning false if name is
already bound in this exact scope (a duplicate-definition error, §7);
shadowing an outer scope's binding is always allowed (§8.2 "Shadowing").
*/
func (s *Scope) Declare(name string, sym *Symbol) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.symbols[name]; exists {
		return false
	}
	s.symbols[name] = sym
	return true
}

/*
Lookup searches this scope and its ancestors for name, returning the
nearest binding.
*/
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		sym, ok := cur.symbols[name]
		cur.mu.RUnlock()
		if ok {
			return sym, true
		}
	}
	return nil, false
}

/*
LookupLocal searches only this scope, not its ancestors. The resolver's
duplicate-definition checks do not call it; they rely on Declare's
result instead.
*/
func (s *Scope) LookupLocal(name string) (*Symbol, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sym, ok := s.symbols[name]
	return sym, ok
}
