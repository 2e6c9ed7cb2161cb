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
Package parser turns a lexer.Token vector into a statement list by
recursive descent, using precedence climbing for expressions (package
file expr.go) and a dedicated sub-parser for patterns (pattern.go). It
never aborts on the first error: it records a diagnostic and
resynchronises to the next likely statement boundary (§4.2).
*/
package parser

import (
	"github.com/krotik/aster/ast"
	"github.com/krotik/aster/diag"
	"github.com/krotik/aster/lexer"
)

/*
parser holds the token cursor and the shared NodeID generator for one
parse.
*/
type parser struct {
	toks []lexer.Token
	pos  int
	ids  *ast.IDGen
	bag  *diag.Bag
}

/*
Parse parses a complete token vector (as produced by lexer.Lex) into a
top-level statement list. Diagnostics are accumulated in the returned bag;
per §4.6 a non-empty bag means the statement list must not be trusted by
later stages even though parsing itself always returns *something*.
*/
func Parse(toks []lexer.Token) ([]ast.Stmt, *diag.Bag) {
	p := &parser{toks: toks, ids: &ast.IDGen{}, bag: diag.NewBag()}
	return p.parseProgram(), p.bag
}

// Token cursor helpers
// ====================

func (p *parser) cur() lexer.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF is always last
	}
	return p.toks[p.pos]
}

func (p *parser) at(k lexer.Kind) bool {
	return p.cur().Kind == k
}

func (p *parser) atAny(ks ...lexer.Kind) bool {
	c := p.cur().Kind
	for _, k := range ks {
		if c == k {
			return true
		}
	}
	return false
}

func (p *parser) peekKind(n int) lexer.Kind {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return lexer.EOF
	}
	return p.toks[idx].Kind
}

func (p *parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 || t.Kind != lexer.EOF {
		p.pos++
	}
	return t
}

/*
expect consumes the current token if it has kind k, otherwise records a
missing-token diagnostic and returns the token unconsumed so the caller
can decide how to proceed.
*/
func (p *parser) expect(k lexer.Kind) lexer.Token {
	t := p.cur()
	if t.Kind == k {
		return p.advance()
	}
	p.errorf(diag.MissingToken, "expected %s, found %s", k, p.describeCur())
	return t
}

func (p *parser) describeCur() string {
	t := p.cur()
	if t.Kind == lexer.EOF {
		return "end of input"
	}
	if t.Lexeme != "" {
		return t.Kind.String() + " '" + t.Lexeme + "'"
	}
	return t.Kind.String()
}

func (p *parser) errorf(kind diag.Kind, format string, args ...interface{}) {
	p.bag.Add(diag.New(kind, p.cur().Span, format, args...))
}

/*
skipNewlines consumes any run of NEWLINE tokens, used between top-level
statements and anywhere a blank line is harmless.
*/
func (p *parser) skipNewlines() {
	for p.at(lexer.NEWLINE) {
		p.advance()
	}
}

// resyncKinds are the start of any statement, used to recover after a
// parse error (§4.2 "Error recovery").
var resyncKinds = []lexer.Kind{
	lexer.KwFn, lexer.KwLet, lexer.KwVar, lexer.KwIf, lexer.KwWhile,
	lexer.KwFor, lexer.KwClass, lexer.KwTrait, lexer.KwType, lexer.KwReturn,
	lexer.KwMatch, lexer.KwImport, lexer.KwUse,
}

func (p *parser) resync() {
	for !p.at(lexer.EOF) {
		if p.atAny(resyncKinds...) {
			return
		}
		if p.at(lexer.NEWLINE) || p.at(lexer.Semicolon) {
			p.advance()
			return
		}
		p.advance()
	}
}

// Program / statement dispatch
// =============================

func (p *parser) parseProgram() []ast.Stmt {
	var stmts []ast.Stmt

	p.skipNewlines()
	for !p.at(lexer.EOF) {
		before := p.pos
		stmts = append(stmts, p.parseStatement())
		p.skipNewlines()

		if p.pos == before {
			// Safety valve: parseStatement must always make progress.
			p.advance()
		}
	}

	return stmts
}

func (p *parser) parseStatement() ast.Stmt {
	switch p.cur().Kind {
	case lexer.KwLet, lexer.KwVar:
		return p.parseLet()
	case lexer.KwFn:
		return p.parseFunction()
	case lexer.KwType:
		return p.parseTypeAlias()
	case lexer.KwIf:
		return p.parseIfStmt()
	case lexer.KwWhile:
		return p.parseWhile()
	case lexer.KwForever:
		return p.parseForever()
	case lexer.KwFor:
		return p.parseFor()
	case lexer.KwMatch:
		return p.parseMatchStmt()
	case lexer.KwReturn:
		return p.parseReturn()
	case lexer.KwBreak:
		t := p.advance()
		return ast.NewBreak(p.ids, t.Span)
	case lexer.KwContinue:
		t := p.advance()
		return ast.NewContinue(p.ids, t.Span)
	case lexer.KwImport, lexer.KwUse:
		return p.parseImport()
	case lexer.KwClass:
		return p.parseClass()
	case lexer.KwElif, lexer.KwTrait, lexer.KwExport, lexer.KwAsync,
		lexer.KwAwait, lexer.KwParallel, lexer.KwSync, lexer.KwExtends,
		lexer.KwImplements, lexer.KwWhere, lexer.KwRaise, lexer.KwTry,
		lexer.KwCatch, lexer.KwFinally, lexer.KwCase, lexer.KwWhen,
		lexer.KwSelf:
		return p.parseUnsupported()
	default:
		return p.parseExprOrAssignStmt()
	}
}

/*
parseUnsupported handles a reserved-but-unimplemented keyword: it is
consumed (so resynchronisation has somewhere sane to land) and reported
as unsupported-construct, per §6.2 and the elif Open Question of §9.
*/
func (p *parser) parseUnsupported() ast.Stmt {
	t := p.advance()
	p.bag.Add(diag.New(diag.UnsupportedConstruct, t.Span,
		"%s is reserved but not implemented by this compiler", t.Kind))
	p.resync()
	return ast.NewExprStmt(p.ids, t.Span, ast.NewNullLiteral(p.ids, t.Span))
}

func (p *parser) parseLet() ast.Stmt {
	start := p.advance() // let/var
	mutable := start.Kind == lexer.KwVar

	target := p.parseBindingPattern()

	var typeAnn *ast.TypeAnn
	if p.at(lexer.Colon) {
		p.advance()
		typeAnn = p.parseTypeAnn()
	}

	p.expect(lexer.Assign)
	value := p.parseExpr(0)

	return ast.NewLet(p.ids, start.Span.Merge(value.Span()), mutable, target, typeAnn, value)
}

/*
parseBindingPattern parses a let/var left-hand side: a plain identifier,
or a tuple/list destructuring pattern (§4.2).
*/
func (p *parser) parseBindingPattern() ast.Pattern {
	if p.at(lexer.LParen) || p.at(lexer.LBracket) {
		return p.parsePattern()
	}
	t := p.expect(lexer.IDENT)
	return ast.NewVariablePattern(p.ids, t.Span, t.Lexeme)
}

func (p *parser) parseFunction() ast.Stmt {
	start := p.advance() // fn
	name := p.expect(lexer.IDENT)

	params := p.parseParamList()

	var ret *ast.TypeAnn
	if p.at(lexer.Arrow) {
		p.advance()
		ret = p.parseTypeAnn()
	}

	body := p.parseDoBlock()

	return ast.NewFunction(p.ids, start.Span, name.Lexeme, params, ret, body)
}

func (p *parser) parseParamList() []ast.Param {
	p.expect(lexer.LParen)

	var params []ast.Param
	for !p.at(lexer.RParen) && !p.at(lexer.EOF) {
		nt := p.expect(lexer.IDENT)
		param := ast.Param{Name: nt.Lexeme, NodeSpan: nt.Span}
		if p.at(lexer.Colon) {
			p.advance()
			param.TypeAnn = p.parseTypeAnn()
		}
		params = append(params, param)

		if p.at(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}

	p.expect(lexer.RParen)
	return params
}

func (p *parser) parseTypeAnn() *ast.TypeAnn {
	t := p.expect(lexer.IDENT)
	ann := &ast.TypeAnn{Name: t.Lexeme, NodeSpan: t.Span}

	if p.at(lexer.LParen) {
		p.advance()
		for !p.at(lexer.RParen) && !p.at(lexer.EOF) {
			ann.Args = append(ann.Args, p.parseTypeAnn())
			if p.at(lexer.Comma) {
				p.advance()
			} else {
				break
			}
		}
		p.expect(lexer.RParen)
	}

	return ann
}

func (p *parser) parseTypeAlias() ast.Stmt {
	start := p.advance() // type
	name := p.expect(lexer.IDENT)
	p.expect(lexer.Assign)
	ty := p.parseTypeAnn()
	return ast.NewTypeAlias(p.ids, start.Span, name.Lexeme, ty)
}

/*
parseIfStmt disambiguates the expression and statement/block forms of if
by the keyword following the condition: 'then' means an expression (so
this whole if is really an ExprStmt wrapping an IfExpr), 'do' means a
statement-form If (§4.2 "Control-flow forms").
*/
func (p *parser) parseIfStmt() ast.Stmt {
	start := p.cur().Span
	switch n := p.parseIfConstruct().(type) {
	case ast.Stmt:
		return n
	case ast.Expr:
		return ast.NewExprStmt(p.ids, start, n)
	default:
		panic("parseIfConstruct returned neither Stmt nor Expr")
	}
}

/*
parseIfConstruct parses the `if` keyword onward and returns either an
ast.Stmt (*ast.IfStmt, for the do-block form) or an ast.Expr (*ast.IfExpr,
for the then/else form) so both parseIfStmt and the expression prefix
parser (expr.go) can share it.
*/
func (p *parser) parseIfConstruct() interface{} {
	start := p.advance() // if
	cond := p.parseExpr(0)

	if p.at(lexer.KwDo) {
		thenBody := p.parseDoBlock()
		var elseBody []ast.Stmt
		if p.at(lexer.KwElse) {
			p.advance()
			elseBody = p.parseDoBlock()
		}
		return ast.NewIfStmt(p.ids, start.Span, cond, thenBody, elseBody)
	}

	p.expect(lexer.KwThen)
	thenExpr := p.parseExpr(0)

	var elseExpr ast.Expr
	if p.at(lexer.KwElse) {
		p.advance()
		elseExpr = p.parseExpr(0)
	}
	p.expect(lexer.KwEnd)

	return ast.NewIfExpr(p.ids, start.Span, cond, thenExpr, elseExpr)
}

func (p *parser) parseWhile() ast.Stmt {
	start := p.advance() // while
	cond := p.parseExpr(0)
	p.expect(lexer.KwDo)
	body := p.parseDoBlockBody()
	return ast.NewWhile(p.ids, start.Span, cond, body)
}

/*
parseForever parses the "forever do ... end" sugar for an infinite loop,
a supplement to the spec's explicit construct list carried over from
original_source/ (see DESIGN.md): it desugars straight to While(true).
*/
func (p *parser) parseForever() ast.Stmt {
	start := p.advance() // forever
	p.expect(lexer.KwDo)
	body := p.parseDoBlockBody()
	return ast.NewWhile(p.ids, start.Span, ast.NewBoolLiteral(p.ids, start.Span, true), body)
}

func (p *parser) parseFor() ast.Stmt {
	start := p.advance() // for
	name := p.expect(lexer.IDENT)
	p.expect(lexer.KwIn)
	iter := p.parseExpr(0)
	p.expect(lexer.KwDo)
	body := p.parseDoBlockBody()
	return ast.NewFor(p.ids, start.Span, name.Lexeme, iter, body)
}

/*
parseDoBlock consumes a leading 'do' and then the block body. Used by
constructs (fn, if/else) whose 'do' has not already been consumed by the
caller.
*/
func (p *parser) parseDoBlock() []ast.Stmt {
	p.expect(lexer.KwDo)
	return p.parseDoBlockBody()
}

/*
parseDoBlockBody parses the body of a do-block after 'do' has already
been consumed, in either of its two equivalent forms (§4.2 "Block
syntax"): a NEWLINE/INDENT/DEDENT-delimited statement list, or a single
inline statement sequence on the same line. Both are terminated by a
matching 'end', which this function also consumes.
*/
func (p *parser) parseDoBlockBody() []ast.Stmt {
	var stmts []ast.Stmt

	if p.at(lexer.NEWLINE) {
		p.advance()
		p.expect(lexer.INDENT)

		for !p.at(lexer.DEDENT) && !p.at(lexer.EOF) {
			before := p.pos
			stmts = append(stmts, p.parseStatement())
			p.skipNewlines()
			if p.pos == before {
				p.advance()
			}
		}
		p.expect(lexer.DEDENT)
	} else {
		for !p.at(lexer.KwEnd) && !p.at(lexer.EOF) {
			before := p.pos
			stmts = append(stmts, p.parseStatement())
			for p.at(lexer.Semicolon) || p.at(lexer.NEWLINE) {
				p.advance()
			}
			if p.pos == before {
				p.advance()
			}
		}
	}

	p.expect(lexer.KwEnd)
	return stmts
}

func (p *parser) parseMatchStmt() ast.Stmt {
	start := p.advance() // match
	scrutinee := p.parseExpr(0)
	arms := p.parseMatchArms()
	return ast.NewMatchStmt(p.ids, start.Span, scrutinee, arms)
}

func (p *parser) parseMatchArms() []*ast.MatchArm {
	if p.at(lexer.NEWLINE) {
		p.advance()
	}
	if p.at(lexer.INDENT) {
		p.advance()
	}

	var arms []*ast.MatchArm
	for !p.at(lexer.KwEnd) && !p.at(lexer.DEDENT) && !p.at(lexer.EOF) {
		pat := p.parsePattern()

		var guard ast.Expr
		if p.at(lexer.KwIf) {
			p.advance()
			guard = p.parseExpr(0)
		}

		p.expect(lexer.FatArrow)
		body := p.parseExpr(0)

		arms = append(arms, &ast.MatchArm{Pattern: pat, Guard: guard, Body: body})

		for p.at(lexer.NEWLINE) || p.at(lexer.Comma) {
			p.advance()
		}
	}

	if p.at(lexer.DEDENT) {
		p.advance()
	}
	p.expect(lexer.KwEnd)

	if len(arms) == 0 {
		p.errorf(diag.InvalidPattern, "match must have at least one arm")
	}

	return arms
}

func (p *parser) parseReturn() ast.Stmt {
	start := p.advance() // return
	var value ast.Expr
	if !p.atAny(lexer.NEWLINE, lexer.Semicolon, lexer.EOF, lexer.DEDENT, lexer.KwEnd) {
		value = p.parseExpr(0)
	}
	return ast.NewReturn(p.ids, start.Span, value)
}

/*
parseImport parses both the plain "import path" form and the selective
"use {a, b} from path" form (§6.2). The lexer has no 'as' keyword, so
aliasing is not surface syntax; Import.Alias exists for callers that
synthesise an Import node directly (e.g. a future REPL) and is always
empty here.
*/
func (p *parser) parseImport() ast.Stmt {
	start := p.advance() // import/use
	var names []string
	var path string

	if p.at(lexer.LBrace) {
		p.advance()
		for !p.at(lexer.RBrace) && !p.at(lexer.EOF) {
			n := p.expect(lexer.IDENT)
			names = append(names, n.Lexeme)
			if p.at(lexer.Comma) {
				p.advance()
			} else {
				break
			}
		}
		p.expect(lexer.RBrace)
		p.expect(lexer.KwFrom)
	}

	if p.at(lexer.STRING) {
		path = p.advance().Lexeme
	} else {
		pathTok := p.expect(lexer.IDENT)
		path = pathTok.Lexeme
		for p.at(lexer.Dot) {
			p.advance()
			seg := p.expect(lexer.IDENT)
			path += "." + seg.Lexeme
		}
	}

	return ast.NewImport(p.ids, start.Span, path, "", names)
}

func (p *parser) parseClass() ast.Stmt {
	start := p.advance() // class
	name := p.expect(lexer.IDENT)

	var extends string
	var implements []string

	if p.at(lexer.KwExtends) {
		p.advance()
		t := p.expect(lexer.IDENT)
		extends = t.Lexeme
	}
	if p.at(lexer.KwImplements) {
		p.advance()
		for {
			t := p.expect(lexer.IDENT)
			implements = append(implements, t.Lexeme)
			if p.at(lexer.Comma) {
				p.advance()
				continue
			}
			break
		}
	}

	p.expect(lexer.NEWLINE)
	p.expect(lexer.INDENT)

	var fields []ast.Field
	var methods []*ast.Function

	for !p.at(lexer.DEDENT) && !p.at(lexer.EOF) {
		if p.at(lexer.KwFn) {
			methods = append(methods, p.parseFunction().(*ast.Function))
		} else {
			nt := p.expect(lexer.IDENT)
			field := ast.Field{Name: nt.Lexeme}
			if p.at(lexer.Colon) {
				p.advance()
				field.TypeAnn = p.parseTypeAnn()
			}
			fields = append(fields, field)
		}
		p.skipNewlines()
	}

	p.expect(lexer.DEDENT)
	if p.at(lexer.KwEnd) {
		p.advance()
	}

	return ast.NewClass(p.ids, start.Span, name.Lexeme, extends, implements, fields, methods)
}

/*
parseExprOrAssignStmt handles the common "falls through to an expression"
statement dispatch case, additionally recognising `name = value` as
mutation of a var-bound name (§9 Open Question: assignment is a resolver
concern, not new expression-level syntax).
*/
func (p *parser) parseExprOrAssignStmt() ast.Stmt {
	start := p.cur()

	if p.at(lexer.IDENT) && p.peekKind(1) == lexer.Assign {
		name := p.advance()
		p.advance() // '='
		value := p.parseExpr(0)
		return ast.NewAssign(p.ids, start.Span.Merge(value.Span()), name.Lexeme, value)
	}

	expr := p.parseExpr(0)
	return ast.NewExprStmt(p.ids, start.Span.Merge(expr.Span()), expr)
}
