/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"strconv"

	"github.com/krotik/aster/ast"
	"github.com/krotik/aster/diag"
	"github.com/krotik/aster/lexer"
)

/*
This file implements expression parsing by precedence climbing (§4.2
"Expression parsing" / §6.4 "Operator precedence"). Binding powers run
from loose to tight, mirroring §6.4's levels 14 down to 2 (level 1,
postfix call/index, is unconditional and handled by parsePostfix; level
15, assignment, is handled at statement level - see parseExprOrAssignStmt
and DESIGN.md). parseExpr(minPrec) only consumes an infix operator whose
power is >= minPrec, recursing with power+1 for left-associative
operators and power for right-associative ones. Note that §6.4 ranks
unary (level 2) tighter-binding than `**` (level 3): -2 ** 2 parses as
(-2) ** 2, not the negated-exponent reading some languages use.
*/

const (
	precPipeline = 10 + iota*10 // level 14
	precRange                   // level 13 (non-assoc)
	precOr                      // level 12
	precAnd                     // level 11
	precCompare                 // level 10
	precBitOr                   // level 9
	precBitXor                  // level 8
	precBitAnd                  // level 7
	precShift                   // level 6
	precAdditive                // level 5
	precMultiplicative          // level 4
	precExponent                // level 3
	precUnary                   // level 2
)

func (p *parser) parseExpr(minPrec int) ast.Expr {
	left := p.parseUnary()

	for {
		kind := p.cur().Kind

		if kind == lexer.PipeGt {
			if precPipeline < minPrec {
				break
			}
			p.advance()
			right := p.parseExpr(precPipeline + 1)
			left = p.foldPipeline(left, right)
			continue
		}

		if kind == lexer.DotDot {
			if precRange < minPrec {
				break
			}
			p.advance()
			right := p.parseExpr(precRange + 1)
			left = ast.NewRangeExpr(p.ids, left.Span().Merge(right.Span()), left, right)
			continue
		}

		binOp, isBin := binOps[kind]
		cmpOp, isCmp := cmpOps[kind]
		logicOp, isLogic := logicOps[kind]

		var prec int
		switch {
		case isBin:
			prec = binPrec[kind]
		case isCmp:
			prec = precCompare
		case isLogic:
			if kind == lexer.KwAnd {
				prec = precAnd
			} else {
				prec = precOr
			}
		default:
			return left
		}

		if prec < minPrec {
			break
		}

		rightAssoc := kind == lexer.StarStar
		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}

		p.advance()
		right := p.parseExpr(nextMin)
		sp := left.Span().Merge(right.Span())

		switch {
		case isBin:
			left = ast.NewBinary(p.ids, sp, binOp, left, right)
		case isCmp:
			left = ast.NewComparison(p.ids, sp, cmpOp, left, right)
		case isLogic:
			left = ast.NewLogical(p.ids, sp, logicOp, left, right)
		}
	}

	return left
}

func (p *parser) foldPipeline(left, right ast.Expr) ast.Expr {
	if pipe, ok := left.(*ast.Pipeline); ok {
		pipe.Stages = append(pipe.Stages, right)
		return pipe
	}
	return ast.NewPipeline(p.ids, left.Span().Merge(right.Span()), []ast.Expr{left, right})
}

var binOps = map[lexer.Kind]ast.BinOp{
	lexer.Plus:     ast.Add,
	lexer.Minus:    ast.Sub,
	lexer.Star:     ast.Mul,
	lexer.Slash:    ast.Div,
	lexer.Percent:  ast.Mod,
	lexer.StarStar: ast.Pow,
	lexer.Amp:      ast.BitAnd,
	lexer.Pipe:     ast.BitOr,
	lexer.Caret:    ast.BitXor,
	lexer.Shl:      ast.Shl,
	lexer.Shr:      ast.Shr,
}

var binPrec = map[lexer.Kind]int{
	lexer.Plus:     precAdditive,
	lexer.Minus:    precAdditive,
	lexer.Star:     precMultiplicative,
	lexer.Slash:    precMultiplicative,
	lexer.Percent:  precMultiplicative,
	lexer.StarStar: precExponent,
	lexer.Amp:      precBitAnd,
	lexer.Pipe:     precBitOr,
	lexer.Caret:    precBitXor,
	lexer.Shl:      precShift,
	lexer.Shr:      precShift,
}

var cmpOps = map[lexer.Kind]ast.CmpOp{
	lexer.EqEq:  ast.Eq,
	lexer.NotEq: ast.Ne,
	lexer.Lt:    ast.Lt,
	lexer.LtEq:  ast.Le,
	lexer.Gt:    ast.Gt,
	lexer.GtEq:  ast.Ge,
}

var logicOps = map[lexer.Kind]ast.LogicOp{
	lexer.KwAnd: ast.And,
	lexer.KwOr:  ast.Or,
}

/*
parseUnary handles the prefix operators -, not, ! and otherwise falls
through to postfix/primary parsing. The operand is parsed at precUnary,
so a following ** (precExponent, lower) is left to the enclosing
parseExpr loop: -2 ** 2 parses as (-2) ** 2.
*/
func (p *parser) parseUnary() ast.Expr {
	t := p.cur()

	switch t.Kind {
	case lexer.Minus:
		p.advance()
		operand := p.parseExpr(precUnary)
		return ast.NewUnary(p.ids, t.Span.Merge(operand.Span()), ast.Neg, operand)
	case lexer.KwNot, lexer.Bang:
		p.advance()
		operand := p.parseExpr(precUnary)
		return ast.NewUnary(p.ids, t.Span.Merge(operand.Span()), ast.Not, operand)
	case lexer.Tilde:
		p.advance()
		operand := p.parseExpr(precUnary)
		return ast.NewUnary(p.ids, t.Span.Merge(operand.Span()), ast.BitNot, operand)
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}

/*
parsePostfix wraps a primary expression in any immediately following
call or index operators, left to right: f(x)[0](y) parses as
Call(Index(Call(f, x), 0), y).
*/
func (p *parser) parsePostfix(expr ast.Expr) ast.Expr {
	for {
		switch p.cur().Kind {
		case lexer.LParen:
			p.advance()
			var args []ast.Expr
			for !p.at(lexer.RParen) && !p.at(lexer.EOF) {
				args = append(args, p.parseExpr(0))
				if p.at(lexer.Comma) {
					p.advance()
				} else {
					break
				}
			}
			end := p.expect(lexer.RParen)
			expr = ast.NewCall(p.ids, expr.Span().Merge(end.Span), expr, args)
		case lexer.LBracket:
			p.advance()
			idx := p.parseExpr(0)
			end := p.expect(lexer.RBracket)
			expr = ast.NewIndex(p.ids, expr.Span().Merge(end.Span), expr, idx)
		default:
			return expr
		}
	}
}

func (p *parser) parsePrimary() ast.Expr {
	t := p.cur()

	switch t.Kind {
	case lexer.INT:
		p.advance()
		v, _ := strconv.ParseInt(t.Lexeme, 10, 64)
		return ast.NewIntLiteral(p.ids, t.Span, v)
	case lexer.FLOAT:
		p.advance()
		v, _ := strconv.ParseFloat(t.Lexeme, 64)
		return ast.NewFloatLiteral(p.ids, t.Span, v)
	case lexer.STRING:
		p.advance()
		return ast.NewStringLiteral(p.ids, t.Span, t.Lexeme)
	case lexer.CHAR:
		p.advance()
		return ast.NewCharLiteral(p.ids, t.Span, t.Lexeme)
	case lexer.BOOL:
		p.advance()
		return ast.NewBoolLiteral(p.ids, t.Span, t.Lexeme == "true")
	case lexer.KwNull:
		p.advance()
		return ast.NewNullLiteral(p.ids, t.Span)
	case lexer.KwSelf:
		p.advance()
		return ast.NewVariable(p.ids, t.Span, "self")
	case lexer.IDENT:
		p.advance()
		return ast.NewVariable(p.ids, t.Span, t.Lexeme)
	case lexer.LParen:
		return p.parseParenExpr()
	case lexer.LBracket:
		return p.parseListExpr()
	case lexer.LBrace:
		return p.parseMapExpr()
	case lexer.Pipe:
		return p.parseLambda()
	case lexer.KwIf:
		switch n := p.parseIfConstruct().(type) {
		case ast.Expr:
			return n
		default:
			p.errorf(diag.UnexpectedToken, "a block-form if cannot be used as an expression")
			return ast.NewNullLiteral(p.ids, t.Span)
		}
	case lexer.KwMatch:
		return p.parseMatchExpr()
	case lexer.KwDo:
		return p.parseBlockExpr()
	default:
		p.errorf(diag.UnexpectedToken, "expected an expression, found %s", p.describeCur())
		p.advance()
		return ast.NewNullLiteral(p.ids, t.Span)
	}
}

func (p *parser) parseParenExpr() ast.Expr {
	p.advance() // '('
	inner := p.parseExpr(0)
	p.expect(lexer.RParen)
	return inner
}

func (p *parser) parseListExpr() ast.Expr {
	start := p.advance() // '['
	var elems []ast.Expr
	for !p.at(lexer.RBracket) && !p.at(lexer.EOF) {
		elems = append(elems, p.parseExpr(0))
		if p.at(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBracket)
	return ast.NewList(p.ids, start.Span.Merge(end.Span), elems)
}

func (p *parser) parseMapExpr() ast.Expr {
	start := p.advance() // '{'
	var entries []ast.MapEntry
	for !p.at(lexer.RBrace) && !p.at(lexer.EOF) {
		keyTok := p.expect(lexer.STRING)
		key := ast.NewStringLiteral(p.ids, keyTok.Span, keyTok.Lexeme)
		p.expect(lexer.Colon)
		value := p.parseExpr(0)
		entries = append(entries, ast.MapEntry{Key: key, Value: value})
		if p.at(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBrace)
	return ast.NewMap(p.ids, start.Span.Merge(end.Span), entries)
}

/*
parseLambda parses |p1, p2, ...| body. Bare | only reaches here in
primary/prefix position; in infix position it is always the bitwise-or
operator, so the two uses never collide (§4.1 "Operators").
*/
func (p *parser) parseLambda() ast.Expr {
	start := p.advance() // '|'

	var params []ast.Param
	for !p.at(lexer.Pipe) && !p.at(lexer.EOF) {
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
	p.expect(lexer.Pipe)

	body := p.parseExpr(0)
	return ast.NewLambda(p.ids, start.Span.Merge(body.Span()), params, body)
}

func (p *parser) parseMatchExpr() ast.Expr {
	start := p.advance() // match
	scrutinee := p.parseExpr(0)
	arms := p.parseMatchArms()
	return ast.NewMatchExpr(p.ids, start.Span, scrutinee, arms)
}

/*
parseBlockExpr parses a do-block used in expression position: the same
syntax as a statement block, except its final statement, if it is a bare
expression statement, becomes the Block's Tail instead of a Stmt (§3.3
"Block" invariant - no tail expression means Unit).
*/
func (p *parser) parseBlockExpr() ast.Expr {
	start := p.advance() // do
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
	end := p.expect(lexer.KwEnd)

	var tail ast.Expr
	if n := len(stmts); n > 0 {
		if last, ok := stmts[n-1].(*ast.ExprStmt); ok {
			tail = last.X
			stmts = stmts[:n-1]
		}
	}

	return ast.NewBlock(p.ids, start.Span.Merge(end.Span), stmts, tail)
}
