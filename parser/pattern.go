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
parsePattern parses one pattern, including the low-binding 'or' and
'..' range forms (§4.2 "Pattern parsing"). It is the entry point used by
let/var binding targets and match arms; function parameters are parsed
separately as plain names.
*/
func (p *parser) parsePattern() ast.Pattern {
	first := p.parsePrimaryPattern()

	if p.at(lexer.DotDot) {
		return p.parseRangePatternTail(first)
	}

	if !p.at(lexer.Pipe) {
		return first
	}

	alts := []ast.Pattern{first}
	for p.at(lexer.Pipe) {
		p.advance()
		alts = append(alts, p.parsePrimaryPattern())
	}
	return ast.NewOrPattern(p.ids, first.Span(), alts)
}

func (p *parser) parseRangePatternTail(low ast.Pattern) ast.Pattern {
	lowLit, ok := low.(*ast.LiteralPattern)
	if !ok {
		p.errorf(diag.InvalidPattern, "range pattern bounds must be literals")
		return low
	}

	p.advance() // '..'
	high := p.parsePrimaryPattern()
	highLit, ok := high.(*ast.LiteralPattern)
	if !ok {
		p.errorf(diag.InvalidPattern, "range pattern bounds must be literals")
		return low
	}

	return ast.NewRangePattern(p.ids, lowLit.Span().Merge(highLit.Span()), lowLit, highLit)
}

/*
parsePrimaryPattern parses one pattern without 'or'/range handling: a
literal, a wildcard, a variable (with optional cons-tail), or a
parenthesised tuple / bracketed list / braced struct pattern.
*/
func (p *parser) parsePrimaryPattern() ast.Pattern {
	t := p.cur()

	switch t.Kind {
	case lexer.INT:
		p.advance()
		v, _ := strconv.ParseInt(t.Lexeme, 10, 64)
		return ast.NewIntLiteralPattern(p.ids, t.Span, v)
	case lexer.FLOAT:
		p.advance()
		v, _ := strconv.ParseFloat(t.Lexeme, 64)
		return ast.NewFloatLiteralPattern(p.ids, t.Span, v)
	case lexer.STRING:
		p.advance()
		return ast.NewStringLiteralPattern(p.ids, t.Span, t.Lexeme)
	case lexer.CHAR:
		p.advance()
		return ast.NewCharLiteralPattern(p.ids, t.Span, t.Lexeme)
	case lexer.BOOL:
		p.advance()
		return ast.NewBoolLiteralPattern(p.ids, t.Span, t.Lexeme == "true")
	case lexer.KwNull:
		p.advance()
		return ast.NewNullLiteralPattern(p.ids, t.Span)
	case lexer.Minus:
		// a negative numeric literal pattern, e.g. "-1 => ..."
		p.advance()
		return p.parseNegativeLiteralPattern(t)
	case lexer.IDENT:
		if t.Lexeme == "_" {
			p.advance()
			return ast.NewWildcardPattern(p.ids, t.Span)
		}
		p.advance()
		name := ast.NewVariablePattern(p.ids, t.Span, t.Lexeme)
		if p.at(lexer.PipeGt) {
			// head |> tail cons pattern (mirrors the pipeline operator's
			// glyph since both mean "split the front off a sequence").
			p.advance()
			tail := p.parsePattern()
			return ast.NewListConsPattern(p.ids, t.Span.Merge(tail.Span()), name, tail)
		}
		return name
	case lexer.LParen:
		return p.parseTuplePattern()
	case lexer.LBracket:
		return p.parseListPattern()
	case lexer.LBrace:
		return p.parseStructPattern()
	default:
		p.errorf(diag.InvalidPattern, "expected a pattern, found %s", p.describeCur())
		p.advance()
		return ast.NewWildcardPattern(p.ids, t.Span)
	}
}

func (p *parser) parseNegativeLiteralPattern(minus lexer.Token) ast.Pattern {
	t := p.cur()
	switch t.Kind {
	case lexer.INT:
		p.advance()
		v, _ := strconv.ParseInt(t.Lexeme, 10, 64)
		return ast.NewIntLiteralPattern(p.ids, minus.Span.Merge(t.Span), -v)
	case lexer.FLOAT:
		p.advance()
		v, _ := strconv.ParseFloat(t.Lexeme, 64)
		return ast.NewFloatLiteralPattern(p.ids, minus.Span.Merge(t.Span), -v)
	default:
		p.errorf(diag.InvalidPattern, "expected a number after '-' in a pattern")
		return ast.NewWildcardPattern(p.ids, minus.Span)
	}
}

func (p *parser) parseTuplePattern() ast.Pattern {
	start := p.advance() // '('
	var elems []ast.Pattern
	for !p.at(lexer.RParen) && !p.at(lexer.EOF) {
		elems = append(elems, p.parsePattern())
		if p.at(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RParen)
	return ast.NewTuplePattern(p.ids, start.Span.Merge(end.Span), elems)
}

func (p *parser) parseListPattern() ast.Pattern {
	start := p.advance() // '['
	var elems []ast.Pattern
	for !p.at(lexer.RBracket) && !p.at(lexer.EOF) {
		elems = append(elems, p.parsePattern())
		if p.at(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBracket)
	return ast.NewListPattern(p.ids, start.Span.Merge(end.Span), elems)
}

func (p *parser) parseStructPattern() ast.Pattern {
	start := p.advance() // '{'
	var fields []ast.StructField
	for !p.at(lexer.RBrace) && !p.at(lexer.EOF) {
		name := p.expect(lexer.IDENT)
		fp := ast.Pattern(ast.NewVariablePattern(p.ids, name.Span, name.Lexeme))
		if p.at(lexer.Colon) {
			p.advance()
			fp = p.parsePattern()
		}
		fields = append(fields, ast.StructField{Name: name.Lexeme, Pattern: fp})
		if p.at(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBrace)
	return ast.NewStructPattern(p.ids, start.Span.Merge(end.Span), fields)
}
