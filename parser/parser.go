// Package parser implements a Pratt (top-down operator precedence) parser
// for mimir source code. It consumes a lexer.Lexer token by token and
// produces a Program AST plus a list of diagnostic strings accumulated
// along the way; it never aborts on a malformed construct, it resumes and
// keeps collecting diagnostics.
//
// The package also defines the AST node types themselves (node.go),
// keeping grammar and node shapes in one package since neither is useful
// without the other.
package parser

import (
	"fmt"

	"mimir/lexer"
)

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

// Parser holds two-token lookahead over a lexer and the growing list of
// diagnostics produced while parsing.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []string

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over l, priming both lookahead tokens and
// registering every prefix/infix parselet the grammar defines.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, errors: []string{}}

	p.prefixParseFns = make(map[lexer.TokenType]prefixParseFn)
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseInteger)
	p.registerPrefix(lexer.TRUE, p.parseBoolean)
	p.registerPrefix(lexer.FALSE, p.parseBoolean)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.NEGATION, p.parsePrefixExpression)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.IF, p.parseIfExpression)
	p.registerPrefix(lexer.FUNCTION, p.parseFunctionLiteral)

	p.infixParseFns = make(map[lexer.TokenType]infixParseFn)
	p.registerInfix(lexer.PLUS, p.parseInfixExpression)
	p.registerInfix(lexer.MINUS, p.parseInfixExpression)
	p.registerInfix(lexer.DIVISION, p.parseInfixExpression)
	p.registerInfix(lexer.MULTIPLICATION, p.parseInfixExpression)
	p.registerInfix(lexer.EQ, p.parseInfixExpression)
	p.registerInfix(lexer.NOT_EQ, p.parseInfixExpression)
	p.registerInfix(lexer.LT, p.parseInfixExpression)
	p.registerInfix(lexer.GT, p.parseInfixExpression)
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)

	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(t lexer.TokenType, fn prefixParseFn) {
	p.prefixParseFns[t] = fn
}

func (p *Parser) registerInfix(t lexer.TokenType, fn infixParseFn) {
	p.infixParseFns[t] = fn
}

// Errors returns the diagnostics accumulated so far.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expectPeek checks the upcoming token against t; if it matches, the
// parser advances past it and returns true. Otherwise it records a
// diagnostic and returns false, leaving the parser where it was so the
// caller can decide how to resume.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	msg := fmt.Sprintf(
		"Se esperaba que el siguente token fuera %s pero se obtuvo %s cerca de la línea %d",
		t, p.peekToken.Type, p.peekToken.Line,
	)
	p.errors = append(p.errors, msg)
}

func (p *Parser) noPrefixParseFnError(t lexer.Token) {
	msg := fmt.Sprintf("No se encontró ninguna función para parsear %s cerca de la línea %d", t.Literal, t.Line)
	p.errors = append(p.errors, msg)
}

// ParseProgram loops until EOF, parsing one statement per turn and
// appending every non-nil result to the Program.
func (p *Parser) ParseProgram() *Program {
	program := &Program{Statements: []Statement{}}

	for !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}
