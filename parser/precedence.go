package parser

import "mimir/lexer"

// Operator precedence levels, low to high. CALL binds tightest because a
// call's argument list is itself parsed at LOWEST once inside the
// parentheses.
const (
	_ int = iota
	LOWEST
	EQUALS      // == or !=
	LESSGREATER // < or >
	SUM         // + or -
	PRODUCT     // * or /
	PREFIX      // -x or !x
	CALL        // fn(x)
)

var precedences = map[lexer.TokenType]int{
	lexer.EQ:             EQUALS,
	lexer.NOT_EQ:         EQUALS,
	lexer.LT:             LESSGREATER,
	lexer.GT:             LESSGREATER,
	lexer.PLUS:           SUM,
	lexer.MINUS:          SUM,
	lexer.DIVISION:       PRODUCT,
	lexer.MULTIPLICATION: PRODUCT,
	lexer.LPAREN:         CALL,
}

// precedenceOf looks up the binding power of a token,
// defaulting to LOWEST for anything not in the table (this is what lets
// parseExpression stop consuming infix operators at a semicolon or EOF).
func precedenceOf(t lexer.TokenType) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}
