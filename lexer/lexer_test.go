package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextToken_Operators(t *testing.T) {
	input := `variable cinco = 5;
variable diez = 10;

variable suma = procedimiento(x, y) {
  x + y;
};

variable resultado = suma(cinco, diez);
!-/*5;
5 < 10 > 5;

si (5 < 10) {
	regresa verdadero;
} si_no {
	regresa falso;
}

10 == 10;
10 != 9;
mientras (verdadero) { x = x + 1; }
"foobar";
'foobar';
"foo bar";
`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{LET, "variable"},
		{IDENT, "cinco"},
		{ASSIGN, "="},
		{INT, "5"},
		{SEMICOLON, ";"},
		{LET, "variable"},
		{IDENT, "diez"},
		{ASSIGN, "="},
		{INT, "10"},
		{SEMICOLON, ";"},
		{LET, "variable"},
		{IDENT, "suma"},
		{ASSIGN, "="},
		{FUNCTION, "procedimiento"},
		{LPAREN, "("},
		{IDENT, "x"},
		{COMMA, ","},
		{IDENT, "y"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{IDENT, "x"},
		{PLUS, "+"},
		{IDENT, "y"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{SEMICOLON, ";"},
		{LET, "variable"},
		{IDENT, "resultado"},
		{ASSIGN, "="},
		{IDENT, "suma"},
		{LPAREN, "("},
		{IDENT, "cinco"},
		{COMMA, ","},
		{IDENT, "diez"},
		{RPAREN, ")"},
		{SEMICOLON, ";"},
		{NEGATION, "!"},
		{MINUS, "-"},
		{DIVISION, "/"},
		{MULTIPLICATION, "*"},
		{INT, "5"},
		{SEMICOLON, ";"},
		{INT, "5"},
		{LT, "<"},
		{INT, "10"},
		{GT, ">"},
		{INT, "5"},
		{SEMICOLON, ";"},
		{IF, "si"},
		{LPAREN, "("},
		{INT, "5"},
		{LT, "<"},
		{INT, "10"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RETURN, "regresa"},
		{TRUE, "verdadero"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{ELSE, "si_no"},
		{LBRACE, "{"},
		{RETURN, "regresa"},
		{FALSE, "falso"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{INT, "10"},
		{EQ, "=="},
		{INT, "10"},
		{SEMICOLON, ";"},
		{INT, "10"},
		{NOT_EQ, "!="},
		{INT, "9"},
		{SEMICOLON, ";"},
		{LOOP, "mientras"},
		{LPAREN, "("},
		{TRUE, "verdadero"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{IDENT, "x"},
		{PLUS, "+"},
		{INT, "1"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{STRING, "foobar"},
		{SEMICOLON, ";"},
		{STRING, "foobar"},
		{SEMICOLON, ";"},
		{STRING, "foo bar"},
		{SEMICOLON, ";"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		assert.Equalf(t, tt.expectedType, tok.Type, "test %d: wrong token type for literal %q", i, tok.Literal)
		assert.Equalf(t, tt.expectedLiteral, tok.Literal, "test %d: wrong literal", i)
	}
}

func TestNextToken_IllegalAndUnterminated(t *testing.T) {
	l := New(`@ "unterminated`)

	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
	assert.Equal(t, "@", tok.Literal)

	tok = l.NextToken()
	assert.Equal(t, STRING, tok.Type)
	assert.Equal(t, "unterminated", tok.Literal)

	tok = l.NextToken()
	assert.Equal(t, EOF, tok.Type)
}

func TestNextToken_LeadingUnderscoreIsIllegal(t *testing.T) {
	l := New("_pie")

	tok := l.NextToken()
	assert.Equal(t, ILLEGAL, tok.Type)
	assert.Equal(t, "_", tok.Literal)

	tok = l.NextToken()
	assert.Equal(t, IDENT, tok.Type)
	assert.Equal(t, "pie", tok.Literal)
}

func TestNextToken_UnderscoreContinuesIdentifier(t *testing.T) {
	l := New("mi_variable")

	tok := l.NextToken()
	assert.Equal(t, IDENT, tok.Type)
	assert.Equal(t, "mi_variable", tok.Literal)
}

func TestNextToken_LineTracking(t *testing.T) {
	l := New("5\n+\n5")

	tok := l.NextToken()
	assert.Equal(t, 1, tok.Line)

	tok = l.NextToken()
	assert.Equal(t, 2, tok.Line)

	tok = l.NextToken()
	assert.Equal(t, 3, tok.Line)
}

func TestNextToken_Determinism(t *testing.T) {
	src := `variable x = 1 + 2 * 3;`
	collect := func() []TokenType {
		l := New(src)
		var kinds []TokenType
		for {
			tok := l.NextToken()
			kinds = append(kinds, tok.Type)
			if tok.Type == EOF {
				break
			}
		}
		return kinds
	}
	assert.Equal(t, collect(), collect())
}

func TestLookupIdent_NuloIsNotAKeyword(t *testing.T) {
	assert.Equal(t, IDENT, LookupIdent("nulo"))
}
