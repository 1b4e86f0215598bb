package lexer

import (
	"testing"

	"soc/token"
)

func TestNextToken(t *testing.T) {
	input := `let y = sin(2 * pi) + [1, 2.5, .5]; y ^ -2e-3 >= 3i != x => x % 4`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LET, "let"},
		{token.IDENT, "y"},
		{token.ASSIGN, "="},
		{token.IDENT, "sin"},
		{token.LPAREN, "("},
		{token.NUMBER, "2"},
		{token.STAR, "*"},
		{token.IDENT, "pi"},
		{token.RPAREN, ")"},
		{token.PLUS, "+"},
		{token.LBRACK, "["},
		{token.NUMBER, "1"},
		{token.COMMA, ","},
		{token.NUMBER, "2.5"},
		{token.COMMA, ","},
		{token.NUMBER, ".5"},
		{token.RBRACK, "]"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "y"},
		{token.CARET, "^"},
		{token.MINUS, "-"},
		{token.NUMBER, "2e-3"},
		{token.GT_EQ, ">="},
		{token.NUMBER, "3"},
		{token.IDENT, "i"},
		{token.NOT_EQ, "!="},
		{token.IDENT, "x"},
		{token.ARROW, "=>"},
		{token.IDENT, "x"},
		{token.MODULO, "%"},
		{token.NUMBER, "4"},
		{token.EOF, "EOF"},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}

	if len(l.Ers) != 0 {
		t.Fatalf("lexer threw %d error(s), first: %s", len(l.Ers), l.Ers[0].Message)
	}
}

func TestNumberValues(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.25", 3.25},
		{".5", 0.5},
		{"2e3", 2000},
		{"2E-2", 0.02},
		{"1.5e+1", 15},
	}

	for i, tt := range tests {
		tokens, ers := Tokenize(tt.input)
		if len(ers) != 0 {
			t.Fatalf("tests[%d] - lexer threw: %s", i, ers[0].Message)
		}
		if tokens[0].Type != token.NUMBER {
			t.Fatalf("tests[%d] - tokentype wrong. got=%q", i, tokens[0].Type)
		}
		if tokens[0].Value != tt.expected {
			t.Fatalf("tests[%d] - value wrong. expected=%v, got=%v", i, tt.expected, tokens[0].Value)
		}
	}
}

func TestImaginaryAdjacency(t *testing.T) {
	tokens, ers := Tokenize("3i")
	if len(ers) != 0 {
		t.Fatalf("lexer threw: %s", ers[0].Message)
	}
	if tokens[0].Type != token.NUMBER || tokens[1].Type != token.IDENT {
		t.Fatalf("wrong token types: %q, %q", tokens[0].Type, tokens[1].Type)
	}
	if tokens[1].ChStart != tokens[0].ChEnd {
		t.Fatalf("'i' not adjacent to its number: %d vs %d", tokens[1].ChStart, tokens[0].ChEnd)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input      string
		expectedId string
	}{
		{"2 @ 3", "lex/char"},
		{"2e+", "lex/num/exp"},
		{"5 ! 2", "lex/char"},
	}

	for i, tt := range tests {
		_, ers := Tokenize(tt.input)
		if len(ers) == 0 {
			t.Fatalf("tests[%d] - expected a lex error, got none", i)
		}
		if ers[0].ErrorId != tt.expectedId {
			t.Fatalf("tests[%d] - error id wrong. expected=%q, got=%q", i, tt.expectedId, ers[0].ErrorId)
		}
	}
}
