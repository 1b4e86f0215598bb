package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT  = "IDENT"  // sin, pi, x, foobar, ...
	NUMBER = "number" // 1343, 1.23, .5, 2e-3

	// Operators
	ASSIGN = "="

	PLUS   = "+"
	MINUS  = "-"
	STAR   = "*"
	SLASH  = "/"
	CARET  = "^"
	MODULO = "%"

	LT     = "<"
	GT     = ">"
	LT_EQ  = "<="
	GT_EQ  = ">="
	EQ     = "=="
	NOT_EQ = "!="

	ARROW = "=>"

	COMMA     = ","
	SEMICOLON = ";"

	LPAREN = "("
	RPAREN = ")"
	LBRACK = "["
	RBRACK = "]"

	// Keywords
	LET = "let"
)

type Token struct {
	Type    TokenType
	Literal string
	Value   float64 // set for NUMBER tokens, zero otherwise
	ChStart int
	ChEnd   int
}

var keywords = map[string]TokenType{
	"let": LET,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
