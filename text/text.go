package text

import (
	"strconv"

	"soc/token"
)

const (
	VERSION = "0.1"
	PROMPT  = "→ "
)

func Emph(s string) string {
	return CYAN + "'" + s + "'" + RESET
}

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

func Yellow(s string) string {
	return YELLOW + s + RESET
}

// DescribeTok names a token the way error messages want it said.
func DescribeTok(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.NUMBER:
		return "the number '" + tok.Literal + "'"
	default:
		return "'" + tok.Literal + "'"
	}
}

func DescribeType(t token.TokenType) string {
	switch t {
	case token.EOF:
		return "end of input"
	case token.IDENT:
		return "a name"
	case token.NUMBER:
		return "a number"
	default:
		return "'" + string(t) + "'"
	}
}

func DescribePos(tok token.Token) string {
	result := strconv.Itoa(tok.ChStart)
	if tok.ChStart != tok.ChEnd {
		result = result + "-" + strconv.Itoa(tok.ChEnd)
	}
	return " at character " + Yellow(result)
}

var (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"
	ERROR  = Red("Error") + ": "
)
