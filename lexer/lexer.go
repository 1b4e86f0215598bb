package lexer

import (
	"strconv"
	"strings"

	"soc/object"
	"soc/token"
)

type Lexer struct {
	reader strings.Reader
	ch     rune // current rune under examination
	char   int  // the character number
	tstart int  // the value of char at the start of a token
	Ers    object.Errors
}

func New(input string) *Lexer {
	r := *strings.NewReader(input)
	l := &Lexer{reader: r,
		char: -1,
		Ers:  []*object.Error{},
	}
	l.readChar()
	return l
}

// Tokenize drains the lexer into a slice ending in the EOF token, which
// is the shape the parser's cursor wants.
func Tokenize(input string) ([]token.Token, object.Errors) {
	l := New(input)
	tokens := []token.Token{}
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, l.Ers
		}
	}
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	l.tstart = l.char

	switch l.ch {
	case '=':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok = l.NewToken(token.EQ, "==")
		case '>':
			l.readChar()
			tok = l.NewToken(token.ARROW, "=>")
		default:
			tok = l.NewToken(token.ASSIGN, "=")
		}
	case '+':
		tok = l.NewToken(token.PLUS, "+")
	case '-':
		tok = l.NewToken(token.MINUS, "-")
	case '*':
		tok = l.NewToken(token.STAR, "*")
	case '/':
		tok = l.NewToken(token.SLASH, "/")
	case '^':
		tok = l.NewToken(token.CARET, "^")
	case '%':
		tok = l.NewToken(token.MODULO, "%")
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.NewToken(token.LT_EQ, "<=")
		} else {
			tok = l.NewToken(token.LT, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.NewToken(token.GT_EQ, ">=")
		} else {
			tok = l.NewToken(token.GT, ">")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.NewToken(token.NOT_EQ, "!=")
		} else {
			tok = l.NewToken(token.ILLEGAL, "!")
			l.Throw("lex/char", tok)
		}
	case ',':
		tok = l.NewToken(token.COMMA, ",")
	case ';':
		tok = l.NewToken(token.SEMICOLON, ";")
	case '(':
		tok = l.NewToken(token.LPAREN, "(")
	case ')':
		tok = l.NewToken(token.RPAREN, ")")
	case '[':
		tok = l.NewToken(token.LBRACK, "[")
	case ']':
		tok = l.NewToken(token.RBRACK, "]")
	case 0:
		tok = l.NewToken(token.EOF, "EOF")
	default:
		if isLegalStart(l.ch) {
			literal := l.readIdentifier()
			tok = l.NewToken(token.LookupIdent(literal), literal)
			tok.ChEnd = l.char
			return tok
		} else if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
			return l.readNumberToken()
		} else {
			tok = l.NewToken(token.ILLEGAL, string(l.ch))
			l.Throw("lex/char", tok)
		}
	}
	l.readChar()
	tok.ChEnd = l.char
	return tok
}

// Numbers are digits with an optional fractional part (a leading '.5'
// is allowed) and an optional e/E exponent with an optional sign; the
// exponent must have at least one digit.
func (l *Lexer) readNumberToken() token.Token {
	numString := ""
	for isDigit(l.ch) {
		numString = numString + string(l.ch)
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		numString = numString + "."
		l.readChar()
		for isDigit(l.ch) {
			numString = numString + string(l.ch)
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		peek := l.peekChar()
		if isDigit(peek) || peek == '+' || peek == '-' {
			numString = numString + string(l.ch)
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				numString = numString + string(l.ch)
				l.readChar()
			}
			if !isDigit(l.ch) {
				tok := l.NewToken(token.ILLEGAL, numString)
				tok.ChEnd = l.char
				l.Throw("lex/num/exp", tok)
				return tok
			}
			for isDigit(l.ch) {
				numString = numString + string(l.ch)
				l.readChar()
			}
		}
	}
	num, err := strconv.ParseFloat(numString, 64)
	if err != nil {
		tok := l.NewToken(token.ILLEGAL, numString)
		tok.ChEnd = l.char
		l.Throw("lex/num", tok, numString)
		return tok
	}
	tok := l.NewToken(token.NUMBER, numString)
	tok.Value = num
	tok.ChEnd = l.char
	return tok
}

func (l *Lexer) readIdentifier() string {
	result := ""
	for isLegalStart(l.ch) || isDigit(l.ch) {
		result = result + string(l.ch)
		l.readChar()
	}
	return result
}

func (l *Lexer) NewToken(tokenType token.TokenType, st string) token.Token {
	return token.Token{Type: tokenType, Literal: st, ChStart: l.tstart, ChEnd: l.tstart + len(st)}
}

func (l *Lexer) Throw(errorID string, tok token.Token, args ...any) {
	l.Ers = object.Throw(errorID, l.Ers, tok, args...)
}

func (l *Lexer) readChar() {
	ch, _, err := l.reader.ReadRune()
	if err != nil {
		l.ch = 0
	} else {
		l.ch = ch
	}
	l.char++
}

func (l *Lexer) peekChar() rune {
	ch, _, err := l.reader.ReadRune()
	if err == nil {
		l.reader.UnreadRune()
		return ch
	}
	return 0
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func isLegalStart(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
