package parser

import (
	"soc/ast"
	"soc/lexer"
	"soc/object"
	"soc/token"
)

// The parser is a recursive descent over a finished token slice, one
// method per precedence level. The cursor is a plain index, so the
// lambda-versus-parenthesized-expression ambiguity is settled by saving
// it, attempting a parameter list, and restoring on failure; there is no
// non-local control transfer anywhere.
type Parser struct {
	Tokens []token.Token
	pos    int
	Errors object.Errors
}

func New(tokens []token.Token) *Parser {
	return &Parser{Tokens: tokens, Errors: []*object.Error{}}
}

// Parse tokenizes and parses one input, a ';'-separated sequence of
// statements. Lexical errors surface through the same Errors slice.
func Parse(input string) ([]ast.Node, object.Errors) {
	tokens, ers := lexer.Tokenize(input)
	if len(ers) > 0 {
		return nil, ers
	}
	p := New(tokens)
	statements := p.ParseInput()
	return statements, p.Errors
}

func (p *Parser) ParseInput() []ast.Node {
	statements := []ast.Node{}
	for {
		statement := p.parseStatement()
		if statement == nil {
			return nil
		}
		statements = append(statements, statement)
		switch p.curToken().Type {
		case token.SEMICOLON:
			p.next()
		case token.EOF:
			return statements
		default:
			p.Throw("parse/trailing", p.curToken())
			return nil
		}
	}
}

func (p *Parser) parseStatement() ast.Node {
	if p.curToken().Type == token.LET {
		letToken := p.next()
		if p.curToken().Type != token.IDENT {
			p.Throw("parse/let/ident", p.curToken())
			return nil
		}
		name := p.next()
		if !p.expect(token.ASSIGN) {
			return nil
		}
		value := p.parseExpression()
		if value == nil {
			return nil
		}
		return &ast.LetStatement{Token: letToken, Name: name.Literal, Value: value}
	}
	return p.parseExpression()
}

func (p *Parser) parseExpression() ast.Node {
	if node := p.tryParseLambda(); node != nil {
		return node
	}
	return p.parseComparison()
}

// tryParseLambda speculatively matches 'x =>' or '(a, b, ...) =>'. On
// any mismatch the cursor and error list are restored and the caller
// falls through to the ordinary expression rules.
func (p *Parser) tryParseLambda() ast.Node {
	mark, errMark := p.pos, len(p.Errors)
	restore := func() {
		p.pos, p.Errors = mark, p.Errors[:errMark]
	}

	lambdaToken := p.curToken()
	parameters := []string{}

	switch lambdaToken.Type {
	case token.IDENT:
		parameters = append(parameters, lambdaToken.Literal)
		p.next()
	case token.LPAREN:
		p.next()
		for p.curToken().Type != token.RPAREN {
			if p.curToken().Type != token.IDENT {
				restore()
				return nil
			}
			parameters = append(parameters, p.next().Literal)
			if p.curToken().Type == token.COMMA {
				p.next()
				continue
			}
			if p.curToken().Type != token.RPAREN {
				restore()
				return nil
			}
		}
		p.next()
	default:
		return nil
	}

	if p.curToken().Type != token.ARROW {
		restore()
		return nil
	}
	p.next()

	body := p.parseExpression()
	if body == nil {
		return nil
	}
	return &ast.LambdaLiteral{Token: lambdaToken, Parameters: parameters, Body: body}
}

func (p *Parser) parseComparison() ast.Node {
	left := p.parseAdditive()
	if left == nil {
		return nil
	}
	for {
		switch p.curToken().Type {
		case token.GT, token.LT, token.GT_EQ, token.LT_EQ, token.EQ, token.NOT_EQ:
			opToken := p.next()
			right := p.parseAdditive()
			if right == nil {
				return nil
			}
			left = &ast.InfixExpression{Token: opToken, Operator: opToken.Type, Left: left, Right: right}
		default:
			return left
		}
	}
}

func (p *Parser) parseAdditive() ast.Node {
	left := p.parseTerm()
	if left == nil {
		return nil
	}
	for {
		switch p.curToken().Type {
		case token.PLUS, token.MINUS:
			opToken := p.next()
			right := p.parseTerm()
			if right == nil {
				return nil
			}
			left = &ast.InfixExpression{Token: opToken, Operator: opToken.Type, Left: left, Right: right}
		default:
			return left
		}
	}
}

func (p *Parser) parseTerm() ast.Node {
	left := p.parsePower()
	if left == nil {
		return nil
	}
	for {
		switch p.curToken().Type {
		case token.STAR, token.SLASH, token.MODULO:
			opToken := p.next()
			right := p.parsePower()
			if right == nil {
				return nil
			}
			left = &ast.InfixExpression{Token: opToken, Operator: opToken.Type, Left: left, Right: right}
		default:
			return left
		}
	}
}

// '^' is right-associative and binds looser than unary minus on both
// sides: -2^2 is (-2)^2 and 2^-3 is 2^(-3).
func (p *Parser) parsePower() ast.Node {
	base := p.parseUnary()
	if base == nil {
		return nil
	}
	if p.curToken().Type == token.CARET {
		opToken := p.next()
		exponent := p.parsePower()
		if exponent == nil {
			return nil
		}
		return &ast.InfixExpression{Token: opToken, Operator: token.CARET, Left: base, Right: exponent}
	}
	return base
}

func (p *Parser) parseUnary() ast.Node {
	if p.curToken().Type == token.MINUS {
		opToken := p.next()
		right := p.parseUnary()
		if right == nil {
			return nil
		}
		return &ast.PrefixExpression{Token: opToken, Operator: token.MINUS, Right: right}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Node {
	tok := p.curToken()
	switch tok.Type {
	case token.NUMBER:
		p.next()
		// A number glued to an 'i' is an imaginary literal: 3i, 2.5i.
		if next := p.curToken(); next.Type == token.IDENT && next.Literal == "i" && next.ChStart == tok.ChEnd {
			p.next()
			return &ast.ComplexLiteral{Token: tok, Real: 0, Imag: tok.Value}
		}
		return &ast.NumberLiteral{Token: tok, Value: tok.Value}
	case token.IDENT:
		p.next()
		if tok.Literal == "i" {
			return &ast.ComplexLiteral{Token: tok, Real: 0, Imag: 1}
		}
		if p.curToken().Type == token.LPAREN {
			return p.parseCall(tok)
		}
		return &ast.Identifier{Token: tok, Value: tok.Literal}
	case token.LPAREN:
		p.next()
		inner := p.parseExpression()
		if inner == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		if next := p.curToken(); next.Type == token.IDENT && next.Literal == "i" {
			p.Throw("parse/imag", next)
			return nil
		}
		return inner
	case token.LBRACK:
		return p.parseBracketLiteral()
	case token.EOF:
		p.Throw("parse/eof", tok)
		return nil
	default:
		p.Throw("parse/prefix", tok)
		return nil
	}
}

func (p *Parser) parseCall(name token.Token) ast.Node {
	p.next() // the '('
	args := []ast.Node{}
	if p.curToken().Type == token.RPAREN {
		p.next()
		return &ast.CallExpression{Token: name, Name: name.Literal, Args: args}
	}
	for {
		arg := p.parseExpression()
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if p.curToken().Type == token.COMMA {
			p.next()
			continue
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return &ast.CallExpression{Token: name, Name: name.Literal, Args: args}
	}
}

// A '[' opens a vector literal, or a matrix literal when the first
// element is itself bracketed. Matrix rows must all have the length of
// row 0; the offending row is named in the error.
func (p *Parser) parseBracketLiteral() ast.Node {
	openToken := p.next()
	if p.curToken().Type == token.LBRACK {
		return p.parseMatrixLiteral(openToken)
	}
	elements := []ast.Node{}
	if p.curToken().Type == token.RBRACK {
		p.next()
		return &ast.VectorLiteral{Token: openToken, Elements: elements}
	}
	for {
		element := p.parseExpression()
		if element == nil {
			return nil
		}
		elements = append(elements, element)
		if p.curToken().Type == token.COMMA {
			p.next()
			continue
		}
		if !p.expect(token.RBRACK) {
			return nil
		}
		return &ast.VectorLiteral{Token: openToken, Elements: elements}
	}
}

func (p *Parser) parseMatrixLiteral(openToken token.Token) ast.Node {
	rows := [][]ast.Node{}
	for {
		rowToken := p.curToken()
		if !p.expect(token.LBRACK) {
			return nil
		}
		row := []ast.Node{}
		for p.curToken().Type != token.RBRACK {
			element := p.parseExpression()
			if element == nil {
				return nil
			}
			row = append(row, element)
			if p.curToken().Type == token.COMMA {
				p.next()
				continue
			}
			if p.curToken().Type != token.RBRACK {
				p.Throw("parse/expect", p.curToken(), token.TokenType(token.RBRACK))
				return nil
			}
		}
		p.next() // the row's ']'
		if len(rows) > 0 && len(row) != len(rows[0]) {
			p.Throw("parse/matrix/row", rowToken, len(rows), len(row), len(rows[0]))
			return nil
		}
		rows = append(rows, row)
		if p.curToken().Type == token.COMMA {
			p.next()
			continue
		}
		if !p.expect(token.RBRACK) {
			return nil
		}
		return &ast.MatrixLiteral{Token: openToken, Rows: rows}
	}
}

func (p *Parser) curToken() token.Token {
	if p.pos >= len(p.Tokens) {
		return p.Tokens[len(p.Tokens)-1] // the EOF token
	}
	return p.Tokens[p.pos]
}

func (p *Parser) next() token.Token {
	tok := p.curToken()
	if p.pos < len(p.Tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(t token.TokenType) bool {
	if p.curToken().Type != t {
		p.Throw("parse/expect", p.curToken(), t)
		return false
	}
	p.next()
	return true
}

func (p *Parser) Throw(errorID string, tok token.Token, args ...any) {
	p.Errors = object.Throw(errorID, p.Errors, tok, args...)
}
