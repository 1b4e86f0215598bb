package ast

import (
	"bytes"
	"strconv"
	"strings"

	"soc/token"
)

// The base Node interface
type Node interface {
	GetToken() token.Token
	TokenLiteral() string
	String() string
}

type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) TokenLiteral() string  { return i.Token.Literal }
func (i *Identifier) String() string        { return i.Value }

type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (nl *NumberLiteral) GetToken() token.Token { return nl.Token }
func (nl *NumberLiteral) TokenLiteral() string  { return nl.Token.Literal }
func (nl *NumberLiteral) String() string        { return nl.Token.Literal }

// ComplexLiteral is the imaginary-unit sugar: '3i' is {0, 3}, bare 'i'
// is {0, 1}. Sums like '2 + 3i' stay ordinary infix additions.
type ComplexLiteral struct {
	Token token.Token
	Real  float64
	Imag  float64
}

func (cl *ComplexLiteral) GetToken() token.Token { return cl.Token }
func (cl *ComplexLiteral) TokenLiteral() string  { return cl.Token.Literal }
func (cl *ComplexLiteral) String() string {
	return strconv.FormatFloat(cl.Imag, 'f', -1, 64) + "i"
}

type VectorLiteral struct {
	Token    token.Token
	Elements []Node
}

func (vl *VectorLiteral) GetToken() token.Token { return vl.Token }
func (vl *VectorLiteral) TokenLiteral() string  { return vl.Token.Literal }
func (vl *VectorLiteral) String() string {
	var out bytes.Buffer

	elements := []string{}
	for _, e := range vl.Elements {
		elements = append(elements, e.String())
	}

	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")

	return out.String()
}

// MatrixLiteral rows are guaranteed rectangular by the parser.
type MatrixLiteral struct {
	Token token.Token
	Rows  [][]Node
}

func (ml *MatrixLiteral) GetToken() token.Token { return ml.Token }
func (ml *MatrixLiteral) TokenLiteral() string  { return ml.Token.Literal }
func (ml *MatrixLiteral) String() string {
	var out bytes.Buffer

	rows := []string{}
	for _, row := range ml.Rows {
		elements := []string{}
		for _, e := range row {
			elements = append(elements, e.String())
		}
		rows = append(rows, "["+strings.Join(elements, ", ")+"]")
	}

	out.WriteString("[")
	out.WriteString(strings.Join(rows, ", "))
	out.WriteString("]")

	return out.String()
}

type PrefixExpression struct {
	Token    token.Token
	Operator token.TokenType
	Right    Node
}

func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	return "(" + string(pe.Operator) + pe.Right.String() + ")"
}

type InfixExpression struct {
	Token    token.Token
	Operator token.TokenType
	Left     Node
	Right    Node
}

func (ie *InfixExpression) GetToken() token.Token { return ie.Token }
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	return "(" + ie.Left.String() + " " + string(ie.Operator) + " " + ie.Right.String() + ")"
}

// CallExpression covers true calls and zero-argument constant references
// alike; which one it is gets settled at evaluation time.
type CallExpression struct {
	Token token.Token
	Name  string
	Args  []Node
}

func (ce *CallExpression) GetToken() token.Token { return ce.Token }
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	var out bytes.Buffer

	args := []string{}
	for _, a := range ce.Args {
		args = append(args, a.String())
	}

	out.WriteString(ce.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")

	return out.String()
}

type LetStatement struct {
	Token token.Token
	Name  string
	Value Node
}

func (ls *LetStatement) GetToken() token.Token { return ls.Token }
func (ls *LetStatement) TokenLiteral() string  { return ls.Token.Literal }
func (ls *LetStatement) String() string {
	return "let " + ls.Name + " = " + ls.Value.String()
}

type LambdaLiteral struct {
	Token      token.Token
	Parameters []string
	Body       Node
}

func (ll *LambdaLiteral) GetToken() token.Token { return ll.Token }
func (ll *LambdaLiteral) TokenLiteral() string  { return ll.Token.Literal }
func (ll *LambdaLiteral) String() string {
	if len(ll.Parameters) == 1 {
		return ll.Parameters[0] + " => " + ll.Body.String()
	}
	return "(" + strings.Join(ll.Parameters, ", ") + ") => " + ll.Body.String()
}

// HasLambda reports whether a lambda occurs anywhere in the tree, which
// decides whether the tree must outlive the statement that made it.
func HasLambda(node Node) bool {
	switch n := node.(type) {
	case *LambdaLiteral:
		return true
	case *PrefixExpression:
		return HasLambda(n.Right)
	case *InfixExpression:
		return HasLambda(n.Left) || HasLambda(n.Right)
	case *VectorLiteral:
		for _, e := range n.Elements {
			if HasLambda(e) {
				return true
			}
		}
	case *MatrixLiteral:
		for _, row := range n.Rows {
			for _, e := range row {
				if HasLambda(e) {
					return true
				}
			}
		}
	case *CallExpression:
		for _, a := range n.Args {
			if HasLambda(a) {
				return true
			}
		}
	case *LetStatement:
		return HasLambda(n.Value)
	}
	return false
}
