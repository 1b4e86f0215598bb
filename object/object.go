package object

import (
	"bytes"
	"strconv"
	"strings"

	"soc/ast"
	"soc/token"
)

type ObjectType string

const (
	ERROR_OBJ = "error"

	NUMBER_OBJ  = "number"
	COMPLEX_OBJ = "complex"
	VECTOR_OBJ  = "vector"
	MATRIX_OBJ  = "matrix"

	FUNC_OBJ = "func"
)

type Object interface {
	Type() ObjectType
	Inspect() string
}

func EmphType(o Object) string {
	return "<" + string(o.Type()) + ">"
}

// All numeric rendering is fixed at six decimal places.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

type Number struct {
	Value float64
}

func (n *Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect() string  { return FormatFloat(n.Value) }

type Complex struct {
	Value complex128
}

func (c *Complex) Type() ObjectType { return COMPLEX_OBJ }
func (c *Complex) Inspect() string {
	re, im := real(c.Value), imag(c.Value)
	if im < 0 {
		return FormatFloat(re) + " - " + FormatFloat(-im) + "i"
	}
	return FormatFloat(re) + " + " + FormatFloat(im) + "i"
}

type Vector struct {
	Elements []float64
}

func (v *Vector) Type() ObjectType { return VECTOR_OBJ }
func (v *Vector) Inspect() string {
	var out bytes.Buffer

	elements := []string{}
	for _, e := range v.Elements {
		elements = append(elements, FormatFloat(e))
	}

	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")

	return out.String()
}

// Matrix is stored row-major: Cells[i*Cols+j] is row i, column j,
// and len(Cells) == Rows*Cols always holds.
type Matrix struct {
	Rows  int
	Cols  int
	Cells []float64
}

func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Cells: make([]float64, rows*cols)}
}

func (m *Matrix) At(i, j int) float64 { return m.Cells[i*m.Cols+j] }

func (m *Matrix) Set(i, j int, f float64) { m.Cells[i*m.Cols+j] = f }

func (m *Matrix) Row(i int) []float64 { return m.Cells[i*m.Cols : (i+1)*m.Cols] }

func (m *Matrix) Type() ObjectType { return MATRIX_OBJ }
func (m *Matrix) Inspect() string {
	var out bytes.Buffer

	rows := []string{}
	for i := 0; i < m.Rows; i++ {
		elements := []string{}
		for j := 0; j < m.Cols; j++ {
			elements = append(elements, FormatFloat(m.At(i, j)))
		}
		rows = append(rows, "["+strings.Join(elements, ", ")+"]")
	}

	out.WriteString("[")
	out.WriteString(strings.Join(rows, ", "))
	out.WriteString("]")

	return out.String()
}

type Func struct {
	Parameters []string
	Body       ast.Node
	Env        *Environment
}

func (f *Func) Type() ObjectType { return FUNC_OBJ }
func (f *Func) Inspect() string {
	if len(f.Parameters) == 1 {
		return f.Parameters[0] + " => <function>"
	}
	return "(" + strings.Join(f.Parameters, ", ") + ") => <function>"
}

// An Error carries its identifier and raw info from the point of detection;
// the message and token are stamped in by whoever has the token in hand
// (usually the evaluator), via CreateErr or Stamp.
type Error struct {
	ErrorId string
	Message string
	Info    []any
	Token   token.Token
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "Error: " + e.Message }

func (e *Error) Kind() ErrorKind { return kindOf(e.ErrorId) }

type Errors []*Error

func Throw(errorID string, ers Errors, tok token.Token, args ...any) Errors {
	return append(ers, CreateErr(errorID, tok, args...))
}

func CreateErr(ident string, tok token.Token, args ...any) *Error {
	e := &Error{ErrorId: ident, Info: args}
	e.Stamp(tok)
	return e
}

// Stamp fills in the token and builds the message from the creator map.
// Idempotent for errors that already carry a message.
func (e *Error) Stamp(tok token.Token) *Error {
	e.Token = tok
	if e.Message == "" {
		creator, ok := ErrorCreatorMap[e.ErrorId]
		if !ok {
			e.Message = "unknown error identifier " + e.ErrorId
			return e
		}
		e.Message = creator.Message(tok, e.Info...)
	}
	return e
}
