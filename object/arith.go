package object

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"soc/token"
)

// BinaryOperation dispatches an arithmetic operator on the pair of operand
// kinds, promoting Number to Complex where one side is already Complex and
// broadcasting scalars over vectors and matrices. Errors come back
// unstamped; the evaluator adds the token.
func BinaryOperation(op token.TokenType, left, right Object) Object {
	switch l := left.(type) {
	case *Number:
		switch r := right.(type) {
		case *Number:
			return numberOp(op, l.Value, r.Value)
		case *Complex:
			return complexOp(op, complex(l.Value, 0), r.Value)
		case *Vector:
			return scalarVectorOp(op, l.Value, r)
		case *Matrix:
			return scalarMatrixOp(op, l.Value, r)
		}
	case *Complex:
		switch r := right.(type) {
		case *Number:
			return complexOp(op, l.Value, complex(r.Value, 0))
		case *Complex:
			return complexOp(op, l.Value, r.Value)
		}
	case *Vector:
		switch r := right.(type) {
		case *Number:
			return vectorScalarOp(op, l, r.Value)
		case *Vector:
			return vectorOp(op, l, r)
		}
	case *Matrix:
		switch r := right.(type) {
		case *Number:
			return matrixScalarOp(op, l, r.Value)
		case *Matrix:
			return matrixOp(op, l, r)
		}
	}
	return &Error{ErrorId: "eval/op/type", Info: []any{EmphType(left), EmphType(right)}}
}

// Compare is Number-only. This is a deliberate restriction: ordering
// complex numbers or collections has no single right meaning.
func Compare(op token.TokenType, left, right Object) Object {
	l, lok := left.(*Number)
	r, rok := right.(*Number)
	if !lok || !rok {
		return &Error{ErrorId: "eval/op/compare", Info: []any{EmphType(left), EmphType(right)}}
	}
	var result bool
	switch op {
	case token.GT:
		result = l.Value > r.Value
	case token.LT:
		result = l.Value < r.Value
	case token.GT_EQ:
		result = l.Value >= r.Value
	case token.LT_EQ:
		result = l.Value <= r.Value
	case token.EQ:
		result = l.Value == r.Value
	case token.NOT_EQ:
		result = l.Value != r.Value
	}
	if result {
		return &Number{Value: 1}
	}
	return &Number{Value: 0}
}

func Negate(operand Object) Object {
	switch o := operand.(type) {
	case *Number:
		return &Number{Value: -o.Value}
	case *Complex:
		return &Complex{Value: -o.Value}
	case *Vector:
		elements := make([]float64, len(o.Elements))
		for i, e := range o.Elements {
			elements[i] = -e
		}
		return &Vector{Elements: elements}
	case *Matrix:
		result := NewMatrix(o.Rows, o.Cols)
		for i, c := range o.Cells {
			result.Cells[i] = -c
		}
		return result
	}
	return &Error{ErrorId: "eval/op/negate", Info: []any{EmphType(operand)}}
}

func numberOp(op token.TokenType, l, r float64) Object {
	switch op {
	case token.PLUS:
		return &Number{Value: l + r}
	case token.MINUS:
		return &Number{Value: l - r}
	case token.STAR:
		return &Number{Value: l * r}
	case token.SLASH:
		if r == 0 {
			return &Error{ErrorId: "eval/math/div"}
		}
		return &Number{Value: l / r}
	case token.MODULO:
		if r == 0 {
			return &Error{ErrorId: "eval/math/mod"}
		}
		return &Number{Value: math.Mod(l, r)}
	case token.CARET:
		return &Number{Value: math.Pow(l, r)} // Pow(0, 0) is 1, as wanted
	}
	return &Error{ErrorId: "eval/op/type", Info: []any{"<number>", "<number>"}}
}

func complexOp(op token.TokenType, l, r complex128) Object {
	switch op {
	case token.PLUS:
		return &Complex{Value: l + r}
	case token.MINUS:
		return &Complex{Value: l - r}
	case token.STAR:
		return &Complex{Value: l * r}
	case token.SLASH:
		if r == 0 {
			return &Error{ErrorId: "eval/math/div"}
		}
		return &Complex{Value: l / r}
	case token.CARET:
		if l == 0 {
			if r == 0 {
				return &Complex{Value: 1}
			}
			return &Complex{Value: 0}
		}
		return &Complex{Value: cmplx.Pow(l, r)}
	}
	return &Error{ErrorId: "eval/op/type", Info: []any{"<complex>", "<complex>"}}
}

func vectorOp(op token.TokenType, l, r *Vector) Object {
	if len(l.Elements) != len(r.Elements) {
		return &Error{ErrorId: "eval/vec/len", Info: []any{len(l.Elements), len(r.Elements)}}
	}
	elements := make([]float64, len(l.Elements))
	for i := range l.Elements {
		a, b := l.Elements[i], r.Elements[i]
		switch op {
		case token.PLUS:
			elements[i] = a + b
		case token.MINUS:
			elements[i] = a - b
		case token.STAR:
			elements[i] = a * b
		case token.SLASH:
			if b == 0 {
				return &Error{ErrorId: "eval/math/div"}
			}
			elements[i] = a / b
		default:
			return &Error{ErrorId: "eval/op/type", Info: []any{"<vector>", "<vector>"}}
		}
	}
	return &Vector{Elements: elements}
}

func scalarVectorOp(op token.TokenType, l float64, r *Vector) Object {
	switch op {
	case token.PLUS, token.MINUS, token.STAR:
		elements := make([]float64, len(r.Elements))
		for i, e := range r.Elements {
			switch op {
			case token.PLUS:
				elements[i] = l + e
			case token.MINUS:
				elements[i] = l - e
			case token.STAR:
				elements[i] = l * e
			}
		}
		return &Vector{Elements: elements}
	}
	return &Error{ErrorId: "eval/op/type", Info: []any{"<number>", "<vector>"}}
}

func vectorScalarOp(op token.TokenType, l *Vector, r float64) Object {
	elements := make([]float64, len(l.Elements))
	for i, e := range l.Elements {
		switch op {
		case token.PLUS:
			elements[i] = e + r
		case token.MINUS:
			elements[i] = e - r
		case token.STAR:
			elements[i] = e * r
		case token.SLASH:
			if r == 0 {
				return &Error{ErrorId: "eval/math/div"}
			}
			elements[i] = e / r
		case token.CARET:
			elements[i] = math.Pow(e, r)
		default:
			return &Error{ErrorId: "eval/op/type", Info: []any{"<vector>", "<number>"}}
		}
	}
	return &Vector{Elements: elements}
}

func matrixOp(op token.TokenType, l, r *Matrix) Object {
	switch op {
	case token.PLUS, token.MINUS:
		if l.Rows != r.Rows || l.Cols != r.Cols {
			return &Error{ErrorId: "eval/mat/shape", Info: []any{l.Rows, l.Cols, r.Rows, r.Cols}}
		}
		result := NewMatrix(l.Rows, l.Cols)
		for i := range l.Cells {
			if op == token.PLUS {
				result.Cells[i] = l.Cells[i] + r.Cells[i]
			} else {
				result.Cells[i] = l.Cells[i] - r.Cells[i]
			}
		}
		return result
	case token.STAR:
		if l.Cols != r.Rows {
			return &Error{ErrorId: "eval/mat/mul", Info: []any{l.Rows, l.Cols, r.Rows, r.Cols}}
		}
		var product mat.Dense
		product.Mul(mat.NewDense(l.Rows, l.Cols, l.Cells), mat.NewDense(r.Rows, r.Cols, r.Cells))
		result := NewMatrix(l.Rows, r.Cols)
		for i := 0; i < result.Rows; i++ {
			copy(result.Row(i), product.RawRowView(i))
		}
		return result
	}
	return &Error{ErrorId: "eval/op/type", Info: []any{"<matrix>", "<matrix>"}}
}

func scalarMatrixOp(op token.TokenType, l float64, r *Matrix) Object {
	switch op {
	case token.PLUS, token.MINUS, token.STAR:
		result := NewMatrix(r.Rows, r.Cols)
		for i, c := range r.Cells {
			switch op {
			case token.PLUS:
				result.Cells[i] = l + c
			case token.MINUS:
				result.Cells[i] = l - c
			case token.STAR:
				result.Cells[i] = l * c
			}
		}
		return result
	}
	return &Error{ErrorId: "eval/op/type", Info: []any{"<number>", "<matrix>"}}
}

func matrixScalarOp(op token.TokenType, l *Matrix, r float64) Object {
	switch op {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH:
		if op == token.SLASH && r == 0 {
			return &Error{ErrorId: "eval/math/div"}
		}
		result := NewMatrix(l.Rows, l.Cols)
		for i, c := range l.Cells {
			switch op {
			case token.PLUS:
				result.Cells[i] = c + r
			case token.MINUS:
				result.Cells[i] = c - r
			case token.STAR:
				result.Cells[i] = c * r
			case token.SLASH:
				result.Cells[i] = c / r
			}
		}
		return result
	}
	return &Error{ErrorId: "eval/op/type", Info: []any{"<matrix>", "<number>"}}
}
