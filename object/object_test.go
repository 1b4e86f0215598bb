package object

import (
	"testing"

	"soc/token"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		obj      Object
		expected string
	}{
		{&Number{Value: 14}, "14.000000"},
		{&Number{Value: -2.5}, "-2.500000"},
		{&Complex{Value: complex(1, 2)}, "1.000000 + 2.000000i"},
		{&Complex{Value: complex(1, -2)}, "1.000000 - 2.000000i"},
		{&Vector{Elements: []float64{1, 2.5}}, "[1.000000, 2.500000]"},
		{&Matrix{Rows: 2, Cols: 2, Cells: []float64{1, 2, 3, 4}}, "[[1.000000, 2.000000], [3.000000, 4.000000]]"},
		{&Func{Parameters: []string{"x"}}, "x => <function>"},
		{&Func{Parameters: []string{"x", "y"}}, "(x, y) => <function>"},
	}

	for i, tt := range tests {
		if got := tt.obj.Inspect(); got != tt.expected {
			t.Fatalf("tests[%d] - expected=%q, got=%q", i, tt.expected, got)
		}
	}
}

func TestBinaryOperationNumbers(t *testing.T) {
	tests := []struct {
		op       token.TokenType
		l, r     float64
		expected float64
	}{
		{token.PLUS, 2, 3, 5},
		{token.MINUS, 2, 3, -1},
		{token.STAR, 2, 3, 6},
		{token.SLASH, 7, 2, 3.5},
		{token.MODULO, 10, 4, 2},
		{token.CARET, 2, 10, 1024},
		{token.CARET, 0, 0, 1},
	}

	for i, tt := range tests {
		result := BinaryOperation(tt.op, &Number{Value: tt.l}, &Number{Value: tt.r})
		n, ok := result.(*Number)
		if !ok {
			t.Fatalf("tests[%d] - got %T", i, result)
		}
		if n.Value != tt.expected {
			t.Fatalf("tests[%d] - expected=%v, got=%v", i, tt.expected, n.Value)
		}
	}
}

func TestPromotionCommutes(t *testing.T) {
	a := &Number{Value: 2}
	b := &Complex{Value: complex(3, 4)}

	left := BinaryOperation(token.PLUS, a, b)
	right := BinaryOperation(token.PLUS, b, a)

	lc, ok := left.(*Complex)
	if !ok {
		t.Fatalf("number + complex gave %T", left)
	}
	rc := right.(*Complex)
	if lc.Value != rc.Value {
		t.Fatalf("promotion doesn't commute: %v vs %v", lc.Value, rc.Value)
	}
	if lc.Value != complex(5, 4) {
		t.Fatalf("wrong sum: %v", lc.Value)
	}
}

func TestDivisionByZero(t *testing.T) {
	tests := []struct {
		left  Object
		right Object
	}{
		{&Number{Value: 5}, &Number{Value: 0}},
		{&Complex{Value: complex(1, 1)}, &Complex{Value: 0}},
		{&Number{Value: 5}, &Complex{Value: 0}},
		{&Vector{Elements: []float64{1, 2}}, &Vector{Elements: []float64{1, 0}}},
		{&Vector{Elements: []float64{1, 2}}, &Number{Value: 0}},
	}

	for i, tt := range tests {
		result := BinaryOperation(token.SLASH, tt.left, tt.right)
		e, ok := result.(*Error)
		if !ok {
			t.Fatalf("tests[%d] - expected an error, got %T", i, result)
		}
		if e.ErrorId != "eval/math/div" {
			t.Fatalf("tests[%d] - error id wrong: %q", i, e.ErrorId)
		}
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := &Vector{Elements: []float64{1, 2, 3}}
	b := &Vector{Elements: []float64{4, 5, 6}}

	sum := BinaryOperation(token.PLUS, a, b).(*Vector)
	for i, expected := range []float64{5, 7, 9} {
		if sum.Elements[i] != expected {
			t.Fatalf("element %d wrong: %v", i, sum.Elements[i])
		}
	}

	scaled := BinaryOperation(token.STAR, a, &Number{Value: 2}).(*Vector)
	for i, expected := range []float64{2, 4, 6} {
		if scaled.Elements[i] != expected {
			t.Fatalf("element %d wrong: %v", i, scaled.Elements[i])
		}
	}

	mismatch := BinaryOperation(token.PLUS, a, &Vector{Elements: []float64{1}})
	if e, ok := mismatch.(*Error); !ok || e.ErrorId != "eval/vec/len" {
		t.Fatalf("expected eval/vec/len, got %v", mismatch)
	}

	// '^' takes a scalar exponent only; there is no element-wise
	// vector-to-vector power.
	raised := BinaryOperation(token.CARET, a, &Number{Value: 2}).(*Vector)
	for i, expected := range []float64{1, 4, 9} {
		if raised.Elements[i] != expected {
			t.Fatalf("element %d wrong: %v", i, raised.Elements[i])
		}
	}
	vecPow := BinaryOperation(token.CARET, a, b)
	if e, ok := vecPow.(*Error); !ok || e.ErrorId != "eval/op/type" {
		t.Fatalf("expected eval/op/type, got %v", vecPow)
	}
}

func TestMatrixProduct(t *testing.T) {
	a := &Matrix{Rows: 2, Cols: 3, Cells: []float64{1, 2, 3, 4, 5, 6}}
	b := &Matrix{Rows: 3, Cols: 2, Cells: []float64{7, 8, 9, 10, 11, 12}}

	result := BinaryOperation(token.STAR, a, b)
	product, ok := result.(*Matrix)
	if !ok {
		t.Fatalf("got %T", result)
	}
	if product.Rows != 2 || product.Cols != 2 {
		t.Fatalf("wrong shape: %d-by-%d", product.Rows, product.Cols)
	}
	expected := []float64{58, 64, 139, 154}
	for i, e := range expected {
		if product.Cells[i] != e {
			t.Fatalf("cell %d wrong: expected=%v, got=%v", i, e, product.Cells[i])
		}
	}

	bad := BinaryOperation(token.STAR, a, a)
	if e, ok := bad.(*Error); !ok || e.ErrorId != "eval/mat/mul" {
		t.Fatalf("expected eval/mat/mul, got %v", bad)
	}
}

func TestCompareIsNumberOnly(t *testing.T) {
	good := Compare(token.GT, &Number{Value: 2}, &Number{Value: 1})
	if n, ok := good.(*Number); !ok || n.Value != 1 {
		t.Fatalf("2 > 1 should be 1.000000, got %v", good)
	}

	bad := Compare(token.GT, &Vector{Elements: []float64{1}}, &Vector{Elements: []float64{2}})
	if e, ok := bad.(*Error); !ok || e.ErrorId != "eval/op/compare" {
		t.Fatalf("expected eval/op/compare, got %v", bad)
	}
}

func TestNegate(t *testing.T) {
	if n := Negate(&Number{Value: 5}).(*Number); n.Value != -5 {
		t.Fatalf("wrong negation: %v", n.Value)
	}
	if v := Negate(&Vector{Elements: []float64{1, -2}}).(*Vector); v.Elements[1] != 2 {
		t.Fatalf("wrong negation: %v", v.Elements)
	}
	bad := Negate(&Func{Parameters: []string{"x"}})
	if e, ok := bad.(*Error); !ok || e.ErrorId != "eval/op/negate" {
		t.Fatalf("expected eval/op/negate, got %v", bad)
	}
}

func TestEnvironmentSnapshot(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", &Number{Value: 1})

	snap := env.Snapshot()

	env.Store["x"] = &Number{Value: 99}
	env.Define("y", &Number{Value: 2})

	captured, ok := snap.Get("x")
	if !ok || captured.(*Number).Value != 1 {
		t.Fatalf("snapshot saw a later mutation: %v", captured)
	}
	if snap.Exists("y") {
		t.Fatal("snapshot saw a later declaration")
	}
}

func TestEnvironmentDefine(t *testing.T) {
	env := NewEnvironment()
	if !env.Define("x", &Number{Value: 1}) {
		t.Fatal("first definition refused")
	}
	if env.Define("x", &Number{Value: 2}) {
		t.Fatal("redeclaration allowed")
	}

	inner := NewEnvironment()
	inner.Ext = env
	if !inner.Define("x", &Number{Value: 3}) {
		t.Fatal("shadowing in a child environment refused")
	}
	value, _ := inner.Get("x")
	if value.(*Number).Value != 3 {
		t.Fatalf("wrong shadowed value: %v", value)
	}
}
