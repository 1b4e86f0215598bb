package evaluator

import (
	"math"
	"strings"
	"testing"

	"soc/object"
)

func evalNumber(t *testing.T, ev *Evaluator, input string) float64 {
	t.Helper()
	result := ev.Interpret(input)
	n, ok := result.(*object.Number)
	if !ok {
		t.Fatalf("%q did not give a number: %s", input, result.Inspect())
	}
	return n.Value
}

func evalError(t *testing.T, ev *Evaluator, input string) *object.Error {
	t.Helper()
	result := ev.Interpret(input)
	e, ok := result.(*object.Error)
	if !ok {
		t.Fatalf("%q should have failed, got: %s", input, result.Inspect())
	}
	return e
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"2 ^ 3 ^ 2", 512},
		{"--5", 5},
		{"7 / 2", 3.5},
		{"10 % 4", 2},
		{"2 > 1", 1},
		{"2 < 1", 0},
		{"3 == 3", 1},
		{"3 != 3", 0},
		{"0 ^ 0", 1},
		{"2 ^ -1", 0.5},
		{"-2 ^ 2", 4},
		{"-(2 ^ 2)", -4},
	}

	for i, tt := range tests {
		ev := NewStandard()
		if got := evalNumber(t, ev, tt.input); got != tt.expected {
			t.Fatalf("tests[%d] - %q: expected=%v, got=%v", i, tt.input, tt.expected, got)
		}
	}
}

func TestConstantsAndCalls(t *testing.T) {
	ev := NewStandard()

	if got := evalNumber(t, ev, "pi"); got != math.Pi {
		t.Fatalf("pi: got %v", got)
	}
	if got := evalNumber(t, ev, "PI()"); got != math.Pi {
		t.Fatalf("PI(): got %v", got)
	}
	if got := evalNumber(t, ev, "sin(0)"); got != 0 {
		t.Fatalf("sin(0): got %v", got)
	}
	if got := evalNumber(t, ev, "SIN(0)"); got != 0 {
		t.Fatalf("SIN(0): got %v", got)
	}

	// A declared variable wins over a constant as a bare reference, but
	// the zero-argument call form still reaches the constant.
	ev2 := NewStandard()
	if got := evalNumber(t, ev2, "let pi = 3; pi"); got != 3 {
		t.Fatalf("shadowed pi: got %v", got)
	}
	if got := evalNumber(t, ev2, "pi()"); got != math.Pi {
		t.Fatalf("pi() under shadowing: got %v", got)
	}
}

func TestComplexPromotion(t *testing.T) {
	ev := NewStandard()

	result := ev.Interpret("2 + 3i")
	c, ok := result.(*object.Complex)
	if !ok || c.Value != complex(2, 3) {
		t.Fatalf("2 + 3i: got %s", result.Inspect())
	}

	if got := ev.Interpret("(2 + 3i) * i").Inspect(); got != "-3.000000 + 2.000000i" {
		t.Fatalf("(2 + 3i) * i: got %q", got)
	}

	left := ev.Interpret("2 + 3i").Inspect()
	right := ev.Interpret("3i + 2").Inspect()
	if left != right {
		t.Fatalf("promotion doesn't commute: %q vs %q", left, right)
	}
}

func TestLiteralRendering(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"14", "14.000000"},
		{"[1, 2.5, 3]", "[1.000000, 2.500000, 3.000000]"},
		{"[[1, 2], [3, 4]]", "[[1.000000, 2.000000], [3.000000, 4.000000]]"},
		{"x => x * 2", "x => <function>"},
		{"(a, b) => a + b", "(a, b) => <function>"},
	}

	for i, tt := range tests {
		ev := NewStandard()
		if got := ev.InterpretString(tt.input); got != tt.expected {
			t.Fatalf("tests[%d] - %q: expected=%q, got=%q", i, tt.input, tt.expected, got)
		}
	}
}

func TestVectorElementsMustBeNumbers(t *testing.T) {
	ev := NewStandard()
	e := evalError(t, ev, "[1, x => x, 3]")
	if e.ErrorId != "eval/elem/vec" {
		t.Fatalf("wrong error id: %q", e.ErrorId)
	}
}

func TestSessionPersistence(t *testing.T) {
	ev := NewStandard()

	if got := ev.InterpretString("let x = 5"); got != "5.000000" {
		t.Fatalf("let: got %q", got)
	}
	if got := evalNumber(t, ev, "x + 10"); got != 15 {
		t.Fatalf("x + 10: got %v", got)
	}

	e := evalError(t, ev, "let x = 6")
	if e.ErrorId != "eval/let/exists" {
		t.Fatalf("redeclaration: wrong id %q", e.ErrorId)
	}
	if e.Kind() != object.DECLARATION_ERROR {
		t.Fatalf("redeclaration: wrong kind %q", e.Kind())
	}

	ev.Reset()
	e = evalError(t, ev, "x")
	if e.ErrorId != "eval/ident" {
		t.Fatalf("after reset: wrong id %q", e.ErrorId)
	}
	if got := evalNumber(t, ev, "let x = 1; x"); got != 1 {
		t.Fatalf("rebinding after reset: got %v", got)
	}
}

func TestClosuresCaptureByValue(t *testing.T) {
	ev := NewStandard()

	ev.Interpret("let x = 10")
	ev.Interpret("let f = y => x + y")

	// A fresh session-level mutation path: reset-free redefinition is an
	// error, so capture is probed through a second closure environment.
	if got := evalNumber(t, ev, "f(5)"); got != 15 {
		t.Fatalf("f(5): got %v", got)
	}

	// The closure's snapshot must not see bindings made after capture.
	ev.Interpret("let g = y => z * y")
	ev.Interpret("let z = 2")
	e := evalError(t, ev, "g(1)")
	if e.ErrorId != "eval/ident" {
		t.Fatalf("closure saw a later binding: %q", e.ErrorId)
	}
}

func TestLambdaApplication(t *testing.T) {
	ev := NewStandard()

	ev.Interpret("let double = x => x * 2")
	if got := evalNumber(t, ev, "double(21)"); got != 42 {
		t.Fatalf("double(21): got %v", got)
	}

	ev.Interpret("let add = (a, b) => a + b")
	if got := evalNumber(t, ev, "add(2, 3)"); got != 5 {
		t.Fatalf("add(2, 3): got %v", got)
	}

	e := evalError(t, ev, "add(2)")
	if e.ErrorId != "eval/arity/lambda" {
		t.Fatalf("wrong id: %q", e.ErrorId)
	}
	if e.Kind() != object.ARITY_ERROR {
		t.Fatalf("wrong kind: %q", e.Kind())
	}
}

func TestBuiltinArity(t *testing.T) {
	ev := NewStandard()

	e := evalError(t, ev, "sin(1, 2)")
	if e.ErrorId != "eval/arity" {
		t.Fatalf("wrong id: %q", e.ErrorId)
	}
	if !strings.Contains(e.Message, "'sin'") {
		t.Fatalf("message should name the function: %q", e.Message)
	}
}

func TestResolutionErrors(t *testing.T) {
	ev := NewStandard()

	if e := evalError(t, ev, "nonexistent"); e.ErrorId != "eval/ident" {
		t.Fatalf("wrong id: %q", e.ErrorId)
	}
	if e := evalError(t, ev, "nonexistent(1)"); e.ErrorId != "eval/found" {
		t.Fatalf("wrong id: %q", e.ErrorId)
	}
	ev.Interpret("let n = 5")
	if e := evalError(t, ev, "n(1)"); e.ErrorId != "eval/call/type" {
		t.Fatalf("wrong id: %q", e.ErrorId)
	}
}

func TestDivisionByZero(t *testing.T) {
	ev := NewStandard()

	for _, input := range []string{"5 / 0", "(2 + 3i) / 0", "vdiv([1, 2], [1, 0])"} {
		e := evalError(t, ev, input)
		if e.Kind() != object.DOMAIN_ERROR {
			t.Fatalf("%q: wrong kind %q (%s)", input, e.Kind(), e.Message)
		}
	}
}

func TestHigherOrderFunctions(t *testing.T) {
	ev := NewStandard()

	if got := ev.InterpretString("map(x => x * 2, [1, 2, 3])"); got != "[2.000000, 4.000000, 6.000000]" {
		t.Fatalf("map: got %q", got)
	}
	if got := evalNumber(t, ev, "reduce((a, b) => a + b, 0, [1, 2, 3, 4])"); got != 10 {
		t.Fatalf("reduce: got %v", got)
	}
	if got := ev.InterpretString("filter(x => x > 2, [1, 2, 3, 4])"); got != "[3.000000, 4.000000]" {
		t.Fatalf("filter: got %q", got)
	}

	// Multi-collection map truncates to the shortest collection.
	if got := ev.InterpretString("map((a, b) => a + b, [1, 2, 3], [10, 20])"); got != "[11.000000, 22.000000]" {
		t.Fatalf("two-collection map: got %q", got)
	}

	e := evalError(t, ev, "map((a, b) => a + b, [1, 2, 3])")
	if e.ErrorId != "built/hof/arity" {
		t.Fatalf("map arity: wrong id %q", e.ErrorId)
	}

	if got := evalNumber(t, ev, "pipe(3, x => x * 2, x => x + 1)"); got != 7 {
		t.Fatalf("pipe: got %v", got)
	}

	e = evalError(t, ev, "compose(sin(0))")
	if e.ErrorId != "built/compose" {
		t.Fatalf("compose: wrong id %q", e.ErrorId)
	}
}

func TestErrorStringForm(t *testing.T) {
	ev := NewStandard()
	got := ev.InterpretString("5 / 0")
	if got != "Error: division by zero" {
		t.Fatalf("host-facing error form: got %q", got)
	}
}

func TestFailedStatementKeepsEarlierBindings(t *testing.T) {
	ev := NewStandard()
	ev.Interpret("let a = 1; nonsense")
	if got := evalNumber(t, ev, "a"); got != 1 {
		t.Fatalf("binding lost: %v", got)
	}
}

func TestRecursionDepthGuard(t *testing.T) {
	ev := NewStandard()
	input := "0" + strings.Repeat(" + 0", MaxDepth+10)
	e := evalError(t, ev, input)
	if e.ErrorId != "eval/depth" {
		t.Fatalf("wrong id: %q", e.ErrorId)
	}
	if e.Kind() != object.DOMAIN_ERROR {
		t.Fatalf("wrong kind: %q", e.Kind())
	}
}
