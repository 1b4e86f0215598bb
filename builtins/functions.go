package builtins

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"soc/object"
)

// Argument plucking. The errors come back unstamped, like everything
// else below; the evaluator adds the call token.

func argNum(name string, i int, args []object.Object) (float64, *object.Error) {
	n, ok := args[i].(*object.Number)
	if !ok {
		return 0, &object.Error{ErrorId: "built/arg/num", Info: []any{i + 1, name, object.EmphType(args[i])}}
	}
	return n.Value, nil
}

func argInt(name string, i int, args []object.Object) (int, *object.Error) {
	f, err := argNum(name, i, args)
	if err != nil {
		return 0, err
	}
	if f < 0 || f != math.Trunc(f) {
		return 0, &object.Error{ErrorId: "built/arg/int", Info: []any{i + 1, name}}
	}
	return int(f), nil
}

func argVec(name string, i int, args []object.Object) ([]float64, *object.Error) {
	v, ok := args[i].(*object.Vector)
	if !ok {
		return nil, &object.Error{ErrorId: "built/arg/vec", Info: []any{i + 1, name, object.EmphType(args[i])}}
	}
	return v.Elements, nil
}

func argMat(name string, i int, args []object.Object) (*object.Matrix, *object.Error) {
	m, ok := args[i].(*object.Matrix)
	if !ok {
		return nil, &object.Error{ErrorId: "built/arg/mat", Info: []any{i + 1, name, object.EmphType(args[i])}}
	}
	return m, nil
}

func argFunc(name string, i int, args []object.Object) (*object.Func, *object.Error) {
	f, ok := args[i].(*object.Func)
	if !ok {
		return nil, &object.Error{ErrorId: "built/arg/func", Info: []any{i + 1, name, object.EmphType(args[i])}}
	}
	return f, nil
}

// argCx widens a Number argument to complex.
func argCx(name string, i int, args []object.Object) (complex128, *object.Error) {
	switch a := args[i].(type) {
	case *object.Number:
		return complex(a.Value, 0), nil
	case *object.Complex:
		return a.Value, nil
	}
	return 0, &object.Error{ErrorId: "built/arg/num", Info: []any{i + 1, name, object.EmphType(args[i])}}
}

func wrap1(name string, fn func(float64) float64) Callable {
	return func(ctx Context, args []object.Object) object.Object {
		x, err := argNum(name, 0, args)
		if err != nil {
			return err
		}
		return &object.Number{Value: fn(x)}
	}
}

func wrap2(name string, fn func(float64, float64) float64) Callable {
	return func(ctx Context, args []object.Object) object.Object {
		x, err := argNum(name, 0, args)
		if err != nil {
			return err
		}
		y, err := argNum(name, 1, args)
		if err != nil {
			return err
		}
		return &object.Number{Value: fn(x, y)}
	}
}

func wrapLog(name string, fn func(float64) float64) Callable {
	return func(ctx Context, args []object.Object) object.Object {
		x, err := argNum(name, 0, args)
		if err != nil {
			return err
		}
		if x <= 0 {
			return &object.Error{ErrorId: "built/log/zero"}
		}
		return &object.Number{Value: fn(x)}
	}
}

func registerScalar(r *FunctionRegistry) {
	r.Register("sin", 1, wrap1("sin", math.Sin))
	r.Register("cos", 1, wrap1("cos", math.Cos))
	r.Register("tan", 1, wrap1("tan", math.Tan))
	r.Register("asin", 1, wrap1("asin", math.Asin))
	r.Register("acos", 1, wrap1("acos", math.Acos))
	r.Register("atan", 1, wrap1("atan", math.Atan))
	r.Register("atan2", 2, wrap2("atan2", math.Atan2))
	r.Register("sinh", 1, wrap1("sinh", math.Sinh))
	r.Register("cosh", 1, wrap1("cosh", math.Cosh))
	r.Register("tanh", 1, wrap1("tanh", math.Tanh))
	r.Register("exp", 1, wrap1("exp", math.Exp))
	r.Register("log", 1, wrapLog("log", math.Log))
	r.Register("ln", 1, wrapLog("ln", math.Log))
	r.Register("log10", 1, wrapLog("log10", math.Log10))
	r.Register("log2", 1, wrapLog("log2", math.Log2))
	r.Register("sqrt", 1, wrap1("sqrt", math.Sqrt))
	r.Register("cbrt", 1, wrap1("cbrt", math.Cbrt))
	r.Register("pow", 2, wrap2("pow", math.Pow))
	r.Register("floor", 1, wrap1("floor", math.Floor))
	r.Register("ceil", 1, wrap1("ceil", math.Ceil))
	r.Register("round", 1, wrap1("round", math.Round))
	r.Register("trunc", 1, wrap1("trunc", math.Trunc))
	r.Register("sign", 1, wrap1("sign", func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		}
		return 0
	}))
	r.Register("deg", 1, wrap1("deg", func(x float64) float64 { return x * 180 / math.Pi }))
	r.Register("rad", 1, wrap1("rad", func(x float64) float64 { return x * math.Pi / 180 }))

	// abs doubles as complex magnitude.
	r.Register("abs", 1, func(ctx Context, args []object.Object) object.Object {
		switch a := args[0].(type) {
		case *object.Number:
			return &object.Number{Value: math.Abs(a.Value)}
		case *object.Complex:
			return &object.Number{Value: cmplx.Abs(a.Value)}
		}
		return &object.Error{ErrorId: "built/arg/num", Info: []any{1, "abs", object.EmphType(args[0])}}
	})
}

func registerComplex(r *FunctionRegistry) {
	r.Register("complex", 2, func(ctx Context, args []object.Object) object.Object {
		re, err := argNum("complex", 0, args)
		if err != nil {
			return err
		}
		im, err := argNum("complex", 1, args)
		if err != nil {
			return err
		}
		return &object.Complex{Value: complex(re, im)}
	})
	r.Register("real", 1, func(ctx Context, args []object.Object) object.Object {
		z, err := argCx("real", 0, args)
		if err != nil {
			return err
		}
		return &object.Number{Value: real(z)}
	})
	r.Register("imag", 1, func(ctx Context, args []object.Object) object.Object {
		z, err := argCx("imag", 0, args)
		if err != nil {
			return err
		}
		return &object.Number{Value: imag(z)}
	})
	r.Register("conj", 1, func(ctx Context, args []object.Object) object.Object {
		z, err := argCx("conj", 0, args)
		if err != nil {
			return err
		}
		return &object.Complex{Value: cmplx.Conj(z)}
	})
	r.Register("arg", 1, func(ctx Context, args []object.Object) object.Object {
		z, err := argCx("arg", 0, args)
		if err != nil {
			return err
		}
		return &object.Number{Value: cmplx.Phase(z)}
	})
}

func registerVector(r *FunctionRegistry) {
	r.Register("dot", 2, func(ctx Context, args []object.Object) object.Object {
		a, err := argVec("dot", 0, args)
		if err != nil {
			return err
		}
		b, err := argVec("dot", 1, args)
		if err != nil {
			return err
		}
		if len(a) != len(b) {
			return &object.Error{ErrorId: "built/dot/len", Info: []any{"dot", len(a), len(b)}}
		}
		return &object.Number{Value: floats.Dot(a, b)}
	})
	r.Register("cross", 2, func(ctx Context, args []object.Object) object.Object {
		a, err := argVec("cross", 0, args)
		if err != nil {
			return err
		}
		b, err := argVec("cross", 1, args)
		if err != nil {
			return err
		}
		if len(a) != 3 || len(b) != 3 {
			return &object.Error{ErrorId: "built/cross/dim", Info: []any{len(a), len(b)}}
		}
		return &object.Vector{Elements: []float64{
			a[1]*b[2] - a[2]*b[1],
			a[2]*b[0] - a[0]*b[2],
			a[0]*b[1] - a[1]*b[0],
		}}
	})
	r.Register("norm", 1, func(ctx Context, args []object.Object) object.Object {
		v, err := argVec("norm", 0, args)
		if err != nil {
			return err
		}
		return &object.Number{Value: floats.Norm(v, 2)}
	})
	r.Register("normalize", 1, func(ctx Context, args []object.Object) object.Object {
		v, err := argVec("normalize", 0, args)
		if err != nil {
			return err
		}
		length := floats.Norm(v, 2)
		if length == 0 {
			return &object.Error{ErrorId: "built/norm/zero"}
		}
		elements := make([]float64, len(v))
		for i, e := range v {
			elements[i] = e / length
		}
		return &object.Vector{Elements: elements}
	})
	r.Register("vadd", 2, elementwise("vadd", func(a, b float64) (float64, bool) { return a + b, true }))
	r.Register("vsub", 2, elementwise("vsub", func(a, b float64) (float64, bool) { return a - b, true }))
	r.Register("vmul", 2, elementwise("vmul", func(a, b float64) (float64, bool) { return a * b, true }))
	r.Register("vdiv", 2, elementwise("vdiv", func(a, b float64) (float64, bool) { return a / b, b != 0 }))
	r.Register("vscale", 2, func(ctx Context, args []object.Object) object.Object {
		v, err := argVec("vscale", 0, args)
		if err != nil {
			return err
		}
		s, err := argNum("vscale", 1, args)
		if err != nil {
			return err
		}
		elements := make([]float64, len(v))
		for i, e := range v {
			elements[i] = e * s
		}
		return &object.Vector{Elements: elements}
	})
}

func elementwise(name string, op func(a, b float64) (float64, bool)) Callable {
	return func(ctx Context, args []object.Object) object.Object {
		a, err := argVec(name, 0, args)
		if err != nil {
			return err
		}
		b, err := argVec(name, 1, args)
		if err != nil {
			return err
		}
		if len(a) != len(b) {
			return &object.Error{ErrorId: "built/vec/len", Info: []any{name, len(a), len(b)}}
		}
		elements := make([]float64, len(a))
		for i := range a {
			result, ok := op(a[i], b[i])
			if !ok {
				return &object.Error{ErrorId: "built/div/zero", Info: []any{i, name}}
			}
			elements[i] = result
		}
		return &object.Vector{Elements: elements}
	}
}

func registerMatrix(r *FunctionRegistry) {
	r.Register("transpose", 1, func(ctx Context, args []object.Object) object.Object {
		m, err := argMat("transpose", 0, args)
		if err != nil {
			return err
		}
		result := object.NewMatrix(m.Cols, m.Rows)
		for i := 0; i < m.Rows; i++ {
			for j := 0; j < m.Cols; j++ {
				result.Set(j, i, m.At(i, j))
			}
		}
		return result
	})
	r.Register("det", 1, func(ctx Context, args []object.Object) object.Object {
		m, err := argMat("det", 0, args)
		if err != nil {
			return err
		}
		if m.Rows != m.Cols {
			return &object.Error{ErrorId: "built/mat/square", Info: []any{"det", m.Rows, m.Cols}}
		}
		return &object.Number{Value: mat.Det(mat.NewDense(m.Rows, m.Cols, m.Cells))}
	})
	r.Register("inverse", 1, func(ctx Context, args []object.Object) object.Object {
		m, err := argMat("inverse", 0, args)
		if err != nil {
			return err
		}
		if m.Rows != m.Cols {
			return &object.Error{ErrorId: "built/mat/square", Info: []any{"inverse", m.Rows, m.Cols}}
		}
		var inv mat.Dense
		if invErr := inv.Inverse(mat.NewDense(m.Rows, m.Cols, m.Cells)); invErr != nil {
			return &object.Error{ErrorId: "built/mat/singular"}
		}
		result := object.NewMatrix(m.Rows, m.Cols)
		for i := 0; i < m.Rows; i++ {
			copy(result.Row(i), inv.RawRowView(i))
		}
		return result
	})
	r.Register("trace", 1, func(ctx Context, args []object.Object) object.Object {
		m, err := argMat("trace", 0, args)
		if err != nil {
			return err
		}
		if m.Rows != m.Cols {
			return &object.Error{ErrorId: "built/mat/square", Info: []any{"trace", m.Rows, m.Cols}}
		}
		return &object.Number{Value: mat.Trace(mat.NewDense(m.Rows, m.Cols, m.Cells))}
	})
}

func registerStatistics(r *FunctionRegistry) {
	r.Register("sum", 1, func(ctx Context, args []object.Object) object.Object {
		v, err := argVec("sum", 0, args)
		if err != nil {
			return err
		}
		return &object.Number{Value: floats.Sum(v)}
	})
	r.Register("mean", 1, func(ctx Context, args []object.Object) object.Object {
		v, err := argVec("mean", 0, args)
		if err != nil {
			return err
		}
		if len(v) == 0 {
			return &object.Error{ErrorId: "built/vec/empty", Info: []any{"mean"}}
		}
		return &object.Number{Value: stat.Mean(v, nil)}
	})
	// Population standard deviation, the 1/N kind.
	r.Register("std", 1, func(ctx Context, args []object.Object) object.Object {
		v, err := argVec("std", 0, args)
		if err != nil {
			return err
		}
		if len(v) == 0 {
			return &object.Error{ErrorId: "built/vec/empty", Info: []any{"std"}}
		}
		return &object.Number{Value: stat.PopStdDev(v, nil)}
	})
	r.Register("max", Variadic, extremum("max", floats.Max, math.Max))
	r.Register("min", Variadic, extremum("min", floats.Min, math.Min))
}

// max and min take either a single vector or two or more numbers.
func extremum(name string, fold func([]float64) float64, pair func(float64, float64) float64) Callable {
	return func(ctx Context, args []object.Object) object.Object {
		if len(args) == 1 {
			v, err := argVec(name, 0, args)
			if err != nil {
				return err
			}
			if len(v) == 0 {
				return &object.Error{ErrorId: "built/vec/empty", Info: []any{name}}
			}
			return &object.Number{Value: fold(v)}
		}
		if len(args) < 2 {
			return &object.Error{ErrorId: "eval/arity", Info: []any{name, 2, len(args)}}
		}
		best, err := argNum(name, 0, args)
		if err != nil {
			return err
		}
		for i := 1; i < len(args); i++ {
			x, err := argNum(name, i, args)
			if err != nil {
				return err
			}
			best = pair(best, x)
		}
		return &object.Number{Value: best}
	}
}
