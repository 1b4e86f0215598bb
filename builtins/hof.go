package builtins

import (
	"soc/object"
)

// The higher-order builtins. Each takes the evaluation Context so it can
// apply the user's function; results flow back as ordinary objects, and
// an error from the applied function aborts the whole operation.

func registerHigherOrder(r *FunctionRegistry) {
	r.Register("map", Variadic, mapBuiltin)
	r.Register("filter", 2, filterBuiltin)
	r.Register("reduce", 3, reduceBuiltin)
	r.Register("pipe", Variadic, pipeBuiltin)
	r.Register("compose", Variadic, func(ctx Context, args []object.Object) object.Object {
		return &object.Error{ErrorId: "built/compose"}
	})
}

// map(f, v1, ..., vn) walks n parallel vectors, truncated to the
// shortest; f's parameter count must equal n.
func mapBuiltin(ctx Context, args []object.Object) object.Object {
	if len(args) < 2 {
		return &object.Error{ErrorId: "eval/arity", Info: []any{"map", 2, len(args)}}
	}
	fn, err := argFunc("map", 0, args)
	if err != nil {
		return err
	}
	collections := make([][]float64, len(args)-1)
	shortest := -1
	for i := 1; i < len(args); i++ {
		v, err := argVec("map", i, args)
		if err != nil {
			return err
		}
		collections[i-1] = v
		if shortest < 0 || len(v) < shortest {
			shortest = len(v)
		}
	}
	if len(fn.Parameters) != len(collections) {
		return &object.Error{ErrorId: "built/hof/arity", Info: []any{len(fn.Parameters), len(collections)}}
	}
	elements := make([]float64, shortest)
	callArgs := make([]object.Object, len(collections))
	for i := 0; i < shortest; i++ {
		for j, c := range collections {
			callArgs[j] = &object.Number{Value: c[i]}
		}
		result := ctx.Apply(fn, callArgs)
		if result.Type() == object.ERROR_OBJ {
			return result
		}
		n, ok := result.(*object.Number)
		if !ok {
			return &object.Error{ErrorId: "built/hof/result", Info: []any{"map", object.EmphType(result)}}
		}
		elements[i] = n.Value
	}
	return &object.Vector{Elements: elements}
}

func filterBuiltin(ctx Context, args []object.Object) object.Object {
	fn, err := argFunc("filter", 0, args)
	if err != nil {
		return err
	}
	v, err := argVec("filter", 1, args)
	if err != nil {
		return err
	}
	if len(fn.Parameters) != 1 {
		return &object.Error{ErrorId: "built/hof/arity", Info: []any{len(fn.Parameters), 1}}
	}
	elements := []float64{}
	for _, e := range v {
		result := ctx.Apply(fn, []object.Object{&object.Number{Value: e}})
		if result.Type() == object.ERROR_OBJ {
			return result
		}
		n, ok := result.(*object.Number)
		if !ok {
			return &object.Error{ErrorId: "built/hof/result", Info: []any{"filter", object.EmphType(result)}}
		}
		if n.Value != 0 {
			elements = append(elements, e)
		}
	}
	return &object.Vector{Elements: elements}
}

// reduce(f, seed, v) folds left with a binary f and a scalar seed.
func reduceBuiltin(ctx Context, args []object.Object) object.Object {
	fn, err := argFunc("reduce", 0, args)
	if err != nil {
		return err
	}
	if len(fn.Parameters) != 2 {
		return &object.Error{ErrorId: "built/hof/binary", Info: []any{len(fn.Parameters)}}
	}
	seed, ok := args[1].(*object.Number)
	if !ok {
		return &object.Error{ErrorId: "built/hof/seed", Info: []any{object.EmphType(args[1])}}
	}
	v, err := argVec("reduce", 2, args)
	if err != nil {
		return err
	}
	acc := seed.Value
	for _, e := range v {
		result := ctx.Apply(fn, []object.Object{&object.Number{Value: acc}, &object.Number{Value: e}})
		if result.Type() == object.ERROR_OBJ {
			return result
		}
		n, ok := result.(*object.Number)
		if !ok {
			return &object.Error{ErrorId: "built/hof/result", Info: []any{"reduce", object.EmphType(result)}}
		}
		acc = n.Value
	}
	return &object.Number{Value: acc}
}

// pipe(x, f1, f2, ...) threads x through each unary function in turn.
func pipeBuiltin(ctx Context, args []object.Object) object.Object {
	if len(args) < 2 {
		return &object.Error{ErrorId: "eval/arity", Info: []any{"pipe", 2, len(args)}}
	}
	value := args[0]
	for i := 1; i < len(args); i++ {
		fn, err := argFunc("pipe", i, args)
		if err != nil {
			return err
		}
		if len(fn.Parameters) != 1 {
			return &object.Error{ErrorId: "built/hof/arity", Info: []any{len(fn.Parameters), 1}}
		}
		value = ctx.Apply(fn, []object.Object{value})
		if value.Type() == object.ERROR_OBJ {
			return value
		}
	}
	return value
}
