package builtins

import (
	"math"
	"strings"

	"soc/object"
)

// Context is how a builtin reaches back into the evaluation that called
// it: Apply runs a user function against its captured environment. The
// evaluator passes itself in at every call, so there is no ambient
// "current evaluator" anywhere.
type Context interface {
	Apply(fn *object.Func, args []object.Object) object.Object
}

type Callable func(ctx Context, args []object.Object) object.Object

// Variadic marks a function whose argument count is checked by the
// function itself rather than by the evaluator.
const Variadic = -1

type Function struct {
	Name  string
	Arity int
	Fn    Callable
}

// FunctionRegistry and ConstantsRegistry are plain constructed objects;
// whoever builds an evaluator decides which registries it sees. Names
// are case-insensitive on both registration and lookup.
type FunctionRegistry struct {
	store map[string]Function
}

func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{store: make(map[string]Function)}
}

func (r *FunctionRegistry) Register(name string, arity int, fn Callable) {
	key := strings.ToLower(name)
	r.store[key] = Function{Name: key, Arity: arity, Fn: fn}
}

func (r *FunctionRegistry) Get(name string) (Function, bool) {
	f, ok := r.store[strings.ToLower(name)]
	return f, ok
}

func (r *FunctionRegistry) Exists(name string) bool {
	_, ok := r.store[strings.ToLower(name)]
	return ok
}

type ConstantsRegistry struct {
	store map[string]float64
}

func NewConstantsRegistry() *ConstantsRegistry {
	return &ConstantsRegistry{store: make(map[string]float64)}
}

func (r *ConstantsRegistry) Register(name string, value float64) {
	r.store[strings.ToLower(name)] = value
}

func (r *ConstantsRegistry) Get(name string) (object.Object, bool) {
	value, ok := r.store[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return &object.Number{Value: value}, true
}

func (r *ConstantsRegistry) Exists(name string) bool {
	_, ok := r.store[strings.ToLower(name)]
	return ok
}

func StandardConstants() *ConstantsRegistry {
	r := NewConstantsRegistry()
	r.Register("pi", math.Pi)
	r.Register("e", math.E)
	r.Register("phi", math.Phi)
	r.Register("goldenratio", math.Phi)
	r.Register("sqrt2", math.Sqrt2)
	r.Register("sqrt3", math.Sqrt(3))
	r.Register("ln2", math.Ln2)
	r.Register("ln10", math.Log(10))
	return r
}

// StandardFunctions assembles the whole builtin library. Hosts wanting a
// smaller or larger surface register against their own registry instead.
func StandardFunctions() *FunctionRegistry {
	r := NewFunctionRegistry()
	registerScalar(r)
	registerComplex(r)
	registerVector(r)
	registerMatrix(r)
	registerStatistics(r)
	registerHigherOrder(r)
	registerSignal(r)
	return r
}
