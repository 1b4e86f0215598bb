package evaluator

import (
	"soc/ast"
	"soc/builtins"
	"soc/object"
	"soc/parser"
	"soc/token"
)

// MaxDepth bounds Eval's recursion so runaway self-application reports
// an error instead of exhausting the goroutine stack.
const MaxDepth = 1000

// An Evaluator is one persistent session: its environment survives
// across Interpret calls, and any statement that made a lambda is
// retained so the closure's body outlives the statement. Registries are
// injected and shared read-only; the Evaluator itself is single-walker.
type Evaluator struct {
	Functions *builtins.FunctionRegistry
	Constants *builtins.ConstantsRegistry
	Env       *object.Environment
	retained  []ast.Node
	depth     int
}

func New(functions *builtins.FunctionRegistry, constants *builtins.ConstantsRegistry) *Evaluator {
	return &Evaluator{
		Functions: functions,
		Constants: constants,
		Env:       object.NewEnvironment(),
	}
}

// NewStandard is the everything-registered convenience constructor.
func NewStandard() *Evaluator {
	return New(builtins.StandardFunctions(), builtins.StandardConstants())
}

// Interpret runs one input, a ';'-separated sequence of statements, and
// returns the last value. A failed statement aborts the rest of the
// input; bindings made by earlier statements in the same input stand.
func (ev *Evaluator) Interpret(input string) object.Object {
	statements, ers := parser.Parse(input)
	if len(ers) > 0 {
		return ers[0]
	}
	var result object.Object
	for _, statement := range statements {
		result = ev.Eval(statement, ev.Env)
		if isError(result) {
			break
		}
	}
	for _, statement := range statements {
		if ast.HasLambda(statement) {
			ev.retained = append(ev.retained, statement)
		}
	}
	return result
}

// InterpretString is the host-facing entry point: the rendered value, or
// "Error: <message>".
func (ev *Evaluator) InterpretString(input string) string {
	return ev.Interpret(input).Inspect()
}

// Reset empties the session: all bindings gone, retained trees released.
func (ev *Evaluator) Reset() {
	ev.Env.Reset()
	ev.retained = nil
}

func (ev *Evaluator) Eval(node ast.Node, env *object.Environment) object.Object {
	ev.depth++
	defer func() { ev.depth-- }()
	if ev.depth > MaxDepth {
		return newError("eval/depth", node.GetToken())
	}

	switch node := node.(type) {

	case *ast.NumberLiteral:
		return &object.Number{Value: node.Value}

	case *ast.ComplexLiteral:
		return &object.Complex{Value: complex(node.Real, node.Imag)}

	case *ast.Identifier:
		if value, ok := env.Get(node.Value); ok {
			return value
		}
		if value, ok := ev.Constants.Get(node.Value); ok {
			return value
		}
		return newError("eval/ident", node.Token, node.Value)

	case *ast.PrefixExpression:
		right := ev.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return stamp(object.Negate(right), node.Token)

	case *ast.InfixExpression:
		left := ev.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := ev.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		switch node.Operator {
		case token.GT, token.LT, token.GT_EQ, token.LT_EQ, token.EQ, token.NOT_EQ:
			return stamp(object.Compare(node.Operator, left, right), node.Token)
		default:
			return stamp(object.BinaryOperation(node.Operator, left, right), node.Token)
		}

	case *ast.VectorLiteral:
		elements := make([]float64, len(node.Elements))
		for i, e := range node.Elements {
			value := ev.Eval(e, env)
			if isError(value) {
				return value
			}
			number, ok := value.(*object.Number)
			if !ok {
				return newError("eval/elem/vec", e.GetToken(), object.EmphType(value))
			}
			elements[i] = number.Value
		}
		return &object.Vector{Elements: elements}

	case *ast.MatrixLiteral:
		rows := len(node.Rows)
		cols := 0
		if rows > 0 {
			cols = len(node.Rows[0])
		}
		result := object.NewMatrix(rows, cols)
		for i, row := range node.Rows {
			for j, e := range row {
				value := ev.Eval(e, env)
				if isError(value) {
					return value
				}
				number, ok := value.(*object.Number)
				if !ok {
					return newError("eval/elem/mat", e.GetToken(), object.EmphType(value))
				}
				result.Set(i, j, number.Value)
			}
		}
		return result

	case *ast.LetStatement:
		if env.ExistsHere(node.Name) {
			return newError("eval/let/exists", node.Token, node.Name)
		}
		value := ev.Eval(node.Value, env)
		if isError(value) {
			return value
		}
		env.Define(node.Name, value)
		return value

	case *ast.LambdaLiteral:
		return &object.Func{Parameters: node.Parameters, Body: node.Body, Env: env.Snapshot()}

	case *ast.CallExpression:
		return ev.evalCall(node, env)
	}

	return newError("eval/node", node.GetToken())
}

// A zero-argument call resolves as a constant before anything else, so
// 'pi()' works even where a variable shadows the name. After that a
// local Function value wins over the builtin registry.
func (ev *Evaluator) evalCall(node *ast.CallExpression, env *object.Environment) object.Object {
	if len(node.Args) == 0 {
		if value, ok := ev.Constants.Get(node.Name); ok {
			return value
		}
	}

	if value, ok := env.Get(node.Name); ok {
		fn, ok := value.(*object.Func)
		if !ok {
			return newError("eval/call/type", node.Token, object.EmphType(value))
		}
		args, err := ev.evalArgs(node, env)
		if err != nil {
			return err
		}
		return stamp(ev.Apply(fn, args), node.Token)
	}

	builtin, ok := ev.Functions.Get(node.Name)
	if !ok {
		return newError("eval/found", node.Token, node.Name)
	}
	if builtin.Arity != builtins.Variadic && builtin.Arity != len(node.Args) {
		return newError("eval/arity", node.Token, builtin.Name, builtin.Arity, len(node.Args))
	}
	args, err := ev.evalArgs(node, env)
	if err != nil {
		return err
	}
	return stamp(builtin.Fn(ev, args), node.Token)
}

func (ev *Evaluator) evalArgs(node *ast.CallExpression, env *object.Environment) ([]object.Object, object.Object) {
	args := make([]object.Object, len(node.Args))
	for i, a := range node.Args {
		value := ev.Eval(a, env)
		if isError(value) {
			return nil, value
		}
		args[i] = value
	}
	return args, nil
}

// Apply invokes a user function: a fresh call environment on top of the
// captured snapshot, parameters bound positionally, the body walked
// against it. Builtins re-enter evaluation through this method, which is
// what makes it the builtins.Context implementation.
func (ev *Evaluator) Apply(fn *object.Func, args []object.Object) object.Object {
	if len(fn.Parameters) != len(args) {
		return &object.Error{ErrorId: "eval/arity/lambda", Info: []any{len(fn.Parameters), len(args)}}
	}
	callEnv := object.NewEnvironment()
	callEnv.Ext = fn.Env
	for i, parameter := range fn.Parameters {
		callEnv.Store[parameter] = args[i]
	}
	return ev.Eval(fn.Body, callEnv)
}

func newError(ident string, tok token.Token, args ...any) *object.Error {
	return object.CreateErr(ident, tok, args...)
}

// stamp adds the token to an unstamped error from the object layer or a
// builtin; anything else passes through untouched.
func stamp(result object.Object, tok token.Token) object.Object {
	if err, ok := result.(*object.Error); ok {
		return err.Stamp(tok)
	}
	return result
}

func isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == object.ERROR_OBJ
	}
	return false
}
