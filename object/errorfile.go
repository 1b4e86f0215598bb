package object

import (
	"fmt"
	"strconv"

	"soc/text"
	"soc/token"
)

// The error kinds the host can discriminate on. Every error identifier
// maps to exactly one kind through its entry in ErrorCreatorMap.
type ErrorKind string

const (
	LEX_ERROR         ErrorKind = "lexical"
	SYNTAX_ERROR      ErrorKind = "syntax"
	DECLARATION_ERROR ErrorKind = "declaration"
	RESOLUTION_ERROR  ErrorKind = "resolution"
	ARITY_ERROR       ErrorKind = "arity"
	TYPE_ERROR        ErrorKind = "type"
	DOMAIN_ERROR      ErrorKind = "domain"
)

type ErrorCreator struct {
	Kind    ErrorKind
	Message func(tok token.Token, args ...any) string
}

func kindOf(ident string) ErrorKind {
	if creator, ok := ErrorCreatorMap[ident]; ok {
		return creator.Kind
	}
	return TYPE_ERROR
}

// A map from error identifiers to the functions that supply the
// corresponding error messages.
//
// Errors in the map are in alphabetical order of their identifiers.
//
// Major categories are built, eval, handle, lex, and parse.
//
// Two otherwise identical errors thrown in different places in the Go code
// must be assigned different identifiers, if only by suffixing /a, /b, etc
// to the identifier.
var ErrorCreatorMap = map[string]ErrorCreator{

	"built/arg/func": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "argument " + strconv.Itoa(args[0].(int)) + " of '" + args[1].(string) +
				"' must be a function, not " + args[2].(string)
		},
	},

	"built/arg/int": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "argument " + strconv.Itoa(args[0].(int)) + " of '" + args[1].(string) +
				"' must be a non-negative integer"
		},
	},

	"built/arg/mat": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "argument " + strconv.Itoa(args[0].(int)) + " of '" + args[1].(string) +
				"' must be a matrix, not " + args[2].(string)
		},
	},

	"built/arg/num": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "argument " + strconv.Itoa(args[0].(int)) + " of '" + args[1].(string) +
				"' must be a number, not " + args[2].(string)
		},
	},

	"built/arg/vec": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "argument " + strconv.Itoa(args[0].(int)) + " of '" + args[1].(string) +
				"' must be a vector, not " + args[2].(string)
		},
	},

	"built/compose": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'compose' is not implemented; apply the functions with 'pipe' instead"
		},
	},

	"built/conv/empty": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'" + args[0].(string) + "' needs two non-empty signals"
		},
	},

	"built/cross/dim": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'cross' needs two vectors of dimension 3, got " +
				strconv.Itoa(args[0].(int)) + " and " + strconv.Itoa(args[1].(int))
		},
	},

	"built/div/zero": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "division by zero at element " + strconv.Itoa(args[0].(int)) + " of '" + args[1].(string) + "'"
		},
	},

	"built/dot/len": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'" + args[0].(string) + "' needs vectors of equal length, got " +
				strconv.Itoa(args[1].(int)) + " and " + strconv.Itoa(args[2].(int))
		},
	},

	"built/fft/format": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'" + args[0].(string) + "' needs an N-by-2 spectrum matrix of (real, imag) rows"
		},
	},

	"built/fft/fs": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'fft_spectrum' needs a positive sampling frequency"
		},
	},

	"built/hof/arity": {
		Kind: ARITY_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "got a function of " + strconv.Itoa(args[0].(int)) +
				" parameter(s) where one of " + strconv.Itoa(args[1].(int)) + " was needed"
		},
	},

	"built/hof/binary": {
		Kind: ARITY_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'reduce' needs a binary function, got one of " +
				strconv.Itoa(args[0].(int)) + " parameter(s)"
		},
	},

	"built/hof/result": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "the function passed to '" + args[0].(string) + "' returned " +
				args[1].(string) + " where a number was needed"
		},
	},

	"built/hof/seed": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'reduce' needs a number as its seed, not " + args[0].(string)
		},
	},

	"built/log/zero": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "logarithm of a non-positive number"
		},
	},

	"built/mat/singular": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'inverse' applied to a singular matrix"
		},
	},

	"built/mat/square": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'" + args[0].(string) + "' needs a square matrix, got " +
				strconv.Itoa(args[1].(int)) + "-by-" + strconv.Itoa(args[2].(int))
		},
	},

	"built/norm/zero": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'normalize' applied to a zero vector"
		},
	},

	"built/vec/empty": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'" + args[0].(string) + "' needs a non-empty vector"
		},
	},

	"built/vec/len": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'" + args[0].(string) + "' needs vectors of equal length, got " +
				strconv.Itoa(args[1].(int)) + " and " + strconv.Itoa(args[2].(int))
		},
	},

	"built/window/size": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'" + args[0].(string) + "' needs a positive whole number of samples"
		},
	},

	"eval/arity": {
		Kind: ARITY_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'" + args[0].(string) + "' takes " + strconv.Itoa(args[1].(int)) +
				" argument(s), got " + strconv.Itoa(args[2].(int))
		},
	},

	"eval/arity/lambda": {
		Kind: ARITY_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "function of " + strconv.Itoa(args[0].(int)) +
				" parameter(s) applied to " + strconv.Itoa(args[1].(int)) + " argument(s)"
		},
	},

	"eval/call/type": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "can't call a value of type " + args[0].(string)
		},
	},

	"eval/depth": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "evaluation nested too deeply"
		},
	},

	"eval/elem/mat": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "matrix elements must be numbers, got " + args[0].(string)
		},
	},

	"eval/elem/vec": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "vector elements must be numbers, got " + args[0].(string)
		},
	},

	"eval/found": {
		Kind: RESOLUTION_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "unknown function '" + args[0].(string) + "'"
		},
	},

	"eval/ident": {
		Kind: RESOLUTION_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "undefined name '" + args[0].(string) + "'"
		},
	},

	"eval/let/exists": {
		Kind: DECLARATION_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'" + args[0].(string) + "' has already been declared"
		},
	},

	"eval/mat/mul": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "can't multiply a " + strconv.Itoa(args[0].(int)) + "-by-" + strconv.Itoa(args[1].(int)) +
				" matrix by a " + strconv.Itoa(args[2].(int)) + "-by-" + strconv.Itoa(args[3].(int)) + " matrix"
		},
	},

	"eval/mat/shape": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "matrices of different shapes: " +
				strconv.Itoa(args[0].(int)) + "-by-" + strconv.Itoa(args[1].(int)) + " and " +
				strconv.Itoa(args[2].(int)) + "-by-" + strconv.Itoa(args[3].(int))
		},
	},

	"eval/math/div": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "division by zero"
		},
	},

	"eval/math/mod": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "modulo by zero"
		},
	},

	"eval/node": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "can't evaluate " + text.DescribeTok(tok)
		},
	},

	"eval/op/compare": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return text.DescribeTok(tok) + " can only compare numbers, not " +
				args[0].(string) + " and " + args[1].(string)
		},
	},

	"eval/op/negate": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "can't negate a value of type " + args[0].(string)
		},
	},

	"eval/op/type": {
		Kind: TYPE_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return text.DescribeTok(tok) + " is not defined for " +
				args[0].(string) + " and " + args[1].(string)
		},
	},

	"eval/vec/len": {
		Kind: DOMAIN_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "vectors of different lengths: " +
				strconv.Itoa(args[0].(int)) + " and " + strconv.Itoa(args[1].(int))
		},
	},

	"handle/unknown": {
		Kind: RESOLUTION_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "no value held for handle " + fmt.Sprint(args[0])
		},
	},

	"lex/char": {
		Kind: LEX_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "unrecognized character " + text.DescribeTok(tok)
		},
	},

	"lex/num": {
		Kind: LEX_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "can't read " + text.DescribeTok(tok) + " as a number"
		},
	},

	"lex/num/exp": {
		Kind: LEX_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "a number's exponent must have digits"
		},
	},

	"parse/eof": {
		Kind: SYNTAX_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "unexpected end of input"
		},
	},

	"parse/expect": {
		Kind: SYNTAX_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "expected " + text.DescribeType(args[0].(token.TokenType)) +
				", got " + text.DescribeTok(tok)
		},
	},

	"parse/imag": {
		Kind: SYNTAX_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'(...)i' is not supported; multiply by 'i' instead, as in '(2+3)*i'"
		},
	},

	"parse/let/ident": {
		Kind: SYNTAX_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "'let' must be followed by a name, got " + text.DescribeTok(tok)
		},
	},

	"parse/matrix/row": {
		Kind: SYNTAX_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "matrix row " + strconv.Itoa(args[0].(int)) + " has " +
				strconv.Itoa(args[1].(int)) + " element(s) where " +
				strconv.Itoa(args[2].(int)) + " were expected"
		},
	},

	"parse/prefix": {
		Kind: SYNTAX_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "unexpected " + text.DescribeTok(tok) + " at the start of an expression"
		},
	},

	"parse/trailing": {
		Kind: SYNTAX_ERROR,
		Message: func(tok token.Token, args ...any) string {
			return "unexpected " + text.DescribeTok(tok) + " after the end of the expression"
		},
	},
}
