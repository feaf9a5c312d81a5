// Package token defines the three-layer token model of spec §3: surface
// pre-tokens produced by the lexer, core value carriers, and core operator
// nodes. The TokenType grouping style (constants grouped by category, with
// a doc comment per token) follows CWBudde-go-dws/internal/lexer/token_type.go.
package token

// Operator enumerates every surface and canonical operator, in the fixed
// precedence total order of spec §3 (low to high), except Define, which is
// listed last but binds loosest of all (see precedenceLevel). Subtract/Add and
// Divide/Multiply compare equal (left-associative tie), which Precedence
// encodes by giving them the same numeric level.
type Operator int

const (
	ModuloLong Operator = iota // surface-only: "a mod b" spelled with the word, lowered to Modulo
	UnitConvert                // "to": binary, lowered: none (canonical)
	Subtract                   // surface-only: lowered to Add(a, Negative(b))
	Add                        // canonical: variadic sum
	Divide                     // surface-only: lowered to Multiply(a, Flip(b))
	Multiply                   // canonical: variadic product
	Modulo                     // canonical: binary
	Negative                   // canonical: prefix unary
	Sqrt                       // surface-only: lowered to Power(a, 1/2)
	ImplicitMultiply           // surface-only: lowered to Multiply(a, b)
	Power                      // canonical: binary
	Factorial                  // canonical: postfix unary
	Function                   // canonical: prefix unary, parameterized by name
	Flip                       // canonical: internal reciprocal, synthesized during divide-lowering
	Define                     // canonical: binary, "var := value"
)

// precedenceLevel groups operators that tie for associativity purposes.
// Subtract ties with Add; Divide ties with Multiply. All other operators
// have a unique level.
var precedenceLevel = map[Operator]int{
	ModuloLong:       0,
	UnitConvert:      1,
	Subtract:         2,
	Add:              2,
	Divide:           3,
	Multiply:         3,
	Modulo:           4,
	Negative:         5,
	Sqrt:             6,
	ImplicitMultiply: 7,
	Power:            8,
	Factorial:        9,
	Function:         10,
	Flip:             11,
	Define:           -1,
}

// Precedence returns op's precedence level; higher binds tighter.
func Precedence(op Operator) int {
	return precedenceLevel[op]
}

// Fixity classifies how an operator attaches to its operands.
type Fixity int

const (
	Binary Fixity = iota
	PrefixUnary
	PostfixUnary
)

var fixityOf = map[Operator]Fixity{
	ModuloLong:       Binary,
	UnitConvert:      Binary,
	Subtract:         Binary,
	Add:              Binary,
	Divide:           Binary,
	Multiply:         Binary,
	Modulo:           Binary,
	Negative:         PrefixUnary,
	Sqrt:             PrefixUnary,
	ImplicitMultiply: Binary,
	Power:            Binary,
	Factorial:        PostfixUnary,
	Function:         PrefixUnary,
	Flip:             PrefixUnary,
	Define:           Binary,
}

// FixityOf returns op's fixity.
func FixityOf(op Operator) Fixity {
	return fixityOf[op]
}

// surfaceOnly marks operators that must never appear in a normalized tree
// (spec §3): they are lowered away during normalize.
var surfaceOnly = map[Operator]bool{
	Subtract:         true,
	Divide:           true,
	Sqrt:             true,
	ImplicitMultiply: true,
	ModuloLong:       true,
}

// IsSurfaceOnly reports whether op must be lowered before evaluate sees it.
func IsSurfaceOnly(op Operator) bool {
	return surfaceOnly[op]
}

var names = map[Operator]string{
	ModuloLong:       "mod",
	UnitConvert:      "to",
	Subtract:         "-",
	Add:              "+",
	Divide:           "/",
	Multiply:         "*",
	Modulo:           "mod",
	Negative:         "-",
	Sqrt:             "sqrt",
	ImplicitMultiply: "*",
	Power:            "^",
	Factorial:        "!",
	Function:         "fn",
	Flip:             "flip",
	Define:           ":=",
}

func (op Operator) String() string {
	if n, ok := names[op]; ok {
		return n
	}
	return "?"
}
