package ir

// ExpressionKind discriminates the ~50 expression forms the lowering
// stage can produce. Binary/unary arithmetic, assignment, and bitwise
// variants share the BinaryExpr/UnaryExpr shapes to avoid ~20 near
// identical struct definitions; the Kind field carries the distinction
// through to the emitter.
type ExpressionKind int

const (
	ExprNone ExpressionKind = iota
	ExprAdd
	ExprSubtract
	ExprMultiply
	ExprDivide
	ExprModulo
	ExprPower
	ExprAnd
	ExprOr
	ExprEqual
	ExprNotEqual
	ExprLess
	ExprLessEqual
	ExprMore
	ExprMoreEqual
	ExprShiftLeft
	ExprShiftRight
	ExprBitwiseAnd
	ExprBitwiseOr
	ExprBitwiseXor
	ExprAssign
	ExprAssignAdd
	ExprAssignSubtract
	ExprAssignMultiply
	ExprAssignDivide
	ExprAssignModulo
	ExprAssignOr
	ExprAssignAnd
	ExprAssignXor
	ExprAssignShiftLeft
	ExprAssignShiftRight
	ExprNot
	ExprUnaryPlus
	ExprUnaryMinus
	ExprPreIncrement
	ExprPreDecrement
	ExprPostIncrement
	ExprPostDecrement
	ExprDelete
	ExprParenthesis
	ExprTernary
	ExprArraySubscript
	ExprArraySlice
	ExprArrayLiteral
	ExprMappingSubscript
	ExprMemberAccess
	ExprFunctionCall
	ExprNamedFunctionCall
	ExprModifier
	ExprInvalidModifier
	ExprModifierBody
	ExprBoolLiteral
	ExprNumberLiteral
	ExprHexLiteral
	ExprStringLiteral
	ExprList
	ExprThis
	ExprType
	ExprVariable
	ExprVariableDeclaration
	ExprNew
	ExprUnit
)

// NamedArg is one `name: value` pair of a named function call.
type NamedArg struct {
	Name  string
	Value Expression
}

// Expression is the IR's expression sum. Only the fields relevant to Kind
// are populated; this mirrors the tagged-union discipline of the Rust
// source it was lowered from, expressed as a single struct instead of an
// interface hierarchy so construction and pattern matching both stay
// flat (a struct-with-Kind is the idiomatic Go rendering of a Rust enum
// with many unit-ish variants; see golang.org/x/tools/go/ast/astutil for
// the same shape applied to go/ast nodes).
type Expression struct {
	Kind ExpressionKind

	Left  *Expression
	Right *Expression
	Third *Expression // Ternary's else-branch, ArraySlice's end bound

	Operand *Expression // unary forms, Delete, Parenthesis, New, Not

	Args     []Expression // ArrayLiteral, List, FunctionCall args, Modifier args
	NamedArg []NamedArg    // NamedFunctionCall

	Indices []Expression // MappingSubscript keys (tuple-flattened)

	Name string // MemberAccess field, Modifier/InvalidModifier name, Variable name

	Member   MemberType
	Location VariableAccessLocation

	BoolValue bool
	Text      string // NumberLiteral, HexLiteral, raw string literal segment
	Strings   []string

	DeclType *Type // VariableDeclaration, Type expression

	UnitFactor int64 // NumberLiteral with a unit suffix: wei/seconds multiplier; Text is left unscaled and the emitter renders (Text * UnitFactor)

	Callee    *Expression // FunctionCall/NamedFunctionCall target
	Catch     *Expression // FunctionCall optional catch-clause callback
}

// Bool, Number, Variable, etc. are small constructors kept close to the
// type so resolver code reads like the grammar it lowers.

func Bool(v bool) Expression { return Expression{Kind: ExprBoolLiteral, BoolValue: v} }
func Number(text string) Expression { return Expression{Kind: ExprNumberLiteral, Text: text} }
func Hex(text string) Expression { return Expression{Kind: ExprHexLiteral, Text: text} }
func Str(parts []string) Expression { return Expression{Kind: ExprStringLiteral, Strings: parts} }

func Var(name string, member MemberType, loc VariableAccessLocation) Expression {
	return Expression{Kind: ExprVariable, Name: name, Member: member, Location: loc}
}

func Binary(kind ExpressionKind, left, right Expression) Expression {
	return Expression{Kind: kind, Left: &left, Right: &right}
}

func Unary(kind ExpressionKind, operand Expression) Expression {
	return Expression{Kind: kind, Operand: &operand}
}
