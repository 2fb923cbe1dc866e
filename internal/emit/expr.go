package emit

import (
	"fmt"
	"strings"

	"github.com/oxhq/sol2ink/internal/ir"
)

var compoundOp = map[ir.ExpressionKind]string{
	ir.ExprAssignAdd:        "+",
	ir.ExprAssignSubtract:   "-",
	ir.ExprAssignMultiply:   "*",
	ir.ExprAssignDivide:     "/",
	ir.ExprAssignModulo:     "%",
	ir.ExprAssignOr:         "|",
	ir.ExprAssignAnd:        "&",
	ir.ExprAssignXor:        "^",
	ir.ExprAssignShiftLeft:  "<<",
	ir.ExprAssignShiftRight: ">>",
}

var binOp = map[ir.ExpressionKind]string{
	ir.ExprAdd: "+", ir.ExprSubtract: "-", ir.ExprMultiply: "*", ir.ExprDivide: "/",
	ir.ExprModulo: "%", ir.ExprPower: "pow", ir.ExprAnd: "&&", ir.ExprOr: "||",
	ir.ExprEqual: "==", ir.ExprNotEqual: "!=", ir.ExprLess: "<", ir.ExprLessEqual: "<=",
	ir.ExprMore: ">", ir.ExprMoreEqual: ">=", ir.ExprShiftLeft: "<<", ir.ExprShiftRight: ">>",
	ir.ExprBitwiseAnd: "&", ir.ExprBitwiseOr: "|", ir.ExprBitwiseXor: "^",
}

// renderExpr renders one IR expression as Rust source text. Mapping
// reads/writes and require() get their special shapes from
// assembler.rs's ToTokens impl: a bare MappingSubscript read lowers to
// `.get(&(keys)).unwrap_or_default()`, a plain assignment to `.insert`,
// and a compound assignment to a read-modify-insert pair materializing a
// temporary (ink!'s Mapping has no entry-API, unlike a Rust HashMap).
func renderExpr(e ir.Expression) string {
	switch e.Kind {
	case ir.ExprNone:
		return ""
	case ir.ExprBoolLiteral:
		if e.BoolValue {
			return "true"
		}
		return "false"
	case ir.ExprNumberLiteral:
		if e.UnitFactor > 1 {
			return fmt.Sprintf("(%s * %d)", e.Text, e.UnitFactor)
		}
		return e.Text
	case ir.ExprHexLiteral:
		return e.Text
	case ir.ExprStringLiteral:
		return "String::from(\"" + strings.Join(e.Strings, "") + "\")"
	case ir.ExprVariable:
		return renderVariableRef(e)
	case ir.ExprThis:
		return renderThis(e)
	case ir.ExprParenthesis:
		return "(" + renderExpr(*e.Operand) + ")"
	case ir.ExprNot:
		return "!" + renderExpr(*e.Operand)
	case ir.ExprUnaryMinus:
		return "-" + renderExpr(*e.Operand)
	case ir.ExprUnaryPlus:
		return renderExpr(*e.Operand)
	case ir.ExprPreIncrement:
		return renderExpr(*e.Operand) + " += 1"
	case ir.ExprPreDecrement:
		return renderExpr(*e.Operand) + " -= 1"
	case ir.ExprPostIncrement:
		return renderExpr(*e.Operand) + " += 1"
	case ir.ExprPostDecrement:
		return renderExpr(*e.Operand) + " -= 1"
	case ir.ExprDelete:
		return renderDelete(e)
	case ir.ExprTernary:
		return fmt.Sprintf("if %s { %s } else { %s }", renderExpr(*e.Left), renderExpr(*e.Right), renderExpr(*e.Third))
	case ir.ExprArraySubscript:
		if e.Right == nil {
			return renderExpr(*e.Left) + "[0]"
		}
		return fmt.Sprintf("%s[%s]", renderExpr(*e.Left), renderExpr(*e.Right))
	case ir.ExprArraySlice:
		start, end := "", ""
		if e.Right != nil {
			start = renderExpr(*e.Right)
		}
		if e.Third != nil {
			end = renderExpr(*e.Third)
		}
		return fmt.Sprintf("%s[%s..%s]", renderExpr(*e.Left), start, end)
	case ir.ExprArrayLiteral:
		return "[" + renderExprList(e.Args) + "]"
	case ir.ExprMappingSubscript:
		return renderMappingRead(e)
	case ir.ExprMemberAccess:
		return renderExpr(*e.Left) + "." + e.Name
	case ir.ExprFunctionCall:
		return renderCall(e)
	case ir.ExprNamedFunctionCall:
		parts := make([]string, 0, len(e.NamedArg))
		for _, a := range e.NamedArg {
			parts = append(parts, a.Name+": "+renderExpr(a.Value))
		}
		return fmt.Sprintf("%s { %s }", renderExpr(*e.Callee), strings.Join(parts, ", "))
	case ir.ExprModifier:
		return fmt.Sprintf("%s(%s)", e.Name, renderExprList(e.Args))
	case ir.ExprModifierBody:
		return "body(instance)"
	case ir.ExprType:
		return renderType(*e.DeclType)
	case ir.ExprVariableDeclaration:
		return fmt.Sprintf("let mut %s: %s", e.Name, renderType(*e.DeclType))
	case ir.ExprNew:
		return renderExpr(*e.Operand) + "::default()"
	case ir.ExprAssign:
		return renderAssign(e)
	case ir.ExprAssignAdd, ir.ExprAssignSubtract, ir.ExprAssignMultiply, ir.ExprAssignDivide,
		ir.ExprAssignModulo, ir.ExprAssignOr, ir.ExprAssignAnd, ir.ExprAssignXor,
		ir.ExprAssignShiftLeft, ir.ExprAssignShiftRight:
		return renderCompoundAssign(e)
	case ir.ExprList:
		return "(" + renderExprList(e.Args) + ")"
	default:
		if op, ok := binOp[e.Kind]; ok {
			if op == "pow" {
				return fmt.Sprintf("%s.pow(%s)", renderExpr(*e.Left), renderExpr(*e.Right))
			}
			return fmt.Sprintf("%s %s %s", renderExpr(*e.Left), op, renderExpr(*e.Right))
		}
		return "/* unsupported expression */"
	}
}

func renderExprList(args []ir.Expression) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, renderExpr(a))
	}
	return strings.Join(parts, ", ")
}

func renderVariableRef(e ir.Expression) string {
	switch e.Member {
	case ir.MemberStorageField:
		return selfPrefix(e.Location) + "data()." + e.Name
	case ir.MemberVariable:
		return e.Name
	case ir.MemberConstant:
		return e.Name
	case ir.MemberFunctionPrivate:
		return selfPrefix(e.Location) + "_" + e.Name
	case ir.MemberFunction:
		return selfPrefix(e.Location) + e.Name
	default:
		return e.Name
	}
}

// selfPrefix picks the receiver a storage-field or internal-method
// reference hangs off of. It is distinct from renderThis's prefixing:
// inside a modifier body the receiver is the generic `instance` the
// modifier_definition closes over, not the `T::` associated-function
// syntax msg.sender lowering needs there.
func selfPrefix(loc ir.VariableAccessLocation) string {
	switch loc {
	case ir.AccessConstructor:
		return "instance."
	case ir.AccessModifier:
		return "instance."
	default:
		return "self."
	}
}

func renderThis(e ir.Expression) string {
	switch loc := e.Location; loc {
	case ir.AccessConstructor:
		return "instance.env()." + fieldAccessor(e.Name)
	case ir.AccessModifier:
		return "T::env()." + fieldAccessor(e.Name)
	default:
		return "Self::env()." + fieldAccessor(e.Name)
	}
}

func fieldAccessor(name string) string {
	if name == "" {
		return "caller()"
	}
	return name + "()"
}

func renderDelete(e ir.Expression) string {
	if e.Operand.Kind == ir.ExprMappingSubscript {
		return renderMappingTarget(*e.Operand) + ".remove(" + mappingKeyExpr(*e.Operand) + ")"
	}
	return renderExpr(*e.Operand) + " = Default::default()"
}

func renderMappingRead(e ir.Expression) string {
	recv := renderExpr(*e.Left)
	if len(e.Indices) == 0 {
		return recv + ".get(&()).unwrap_or_default()"
	}
	return recv + ".get(" + mappingKeyExpr(e) + ").unwrap_or_default()"
}

func mappingKeyExpr(e ir.Expression) string {
	if len(e.Indices) == 1 {
		return "&(" + renderExpr(e.Indices[0]) + ")"
	}
	return "&(" + renderExprList(e.Indices) + ")"
}

func renderMappingTarget(e ir.Expression) string { return renderExpr(*e.Left) }

func renderAssign(e ir.Expression) string {
	if e.Left.Kind == ir.ExprMappingSubscript {
		return fmt.Sprintf("%s.insert(%s, &(%s))", renderMappingTarget(*e.Left), mappingKeyExpr(*e.Left), renderExpr(*e.Right))
	}
	return fmt.Sprintf("%s = %s", renderExpr(*e.Left), renderExpr(*e.Right))
}

// renderCompoundAssign implements the read-modify-insert lowering
// assembler.rs performs for `mapping[k] += v` and its siblings, since
// ink!'s Mapping type has no in-place update API.
func renderCompoundAssign(e ir.Expression) string {
	op := compoundOp[e.Kind]
	if e.Left.Kind == ir.ExprMappingSubscript {
		target := renderMappingTarget(*e.Left)
		key := mappingKeyExpr(*e.Left)
		read := fmt.Sprintf("%s.get(%s).unwrap_or_default()", target, key)
		newValue := fmt.Sprintf("%s %s %s", read, op, renderExpr(*e.Right))
		return fmt.Sprintf("{ let new_value = %s; %s.insert(%s, &new_value) }", newValue, target, key)
	}
	return fmt.Sprintf("%s %s= %s", renderExpr(*e.Left), op, renderExpr(*e.Right))
}

// renderEmitCall renders an `emit Event(...)`-derived call to its
// `_emit_*` hook without the trailing `?` ordinary calls get: the hook
// returns unit, not Result<_, Error>.
func renderEmitCall(e ir.Expression) string {
	return fmt.Sprintf("%s(%s)", renderExpr(*e.Callee), renderExprList(e.Args))
}

func renderCall(e ir.Expression) string {
	if e.Callee != nil && e.Callee.Kind == ir.ExprVariable && e.Callee.Name == "require" {
		return fmt.Sprintf("if %s { return Err(Error::Custom(%s)) }", renderExpr(*e.Left), renderExpr(*e.Right))
	}
	return fmt.Sprintf("%s(%s)?", renderExpr(*e.Callee), renderExprList(e.Args))
}
