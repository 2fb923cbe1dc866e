package resolver

import (
	"strings"

	"github.com/oxhq/sol2ink/internal/ir"
	"github.com/oxhq/sol2ink/internal/solidity"
)

var unitFactor = map[string]int64{
	"wei":     1,
	"seconds": 1,
	"minutes": 60,
	"hours":   3600,
	"days":    86400,
	"weeks":   604800,
	"ether":   1_000_000_000_000_000_000,
}

func (r *fileResolver) lowerExpr(e *solidity.Expr, loc ir.VariableAccessLocation) ir.Expression {
	if e == nil {
		return ir.Expression{Kind: ir.ExprNone}
	}
	return r.lowerTernary(e.Head, loc)
}

func (r *fileResolver) lowerTernary(t *solidity.TernaryExpr, loc ir.VariableAccessLocation) ir.Expression {
	cond := r.lowerAssign(t.Cond, loc)
	if t.Then == nil {
		return cond
	}
	then := r.lowerExpr(t.Then, loc)
	els := r.lowerExpr(t.Else, loc)
	return ir.Expression{Kind: ir.ExprTernary, Left: &cond, Right: &then, Third: &els}
}

var assignKind = map[string]ir.ExpressionKind{
	"=":   ir.ExprAssign,
	"+=":  ir.ExprAssignAdd,
	"-=":  ir.ExprAssignSubtract,
	"*=":  ir.ExprAssignMultiply,
	"/=":  ir.ExprAssignDivide,
	"%=":  ir.ExprAssignModulo,
	"&=":  ir.ExprAssignAnd,
	"|=":  ir.ExprAssignOr,
	"^=":  ir.ExprAssignXor,
	"<<=": ir.ExprAssignShiftLeft,
	">>=": ir.ExprAssignShiftRight,
}

func (r *fileResolver) lowerAssign(a *solidity.AssignExpr, loc ir.VariableAccessLocation) ir.Expression {
	head := r.lowerOr(a.Head, loc)
	if a.Op == "" {
		return head
	}
	rhs := r.lowerAssign(a.Rhs, loc)
	return ir.Expression{Kind: assignKind[a.Op], Left: &head, Right: &rhs}
}

func (r *fileResolver) lowerOr(n *solidity.OrExpr, loc ir.VariableAccessLocation) ir.Expression {
	left := r.lowerAnd(n.Head, loc)
	for _, t := range n.Tail {
		right := r.lowerAnd(t.Right, loc)
		left = ir.Expression{Kind: ir.ExprOr, Left: &left, Right: &right}
	}
	return left
}

func (r *fileResolver) lowerAnd(n *solidity.AndExpr, loc ir.VariableAccessLocation) ir.Expression {
	left := r.lowerEquality(n.Head, loc)
	for _, t := range n.Tail {
		right := r.lowerEquality(t.Right, loc)
		left = ir.Expression{Kind: ir.ExprAnd, Left: &left, Right: &right}
	}
	return left
}

func (r *fileResolver) lowerEquality(n *solidity.EqualityExpr, loc ir.VariableAccessLocation) ir.Expression {
	left := r.lowerRel(n.Head, loc)
	for _, t := range n.Tail {
		right := r.lowerRel(t.Right, loc)
		kind := ir.ExprEqual
		if t.Op == "!=" {
			kind = ir.ExprNotEqual
		}
		left = ir.Expression{Kind: kind, Left: &left, Right: &right}
	}
	return left
}

func (r *fileResolver) lowerRel(n *solidity.RelExpr, loc ir.VariableAccessLocation) ir.Expression {
	left := r.lowerBitOr(n.Head, loc)
	for _, t := range n.Tail {
		right := r.lowerBitOr(t.Right, loc)
		var kind ir.ExpressionKind
		switch t.Op {
		case "<":
			kind = ir.ExprLess
		case "<=":
			kind = ir.ExprLessEqual
		case ">":
			kind = ir.ExprMore
		default:
			kind = ir.ExprMoreEqual
		}
		left = ir.Expression{Kind: kind, Left: &left, Right: &right}
	}
	return left
}

func (r *fileResolver) lowerBitOr(n *solidity.BitOrExpr, loc ir.VariableAccessLocation) ir.Expression {
	left := r.lowerBitXor(n.Head, loc)
	for _, t := range n.Tail {
		right := r.lowerBitXor(t.Right, loc)
		left = ir.Expression{Kind: ir.ExprBitwiseOr, Left: &left, Right: &right}
	}
	return left
}

func (r *fileResolver) lowerBitXor(n *solidity.BitXorExpr, loc ir.VariableAccessLocation) ir.Expression {
	left := r.lowerBitAnd(n.Head, loc)
	for _, t := range n.Tail {
		right := r.lowerBitAnd(t.Right, loc)
		left = ir.Expression{Kind: ir.ExprBitwiseXor, Left: &left, Right: &right}
	}
	return left
}

func (r *fileResolver) lowerBitAnd(n *solidity.BitAndExpr, loc ir.VariableAccessLocation) ir.Expression {
	left := r.lowerShift(n.Head, loc)
	for _, t := range n.Tail {
		right := r.lowerShift(t.Right, loc)
		left = ir.Expression{Kind: ir.ExprBitwiseAnd, Left: &left, Right: &right}
	}
	return left
}

func (r *fileResolver) lowerShift(n *solidity.ShiftExpr, loc ir.VariableAccessLocation) ir.Expression {
	left := r.lowerAdd(n.Head, loc)
	for _, t := range n.Tail {
		right := r.lowerAdd(t.Right, loc)
		kind := ir.ExprShiftLeft
		if t.Op == ">>" {
			kind = ir.ExprShiftRight
		}
		left = ir.Expression{Kind: kind, Left: &left, Right: &right}
	}
	return left
}

func (r *fileResolver) lowerAdd(n *solidity.AddExpr, loc ir.VariableAccessLocation) ir.Expression {
	left := r.lowerMul(n.Head, loc)
	for _, t := range n.Tail {
		right := r.lowerMul(t.Right, loc)
		kind := ir.ExprAdd
		if t.Op == "-" {
			kind = ir.ExprSubtract
		}
		left = ir.Expression{Kind: kind, Left: &left, Right: &right}
	}
	return left
}

func (r *fileResolver) lowerMul(n *solidity.MulExpr, loc ir.VariableAccessLocation) ir.Expression {
	left := r.lowerPow(n.Head, loc)
	for _, t := range n.Tail {
		right := r.lowerPow(t.Right, loc)
		var kind ir.ExpressionKind
		switch t.Op {
		case "*":
			kind = ir.ExprMultiply
		case "/":
			kind = ir.ExprDivide
		default:
			kind = ir.ExprModulo
		}
		left = ir.Expression{Kind: kind, Left: &left, Right: &right}
	}
	return left
}

func (r *fileResolver) lowerPow(n *solidity.PowExpr, loc ir.VariableAccessLocation) ir.Expression {
	left := r.lowerUnary(n.Head, loc)
	for _, t := range n.Tail {
		right := r.lowerUnary(t.Right, loc)
		left = ir.Expression{Kind: ir.ExprPower, Left: &left, Right: &right}
	}
	return left
}

func (r *fileResolver) lowerUnary(u *solidity.UnaryExpr, loc ir.VariableAccessLocation) ir.Expression {
	switch {
	case u.Delete != nil:
		inner := r.lowerUnary(u.Delete, loc)
		return ir.Expression{Kind: ir.ExprDelete, Operand: &inner}
	case u.Op != "":
		inner := r.lowerUnary(u.Operand, loc)
		var kind ir.ExpressionKind
		switch u.Op {
		case "!":
			kind = ir.ExprNot
		case "-":
			kind = ir.ExprUnaryMinus
		case "+":
			kind = ir.ExprUnaryPlus
		case "++":
			kind = ir.ExprPreIncrement
		default:
			kind = ir.ExprPreDecrement
		}
		return ir.Expression{Kind: kind, Operand: &inner}
	default:
		return r.lowerPostfix(u.Postfix, loc)
	}
}

func (r *fileResolver) lowerPostfix(p *solidity.PostfixExpr, loc ir.VariableAccessLocation) ir.Expression {
	cur := r.lowerPrimary(p.Head, loc)
	for _, op := range p.Ops {
		switch {
		case op.Member != "":
			cur = r.lowerMemberAccess(cur, op.Member, loc)
		case op.Call != nil:
			cur = r.lowerCall(cur, op.Call, loc)
		case op.Index != nil:
			cur = r.lowerIndex(cur, op.Index, loc)
		case op.PostIncr:
			cur = ir.Expression{Kind: ir.ExprPostIncrement, Operand: &cur}
		case op.PostDecr:
			cur = ir.Expression{Kind: ir.ExprPostDecrement, Operand: &cur}
		}
	}
	return cur
}

// lowerMemberAccess special-cases `msg.sender`/`msg.value`, per
// assembler.rs's VariableAccessLocation-dependent self-expression choice,
// and otherwise produces a plain MemberAccess node.
func (r *fileResolver) lowerMemberAccess(receiver ir.Expression, name string, loc ir.VariableAccessLocation) ir.Expression {
	if receiver.Kind == ir.ExprVariable && receiver.Name == "msg" {
		switch name {
		case "sender":
			return ir.Expression{Kind: ir.ExprThis, Location: loc, Name: "caller"}
		case "value":
			return ir.Expression{Kind: ir.ExprThis, Location: loc, Name: "transferred_value"}
		}
	}
	recv := receiver
	return ir.Expression{Kind: ir.ExprMemberAccess, Left: &recv, Name: mangle(name)}
}

func (r *fileResolver) lowerCall(callee ir.Expression, call *solidity.CallArgs, loc ir.VariableAccessLocation) ir.Expression {
	if call.Named {
		named := make([]ir.NamedArg, 0, len(call.Pairs))
		for _, p := range call.Pairs {
			named = append(named, ir.NamedArg{Name: mangle(p.Name), Value: r.lowerExpr(p.Value, loc)})
		}
		calleeCopy := callee
		return ir.Expression{Kind: ir.ExprNamedFunctionCall, Callee: &calleeCopy, NamedArg: named}
	}

	args := make([]ir.Expression, 0, len(call.Args))
	for _, a := range call.Args {
		args = append(args, r.lowerExpr(a, loc))
	}

	// require(cond[, reason]) lowers to an early return on failure
	// (assembler.rs's FunctionCall special case).
	if callee.Kind == ir.ExprVariable && callee.Name == "require" && len(args) >= 1 {
		cond := args[0]
		notCond := ir.Expression{Kind: ir.ExprNot, Operand: &cond}
		reason := ir.Expression{Kind: ir.ExprStringLiteral, Strings: []string{"r#\"Use a custom error\"#"}}
		if len(args) >= 2 {
			reason = args[1]
		}
		return ir.Expression{Kind: ir.ExprFunctionCall, Callee: &ir.Expression{Kind: ir.ExprVariable, Name: "require"}, Left: &notCond, Right: &reason}
	}

	// address(x) / address(0) casts (assembler.rs).
	if callee.Kind == ir.ExprVariable && callee.Name == "address" && len(args) == 1 {
		arg := args[0]
		if arg.Kind == ir.ExprNumberLiteral && arg.Text == "0" {
			r.imports.Add(ir.ImportZeroAddress)
			return ir.Expression{Kind: ir.ExprVariable, Name: "ZERO_ADDRESS", Member: ir.MemberConstant}
		}
		r.imports.Add(ir.ImportAccountId)
		return ir.Expression{Kind: ir.ExprFunctionCall, Callee: &ir.Expression{Kind: ir.ExprVariable, Name: "AccountId::from"}, Args: []ir.Expression{arg}}
	}

	calleeCopy := callee
	return ir.Expression{Kind: ir.ExprFunctionCall, Callee: &calleeCopy, Args: args}
}

func (r *fileResolver) lowerIndex(target ir.Expression, idx *solidity.IndexArgs, loc ir.VariableAccessLocation) ir.Expression {
	if idx.Colon {
		var start, end *ir.Expression
		if idx.Start != nil {
			s := r.lowerExpr(idx.Start, loc)
			start = &s
		}
		if idx.End != nil {
			e := r.lowerExpr(idx.End, loc)
			end = &e
		}
		t := target
		return ir.Expression{Kind: ir.ExprArraySlice, Left: &t, Right: start, Third: end}
	}

	var subscript *ir.Expression
	if idx.Start != nil {
		s := r.lowerExpr(idx.Start, loc)
		subscript = &s
	}

	t := target
	if isMappingReference(target) && (target.Kind == ir.ExprMappingSubscript || r.isMappingTyped(target.Name)) {
		// A chained index into an already-lowered MappingSubscript
		// (`m[a][b]` on a mapping(K1 => mapping(K2 => V))) merges into
		// the same node instead of nesting, since the declaration side
		// already flattened the type into one tuple-keyed Mapping.
		if target.Kind == ir.ExprMappingSubscript {
			merged := target
			if idx.Start != nil {
				merged.Indices = append(append([]ir.Expression{}, target.Indices...), *subscript)
			}
			return merged
		}
		if idx.Start == nil {
			return ir.Expression{Kind: ir.ExprMappingSubscript, Left: &t}
		}
		return ir.Expression{Kind: ir.ExprMappingSubscript, Left: &t, Indices: []ir.Expression{*subscript}}
	}
	return ir.Expression{Kind: ir.ExprArraySubscript, Left: &t, Right: subscript}
}

// isMappingReference is a best-effort structural check: anything already
// tagged MappingSubscript (nested mapping access) or a Variable classified
// MemberVariable or MemberStorageField may be a mapping; lowerIndex
// additionally checks the variable's declared type with isMappingTyped.
func isMappingReference(e ir.Expression) bool {
	if e.Kind == ir.ExprMappingSubscript {
		return true
	}
	return e.Kind == ir.ExprVariable && (e.Member == ir.MemberVariable || e.Member == ir.MemberStorageField)
}

// isMappingTyped reports whether a lowered (possibly keyword-mangled)
// variable name is declared with a TypeMapping, as a storage pointer or in
// the symbol table.
func (r *fileResolver) isMappingTyped(name string) bool {
	raw := strings.TrimSuffix(name, keywordSuffix)
	if t, ok := r.pointers.lookup(raw); ok {
		return t.Kind == ir.TypeMapping
	}
	return r.symbols.Lookup(raw).Type.Kind == ir.TypeMapping
}

func (r *fileResolver) lowerPrimary(p *solidity.Primary, loc ir.VariableAccessLocation) ir.Expression {
	switch {
	case p.Bool != nil:
		return ir.Bool(*p.Bool == "true")
	case p.Hex != nil:
		return ir.Hex(*p.Hex)
	case p.Number != nil:
		return r.applyUnit(ir.Number(*p.Number), p.Unit)
	case p.Int != nil:
		return r.applyUnit(ir.Number(*p.Int), p.Unit)
	case p.String != nil:
		return ir.Str([]string{*p.String})
	case p.New != nil:
		inner := r.lowerExpr(p.New, loc)
		return ir.Expression{Kind: ir.ExprNew, Operand: &inner}
	case p.TypeCall != nil:
		t := r.lowerType(p.TypeCall)
		return ir.Expression{Kind: ir.ExprType, DeclType: &t}
	case p.Paren != nil:
		inner := r.lowerExpr(p.Paren, loc)
		return ir.Expression{Kind: ir.ExprParenthesis, Operand: &inner}
	case p.ArrayLit != nil:
		items := make([]ir.Expression, 0, len(p.ArrayLit))
		for _, a := range p.ArrayLit {
			items = append(items, r.lowerExpr(a, loc))
		}
		return ir.Expression{Kind: ir.ExprArrayLiteral, Args: items}
	case p.Ident != nil:
		return r.lowerIdentifier(*p.Ident, loc)
	default:
		return ir.Expression{Kind: ir.ExprNone}
	}
}

func (r *fileResolver) applyUnit(lit ir.Expression, unit *string) ir.Expression {
	if unit == nil {
		return lit
	}
	factor := unitFactor[*unit]
	lit.UnitFactor = factor
	lit.Kind = ir.ExprNumberLiteral
	return lit
}

func (r *fileResolver) lowerIdentifier(name string, loc ir.VariableAccessLocation) ir.Expression {
	if name == "this" {
		return ir.Expression{Kind: ir.ExprThis, Location: loc}
	}
	if name == "_" {
		// The modifier-body sentinel `_;`.
		return ir.Expression{Kind: ir.ExprModifierBody}
	}
	member := r.symbols.Lookup(name)
	if ptrType, ok := r.pointers.lookup(name); ok {
		member = ir.Member{Kind: ir.MemberVariable, Type: ptrType}
	}
	if member.Kind == ir.MemberVariable || member.Kind == ir.MemberStorageField {
		r.pointers.markAccessed(name)
	}
	return ir.Var(mangle(name), member.Kind, loc)
}
