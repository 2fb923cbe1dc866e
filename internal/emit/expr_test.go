package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/sol2ink/internal/ir"
)

func TestRenderExprBinaryAndSelfPrefix(t *testing.T) {
	balance := ir.Var("balance", ir.MemberStorageField, ir.AccessAny)
	amount := ir.Var("amount", ir.MemberVariable, ir.AccessAny)
	e := ir.Binary(ir.ExprAdd, balance, amount)

	assert.Equal(t, "self.data().balance + amount", renderExpr(e))
}

func TestRenderExprConstructorLocationUsesInstance(t *testing.T) {
	owner := ir.Var("owner", ir.MemberStorageField, ir.AccessConstructor)
	assert.Equal(t, "instance.data().owner", renderExpr(owner))
}

func TestRenderExprModifierLocationUsesInstanceSelf(t *testing.T) {
	owner := ir.Var("owner", ir.MemberStorageField, ir.AccessModifier)
	assert.Equal(t, "instance.data().owner", renderExpr(owner))
}

func TestRenderMappingReadSingleKey(t *testing.T) {
	base := ir.Var("balances", ir.MemberStorageField, ir.AccessAny)
	key := ir.Var("account", ir.MemberVariable, ir.AccessAny)
	sub := ir.Expression{Kind: ir.ExprMappingSubscript, Left: &base, Indices: []ir.Expression{key}}

	assert.Equal(t, "self.data().balances.get(&(account)).unwrap_or_default()", renderExpr(sub))
}

func TestRenderMappingReadMultiKey(t *testing.T) {
	base := ir.Var("allowances", ir.MemberStorageField, ir.AccessAny)
	owner := ir.Var("owner", ir.MemberVariable, ir.AccessAny)
	spender := ir.Var("spender", ir.MemberVariable, ir.AccessAny)
	sub := ir.Expression{Kind: ir.ExprMappingSubscript, Left: &base, Indices: []ir.Expression{owner, spender}}

	assert.Equal(t, "self.data().allowances.get(&(owner, spender)).unwrap_or_default()", renderExpr(sub))
}

func TestRenderAssignToMappingInserts(t *testing.T) {
	base := ir.Var("balances", ir.MemberStorageField, ir.AccessAny)
	key := ir.Var("account", ir.MemberVariable, ir.AccessAny)
	sub := ir.Expression{Kind: ir.ExprMappingSubscript, Left: &base, Indices: []ir.Expression{key}}
	value := ir.Number("100")

	assign := ir.Expression{Kind: ir.ExprAssign, Left: &sub, Right: &value}
	assert.Equal(t, "self.data().balances.insert(&(account), &(100))", renderExpr(assign))
}

func TestRenderCompoundAssignToMappingReadModifyInsert(t *testing.T) {
	base := ir.Var("balances", ir.MemberStorageField, ir.AccessAny)
	key := ir.Var("account", ir.MemberVariable, ir.AccessAny)
	sub := ir.Expression{Kind: ir.ExprMappingSubscript, Left: &base, Indices: []ir.Expression{key}}
	value := ir.Number("100")

	add := ir.Expression{Kind: ir.ExprAssignAdd, Left: &sub, Right: &value}
	got := renderExpr(add)
	assert.Contains(t, got, "let new_value = self.data().balances.get(&(account)).unwrap_or_default() + 100;")
	assert.Contains(t, got, "self.data().balances.insert(&(account), &new_value)")
}

func TestRenderRequireLowersToEarlyReturn(t *testing.T) {
	cond := ir.Bool(true)
	notCond := ir.Expression{Kind: ir.ExprNot, Operand: &cond}
	reason := ir.Str([]string{"not owner"})
	call := ir.Expression{Kind: ir.ExprFunctionCall, Callee: &ir.Expression{Kind: ir.ExprVariable, Name: "require"}, Left: &notCond, Right: &reason}

	assert.Equal(t, `if !true { return Err(Error::Custom(String::from("not owner"))) }`, renderExpr(call))
}

func TestRenderTernary(t *testing.T) {
	cond := ir.Bool(true)
	then := ir.Number("1")
	els := ir.Number("2")
	e := ir.Expression{Kind: ir.ExprTernary, Left: &cond, Right: &then, Third: &els}

	assert.Equal(t, "if true { 1 } else { 2 }", renderExpr(e))
}
