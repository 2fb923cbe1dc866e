package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolConstructor(t *testing.T) {
	e := Bool(true)
	assert.Equal(t, ExprBoolLiteral, e.Kind)
	assert.True(t, e.BoolValue)
}

func TestVarConstructor(t *testing.T) {
	e := Var("balance", MemberVariable, AccessAny)
	assert.Equal(t, ExprVariable, e.Kind)
	assert.Equal(t, "balance", e.Name)
	assert.Equal(t, MemberVariable, e.Member)
	assert.Equal(t, AccessAny, e.Location)
}

func TestBinaryConstructorPreservesOperands(t *testing.T) {
	left := Number("1")
	right := Number("2")
	e := Binary(ExprAdd, left, right)

	assert.Equal(t, ExprAdd, e.Kind)
	assert.Equal(t, "1", e.Left.Text)
	assert.Equal(t, "2", e.Right.Text)
}

func TestUnaryConstructor(t *testing.T) {
	operand := Var("x", MemberVariable, AccessAny)
	e := Unary(ExprNot, operand)

	assert.Equal(t, ExprNot, e.Kind)
	assert.Equal(t, "x", e.Operand.Name)
}
