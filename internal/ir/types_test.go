package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportSetDeduplicatesAndPreservesOrder(t *testing.T) {
	s := NewImportSet()
	s.Add(ImportMapping)
	s.Add(ImportAccountId)
	s.Add(ImportMapping)

	assert.True(t, s.Has(ImportMapping))
	assert.True(t, s.Has(ImportAccountId))
	assert.False(t, s.Has(ImportString))
	assert.Equal(t, []Import{ImportMapping, ImportAccountId}, s.Ordered())
}

func TestMemberTypeString(t *testing.T) {
	tests := map[MemberType]string{
		MemberVariable:        "variable",
		MemberConstant:        "constant",
		MemberFunction:        "function",
		MemberFunctionPrivate: "function_private",
		MemberNone:            "none",
		MemberUnknown:         "unknown",
	}
	for kind, want := range tests {
		assert.Equal(t, want, kind.String())
	}
}

func TestVariableAccessLocationString(t *testing.T) {
	assert.Equal(t, "any", AccessAny.String())
	assert.Equal(t, "constructor", AccessConstructor.String())
	assert.Equal(t, "modifier", AccessModifier.String())
}
