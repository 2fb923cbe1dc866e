package ir

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateErrorMessage(t *testing.T) {
	err := NewError(ContractNameNotFound, "Token.sol", "base contract Ownable not found")
	assert.Equal(t, "Token.sol: contract_name_not_found: base contract Ownable not found", err.Error())
}

func TestTranslateErrorMessageWithoutFile(t *testing.T) {
	err := NewError(EnumValueNotDefined, "", "Status.Active is not defined")
	assert.Equal(t, "enum_value_not_defined: Status.Active is not defined", err.Error())
}

func TestWrapErrorUnwraps(t *testing.T) {
	cause := errors.New("unexpected token '}'")
	err := WrapError(FileCorrupted, "Vault.sol", "parse error", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Vault.sol")
	assert.Contains(t, err.Error(), "file_corrupted")
}

func TestErrorKindString(t *testing.T) {
	tests := map[ErrorKind]string{
		FileError:               "file_error",
		FileCorrupted:           "file_corrupted",
		ContractNameNotFound:    "contract_name_not_found",
		StructNameNotFound:      "struct_name_not_found",
		EventNameNotFound:       "event_name_not_found",
		VariableNameNotFound:    "variable_name_not_found",
		EnumValueNotDefined:     "enum_value_not_defined",
		IncorrectTypeOfVariable: "incorrect_type_of_variable",
	}
	for kind, want := range tests {
		assert.Equal(t, want, kind.String())
	}
}
