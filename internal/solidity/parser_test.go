package solidity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinimalContract(t *testing.T) {
	src := `
pragma solidity ^0.8.0;

contract Token {
    uint256 public totalSupply;

    constructor(uint256 initialSupply) {
        totalSupply = initialSupply;
    }

    function mint(address to, uint256 amount) public {
        totalSupply += amount;
    }
}
`
	unit, err := Parse("token.sol", []byte(src))
	require.NoError(t, err)
	require.Len(t, unit.Units, 1)

	c := unit.Units[0].Contract
	require.NotNil(t, c)
	assert.Equal(t, "contract", c.Kind)
	assert.Equal(t, "Token", c.Name)
	require.Len(t, c.Parts, 3)

	assert.NotNil(t, c.Parts[0].StateVar)
	assert.Equal(t, "totalSupply", c.Parts[0].StateVar.Name)

	assert.NotNil(t, c.Parts[1].Function)
	assert.Equal(t, "constructor", c.Parts[1].Function.Kind)

	assert.NotNil(t, c.Parts[2].Function)
	assert.Equal(t, "mint", c.Parts[2].Function.Name)
}

func TestParseInheritanceList(t *testing.T) {
	src := `
contract Token is Ownable, Pausable {
    function noop() public {}
}
`
	unit, err := Parse("token.sol", []byte(src))
	require.NoError(t, err)
	require.Len(t, unit.Units, 1)
	c := unit.Units[0].Contract
	require.NotNil(t, c)
	assert.Equal(t, []string{"Ownable", "Pausable"}, c.Bases)
}

func TestParseMappingFieldDeclaration(t *testing.T) {
	src := `
contract Token {
    mapping(address => mapping(address => uint256)) public allowances;
}
`
	unit, err := Parse("token.sol", []byte(src))
	require.NoError(t, err)
	sv := unit.Units[0].Contract.Parts[0].StateVar
	require.NotNil(t, sv)
	require.NotNil(t, sv.Type.Mapping)
	assert.Equal(t, "address", sv.Type.Mapping.Key.Plain.Name)
	require.NotNil(t, sv.Type.Mapping.Value.Mapping)
	assert.Equal(t, "uint256", sv.Type.Mapping.Value.Mapping.Value.Plain.Name)
}

func TestParseLibraryAndInterface(t *testing.T) {
	src := `
library SafeMath {
    function add(uint256 a, uint256 b) internal pure returns (uint256) {
        return a + b;
    }
}

interface IToken {
    function balanceOf(address account) external view returns (uint256);
}
`
	unit, err := Parse("token.sol", []byte(src))
	require.NoError(t, err)
	require.Len(t, unit.Units, 2)

	require.NotNil(t, unit.Units[0].Library)
	assert.Equal(t, "SafeMath", unit.Units[0].Library.Name)

	iface := unit.Units[1].Contract
	require.NotNil(t, iface)
	assert.Equal(t, "interface", iface.Kind)
}

func TestParseExpressionPrecedence(t *testing.T) {
	src := `
contract Math {
    function calc() public pure returns (uint256) {
        return 1 + 2 * 3;
    }
}
`
	unit, err := Parse("math.sol", []byte(src))
	require.NoError(t, err)
	fn := unit.Units[0].Contract.Parts[0].Function
	require.NotNil(t, fn)
	require.Len(t, fn.Body.Statements, 1)

	ret := fn.Body.Statements[0].Return
	require.NotNil(t, ret)

	// 1 + 2 * 3 parses as Add(1, Mul(2,3)): the Add level's tail holds the
	// Mul sub-expression as its right operand, not a flat three-way list.
	add := ret.Value.Head.Cond.Head.Head.Head.Head.Head.Head.Head.Head.Head
	require.NotNil(t, add)
	require.Len(t, add.Tail, 1)
}

func TestParseIfElseStatement(t *testing.T) {
	src := `
contract Flow {
    function check(uint256 x) public pure returns (uint256) {
        if (x > 0) {
            return 1;
        } else {
            return 0;
        }
    }
}
`
	unit, err := Parse("flow.sol", []byte(src))
	require.NoError(t, err)
	fn := unit.Units[0].Contract.Parts[0].Function
	require.NotNil(t, fn)
	require.Len(t, fn.Body.Statements, 1)

	ifStmt := fn.Body.Statements[0].If
	require.NotNil(t, ifStmt)
	require.NotNil(t, ifStmt.Else)
}

func TestParseRejectsMalformedSource(t *testing.T) {
	_, err := Parse("broken.sol", []byte(`contract {{{`))
	require.Error(t, err)
}
