package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/sol2ink/internal/ir"
	"github.com/oxhq/sol2ink/internal/solidity"
)

func parseAndResolve(t *testing.T, source string) *Output {
	t.Helper()
	unit, err := solidity.Parse("test.sol", []byte(source))
	require.NoError(t, err)
	out, err := Resolve("test.sol", unit)
	require.NoError(t, err)
	return out
}

func TestResolveSimpleContractField(t *testing.T) {
	out := parseAndResolve(t, `
contract Token {
    uint256 public totalSupply;
    address private owner;
}
`)
	require.Len(t, out.Contracts, 1)
	c := out.Contracts[0]
	assert.Equal(t, "Token", c.Name)
	require.Len(t, c.Fields, 2)

	assert.Equal(t, "totalSupply", c.Fields[0].Name)
	assert.True(t, c.Fields[0].Public)
	assert.Equal(t, ir.TypeUint, c.Fields[0].Type.Kind)

	assert.Equal(t, "owner", c.Fields[1].Name)
	assert.False(t, c.Fields[1].Public)
	assert.Equal(t, ir.TypeAccountId, c.Fields[1].Type.Kind)

	// Getters are rendered directly from public fields by the emitter
	// (spec.md §8 property 6), so the resolver no longer synthesizes a
	// function for them.
	for _, fn := range c.Functions {
		assert.NotEqual(t, "totalSupply", fn.Header.Name)
	}
}

func TestResolveMappingFieldFlattensNestedMapping(t *testing.T) {
	out := parseAndResolve(t, `
contract Token {
    mapping(address => mapping(address => uint256)) private allowances;
}
`)
	require.Len(t, out.Contracts, 1)
	c := out.Contracts[0]
	require.Len(t, c.Fields, 1)

	f := c.Fields[0]
	require.Equal(t, ir.TypeMapping, f.Type.Kind)
	require.Len(t, f.Type.Keys, 2)
	assert.Equal(t, ir.TypeAccountId, f.Type.Keys[0].Kind)
	assert.Equal(t, ir.TypeAccountId, f.Type.Keys[1].Kind)
	require.NotNil(t, f.Type.Value)
	assert.Equal(t, ir.TypeUint, f.Type.Value.Kind)
}

func TestResolveFunctionWithRequireAndModifier(t *testing.T) {
	out := parseAndResolve(t, `
contract Token {
    address private owner;

    modifier onlyOwner() {
        require(msg.sender == owner, "not owner");
        _;
    }

    function setOwner(address newOwner) public onlyOwner {
        owner = newOwner;
    }
}
`)
	require.Len(t, out.Contracts, 1)
	c := out.Contracts[0]
	require.Len(t, c.Modifiers, 1)
	assert.Equal(t, "onlyOwner", c.Modifiers[0].Header.Name)

	var setOwner *ir.Function
	for i := range c.Functions {
		if c.Functions[i].Header.Name == "setOwner" {
			setOwner = &c.Functions[i]
		}
	}
	require.NotNil(t, setOwner)
	assert.True(t, setOwner.Header.External)
}

func TestResolveLibraryAndInterface(t *testing.T) {
	out := parseAndResolve(t, `
library SafeMath {
    function add(uint256 a, uint256 b) internal pure returns (uint256) {
        return a + b;
    }
}

interface IToken {
    function balanceOf(address account) external view returns (uint256);
}
`)
	require.Len(t, out.Libraries, 1)
	lib := out.Libraries[0]
	assert.Equal(t, "SafeMath", lib.Name)
	require.Len(t, lib.Functions, 1)
	assert.Equal(t, "add", lib.Functions[0].Header.Name)

	require.Len(t, out.Interfaces, 1)
	iface := out.Interfaces[0]
	assert.Equal(t, "IToken", iface.Name)
	require.Len(t, iface.FunctionHeaders, 1)
	assert.Equal(t, "balanceOf", iface.FunctionHeaders[0].Name)
	assert.True(t, iface.FunctionHeaders[0].View)
}

func TestResolveStructAndEnum(t *testing.T) {
	out := parseAndResolve(t, `
contract Vault {
    enum Status { Active, Paused }

    struct Deposit {
        address depositor;
        uint256 amount;
    }
}
`)
	require.Len(t, out.Contracts, 1)
	c := out.Contracts[0]
	require.Len(t, c.Enums, 1)
	assert.Equal(t, "Status", c.Enums[0].Name)
	require.Len(t, c.Enums[0].Values, 2)
	assert.Equal(t, "Active", c.Enums[0].Values[0].Name)

	require.Len(t, c.Structs, 1)
	assert.Equal(t, "Deposit", c.Structs[0].Name)
	require.Len(t, c.Structs[0].Fields, 2)
	assert.Equal(t, "amount", c.Structs[0].Fields[1].Name)
}

func TestResolveEmitLowersToInternalHook(t *testing.T) {
	out := parseAndResolve(t, `
contract Token {
    event Transfer(address indexed from, address indexed to, uint256 value);

    function transfer(address to, uint256 value) public {
        emit Transfer(msg.sender, to, value);
    }
}
`)
	require.Len(t, out.Contracts, 1)
	c := out.Contracts[0]
	require.Len(t, c.Events, 1)
	assert.Equal(t, "Transfer", c.Events[0].Name)

	var transfer *ir.Function
	for i := range c.Functions {
		if c.Functions[i].Header.Name == "transfer" {
			transfer = &c.Functions[i]
		}
	}
	require.NotNil(t, transfer)
	require.NotNil(t, transfer.Body)

	var emitStmt *ir.Statement
	for _, st := range transfer.Body.Block {
		if st.Kind == ir.StmtEmit {
			emitStmt = &st
		}
	}
	require.NotNil(t, emitStmt, "expected a lowered emit statement")
	require.NotNil(t, emitStmt.Expr.Callee)
	assert.Equal(t, "emit_transfer", emitStmt.Expr.Callee.Name)
	assert.Equal(t, ir.MemberFunctionPrivate, emitStmt.Expr.Callee.Member)
	require.Len(t, emitStmt.Expr.Args, 3)
}

// TestInlineModifiersSharesTableAcrossContractsInOneFile covers Scenario D:
// a modifier declared on one contract in a source file must still be known
// when a sibling contract in the same file applies it and its shape (a
// statement after the `_;` sentinel) forces it to be inlined rather than
// attribute-wrapped.
func TestInlineModifiersSharesTableAcrossContractsInOneFile(t *testing.T) {
	out := parseAndResolve(t, `
contract AccessControl {
    mapping(address => bool) private admins;
    address private lastChecked;

    modifier onlyRole(address role) {
        require(admins[role], "missing role");
        _;
        lastChecked = role;
    }
}

contract Token {
    function mint(uint256 amount) public onlyRole(msg.sender) {
        amount;
    }
}
`)
	require.Len(t, out.Contracts, 2)
	token := out.Contracts[1]

	var mint *ir.Function
	for i := range token.Functions {
		if token.Functions[i].Header.Name == "mint" {
			mint = &token.Functions[i]
		}
	}
	require.NotNil(t, mint)
	require.NotNil(t, mint.Body)
	require.True(t, len(mint.Body.Block) >= 3, "expected a let-binding, the inlined modifier body, and the original body prepended")

	assert.Equal(t, ir.StmtVariableDefinition, mint.Body.Block[0].Kind)
	require.NotNil(t, mint.Body.Block[0].Expr)
	assert.Equal(t, "role", mint.Body.Block[0].Expr.Name)
}

func TestResolveReservedWordFieldNameIsMangled(t *testing.T) {
	out := parseAndResolve(t, `
contract Widget {
    uint256 private self;
}
`)
	require.Len(t, out.Contracts, 1)
	assert.Equal(t, "self_is_rust_keyword", out.Contracts[0].Fields[0].Name)
}
