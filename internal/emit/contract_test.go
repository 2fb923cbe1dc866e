package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/sol2ink/internal/ir"
)

func TestContractRendersTraitImplAndDeployable(t *testing.T) {
	c := ir.NewContract("Token")
	c.Fields = []ir.ContractField{{Name: "total_supply", Type: ir.Type{Kind: ir.TypeUint, Width: 128}, Public: true}}
	c.Constructor = ir.Function{Header: ir.FunctionHeader{Name: "new"}}
	c.Events = []ir.Event{{Name: "Transfer", Fields: []ir.EventField{{Name: "value", Type: ir.Type{Kind: ir.TypeUint, Width: 128}}}}}
	c.Functions = []ir.Function{
		{Header: ir.FunctionHeader{Name: "mint", External: true, Params: []ir.FunctionParam{{Name: "amount", Type: ir.Type{Kind: ir.TypeUint, Width: 128}}}}},
	}

	artifacts := Contract("Token.sol", c)
	require := map[string]string{}
	for _, a := range artifacts {
		require[a.Name] = a.Content
	}

	assert.Contains(t, require["traits"], "use scale::{Decode, Encode};")
	assert.Contains(t, require["traits"], "pub enum Error {")
	assert.Contains(t, require["traits"], "Custom(String),")
	assert.Contains(t, require["traits"], "pub type TokenRef = dyn TokenTrait;")
	assert.Contains(t, require["traits"], "pub trait TokenTrait {")
	assert.Contains(t, require["traits"], "#[ink(message)]")
	assert.Contains(t, require["traits"], "fn mint(&mut self, amount: u128) -> Result<(), Error>;")
	assert.Contains(t, require["traits"], "fn total_supply(&self) -> u128;")

	assert.Contains(t, require["impls"], "pub const STORAGE_KEY: u32 = openbrush::storage_unique_key!(Data);")
	assert.Contains(t, require["impls"], "pub struct Data {")
	assert.Contains(t, require["impls"], "pub total_supply: u128,")
	assert.Contains(t, require["impls"], "pub _reserved: Option<()>,")
	assert.Contains(t, require["impls"], "impl<T> TokenTrait for T")
	assert.Contains(t, require["impls"], "T: Storage<Data>,")
	assert.Contains(t, require["impls"], "fn total_supply(&self) -> u128 {")
	assert.Contains(t, require["impls"], "self.data().total_supply")
	assert.Contains(t, require["impls"], "pub trait Internal {")
	assert.Contains(t, require["impls"], "fn _emit_transfer(&self, value: u128);")

	assert.Contains(t, require["lib"], "#[openbrush::contract]")
	assert.Contains(t, require["lib"], "pub mod token {")
	assert.Contains(t, require["lib"], "data: Data,")
	assert.Contains(t, require["lib"], "impl TokenTrait for Token {}")
	assert.Contains(t, require["lib"], "impl Internal for Token {")
	assert.Contains(t, require["lib"], "self.env().emit_event(Transfer { value });")
}

func TestLibraryRendersModuleWithFunctions(t *testing.T) {
	l := ir.NewLibrary("SafeMath")
	l.Functions = []ir.Function{
		{Header: ir.FunctionHeader{Name: "add", ReturnParams: []ir.FunctionParam{{Type: ir.Type{Kind: ir.TypeUint, Width: 128}}}}},
	}

	artifact := Library("SafeMath.sol", l)
	assert.Equal(t, "library", artifact.Name)
	assert.Contains(t, artifact.Content, "use scale::{Decode, Encode};")
	assert.Contains(t, artifact.Content, "pub enum Error {")
	assert.Contains(t, artifact.Content, "pub mod safe_math {")
	assert.Contains(t, artifact.Content, "pub fn add() -> Result<u128, Error> {")
}

func TestInterfaceRendersHeadersOnly(t *testing.T) {
	i := ir.NewInterface("IToken")
	i.FunctionHeaders = []ir.FunctionHeader{
		{Name: "balanceOf", External: true, View: true, Params: []ir.FunctionParam{{Name: "account", Type: ir.Type{Kind: ir.TypeAccountId}}}, ReturnParams: []ir.FunctionParam{{Type: ir.Type{Kind: ir.TypeUint, Width: 128}}}},
	}

	artifact := Interface("IToken.sol", i)
	assert.Equal(t, "interface", artifact.Name)
	assert.Contains(t, artifact.Content, "use scale::{Decode, Encode};")
	assert.Contains(t, artifact.Content, "pub type ITokenRef = dyn ITokenInterface;")
	assert.Contains(t, artifact.Content, "pub trait ITokenInterface {")
	assert.Contains(t, artifact.Content, "fn balanceOf(&self, account: AccountId) -> Result<u128, Error>;")
}

func TestToSnakeConvertsPascalCase(t *testing.T) {
	assert.Equal(t, "safe_math", toSnake("SafeMath"))
	assert.Equal(t, "token", toSnake("Token"))
}
