// Package emit renders the lowered IR into ink!-flavored Rust. Each
// top-level IR value (Contract, Library, Interface) produces one or more
// output files; which files and their exact shape follow spec.md §4.3.
package emit

import (
	"fmt"
	"strings"

	"github.com/oxhq/sol2ink/internal/ir"
)

// Artifact is one rendered output file.
type Artifact struct {
	Name    string // e.g. "traits", "impls", "lib", "interface", "library"
	Content string
}

// Contract renders a contract's three artifacts: trait, impl, and the
// deployable contract module.
func Contract(sourceFile string, c *ir.Contract) []Artifact {
	return []Artifact{
		{Name: "traits", Content: renderTrait(sourceFile, c)},
		{Name: "impls", Content: renderImpl(sourceFile, c)},
		{Name: "lib", Content: renderDeployable(sourceFile, c)},
	}
}

func Interface(sourceFile string, i *ir.Interface) Artifact {
	return Artifact{Name: "interface", Content: renderInterface(sourceFile, i)}
}

func Library(sourceFile string, l *ir.Library) Artifact {
	return Artifact{Name: "library", Content: renderLibrary(sourceFile, l)}
}

// renderTrait emits the external surface of a contract: the shared Error
// enum, the openbrush wrapper-type alias, and the trait definition itself
// with an `#[ink(message[, payable])]` header per external function plus
// one getter header per non-constant field (grounded on
// examples/contracts/ERC20/ERC20/erc_20/traits.rs and
// tests/generated/src/traits/access_control.rs).
func renderTrait(sourceFile string, c *ir.Contract) string {
	s := newStream()
	fileHeader(s, sourceFile, "trait")
	s.line("use scale::{Decode, Encode};")
	for _, line := range importsFor(c.Imports) {
		s.line(line)
	}
	s.blank()

	renderErrorEnum(s)
	renderEnums(s, c.Enums)
	renderStructs(s, c.Structs)

	s.line("#[openbrush::wrapper]")
	s.line("pub type %sRef = dyn %sTrait;", c.Name, c.Name)
	s.blank()

	s.open("#[openbrush::trait_definition]")
	s.indent--
	s.open("pub trait %sTrait {", c.Name)
	for _, fn := range c.Functions {
		if fn.Header.External {
			renderHeaderSignature(s, fn.Header, true)
		}
	}
	renderGetterHeaders(s, c.Fields)
	s.close("}")
	return s.String()
}

// renderErrorEnum emits the `Error { Custom(String) }` enum every
// generated impl references through `Error::Custom(...)`.
func renderErrorEnum(s *stream) {
	s.line("#[derive(Debug, Encode, Decode, PartialEq, Eq)]")
	s.line("#[cfg_attr(feature = \"std\", derive(scale_info::TypeInfo))]")
	s.open("pub enum Error {")
	s.line("Custom(String),")
	s.close("}")
	s.blank()
}

// renderImpl emits the contract's storage (the Data struct gated by
// STORAGE_KEY), its modifier definitions, a blanket implementation of the
// external trait over any `T: Storage<Data>`, and an Internal trait
// (non-external methods plus per-event emit hooks) with its own blanket
// default implementation — grounded on
// tests/generated/src/impls/access_control.rs.
func renderImpl(sourceFile string, c *ir.Contract) string {
	s := newStream()
	fileHeader(s, sourceFile, "impl")
	s.line("use super::traits::%sTrait;", c.Name)
	for _, line := range importsFor(c.Imports) {
		s.line(line)
	}
	s.blank()

	renderDataStruct(s, c.Fields)
	s.blank()

	renderModifierDefinitions(s, c.Modifiers, c.Name)

	s.open("impl<T> %sTrait for T", c.Name)
	s.indent--
	s.open("where")
	s.line("T: Storage<Data>,")
	s.close("{")
	for _, fn := range c.Functions {
		if fn.Header.External {
			renderFunctionImpl(s, fn, false)
		}
	}
	renderGetterImpls(s, c.Fields)
	s.close("}")
	s.blank()

	s.open("pub trait Internal {")
	for _, fn := range c.Functions {
		if !fn.Header.External {
			renderHeaderSignature(s, fn.Header, true)
		}
	}
	renderEmitHeaders(s, c.Events)
	s.close("}")
	s.blank()

	s.open("impl<T> Internal for T")
	s.indent--
	s.open("where")
	s.line("T: Storage<Data>,")
	s.close("{")
	for _, fn := range c.Functions {
		if !fn.Header.External {
			renderFunctionImpl(s, fn, false)
		}
	}
	renderEmitDefaultImpls(s, c.Events)
	s.close("}")
	return s.String()
}

// renderDataStruct emits the upgradeable-storage struct every impl
// function reaches its fields through: ordered non-constant fields
// followed by the trailing `_reserved` slot openbrush's storage layout
// needs for future additions.
func renderDataStruct(s *stream, fields []ir.ContractField) {
	s.line("pub const STORAGE_KEY: u32 = openbrush::storage_unique_key!(Data);")
	s.blank()
	s.line("#[derive(Default, Debug)]")
	s.open("#[openbrush::upgradeable_storage(STORAGE_KEY)]")
	s.indent--
	s.open("pub struct Data {")
	for _, f := range fields {
		if f.Constant {
			continue
		}
		s.line("pub %s: %s,", f.Name, renderType(f.Type))
	}
	s.line("pub _reserved: Option<()>,")
	s.close("}")
}

// renderModifierDefinitions emits one `#[modifier_definition]` function
// per contract modifier, each generic over the instance type it guards
// (the attribute-wrapped half of §4.2's modifier composition).
func renderModifierDefinitions(s *stream, modifiers []ir.Function, contractName string) {
	for _, m := range modifiers {
		extra := paramList(m.Header.Params, "")
		sig := "instance: &mut T, body: F"
		if extra != "" {
			sig += ", " + extra
		}
		s.line("#[modifier_definition]")
		s.open("pub fn %s<T, F, R>(%s) -> Result<R, Error>", m.Header.Name, sig)
		s.indent--
		s.open("where")
		s.line("T: %sTrait,", contractName)
		s.line("F: FnOnce(&mut T) -> Result<R, Error>,")
		s.close("{")
		if m.Body != nil {
			renderStatement(s, *m.Body)
		}
		s.close("}")
		s.blank()
	}
}

// renderGetterHeaders emits one trait header per non-constant field,
// mirroring assemble_getters_trait's filter exactly (no `public` check —
// preserved from the original even though it means every field gets a
// header, not just public ones).
func renderGetterHeaders(s *stream, fields []ir.ContractField) {
	for _, f := range fields {
		if f.Constant {
			continue
		}
		s.line("#[ink(message)]")
		s.line("fn %s(&self) -> %s;", f.Name, renderType(f.Type))
	}
}

// renderGetterImpls emits the bare-expression getter body for every
// public, non-constant field: raw return type, no Result wrap, no
// explicit `return` (spec.md §8 property 6, Scenario E).
func renderGetterImpls(s *stream, fields []ir.ContractField) {
	for _, f := range fields {
		if f.Constant || !f.Public {
			continue
		}
		s.open("fn %s(&self) -> %s {", f.Name, renderType(f.Type))
		s.line("self.data().%s", f.Name)
		s.close("}")
	}
}

// renderEmitHeaders emits one `_emit_<event>` header per event on the
// Internal trait, taking the event's fields as named parameters.
func renderEmitHeaders(s *stream, events []ir.Event) {
	for _, ev := range events {
		s.line("fn _emit_%s(&self%s);", toSnake(ev.Name), eventParamList(ev.Fields))
	}
}

// renderEmitDefaultImpls emits the Internal trait's blanket default
// bodies for each `_emit_*` hook: empty, since the blanket impl has no
// ink! environment to dispatch through (only the deployable contract's
// concrete wiring, in renderContractEmitFunctions, actually emits).
func renderEmitDefaultImpls(s *stream, events []ir.Event) {
	for _, ev := range events {
		placeholders := make([]string, 0, len(ev.Fields))
		for _, f := range ev.Fields {
			placeholders = append(placeholders, fmt.Sprintf("_: %s", renderType(f.Type)))
		}
		s.line("default fn _emit_%s(&self, %s) {}", toSnake(ev.Name), strings.Join(placeholders, ", "))
	}
}

func eventParamList(fields []ir.EventField) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(", ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(renderType(f.Type))
	}
	return b.String()
}

// renderDeployable emits the ink! contract module: the concrete storage
// struct (a single `data: Data` field under `#[storage_field]`), an empty
// blanket-trait impl, the Internal-trait wiring that actually dispatches
// each event, and the constructor — grounded on assemble_contract and a
// real generated lib.rs (tests/generated/contracts/erc_20/lib.rs).
func renderDeployable(sourceFile string, c *ir.Contract) string {
	s := newStream()
	fileHeader(s, sourceFile, "contract")
	s.open("#[openbrush::contract]")
	s.indent--
	s.open("pub mod %s {", toSnake(c.Name))
	s.line("use super::impls::*;")
	s.line("use super::traits::%sTrait;", c.Name)
	s.line("use ink_lang::codegen::{Env, EmitEvent};")
	s.line("use ink_storage::traits::SpreadAllocate;")
	s.line("use openbrush::traits::Storage;")
	s.blank()

	renderConstants(s, c.Fields)
	renderEvents(s, c.Events)

	s.open("#[ink(storage)]")
	s.indent--
	s.open("#[derive(Default, SpreadAllocate, Storage)]")
	s.indent--
	s.open("pub struct %s {", c.Name)
	s.line("#[storage_field]")
	s.line("data: Data,")
	s.close("}")
	s.blank()

	s.line("impl %sTrait for %s {}", c.Name, c.Name)
	s.blank()

	s.open("impl Internal for %s {", c.Name)
	renderContractEmitFunctions(s, c.Events)
	s.close("}")
	s.blank()

	s.open("impl %s {", c.Name)
	s.open("#[ink(constructor)]")
	s.indent--
	renderFunctionSignatureOpen(s, "new", c.Constructor.Header, false)
	s.open("ink_lang::codegen::initialize_contract(|instance: &mut Self| {")
	if c.Constructor.Body != nil {
		renderStatement(s, *c.Constructor.Body)
	}
	renderConstructorFieldInit(s, c.Fields)
	s.close("})")
	s.close("}")
	s.close("}")
	s.close("}")
	return s.String()
}

// renderConstants emits the contract's `constant`/`immutable` fields as
// top-level `pub const` bindings in the deployable module, since they
// never join the Data struct (assemble_constants).
func renderConstants(s *stream, fields []ir.ContractField) {
	any := false
	for _, f := range fields {
		if !f.Constant || f.InitialValue == nil {
			continue
		}
		s.line("pub const %s: %s = %s;", strings.ToUpper(toSnake(f.Name)), renderType(f.Type), renderExpr(*f.InitialValue))
		any = true
	}
	if any {
		s.blank()
	}
}

// renderContractEmitFunctions wires each `_emit_*` hook declared on
// Internal to an actual ink! event dispatch — the only place in the
// generated tree that calls `self.env().emit_event(...)`.
func renderContractEmitFunctions(s *stream, events []ir.Event) {
	for _, ev := range events {
		s.open("fn _emit_%s(&self%s) {", toSnake(ev.Name), eventParamList(ev.Fields))
		args := make([]string, 0, len(ev.Fields))
		for _, f := range ev.Fields {
			args = append(args, f.Name)
		}
		s.line("self.env().emit_event(%s { %s });", ev.Name, strings.Join(args, ", "))
		s.close("}")
	}
}

// renderConstructorFieldInit appends the field-initializer assignments
// Solidity's inline initializers (`uint256 x = 1;`) lower to: plain
// struct-field writes against the constructor's concrete `instance`,
// unlike the `.data()` accessor ordinary bodies use against generic T.
func renderConstructorFieldInit(s *stream, fields []ir.ContractField) {
	for _, f := range fields {
		if f.Constant || f.InitialValue == nil {
			continue
		}
		s.line("instance.data.%s = %s;", f.Name, renderExpr(*f.InitialValue))
	}
}

// renderInterface emits an interface-only file: wrapper-type alias plus
// trait definition, no Error enum (an interface never implements
// anything, so it never constructs one) and no impl/deployable file
// (Scenario F).
func renderInterface(sourceFile string, i *ir.Interface) string {
	s := newStream()
	fileHeader(s, sourceFile, "interface")
	s.line("use scale::{Decode, Encode};")
	for _, line := range importsFor(i.Imports) {
		s.line(line)
	}
	renderEnums(s, i.Enums)
	renderStructs(s, i.Structs)
	renderEvents(s, i.Events)

	s.line("#[openbrush::wrapper]")
	s.line("pub type %sRef = dyn %sInterface;", i.Name, i.Name)
	s.blank()

	s.open("#[openbrush::trait_definition]")
	s.indent--
	s.open("pub trait %sInterface {", i.Name)
	for _, h := range i.FunctionHeaders {
		renderHeaderSignature(s, h, true)
	}
	s.close("}")
	return s.String()
}

// renderLibrary emits a Solidity library as plain functions: its own bare
// Error enum (no derives — grounded on tests/generated/src/libs/
// safe_math.rs) since a library is never behind the Storage<Data> blanket
// impl and so has nowhere else to get one from.
func renderLibrary(sourceFile string, l *ir.Library) string {
	s := newStream()
	fileHeader(s, sourceFile, "library")
	s.line("use scale::{Decode, Encode};")
	for _, line := range importsFor(l.Imports) {
		s.line(line)
	}
	s.open("pub enum Error {")
	s.line("Custom(String),")
	s.close("}")
	s.blank()

	renderEnums(s, l.Enums)
	renderStructs(s, l.Structs)
	renderEvents(s, l.Events)

	s.open("pub mod %s {", toSnake(l.Name))
	for _, fn := range l.Functions {
		renderFunctionImpl(s, fn, true)
	}
	s.close("}")
	return s.String()
}

func renderEnums(s *stream, enums []ir.Enum) {
	for _, e := range enums {
		s.open("#[derive(Debug, Clone, Copy, PartialEq, Eq, scale::Encode, scale::Decode)]")
		s.indent--
		s.open("pub enum %s {", e.Name)
		for _, v := range e.Values {
			s.line("%s,", v.Name)
		}
		s.close("}")
		s.blank()
	}
}

func renderStructs(s *stream, structs []ir.Struct) {
	for _, st := range structs {
		s.open("#[derive(Default, Debug, Clone, scale::Encode, scale::Decode)]")
		s.indent--
		s.open("pub struct %s {", st.Name)
		for _, f := range st.Fields {
			s.line("pub %s: %s,", f.Name, renderType(f.Type))
		}
		s.close("}")
		s.blank()
	}
}

func renderEvents(s *stream, events []ir.Event) {
	for _, ev := range events {
		s.open("#[ink(event)]")
		s.indent--
		s.open("pub struct %s {", ev.Name)
		for _, f := range ev.Fields {
			if f.Indexed {
				s.line("#[ink(topic)]")
			}
			s.line("%s: %s,", f.Name, renderType(f.Type))
		}
		s.close("}")
		s.blank()
	}
}

// renderHeaderSignature renders one trait/interface/Internal-trait
// header. `#[ink(message[, payable])]` is only emitted for external
// headers (assemble_function_headers); internal headers get the leading
// underscore on their name instead.
func renderHeaderSignature(s *stream, h ir.FunctionHeader, semicolon bool) {
	if h.External {
		if h.Payable {
			s.line("#[ink(message, payable)]")
		} else {
			s.line("#[ink(message)]")
		}
	}
	name := h.Name
	if !h.External {
		name = "_" + name
	}
	selfArg := "&mut self"
	if h.View {
		selfArg = "&self"
	}
	params := paramList(h.Params, selfArg)
	ret := returnType(h.ReturnParams)
	if semicolon {
		s.line("fn %s(%s) -> %s;", name, params, ret)
	} else {
		s.line("fn %s(%s) -> %s", name, params, ret)
	}
}

func renderFunctionSignatureOpen(s *stream, name string, h ir.FunctionHeader, result bool) {
	params := paramList(h.Params, "")
	if result {
		s.open("pub fn %s(%s) -> %s {", name, params, returnType(h.ReturnParams))
	} else {
		s.open("pub fn %s(%s) -> Self {", name, params)
	}
}

// renderFunctionImpl renders one function body. Naming follows
// assemble_functions exactly: a library function is always `pub fn
// name`; a non-external contract method is `default fn _name`; an
// external one is plain `fn name`. A contract method's receiver is
// `&self` for `view` functions and `&mut self` otherwise; a library
// function is free-standing and takes no receiver.
func renderFunctionImpl(s *stream, fn ir.Function, library bool) {
	for _, m := range fn.Header.Modifiers {
		s.line("#[modifiers(%s)]", renderExpr(m))
	}
	name := fn.Header.Name
	prefix := ""
	switch {
	case library:
		prefix = "pub "
	case !fn.Header.External:
		prefix = "default "
		name = "_" + name
	}
	selfArg := "&mut self"
	if fn.Header.View {
		selfArg = "&self"
	}
	if library {
		selfArg = ""
	}
	params := paramList(fn.Header.Params, selfArg)
	s.open("%sfn %s(%s) -> %s {", prefix, name, params, returnType(fn.Header.ReturnParams))
	renderFunctionBody(s, fn.Header.ReturnParams, fn.Body)
	s.close("}")
}

// renderFunctionBody renders a named-return-param prelude (each return
// slot gets a `Default::default()` binding to assign into), the body
// itself, and — unless the body already ends in an explicit return — the
// trailing success value assemble_functions always appends: `Ok(())` for
// an empty return list, `Ok(name[, ...])` for named ones.
func renderFunctionBody(s *stream, returns []ir.FunctionParam, body *ir.Statement) {
	for _, r := range returns {
		if r.Name != "" {
			s.line("let mut %s = Default::default();", r.Name)
		}
	}
	if body != nil {
		renderStatement(s, *body)
	}
	switch {
	case hasReturnStatement(body):
	case len(returns) == 0:
		s.line("Ok(())")
	case returns[0].Name != "":
		names := make([]string, 0, len(returns))
		for _, r := range returns {
			names = append(names, r.Name)
		}
		if len(names) > 1 {
			s.line("Ok((%s))", strings.Join(names, ", "))
		} else {
			s.line("Ok(%s)", names[0])
		}
	}
}

// hasReturnStatement reports whether a block's last statement is a
// Return, matching assembler.rs's has_return_statement exactly: only the
// block's literal last entry counts, nested branches don't.
func hasReturnStatement(body *ir.Statement) bool {
	if body == nil {
		return false
	}
	if body.Kind != ir.StmtBlock && body.Kind != ir.StmtUncheckedBlock {
		return false
	}
	if len(body.Block) == 0 {
		return false
	}
	return body.Block[len(body.Block)-1].Kind == ir.StmtReturn
}

// paramList joins a receiver expression (empty string for none) with the
// function's formal parameters.
func paramList(params []ir.FunctionParam, selfArg string) string {
	parts := make([]string, 0, len(params)+1)
	if selfArg != "" {
		parts = append(parts, selfArg)
	}
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Name, renderType(p.Type)))
	}
	return strings.Join(parts, ", ")
}

func returnType(returns []ir.FunctionParam) string {
	if len(returns) == 0 {
		return "Result<(), Error>"
	}
	if len(returns) == 1 {
		return fmt.Sprintf("Result<%s, Error>", renderType(returns[0].Type))
	}
	parts := make([]string, 0, len(returns))
	for _, r := range returns {
		parts = append(parts, renderType(r.Type))
	}
	return fmt.Sprintf("Result<(%s), Error>", strings.Join(parts, ", "))
}

func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
