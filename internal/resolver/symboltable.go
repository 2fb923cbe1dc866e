package resolver

import "github.com/oxhq/sol2ink/internal/ir"

// SymbolTable classifies every identifier visible within one contract,
// interface, or library scope. It is rebuilt from scratch for each file
// (spec: no shared mutable state across files) and, within a file, reset
// per contract scope.
type SymbolTable struct {
	members map[string]ir.Member
	structs map[string]ir.Struct
	enums   map[string]ir.Enum
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		members: make(map[string]ir.Member),
		structs: make(map[string]ir.Struct),
		enums:   make(map[string]ir.Enum),
	}
}

// Declare records (or overwrites) a member classification. Later
// declarations win on name collision, covering both legitimate shadowing
// and the open-question "overloaded function, later wins" case.
func (t *SymbolTable) Declare(name string, member ir.Member) {
	t.members[name] = member
}

// Lookup classifies a bare identifier. An unknown identifier (one never
// declared — e.g. a skipped constant/immutable field, per the open
// question) resolves to MemberNone so lowering can still emit a raw
// identifier reference instead of failing the file.
func (t *SymbolTable) Lookup(name string) ir.Member {
	if m, ok := t.members[name]; ok {
		return m
	}
	return ir.Member{Kind: ir.MemberNone, Type: ir.Type{Kind: ir.TypeNone}}
}

func (t *SymbolTable) DeclareStruct(s ir.Struct) { t.structs[s.Name] = s }
func (t *SymbolTable) DeclareEnum(e ir.Enum)     { t.enums[e.Name] = e }

func (t *SymbolTable) Struct(name string) (ir.Struct, bool) {
	s, ok := t.structs[name]
	return s, ok
}

func (t *SymbolTable) Enum(name string) (ir.Enum, bool) {
	e, ok := t.enums[name]
	return e, ok
}

// ModifierTable maps a bare modifier name to its lowered Function. Unlike
// SymbolTable it is not reset per contract: Resolve shares one table
// across every contract declared in a source file.
type ModifierTable struct {
	byName map[string]ir.Function
}

func NewModifierTable() *ModifierTable {
	return &ModifierTable{byName: make(map[string]ir.Function)}
}

func (m *ModifierTable) Declare(name string, fn ir.Function) { m.byName[name] = fn }

func (m *ModifierTable) Lookup(name string) (ir.Function, bool) {
	fn, ok := m.byName[name]
	return fn, ok
}
