package resolver

import (
	"github.com/oxhq/sol2ink/internal/ir"
	"github.com/oxhq/sol2ink/internal/solidity"
)

// declareParts runs the declaration pass over one contract/library/
// interface body: every struct, enum, function, and field name is
// classified in the symbol table before any body is lowered, so a
// forward reference (a function calling one declared later in the file)
// resolves correctly.
func (r *fileResolver) declareParts(parts []*solidity.ContractPart) {
	for _, part := range parts {
		switch {
		case part.Struct != nil:
			r.declareStruct(part.Struct)
		case part.Enum != nil:
			r.declareEnum(part.Enum)
		}
	}
	for _, part := range parts {
		switch {
		case part.StateVar != nil:
			r.declareStateVar(part.StateVar)
		case part.Function != nil:
			r.declareFunction(part.Function)
		}
	}
}

func (r *fileResolver) declareStruct(s *solidity.StructDecl) {
	fields := make([]ir.StructField, 0, len(s.Fields))
	for _, f := range s.Fields {
		fields = append(fields, ir.StructField{Name: mangle(f.Name), Type: r.lowerType(f.Type)})
	}
	st := ir.Struct{Name: s.Name, Fields: fields}
	r.symbols.DeclareStruct(st)
	r.structs[s.Name] = st
}

func (r *fileResolver) declareEnum(e *solidity.EnumDecl) {
	values := make([]ir.EnumValue, 0, len(e.Values))
	for _, v := range e.Values {
		values = append(values, ir.EnumValue{Name: v})
	}
	r.symbols.DeclareEnum(ir.Enum{Name: e.Name, Values: values})
}

// declareStateVar classifies a field. Constant and immutable fields are
// deliberately skipped (spec open question: they are never emitted as
// storage and a later reference falls back to MemberNone).
func (r *fileResolver) declareStateVar(s *solidity.StateVarDecl) {
	if hasModifier(s.Modifiers, "constant") || hasModifier(s.Modifiers, "immutable") {
		return
	}
	t := r.lowerType(s.Type)
	r.symbols.Declare(s.Name, ir.Member{Kind: ir.MemberStorageField, Type: t})
}

func (r *fileResolver) declareFunction(f *solidity.FunctionDecl) {
	kind := ir.MemberFunction
	if hasModifier(f.Modifiers, "private") || hasModifier(f.Modifiers, "internal") {
		kind = ir.MemberFunctionPrivate
	}
	if f.Kind == "function" && f.Name != "" {
		r.symbols.Declare(f.Name, ir.Member{Kind: kind})
	}
}

func hasModifier(mods []string, want string) bool {
	for _, m := range mods {
		if m == want {
			return true
		}
	}
	return false
}

func eventFields(event *solidity.EventDecl, r *fileResolver) ir.Event {
	fields := make([]ir.EventField, 0, len(event.Fields))
	for _, f := range event.Fields {
		fields = append(fields, ir.EventField{
			Indexed: f.Indexed,
			Type:    r.lowerType(f.Type),
			Name:    mangle(f.Name),
		})
	}
	return ir.Event{Name: event.Name, Fields: fields}
}
