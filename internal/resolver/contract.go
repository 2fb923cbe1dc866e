package resolver

import (
	"github.com/oxhq/sol2ink/internal/ir"
	"github.com/oxhq/sol2ink/internal/solidity"
)

func resolveContract(filename string, decl *solidity.ContractDecl, modifiers *ModifierTable) (*ir.Contract, error) {
	r := newFileResolver(filename, decl.Name, modifiers)
	r.declareParts(decl.Parts)

	// Modifiers are declared (and their bodies lowered) before any
	// function body pass, since composeModifiers needs their shape.
	for _, part := range decl.Parts {
		if part.Function != nil && part.Function.Kind == "modifier" {
			fn := r.lowerFunction(part.Function, ir.AccessModifier)
			r.modifiers.Declare(part.Function.Name, fn)
		}
	}

	c := ir.NewContract(decl.Name)
	c.Base = decl.Bases
	c.Imports = r.imports

	for _, part := range decl.Parts {
		switch {
		case part.StateVar != nil:
			c.Fields = append(c.Fields, r.lowerField(part.StateVar))
		case part.Struct != nil:
			c.Structs = append(c.Structs, mustStruct(r, part.Struct.Name))
		case part.Enum != nil:
			c.Enums = append(c.Enums, mustEnum(r, part.Enum.Name))
		case part.Event != nil:
			c.Events = append(c.Events, eventFields(part.Event, r))
		case part.Function != nil:
			switch part.Function.Kind {
			case "constructor":
				c.Constructor = r.lowerFunction(part.Function, ir.AccessConstructor)
			case "modifier":
				c.Modifiers = append(c.Modifiers, mustModifier(r, part.Function.Name))
			default:
				c.Functions = append(c.Functions, r.lowerFunction(part.Function, ir.AccessAny))
			}
		}
	}

	return c, nil
}

func resolveLibrary(filename string, decl *solidity.LibraryDecl) (*ir.Library, error) {
	r := newFileResolver(filename, decl.Name, nil)
	r.declareParts(decl.Parts)

	l := ir.NewLibrary(decl.Name)
	l.Imports = r.imports

	for _, part := range decl.Parts {
		switch {
		case part.StateVar != nil:
			l.Fields = append(l.Fields, r.lowerField(part.StateVar))
		case part.Struct != nil:
			l.Structs = append(l.Structs, mustStruct(r, part.Struct.Name))
		case part.Enum != nil:
			l.Enums = append(l.Enums, mustEnum(r, part.Enum.Name))
		case part.Event != nil:
			l.Events = append(l.Events, eventFields(part.Event, r))
		case part.Function != nil && part.Function.Kind == "function":
			l.Functions = append(l.Functions, r.lowerFunction(part.Function, ir.AccessAny))
		}
	}

	return l, nil
}

func resolveInterface(filename string, decl *solidity.ContractDecl) (*ir.Interface, error) {
	r := newFileResolver(filename, decl.Name, nil)
	r.declareParts(decl.Parts)

	i := ir.NewInterface(decl.Name)
	i.Imports = r.imports

	for _, part := range decl.Parts {
		switch {
		case part.Struct != nil:
			i.Structs = append(i.Structs, mustStruct(r, part.Struct.Name))
		case part.Enum != nil:
			i.Enums = append(i.Enums, mustEnum(r, part.Enum.Name))
		case part.Event != nil:
			i.Events = append(i.Events, eventFields(part.Event, r))
		case part.Function != nil && part.Function.Kind == "function":
			header := r.lowerHeader(part.Function)
			i.FunctionHeaders = append(i.FunctionHeaders, header)
		}
	}

	return i, nil
}

func (r *fileResolver) lowerField(s *solidity.StateVarDecl) ir.ContractField {
	t := r.lowerType(s.Type)
	field := ir.ContractField{
		Type:     t,
		Name:     mangle(s.Name),
		Constant: hasModifier(s.Modifiers, "constant") || hasModifier(s.Modifiers, "immutable"),
		Public:   hasModifier(s.Modifiers, "public"),
	}
	if s.Init != nil {
		v := r.lowerExpr(s.Init, ir.AccessAny)
		field.InitialValue = &v
	}
	if t.Kind == ir.TypeMapping {
		r.imports.Add(ir.ImportMapping)
	}
	return field
}

func (r *fileResolver) lowerHeader(f *solidity.FunctionDecl) ir.FunctionHeader {
	params := make([]ir.FunctionParam, 0, len(f.Params))
	for _, p := range f.Params {
		params = append(params, ir.FunctionParam{Name: mangle(p.Name), Type: r.lowerType(p.Type)})
	}
	returns := make([]ir.FunctionParam, 0, len(f.Returns))
	for _, p := range f.Returns {
		returns = append(returns, ir.FunctionParam{Name: mangle(p.Name), Type: r.lowerType(p.Type)})
	}
	return ir.FunctionHeader{
		Name:         mangle(f.Name),
		Params:       params,
		External:     hasModifier(f.Modifiers, "external") || hasModifier(f.Modifiers, "public"),
		View:         hasModifier(f.Modifiers, "view") || hasModifier(f.Modifiers, "pure"),
		Payable:      hasModifier(f.Modifiers, "payable"),
		ReturnParams: returns,
	}
}

func (r *fileResolver) lowerFunction(f *solidity.FunctionDecl, loc ir.VariableAccessLocation) ir.Function {
	header := r.lowerHeader(f)
	r.location = loc

	invocations := make([]ir.Expression, 0, len(f.Invocations))
	for _, call := range f.Invocations {
		args := make([]ir.Expression, 0, len(call.Args))
		for _, a := range call.Args {
			args = append(args, r.lowerExpr(a, loc))
		}
		invocations = append(invocations, ir.Expression{Kind: ir.ExprModifier, Name: call.Name, Args: args})
	}

	var body *ir.Statement
	if f.Body != nil {
		b := r.lowerBlock(f.Body, loc)
		body = &b
	}

	fn := ir.Function{Header: header, Body: body}

	if len(invocations) > 0 {
		attrs, invalid := r.composeModifiers(invocations)
		header.Modifiers = attrs
		header.InvalidModifiers = invalid
		fn.Header = header
		if len(invalid) > 0 && body != nil {
			inlined := inlineModifiers(*body, invalid, r.modifiers)
			fn.Body = &inlined
		}
	}

	return fn
}

func mustStruct(r *fileResolver, name string) ir.Struct {
	s, _ := r.symbols.Struct(name)
	return s
}

func mustEnum(r *fileResolver, name string) ir.Enum {
	e, _ := r.symbols.Enum(name)
	return e
}

func mustModifier(r *fileResolver, name string) ir.Function {
	fn, _ := r.modifiers.Lookup(name)
	return fn
}
