package resolver

import "github.com/oxhq/sol2ink/internal/ir"

// modifierShape classifies a lowered modifier body so composition knows
// whether it can become an ink! `#[modifiers(name(args))]` attribute or
// must be inlined into the calling function's body.
type modifierShape struct {
	pre  []ir.Statement // statements before the `_;` sentinel
	post []ir.Statement // statements after it
	ok   bool           // false if no ModifierBody sentinel was found at all
}

// analyzeModifier walks a modifier's lowered body looking for the single
// ir.StmtExpression wrapping an ExprModifierBody ("_;" in source) and
// splits the surrounding block around it.
func analyzeModifier(body *ir.Statement) modifierShape {
	if body == nil || body.Kind != ir.StmtBlock {
		return modifierShape{}
	}
	for i, s := range body.Block {
		if s.Kind == ir.StmtExpression && s.Expr != nil && s.Expr.Kind == ir.ExprModifierBody {
			return modifierShape{pre: body.Block[:i], post: body.Block[i+1:], ok: true}
		}
	}
	return modifierShape{}
}

// canAttributeWrap reports whether a modifier can be rendered as an ink!
// `#[modifiers(...)]` attribute: its body must consist of pre-checks up
// to and including the `_;` sentinel with nothing after it, since ink!'s
// attribute macro only supports a before-wrapper, not arbitrary
// post-processing (matching assembler.rs's Modifier vs InvalidModifier
// expression split).
func canAttributeWrap(shape modifierShape) bool {
	return shape.ok && len(shape.post) == 0
}

// composeModifiers resolves a function's modifier-invocation list against
// the modifier table, splitting attribute-wrappable ones from those that
// must be inlined (spec.md §4.2 "Modifier composition").
func (r *fileResolver) composeModifiers(invocations []ir.Expression) (attrs []ir.Expression, invalid []ir.Expression) {
	for _, inv := range invocations {
		fn, found := r.modifiers.Lookup(inv.Name)
		if !found {
			invalid = append(invalid, inv)
			continue
		}
		shape := analyzeModifier(fn.Body)
		if canAttributeWrap(shape) {
			attrs = append(attrs, inv)
		} else {
			invalid = append(invalid, inv)
		}
	}
	return attrs, invalid
}

// inlineModifiers prepends every invalid modifier's text to the function
// body, in call order: for each one, a `let` binding per formal parameter
// (bound to the call-site actual) followed by the modifier's body with
// the `_;` sentinel removed — never the modifier wrapped around the
// original body, since an inlined modifier that returns early still
// needs the caller's statements to follow textually (spec.md §4.2
// "Modifier composition", Scenario D).
func inlineModifiers(body ir.Statement, invalid []ir.Expression, modifiers *ModifierTable) ir.Statement {
	var prelude []ir.Statement
	for _, inv := range invalid {
		fn, ok := modifiers.Lookup(inv.Name)
		if !ok {
			continue
		}
		for i, param := range fn.Header.Params {
			if i >= len(inv.Args) {
				break
			}
			arg := inv.Args[i]
			paramType := param.Type
			decl := ir.Expression{Kind: ir.ExprVariableDeclaration, Name: param.Name, DeclType: &paramType}
			prelude = append(prelude, ir.Statement{Kind: ir.StmtVariableDefinition, Expr: &decl, Value: &arg})
		}
		prelude = append(prelude, inlinedModifierBody(fn.Body)...)
	}
	if len(prelude) == 0 {
		return body
	}
	combined := make([]ir.Statement, 0, len(prelude)+1)
	combined = append(combined, prelude...)
	combined = append(combined, body)
	return ir.Block(combined)
}

// inlinedModifierBody strips the `_;` sentinel (ExprModifierBody) and
// returns the remaining statements flat, pre- and post-sentinel alike.
func inlinedModifierBody(body *ir.Statement) []ir.Statement {
	if body == nil || (body.Kind != ir.StmtBlock && body.Kind != ir.StmtUncheckedBlock) {
		return nil
	}
	out := make([]ir.Statement, 0, len(body.Block))
	for _, st := range body.Block {
		if st.Kind == ir.StmtExpression && st.Expr != nil && st.Expr.Kind == ir.ExprModifierBody {
			continue
		}
		out = append(out, st)
	}
	return out
}
