package resolver

import (
	"github.com/oxhq/sol2ink/internal/ir"
	"github.com/oxhq/sol2ink/internal/solidity"
)

func (r *fileResolver) lowerBlock(b *solidity.Block, loc ir.VariableAccessLocation) ir.Statement {
	r.pointers.enterBlock()
	defer r.pointers.leaveBlock()

	stmts := make([]ir.Statement, 0, len(b.Statements))
	for _, s := range b.Statements {
		stmts = append(stmts, r.lowerStatement(s, loc))
	}
	return ir.Block(stmts)
}

func (r *fileResolver) lowerStatement(s *solidity.Statement, loc ir.VariableAccessLocation) ir.Statement {
	switch {
	case s.If != nil:
		cond := r.lowerExpr(s.If.Cond, loc)
		then := r.lowerStatement(s.If.Then, loc)
		var elseStmt *ir.Statement
		if s.If.Else != nil {
			e := r.lowerStatement(s.If.Else, loc)
			elseStmt = &e
		}
		return ir.Statement{Kind: ir.StmtIf, Cond: &cond, Body: &then, Else: elseStmt}

	case s.For != nil:
		var init, post *ir.Statement
		var cond *ir.Expression
		r.pointers.enterBlock()
		defer r.pointers.leaveBlock()
		if s.For.Init != nil {
			i := r.lowerStatement(s.For.Init, loc)
			init = &i
		}
		if s.For.Cond != nil {
			c := r.lowerExpr(s.For.Cond, loc)
			cond = &c
		}
		if s.For.Post != nil {
			p := ir.ExprStmt(r.lowerExpr(s.For.Post, loc))
			post = &p
		}
		body := r.lowerStatement(s.For.Body, loc)
		return ir.Statement{Kind: ir.StmtFor, Init: init, Cond: cond, Post: post, Body: &body}

	case s.While != nil:
		cond := r.lowerExpr(s.While.Cond, loc)
		body := r.lowerStatement(s.While.Body, loc)
		return ir.Statement{Kind: ir.StmtWhile, Cond: &cond, Body: &body}

	case s.DoWhile != nil:
		body := r.lowerStatement(s.DoWhile.Body, loc)
		cond := r.lowerExpr(s.DoWhile.Cond, loc)
		return ir.Statement{Kind: ir.StmtDoWhile, Body: &body, Cond: &cond}

	case s.Return != nil:
		if s.Return.Value == nil {
			return ir.Statement{Kind: ir.StmtReturn}
		}
		v := r.lowerExpr(s.Return.Value, loc)
		return ir.Statement{Kind: ir.StmtReturn, Value: &v}

	case s.Emit != nil:
		call := r.lowerExpr(s.Emit.Call, loc)
		// Only a bare event name resolves to an _emit_ hook; a
		// member-access callee (`emit Lib.SomeEvent(...)`) does not.
		if call.Kind != ir.ExprFunctionCall || call.Callee == nil || call.Callee.Kind != ir.ExprVariable {
			return ir.Placeholder("emit of a member-access event is not supported")
		}
		return ir.Statement{Kind: ir.StmtEmit, Expr: lowerEmitCall(call, loc)}

	case s.Revert != nil:
		args := make([]ir.Expression, 0, len(s.Revert.Args))
		for _, a := range s.Revert.Args {
			args = append(args, r.lowerExpr(a, loc))
		}
		return ir.Statement{Kind: ir.StmtRevert, RevertMessage: s.Revert.Name, RevertArgs: args}

	case s.Break:
		return ir.Statement{Kind: ir.StmtBreak}

	case s.Continue:
		return ir.Statement{Kind: ir.StmtContinue}

	case s.Unchecked != nil:
		block := r.lowerBlock(s.Unchecked.Body, loc)
		return ir.Statement{Kind: ir.StmtUncheckedBlock, Block: block.Block}

	case s.Block != nil:
		return r.lowerBlock(s.Block, loc)

	case s.VarDef != nil:
		t := r.lowerType(s.VarDef.Type)
		name := mangle(s.VarDef.Name)
		decl := ir.Expression{Kind: ir.ExprVariableDeclaration, DeclType: &t, Name: name}
		r.symbols.Declare(s.VarDef.Name, ir.Member{Kind: ir.MemberVariable, Type: t})
		if isStorageStructPointer(t, r.structs) {
			r.pointers.declare(s.VarDef.Name, t)
		}
		if s.VarDef.Init == nil {
			return ir.Statement{Kind: ir.StmtVariableDefinition, Value: nil, Expr: &decl}
		}
		v := r.lowerExpr(s.VarDef.Init, loc)
		return ir.Statement{Kind: ir.StmtVariableDefinition, Expr: &decl, Value: &v}

	case s.ExprStmt != nil:
		e := r.lowerExpr(s.ExprStmt.Expr, loc)
		return ir.Statement{Kind: ir.StmtExpression, Expr: &e}

	default:
		return ir.Placeholder("unrecognized statement form")
	}
}

// lowerEmitCall rewrites `emit Transfer(a, b, c)`'s lowered call so it
// invokes the synthesized `_emit_transfer` hook instead of a bare
// `Transfer(...)` call, matching spec.md §4.2 "Event emission" and the
// deployable-file wiring in §4.3.3.
func lowerEmitCall(call ir.Expression, loc ir.VariableAccessLocation) *ir.Expression {
	name := "emit_" + toSnakeCase(call.Callee.Name)
	callee := ir.Expression{Kind: ir.ExprVariable, Name: name, Member: ir.MemberFunctionPrivate, Location: loc}
	lowered := ir.Expression{Kind: ir.ExprFunctionCall, Callee: &callee, Args: call.Args}
	return &lowered
}

func toSnakeCase(name string) string {
	var b []byte
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				b = append(b, '_')
			}
			b = append(b, c-'A'+'a')
		} else {
			b = append(b, c)
		}
	}
	return string(b)
}

// isStorageStructPointer reports whether a declared type is a bare
// (non-array, non-mapping) reference to a known struct — the shape the
// storage-pointer environment tracks as a potential alias.
func isStorageStructPointer(t ir.Type, structs map[string]ir.Struct) bool {
	if t.Kind != ir.TypeVariable {
		return false
	}
	_, ok := structs[t.Name]
	return ok
}
