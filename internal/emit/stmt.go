package emit

import "github.com/oxhq/sol2ink/internal/ir"

func renderStatement(s *stream, st ir.Statement) {
	switch st.Kind {
	case ir.StmtBlock:
		for _, inner := range st.Block {
			renderStatement(s, inner)
		}
	case ir.StmtUncheckedBlock:
		s.open("{")
		for _, inner := range st.Block {
			renderStatement(s, inner)
		}
		s.close("}")
	case ir.StmtExpression:
		s.line("%s;", renderExpr(*st.Expr))
	case ir.StmtVariableDefinition:
		if st.Value == nil {
			s.line("%s;", renderExpr(*st.Expr))
		} else {
			s.line("%s = %s;", renderExpr(*st.Expr), renderExpr(*st.Value))
		}
	case ir.StmtIf:
		s.open("if %s {", renderExpr(*st.Cond))
		renderStatement(s, *st.Body)
		if st.Else != nil {
			s.close("} else {")
			s.indent++
			renderStatement(s, *st.Else)
			s.close("}")
		} else {
			s.close("}")
		}
	case ir.StmtFor:
		renderFor(s, st)
	case ir.StmtWhile:
		s.open("while %s {", renderExpr(*st.Cond))
		renderStatement(s, *st.Body)
		s.close("}")
	case ir.StmtDoWhile:
		s.open("loop {")
		renderStatement(s, *st.Body)
		s.line("if !(%s) { break; }", renderExpr(*st.Cond))
		s.close("}")
	case ir.StmtReturn:
		if st.Value == nil {
			s.line("return Ok(());")
		} else {
			s.line("return Ok(%s);", renderExpr(*st.Value))
		}
	case ir.StmtBreak:
		s.line("break;")
	case ir.StmtContinue:
		s.line("continue;")
	case ir.StmtEmit:
		s.line("%s;", renderEmitCall(*st.Expr))
	case ir.StmtRevert:
		s.line("return Err(Error::Custom(String::from(\"%s\")));", st.RevertMessage)
	case ir.StmtPlaceholder:
		s.line("// TODO: %s", st.PlaceholderNote)
	default:
		s.line("// TODO: unsupported statement")
	}
}

func renderFor(s *stream, st ir.Statement) {
	s.line("{")
	s.indent++
	if st.Init != nil {
		renderStatement(s, *st.Init)
	}
	cond := "true"
	if st.Cond != nil {
		cond = renderExpr(*st.Cond)
	}
	s.open("while %s {", cond)
	renderStatement(s, *st.Body)
	if st.Post != nil {
		renderStatement(s, *st.Post)
	}
	s.close("}")
	s.indent--
	s.line("}")
}
