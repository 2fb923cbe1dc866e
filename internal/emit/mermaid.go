package emit

import (
	"fmt"
	"strings"

	"github.com/oxhq/sol2ink/internal/ir"
)

// Mermaid renders a Mermaid graph TD diagram of a contract's storage
// fields and functions. Ported from toml_builder.rs's generate_mermaid:
// one subgraph per contract, a storage node per field, a node per
// function colored by its external/view classification, and an edge
// from each function to every storage field it touches. The original
// distinguishes Read/Write/ReadStorage edges from a per-call trace this
// IR doesn't carry (the resolver only records which fields a function's
// storage-pointer environment touched, not the direction), so every
// access renders as a plain arrow instead of the original's three edge
// styles.
func Mermaid(contracts []*ir.Contract) string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	for _, c := range contracts {
		fmt.Fprintf(&b, "subgraph %s\n", c.Name)

		for _, f := range c.Fields {
			fmt.Fprintf(&b, "%s[(%s)]:::storage\n", f.Name, f.Name)
		}

		for _, fn := range c.Functions {
			fmt.Fprintf(&b, "%s[%s]:::%s\n", fn.Header.Name, fn.Header.Name, functionClass(fn.Header))
		}

		for _, fn := range c.Functions {
			for _, field := range c.Fields {
				if functionTouchesField(fn, field.Name) {
					fmt.Fprintf(&b, "%s --> %s\n", fn.Header.Name, field.Name)
				}
			}
		}

		b.WriteString("end\n")
	}

	b.WriteString("classDef storage fill:#ff00ff,stroke:#333,stroke-width:2px;\n")
	b.WriteString("classDef external fill:#ff0000,stroke:#333,stroke-width:2px;\n")
	b.WriteString("classDef external_view fill:#ffff00,stroke:#333,stroke-width:2px;\n")
	b.WriteString("classDef actor fill:#00ff00,stroke:#333,stroke-width:2px;\n")
	b.WriteString("classDef internal fill:#ff0000,stroke:#333,stroke-width:2px,stroke-dasharray: 5 5;\n")
	b.WriteString("classDef internal_view fill:#ffff00,stroke:#333,stroke-width:2px,stroke-dasharray: 5 5;\n")

	return b.String()
}

func functionClass(h ir.FunctionHeader) string {
	switch {
	case h.External && h.View:
		return "external_view"
	case h.External:
		return "external"
	case h.View:
		return "internal_view"
	default:
		return "internal"
	}
}

func functionTouchesField(fn ir.Function, field string) bool {
	return containsMemberRef(fn.Body, field)
}

func containsMemberRef(s *ir.Statement, field string) bool {
	if s == nil {
		return false
	}
	found := false
	walkStatement(*s, func(e ir.Expression) {
		if e.Kind == ir.ExprVariable && e.Name == field {
			found = true
		}
	})
	return found
}

// walkStatement visits every expression reachable from a statement tree.
func walkStatement(s ir.Statement, visit func(ir.Expression)) {
	if s.Expr != nil {
		walkExpr(*s.Expr, visit)
	}
	if s.Value != nil {
		walkExpr(*s.Value, visit)
	}
	if s.Cond != nil {
		walkExpr(*s.Cond, visit)
	}
	for _, child := range s.Block {
		walkStatement(child, visit)
	}
	if s.Init != nil {
		walkStatement(*s.Init, visit)
	}
	if s.Post != nil {
		walkStatement(*s.Post, visit)
	}
	if s.Body != nil {
		walkStatement(*s.Body, visit)
	}
	if s.Else != nil {
		walkStatement(*s.Else, visit)
	}
	for _, a := range s.RevertArgs {
		walkExpr(a, visit)
	}
}

func walkExpr(e ir.Expression, visit func(ir.Expression)) {
	visit(e)
	if e.Left != nil {
		walkExpr(*e.Left, visit)
	}
	if e.Right != nil {
		walkExpr(*e.Right, visit)
	}
	if e.Third != nil {
		walkExpr(*e.Third, visit)
	}
	if e.Operand != nil {
		walkExpr(*e.Operand, visit)
	}
	for _, a := range e.Args {
		walkExpr(a, visit)
	}
	for _, idx := range e.Indices {
		walkExpr(idx, visit)
	}
	if e.Callee != nil {
		walkExpr(*e.Callee, visit)
	}
	if e.Catch != nil {
		walkExpr(*e.Catch, visit)
	}
	for _, na := range e.NamedArg {
		walkExpr(na.Value, visit)
	}
}
