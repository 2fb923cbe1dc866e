package solidity

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/oxhq/sol2ink/internal/ir"
)

var grammar = participle.MustBuild[SourceUnit](
	participle.Lexer(tokenLexer),
	participle.Elide("Whitespace", "Comment", "Pragma", "Import"),
	participle.Unquote("String"),
	participle.UseLookahead(4),
)

// Parse parses a single Solidity source file into its participle AST.
// Grammar/lexer failures are wrapped into an ir.TranslateError with kind
// FileCorrupted carrying participle's own positional message, matching
// the error taxonomy's contract that a corrupted file produces a list of
// human-readable messages rather than a panic.
func Parse(filename string, source []byte) (*SourceUnit, error) {
	unit, err := grammar.ParseBytes(filename, source)
	if err != nil {
		return nil, ir.WrapError(ir.FileCorrupted, filename, fmt.Sprintf("parse error: %v", err), err)
	}
	return unit, nil
}
