package solidity

import "github.com/alecthomas/participle/v2/lexer"

// tokenLexer is a stateless regex lexer for the subset of Solidity this
// translator understands. It does not lex every corner of the language:
// inline assembly / Yul blocks have no token or grammar rule, so a source
// file containing one fails to parse; natspec is matched by the Comment
// rule like any other comment.
var tokenLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*[\s\S]*?\*/`},
	{Name: "Pragma", Pattern: `pragma[^;]*;`},
	{Name: "Import", Pattern: `import[^;]*;`},
	{Name: "Float", Pattern: `\d+\.\d+([eE][+-]?\d+)?`},
	{Name: "Hex", Pattern: `0[xX][0-9a-fA-F]+`},
	{Name: "Int", Pattern: `\d+([eE][+-]?\d+)?`},
	{Name: "String", Pattern: `"([^"\\]|\\.)*"|'([^'\\]|\\.)*'`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Punct", Pattern: `\+\+|--|\*\*|<<|>>|<=|>=|==|!=|&&|\|\||\+=|-=|\*=|/=|%=|&=|\|=|\^=|<<=|>>=|=>|[-+*/%=<>!&|^~?:;,.(){}\[\]]`},
	{Name: "Whitespace", Pattern: `\s+`},
})
