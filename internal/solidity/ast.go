package solidity

// Package-level AST produced by participle. Field names follow the
// Solidity grammar productions they capture; lowering into internal/ir
// happens entirely in internal/resolver, which is the only consumer of
// this package outside of internal/solidity's own tests.

// SourceUnit is a whole .sol file: a sequence of top-level declarations.
// Pragma and Import directives are consumed by the lexer's Pragma/Import
// token rules and never reach this tree (observed, not materialized).
type SourceUnit struct {
	Units []*TopLevel `parser:"@@*"`
}

type TopLevel struct {
	Contract *ContractDecl `parser:"  @@"`
	Library  *LibraryDecl  `parser:"| @@"`
}

type ContractDecl struct {
	Kind  string          `parser:"@(\"contract\"|\"interface\")"`
	Name  string          `parser:"@Ident"`
	Bases []string        `parser:"( \"is\" @Ident ( \",\" @Ident )* )?"`
	Parts []*ContractPart `parser:"\"{\" @@* \"}\""`
}

type LibraryDecl struct {
	Name  string          `parser:"\"library\" @Ident"`
	Parts []*ContractPart `parser:"\"{\" @@* \"}\""`
}

type ContractPart struct {
	StateVar *StateVarDecl `parser:"( @@"`
	Struct   *StructDecl   `parser:"| @@"`
	Enum     *EnumDecl     `parser:"| @@"`
	Event    *EventDecl    `parser:"| @@"`
	Function *FunctionDecl `parser:"| @@ )"`
}

// StateVarDecl: <type> <modifiers...> <name> ( = <expr> )? ;
type StateVarDecl struct {
	Type      *TypeName `parser:"@@"`
	Modifiers []string  `parser:"@(\"public\"|\"private\"|\"internal\"|\"constant\"|\"immutable\")*"`
	Name      string    `parser:"@Ident"`
	Init      *Expr     `parser:"( \"=\" @@ )? \";\""`
}

type StructDecl struct {
	Name   string       `parser:"\"struct\" @Ident \"{\""`
	Fields []*FieldDecl `parser:"@@* \"}\""`
}

type FieldDecl struct {
	Type *TypeName `parser:"@@"`
	Name string    `parser:"@Ident \";\""`
}

type EnumDecl struct {
	Name   string   `parser:"\"enum\" @Ident \"{\""`
	Values []string `parser:"@Ident ( \",\" @Ident )* \"}\""`
}

type EventDecl struct {
	Name   string           `parser:"\"event\" @Ident \"(\""`
	Fields []*EventFieldAST `parser:"( @@ ( \",\" @@ )* )? \")\" \";\""`
}

type EventFieldAST struct {
	Type    *TypeName `parser:"@@"`
	Indexed bool      `parser:"@\"indexed\"?"`
	Name    string    `parser:"@Ident?"`
}

// FunctionDecl covers plain functions, the constructor, and modifiers;
// Kind distinguishes them since their header shapes diverge slightly.
type FunctionDecl struct {
	Kind        string             `parser:"@(\"function\"|\"constructor\"|\"modifier\")"`
	Name        string             `parser:"@Ident?"`
	Params      []*ParamAST        `parser:"\"(\" ( @@ ( \",\" @@ )* )? \")\""`
	Modifiers   []string           `parser:"@(\"external\"|\"public\"|\"private\"|\"internal\"|\"view\"|\"pure\"|\"payable\"|\"virtual\"|\"override\")*"`
	Invocations []*ModifierCallAST `parser:"@@*"`
	Returns     []*ParamAST        `parser:"( \"returns\" \"(\" ( @@ ( \",\" @@ )* )? \")\" )?"`
	Body        *Block             `parser:"( @@ | \";\" )"`
}

type ModifierCallAST struct {
	Name string  `parser:"@Ident"`
	Args []*Expr `parser:"( \"(\" ( @@ ( \",\" @@ )* )? \")\" )?"`
}

type ParamAST struct {
	Type     *TypeName `parser:"@@"`
	Location string    `parser:"@(\"memory\"|\"storage\"|\"calldata\")?"`
	Name     string    `parser:"@Ident?"`
}

// TypeName is a recursive type grammar: a plain named type with zero or
// more array dimensions, or a mapping whose key/value are themselves
// TypeNames. Solidity source never nests keys (multi-key mappings are a
// lowering-time flattening of mapping-of-mapping, not source syntax).
type TypeName struct {
	Mapping *MappingType `parser:"( @@"`
	Plain   *PlainType   `parser:"| @@ )"`
}

type MappingType struct {
	Key   *TypeName `parser:"\"mapping\" \"(\" @@ \"=>\""`
	Value *TypeName `parser:"@@ \")\""`
}

type PlainType struct {
	Name string      `parser:"@Ident"`
	Dims []*ArrayDim `parser:"@@*"`
}

type ArrayDim struct {
	Size *Expr `parser:"\"[\" @@? \"]\""`
}
