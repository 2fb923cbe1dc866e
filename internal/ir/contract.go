package ir

// ContractField is one storage field of a contract or library.
type ContractField struct {
	Type         Type
	Name         string
	InitialValue *Expression
	Constant     bool
	Public       bool
}

// EventField is one field of an event definition.
type EventField struct {
	Indexed bool
	Type    Type
	Name    string
}

// Event is a Solidity event, lowered to an ink! `#[ink(event)]` struct.
type Event struct {
	Name   string
	Fields []EventField
}

// EnumValue is one variant of an enum.
type EnumValue struct {
	Name string
}

// Enum is a Solidity enum, lowered to a Rust C-like enum.
type Enum struct {
	Name   string
	Values []EnumValue
}

// StructField is one field of a struct definition.
type StructField struct {
	Name string
	Type Type
}

// Struct is a Solidity struct, lowered to a `#[derive...] struct`.
type Struct struct {
	Name   string
	Fields []StructField
}

// FunctionParam is one parameter or return value slot.
type FunctionParam struct {
	Name string
	Type Type
}

// FunctionHeader is the signature portion of a function: everything the
// trait file and the interface file need without the body.
type FunctionHeader struct {
	Name            string
	Params          []FunctionParam
	External        bool
	View            bool
	Payable         bool
	ReturnParams    []FunctionParam
	Modifiers       []Expression // ExprModifier entries, attribute-wrapped
	InvalidModifiers []Expression // modifiers that could not be resolved, inlined instead
}

// Function pairs a header with an optional body. A nil Body means the
// header came from an interface (no implementation to emit).
type Function struct {
	Header FunctionHeader
	Body   *Statement

	// InvalidModifiers maps (contract, modifier) pairs whose bodies had to
	// be inlined because the modifier itself could not be attribute-wrapped
	// (spec.md §4.2 "Modifier composition" fallback path).
	InvalidModifiers map[ModifierKey]Function
}

// ModifierKey identifies an inlined-modifier entry.
type ModifierKey struct {
	Contract string
	Modifier string
}

// Contract is the top-level unit a `contract` block lowers to.
type Contract struct {
	Name        string
	Fields      []ContractField
	Constructor Function
	Events      []Event
	Enums       []Enum
	Structs     []Struct
	Functions   []Function
	Modifiers   []Function
	Imports     *ImportSet
	Base        []string // direct inheritance list, declaration order
}

// Library is the top-level unit a `library` block lowers to.
type Library struct {
	Name      string
	Fields    []ContractField
	Events    []Event
	Enums     []Enum
	Structs   []Struct
	Functions []Function
	Imports   *ImportSet
}

// Interface is the top-level unit an `interface` block lowers to: headers
// only, no bodies, no storage fields.
type Interface struct {
	Name            string
	Events          []Event
	Enums           []Enum
	Structs         []Struct
	FunctionHeaders []FunctionHeader
	Imports         *ImportSet
}

func NewContract(name string) *Contract {
	return &Contract{Name: name, Imports: NewImportSet()}
}

func NewLibrary(name string) *Library {
	return &Library{Name: name, Imports: NewImportSet()}
}

func NewInterface(name string) *Interface {
	return &Interface{Name: name, Imports: NewImportSet()}
}
