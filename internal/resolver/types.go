package resolver

import (
	"strconv"
	"strings"

	"github.com/oxhq/sol2ink/internal/ir"
	"github.com/oxhq/sol2ink/internal/solidity"
)

// roundWidth rounds a Solidity int/uint bit width up to the nearest width
// ink!/Rust actually has a native integer for: 8, 16, 32, 64, 128.
func roundWidth(bits uint16) uint16 {
	switch {
	case bits <= 8:
		return 8
	case bits <= 16:
		return 16
	case bits <= 32:
		return 32
	case bits <= 64:
		return 64
	default:
		return 128
	}
}

// lowerType converts a parsed TypeName into its IR form. Array
// dimensions wrap left-to-right, the rightmost becoming the outermost, so
// `uint[][3]` lowers to Array(Array(Uint,None), Some(3)) matching
// Solidity's declaration order.
func (r *fileResolver) lowerType(t *solidity.TypeName) ir.Type {
	if t == nil {
		return ir.Type{Kind: ir.TypeNone}
	}
	if t.Mapping != nil {
		key := r.lowerType(t.Mapping.Key)
		val := r.lowerType(t.Mapping.Value)
		// mapping(K1 => mapping(K2 => V)) flattens to a single
		// tuple-keyed Mapping([K1, K2], V) — ink!'s Mapping has no
		// native nesting, so every Solidity nested-mapping declaration
		// becomes one Mapping whose key is a tuple of all the levels.
		if val.Kind == ir.TypeMapping {
			return ir.Type{Kind: ir.TypeMapping, Keys: append([]ir.Type{key}, val.Keys...), Value: val.Value}
		}
		return ir.Type{Kind: ir.TypeMapping, Keys: []ir.Type{key}, Value: &val}
	}
	return r.lowerPlainType(t.Plain)
}

func (r *fileResolver) lowerPlainType(p *solidity.PlainType) ir.Type {
	base := baseType(p.Name)
	for i := 0; i < len(p.Dims); i++ {
		dim := p.Dims[i]
		var length *ir.Expression
		if dim.Size != nil {
			e := r.lowerExpr(dim.Size, accessAny)
			length = &e
		}
		elem := base
		base = ir.Type{Kind: ir.TypeArray, Elem: &elem, Length: length}
	}
	return base
}

func baseType(name string) ir.Type {
	switch {
	case name == "address":
		return ir.Type{Kind: ir.TypeAccountId}
	case name == "bool":
		return ir.Type{Kind: ir.TypeBool}
	case name == "string":
		return ir.Type{Kind: ir.TypeString}
	case name == "bytes":
		return ir.Type{Kind: ir.TypeDynamicBytes}
	case strings.HasPrefix(name, "uint"):
		return ir.Type{Kind: ir.TypeUint, Width: roundWidth(intSuffix(name, "uint", 256))}
	case strings.HasPrefix(name, "int"):
		return ir.Type{Kind: ir.TypeInt, Width: roundWidth(intSuffix(name, "int", 256))}
	case strings.HasPrefix(name, "bytes"):
		n := intSuffix(name, "bytes", 32)
		return ir.Type{Kind: ir.TypeBytes, ByteLen: uint8(n)}
	default:
		return ir.Type{Kind: ir.TypeVariable, Name: name}
	}
}

func intSuffix(name, prefix string, fallback uint16) uint16 {
	rest := strings.TrimPrefix(name, prefix)
	if rest == "" {
		return fallback
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return fallback
	}
	return uint16(n)
}
