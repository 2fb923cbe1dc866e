package emit

import (
	"fmt"
	"strings"

	"github.com/oxhq/sol2ink/internal/ir"
)

func renderType(t ir.Type) string {
	switch t.Kind {
	case ir.TypeAccountId:
		return "AccountId"
	case ir.TypeBool:
		return "bool"
	case ir.TypeString:
		return "String"
	case ir.TypeInt:
		return fmt.Sprintf("i%d", t.Width)
	case ir.TypeUint:
		return fmt.Sprintf("u%d", t.Width)
	case ir.TypeBytes:
		return fmt.Sprintf("[u8; %d]", t.ByteLen)
	case ir.TypeDynamicBytes:
		return "Vec<u8>"
	case ir.TypeVariable:
		return t.Name
	case ir.TypeArray:
		if t.Length != nil {
			return fmt.Sprintf("[%s; %s]", renderType(*t.Elem), renderExpr(*t.Length))
		}
		return fmt.Sprintf("Vec<%s>", renderType(*t.Elem))
	case ir.TypeMapping:
		keys := make([]string, 0, len(t.Keys))
		for _, k := range t.Keys {
			keys = append(keys, renderType(k))
		}
		keyType := strings.Join(keys, ", ")
		if len(t.Keys) > 1 {
			keyType = "(" + keyType + ")"
		}
		return fmt.Sprintf("Mapping<%s, %s>", keyType, renderType(*t.Value))
	case ir.TypeMemberAccess:
		return renderExpr(*t.Base) + "::" + t.Name
	default:
		return "()"
	}
}

func importsFor(set *ir.ImportSet) []string {
	lines := make([]string, 0, 8)
	for _, imp := range set.Ordered() {
		switch imp {
		case ir.ImportAccountId:
			lines = append(lines, "use ink::primitives::AccountId;")
		case ir.ImportMapping:
			lines = append(lines, "use ink::storage::Mapping;")
		case ir.ImportString:
			lines = append(lines, "use ink_prelude::string::String;")
		case ir.ImportVec:
			lines = append(lines, "use ink_prelude::vec::Vec;")
		case ir.ImportZeroAddress:
			lines = append(lines, "use ink_prelude::ZERO_ADDRESS;")
		case ir.ImportModifierDefinition, ir.ImportModifiers:
			lines = append(lines, "use ink_lang::modifiers;")
		}
	}
	return lines
}
