package resolver

import "github.com/oxhq/sol2ink/internal/ir"

// storagePointerEnv tracks, per lexical depth, which local names are
// storage-pointer aliases into a storage struct (spec: a local declared
// `StructName storage foo = someField;` behaves like a reference to the
// storage field for the remainder of its scope). Entering a block pushes
// a new depth; leaving it drops every pointer declared at that depth.
type storagePointerEnv struct {
	depth    int
	byDepth  map[int]map[string]ir.Type
	declared map[string]bool // names ever declared, across the whole function — used for the idempotent local_storage_pointers_declared set
	access   map[string]bool // storage fields actually read/written this function
}

func newStoragePointerEnv() *storagePointerEnv {
	return &storagePointerEnv{
		depth:    0,
		byDepth:  map[int]map[string]ir.Type{0: {}},
		declared: make(map[string]bool),
		access:   make(map[string]bool),
	}
}

func (e *storagePointerEnv) enterBlock() {
	e.depth++
	e.byDepth[e.depth] = make(map[string]ir.Type)
}

func (e *storagePointerEnv) leaveBlock() {
	delete(e.byDepth, e.depth)
	e.depth--
}

func (e *storagePointerEnv) declare(name string, t ir.Type) {
	e.byDepth[e.depth][name] = t
	e.declared[name] = true
}

// lookup walks outward from the current depth to depth 0, matching
// ordinary Solidity scoping.
func (e *storagePointerEnv) lookup(name string) (ir.Type, bool) {
	for d := e.depth; d >= 0; d-- {
		if m, ok := e.byDepth[d]; ok {
			if t, ok := m[name]; ok {
				return t, true
			}
		}
	}
	return ir.Type{}, false
}

func (e *storagePointerEnv) markAccessed(field string) { e.access[field] = true }

func (e *storagePointerEnv) accessedFields() []string {
	out := make([]string, 0, len(e.access))
	for f := range e.access {
		out = append(out, f)
	}
	return out
}
