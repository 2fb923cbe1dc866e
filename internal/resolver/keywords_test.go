package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMangleSuffixesReservedWords(t *testing.T) {
	assert.Equal(t, "self_is_rust_keyword", mangle("self"))
	assert.Equal(t, "move_is_rust_keyword", mangle("move"))
	assert.Equal(t, "dyn_is_rust_keyword", mangle("dyn"))
}

func TestMangleLeavesOrdinaryNamesAlone(t *testing.T) {
	assert.Equal(t, "balance", mangle("balance"))
	assert.Equal(t, "_owner", mangle("_owner"))
}

func TestMangleIsIdempotent(t *testing.T) {
	once := mangle("self")
	twice := mangle(once)
	assert.Equal(t, once, twice)
}
