package resolver

// reservedWords are Rust keywords that collide with identifiers legal in
// Solidity. A colliding identifier is repaired by appending the
// "_is_rust_keyword" suffix; repair is idempotent (applying it twice to an
// already-repaired name is a no-op, since the repaired name itself is never
// a Rust keyword).
var reservedWords = map[string]bool{
	"const": true, "crate": true, "extern": true, "fn": true, "impl": true,
	"in": true, "loop": true, "mod": true, "move": true, "mut": true,
	"pub": true, "ref": true, "self": true, "Self": true, "trait": true,
	"unsafe": true, "use": true, "where": true, "become": true, "box": true,
	"final": true, "priv": true, "unsized": true, "async": true,
	"await": true, "dyn": true, "union": true,
}

const keywordSuffix = "_is_rust_keyword"

// mangle repairs a Solidity identifier that collides with a Rust keyword.
// Idempotent: mangle(mangle(x)) == mangle(x).
func mangle(name string) string {
	if reservedWords[name] {
		return name + keywordSuffix
	}
	return name
}
