package emit

// Version is the compile-time translator version stamped into every
// generated file's header comment. Overridable at link time with
// `-ldflags "-X github.com/oxhq/sol2ink/internal/emit.Version=..."`.
var Version = "dev"
