package emit

import (
	"fmt"
	"strings"
)

// stream is the small deterministic token-stream-to-text builder the
// emitter renders into. It is a single unidirectional walk with no
// backtracking: every write appends, nothing is revisited, which is what
// spec.md §8's emission-determinism property rests on.
type stream struct {
	b      strings.Builder
	indent int
}

func newStream() *stream { return &stream{} }

func (s *stream) line(format string, args ...any) {
	s.writeIndent()
	if len(args) == 0 {
		s.b.WriteString(format)
	} else {
		s.b.WriteString(fmt.Sprintf(format, args...))
	}
	s.b.WriteByte('\n')
}

func (s *stream) raw(text string) { s.b.WriteString(text) }

func (s *stream) blank() { s.b.WriteByte('\n') }

func (s *stream) writeIndent() {
	for i := 0; i < s.indent; i++ {
		s.b.WriteString("    ")
	}
}

func (s *stream) open(format string, args ...any) {
	s.line(format, args...)
	s.indent++
}

func (s *stream) close(text string) {
	s.indent--
	s.line(text)
}

func (s *stream) String() string { return s.b.String() }
