package emit

// fileHeader renders the two-line signature comment every generated file
// opens with, followed by the required blank line (spec.md §6, "External
// Interfaces" / generated-source header format).
func fileHeader(s *stream, sourceFile, kind string) {
	s.line("// Generated by sol2ink-go %s", Version)
	s.line("// source: %s (%s)", sourceFile, kind)
	s.blank()
}
