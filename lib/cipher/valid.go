package cipher

// IsValidString reports whether text is non-empty. Callers use it as a
// precondition check; the transforms themselves accept empty input.
func IsValidString(text []byte) bool {
	return len(text) > 0
}
