package cipher

// AtbashEncrypt mirrors ASCII letters within their case, A<->Z and
// a<->z. Everything else is copied unchanged.
func AtbashEncrypt(text []byte) []byte {
	out := make([]byte, len(text))
	for i, b := range text {
		switch {
		case b >= 'A' && b <= 'Z':
			out[i] = 'Z' - (b - 'A')
		case b >= 'a' && b <= 'z':
			out[i] = 'z' - (b - 'a')
		default:
			out[i] = b
		}
	}
	return out
}

// AtbashDecrypt undoes AtbashEncrypt. Atbash is its own inverse.
func AtbashDecrypt(text []byte) []byte {
	return AtbashEncrypt(text)
}
