package cipher

// Rot13Encrypt rotates ASCII letters by 13 positions within their
// case. Everything else is copied unchanged.
func Rot13Encrypt(text []byte) []byte {
	out := make([]byte, len(text))
	for i, b := range text {
		switch {
		case b >= 'A' && b <= 'Z':
			out[i] = 'A' + (b-'A'+13)%26
		case b >= 'a' && b <= 'z':
			out[i] = 'a' + (b-'a'+13)%26
		default:
			out[i] = b
		}
	}
	return out
}

// Rot13Decrypt undoes Rot13Encrypt. ROT13 is its own inverse.
func Rot13Decrypt(text []byte) []byte {
	return Rot13Encrypt(text)
}
