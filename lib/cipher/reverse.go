package cipher

// ReverseEncrypt returns the input in reverse byte order.
func ReverseEncrypt(text []byte) []byte {
	out := make([]byte, len(text))
	for i, b := range text {
		out[len(text)-1-i] = b
	}
	return out
}

// ReverseDecrypt undoes ReverseEncrypt. Reversal is its own inverse.
func ReverseDecrypt(text []byte) []byte {
	return ReverseEncrypt(text)
}
