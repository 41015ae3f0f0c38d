package cipher

// XorEncrypt combines every input byte with the key byte at the same
// position, repeating the key as often as needed. All 256 byte values
// are valid input.
func XorEncrypt(text, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ERR_EMPTY_KEY
	}

	out := make([]byte, len(text))
	for i, b := range text {
		out[i] = b ^ key[i%len(key)]
	}
	return out, nil
}

// XorDecrypt undoes XorEncrypt. XOR is its own inverse.
func XorDecrypt(text, key []byte) ([]byte, error) {
	return XorEncrypt(text, key)
}
