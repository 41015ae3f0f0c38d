package cipher

// vigenere shifts every printable byte by the printable offset of the
// key byte at the same position, forward or backward depending on dir.
// The key index follows the absolute text position: bytes outside the
// printable range are copied unchanged but still consume a key byte.
func vigenere(text, key []byte, dir int) ([]byte, error) {
	if len(key) == 0 {
		return nil, ERR_EMPTY_KEY
	}

	out := make([]byte, len(text))
	for i, b := range text {
		if !printable(b) {
			out[i] = b
			continue
		}
		k := int(key[i%len(key)]) - printableMin
		out[i] = byte(mod(int(b)-printableMin+dir*k)) + printableMin
	}
	return out, nil
}

// VigenereEncrypt applies a Caesar shift per position, keyed by the
// repeating key. The key must not be empty.
func VigenereEncrypt(text, key []byte) ([]byte, error) {
	return vigenere(text, key, 1)
}

// VigenereDecrypt undoes VigenereEncrypt with the same key.
func VigenereDecrypt(text, key []byte) ([]byte, error) {
	return vigenere(text, key, -1)
}
