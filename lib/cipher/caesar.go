package cipher

// The printable ASCII range, space through tilde, treated as a cyclic
// alphabet by the shift ciphers.
const (
	printableMin = 32
	printableMax = 126
	alphabetSize = printableMax - printableMin + 1
)

// mod returns x modulo alphabetSize, normalized to [0,alphabetSize)
// for negative x as well.
func mod(x int) int {
	return ((x % alphabetSize) + alphabetSize) % alphabetSize
}

func printable(b byte) bool {
	return b >= printableMin && b <= printableMax
}

// CaesarEncrypt rotates every printable byte by shift positions within
// the 95-symbol printable alphabet. Bytes outside the range are copied
// unchanged. Any shift is valid, including negative ones and shifts
// larger than the alphabet.
func CaesarEncrypt(text []byte, shift int) []byte {
	out := make([]byte, len(text))
	for i, b := range text {
		if !printable(b) {
			out[i] = b
			continue
		}
		out[i] = byte(mod(int(b)-printableMin+shift)) + printableMin
	}
	return out
}

// CaesarDecrypt undoes CaesarEncrypt by rotating in the opposite
// direction.
func CaesarDecrypt(text []byte, shift int) []byte {
	return CaesarEncrypt(text, -shift)
}
