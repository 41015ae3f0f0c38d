package cipher

// Alphabet is the standard base64 alphabet, Padding its fill
// character.
const (
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	Padding  = '='
)

// decodeTable maps every alphabet byte to its 6-bit value. Padding
// maps to 0, everything else to -1.
var decodeTable [256]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeTable[Alphabet[i]] = int8(i)
	}
	decodeTable[Padding] = 0
}

// Base64Encode encodes text with the standard alphabet, three input
// bytes per four output characters, padded with '=' on the final
// group. The output length is always ceil(len/3)*4.
func Base64Encode(text []byte) []byte {
	out := make([]byte, 0, (len(text)+2)/3*4)
	for i := 0; i < len(text); i += 3 {
		b1 := text[i]
		var b2, b3 byte
		if i+1 < len(text) {
			b2 = text[i+1]
		}
		if i+2 < len(text) {
			b3 = text[i+2]
		}

		out = append(out, Alphabet[b1>>2])
		out = append(out, Alphabet[(b1<<4)&0x3F|b2>>4])
		if i+1 < len(text) {
			out = append(out, Alphabet[(b2<<2)&0x3F|b3>>6])
		} else {
			out = append(out, Padding)
		}
		if i+2 < len(text) {
			out = append(out, Alphabet[b3&0x3F])
		} else {
			out = append(out, Padding)
		}
	}
	return out
}

// Base64Decode decodes well-formed base64: the input length must be a
// multiple of 4 and every character must come from the alphabet or be
// padding. The whole input is validated before any output is built.
func Base64Decode(text []byte) ([]byte, error) {
	if len(text)%4 != 0 {
		return nil, ERR_INVALID_LENGTH
	}
	for _, b := range text {
		if decodeTable[b] < 0 {
			return nil, ERR_INVALID_CHARACTER
		}
	}

	out := make([]byte, 0, len(text)/4*3)
	for i := 0; i < len(text); i += 4 {
		e1 := byte(decodeTable[text[i]])
		e2 := byte(decodeTable[text[i+1]])
		e3 := byte(decodeTable[text[i+2]])
		e4 := byte(decodeTable[text[i+3]])

		out = append(out, e1<<2|e2>>4)
		if text[i+2] != Padding {
			out = append(out, e2<<4|e3>>2)
		}
		if text[i+3] != Padding {
			out = append(out, e3<<6|e4)
		}
	}
	return out, nil
}
