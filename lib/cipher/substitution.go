package cipher

import "math/rand"

// GenerateSubstitutionTable shuffles the 95 printable ASCII bytes with
// a Fisher-Yates shuffle driven by rnd and returns the resulting
// forward table together with its exact inverse. Passing a seeded
// source makes the table reproducible; the caller owns both maps.
func GenerateSubstitutionTable(rnd *rand.Rand) (map[byte]byte, map[byte]byte) {
	shuffled := make([]byte, alphabetSize)
	for i := range shuffled {
		shuffled[i] = byte(printableMin + i)
	}
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	table := make(map[byte]byte, alphabetSize)
	reverse := make(map[byte]byte, alphabetSize)
	for i, b := range shuffled {
		table[byte(printableMin+i)] = b
		reverse[b] = byte(printableMin + i)
	}
	return table, reverse
}

// SubstitutionEncrypt replaces every byte with its table entry. Bytes
// without an entry are copied unchanged.
func SubstitutionEncrypt(text []byte, table map[byte]byte) []byte {
	out := make([]byte, len(text))
	for i, b := range text {
		if s, ok := table[b]; ok {
			out[i] = s
		} else {
			out[i] = b
		}
	}
	return out
}

// SubstitutionDecrypt undoes SubstitutionEncrypt when given the
// reverse table of the pair used to encrypt.
func SubstitutionDecrypt(text []byte, reverse map[byte]byte) []byte {
	return SubstitutionEncrypt(text, reverse)
}
