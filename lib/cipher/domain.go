package cipher

import (
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// Homoglyphs replaces the base64 characters that are not safe in a
// DNS label ('+', '/') and the uppercase letters, which would be lost
// to case folding, with Greek lookalikes. The result survives
// punycode unharmed.
var (
	Homoglyphs = map[rune]rune{
		'A': 'α', 'B': 'β', 'C': 'π', 'D': 'δ', 'E': 'ε', 'F': 'ϝ',
		'G': 'γ', 'H': 'σ', 'I': 'ι', 'J': 'φ', 'K': 'κ', 'L': 'λ',
		'M': 'χ', 'N': 'ν', 'O': 'ο', 'P': 'θ', 'Q': 'ψ', 'R': 'ρ',
		'S': 'ς', 'T': 'τ', 'U': 'μ', 'V': 'ω', 'W': 'Ϟ', 'X': 'ξ',
		'Y': 'υ', 'Z': 'ζ', '+': 'ƕ', '/': 'η',
	}

	ReverseHomoglyphs map[rune]rune
)

const (
	// partLength keeps punycoded labels below the 63 octet DNS limit
	// even when a whole part maps to homoglyphs.
	partLength = 20

	// maxNameLength bounds the presentation form of a name so that the
	// wire form, with its per-label length octets and the root label,
	// stays within the 255 octet DNS limit.
	maxNameLength = 253
)

func init() {
	ReverseHomoglyphs = make(map[rune]rune, len(Homoglyphs))
	for r, rr := range Homoglyphs {
		ReverseHomoglyphs[rr] = r
	}
}

// DomainEncode armors data as DNS labels: unpadded base64, Greek
// homoglyphs for the label-unsafe characters, punycode per label and a
// trailing length marker label. Data that would not fit into a single
// DNS name is rejected; callers have to split it up themselves.
func DomainEncode(data []byte) (string, error) {
	s := strings.TrimRight(string(Base64Encode(data)), string(Padding))

	parts := make([]string, (len(s)/partLength)+1)
	for i := range parts {
		start := i * partLength
		end := start + partLength
		if end > len(s) {
			end = len(s)
		}
		part := s[start:end]
		part = strings.Map(func(r rune) rune {
			if rr, ok := Homoglyphs[r]; ok {
				return rr
			}
			return r
		}, part)
		parts[i], _ = idna.ToASCII(part)
	}

	encoded := strings.TrimRight(strings.Join(parts, "."), ".")
	name := encoded + ".l" + strconv.Itoa(len(encoded))
	if len(name) > maxNameLength {
		return "", ERR_PAYLOAD_TOO_LARGE
	}
	return name, nil
}

// DomainDecode reverses DomainEncode. The length marker guards
// against truncated payloads, which DNS silently produces when labels
// get lost.
func DomainDecode(payload string) ([]byte, error) {
	parts := strings.Split(payload, ".")
	lenMarker := parts[len(parts)-1]
	parts = parts[0 : len(parts)-1]

	if len(lenMarker) < 2 || lenMarker[0] != 'l' {
		return nil, ERR_PAYLOAD_INCOMPLETE
	}
	expected, err := strconv.Atoi(lenMarker[1:])
	if err != nil || expected != (len(payload)-len(lenMarker)-1) {
		return nil, ERR_PAYLOAD_INCOMPLETE
	}

	for i, p := range parts {
		parts[i], err = idna.ToUnicode(p)
		if err != nil {
			return nil, err
		}

		parts[i] = strings.Map(
			func(r rune) rune {
				if rr, ok := ReverseHomoglyphs[r]; ok {
					return rr
				}
				return r
			},
			parts[i],
		)
	}

	s := strings.Join(parts, "")
	if pad := len(s) % 4; pad > 0 {
		s += strings.Repeat(string(Padding), 4-pad)
	}

	data, err := Base64Decode([]byte(s))
	if err != nil {
		return nil, ERR_PAYLOAD_INCOMPLETE
	}
	return data, nil
}
