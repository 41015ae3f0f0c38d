package cipher_test

import (
	"strings"
	"testing"

	"github.com/jpicht/cipherkit/lib/cipher"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
)

func TestHomoglyphMapping(t *testing.T) {
	assert.Equal(t, len(cipher.Homoglyphs), len(cipher.ReverseHomoglyphs))
	for r, rr := range cipher.Homoglyphs {
		rrr, ok := cipher.ReverseHomoglyphs[rr]
		assert.True(t, ok)
		assert.Equal(t, r, rrr)
	}
}

func TestDomainRoundTrip(t *testing.T) {
	for _, data := range [][]byte{
		[]byte("hello world"),
		[]byte("a"),
		{0x00, 0x00, 0x00, 0x00},
		{0xFF, 0xFE, 0x00, 0x42, 0x13, 0x37},
		[]byte(strings.Repeat("a payload spanning labels. ", 2)),
	} {
		payload, err := cipher.DomainEncode(data)
		assert.Nil(t, err)
		t.Logf("encoded %d bytes into %q", len(data), payload)

		dec, err := cipher.DomainDecode(payload)
		assert.Nil(t, err)
		assert.Equal(t, data, dec)
	}
}

func TestDomainEncodeProducesValidNames(t *testing.T) {
	for _, data := range [][]byte{
		[]byte("hello world"),
		make([]byte, 64),
		[]byte("UPPERCASE AND /slashes/ and +plus+"),
	} {
		payload, err := cipher.DomainEncode(data)
		assert.Nil(t, err)

		labels, ok := dns.IsDomainName(payload + ".example.com.")
		assert.True(t, ok, "not a valid domain name: %s", payload)
		assert.True(t, labels > 2)
	}
}

// Whatever the input, the encoder either produces a name that fits on
// the wire or refuses it. Zero bytes encode to pure homoglyph labels,
// the worst case for punycode expansion.
func TestDomainEncodeBoundsNameLength(t *testing.T) {
	for size := 0; size <= 512; size++ {
		payload, err := cipher.DomainEncode(make([]byte, size))
		if err != nil {
			assert.Equal(t, cipher.ERR_PAYLOAD_TOO_LARGE, err)
			assert.Equal(t, "", payload)
			continue
		}
		_, ok := dns.IsDomainName(payload)
		assert.True(t, ok, "size %d: not a valid domain name: %s", size, payload)
	}
}

func TestDomainEncodeTooLarge(t *testing.T) {
	payload, err := cipher.DomainEncode(make([]byte, 256))
	assert.Equal(t, cipher.ERR_PAYLOAD_TOO_LARGE, err)
	assert.Equal(t, "", payload)

	_, err = cipher.DomainEncode([]byte(strings.Repeat("some data, ", 32)))
	assert.Equal(t, cipher.ERR_PAYLOAD_TOO_LARGE, err)
}

func TestDomainDecodeTruncated(t *testing.T) {
	payload, errEnc := cipher.DomainEncode([]byte(strings.Repeat("some data, ", 4)))
	assert.Nil(t, errEnc)

	// drop the first label, keep the marker
	truncated := payload[strings.Index(payload, ".")+1:]
	_, err := cipher.DomainDecode(truncated)
	assert.Equal(t, cipher.ERR_PAYLOAD_INCOMPLETE, err)

	// damage the marker itself
	_, err = cipher.DomainDecode("aGVsbG8.x8")
	assert.Equal(t, cipher.ERR_PAYLOAD_INCOMPLETE, err)

	_, err = cipher.DomainDecode("aGVsbG8.l9999")
	assert.Equal(t, cipher.ERR_PAYLOAD_INCOMPLETE, err)
}
