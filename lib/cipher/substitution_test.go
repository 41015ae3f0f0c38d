package cipher_test

import (
	"math/rand"
	"testing"

	"github.com/jpicht/cipherkit/lib/cipher"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSubstitutionTable(t *testing.T) {
	table, reverse := cipher.GenerateSubstitutionTable(rand.New(rand.NewSource(1)))

	assert.Equal(t, 95, len(table))
	assert.Equal(t, 95, len(reverse))

	seen := map[byte]bool{}
	for b := byte(32); b <= 126; b++ {
		s, ok := table[b]
		assert.True(t, ok)
		assert.True(t, s >= 32 && s <= 126)
		assert.False(t, seen[s], "duplicate mapping target %q", s)
		seen[s] = true
		assert.Equal(t, b, reverse[s])
	}
}

func TestGenerateSubstitutionTableDeterministic(t *testing.T) {
	t1, r1 := cipher.GenerateSubstitutionTable(rand.New(rand.NewSource(42)))
	t2, r2 := cipher.GenerateSubstitutionTable(rand.New(rand.NewSource(42)))
	assert.Equal(t, t1, t2)
	assert.Equal(t, r1, r2)
}

func TestSubstitutionRoundTrip(t *testing.T) {
	table, reverse := cipher.GenerateSubstitutionTable(rand.New(rand.NewSource(7)))

	text := []byte("Printable text with\ttab, \x00nul and high bytes \xC3\xA9")
	enc := cipher.SubstitutionEncrypt(text, table)
	assert.Equal(t, len(text), len(enc))
	assert.Equal(t, text, cipher.SubstitutionDecrypt(enc, reverse))
}

func TestSubstitutionPassThrough(t *testing.T) {
	table, _ := cipher.GenerateSubstitutionTable(rand.New(rand.NewSource(7)))

	// outside the printable range
	assert.Equal(t, []byte{0x00, 0x1F, 0x7F, 0xFF}, cipher.SubstitutionEncrypt([]byte{0x00, 0x1F, 0x7F, 0xFF}, table))

	// entries missing from a partial table
	partial := map[byte]byte{'a': 'b'}
	assert.Equal(t, []byte("bcd"), cipher.SubstitutionEncrypt([]byte("acd"), partial))
}
