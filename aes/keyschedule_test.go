package aes

import "testing"

func TestRotWord(t *testing.T) {
	got := RotWord(0x09cf4f3c)
	want := uint32(0xcf4f3c09)
	if got != want {
		t.Fatalf("RotWord(0x09cf4f3c) = %#08x, want %#08x", got, want)
	}
}

// FIPS-197 §5.2 worked example: SubWord(RotWord(09cf4f3c)) == 8a84eb01.
func TestSubWord(t *testing.T) {
	got := SubWord(RotWord(0x09cf4f3c))
	want := uint32(0x8a84eb01)
	if got != want {
		t.Fatalf("SubWord(RotWord(09cf4f3c)) = %#08x, want %#08x", got, want)
	}
}

// FIPS-197 Appendix C.1: round keys 0 and 1 of the AES-128 example key
// 000102030405060708090a0b0c0d0e0f.
func TestExpandKeyInto128FirstRoundKey(t *testing.T) {
	key := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}
	roundKeys := make([]State, 11)
	expandKeyInto(key, 4, roundKeys)

	var out [16]byte
	Save(roundKeys[0], &out)
	if out != [16]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f} {
		t.Fatalf("round key 0 should equal the cipher key verbatim, got %x", out)
	}

	// FIPS-197 Appendix C.1: round key 1 is
	// d6aa74fdd2af72fadaa678f1d6ab76fe.
	Save(roundKeys[1], &out)
	want := [16]byte{0xd6, 0xaa, 0x74, 0xfd, 0xd2, 0xaf, 0x72, 0xfa, 0xda, 0xa6, 0x78, 0xf1, 0xd6, 0xab, 0x76, 0xfe}
	if out != want {
		t.Fatalf("round key 1 mismatch\nwant %x\ngot  %x", want, out)
	}
}
