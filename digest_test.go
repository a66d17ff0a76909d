package auth

import (
	"slices"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		digest  Digest
		size    int
		keySize int
	}{
		{DigestMD5, 16, 16},
		{DigestSHA1, 20, 20},
		{DigestSHA256, 32, 32},
		{DigestSHA384, 48, 48},
		{DigestSHA512, 64, 64},
		{DigestSHA3_256, 32, 32},
		{DigestSHA3_512, 64, 64},
		{DigestBLAKE2s256, 32, 32},
		{DigestBLAKE2b256, 32, 32},
		{DigestBLAKE2b512, 64, 64},
	}

	for _, tt := range tests {
		info, err := Lookup(tt.digest)
		if err != nil {
			t.Errorf("Lookup(%s): %v", tt.digest, err)
			continue
		}
		if info.Size != tt.size {
			t.Errorf("%s Size: got %d, want %d", tt.digest, info.Size, tt.size)
		}
		if info.KeySize != tt.keySize {
			t.Errorf("%s KeySize: got %d, want %d", tt.digest, info.KeySize, tt.keySize)
		}
	}

	if _, err := Lookup(Digest("ripemd-160")); !IsUnknownDigest(err) {
		t.Errorf("Lookup(ripemd-160): got %v, want ErrUnknownDigest", err)
	}
}

func TestParseDigest(t *testing.T) {
	d, err := ParseDigest("sha-256")
	if err != nil {
		t.Fatalf("ParseDigest(sha-256): %v", err)
	}
	if d != DigestSHA256 {
		t.Errorf("ParseDigest: got %s, want %s", d, DigestSHA256)
	}

	// Recognized identifiers parse even when illegal for packet auth;
	// rejection happens at Context construction.
	if _, err := ParseDigest("md5"); err != nil {
		t.Errorf("ParseDigest(md5): %v", err)
	}

	if _, err := ParseDigest("SHA-256"); !IsUnknownDigest(err) {
		t.Errorf("ParseDigest(SHA-256): got %v, want ErrUnknownDigest (identifiers are case-sensitive)", err)
	}
	if _, err := ParseDigest(""); !IsUnknownDigest(err) {
		t.Errorf("ParseDigest(empty): got %v, want ErrUnknownDigest", err)
	}
}

func TestLegalForPacketAuth(t *testing.T) {
	for _, d := range []Digest{DigestMD5, DigestSHA1} {
		if _, err := LegalForPacketAuth(d); !IsUnsupportedDigest(err) {
			t.Errorf("LegalForPacketAuth(%s): got %v, want ErrUnsupportedDigest", d, err)
		}
	}

	got, err := LegalForPacketAuth(DigestBLAKE2b512)
	if err != nil {
		t.Fatalf("LegalForPacketAuth(blake2b-512): %v", err)
	}
	if got != DigestBLAKE2b512 {
		t.Errorf("LegalForPacketAuth: got %s, want %s", got, DigestBLAKE2b512)
	}

	if _, err := LegalForPacketAuth(Digest("crc32")); !IsUnknownDigest(err) {
		t.Errorf("LegalForPacketAuth(crc32): got %v, want ErrUnknownDigest", err)
	}
}

func TestLegalDigests(t *testing.T) {
	legal := LegalDigests()
	if len(legal) == 0 {
		t.Fatal("LegalDigests returned an empty set")
	}
	if !slices.IsSorted(legal) {
		t.Error("LegalDigests is not sorted")
	}
	if slices.Contains(legal, DigestMD5) || slices.Contains(legal, DigestSHA1) {
		t.Error("LegalDigests contains a rejected digest")
	}

	// Every legal digest keys successfully and fits MaxTagSize.
	for _, d := range legal {
		info, err := Lookup(d)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", d, err)
		}
		if info.Size > MaxTagSize {
			t.Errorf("%s tag size %d exceeds MaxTagSize", d, info.Size)
		}

		var e engine
		key, err := NewSecretKey(makeKey(info.KeySize))
		if err != nil {
			t.Fatalf("NewSecretKey: %v", err)
		}
		if err := e.bind(d, key); err != nil {
			t.Errorf("bind(%s): %v", d, err)
		}
		if e.outputSize() != info.Size {
			t.Errorf("%s outputSize: got %d, want %d", d, e.outputSize(), info.Size)
		}
	}
}
