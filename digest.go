package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"slices"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Digest identifies a digest algorithm negotiated for packet authentication.
type Digest string

// Registered digest identifiers. MD5 and SHA-1 are recognized so that a
// peer's request resolves to a clear rejection instead of an unknown-digest
// error, but they are not permitted for packet authentication.
const (
	DigestMD5        Digest = "md5"
	DigestSHA1       Digest = "sha-1"
	DigestSHA256     Digest = "sha-256"
	DigestSHA384     Digest = "sha-384"
	DigestSHA512     Digest = "sha-512"
	DigestSHA3_256   Digest = "sha3-256"
	DigestSHA3_512   Digest = "sha3-512"
	DigestBLAKE2s256 Digest = "blake2s-256"
	DigestBLAKE2b256 Digest = "blake2b-256"
	DigestBLAKE2b512 Digest = "blake2b-512"
)

// MaxTagSize is the largest tag any registered digest produces. Callers can
// use it to size wire buffers before an algorithm is negotiated.
const MaxTagSize = 64

// DigestInfo describes a digest's fixed parameters.
type DigestInfo struct {
	// Size is the tag length in bytes. The Tag region of an authenticated
	// packet must be exactly this long.
	Size int

	// KeySize is the minimum key length in bytes. Only the first KeySize
	// bytes of a longer key feed the keyed hash; the peer must do the same.
	KeySize int
}

// digestEntry binds a digest's parameters to its keyed-hash constructor.
// A nil constructor marks an identifier that is recognized but not legal
// for packet authentication.
type digestEntry struct {
	info     DigestInfo
	newKeyed func(key []byte) (hash.Hash, error)
}

// hmacKeyed adapts an unkeyed hash constructor into an HMAC constructor.
func hmacKeyed(h func() hash.Hash) func(key []byte) (hash.Hash, error) {
	return func(key []byte) (hash.Hash, error) {
		return hmac.New(h, key), nil
	}
}

var digests = map[Digest]digestEntry{
	DigestMD5:  {info: DigestInfo{Size: 16, KeySize: 16}},
	DigestSHA1: {info: DigestInfo{Size: 20, KeySize: 20}},
	DigestSHA256: {
		info:     DigestInfo{Size: 32, KeySize: 32},
		newKeyed: hmacKeyed(sha256.New),
	},
	DigestSHA384: {
		info:     DigestInfo{Size: 48, KeySize: 48},
		newKeyed: hmacKeyed(sha512.New384),
	},
	DigestSHA512: {
		info:     DigestInfo{Size: 64, KeySize: 64},
		newKeyed: hmacKeyed(sha512.New),
	},
	DigestSHA3_256: {
		info:     DigestInfo{Size: 32, KeySize: 32},
		newKeyed: hmacKeyed(func() hash.Hash { return sha3.New256() }),
	},
	DigestSHA3_512: {
		info:     DigestInfo{Size: 64, KeySize: 64},
		newKeyed: hmacKeyed(func() hash.Hash { return sha3.New512() }),
	},
	// BLAKE2 is keyed natively rather than wrapped in HMAC.
	DigestBLAKE2s256: {
		info:     DigestInfo{Size: 32, KeySize: 32},
		newKeyed: blake2s.New256,
	},
	DigestBLAKE2b256: {
		info:     DigestInfo{Size: 32, KeySize: 32},
		newKeyed: blake2b.New256,
	},
	DigestBLAKE2b512: {
		info:     DigestInfo{Size: 64, KeySize: 64},
		newKeyed: blake2b.New512,
	},
}

// String returns the digest identifier.
func (d Digest) String() string {
	return string(d)
}

// ParseDigest validates a digest identifier received during negotiation.
// Returns ErrUnknownDigest for identifiers not in the registry.
func ParseDigest(s string) (Digest, error) {
	d := Digest(s)
	if _, ok := digests[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDigest, s)
	}
	return d, nil
}

// Lookup returns the fixed parameters for a registered digest.
func Lookup(d Digest) (DigestInfo, error) {
	entry, ok := digests[d]
	if !ok {
		return DigestInfo{}, fmt.Errorf("%w: %q", ErrUnknownDigest, d)
	}
	return entry.info, nil
}

// LegalForPacketAuth filters a digest identifier against the set permitted
// for control-packet authentication. It returns the identifier unchanged if
// permitted, ErrUnknownDigest if unregistered, and ErrUnsupportedDigest if
// registered but rejected.
func LegalForPacketAuth(d Digest) (Digest, error) {
	entry, ok := digests[d]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDigest, d)
	}
	if entry.newKeyed == nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDigest, d)
	}
	return d, nil
}

// LegalDigests returns the sorted set of digests permitted for packet
// authentication.
func LegalDigests() []Digest {
	out := make([]Digest, 0, len(digests))
	for d, entry := range digests {
		if entry.newKeyed != nil {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	return out
}
