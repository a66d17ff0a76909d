package auth

import (
	"crypto/hmac"
	"fmt"
	"hash"
)

// engine is one (digest, key) binding with reusable hashing state. It is
// not safe for concurrent use; the intended pattern is one engine per
// connection, driven from a single logical thread.
type engine struct {
	digest  Digest
	info    DigestInfo
	mac     hash.Hash
	scratch [MaxTagSize]byte
}

// bind resolves the digest and keys the underlying hash. Rebinding is
// allowed; a failed bind leaves any previous binding untouched. Only the
// first KeySize bytes of the key feed the hash, matching the peer.
func (e *engine) bind(d Digest, key *SecretKey) error {
	entry, ok := digests[d]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDigest, d)
	}
	if entry.newKeyed == nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedDigest, d)
	}
	if key == nil || !key.IsAlive() {
		return ErrKeyNotSet
	}
	if key.Len() < entry.info.KeySize {
		return fmt.Errorf("%w: digest %s needs %d bytes, got %d",
			ErrKeySize, d, entry.info.KeySize, key.Len())
	}

	mac, err := entry.newKeyed(key.Bytes()[:entry.info.KeySize])
	if err != nil {
		return fmt.Errorf("auth: keying %s failed: %w", d, err)
	}

	e.digest = d
	e.info = entry.info
	e.mac = mac
	return nil
}

func (e *engine) keyed() bool {
	return e.mac != nil
}

func (e *engine) outputSize() int {
	return e.info.Size
}

// sum computes the one-shot keyed hash of in. The returned slice aliases
// the engine's scratch buffer and is valid until the next operation.
func (e *engine) sum(in []byte) []byte {
	e.mac.Reset()
	e.mac.Write(in)
	return e.mac.Sum(e.scratch[:0])
}

// convolve feeds the hash state with the packet in protocol hash order:
// PacketID, then Prefix, then the payload after the header regions. The
// Tag region never enters the hash. Returns false without touching the
// hash state if the layout does not fit the buffer.
func (e *engine) convolve(data []byte, lay Layout) bool {
	if !lay.fits(len(data), e.info.Size) {
		return false
	}
	e.mac.Reset()
	e.mac.Write(lay.packetID(data))
	e.mac.Write(lay.prefix(data))
	e.mac.Write(lay.payload(data))
	return true
}

// generate computes the tag over a self-constructed packet and writes it
// into the Tag region. A layout violation here is a local bug, so it is
// surfaced as ErrLayout.
func (e *engine) generate(data []byte, lay Layout) error {
	if !e.keyed() {
		return ErrKeyNotSet
	}
	if !e.convolve(data, lay) {
		return fmt.Errorf("%w: prefix=%d tag=%d packetID=%d buffer=%d digest=%s",
			ErrLayout, lay.PrefixLen, lay.TagLen, lay.PacketIDLen, len(data), e.digest)
	}
	tag := e.mac.Sum(e.scratch[:0])
	copy(lay.tag(data), tag)
	return nil
}

// verify recomputes the expected tag over a peer-supplied packet and
// compares it to the embedded tag in constant time. Every failure mode,
// including a bad layout, is a plain false: this path consumes adversarial
// input and must not offer error propagation as a control-flow channel.
func (e *engine) verify(data []byte, lay Layout) bool {
	if !e.keyed() {
		return false
	}
	if !e.convolve(data, lay) {
		return false
	}
	tag := e.mac.Sum(e.scratch[:0])
	return hmac.Equal(lay.tag(data), tag)
}
