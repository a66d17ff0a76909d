package auth

import (
	"fmt"

	"github.com/awnumar/memguard"
)

// SecretKey holds pre-shared key material in a locked buffer that is kept
// out of swap and scrubbed on destruction. The key is caller-owned: this
// package never generates or rotates keys, and a rekey means constructing a
// new Instance around a new SecretKey.
type SecretKey struct {
	buf *memguard.LockedBuffer
}

// NewSecretKey copies material into a locked buffer. The source slice is
// wiped as part of the copy, so the locked buffer becomes the only live
// copy of the key.
func NewSecretKey(material []byte) (*SecretKey, error) {
	if len(material) == 0 {
		return nil, fmt.Errorf("%w: key material is empty", ErrKeySize)
	}
	return &SecretKey{buf: memguard.NewBufferFromBytes(material)}, nil
}

// Len returns the key length in bytes, or 0 after Destroy.
func (k *SecretKey) Len() int {
	return len(k.buf.Bytes())
}

// Bytes returns a read-only view of the key material. Callers must not
// retain or mutate the slice.
func (k *SecretKey) Bytes() []byte {
	return k.buf.Bytes()
}

// Destroy scrubs the key material and releases the locked buffer.
// The key is unusable afterwards.
func (k *SecretKey) Destroy() {
	k.buf.Destroy()
}

// IsAlive reports whether the key material is still intact.
func (k *SecretKey) IsAlive() bool {
	return k.buf.IsAlive()
}
