package auth

import "errors"

var (
	// ErrUnknownDigest is returned when a digest identifier is not in the registry.
	ErrUnknownDigest = errors.New("auth: unknown digest identifier")

	// ErrUnsupportedDigest is returned when a digest is recognized but not
	// permitted for control-packet authentication (e.g. md5, sha-1).
	ErrUnsupportedDigest = errors.New("auth: digest not permitted for packet authentication")

	// ErrKeySize is returned when key material is shorter than the digest requires.
	ErrKeySize = errors.New("auth: key shorter than digest requirement")

	// ErrKeyNotSet is returned when a tag operation is attempted before a key is bound.
	ErrKeyNotSet = errors.New("auth: no key bound")

	// ErrLayout is returned by GeneratePacket when the header regions do not fit
	// the buffer or the tag region does not match the digest output size.
	// VerifyPacket folds the same condition into a plain false: it consumes
	// peer-supplied data and must fail closed rather than propagate errors.
	ErrLayout = errors.New("auth: packet layout does not fit buffer")
)

// IsUnknownDigest returns true if the error is or wraps ErrUnknownDigest.
func IsUnknownDigest(err error) bool {
	return errors.Is(err, ErrUnknownDigest)
}

// IsUnsupportedDigest returns true if the error is or wraps ErrUnsupportedDigest.
func IsUnsupportedDigest(err error) bool {
	return errors.Is(err, ErrUnsupportedDigest)
}

// IsKeySize returns true if the error is or wraps ErrKeySize.
func IsKeySize(err error) bool {
	return errors.Is(err, ErrKeySize)
}

// IsKeyNotSet returns true if the error is or wraps ErrKeyNotSet.
func IsKeyNotSet(err error) bool {
	return errors.Is(err, ErrKeyNotSet)
}

// IsLayout returns true if the error is or wraps ErrLayout.
func IsLayout(err error) bool {
	return errors.Is(err, ErrLayout)
}
