package auth

// Control-packet wire format. Three fixed header regions precede an
// arbitrary payload:
//
//	┌─────────────────────┬────────────────┬───────────────┬─────────────┐
//	│ Prefix              │ Tag            │ PacketID      │ Payload     │
//	│ opcode + session id │ == digest size │               │             │
//	│ PrefixLen bytes     │ TagLen bytes   │ PacketIDLen   │ remaining   │
//	└─────────────────────┴────────────────┴───────────────┴─────────────┘
//
// The bytes fed to the keyed hash are NOT in wire order:
//
//	PacketID ++ Prefix ++ Payload        (Tag region excluded)
//
// The peer performs the identical reordering, so the exact field order is a
// protocol contract: any deviation breaks interoperability even if it is
// cryptographically equivalent. Keeping the Tag next to the Prefix on the
// wire lets a receiver parse fixed-offset header fields before
// authentication, while the PacketID value is still covered by the tag.

// Layout describes where the three header regions sit in a packet buffer.
// The regions are adjacent and start at offset 0; everything after them is
// payload. Both sides of a session must use the same Layout.
type Layout struct {
	// PrefixLen is the length of the opcode + session id region.
	PrefixLen int

	// TagLen is the length of the authentication tag region. It must equal
	// the negotiated digest's output size.
	TagLen int

	// PacketIDLen is the length of the packet id region.
	PacketIDLen int
}

// HeaderLen returns the total length of the three header regions.
func (l Layout) HeaderLen() int {
	return l.PrefixLen + l.TagLen + l.PacketIDLen
}

// fits reports whether the layout is well-formed for a buffer of the given
// length with a tag of the given size.
func (l Layout) fits(bufLen, tagSize int) bool {
	if l.PrefixLen < 0 || l.TagLen < 0 || l.PacketIDLen < 0 {
		return false
	}
	return l.HeaderLen() <= bufLen && l.TagLen == tagSize
}

// prefix returns the opcode + session id region.
func (l Layout) prefix(data []byte) []byte {
	return data[:l.PrefixLen]
}

// tag returns the authentication tag region.
func (l Layout) tag(data []byte) []byte {
	return data[l.PrefixLen : l.PrefixLen+l.TagLen]
}

// packetID returns the packet id region.
func (l Layout) packetID(data []byte) []byte {
	return data[l.PrefixLen+l.TagLen : l.HeaderLen()]
}

// payload returns everything after the header regions.
func (l Layout) payload(data []byte) []byte {
	return data[l.HeaderLen():]
}
