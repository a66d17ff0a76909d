// Package fuzz contains OSS-Fuzz harnesses for the auth package.
package fuzz

import (
	"context"

	testing "github.com/AdamKorcz/go-118-fuzz-build/testing"

	auth "github.com/rbaliyan/packet-auth"
)

// FuzzVerifyPacket feeds VerifyPacket adversarial buffers and layouts.
// VerifyPacket must never panic or error regardless of input, must reject
// buffers we never tagged, and must accept a packet immediately after
// GeneratePacket.
func FuzzVerifyPacket(f *testing.F) {
	f.Fuzz(func(t *testing.T, prefixLen, pidLen uint8, data []byte) {
		factory, err := auth.NewFactory()
		if err != nil {
			t.Skip()
		}
		c, err := factory.NewContext(context.Background(), auth.DigestSHA256)
		if err != nil {
			t.Skip()
		}

		keyMaterial := make([]byte, 32)
		for i := range keyMaterial {
			keyMaterial[i] = byte(i)
		}
		key, err := auth.NewSecretKey(keyMaterial)
		if err != nil {
			t.Skip()
		}
		defer key.Destroy()

		inst := c.NewInstance()
		if err := inst.Init(key); err != nil {
			t.Skip()
		}

		lay := auth.Layout{
			PrefixLen:   int(prefixLen % 16),
			TagLen:      c.Size(),
			PacketIDLen: int(pidLen % 16),
		}

		// Untagged data must never verify, whatever the layout.
		if inst.VerifyPacket(data, lay) {
			t.Errorf("forged packet verified: prefix=%d packetID=%d len=%d",
				lay.PrefixLen, lay.PacketIDLen, len(data))
		}

		// A generated packet must verify when the buffer fits the layout.
		if len(data) >= lay.HeaderLen() {
			buf := make([]byte, len(data))
			copy(buf, data)
			if err := inst.GeneratePacket(buf, lay); err != nil {
				t.Errorf("GeneratePacket on fitting buffer: %v", err)
			} else if !inst.VerifyPacket(buf, lay) {
				t.Errorf("generated packet failed verification")
			}
		}
	})
}
