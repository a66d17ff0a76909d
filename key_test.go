package auth

import (
	"bytes"
	"testing"
)

func TestNewSecretKeyWipesSource(t *testing.T) {
	material := makeKey(32)
	key, err := NewSecretKey(material)
	if err != nil {
		t.Fatalf("NewSecretKey: %v", err)
	}
	defer key.Destroy()

	if !bytes.Equal(material, make([]byte, 32)) {
		t.Error("source slice was not wiped")
	}
	if key.Len() != 32 {
		t.Errorf("Len: got %d, want 32", key.Len())
	}
	if !bytes.Equal(key.Bytes(), makeKey(32)) {
		t.Error("locked buffer does not hold the original material")
	}
}

func TestNewSecretKeyRejectsEmpty(t *testing.T) {
	if _, err := NewSecretKey(nil); !IsKeySize(err) {
		t.Errorf("NewSecretKey(nil): got %v, want ErrKeySize", err)
	}
	if _, err := NewSecretKey([]byte{}); !IsKeySize(err) {
		t.Errorf("NewSecretKey(empty): got %v, want ErrKeySize", err)
	}
}

func TestSecretKeyDestroy(t *testing.T) {
	key, err := NewSecretKey(makeKey(32))
	if err != nil {
		t.Fatalf("NewSecretKey: %v", err)
	}

	if !key.IsAlive() {
		t.Fatal("fresh key is not alive")
	}
	key.Destroy()
	if key.IsAlive() {
		t.Error("destroyed key reports alive")
	}
	if key.Len() != 0 {
		t.Errorf("Len after Destroy: got %d, want 0", key.Len())
	}
}
