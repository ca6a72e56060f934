package memory

import (
	"testing"

	"github.com/go-test/deep"
)

func TestRawRAMReadWrite(t *testing.T) {
	r := NewRawRAM()
	r.Write(0x1234, 0xAB)
	if got, want := r.Read(0x1234), uint8(0xAB); got != want {
		t.Errorf("Read(0x1234) = 0x%02X, want 0x%02X", got, want)
	}
	if got, want := r.Read(0x0000), uint8(0x00); got != want {
		t.Errorf("Read(0x0000) = 0x%02X, want 0x%02X (unwritten)", got, want)
	}
}

func TestRawRAMLoad(t *testing.T) {
	r := NewRawRAM()
	r.Write(0xBEEF, 0xFF)
	prog := []uint8{0xA9, 0x01, 0x8D, 0x00, 0x02}
	if err := r.Load(prog, 0x0600); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, b := range prog {
		if got := r.Read(0x0600 + uint16(i)); got != b {
			t.Errorf("Read(0x%04X) = 0x%02X, want 0x%02X", 0x0600+i, got, b)
		}
	}
	// Load zero-fills everything else.
	if got := r.Read(0xBEEF); got != 0 {
		t.Errorf("Read(0xBEEF) after Load = 0x%02X, want 0x00", got)
	}
}

func TestRawRAMLoadOverrun(t *testing.T) {
	r := NewRawRAM()
	prog := make([]uint8, 16)
	if err := r.Load(prog, 0xFFFE); err == nil {
		t.Fatalf("Load with overrunning program: got nil error, want one")
	}
}

func TestRawRAMNoKeyboard(t *testing.T) {
	r := NewRawRAM()
	if r.KeyReady() {
		t.Error("KeyReady() = true, want false (no keyboard)")
	}
	r.KeyPressed('a')
	if diff := deep.Equal(r.Read(0x0000), uint8(0)); diff != nil {
		t.Errorf("KeyPressed mutated memory unexpectedly: %v", diff)
	}
}
