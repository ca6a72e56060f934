package ehbasic

import (
	"bytes"
	"os"
	"testing"

	"github.com/go-test/deep"
)

func newForTest(t *testing.T) (*Ehbasic, func() string) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	e := New(w)
	return e, func() string {
		w.Close()
		var buf bytes.Buffer
		buf.ReadFrom(r)
		return buf.String()
	}
}

func TestLoadZeroFillsAndCopiesProgram(t *testing.T) {
	e, _ := newForTest(t)
	if err := e.Load([]uint8{0xA9, 0x01}, 0x0600); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := e.Read(0x0600), uint8(0xA9); got != want {
		t.Errorf("Read(0x0600) = 0x%02X, want 0x%02X", got, want)
	}
}

func TestKBDReadClearsLatch(t *testing.T) {
	e, _ := newForTest(t)
	if err := e.Load(nil, 0); err != nil {
		t.Fatalf("Load: %v", err)
	}
	e.KeyPressed('Q')
	if e.KeyReady() {
		t.Fatal("KeyReady() = true immediately after KeyPressed")
	}
	if got, want := e.Read(KBD), uint8('Q'); got != want {
		t.Errorf("Read(KBD) = 0x%02X, want 0x%02X", got, want)
	}
	if !e.KeyReady() {
		t.Error("KeyReady() = false after the latch was consumed")
	}
}

func TestDSPWritePrintsVerbatim(t *testing.T) {
	e, finish := newForTest(t)
	e.Write(DSP, 'h')
	e.Write(DSP, 'i')
	got := finish()
	if diff := deep.Equal(got, "hi"); diff != nil {
		t.Errorf("display output mismatch: %v", diff)
	}
}

func TestDSPWriteIgnoresZero(t *testing.T) {
	e, finish := newForTest(t)
	e.Write(DSP, 0)
	got := finish()
	if got != "" {
		t.Errorf("display output for zero write = %q, want empty", got)
	}
}
