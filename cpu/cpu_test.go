package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/gtco/magpie/memory"
)

// setup loads program at base, builds a Chip over a flat RAM bus and
// points the reset vector at base before calling Reset, matching the
// teacher's cpu_test.go Setup helper style.
func setup(t *testing.T, program []uint8, base uint16) (*Chip, *memory.RawRAM) {
	t.Helper()
	ram := memory.NewRawRAM()
	if err := ram.Load(program, base); err != nil {
		t.Fatalf("Load: %v", err)
	}
	ram.Write(RESET_VECTOR, uint8(base))
	ram.Write(RESET_VECTOR+1, uint8(base>>8))
	c := New(ram)
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return c, ram
}

func assertState(t *testing.T, c *Chip, wantA, wantX, wantY uint8) {
	t.Helper()
	got := []uint8{c.A, c.X, c.Y}
	want := []uint8{wantA, wantX, wantY}
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("register mismatch (got A,X,Y / want A,X,Y): %v\nfull state: %s", diff, spew.Sdump(c))
	}
}

func TestResetReadsVector(t *testing.T) {
	ram := memory.NewRawRAM()
	ram.Write(RESET_VECTOR, 0x00)
	ram.Write(RESET_VECTOR+1, 0xFF)
	c := New(ram)
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if c.PC != 0xFF00 {
		t.Errorf("PC after Reset = $%04X, want $FF00", c.PC)
	}
	if c.S != 0xFD {
		t.Errorf("S after Reset = $%02X, want $FD", c.S)
	}
	if c.P&P_S1 == 0 || c.P&P_B == 0 {
		t.Errorf("P after Reset = $%02X, want bits S1 and B set", c.P)
	}
}

// Concrete scenarios from the scenario table.

func TestADCScenario1(t *testing.T) {
	c, _ := setup(t, []uint8{0xA9, 0x50, 0x69, 0x10}, 0x0600)
	c.Run(100)
	assertState(t, c, 0x60, 0, 0)
	if c.P&P_OVERFLOW != 0 || c.P&P_CARRY != 0 || c.P&P_NEGATIVE != 0 || c.P&P_ZERO != 0 {
		t.Errorf("flags after scenario 1: P=$%02X", c.P)
	}
}

func TestADCScenario2(t *testing.T) {
	c, _ := setup(t, []uint8{0xA9, 0x50, 0x69, 0x50}, 0x0600)
	c.Run(100)
	if c.A != 0xA0 {
		t.Errorf("A = $%02X, want $A0", c.A)
	}
	if c.P&P_OVERFLOW == 0 || c.P&P_CARRY != 0 || c.P&P_NEGATIVE == 0 {
		t.Errorf("flags after scenario 2: P=$%02X", c.P)
	}
}

func TestADCScenario3(t *testing.T) {
	c, _ := setup(t, []uint8{0xA9, 0xD0, 0x69, 0x90}, 0x0600)
	c.Run(100)
	if c.A != 0x60 {
		t.Errorf("A = $%02X, want $60", c.A)
	}
	if c.P&P_OVERFLOW == 0 || c.P&P_CARRY == 0 {
		t.Errorf("flags after scenario 3: P=$%02X", c.P)
	}
}

func TestADCScenario4(t *testing.T) {
	c, _ := setup(t, []uint8{0xA9, 0x80, 0x69, 0x80}, 0x0600)
	c.Run(100)
	if c.A != 0x00 {
		t.Errorf("A = $%02X, want $00", c.A)
	}
	if c.P&P_ZERO == 0 || c.P&P_CARRY == 0 || c.P&P_OVERFLOW == 0 {
		t.Errorf("flags after scenario 4: P=$%02X", c.P)
	}
}

func TestRORScenario5(t *testing.T) {
	c, _ := setup(t, []uint8{0xA9, 0x6C, 0x38, 0x6A}, 0x0600) // LDA #$6C; SEC; ROR A
	c.Run(100)
	if c.A != 0xB6 {
		t.Errorf("A = $%02X, want $B6", c.A)
	}
	if c.P&P_CARRY != 0 {
		t.Errorf("C after ROR = set, want clear")
	}
}

func TestROLScenario6(t *testing.T) {
	c, _ := setup(t, []uint8{0xA9, 0x95, 0x18, 0x2A}, 0x0600) // LDA #$95; CLC; ROL A
	c.Run(100)
	if c.A != 0x2A {
		t.Errorf("A = $%02X, want $2A", c.A)
	}
	if c.P&P_CARRY == 0 {
		t.Errorf("C after ROL = clear, want set")
	}
}

// Invariants, checked across a spread of operand pairs rather than
// exhaustively over all 65536 combinations.

func TestADCInvariant(t *testing.T) {
	operands := []uint8{0x00, 0x01, 0x7F, 0x80, 0xFF, 0x50, 0xD0}
	for _, a := range operands {
		for _, m := range operands {
			for _, carryIn := range []uint8{0, 1} {
				setCarry := uint8(0x18) // CLC
				if carryIn == 1 {
					setCarry = 0x38 // SEC
				}
				prog := []uint8{0xA9, a, setCarry, 0x69, m}
				c, _ := setup(t, prog, 0x0600)
				c.Run(100)
				wantA := uint8(uint16(a) + uint16(m) + uint16(carryIn))
				if c.A != wantA {
					t.Fatalf("A=%d M=%d carryIn=%d: A_after=$%02X want $%02X", a, m, carryIn, c.A, wantA)
				}
				wantC := uint16(a)+uint16(m)+uint16(carryIn) > 0xFF
				if (c.P&P_CARRY != 0) != wantC {
					t.Fatalf("A=%d M=%d carryIn=%d: C mismatch", a, m, carryIn)
				}
				wantV := (a^m)&0x80 == 0 && (a^wantA)&0x80 != 0
				if (c.P&P_OVERFLOW != 0) != wantV {
					t.Fatalf("A=%d M=%d carryIn=%d: V mismatch", a, m, carryIn)
				}
				wantZ := wantA == 0
				if (c.P&P_ZERO != 0) != wantZ {
					t.Fatalf("A=%d M=%d carryIn=%d: Z mismatch", a, m, carryIn)
				}
				wantN := wantA&0x80 != 0
				if (c.P&P_NEGATIVE != 0) != wantN {
					t.Fatalf("A=%d M=%d carryIn=%d: N mismatch", a, m, carryIn)
				}
			}
		}
	}
}

func TestCMPInvariant(t *testing.T) {
	operands := []uint8{0x00, 0x01, 0x7F, 0x80, 0xFF, 0x50}
	for _, a := range operands {
		for _, m := range operands {
			c, _ := setup(t, []uint8{0xA9, a, 0xC9, m}, 0x0600)
			c.Run(100)
			wantC := a >= m
			wantZ := a == m
			wantN := (a-m)&0x80 != 0
			if (c.P&P_CARRY != 0) != wantC {
				t.Errorf("a=%d m=%d: C mismatch", a, m)
			}
			if (c.P&P_ZERO != 0) != wantZ {
				t.Errorf("a=%d m=%d: Z mismatch", a, m)
			}
			if (c.P&P_NEGATIVE != 0) != wantN {
				t.Errorf("a=%d m=%d: N mismatch", a, m)
			}
		}
	}
}

func TestASLLSRRoundTrip(t *testing.T) {
	for _, v := range []uint8{0x00, 0x01, 0x55, 0xAA, 0xFF, 0x80, 0x7F} {
		c, _ := setup(t, []uint8{0xA9, v, 0x0A, 0x4A}, 0x0600) // LDA v; ASL A; LSR A
		c.Run(100)
		want := (v << 1) >> 1
		if c.A != want {
			t.Errorf("v=$%02X: ASL/LSR round trip = $%02X, want $%02X", v, c.A, want)
		}
	}
}

func TestROLRORIdentity(t *testing.T) {
	for _, v := range []uint8{0x00, 0x01, 0x55, 0xAA, 0xFF, 0x80} {
		for _, carry := range []uint8{0x18, 0x38} { // CLC, SEC
			c, _ := setup(t, []uint8{carry, 0xA9, v, 0x2A, 0x6A}, 0x0600)
			c.Run(100)
			if c.A != v {
				t.Errorf("v=$%02X carrySet=%v: ROL/ROR identity broken, got $%02X", v, carry == 0x38, c.A)
			}
		}
	}
}

func TestStackPushPullRoundTrip(t *testing.T) {
	c, _ := setup(t, nil, 0x0600)
	for _, b := range []uint8{0x00, 0x42, 0xFF, 0x7F} {
		startS := c.S
		if err := c.push(b); err != nil {
			t.Fatalf("push: %v", err)
		}
		got, err := c.pull()
		if err != nil {
			t.Fatalf("pull: %v", err)
		}
		if got != b {
			t.Errorf("push/pull round trip = $%02X, want $%02X", got, b)
		}
		if c.S != startS {
			t.Errorf("S after round trip = $%02X, want $%02X", c.S, startS)
		}
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	// JSR $0610 at $0600; BRK at $0603 (landed on after RTS); RTS at $0610.
	prog := make([]uint8, 0x20)
	prog[0] = 0x20
	prog[1] = 0x10
	prog[2] = 0x06
	prog[3] = 0x00
	prog[0x10] = 0x60
	c, _ := setup(t, prog, 0x0600)
	if err := c.Step(); err != nil { // JSR
		t.Fatalf("JSR: %v", err)
	}
	if c.PC != 0x0610 {
		t.Fatalf("PC after JSR = $%04X, want $0610", c.PC)
	}
	if err := c.Step(); err != nil { // RTS
		t.Fatalf("RTS: %v", err)
	}
	if c.PC != 0x0603 {
		t.Fatalf("PC after RTS = $%04X, want $0603 (instruction after JSR)", c.PC)
	}
}

func TestLoadThenReadRoundTrip(t *testing.T) {
	ram := memory.NewRawRAM()
	prog := []uint8{0x01, 0x02, 0x03, 0x04, 0x05}
	if err := ram.Load(prog, 0x2000); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, b := range prog {
		if got := ram.Read(0x2000 + uint16(i)); got != b {
			t.Errorf("Read(0x%04X) = $%02X, want $%02X", 0x2000+i, got, b)
		}
	}
}

func TestUndefinedOpcodeStops(t *testing.T) {
	c, _ := setup(t, []uint8{0x02}, 0x0600) // 0x02 is unassigned
	err := c.Step()
	if err == nil {
		t.Fatal("Step on undefined opcode returned nil error")
	}
	if _, ok := err.(UndefinedOpcodeError); !ok {
		t.Fatalf("Step error type = %T, want UndefinedOpcodeError", err)
	}
	if c.IsRunning() {
		t.Error("IsRunning() = true after undefined opcode, want false")
	}
}

func TestStackUnderflowStops(t *testing.T) {
	c, _ := setup(t, []uint8{0x68}, 0x0600) // PLA
	c.S = 0xFF
	err := c.Step()
	if err == nil {
		t.Fatal("Step on stack underflow returned nil error")
	}
	if _, ok := err.(StackError); !ok {
		t.Fatalf("Step error type = %T, want StackError", err)
	}
}

func TestBRKStops(t *testing.T) {
	c, _ := setup(t, []uint8{0x00}, 0x0600)
	c.Step()
	if c.IsRunning() {
		t.Error("IsRunning() = true after BRK")
	}
	if c.P&P_B == 0 {
		t.Error("P_B not set after BRK")
	}
}

func TestZeroPageXWraps(t *testing.T) {
	// LDX #$01; LDA $FF,X -> reads $00, not $0100.
	c, ram := setup(t, []uint8{0xA2, 0x01, 0xB5, 0xFF}, 0x0600)
	ram.Write(0x0000, 0x42)
	ram.Write(0x0100, 0x99)
	c.Run(100)
	if c.A != 0x42 {
		t.Errorf("zero-page,X did not wrap: A=$%02X, want $42", c.A)
	}
}

func TestIndirectYPointerWrapsHighByte(t *testing.T) {
	// Pointer stored at zp $FF/$00 (wraps), target $0300, Y=$01 -> $0301.
	c, ram := setup(t, []uint8{0xA0, 0x01, 0xB1, 0xFF}, 0x0600)
	ram.Write(0x00FF, 0x00)
	ram.Write(0x0000, 0x03)
	ram.Write(0x0301, 0x7E)
	c.Run(100)
	if c.A != 0x7E {
		t.Errorf("indirect,Y pointer high byte did not wrap: A=$%02X, want $7E", c.A)
	}
}

func TestDEXINXWrap(t *testing.T) {
	c, _ := setup(t, []uint8{0xA2, 0x00, 0xCA}, 0x0600) // LDX #0; DEX
	c.Run(100)
	if c.X != 0xFF {
		t.Errorf("DEX from 0 = $%02X, want $FF (wrap)", c.X)
	}
	c2, _ := setup(t, []uint8{0xA2, 0xFF, 0xE8}, 0x0600) // LDX #$FF; INX
	c2.Run(100)
	if c2.X != 0x00 {
		t.Errorf("INX from $FF = $%02X, want $00 (wrap)", c2.X)
	}
}

func TestWozmonResetVector(t *testing.T) {
	wozmon := make([]uint8, 256)
	for i := range wozmon {
		wozmon[i] = 0xEA
	}
	ram := memory.NewRawRAM()
	if err := ram.Load(nil, 0); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, b := range wozmon {
		ram.Write(0xFF00+uint16(i), b)
	}
	ram.Write(RESET_VECTOR, 0x00)
	ram.Write(RESET_VECTOR+1, 0xFF)
	c := New(ram)
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if c.PC != 0xFF00 {
		t.Fatalf("PC after Reset = $%04X, want $FF00", c.PC)
	}
}
