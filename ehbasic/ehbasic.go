// Package ehbasic implements the memory map used by Lee Davison's
// Enhanced 6502 BASIC: a single-byte keyboard input latch at $F004 and a
// single-byte display output register at $F001, with the rest of the
// address space plain RAM.
package ehbasic

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gtco/magpie/memory"
)

// MMIO register addresses.
const (
	DSP = uint16(0xF001) // Writing here prints the byte.
	KBD = uint16(0xF004) // Reading here returns and clears the latch.
)

// Ehbasic is a memory.Bus implementing the EhBASIC memory map. The zero
// value is not usable; construct with New.
type Ehbasic struct {
	ram *memory.RawRAM
	out *bufio.Writer
}

// New returns an EhBASIC bus writing display output to out. Passing nil
// defaults to os.Stdout.
func New(out *os.File) *Ehbasic {
	if out == nil {
		out = os.Stdout
	}
	return &Ehbasic{
		ram: memory.NewRawRAM(),
		out: bufio.NewWriter(out),
	}
}

// Read implements memory.Bus. Reading KBD clears the latch so a guest
// program sees an empty keyboard buffer until the next KeyPressed.
func (e *Ehbasic) Read(addr uint16) uint8 {
	result := e.ram.Read(addr)
	if addr == KBD {
		e.ram.Write(KBD, 0)
	}
	return result
}

// Write implements memory.Bus. Writing a nonzero byte to DSP prints it
// verbatim (no high-bit masking, unlike the Apple 1 display path).
func (e *Ehbasic) Write(addr uint16, value uint8) {
	if addr == DSP && value > 0 {
		e.out.WriteByte(value)
		e.out.Flush()
	}
	e.ram.Write(addr, value)
}

// Load implements memory.Bus: zero memory, then copy program at base.
// EhBASIC has no resident ROM to re-install.
func (e *Ehbasic) Load(program []uint8, base uint16) error {
	if err := e.ram.Load(program, base); err != nil {
		return fmt.Errorf("ehbasic: %w", err)
	}
	return nil
}

// KeyReady implements memory.Bus: true whenever the latch is empty.
func (e *Ehbasic) KeyReady() bool {
	return e.ram.Read(KBD) == 0
}

// KeyPressed implements memory.Bus: latches one byte into KBD.
func (e *Ehbasic) KeyPressed(key uint8) {
	e.Write(KBD, key)
}
