// Package apple1 implements the Apple 1 memory map: 16 KiB of RAM, the
// PIA keyboard/display registers at $D010-$D013, and the Wozniak Monitor
// ROM resident at $FF00-$FFFF.
package apple1

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gtco/magpie/memory"
)

// MMIO register addresses, per the Apple 1's PIA wiring.
const (
	KBD   = uint16(0xD010) // Keyboard data, bit 7 set when a char is latched.
	KBDCR = uint16(0xD011) // Keyboard control, bit 7 = key available.
	DSP   = uint16(0xD012) // Display data, bit 7 is the (emulated) busy flag.
	DSPCR = uint16(0xD013) // Display control, unused by this emulation.

	wozmonBase = uint16(0xFF00)
)

// wozmon is the original 256-byte Apple 1 Wozniak Monitor ROM image,
// installed verbatim at $FF00-$FFFF by every Load.
var wozmon = [256]uint8{
	0xd8, 0x58, 0xa0, 0x7f, 0x8c, 0x12, 0xd0, 0xa9, 0xa7, 0x8d, 0x11, 0xd0, 0x8d, 0x13, 0xd0, 0xc9,
	0xdf, 0xf0, 0x13, 0xc9, 0x9b, 0xf0, 0x03, 0xc8, 0x10, 0x0f, 0xa9, 0xdc, 0x20, 0xef, 0xff, 0xa9,
	0x8d, 0x20, 0xef, 0xff, 0xa0, 0x01, 0x88, 0x30, 0xf6, 0xad, 0x11, 0xd0, 0x10, 0xfb, 0xad, 0x10,
	0xd0, 0x99, 0x00, 0x02, 0x20, 0xef, 0xff, 0xc9, 0x8d, 0xd0, 0xd4, 0xa0, 0xff, 0xa9, 0x00, 0xaa,
	0x0a, 0x85, 0x2b, 0xc8, 0xb9, 0x00, 0x02, 0xc9, 0x8d, 0xf0, 0xd4, 0xc9, 0xae, 0x90, 0xf4, 0xf0,
	0xf0, 0xc9, 0xba, 0xf0, 0xeb, 0xc9, 0xd2, 0xf0, 0x3b, 0x86, 0x28, 0x86, 0x29, 0x84, 0x2a, 0xb9,
	0x00, 0x02, 0x49, 0xb0, 0xc9, 0x0a, 0x90, 0x06, 0x69, 0x88, 0xc9, 0xfa, 0x90, 0x11, 0x0a, 0x0a,
	0x0a, 0x0a, 0xa2, 0x04, 0x0a, 0x26, 0x28, 0x26, 0x29, 0xca, 0xd0, 0xf8, 0xc8, 0xd0, 0xe0, 0xc4,
	0x2a, 0xf0, 0x97, 0x24, 0x2b, 0x50, 0x10, 0xa5, 0x28, 0x81, 0x26, 0xe6, 0x26, 0xd0, 0xb5, 0xe6,
	0x27, 0x4c, 0x44, 0xff, 0x6c, 0x24, 0x00, 0x30, 0x2b, 0xa2, 0x02, 0xb5, 0x27, 0x95, 0x25, 0x95,
	0x23, 0xca, 0xd0, 0xf7, 0xd0, 0x14, 0xa9, 0x8d, 0x20, 0xef, 0xff, 0xa5, 0x25, 0x20, 0xdc, 0xff,
	0xa5, 0x24, 0x20, 0xdc, 0xff, 0xa9, 0xba, 0x20, 0xef, 0xff, 0xa9, 0xa0, 0x20, 0xef, 0xff, 0xa1,
	0x24, 0x20, 0xdc, 0xff, 0x86, 0x2b, 0xa5, 0x24, 0xc5, 0x28, 0xa5, 0x25, 0xe5, 0x29, 0xb0, 0xc1,
	0xe6, 0x24, 0xd0, 0x02, 0xe6, 0x25, 0xa5, 0x24, 0x29, 0x07, 0x10, 0xc8, 0x48, 0x4a, 0x4a, 0x4a,
	0x4a, 0x20, 0xe5, 0xff, 0x68, 0x29, 0x0f, 0x09, 0xb0, 0xc9, 0xba, 0x90, 0x02, 0x69, 0x06, 0x2c,
	0x12, 0xd0, 0x30, 0xfb, 0x8d, 0x12, 0xd0, 0x60, 0x00, 0x00, 0x00, 0x0f, 0x00, 0xff, 0x00, 0x00,
}

// Apple1 is a memory.Bus implementing the Apple 1's RAM/ROM/PIA memory
// map. The zero value is not usable; construct with New.
type Apple1 struct {
	ram *memory.RawRAM
	out *bufio.Writer
}

// New returns an Apple 1 bus with a writer for display output. Passing nil
// defaults to os.Stdout (the emulation's only supported display sink, per
// the driver contract).
func New(out *os.File) *Apple1 {
	if out == nil {
		out = os.Stdout
	}
	return &Apple1{
		ram: memory.NewRawRAM(),
		out: bufio.NewWriter(out),
	}
}

// Read implements memory.Bus. Reading KBD consumes the latched keystroke
// by clearing KBDCR's ready bit.
func (a *Apple1) Read(addr uint16) uint8 {
	result := a.ram.Read(addr)
	if addr == KBD {
		a.ram.Write(KBDCR, a.ram.Read(KBDCR)&0x7F)
	}
	return result
}

// Write implements memory.Bus. Writing DSP echoes the low 7 bits to the
// display (mapping CR/LF to a newline, suppressing rub-out) and clears the
// busy bit that WOZMON polls before the next write.
func (a *Apple1) Write(addr uint16, value uint8) {
	if addr == DSP {
		if value != 0 {
			ch := value & 0x7F
			switch {
			case ch == 0x0A || ch == 0x0D:
				a.out.WriteByte('\n')
			case ch != 0x7F:
				a.out.WriteByte(ch)
			}
			a.out.Flush()
		}
		a.ram.Write(addr, value&0x7F)
		return
	}
	a.ram.Write(addr, value)
}

// Load implements memory.Bus: zero memory, copy program at base, then
// re-install WOZMON at $FF00 so the reset vector resolves into it.
func (a *Apple1) Load(program []uint8, base uint16) error {
	if err := a.ram.Load(program, base); err != nil {
		return fmt.Errorf("apple1: %w", err)
	}
	for i, b := range wozmon {
		a.ram.Write(wozmonBase+uint16(i), b)
	}
	return nil
}

// KeyReady implements memory.Bus: true once the prior keystroke has been
// consumed (KBDCR's ready bit is clear).
func (a *Apple1) KeyReady() bool {
	return a.ram.Read(KBDCR)&0x80 == 0
}

// KeyPressed implements memory.Bus. $0A (bare newline) is a no-op: the
// Apple 1 expects $0D (carriage return) as its line terminator.
func (a *Apple1) KeyPressed(key uint8) {
	if key == 0x0A {
		return
	}
	a.Write(KBD, key|0x80)
	a.Write(KBDCR, 0x80)
}
