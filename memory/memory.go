// Package memory defines the bus abstraction that a 6502 interpreter talks
// to. Each emulated system (Apple 1, Enhanced BASIC, ...) maps RAM, ROM and
// memory-mapped I/O registers into a single 64 KiB address space and
// implements Bus accordingly.
package memory

import "fmt"

// Bus is the capability set a platform must provide to a cpu.Chip. Reads
// and writes may have observable side effects (MMIO latches, terminal
// output); a Bus implementation is not expected to be safe for concurrent
// use - it's owned exclusively by the CPU that's stepping it.
type Bus interface {
	// Read returns the byte stored at addr. May mutate internal state
	// (e.g. clearing a "key ready" strobe).
	Read(addr uint16) uint8
	// Write stores val at addr. May produce observable output (e.g.
	// echoing a character to the display).
	Write(addr uint16, val uint8)
	// Load zero-fills the entire address space, then copies program
	// starting at base, then re-installs any platform-resident ROM at
	// its canonical address. Returns an error if the program doesn't
	// fit below the top of the address space.
	Load(program []uint8, base uint16) error
	// KeyReady reports whether the emulated keyboard latch is free to
	// accept a new keystroke.
	KeyReady() bool
	// KeyPressed injects one keystroke into the keyboard latch.
	KeyPressed(key uint8)
}

// MemorySize is the size of the 6502's entire address space.
const MemorySize = 1 << 16

// RawRAM is a Bus with no memory-mapped I/O: every address is plain
// read/write RAM. It's used directly in CPU unit tests and held as the
// backing store by platform types that only need to override a handful of
// MMIO addresses.
type RawRAM struct {
	ram [MemorySize]uint8
}

// NewRawRAM returns a zeroed 64 KiB RAM-only bus.
func NewRawRAM() *RawRAM {
	return &RawRAM{}
}

// Read implements Bus.
func (r *RawRAM) Read(addr uint16) uint8 {
	return r.ram[addr]
}

// Write implements Bus.
func (r *RawRAM) Write(addr uint16, val uint8) {
	r.ram[addr] = val
}

// Load implements Bus. Platforms backed by a RawRAM that need to re-install
// ROM after zeroing should call this then overlay their ROM.
func (r *RawRAM) Load(program []uint8, base uint16) error {
	if int(base)+len(program) > MemorySize {
		return fmt.Errorf("program of %d bytes at base $%04X overruns the address space", len(program), base)
	}
	r.ram = [MemorySize]uint8{}
	copy(r.ram[base:], program)
	return nil
}

// KeyReady implements Bus. RawRAM has no keyboard latch, so it never
// reports one free to accept a keystroke.
func (r *RawRAM) KeyReady() bool {
	return false
}

// KeyPressed implements Bus. RawRAM has no keyboard so this is a no-op.
func (r *RawRAM) KeyPressed(uint8) {}
