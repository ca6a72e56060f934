// Package cpu implements the MOS 6502 instruction set: the register
// file, packed status byte, addressing-mode decoders and cycle
// accounting needed to run a guest program against a memory.Bus.
package cpu

import (
	"fmt"

	"github.com/gtco/magpie/memory"
)

// Vector addresses the CPU reads on Reset and would read on an
// interrupt (NMI/IRQ are not modeled; only RESET_VECTOR is consulted).
const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)
)

// Bits of the packed status byte P, layout NV1BDIZC.
const (
	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Always reads 1.
	P_B         = uint8(0x10) // Set by BRK and by the value PLP/RTI restore.
	P_DECIMAL   = uint8(0x08)
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)
)

// UndefinedOpcodeError reports a fatal attempt to execute a byte with
// no assigned instruction.
type UndefinedOpcodeError struct {
	PC     uint16
	Opcode uint8
	A, X, Y, S, P uint8
}

// Error implements the error interface.
func (e UndefinedOpcodeError) Error() string {
	return fmt.Sprintf("undefined opcode 0x%02X at PC=$%04X (A=$%02X X=$%02X Y=$%02X S=$%02X P=$%02X)",
		e.Opcode, e.PC, e.A, e.X, e.Y, e.S, e.P)
}

// StackError reports a push past the bottom of the stack page or a
// pull past the top - a guest bug, not a recoverable condition.
type StackError struct {
	Op string // "push" or "pull"
	SP uint8
}

// Error implements the error interface.
func (e StackError) Error() string {
	return fmt.Sprintf("stack %s discipline violation at SP=$%02X", e.Op, e.SP)
}

// addrMode names an addressing mode. The zero value, implied, carries
// no operand.
type addrMode int

const (
	implied addrMode = iota
	accumulator
	immediate
	zeroPage
	zeroPageX
	zeroPageY
	absolute
	absoluteX
	absoluteY
	indirect
	indirectX
	indirectY
	relative
)

// instruction describes one of the 256 possible opcode bytes: its
// mnemonic (for disassembly), addressing mode, base cycle cost, and
// the method that executes it.
type instruction struct {
	name   string
	mode   addrMode
	cycles uint8
	exec   func(c *Chip, m addrMode) error
}

// Chip is an MOS 6502 register file and instruction decoder bound to
// a single memory.Bus. The zero value is not usable; construct with
// New.
type Chip struct {
	A, X, Y uint8
	S       uint8
	P       uint8
	PC      uint16

	cycleCount int32
	stopped    bool

	bus memory.Bus
}

// New returns a Chip driving bus. Call Reset before stepping it.
func New(bus memory.Bus) *Chip {
	return &Chip{bus: bus}
}

// Reset reinitializes the register file, loads PC from the reset
// vector, and clears the stopped flag.
func (c *Chip) Reset() error {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = P_S1 | P_B
	lo := c.bus.Read(RESET_VECTOR)
	hi := c.bus.Read(RESET_VECTOR + 1)
	c.PC = uint16(lo) | uint16(hi)<<8
	c.cycleCount = 0
	c.stopped = false
	return nil
}

// Step fetches, decodes and executes a single instruction at PC. It
// returns a non-nil error (and sets the stopped flag) on an undefined
// opcode or a stack-discipline violation.
func (c *Chip) Step() error {
	opcode := c.readPC()
	instr := opcodeTable[opcode]
	if instr.exec == nil {
		c.stopped = true
		return UndefinedOpcodeError{PC: c.PC - 1, Opcode: opcode, A: c.A, X: c.X, Y: c.Y, S: c.S, P: c.P}
	}
	c.cycleCount += int32(instr.cycles)
	if err := instr.exec(c, instr.mode); err != nil {
		c.stopped = true
		return err
	}
	return nil
}

// Run zeros the cycle counter, then steps until it reaches
// targetCycles or the CPU stops, whichever comes first. It returns the
// final cycle count.
func (c *Chip) Run(targetCycles int32) int32 {
	c.cycleCount = 0
	for c.cycleCount < targetCycles && !c.stopped {
		if err := c.Step(); err != nil {
			break
		}
	}
	return c.cycleCount
}

// IsRunning reports whether the CPU has not yet stopped.
func (c *Chip) IsRunning() bool {
	return !c.stopped
}

// KeyReady forwards to the bus.
func (c *Chip) KeyReady() bool {
	return c.bus.KeyReady()
}

// KeyPressed forwards to the bus.
func (c *Chip) KeyPressed(key uint8) {
	c.bus.KeyPressed(key)
}

// readPC returns the byte at PC and advances PC by one.
func (c *Chip) readPC() uint8 {
	v := c.bus.Read(c.PC)
	c.PC++
	return v
}

// effectiveAddress computes the address an instruction's operand
// refers to for any mode but implied, accumulator and immediate (those
// have no memory address). Zero-page-family wraps stay within page 0
// because the arithmetic is done in uint8 before widening to uint16.
func (c *Chip) effectiveAddress(m addrMode) uint16 {
	switch m {
	case zeroPage:
		return uint16(c.readPC())
	case zeroPageX:
		return uint16(c.readPC() + c.X)
	case zeroPageY:
		return uint16(c.readPC() + c.Y)
	case absolute:
		lo, hi := c.readPC(), c.readPC()
		return uint16(lo) | uint16(hi)<<8
	case absoluteX:
		lo, hi := c.readPC(), c.readPC()
		return (uint16(lo) | uint16(hi)<<8) + uint16(c.X)
	case absoluteY:
		lo, hi := c.readPC(), c.readPC()
		return (uint16(lo) | uint16(hi)<<8) + uint16(c.Y)
	case indirect:
		lo, hi := c.readPC(), c.readPC()
		ptr := uint16(lo) | uint16(hi)<<8
		rlo, rhi := c.bus.Read(ptr), c.bus.Read(ptr+1)
		return uint16(rlo) | uint16(rhi)<<8
	case indirectX:
		zp := c.readPC() + c.X
		lo, hi := c.bus.Read(uint16(zp)), c.bus.Read(uint16(zp+1))
		return uint16(lo) | uint16(hi)<<8
	case indirectY:
		zp := c.readPC()
		lo, hi := c.bus.Read(uint16(zp)), c.bus.Read(uint16(zp+1))
		return (uint16(lo) | uint16(hi)<<8) + uint16(c.Y)
	default:
		return 0
	}
}

// operandValue reads the value an instruction operates on: the
// immediate byte itself, or the byte at the mode's effective address.
func (c *Chip) operandValue(m addrMode) uint8 {
	if m == immediate {
		return c.readPC()
	}
	return c.bus.Read(c.effectiveAddress(m))
}

// setZN updates Z and N from v, as every load/arithmetic/logical/shift
// instruction does.
func (c *Chip) setZN(v uint8) {
	if v == 0 {
		c.P |= P_ZERO
	} else {
		c.P &^= P_ZERO
	}
	if v&0x80 != 0 {
		c.P |= P_NEGATIVE
	} else {
		c.P &^= P_NEGATIVE
	}
}

func (c *Chip) setFlag(bit uint8, on bool) {
	if on {
		c.P |= bit
	} else {
		c.P &^= bit
	}
}

// push stores v at the current stack position and decrements S. SP
// reaching the bottom of the stack page before a push completes is a
// guest bug, reported via StackError.
func (c *Chip) push(v uint8) error {
	if c.S <= 1 {
		return StackError{Op: "push", SP: c.S}
	}
	c.bus.Write(0x0100+uint16(c.S), v)
	c.S--
	return nil
}

// pull increments S and returns the byte now at the stack position. SP
// reaching the top of the stack page before a pull completes is a
// guest bug, reported via StackError.
func (c *Chip) pull() (uint8, error) {
	if c.S >= 0xFF {
		return 0, StackError{Op: "pull", SP: c.S}
	}
	c.S++
	return c.bus.Read(0x0100 + uint16(c.S)), nil
}

func (c *Chip) pushWord(v uint16) error {
	if err := c.push(uint8(v >> 8)); err != nil {
		return err
	}
	return c.push(uint8(v))
}

func (c *Chip) pullWord() (uint16, error) {
	lo, err := c.pull()
	if err != nil {
		return 0, err
	}
	hi, err := c.pull()
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// Arithmetic.

func (c *Chip) iADC(m addrMode) error {
	M := c.operandValue(m)
	carry := uint16(0)
	if c.P&P_CARRY != 0 {
		carry = 1
	}
	sum := uint16(c.A) + uint16(M) + carry
	result := uint8(sum)
	c.setFlag(P_CARRY, sum > 0xFF)
	c.setFlag(P_OVERFLOW, (c.A^M)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
	return nil
}

func (c *Chip) iSBC(m addrMode) error {
	M := c.operandValue(m)
	notM := ^M
	carry := uint16(0)
	if c.P&P_CARRY != 0 {
		carry = 1
	}
	sum := uint16(c.A) + uint16(notM) + carry
	result := uint8(sum)
	c.setFlag(P_CARRY, sum > 0xFF)
	c.setFlag(P_OVERFLOW, (c.A^notM)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
	return nil
}

func (c *Chip) iAND(m addrMode) error { c.A &= c.operandValue(m); c.setZN(c.A); return nil }
func (c *Chip) iORA(m addrMode) error { c.A |= c.operandValue(m); c.setZN(c.A); return nil }
func (c *Chip) iEOR(m addrMode) error { c.A ^= c.operandValue(m); c.setZN(c.A); return nil }

// Shifts and rotates: accumulator mode operates on A in place,
// everything else is a read-modify-write through the bus.

func (c *Chip) iASL(m addrMode) error {
	if m == accumulator {
		c.setFlag(P_CARRY, c.A&0x80 != 0)
		c.A <<= 1
		c.setZN(c.A)
		return nil
	}
	addr := c.effectiveAddress(m)
	v := c.bus.Read(addr)
	c.setFlag(P_CARRY, v&0x80 != 0)
	v <<= 1
	c.bus.Write(addr, v)
	c.setZN(v)
	return nil
}

func (c *Chip) iLSR(m addrMode) error {
	if m == accumulator {
		c.setFlag(P_CARRY, c.A&0x01 != 0)
		c.A >>= 1
		c.setZN(c.A)
		return nil
	}
	addr := c.effectiveAddress(m)
	v := c.bus.Read(addr)
	c.setFlag(P_CARRY, v&0x01 != 0)
	v >>= 1
	c.bus.Write(addr, v)
	c.setZN(v)
	return nil
}

func (c *Chip) iROL(m addrMode) error {
	var oldCarry uint8
	if c.P&P_CARRY != 0 {
		oldCarry = 1
	}
	if m == accumulator {
		c.setFlag(P_CARRY, c.A&0x80 != 0)
		c.A = (c.A << 1) | oldCarry
		c.setZN(c.A)
		return nil
	}
	addr := c.effectiveAddress(m)
	v := c.bus.Read(addr)
	c.setFlag(P_CARRY, v&0x80 != 0)
	v = (v << 1) | oldCarry
	c.bus.Write(addr, v)
	c.setZN(v)
	return nil
}

func (c *Chip) iROR(m addrMode) error {
	var oldCarry uint8
	if c.P&P_CARRY != 0 {
		oldCarry = 0x80
	}
	if m == accumulator {
		c.setFlag(P_CARRY, c.A&0x01 != 0)
		c.A = (c.A >> 1) | oldCarry
		c.setZN(c.A)
		return nil
	}
	addr := c.effectiveAddress(m)
	v := c.bus.Read(addr)
	c.setFlag(P_CARRY, v&0x01 != 0)
	v = (v >> 1) | oldCarry
	c.bus.Write(addr, v)
	c.setZN(v)
	return nil
}

func (c *Chip) iINC(m addrMode) error {
	addr := c.effectiveAddress(m)
	v := c.bus.Read(addr) + 1
	c.bus.Write(addr, v)
	c.setZN(v)
	return nil
}

func (c *Chip) iDEC(m addrMode) error {
	addr := c.effectiveAddress(m)
	v := c.bus.Read(addr) - 1
	c.bus.Write(addr, v)
	c.setZN(v)
	return nil
}

// Compares: computed as a 16-bit signed difference per spec, with C
// set from the unsigned register >= operand relation.

func (c *Chip) compare(reg uint8, m addrMode) {
	M := c.operandValue(m)
	diff := int16(reg) - int16(M)
	result := uint8(diff)
	c.setFlag(P_CARRY, reg >= M)
	c.setFlag(P_ZERO, result == 0)
	c.setFlag(P_NEGATIVE, result&0x80 != 0)
}

func (c *Chip) iCMP(m addrMode) error { c.compare(c.A, m); return nil }
func (c *Chip) iCPX(m addrMode) error { c.compare(c.X, m); return nil }
func (c *Chip) iCPY(m addrMode) error { c.compare(c.Y, m); return nil }

func (c *Chip) iBIT(m addrMode) error {
	M := c.operandValue(m)
	c.setFlag(P_ZERO, c.A&M == 0)
	c.setFlag(P_NEGATIVE, M&0x80 != 0)
	c.setFlag(P_OVERFLOW, M&0x40 != 0)
	return nil
}

// Loads and stores.

func (c *Chip) iLDA(m addrMode) error { c.A = c.operandValue(m); c.setZN(c.A); return nil }
func (c *Chip) iLDX(m addrMode) error { c.X = c.operandValue(m); c.setZN(c.X); return nil }
func (c *Chip) iLDY(m addrMode) error { c.Y = c.operandValue(m); c.setZN(c.Y); return nil }

func (c *Chip) iSTA(m addrMode) error { c.bus.Write(c.effectiveAddress(m), c.A); return nil }
func (c *Chip) iSTX(m addrMode) error { c.bus.Write(c.effectiveAddress(m), c.X); return nil }
func (c *Chip) iSTY(m addrMode) error { c.bus.Write(c.effectiveAddress(m), c.Y); return nil }

// Control flow.

func (c *Chip) iJMP(m addrMode) error { c.PC = c.effectiveAddress(m); return nil }

func (c *Chip) iJSR(m addrMode) error {
	target := c.effectiveAddress(m)
	if err := c.pushWord(c.PC); err != nil {
		return err
	}
	c.PC = target
	return nil
}

func (c *Chip) iRTS(m addrMode) error {
	addr, err := c.pullWord()
	if err != nil {
		return err
	}
	c.PC = addr
	return nil
}

func (c *Chip) iBRK(m addrMode) error {
	c.P |= P_B
	c.stopped = true
	return nil
}

func (c *Chip) iRTI(m addrMode) error {
	p, err := c.pull()
	if err != nil {
		return err
	}
	c.P = p | P_S1
	addr, err := c.pullWord()
	if err != nil {
		return err
	}
	c.PC = addr
	return nil
}

// branchIf consumes the relative offset and, if taken, applies it to
// PC and charges the extra cycle.
func (c *Chip) branchIf(taken bool) error {
	offset := int8(c.readPC())
	if taken {
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.cycleCount++
	}
	return nil
}

func (c *Chip) iBCC(m addrMode) error { return c.branchIf(c.P&P_CARRY == 0) }
func (c *Chip) iBCS(m addrMode) error { return c.branchIf(c.P&P_CARRY != 0) }
func (c *Chip) iBEQ(m addrMode) error { return c.branchIf(c.P&P_ZERO != 0) }
func (c *Chip) iBMI(m addrMode) error { return c.branchIf(c.P&P_NEGATIVE != 0) }
func (c *Chip) iBNE(m addrMode) error { return c.branchIf(c.P&P_ZERO == 0) }
func (c *Chip) iBPL(m addrMode) error { return c.branchIf(c.P&P_NEGATIVE == 0) }
func (c *Chip) iBVC(m addrMode) error { return c.branchIf(c.P&P_OVERFLOW == 0) }
func (c *Chip) iBVS(m addrMode) error { return c.branchIf(c.P&P_OVERFLOW != 0) }

// Register transfers, stack ops and flag ops.

func (c *Chip) iTAX(m addrMode) error { c.X = c.A; c.setZN(c.X); return nil }
func (c *Chip) iTAY(m addrMode) error { c.Y = c.A; c.setZN(c.Y); return nil }
func (c *Chip) iTXA(m addrMode) error { c.A = c.X; c.setZN(c.A); return nil }
func (c *Chip) iTYA(m addrMode) error { c.A = c.Y; c.setZN(c.A); return nil }
func (c *Chip) iTSX(m addrMode) error { c.X = c.S; c.setZN(c.X); return nil }
func (c *Chip) iTXS(m addrMode) error { c.S = c.X; return nil }

func (c *Chip) iPHA(m addrMode) error { return c.push(c.A) }
func (c *Chip) iPHP(m addrMode) error { return c.push(c.P | P_S1 | P_B) }

func (c *Chip) iPLA(m addrMode) error {
	v, err := c.pull()
	if err != nil {
		return err
	}
	c.A = v
	c.setZN(c.A)
	return nil
}

func (c *Chip) iPLP(m addrMode) error {
	v, err := c.pull()
	if err != nil {
		return err
	}
	c.P = v | P_S1
	return nil
}

func (c *Chip) iCLC(m addrMode) error { c.P &^= P_CARRY; return nil }
func (c *Chip) iSEC(m addrMode) error { c.P |= P_CARRY; return nil }
func (c *Chip) iCLD(m addrMode) error { c.P &^= P_DECIMAL; return nil }
func (c *Chip) iSED(m addrMode) error { c.P |= P_DECIMAL; return nil }
func (c *Chip) iCLI(m addrMode) error { c.P &^= P_INTERRUPT; return nil }
func (c *Chip) iSEI(m addrMode) error { c.P |= P_INTERRUPT; return nil }
func (c *Chip) iCLV(m addrMode) error { c.P &^= P_OVERFLOW; return nil }

func (c *Chip) iINX(m addrMode) error { c.X++; c.setZN(c.X); return nil }
func (c *Chip) iDEX(m addrMode) error { c.X--; c.setZN(c.X); return nil }
func (c *Chip) iINY(m addrMode) error { c.Y++; c.setZN(c.Y); return nil }
func (c *Chip) iDEY(m addrMode) error { c.Y--; c.setZN(c.Y); return nil }

func (c *Chip) iNOP(m addrMode) error { return nil }

// OpcodeInfo describes one opcode byte for disassembly: its mnemonic,
// the total instruction length in bytes (opcode plus operand), and an
// addressing-mode label used to format the operand.
type OpcodeInfo struct {
	Mnemonic string
	Size     int
	Mode     string
}

// modeLabel and modeSize classify an addrMode for disassembly.
func modeLabel(m addrMode) string {
	switch m {
	case accumulator:
		return "acc"
	case immediate:
		return "imm"
	case zeroPage:
		return "zp"
	case zeroPageX:
		return "zpx"
	case zeroPageY:
		return "zpy"
	case absolute:
		return "abs"
	case absoluteX:
		return "absx"
	case absoluteY:
		return "absy"
	case indirect:
		return "ind"
	case indirectX:
		return "indx"
	case indirectY:
		return "indy"
	case relative:
		return "rel"
	default:
		return "impl"
	}
}

func modeSize(m addrMode) int {
	switch m {
	case implied, accumulator:
		return 1
	case absolute, absoluteX, absoluteY, indirect:
		return 3
	default:
		return 2
	}
}

// Lookup returns disassembly metadata for opcode, and false if the
// byte has no assigned instruction.
func Lookup(opcode uint8) (OpcodeInfo, bool) {
	instr := opcodeTable[opcode]
	if instr.exec == nil {
		return OpcodeInfo{}, false
	}
	return OpcodeInfo{Mnemonic: instr.name, Size: modeSize(instr.mode), Mode: modeLabel(instr.mode)}, true
}

// opcodeTable is the 256-entry decode table described in spec.md's
// design notes: addressing mode and base cycle cost alongside the
// method that executes each documented opcode. Unassigned entries
// leave exec nil, which Step reports as UndefinedOpcodeError.
var opcodeTable = [256]instruction{
	0x00: {"BRK", implied, 7, (*Chip).iBRK},
	0x01: {"ORA", indirectX, 6, (*Chip).iORA},
	0x05: {"ORA", zeroPage, 3, (*Chip).iORA},
	0x06: {"ASL", zeroPage, 5, (*Chip).iASL},
	0x08: {"PHP", implied, 3, (*Chip).iPHP},
	0x09: {"ORA", immediate, 2, (*Chip).iORA},
	0x0A: {"ASL", accumulator, 2, (*Chip).iASL},
	0x0D: {"ORA", absolute, 4, (*Chip).iORA},
	0x0E: {"ASL", absolute, 6, (*Chip).iASL},

	0x10: {"BPL", relative, 2, (*Chip).iBPL},
	0x11: {"ORA", indirectY, 5, (*Chip).iORA},
	0x15: {"ORA", zeroPageX, 4, (*Chip).iORA},
	0x16: {"ASL", zeroPageX, 6, (*Chip).iASL},
	0x18: {"CLC", implied, 2, (*Chip).iCLC},
	0x19: {"ORA", absoluteY, 4, (*Chip).iORA},
	0x1D: {"ORA", absoluteX, 4, (*Chip).iORA},
	0x1E: {"ASL", absoluteX, 7, (*Chip).iASL},

	0x20: {"JSR", absolute, 6, (*Chip).iJSR},
	0x21: {"AND", indirectX, 6, (*Chip).iAND},
	0x24: {"BIT", zeroPage, 3, (*Chip).iBIT},
	0x25: {"AND", zeroPage, 3, (*Chip).iAND},
	0x26: {"ROL", zeroPage, 5, (*Chip).iROL},
	0x28: {"PLP", implied, 4, (*Chip).iPLP},
	0x29: {"AND", immediate, 2, (*Chip).iAND},
	0x2A: {"ROL", accumulator, 2, (*Chip).iROL},
	0x2C: {"BIT", absolute, 4, (*Chip).iBIT},
	0x2D: {"AND", absolute, 4, (*Chip).iAND},
	0x2E: {"ROL", absolute, 6, (*Chip).iROL},

	0x30: {"BMI", relative, 2, (*Chip).iBMI},
	0x31: {"AND", indirectY, 5, (*Chip).iAND},
	0x35: {"AND", zeroPageX, 4, (*Chip).iAND},
	0x36: {"ROL", zeroPageX, 6, (*Chip).iROL},
	0x38: {"SEC", implied, 2, (*Chip).iSEC},
	0x39: {"AND", absoluteY, 4, (*Chip).iAND},
	0x3D: {"AND", absoluteX, 4, (*Chip).iAND},
	0x3E: {"ROL", absoluteX, 7, (*Chip).iROL},

	0x40: {"RTI", implied, 6, (*Chip).iRTI},
	0x41: {"EOR", indirectX, 6, (*Chip).iEOR},
	0x45: {"EOR", zeroPage, 3, (*Chip).iEOR},
	0x46: {"LSR", zeroPage, 5, (*Chip).iLSR},
	0x48: {"PHA", implied, 3, (*Chip).iPHA},
	0x49: {"EOR", immediate, 2, (*Chip).iEOR},
	0x4A: {"LSR", accumulator, 2, (*Chip).iLSR},
	0x4C: {"JMP", absolute, 3, (*Chip).iJMP},
	0x4D: {"EOR", absolute, 4, (*Chip).iEOR},
	0x4E: {"LSR", absolute, 6, (*Chip).iLSR},

	0x50: {"BVC", relative, 2, (*Chip).iBVC},
	0x51: {"EOR", indirectY, 5, (*Chip).iEOR},
	0x55: {"EOR", zeroPageX, 4, (*Chip).iEOR},
	0x56: {"LSR", zeroPageX, 6, (*Chip).iLSR},
	0x58: {"CLI", implied, 2, (*Chip).iCLI},
	0x59: {"EOR", absoluteY, 4, (*Chip).iEOR},
	0x5D: {"EOR", absoluteX, 4, (*Chip).iEOR},
	0x5E: {"LSR", absoluteX, 7, (*Chip).iLSR},

	0x60: {"RTS", implied, 6, (*Chip).iRTS},
	0x61: {"ADC", indirectX, 6, (*Chip).iADC},
	0x65: {"ADC", zeroPage, 3, (*Chip).iADC},
	0x66: {"ROR", zeroPage, 5, (*Chip).iROR},
	0x68: {"PLA", implied, 4, (*Chip).iPLA},
	0x69: {"ADC", immediate, 2, (*Chip).iADC},
	0x6A: {"ROR", accumulator, 2, (*Chip).iROR},
	0x6C: {"JMP", indirect, 5, (*Chip).iJMP},
	0x6D: {"ADC", absolute, 4, (*Chip).iADC},
	0x6E: {"ROR", absolute, 6, (*Chip).iROR},

	0x70: {"BVS", relative, 2, (*Chip).iBVS},
	0x71: {"ADC", indirectY, 5, (*Chip).iADC},
	0x75: {"ADC", zeroPageX, 4, (*Chip).iADC},
	0x76: {"ROR", zeroPageX, 6, (*Chip).iROR},
	0x78: {"SEI", implied, 2, (*Chip).iSEI},
	0x79: {"ADC", absoluteY, 4, (*Chip).iADC},
	0x7D: {"ADC", absoluteX, 4, (*Chip).iADC},
	0x7E: {"ROR", absoluteX, 7, (*Chip).iROR},

	0x81: {"STA", indirectX, 6, (*Chip).iSTA},
	0x84: {"STY", zeroPage, 3, (*Chip).iSTY},
	0x85: {"STA", zeroPage, 3, (*Chip).iSTA},
	0x86: {"STX", zeroPage, 3, (*Chip).iSTX},
	0x88: {"DEY", implied, 2, (*Chip).iDEY},
	0x8A: {"TXA", implied, 2, (*Chip).iTXA},
	0x8C: {"STY", absolute, 4, (*Chip).iSTY},
	0x8D: {"STA", absolute, 4, (*Chip).iSTA},
	0x8E: {"STX", absolute, 4, (*Chip).iSTX},

	0x90: {"BCC", relative, 2, (*Chip).iBCC},
	0x91: {"STA", indirectY, 6, (*Chip).iSTA},
	0x94: {"STY", zeroPageX, 4, (*Chip).iSTY},
	0x95: {"STA", zeroPageX, 4, (*Chip).iSTA},
	0x96: {"STX", zeroPageY, 4, (*Chip).iSTX},
	0x98: {"TYA", implied, 2, (*Chip).iTYA},
	0x99: {"STA", absoluteY, 5, (*Chip).iSTA},
	0x9A: {"TXS", implied, 2, (*Chip).iTXS},
	0x9D: {"STA", absoluteX, 5, (*Chip).iSTA},

	0xA0: {"LDY", immediate, 2, (*Chip).iLDY},
	0xA1: {"LDA", indirectX, 6, (*Chip).iLDA},
	0xA2: {"LDX", immediate, 2, (*Chip).iLDX},
	0xA4: {"LDY", zeroPage, 3, (*Chip).iLDY},
	0xA5: {"LDA", zeroPage, 3, (*Chip).iLDA},
	0xA6: {"LDX", zeroPage, 3, (*Chip).iLDX},
	0xA8: {"TAY", implied, 2, (*Chip).iTAY},
	0xA9: {"LDA", immediate, 2, (*Chip).iLDA},
	0xAA: {"TAX", implied, 2, (*Chip).iTAX},
	0xAC: {"LDY", absolute, 4, (*Chip).iLDY},
	0xAD: {"LDA", absolute, 4, (*Chip).iLDA},
	0xAE: {"LDX", absolute, 4, (*Chip).iLDX},

	0xB0: {"BCS", relative, 2, (*Chip).iBCS},
	0xB1: {"LDA", indirectY, 5, (*Chip).iLDA},
	0xB4: {"LDY", zeroPageX, 4, (*Chip).iLDY},
	0xB5: {"LDA", zeroPageX, 4, (*Chip).iLDA},
	0xB6: {"LDX", zeroPageY, 4, (*Chip).iLDX},
	0xB8: {"CLV", implied, 2, (*Chip).iCLV},
	0xB9: {"LDA", absoluteY, 4, (*Chip).iLDA},
	0xBA: {"TSX", implied, 2, (*Chip).iTSX},
	0xBC: {"LDY", absoluteX, 4, (*Chip).iLDY},
	0xBD: {"LDA", absoluteX, 4, (*Chip).iLDA},
	0xBE: {"LDX", absoluteY, 4, (*Chip).iLDX},

	0xC0: {"CPY", immediate, 2, (*Chip).iCPY},
	0xC1: {"CMP", indirectX, 6, (*Chip).iCMP},
	0xC4: {"CPY", zeroPage, 3, (*Chip).iCPY},
	0xC5: {"CMP", zeroPage, 3, (*Chip).iCMP},
	0xC6: {"DEC", zeroPage, 5, (*Chip).iDEC},
	0xC8: {"INY", implied, 2, (*Chip).iINY},
	0xC9: {"CMP", immediate, 2, (*Chip).iCMP},
	0xCA: {"DEX", implied, 2, (*Chip).iDEX},
	0xCC: {"CPY", absolute, 4, (*Chip).iCPY},
	0xCD: {"CMP", absolute, 4, (*Chip).iCMP},
	0xCE: {"DEC", absolute, 6, (*Chip).iDEC},

	0xD0: {"BNE", relative, 2, (*Chip).iBNE},
	0xD1: {"CMP", indirectY, 5, (*Chip).iCMP},
	0xD5: {"CMP", zeroPageX, 4, (*Chip).iCMP},
	0xD6: {"DEC", zeroPageX, 6, (*Chip).iDEC},
	0xD8: {"CLD", implied, 2, (*Chip).iCLD},
	0xD9: {"CMP", absoluteY, 4, (*Chip).iCMP},
	0xDD: {"CMP", absoluteX, 4, (*Chip).iCMP},
	0xDE: {"DEC", absoluteX, 7, (*Chip).iDEC},

	0xE0: {"CPX", immediate, 2, (*Chip).iCPX},
	0xE1: {"SBC", indirectX, 6, (*Chip).iSBC},
	0xE4: {"CPX", zeroPage, 3, (*Chip).iCPX},
	0xE5: {"SBC", zeroPage, 3, (*Chip).iSBC},
	0xE6: {"INC", zeroPage, 5, (*Chip).iINC},
	0xE8: {"INX", implied, 2, (*Chip).iINX},
	0xE9: {"SBC", immediate, 2, (*Chip).iSBC},
	0xEA: {"NOP", implied, 2, (*Chip).iNOP},
	0xEC: {"CPX", absolute, 4, (*Chip).iCPX},
	0xED: {"SBC", absolute, 4, (*Chip).iSBC},
	0xEE: {"INC", absolute, 6, (*Chip).iINC},

	0xF0: {"BEQ", relative, 2, (*Chip).iBEQ},
	0xF1: {"SBC", indirectY, 5, (*Chip).iSBC},
	0xF5: {"SBC", zeroPageX, 4, (*Chip).iSBC},
	0xF6: {"INC", zeroPageX, 6, (*Chip).iINC},
	0xF8: {"SED", implied, 2, (*Chip).iSED},
	0xF9: {"SBC", absoluteY, 4, (*Chip).iSBC},
	0xFD: {"SBC", absoluteX, 4, (*Chip).iSBC},
	0xFE: {"INC", absoluteX, 7, (*Chip).iINC},
}
