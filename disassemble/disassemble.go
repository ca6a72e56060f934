// Package disassemble renders 6502 instruction streams as text, driven
// off the same opcode metadata the cpu package's decode table uses
// rather than a second, independently-maintained opcode switch.
package disassemble

import (
	"fmt"

	"github.com/gtco/magpie/cpu"
	"github.com/gtco/magpie/memory"
)

// Step disassembles the instruction at pc and returns its text plus
// the number of bytes to advance PC to reach the next instruction.
// This does not follow control flow: a JMP target is printed as an
// operand, not chased. For an assigned opcode it reads the operand
// bytes after pc; those addresses wrap past $FFFF to $0000.
func Step(pc uint16, bus memory.Bus) (string, int) {
	opcode := bus.Read(pc)
	info, ok := cpu.Lookup(opcode)
	if !ok {
		return fmt.Sprintf("%.4X %.2X      UNIMPLEMENTED", pc, opcode), 1
	}

	b1 := bus.Read(pc + 1)
	var operand string
	switch info.Mode {
	case "imm":
		operand = fmt.Sprintf("%.2X      %s #$%.2X", b1, info.Mnemonic, b1)
	case "zp":
		operand = fmt.Sprintf("%.2X      %s $%.2X", b1, info.Mnemonic, b1)
	case "zpx":
		operand = fmt.Sprintf("%.2X      %s $%.2X,X", b1, info.Mnemonic, b1)
	case "zpy":
		operand = fmt.Sprintf("%.2X      %s $%.2X,Y", b1, info.Mnemonic, b1)
	case "indx":
		operand = fmt.Sprintf("%.2X      %s ($%.2X,X)", b1, info.Mnemonic, b1)
	case "indy":
		operand = fmt.Sprintf("%.2X      %s ($%.2X),Y", b1, info.Mnemonic, b1)
	case "rel":
		target := uint16(int32(pc) + 2 + int32(int8(b1)))
		operand = fmt.Sprintf("%.2X      %s $%.2X ($%.4X)", b1, info.Mnemonic, b1, target)
	case "abs", "absx", "absy", "ind":
		b2 := bus.Read(pc + 2)
		word := uint16(b1) | uint16(b2)<<8
		suffix := ""
		switch info.Mode {
		case "absx":
			suffix = ",X"
		case "absy":
			suffix = ",Y"
		}
		if info.Mode == "ind" {
			operand = fmt.Sprintf("%.2X %.2X   %s ($%.4X)", b1, b2, info.Mnemonic, word)
		} else {
			operand = fmt.Sprintf("%.2X %.2X   %s $%.4X%s", b1, b2, info.Mnemonic, word, suffix)
		}
	case "acc":
		operand = fmt.Sprintf("        %s A", info.Mnemonic)
	default: // impl
		operand = fmt.Sprintf("        %s", info.Mnemonic)
	}
	return fmt.Sprintf("%.4X %.2X %s", pc, opcode, operand), info.Size
}

// Range disassembles count instructions starting at pc, returning one
// line of text per instruction.
func Range(pc uint16, count int, bus memory.Bus) []string {
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		line, size := Step(pc, bus)
		lines = append(lines, line)
		pc += uint16(size)
	}
	return lines
}
