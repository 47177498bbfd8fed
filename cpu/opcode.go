package cpu

import (
	"fmt"
)

// Opcode is a single instruction byte. The LS-8 encoding packs the
// operand byte count into the top two bits of the opcode.
type Opcode uint8

const (
	HLT  = Opcode(0b00000001) // Stop the dispatch loop.
	RET  = Opcode(0b00010001) // Pop the return address into PC.
	PUSH = Opcode(0b01000101) // Push a register value onto the stack.
	POP  = Opcode(0b01000110) // Pop the stack into a register.
	PRN  = Opcode(0b01000111) // Emit a register value to the output sink.
	CALL = Opcode(0b01010000) // Push PC+2, jump to the address held in a register.
	JMP  = Opcode(0b01010100) // Jump to the address held in a register.
	JEQ  = Opcode(0b01010101) // Jump if the EQ flag is set.
	JNE  = Opcode(0b01010110) // Jump if the EQ flag is clear.
	LDI  = Opcode(0b10000010) // Load an immediate literal into a register.
	ADD  = Opcode(0b10100000) // reg_a += reg_b, mod 256.
	SUB  = Opcode(0b10100001) // reg_a -= reg_b, mod 256.
	MUL  = Opcode(0b10100010) // reg_a *= reg_b, mod 256.
	CMP  = Opcode(0b10100111) // Set flags from a three-way register compare.
)

// opInfo is one entry of the instruction table.
type opInfo struct {
	mnemonic string
	operands int
}

// opTable is the closed instruction set, fixed for the lifetime of a run.
var opTable = map[Opcode]opInfo{
	HLT:  {"HLT", 0},
	RET:  {"RET", 0},
	PUSH: {"PUSH", 1},
	POP:  {"POP", 1},
	PRN:  {"PRN", 1},
	CALL: {"CALL", 1},
	JMP:  {"JMP", 1},
	JEQ:  {"JEQ", 1},
	JNE:  {"JNE", 1},
	LDI:  {"LDI", 2},
	ADD:  {"ADD", 2},
	SUB:  {"SUB", 2},
	MUL:  {"MUL", 2},
	CMP:  {"CMP", 2},
}

// Valid reports whether the byte maps to an instruction.
func (op Opcode) Valid() bool {
	_, ok := opTable[op]
	return ok
}

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return opTable[op].operands
}

// Width returns the total instruction width in bytes.
func (op Opcode) Width() int {
	return 1 + op.Operands()
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	info, ok := opTable[op]
	if !ok {
		return fmt.Sprintf("0x%02X", uint8(op))
	}
	return info.mnemonic
}

// Code is a decoded instruction: the opcode, its operand bytes, and the
// address it was fetched from.
type Code struct {
	Op   Opcode
	Args [2]uint8
	Addr int
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	out = code.Op.String()
	for n := range code.Op.Operands() {
		out += fmt.Sprintf(" %02X", code.Args[n])
	}
	return
}
