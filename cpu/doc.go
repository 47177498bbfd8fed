// Package cpu implements the LS-8 microprocessor, its binary-literal
// program loader, and a small mnemonic assembler.
//
// The CPU consists of a program counter, 256 bytes of flat memory, and
// eight 8-bit general-purpose registers. By convention the two highest
// registers are reserved: r7 is the stack pointer and r6 holds the flags
// set by the CMP instruction. The stack grows downward from the top of
// memory.
//
// Instructions are one opcode byte followed by zero, one, or two operand
// bytes; the operand count is packed into the top two bits of the opcode.
package cpu
