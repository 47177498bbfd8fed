package cpu

// Flag bits set by the CMP instruction. Exactly one is set per compare.
const (
	FLAG_EQ = uint8(1 << 0) // reg_a == reg_b
	FLAG_GT = uint8(1 << 1) // reg_a > reg_b
	FLAG_LT = uint8(1 << 2) // reg_a < reg_b
)

// AluOp is an ALU operation selector.
type AluOp int

const (
	ALU_ADD = AluOp(0)
	ALU_SUB = AluOp(1)
	ALU_MUL = AluOp(2)
	ALU_CMP = AluOp(3)
)

// doAlu performs the requested arithmetic action, and returns the output
// value. Go uint8 arithmetic wraps mod 256, which is the behaviour the
// fixed-width register model requires.
func doAlu(op AluOp, a, b uint8) (output uint8, err error) {
	switch op {
	case ALU_ADD:
		output = a + b
	case ALU_SUB:
		output = a - b
	case ALU_MUL:
		output = a * b
	default:
		// The instruction set is closed; only a malformed opcode
		// table can select an unsupported operation.
		err = ErrAluOp
	}

	return
}

// compare returns the flag byte of a three-way comparison.
func compare(a, b uint8) uint8 {
	switch {
	case a == b:
		return FLAG_EQ
	case a > b:
		return FLAG_GT
	default:
		return FLAG_LT
	}
}

// alu applies an ALU operation to two register operands. Arithmetic
// results are written back to the first register; a compare writes the
// flags register instead.
func (cpu *Cpu) alu(op AluOp, ra, rb int) (err error) {
	a, err := cpu.Reg.Get(ra)
	if err != nil {
		return
	}
	b, err := cpu.Reg.Get(rb)
	if err != nil {
		return
	}

	if op == ALU_CMP {
		cpu.Reg.SetFlags(compare(a, b))
		return
	}

	output, err := doAlu(op, a, b)
	if err != nil {
		return
	}

	return cpu.Reg.Set(ra, output)
}
