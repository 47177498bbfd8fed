package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/bitvex/ls8/device"
)

// Sink is the output device interface for the PRN instruction.
type Sink device.Sink

var _cpu_defines = map[string]string{
	"MEM_SIZE":  fmt.Sprintf("%d", MEM_SIZE),
	"STACK_TOP": fmt.Sprintf("%d", SP_RESET),
	"REG_FL":    fmt.Sprintf("%d", REG_FL),
	"REG_SP":    fmt.Sprintf("%d", REG_SP),
}

// Cpu is the simulation context for the LS-8 machine. All handler state
// lives here; there are no package-level registers or memory.
type Cpu struct {
	Verbose bool // Set to enable the per-cycle trace.

	Ram *Memory       // Flat byte-addressed memory.
	Reg *RegisterFile // Register bank, with FL and SP reserved.
	Pc  int           // Current program counter.

	Output Sink // Destination for PRN values.

	Ticks int // Instruction cycles since reset.
}

// NewCpu creates a CPU with cleared memory and reset registers.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Ram: &Memory{},
		Reg: &RegisterFile{},
	}
	cpu.Reg.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset clears memory and registers and rewinds the program counter.
func (cpu *Cpu) Reset() {
	cpu.Ram.Reset()
	cpu.Reg.Reset()
	cpu.Pc = 0
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   pc: %02X\n", cpu.Pc)
	text += fmt.Sprintf("   fl: %03b\n", cpu.Reg.Flags())
	text += fmt.Sprintf("   sp: %02X\n", cpu.Reg.StackPointer())
	for n := range NUM_REGISTERS {
		text += fmt.Sprintf("   r%d: %02X\n", n, cpu.Reg.Slots[n])
	}

	return
}

// FetchCode fetches and decodes the instruction at the program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	value, err := cpu.Ram.Read(cpu.Pc)
	if err != nil {
		return
	}

	op := Opcode(value)
	if !op.Valid() {
		err = ErrUnknownOpcode{Addr: cpu.Pc, Byte: value}
		return
	}

	code = Code{Op: op, Addr: cpu.Pc}
	for n := range op.Operands() {
		code.Args[n], err = cpu.Ram.Read(cpu.Pc + 1 + n)
		if err != nil {
			return
		}
	}

	return
}

// Tick executes a single instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	if cpu.Verbose {
		cpu.trace(code)
	}

	err = cpu.Execute(code)
	if err != nil {
		return
	}

	cpu.Ticks += 1

	return
}

// Run executes instructions until a HLT or a fatal error.
func (cpu *Cpu) Run() (err error) {
	for {
		err = cpu.Tick()
		if errors.Is(err, ErrHalted) {
			return nil
		}
		if err != nil {
			return
		}
	}
}

// trace logs the program counter, the decoded instruction, and the full
// register bank.
func (cpu *Cpu) trace(code Code) {
	regs := ""
	for n := range NUM_REGISTERS {
		regs += fmt.Sprintf(" %02X", cpu.Reg.Slots[n])
	}

	log.Printf("TRACE: %02X | %-4s %02X %02X |%s",
		code.Addr, code.Op, code.Args[0], code.Args[1], regs)
}

// print emits a value to the output sink.
func (cpu *Cpu) print(value uint8) (err error) {
	if cpu.Output == nil {
		_, err = fmt.Println(value)
		return
	}

	return cpu.Output.Print(value)
}

// Execute executes a single decoded instruction. Handlers advance the
// program counter themselves; control transfers overwrite it instead.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil && !errors.Is(err, ErrHalted) {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	ra := int(code.Args[0])
	rb := int(code.Args[1])

	switch code.Op {
	case HLT:
		return ErrHalted
	case LDI:
		err = cpu.Reg.Set(ra, code.Args[1])
		if err != nil {
			return
		}
		cpu.Pc += 3
	case PRN:
		var value uint8
		value, err = cpu.Reg.Get(ra)
		if err != nil {
			return
		}
		err = cpu.print(value)
		if err != nil {
			return
		}
		cpu.Pc += 2
	case ADD:
		err = cpu.alu(ALU_ADD, ra, rb)
		if err != nil {
			return
		}
		cpu.Pc += 3
	case SUB:
		err = cpu.alu(ALU_SUB, ra, rb)
		if err != nil {
			return
		}
		cpu.Pc += 3
	case MUL:
		err = cpu.alu(ALU_MUL, ra, rb)
		if err != nil {
			return
		}
		cpu.Pc += 3
	case CMP:
		err = cpu.alu(ALU_CMP, ra, rb)
		if err != nil {
			return
		}
		cpu.Pc += 3
	case PUSH:
		var value uint8
		value, err = cpu.Reg.Get(ra)
		if err != nil {
			return
		}
		err = cpu.Push(value)
		if err != nil {
			return
		}
		cpu.Pc += 2
	case POP:
		var value uint8
		value, err = cpu.Pop()
		if err != nil {
			return
		}
		err = cpu.Reg.Set(ra, value)
		if err != nil {
			return
		}
		cpu.Pc += 2
	case CALL:
		// The operand is a register index; the register holds the
		// subroutine address. The return address truncates to the
		// 8-bit address space.
		var target uint8
		target, err = cpu.Reg.Get(ra)
		if err != nil {
			return
		}
		err = cpu.Push(uint8(cpu.Pc + 2))
		if err != nil {
			return
		}
		cpu.Pc = int(target)
	case RET:
		var addr uint8
		addr, err = cpu.Pop()
		if err != nil {
			return
		}
		cpu.Pc = int(addr)
	case JMP:
		var target uint8
		target, err = cpu.Reg.Get(ra)
		if err != nil {
			return
		}
		cpu.Pc = int(target)
	case JEQ, JNE:
		taken := (cpu.Reg.Flags() & FLAG_EQ) != 0
		if code.Op == JNE {
			taken = !taken
		}
		if taken {
			var target uint8
			target, err = cpu.Reg.Get(ra)
			if err != nil {
				return
			}
			cpu.Pc = int(target)
		} else {
			cpu.Pc += 2
		}
	default:
		err = ErrUnknownOpcode{Addr: code.Addr, Byte: uint8(code.Op)}
	}

	return
}
