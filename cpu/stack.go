package cpu

// The stack lives in main memory and grows downward from the top, with
// the reserved stack pointer register tracking the most recently pushed
// cell. There is no separate depth bound: pushing below address 0 or
// popping past the top of memory surfaces as an ErrAddress from Memory.

// Push decrements the stack pointer and stores a value at the new address.
func (cpu *Cpu) Push(value uint8) (err error) {
	next := int(cpu.Reg.StackPointer()) - 1

	err = cpu.Ram.Write(next, value)
	if err != nil {
		return
	}

	cpu.Reg.SetStackPointer(uint8(next))
	return
}

// Pop reads the value at the stack pointer and increments the pointer.
func (cpu *Cpu) Pop() (value uint8, err error) {
	sp := int(cpu.Reg.StackPointer())

	value, err = cpu.Ram.Read(sp)
	if err != nil {
		return
	}

	next := sp + 1
	if next >= MEM_SIZE {
		// Popping an empty stack.
		err = ErrAddress(next)
		return
	}

	cpu.Reg.SetStackPointer(uint8(next))
	return
}
