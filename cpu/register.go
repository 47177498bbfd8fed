package cpu

const (
	NUM_REGISTERS = 8 // General purpose register slots.

	REG_FL = 6 // Reserved slot: flags register.
	REG_SP = 7 // Reserved slot: stack pointer.

	SP_RESET = MEM_SIZE - 1 // Stack pointer value after reset.
)

// RegisterFile is the bank of 8-bit registers. The two highest slots are
// reserved by convention, not by storage: r7 is the stack pointer and r6
// is the flags register, reachable through the named accessors.
type RegisterFile struct {
	Slots [NUM_REGISTERS]uint8
}

// Get returns the value of a register.
func (reg *RegisterFile) Get(index int) (value uint8, err error) {
	if index < 0 || index >= NUM_REGISTERS {
		err = ErrRegister(index)
		return
	}

	value = reg.Slots[index]
	return
}

// Set stores a value into a register.
func (reg *RegisterFile) Set(index int, value uint8) (err error) {
	if index < 0 || index >= NUM_REGISTERS {
		err = ErrRegister(index)
		return
	}

	reg.Slots[index] = value
	return
}

// StackPointer returns the reserved stack pointer slot.
func (reg *RegisterFile) StackPointer() uint8 {
	return reg.Slots[REG_SP]
}

// SetStackPointer stores the reserved stack pointer slot.
func (reg *RegisterFile) SetStackPointer(value uint8) {
	reg.Slots[REG_SP] = value
}

// Flags returns the reserved flags slot.
func (reg *RegisterFile) Flags() uint8 {
	return reg.Slots[REG_FL]
}

// SetFlags stores the reserved flags slot.
func (reg *RegisterFile) SetFlags(value uint8) {
	reg.Slots[REG_FL] = value
}

// Reset clears all registers and points the stack at the top of memory.
func (reg *RegisterFile) Reset() {
	clear(reg.Slots[:])
	reg.Slots[REG_SP] = SP_RESET
}
