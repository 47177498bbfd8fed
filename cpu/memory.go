package cpu

const (
	MEM_SIZE = 256 // Memory capacity in bytes.
)

// Memory is the flat byte-addressed store. Addresses are carried as int
// so that derived addresses (stack pointer arithmetic, program counter
// advances) past either end are detectable instead of silently wrapping.
type Memory struct {
	Cells [MEM_SIZE]uint8
}

// Read returns the byte at the address.
func (mem *Memory) Read(addr int) (value uint8, err error) {
	if addr < 0 || addr >= MEM_SIZE {
		err = ErrAddress(addr)
		return
	}

	value = mem.Cells[addr]
	return
}

// Write stores a byte at the address.
func (mem *Memory) Write(addr int, value uint8) (err error) {
	if addr < 0 || addr >= MEM_SIZE {
		err = ErrAddress(addr)
		return
	}

	mem.Cells[addr] = value
	return
}

// Reset zeros all cells.
func (mem *Memory) Reset() {
	clear(mem.Cells[:])
}
