package cpu

import (
	"iter"
)

// Statement is one source line of loaded or assembled code, with the
// bytes it produced and the address they were placed at.
type Statement struct {
	LineNo    int
	Addr      int
	Words     []string
	Bytes     []uint8
	LinkLabel string
}

// Program is an ordered listing of statements, placed at address 0.
type Program struct {
	Statements []Statement
}

// Debug locates a statement by memory address.
type Debug struct {
	*Statement
	Index int
}

// Debug maps a memory address back to its source statement.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, st := range prog.Statements {
		if addr >= st.Addr && addr < st.Addr+len(st.Bytes) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     addr - st.Addr,
			}
			break
		}
	}

	return
}

// Binary returns the contiguous byte image of the program.
func (prog *Program) Binary() (bin []uint8) {
	for _, value := range prog.Bytes() {
		bin = append(bin, value)
	}

	return
}

// Bytes iterates the (address, byte) pairs of the program image.
func (prog *Program) Bytes() iter.Seq2[int, uint8] {
	return func(yield func(addr int, value uint8) bool) {
		for _, st := range prog.Statements {
			for n, value := range st.Bytes {
				if !yield(st.Addr+n, value) {
					return
				}
			}
		}
	}
}
