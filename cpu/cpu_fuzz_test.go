package cpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitvex/ls8/device"
)

// FuzzCpu feeds arbitrary instruction bytes through the dispatch loop.
// Whatever the bytes are, the machine must either halt, or fail with an
// error from the taxonomy; it must never panic or run forever without
// touching an invalid address.
func FuzzCpu(f *testing.F) {
	f.Add(uint8(LDI), uint8(0), uint8(8))
	f.Add(uint8(HLT), uint8(0), uint8(0))
	f.Add(uint8(JMP), uint8(0), uint8(0))
	f.Add(uint8(CALL), uint8(7), uint8(0))
	f.Add(uint8(0xff), uint8(0), uint8(0))

	f.Fuzz(func(t *testing.T, op, a, b uint8) {
		assert := assert.New(t)

		cpu := NewCpu()
		cpu.Output = &device.Console{Output: &bytes.Buffer{}}

		image := []uint8{op, a, b}
		for addr, value := range image {
			assert.NoError(cpu.Ram.Write(addr, value))
		}

		var err error
		for range 1000 {
			err = cpu.Tick()
			if err != nil {
				break
			}
		}

		if err == nil {
			// A tight loop (JMP back to itself) is legal.
			return
		}

		known := errors.Is(err, ErrHalted) ||
			errors.Is(err, ErrAddress(0)) ||
			errors.Is(err, ErrRegister(0)) ||
			errors.Is(err, ErrUnknownOpcode{}) ||
			errors.Is(err, ErrAluOp)
		assert.True(known, "unexpected error: %v", err)

		// The stack pointer never leaves the address space.
		assert.Less(int(cpu.Reg.StackPointer()), MEM_SIZE)
	})
}
