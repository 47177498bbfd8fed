package cpu

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		op   AluOp
		a, b uint8
		out  uint8
	}){
		{"add", ALU_ADD, 8, 9, 17},
		{"add_wrap", ALU_ADD, 250, 10, 4},
		{"sub", ALU_SUB, 9, 8, 1},
		{"sub_wrap", ALU_SUB, 0, 1, 255},
		{"mul", ALU_MUL, 7, 6, 42},
		{"mul_wrap", ALU_MUL, 16, 16, 0},
	}

	for _, entry := range table {
		out, err := doAlu(entry.op, entry.a, entry.b)
		assert.NoError(err, entry.name)
		assert.Equal(entry.out, out, entry.name)
	}
}

func TestAlu_UnsupportedOp(t *testing.T) {
	assert := assert.New(t)

	_, err := doAlu(AluOp(99), 1, 2)
	assert.ErrorIs(err, ErrAluOp)
}

func TestAlu_Compare(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		a, b uint8
		flag uint8
	}){
		{"equal", 5, 5, FLAG_EQ},
		{"greater", 9, 5, FLAG_GT},
		{"less", 5, 9, FLAG_LT},
		{"zero", 0, 0, FLAG_EQ},
		{"max", 255, 0, FLAG_GT},
	}

	for _, entry := range table {
		flags := compare(entry.a, entry.b)
		assert.Equal(entry.flag, flags, entry.name)
		// Exactly one flag per compare.
		assert.Equal(1, bits.OnesCount8(flags), entry.name)
	}
}

func TestAlu_CompareWritesFlags(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	err := cpu.Reg.Set(0, 5)
	assert.NoError(err)
	err = cpu.Reg.Set(1, 9)
	assert.NoError(err)

	err = cpu.alu(ALU_CMP, 0, 1)
	assert.NoError(err)
	assert.Equal(FLAG_LT, cpu.Reg.Flags())

	// Compare does not touch its operands.
	value, err := cpu.Reg.Get(0)
	assert.NoError(err)
	assert.Equal(uint8(5), value)
}

func TestAlu_WritesBack(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	err := cpu.Reg.Set(0, 250)
	assert.NoError(err)
	err = cpu.Reg.Set(1, 10)
	assert.NoError(err)

	err = cpu.alu(ALU_ADD, 0, 1)
	assert.NoError(err)

	value, err := cpu.Reg.Get(0)
	assert.NoError(err)
	assert.Equal(uint8(4), value)

	// Second operand is untouched.
	value, err = cpu.Reg.Get(1)
	assert.NoError(err)
	assert.Equal(uint8(10), value)
}
