package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFile_GetSet(t *testing.T) {
	assert := assert.New(t)

	reg := &RegisterFile{}

	for n := range NUM_REGISTERS {
		err := reg.Set(n, uint8(n*3))
		assert.NoError(err)
	}

	for n := range NUM_REGISTERS {
		value, err := reg.Get(n)
		assert.NoError(err)
		assert.Equal(uint8(n*3), value)
	}
}

func TestRegisterFile_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	reg := &RegisterFile{}

	table := []int{-1, NUM_REGISTERS, 100}

	for _, index := range table {
		_, err := reg.Get(index)
		var er ErrRegister
		assert.ErrorAs(err, &er)
		assert.Equal(index, int(er))

		err = reg.Set(index, 1)
		assert.ErrorAs(err, &er)
		assert.Equal(index, int(er))
	}
}

func TestRegisterFile_ReservedAliases(t *testing.T) {
	assert := assert.New(t)

	reg := &RegisterFile{}

	// The named accessors alias the reserved slots; there is no
	// separate storage.
	reg.SetStackPointer(0x80)
	value, err := reg.Get(REG_SP)
	assert.NoError(err)
	assert.Equal(uint8(0x80), value)
	assert.Equal(uint8(0x80), reg.StackPointer())

	err = reg.Set(REG_FL, FLAG_GT)
	assert.NoError(err)
	assert.Equal(FLAG_GT, reg.Flags())

	reg.SetFlags(FLAG_LT)
	value, err = reg.Get(REG_FL)
	assert.NoError(err)
	assert.Equal(FLAG_LT, value)
}

func TestRegisterFile_Reset(t *testing.T) {
	assert := assert.New(t)

	reg := &RegisterFile{}

	for n := range NUM_REGISTERS {
		err := reg.Set(n, 0xff)
		assert.NoError(err)
	}

	reg.Reset()

	for n := range NUM_REGISTERS {
		value, err := reg.Get(n)
		assert.NoError(err)
		if n == REG_SP {
			assert.Equal(uint8(SP_RESET), value)
		} else {
			assert.Equal(uint8(0), value)
		}
	}
}
