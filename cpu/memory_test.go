package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	err := mem.Write(0, 0x12)
	assert.NoError(err)
	err = mem.Write(MEM_SIZE-1, 0x34)
	assert.NoError(err)

	value, err := mem.Read(0)
	assert.NoError(err)
	assert.Equal(uint8(0x12), value)

	value, err = mem.Read(MEM_SIZE - 1)
	assert.NoError(err)
	assert.Equal(uint8(0x34), value)
}

func TestMemory_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	table := []int{-1, MEM_SIZE, MEM_SIZE + 100}

	for _, addr := range table {
		_, err := mem.Read(addr)
		var ea ErrAddress
		assert.ErrorAs(err, &ea)
		assert.Equal(addr, int(ea))

		err = mem.Write(addr, 0xff)
		assert.ErrorAs(err, &ea)
		assert.Equal(addr, int(ea))
	}
}

func TestMemory_Reset(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	err := mem.Write(10, 0xaa)
	assert.NoError(err)

	mem.Reset()

	value, err := mem.Read(10)
	assert.NoError(err)
	assert.Equal(uint8(0), value)
}
