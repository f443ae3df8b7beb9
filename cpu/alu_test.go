package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAluAddFlagContract(t *testing.T) {
	assert := assert.New(t)

	var alu Alu

	result := alu.Add(0xFFFF, 1, false)
	assert.Equal(uint16(0), result.Value)
	assert.True(result.Flags.Test(FLAG_ZERO))
	assert.True(result.Flags.Test(FLAG_CARRY))
	assert.False(result.Flags.Test(FLAG_NEGATIVE))
	assert.False(result.Flags.Test(FLAG_OVERFLOW))

	// Signed overflow: 0x7FFF + 1 wraps to the negative range.
	result = alu.Add(0x7FFF, 1, false)
	assert.Equal(uint16(0x8000), result.Value)
	assert.True(result.Flags.Test(FLAG_NEGATIVE))
	assert.True(result.Flags.Test(FLAG_OVERFLOW))
	assert.False(result.Flags.Test(FLAG_CARRY))

	result = alu.Add(1, 1, true)
	assert.Equal(uint16(3), result.Value)
}

func TestAluAddCommutative(t *testing.T) {
	assert := assert.New(t)

	var alu Alu
	pairs := [][2]uint16{{0, 0}, {1, 0xFFFF}, {0x8000, 0x8000}, {0x1234, 0x4321}}
	for _, pair := range pairs {
		ab := alu.Add(pair[0], pair[1], false)
		ba := alu.Add(pair[1], pair[0], false)
		assert.Equal(ab, ba)
	}
}

func TestAluSubFlagContract(t *testing.T) {
	assert := assert.New(t)

	var alu Alu

	result := alu.Sub(0, 1)
	assert.Equal(uint16(0xFFFF), result.Value)
	assert.False(result.Flags.Test(FLAG_ZERO))
	assert.True(result.Flags.Test(FLAG_NEGATIVE))
	assert.False(result.Flags.Test(FLAG_CARRY)) // borrow clears carry
	assert.False(result.Flags.Test(FLAG_OVERFLOW))

	result = alu.Sub(5, 5)
	assert.Equal(uint16(0), result.Value)
	assert.True(result.Flags.Test(FLAG_ZERO))
	assert.True(result.Flags.Test(FLAG_CARRY)) // no borrow
}

func TestAluLogicLaws(t *testing.T) {
	assert := assert.New(t)

	var alu Alu
	for _, a := range []uint16{0, 1, 0x8000, 0xA5A5, 0xFFFF} {
		assert.Equal(a, alu.And(a, a).Value)
		assert.Equal(uint16(0), alu.Xor(a, a).Value)
		assert.True(alu.Xor(a, a).Flags.Test(FLAG_ZERO))
		assert.Equal(a, alu.Not(alu.Not(a).Value).Value)

		result := alu.Or(a, 0)
		assert.Equal(a, result.Value)
		assert.False(result.Flags.Test(FLAG_CARRY))
		assert.False(result.Flags.Test(FLAG_OVERFLOW))
	}
}

func TestAluShifts(t *testing.T) {
	assert := assert.New(t)

	var alu Alu

	result := alu.Shl(0x1234, 0)
	assert.Equal(uint16(0x1234), result.Value)
	assert.False(result.Flags.Test(FLAG_CARRY))

	result = alu.Shl(0x8000, 1)
	assert.Equal(uint16(0), result.Value)
	assert.True(result.Flags.Test(FLAG_CARRY))
	assert.True(result.Flags.Test(FLAG_ZERO))

	result = alu.Shr(1, 1)
	assert.Equal(uint16(0), result.Value)
	assert.True(result.Flags.Test(FLAG_CARRY))
	assert.True(result.Flags.Test(FLAG_ZERO))

	// Count is taken modulo 16.
	result = alu.Shr(0xFF00, 16)
	assert.Equal(uint16(0xFF00), result.Value)
	assert.False(result.Flags.Test(FLAG_CARRY))
	assert.False(result.Flags.Test(FLAG_NEGATIVE))

	result = alu.Shr(0, 0)
	assert.True(result.Flags.Test(FLAG_ZERO))
}

func TestAluMulDiv(t *testing.T) {
	assert := assert.New(t)

	var alu Alu

	result := alu.Mul(0x100, 0x100)
	assert.Equal(uint16(0), result.Value)
	assert.True(result.Flags.Test(FLAG_CARRY))

	result = alu.Mul(3, 4)
	assert.Equal(uint16(12), result.Value)
	assert.False(result.Flags.Test(FLAG_CARRY))

	result = alu.Div(10, 3)
	assert.Equal(uint16(3), result.Value)
	assert.False(result.Flags.Test(FLAG_CARRY))

	result = alu.Div(10, 0)
	assert.Equal(uint16(0), result.Value)
	assert.True(result.Flags.Test(FLAG_CARRY))
	assert.True(result.Flags.Test(FLAG_OVERFLOW))
	assert.False(result.Flags.Test(FLAG_ZERO))
}
