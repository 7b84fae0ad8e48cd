package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSet(t *testing.T) {
	assert.True(t, IsSet(0b1101_1000, 1))
	assert.True(t, IsSet(0b1101_1000, 2))
	assert.False(t, IsSet(0b1101_1000, 3))
	assert.True(t, IsSet(0b1101_1000, 4))
	assert.False(t, IsSet(0b1101_1000, 8))
}

func TestSet(t *testing.T) {
	assert.Equal(t, Set(0b0000_0000, 1, 0b0000_0010), byte(0b1000_0000))
	assert.Equal(t, Set(0b0000_0000, 1, 0b0000_0101), byte(0b1010_0000))
	assert.Equal(t, Set(0b0000_0000, 1, 0b0000_0111), byte(0b1110_0000))
	assert.Equal(t, Set(0b0000_0000, 2, 0b0000_0011), byte(0b0110_0000))
	assert.Equal(t, Set(0b0000_0000, 5, 0b0000_1111), byte(0b0000_1111))
	assert.Equal(t, Set(0b0000_0000, 8, 0b0000_0001), byte(0b0000_0001))
	assert.Equal(t, Set(0b1111_1111, 1, 0), byte(0b1111_1111))
}

func TestPByteRoundTrip(t *testing.T) {
	p := PByte(true, false, true, false, false, true, false, true)
	assert.Equal(t, byte(0b1010_0101), p)

	n, v, u, b, d, i, z, c := SplitPByte(p)
	assert.True(t, n)
	assert.False(t, v)
	assert.True(t, u)
	assert.False(t, b)
	assert.False(t, d)
	assert.True(t, i)
	assert.False(t, z)
	assert.True(t, c)
}

func TestPByteAllClear(t *testing.T) {
	assert.Equal(t, byte(0), PByte(false, false, false, false, false, false, false, false))
}

func TestPByteAllSet(t *testing.T) {
	assert.Equal(t, byte(0xFF), PByte(true, true, true, true, true, true, true, true))
}
