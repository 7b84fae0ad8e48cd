package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type captureHandler struct {
	reads  []uint16
	writes []struct {
		v    byte
		addr uint16
	}
}

func (c *captureHandler) Read(addr uint16) byte {
	c.reads = append(c.reads, addr)
	return 0x55
}

func (c *captureHandler) Write(v byte, addr uint16) {
	c.writes = append(c.writes, struct {
		v    byte
		addr uint16
	}{v, addr})
}

func TestRawReadWrite(t *testing.T) {
	var b Bus
	b.Write(0x2A, 0x0000)
	assert.Equal(t, byte(0x2A), b.Read(0x0000))
}

func TestLoadBypassesHandlers(t *testing.T) {
	var b Bus
	h := &captureHandler{}
	b.RegisterHandler(0x0200, h)
	b.Load([]byte{0xAA}, 0x0200)
	assert.Empty(t, h.writes)
	assert.Equal(t, byte(0xAA), b.ram[0x0200])  // Load landed in raw memory
	assert.Equal(t, byte(0x55), b.Read(0x0200)) // Read still routes to h
	assert.Len(t, h.reads, 1)
}

func TestRoutedIOObservesExactlyOneWriteAndRead(t *testing.T) {
	var b Bus
	h := &captureHandler{}
	b.RegisterHandler(0x0200, h)

	b.Write(0x2A, 0x0200)
	_ = b.Read(0x0200)

	assert.Len(t, h.writes, 1)
	assert.Equal(t, byte(0x2A), h.writes[0].v)
	assert.Equal(t, uint16(0x0200), h.writes[0].addr)
	assert.Len(t, h.reads, 1)

	// raw memory at the intercepted address is untouched
	assert.Equal(t, byte(0), b.ram[0x0200])
}

func TestRegisterReplaces(t *testing.T) {
	var b Bus
	h1 := &captureHandler{}
	h2 := &captureHandler{}
	b.RegisterHandler(0x00FE, h1)
	b.RegisterHandler(0x00FE, h2)

	b.Write(1, 0x00FE)
	assert.Empty(t, h1.writes)
	assert.Len(t, h2.writes, 1)
}

func TestRegisterRangeInstallsSameHandler(t *testing.T) {
	var b Bus
	h := &captureHandler{}
	b.RegisterRange(0x0200, 0x0203, h)

	for addr := uint16(0x0200); addr <= 0x0203; addr++ {
		got, ok := b.HandlerAt(addr)
		assert.True(t, ok)
		assert.Same(t, h, got)
	}

	_, ok := b.HandlerAt(0x0204)
	assert.False(t, ok)
}

func TestUnregisteredAddressIsRawMemory(t *testing.T) {
	var b Bus
	b.Write(0x10, 0x1234)
	assert.Equal(t, byte(0x10), b.Read(0x1234))
}
