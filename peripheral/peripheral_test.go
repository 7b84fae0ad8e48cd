package peripheral

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"mos6502/mem"
)

func TestRNGWriteIsNoop(t *testing.T) {
	var r RNG
	assert.NotPanics(t, func() { r.Write(0xFF, AddrRNG) })
	_ = r.Read(AddrRNG) // in [0,255] by construction
}

func TestCharOutWritesToSink(t *testing.T) {
	var buf bytes.Buffer
	c := NewCharOut(&buf)
	c.Write('h', AddrCharOut)
	c.Write('i', AddrCharOut)
	assert.Equal(t, "hi", buf.String())
	assert.Equal(t, byte(0), c.Read(AddrCharOut))
}

func TestKeyInReportsLastKey(t *testing.T) {
	var k KeyIn
	assert.Equal(t, byte(0), k.Read(AddrKeyIn))
	k.SetKey('q')
	assert.Equal(t, byte('q'), k.Read(AddrKeyIn))
}

func TestFramebufferWriteAndSnapshot(t *testing.T) {
	fb := NewFramebuffer(AddrFramebuffer, 4, 4)
	fb.Write(5, AddrFramebuffer+6)
	snap := fb.Snapshot()
	assert.Equal(t, byte(5), snap[6])

	dirty := fb.Dirty()
	assert.Equal(t, []uint16{AddrFramebuffer + 6}, dirty)
	assert.Empty(t, fb.Dirty())
}

func TestFramebufferOutOfRangeIsIgnored(t *testing.T) {
	fb := NewFramebuffer(AddrFramebuffer, 2, 2)
	assert.NotPanics(t, func() { fb.Write(1, AddrFramebuffer+99) })
	assert.Equal(t, byte(0), fb.Read(AddrFramebuffer+99))
}

func TestFlushTriggerInvokesCallback(t *testing.T) {
	calls := 0
	ft := NewFlushTrigger(func() { calls++ })
	ft.Write(0, AddrFlushTrigger)
	ft.Write(0, AddrFlushTrigger)
	assert.Equal(t, 2, calls)
	assert.Equal(t, byte(0), ft.Read(AddrFlushTrigger))
}

func TestFlushTriggerNilCallbackIsNoop(t *testing.T) {
	ft := NewFlushTrigger(nil)
	assert.NotPanics(t, func() { ft.Write(0, AddrFlushTrigger) })
}

func TestHandlersRegisterOnBus(t *testing.T) {
	var bus mem.Bus
	var buf bytes.Buffer
	bus.RegisterHandler(AddrCharOut, NewCharOut(&buf))
	bus.RegisterHandler(AddrRNG, RNG{})

	bus.Write('x', AddrCharOut)
	assert.Equal(t, "x", buf.String())
}
