package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mos6502/cpu"
	"mos6502/mem"
)

func assemble(t *testing.T, src string) *Result {
	t.Helper()
	r, err := Assemble(src, 0x0600)
	assert.NoError(t, err)
	return r
}

func TestLoadStore(t *testing.T) {
	r := assemble(t, "LDA #$2A\nSTA $0000\nBRK")
	assert.Equal(t, []byte{0xA9, 0x2A, 0x8D, 0x00, 0x00, 0x00}, r.Image)

	var bus mem.Bus
	c := cpu.New(&bus, r.Start)
	assert.NoError(t, c.Run(r.Image))
	assert.Equal(t, byte(42), c.Accumulator)
	assert.Equal(t, byte(42), bus.Read(0x0000))
}

func TestCountdownAssemblesAndRuns(t *testing.T) {
	r := assemble(t, `
		LDX #$08
		dec: DEX
		STX $00
		CPX #$03
		BNE dec
		STX $01
		BRK
	`)
	var bus mem.Bus
	c := cpu.New(&bus, r.Start)
	assert.NoError(t, c.Run(r.Image))
	assert.Equal(t, byte(3), c.X)
	assert.Equal(t, byte(3), bus.Read(0x0000))
	assert.Equal(t, byte(3), bus.Read(0x0001))
}

func TestSubroutineAssemblesAndRuns(t *testing.T) {
	r := assemble(t, `
		JSR there
		INX
		BRK
		there: LDX #$01
		RTS
	`)
	var bus mem.Bus
	c := cpu.New(&bus, r.Start)
	assert.NoError(t, c.Run(r.Image))
	assert.Equal(t, byte(2), c.X)
}

func TestIndexedIndirectStore(t *testing.T) {
	r := assemble(t, `
		LDX #$01
		LDA #$1B
		STA ($01,x)
	`)
	var bus mem.Bus
	bus.Write(0x01, 0x0002)
	bus.Write(0x00, 0x0003)
	c := cpu.New(&bus, r.Start)
	assert.NoError(t, c.Run(r.Image))
	assert.Equal(t, byte(0x1B), bus.Read(0x0001))
}

type captureHandler struct {
	reads  int
	writes []byte
	addrs  []uint16
}

func (h *captureHandler) Read(addr uint16) byte {
	h.reads++
	return 0
}

func (h *captureHandler) Write(v byte, addr uint16) {
	h.writes = append(h.writes, v)
	h.addrs = append(h.addrs, addr)
}

func TestStoreRoutesToRegisteredHandler(t *testing.T) {
	r := assemble(t, "LDA #$2A\nSTA $0200\nBRK")

	var bus mem.Bus
	h := &captureHandler{}
	bus.RegisterHandler(0x0200, h)

	c := cpu.New(&bus, r.Start)
	assert.NoError(t, c.Run(r.Image))
	assert.Equal(t, []byte{0x2A}, h.writes)
	assert.Equal(t, []uint16{0x0200}, h.addrs)
	assert.Equal(t, 0, h.reads) // the store itself never reads its target
}

func TestOriginResetPseudoOp(t *testing.T) {
	r := assemble(t, "LDA #$01\n*= $0700\nLDX #$02")
	assert.Equal(t, uint16(0x0600), r.Start)
	assert.Equal(t, byte(0xA9), r.Image[0])
	assert.Equal(t, byte(0xA2), r.Image[0x0700-0x0600])
}

func TestByteDirectiveEmitsRawData(t *testing.T) {
	r := assemble(t, "table: .byte $01,$02,10\nJMP table")
	assert.Equal(t, []byte{0x01, 0x02, 0x0A}, r.Image[:3])
}

func TestUndefinedLabelIsFatal(t *testing.T) {
	_, err := Assemble("JMP nowhere", 0x0600)
	assert.Error(t, err)
}

func TestDuplicateLabelIsFatal(t *testing.T) {
	_, err := Assemble("loop: NOP\nloop: NOP", 0x0600)
	assert.Error(t, err)
}

func TestBranchOutOfRangeIsFatal(t *testing.T) {
	var src string
	src = "BNE far\n"
	for i := 0; i < 200; i++ {
		src += "NOP\n"
	}
	src += "far: NOP"
	_, err := Assemble(src, 0x0600)
	assert.Error(t, err)
}

func TestUnknownMnemonicIsFatal(t *testing.T) {
	_, err := Assemble("FROB #$01", 0x0600)
	assert.Error(t, err)
}

func TestRoundTripSymbolTable(t *testing.T) {
	r := assemble(t, "start: NOP\nJMP start")
	addr, ok := r.Symbols["start"]
	assert.True(t, ok)
	assert.Equal(t, uint16(0x0600), addr)
}

func TestLineMapTracksSourceLines(t *testing.T) {
	r := assemble(t, "NOP\nNOP\nLDA #$01")
	assert.Equal(t, 1, r.LineMap[0x0600])
	assert.Equal(t, 2, r.LineMap[0x0601])
	assert.Equal(t, 3, r.LineMap[0x0602])
}
