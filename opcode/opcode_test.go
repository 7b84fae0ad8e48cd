package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableHas151LegalOpcodes(t *testing.T) {
	n := 0
	for _, e := range DECODE {
		if e.Mnemonic != "" {
			n++
		}
	}
	assert.Equal(t, 151, n)
}

func TestRoundTrip(t *testing.T) {
	for key, b := range ENCODE {
		e, ok := Lookup(b)
		assert.True(t, ok, "opcode 0x%02X for %s/%s should decode", b, key.Mnemonic, key.Mode)
		assert.Equal(t, key.Mnemonic, e.Mnemonic)
		assert.Equal(t, key.Mode, e.Mode)
	}
}

func TestImplicitExcludesAccumulatorMode(t *testing.T) {
	// ASL/LSR/ROL/ROR still require an explicit "a" operand token even
	// though one of their encodings is Acc-mode.
	assert.False(t, Implicit["ASL"])
	assert.False(t, Implicit["LSR"])
	assert.False(t, Implicit["ROL"])
	assert.False(t, Implicit["ROR"])
}

func TestImplicitIncludesNoOperandMnemonics(t *testing.T) {
	for _, m := range []string{"BRK", "CLC", "NOP", "PHA", "RTS", "TAX", "INX", "DEY"} {
		assert.True(t, Implicit[m], "%s should be implicit", m)
	}
}

func TestUnknownOpcodeIsIllegal(t *testing.T) {
	_, ok := Lookup(0x02)
	assert.False(t, ok)
}

func TestOperandByteCounts(t *testing.T) {
	assert.Equal(t, 0, Imp.OperandBytes())
	assert.Equal(t, 0, Acc.OperandBytes())
	assert.Equal(t, 1, Imm.OperandBytes())
	assert.Equal(t, 1, Zp.OperandBytes())
	assert.Equal(t, 1, Rel.OperandBytes())
	assert.Equal(t, 2, Abs.OperandBytes())
	assert.Equal(t, 2, Ind.OperandBytes())
}
