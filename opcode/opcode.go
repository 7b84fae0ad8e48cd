// Package opcode holds the static, bidirectional mapping between 6502
// mnemonics, addressing modes and the single byte values that encode them.
//
// It is the ground truth both the assembler (package asm, which needs
// mnemonic+mode -> byte to emit code) and the CPU (package cpu, which needs
// byte -> mnemonic+mode to decode it) build on, so that the two halves of
// this repository can never disagree about what a given byte means.
package opcode

import "fmt"

// Mode names an addressing mode, using the short keys shared by the
// assembler's operand classifier and the CPU's effective-address resolver.
type Mode int

const (
	Imp Mode = iota // implicit, no operand
	Acc              // operates on the accumulator
	Imm              // immediate byte
	Zp               // zero page
	Zpx              // zero page, X-indexed
	Zpy              // zero page, Y-indexed
	Abs              // absolute
	Abx              // absolute, X-indexed
	Aby              // absolute, Y-indexed
	Ind              // indirect (JMP only)
	Inx              // indexed indirect, (d,X)
	Iny              // indirect indexed, (d),Y
	Rel              // relative (branches only)
)

func (m Mode) String() string {
	switch m {
	case Imp:
		return "imp"
	case Acc:
		return "acc"
	case Imm:
		return "imm"
	case Zp:
		return "zp"
	case Zpx:
		return "zpx"
	case Zpy:
		return "zpy"
	case Abs:
		return "abs"
	case Abx:
		return "abx"
	case Aby:
		return "aby"
	case Ind:
		return "ind"
	case Inx:
		return "inx"
	case Iny:
		return "iny"
	case Rel:
		return "rel"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// OperandBytes reports how many bytes of operand follow the opcode byte for
// this addressing mode.
func (m Mode) OperandBytes() int {
	switch m {
	case Imp, Acc:
		return 0
	case Imm, Zp, Zpx, Zpy, Inx, Iny, Rel:
		return 1
	case Abs, Abx, Aby, Ind:
		return 2
	default:
		return 0
	}
}

// Entry is one row of the opcode table: a mnemonic/mode pair, the byte that
// encodes it, and the base cycle count (kept for the debugger and a future
// throttler; this emulator does not claim cycle-exact timing).
type Entry struct {
	Opcode   byte
	Mnemonic string
	Mode     Mode
	Cycles   byte
}

// EncodeKey identifies an (mnemonic, mode) pair in ENCODE.
type EncodeKey struct {
	Mnemonic string
	Mode     Mode
}

// table is the single list every other structure in this package is derived
// from. See table.go.
var table = buildTable()

// ENCODE maps (mnemonic, mode) to the byte that encodes it. The assembler
// consults this when emitting an instruction.
var ENCODE map[EncodeKey]byte

// DECODE maps a byte to its (mnemonic, mode, cycles) triple. Index directly
// by opcode byte -- unused slots have an empty Mnemonic and are illegal
// instructions. The CPU consults this while fetching.
var DECODE [256]Entry

// Implicit is the set of mnemonics that take no operand token at all (every
// mnemonic whose only encoding uses Imp or Acc addressing). The assembler's
// code generator uses this to decide whether to consume an operand token
// after a mnemonic.
var Implicit map[string]bool

func init() {
	ENCODE = make(map[EncodeKey]byte, len(table))
	Implicit = make(map[string]bool)

	hasNonImplicit := make(map[string]bool)

	for _, e := range table {
		ENCODE[EncodeKey{Mnemonic: e.Mnemonic, Mode: e.Mode}] = e.Opcode
		DECODE[e.Opcode] = e

		if e.Mode != Imp && e.Mode != Acc {
			hasNonImplicit[e.Mnemonic] = true
		}
	}

	for _, e := range table {
		if e.Mode == Imp && !hasNonImplicit[e.Mnemonic] {
			Implicit[e.Mnemonic] = true
		}
	}
}

// Lookup finds the Entry for a legal opcode byte. ok is false for any of the
// 105 byte values outside the 151 legal opcodes.
func Lookup(b byte) (Entry, bool) {
	e := DECODE[b]
	return e, e.Mnemonic != ""
}

// Encode finds the opcode byte for a (mnemonic, mode) pair.
func Encode(mnemonic string, mode Mode) (byte, bool) {
	b, ok := ENCODE[EncodeKey{Mnemonic: mnemonic, Mode: mode}]
	return b, ok
}
