// Package asm implements the two-pass 6502 assembler: a Lexer producing a
// flat token stream, and a code generator that walks it once, emitting
// bytes and recording labels, then back-patches every branch and jump
// operand that names a label, whether the label came before or after it.
package asm

import (
	"fmt"
	"strconv"
	"strings"

	"mos6502/opcode"
)

// SymbolTable maps a label name to the absolute address it was bound to.
type SymbolTable map[string]uint16

// Result is everything Assemble produces: the byte image meant to be
// loaded at Start, the resolved symbol table, and a PC->source-line map
// for tools (the debugger) that want to correlate execution with source.
type Result struct {
	Image   []byte
	Start   uint16
	Symbols SymbolTable
	LineMap map[uint16]int
}

// Error reports a fatal assembly failure: the source line and offending
// token, per spec's "single diagnostic line identifying kind, location,
// and context".
type Error struct {
	Line   int
	Token  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Token)
}

type relFixup struct {
	addr  uint16
	line  int
	label string
}

type absFixup struct {
	addr  uint16
	line  int
	label string
}

// Assemble runs the forward walk and back-patch sweep over program,
// producing a byte image intended to be loaded at start.
func Assemble(program string, start uint16) (*Result, error) {
	lex := NewLexer(program)

	cells := make(map[uint16]byte)
	symbols := make(SymbolTable)
	lineMap := make(map[uint16]int)
	var relFixups []relFixup
	var absFixups []absFixup

	pc := start
	minAddr := start
	maxAddr := start // exclusive upper bound

	emit := func(b byte) {
		cells[pc] = b
		if pc < minAddr {
			minAddr = pc
		}
		if pc+1 > maxAddr {
			maxAddr = pc + 1
		}
		pc++
	}

	for {
		tok, ok := lex.Next()
		if !ok {
			break
		}

		if tok == "*=" {
			addrTok, ok := lex.Next()
			if !ok {
				return nil, &Error{Line: lex.Line(), Token: tok, Reason: "expected address after *="}
			}
			addr, err := parseOriginAddress(addrTok)
			if err != nil {
				return nil, &Error{Line: lex.Line(), Token: addrTok, Reason: err.Error()}
			}
			pc = addr
			continue
		}

		if tok == ".byte" {
			listTok, ok := lex.Next()
			if !ok {
				return nil, &Error{Line: lex.Line(), Token: tok, Reason: "expected byte list after .byte"}
			}
			values, err := parseByteList(listTok)
			if err != nil {
				return nil, &Error{Line: lex.Line(), Token: listTok, Reason: err.Error()}
			}
			line := lex.Line()
			lineMap[pc] = line
			for _, v := range values {
				emit(v)
			}
			continue
		}

		if strings.HasSuffix(tok, ":") {
			label := strings.TrimSuffix(tok, ":")
			if _, exists := symbols[label]; exists {
				return nil, &Error{Line: lex.Line(), Token: label, Reason: "duplicate label"}
			}
			symbols[label] = pc
			continue
		}

		mnemonic := strings.ToUpper(tok)
		line := lex.Line()

		if opcode.Implicit[mnemonic] {
			b, ok := opcode.Encode(mnemonic, opcode.Imp)
			if !ok {
				return nil, &Error{Line: line, Token: tok, Reason: "unknown mnemonic"}
			}
			lineMap[pc] = line
			emit(b)
			continue
		}

		operandTok, ok := lex.Next()
		if !ok {
			return nil, &Error{Line: line, Token: tok, Reason: "expected operand"}
		}

		mode, value, label, err := classify(operandTok, mnemonic)
		if err != nil {
			return nil, &Error{Line: line, Token: operandTok, Reason: err.Error()}
		}

		opByte, ok := opcode.Encode(mnemonic, mode)
		if !ok {
			return nil, &Error{Line: line, Token: tok + " " + operandTok, Reason: fmt.Sprintf("no (mnemonic, mode) encoding for %s/%s", mnemonic, mode)}
		}

		lineMap[pc] = line
		emit(opByte)

		switch mode {
		case opcode.Acc:
			// no operand bytes
		case opcode.Imm, opcode.Zp, opcode.Zpx, opcode.Zpy, opcode.Inx, opcode.Iny:
			emit(byte(value))
		case opcode.Rel:
			relFixups = append(relFixups, relFixup{addr: pc, line: line, label: label})
			emit(0)
		case opcode.Abs, opcode.Abx, opcode.Aby, opcode.Ind:
			if label != "" {
				absFixups = append(absFixups, absFixup{addr: pc, line: line, label: label})
				emit(0)
				emit(0)
			} else {
				emit(byte(value))
				emit(byte(value >> 8))
			}
		}
	}

	for _, f := range relFixups {
		target, ok := symbols[f.label]
		if !ok {
			return nil, &Error{Line: f.line, Token: f.label, Reason: "undefined label"}
		}
		offset := int(target) - int(f.addr+1)
		if offset < -128 || offset > 127 {
			return nil, &Error{Line: f.line, Token: f.label, Reason: "branch out of 8-bit signed range"}
		}
		cells[f.addr] = byte(int8(offset))
	}
	for _, f := range absFixups {
		target, ok := symbols[f.label]
		if !ok {
			return nil, &Error{Line: f.line, Token: f.label, Reason: "undefined label"}
		}
		cells[f.addr] = byte(target)
		cells[f.addr+1] = byte(target >> 8)
	}

	var image []byte
	if maxAddr > minAddr {
		image = make([]byte, maxAddr-minAddr)
		for i := range image {
			image[i] = cells[minAddr+uint16(i)]
		}
	}

	return &Result{Image: image, Start: minAddr, Symbols: symbols, LineMap: lineMap}, nil
}

func parseOriginAddress(tok string) (uint16, error) {
	if !strings.HasPrefix(tok, "$") {
		return 0, fmt.Errorf("expected $hhhh address")
	}
	v, err := strconv.ParseUint(tok[1:], 16, 16)
	if err != nil {
		return 0, fmt.Errorf("malformed address")
	}
	return uint16(v), nil
}

// parseByteList parses a ".byte" operand token: one or more comma-separated
// values, each either "$hh" hex or a bare decimal, e.g. "$01,$02,10".
func parseByteList(tok string) ([]byte, error) {
	parts := strings.Split(tok, ",")
	out := make([]byte, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("malformed .byte list")
		}
		var v uint64
		var err error
		if strings.HasPrefix(p, "$") {
			v, err = strconv.ParseUint(p[1:], 16, 16)
		} else {
			v, err = strconv.ParseUint(p, 10, 16)
		}
		if err != nil || v > 0xFF {
			return nil, fmt.Errorf("malformed .byte value %q", p)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// classify disambiguates an operand token by its leading characters, per
// spec's operand grammar. label is non-empty only when the operand is a
// bare label reference (mode is then Abs for JMP/JSR, Rel otherwise).
func classify(tok, mnemonic string) (mode opcode.Mode, value uint16, label string, err error) {
	switch {
	case strings.HasPrefix(tok, "#$"):
		v, e := strconv.ParseUint(tok[2:], 16, 16)
		if e != nil {
			return 0, 0, "", fmt.Errorf("malformed immediate hex operand")
		}
		return opcode.Imm, uint16(v), "", nil

	case strings.HasPrefix(tok, "#"):
		v, e := strconv.ParseUint(tok[1:], 10, 16)
		if e != nil {
			return 0, 0, "", fmt.Errorf("malformed immediate decimal operand")
		}
		return opcode.Imm, uint16(v), "", nil

	case strings.HasPrefix(tok, "("):
		switch {
		case strings.HasSuffix(tok, ",x)"):
			hexPart := strings.TrimSuffix(strings.TrimPrefix(tok, "($"), ",x)")
			v, e := strconv.ParseUint(hexPart, 16, 16)
			if e != nil {
				return 0, 0, "", fmt.Errorf("malformed indexed-indirect operand")
			}
			return opcode.Inx, uint16(v), "", nil
		case strings.HasSuffix(tok, "),y"):
			hexPart := strings.TrimSuffix(strings.TrimPrefix(tok, "($"), "),y")
			v, e := strconv.ParseUint(hexPart, 16, 16)
			if e != nil {
				return 0, 0, "", fmt.Errorf("malformed indirect-indexed operand")
			}
			return opcode.Iny, uint16(v), "", nil
		case strings.HasSuffix(tok, ")"):
			hexPart := strings.TrimSuffix(strings.TrimPrefix(tok, "($"), ")")
			v, e := strconv.ParseUint(hexPart, 16, 16)
			if e != nil {
				return 0, 0, "", fmt.Errorf("malformed indirect operand")
			}
			return opcode.Ind, uint16(v), "", nil
		}
		return 0, 0, "", fmt.Errorf("malformed parenthesized operand")

	case strings.Contains(tok, ",x") || strings.Contains(tok, ",y"):
		indexX := strings.Contains(tok, ",x")
		base := strings.TrimSuffix(strings.TrimSuffix(tok, ",x"), ",y")
		if !strings.HasPrefix(base, "$") {
			return 0, 0, "", fmt.Errorf("malformed indexed operand")
		}
		hexPart := base[1:]
		v, e := strconv.ParseUint(hexPart, 16, 16)
		if e != nil {
			return 0, 0, "", fmt.Errorf("malformed indexed operand")
		}
		if len(hexPart) <= 2 {
			if indexX {
				return opcode.Zpx, uint16(v), "", nil
			}
			return opcode.Zpy, uint16(v), "", nil
		}
		if indexX {
			return opcode.Abx, uint16(v), "", nil
		}
		return opcode.Aby, uint16(v), "", nil

	case strings.HasPrefix(tok, "$"):
		hexPart := tok[1:]
		v, e := strconv.ParseUint(hexPart, 16, 16)
		if e != nil {
			return 0, 0, "", fmt.Errorf("malformed hex operand")
		}
		if len(hexPart) <= 2 {
			return opcode.Zp, uint16(v), "", nil
		}
		return opcode.Abs, uint16(v), "", nil

	case tok == "a":
		return opcode.Acc, 0, "", nil

	default:
		if mnemonic == "JMP" || mnemonic == "JSR" {
			return opcode.Abs, 0, tok, nil
		}
		return opcode.Rel, 0, tok, nil
	}
}
