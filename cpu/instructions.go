package cpu

// instructions maps each mnemonic to the method that executes it. Every
// method consumes c.M / c.AbsAddress / c.RelOffset, already resolved by
// resolveOperand for the instruction's addressing mode, and never touches
// the program counter except to jump or branch.
//
// Semantics follow http://www.obelisk.me.uk/6502/reference.html.
var instructions = map[string]func(*Cpu) error{
	"ADC": (*Cpu).ADC, "SBC": (*Cpu).SBC,
	"AND": (*Cpu).AND, "ORA": (*Cpu).ORA, "EOR": (*Cpu).EOR, "BIT": (*Cpu).BIT,
	"ASL": (*Cpu).ASL, "LSR": (*Cpu).LSR, "ROL": (*Cpu).ROL, "ROR": (*Cpu).ROR,
	"LDA": (*Cpu).LDA, "LDX": (*Cpu).LDX, "LDY": (*Cpu).LDY,
	"STA": (*Cpu).STA, "STX": (*Cpu).STX, "STY": (*Cpu).STY,
	"TAX": (*Cpu).TAX, "TAY": (*Cpu).TAY, "TXA": (*Cpu).TXA, "TYA": (*Cpu).TYA,
	"TSX": (*Cpu).TSX, "TXS": (*Cpu).TXS,
	"PHA": (*Cpu).PHA, "PLA": (*Cpu).PLA, "PHP": (*Cpu).PHP, "PLP": (*Cpu).PLP,
	"CMP": (*Cpu).CMP, "CPX": (*Cpu).CPX, "CPY": (*Cpu).CPY,
	"INC": (*Cpu).INC, "INX": (*Cpu).INX, "INY": (*Cpu).INY,
	"DEC": (*Cpu).DEC, "DEX": (*Cpu).DEX, "DEY": (*Cpu).DEY,
	"JMP": (*Cpu).JMP, "JSR": (*Cpu).JSR, "RTS": (*Cpu).RTS, "RTI": (*Cpu).RTI,
	"BPL": (*Cpu).BPL, "BMI": (*Cpu).BMI, "BVC": (*Cpu).BVC, "BVS": (*Cpu).BVS,
	"BCC": (*Cpu).BCC, "BCS": (*Cpu).BCS, "BNE": (*Cpu).BNE, "BEQ": (*Cpu).BEQ,
	"CLC": (*Cpu).CLC, "SEC": (*Cpu).SEC, "CLI": (*Cpu).CLI, "SEI": (*Cpu).SEI,
	"CLV": (*Cpu).CLV, "CLD": (*Cpu).CLD, "SED": (*Cpu).SED,
	"NOP": (*Cpu).NOP, "BRK": (*Cpu).BRK,
}

// loadsOperand lists the mnemonics that consume the byte at the resolved
// address. Stores (STA, STX, STY) and jumps (JMP, JSR) need only the
// address itself; routing a Read for them would hand a registered I/O
// handler an access the program never made.
var loadsOperand = map[string]bool{
	"ADC": true, "SBC": true,
	"AND": true, "ORA": true, "EOR": true, "BIT": true,
	"ASL": true, "LSR": true, "ROL": true, "ROR": true,
	"LDA": true, "LDX": true, "LDY": true,
	"CMP": true, "CPX": true, "CPY": true,
	"INC": true, "DEC": true,
}

// ADC adds the operand and the carry flag into the accumulator, setting
// carry on unsigned overflow and overflow on signed overflow.
//
// Decimal-mode ADC is not implemented; it faults rather than silently
// producing a binary result.
func (c *Cpu) ADC() error {
	if c.Flags.Decimal {
		return &Fault{Reason: "decimal-mode ADC is not supported"}
	}
	carry := 0
	if c.Flags.Carry {
		carry = 1
	}
	sum := int(c.Accumulator) + int(c.M) + carry
	result := byte(sum)
	c.Flags.Overflow = (c.Accumulator^result)&(c.M^result)&0x80 != 0
	c.Flags.Carry = sum > 0xFF
	c.Accumulator = result
	c.setNZ(result)
	return nil
}

// SBC is ADC with the operand's bits inverted: the 6502 computes A - M - (1
// - C) by feeding ~M through the adder with the same carry chain.
//
// Decimal-mode SBC is not implemented; like ADC, it faults.
func (c *Cpu) SBC() error {
	if c.Flags.Decimal {
		return &Fault{Reason: "decimal-mode SBC is not supported"}
	}
	carry := 0
	if c.Flags.Carry {
		carry = 1
	}
	inv := c.M ^ 0xFF
	sum := int(c.Accumulator) + int(inv) + carry
	result := byte(sum)
	c.Flags.Overflow = (c.Accumulator^result)&(inv^result)&0x80 != 0
	c.Flags.Carry = sum > 0xFF
	c.Accumulator = result
	c.setNZ(result)
	return nil
}

func (c *Cpu) AND() error { c.Accumulator &= c.M; c.setNZ(c.Accumulator); return nil }
func (c *Cpu) ORA() error { c.Accumulator |= c.M; c.setNZ(c.Accumulator); return nil }
func (c *Cpu) EOR() error { c.Accumulator ^= c.M; c.setNZ(c.Accumulator); return nil }

// BIT tests the accumulator against a memory value without altering it: Z
// is set from A&M, N and V are copied straight from bits 7 and 6 of M.
func (c *Cpu) BIT() error {
	c.Flags.Zero = c.Accumulator&c.M == 0
	c.Flags.Negative = c.M&0x80 != 0
	c.Flags.Overflow = c.M&0x40 != 0
	return nil
}

func (c *Cpu) ASL() error {
	c.Flags.Carry = c.M&0x80 != 0
	out := c.M << 1
	c.setNZ(out)
	c.writeBack(out)
	return nil
}

func (c *Cpu) LSR() error {
	c.Flags.Carry = c.M&0x01 != 0
	out := c.M >> 1
	c.setNZ(out)
	c.writeBack(out)
	return nil
}

func (c *Cpu) ROL() error {
	oldCarry := c.Flags.Carry
	c.Flags.Carry = c.M&0x80 != 0
	out := c.M << 1
	if oldCarry {
		out |= 0x01
	}
	c.setNZ(out)
	c.writeBack(out)
	return nil
}

func (c *Cpu) ROR() error {
	oldCarry := c.Flags.Carry
	c.Flags.Carry = c.M&0x01 != 0
	out := c.M >> 1
	if oldCarry {
		out |= 0x80
	}
	c.setNZ(out)
	c.writeBack(out)
	return nil
}

func (c *Cpu) LDA() error { c.Accumulator = c.M; c.setNZ(c.Accumulator); return nil }
func (c *Cpu) LDX() error { c.X = c.M; c.setNZ(c.X); return nil }
func (c *Cpu) LDY() error { c.Y = c.M; c.setNZ(c.Y); return nil }

func (c *Cpu) STA() error { c.writeBack(c.Accumulator); return nil }
func (c *Cpu) STX() error { c.writeBack(c.X); return nil }
func (c *Cpu) STY() error { c.writeBack(c.Y); return nil }

func (c *Cpu) TAX() error { c.X = c.Accumulator; c.setNZ(c.X); return nil }
func (c *Cpu) TAY() error { c.Y = c.Accumulator; c.setNZ(c.Y); return nil }
func (c *Cpu) TXA() error { c.Accumulator = c.X; c.setNZ(c.Accumulator); return nil }
func (c *Cpu) TYA() error { c.Accumulator = c.Y; c.setNZ(c.Accumulator); return nil }
func (c *Cpu) TSX() error { c.X = c.Stack; c.setNZ(c.X); return nil }
func (c *Cpu) TXS() error { c.Stack = c.X; return nil }

func (c *Cpu) PHA() error { c.push(c.Accumulator); return nil }

func (c *Cpu) PLA() error {
	c.Accumulator = c.pop()
	c.setNZ(c.Accumulator)
	return nil
}

// PHP pushes the status byte with the break and unused bits forced high,
// per the 6502's documented PHP behavior.
func (c *Cpu) PHP() error {
	f := c.Flags
	f.Break = true
	f.Unused = true
	c.push(f.pack())
	return nil
}

// PLP pulls the status byte exactly as stored; unlike RTI it does not force
// break or unused, since PHP already committed them at push time.
func (c *Cpu) PLP() error {
	c.Flags = unpackFlags(c.pop())
	return nil
}

func (c *Cpu) compare(reg byte) {
	c.Flags.Carry = reg >= c.M
	c.Flags.Zero = reg == c.M
	c.Flags.Negative = (reg-c.M)&0x80 != 0
}

func (c *Cpu) CMP() error { c.compare(c.Accumulator); return nil }
func (c *Cpu) CPX() error { c.compare(c.X); return nil }
func (c *Cpu) CPY() error { c.compare(c.Y); return nil }

func (c *Cpu) INC() error { out := c.M + 1; c.setNZ(out); c.writeBack(out); return nil }
func (c *Cpu) DEC() error { out := c.M - 1; c.setNZ(out); c.writeBack(out); return nil }

func (c *Cpu) INX() error { c.X++; c.setNZ(c.X); return nil }
func (c *Cpu) INY() error { c.Y++; c.setNZ(c.Y); return nil }
func (c *Cpu) DEX() error { c.X--; c.setNZ(c.X); return nil }
func (c *Cpu) DEY() error { c.Y--; c.setNZ(c.Y); return nil }

// JMP sets the program counter to the address resolveOperand already
// computed: the operand itself for absolute mode, the dereferenced pointer
// for indirect mode.
func (c *Cpu) JMP() error {
	c.ProgramCounter = c.AbsAddress
	return nil
}

// JSR pushes the address of the last byte of the JSR instruction (PC - 1,
// since resolveOperand has already advanced PC past the two operand
// bytes), high byte first, then jumps.
func (c *Cpu) JSR() error {
	ret := c.ProgramCounter - 1
	c.push(byte(ret >> 8))
	c.push(byte(ret))
	c.ProgramCounter = c.AbsAddress
	return nil
}

// RTS pulls the return address pushed by JSR, low byte first, and resumes
// at the following byte.
func (c *Cpu) RTS() error {
	lo := c.pop()
	hi := c.pop()
	c.ProgramCounter = u16le(hi, lo) + 1
	return nil
}

// RTI pulls status then the return address; unlike PLP it forces break and
// unused high on the pulled status, mirroring PHP's push-time convention.
func (c *Cpu) RTI() error {
	f := unpackFlags(c.pop())
	f.Break = true
	f.Unused = true
	c.Flags = f
	lo := c.pop()
	hi := c.pop()
	c.ProgramCounter = u16le(hi, lo)
	return nil
}

func (c *Cpu) branch(taken bool) {
	if taken {
		c.ProgramCounter += uint16(int16(c.RelOffset))
	}
}

func (c *Cpu) BPL() error { c.branch(!c.Flags.Negative); return nil }
func (c *Cpu) BMI() error { c.branch(c.Flags.Negative); return nil }
func (c *Cpu) BVC() error { c.branch(!c.Flags.Overflow); return nil }
func (c *Cpu) BVS() error { c.branch(c.Flags.Overflow); return nil }
func (c *Cpu) BCC() error { c.branch(!c.Flags.Carry); return nil }
func (c *Cpu) BCS() error { c.branch(c.Flags.Carry); return nil }
func (c *Cpu) BNE() error { c.branch(!c.Flags.Zero); return nil }
func (c *Cpu) BEQ() error { c.branch(c.Flags.Zero); return nil }

func (c *Cpu) CLC() error { c.Flags.Carry = false; return nil }
func (c *Cpu) SEC() error { c.Flags.Carry = true; return nil }
func (c *Cpu) CLI() error { c.Flags.Interrupt = false; return nil }
func (c *Cpu) SEI() error { c.Flags.Interrupt = true; return nil }
func (c *Cpu) CLV() error { c.Flags.Overflow = false; return nil }
func (c *Cpu) CLD() error { c.Flags.Decimal = false; return nil }
func (c *Cpu) SED() error { c.Flags.Decimal = true; return nil }

func (c *Cpu) NOP() error { return nil }

// BRK never actually runs: Step intercepts opcode $00 and halts before
// dispatch. It is kept so the instruction table stays total over every
// mnemonic the opcode table names.
func (c *Cpu) BRK() error { return nil }
