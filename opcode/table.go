package opcode

// buildTable returns the 151 legal (mnemonic, mode) -> opcode rows, derived
// from http://www.6502.org/tutorials/6502opcodes.html. Kept as a single list
// here instead of duplicated between a separate encoder map and decoder map,
// so ENCODE and DECODE can never drift out of sync with each other.
func buildTable() []Entry {
	return []Entry{
		{Opcode: 0x00, Mnemonic: "BRK", Mode: Imp, Cycles: 7},
		{Opcode: 0x01, Mnemonic: "ORA", Mode: Inx, Cycles: 6},
		{Opcode: 0x05, Mnemonic: "ORA", Mode: Zp, Cycles: 3},
		{Opcode: 0x06, Mnemonic: "ASL", Mode: Zp, Cycles: 5},
		{Opcode: 0x08, Mnemonic: "PHP", Mode: Imp, Cycles: 3},
		{Opcode: 0x09, Mnemonic: "ORA", Mode: Imm, Cycles: 2},
		{Opcode: 0x0A, Mnemonic: "ASL", Mode: Acc, Cycles: 2},
		{Opcode: 0x0D, Mnemonic: "ORA", Mode: Abs, Cycles: 4},
		{Opcode: 0x0E, Mnemonic: "ASL", Mode: Abs, Cycles: 6},
		{Opcode: 0x10, Mnemonic: "BPL", Mode: Rel, Cycles: 2},
		{Opcode: 0x11, Mnemonic: "ORA", Mode: Iny, Cycles: 5},
		{Opcode: 0x15, Mnemonic: "ORA", Mode: Zpx, Cycles: 4},
		{Opcode: 0x16, Mnemonic: "ASL", Mode: Zpx, Cycles: 6},
		{Opcode: 0x18, Mnemonic: "CLC", Mode: Imp, Cycles: 2},
		{Opcode: 0x19, Mnemonic: "ORA", Mode: Aby, Cycles: 4},
		{Opcode: 0x1D, Mnemonic: "ORA", Mode: Abx, Cycles: 4},
		{Opcode: 0x1E, Mnemonic: "ASL", Mode: Abx, Cycles: 7},
		{Opcode: 0x20, Mnemonic: "JSR", Mode: Abs, Cycles: 6},
		{Opcode: 0x21, Mnemonic: "AND", Mode: Inx, Cycles: 6},
		{Opcode: 0x24, Mnemonic: "BIT", Mode: Zp, Cycles: 3},
		{Opcode: 0x25, Mnemonic: "AND", Mode: Zp, Cycles: 3},
		{Opcode: 0x26, Mnemonic: "ROL", Mode: Zp, Cycles: 5},
		{Opcode: 0x28, Mnemonic: "PLP", Mode: Imp, Cycles: 4},
		{Opcode: 0x29, Mnemonic: "AND", Mode: Imm, Cycles: 2},
		{Opcode: 0x2A, Mnemonic: "ROL", Mode: Acc, Cycles: 2},
		{Opcode: 0x2C, Mnemonic: "BIT", Mode: Abs, Cycles: 4},
		{Opcode: 0x2D, Mnemonic: "AND", Mode: Abs, Cycles: 4},
		{Opcode: 0x2E, Mnemonic: "ROL", Mode: Abs, Cycles: 6},
		{Opcode: 0x30, Mnemonic: "BMI", Mode: Rel, Cycles: 2},
		{Opcode: 0x31, Mnemonic: "AND", Mode: Iny, Cycles: 5},
		{Opcode: 0x35, Mnemonic: "AND", Mode: Zpx, Cycles: 4},
		{Opcode: 0x36, Mnemonic: "ROL", Mode: Zpx, Cycles: 6},
		{Opcode: 0x38, Mnemonic: "SEC", Mode: Imp, Cycles: 2},
		{Opcode: 0x39, Mnemonic: "AND", Mode: Aby, Cycles: 4},
		{Opcode: 0x3D, Mnemonic: "AND", Mode: Abx, Cycles: 4},
		{Opcode: 0x3E, Mnemonic: "ROL", Mode: Abx, Cycles: 7},
		{Opcode: 0x40, Mnemonic: "RTI", Mode: Imp, Cycles: 6},
		{Opcode: 0x41, Mnemonic: "EOR", Mode: Inx, Cycles: 6},
		{Opcode: 0x45, Mnemonic: "EOR", Mode: Zp, Cycles: 3},
		{Opcode: 0x46, Mnemonic: "LSR", Mode: Zp, Cycles: 5},
		{Opcode: 0x48, Mnemonic: "PHA", Mode: Imp, Cycles: 3},
		{Opcode: 0x49, Mnemonic: "EOR", Mode: Imm, Cycles: 2},
		{Opcode: 0x4A, Mnemonic: "LSR", Mode: Acc, Cycles: 2},
		{Opcode: 0x4C, Mnemonic: "JMP", Mode: Abs, Cycles: 3},
		{Opcode: 0x4D, Mnemonic: "EOR", Mode: Abs, Cycles: 4},
		{Opcode: 0x4E, Mnemonic: "LSR", Mode: Abs, Cycles: 6},
		{Opcode: 0x50, Mnemonic: "BVC", Mode: Rel, Cycles: 2},
		{Opcode: 0x51, Mnemonic: "EOR", Mode: Iny, Cycles: 5},
		{Opcode: 0x55, Mnemonic: "EOR", Mode: Zpx, Cycles: 4},
		{Opcode: 0x56, Mnemonic: "LSR", Mode: Zpx, Cycles: 6},
		{Opcode: 0x58, Mnemonic: "CLI", Mode: Imp, Cycles: 2},
		{Opcode: 0x59, Mnemonic: "EOR", Mode: Aby, Cycles: 4},
		{Opcode: 0x5D, Mnemonic: "EOR", Mode: Abx, Cycles: 4},
		{Opcode: 0x5E, Mnemonic: "LSR", Mode: Abx, Cycles: 7},
		{Opcode: 0x60, Mnemonic: "RTS", Mode: Imp, Cycles: 6},
		{Opcode: 0x61, Mnemonic: "ADC", Mode: Inx, Cycles: 6},
		{Opcode: 0x65, Mnemonic: "ADC", Mode: Zp, Cycles: 3},
		{Opcode: 0x66, Mnemonic: "ROR", Mode: Zp, Cycles: 5},
		{Opcode: 0x68, Mnemonic: "PLA", Mode: Imp, Cycles: 4},
		{Opcode: 0x69, Mnemonic: "ADC", Mode: Imm, Cycles: 2},
		{Opcode: 0x6A, Mnemonic: "ROR", Mode: Acc, Cycles: 2},
		{Opcode: 0x6C, Mnemonic: "JMP", Mode: Ind, Cycles: 5},
		{Opcode: 0x6D, Mnemonic: "ADC", Mode: Abs, Cycles: 4},
		{Opcode: 0x6E, Mnemonic: "ROR", Mode: Abs, Cycles: 6},
		{Opcode: 0x70, Mnemonic: "BVS", Mode: Rel, Cycles: 2},
		{Opcode: 0x71, Mnemonic: "ADC", Mode: Iny, Cycles: 5},
		{Opcode: 0x75, Mnemonic: "ADC", Mode: Zpx, Cycles: 4},
		{Opcode: 0x76, Mnemonic: "ROR", Mode: Zpx, Cycles: 6},
		{Opcode: 0x78, Mnemonic: "SEI", Mode: Imp, Cycles: 2},
		{Opcode: 0x79, Mnemonic: "ADC", Mode: Aby, Cycles: 4},
		{Opcode: 0x7D, Mnemonic: "ADC", Mode: Abx, Cycles: 4},
		{Opcode: 0x7E, Mnemonic: "ROR", Mode: Abx, Cycles: 7},
		{Opcode: 0x81, Mnemonic: "STA", Mode: Inx, Cycles: 6},
		{Opcode: 0x84, Mnemonic: "STY", Mode: Zp, Cycles: 3},
		{Opcode: 0x85, Mnemonic: "STA", Mode: Zp, Cycles: 3},
		{Opcode: 0x86, Mnemonic: "STX", Mode: Zp, Cycles: 3},
		{Opcode: 0x88, Mnemonic: "DEY", Mode: Imp, Cycles: 2},
		{Opcode: 0x8A, Mnemonic: "TXA", Mode: Imp, Cycles: 2},
		{Opcode: 0x8C, Mnemonic: "STY", Mode: Abs, Cycles: 4},
		{Opcode: 0x8D, Mnemonic: "STA", Mode: Abs, Cycles: 4},
		{Opcode: 0x8E, Mnemonic: "STX", Mode: Abs, Cycles: 4},
		{Opcode: 0x90, Mnemonic: "BCC", Mode: Rel, Cycles: 2},
		{Opcode: 0x91, Mnemonic: "STA", Mode: Iny, Cycles: 6},
		{Opcode: 0x94, Mnemonic: "STY", Mode: Zpx, Cycles: 4},
		{Opcode: 0x95, Mnemonic: "STA", Mode: Zpx, Cycles: 4},
		{Opcode: 0x96, Mnemonic: "STX", Mode: Zpy, Cycles: 4},
		{Opcode: 0x98, Mnemonic: "TYA", Mode: Imp, Cycles: 2},
		{Opcode: 0x99, Mnemonic: "STA", Mode: Aby, Cycles: 5},
		{Opcode: 0x9A, Mnemonic: "TXS", Mode: Imp, Cycles: 2},
		{Opcode: 0x9D, Mnemonic: "STA", Mode: Abx, Cycles: 5},
		{Opcode: 0xA0, Mnemonic: "LDY", Mode: Imm, Cycles: 2},
		{Opcode: 0xA1, Mnemonic: "LDA", Mode: Inx, Cycles: 6},
		{Opcode: 0xA2, Mnemonic: "LDX", Mode: Imm, Cycles: 2},
		{Opcode: 0xA4, Mnemonic: "LDY", Mode: Zp, Cycles: 3},
		{Opcode: 0xA5, Mnemonic: "LDA", Mode: Zp, Cycles: 3},
		{Opcode: 0xA6, Mnemonic: "LDX", Mode: Zp, Cycles: 3},
		{Opcode: 0xA8, Mnemonic: "TAY", Mode: Imp, Cycles: 2},
		{Opcode: 0xA9, Mnemonic: "LDA", Mode: Imm, Cycles: 2},
		{Opcode: 0xAA, Mnemonic: "TAX", Mode: Imp, Cycles: 2},
		{Opcode: 0xAC, Mnemonic: "LDY", Mode: Abs, Cycles: 4},
		{Opcode: 0xAD, Mnemonic: "LDA", Mode: Abs, Cycles: 4},
		{Opcode: 0xAE, Mnemonic: "LDX", Mode: Abs, Cycles: 4},
		{Opcode: 0xB0, Mnemonic: "BCS", Mode: Rel, Cycles: 2},
		{Opcode: 0xB1, Mnemonic: "LDA", Mode: Iny, Cycles: 5},
		{Opcode: 0xB4, Mnemonic: "LDY", Mode: Zpx, Cycles: 4},
		{Opcode: 0xB5, Mnemonic: "LDA", Mode: Zpx, Cycles: 4},
		{Opcode: 0xB6, Mnemonic: "LDX", Mode: Zpy, Cycles: 4},
		{Opcode: 0xB8, Mnemonic: "CLV", Mode: Imp, Cycles: 2},
		{Opcode: 0xB9, Mnemonic: "LDA", Mode: Aby, Cycles: 4},
		{Opcode: 0xBA, Mnemonic: "TSX", Mode: Imp, Cycles: 2},
		{Opcode: 0xBC, Mnemonic: "LDY", Mode: Abx, Cycles: 4},
		{Opcode: 0xBD, Mnemonic: "LDA", Mode: Abx, Cycles: 4},
		{Opcode: 0xBE, Mnemonic: "LDX", Mode: Aby, Cycles: 4},
		{Opcode: 0xC0, Mnemonic: "CPY", Mode: Imm, Cycles: 2},
		{Opcode: 0xC1, Mnemonic: "CMP", Mode: Inx, Cycles: 6},
		{Opcode: 0xC4, Mnemonic: "CPY", Mode: Zp, Cycles: 3},
		{Opcode: 0xC5, Mnemonic: "CMP", Mode: Zp, Cycles: 3},
		{Opcode: 0xC6, Mnemonic: "DEC", Mode: Zp, Cycles: 5},
		{Opcode: 0xC8, Mnemonic: "INY", Mode: Imp, Cycles: 2},
		{Opcode: 0xC9, Mnemonic: "CMP", Mode: Imm, Cycles: 2},
		{Opcode: 0xCA, Mnemonic: "DEX", Mode: Imp, Cycles: 2},
		{Opcode: 0xCC, Mnemonic: "CPY", Mode: Abs, Cycles: 4},
		{Opcode: 0xCD, Mnemonic: "CMP", Mode: Abs, Cycles: 4},
		{Opcode: 0xCE, Mnemonic: "DEC", Mode: Abs, Cycles: 6},
		{Opcode: 0xD0, Mnemonic: "BNE", Mode: Rel, Cycles: 2},
		{Opcode: 0xD1, Mnemonic: "CMP", Mode: Iny, Cycles: 5},
		{Opcode: 0xD5, Mnemonic: "CMP", Mode: Zpx, Cycles: 4},
		{Opcode: 0xD6, Mnemonic: "DEC", Mode: Zpx, Cycles: 6},
		{Opcode: 0xD8, Mnemonic: "CLD", Mode: Imp, Cycles: 2},
		{Opcode: 0xD9, Mnemonic: "CMP", Mode: Aby, Cycles: 4},
		{Opcode: 0xDD, Mnemonic: "CMP", Mode: Abx, Cycles: 4},
		{Opcode: 0xDE, Mnemonic: "DEC", Mode: Abx, Cycles: 7},
		{Opcode: 0xE0, Mnemonic: "CPX", Mode: Imm, Cycles: 2},
		{Opcode: 0xE1, Mnemonic: "SBC", Mode: Inx, Cycles: 6},
		{Opcode: 0xE4, Mnemonic: "CPX", Mode: Zp, Cycles: 3},
		{Opcode: 0xE5, Mnemonic: "SBC", Mode: Zp, Cycles: 3},
		{Opcode: 0xE6, Mnemonic: "INC", Mode: Zp, Cycles: 5},
		{Opcode: 0xE8, Mnemonic: "INX", Mode: Imp, Cycles: 2},
		{Opcode: 0xE9, Mnemonic: "SBC", Mode: Imm, Cycles: 2},
		{Opcode: 0xEA, Mnemonic: "NOP", Mode: Imp, Cycles: 2},
		{Opcode: 0xEC, Mnemonic: "CPX", Mode: Abs, Cycles: 4},
		{Opcode: 0xED, Mnemonic: "SBC", Mode: Abs, Cycles: 4},
		{Opcode: 0xEE, Mnemonic: "INC", Mode: Abs, Cycles: 6},
		{Opcode: 0xF0, Mnemonic: "BEQ", Mode: Rel, Cycles: 2},
		{Opcode: 0xF1, Mnemonic: "SBC", Mode: Iny, Cycles: 5},
		{Opcode: 0xF5, Mnemonic: "SBC", Mode: Zpx, Cycles: 4},
		{Opcode: 0xF6, Mnemonic: "INC", Mode: Zpx, Cycles: 6},
		{Opcode: 0xF8, Mnemonic: "SED", Mode: Imp, Cycles: 2},
		{Opcode: 0xF9, Mnemonic: "SBC", Mode: Aby, Cycles: 4},
		{Opcode: 0xFD, Mnemonic: "SBC", Mode: Abx, Cycles: 4},
		{Opcode: 0xFE, Mnemonic: "INC", Mode: Abx, Cycles: 7},
	}
}
