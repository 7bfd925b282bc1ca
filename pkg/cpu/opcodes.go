package cpu

// OpEntry is one row of the static opcode table: mnemonic, addressing mode,
// baseline cycle count, whether a page-crossing costs an extra cycle, and
// NoRead, set for read-modify-write / pure-store instructions (these never
// pay the boundary penalty — their baseline already reflects the worst case).
type OpEntry struct {
	Mnemonic  string
	Mode      AddressingMode
	Cycles    int
	PageCross bool
	NoRead    bool
	Valid     bool
}

// opcodeTable is the complete, official-opcodes-only 6502 decode table.
// Entries left zero-valued (Valid == false) are illegal opcodes; executing
// one is an Invalid-opcode fault.
var opcodeTable = [256]OpEntry{
	0x00: {"BRK", AddrImplied, 7, false, false, true},
	0x01: {"ORA", AddrIndexedIndirect, 6, false, false, true},
	0x05: {"ORA", AddrZeroPage, 3, false, false, true},
	0x06: {"ASL", AddrZeroPage, 5, false, true, true},
	0x08: {"PHP", AddrImplied, 3, false, false, true},
	0x09: {"ORA", AddrImmediate, 2, false, false, true},
	0x0A: {"ASL", AddrAccumulator, 2, false, false, true},
	0x0D: {"ORA", AddrAbsolute, 4, false, false, true},
	0x0E: {"ASL", AddrAbsolute, 6, false, true, true},

	0x10: {"BPL", AddrRelative, 2, true, false, true},
	0x11: {"ORA", AddrIndirectIndexed, 5, true, false, true},
	0x15: {"ORA", AddrZeroPageX, 4, false, false, true},
	0x16: {"ASL", AddrZeroPageX, 6, false, true, true},
	0x18: {"CLC", AddrImplied, 2, false, false, true},
	0x19: {"ORA", AddrAbsoluteY, 4, true, false, true},
	0x1D: {"ORA", AddrAbsoluteX, 4, true, false, true},
	0x1E: {"ASL", AddrAbsoluteX, 7, false, true, true},

	0x20: {"JSR", AddrAbsolute, 6, false, false, true},
	0x21: {"AND", AddrIndexedIndirect, 6, false, false, true},
	0x24: {"BIT", AddrZeroPage, 3, false, false, true},
	0x25: {"AND", AddrZeroPage, 3, false, false, true},
	0x26: {"ROL", AddrZeroPage, 5, false, true, true},
	0x28: {"PLP", AddrImplied, 4, false, false, true},
	0x29: {"AND", AddrImmediate, 2, false, false, true},
	0x2A: {"ROL", AddrAccumulator, 2, false, false, true},
	0x2C: {"BIT", AddrAbsolute, 4, false, false, true},
	0x2D: {"AND", AddrAbsolute, 4, false, false, true},
	0x2E: {"ROL", AddrAbsolute, 6, false, true, true},

	0x30: {"BMI", AddrRelative, 2, true, false, true},
	0x31: {"AND", AddrIndirectIndexed, 5, true, false, true},
	0x35: {"AND", AddrZeroPageX, 4, false, false, true},
	0x36: {"ROL", AddrZeroPageX, 6, false, true, true},
	0x38: {"SEC", AddrImplied, 2, false, false, true},
	0x39: {"AND", AddrAbsoluteY, 4, true, false, true},
	0x3D: {"AND", AddrAbsoluteX, 4, true, false, true},
	0x3E: {"ROL", AddrAbsoluteX, 7, false, true, true},

	0x40: {"RTI", AddrImplied, 6, false, false, true},
	0x41: {"EOR", AddrIndexedIndirect, 6, false, false, true},
	0x45: {"EOR", AddrZeroPage, 3, false, false, true},
	0x46: {"LSR", AddrZeroPage, 5, false, true, true},
	0x48: {"PHA", AddrImplied, 3, false, false, true},
	0x49: {"EOR", AddrImmediate, 2, false, false, true},
	0x4A: {"LSR", AddrAccumulator, 2, false, false, true},
	0x4C: {"JMP", AddrAbsolute, 3, false, false, true},
	0x4D: {"EOR", AddrAbsolute, 4, false, false, true},
	0x4E: {"LSR", AddrAbsolute, 6, false, true, true},

	0x50: {"BVC", AddrRelative, 2, true, false, true},
	0x51: {"EOR", AddrIndirectIndexed, 5, true, false, true},
	0x55: {"EOR", AddrZeroPageX, 4, false, false, true},
	0x56: {"LSR", AddrZeroPageX, 6, false, true, true},
	0x58: {"CLI", AddrImplied, 2, false, false, true},
	0x59: {"EOR", AddrAbsoluteY, 4, true, false, true},
	0x5D: {"EOR", AddrAbsoluteX, 4, true, false, true},
	0x5E: {"LSR", AddrAbsoluteX, 7, false, true, true},

	0x60: {"RTS", AddrImplied, 6, false, false, true},
	0x61: {"ADC", AddrIndexedIndirect, 6, false, false, true},
	0x65: {"ADC", AddrZeroPage, 3, false, false, true},
	0x66: {"ROR", AddrZeroPage, 5, false, true, true},
	0x68: {"PLA", AddrImplied, 4, false, false, true},
	0x69: {"ADC", AddrImmediate, 2, false, false, true},
	0x6A: {"ROR", AddrAccumulator, 2, false, false, true},
	0x6C: {"JMP", AddrIndirect, 5, false, false, true},
	0x6D: {"ADC", AddrAbsolute, 4, false, false, true},
	0x6E: {"ROR", AddrAbsolute, 6, false, true, true},

	0x70: {"BVS", AddrRelative, 2, true, false, true},
	0x71: {"ADC", AddrIndirectIndexed, 5, true, false, true},
	0x75: {"ADC", AddrZeroPageX, 4, false, false, true},
	0x76: {"ROR", AddrZeroPageX, 6, false, true, true},
	0x78: {"SEI", AddrImplied, 2, false, false, true},
	0x79: {"ADC", AddrAbsoluteY, 4, true, false, true},
	0x7D: {"ADC", AddrAbsoluteX, 4, true, false, true},
	0x7E: {"ROR", AddrAbsoluteX, 7, false, true, true},

	0x81: {"STA", AddrIndexedIndirect, 6, false, true, true},
	0x84: {"STY", AddrZeroPage, 3, false, true, true},
	0x85: {"STA", AddrZeroPage, 3, false, true, true},
	0x86: {"STX", AddrZeroPage, 3, false, true, true},
	0x88: {"DEY", AddrImplied, 2, false, false, true},
	0x8A: {"TXA", AddrImplied, 2, false, false, true},
	0x8C: {"STY", AddrAbsolute, 4, false, true, true},
	0x8D: {"STA", AddrAbsolute, 4, false, true, true},
	0x8E: {"STX", AddrAbsolute, 4, false, true, true},

	0x90: {"BCC", AddrRelative, 2, true, false, true},
	0x91: {"STA", AddrIndirectIndexed, 6, false, true, true},
	0x94: {"STY", AddrZeroPageX, 4, false, true, true},
	0x95: {"STA", AddrZeroPageX, 4, false, true, true},
	0x96: {"STX", AddrZeroPageY, 4, false, true, true},
	0x98: {"TYA", AddrImplied, 2, false, false, true},
	0x99: {"STA", AddrAbsoluteY, 5, false, true, true},
	0x9A: {"TXS", AddrImplied, 2, false, false, true},
	0x9D: {"STA", AddrAbsoluteX, 5, false, true, true},

	0xA0: {"LDY", AddrImmediate, 2, false, false, true},
	0xA1: {"LDA", AddrIndexedIndirect, 6, false, false, true},
	0xA2: {"LDX", AddrImmediate, 2, false, false, true},
	0xA4: {"LDY", AddrZeroPage, 3, false, false, true},
	0xA5: {"LDA", AddrZeroPage, 3, false, false, true},
	0xA6: {"LDX", AddrZeroPage, 3, false, false, true},
	0xA8: {"TAY", AddrImplied, 2, false, false, true},
	0xA9: {"LDA", AddrImmediate, 2, false, false, true},
	0xAA: {"TAX", AddrImplied, 2, false, false, true},
	0xAC: {"LDY", AddrAbsolute, 4, false, false, true},
	0xAD: {"LDA", AddrAbsolute, 4, false, false, true},
	0xAE: {"LDX", AddrAbsolute, 4, false, false, true},

	0xB0: {"BCS", AddrRelative, 2, true, false, true},
	0xB1: {"LDA", AddrIndirectIndexed, 5, true, false, true},
	0xB4: {"LDY", AddrZeroPageX, 4, false, false, true},
	0xB5: {"LDA", AddrZeroPageX, 4, false, false, true},
	0xB6: {"LDX", AddrZeroPageY, 4, false, false, true},
	0xB8: {"CLV", AddrImplied, 2, false, false, true},
	0xB9: {"LDA", AddrAbsoluteY, 4, true, false, true},
	0xBA: {"TSX", AddrImplied, 2, false, false, true},
	0xBC: {"LDY", AddrAbsoluteX, 4, true, false, true},
	0xBD: {"LDA", AddrAbsoluteX, 4, true, false, true},
	0xBE: {"LDX", AddrAbsoluteY, 4, true, false, true},

	0xC0: {"CPY", AddrImmediate, 2, false, false, true},
	0xC1: {"CMP", AddrIndexedIndirect, 6, false, false, true},
	0xC4: {"CPY", AddrZeroPage, 3, false, false, true},
	0xC5: {"CMP", AddrZeroPage, 3, false, false, true},
	0xC6: {"DEC", AddrZeroPage, 5, false, true, true},
	0xC8: {"INY", AddrImplied, 2, false, false, true},
	0xC9: {"CMP", AddrImmediate, 2, false, false, true},
	0xCA: {"DEX", AddrImplied, 2, false, false, true},
	0xCC: {"CPY", AddrAbsolute, 4, false, false, true},
	0xCD: {"CMP", AddrAbsolute, 4, false, false, true},
	0xCE: {"DEC", AddrAbsolute, 6, false, true, true},

	0xD0: {"BNE", AddrRelative, 2, true, false, true},
	0xD1: {"CMP", AddrIndirectIndexed, 5, true, false, true},
	0xD5: {"CMP", AddrZeroPageX, 4, false, false, true},
	0xD6: {"DEC", AddrZeroPageX, 6, false, true, true},
	0xD8: {"CLD", AddrImplied, 2, false, false, true},
	0xD9: {"CMP", AddrAbsoluteY, 4, true, false, true},
	0xDD: {"CMP", AddrAbsoluteX, 4, true, false, true},
	0xDE: {"DEC", AddrAbsoluteX, 7, false, true, true},

	0xE0: {"CPX", AddrImmediate, 2, false, false, true},
	0xE1: {"SBC", AddrIndexedIndirect, 6, false, false, true},
	0xE4: {"CPX", AddrZeroPage, 3, false, false, true},
	0xE5: {"SBC", AddrZeroPage, 3, false, false, true},
	0xE6: {"INC", AddrZeroPage, 5, false, true, true},
	0xE8: {"INX", AddrImplied, 2, false, false, true},
	0xE9: {"SBC", AddrImmediate, 2, false, false, true},
	0xEA: {"NOP", AddrImplied, 2, false, false, true},
	0xEC: {"CPX", AddrAbsolute, 4, false, false, true},
	0xED: {"SBC", AddrAbsolute, 4, false, false, true},
	0xEE: {"INC", AddrAbsolute, 6, false, true, true},

	0xF0: {"BEQ", AddrRelative, 2, true, false, true},
	0xF1: {"SBC", AddrIndirectIndexed, 5, true, false, true},
	0xF5: {"SBC", AddrZeroPageX, 4, false, false, true},
	0xF6: {"INC", AddrZeroPageX, 6, false, true, true},
	0xF8: {"SED", AddrImplied, 2, false, false, true},
	0xF9: {"SBC", AddrAbsoluteY, 4, true, false, true},
	0xFD: {"SBC", AddrAbsoluteX, 4, true, false, true},
	0xFE: {"INC", AddrAbsoluteX, 7, false, true, true},
}
