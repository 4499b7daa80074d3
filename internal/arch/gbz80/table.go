package gbz80

// baseOpcodes holds the unprefixed instructions, missing entries are not
// implemented by the SM83 CPU.
var baseOpcodes = [256]*Opcode{
	0x00: {Value: 0x00, Mnemonic: "nop", Operand: NoOperand},
	0x01: {Value: 0x01, Mnemonic: "ld bc,%04Xh", Operand: Immediate16},
	0x02: {Value: 0x02, Mnemonic: "ld (bc),a", Operand: NoOperand},
	0x03: {Value: 0x03, Mnemonic: "inc bc", Operand: NoOperand},
	0x04: {Value: 0x04, Mnemonic: "inc b", Operand: NoOperand},
	0x05: {Value: 0x05, Mnemonic: "dec b", Operand: NoOperand},
	0x06: {Value: 0x06, Mnemonic: "ld b,%02Xh", Operand: Immediate8},
	0x07: {Value: 0x07, Mnemonic: "rlca", Operand: NoOperand},
	0x08: {Value: 0x08, Mnemonic: "ld (%04Xh),sp", Operand: Immediate16},
	0x09: {Value: 0x09, Mnemonic: "add hl,bc", Operand: NoOperand},
	0x0A: {Value: 0x0A, Mnemonic: "ld a,(bc)", Operand: NoOperand},
	0x0B: {Value: 0x0B, Mnemonic: "dec bc", Operand: NoOperand},
	0x0C: {Value: 0x0C, Mnemonic: "inc c", Operand: NoOperand},
	0x0D: {Value: 0x0D, Mnemonic: "dec c", Operand: NoOperand},
	0x0E: {Value: 0x0E, Mnemonic: "ld c,%02Xh", Operand: Immediate8},
	0x0F: {Value: 0x0F, Mnemonic: "rrca", Operand: NoOperand},
	0x10: {Value: 0x10, Mnemonic: "stop", Operand: NoOperand},
	0x11: {Value: 0x11, Mnemonic: "ld de,%04Xh", Operand: Immediate16},
	0x12: {Value: 0x12, Mnemonic: "ld (de),a", Operand: NoOperand},
	0x13: {Value: 0x13, Mnemonic: "inc de", Operand: NoOperand},
	0x14: {Value: 0x14, Mnemonic: "inc d", Operand: NoOperand},
	0x15: {Value: 0x15, Mnemonic: "dec d", Operand: NoOperand},
	0x16: {Value: 0x16, Mnemonic: "ld d,%02Xh", Operand: Immediate8},
	0x17: {Value: 0x17, Mnemonic: "rla", Operand: NoOperand},
	0x18: {Value: 0x18, Mnemonic: "jr %04Xh", Operand: Relative8, Jump: RelativeJump},
	0x19: {Value: 0x19, Mnemonic: "add hl,de", Operand: NoOperand},
	0x1A: {Value: 0x1A, Mnemonic: "ld a,(de)", Operand: NoOperand},
	0x1B: {Value: 0x1B, Mnemonic: "dec de", Operand: NoOperand},
	0x1C: {Value: 0x1C, Mnemonic: "inc e", Operand: NoOperand},
	0x1D: {Value: 0x1D, Mnemonic: "dec e", Operand: NoOperand},
	0x1E: {Value: 0x1E, Mnemonic: "ld e,%02Xh", Operand: Immediate8},
	0x1F: {Value: 0x1F, Mnemonic: "rra", Operand: NoOperand},
	0x20: {Value: 0x20, Mnemonic: "jr nz,%04Xh", Operand: Relative8, Jump: RelativeJump},
	0x21: {Value: 0x21, Mnemonic: "ld hl,%04Xh", Operand: Immediate16},
	0x22: {Value: 0x22, Mnemonic: "ldi (hl),a", Operand: NoOperand},
	0x23: {Value: 0x23, Mnemonic: "inc hl", Operand: NoOperand},
	0x24: {Value: 0x24, Mnemonic: "inc h", Operand: NoOperand},
	0x25: {Value: 0x25, Mnemonic: "dec h", Operand: NoOperand},
	0x26: {Value: 0x26, Mnemonic: "ld h,%02Xh", Operand: Immediate8},
	0x27: {Value: 0x27, Mnemonic: "daa", Operand: NoOperand},
	0x28: {Value: 0x28, Mnemonic: "jr z,%04Xh", Operand: Relative8, Jump: RelativeJump},
	0x29: {Value: 0x29, Mnemonic: "add hl,hl", Operand: NoOperand},
	0x2A: {Value: 0x2A, Mnemonic: "ldi a,(hl)", Operand: NoOperand},
	0x2B: {Value: 0x2B, Mnemonic: "dec hl", Operand: NoOperand},
	0x2C: {Value: 0x2C, Mnemonic: "inc l", Operand: NoOperand},
	0x2D: {Value: 0x2D, Mnemonic: "dec l", Operand: NoOperand},
	0x2E: {Value: 0x2E, Mnemonic: "ld l,%02Xh", Operand: Immediate8},
	0x2F: {Value: 0x2F, Mnemonic: "cpl", Operand: NoOperand},
	0x30: {Value: 0x30, Mnemonic: "jr nc,%04Xh", Operand: Relative8, Jump: RelativeJump},
	0x31: {Value: 0x31, Mnemonic: "ld sp,%04Xh", Operand: Immediate16},
	0x32: {Value: 0x32, Mnemonic: "ldd (hl),a", Operand: NoOperand},
	0x33: {Value: 0x33, Mnemonic: "inc sp", Operand: NoOperand},
	0x34: {Value: 0x34, Mnemonic: "inc (hl)", Operand: NoOperand},
	0x35: {Value: 0x35, Mnemonic: "dec (hl)", Operand: NoOperand},
	0x36: {Value: 0x36, Mnemonic: "ld (hl),%02Xh", Operand: Immediate8},
	0x37: {Value: 0x37, Mnemonic: "scf", Operand: NoOperand},
	0x38: {Value: 0x38, Mnemonic: "jr c,%04Xh", Operand: Relative8, Jump: RelativeJump},
	0x39: {Value: 0x39, Mnemonic: "add hl,sp", Operand: NoOperand},
	0x3A: {Value: 0x3A, Mnemonic: "ldd a,(hl)", Operand: NoOperand},
	0x3B: {Value: 0x3B, Mnemonic: "dec sp", Operand: NoOperand},
	0x3C: {Value: 0x3C, Mnemonic: "inc a", Operand: NoOperand},
	0x3D: {Value: 0x3D, Mnemonic: "dec a", Operand: NoOperand},
	0x3E: {Value: 0x3E, Mnemonic: "ld a,%02Xh", Operand: Immediate8},
	0x3F: {Value: 0x3F, Mnemonic: "ccf", Operand: NoOperand},
	0x40: {Value: 0x40, Mnemonic: "ld b,b", Operand: NoOperand},
	0x41: {Value: 0x41, Mnemonic: "ld b,c", Operand: NoOperand},
	0x42: {Value: 0x42, Mnemonic: "ld b,d", Operand: NoOperand},
	0x43: {Value: 0x43, Mnemonic: "ld b,e", Operand: NoOperand},
	0x44: {Value: 0x44, Mnemonic: "ld b,h", Operand: NoOperand},
	0x45: {Value: 0x45, Mnemonic: "ld b,l", Operand: NoOperand},
	0x46: {Value: 0x46, Mnemonic: "ld b,(hl)", Operand: NoOperand},
	0x47: {Value: 0x47, Mnemonic: "ld b,a", Operand: NoOperand},
	0x48: {Value: 0x48, Mnemonic: "ld c,b", Operand: NoOperand},
	0x49: {Value: 0x49, Mnemonic: "ld c,c", Operand: NoOperand},
	0x4A: {Value: 0x4A, Mnemonic: "ld c,d", Operand: NoOperand},
	0x4B: {Value: 0x4B, Mnemonic: "ld c,e", Operand: NoOperand},
	0x4C: {Value: 0x4C, Mnemonic: "ld c,h", Operand: NoOperand},
	0x4D: {Value: 0x4D, Mnemonic: "ld c,l", Operand: NoOperand},
	0x4E: {Value: 0x4E, Mnemonic: "ld c,(hl)", Operand: NoOperand},
	0x4F: {Value: 0x4F, Mnemonic: "ld c,a", Operand: NoOperand},
	0x50: {Value: 0x50, Mnemonic: "ld d,b", Operand: NoOperand},
	0x51: {Value: 0x51, Mnemonic: "ld d,c", Operand: NoOperand},
	0x52: {Value: 0x52, Mnemonic: "ld d,d", Operand: NoOperand},
	0x53: {Value: 0x53, Mnemonic: "ld d,e", Operand: NoOperand},
	0x54: {Value: 0x54, Mnemonic: "ld d,h", Operand: NoOperand},
	0x55: {Value: 0x55, Mnemonic: "ld d,l", Operand: NoOperand},
	0x56: {Value: 0x56, Mnemonic: "ld d,(hl)", Operand: NoOperand},
	0x57: {Value: 0x57, Mnemonic: "ld d,a", Operand: NoOperand},
	0x58: {Value: 0x58, Mnemonic: "ld e,b", Operand: NoOperand},
	0x59: {Value: 0x59, Mnemonic: "ld e,c", Operand: NoOperand},
	0x5A: {Value: 0x5A, Mnemonic: "ld e,d", Operand: NoOperand},
	0x5B: {Value: 0x5B, Mnemonic: "ld e,e", Operand: NoOperand},
	0x5C: {Value: 0x5C, Mnemonic: "ld e,h", Operand: NoOperand},
	0x5D: {Value: 0x5D, Mnemonic: "ld e,l", Operand: NoOperand},
	0x5E: {Value: 0x5E, Mnemonic: "ld e,(hl)", Operand: NoOperand},
	0x5F: {Value: 0x5F, Mnemonic: "ld e,a", Operand: NoOperand},
	0x60: {Value: 0x60, Mnemonic: "ld h,b", Operand: NoOperand},
	0x61: {Value: 0x61, Mnemonic: "ld h,c", Operand: NoOperand},
	0x62: {Value: 0x62, Mnemonic: "ld h,d", Operand: NoOperand},
	0x63: {Value: 0x63, Mnemonic: "ld h,e", Operand: NoOperand},
	0x64: {Value: 0x64, Mnemonic: "ld h,h", Operand: NoOperand},
	0x65: {Value: 0x65, Mnemonic: "ld h,l", Operand: NoOperand},
	0x66: {Value: 0x66, Mnemonic: "ld h,(hl)", Operand: NoOperand},
	0x67: {Value: 0x67, Mnemonic: "ld h,a", Operand: NoOperand},
	0x68: {Value: 0x68, Mnemonic: "ld l,b", Operand: NoOperand},
	0x69: {Value: 0x69, Mnemonic: "ld l,c", Operand: NoOperand},
	0x6A: {Value: 0x6A, Mnemonic: "ld l,d", Operand: NoOperand},
	0x6B: {Value: 0x6B, Mnemonic: "ld l,e", Operand: NoOperand},
	0x6C: {Value: 0x6C, Mnemonic: "ld l,h", Operand: NoOperand},
	0x6D: {Value: 0x6D, Mnemonic: "ld l,l", Operand: NoOperand},
	0x6E: {Value: 0x6E, Mnemonic: "ld l,(hl)", Operand: NoOperand},
	0x6F: {Value: 0x6F, Mnemonic: "ld l,a", Operand: NoOperand},
	0x70: {Value: 0x70, Mnemonic: "ld (hl),b", Operand: NoOperand},
	0x71: {Value: 0x71, Mnemonic: "ld (hl),c", Operand: NoOperand},
	0x72: {Value: 0x72, Mnemonic: "ld (hl),d", Operand: NoOperand},
	0x73: {Value: 0x73, Mnemonic: "ld (hl),e", Operand: NoOperand},
	0x74: {Value: 0x74, Mnemonic: "ld (hl),h", Operand: NoOperand},
	0x75: {Value: 0x75, Mnemonic: "ld (hl),l", Operand: NoOperand},
	0x76: {Value: 0x76, Mnemonic: "halt", Operand: NoOperand},
	0x77: {Value: 0x77, Mnemonic: "ld (hl),a", Operand: NoOperand},
	0x78: {Value: 0x78, Mnemonic: "ld a,b", Operand: NoOperand},
	0x79: {Value: 0x79, Mnemonic: "ld a,c", Operand: NoOperand},
	0x7A: {Value: 0x7A, Mnemonic: "ld a,d", Operand: NoOperand},
	0x7B: {Value: 0x7B, Mnemonic: "ld a,e", Operand: NoOperand},
	0x7C: {Value: 0x7C, Mnemonic: "ld a,h", Operand: NoOperand},
	0x7D: {Value: 0x7D, Mnemonic: "ld a,l", Operand: NoOperand},
	0x7E: {Value: 0x7E, Mnemonic: "ld a,(hl)", Operand: NoOperand},
	0x7F: {Value: 0x7F, Mnemonic: "ld a,a", Operand: NoOperand},
	0x80: {Value: 0x80, Mnemonic: "add b", Operand: NoOperand},
	0x81: {Value: 0x81, Mnemonic: "add c", Operand: NoOperand},
	0x82: {Value: 0x82, Mnemonic: "add d", Operand: NoOperand},
	0x83: {Value: 0x83, Mnemonic: "add e", Operand: NoOperand},
	0x84: {Value: 0x84, Mnemonic: "add h", Operand: NoOperand},
	0x85: {Value: 0x85, Mnemonic: "add l", Operand: NoOperand},
	0x86: {Value: 0x86, Mnemonic: "add (hl)", Operand: NoOperand},
	0x87: {Value: 0x87, Mnemonic: "add a", Operand: NoOperand},
	0x88: {Value: 0x88, Mnemonic: "adc b", Operand: NoOperand},
	0x89: {Value: 0x89, Mnemonic: "adc c", Operand: NoOperand},
	0x8A: {Value: 0x8A, Mnemonic: "adc d", Operand: NoOperand},
	0x8B: {Value: 0x8B, Mnemonic: "adc e", Operand: NoOperand},
	0x8C: {Value: 0x8C, Mnemonic: "adc h", Operand: NoOperand},
	0x8D: {Value: 0x8D, Mnemonic: "adc l", Operand: NoOperand},
	0x8E: {Value: 0x8E, Mnemonic: "adc (hl)", Operand: NoOperand},
	0x8F: {Value: 0x8F, Mnemonic: "adc a", Operand: NoOperand},
	0x90: {Value: 0x90, Mnemonic: "sub b", Operand: NoOperand},
	0x91: {Value: 0x91, Mnemonic: "sub c", Operand: NoOperand},
	0x92: {Value: 0x92, Mnemonic: "sub d", Operand: NoOperand},
	0x93: {Value: 0x93, Mnemonic: "sub e", Operand: NoOperand},
	0x94: {Value: 0x94, Mnemonic: "sub h", Operand: NoOperand},
	0x95: {Value: 0x95, Mnemonic: "sub l", Operand: NoOperand},
	0x96: {Value: 0x96, Mnemonic: "sub (hl)", Operand: NoOperand},
	0x97: {Value: 0x97, Mnemonic: "sub a", Operand: NoOperand},
	0x98: {Value: 0x98, Mnemonic: "sbc b", Operand: NoOperand},
	0x99: {Value: 0x99, Mnemonic: "sbc c", Operand: NoOperand},
	0x9A: {Value: 0x9A, Mnemonic: "sbc d", Operand: NoOperand},
	0x9B: {Value: 0x9B, Mnemonic: "sbc e", Operand: NoOperand},
	0x9C: {Value: 0x9C, Mnemonic: "sbc h", Operand: NoOperand},
	0x9D: {Value: 0x9D, Mnemonic: "sbc l", Operand: NoOperand},
	0x9E: {Value: 0x9E, Mnemonic: "sbc (hl)", Operand: NoOperand},
	0x9F: {Value: 0x9F, Mnemonic: "sbc a", Operand: NoOperand},
	0xA0: {Value: 0xA0, Mnemonic: "and b", Operand: NoOperand},
	0xA1: {Value: 0xA1, Mnemonic: "and c", Operand: NoOperand},
	0xA2: {Value: 0xA2, Mnemonic: "and d", Operand: NoOperand},
	0xA3: {Value: 0xA3, Mnemonic: "and e", Operand: NoOperand},
	0xA4: {Value: 0xA4, Mnemonic: "and h", Operand: NoOperand},
	0xA5: {Value: 0xA5, Mnemonic: "and l", Operand: NoOperand},
	0xA6: {Value: 0xA6, Mnemonic: "and (hl)", Operand: NoOperand},
	0xA7: {Value: 0xA7, Mnemonic: "and a", Operand: NoOperand},
	0xA8: {Value: 0xA8, Mnemonic: "xor b", Operand: NoOperand},
	0xA9: {Value: 0xA9, Mnemonic: "xor c", Operand: NoOperand},
	0xAA: {Value: 0xAA, Mnemonic: "xor d", Operand: NoOperand},
	0xAB: {Value: 0xAB, Mnemonic: "xor e", Operand: NoOperand},
	0xAC: {Value: 0xAC, Mnemonic: "xor h", Operand: NoOperand},
	0xAD: {Value: 0xAD, Mnemonic: "xor l", Operand: NoOperand},
	0xAE: {Value: 0xAE, Mnemonic: "xor (hl)", Operand: NoOperand},
	0xAF: {Value: 0xAF, Mnemonic: "xor a", Operand: NoOperand},
	0xB0: {Value: 0xB0, Mnemonic: "or b", Operand: NoOperand},
	0xB1: {Value: 0xB1, Mnemonic: "or c", Operand: NoOperand},
	0xB2: {Value: 0xB2, Mnemonic: "or d", Operand: NoOperand},
	0xB3: {Value: 0xB3, Mnemonic: "or e", Operand: NoOperand},
	0xB4: {Value: 0xB4, Mnemonic: "or h", Operand: NoOperand},
	0xB5: {Value: 0xB5, Mnemonic: "or l", Operand: NoOperand},
	0xB6: {Value: 0xB6, Mnemonic: "or (hl)", Operand: NoOperand},
	0xB7: {Value: 0xB7, Mnemonic: "or a", Operand: NoOperand},
	0xB8: {Value: 0xB8, Mnemonic: "cp b", Operand: NoOperand},
	0xB9: {Value: 0xB9, Mnemonic: "cp c", Operand: NoOperand},
	0xBA: {Value: 0xBA, Mnemonic: "cp d", Operand: NoOperand},
	0xBB: {Value: 0xBB, Mnemonic: "cp e", Operand: NoOperand},
	0xBC: {Value: 0xBC, Mnemonic: "cp h", Operand: NoOperand},
	0xBD: {Value: 0xBD, Mnemonic: "cp l", Operand: NoOperand},
	0xBE: {Value: 0xBE, Mnemonic: "cp (hl)", Operand: NoOperand},
	0xBF: {Value: 0xBF, Mnemonic: "cp a", Operand: NoOperand},
	0xC0: {Value: 0xC0, Mnemonic: "ret nz", Operand: NoOperand},
	0xC1: {Value: 0xC1, Mnemonic: "pop bc", Operand: NoOperand},
	0xC2: {Value: 0xC2, Mnemonic: "jp nz,%04Xh", Operand: Immediate16, Jump: AbsoluteJump},
	0xC3: {Value: 0xC3, Mnemonic: "jp %04Xh", Operand: Immediate16, Jump: AbsoluteJump},
	0xC4: {Value: 0xC4, Mnemonic: "call nz,%04Xh", Operand: Immediate16, Jump: Call},
	0xC5: {Value: 0xC5, Mnemonic: "push bc", Operand: NoOperand},
	0xC6: {Value: 0xC6, Mnemonic: "add a,%02Xh", Operand: Immediate8},
	0xC7: {Value: 0xC7, Mnemonic: "rst 00h", Operand: NoOperand},
	0xC8: {Value: 0xC8, Mnemonic: "ret z", Operand: NoOperand},
	0xC9: {Value: 0xC9, Mnemonic: "ret", Operand: NoOperand},
	0xCA: {Value: 0xCA, Mnemonic: "jp z,%04Xh", Operand: Immediate16},
	0xCC: {Value: 0xCC, Mnemonic: "call z,%04Xh", Operand: Immediate16, Jump: Call},
	0xCD: {Value: 0xCD, Mnemonic: "call %04Xh", Operand: Immediate16, Jump: Call},
	0xCE: {Value: 0xCE, Mnemonic: "adc a,%02Xh", Operand: Immediate8},
	0xCF: {Value: 0xCF, Mnemonic: "rst 08h", Operand: NoOperand},
	0xD0: {Value: 0xD0, Mnemonic: "ret nc", Operand: NoOperand},
	0xD1: {Value: 0xD1, Mnemonic: "pop de", Operand: NoOperand},
	0xD2: {Value: 0xD2, Mnemonic: "jp nc,%04Xh", Operand: Immediate16, Jump: AbsoluteJump},
	0xD4: {Value: 0xD4, Mnemonic: "call nc,%04Xh", Operand: Immediate16, Jump: Call},
	0xD5: {Value: 0xD5, Mnemonic: "push de", Operand: NoOperand},
	0xD6: {Value: 0xD6, Mnemonic: "sub a,%02Xh", Operand: Immediate8},
	0xD7: {Value: 0xD7, Mnemonic: "rst 10h", Operand: NoOperand},
	0xD8: {Value: 0xD8, Mnemonic: "ret c", Operand: NoOperand},
	0xD9: {Value: 0xD9, Mnemonic: "reti", Operand: NoOperand},
	0xDA: {Value: 0xDA, Mnemonic: "jp c,%04Xh", Operand: Immediate16, Jump: AbsoluteJump},
	0xDC: {Value: 0xDC, Mnemonic: "call c,%04Xh", Operand: Immediate16, Jump: Call},
	0xDE: {Value: 0xDE, Mnemonic: "sbc a,%02Xh", Operand: Immediate8},
	0xDF: {Value: 0xDF, Mnemonic: "rst 18h", Operand: NoOperand},
	0xE0: {Value: 0xE0, Mnemonic: "ld (ff00+%02Xh),a", Operand: Immediate8},
	0xE1: {Value: 0xE1, Mnemonic: "pop hl", Operand: NoOperand},
	0xE2: {Value: 0xE2, Mnemonic: "ld (ff00+c),a", Operand: NoOperand},
	0xE5: {Value: 0xE5, Mnemonic: "push hl", Operand: NoOperand},
	0xE6: {Value: 0xE6, Mnemonic: "and a,%02Xh", Operand: Immediate8},
	0xE7: {Value: 0xE7, Mnemonic: "rst 20h", Operand: NoOperand},
	0xE8: {Value: 0xE8, Mnemonic: "add sp,%02Xh", Operand: Immediate8},
	0xE9: {Value: 0xE9, Mnemonic: "jp hl", Operand: NoOperand, Jump: AbsoluteJump},
	0xEA: {Value: 0xEA, Mnemonic: "ld (%04Xh),a", Operand: Immediate16},
	0xEE: {Value: 0xEE, Mnemonic: "xor a,%02Xh", Operand: Immediate8},
	0xEF: {Value: 0xEF, Mnemonic: "rst 28h", Operand: NoOperand},
	0xF0: {Value: 0xF0, Mnemonic: "ld a,(ff00+%02Xh)", Operand: Immediate8},
	0xF1: {Value: 0xF1, Mnemonic: "pop af", Operand: NoOperand},
	0xF2: {Value: 0xF2, Mnemonic: "ld a,(ff00+c)", Operand: NoOperand},
	0xF3: {Value: 0xF3, Mnemonic: "di", Operand: NoOperand},
	0xF5: {Value: 0xF5, Mnemonic: "push af", Operand: NoOperand},
	0xF6: {Value: 0xF6, Mnemonic: "or a,%02Xh", Operand: Immediate8},
	0xF7: {Value: 0xF7, Mnemonic: "rst 30h", Operand: NoOperand},
	0xF8: {Value: 0xF8, Mnemonic: "ld hl,sp+%02Xh", Operand: Immediate8},
	0xF9: {Value: 0xF9, Mnemonic: "ld sp,hl", Operand: NoOperand},
	0xFA: {Value: 0xFA, Mnemonic: "ld a,(%04Xh)", Operand: Immediate16},
	0xFB: {Value: 0xFB, Mnemonic: "ei", Operand: NoOperand},
	0xFE: {Value: 0xFE, Mnemonic: "cp a,%02Xh", Operand: Immediate8},
	0xFF: {Value: 0xFF, Mnemonic: "rst 38h", Operand: NoOperand},
}

// extendedOpcodes holds the instructions following the 0xCB prefix.
var extendedOpcodes = [256]*Opcode{
	0x00: {Value: 0x00, Extended: true, Mnemonic: "rlc b", Operand: NoOperand},
	0x01: {Value: 0x01, Extended: true, Mnemonic: "rlc c", Operand: NoOperand},
	0x02: {Value: 0x02, Extended: true, Mnemonic: "rlc d", Operand: NoOperand},
	0x03: {Value: 0x03, Extended: true, Mnemonic: "rlc e", Operand: NoOperand},
	0x04: {Value: 0x04, Extended: true, Mnemonic: "rlc h", Operand: NoOperand},
	0x05: {Value: 0x05, Extended: true, Mnemonic: "rlc l", Operand: NoOperand},
	0x06: {Value: 0x06, Extended: true, Mnemonic: "rlc (hl)", Operand: NoOperand},
	0x07: {Value: 0x07, Extended: true, Mnemonic: "rlc a", Operand: NoOperand},
	0x08: {Value: 0x08, Extended: true, Mnemonic: "rrc b", Operand: NoOperand},
	0x09: {Value: 0x09, Extended: true, Mnemonic: "rrc c", Operand: NoOperand},
	0x0A: {Value: 0x0A, Extended: true, Mnemonic: "rrc d", Operand: NoOperand},
	0x0B: {Value: 0x0B, Extended: true, Mnemonic: "rrc e", Operand: NoOperand},
	0x0C: {Value: 0x0C, Extended: true, Mnemonic: "rrc h", Operand: NoOperand},
	0x0D: {Value: 0x0D, Extended: true, Mnemonic: "rrc l", Operand: NoOperand},
	0x0E: {Value: 0x0E, Extended: true, Mnemonic: "rrc (hl)", Operand: NoOperand},
	0x0F: {Value: 0x0F, Extended: true, Mnemonic: "rrc a", Operand: NoOperand},
	0x10: {Value: 0x10, Extended: true, Mnemonic: "rl b", Operand: NoOperand},
	0x11: {Value: 0x11, Extended: true, Mnemonic: "rl c", Operand: NoOperand},
	0x12: {Value: 0x12, Extended: true, Mnemonic: "rl d", Operand: NoOperand},
	0x13: {Value: 0x13, Extended: true, Mnemonic: "rl e", Operand: NoOperand},
	0x14: {Value: 0x14, Extended: true, Mnemonic: "rl h", Operand: NoOperand},
	0x15: {Value: 0x15, Extended: true, Mnemonic: "rl l", Operand: NoOperand},
	0x16: {Value: 0x16, Extended: true, Mnemonic: "rl (hl)", Operand: NoOperand},
	0x17: {Value: 0x17, Extended: true, Mnemonic: "rl a", Operand: NoOperand},
	0x18: {Value: 0x18, Extended: true, Mnemonic: "rr b", Operand: NoOperand},
	0x19: {Value: 0x19, Extended: true, Mnemonic: "rr c", Operand: NoOperand},
	0x1A: {Value: 0x1A, Extended: true, Mnemonic: "rr d", Operand: NoOperand},
	0x1B: {Value: 0x1B, Extended: true, Mnemonic: "rr e", Operand: NoOperand},
	0x1C: {Value: 0x1C, Extended: true, Mnemonic: "rr h", Operand: NoOperand},
	0x1D: {Value: 0x1D, Extended: true, Mnemonic: "rr l", Operand: NoOperand},
	0x1E: {Value: 0x1E, Extended: true, Mnemonic: "rr (hl)", Operand: NoOperand},
	0x1F: {Value: 0x1F, Extended: true, Mnemonic: "rr a", Operand: NoOperand},
	0x20: {Value: 0x20, Extended: true, Mnemonic: "sla b", Operand: NoOperand},
	0x21: {Value: 0x21, Extended: true, Mnemonic: "sla c", Operand: NoOperand},
	0x22: {Value: 0x22, Extended: true, Mnemonic: "sla d", Operand: NoOperand},
	0x23: {Value: 0x23, Extended: true, Mnemonic: "sla e", Operand: NoOperand},
	0x24: {Value: 0x24, Extended: true, Mnemonic: "sla h", Operand: NoOperand},
	0x25: {Value: 0x25, Extended: true, Mnemonic: "sla l", Operand: NoOperand},
	0x26: {Value: 0x26, Extended: true, Mnemonic: "sla (hl)", Operand: NoOperand},
	0x27: {Value: 0x27, Extended: true, Mnemonic: "sla a", Operand: NoOperand},
	0x28: {Value: 0x28, Extended: true, Mnemonic: "sra b", Operand: NoOperand},
	0x29: {Value: 0x29, Extended: true, Mnemonic: "sra c", Operand: NoOperand},
	0x2A: {Value: 0x2A, Extended: true, Mnemonic: "sra d", Operand: NoOperand},
	0x2B: {Value: 0x2B, Extended: true, Mnemonic: "sra e", Operand: NoOperand},
	0x2C: {Value: 0x2C, Extended: true, Mnemonic: "sra h", Operand: NoOperand},
	0x2D: {Value: 0x2D, Extended: true, Mnemonic: "sra l", Operand: NoOperand},
	0x2E: {Value: 0x2E, Extended: true, Mnemonic: "sra (hl)", Operand: NoOperand},
	0x2F: {Value: 0x2F, Extended: true, Mnemonic: "sra a", Operand: NoOperand},
	0x30: {Value: 0x30, Extended: true, Mnemonic: "swap b", Operand: NoOperand},
	0x31: {Value: 0x31, Extended: true, Mnemonic: "swap c", Operand: NoOperand},
	0x32: {Value: 0x32, Extended: true, Mnemonic: "swap d", Operand: NoOperand},
	0x33: {Value: 0x33, Extended: true, Mnemonic: "swap e", Operand: NoOperand},
	0x34: {Value: 0x34, Extended: true, Mnemonic: "swap h", Operand: NoOperand},
	0x35: {Value: 0x35, Extended: true, Mnemonic: "swap l", Operand: NoOperand},
	0x36: {Value: 0x36, Extended: true, Mnemonic: "swap (hl)", Operand: NoOperand},
	0x37: {Value: 0x37, Extended: true, Mnemonic: "swap a", Operand: NoOperand},
	0x38: {Value: 0x38, Extended: true, Mnemonic: "srl b", Operand: NoOperand},
	0x39: {Value: 0x39, Extended: true, Mnemonic: "srl c", Operand: NoOperand},
	0x3A: {Value: 0x3A, Extended: true, Mnemonic: "srl d", Operand: NoOperand},
	0x3B: {Value: 0x3B, Extended: true, Mnemonic: "srl e", Operand: NoOperand},
	0x3C: {Value: 0x3C, Extended: true, Mnemonic: "srl h", Operand: NoOperand},
	0x3D: {Value: 0x3D, Extended: true, Mnemonic: "srl l", Operand: NoOperand},
	0x3E: {Value: 0x3E, Extended: true, Mnemonic: "srl (hl)", Operand: NoOperand},
	0x3F: {Value: 0x3F, Extended: true, Mnemonic: "srl a", Operand: NoOperand},
	0x40: {Value: 0x40, Extended: true, Mnemonic: "bit 0,b", Operand: NoOperand},
	0x41: {Value: 0x41, Extended: true, Mnemonic: "bit 0,c", Operand: NoOperand},
	0x42: {Value: 0x42, Extended: true, Mnemonic: "bit 0,d", Operand: NoOperand},
	0x43: {Value: 0x43, Extended: true, Mnemonic: "bit 0,e", Operand: NoOperand},
	0x44: {Value: 0x44, Extended: true, Mnemonic: "bit 0,h", Operand: NoOperand},
	0x45: {Value: 0x45, Extended: true, Mnemonic: "bit 0,l", Operand: NoOperand},
	0x46: {Value: 0x46, Extended: true, Mnemonic: "bit 0,(hl)", Operand: NoOperand},
	0x47: {Value: 0x47, Extended: true, Mnemonic: "bit 0,a", Operand: NoOperand},
	0x48: {Value: 0x48, Extended: true, Mnemonic: "bit 1,b", Operand: NoOperand},
	0x49: {Value: 0x49, Extended: true, Mnemonic: "bit 1,c", Operand: NoOperand},
	0x4A: {Value: 0x4A, Extended: true, Mnemonic: "bit 1,d", Operand: NoOperand},
	0x4B: {Value: 0x4B, Extended: true, Mnemonic: "bit 1,e", Operand: NoOperand},
	0x4C: {Value: 0x4C, Extended: true, Mnemonic: "bit 1,h", Operand: NoOperand},
	0x4D: {Value: 0x4D, Extended: true, Mnemonic: "bit 1,l", Operand: NoOperand},
	0x4E: {Value: 0x4E, Extended: true, Mnemonic: "bit 1,(hl)", Operand: NoOperand},
	0x4F: {Value: 0x4F, Extended: true, Mnemonic: "bit 1,a", Operand: NoOperand},
	0x50: {Value: 0x50, Extended: true, Mnemonic: "bit 2,b", Operand: NoOperand},
	0x51: {Value: 0x51, Extended: true, Mnemonic: "bit 2,c", Operand: NoOperand},
	0x52: {Value: 0x52, Extended: true, Mnemonic: "bit 2,d", Operand: NoOperand},
	0x53: {Value: 0x53, Extended: true, Mnemonic: "bit 2,e", Operand: NoOperand},
	0x54: {Value: 0x54, Extended: true, Mnemonic: "bit 2,h", Operand: NoOperand},
	0x55: {Value: 0x55, Extended: true, Mnemonic: "bit 2,l", Operand: NoOperand},
	0x56: {Value: 0x56, Extended: true, Mnemonic: "bit 2,(hl)", Operand: NoOperand},
	0x57: {Value: 0x57, Extended: true, Mnemonic: "bit 2,a", Operand: NoOperand},
	0x58: {Value: 0x58, Extended: true, Mnemonic: "bit 3,b", Operand: NoOperand},
	0x59: {Value: 0x59, Extended: true, Mnemonic: "bit 3,c", Operand: NoOperand},
	0x5A: {Value: 0x5A, Extended: true, Mnemonic: "bit 3,d", Operand: NoOperand},
	0x5B: {Value: 0x5B, Extended: true, Mnemonic: "bit 3,e", Operand: NoOperand},
	0x5C: {Value: 0x5C, Extended: true, Mnemonic: "bit 3,h", Operand: NoOperand},
	0x5D: {Value: 0x5D, Extended: true, Mnemonic: "bit 3,l", Operand: NoOperand},
	0x5E: {Value: 0x5E, Extended: true, Mnemonic: "bit 3,(hl)", Operand: NoOperand},
	0x5F: {Value: 0x5F, Extended: true, Mnemonic: "bit 3,a", Operand: NoOperand},
	0x60: {Value: 0x60, Extended: true, Mnemonic: "bit 4,b", Operand: NoOperand},
	0x61: {Value: 0x61, Extended: true, Mnemonic: "bit 4,c", Operand: NoOperand},
	0x62: {Value: 0x62, Extended: true, Mnemonic: "bit 4,d", Operand: NoOperand},
	0x63: {Value: 0x63, Extended: true, Mnemonic: "bit 4,e", Operand: NoOperand},
	0x64: {Value: 0x64, Extended: true, Mnemonic: "bit 4,h", Operand: NoOperand},
	0x65: {Value: 0x65, Extended: true, Mnemonic: "bit 4,l", Operand: NoOperand},
	0x66: {Value: 0x66, Extended: true, Mnemonic: "bit 4,(hl)", Operand: NoOperand},
	0x67: {Value: 0x67, Extended: true, Mnemonic: "bit 4,a", Operand: NoOperand},
	0x68: {Value: 0x68, Extended: true, Mnemonic: "bit 5,b", Operand: NoOperand},
	0x69: {Value: 0x69, Extended: true, Mnemonic: "bit 5,c", Operand: NoOperand},
	0x6A: {Value: 0x6A, Extended: true, Mnemonic: "bit 5,d", Operand: NoOperand},
	0x6B: {Value: 0x6B, Extended: true, Mnemonic: "bit 5,e", Operand: NoOperand},
	0x6C: {Value: 0x6C, Extended: true, Mnemonic: "bit 5,h", Operand: NoOperand},
	0x6D: {Value: 0x6D, Extended: true, Mnemonic: "bit 5,l", Operand: NoOperand},
	0x6E: {Value: 0x6E, Extended: true, Mnemonic: "bit 5,(hl)", Operand: NoOperand},
	0x6F: {Value: 0x6F, Extended: true, Mnemonic: "bit 5,a", Operand: NoOperand},
	0x70: {Value: 0x70, Extended: true, Mnemonic: "bit 6,b", Operand: NoOperand},
	0x71: {Value: 0x71, Extended: true, Mnemonic: "bit 6,c", Operand: NoOperand},
	0x72: {Value: 0x72, Extended: true, Mnemonic: "bit 6,d", Operand: NoOperand},
	0x73: {Value: 0x73, Extended: true, Mnemonic: "bit 6,e", Operand: NoOperand},
	0x74: {Value: 0x74, Extended: true, Mnemonic: "bit 6,h", Operand: NoOperand},
	0x75: {Value: 0x75, Extended: true, Mnemonic: "bit 6,l", Operand: NoOperand},
	0x76: {Value: 0x76, Extended: true, Mnemonic: "bit 6,(hl)", Operand: NoOperand},
	0x77: {Value: 0x77, Extended: true, Mnemonic: "bit 6,a", Operand: NoOperand},
	0x78: {Value: 0x78, Extended: true, Mnemonic: "bit 7,b", Operand: NoOperand},
	0x79: {Value: 0x79, Extended: true, Mnemonic: "bit 7,c", Operand: NoOperand},
	0x7A: {Value: 0x7A, Extended: true, Mnemonic: "bit 7,d", Operand: NoOperand},
	0x7B: {Value: 0x7B, Extended: true, Mnemonic: "bit 7,e", Operand: NoOperand},
	0x7C: {Value: 0x7C, Extended: true, Mnemonic: "bit 7,h", Operand: NoOperand},
	0x7D: {Value: 0x7D, Extended: true, Mnemonic: "bit 7,l", Operand: NoOperand},
	0x7E: {Value: 0x7E, Extended: true, Mnemonic: "bit 7,(hl)", Operand: NoOperand},
	0x7F: {Value: 0x7F, Extended: true, Mnemonic: "bit 7,a", Operand: NoOperand},
	0x80: {Value: 0x80, Extended: true, Mnemonic: "res 0,b", Operand: NoOperand},
	0x81: {Value: 0x81, Extended: true, Mnemonic: "res 0,c", Operand: NoOperand},
	0x82: {Value: 0x82, Extended: true, Mnemonic: "res 0,d", Operand: NoOperand},
	0x83: {Value: 0x83, Extended: true, Mnemonic: "res 0,e", Operand: NoOperand},
	0x84: {Value: 0x84, Extended: true, Mnemonic: "res 0,h", Operand: NoOperand},
	0x85: {Value: 0x85, Extended: true, Mnemonic: "res 0,l", Operand: NoOperand},
	0x86: {Value: 0x86, Extended: true, Mnemonic: "res 0,(hl)", Operand: NoOperand},
	0x87: {Value: 0x87, Extended: true, Mnemonic: "res 0,a", Operand: NoOperand},
	0x88: {Value: 0x88, Extended: true, Mnemonic: "res 1,b", Operand: NoOperand},
	0x89: {Value: 0x89, Extended: true, Mnemonic: "res 1,c", Operand: NoOperand},
	0x8A: {Value: 0x8A, Extended: true, Mnemonic: "res 1,d", Operand: NoOperand},
	0x8B: {Value: 0x8B, Extended: true, Mnemonic: "res 1,e", Operand: NoOperand},
	0x8C: {Value: 0x8C, Extended: true, Mnemonic: "res 1,h", Operand: NoOperand},
	0x8D: {Value: 0x8D, Extended: true, Mnemonic: "res 1,l", Operand: NoOperand},
	0x8E: {Value: 0x8E, Extended: true, Mnemonic: "res 1,(hl)", Operand: NoOperand},
	0x8F: {Value: 0x8F, Extended: true, Mnemonic: "res 1,a", Operand: NoOperand},
	0x90: {Value: 0x90, Extended: true, Mnemonic: "res 2,b", Operand: NoOperand},
	0x91: {Value: 0x91, Extended: true, Mnemonic: "res 2,c", Operand: NoOperand},
	0x92: {Value: 0x92, Extended: true, Mnemonic: "res 2,d", Operand: NoOperand},
	0x93: {Value: 0x93, Extended: true, Mnemonic: "res 2,e", Operand: NoOperand},
	0x94: {Value: 0x94, Extended: true, Mnemonic: "res 2,h", Operand: NoOperand},
	0x95: {Value: 0x95, Extended: true, Mnemonic: "res 2,l", Operand: NoOperand},
	0x96: {Value: 0x96, Extended: true, Mnemonic: "res 2,(hl)", Operand: NoOperand},
	0x97: {Value: 0x97, Extended: true, Mnemonic: "res 2,a", Operand: NoOperand},
	0x98: {Value: 0x98, Extended: true, Mnemonic: "res 3,b", Operand: NoOperand},
	0x99: {Value: 0x99, Extended: true, Mnemonic: "res 3,c", Operand: NoOperand},
	0x9A: {Value: 0x9A, Extended: true, Mnemonic: "res 3,d", Operand: NoOperand},
	0x9B: {Value: 0x9B, Extended: true, Mnemonic: "res 3,e", Operand: NoOperand},
	0x9C: {Value: 0x9C, Extended: true, Mnemonic: "res 3,h", Operand: NoOperand},
	0x9D: {Value: 0x9D, Extended: true, Mnemonic: "res 3,l", Operand: NoOperand},
	0x9E: {Value: 0x9E, Extended: true, Mnemonic: "res 3,(hl)", Operand: NoOperand},
	0x9F: {Value: 0x9F, Extended: true, Mnemonic: "res 3,a", Operand: NoOperand},
	0xA0: {Value: 0xA0, Extended: true, Mnemonic: "res 4,b", Operand: NoOperand},
	0xA1: {Value: 0xA1, Extended: true, Mnemonic: "res 4,c", Operand: NoOperand},
	0xA2: {Value: 0xA2, Extended: true, Mnemonic: "res 4,d", Operand: NoOperand},
	0xA3: {Value: 0xA3, Extended: true, Mnemonic: "res 4,e", Operand: NoOperand},
	0xA4: {Value: 0xA4, Extended: true, Mnemonic: "res 4,h", Operand: NoOperand},
	0xA5: {Value: 0xA5, Extended: true, Mnemonic: "res 4,l", Operand: NoOperand},
	0xA6: {Value: 0xA6, Extended: true, Mnemonic: "res 4,(hl)", Operand: NoOperand},
	0xA7: {Value: 0xA7, Extended: true, Mnemonic: "res 4,a", Operand: NoOperand},
	0xA8: {Value: 0xA8, Extended: true, Mnemonic: "res 5,b", Operand: NoOperand},
	0xA9: {Value: 0xA9, Extended: true, Mnemonic: "res 5,c", Operand: NoOperand},
	0xAA: {Value: 0xAA, Extended: true, Mnemonic: "res 5,d", Operand: NoOperand},
	0xAB: {Value: 0xAB, Extended: true, Mnemonic: "res 5,e", Operand: NoOperand},
	0xAC: {Value: 0xAC, Extended: true, Mnemonic: "res 5,h", Operand: NoOperand},
	0xAD: {Value: 0xAD, Extended: true, Mnemonic: "res 5,l", Operand: NoOperand},
	0xAE: {Value: 0xAE, Extended: true, Mnemonic: "res 5,(hl)", Operand: NoOperand},
	0xAF: {Value: 0xAF, Extended: true, Mnemonic: "res 5,a", Operand: NoOperand},
	0xB0: {Value: 0xB0, Extended: true, Mnemonic: "res 6,b", Operand: NoOperand},
	0xB1: {Value: 0xB1, Extended: true, Mnemonic: "res 6,c", Operand: NoOperand},
	0xB2: {Value: 0xB2, Extended: true, Mnemonic: "res 6,d", Operand: NoOperand},
	0xB3: {Value: 0xB3, Extended: true, Mnemonic: "res 6,e", Operand: NoOperand},
	0xB4: {Value: 0xB4, Extended: true, Mnemonic: "res 6,h", Operand: NoOperand},
	0xB5: {Value: 0xB5, Extended: true, Mnemonic: "res 6,l", Operand: NoOperand},
	0xB6: {Value: 0xB6, Extended: true, Mnemonic: "res 6,(hl)", Operand: NoOperand},
	0xB7: {Value: 0xB7, Extended: true, Mnemonic: "res 6,a", Operand: NoOperand},
	0xB8: {Value: 0xB8, Extended: true, Mnemonic: "res 7,b", Operand: NoOperand},
	0xB9: {Value: 0xB9, Extended: true, Mnemonic: "res 7,c", Operand: NoOperand},
	0xBA: {Value: 0xBA, Extended: true, Mnemonic: "res 7,d", Operand: NoOperand},
	0xBB: {Value: 0xBB, Extended: true, Mnemonic: "res 7,e", Operand: NoOperand},
	0xBC: {Value: 0xBC, Extended: true, Mnemonic: "res 7,h", Operand: NoOperand},
	0xBD: {Value: 0xBD, Extended: true, Mnemonic: "res 7,l", Operand: NoOperand},
	0xBE: {Value: 0xBE, Extended: true, Mnemonic: "res 7,(hl)", Operand: NoOperand},
	0xBF: {Value: 0xBF, Extended: true, Mnemonic: "res 7,a", Operand: NoOperand},
	0xC0: {Value: 0xC0, Extended: true, Mnemonic: "set 0,b", Operand: NoOperand},
	0xC1: {Value: 0xC1, Extended: true, Mnemonic: "set 0,c", Operand: NoOperand},
	0xC2: {Value: 0xC2, Extended: true, Mnemonic: "set 0,d", Operand: NoOperand},
	0xC3: {Value: 0xC3, Extended: true, Mnemonic: "set 0,e", Operand: NoOperand},
	0xC4: {Value: 0xC4, Extended: true, Mnemonic: "set 0,h", Operand: NoOperand},
	0xC5: {Value: 0xC5, Extended: true, Mnemonic: "set 0,l", Operand: NoOperand},
	0xC6: {Value: 0xC6, Extended: true, Mnemonic: "set 0,(hl)", Operand: NoOperand},
	0xC7: {Value: 0xC7, Extended: true, Mnemonic: "set 0,a", Operand: NoOperand},
	0xC8: {Value: 0xC8, Extended: true, Mnemonic: "set 1,b", Operand: NoOperand},
	0xC9: {Value: 0xC9, Extended: true, Mnemonic: "set 1,c", Operand: NoOperand},
	0xCA: {Value: 0xCA, Extended: true, Mnemonic: "set 1,d", Operand: NoOperand},
	0xCB: {Value: 0xCB, Extended: true, Mnemonic: "set 1,e", Operand: NoOperand},
	0xCC: {Value: 0xCC, Extended: true, Mnemonic: "set 1,h", Operand: NoOperand},
	0xCD: {Value: 0xCD, Extended: true, Mnemonic: "set 1,l", Operand: NoOperand},
	0xCE: {Value: 0xCE, Extended: true, Mnemonic: "set 1,(hl)", Operand: NoOperand},
	0xCF: {Value: 0xCF, Extended: true, Mnemonic: "set 1,a", Operand: NoOperand},
	0xD0: {Value: 0xD0, Extended: true, Mnemonic: "set 2,b", Operand: NoOperand},
	0xD1: {Value: 0xD1, Extended: true, Mnemonic: "set 2,c", Operand: NoOperand},
	0xD2: {Value: 0xD2, Extended: true, Mnemonic: "set 2,d", Operand: NoOperand},
	0xD3: {Value: 0xD3, Extended: true, Mnemonic: "set 2,e", Operand: NoOperand},
	0xD4: {Value: 0xD4, Extended: true, Mnemonic: "set 2,h", Operand: NoOperand},
	0xD5: {Value: 0xD5, Extended: true, Mnemonic: "set 2,l", Operand: NoOperand},
	0xD6: {Value: 0xD6, Extended: true, Mnemonic: "set 2,(hl)", Operand: NoOperand},
	0xD7: {Value: 0xD7, Extended: true, Mnemonic: "set 2,a", Operand: NoOperand},
	0xD8: {Value: 0xD8, Extended: true, Mnemonic: "set 3,b", Operand: NoOperand},
	0xD9: {Value: 0xD9, Extended: true, Mnemonic: "set 3,c", Operand: NoOperand},
	0xDA: {Value: 0xDA, Extended: true, Mnemonic: "set 3,d", Operand: NoOperand},
	0xDB: {Value: 0xDB, Extended: true, Mnemonic: "set 3,e", Operand: NoOperand},
	0xDC: {Value: 0xDC, Extended: true, Mnemonic: "set 3,h", Operand: NoOperand},
	0xDD: {Value: 0xDD, Extended: true, Mnemonic: "set 3,l", Operand: NoOperand},
	0xDE: {Value: 0xDE, Extended: true, Mnemonic: "set 3,(hl)", Operand: NoOperand},
	0xDF: {Value: 0xDF, Extended: true, Mnemonic: "set 3,a", Operand: NoOperand},
	0xE0: {Value: 0xE0, Extended: true, Mnemonic: "set 4,b", Operand: NoOperand},
	0xE1: {Value: 0xE1, Extended: true, Mnemonic: "set 4,c", Operand: NoOperand},
	0xE2: {Value: 0xE2, Extended: true, Mnemonic: "set 4,d", Operand: NoOperand},
	0xE3: {Value: 0xE3, Extended: true, Mnemonic: "set 4,e", Operand: NoOperand},
	0xE4: {Value: 0xE4, Extended: true, Mnemonic: "set 4,h", Operand: NoOperand},
	0xE5: {Value: 0xE5, Extended: true, Mnemonic: "set 4,l", Operand: NoOperand},
	0xE6: {Value: 0xE6, Extended: true, Mnemonic: "set 4,(hl)", Operand: NoOperand},
	0xE7: {Value: 0xE7, Extended: true, Mnemonic: "set 4,a", Operand: NoOperand},
	0xE8: {Value: 0xE8, Extended: true, Mnemonic: "set 5,b", Operand: NoOperand},
	0xE9: {Value: 0xE9, Extended: true, Mnemonic: "set 5,c", Operand: NoOperand},
	0xEA: {Value: 0xEA, Extended: true, Mnemonic: "set 5,d", Operand: NoOperand},
	0xEB: {Value: 0xEB, Extended: true, Mnemonic: "set 5,e", Operand: NoOperand},
	0xEC: {Value: 0xEC, Extended: true, Mnemonic: "set 5,h", Operand: NoOperand},
	0xED: {Value: 0xED, Extended: true, Mnemonic: "set 5,l", Operand: NoOperand},
	0xEE: {Value: 0xEE, Extended: true, Mnemonic: "set 5,(hl)", Operand: NoOperand},
	0xEF: {Value: 0xEF, Extended: true, Mnemonic: "set 5,a", Operand: NoOperand},
	0xF0: {Value: 0xF0, Extended: true, Mnemonic: "set 6,b", Operand: NoOperand},
	0xF1: {Value: 0xF1, Extended: true, Mnemonic: "set 6,c", Operand: NoOperand},
	0xF2: {Value: 0xF2, Extended: true, Mnemonic: "set 6,d", Operand: NoOperand},
	0xF3: {Value: 0xF3, Extended: true, Mnemonic: "set 6,e", Operand: NoOperand},
	0xF4: {Value: 0xF4, Extended: true, Mnemonic: "set 6,h", Operand: NoOperand},
	0xF5: {Value: 0xF5, Extended: true, Mnemonic: "set 6,l", Operand: NoOperand},
	0xF6: {Value: 0xF6, Extended: true, Mnemonic: "set 6,(hl)", Operand: NoOperand},
	0xF7: {Value: 0xF7, Extended: true, Mnemonic: "set 6,a", Operand: NoOperand},
	0xF8: {Value: 0xF8, Extended: true, Mnemonic: "set 7,b", Operand: NoOperand},
	0xF9: {Value: 0xF9, Extended: true, Mnemonic: "set 7,c", Operand: NoOperand},
	0xFA: {Value: 0xFA, Extended: true, Mnemonic: "set 7,d", Operand: NoOperand},
	0xFB: {Value: 0xFB, Extended: true, Mnemonic: "set 7,e", Operand: NoOperand},
	0xFC: {Value: 0xFC, Extended: true, Mnemonic: "set 7,h", Operand: NoOperand},
	0xFD: {Value: 0xFD, Extended: true, Mnemonic: "set 7,l", Operand: NoOperand},
	0xFE: {Value: 0xFE, Extended: true, Mnemonic: "set 7,(hl)", Operand: NoOperand},
	0xFF: {Value: 0xFF, Extended: true, Mnemonic: "set 7,a", Operand: NoOperand},
}
