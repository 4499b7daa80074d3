// Package gbz80 provides the instruction set of the Game Boy SM83 CPU.
//
// # Architecture Overview
//
// The SM83 is a Z80 derivative with a reduced register set and without the
// IX/IY index registers. Instructions are one byte long, optionally followed
// by an operand:
//   - no operand
//   - an unsigned 8-bit immediate
//   - a signed 8-bit displacement relative to the next instruction
//   - a little-endian 16-bit immediate
//
// The prefix byte 0xCB selects a second table of 256 bit manipulation
// instructions that never take an operand.
//
// # Memory Layout
//
// The CPU sees bank 0 of the cartridge at 0x0000-0x3FFF and the switchable
// bank at 0x4000-0x7FFF. Addresses decoded from operands are therefore in-bank
// addresses and need the bank context to be resolved to a ROM offset.
//
// # Undefined Opcodes
//
// Eleven encodings of the base table are not implemented by the CPU
// (0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD). Decoding
// them yields an instruction marked as undefined instead of an error.
package gbz80
