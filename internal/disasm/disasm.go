// Package disasm implements a linear disassembler for Game Boy ROM banks.
package disasm

import (
	"errors"
	"fmt"

	"github.com/retroenv/gbextract/internal/arch/gbz80"
	"github.com/retroenv/gbextract/internal/program"
	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/gbextract/internal/symbols"
	"github.com/retroenv/retrogolib/log"
)

// cartridge header area that contains data instead of code.
const (
	headerStart    = 0x0104 // nintendo logo
	headerFlags    = 0x0144 // licensee code
	headerChecksum = 0x014E // global checksum word
	headerEnd      = 0x0150

	opcodeRet = 0xC9
)

// ErrNoBanks is returned when the image is empty.
var ErrNoBanks = errors.New("rom image contains no banks")

// Disasm implements a disassembler.
type Disasm struct {
	img    *rom.Image
	logger *log.Logger
}

// New creates a new disassembler for the ROM image.
func New(img *rom.Image, logger *log.Logger) *Disasm {
	return &Disasm{
		img:    img,
		logger: logger,
	}
}

// Bank disassembles a single bank from its first to its last byte. The
// result contains every byte of the bank exactly once.
func (dis *Disasm) Bank(bank int) (*program.Listing, error) {
	data, err := dis.img.Bank(bank)
	if err != nil {
		return nil, fmt.Errorf("disassembling bank %d: %w", bank, err)
	}

	start := bank * rom.BankSize
	end := start + len(data)
	listing := program.New(bank)

	for pc := start; pc < end; {
		var line *program.Line
		if pc >= headerStart && pc < headerEnd {
			line = dis.headerLine(pc, end)
		} else {
			var stop bool
			line, stop = dis.codeLine(listing, pc, end)
			if stop {
				listing.Lines = append(listing.Lines, line)
				break
			}
		}

		listing.Lines = append(listing.Lines, line)
		pc += len(line.Raw)
	}

	dis.logUnresolved(listing)
	return listing, nil
}

// codeLine decodes the instruction at pc. The returned flag signals that
// the image ended inside of the instruction and the pass has to stop.
func (dis *Disasm) codeLine(listing *program.Listing, pc, end int) (*program.Line, bool) {
	ins, err := gbz80.Decode(dis.img, pc)
	line := &program.Line{
		Offset:  pc,
		Address: rom.Relativize(pc),
		Raw:     ins.Raw,
		Code:    ins.Text,
	}

	if err != nil {
		dis.logger.Warn("Instruction truncated by end of rom",
			log.Hex("offset", pc),
			log.Err(err))
		raw, _ := dis.img.Slice(pc, end-pc)
		line.Raw = raw
		line.Code = gbz80.UndefinedText
		line.SetType(program.Undefined)
		return line, true
	}

	if pc+ins.Len() > end {
		dis.logger.Debug("Instruction crosses bank end",
			log.Hex("offset", pc),
			log.String("instruction", ins.Text))
		raw, _ := dis.img.Slice(pc, end-pc)
		line.Raw = raw
		line.Code = dataDirective(raw)
		line.SetType(program.Undefined)
		return line, false
	}

	if ins.Undefined() {
		line.SetType(program.Undefined)
		return line, false
	}

	line.SetType(program.CodeLine)
	if !ins.Opcode.Extended && ins.Opcode.Value == opcodeRet {
		line.SetType(program.ForceBlank)
	}

	if dest, ok := ins.Destination(); ok {
		listing.Targets = append(listing.Targets, program.JumpTarget{
			From: ins.Address(),
			To:   dest,
			Kind: ins.Opcode.Jump,
		})
	}
	return line, false
}

// headerLine returns a data line for the cartridge header at pc.
func (dis *Disasm) headerLine(pc, end int) *program.Line {
	var size int
	switch {
	case pc < headerFlags:
		size = min(16, headerFlags-pc)
	case pc < headerFlags+2:
		size = headerFlags + 2 - pc
	case pc < headerChecksum:
		size = 1
	default:
		size = headerEnd - pc
	}
	size = min(size, end-pc)

	raw, _ := dis.img.Slice(pc, size) // size is clipped to the bank end

	line := &program.Line{
		Offset:  pc,
		Address: rom.Relativize(pc),
		Raw:     raw,
		Code:    dataDirective(raw),
	}
	line.SetType(program.HeaderData)
	return line
}

func dataDirective(data []byte) string {
	buf := make([]byte, 0, 3+3*len(data))
	buf = append(buf, "db "...)
	for i, b := range data {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = fmt.Appendf(buf, "%02X", b)
	}
	return string(buf)
}

// logUnresolved logs jump destinations that do not start a line of the
// listing, these point into other banks or into the middle of an instruction.
func (dis *Disasm) logUnresolved(listing *program.Listing) {
	table := symbols.NewFromTargets(listing.Targets)
	for _, line := range listing.Lines {
		if table.Has(line.Address) {
			table.MarkUsed(line.Address)
		}
	}

	unresolved := table.Unused()
	dis.logger.Debug("Bank disassembled",
		log.Int("bank", listing.Bank),
		log.Int("lines", len(listing.Lines)),
		log.Int("destinations", table.Len()),
		log.Int("unresolved", len(unresolved)))
}

// All disassembles every bank of the image.
func (dis *Disasm) All() ([]*program.Listing, error) {
	banks := dis.img.Banks()
	if banks == 0 {
		return nil, ErrNoBanks
	}

	listings := make([]*program.Listing, 0, banks)
	for bank := range banks {
		listing, err := dis.Bank(bank)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}
