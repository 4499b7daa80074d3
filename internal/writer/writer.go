// Package writer implements the text output of disassembly listings.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/gbextract/internal/program"
	"github.com/retroenv/gbextract/internal/symbols"
)

const (
	codeColumn     = 27
	maxBytesInline = 4 // longer lines are shortened with a + marker

	highBankPrefix = 0x10 // banks with two hex digits
)

// Options of the writer.
type Options struct {
	References bool // emit jump cross reference comments
}

// Writer writes listings in the classic ROMbank:address column format.
type Writer struct {
	options Options
	writer  io.Writer
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write outputs all lines of the listing.
func (w Writer) Write(listing *program.Listing) error {
	var table *symbols.Table
	if w.options.References {
		table = symbols.NewFromTargets(listing.Targets)
	}

	previousForcedBlank := true
	for _, line := range listing.Lines {
		if table != nil && table.Has(line.Address) {
			table.MarkUsed(line.Address)
			if err := w.writeReferences(table.At(line.Address), previousForcedBlank); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w.writer, FormatLine(listing.Bank, line)); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}

		previousForcedBlank = line.IsType(program.ForceBlank)
		if previousForcedBlank {
			if _, err := fmt.Fprintln(w.writer); err != nil {
				return fmt.Errorf("writing empty line: %w", err)
			}
		}
	}
	return nil
}

func (w Writer) writeReferences(targets []program.JumpTarget, previousForcedBlank bool) error {
	if !previousForcedBlank {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing empty line: %w", err)
		}
	}

	sources := make([]string, 0, len(targets))
	for _, target := range targets {
		sources = append(sources, fmt.Sprintf("%04X (%s)", target.From, target.Kind))
	}

	if _, err := fmt.Fprintf(w.writer, "; Jump here from: %s\n", strings.Join(sources, ", ")); err != nil {
		return fmt.Errorf("writing jump reference comment: %w", err)
	}
	return nil
}

// FormatLine returns the text of a single listing line without newline.
func FormatLine(bank int, line *program.Line) string {
	buf := &strings.Builder{}
	if bank < highBankPrefix {
		_, _ = fmt.Fprintf(buf, "ROM%X:%04X ", bank, line.Address)
	} else {
		_, _ = fmt.Fprintf(buf, "RO%X:%04X ", bank, line.Address)
	}

	for i, b := range line.Raw[:min(len(line.Raw), maxBytesInline)] {
		if i > 0 {
			buf.WriteByte(' ')
		}
		_, _ = fmt.Fprintf(buf, "%02X", b)
	}
	if len(line.Raw) > maxBytesInline {
		buf.WriteByte('+')
	}

	padding := codeColumn - buf.Len()
	if padding < 1 {
		padding = 1
	}
	buf.WriteString(strings.Repeat(" ", padding))
	buf.WriteString(line.Code)
	return buf.String()
}
