// Package rom provides bounds checked access to a Game Boy cartridge image
// using bank relative addressing.
package rom

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// BankSize is the size of a switchable ROM bank.
const BankSize = 0x4000

// ErrAddressOutOfRange is matched by every error returned for reads outside the image.
var ErrAddressOutOfRange = errors.New("address out of range")

// RangeError describes a read that does not fit into the ROM image.
type RangeError struct {
	Offset int
	Length int
	Size   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("reading %d byte(s) at offset 0x%06x exceeds rom size 0x%06x",
		e.Length, e.Offset, e.Size)
}

// Is reports whether the target is ErrAddressOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrAddressOutOfRange
}

// Image is an immutable cartridge image.
type Image struct {
	data []byte
}

// New returns an image backed by the given data. The data must not be
// modified after the call.
func New(data []byte) *Image {
	return &Image{data: data}
}

// Len returns the size of the image in bytes.
func (i *Image) Len() int {
	return len(i.data)
}

// Banks returns the number of banks, counting a trailing partial bank.
func (i *Image) Banks() int {
	return (len(i.data) + BankSize - 1) / BankSize
}

// Contains returns whether length bytes starting at offset are inside the image.
func (i *Image) Contains(offset, length int) bool {
	return offset >= 0 && length >= 0 && offset+length <= len(i.data)
}

func (i *Image) check(offset, length int) error {
	if i.Contains(offset, length) {
		return nil
	}
	return &RangeError{Offset: offset, Length: length, Size: len(i.data)}
}

// U8 returns the byte at the absolute offset.
func (i *Image) U8(offset int) (byte, error) {
	if err := i.check(offset, 1); err != nil {
		return 0, err
	}
	return i.data[offset], nil
}

// U16 returns the little-endian word at the absolute offset.
func (i *Image) U16(offset int) (uint16, error) {
	if err := i.check(offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(i.data[offset:]), nil
}

// Slice returns length bytes starting at offset. The returned slice shares
// the image memory and must be treated as read-only.
func (i *Image) Slice(offset, length int) ([]byte, error) {
	if err := i.check(offset, length); err != nil {
		return nil, err
	}
	return i.data[offset : offset+length : offset+length], nil
}

// Bank returns the content of the given bank, shortened if the image ends
// inside of it.
func (i *Image) Bank(bank int) ([]byte, error) {
	start := bank * BankSize
	if bank < 0 || start >= len(i.data) {
		return nil, &RangeError{Offset: start, Length: BankSize, Size: len(i.data)}
	}
	end := min(start+BankSize, len(i.data))
	return i.data[start:end:end], nil
}

// Pointer reads the in-bank address stored at the absolute offset and resolves
// it in the given bank.
func (i *Image) Pointer(bank int, offset int) (int, error) {
	addr, err := i.U16(offset)
	if err != nil {
		return 0, err
	}
	return Resolve(bank, addr), nil
}

// Resolve maps an in-bank address to an absolute offset. Addresses below
// 0x4000 always refer to bank 0, independent of the passed bank.
func Resolve(bank int, addr uint16) int {
	if addr < BankSize {
		return int(addr)
	}
	return bank*BankSize + int(addr) - BankSize
}

// Relativize maps an absolute offset back to the address that the CPU sees
// when the containing bank is switched in.
func Relativize(offset int) uint16 {
	if offset < BankSize {
		return uint16(offset)
	}
	return uint16(offset%BankSize + BankSize)
}

// BankOf returns the bank that contains the absolute offset.
func BankOf(offset int) int {
	return offset / BankSize
}

// Address is a bank and in-bank address pair.
type Address struct {
	Bank int
	Addr uint16
}

// Offset returns the absolute offset of the address.
func (a Address) Offset() int {
	return Resolve(a.Bank, a.Addr)
}

// Add returns the address advanced by n bytes inside the same bank.
func (a Address) Add(n int) Address {
	return Address{Bank: a.Bank, Addr: a.Addr + uint16(n)}
}

func (a Address) String() string {
	return fmt.Sprintf("%02X:%04X", a.Bank, a.Addr)
}
