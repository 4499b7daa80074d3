package rom

// Reader deserializes little-endian fields from an image. The first read
// error is kept and all following reads return zero values, which allows
// decoding a structure field by field and checking the error once.
type Reader struct {
	img    *Image
	offset int
	err    error
}

// NewReader returns a reader positioned at the absolute offset.
func NewReader(img *Image, offset int) *Reader {
	return &Reader{
		img:    img,
		offset: offset,
	}
}

// Offset returns the current absolute offset.
func (r *Reader) Offset() int {
	return r.offset
}

// Seek moves the reader to the absolute offset.
func (r *Reader) Seek(offset int) {
	r.offset = offset
}

// Skip advances the reader by n bytes.
func (r *Reader) Skip(n int) {
	r.offset += n
}

// Err returns the first error that occurred while reading.
func (r *Reader) Err() error {
	return r.err
}

// U8 reads a byte.
func (r *Reader) U8() byte {
	if r.err != nil {
		return 0
	}
	b, err := r.img.U8(r.offset)
	r.err = err
	r.offset++
	return b
}

// I8 reads a signed byte.
func (r *Reader) I8() int8 {
	return int8(r.U8())
}

// U16 reads a little-endian word.
func (r *Reader) U16() uint16 {
	if r.err != nil {
		return 0
	}
	w, err := r.img.U16(r.offset)
	r.err = err
	r.offset += 2
	return w
}

// Bytes reads n bytes into a new slice.
func (r *Reader) Bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	b, err := r.img.Slice(r.offset, n)
	if err != nil {
		r.err = err
		return nil
	}
	r.offset += n
	return append([]byte(nil), b...)
}
