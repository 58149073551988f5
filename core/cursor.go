package core

import (
	"fmt"
	"io"
)

// Mark is a saved cursor position that can be restored with Reset.
type Mark int64

// Cursor is a byte-addressable input stream. ReadByte returns io.EOF at the
// end of input without advancing. Skip with a negative offset moves backwards,
// which the scanner uses to push back a single over-read byte.
type Cursor interface {
	io.ByteReader
	Offset() int64
	Seek(offset int64) error
	Skip(n int64) error
	Mark() Mark
	Reset(m Mark) error
}

// ByteCursor is a Cursor over an in-memory byte slice.
type ByteCursor struct {
	data []byte
	pos  int64
}

// NewByteCursor creates a cursor positioned at the start of data.
func NewByteCursor(data []byte) *ByteCursor {
	return &ByteCursor{data: data}
}

// NewCursor reads all of r into memory and returns a cursor over it.
func NewCursor(r io.Reader) (*ByteCursor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	return NewByteCursor(data), nil
}

// ReadByte returns the next byte, or io.EOF when the input is exhausted.
func (c *ByteCursor) ReadByte() (byte, error) {
	if c.pos >= int64(len(c.data)) {
		return 0, io.EOF
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// Offset returns the position of the next byte to be read.
func (c *ByteCursor) Offset() int64 {
	return c.pos
}

// Len returns the total size of the input.
func (c *ByteCursor) Len() int64 {
	return int64(len(c.data))
}

// Seek moves to an absolute position. Seeking to Len() is allowed and leaves
// the cursor at end of input.
func (c *ByteCursor) Seek(offset int64) error {
	if offset < 0 || offset > int64(len(c.data)) {
		return fmt.Errorf("seek to %d out of range [0, %d]", offset, len(c.data))
	}
	c.pos = offset
	return nil
}

// Skip moves the cursor by n bytes relative to its current position.
func (c *ByteCursor) Skip(n int64) error {
	return c.Seek(c.pos + n)
}

// Mark records the current position.
func (c *ByteCursor) Mark() Mark {
	return Mark(c.pos)
}

// Reset returns the cursor to a position recorded by Mark.
func (c *ByteCursor) Reset(m Mark) error {
	return c.Seek(int64(m))
}
