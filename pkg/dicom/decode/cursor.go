package decode

import (
	"encoding/binary"

	"github.com/dicomscan/dicomscan/pkg/dicom/dicomerr"
)

// cursor is a byte slice paired with a mutable read offset. One cursor is
// shared by the decode of a whole dataset, including every nested sequence
// item and pixel-data fragment: nested calls read from the same offset and
// bound their loops by an end offset on it rather than narrowing the slice.
// Reads are checked against the end of the whole slice, not against an
// item's end.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) remaining() int { return len(c.data) - c.off }

func (c *cursor) need(n int) error {
	if c.remaining() < n {
		return dicomerr.AtOffset(dicomerr.ErrTruncatedInput, c.off)
	}
	return nil
}

func (c *cursor) u16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.data[c.off:])
	c.off += 2
	return v, nil
}

func (c *cursor) u32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.data[c.off:])
	c.off += 4
	return v, nil
}

func (c *cursor) bytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.off += n
	return nil
}

// padIfOdd consumes one trailing pad byte if the cursor sits at an odd offset.
func (c *cursor) padIfOdd() {
	if c.off%2 == 1 && c.off < len(c.data) {
		c.off++
	}
}
