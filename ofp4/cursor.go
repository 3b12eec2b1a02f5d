package ofp4

import (
	"encoding/binary"
)

func align8(num int) int {
	return (num + 7) / 8 * 8
}

// Cursor reads big-endian fields from a borrowed byte region.
// Reads never go past the region; a read that would returns an
// Availability error naming the record being decoded.
type Cursor struct {
	data []byte
	off  int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Len is the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.data) - c.off
}

// Offset is the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

func (c *Cursor) take(n int, rec Record) ([]byte, error) {
	if n < 0 || c.Len() < n {
		return nil, errShort(rec)
	}
	p := c.data[c.off : c.off+n]
	c.off += n
	return p, nil
}

func (c *Cursor) Uint8(rec Record) (uint8, error) {
	p, err := c.take(1, rec)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

func (c *Cursor) Uint16(rec Record) (uint16, error) {
	p, err := c.take(2, rec)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

func (c *Cursor) Uint32(rec Record) (uint32, error) {
	p, err := c.take(4, rec)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(p), nil
}

func (c *Cursor) Uint64(rec Record) (uint64, error) {
	p, err := c.take(8, rec)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(p), nil
}

// Bytes returns a copy of the next n bytes.
func (c *Cursor) Bytes(n int, rec Record) ([]byte, error) {
	p, err := c.take(n, rec)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return append([]byte(nil), p...), nil
}

// Skip consumes padding without looking at it.
func (c *Cursor) Skip(n int, rec Record) error {
	_, err := c.take(n, rec)
	return err
}

// Sub carves the next n bytes into a cursor of their own and advances past them.
func (c *Cursor) Sub(n int, rec Record) (*Cursor, error) {
	p, err := c.take(n, rec)
	if err != nil {
		return nil, err
	}
	return &Cursor{data: p}, nil
}

// Rest copies whatever remains, nil when nothing does.
func (c *Cursor) Rest() []byte {
	p, _ := c.Bytes(c.Len(), 0)
	return p
}

// Done fails with Excess when bytes remain unread.
func (c *Cursor) Done(rec Record) error {
	if c.Len() != 0 {
		return errExcess(rec)
	}
	return nil
}

// peek16 looks at a 16 bit field at offset ahead without consuming it.
func (c *Cursor) peek16(ahead int, rec Record) (uint16, error) {
	if c.Len() < ahead+2 {
		return 0, errShort(rec)
	}
	return binary.BigEndian.Uint16(c.data[c.off+ahead:]), nil
}

// writer mirrors Cursor for encoding; it appends, and the envelope
// checks the result against the precomputed length.
type writer struct {
	buf []byte
}

func newWriter(capacity int) *writer {
	return &writer{buf: make([]byte, 0, capacity)}
}

func (w *writer) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *writer) u16(v uint16) {
	w.buf = append(w.buf, byte(v>>8), byte(v))
}

func (w *writer) u32(v uint32) {
	w.buf = append(w.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func (w *writer) u64(v uint64) {
	w.u32(uint32(v >> 32))
	w.u32(uint32(v))
}

func (w *writer) bytes(p []byte) {
	w.buf = append(w.buf, p...)
}

func (w *writer) pad(n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}

// str writes s zero-filled to a fixed width.
func (w *writer) str(s string, width int) {
	p := make([]byte, width)
	copy(p, s)
	w.buf = append(w.buf, p...)
}

func (w *writer) len() int {
	return len(w.buf)
}

// cstr decodes a zero-terminated fixed-width string.
func cstr(p []byte) string {
	for i, b := range p {
		if b == 0 {
			return string(p[:i])
		}
	}
	return string(p)
}
