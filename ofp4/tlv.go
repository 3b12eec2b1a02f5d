package ofp4

import (
	"reflect"
)

// tlv is implemented by every alternative of a family framed as
// type(16) length(16) body. The alternative knows its own type, so
// a value can never carry a type that disagrees with its layout.
type tlv interface {
	Type() uint16
	// Len is the declared length. Families whose length excludes
	// trailing padding occupy align8(Len()) bytes on the wire.
	Len() int
	Validate() error
	record() Record
	encodeBody(w *writer)
	decodeBody(c *Cursor) error
}

func wireLen(v tlv, padded bool) int {
	if padded {
		return align8(v.Len())
	}
	return v.Len()
}

func encodeTLV(w *writer, v tlv, padded bool) {
	w.u16(v.Type())
	w.u16(uint16(v.Len()))
	v.encodeBody(w)
	if padded {
		w.pad(align8(v.Len()) - v.Len())
	}
}

// decodeTLV reads one element. mk maps the type to an empty
// alternative, or fails with the family's Semantic cause.
func decodeTLV[T tlv](c *Cursor, rec Record, padded bool, mk func(uint16) (T, error)) (T, error) {
	var zero T
	typ, err := c.peek16(0, rec)
	if err != nil {
		return zero, err
	}
	length, err := c.peek16(2, rec)
	if err != nil {
		return zero, err
	}
	v, err := mk(typ)
	if err != nil {
		return zero, err
	}
	if length < 4 {
		return zero, errShort(v.record())
	}
	size := int(length)
	if padded {
		size = align8(size)
	}
	elem, err := c.Sub(size, v.record())
	if err != nil {
		return zero, err
	}
	elem.Skip(4, v.record())
	body, _ := elem.Sub(int(length)-4, v.record())
	if err := v.decodeBody(body); err != nil {
		return zero, err
	}
	if err := body.Done(v.record()); err != nil {
		return zero, err
	}
	return v, nil
}

// decodeSeq decodes elements until the region is exhausted. A remainder
// too small to hold even an element header is the region's Excess.
func decodeSeq[T any](c *Cursor, rec Record, min int, one func(*Cursor) (T, error)) ([]T, error) {
	var seq []T
	for c.Len() > 0 {
		if c.Len() < min {
			return nil, errExcess(rec)
		}
		v, err := one(c)
		if err != nil {
			return nil, err
		}
		seq = append(seq, v)
	}
	return seq, nil
}

type sized interface {
	Len() int
}

func seqLen[T sized](seq []T) int {
	n := 0
	for _, v := range seq {
		n += v.Len()
	}
	return n
}

func paddedSeqLen[T tlv](seq []T) int {
	n := 0
	for _, v := range seq {
		n += align8(v.Len())
	}
	return n
}

type validator interface {
	Validate() error
}

// isNil reports an interface holding nothing or a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// validateSeq validates each element; a nil element is reported as
// a bad discriminant of the family.
func validateSeq[T validator](seq []T, rec Record) error {
	for _, v := range seq {
		if isNil(v) {
			return errBadf(rec, 0, "nil element")
		}
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// carve cuts out a record whose own 16 bit length sits at offset at,
// rejecting a length below the record's fixed part.
func carve(c *Cursor, rec Record, at, min int) (*Cursor, error) {
	n, err := c.peek16(at, rec)
	if err != nil {
		return nil, err
	}
	if int(n) < min {
		return nil, errShort(rec)
	}
	return c.Sub(int(n), rec)
}
