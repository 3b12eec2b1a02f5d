package ofp4

import (
	"fmt"
)

// Family groups the causes a codec operation may fail with.
type Family uint8

const (
	// Availability means the region ran out of bytes before Record was decoded.
	Availability Family = iota + 1
	// Excess means bytes remained in a bounded region after decoding.
	Excess
	// Semantic means a discriminant or field value is not legal for
	// OpenFlow 1.3.
	Semantic
)

func (self Family) String() string {
	switch self {
	case Availability:
		return "short"
	case Excess:
		return "excess"
	case Semantic:
		return "bad"
	}
	return "?"
}

// Error is the result of a failed decode, validate or encode.
// Codec functions return it unwrapped, so callers may type-assert.
type Error struct {
	Family Family
	Record Record
	Value  uint64 // offending value, Semantic only
	Detail string
}

func (self *Error) Error() string {
	var s string
	switch self.Family {
	case Semantic:
		s = fmt.Sprintf("ofp4: bad %v 0x%x", self.Record, self.Value)
	case Excess:
		s = fmt.Sprintf("ofp4: excess bytes in %v", self.Record)
	default:
		s = fmt.Sprintf("ofp4: short %v", self.Record)
	}
	if self.Detail != "" {
		s += ": " + self.Detail
	}
	return s
}

func errShort(rec Record) error {
	return &Error{Family: Availability, Record: rec}
}

func errExcess(rec Record) error {
	return &Error{Family: Excess, Record: rec}
}

func errBad(rec Record, value uint64) error {
	return &Error{Family: Semantic, Record: rec, Value: value}
}

func errBadf(rec Record, value uint64, format string, args ...interface{}) error {
	return &Error{Family: Semantic, Record: rec, Value: value, Detail: fmt.Sprintf(format, args...)}
}

func is(err error, family Family, rec Record) bool {
	if e, ok := err.(*Error); ok {
		return e.Family == family && e.Record == rec
	}
	return false
}

// IsShort reports whether err is an Availability failure of rec.
func IsShort(err error, rec Record) bool { return is(err, Availability, rec) }

// IsExcess reports whether err is an Excess failure of rec.
func IsExcess(err error, rec Record) bool { return is(err, Excess, rec) }

// IsBad reports whether err is a Semantic failure of rec.
func IsBad(err error, rec Record) bool { return is(err, Semantic, rec) }
