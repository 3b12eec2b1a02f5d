package oxm

// Header is the 32 bit oxm header:
// class(16) field(7) hasmask(1) length(8).
type Header uint32

func NewHeader(class uint16, field uint8, hasMask bool, length int) Header {
	hdr := uint32(class)<<16 | uint32(field&0x7f)<<9 | uint32(length&0xff)
	if hasMask {
		hdr |= 1 << 8
	}
	return Header(hdr)
}

func (self Header) Class() uint16 {
	return uint16(self >> 16)
}

func (self Header) Field() uint8 {
	return uint8(self>>9) & 0x7f
}

// Type is class and field, without hasmask and length.
func (self Header) Type() uint32 {
	return uint32(self) >> 9
}

func (self Header) HasMask() bool {
	return self&0x100 != 0
}

// Length is the payload length, not including the header itself.
func (self Header) Length() int {
	return int(self & 0xff)
}
