package ofp4

// HelloElem is one alternative of ofp_hello_elem_header. Elements are
// padded to 8 bytes and the length excludes the padding.
type HelloElem interface {
	tlv
	isHelloElem()
}

// HelloElemVersionBitmap lists the versions the sender supports;
// bit n of Bitmaps[i] stands for version 32*i+n.
type HelloElemVersionBitmap struct {
	Bitmaps []uint32
}

func (obj *HelloElemVersionBitmap) Type() uint16   { return OFPHET_VERSIONBITMAP }
func (obj *HelloElemVersionBitmap) isHelloElem()   {}
func (obj *HelloElemVersionBitmap) record() Record { return RecordHelloElemVersionBitmap }

func (obj *HelloElemVersionBitmap) Len() int {
	return 4 + 4*len(obj.Bitmaps)
}

// Validate rejects a bitmap that announces no version at all.
func (obj *HelloElemVersionBitmap) Validate() error {
	for _, b := range obj.Bitmaps {
		if b != 0 {
			return nil
		}
	}
	return errBadf(RecordVersionBitmap, 0, "no version announced")
}

// Supports reports whether the bitmap announces version.
func (obj *HelloElemVersionBitmap) Supports(version uint8) bool {
	i := int(version / 32)
	if i >= len(obj.Bitmaps) {
		return false
	}
	return obj.Bitmaps[i]&(1<<(version%32)) != 0
}

func (obj *HelloElemVersionBitmap) encodeBody(w *writer) {
	for _, b := range obj.Bitmaps {
		w.u32(b)
	}
}

func (obj *HelloElemVersionBitmap) decodeBody(c *Cursor) (err error) {
	obj.Bitmaps, err = decodeSeq(c, RecordVersionBitmapList, 4, func(c *Cursor) (uint32, error) {
		return c.Uint32(RecordHelloElemVersionBitmap)
	})
	return
}

func newHelloElem(typ uint16) (HelloElem, error) {
	if typ == OFPHET_VERSIONBITMAP {
		return new(HelloElemVersionBitmap), nil
	}
	return nil, errBad(RecordHelloElemType, uint64(typ))
}

func decodeHelloElem(c *Cursor) (HelloElem, error) {
	return decodeTLV(c, RecordHelloElem, true, newHelloElem)
}

// Hello is the OFPT_HELLO body.
type Hello struct {
	Elements []HelloElem
}

func (obj *Hello) Type() uint8 { return OFPT_HELLO }

func (obj *Hello) Len() int {
	return paddedSeqLen(obj.Elements)
}

func (obj *Hello) Validate() error {
	return validateSeq(obj.Elements, RecordHelloElemType)
}

func (obj *Hello) encode(w *writer) {
	for _, e := range obj.Elements {
		encodeTLV(w, e, true)
	}
}

func (obj *Hello) decode(c *Cursor) (err error) {
	obj.Elements, err = decodeSeq(c, RecordHelloElemList, 4, decodeHelloElem)
	return
}
