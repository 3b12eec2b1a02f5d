package ofp4

import (
	"fmt"
	"strings"

	"github.com/ofwire/gopenflow/oxm"
)

// OxmField is one match field entry: *OxmBasic, *OxmExperimenter or *OxmNxm.
type OxmField interface {
	Header() oxm.Header
	Len() int
	Validate() error
	String() string
	encode(w *writer)
}

// OxmBasic is an OFPXMC_OPENFLOW_BASIC field. Mask is nil when unmasked.
type OxmBasic struct {
	Field uint8
	Value []byte
	Mask  []byte
}

func (obj *OxmBasic) Header() oxm.Header {
	return oxm.NewHeader(oxm.OFPXMC_OPENFLOW_BASIC, obj.Field, obj.Mask != nil, len(obj.Value)+len(obj.Mask))
}

func (obj *OxmBasic) Len() int {
	return 4 + len(obj.Value) + len(obj.Mask)
}

func (obj *OxmBasic) Validate() error {
	b, ok := oxm.LookupBasic(obj.Field)
	if !ok {
		return errBad(RecordOxmField, uint64(obj.Field))
	}
	if len(obj.Value) != b.Width {
		return errBadf(RecordOxmLength, uint64(len(obj.Value)), "%s value", b.Name)
	}
	if obj.Mask != nil {
		if !b.Maskable {
			return errBadf(RecordOxmMask, uint64(obj.Field), "%s is not maskable", b.Name)
		}
		if len(obj.Mask) != b.Width {
			return errBadf(RecordOxmLength, uint64(len(obj.Mask)), "%s mask", b.Name)
		}
	}
	if !b.InRange(obj.Value) {
		return errBadf(RecordOxmValue, uint64(obj.Field), "%s out of range", b.Name)
	}
	return nil
}

func (obj *OxmBasic) String() string {
	return oxm.FormatBasic(obj.Field, obj.Value, obj.Mask)
}

func (obj *OxmBasic) encode(w *writer) {
	w.u32(uint32(obj.Header()))
	w.bytes(obj.Value)
	w.bytes(obj.Mask)
}

// OxmExperimenter is an OFPXMC_EXPERIMENTER field; Data is opaque.
type OxmExperimenter struct {
	Field        uint8
	HasMask      bool
	Experimenter uint32
	Data         []byte
}

func (obj *OxmExperimenter) Header() oxm.Header {
	return oxm.NewHeader(oxm.OFPXMC_EXPERIMENTER, obj.Field, obj.HasMask, 4+len(obj.Data))
}

func (obj *OxmExperimenter) Len() int {
	return 8 + len(obj.Data)
}

func (obj *OxmExperimenter) Validate() error {
	if obj.Field > 0x7f {
		return errBad(RecordOxmField, uint64(obj.Field))
	}
	if 4+len(obj.Data) > 0xff {
		return errBad(RecordOxmLength, uint64(4+len(obj.Data)))
	}
	return nil
}

func (obj *OxmExperimenter) String() string {
	return fmt.Sprintf("oxm_experimenter=0x%08x:%d:%x", obj.Experimenter, obj.Field, obj.Data)
}

func (obj *OxmExperimenter) encode(w *writer) {
	w.u32(uint32(obj.Header()))
	w.u32(obj.Experimenter)
	w.bytes(obj.Data)
}

// OxmNxm carries a field of the legacy NXM_0 or NXM_1 classes unparsed.
type OxmNxm struct {
	Class   uint16
	Field   uint8
	HasMask bool
	Data    []byte
}

func (obj *OxmNxm) Header() oxm.Header {
	return oxm.NewHeader(obj.Class, obj.Field, obj.HasMask, len(obj.Data))
}

func (obj *OxmNxm) Len() int {
	return 4 + len(obj.Data)
}

func (obj *OxmNxm) Validate() error {
	if obj.Class != oxm.OFPXMC_NXM_0 && obj.Class != oxm.OFPXMC_NXM_1 {
		return errBad(RecordOxmClass, uint64(obj.Class))
	}
	if obj.Field > 0x7f {
		return errBad(RecordOxmField, uint64(obj.Field))
	}
	if len(obj.Data) > 0xff {
		return errBad(RecordOxmLength, uint64(len(obj.Data)))
	}
	return nil
}

func (obj *OxmNxm) String() string {
	return fmt.Sprintf("nxm%d_%d=%x", obj.Class, obj.Field, obj.Data)
}

func (obj *OxmNxm) encode(w *writer) {
	w.u32(uint32(obj.Header()))
	w.bytes(obj.Data)
}

func decodeOxm(c *Cursor) (OxmField, error) {
	h, err := c.Uint32(RecordOxm)
	if err != nil {
		return nil, err
	}
	hdr := oxm.Header(h)
	body, err := c.Sub(hdr.Length(), RecordOxm)
	if err != nil {
		return nil, err
	}
	switch hdr.Class() {
	case oxm.OFPXMC_OPENFLOW_BASIC:
		obj := &OxmBasic{Field: hdr.Field()}
		n := body.Len()
		if hdr.HasMask() {
			if n%2 != 0 {
				return nil, errBadf(RecordOxmLength, uint64(n), "odd masked length")
			}
			n /= 2
			obj.Value, _ = body.Bytes(n, RecordOxm)
			obj.Mask, _ = body.Bytes(n, RecordOxm)
			if obj.Mask == nil {
				obj.Mask = []byte{}
			}
		} else {
			obj.Value = body.Rest()
		}
		return obj, nil
	case oxm.OFPXMC_EXPERIMENTER:
		obj := &OxmExperimenter{Field: hdr.Field(), HasMask: hdr.HasMask()}
		if obj.Experimenter, err = body.Uint32(RecordOxmExperimenter); err != nil {
			return nil, err
		}
		obj.Data = body.Rest()
		return obj, nil
	case oxm.OFPXMC_NXM_0, oxm.OFPXMC_NXM_1:
		return &OxmNxm{
			Class:   hdr.Class(),
			Field:   hdr.Field(),
			HasMask: hdr.HasMask(),
			Data:    body.Rest(),
		}, nil
	}
	return nil, errBad(RecordOxmClass, uint64(hdr.Class()))
}

// Match is an OFPMT_OXM match. Its length excludes the padding to 8 bytes.
type Match struct {
	Fields []OxmField
}

func (obj Match) Len() int {
	return 4 + seqLen(obj.Fields)
}

func (obj Match) wireLen() int {
	return align8(obj.Len())
}

func (obj Match) Validate() error {
	if err := validateSeq(obj.Fields, RecordOxmClass); err != nil {
		return err
	}
	seen := make(map[uint32]bool)
	for _, f := range obj.Fields {
		t := f.Header().Type()
		if seen[t] {
			return errBadf(RecordOxmDuplicate, uint64(t), "%v", f)
		}
		seen[t] = true
	}
	return nil
}

func (obj Match) String() string {
	var ret []string
	for _, f := range obj.Fields {
		ret = append(ret, f.String())
	}
	return strings.Join(ret, ",")
}

func (obj Match) encode(w *writer) {
	w.u16(OFPMT_OXM)
	w.u16(uint16(obj.Len()))
	for _, f := range obj.Fields {
		f.encode(w)
	}
	w.pad(obj.wireLen() - obj.Len())
}

func decodeMatch(c *Cursor) (obj Match, err error) {
	typ, err := c.Uint16(RecordMatch)
	if err != nil {
		return
	}
	length, err := c.Uint16(RecordMatch)
	if err != nil {
		return
	}
	if typ != OFPMT_OXM {
		err = errBad(RecordMatchType, uint64(typ))
		return
	}
	if length < 4 {
		err = errShort(RecordMatch)
		return
	}
	fields, err := c.Sub(int(length)-4, RecordMatch)
	if err != nil {
		return
	}
	if err = c.Skip(align8(int(length))-int(length), RecordMatch); err != nil {
		return
	}
	obj.Fields, err = decodeSeq(fields, RecordOxmList, 4, decodeOxm)
	return
}
