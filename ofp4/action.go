package ofp4

// Action is one alternative of ofp_action_header. Every implementation
// is a pointer to one of the Action* structs in this file.
type Action interface {
	tlv
	String() string
	isAction()
}

type ActionOutput struct {
	Port   uint32
	MaxLen uint16
}

type ActionCopyTtlOut struct{ actionEmpty }
type ActionCopyTtlIn struct{ actionEmpty }
type ActionDecMplsTtl struct{ actionEmpty }
type ActionPopVlan struct{ actionEmpty }
type ActionDecNwTtl struct{ actionEmpty }
type ActionPopPbb struct{ actionEmpty }

type ActionSetMplsTtl struct {
	MplsTtl uint8
}

type ActionPushVlan struct {
	Ethertype uint16
}

type ActionPushMpls struct {
	Ethertype uint16
}

type ActionPushPbb struct {
	Ethertype uint16
}

type ActionPopMpls struct {
	Ethertype uint16
}

type ActionSetQueue struct {
	QueueId uint32
}

type ActionGroup struct {
	GroupId uint32
}

type ActionSetNwTtl struct {
	NwTtl uint8
}

// ActionSetField sets one header field. The field must not be masked.
type ActionSetField struct {
	Field OxmField
}

type ActionExperimenter struct {
	Experimenter uint32
	Data         []byte
}

func (*ActionOutput) Type() uint16       { return OFPAT_OUTPUT }
func (*ActionCopyTtlOut) Type() uint16   { return OFPAT_COPY_TTL_OUT }
func (*ActionCopyTtlIn) Type() uint16    { return OFPAT_COPY_TTL_IN }
func (*ActionSetMplsTtl) Type() uint16   { return OFPAT_SET_MPLS_TTL }
func (*ActionDecMplsTtl) Type() uint16   { return OFPAT_DEC_MPLS_TTL }
func (*ActionPushVlan) Type() uint16     { return OFPAT_PUSH_VLAN }
func (*ActionPopVlan) Type() uint16      { return OFPAT_POP_VLAN }
func (*ActionPushMpls) Type() uint16     { return OFPAT_PUSH_MPLS }
func (*ActionPopMpls) Type() uint16      { return OFPAT_POP_MPLS }
func (*ActionSetQueue) Type() uint16     { return OFPAT_SET_QUEUE }
func (*ActionGroup) Type() uint16        { return OFPAT_GROUP }
func (*ActionSetNwTtl) Type() uint16     { return OFPAT_SET_NW_TTL }
func (*ActionDecNwTtl) Type() uint16     { return OFPAT_DEC_NW_TTL }
func (*ActionSetField) Type() uint16     { return OFPAT_SET_FIELD }
func (*ActionPushPbb) Type() uint16      { return OFPAT_PUSH_PBB }
func (*ActionPopPbb) Type() uint16       { return OFPAT_POP_PBB }
func (*ActionExperimenter) Type() uint16 { return OFPAT_EXPERIMENTER }

func newAction(typ uint16) (Action, error) {
	switch typ {
	case OFPAT_OUTPUT:
		return new(ActionOutput), nil
	case OFPAT_COPY_TTL_OUT:
		return new(ActionCopyTtlOut), nil
	case OFPAT_COPY_TTL_IN:
		return new(ActionCopyTtlIn), nil
	case OFPAT_SET_MPLS_TTL:
		return new(ActionSetMplsTtl), nil
	case OFPAT_DEC_MPLS_TTL:
		return new(ActionDecMplsTtl), nil
	case OFPAT_PUSH_VLAN:
		return new(ActionPushVlan), nil
	case OFPAT_POP_VLAN:
		return new(ActionPopVlan), nil
	case OFPAT_PUSH_MPLS:
		return new(ActionPushMpls), nil
	case OFPAT_POP_MPLS:
		return new(ActionPopMpls), nil
	case OFPAT_SET_QUEUE:
		return new(ActionSetQueue), nil
	case OFPAT_GROUP:
		return new(ActionGroup), nil
	case OFPAT_SET_NW_TTL:
		return new(ActionSetNwTtl), nil
	case OFPAT_DEC_NW_TTL:
		return new(ActionDecNwTtl), nil
	case OFPAT_SET_FIELD:
		return new(ActionSetField), nil
	case OFPAT_PUSH_PBB:
		return new(ActionPushPbb), nil
	case OFPAT_POP_PBB:
		return new(ActionPopPbb), nil
	case OFPAT_EXPERIMENTER:
		return new(ActionExperimenter), nil
	}
	return nil, errBad(RecordActionType, uint64(typ))
}

func decodeAction(c *Cursor) (Action, error) {
	return decodeTLV(c, RecordAction, false, newAction)
}

func decodeActions(c *Cursor) ([]Action, error) {
	return decodeSeq(c, RecordActionList, 4, decodeAction)
}

func encodeActions(w *writer, actions []Action) {
	for _, a := range actions {
		encodeTLV(w, a, false)
	}
}

// actionEmpty is the body of actions that carry only padding.
type actionEmpty struct{}

func (actionEmpty) isAction()       {}
func (actionEmpty) Len() int        { return 8 }
func (actionEmpty) Validate() error { return nil }
func (actionEmpty) record() Record  { return RecordActionGeneric }

func (actionEmpty) encodeBody(w *writer) {
	w.pad(4)
}

func (actionEmpty) decodeBody(c *Cursor) error {
	return c.Skip(4, RecordActionGeneric)
}

func (obj *ActionOutput) isAction()      {}
func (obj *ActionOutput) Len() int       { return 16 }
func (obj *ActionOutput) record() Record { return RecordActionOutput }

func (obj *ActionOutput) Validate() error {
	if err := validateOutputPort(obj.Port); err != nil {
		return err
	}
	if obj.MaxLen > OFPCML_MAX && obj.MaxLen != OFPCML_NO_BUFFER {
		return errBad(RecordMaxLen, uint64(obj.MaxLen))
	}
	return nil
}

func (obj *ActionOutput) encodeBody(w *writer) {
	w.u32(obj.Port)
	w.u16(obj.MaxLen)
	w.pad(6)
}

func (obj *ActionOutput) decodeBody(c *Cursor) (err error) {
	if obj.Port, err = c.Uint32(RecordActionOutput); err != nil {
		return
	}
	if obj.MaxLen, err = c.Uint16(RecordActionOutput); err != nil {
		return
	}
	return c.Skip(6, RecordActionOutput)
}

func (obj *ActionSetMplsTtl) isAction()       {}
func (obj *ActionSetMplsTtl) Len() int        { return 8 }
func (obj *ActionSetMplsTtl) Validate() error { return nil }
func (obj *ActionSetMplsTtl) record() Record  { return RecordActionMplsTtl }

func (obj *ActionSetMplsTtl) encodeBody(w *writer) {
	w.u8(obj.MplsTtl)
	w.pad(3)
}

func (obj *ActionSetMplsTtl) decodeBody(c *Cursor) (err error) {
	if obj.MplsTtl, err = c.Uint8(RecordActionMplsTtl); err != nil {
		return
	}
	return c.Skip(3, RecordActionMplsTtl)
}

func (obj *ActionPushVlan) isAction()      {}
func (obj *ActionPushVlan) Len() int       { return 8 }
func (obj *ActionPushVlan) record() Record { return RecordActionPush }

func (obj *ActionPushVlan) encodeBody(w *writer) {
	encodePush(w, obj.Ethertype)
}

func (obj *ActionPushVlan) decodeBody(c *Cursor) (err error) {
	obj.Ethertype, err = decodePush(c)
	return
}

func (obj *ActionPushMpls) isAction()      {}
func (obj *ActionPushMpls) Len() int       { return 8 }
func (obj *ActionPushMpls) record() Record { return RecordActionPush }

func (obj *ActionPushMpls) encodeBody(w *writer) {
	encodePush(w, obj.Ethertype)
}

func (obj *ActionPushMpls) decodeBody(c *Cursor) (err error) {
	obj.Ethertype, err = decodePush(c)
	return
}

func (obj *ActionPushPbb) isAction()      {}
func (obj *ActionPushPbb) Len() int       { return 8 }
func (obj *ActionPushPbb) record() Record { return RecordActionPush }

func (obj *ActionPushPbb) encodeBody(w *writer) {
	encodePush(w, obj.Ethertype)
}

func (obj *ActionPushPbb) decodeBody(c *Cursor) (err error) {
	obj.Ethertype, err = decodePush(c)
	return
}

func encodePush(w *writer, ethertype uint16) {
	w.u16(ethertype)
	w.pad(2)
}

func decodePush(c *Cursor) (uint16, error) {
	ethertype, err := c.Uint16(RecordActionPush)
	if err != nil {
		return 0, err
	}
	return ethertype, c.Skip(2, RecordActionPush)
}

func (obj *ActionPushVlan) Validate() error {
	switch obj.Ethertype {
	case 0x8100, 0x88a8:
		return nil
	}
	return errBad(RecordPushEthertype, uint64(obj.Ethertype))
}

func (obj *ActionPushMpls) Validate() error {
	switch obj.Ethertype {
	case 0x8847, 0x8848:
		return nil
	}
	return errBad(RecordPushEthertype, uint64(obj.Ethertype))
}

func (obj *ActionPushPbb) Validate() error {
	if obj.Ethertype != 0x88e7 {
		return errBad(RecordPushEthertype, uint64(obj.Ethertype))
	}
	return nil
}

func (obj *ActionPopMpls) isAction()       {}
func (obj *ActionPopMpls) Len() int        { return 8 }
func (obj *ActionPopMpls) Validate() error { return nil }
func (obj *ActionPopMpls) record() Record  { return RecordActionPopMpls }

func (obj *ActionPopMpls) encodeBody(w *writer) {
	w.u16(obj.Ethertype)
	w.pad(2)
}

func (obj *ActionPopMpls) decodeBody(c *Cursor) (err error) {
	if obj.Ethertype, err = c.Uint16(RecordActionPopMpls); err != nil {
		return
	}
	return c.Skip(2, RecordActionPopMpls)
}

func (obj *ActionSetQueue) isAction()       {}
func (obj *ActionSetQueue) Len() int        { return 8 }
func (obj *ActionSetQueue) Validate() error { return nil }
func (obj *ActionSetQueue) record() Record  { return RecordActionSetQueue }

func (obj *ActionSetQueue) encodeBody(w *writer) {
	w.u32(obj.QueueId)
}

func (obj *ActionSetQueue) decodeBody(c *Cursor) (err error) {
	obj.QueueId, err = c.Uint32(RecordActionSetQueue)
	return
}

func (obj *ActionGroup) isAction()      {}
func (obj *ActionGroup) Len() int       { return 8 }
func (obj *ActionGroup) record() Record { return RecordActionGroup }

func (obj *ActionGroup) Validate() error {
	if obj.GroupId > OFPG_MAX {
		return errBad(RecordGroupId, uint64(obj.GroupId))
	}
	return nil
}

func (obj *ActionGroup) encodeBody(w *writer) {
	w.u32(obj.GroupId)
}

func (obj *ActionGroup) decodeBody(c *Cursor) (err error) {
	obj.GroupId, err = c.Uint32(RecordActionGroup)
	return
}

func (obj *ActionSetNwTtl) isAction()       {}
func (obj *ActionSetNwTtl) Len() int        { return 8 }
func (obj *ActionSetNwTtl) Validate() error { return nil }
func (obj *ActionSetNwTtl) record() Record  { return RecordActionNwTtl }

func (obj *ActionSetNwTtl) encodeBody(w *writer) {
	w.u8(obj.NwTtl)
	w.pad(3)
}

func (obj *ActionSetNwTtl) decodeBody(c *Cursor) (err error) {
	if obj.NwTtl, err = c.Uint8(RecordActionNwTtl); err != nil {
		return
	}
	return c.Skip(3, RecordActionNwTtl)
}

func (obj *ActionSetField) isAction()      {}
func (obj *ActionSetField) record() Record { return RecordActionSetField }

func (obj *ActionSetField) Len() int {
	if obj.Field == nil {
		return 8
	}
	return align8(4 + obj.Field.Len())
}

func (obj *ActionSetField) Validate() error {
	if isNil(obj.Field) {
		return errBadf(RecordOxmClass, 0, "set_field without a field")
	}
	if err := obj.Field.Validate(); err != nil {
		return err
	}
	if obj.Field.Header().HasMask() {
		return errBadf(RecordOxmMask, uint64(obj.Field.Header()), "set_field may not be masked")
	}
	return nil
}

func (obj *ActionSetField) encodeBody(w *writer) {
	obj.Field.encode(w)
	w.pad(obj.Len() - 4 - obj.Field.Len())
}

// decodeBody takes one field; what follows it is padding, and the
// padding must be exactly what the field needs to reach 8 bytes.
func (obj *ActionSetField) decodeBody(c *Cursor) (err error) {
	if obj.Field, err = decodeOxm(c); err != nil {
		return
	}
	pad := align8(4+obj.Field.Len()) - 4 - obj.Field.Len()
	return c.Skip(pad, RecordActionSetField)
}

func (obj *ActionExperimenter) isAction()      {}
func (obj *ActionExperimenter) Len() int       { return 8 + len(obj.Data) }
func (obj *ActionExperimenter) record() Record { return RecordActionExperimenter }

func (obj *ActionExperimenter) Validate() error {
	if obj.Len()%8 != 0 {
		return errBadf(RecordLength, uint64(obj.Len()), "experimenter action is not 8 byte aligned")
	}
	return nil
}

func (obj *ActionExperimenter) encodeBody(w *writer) {
	w.u32(obj.Experimenter)
	w.bytes(obj.Data)
}

func (obj *ActionExperimenter) decodeBody(c *Cursor) (err error) {
	if obj.Experimenter, err = c.Uint32(RecordActionExperimenter); err != nil {
		return
	}
	obj.Data = c.Rest()
	return
}

// validateOutputPort accepts physical ports and the reserved ports
// that may be used as an output.
func validateOutputPort(port uint32) error {
	switch {
	case port == 0, port == OFPP_ANY:
		return errBad(RecordPortNo, uint64(port))
	case port <= OFPP_MAX, port >= OFPP_IN_PORT:
		return nil
	}
	return errBad(RecordPortNo, uint64(port))
}
