package ofp4

// empty is the body of messages that are only a header.
type empty struct{}

func (empty) Len() int               { return 0 }
func (empty) Validate() error        { return nil }
func (empty) encode(w *writer)       {}
func (empty) decode(c *Cursor) error { return nil }

type FeaturesRequest struct{ empty }
type GetConfigRequest struct{ empty }
type BarrierRequest struct{ empty }
type BarrierReply struct{ empty }
type GetAsyncRequest struct{ empty }

func (*FeaturesRequest) Type() uint8  { return OFPT_FEATURES_REQUEST }
func (*GetConfigRequest) Type() uint8 { return OFPT_GET_CONFIG_REQUEST }
func (*BarrierRequest) Type() uint8   { return OFPT_BARRIER_REQUEST }
func (*BarrierReply) Type() uint8     { return OFPT_BARRIER_REPLY }
func (*GetAsyncRequest) Type() uint8  { return OFPT_GET_ASYNC_REQUEST }

type errorCodes struct {
	count  uint16
	record Record
}

// codes of each error type are 0 up to count-1
var errorTypes = map[uint16]errorCodes{
	OFPET_HELLO_FAILED:          {OFPHFC_EPERM + 1, RecordHelloFailedCode},
	OFPET_BAD_REQUEST:           {OFPBRC_MULTIPART_BUFFER_OVERFLOW + 1, RecordBadRequestCode},
	OFPET_BAD_ACTION:            {OFPBAC_BAD_SET_ARGUMENT + 1, RecordBadActionCode},
	OFPET_BAD_INSTRUCTION:       {OFPBIC_EPERM + 1, RecordBadInstructionCode},
	OFPET_BAD_MATCH:             {OFPBMC_EPERM + 1, RecordBadMatchCode},
	OFPET_FLOW_MOD_FAILED:       {OFPFMFC_BAD_FLAGS + 1, RecordFlowModFailedCode},
	OFPET_GROUP_MOD_FAILED:      {OFPGMFC_EPERM + 1, RecordGroupModFailedCode},
	OFPET_PORT_MOD_FAILED:       {OFPPMFC_EPERM + 1, RecordPortModFailedCode},
	OFPET_TABLE_MOD_FAILED:      {OFPTMFC_EPERM + 1, RecordTableModFailedCode},
	OFPET_QUEUE_OP_FAILED:       {OFPQOFC_EPERM + 1, RecordQueueOpFailedCode},
	OFPET_SWITCH_CONFIG_FAILED:  {OFPSCFC_EPERM + 1, RecordSwitchConfigFailedCode},
	OFPET_ROLE_REQUEST_FAILED:   {OFPRRFC_BAD_ROLE + 1, RecordRoleRequestFailedCode},
	OFPET_METER_MOD_FAILED:      {OFPMMFC_OUT_OF_BANDS + 1, RecordMeterModFailedCode},
	OFPET_TABLE_FEATURES_FAILED: {OFPTFFC_EPERM + 1, RecordTableFeaturesFailedCode},
}

// ErrorMsg is the OFPT_ERROR body. For OFPET_EXPERIMENTER, Code is the
// exp_type and Experimenter is on the wire; otherwise Experimenter must be 0.
type ErrorMsg struct {
	ErrType      uint16
	Code         uint16
	Experimenter uint32
	Data         []byte
}

func (*ErrorMsg) Type() uint8 { return OFPT_ERROR }

func (obj *ErrorMsg) Len() int {
	if obj.ErrType == OFPET_EXPERIMENTER {
		return 8 + len(obj.Data)
	}
	return 4 + len(obj.Data)
}

func (obj *ErrorMsg) Validate() error {
	if obj.ErrType == OFPET_EXPERIMENTER {
		return nil
	}
	codes, ok := errorTypes[obj.ErrType]
	if !ok {
		return errBad(RecordErrorType, uint64(obj.ErrType))
	}
	if obj.Code >= codes.count {
		return errBad(codes.record, uint64(obj.Code))
	}
	if obj.Experimenter != 0 {
		return errBadf(RecordErrorType, uint64(obj.ErrType), "experimenter id on a standard error")
	}
	return nil
}

func (obj *ErrorMsg) encode(w *writer) {
	w.u16(obj.ErrType)
	w.u16(obj.Code)
	if obj.ErrType == OFPET_EXPERIMENTER {
		w.u32(obj.Experimenter)
	}
	w.bytes(obj.Data)
}

func (obj *ErrorMsg) decode(c *Cursor) (err error) {
	if obj.ErrType, err = c.Uint16(RecordError); err != nil {
		return
	}
	if obj.Code, err = c.Uint16(RecordError); err != nil {
		return
	}
	if obj.ErrType == OFPET_EXPERIMENTER {
		if obj.Experimenter, err = c.Uint32(RecordError); err != nil {
			return
		}
	}
	obj.Data = c.Rest()
	return
}

type EchoRequest struct {
	Data []byte
}

func (*EchoRequest) Type() uint8          { return OFPT_ECHO_REQUEST }
func (obj *EchoRequest) Len() int         { return len(obj.Data) }
func (obj *EchoRequest) Validate() error  { return nil }
func (obj *EchoRequest) encode(w *writer) { w.bytes(obj.Data) }

func (obj *EchoRequest) decode(c *Cursor) error {
	obj.Data = c.Rest()
	return nil
}

type EchoReply struct {
	Data []byte
}

func (*EchoReply) Type() uint8          { return OFPT_ECHO_REPLY }
func (obj *EchoReply) Len() int         { return len(obj.Data) }
func (obj *EchoReply) Validate() error  { return nil }
func (obj *EchoReply) encode(w *writer) { w.bytes(obj.Data) }

func (obj *EchoReply) decode(c *Cursor) error {
	obj.Data = c.Rest()
	return nil
}

// Experimenter is the OFPT_EXPERIMENTER body. Data is opaque.
type Experimenter struct {
	Experimenter uint32
	ExpType      uint32
	Data         []byte
}

func (*Experimenter) Type() uint8         { return OFPT_EXPERIMENTER }
func (obj *Experimenter) Len() int        { return 8 + len(obj.Data) }
func (obj *Experimenter) Validate() error { return nil }

func (obj *Experimenter) encode(w *writer) {
	w.u32(obj.Experimenter)
	w.u32(obj.ExpType)
	w.bytes(obj.Data)
}

func (obj *Experimenter) decode(c *Cursor) (err error) {
	if obj.Experimenter, err = c.Uint32(RecordExperimenter); err != nil {
		return
	}
	if obj.ExpType, err = c.Uint32(RecordExperimenter); err != nil {
		return
	}
	obj.Data = c.Rest()
	return
}

// SwitchFeatures is the OFPT_FEATURES_REPLY body.
type SwitchFeatures struct {
	DatapathId   uint64
	NBuffers     uint32
	NTables      uint8
	AuxiliaryId  uint8
	Capabilities uint32
	Reserved     uint32
}

func (*SwitchFeatures) Type() uint8         { return OFPT_FEATURES_REPLY }
func (obj *SwitchFeatures) Len() int        { return 24 }
func (obj *SwitchFeatures) Validate() error { return nil }

func (obj *SwitchFeatures) encode(w *writer) {
	w.u64(obj.DatapathId)
	w.u32(obj.NBuffers)
	w.u8(obj.NTables)
	w.u8(obj.AuxiliaryId)
	w.pad(2)
	w.u32(obj.Capabilities)
	w.u32(obj.Reserved)
}

func (obj *SwitchFeatures) decode(c *Cursor) (err error) {
	f, err := c.Sub(24, RecordSwitchFeatures)
	if err != nil {
		return
	}
	obj.DatapathId, _ = f.Uint64(RecordSwitchFeatures)
	obj.NBuffers, _ = f.Uint32(RecordSwitchFeatures)
	obj.NTables, _ = f.Uint8(RecordSwitchFeatures)
	obj.AuxiliaryId, _ = f.Uint8(RecordSwitchFeatures)
	f.Skip(2, RecordSwitchFeatures)
	obj.Capabilities, _ = f.Uint32(RecordSwitchFeatures)
	obj.Reserved, _ = f.Uint32(RecordSwitchFeatures)
	return
}

// SwitchConfig is the body of OFPT_GET_CONFIG_REPLY and OFPT_SET_CONFIG.
type SwitchConfig struct {
	Flags       uint16
	MissSendLen uint16
}

type GetConfigReply struct{ SwitchConfig }
type SetConfig struct{ SwitchConfig }

func (*GetConfigReply) Type() uint8 { return OFPT_GET_CONFIG_REPLY }
func (*SetConfig) Type() uint8      { return OFPT_SET_CONFIG }

func (obj *SwitchConfig) Len() int { return 4 }

func (obj *SwitchConfig) Validate() error {
	if obj.Flags&^OFPC_FRAG_MASK != 0 || obj.Flags&OFPC_FRAG_MASK == OFPC_FRAG_MASK {
		return errBad(RecordConfigFlags, uint64(obj.Flags))
	}
	if obj.MissSendLen > OFPCML_MAX && obj.MissSendLen != OFPCML_NO_BUFFER {
		return errBad(RecordMaxLen, uint64(obj.MissSendLen))
	}
	return nil
}

func (obj *SwitchConfig) encode(w *writer) {
	w.u16(obj.Flags)
	w.u16(obj.MissSendLen)
}

func (obj *SwitchConfig) decode(c *Cursor) (err error) {
	if obj.Flags, err = c.Uint16(RecordSwitchConfig); err != nil {
		return
	}
	obj.MissSendLen, err = c.Uint16(RecordSwitchConfig)
	return
}

// PacketIn is the OFPT_PACKET_IN body.
type PacketIn struct {
	BufferId uint32
	TotalLen uint16
	Reason   uint8
	TableId  uint8
	Cookie   uint64
	Match    Match
	Data     []byte
}

func (*PacketIn) Type() uint8 { return OFPT_PACKET_IN }

func (obj *PacketIn) Len() int {
	return 16 + obj.Match.wireLen() + 2 + len(obj.Data)
}

func (obj *PacketIn) Validate() error {
	if obj.Reason > OFPR_INVALID_TTL {
		return errBad(RecordPacketInReason, uint64(obj.Reason))
	}
	if obj.TableId > OFPTT_MAX {
		return errBad(RecordTableId, uint64(obj.TableId))
	}
	return obj.Match.Validate()
}

func (obj *PacketIn) encode(w *writer) {
	w.u32(obj.BufferId)
	w.u16(obj.TotalLen)
	w.u8(obj.Reason)
	w.u8(obj.TableId)
	w.u64(obj.Cookie)
	obj.Match.encode(w)
	w.pad(2)
	w.bytes(obj.Data)
}

func (obj *PacketIn) decode(c *Cursor) (err error) {
	p, err := c.Sub(16, RecordPacketIn)
	if err != nil {
		return
	}
	obj.BufferId, _ = p.Uint32(RecordPacketIn)
	obj.TotalLen, _ = p.Uint16(RecordPacketIn)
	obj.Reason, _ = p.Uint8(RecordPacketIn)
	obj.TableId, _ = p.Uint8(RecordPacketIn)
	obj.Cookie, _ = p.Uint64(RecordPacketIn)
	if obj.Match, err = decodeMatch(c); err != nil {
		return
	}
	if err = c.Skip(2, RecordPacketIn); err != nil {
		return
	}
	obj.Data = c.Rest()
	return
}

// PacketOut is the OFPT_PACKET_OUT body.
type PacketOut struct {
	BufferId uint32
	InPort   uint32
	Actions  []Action
	Data     []byte
}

func (*PacketOut) Type() uint8 { return OFPT_PACKET_OUT }

func (obj *PacketOut) Len() int {
	return 16 + seqLen(obj.Actions) + len(obj.Data)
}

func (obj *PacketOut) Validate() error {
	switch {
	case obj.InPort == 0:
		return errBad(RecordPortNo, uint64(obj.InPort))
	case obj.InPort <= OFPP_MAX:
	case obj.InPort == OFPP_CONTROLLER, obj.InPort == OFPP_LOCAL, obj.InPort == OFPP_ANY:
	default:
		return errBad(RecordPortNo, uint64(obj.InPort))
	}
	return validateSeq(obj.Actions, RecordActionType)
}

func (obj *PacketOut) encode(w *writer) {
	w.u32(obj.BufferId)
	w.u32(obj.InPort)
	w.u16(uint16(seqLen(obj.Actions)))
	w.pad(6)
	encodeActions(w, obj.Actions)
	w.bytes(obj.Data)
}

func (obj *PacketOut) decode(c *Cursor) (err error) {
	p, err := c.Sub(16, RecordPacketOut)
	if err != nil {
		return
	}
	obj.BufferId, _ = p.Uint32(RecordPacketOut)
	obj.InPort, _ = p.Uint32(RecordPacketOut)
	n, _ := p.Uint16(RecordPacketOut)
	actions, err := c.Sub(int(n), RecordPacketOut)
	if err != nil {
		return
	}
	if obj.Actions, err = decodeActions(actions); err != nil {
		return
	}
	obj.Data = c.Rest()
	return
}

// ControllerRole is the body of OFPT_ROLE_REQUEST and OFPT_ROLE_REPLY.
type ControllerRole struct {
	Role         uint32
	GenerationId uint64
}

type RoleRequest struct{ ControllerRole }
type RoleReply struct{ ControllerRole }

func (*RoleRequest) Type() uint8 { return OFPT_ROLE_REQUEST }
func (*RoleReply) Type() uint8   { return OFPT_ROLE_REPLY }

func (obj *ControllerRole) Len() int { return 16 }

func (obj *ControllerRole) Validate() error {
	if obj.Role > OFPCR_ROLE_SLAVE {
		return errBad(RecordControllerRole, uint64(obj.Role))
	}
	return nil
}

func (obj *ControllerRole) encode(w *writer) {
	w.u32(obj.Role)
	w.pad(4)
	w.u64(obj.GenerationId)
}

func (obj *ControllerRole) decodeAs(c *Cursor, rec Record) (err error) {
	if obj.Role, err = c.Uint32(rec); err != nil {
		return
	}
	if err = c.Skip(4, rec); err != nil {
		return
	}
	obj.GenerationId, err = c.Uint64(rec)
	return
}

func (obj *RoleRequest) decode(c *Cursor) error {
	return obj.ControllerRole.decodeAs(c, RecordRoleRequest)
}

func (obj *RoleReply) decode(c *Cursor) error {
	return obj.ControllerRole.decodeAs(c, RecordRoleReply)
}

// AsyncConfig is the body of OFPT_GET_ASYNC_REPLY and OFPT_SET_ASYNC.
// Index 0 of each mask applies to the master or equal role, index 1
// to the slave role.
type AsyncConfig struct {
	PacketInMask    [2]uint32
	PortStatusMask  [2]uint32
	FlowRemovedMask [2]uint32
}

type GetAsyncReply struct{ AsyncConfig }
type SetAsync struct{ AsyncConfig }

func (*GetAsyncReply) Type() uint8 { return OFPT_GET_ASYNC_REPLY }
func (*SetAsync) Type() uint8      { return OFPT_SET_ASYNC }

func (obj *AsyncConfig) Len() int { return 24 }

func (obj *AsyncConfig) Validate() error {
	for i := 0; i < 2; i++ {
		if obj.PacketInMask[i]>>(OFPR_INVALID_TTL+1) != 0 {
			return errBad(RecordPacketInReason, uint64(obj.PacketInMask[i]))
		}
		if obj.PortStatusMask[i]>>(OFPPR_MODIFY+1) != 0 {
			return errBad(RecordPortReason, uint64(obj.PortStatusMask[i]))
		}
		if obj.FlowRemovedMask[i]>>(OFPRR_GROUP_DELETE+1) != 0 {
			return errBad(RecordFlowRemovedReason, uint64(obj.FlowRemovedMask[i]))
		}
	}
	return nil
}

func (obj *AsyncConfig) encode(w *writer) {
	for _, m := range [][2]uint32{obj.PacketInMask, obj.PortStatusMask, obj.FlowRemovedMask} {
		w.u32(m[0])
		w.u32(m[1])
	}
}

func (obj *AsyncConfig) decode(c *Cursor) (err error) {
	a, err := c.Sub(24, RecordAsyncConfig)
	if err != nil {
		return
	}
	for _, m := range []*[2]uint32{&obj.PacketInMask, &obj.PortStatusMask, &obj.FlowRemovedMask} {
		m[0], _ = a.Uint32(RecordAsyncConfig)
		m[1], _ = a.Uint32(RecordAsyncConfig)
	}
	return
}
