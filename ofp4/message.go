package ofp4

// Body is the payload of a message. The message type on the wire is
// always the one reported by the body.
type Body interface {
	Type() uint8
	Len() int
	Validate() error
	encode(w *writer)
	decode(c *Cursor) error
}

// Header holds the fields of ofp_header that are not derived from the
// body. Type and length are computed on encode.
type Header struct {
	Version uint8
	Xid     uint32
}

// Message is one OpenFlow message.
type Message struct {
	Header
	Body Body
}

// NewMessage wraps a body with the current version.
func NewMessage(xid uint32, body Body) *Message {
	return &Message{
		Header: Header{Version: OFP_VERSION, Xid: xid},
		Body:   body,
	}
}

func newBody(typ uint8) (Body, error) {
	switch typ {
	case OFPT_HELLO:
		return &Hello{}, nil
	case OFPT_ERROR:
		return &ErrorMsg{}, nil
	case OFPT_ECHO_REQUEST:
		return &EchoRequest{}, nil
	case OFPT_ECHO_REPLY:
		return &EchoReply{}, nil
	case OFPT_EXPERIMENTER:
		return &Experimenter{}, nil
	case OFPT_FEATURES_REQUEST:
		return &FeaturesRequest{}, nil
	case OFPT_FEATURES_REPLY:
		return &SwitchFeatures{}, nil
	case OFPT_GET_CONFIG_REQUEST:
		return &GetConfigRequest{}, nil
	case OFPT_GET_CONFIG_REPLY:
		return &GetConfigReply{}, nil
	case OFPT_SET_CONFIG:
		return &SetConfig{}, nil
	case OFPT_PACKET_IN:
		return &PacketIn{}, nil
	case OFPT_FLOW_REMOVED:
		return &FlowRemoved{}, nil
	case OFPT_PORT_STATUS:
		return &PortStatus{}, nil
	case OFPT_PACKET_OUT:
		return &PacketOut{}, nil
	case OFPT_FLOW_MOD:
		return &FlowMod{}, nil
	case OFPT_GROUP_MOD:
		return &GroupMod{}, nil
	case OFPT_PORT_MOD:
		return &PortMod{}, nil
	case OFPT_TABLE_MOD:
		return &TableMod{}, nil
	case OFPT_MULTIPART_REQUEST:
		return &MultipartRequest{}, nil
	case OFPT_MULTIPART_REPLY:
		return &MultipartReply{}, nil
	case OFPT_BARRIER_REQUEST:
		return &BarrierRequest{}, nil
	case OFPT_BARRIER_REPLY:
		return &BarrierReply{}, nil
	case OFPT_QUEUE_GET_CONFIG_REQUEST:
		return &QueueGetConfigRequest{}, nil
	case OFPT_QUEUE_GET_CONFIG_REPLY:
		return &QueueGetConfigReply{}, nil
	case OFPT_ROLE_REQUEST:
		return &RoleRequest{}, nil
	case OFPT_ROLE_REPLY:
		return &RoleReply{}, nil
	case OFPT_GET_ASYNC_REQUEST:
		return &GetAsyncRequest{}, nil
	case OFPT_GET_ASYNC_REPLY:
		return &GetAsyncReply{}, nil
	case OFPT_SET_ASYNC:
		return &SetAsync{}, nil
	case OFPT_METER_MOD:
		return &MeterMod{}, nil
	}
	return nil, errBad(RecordMessageType, uint64(typ))
}

// Len is the total length including the header.
func (obj *Message) Len() int {
	return OFP_HEADER_LEN + obj.Body.Len()
}

func (obj *Message) Validate() error {
	if obj.Version != OFP_VERSION {
		return errBad(RecordVersion, uint64(obj.Version))
	}
	if isNil(obj.Body) {
		return errBadf(RecordMessageType, 0, "no body")
	}
	if err := obj.Body.Validate(); err != nil {
		return err
	}
	if n := obj.Len(); n > 0xffff {
		return errBadf(RecordLength, uint64(n), "message does not fit the length field")
	}
	return nil
}

// Encode validates m and serializes it.
func Encode(m *Message) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	length := m.Len()
	w := newWriter(length)
	w.u8(m.Version)
	w.u8(m.Body.Type())
	w.u16(uint16(length))
	w.u32(m.Xid)
	m.Body.encode(w)
	if w.len() != length {
		return nil, errBadf(RecordLength, uint64(w.len()), "encoded %d bytes, declared %d", w.len(), length)
	}
	return w.buf, nil
}

// Decode parses exactly one message occupying the whole of data.
func Decode(data []byte) (*Message, error) {
	c := NewCursor(data)
	m, err := decodeMessage(c)
	if err != nil {
		return nil, err
	}
	if err := c.Done(RecordMessage); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeMessage(c *Cursor) (*Message, error) {
	h, err := c.Sub(OFP_HEADER_LEN, RecordHeader)
	if err != nil {
		return nil, err
	}
	version, _ := h.Uint8(RecordHeader)
	typ, _ := h.Uint8(RecordHeader)
	length, _ := h.Uint16(RecordHeader)
	xid, _ := h.Uint32(RecordHeader)
	if version != OFP_VERSION {
		return nil, errBad(RecordVersion, uint64(version))
	}
	body, err := newBody(typ)
	if err != nil {
		return nil, err
	}
	if length < OFP_HEADER_LEN {
		return nil, errBadf(RecordLength, uint64(length), "shorter than the header")
	}
	payload, err := c.Sub(int(length)-OFP_HEADER_LEN, RecordMessage)
	if err != nil {
		return nil, err
	}
	if err := body.decode(payload); err != nil {
		return nil, err
	}
	if err := payload.Done(RecordMessage); err != nil {
		return nil, err
	}
	return &Message{
		Header: Header{Version: version, Xid: xid},
		Body:   body,
	}, nil
}

func (obj *Message) MarshalBinary() ([]byte, error) {
	return Encode(obj)
}

func (obj *Message) UnmarshalBinary(data []byte) error {
	m, err := Decode(data)
	if err != nil {
		return err
	}
	*obj = *m
	return nil
}
