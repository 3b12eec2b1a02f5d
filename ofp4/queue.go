package ofp4

// QueueProp is one alternative of ofp_queue_prop_header.
type QueueProp interface {
	tlv
	isQueueProp()
}

type QueuePropMinRate struct {
	Rate uint16 // 1/10 of a percent, OFPQ_MIN_RATE_UNCFG when disabled
}

type QueuePropMaxRate struct {
	Rate uint16
}

type QueuePropExperimenter struct {
	Experimenter uint32
	Data         []byte
}

func (*QueuePropMinRate) Type() uint16      { return OFPQT_MIN_RATE }
func (*QueuePropMaxRate) Type() uint16      { return OFPQT_MAX_RATE }
func (*QueuePropExperimenter) Type() uint16 { return OFPQT_EXPERIMENTER }

func newQueueProp(typ uint16) (QueueProp, error) {
	switch typ {
	case OFPQT_MIN_RATE:
		return new(QueuePropMinRate), nil
	case OFPQT_MAX_RATE:
		return new(QueuePropMaxRate), nil
	case OFPQT_EXPERIMENTER:
		return new(QueuePropExperimenter), nil
	}
	return nil, errBad(RecordQueuePropType, uint64(typ))
}

func decodeQueueProp(c *Cursor) (QueueProp, error) {
	return decodeTLV(c, RecordQueueProp, false, newQueueProp)
}

func (obj *QueuePropMinRate) isQueueProp()    {}
func (obj *QueuePropMinRate) Len() int        { return 16 }
func (obj *QueuePropMinRate) Validate() error { return nil }
func (obj *QueuePropMinRate) record() Record  { return RecordQueuePropRate }

func (obj *QueuePropMinRate) encodeBody(w *writer) {
	encodeRate(w, obj.Rate)
}

func (obj *QueuePropMinRate) decodeBody(c *Cursor) (err error) {
	obj.Rate, err = decodeRate(c)
	return
}

func (obj *QueuePropMaxRate) isQueueProp()    {}
func (obj *QueuePropMaxRate) Len() int        { return 16 }
func (obj *QueuePropMaxRate) Validate() error { return nil }
func (obj *QueuePropMaxRate) record() Record  { return RecordQueuePropRate }

func (obj *QueuePropMaxRate) encodeBody(w *writer) {
	encodeRate(w, obj.Rate)
}

func (obj *QueuePropMaxRate) decodeBody(c *Cursor) (err error) {
	obj.Rate, err = decodeRate(c)
	return
}

func encodeRate(w *writer, rate uint16) {
	w.pad(4)
	w.u16(rate)
	w.pad(6)
}

func decodeRate(c *Cursor) (uint16, error) {
	if err := c.Skip(4, RecordQueuePropRate); err != nil {
		return 0, err
	}
	rate, err := c.Uint16(RecordQueuePropRate)
	if err != nil {
		return 0, err
	}
	return rate, c.Skip(6, RecordQueuePropRate)
}

func (obj *QueuePropExperimenter) isQueueProp()    {}
func (obj *QueuePropExperimenter) Len() int        { return 16 + len(obj.Data) }
func (obj *QueuePropExperimenter) Validate() error { return nil }
func (obj *QueuePropExperimenter) record() Record  { return RecordQueuePropExperimenter }

func (obj *QueuePropExperimenter) encodeBody(w *writer) {
	w.pad(4)
	w.u32(obj.Experimenter)
	w.pad(4)
	w.bytes(obj.Data)
}

func (obj *QueuePropExperimenter) decodeBody(c *Cursor) (err error) {
	if err = c.Skip(4, RecordQueuePropExperimenter); err != nil {
		return
	}
	if obj.Experimenter, err = c.Uint32(RecordQueuePropExperimenter); err != nil {
		return
	}
	if err = c.Skip(4, RecordQueuePropExperimenter); err != nil {
		return
	}
	obj.Data = c.Rest()
	return
}

// PacketQueue is ofp_packet_queue.
type PacketQueue struct {
	QueueId    uint32
	Port       uint32
	Properties []QueueProp
}

func (obj PacketQueue) Len() int {
	return 16 + seqLen(obj.Properties)
}

func (obj PacketQueue) Validate() error {
	return validateSeq(obj.Properties, RecordQueuePropType)
}

func (obj PacketQueue) encode(w *writer) {
	w.u32(obj.QueueId)
	w.u32(obj.Port)
	w.u16(uint16(obj.Len()))
	w.pad(6)
	for _, p := range obj.Properties {
		encodeTLV(w, p, false)
	}
}

func decodePacketQueue(c *Cursor) (obj PacketQueue, err error) {
	if obj.QueueId, err = c.Uint32(RecordPacketQueue); err != nil {
		return
	}
	if obj.Port, err = c.Uint32(RecordPacketQueue); err != nil {
		return
	}
	length, err := c.Uint16(RecordPacketQueue)
	if err != nil {
		return
	}
	if err = c.Skip(6, RecordPacketQueue); err != nil {
		return
	}
	if length < 16 {
		err = errShort(RecordPacketQueue)
		return
	}
	props, err := c.Sub(int(length)-16, RecordPacketQueue)
	if err != nil {
		return
	}
	obj.Properties, err = decodeSeq(props, RecordQueuePropList, 8, decodeQueueProp)
	return
}

// QueueGetConfigRequest is the OFPT_QUEUE_GET_CONFIG_REQUEST body.
type QueueGetConfigRequest struct {
	Port uint32
}

func (obj *QueueGetConfigRequest) Type() uint8 { return OFPT_QUEUE_GET_CONFIG_REQUEST }
func (obj *QueueGetConfigRequest) Len() int    { return 8 }

func (obj *QueueGetConfigRequest) Validate() error {
	if obj.Port == 0 || (obj.Port > OFPP_MAX && obj.Port != OFPP_ANY) {
		return errBad(RecordPortNo, uint64(obj.Port))
	}
	return nil
}

func (obj *QueueGetConfigRequest) encode(w *writer) {
	w.u32(obj.Port)
	w.pad(4)
}

func (obj *QueueGetConfigRequest) decode(c *Cursor) (err error) {
	if obj.Port, err = c.Uint32(RecordQueueGetConfigRequest); err != nil {
		return
	}
	return c.Skip(4, RecordQueueGetConfigRequest)
}

// QueueGetConfigReply is the OFPT_QUEUE_GET_CONFIG_REPLY body.
type QueueGetConfigReply struct {
	Port   uint32
	Queues []PacketQueue
}

func (obj *QueueGetConfigReply) Type() uint8 { return OFPT_QUEUE_GET_CONFIG_REPLY }

func (obj *QueueGetConfigReply) Len() int {
	return 8 + seqLen(obj.Queues)
}

func (obj *QueueGetConfigReply) Validate() error {
	if obj.Port == 0 || (obj.Port > OFPP_MAX && obj.Port != OFPP_ANY) {
		return errBad(RecordPortNo, uint64(obj.Port))
	}
	return validateSeq(obj.Queues, RecordQueuePropType)
}

func (obj *QueueGetConfigReply) encode(w *writer) {
	w.u32(obj.Port)
	w.pad(4)
	for _, q := range obj.Queues {
		q.encode(w)
	}
}

func (obj *QueueGetConfigReply) decode(c *Cursor) (err error) {
	if obj.Port, err = c.Uint32(RecordQueueGetConfigReply); err != nil {
		return
	}
	if err = c.Skip(4, RecordQueueGetConfigReply); err != nil {
		return
	}
	obj.Queues, err = decodeSeq(c, RecordQueueList, 16, decodePacketQueue)
	return
}
