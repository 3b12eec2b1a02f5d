package ofp4

// MultipartBody is one alternative of the multipart request or reply
// body, selected by its multipart type.
type MultipartBody interface {
	MultipartType() uint16
	Len() int
	Validate() error
	encode(w *writer)
	decode(c *Cursor) error
}

type MultipartRequestBody interface {
	MultipartBody
	isMultipartRequest()
}

type MultipartReplyBody interface {
	MultipartBody
	isMultipartReply()
}

func newMultipartRequest(typ uint16) (MultipartRequestBody, error) {
	switch typ {
	case OFPMP_DESC:
		return &DescRequest{}, nil
	case OFPMP_FLOW:
		return &FlowStatsRequest{}, nil
	case OFPMP_AGGREGATE:
		return &AggregateStatsRequest{}, nil
	case OFPMP_TABLE:
		return &TableStatsRequest{}, nil
	case OFPMP_PORT_STATS:
		return &PortStatsRequest{}, nil
	case OFPMP_QUEUE:
		return &QueueStatsRequest{}, nil
	case OFPMP_GROUP:
		return &GroupStatsRequest{}, nil
	case OFPMP_GROUP_DESC:
		return &GroupDescRequest{}, nil
	case OFPMP_GROUP_FEATURES:
		return &GroupFeaturesRequest{}, nil
	case OFPMP_METER:
		return &MeterStatsRequest{}, nil
	case OFPMP_METER_CONFIG:
		return &MeterConfigRequest{}, nil
	case OFPMP_METER_FEATURES:
		return &MeterFeaturesRequest{}, nil
	case OFPMP_TABLE_FEATURES:
		return &TableFeaturesRequest{}, nil
	case OFPMP_PORT_DESC:
		return &PortDescRequest{}, nil
	case OFPMP_EXPERIMENTER:
		return &ExperimenterMultipart{}, nil
	}
	return nil, errBad(RecordMultipartType, uint64(typ))
}

func newMultipartReply(typ uint16) (MultipartReplyBody, error) {
	switch typ {
	case OFPMP_DESC:
		return &Desc{}, nil
	case OFPMP_FLOW:
		return &FlowStatsReply{}, nil
	case OFPMP_AGGREGATE:
		return &AggregateStatsReply{}, nil
	case OFPMP_TABLE:
		return &TableStatsReply{}, nil
	case OFPMP_PORT_STATS:
		return &PortStatsReply{}, nil
	case OFPMP_QUEUE:
		return &QueueStatsReply{}, nil
	case OFPMP_GROUP:
		return &GroupStatsReply{}, nil
	case OFPMP_GROUP_DESC:
		return &GroupDescReply{}, nil
	case OFPMP_GROUP_FEATURES:
		return &GroupFeatures{}, nil
	case OFPMP_METER:
		return &MeterStatsReply{}, nil
	case OFPMP_METER_CONFIG:
		return &MeterConfigReply{}, nil
	case OFPMP_METER_FEATURES:
		return &MeterFeatures{}, nil
	case OFPMP_TABLE_FEATURES:
		return &TableFeaturesReply{}, nil
	case OFPMP_PORT_DESC:
		return &PortDescReply{}, nil
	case OFPMP_EXPERIMENTER:
		return &ExperimenterMultipart{}, nil
	}
	return nil, errBad(RecordMultipartType, uint64(typ))
}

func validateMultipart(flags, more uint16, body MultipartBody) error {
	if isNil(body) {
		return errBadf(RecordMultipartType, 0, "no body")
	}
	if flags&^more != 0 {
		return errBad(RecordMultipartFlags, uint64(flags))
	}
	return body.Validate()
}

func encodeMultipart(w *writer, flags uint16, body MultipartBody) {
	w.u16(body.MultipartType())
	w.u16(flags)
	w.pad(4)
	body.encode(w)
}

// MultipartRequest is the OFPT_MULTIPART_REQUEST body.
type MultipartRequest struct {
	Flags uint16
	Body  MultipartRequestBody
}

func (*MultipartRequest) Type() uint8 { return OFPT_MULTIPART_REQUEST }

func (obj *MultipartRequest) Len() int {
	return 8 + obj.Body.Len()
}

func (obj *MultipartRequest) Validate() error {
	return validateMultipart(obj.Flags, OFPMPF_REQ_MORE, obj.Body)
}

func (obj *MultipartRequest) encode(w *writer) {
	encodeMultipart(w, obj.Flags, obj.Body)
}

func (obj *MultipartRequest) decode(c *Cursor) (err error) {
	h, err := c.Sub(8, RecordMultipartRequest)
	if err != nil {
		return
	}
	typ, _ := h.Uint16(RecordMultipartRequest)
	obj.Flags, _ = h.Uint16(RecordMultipartRequest)
	if obj.Body, err = newMultipartRequest(typ); err != nil {
		return
	}
	if err = obj.Body.decode(c); err != nil {
		return
	}
	return c.Done(RecordMultipartRequest)
}

// MultipartReply is the OFPT_MULTIPART_REPLY body.
type MultipartReply struct {
	Flags uint16
	Body  MultipartReplyBody
}

func (*MultipartReply) Type() uint8 { return OFPT_MULTIPART_REPLY }

func (obj *MultipartReply) Len() int {
	return 8 + obj.Body.Len()
}

func (obj *MultipartReply) Validate() error {
	return validateMultipart(obj.Flags, OFPMPF_REPLY_MORE, obj.Body)
}

func (obj *MultipartReply) encode(w *writer) {
	encodeMultipart(w, obj.Flags, obj.Body)
}

func (obj *MultipartReply) decode(c *Cursor) (err error) {
	h, err := c.Sub(8, RecordMultipartReply)
	if err != nil {
		return
	}
	typ, _ := h.Uint16(RecordMultipartReply)
	obj.Flags, _ = h.Uint16(RecordMultipartReply)
	if obj.Body, err = newMultipartReply(typ); err != nil {
		return
	}
	if err = obj.Body.decode(c); err != nil {
		return
	}
	return c.Done(RecordMultipartReply)
}

func (*DescRequest) isMultipartRequest()           {}
func (*FlowStatsRequest) isMultipartRequest()      {}
func (*AggregateStatsRequest) isMultipartRequest() {}
func (*TableStatsRequest) isMultipartRequest()     {}
func (*PortStatsRequest) isMultipartRequest()      {}
func (*QueueStatsRequest) isMultipartRequest()     {}
func (*GroupStatsRequest) isMultipartRequest()     {}
func (*GroupDescRequest) isMultipartRequest()      {}
func (*GroupFeaturesRequest) isMultipartRequest()  {}
func (*MeterStatsRequest) isMultipartRequest()     {}
func (*MeterConfigRequest) isMultipartRequest()    {}
func (*MeterFeaturesRequest) isMultipartRequest()  {}
func (*TableFeaturesRequest) isMultipartRequest()  {}
func (*PortDescRequest) isMultipartRequest()       {}
func (*ExperimenterMultipart) isMultipartRequest() {}

func (*Desc) isMultipartReply()                  {}
func (*FlowStatsReply) isMultipartReply()        {}
func (*AggregateStatsReply) isMultipartReply()   {}
func (*TableStatsReply) isMultipartReply()       {}
func (*PortStatsReply) isMultipartReply()        {}
func (*QueueStatsReply) isMultipartReply()       {}
func (*GroupStatsReply) isMultipartReply()       {}
func (*GroupDescReply) isMultipartReply()        {}
func (*GroupFeatures) isMultipartReply()         {}
func (*MeterStatsReply) isMultipartReply()       {}
func (*MeterConfigReply) isMultipartReply()      {}
func (*MeterFeatures) isMultipartReply()         {}
func (*TableFeaturesReply) isMultipartReply()    {}
func (*PortDescReply) isMultipartReply()         {}
func (*ExperimenterMultipart) isMultipartReply() {}

type DescRequest struct{ empty }
type TableStatsRequest struct{ empty }
type GroupDescRequest struct{ empty }
type GroupFeaturesRequest struct{ empty }
type MeterFeaturesRequest struct{ empty }
type PortDescRequest struct{ empty }

func (*DescRequest) MultipartType() uint16          { return OFPMP_DESC }
func (*TableStatsRequest) MultipartType() uint16    { return OFPMP_TABLE }
func (*GroupDescRequest) MultipartType() uint16     { return OFPMP_GROUP_DESC }
func (*GroupFeaturesRequest) MultipartType() uint16 { return OFPMP_GROUP_FEATURES }
func (*MeterFeaturesRequest) MultipartType() uint16 { return OFPMP_METER_FEATURES }
func (*PortDescRequest) MultipartType() uint16      { return OFPMP_PORT_DESC }

type encoder interface {
	encode(w *writer)
}

func encodeAll[T encoder](w *writer, seq []T) {
	for _, v := range seq {
		v.encode(w)
	}
}

// Desc is the OFPMP_DESC reply body.
type Desc struct {
	MfrDesc   string
	HwDesc    string
	SwDesc    string
	SerialNum string
	DpDesc    string
}

func (*Desc) MultipartType() uint16 { return OFPMP_DESC }
func (obj *Desc) Len() int          { return DESC_STR_LEN*4 + SERIAL_NUM_LEN }

func (obj *Desc) Validate() error {
	for _, s := range []string{obj.MfrDesc, obj.HwDesc, obj.SwDesc, obj.DpDesc} {
		if err := validateName(s, DESC_STR_LEN, RecordDescString); err != nil {
			return err
		}
	}
	return validateName(obj.SerialNum, SERIAL_NUM_LEN, RecordDescString)
}

func (obj *Desc) encode(w *writer) {
	w.str(obj.MfrDesc, DESC_STR_LEN)
	w.str(obj.HwDesc, DESC_STR_LEN)
	w.str(obj.SwDesc, DESC_STR_LEN)
	w.str(obj.SerialNum, SERIAL_NUM_LEN)
	w.str(obj.DpDesc, DESC_STR_LEN)
}

func (obj *Desc) decode(c *Cursor) (err error) {
	d, err := c.Sub(obj.Len(), RecordDesc)
	if err != nil {
		return
	}
	for _, f := range []struct {
		s     *string
		width int
	}{
		{&obj.MfrDesc, DESC_STR_LEN},
		{&obj.HwDesc, DESC_STR_LEN},
		{&obj.SwDesc, DESC_STR_LEN},
		{&obj.SerialNum, SERIAL_NUM_LEN},
		{&obj.DpDesc, DESC_STR_LEN},
	} {
		p, _ := d.Bytes(f.width, RecordDesc)
		*f.s = cstr(p)
	}
	return
}

type FlowStatsReply struct {
	Stats []FlowStats
}

func (*FlowStatsReply) MultipartType() uint16 { return OFPMP_FLOW }
func (obj *FlowStatsReply) Len() int          { return seqLen(obj.Stats) }
func (obj *FlowStatsReply) Validate() error   { return validateSeq(obj.Stats, RecordFlowStats) }
func (obj *FlowStatsReply) encode(w *writer)  { encodeAll(w, obj.Stats) }

func (obj *FlowStatsReply) decode(c *Cursor) (err error) {
	obj.Stats, err = decodeSeq(c, RecordFlowStatsList, 2, decodeFlowStats)
	return
}

type TableStatsReply struct {
	Stats []TableStats
}

func (*TableStatsReply) MultipartType() uint16 { return OFPMP_TABLE }
func (obj *TableStatsReply) Len() int          { return seqLen(obj.Stats) }
func (obj *TableStatsReply) Validate() error   { return validateSeq(obj.Stats, RecordTableStats) }
func (obj *TableStatsReply) encode(w *writer)  { encodeAll(w, obj.Stats) }

func (obj *TableStatsReply) decode(c *Cursor) (err error) {
	obj.Stats, err = decodeSeq(c, RecordTableStatsList, 24, decodeTableStats)
	return
}

// validateStatsPort accepts a physical or logical port, or OFPP_LOCAL.
func validateStatsPort(port uint32) error {
	if port == 0 || (port > OFPP_MAX && port != OFPP_LOCAL) {
		return errBad(RecordPortNo, uint64(port))
	}
	return nil
}

// validateQueryPort additionally accepts OFPP_ANY as a wildcard.
func validateQueryPort(port uint32) error {
	if port == OFPP_ANY {
		return nil
	}
	return validateStatsPort(port)
}

type PortStatsRequest struct {
	PortNo uint32
}

func (*PortStatsRequest) MultipartType() uint16 { return OFPMP_PORT_STATS }
func (obj *PortStatsRequest) Len() int          { return 8 }
func (obj *PortStatsRequest) Validate() error   { return validateQueryPort(obj.PortNo) }

func (obj *PortStatsRequest) encode(w *writer) {
	w.u32(obj.PortNo)
	w.pad(4)
}

func (obj *PortStatsRequest) decode(c *Cursor) (err error) {
	if obj.PortNo, err = c.Uint32(RecordPortStatsRequest); err != nil {
		return
	}
	return c.Skip(4, RecordPortStatsRequest)
}

// PortStats is ofp_port_stats.
type PortStats struct {
	PortNo       uint32
	RxPackets    uint64
	TxPackets    uint64
	RxBytes      uint64
	TxBytes      uint64
	RxDropped    uint64
	TxDropped    uint64
	RxErrors     uint64
	TxErrors     uint64
	RxFrameErr   uint64
	RxOverErr    uint64
	RxCrcErr     uint64
	Collisions   uint64
	DurationSec  uint32
	DurationNsec uint32
}

func (obj PortStats) Len() int        { return 112 }
func (obj PortStats) Validate() error { return validateStatsPort(obj.PortNo) }

func (obj PortStats) counters() []uint64 {
	return []uint64{obj.RxPackets, obj.TxPackets, obj.RxBytes, obj.TxBytes,
		obj.RxDropped, obj.TxDropped, obj.RxErrors, obj.TxErrors,
		obj.RxFrameErr, obj.RxOverErr, obj.RxCrcErr, obj.Collisions}
}

func (obj PortStats) encode(w *writer) {
	w.u32(obj.PortNo)
	w.pad(4)
	for _, v := range obj.counters() {
		w.u64(v)
	}
	w.u32(obj.DurationSec)
	w.u32(obj.DurationNsec)
}

func decodePortStats(c *Cursor) (obj PortStats, err error) {
	p, err := c.Sub(112, RecordPortStats)
	if err != nil {
		return
	}
	obj.PortNo, _ = p.Uint32(RecordPortStats)
	p.Skip(4, RecordPortStats)
	for _, v := range []*uint64{&obj.RxPackets, &obj.TxPackets, &obj.RxBytes, &obj.TxBytes,
		&obj.RxDropped, &obj.TxDropped, &obj.RxErrors, &obj.TxErrors,
		&obj.RxFrameErr, &obj.RxOverErr, &obj.RxCrcErr, &obj.Collisions} {
		*v, _ = p.Uint64(RecordPortStats)
	}
	obj.DurationSec, _ = p.Uint32(RecordPortStats)
	obj.DurationNsec, _ = p.Uint32(RecordPortStats)
	return
}

type PortStatsReply struct {
	Stats []PortStats
}

func (*PortStatsReply) MultipartType() uint16 { return OFPMP_PORT_STATS }
func (obj *PortStatsReply) Len() int          { return seqLen(obj.Stats) }
func (obj *PortStatsReply) Validate() error   { return validateSeq(obj.Stats, RecordPortStats) }
func (obj *PortStatsReply) encode(w *writer)  { encodeAll(w, obj.Stats) }

func (obj *PortStatsReply) decode(c *Cursor) (err error) {
	obj.Stats, err = decodeSeq(c, RecordPortStatsList, 112, decodePortStats)
	return
}

type QueueStatsRequest struct {
	PortNo  uint32
	QueueId uint32
}

func (*QueueStatsRequest) MultipartType() uint16 { return OFPMP_QUEUE }
func (obj *QueueStatsRequest) Len() int          { return 8 }
func (obj *QueueStatsRequest) Validate() error   { return validateQueryPort(obj.PortNo) }

func (obj *QueueStatsRequest) encode(w *writer) {
	w.u32(obj.PortNo)
	w.u32(obj.QueueId)
}

func (obj *QueueStatsRequest) decode(c *Cursor) (err error) {
	if obj.PortNo, err = c.Uint32(RecordQueueStatsRequest); err != nil {
		return
	}
	obj.QueueId, err = c.Uint32(RecordQueueStatsRequest)
	return
}

// QueueStats is ofp_queue_stats.
type QueueStats struct {
	PortNo       uint32
	QueueId      uint32
	TxBytes      uint64
	TxPackets    uint64
	TxErrors     uint64
	DurationSec  uint32
	DurationNsec uint32
}

func (obj QueueStats) Len() int        { return 40 }
func (obj QueueStats) Validate() error { return validateStatsPort(obj.PortNo) }

func (obj QueueStats) encode(w *writer) {
	w.u32(obj.PortNo)
	w.u32(obj.QueueId)
	w.u64(obj.TxBytes)
	w.u64(obj.TxPackets)
	w.u64(obj.TxErrors)
	w.u32(obj.DurationSec)
	w.u32(obj.DurationNsec)
}

func decodeQueueStats(c *Cursor) (obj QueueStats, err error) {
	q, err := c.Sub(40, RecordQueueStats)
	if err != nil {
		return
	}
	obj.PortNo, _ = q.Uint32(RecordQueueStats)
	obj.QueueId, _ = q.Uint32(RecordQueueStats)
	obj.TxBytes, _ = q.Uint64(RecordQueueStats)
	obj.TxPackets, _ = q.Uint64(RecordQueueStats)
	obj.TxErrors, _ = q.Uint64(RecordQueueStats)
	obj.DurationSec, _ = q.Uint32(RecordQueueStats)
	obj.DurationNsec, _ = q.Uint32(RecordQueueStats)
	return
}

type QueueStatsReply struct {
	Stats []QueueStats
}

func (*QueueStatsReply) MultipartType() uint16 { return OFPMP_QUEUE }
func (obj *QueueStatsReply) Len() int          { return seqLen(obj.Stats) }
func (obj *QueueStatsReply) Validate() error   { return validateSeq(obj.Stats, RecordQueueStats) }
func (obj *QueueStatsReply) encode(w *writer)  { encodeAll(w, obj.Stats) }

func (obj *QueueStatsReply) decode(c *Cursor) (err error) {
	obj.Stats, err = decodeSeq(c, RecordQueueStatsList, 40, decodeQueueStats)
	return
}

type GroupStatsReply struct {
	Stats []GroupStats
}

func (*GroupStatsReply) MultipartType() uint16 { return OFPMP_GROUP }
func (obj *GroupStatsReply) Len() int          { return seqLen(obj.Stats) }
func (obj *GroupStatsReply) Validate() error   { return validateSeq(obj.Stats, RecordGroupStats) }
func (obj *GroupStatsReply) encode(w *writer)  { encodeAll(w, obj.Stats) }

func (obj *GroupStatsReply) decode(c *Cursor) (err error) {
	obj.Stats, err = decodeSeq(c, RecordGroupStatsList, 2, decodeGroupStats)
	return
}

type GroupDescReply struct {
	Groups []GroupDesc
}

func (*GroupDescReply) MultipartType() uint16 { return OFPMP_GROUP_DESC }
func (obj *GroupDescReply) Len() int          { return seqLen(obj.Groups) }
func (obj *GroupDescReply) Validate() error   { return validateSeq(obj.Groups, RecordGroupDesc) }
func (obj *GroupDescReply) encode(w *writer)  { encodeAll(w, obj.Groups) }

func (obj *GroupDescReply) decode(c *Cursor) (err error) {
	obj.Groups, err = decodeSeq(c, RecordGroupDescList, 2, decodeGroupDesc)
	return
}

type MeterStatsReply struct {
	Stats []MeterStats
}

func (*MeterStatsReply) MultipartType() uint16 { return OFPMP_METER }
func (obj *MeterStatsReply) Len() int          { return seqLen(obj.Stats) }
func (obj *MeterStatsReply) Validate() error   { return validateSeq(obj.Stats, RecordMeterStats) }
func (obj *MeterStatsReply) encode(w *writer)  { encodeAll(w, obj.Stats) }

func (obj *MeterStatsReply) decode(c *Cursor) (err error) {
	obj.Stats, err = decodeSeq(c, RecordMeterStatsList, 6, decodeMeterStats)
	return
}

type MeterConfigReply struct {
	Configs []MeterConfig
}

func (*MeterConfigReply) MultipartType() uint16 { return OFPMP_METER_CONFIG }
func (obj *MeterConfigReply) Len() int          { return seqLen(obj.Configs) }
func (obj *MeterConfigReply) Validate() error   { return validateSeq(obj.Configs, RecordMeterConfig) }
func (obj *MeterConfigReply) encode(w *writer)  { encodeAll(w, obj.Configs) }

func (obj *MeterConfigReply) decode(c *Cursor) (err error) {
	obj.Configs, err = decodeSeq(c, RecordMeterConfigList, 2, decodeMeterConfig)
	return
}

// TableFeaturesRequest with no Features queries; otherwise it sets
// the pipeline.
type TableFeaturesRequest struct {
	Features []TableFeatures
}

func (*TableFeaturesRequest) MultipartType() uint16 { return OFPMP_TABLE_FEATURES }
func (obj *TableFeaturesRequest) Len() int          { return seqLen(obj.Features) }
func (obj *TableFeaturesRequest) Validate() error {
	return validateSeq(obj.Features, RecordTableFeatures)
}
func (obj *TableFeaturesRequest) encode(w *writer) { encodeAll(w, obj.Features) }

func (obj *TableFeaturesRequest) decode(c *Cursor) (err error) {
	obj.Features, err = decodeTableFeaturesList(c)
	return
}

type TableFeaturesReply struct {
	Features []TableFeatures
}

func (*TableFeaturesReply) MultipartType() uint16 { return OFPMP_TABLE_FEATURES }
func (obj *TableFeaturesReply) Len() int          { return (*TableFeaturesRequest)(obj).Len() }
func (obj *TableFeaturesReply) Validate() error   { return (*TableFeaturesRequest)(obj).Validate() }
func (obj *TableFeaturesReply) encode(w *writer)  { (*TableFeaturesRequest)(obj).encode(w) }
func (obj *TableFeaturesReply) decode(c *Cursor) error {
	return (*TableFeaturesRequest)(obj).decode(c)
}

type PortDescReply struct {
	Ports []Port
}

func (*PortDescReply) MultipartType() uint16 { return OFPMP_PORT_DESC }
func (obj *PortDescReply) Len() int          { return seqLen(obj.Ports) }
func (obj *PortDescReply) Validate() error   { return validatePorts(obj.Ports) }
func (obj *PortDescReply) encode(w *writer)  { encodeAll(w, obj.Ports) }

func (obj *PortDescReply) decode(c *Cursor) (err error) {
	obj.Ports, err = decodePorts(c)
	return
}

// ExperimenterMultipart serves both directions; Data is opaque.
type ExperimenterMultipart struct {
	Experimenter uint32
	ExpType      uint32
	Data         []byte
}

func (*ExperimenterMultipart) MultipartType() uint16 { return OFPMP_EXPERIMENTER }
func (obj *ExperimenterMultipart) Len() int          { return 8 + len(obj.Data) }
func (obj *ExperimenterMultipart) Validate() error   { return nil }

func (obj *ExperimenterMultipart) encode(w *writer) {
	w.u32(obj.Experimenter)
	w.u32(obj.ExpType)
	w.bytes(obj.Data)
}

func (obj *ExperimenterMultipart) decode(c *Cursor) (err error) {
	if obj.Experimenter, err = c.Uint32(RecordExperimenterMultipart); err != nil {
		return
	}
	if obj.ExpType, err = c.Uint32(RecordExperimenterMultipart); err != nil {
		return
	}
	obj.Data = c.Rest()
	return
}
