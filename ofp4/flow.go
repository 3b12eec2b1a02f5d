package ofp4

// FlowMod is the OFPT_FLOW_MOD body.
type FlowMod struct {
	Cookie       uint64
	CookieMask   uint64
	TableId      uint8
	Command      uint8
	IdleTimeout  uint16
	HardTimeout  uint16
	Priority     uint16
	BufferId     uint32
	OutPort      uint32
	OutGroup     uint32
	Flags        uint16
	Match        Match
	Instructions []Instruction
}

func (obj *FlowMod) Type() uint8 { return OFPT_FLOW_MOD }

func (obj *FlowMod) Len() int {
	return 40 + obj.Match.wireLen() + seqLen(obj.Instructions)
}

func (obj *FlowMod) Validate() error {
	if obj.Command > OFPFC_DELETE_STRICT {
		return errBad(RecordFlowModCommand, uint64(obj.Command))
	}
	deleting := obj.Command == OFPFC_DELETE || obj.Command == OFPFC_DELETE_STRICT
	if obj.TableId > OFPTT_MAX && !(deleting && obj.TableId == OFPTT_ALL) {
		return errBad(RecordTableId, uint64(obj.TableId))
	}
	if err := validateFlowModFlags(obj.Flags); err != nil {
		return err
	}
	if err := obj.Match.Validate(); err != nil {
		return err
	}
	return validateInstructions(obj.Instructions)
}

func (obj *FlowMod) encode(w *writer) {
	w.u64(obj.Cookie)
	w.u64(obj.CookieMask)
	w.u8(obj.TableId)
	w.u8(obj.Command)
	w.u16(obj.IdleTimeout)
	w.u16(obj.HardTimeout)
	w.u16(obj.Priority)
	w.u32(obj.BufferId)
	w.u32(obj.OutPort)
	w.u32(obj.OutGroup)
	w.u16(obj.Flags)
	w.pad(2)
	obj.Match.encode(w)
	encodeInstructions(w, obj.Instructions)
}

func (obj *FlowMod) decode(c *Cursor) (err error) {
	f, err := c.Sub(40, RecordFlowMod)
	if err != nil {
		return
	}
	obj.Cookie, _ = f.Uint64(RecordFlowMod)
	obj.CookieMask, _ = f.Uint64(RecordFlowMod)
	obj.TableId, _ = f.Uint8(RecordFlowMod)
	obj.Command, _ = f.Uint8(RecordFlowMod)
	obj.IdleTimeout, _ = f.Uint16(RecordFlowMod)
	obj.HardTimeout, _ = f.Uint16(RecordFlowMod)
	obj.Priority, _ = f.Uint16(RecordFlowMod)
	obj.BufferId, _ = f.Uint32(RecordFlowMod)
	obj.OutPort, _ = f.Uint32(RecordFlowMod)
	obj.OutGroup, _ = f.Uint32(RecordFlowMod)
	obj.Flags, _ = f.Uint16(RecordFlowMod)
	if obj.Match, err = decodeMatch(c); err != nil {
		return
	}
	obj.Instructions, err = decodeInstructions(c)
	return
}

func validateFlowModFlags(flags uint16) error {
	all := uint16(OFPFF_SEND_FLOW_REM | OFPFF_CHECK_OVERLAP | OFPFF_RESET_COUNTS |
		OFPFF_NO_PKT_COUNTS | OFPFF_NO_BYT_COUNTS)
	if flags&^all != 0 {
		return errBad(RecordFlowModFlags, uint64(flags))
	}
	return nil
}

// validateInstructions also rejects a second instruction of the same type.
func validateInstructions(insts []Instruction) error {
	if err := validateSeq(insts, RecordInstructionType); err != nil {
		return err
	}
	seen := make(map[uint16]bool)
	for _, inst := range insts {
		if seen[inst.Type()] {
			return errBadf(RecordInstructionType, uint64(inst.Type()), "duplicate instruction")
		}
		seen[inst.Type()] = true
	}
	return nil
}

// FlowRemoved is the OFPT_FLOW_REMOVED body.
type FlowRemoved struct {
	Cookie       uint64
	Priority     uint16
	Reason       uint8
	TableId      uint8
	DurationSec  uint32
	DurationNsec uint32
	IdleTimeout  uint16
	HardTimeout  uint16
	PacketCount  uint64
	ByteCount    uint64
	Match        Match
}

func (obj *FlowRemoved) Type() uint8 { return OFPT_FLOW_REMOVED }

func (obj *FlowRemoved) Len() int {
	return 40 + obj.Match.wireLen()
}

func (obj *FlowRemoved) Validate() error {
	if obj.Reason > OFPRR_GROUP_DELETE {
		return errBad(RecordFlowRemovedReason, uint64(obj.Reason))
	}
	if obj.TableId > OFPTT_MAX {
		return errBad(RecordTableId, uint64(obj.TableId))
	}
	return obj.Match.Validate()
}

func (obj *FlowRemoved) encode(w *writer) {
	w.u64(obj.Cookie)
	w.u16(obj.Priority)
	w.u8(obj.Reason)
	w.u8(obj.TableId)
	w.u32(obj.DurationSec)
	w.u32(obj.DurationNsec)
	w.u16(obj.IdleTimeout)
	w.u16(obj.HardTimeout)
	w.u64(obj.PacketCount)
	w.u64(obj.ByteCount)
	obj.Match.encode(w)
}

func (obj *FlowRemoved) decode(c *Cursor) (err error) {
	f, err := c.Sub(40, RecordFlowRemoved)
	if err != nil {
		return
	}
	obj.Cookie, _ = f.Uint64(RecordFlowRemoved)
	obj.Priority, _ = f.Uint16(RecordFlowRemoved)
	obj.Reason, _ = f.Uint8(RecordFlowRemoved)
	obj.TableId, _ = f.Uint8(RecordFlowRemoved)
	obj.DurationSec, _ = f.Uint32(RecordFlowRemoved)
	obj.DurationNsec, _ = f.Uint32(RecordFlowRemoved)
	obj.IdleTimeout, _ = f.Uint16(RecordFlowRemoved)
	obj.HardTimeout, _ = f.Uint16(RecordFlowRemoved)
	obj.PacketCount, _ = f.Uint64(RecordFlowRemoved)
	obj.ByteCount, _ = f.Uint64(RecordFlowRemoved)
	obj.Match, err = decodeMatch(c)
	return
}

// flowQuery is the layout shared by ofp_flow_stats_request and
// ofp_aggregate_stats_request.
type flowQuery struct {
	TableId    uint8
	OutPort    uint32
	OutGroup   uint32
	Cookie     uint64
	CookieMask uint64
	Match      Match
}

func (obj *flowQuery) Len() int {
	return 32 + obj.Match.wireLen()
}

func (obj *flowQuery) Validate() error {
	return obj.Match.Validate()
}

func (obj *flowQuery) encode(w *writer) {
	w.u8(obj.TableId)
	w.pad(3)
	w.u32(obj.OutPort)
	w.u32(obj.OutGroup)
	w.pad(4)
	w.u64(obj.Cookie)
	w.u64(obj.CookieMask)
	obj.Match.encode(w)
}

func (obj *flowQuery) decode(c *Cursor, rec Record) (err error) {
	f, err := c.Sub(32, rec)
	if err != nil {
		return
	}
	obj.TableId, _ = f.Uint8(rec)
	f.Skip(3, rec)
	obj.OutPort, _ = f.Uint32(rec)
	obj.OutGroup, _ = f.Uint32(rec)
	f.Skip(4, rec)
	obj.Cookie, _ = f.Uint64(rec)
	obj.CookieMask, _ = f.Uint64(rec)
	obj.Match, err = decodeMatch(c)
	return
}

// FlowStatsRequest is the OFPMP_FLOW request body.
type FlowStatsRequest struct {
	TableId    uint8
	OutPort    uint32
	OutGroup   uint32
	Cookie     uint64
	CookieMask uint64
	Match      Match
}

func (obj *FlowStatsRequest) MultipartType() uint16 { return OFPMP_FLOW }
func (obj *FlowStatsRequest) Len() int              { return (*flowQuery)(obj).Len() }
func (obj *FlowStatsRequest) Validate() error       { return (*flowQuery)(obj).Validate() }
func (obj *FlowStatsRequest) encode(w *writer)      { (*flowQuery)(obj).encode(w) }
func (obj *FlowStatsRequest) decode(c *Cursor) error {
	return (*flowQuery)(obj).decode(c, RecordFlowStatsRequest)
}

// AggregateStatsRequest is the OFPMP_AGGREGATE request body.
type AggregateStatsRequest struct {
	TableId    uint8
	OutPort    uint32
	OutGroup   uint32
	Cookie     uint64
	CookieMask uint64
	Match      Match
}

func (obj *AggregateStatsRequest) MultipartType() uint16 { return OFPMP_AGGREGATE }
func (obj *AggregateStatsRequest) Len() int              { return (*flowQuery)(obj).Len() }
func (obj *AggregateStatsRequest) Validate() error       { return (*flowQuery)(obj).Validate() }
func (obj *AggregateStatsRequest) encode(w *writer)      { (*flowQuery)(obj).encode(w) }
func (obj *AggregateStatsRequest) decode(c *Cursor) error {
	return (*flowQuery)(obj).decode(c, RecordAggregateStatsRequest)
}

// FlowStats is ofp_flow_stats.
type FlowStats struct {
	TableId      uint8
	DurationSec  uint32
	DurationNsec uint32
	Priority     uint16
	IdleTimeout  uint16
	HardTimeout  uint16
	Flags        uint16
	Cookie       uint64
	PacketCount  uint64
	ByteCount    uint64
	Match        Match
	Instructions []Instruction
}

func (obj FlowStats) Len() int {
	return 48 + obj.Match.wireLen() + seqLen(obj.Instructions)
}

func (obj FlowStats) Validate() error {
	if obj.TableId > OFPTT_MAX {
		return errBad(RecordTableId, uint64(obj.TableId))
	}
	if err := validateFlowModFlags(obj.Flags); err != nil {
		return err
	}
	if err := obj.Match.Validate(); err != nil {
		return err
	}
	return validateInstructions(obj.Instructions)
}

func (obj FlowStats) encode(w *writer) {
	w.u16(uint16(obj.Len()))
	w.u8(obj.TableId)
	w.pad(1)
	w.u32(obj.DurationSec)
	w.u32(obj.DurationNsec)
	w.u16(obj.Priority)
	w.u16(obj.IdleTimeout)
	w.u16(obj.HardTimeout)
	w.u16(obj.Flags)
	w.pad(4)
	w.u64(obj.Cookie)
	w.u64(obj.PacketCount)
	w.u64(obj.ByteCount)
	obj.Match.encode(w)
	encodeInstructions(w, obj.Instructions)
}

func decodeFlowStats(c *Cursor) (obj FlowStats, err error) {
	f, err := carve(c, RecordFlowStats, 0, 48)
	if err != nil {
		return
	}
	f.Skip(2, RecordFlowStats)
	obj.TableId, _ = f.Uint8(RecordFlowStats)
	f.Skip(1, RecordFlowStats)
	obj.DurationSec, _ = f.Uint32(RecordFlowStats)
	obj.DurationNsec, _ = f.Uint32(RecordFlowStats)
	obj.Priority, _ = f.Uint16(RecordFlowStats)
	obj.IdleTimeout, _ = f.Uint16(RecordFlowStats)
	obj.HardTimeout, _ = f.Uint16(RecordFlowStats)
	obj.Flags, _ = f.Uint16(RecordFlowStats)
	f.Skip(4, RecordFlowStats)
	obj.Cookie, _ = f.Uint64(RecordFlowStats)
	obj.PacketCount, _ = f.Uint64(RecordFlowStats)
	obj.ByteCount, _ = f.Uint64(RecordFlowStats)
	if obj.Match, err = decodeMatch(f); err != nil {
		return
	}
	obj.Instructions, err = decodeInstructions(f)
	return
}

// AggregateStatsReply is the OFPMP_AGGREGATE reply body.
type AggregateStatsReply struct {
	PacketCount uint64
	ByteCount   uint64
	FlowCount   uint32
}

func (obj *AggregateStatsReply) MultipartType() uint16 { return OFPMP_AGGREGATE }
func (obj *AggregateStatsReply) Len() int              { return 24 }
func (obj *AggregateStatsReply) Validate() error       { return nil }

func (obj *AggregateStatsReply) encode(w *writer) {
	w.u64(obj.PacketCount)
	w.u64(obj.ByteCount)
	w.u32(obj.FlowCount)
	w.pad(4)
}

func (obj *AggregateStatsReply) decode(c *Cursor) (err error) {
	a, err := c.Sub(24, RecordAggregateStatsReply)
	if err != nil {
		return
	}
	obj.PacketCount, _ = a.Uint64(RecordAggregateStatsReply)
	obj.ByteCount, _ = a.Uint64(RecordAggregateStatsReply)
	obj.FlowCount, _ = a.Uint32(RecordAggregateStatsReply)
	return
}
