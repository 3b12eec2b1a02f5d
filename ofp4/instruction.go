package ofp4

// Instruction is one alternative of ofp_instruction.
type Instruction interface {
	tlv
	String() string
	isInstruction()
}

type InstructionGotoTable struct {
	TableId uint8
}

type InstructionWriteMetadata struct {
	Metadata     uint64
	MetadataMask uint64
}

type InstructionWriteActions struct {
	Actions []Action
}

type InstructionApplyActions struct {
	Actions []Action
}

type InstructionClearActions struct{}

type InstructionMeter struct {
	MeterId uint32
}

type InstructionExperimenter struct {
	Experimenter uint32
	Data         []byte
}

func (*InstructionGotoTable) Type() uint16     { return OFPIT_GOTO_TABLE }
func (*InstructionWriteMetadata) Type() uint16 { return OFPIT_WRITE_METADATA }
func (*InstructionWriteActions) Type() uint16  { return OFPIT_WRITE_ACTIONS }
func (*InstructionApplyActions) Type() uint16  { return OFPIT_APPLY_ACTIONS }
func (*InstructionClearActions) Type() uint16  { return OFPIT_CLEAR_ACTIONS }
func (*InstructionMeter) Type() uint16         { return OFPIT_METER }
func (*InstructionExperimenter) Type() uint16  { return OFPIT_EXPERIMENTER }

func newInstruction(typ uint16) (Instruction, error) {
	switch typ {
	case OFPIT_GOTO_TABLE:
		return new(InstructionGotoTable), nil
	case OFPIT_WRITE_METADATA:
		return new(InstructionWriteMetadata), nil
	case OFPIT_WRITE_ACTIONS:
		return new(InstructionWriteActions), nil
	case OFPIT_APPLY_ACTIONS:
		return new(InstructionApplyActions), nil
	case OFPIT_CLEAR_ACTIONS:
		return new(InstructionClearActions), nil
	case OFPIT_METER:
		return new(InstructionMeter), nil
	case OFPIT_EXPERIMENTER:
		return new(InstructionExperimenter), nil
	}
	return nil, errBad(RecordInstructionType, uint64(typ))
}

func decodeInstruction(c *Cursor) (Instruction, error) {
	return decodeTLV(c, RecordInstruction, false, newInstruction)
}

func decodeInstructions(c *Cursor) ([]Instruction, error) {
	return decodeSeq(c, RecordInstructionList, 4, decodeInstruction)
}

func encodeInstructions(w *writer, insts []Instruction) {
	for _, inst := range insts {
		encodeTLV(w, inst, false)
	}
}

func (obj *InstructionGotoTable) isInstruction() {}
func (obj *InstructionGotoTable) Len() int       { return 8 }
func (obj *InstructionGotoTable) record() Record { return RecordInstructionGotoTable }

func (obj *InstructionGotoTable) Validate() error {
	if obj.TableId > OFPTT_MAX {
		return errBad(RecordTableId, uint64(obj.TableId))
	}
	return nil
}

func (obj *InstructionGotoTable) encodeBody(w *writer) {
	w.u8(obj.TableId)
	w.pad(3)
}

func (obj *InstructionGotoTable) decodeBody(c *Cursor) (err error) {
	if obj.TableId, err = c.Uint8(RecordInstructionGotoTable); err != nil {
		return
	}
	return c.Skip(3, RecordInstructionGotoTable)
}

func (obj *InstructionWriteMetadata) isInstruction()  {}
func (obj *InstructionWriteMetadata) Len() int        { return 24 }
func (obj *InstructionWriteMetadata) Validate() error { return nil }
func (obj *InstructionWriteMetadata) record() Record  { return RecordInstructionWriteMetadata }

func (obj *InstructionWriteMetadata) encodeBody(w *writer) {
	w.pad(4)
	w.u64(obj.Metadata)
	w.u64(obj.MetadataMask)
}

func (obj *InstructionWriteMetadata) decodeBody(c *Cursor) (err error) {
	if err = c.Skip(4, RecordInstructionWriteMetadata); err != nil {
		return
	}
	if obj.Metadata, err = c.Uint64(RecordInstructionWriteMetadata); err != nil {
		return
	}
	obj.MetadataMask, err = c.Uint64(RecordInstructionWriteMetadata)
	return
}

func (obj *InstructionWriteActions) isInstruction() {}
func (obj *InstructionWriteActions) record() Record { return RecordInstructionActions }

func (obj *InstructionWriteActions) Len() int {
	return 8 + seqLen(obj.Actions)
}

func (obj *InstructionWriteActions) Validate() error {
	return validateSeq(obj.Actions, RecordActionType)
}

func (obj *InstructionWriteActions) encodeBody(w *writer) {
	w.pad(4)
	encodeActions(w, obj.Actions)
}

func (obj *InstructionWriteActions) decodeBody(c *Cursor) (err error) {
	if err = c.Skip(4, RecordInstructionActions); err != nil {
		return
	}
	obj.Actions, err = decodeActions(c)
	return
}

func (obj *InstructionApplyActions) isInstruction() {}
func (obj *InstructionApplyActions) record() Record { return RecordInstructionActions }

func (obj *InstructionApplyActions) Len() int {
	return 8 + seqLen(obj.Actions)
}

func (obj *InstructionApplyActions) Validate() error {
	return validateSeq(obj.Actions, RecordActionType)
}

func (obj *InstructionApplyActions) encodeBody(w *writer) {
	w.pad(4)
	encodeActions(w, obj.Actions)
}

func (obj *InstructionApplyActions) decodeBody(c *Cursor) (err error) {
	if err = c.Skip(4, RecordInstructionActions); err != nil {
		return
	}
	obj.Actions, err = decodeActions(c)
	return
}

func (obj *InstructionClearActions) isInstruction()  {}
func (obj *InstructionClearActions) Len() int        { return 8 }
func (obj *InstructionClearActions) Validate() error { return nil }
func (obj *InstructionClearActions) record() Record  { return RecordInstructionActions }

func (obj *InstructionClearActions) encodeBody(w *writer) {
	w.pad(4)
}

func (obj *InstructionClearActions) decodeBody(c *Cursor) error {
	return c.Skip(4, RecordInstructionActions)
}

func (obj *InstructionMeter) isInstruction() {}
func (obj *InstructionMeter) Len() int       { return 8 }
func (obj *InstructionMeter) record() Record { return RecordInstructionMeter }

func (obj *InstructionMeter) Validate() error {
	return validateMeterId(obj.MeterId)
}

func (obj *InstructionMeter) encodeBody(w *writer) {
	w.u32(obj.MeterId)
}

func (obj *InstructionMeter) decodeBody(c *Cursor) (err error) {
	obj.MeterId, err = c.Uint32(RecordInstructionMeter)
	return
}

func (obj *InstructionExperimenter) isInstruction() {}
func (obj *InstructionExperimenter) Len() int       { return 8 + len(obj.Data) }
func (obj *InstructionExperimenter) record() Record { return RecordInstructionExperimenter }

func (obj *InstructionExperimenter) Validate() error {
	if obj.Len()%8 != 0 {
		return errBadf(RecordLength, uint64(obj.Len()), "experimenter instruction is not 8 byte aligned")
	}
	return nil
}

func (obj *InstructionExperimenter) encodeBody(w *writer) {
	w.u32(obj.Experimenter)
	w.bytes(obj.Data)
}

func (obj *InstructionExperimenter) decodeBody(c *Cursor) (err error) {
	if obj.Experimenter, err = c.Uint32(RecordInstructionExperimenter); err != nil {
		return
	}
	obj.Data = c.Rest()
	return
}

// validateMeterId accepts configurable meters and the two virtual ones.
func validateMeterId(id uint32) error {
	switch {
	case id == 0:
		return errBad(RecordMeterId, uint64(id))
	case id <= OFPM_MAX, id == OFPM_SLOWPATH, id == OFPM_CONTROLLER:
		return nil
	}
	return errBad(RecordMeterId, uint64(id))
}
