package ofp4

import (
	"github.com/ofwire/gopenflow/oxm"
)

// TableMod is the OFPT_TABLE_MOD body.
type TableMod struct {
	TableId uint8
	Config  uint32
}

func (obj *TableMod) Type() uint8 { return OFPT_TABLE_MOD }
func (obj *TableMod) Len() int    { return 8 }

func (obj *TableMod) Validate() error {
	if obj.Config&^OFPTC_DEPRECATED_MASK != 0 {
		return errBad(RecordConfigFlags, uint64(obj.Config))
	}
	return nil
}

func (obj *TableMod) encode(w *writer) {
	w.u8(obj.TableId)
	w.pad(3)
	w.u32(obj.Config)
}

func (obj *TableMod) decode(c *Cursor) (err error) {
	if obj.TableId, err = c.Uint8(RecordTableMod); err != nil {
		return
	}
	if err = c.Skip(3, RecordTableMod); err != nil {
		return
	}
	obj.Config, err = c.Uint32(RecordTableMod)
	return
}

// TableStats is ofp_table_stats.
type TableStats struct {
	TableId      uint8
	ActiveCount  uint32
	LookupCount  uint64
	MatchedCount uint64
}

func (obj TableStats) Len() int { return 24 }

func (obj TableStats) Validate() error {
	if obj.TableId > OFPTT_MAX {
		return errBad(RecordTableId, uint64(obj.TableId))
	}
	return nil
}

func (obj TableStats) encode(w *writer) {
	w.u8(obj.TableId)
	w.pad(3)
	w.u32(obj.ActiveCount)
	w.u64(obj.LookupCount)
	w.u64(obj.MatchedCount)
}

func decodeTableStats(c *Cursor) (obj TableStats, err error) {
	t, err := c.Sub(24, RecordTableStats)
	if err != nil {
		return
	}
	obj.TableId, _ = t.Uint8(RecordTableStats)
	t.Skip(3, RecordTableStats)
	obj.ActiveCount, _ = t.Uint32(RecordTableStats)
	obj.LookupCount, _ = t.Uint64(RecordTableStats)
	obj.MatchedCount, _ = t.Uint64(RecordTableStats)
	return
}

// TableFeatures is ofp_table_features.
type TableFeatures struct {
	TableId       uint8
	Name          string
	MetadataMatch uint64
	MetadataWrite uint64
	Config        uint32
	MaxEntries    uint32
	Properties    []TableFeatureProp
}

func (obj TableFeatures) Len() int {
	return 64 + paddedSeqLen(obj.Properties)
}

func (obj TableFeatures) Validate() error {
	if obj.TableId > OFPTT_MAX {
		return errBad(RecordTableId, uint64(obj.TableId))
	}
	if err := validateName(obj.Name, OFP_MAX_TABLE_NAME_LEN, RecordTableName); err != nil {
		return err
	}
	return validateSeq(obj.Properties, RecordTableFeaturePropType)
}

func (obj TableFeatures) encode(w *writer) {
	w.u16(uint16(obj.Len()))
	w.u8(obj.TableId)
	w.pad(5)
	w.str(obj.Name, OFP_MAX_TABLE_NAME_LEN)
	w.u64(obj.MetadataMatch)
	w.u64(obj.MetadataWrite)
	w.u32(obj.Config)
	w.u32(obj.MaxEntries)
	for _, p := range obj.Properties {
		encodeTLV(w, p, true)
	}
}

func decodeTableFeatures(c *Cursor) (obj TableFeatures, err error) {
	t, err := carve(c, RecordTableFeatures, 0, 64)
	if err != nil {
		return
	}
	t.Skip(2, RecordTableFeatures)
	obj.TableId, _ = t.Uint8(RecordTableFeatures)
	t.Skip(5, RecordTableFeatures)
	name, _ := t.Bytes(OFP_MAX_TABLE_NAME_LEN, RecordTableFeatures)
	obj.Name = cstr(name)
	obj.MetadataMatch, _ = t.Uint64(RecordTableFeatures)
	obj.MetadataWrite, _ = t.Uint64(RecordTableFeatures)
	obj.Config, _ = t.Uint32(RecordTableFeatures)
	obj.MaxEntries, _ = t.Uint32(RecordTableFeatures)
	obj.Properties, err = decodeSeq(t, RecordTableFeaturePropList, 4, decodeTableFeatureProp)
	return
}

func decodeTableFeaturesList(c *Cursor) ([]TableFeatures, error) {
	return decodeSeq(c, RecordTableFeaturesList, 2, decodeTableFeatures)
}

// TableFeatureProp is one alternative of ofp_table_feature_prop_header.
// Its length excludes the padding to 8 bytes. The Miss flag selects
// the _MISS property type of the same layout.
type TableFeatureProp interface {
	tlv
	isTableFeatureProp()
}

type TableFeaturePropInstructions struct {
	Miss           bool
	InstructionIds []InstructionId
}

type TableFeaturePropNextTables struct {
	Miss         bool
	NextTableIds []uint8
}

type TableFeaturePropWriteActions struct {
	Miss      bool
	ActionIds []ActionId
}

type TableFeaturePropApplyActions struct {
	Miss      bool
	ActionIds []ActionId
}

type TableFeaturePropMatch struct {
	OxmIds []OxmId
}

type TableFeaturePropWildcards struct {
	OxmIds []OxmId
}

type TableFeaturePropWriteSetfield struct {
	Miss   bool
	OxmIds []OxmId
}

type TableFeaturePropApplySetfield struct {
	Miss   bool
	OxmIds []OxmId
}

type TableFeaturePropExperimenter struct {
	Miss         bool
	Experimenter uint32
	ExpType      uint32
	Data         []byte
}

func miss(base uint16, m bool) uint16 {
	if m {
		return base + 1
	}
	return base
}

func (obj *TableFeaturePropInstructions) Type() uint16 { return miss(OFPTFPT_INSTRUCTIONS, obj.Miss) }
func (obj *TableFeaturePropNextTables) Type() uint16   { return miss(OFPTFPT_NEXT_TABLES, obj.Miss) }
func (obj *TableFeaturePropWriteActions) Type() uint16 { return miss(OFPTFPT_WRITE_ACTIONS, obj.Miss) }
func (obj *TableFeaturePropApplyActions) Type() uint16 { return miss(OFPTFPT_APPLY_ACTIONS, obj.Miss) }
func (obj *TableFeaturePropMatch) Type() uint16        { return OFPTFPT_MATCH }
func (obj *TableFeaturePropWildcards) Type() uint16    { return OFPTFPT_WILDCARDS }
func (obj *TableFeaturePropWriteSetfield) Type() uint16 {
	return miss(OFPTFPT_WRITE_SETFIELD, obj.Miss)
}
func (obj *TableFeaturePropApplySetfield) Type() uint16 {
	return miss(OFPTFPT_APPLY_SETFIELD, obj.Miss)
}
func (obj *TableFeaturePropExperimenter) Type() uint16 {
	return miss(OFPTFPT_EXPERIMENTER, obj.Miss)
}

func newTableFeatureProp(typ uint16) (TableFeatureProp, error) {
	switch typ {
	case OFPTFPT_INSTRUCTIONS, OFPTFPT_INSTRUCTIONS_MISS:
		return &TableFeaturePropInstructions{Miss: typ == OFPTFPT_INSTRUCTIONS_MISS}, nil
	case OFPTFPT_NEXT_TABLES, OFPTFPT_NEXT_TABLES_MISS:
		return &TableFeaturePropNextTables{Miss: typ == OFPTFPT_NEXT_TABLES_MISS}, nil
	case OFPTFPT_WRITE_ACTIONS, OFPTFPT_WRITE_ACTIONS_MISS:
		return &TableFeaturePropWriteActions{Miss: typ == OFPTFPT_WRITE_ACTIONS_MISS}, nil
	case OFPTFPT_APPLY_ACTIONS, OFPTFPT_APPLY_ACTIONS_MISS:
		return &TableFeaturePropApplyActions{Miss: typ == OFPTFPT_APPLY_ACTIONS_MISS}, nil
	case OFPTFPT_MATCH:
		return new(TableFeaturePropMatch), nil
	case OFPTFPT_WILDCARDS:
		return new(TableFeaturePropWildcards), nil
	case OFPTFPT_WRITE_SETFIELD, OFPTFPT_WRITE_SETFIELD_MISS:
		return &TableFeaturePropWriteSetfield{Miss: typ == OFPTFPT_WRITE_SETFIELD_MISS}, nil
	case OFPTFPT_APPLY_SETFIELD, OFPTFPT_APPLY_SETFIELD_MISS:
		return &TableFeaturePropApplySetfield{Miss: typ == OFPTFPT_APPLY_SETFIELD_MISS}, nil
	case OFPTFPT_EXPERIMENTER, OFPTFPT_EXPERIMENTER_MISS:
		return &TableFeaturePropExperimenter{Miss: typ == OFPTFPT_EXPERIMENTER_MISS}, nil
	}
	return nil, errBad(RecordTableFeaturePropType, uint64(typ))
}

func decodeTableFeatureProp(c *Cursor) (TableFeatureProp, error) {
	return decodeTLV(c, RecordTableFeatureProp, true, newTableFeatureProp)
}

// InstructionId names an instruction type a table supports. Data holds
// what follows the type and length, such as an experimenter id.
type InstructionId struct {
	Type uint16
	Data []byte
}

func (obj InstructionId) Len() int { return 4 + len(obj.Data) }

func (obj InstructionId) Validate() error {
	if _, err := newInstruction(obj.Type); err != nil {
		return err
	}
	return nil
}

// ActionId names an action type a table supports.
type ActionId struct {
	Type uint16
	Data []byte
}

func (obj ActionId) Len() int { return 4 + len(obj.Data) }

func (obj ActionId) Validate() error {
	if _, err := newAction(obj.Type); err != nil {
		return err
	}
	return nil
}

func encodeId(w *writer, typ uint16, data []byte) {
	w.u16(typ)
	w.u16(uint16(4 + len(data)))
	w.bytes(data)
}

func decodeId(c *Cursor, rec Record) (uint16, []byte, error) {
	id, err := carve(c, rec, 2, 4)
	if err != nil {
		return 0, nil, err
	}
	typ, _ := id.Uint16(rec)
	id.Skip(2, rec)
	return typ, id.Rest(), nil
}

func decodeInstructionId(c *Cursor) (InstructionId, error) {
	typ, data, err := decodeId(c, RecordInstructionId)
	return InstructionId{Type: typ, Data: data}, err
}

func decodeActionId(c *Cursor) (ActionId, error) {
	typ, data, err := decodeId(c, RecordActionId)
	return ActionId{Type: typ, Data: data}, err
}

// OxmId is an oxm header without payload; experimenter ids carry
// the experimenter id as well.
type OxmId struct {
	Header       oxm.Header
	Experimenter uint32
}

func (obj OxmId) Len() int {
	if obj.Header.Class() == oxm.OFPXMC_EXPERIMENTER {
		return 8
	}
	return 4
}

func (obj OxmId) Validate() error {
	switch obj.Header.Class() {
	case oxm.OFPXMC_OPENFLOW_BASIC:
		if _, ok := oxm.LookupBasic(obj.Header.Field()); !ok {
			return errBad(RecordOxmField, uint64(obj.Header.Field()))
		}
	case oxm.OFPXMC_EXPERIMENTER, oxm.OFPXMC_NXM_0, oxm.OFPXMC_NXM_1:
	default:
		return errBad(RecordOxmClass, uint64(obj.Header.Class()))
	}
	return nil
}

func (obj OxmId) encode(w *writer) {
	w.u32(uint32(obj.Header))
	if obj.Header.Class() == oxm.OFPXMC_EXPERIMENTER {
		w.u32(obj.Experimenter)
	}
}

func decodeOxmId(c *Cursor) (obj OxmId, err error) {
	h, err := c.Uint32(RecordOxmId)
	if err != nil {
		return
	}
	obj.Header = oxm.Header(h)
	if obj.Header.Class() == oxm.OFPXMC_EXPERIMENTER {
		obj.Experimenter, err = c.Uint32(RecordOxmId)
	}
	return
}

func encodeOxmIds(w *writer, ids []OxmId) {
	for _, id := range ids {
		id.encode(w)
	}
}

func decodeOxmIds(c *Cursor) ([]OxmId, error) {
	return decodeSeq(c, RecordOxmIdList, 4, decodeOxmId)
}

func (obj *TableFeaturePropInstructions) isTableFeatureProp() {}
func (obj *TableFeaturePropInstructions) record() Record      { return RecordTableFeaturePropInstructions }

func (obj *TableFeaturePropInstructions) Len() int {
	return 4 + seqLen(obj.InstructionIds)
}

func (obj *TableFeaturePropInstructions) Validate() error {
	return validateSeq(obj.InstructionIds, RecordInstructionType)
}

func (obj *TableFeaturePropInstructions) encodeBody(w *writer) {
	for _, id := range obj.InstructionIds {
		encodeId(w, id.Type, id.Data)
	}
}

func (obj *TableFeaturePropInstructions) decodeBody(c *Cursor) (err error) {
	obj.InstructionIds, err = decodeSeq(c, RecordInstructionIdList, 4, decodeInstructionId)
	return
}

func (obj *TableFeaturePropNextTables) isTableFeatureProp() {}
func (obj *TableFeaturePropNextTables) record() Record      { return RecordTableFeaturePropNextTables }

func (obj *TableFeaturePropNextTables) Len() int {
	return 4 + len(obj.NextTableIds)
}

func (obj *TableFeaturePropNextTables) Validate() error {
	for _, id := range obj.NextTableIds {
		if id > OFPTT_MAX {
			return errBad(RecordTableId, uint64(id))
		}
	}
	return nil
}

func (obj *TableFeaturePropNextTables) encodeBody(w *writer) {
	w.bytes(obj.NextTableIds)
}

func (obj *TableFeaturePropNextTables) decodeBody(c *Cursor) error {
	obj.NextTableIds = c.Rest()
	return nil
}

func (obj *TableFeaturePropWriteActions) isTableFeatureProp() {}
func (obj *TableFeaturePropWriteActions) record() Record      { return RecordTableFeaturePropActions }

func (obj *TableFeaturePropWriteActions) Len() int {
	return 4 + seqLen(obj.ActionIds)
}

func (obj *TableFeaturePropWriteActions) Validate() error {
	return validateSeq(obj.ActionIds, RecordActionType)
}

func (obj *TableFeaturePropWriteActions) encodeBody(w *writer) {
	for _, id := range obj.ActionIds {
		encodeId(w, id.Type, id.Data)
	}
}

func (obj *TableFeaturePropWriteActions) decodeBody(c *Cursor) (err error) {
	obj.ActionIds, err = decodeSeq(c, RecordActionIdList, 4, decodeActionId)
	return
}

func (obj *TableFeaturePropApplyActions) isTableFeatureProp() {}
func (obj *TableFeaturePropApplyActions) record() Record      { return RecordTableFeaturePropActions }

func (obj *TableFeaturePropApplyActions) Len() int {
	return 4 + seqLen(obj.ActionIds)
}

func (obj *TableFeaturePropApplyActions) Validate() error {
	return validateSeq(obj.ActionIds, RecordActionType)
}

func (obj *TableFeaturePropApplyActions) encodeBody(w *writer) {
	for _, id := range obj.ActionIds {
		encodeId(w, id.Type, id.Data)
	}
}

func (obj *TableFeaturePropApplyActions) decodeBody(c *Cursor) (err error) {
	obj.ActionIds, err = decodeSeq(c, RecordActionIdList, 4, decodeActionId)
	return
}

func (obj *TableFeaturePropMatch) isTableFeatureProp() {}
func (obj *TableFeaturePropMatch) record() Record      { return RecordTableFeaturePropOxm }
func (obj *TableFeaturePropMatch) Len() int            { return 4 + seqLen(obj.OxmIds) }
func (obj *TableFeaturePropMatch) Validate() error     { return validateSeq(obj.OxmIds, RecordOxmClass) }
func (obj *TableFeaturePropMatch) encodeBody(w *writer) {
	encodeOxmIds(w, obj.OxmIds)
}
func (obj *TableFeaturePropMatch) decodeBody(c *Cursor) (err error) {
	obj.OxmIds, err = decodeOxmIds(c)
	return
}

func (obj *TableFeaturePropWildcards) isTableFeatureProp() {}
func (obj *TableFeaturePropWildcards) record() Record      { return RecordTableFeaturePropOxm }
func (obj *TableFeaturePropWildcards) Len() int            { return 4 + seqLen(obj.OxmIds) }
func (obj *TableFeaturePropWildcards) Validate() error {
	return validateSeq(obj.OxmIds, RecordOxmClass)
}
func (obj *TableFeaturePropWildcards) encodeBody(w *writer) {
	encodeOxmIds(w, obj.OxmIds)
}
func (obj *TableFeaturePropWildcards) decodeBody(c *Cursor) (err error) {
	obj.OxmIds, err = decodeOxmIds(c)
	return
}

func (obj *TableFeaturePropWriteSetfield) isTableFeatureProp() {}
func (obj *TableFeaturePropWriteSetfield) record() Record      { return RecordTableFeaturePropOxm }
func (obj *TableFeaturePropWriteSetfield) Len() int            { return 4 + seqLen(obj.OxmIds) }
func (obj *TableFeaturePropWriteSetfield) Validate() error {
	return validateSeq(obj.OxmIds, RecordOxmClass)
}
func (obj *TableFeaturePropWriteSetfield) encodeBody(w *writer) {
	encodeOxmIds(w, obj.OxmIds)
}
func (obj *TableFeaturePropWriteSetfield) decodeBody(c *Cursor) (err error) {
	obj.OxmIds, err = decodeOxmIds(c)
	return
}

func (obj *TableFeaturePropApplySetfield) isTableFeatureProp() {}
func (obj *TableFeaturePropApplySetfield) record() Record      { return RecordTableFeaturePropOxm }
func (obj *TableFeaturePropApplySetfield) Len() int            { return 4 + seqLen(obj.OxmIds) }
func (obj *TableFeaturePropApplySetfield) Validate() error {
	return validateSeq(obj.OxmIds, RecordOxmClass)
}
func (obj *TableFeaturePropApplySetfield) encodeBody(w *writer) {
	encodeOxmIds(w, obj.OxmIds)
}
func (obj *TableFeaturePropApplySetfield) decodeBody(c *Cursor) (err error) {
	obj.OxmIds, err = decodeOxmIds(c)
	return
}

func (obj *TableFeaturePropExperimenter) isTableFeatureProp() {}
func (obj *TableFeaturePropExperimenter) Len() int            { return 12 + len(obj.Data) }
func (obj *TableFeaturePropExperimenter) Validate() error     { return nil }
func (obj *TableFeaturePropExperimenter) record() Record {
	return RecordTableFeaturePropExperimenter
}

func (obj *TableFeaturePropExperimenter) encodeBody(w *writer) {
	w.u32(obj.Experimenter)
	w.u32(obj.ExpType)
	w.bytes(obj.Data)
}

func (obj *TableFeaturePropExperimenter) decodeBody(c *Cursor) (err error) {
	if obj.Experimenter, err = c.Uint32(RecordTableFeaturePropExperimenter); err != nil {
		return
	}
	if obj.ExpType, err = c.Uint32(RecordTableFeaturePropExperimenter); err != nil {
		return
	}
	obj.Data = c.Rest()
	return
}
