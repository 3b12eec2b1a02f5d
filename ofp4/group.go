package ofp4

// Bucket is ofp_bucket.
type Bucket struct {
	Weight     uint16
	WatchPort  uint32
	WatchGroup uint32
	Actions    []Action
}

func (obj Bucket) Len() int {
	return 16 + seqLen(obj.Actions)
}

func (obj Bucket) Validate() error {
	return validateSeq(obj.Actions, RecordActionType)
}

func (obj Bucket) encode(w *writer) {
	w.u16(uint16(obj.Len()))
	w.u16(obj.Weight)
	w.u32(obj.WatchPort)
	w.u32(obj.WatchGroup)
	w.pad(4)
	encodeActions(w, obj.Actions)
}

func decodeBucket(c *Cursor) (obj Bucket, err error) {
	b, err := carve(c, RecordBucket, 0, 16)
	if err != nil {
		return
	}
	b.Skip(2, RecordBucket)
	obj.Weight, _ = b.Uint16(RecordBucket)
	obj.WatchPort, _ = b.Uint32(RecordBucket)
	obj.WatchGroup, _ = b.Uint32(RecordBucket)
	b.Skip(4, RecordBucket)
	obj.Actions, err = decodeActions(b)
	return
}

func decodeBuckets(c *Cursor) ([]Bucket, error) {
	return decodeSeq(c, RecordBucketList, 2, decodeBucket)
}

func encodeBuckets(w *writer, buckets []Bucket) {
	for _, b := range buckets {
		b.encode(w)
	}
}

func validateBuckets(groupType uint8, buckets []Bucket) error {
	for _, b := range buckets {
		if groupType != OFPGT_SELECT && b.Weight != 0 {
			return errBadf(RecordBucketWeight, uint64(b.Weight), "weight in group type %d", groupType)
		}
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GroupMod is the OFPT_GROUP_MOD body.
type GroupMod struct {
	Command   uint16
	GroupType uint8
	GroupId   uint32
	Buckets   []Bucket
}

func (obj *GroupMod) Type() uint8 { return OFPT_GROUP_MOD }

func (obj *GroupMod) Len() int {
	return 8 + seqLen(obj.Buckets)
}

func (obj *GroupMod) Validate() error {
	if obj.Command > OFPGC_DELETE {
		return errBad(RecordGroupModCommand, uint64(obj.Command))
	}
	if obj.GroupType > OFPGT_FF {
		return errBad(RecordGroupType, uint64(obj.GroupType))
	}
	if obj.GroupId > OFPG_MAX && !(obj.Command == OFPGC_DELETE && obj.GroupId == OFPG_ALL) {
		return errBad(RecordGroupId, uint64(obj.GroupId))
	}
	return validateBuckets(obj.GroupType, obj.Buckets)
}

func (obj *GroupMod) encode(w *writer) {
	w.u16(obj.Command)
	w.u8(obj.GroupType)
	w.pad(1)
	w.u32(obj.GroupId)
	encodeBuckets(w, obj.Buckets)
}

func (obj *GroupMod) decode(c *Cursor) (err error) {
	if obj.Command, err = c.Uint16(RecordGroupMod); err != nil {
		return
	}
	if obj.GroupType, err = c.Uint8(RecordGroupMod); err != nil {
		return
	}
	if err = c.Skip(1, RecordGroupMod); err != nil {
		return
	}
	if obj.GroupId, err = c.Uint32(RecordGroupMod); err != nil {
		return
	}
	obj.Buckets, err = decodeBuckets(c)
	return
}

// GroupStatsRequest is the OFPMP_GROUP request body.
type GroupStatsRequest struct {
	GroupId uint32
}

func (obj *GroupStatsRequest) MultipartType() uint16 { return OFPMP_GROUP }
func (obj *GroupStatsRequest) Len() int              { return 8 }

func (obj *GroupStatsRequest) Validate() error {
	if obj.GroupId > OFPG_MAX && obj.GroupId != OFPG_ALL {
		return errBad(RecordGroupId, uint64(obj.GroupId))
	}
	return nil
}

func (obj *GroupStatsRequest) encode(w *writer) {
	w.u32(obj.GroupId)
	w.pad(4)
}

func (obj *GroupStatsRequest) decode(c *Cursor) (err error) {
	if obj.GroupId, err = c.Uint32(RecordGroupStatsRequest); err != nil {
		return
	}
	return c.Skip(4, RecordGroupStatsRequest)
}

type BucketCounter struct {
	PacketCount uint64
	ByteCount   uint64
}

func (obj BucketCounter) Len() int { return 16 }

func decodeBucketCounter(c *Cursor) (obj BucketCounter, err error) {
	if obj.PacketCount, err = c.Uint64(RecordBucketCounter); err != nil {
		return
	}
	obj.ByteCount, err = c.Uint64(RecordBucketCounter)
	return
}

// GroupStats is ofp_group_stats.
type GroupStats struct {
	GroupId      uint32
	RefCount     uint32
	PacketCount  uint64
	ByteCount    uint64
	DurationSec  uint32
	DurationNsec uint32
	BucketStats  []BucketCounter
}

func (obj GroupStats) Len() int {
	return 40 + seqLen(obj.BucketStats)
}

func (obj GroupStats) Validate() error {
	if obj.GroupId > OFPG_MAX {
		return errBad(RecordGroupId, uint64(obj.GroupId))
	}
	return nil
}

func (obj GroupStats) encode(w *writer) {
	w.u16(uint16(obj.Len()))
	w.pad(2)
	w.u32(obj.GroupId)
	w.u32(obj.RefCount)
	w.pad(4)
	w.u64(obj.PacketCount)
	w.u64(obj.ByteCount)
	w.u32(obj.DurationSec)
	w.u32(obj.DurationNsec)
	for _, b := range obj.BucketStats {
		w.u64(b.PacketCount)
		w.u64(b.ByteCount)
	}
}

func decodeGroupStats(c *Cursor) (obj GroupStats, err error) {
	g, err := carve(c, RecordGroupStats, 0, 40)
	if err != nil {
		return
	}
	g.Skip(4, RecordGroupStats)
	obj.GroupId, _ = g.Uint32(RecordGroupStats)
	obj.RefCount, _ = g.Uint32(RecordGroupStats)
	g.Skip(4, RecordGroupStats)
	obj.PacketCount, _ = g.Uint64(RecordGroupStats)
	obj.ByteCount, _ = g.Uint64(RecordGroupStats)
	obj.DurationSec, _ = g.Uint32(RecordGroupStats)
	obj.DurationNsec, _ = g.Uint32(RecordGroupStats)
	obj.BucketStats, err = decodeSeq(g, RecordBucketCounterList, 16, decodeBucketCounter)
	return
}

// GroupDesc is ofp_group_desc.
type GroupDesc struct {
	GroupType uint8
	GroupId   uint32
	Buckets   []Bucket
}

func (obj GroupDesc) Len() int {
	return 8 + seqLen(obj.Buckets)
}

func (obj GroupDesc) Validate() error {
	if obj.GroupType > OFPGT_FF {
		return errBad(RecordGroupType, uint64(obj.GroupType))
	}
	if obj.GroupId > OFPG_MAX {
		return errBad(RecordGroupId, uint64(obj.GroupId))
	}
	return validateBuckets(obj.GroupType, obj.Buckets)
}

func (obj GroupDesc) encode(w *writer) {
	w.u16(uint16(obj.Len()))
	w.u8(obj.GroupType)
	w.pad(1)
	w.u32(obj.GroupId)
	encodeBuckets(w, obj.Buckets)
}

func decodeGroupDesc(c *Cursor) (obj GroupDesc, err error) {
	g, err := carve(c, RecordGroupDesc, 0, 8)
	if err != nil {
		return
	}
	g.Skip(2, RecordGroupDesc)
	obj.GroupType, _ = g.Uint8(RecordGroupDesc)
	g.Skip(1, RecordGroupDesc)
	obj.GroupId, _ = g.Uint32(RecordGroupDesc)
	obj.Buckets, err = decodeBuckets(g)
	return
}

// GroupFeatures is the OFPMP_GROUP_FEATURES reply body.
type GroupFeatures struct {
	Types        uint32
	Capabilities uint32
	MaxGroups    [4]uint32
	Actions      [4]uint32
}

func (obj *GroupFeatures) MultipartType() uint16 { return OFPMP_GROUP_FEATURES }
func (obj *GroupFeatures) Len() int              { return 40 }

func (obj *GroupFeatures) Validate() error {
	if obj.Types>>(OFPGT_FF+1) != 0 {
		return errBad(RecordGroupType, uint64(obj.Types))
	}
	return nil
}

func (obj *GroupFeatures) encode(w *writer) {
	w.u32(obj.Types)
	w.u32(obj.Capabilities)
	for _, v := range obj.MaxGroups {
		w.u32(v)
	}
	for _, v := range obj.Actions {
		w.u32(v)
	}
}

func (obj *GroupFeatures) decode(c *Cursor) (err error) {
	g, err := c.Sub(40, RecordGroupFeatures)
	if err != nil {
		return
	}
	obj.Types, _ = g.Uint32(RecordGroupFeatures)
	obj.Capabilities, _ = g.Uint32(RecordGroupFeatures)
	for i := range obj.MaxGroups {
		obj.MaxGroups[i], _ = g.Uint32(RecordGroupFeatures)
	}
	for i := range obj.Actions {
		obj.Actions[i], _ = g.Uint32(RecordGroupFeatures)
	}
	return
}
