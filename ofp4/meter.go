package ofp4

// MeterBand is one alternative of ofp_meter_band_header.
type MeterBand interface {
	tlv
	isMeterBand()
}

type MeterBandDrop struct {
	Rate      uint32
	BurstSize uint32
}

type MeterBandDscpRemark struct {
	Rate      uint32
	BurstSize uint32
	PrecLevel uint8
}

type MeterBandExperimenter struct {
	Rate         uint32
	BurstSize    uint32
	Experimenter uint32
	Data         []byte
}

func (*MeterBandDrop) Type() uint16         { return OFPMBT_DROP }
func (*MeterBandDscpRemark) Type() uint16   { return OFPMBT_DSCP_REMARK }
func (*MeterBandExperimenter) Type() uint16 { return OFPMBT_EXPERIMENTER }

func newMeterBand(typ uint16) (MeterBand, error) {
	switch typ {
	case OFPMBT_DROP:
		return new(MeterBandDrop), nil
	case OFPMBT_DSCP_REMARK:
		return new(MeterBandDscpRemark), nil
	case OFPMBT_EXPERIMENTER:
		return new(MeterBandExperimenter), nil
	}
	return nil, errBad(RecordMeterBandType, uint64(typ))
}

func decodeMeterBand(c *Cursor) (MeterBand, error) {
	return decodeTLV(c, RecordMeterBand, false, newMeterBand)
}

func decodeMeterBands(c *Cursor) ([]MeterBand, error) {
	return decodeSeq(c, RecordBandList, 4, decodeMeterBand)
}

func encodeMeterBands(w *writer, bands []MeterBand) {
	for _, b := range bands {
		encodeTLV(w, b, false)
	}
}

func (obj *MeterBandDrop) isMeterBand()    {}
func (obj *MeterBandDrop) Len() int        { return 16 }
func (obj *MeterBandDrop) Validate() error { return nil }
func (obj *MeterBandDrop) record() Record  { return RecordMeterBandDrop }

func (obj *MeterBandDrop) encodeBody(w *writer) {
	w.u32(obj.Rate)
	w.u32(obj.BurstSize)
	w.pad(4)
}

func (obj *MeterBandDrop) decodeBody(c *Cursor) (err error) {
	if obj.Rate, err = c.Uint32(RecordMeterBandDrop); err != nil {
		return
	}
	if obj.BurstSize, err = c.Uint32(RecordMeterBandDrop); err != nil {
		return
	}
	return c.Skip(4, RecordMeterBandDrop)
}

func (obj *MeterBandDscpRemark) isMeterBand()   {}
func (obj *MeterBandDscpRemark) Len() int       { return 16 }
func (obj *MeterBandDscpRemark) record() Record { return RecordMeterBandDscpRemark }

func (obj *MeterBandDscpRemark) Validate() error {
	// dscp is six bits
	if obj.PrecLevel > 63 {
		return errBad(RecordPrecLevel, uint64(obj.PrecLevel))
	}
	return nil
}

func (obj *MeterBandDscpRemark) encodeBody(w *writer) {
	w.u32(obj.Rate)
	w.u32(obj.BurstSize)
	w.u8(obj.PrecLevel)
	w.pad(3)
}

func (obj *MeterBandDscpRemark) decodeBody(c *Cursor) (err error) {
	if obj.Rate, err = c.Uint32(RecordMeterBandDscpRemark); err != nil {
		return
	}
	if obj.BurstSize, err = c.Uint32(RecordMeterBandDscpRemark); err != nil {
		return
	}
	if obj.PrecLevel, err = c.Uint8(RecordMeterBandDscpRemark); err != nil {
		return
	}
	return c.Skip(3, RecordMeterBandDscpRemark)
}

func (obj *MeterBandExperimenter) isMeterBand()    {}
func (obj *MeterBandExperimenter) Len() int        { return 16 + len(obj.Data) }
func (obj *MeterBandExperimenter) Validate() error { return nil }
func (obj *MeterBandExperimenter) record() Record  { return RecordMeterBandExperimenter }

func (obj *MeterBandExperimenter) encodeBody(w *writer) {
	w.u32(obj.Rate)
	w.u32(obj.BurstSize)
	w.u32(obj.Experimenter)
	w.bytes(obj.Data)
}

func (obj *MeterBandExperimenter) decodeBody(c *Cursor) (err error) {
	if obj.Rate, err = c.Uint32(RecordMeterBandExperimenter); err != nil {
		return
	}
	if obj.BurstSize, err = c.Uint32(RecordMeterBandExperimenter); err != nil {
		return
	}
	if obj.Experimenter, err = c.Uint32(RecordMeterBandExperimenter); err != nil {
		return
	}
	obj.Data = c.Rest()
	return
}

func validateMeterFlags(flags uint16) error {
	if flags&^(OFPMF_KBPS|OFPMF_PKTPS|OFPMF_BURST|OFPMF_STATS) != 0 {
		return errBad(RecordMeterFlags, uint64(flags))
	}
	if flags&OFPMF_KBPS != 0 && flags&OFPMF_PKTPS != 0 {
		return errBadf(RecordMeterFlags, uint64(flags), "kbps and pktps")
	}
	return nil
}

// MeterMod is the OFPT_METER_MOD body.
type MeterMod struct {
	Command uint16
	Flags   uint16
	MeterId uint32
	Bands   []MeterBand
}

func (obj *MeterMod) Type() uint8 { return OFPT_METER_MOD }

func (obj *MeterMod) Len() int {
	return 8 + seqLen(obj.Bands)
}

func (obj *MeterMod) Validate() error {
	if obj.Command > OFPMC_DELETE {
		return errBad(RecordMeterModCommand, uint64(obj.Command))
	}
	if err := validateMeterFlags(obj.Flags); err != nil {
		return err
	}
	if !(obj.Command == OFPMC_DELETE && obj.MeterId == OFPM_ALL) {
		if err := validateMeterId(obj.MeterId); err != nil {
			return err
		}
	}
	return validateSeq(obj.Bands, RecordMeterBandType)
}

func (obj *MeterMod) encode(w *writer) {
	w.u16(obj.Command)
	w.u16(obj.Flags)
	w.u32(obj.MeterId)
	encodeMeterBands(w, obj.Bands)
}

func (obj *MeterMod) decode(c *Cursor) (err error) {
	if obj.Command, err = c.Uint16(RecordMeterMod); err != nil {
		return
	}
	if obj.Flags, err = c.Uint16(RecordMeterMod); err != nil {
		return
	}
	if obj.MeterId, err = c.Uint32(RecordMeterMod); err != nil {
		return
	}
	obj.Bands, err = decodeMeterBands(c)
	return
}

// meterRequest is the body shared by the OFPMP_METER and
// OFPMP_METER_CONFIG requests.
type meterRequest struct {
	MeterId uint32
}

func (obj meterRequest) Len() int { return 8 }

func (obj meterRequest) Validate() error {
	if obj.MeterId == OFPM_ALL {
		return nil
	}
	return validateMeterId(obj.MeterId)
}

func (obj meterRequest) encode(w *writer) {
	w.u32(obj.MeterId)
	w.pad(4)
}

func (obj *meterRequest) decode(c *Cursor) (err error) {
	if obj.MeterId, err = c.Uint32(RecordMeterMultipartRequest); err != nil {
		return
	}
	return c.Skip(4, RecordMeterMultipartRequest)
}

type MeterStatsRequest struct {
	MeterId uint32
}

func (obj *MeterStatsRequest) MultipartType() uint16 { return OFPMP_METER }
func (obj *MeterStatsRequest) Len() int              { return 8 }
func (obj *MeterStatsRequest) Validate() error       { return meterRequest(*obj).Validate() }
func (obj *MeterStatsRequest) encode(w *writer)      { meterRequest(*obj).encode(w) }
func (obj *MeterStatsRequest) decode(c *Cursor) error {
	return (*meterRequest)(obj).decode(c)
}

type MeterConfigRequest struct {
	MeterId uint32
}

func (obj *MeterConfigRequest) MultipartType() uint16 { return OFPMP_METER_CONFIG }
func (obj *MeterConfigRequest) Len() int              { return 8 }
func (obj *MeterConfigRequest) Validate() error       { return meterRequest(*obj).Validate() }
func (obj *MeterConfigRequest) encode(w *writer)      { meterRequest(*obj).encode(w) }
func (obj *MeterConfigRequest) decode(c *Cursor) error {
	return (*meterRequest)(obj).decode(c)
}

type MeterBandStats struct {
	PacketBandCount uint64
	ByteBandCount   uint64
}

func (obj MeterBandStats) Len() int { return 16 }

func decodeMeterBandStats(c *Cursor) (obj MeterBandStats, err error) {
	if obj.PacketBandCount, err = c.Uint64(RecordMeterBandStats); err != nil {
		return
	}
	obj.ByteBandCount, err = c.Uint64(RecordMeterBandStats)
	return
}

// MeterStats is ofp_meter_stats. Its length sits after the meter id.
type MeterStats struct {
	MeterId       uint32
	FlowCount     uint32
	PacketInCount uint64
	ByteInCount   uint64
	DurationSec   uint32
	DurationNsec  uint32
	BandStats     []MeterBandStats
}

func (obj MeterStats) Len() int {
	return 40 + seqLen(obj.BandStats)
}

func (obj MeterStats) Validate() error {
	return validateMeterId(obj.MeterId)
}

func (obj MeterStats) encode(w *writer) {
	w.u32(obj.MeterId)
	w.u16(uint16(obj.Len()))
	w.pad(6)
	w.u32(obj.FlowCount)
	w.u64(obj.PacketInCount)
	w.u64(obj.ByteInCount)
	w.u32(obj.DurationSec)
	w.u32(obj.DurationNsec)
	for _, b := range obj.BandStats {
		w.u64(b.PacketBandCount)
		w.u64(b.ByteBandCount)
	}
}

func decodeMeterStats(c *Cursor) (obj MeterStats, err error) {
	m, err := carve(c, RecordMeterStats, 4, 40)
	if err != nil {
		return
	}
	obj.MeterId, _ = m.Uint32(RecordMeterStats)
	m.Skip(8, RecordMeterStats)
	obj.FlowCount, _ = m.Uint32(RecordMeterStats)
	obj.PacketInCount, _ = m.Uint64(RecordMeterStats)
	obj.ByteInCount, _ = m.Uint64(RecordMeterStats)
	obj.DurationSec, _ = m.Uint32(RecordMeterStats)
	obj.DurationNsec, _ = m.Uint32(RecordMeterStats)
	obj.BandStats, err = decodeSeq(m, RecordBandStatsList, 16, decodeMeterBandStats)
	return
}

// MeterConfig is ofp_meter_config.
type MeterConfig struct {
	Flags   uint16
	MeterId uint32
	Bands   []MeterBand
}

func (obj MeterConfig) Len() int {
	return 8 + seqLen(obj.Bands)
}

func (obj MeterConfig) Validate() error {
	if err := validateMeterFlags(obj.Flags); err != nil {
		return err
	}
	if err := validateMeterId(obj.MeterId); err != nil {
		return err
	}
	return validateSeq(obj.Bands, RecordMeterBandType)
}

func (obj MeterConfig) encode(w *writer) {
	w.u16(uint16(obj.Len()))
	w.u16(obj.Flags)
	w.u32(obj.MeterId)
	encodeMeterBands(w, obj.Bands)
}

func decodeMeterConfig(c *Cursor) (obj MeterConfig, err error) {
	m, err := carve(c, RecordMeterConfig, 0, 8)
	if err != nil {
		return
	}
	m.Skip(2, RecordMeterConfig)
	obj.Flags, _ = m.Uint16(RecordMeterConfig)
	obj.MeterId, _ = m.Uint32(RecordMeterConfig)
	obj.Bands, err = decodeMeterBands(m)
	return
}

// MeterFeatures is the OFPMP_METER_FEATURES reply body.
type MeterFeatures struct {
	MaxMeter     uint32
	BandTypes    uint32
	Capabilities uint32
	MaxBands     uint8
	MaxColor     uint8
}

func (obj *MeterFeatures) MultipartType() uint16 { return OFPMP_METER_FEATURES }
func (obj *MeterFeatures) Len() int              { return 16 }

func (obj *MeterFeatures) Validate() error {
	if obj.Capabilities&^(OFPMF_KBPS|OFPMF_PKTPS|OFPMF_BURST|OFPMF_STATS) != 0 {
		return errBad(RecordMeterFlags, uint64(obj.Capabilities))
	}
	return nil
}

func (obj *MeterFeatures) encode(w *writer) {
	w.u32(obj.MaxMeter)
	w.u32(obj.BandTypes)
	w.u32(obj.Capabilities)
	w.u8(obj.MaxBands)
	w.u8(obj.MaxColor)
	w.pad(2)
}

func (obj *MeterFeatures) decode(c *Cursor) (err error) {
	m, err := c.Sub(16, RecordMeterFeatures)
	if err != nil {
		return
	}
	obj.MaxMeter, _ = m.Uint32(RecordMeterFeatures)
	obj.BandTypes, _ = m.Uint32(RecordMeterFeatures)
	obj.Capabilities, _ = m.Uint32(RecordMeterFeatures)
	obj.MaxBands, _ = m.Uint8(RecordMeterFeatures)
	obj.MaxColor, _ = m.Uint8(RecordMeterFeatures)
	return
}
