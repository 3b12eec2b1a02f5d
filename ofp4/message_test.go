package ofp4

import (
	"encoding/binary"
	"testing"

	"github.com/ofwire/gopenflow/oxm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basic(field uint8, value ...byte) *OxmBasic {
	return &OxmBasic{Field: field, Value: value}
}

func output(port uint32) *ActionOutput {
	return &ActionOutput{Port: port, MaxLen: OFPCML_NO_BUFFER}
}

func testPort() Port {
	return Port{
		PortNo:    1,
		HwAddr:    [OFP_ETH_ALEN]byte{0, 1, 2, 3, 4, 5},
		Name:      "eth0",
		Config:    OFPPC_PORT_DOWN,
		CurrSpeed: 1000000,
		MaxSpeed:  1000000,
	}
}

// scenarioFlowMod matches in_port=3,eth_type=0x0800 and outputs to port 5.
func scenarioFlowMod() *FlowMod {
	return &FlowMod{
		Command:  OFPFC_ADD,
		Priority: 10,
		BufferId: OFP_NO_BUFFER,
		OutPort:  OFPP_ANY,
		OutGroup: OFPG_ANY,
		Match: Match{Fields: []OxmField{
			basic(oxm.OFPXMT_OFB_IN_PORT, 0, 0, 0, 3),
			basic(oxm.OFPXMT_OFB_ETH_TYPE, 0x08, 0x00),
		}},
		Instructions: []Instruction{
			&InstructionApplyActions{Actions: []Action{output(5)}},
		},
	}
}

func richFlowMod() *FlowMod {
	return &FlowMod{
		Cookie:      0xdead,
		TableId:     1,
		Command:     OFPFC_ADD,
		IdleTimeout: 30,
		HardTimeout: 300,
		Priority:    100,
		BufferId:    OFP_NO_BUFFER,
		OutPort:     OFPP_ANY,
		OutGroup:    OFPG_ANY,
		Flags:       OFPFF_SEND_FLOW_REM,
		Match: Match{Fields: []OxmField{
			basic(oxm.OFPXMT_OFB_ETH_TYPE, 0x08, 0x00),
			&OxmBasic{
				Field: oxm.OFPXMT_OFB_IPV4_SRC,
				Value: []byte{192, 168, 0, 0},
				Mask:  []byte{255, 255, 0, 0},
			},
			basic(oxm.OFPXMT_OFB_IP_PROTO, 6),
			basic(oxm.OFPXMT_OFB_TCP_DST, 0, 80),
		}},
		Instructions: []Instruction{
			&InstructionMeter{MeterId: 1},
			&InstructionApplyActions{Actions: []Action{
				&ActionPushVlan{Ethertype: 0x8100},
				&ActionSetField{Field: basic(oxm.OFPXMT_OFB_VLAN_VID, 0x10, 0x0a)},
				&ActionSetNwTtl{NwTtl: 9},
				&ActionDecNwTtl{},
				&ActionCopyTtlOut{},
			}},
			&InstructionClearActions{},
			&InstructionWriteActions{Actions: []Action{
				&ActionSetQueue{QueueId: 2},
				&ActionGroup{GroupId: 3},
				&ActionPushMpls{Ethertype: 0x8847},
				&ActionSetMplsTtl{MplsTtl: 64},
				&ActionDecMplsTtl{},
				&ActionPopMpls{Ethertype: 0x0800},
				&ActionPopVlan{},
				&ActionPushPbb{Ethertype: 0x88e7},
				&ActionPopPbb{},
				&ActionCopyTtlIn{},
				&ActionExperimenter{Experimenter: 0x2320, Data: []byte{0, 1, 2, 3, 4, 5, 6, 7}},
				&ActionOutput{Port: OFPP_CONTROLLER, MaxLen: 128},
			}},
			&InstructionWriteMetadata{Metadata: 1, MetadataMask: 0xff},
			&InstructionGotoTable{TableId: 2},
		},
	}
}

func testTableFeatures() TableFeatures {
	return TableFeatures{
		TableId:       0,
		Name:          "classifier",
		MetadataMatch: 0xffffffffffffffff,
		MetadataWrite: 0xffffffffffffffff,
		MaxEntries:    1024,
		Properties: []TableFeatureProp{
			&TableFeaturePropInstructions{InstructionIds: []InstructionId{
				{Type: OFPIT_GOTO_TABLE}, {Type: OFPIT_APPLY_ACTIONS},
			}},
			&TableFeaturePropNextTables{NextTableIds: []uint8{1, 2, 3}},
			&TableFeaturePropWriteActions{Miss: true, ActionIds: []ActionId{{Type: OFPAT_OUTPUT}}},
			&TableFeaturePropApplyActions{ActionIds: []ActionId{{Type: OFPAT_GROUP}}},
			&TableFeaturePropMatch{OxmIds: []OxmId{
				{Header: oxm.NewHeader(oxm.OFPXMC_OPENFLOW_BASIC, oxm.OFPXMT_OFB_IN_PORT, false, 4)},
			}},
			&TableFeaturePropWildcards{OxmIds: []OxmId{
				{Header: oxm.NewHeader(oxm.OFPXMC_OPENFLOW_BASIC, oxm.OFPXMT_OFB_IN_PORT, false, 4)},
			}},
			&TableFeaturePropWriteSetfield{OxmIds: []OxmId{
				{Header: oxm.NewHeader(oxm.OFPXMC_EXPERIMENTER, 1, false, 8), Experimenter: 0x4f4e4600},
			}},
			&TableFeaturePropApplySetfield{Miss: true},
			&TableFeaturePropExperimenter{Experimenter: 0x2320, ExpType: 1, Data: []byte{9}},
		},
	}
}

// allMessages returns one well formed message of every type, and
// every multipart body in both directions.
func allMessages() []*Message {
	bodies := []Body{
		&Hello{},
		&Hello{Elements: []HelloElem{&HelloElemVersionBitmap{Bitmaps: []uint32{1<<1 | 1<<4}}}},
		&ErrorMsg{ErrType: OFPET_BAD_REQUEST, Code: OFPBRC_BAD_TYPE, Data: []byte{4, 99, 0, 8}},
		&ErrorMsg{ErrType: OFPET_EXPERIMENTER, Code: 7, Experimenter: 0x2320, Data: []byte{1}},
		&EchoRequest{Data: []byte{0xde, 0xad, 0xbe, 0xef}},
		&EchoReply{},
		&Experimenter{Experimenter: 0x2320, ExpType: 1, Data: []byte{1, 2}},
		&FeaturesRequest{},
		&SwitchFeatures{DatapathId: 1, NBuffers: 256, NTables: 254, Capabilities: OFPC_FLOW_STATS},
		&GetConfigRequest{},
		&GetConfigReply{SwitchConfig{Flags: OFPC_FRAG_NORMAL, MissSendLen: 128}},
		&SetConfig{SwitchConfig{Flags: OFPC_FRAG_NORMAL, MissSendLen: OFPCML_NO_BUFFER}},
		&PacketIn{
			BufferId: OFP_NO_BUFFER,
			TotalLen: 4,
			Reason:   OFPR_ACTION,
			TableId:  1,
			Cookie:   7,
			Match:    Match{Fields: []OxmField{basic(oxm.OFPXMT_OFB_IN_PORT, 0, 0, 0, 1)}},
			Data:     []byte{1, 2, 3, 4},
		},
		&FlowRemoved{Cookie: 1, Priority: 2, Reason: OFPRR_IDLE_TIMEOUT, PacketCount: 3, ByteCount: 4},
		&PortStatus{Reason: OFPPR_ADD, Desc: testPort()},
		&PacketOut{
			BufferId: OFP_NO_BUFFER,
			InPort:   OFPP_CONTROLLER,
			Actions:  []Action{output(OFPP_FLOOD)},
			Data:     []byte{0xff, 0xff},
		},
		scenarioFlowMod(),
		richFlowMod(),
		&GroupMod{
			Command:   OFPGC_ADD,
			GroupType: OFPGT_SELECT,
			GroupId:   1,
			Buckets: []Bucket{
				{Weight: 1, WatchPort: OFPP_ANY, WatchGroup: OFPG_ANY, Actions: []Action{output(1)}},
				{Weight: 2, WatchPort: OFPP_ANY, WatchGroup: OFPG_ANY, Actions: []Action{output(2)}},
			},
		},
		&PortMod{PortNo: 1, HwAddr: [OFP_ETH_ALEN]byte{0, 1, 2, 3, 4, 5}, Config: OFPPC_PORT_DOWN, Mask: OFPPC_PORT_DOWN},
		&TableMod{TableId: 1},
		&BarrierRequest{},
		&BarrierReply{},
		&QueueGetConfigRequest{Port: OFPP_ANY},
		&QueueGetConfigReply{Port: 1, Queues: []PacketQueue{{
			QueueId: 1,
			Port:    1,
			Properties: []QueueProp{
				&QueuePropMinRate{Rate: 100},
				&QueuePropMaxRate{Rate: OFPQ_MIN_RATE_UNCFG},
				&QueuePropExperimenter{Experimenter: 0x2320, Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
			},
		}}},
		&RoleRequest{ControllerRole{Role: OFPCR_ROLE_MASTER, GenerationId: 9}},
		&RoleReply{ControllerRole{Role: OFPCR_ROLE_MASTER, GenerationId: 9}},
		&GetAsyncRequest{},
		&GetAsyncReply{AsyncConfig{PacketInMask: [2]uint32{7, 0}, PortStatusMask: [2]uint32{7, 7}}},
		&SetAsync{AsyncConfig{FlowRemovedMask: [2]uint32{15, 0}}},
		&MeterMod{Command: OFPMC_ADD, Flags: OFPMF_KBPS, MeterId: 1, Bands: []MeterBand{
			&MeterBandDrop{Rate: 1000, BurstSize: 100},
			&MeterBandDscpRemark{Rate: 500, BurstSize: 50, PrecLevel: 1},
			&MeterBandExperimenter{Rate: 1, BurstSize: 1, Experimenter: 0x2320},
		}},
	}
	requests := []MultipartRequestBody{
		&DescRequest{},
		&FlowStatsRequest{TableId: OFPTT_ALL, OutPort: OFPP_ANY, OutGroup: OFPG_ANY},
		&AggregateStatsRequest{TableId: 1, OutPort: OFPP_ANY, OutGroup: OFPG_ANY,
			Match: Match{Fields: []OxmField{basic(oxm.OFPXMT_OFB_IN_PORT, 0, 0, 0, 1)}}},
		&TableStatsRequest{},
		&PortStatsRequest{PortNo: OFPP_ANY},
		&QueueStatsRequest{PortNo: 1, QueueId: OFPQ_ALL},
		&GroupStatsRequest{GroupId: OFPG_ALL},
		&GroupDescRequest{},
		&GroupFeaturesRequest{},
		&MeterStatsRequest{MeterId: OFPM_ALL},
		&MeterConfigRequest{MeterId: 1},
		&MeterFeaturesRequest{},
		&TableFeaturesRequest{},
		&TableFeaturesRequest{Features: []TableFeatures{testTableFeatures()}},
		&PortDescRequest{},
		&ExperimenterMultipart{Experimenter: 0x2320, ExpType: 3, Data: []byte{1}},
	}
	replies := []MultipartReplyBody{
		&Desc{MfrDesc: "ofwire", HwDesc: "virtual", SwDesc: "1.0", SerialNum: "0001", DpDesc: "test"},
		&FlowStatsReply{Stats: []FlowStats{{
			TableId:      1,
			Priority:     10,
			PacketCount:  1,
			ByteCount:    64,
			Match:        scenarioFlowMod().Match,
			Instructions: scenarioFlowMod().Instructions,
		}}},
		&AggregateStatsReply{PacketCount: 1, ByteCount: 2, FlowCount: 3},
		&TableStatsReply{Stats: []TableStats{{TableId: 0, ActiveCount: 1, LookupCount: 2, MatchedCount: 1}}},
		&PortStatsReply{Stats: []PortStats{{PortNo: 1, RxPackets: 10, TxPackets: 20, DurationSec: 5}}},
		&QueueStatsReply{Stats: []QueueStats{{PortNo: 1, QueueId: 1, TxBytes: 100}}},
		&GroupStatsReply{Stats: []GroupStats{{GroupId: 1, RefCount: 1,
			BucketStats: []BucketCounter{{PacketCount: 1, ByteCount: 2}}}}},
		&GroupDescReply{Groups: []GroupDesc{{GroupType: OFPGT_ALL, GroupId: 1,
			Buckets: []Bucket{{WatchPort: OFPP_ANY, WatchGroup: OFPG_ANY, Actions: []Action{output(1)}}}}}},
		&GroupFeatures{Types: 1 << OFPGT_ALL, MaxGroups: [4]uint32{16, 16, 0, 0}},
		&MeterStatsReply{Stats: []MeterStats{{MeterId: 1, FlowCount: 1,
			BandStats: []MeterBandStats{{PacketBandCount: 1, ByteBandCount: 2}}}}},
		&MeterConfigReply{Configs: []MeterConfig{{Flags: OFPMF_KBPS, MeterId: 1,
			Bands: []MeterBand{&MeterBandDrop{Rate: 1000}}}}},
		&MeterFeatures{MaxMeter: 16, BandTypes: 1 << OFPMBT_DROP, Capabilities: OFPMF_KBPS | OFPMF_PKTPS, MaxBands: 1, MaxColor: 1},
		&TableFeaturesReply{Features: []TableFeatures{testTableFeatures()}},
		&PortDescReply{Ports: []Port{testPort()}},
		&ExperimenterMultipart{Experimenter: 0x2320, ExpType: 3},
	}
	var msgs []*Message
	xid := uint32(1)
	for _, b := range bodies {
		msgs = append(msgs, NewMessage(xid, b))
		xid++
	}
	for _, r := range requests {
		msgs = append(msgs, NewMessage(xid, &MultipartRequest{Body: r}))
		xid++
	}
	for _, r := range replies {
		msgs = append(msgs, NewMessage(xid, &MultipartReply{Flags: OFPMPF_REPLY_MORE, Body: r}))
		xid++
	}
	return msgs
}

func TestAllTypesCovered(t *testing.T) {
	seen := make(map[uint8]bool)
	for _, m := range allMessages() {
		seen[m.Body.Type()] = true
	}
	for typ := uint8(0); typ <= OFPT_METER_MOD; typ++ {
		assert.True(t, seen[typ], TypeName(typ))
	}
}

func TestRoundTrip(t *testing.T) {
	for _, m := range allMessages() {
		buf, err := Encode(m)
		require.NoError(t, err, m.String())
		assert.Equal(t, m.Len(), len(buf), m.String())
		assert.Equal(t, uint8(OFP_VERSION), buf[0])
		assert.Equal(t, m.Body.Type(), buf[1])
		assert.Equal(t, uint16(len(buf)), binary.BigEndian.Uint16(buf[2:]), m.String())
		assert.Equal(t, m.Xid, binary.BigEndian.Uint32(buf[4:]))

		got, err := Decode(buf)
		require.NoError(t, err, m.String())
		assert.Equal(t, m, got, m.String())
		assert.NoError(t, got.Validate())

		again, err := Encode(got)
		require.NoError(t, err)
		assert.Equal(t, buf, again)
	}
}

func TestMarshalBinary(t *testing.T) {
	m := NewMessage(3, &EchoRequest{Data: []byte("ping")})
	buf, err := m.MarshalBinary()
	require.NoError(t, err)

	var got Message
	require.NoError(t, got.UnmarshalBinary(buf))
	assert.Equal(t, m, &got)
}

func TestTruncation(t *testing.T) {
	for _, m := range allMessages() {
		buf, err := Encode(m)
		require.NoError(t, err)
		for n := 0; n < len(buf); n++ {
			_, err := Decode(buf[:n:n])
			if assert.Error(t, err, "%s cut at %d", m, n) {
				e, ok := err.(*Error)
				if assert.True(t, ok) {
					assert.Equal(t, Availability, e.Family, "%s cut at %d: %v", m, n, err)
				}
			}
		}
	}
}

// grow appends extra to an encoded message and fixes up the header length.
func grow(buf []byte, extra ...byte) []byte {
	out := append(append([]byte(nil), buf...), extra...)
	binary.BigEndian.PutUint16(out[2:], uint16(len(out)))
	return out
}

func TestExcess(t *testing.T) {
	encode := func(body Body) []byte {
		buf, err := Encode(NewMessage(1, body))
		require.NoError(t, err)
		return buf
	}
	hello := encode(&Hello{Elements: []HelloElem{&HelloElemVersionBitmap{Bitmaps: []uint32{1 << 4}}}})
	flowMod := encode(scenarioFlowMod())
	portDesc := encode(&MultipartReply{Body: &PortDescReply{Ports: []Port{testPort()}}})
	tableStats := encode(&MultipartReply{Body: &TableStatsReply{Stats: []TableStats{{}}}})
	meterMod := encode(&MeterMod{Command: OFPMC_ADD, MeterId: 1, Bands: []MeterBand{&MeterBandDrop{}}})
	features := encode(&SwitchFeatures{})
	barrier := encode(&BarrierRequest{})
	desc := encode(&MultipartRequest{Body: &DescRequest{}})

	cases := []struct {
		name string
		buf  []byte
		rec  Record
	}{
		{"hello", grow(hello, 0), RecordHelloElemList},
		{"flow_mod", grow(flowMod, 0), RecordInstructionList},
		{"port_desc", grow(portDesc, 0), RecordPortList},
		{"table_stats", grow(tableStats, 0), RecordTableStatsList},
		{"meter_mod", grow(meterMod, 0), RecordBandList},
		{"features_reply", grow(features, 0), RecordMessage},
		{"barrier", grow(barrier, 0), RecordMessage},
		{"desc_request", grow(desc, 0), RecordMultipartRequest},
		{"trailing", append(append([]byte(nil), barrier...), 0), RecordMessage},
	}
	for _, c := range cases {
		_, err := Decode(c.buf)
		assert.True(t, IsExcess(err, c.rec), "%s: %v", c.name, err)
	}
}

func TestDecodeHeader(t *testing.T) {
	_, err := Decode([]byte{OFP_VERSION, 30, 0, 8, 0, 0, 0, 1})
	assert.True(t, IsBad(err, RecordMessageType), "%v", err)

	_, err = Decode([]byte{3, OFPT_HELLO, 0, 8, 0, 0, 0, 1})
	assert.True(t, IsBad(err, RecordVersion), "%v", err)

	_, err = Decode([]byte{OFP_VERSION, OFPT_HELLO, 0, 4, 0, 0, 0, 1})
	assert.True(t, IsBad(err, RecordLength), "%v", err)

	_, err = Decode([]byte{OFP_VERSION, OFPT_HELLO, 0, 8})
	assert.True(t, IsShort(err, RecordHeader), "%v", err)

	_, err = Decode(nil)
	assert.True(t, IsShort(err, RecordHeader), "%v", err)

	// role bodies name their own record when cut short
	_, err = Decode([]byte{OFP_VERSION, OFPT_ROLE_REPLY, 0, 12, 0, 0, 0, 1, 0, 0, 0, 1})
	assert.True(t, IsShort(err, RecordRoleReply), "%v", err)
	_, err = Decode([]byte{OFP_VERSION, OFPT_ROLE_REQUEST, 0, 12, 0, 0, 0, 1, 0, 0, 0, 1})
	assert.True(t, IsShort(err, RecordRoleRequest), "%v", err)
}

func TestScenarioHello(t *testing.T) {
	m := NewMessage(0, &Hello{})
	buf, err := Encode(m)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 0, 0, 8, 0, 0, 0, 0}, buf)

	got, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestScenarioEcho(t *testing.T) {
	m := NewMessage(0x1234, &EchoRequest{Data: []byte{0xde, 0xad, 0xbe, 0xef}})
	buf, err := Encode(m)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 2, 0, 12, 0, 0, 0x12, 0x34, 0xde, 0xad, 0xbe, 0xef}, buf)

	got, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestScenarioFlowMod(t *testing.T) {
	fm := scenarioFlowMod()
	m := NewMessage(7, fm)

	require.NoError(t, m.Validate())
	require.NoError(t, fm.Match.Validate())
	for _, f := range fm.Match.Fields {
		require.NoError(t, f.Validate())
	}
	for _, inst := range fm.Instructions {
		require.NoError(t, inst.Validate())
		for _, a := range inst.(*InstructionApplyActions).Actions {
			require.NoError(t, a.Validate())
		}
	}

	buf, err := Encode(m)
	require.NoError(t, err)
	// header 8, fixed 40, match 4+8+6 padded to 24, apply 8+16
	assert.Len(t, buf, 96)
	assert.Equal(t, []byte{
		0x00, 0x01, 0x00, 0x12, // OFPMT_OXM, length 18
		0x80, 0x00, 0x00, 0x04, 0, 0, 0, 3, // in_port=3
		0x80, 0x00, 0x0a, 0x02, 0x08, 0x00, // eth_type=0x0800
		0, 0, 0, 0, 0, 0,
	}, buf[48:72])
	assert.Equal(t, []byte{
		0x00, 0x04, 0x00, 0x18, 0, 0, 0, 0, // apply_actions, length 24
		0x00, 0x00, 0x00, 0x10, 0, 0, 0, 5, 0xff, 0xff, 0, 0, 0, 0, 0, 0, // output=5
	}, buf[72:])

	got, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, m, got)
	assert.NoError(t, got.Validate())
	assert.Equal(t, "table=0,priority=10,cookie=0x0,in_port=3,eth_type=0x0800,@apply,output=5", fm.String())
}

func TestScenarioErrorCode(t *testing.T) {
	bad := NewMessage(1, &ErrorMsg{ErrType: OFPET_BAD_REQUEST, Code: OFPBRC_MULTIPART_BUFFER_OVERFLOW + 1})
	err := bad.Validate()
	assert.True(t, IsBad(err, RecordBadRequestCode), "%v", err)
	_, err = Encode(bad)
	assert.True(t, IsBad(err, RecordBadRequestCode), "%v", err)

	good := NewMessage(1, &ErrorMsg{ErrType: OFPET_BAD_REQUEST, Code: OFPBRC_BAD_LEN})
	assert.NoError(t, good.Validate())

	err = NewMessage(1, &ErrorMsg{ErrType: 99}).Validate()
	assert.True(t, IsBad(err, RecordErrorType), "%v", err)

	err = NewMessage(1, &ErrorMsg{ErrType: OFPET_FLOW_MOD_FAILED, Code: OFPFMFC_BAD_FLAGS + 1}).Validate()
	assert.True(t, IsBad(err, RecordFlowModFailedCode), "%v", err)
}

func TestScenarioShortBuffer(t *testing.T) {
	buf := []byte{4, OFPT_ECHO_REQUEST, 0, 20, 0, 0, 0, 1, 1, 2, 3, 4}
	_, err := Decode(buf[:12:12])
	assert.True(t, IsShort(err, RecordMessage), "%v", err)
}

func TestValidateGuards(t *testing.T) {
	cases := []struct {
		name string
		body Body
		rec  Record
	}{
		{"nil action", &PacketOut{InPort: OFPP_CONTROLLER, Actions: []Action{nil}}, RecordActionType},
		{"output any", &PacketOut{InPort: OFPP_CONTROLLER, Actions: []Action{output(OFPP_ANY)}}, RecordPortNo},
		{"packet_out in_port", &PacketOut{InPort: 0}, RecordPortNo},
		{"flow_mod command", &FlowMod{Command: 9}, RecordFlowModCommand},
		{"flow_mod table", &FlowMod{TableId: OFPTT_ALL}, RecordTableId},
		{"flow_mod flags", &FlowMod{Flags: 0x8000}, RecordFlowModFlags},
		{"goto table", &FlowMod{Instructions: []Instruction{&InstructionGotoTable{TableId: OFPTT_ALL}}}, RecordTableId},
		{"duplicate instruction", &FlowMod{Instructions: []Instruction{&InstructionClearActions{}, &InstructionClearActions{}}}, RecordInstructionType},
		{"meter id", &FlowMod{Instructions: []Instruction{&InstructionMeter{}}}, RecordMeterId},
		{"push vlan", &FlowMod{Instructions: []Instruction{&InstructionApplyActions{Actions: []Action{&ActionPushVlan{Ethertype: 0x0800}}}}}, RecordPushEthertype},
		{"group id", &FlowMod{Instructions: []Instruction{&InstructionApplyActions{Actions: []Action{&ActionGroup{GroupId: OFPG_ANY}}}}}, RecordGroupId},
		{"masked set_field", &FlowMod{Instructions: []Instruction{&InstructionApplyActions{Actions: []Action{
			&ActionSetField{Field: &OxmBasic{Field: oxm.OFPXMT_OFB_ETH_TYPE, Value: []byte{8, 0}, Mask: []byte{0xff, 0xff}}},
		}}}}, RecordOxmMask},
		{"oxm field", &FlowMod{Match: Match{Fields: []OxmField{basic(99, 1)}}}, RecordOxmField},
		{"oxm width", &FlowMod{Match: Match{Fields: []OxmField{basic(oxm.OFPXMT_OFB_IN_PORT, 1)}}}, RecordOxmLength},
		{"oxm duplicate", &FlowMod{Match: Match{Fields: []OxmField{
			basic(oxm.OFPXMT_OFB_IP_PROTO, 6), basic(oxm.OFPXMT_OFB_IP_PROTO, 17),
		}}}, RecordOxmDuplicate},
		{"group type", &GroupMod{GroupType: 9}, RecordGroupType},
		{"bucket weight", &GroupMod{GroupType: OFPGT_ALL, Buckets: []Bucket{{Weight: 1}}}, RecordBucketWeight},
		{"meter flags", &MeterMod{Flags: OFPMF_KBPS | OFPMF_PKTPS, MeterId: 1}, RecordMeterFlags},
		{"meter command", &MeterMod{Command: 5, MeterId: 1}, RecordMeterModCommand},
		{"role", &RoleRequest{ControllerRole{Role: 4}}, RecordControllerRole},
		{"config flags", &SetConfig{SwitchConfig{Flags: 4}}, RecordConfigFlags},
		{"miss_send_len", &SetConfig{SwitchConfig{MissSendLen: 0xfff0}}, RecordMaxLen},
		{"packet_in reason", &PacketIn{Reason: 7}, RecordPacketInReason},
		{"flow_removed reason", &FlowRemoved{Reason: 9}, RecordFlowRemovedReason},
		{"port name", &PortStatus{Desc: Port{PortNo: 1, Name: "a-very-long-port-name"}}, RecordPortName},
		{"async", &SetAsync{AsyncConfig{PortStatusMask: [2]uint32{0, 8}}}, RecordPortReason},
		{"multipart flags", &MultipartRequest{Flags: 2, Body: &DescRequest{}}, RecordMultipartFlags},
		{"multipart body", &MultipartReply{}, RecordMultipartType},
		{"table name", &MultipartReply{Body: &TableFeaturesReply{Features: []TableFeatures{{Name: string(make([]byte, 33))}}}}, RecordTableName},
		{"desc", &MultipartReply{Body: &Desc{SerialNum: "0123456789abcdef0123456789abcdef0"}}, RecordDescString},
		{"empty version bitmap", &Hello{Elements: []HelloElem{&HelloElemVersionBitmap{}}}, RecordVersionBitmap},
		{"zero version bitmap", &Hello{Elements: []HelloElem{&HelloElemVersionBitmap{Bitmaps: []uint32{0, 0}}}}, RecordVersionBitmap},
		{"nil output", &PacketOut{InPort: OFPP_CONTROLLER, Actions: []Action{(*ActionOutput)(nil)}}, RecordActionType},
		{"nil instruction", &FlowMod{Instructions: []Instruction{(*InstructionMeter)(nil)}}, RecordInstructionType},
		{"nil oxm", &FlowMod{Match: Match{Fields: []OxmField{(*OxmBasic)(nil)}}}, RecordOxmClass},
		{"nil set_field", &PacketOut{InPort: OFPP_CONTROLLER, Actions: []Action{&ActionSetField{Field: (*OxmBasic)(nil)}}}, RecordOxmClass},
		{"nil bucket action", &GroupMod{Buckets: []Bucket{{Actions: []Action{(*ActionGroup)(nil)}}}}, RecordActionType},
		{"nil meter band", &MeterMod{MeterId: 1, Bands: []MeterBand{(*MeterBandDrop)(nil)}}, RecordMeterBandType},
		{"nil multipart request body", &MultipartRequest{Body: (*DescRequest)(nil)}, RecordMultipartType},
		{"nil multipart reply body", &MultipartReply{Body: (*Desc)(nil)}, RecordMultipartType},
		{"prec_level", &MeterMod{MeterId: 1, Bands: []MeterBand{&MeterBandDscpRemark{PrecLevel: 64}}}, RecordPrecLevel},
		{"experimenter instruction alignment", &FlowMod{Instructions: []Instruction{&InstructionExperimenter{Data: []byte{1}}}}, RecordLength},
	}
	for _, c := range cases {
		err := NewMessage(1, c.body).Validate()
		assert.True(t, IsBad(err, c.rec), "%s: %v", c.name, err)
		_, err = Encode(NewMessage(1, c.body))
		assert.Error(t, err, c.name)
	}

	err := NewMessage(1, nil).Validate()
	assert.True(t, IsBad(err, RecordMessageType), "%v", err)
	err = NewMessage(1, (*FlowMod)(nil)).Validate()
	assert.True(t, IsBad(err, RecordMessageType), "%v", err)
	_, err = Encode(NewMessage(1, (*FlowMod)(nil)))
	assert.True(t, IsBad(err, RecordMessageType), "%v", err)
	assert.NoError(t, NewMessage(1, &FlowMod{Instructions: []Instruction{
		&InstructionExperimenter{Experimenter: 0x2320, Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
	}}).Validate())
	err = (&Message{Header: Header{Version: 1}, Body: &Hello{}}).Validate()
	assert.True(t, IsBad(err, RecordVersion), "%v", err)
}

func TestMessageString(t *testing.T) {
	assert.Equal(t, "hello xid=3", NewMessage(3, &Hello{}).String())
	assert.Equal(t, "error xid=1 type=1,code=6", NewMessage(1, &ErrorMsg{ErrType: OFPET_BAD_REQUEST, Code: 6}).String())
	assert.Equal(t, "multipart_request xid=2 port_desc", NewMessage(2, &MultipartRequest{Body: &PortDescRequest{}}).String())
	assert.Equal(t, "type_99", TypeName(99))
}
