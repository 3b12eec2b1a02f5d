package ofp4

import (
	"testing"

	"github.com/ofwire/gopenflow/oxm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeActionFraming(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
		check func(error) bool
	}{
		{
			"output declared too long",
			[]byte{0, 0, 0, 24, 0, 0, 0, 5, 0xff, 0xff, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			func(err error) bool { return IsExcess(err, RecordActionOutput) },
		},
		{
			"output declared too short",
			[]byte{0, 0, 0, 8, 0, 0, 0, 5},
			func(err error) bool { return IsShort(err, RecordActionOutput) },
		},
		{
			"length below header",
			[]byte{0, 0, 0, 2, 0, 0, 0, 0},
			func(err error) bool { return IsShort(err, RecordActionOutput) },
		},
		{
			"length beyond region",
			[]byte{0, 0, 0, 16, 0, 0, 0, 5},
			func(err error) bool { return IsShort(err, RecordActionOutput) },
		},
		{
			"unknown type",
			[]byte{0, 0x99, 0, 8, 0, 0, 0, 0},
			func(err error) bool { return IsBad(err, RecordActionType) },
		},
		{
			"trailing partial header",
			[]byte{0, 12, 0, 8, 0, 0, 0, 0, 0, 0, 0},
			func(err error) bool { return IsExcess(err, RecordActionList) },
		},
		{
			"set_field padding too long",
			[]byte{0, 25, 0, 24, 0x80, 0x00, 0x0a, 0x02, 0x08, 0x00, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			func(err error) bool { return IsExcess(err, RecordActionSetField) },
		},
		{
			"set_field padding missing",
			[]byte{0, 25, 0, 10, 0x80, 0x00, 0x0a, 0x02, 0x08, 0x00},
			func(err error) bool { return IsShort(err, RecordActionSetField) },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeActions(NewCursor(tc.input))
			require.Error(t, err)
			assert.True(t, tc.check(err), "%v", err)
		})
	}
}

func TestDecodeSetField(t *testing.T) {
	actions, err := decodeActions(NewCursor([]byte{
		0, 25, 0, 16,
		0x80, 0x00, 0x0a, 0x02, 0x08, 0x00,
		0, 0, 0, 0, 0, 0,
	}))
	require.NoError(t, err)
	require.Len(t, actions, 1)
	sf, ok := actions[0].(*ActionSetField)
	require.True(t, ok)
	assert.Equal(t, basic(oxm.OFPXMT_OFB_ETH_TYPE, 0x08, 0x00), sf.Field)
	assert.Equal(t, "set_eth_type=0x0800", sf.String())
}

func TestDecodeEmptySequences(t *testing.T) {
	actions, err := decodeActions(NewCursor(nil))
	assert.NoError(t, err)
	assert.Nil(t, actions)

	m, err := decodeMatch(NewCursor([]byte{0, 1, 0, 4, 0, 0, 0, 0}))
	require.NoError(t, err)
	assert.Nil(t, m.Fields)
	assert.Equal(t, 4, m.Len())
}

func TestDecodeMatch(t *testing.T) {
	t.Run("masked", func(t *testing.T) {
		c := NewCursor([]byte{
			0, 1, 0, 16,
			0x80, 0x00, 0x17, 0x08, 10, 0, 0, 1, 255, 255, 255, 0,
		})
		m, err := decodeMatch(c)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
		require.Len(t, m.Fields, 1)
		f := m.Fields[0].(*OxmBasic)
		assert.Equal(t, []byte{10, 0, 0, 1}, f.Value)
		assert.Equal(t, []byte{255, 255, 255, 0}, f.Mask)
		assert.True(t, f.Header().HasMask())
		assert.NoError(t, m.Validate())
		assert.Equal(t, "ipv4_src=10.0.0.1/255.255.255.0", m.String())
	})
	t.Run("odd masked length", func(t *testing.T) {
		_, err := decodeMatch(NewCursor([]byte{
			0, 1, 0, 15,
			0x80, 0x00, 0x17, 0x07, 10, 0, 0, 1, 255, 255, 255,
			0,
		}))
		assert.True(t, IsBad(err, RecordOxmLength), "%v", err)
	})
	t.Run("standard match type", func(t *testing.T) {
		_, err := decodeMatch(NewCursor(make([]byte, 88)))
		assert.True(t, IsBad(err, RecordMatchType), "%v", err)
	})
	t.Run("unknown class", func(t *testing.T) {
		_, err := decodeMatch(NewCursor([]byte{
			0, 1, 0, 10,
			0x12, 0x34, 0x00, 0x02, 0, 0,
			0, 0, 0, 0, 0, 0,
		}))
		assert.True(t, IsBad(err, RecordOxmClass), "%v", err)
	})
	t.Run("missing padding", func(t *testing.T) {
		_, err := decodeMatch(NewCursor([]byte{
			0, 1, 0, 10,
			0x80, 0x00, 0x0a, 0x02, 0x08, 0x00,
		}))
		assert.True(t, IsShort(err, RecordMatch), "%v", err)
	})
	t.Run("field overruns match", func(t *testing.T) {
		_, err := decodeMatch(NewCursor([]byte{
			0, 1, 0, 8,
			0x80, 0x00, 0x0a, 0x02,
		}))
		assert.True(t, IsShort(err, RecordOxm), "%v", err)
	})
	t.Run("nxm kept opaque", func(t *testing.T) {
		m, err := decodeMatch(NewCursor([]byte{
			0, 1, 0, 10,
			0x00, 0x01, 0x02, 0x02, 0xab, 0xcd,
			0, 0, 0, 0, 0, 0,
		}))
		require.NoError(t, err)
		require.Len(t, m.Fields, 1)
		assert.Equal(t, &OxmNxm{Class: oxm.OFPXMC_NXM_1, Field: 1, Data: []byte{0xab, 0xcd}}, m.Fields[0])
	})
}

func TestMatchValidate(t *testing.T) {
	cases := []struct {
		name  string
		match Match
		rec   Record
	}{
		{"unknown field", Match{Fields: []OxmField{basic(60, 0)}}, RecordOxmField},
		{"short value", Match{Fields: []OxmField{basic(oxm.OFPXMT_OFB_IN_PORT, 3)}}, RecordOxmLength},
		{"vlan out of range", Match{Fields: []OxmField{basic(oxm.OFPXMT_OFB_VLAN_VID, 0x20, 0x00)}}, RecordOxmValue},
		{"unmaskable", Match{Fields: []OxmField{&OxmBasic{
			Field: oxm.OFPXMT_OFB_ETH_TYPE,
			Value: []byte{0x08, 0},
			Mask:  []byte{0xff, 0},
		}}}, RecordOxmMask},
		{"duplicate", Match{Fields: []OxmField{
			basic(oxm.OFPXMT_OFB_IN_PORT, 0, 0, 0, 1),
			basic(oxm.OFPXMT_OFB_IN_PORT, 0, 0, 0, 2),
		}}, RecordOxmDuplicate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.match.Validate()
			assert.True(t, IsBad(err, tc.rec), "%v", err)
		})
	}
}

func TestDecodeInstructions(t *testing.T) {
	insts, err := decodeInstructions(NewCursor([]byte{
		0, 1, 0, 8, 2, 0, 0, 0,
		0, 6, 0, 8, 0, 0, 0, 1,
		0, 5, 0, 8, 0, 0, 0, 0,
	}))
	require.NoError(t, err)
	assert.Equal(t, []Instruction{
		&InstructionGotoTable{TableId: 2},
		&InstructionMeter{MeterId: 1},
		&InstructionClearActions{},
	}, insts)

	_, err = decodeInstructions(NewCursor([]byte{0, 9, 0, 8, 0, 0, 0, 0}))
	assert.True(t, IsBad(err, RecordInstructionType), "%v", err)

	_, err = decodeInstructions(NewCursor([]byte{0, 1, 0, 12, 2, 0, 0, 0, 0, 0, 0, 0}))
	assert.True(t, IsExcess(err, RecordInstructionGotoTable), "%v", err)
}

func TestDecodeHelloElements(t *testing.T) {
	h := new(Hello)
	require.NoError(t, h.decode(NewCursor([]byte{
		0, 1, 0, 8, 0, 0, 0, 0x12,
	})))
	require.Len(t, h.Elements, 1)
	vb := h.Elements[0].(*HelloElemVersionBitmap)
	assert.True(t, vb.Supports(1))
	assert.True(t, vb.Supports(4))
	assert.False(t, vb.Supports(3))
	assert.False(t, vb.Supports(40))
	assert.Equal(t, "versions=1/4", h.String())

	err := new(Hello).decode(NewCursor([]byte{0, 7, 0, 4, 0, 0, 0, 0}))
	assert.True(t, IsBad(err, RecordHelloElemType), "%v", err)

	// a bitmap element padded to 8 bytes by its trailing zeros
	h = new(Hello)
	require.NoError(t, h.decode(NewCursor([]byte{
		0, 1, 0, 12, 0, 0, 0, 0x10, 0, 0, 0, 0x01,
		0, 0, 0, 0,
	})))
	assert.Equal(t, []uint32{0x10, 0x01}, h.Elements[0].(*HelloElemVersionBitmap).Bitmaps)
}

func TestDecodeMultipartType(t *testing.T) {
	_, err := Decode([]byte{4, 18, 0, 16, 0, 0, 0, 1, 0, 0x42, 0, 0, 0, 0, 0, 0})
	assert.True(t, IsBad(err, RecordMultipartType), "%v", err)

	_, err = Decode([]byte{4, 19, 0, 16, 0, 0, 0, 1, 0xff, 0xfe, 0, 0, 0, 0, 0, 0})
	assert.True(t, IsBad(err, RecordMultipartType), "%v", err)

	msg, err := Decode([]byte{4, 18, 0, 16, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, &MultipartRequest{Body: new(DescRequest)}, msg.Body)
}

func TestActionString(t *testing.T) {
	cases := []struct {
		action Action
		text   string
	}{
		{output(5), "output=5"},
		{&ActionOutput{Port: OFPP_CONTROLLER, MaxLen: 128}, "output=controller:0x80"},
		{&ActionPushVlan{Ethertype: 0x8100}, "push_vlan=0x8100"},
		{&ActionGroup{GroupId: 3}, "group=3"},
		{&ActionSetQueue{QueueId: 7}, "set_queue=7"},
		{new(ActionPopVlan), "pop_vlan"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.text, tc.action.String())
	}
}

func TestInstructionString(t *testing.T) {
	cases := []struct {
		inst Instruction
		text string
	}{
		{&InstructionGotoTable{TableId: 2}, "@goto=2"},
		{&InstructionMeter{MeterId: 1}, "@meter=1"},
		{&InstructionWriteMetadata{Metadata: 1, MetadataMask: 0xff}, "@metadata=0x1/0xff"},
		{&InstructionWriteActions{Actions: []Action{&ActionGroup{GroupId: 3}}}, "@write,group=3"},
		{new(InstructionClearActions), "@clear"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.text, tc.inst.String())
	}
}

func TestDecodeTableFeatures(t *testing.T) {
	record := func(props ...byte) []byte {
		b := make([]byte, 64)
		b[0], b[1] = 0, byte(64+len(props))
		b[2] = 3
		copy(b[8:], "acl")
		return append(b, props...)
	}

	list, err := decodeTableFeaturesList(NewCursor(record(
		0, 2, 0, 7, 1, 2, 3, 0, // next_tables, padded from 7
		0, 8, 0, 8, 0x80, 0x00, 0x06, 0x06, // match on eth_dst
	)))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, uint8(3), list[0].TableId)
	assert.Equal(t, "acl", list[0].Name)
	assert.Equal(t, []TableFeatureProp{
		&TableFeaturePropNextTables{NextTableIds: []uint8{1, 2, 3}},
		&TableFeaturePropMatch{OxmIds: []OxmId{{Header: oxm.NewHeader(oxm.OFPXMC_OPENFLOW_BASIC, oxm.OFPXMT_OFB_ETH_DST, false, 6)}}},
	}, list[0].Properties)
	assert.NoError(t, list[0].Validate())

	_, err = decodeTableFeaturesList(NewCursor(record(0, 9, 0, 4, 0, 0, 0, 0)))
	assert.True(t, IsBad(err, RecordTableFeaturePropType), "%v", err)

	short := record()
	short[1] = 60
	_, err = decodeTableFeaturesList(NewCursor(short))
	assert.True(t, IsShort(err, RecordTableFeatures), "%v", err)
}
