package oxm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBasic(t *testing.T) {
	cases := []struct {
		field uint8
		value []byte
		mask  []byte
		text  string
	}{
		{OFPXMT_OFB_IN_PORT, []byte{0xff, 0xff, 0xff, 0xff}, nil, "in_port=any"},
		{OFPXMT_OFB_IN_PORT, []byte{0, 0, 0, 10}, nil, "in_port=10"},
		{OFPXMT_OFB_IN_PHY_PORT, []byte{0, 0, 0, 10}, nil, "in_phy_port=10"},
		{OFPXMT_OFB_METADATA, []byte{0, 0, 0, 0, 0, 0, 0, 5}, []byte{0, 0, 0, 0, 0, 0, 0, 0xff}, "metadata=0x5/0xff"},
		{OFPXMT_OFB_ETH_SRC, make([]byte, 6), nil, "eth_src=00:00:00:00:00:00"},
		{OFPXMT_OFB_ETH_SRC, make([]byte, 6), []byte{1, 0, 0, 0, 0, 0}, "eth_src=00:00:00:00:00:00/01:00:00:00:00:00"},
		{OFPXMT_OFB_ETH_TYPE, []byte{0x08, 0x00}, nil, "eth_type=0x0800"},
		{OFPXMT_OFB_IPV4_SRC, []byte{192, 168, 0, 1}, nil, "ipv4_src=192.168.0.1"},
		{OFPXMT_OFB_IPV4_SRC, []byte{192, 168, 0, 1}, []byte{255, 255, 255, 0}, "ipv4_src=192.168.0.1/255.255.255.0"},
		{OFPXMT_OFB_VLAN_VID, []byte{0x10, 0x00}, []byte{0x10, 0x00}, "vlan_vid=0x1000/0x1000"},
		{OFPXMT_OFB_PBB_ISID, []byte{0, 0, 5}, nil, "pbb_isid=0x5"},
		{OFPXMT_OFB_TCP_DST, []byte{0, 80}, nil, "tcp_dst=80"},
		{OFPXMT_OFB_ETH_TYPE, []byte{0x08}, nil, "eth_type=08"},
		{99, []byte{1}, nil, "basic_99=01"},
	}
	for _, c := range cases {
		assert.Equal(t, c.text, FormatBasic(c.field, c.value, c.mask))
	}
}

func TestHeader(t *testing.T) {
	hdr := NewHeader(OFPXMC_OPENFLOW_BASIC, OFPXMT_OFB_IPV4_SRC, true, 8)
	assert.Equal(t, Header(0x80001708), hdr)
	assert.Equal(t, uint16(OFPXMC_OPENFLOW_BASIC), hdr.Class())
	assert.Equal(t, uint8(OFPXMT_OFB_IPV4_SRC), hdr.Field())
	assert.True(t, hdr.HasMask())
	assert.Equal(t, 8, hdr.Length())
	assert.Equal(t, uint32(0x80001708)>>9, hdr.Type())
}

func TestBasicRange(t *testing.T) {
	b, ok := LookupBasic(OFPXMT_OFB_VLAN_PCP)
	assert.True(t, ok)
	assert.True(t, b.InRange([]byte{7}))
	assert.False(t, b.InRange([]byte{8}))

	b, _ = LookupBasic(OFPXMT_OFB_IPV6_FLABEL)
	assert.False(t, b.InRange([]byte{0, 0x10, 0, 0}))

	_, ok = LookupBasic(40)
	assert.False(t, ok)
}
