package main

import (
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBBRoundTrip(t *testing.T) {
	outer := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0, 0, 0, 0, 0, 1},
		DstMAC:       net.HardwareAddr{0, 0, 0, 0, 0, 2},
		EthernetType: ethernetTypeDot1QITag,
	}
	tag := &PBB{
		Priority:          5,
		DropEligible:      true,
		ServiceIdentifier: 0x123456,
		DstMAC:            net.HardwareAddr{0, 0, 0, 0, 0, 3},
		SrcMAC:            net.HardwareAddr{0, 0, 0, 0, 0, 4},
		Type:              layers.EthernetTypeLLC,
	}
	buf := gopacket.NewSerializeBuffer()
	require.NoError(t, gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, outer, tag, gopacket.Payload{0xaa, 0xaa, 0x03}))

	pkt := gopacket.NewPacket(buf.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
	got, ok := pkt.Layer(layerTypePBB).(*PBB)
	require.True(t, ok, "%v", pkt)
	assert.Equal(t, uint8(5), got.Priority)
	assert.True(t, got.DropEligible)
	assert.False(t, got.UseCustomerAddress)
	assert.Equal(t, uint32(0x123456), got.ServiceIdentifier)
	assert.Equal(t, tag.DstMAC, got.DstMAC)
	assert.Equal(t, layers.EthernetTypeLLC, got.Type)
}

func TestPBBTruncated(t *testing.T) {
	frame := []byte{
		0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 1, 0x88, 0xe7,
		0xa0, 0x12, 0x34,
	}
	pkt := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)
	assert.Nil(t, pkt.Layer(layerTypePBB))
	assert.NotNil(t, pkt.ErrorLayer())
}
