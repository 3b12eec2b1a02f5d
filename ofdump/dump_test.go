package main

import (
	"bytes"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/ofwire/gopenflow/ofp4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, xid uint32, body ofp4.Body) []byte {
	data, err := ofp4.Encode(ofp4.NewMessage(xid, body))
	require.NoError(t, err)
	return data
}

func TestDecodeHex(t *testing.T) {
	data, err := decodeHex("04 00 00 08\n00:00:00:01")
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 0, 0, 8, 0, 0, 0, 1}, data)

	_, err = decodeHex("0g")
	assert.Error(t, err)
}

func TestDumpStream(t *testing.T) {
	var out bytes.Buffer
	d := &dumper{cfg: defaultConfig(), out: &out}

	input := append(encode(t, 1, new(ofp4.Hello)), encode(t, 2, &ofp4.EchoRequest{Data: []byte{1}})...)
	// an unknown message type is reported and skipped
	input = append(input, 4, 99, 0, 8, 0, 0, 0, 3)
	// a well-formed but invalid role
	input = append(input, 4, ofp4.OFPT_ROLE_REQUEST, 0, 24, 0, 0, 0, 4,
		0, 0, 0, 9, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	require.NoError(t, d.stream(bytes.NewReader(input)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "hello xid=1", lines[0])
	assert.Equal(t, "echo_request xid=2", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "type_99 ! "), lines[2])
	assert.Equal(t, "role_request xid=4", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "  invalid: "), lines[4])
	assert.Equal(t, 3, d.messages)
	assert.Equal(t, 1, d.invalid)
	assert.Equal(t, 1, d.broken)
}

func TestDumpStreamTruncated(t *testing.T) {
	d := &dumper{cfg: defaultConfig(), out: new(bytes.Buffer)}
	assert.Error(t, d.stream(bytes.NewReader([]byte{4, 0, 0, 16, 0, 0, 0, 1})))
}

func TestDumpDissect(t *testing.T) {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0, 1, 2, 3, 4, 5},
		DstMAC:       net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		EthernetType: layers.EthernetTypeARP,
	}
	arp := &layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   []byte{0, 1, 2, 3, 4, 5},
		SourceProtAddress: []byte{10, 0, 0, 1},
		DstHwAddress:      []byte{0, 0, 0, 0, 0, 0},
		DstProtAddress:    []byte{10, 0, 0, 2},
	}
	buf := gopacket.NewSerializeBuffer()
	require.NoError(t, gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, eth, arp))

	var out bytes.Buffer
	cfg := defaultConfig()
	cfg.Dissect = true
	cfg.Dump = true
	d := &dumper{cfg: cfg, out: &out}
	d.frame("", encode(t, 5, &ofp4.PacketOut{
		BufferId: ofp4.OFP_NO_BUFFER,
		InPort:   ofp4.OFPP_CONTROLLER,
		Data:     buf.Bytes(),
	}))

	assert.Contains(t, out.String(), "packet_out xid=5")
	assert.Contains(t, out.String(), "ARP")
	assert.Contains(t, out.String(), "(*ofp4.PacketOut)")
	assert.Contains(t, out.String(), "BufferId: (uint32) 4294967295")
	assert.Equal(t, 1, d.messages)
}

type segment struct {
	srcPort, dstPort uint16
	payload          []byte
}

func writeCapture(t *testing.T, segs []segment) []byte {
	var file bytes.Buffer
	w := pcapgo.NewWriter(&file)
	require.NoError(t, w.WriteFileHeader(65536, layers.LinkTypeEthernet))

	for i, s := range segs {
		eth := &layers.Ethernet{
			SrcMAC:       net.HardwareAddr{0, 0, 0, 0, 0, 1},
			DstMAC:       net.HardwareAddr{0, 0, 0, 0, 0, 2},
			EthernetType: layers.EthernetTypeIPv4,
		}
		ip := &layers.IPv4{
			Version:  4,
			TTL:      64,
			Protocol: layers.IPProtocolTCP,
			SrcIP:    net.IP{10, 0, 0, 1},
			DstIP:    net.IP{10, 0, 0, 2},
		}
		tcp := &layers.TCP{
			SrcPort: layers.TCPPort(s.srcPort),
			DstPort: layers.TCPPort(s.dstPort),
			Seq:     uint32(i),
			PSH:     true,
			ACK:     true,
			Window:  1024,
		}
		require.NoError(t, tcp.SetNetworkLayerForChecksum(ip))

		buf := gopacket.NewSerializeBuffer()
		opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
		require.NoError(t, gopacket.SerializeLayers(buf, opts, eth, ip, tcp, gopacket.Payload(s.payload)))
		data := buf.Bytes()
		require.NoError(t, w.WritePacket(gopacket.CaptureInfo{
			Timestamp:     time.Unix(int64(i), 0),
			CaptureLength: len(data),
			Length:        len(data),
		}, data))
	}
	return file.Bytes()
}

func TestDumpCapture(t *testing.T) {
	hello := encode(t, 1, new(ofp4.Hello))
	echo := encode(t, 2, &ofp4.EchoRequest{Data: []byte("abcd")})
	stream := append(append([]byte{}, hello...), echo...)

	capture := writeCapture(t, []segment{
		{6653, 40000, stream[:5]},
		{6653, 40000, stream[5:14]},
		{80, 40001, hello},
		{6653, 40000, stream[14:]},
		{40000, 6653, encode(t, 2, &ofp4.EchoReply{Data: []byte("abcd")})},
	})

	var out bytes.Buffer
	d := &dumper{cfg: defaultConfig(), out: &out}
	require.NoError(t, d.capture(bytes.NewReader(capture)))

	assert.Equal(t, strings.Join([]string{
		"10.0.0.1:6653 > 10.0.0.2:40000 hello xid=1",
		"10.0.0.1:6653 > 10.0.0.2:40000 echo_request xid=2",
		"10.0.0.1:40000 > 10.0.0.2:6653 echo_reply xid=2",
		"",
	}, "\n"), out.String())
	assert.Equal(t, 3, d.messages)
}

func TestDumpCaptureBadHeader(t *testing.T) {
	capture := writeCapture(t, []segment{
		{6653, 40000, []byte{1, 0, 0, 8, 0, 0, 0, 1}},
		{6653, 40000, encode(t, 3, new(ofp4.BarrierRequest))},
	})

	var out bytes.Buffer
	d := &dumper{cfg: defaultConfig(), out: &out}
	require.NoError(t, d.capture(bytes.NewReader(capture)))
	assert.Equal(t, "10.0.0.1:6653 > 10.0.0.2:40000 barrier_request xid=3\n", out.String())
	assert.Equal(t, 1, d.broken)
}
