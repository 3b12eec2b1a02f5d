package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/ofwire/gopenflow"
	"github.com/pkg/errors"
)

var pcapngMagic = []byte{0x0a, 0x0d, 0x0d, 0x0a}

// capture prints the openflow frames carried over the watched TCP
// ports of a pcap or pcapng file. Segments are joined per direction in
// capture order; retransmissions and reordering are not undone.
func (obj *dumper) capture(r io.Reader) error {
	br := bufio.NewReader(r)
	magic, err := br.Peek(4)
	if err != nil {
		return errors.Wrap(err, "failed to read capture header")
	}

	var src gopacket.PacketDataSource
	var link layers.LinkType
	if bytes.Equal(magic, pcapngMagic) {
		ng, err := pcapgo.NewNgReader(br, pcapgo.DefaultNgReaderOptions)
		if err != nil {
			return errors.Wrap(err, "failed to open pcapng")
		}
		src, link = ng, ng.LinkType()
	} else {
		pr, err := pcapgo.NewReader(br)
		if err != nil {
			return errors.Wrap(err, "failed to open pcap")
		}
		src, link = pr, pr.LinkType()
	}

	flows := make(map[string][]byte)
	packets := gopacket.NewPacketSource(src, link)
	for {
		pkt, err := packets.NextPacket()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to read capture")
		}
		network := pkt.NetworkLayer()
		tcp, ok := pkt.Layer(layers.LayerTypeTCP).(*layers.TCP)
		if network == nil || !ok || len(tcp.Payload) == 0 {
			continue
		}
		if !obj.cfg.watches(uint16(tcp.SrcPort)) && !obj.cfg.watches(uint16(tcp.DstPort)) {
			continue
		}
		nf := network.NetworkFlow()
		label := fmt.Sprintf("%v:%d > %v:%d ", nf.Src(), uint16(tcp.SrcPort), nf.Dst(), uint16(tcp.DstPort))
		flows[label] = obj.drain(label, append(flows[label], tcp.Payload...))
	}

	for label, rest := range flows {
		if len(rest) > 0 {
			logger.Warningf("%s%d trailing bytes", label, len(rest))
		}
	}
	return nil
}

// drain prints the complete frames at the head of buf and returns what
// is left. A bad header loses the frame boundary, so the flow is dropped.
func (obj *dumper) drain(label string, buf []byte) []byte {
	for len(buf) >= 8 {
		length, err := gopenflow.FrameLength(buf)
		if err != nil {
			obj.broken++
			logger.Warningf("%s%v, dropping %d bytes", label, err, len(buf))
			return nil
		}
		if len(buf) < length {
			break
		}
		obj.frame(label, buf[:length])
		buf = buf[length:]
	}
	return buf
}
