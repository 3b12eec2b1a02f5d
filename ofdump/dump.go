package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/ofwire/gopenflow"
	"github.com/ofwire/gopenflow/ofp4"
	"github.com/pkg/errors"
)

// dumpConfig prints the decoded value tree; the String methods would
// only repeat the summary line.
var dumpConfig = spew.ConfigState{Indent: "  ", DisableMethods: true}

type dumper struct {
	cfg config
	out io.Writer

	messages int
	invalid  int
	broken   int
}

// frame prints one complete frame. label prefixes every line.
func (obj *dumper) frame(label string, frame []byte) {
	msg, err := ofp4.Decode(frame)
	if err != nil {
		obj.broken++
		logger.Warningf("%s%s: %v", label, ofp4.TypeName(frame[1]), err)
		fmt.Fprintf(obj.out, "%s%s ! %v\n", label, ofp4.TypeName(frame[1]), err)
		return
	}
	obj.messages++
	fmt.Fprintf(obj.out, "%s%v\n", label, msg)

	if obj.cfg.Validate {
		if err := msg.Validate(); err != nil {
			obj.invalid++
			logger.Warningf("%s%v: %v", label, msg, err)
			fmt.Fprintf(obj.out, "  invalid: %v\n", err)
		}
	}
	if obj.cfg.Dump {
		fmt.Fprint(obj.out, dumpConfig.Sdump(msg))
	}
	if obj.cfg.Dissect {
		if data := packetData(msg.Body); len(data) > 0 {
			pkt := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)
			fmt.Fprint(obj.out, pkt.String())
		}
	}
}

func packetData(body ofp4.Body) []byte {
	switch b := body.(type) {
	case *ofp4.PacketIn:
		return b.Data
	case *ofp4.PacketOut:
		return b.Data
	}
	return nil
}

// stream prints every frame of a raw openflow byte stream.
func (obj *dumper) stream(r io.Reader) error {
	s := gopenflow.NewStream(r, 0x10000)
	for {
		frame, err := s.ReadFrame()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "after %d frames", obj.messages+obj.broken)
		}
		obj.frame("", frame)
	}
}

func (obj *dumper) summary() string {
	return fmt.Sprintf("%d messages, %d invalid, %d undecodable", obj.messages, obj.invalid, obj.broken)
}
