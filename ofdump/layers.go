package main

import (
	"encoding/binary"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/pkg/errors"
)

// 802.1ah backbone service instance tag, the header push_pbb adds.
const ethernetTypeDot1QITag layers.EthernetType = 0x88e7

var layerTypePBB = gopacket.RegisterLayerType(1500, gopacket.LayerTypeMetadata{
	Name:    "PBB",
	Decoder: gopacket.DecodeFunc(decodePBB),
})

func init() {
	layers.EthernetTypeMetadata[ethernetTypeDot1QITag] = layers.EnumMetadata{
		DecodeWith: gopacket.DecodeFunc(decodePBB),
		Name:       "PBB",
		LayerType:  layerTypePBB,
	}
}

type PBB struct {
	layers.BaseLayer
	Priority           uint8
	DropEligible       bool
	UseCustomerAddress bool
	ServiceIdentifier  uint32
	DstMAC             net.HardwareAddr
	SrcMAC             net.HardwareAddr
	Type               layers.EthernetType
}

func (obj *PBB) LayerType() gopacket.LayerType     { return layerTypePBB }
func (obj *PBB) CanDecode() gopacket.LayerClass    { return layerTypePBB }
func (obj *PBB) NextLayerType() gopacket.LayerType { return obj.Type.LayerType() }

func (obj *PBB) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	p, err := b.PrependBytes(18)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(p[0:4], obj.ServiceIdentifier&0xffffff)
	p[0] = obj.Priority << 5
	if obj.DropEligible {
		p[0] |= 0x10
	}
	if obj.UseCustomerAddress {
		p[0] |= 0x08
	}
	copy(p[4:10], obj.DstMAC)
	copy(p[10:16], obj.SrcMAC)
	binary.BigEndian.PutUint16(p[16:18], uint16(obj.Type))
	return nil
}

func decodePBB(data []byte, p gopacket.PacketBuilder) error {
	if len(data) < 18 {
		return errors.New("PBB I-TAG truncated")
	}
	if data[0]&0x07 != 0 {
		return errors.New("PBB I-TAG reserved bits must be zero")
	}
	pbb := &PBB{
		Priority:           data[0] >> 5,
		DropEligible:       data[0]&0x10 != 0,
		UseCustomerAddress: data[0]&0x08 != 0,
		ServiceIdentifier:  binary.BigEndian.Uint32(data[0:4]) & 0xffffff,
		DstMAC:             net.HardwareAddr(data[4:10]),
		SrcMAC:             net.HardwareAddr(data[10:16]),
		Type:               layers.EthernetType(binary.BigEndian.Uint16(data[16:18])),
		BaseLayer:          layers.BaseLayer{Contents: data[:18], Payload: data[18:]},
	}
	p.AddLayer(pbb)
	return p.NextDecoder(pbb.Type)
}
