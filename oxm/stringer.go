package oxm

import (
	"fmt"
	"net"
)

var portNames = map[uint32]string{
	OFPP_IN_PORT:    "in_port",
	OFPP_TABLE:      "table",
	OFPP_NORMAL:     "normal",
	OFPP_FLOOD:      "flood",
	OFPP_ALL:        "all",
	OFPP_CONTROLLER: "controller",
	OFPP_LOCAL:      "local",
	OFPP_ANY:        "any",
}

// PortString formats a port number, using names for reserved ports.
func PortString(port uint32) string {
	if name, ok := portNames[port]; ok {
		return name
	}
	return fmt.Sprintf("%d", port)
}

func uintOf(p []byte) uint64 {
	var v uint64
	for _, b := range p {
		v = v<<8 | uint64(b)
	}
	return v
}

// FormatBasic renders one openflow basic field as "name=value[/mask]".
// Values whose width does not match the field are shown as raw hex.
func FormatBasic(field uint8, value, mask []byte) string {
	b, ok := LookupBasic(field)
	if !ok {
		return fmt.Sprintf("basic_%d=%x", field, value)
	}
	if len(value) != b.Width || (mask != nil && len(mask) != b.Width) {
		if mask != nil {
			return fmt.Sprintf("%s=%x/%x", b.Name, value, mask)
		}
		return fmt.Sprintf("%s=%x", b.Name, value)
	}

	var f func([]byte) string
	switch field {
	case OFPXMT_OFB_IN_PORT:
		f = func(p []byte) string { return PortString(uint32(uintOf(p))) }
	case OFPXMT_OFB_ETH_DST, OFPXMT_OFB_ETH_SRC,
		OFPXMT_OFB_ARP_SHA, OFPXMT_OFB_ARP_THA,
		OFPXMT_OFB_IPV6_ND_SLL, OFPXMT_OFB_IPV6_ND_TLL:
		f = func(p []byte) string { return net.HardwareAddr(p).String() }
	case OFPXMT_OFB_IPV4_SRC, OFPXMT_OFB_IPV4_DST,
		OFPXMT_OFB_ARP_SPA, OFPXMT_OFB_ARP_TPA,
		OFPXMT_OFB_IPV6_SRC, OFPXMT_OFB_IPV6_DST,
		OFPXMT_OFB_IPV6_ND_TARGET:
		f = func(p []byte) string { return net.IP(p).String() }
	case OFPXMT_OFB_ETH_TYPE:
		f = func(p []byte) string { return fmt.Sprintf("0x%04x", uintOf(p)) }
	case OFPXMT_OFB_METADATA, OFPXMT_OFB_VLAN_VID,
		OFPXMT_OFB_IP_DSCP, OFPXMT_OFB_IP_ECN,
		OFPXMT_OFB_IPV6_FLABEL, OFPXMT_OFB_MPLS_LABEL,
		OFPXMT_OFB_PBB_ISID, OFPXMT_OFB_TUNNEL_ID,
		OFPXMT_OFB_IPV6_EXTHDR:
		f = func(p []byte) string { return fmt.Sprintf("0x%x", uintOf(p)) }
	default:
		f = func(p []byte) string { return fmt.Sprintf("%d", uintOf(p)) }
	}
	if mask != nil {
		return fmt.Sprintf("%s=%s/%s", b.Name, f(value), f(mask))
	}
	return fmt.Sprintf("%s=%s", b.Name, f(value))
}
