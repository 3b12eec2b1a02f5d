package oxm

// Basic describes an OFPXMC_OPENFLOW_BASIC field.
type Basic struct {
	Name     string
	Width    int // value bytes, mask not included
	Maskable bool
	Max      uint64 // largest legal value, 0 means the whole width
}

var basics = map[uint8]Basic{
	OFPXMT_OFB_IN_PORT:        {"in_port", 4, false, 0},
	OFPXMT_OFB_IN_PHY_PORT:    {"in_phy_port", 4, false, 0},
	OFPXMT_OFB_METADATA:       {"metadata", 8, true, 0},
	OFPXMT_OFB_ETH_DST:        {"eth_dst", 6, true, 0},
	OFPXMT_OFB_ETH_SRC:        {"eth_src", 6, true, 0},
	OFPXMT_OFB_ETH_TYPE:       {"eth_type", 2, false, 0},
	OFPXMT_OFB_VLAN_VID:       {"vlan_vid", 2, true, 0x1fff},
	OFPXMT_OFB_VLAN_PCP:       {"vlan_pcp", 1, false, 7},
	OFPXMT_OFB_IP_DSCP:        {"ip_dscp", 1, false, 63},
	OFPXMT_OFB_IP_ECN:         {"ip_ecn", 1, false, 3},
	OFPXMT_OFB_IP_PROTO:       {"ip_proto", 1, false, 0},
	OFPXMT_OFB_IPV4_SRC:       {"ipv4_src", 4, true, 0},
	OFPXMT_OFB_IPV4_DST:       {"ipv4_dst", 4, true, 0},
	OFPXMT_OFB_TCP_SRC:        {"tcp_src", 2, false, 0},
	OFPXMT_OFB_TCP_DST:        {"tcp_dst", 2, false, 0},
	OFPXMT_OFB_UDP_SRC:        {"udp_src", 2, false, 0},
	OFPXMT_OFB_UDP_DST:        {"udp_dst", 2, false, 0},
	OFPXMT_OFB_SCTP_SRC:       {"sctp_src", 2, false, 0},
	OFPXMT_OFB_SCTP_DST:       {"sctp_dst", 2, false, 0},
	OFPXMT_OFB_ICMPV4_TYPE:    {"icmpv4_type", 1, false, 0},
	OFPXMT_OFB_ICMPV4_CODE:    {"icmpv4_code", 1, false, 0},
	OFPXMT_OFB_ARP_OP:         {"arp_op", 2, false, 0},
	OFPXMT_OFB_ARP_SPA:        {"arp_spa", 4, true, 0},
	OFPXMT_OFB_ARP_TPA:        {"arp_tpa", 4, true, 0},
	OFPXMT_OFB_ARP_SHA:        {"arp_sha", 6, true, 0},
	OFPXMT_OFB_ARP_THA:        {"arp_tha", 6, true, 0},
	OFPXMT_OFB_IPV6_SRC:       {"ipv6_src", 16, true, 0},
	OFPXMT_OFB_IPV6_DST:       {"ipv6_dst", 16, true, 0},
	OFPXMT_OFB_IPV6_FLABEL:    {"ipv6_flabel", 4, true, 0xfffff},
	OFPXMT_OFB_ICMPV6_TYPE:    {"icmpv6_type", 1, false, 0},
	OFPXMT_OFB_ICMPV6_CODE:    {"icmpv6_code", 1, false, 0},
	OFPXMT_OFB_IPV6_ND_TARGET: {"ipv6_nd_target", 16, false, 0},
	OFPXMT_OFB_IPV6_ND_SLL:    {"ipv6_nd_sll", 6, false, 0},
	OFPXMT_OFB_IPV6_ND_TLL:    {"ipv6_nd_tll", 6, false, 0},
	OFPXMT_OFB_MPLS_LABEL:     {"mpls_label", 4, false, 0xfffff},
	OFPXMT_OFB_MPLS_TC:        {"mpls_tc", 1, false, 7},
	OFPXMT_OFB_MPLS_BOS:       {"mpls_bos", 1, false, 1},
	OFPXMT_OFB_PBB_ISID:       {"pbb_isid", 3, true, 0},
	OFPXMT_OFB_TUNNEL_ID:      {"tunnel_id", 8, true, 0},
	OFPXMT_OFB_IPV6_EXTHDR:    {"ipv6_exthdr", 2, true, 0x1ff},
}

// LookupBasic returns the description of an openflow basic field.
func LookupBasic(field uint8) (Basic, bool) {
	b, ok := basics[field]
	return b, ok
}

// InRange reports whether a big-endian value fits the field's legal range.
func (self Basic) InRange(value []byte) bool {
	if self.Max == 0 || len(value) > 8 {
		return true
	}
	var v uint64
	for _, b := range value {
		v = v<<8 | uint64(b)
	}
	return v <= self.Max
}
