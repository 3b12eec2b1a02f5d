package ofp4

import (
	"fmt"
	"strings"

	"github.com/ofwire/gopenflow/oxm"
)

var typeNames = map[uint8]string{
	OFPT_HELLO:                    "hello",
	OFPT_ERROR:                    "error",
	OFPT_ECHO_REQUEST:             "echo_request",
	OFPT_ECHO_REPLY:               "echo_reply",
	OFPT_EXPERIMENTER:             "experimenter",
	OFPT_FEATURES_REQUEST:         "features_request",
	OFPT_FEATURES_REPLY:           "features_reply",
	OFPT_GET_CONFIG_REQUEST:       "get_config_request",
	OFPT_GET_CONFIG_REPLY:         "get_config_reply",
	OFPT_SET_CONFIG:               "set_config",
	OFPT_PACKET_IN:                "packet_in",
	OFPT_FLOW_REMOVED:             "flow_removed",
	OFPT_PORT_STATUS:              "port_status",
	OFPT_PACKET_OUT:               "packet_out",
	OFPT_FLOW_MOD:                 "flow_mod",
	OFPT_GROUP_MOD:                "group_mod",
	OFPT_PORT_MOD:                 "port_mod",
	OFPT_TABLE_MOD:                "table_mod",
	OFPT_MULTIPART_REQUEST:        "multipart_request",
	OFPT_MULTIPART_REPLY:          "multipart_reply",
	OFPT_BARRIER_REQUEST:          "barrier_request",
	OFPT_BARRIER_REPLY:            "barrier_reply",
	OFPT_QUEUE_GET_CONFIG_REQUEST: "queue_get_config_request",
	OFPT_QUEUE_GET_CONFIG_REPLY:   "queue_get_config_reply",
	OFPT_ROLE_REQUEST:             "role_request",
	OFPT_ROLE_REPLY:               "role_reply",
	OFPT_GET_ASYNC_REQUEST:        "get_async_request",
	OFPT_GET_ASYNC_REPLY:          "get_async_reply",
	OFPT_SET_ASYNC:                "set_async",
	OFPT_METER_MOD:                "meter_mod",
}

// TypeName returns the lower case name of a message type.
func TypeName(typ uint8) string {
	if name, ok := typeNames[typ]; ok {
		return name
	}
	return fmt.Sprintf("type_%d", typ)
}

var multipartNames = map[uint16]string{
	OFPMP_DESC:           "desc",
	OFPMP_FLOW:           "flow",
	OFPMP_AGGREGATE:      "aggregate",
	OFPMP_TABLE:          "table",
	OFPMP_PORT_STATS:     "port_stats",
	OFPMP_QUEUE:          "queue",
	OFPMP_GROUP:          "group",
	OFPMP_GROUP_DESC:     "group_desc",
	OFPMP_GROUP_FEATURES: "group_features",
	OFPMP_METER:          "meter",
	OFPMP_METER_CONFIG:   "meter_config",
	OFPMP_METER_FEATURES: "meter_features",
	OFPMP_TABLE_FEATURES: "table_features",
	OFPMP_PORT_DESC:      "port_desc",
	OFPMP_EXPERIMENTER:   "experimenter",
}

func (obj *Message) String() string {
	if obj.Body == nil {
		return fmt.Sprintf("xid=%d", obj.Xid)
	}
	s := fmt.Sprintf("%s xid=%d", TypeName(obj.Body.Type()), obj.Xid)
	if st, ok := obj.Body.(fmt.Stringer); ok {
		if b := st.String(); b != "" {
			s += " " + b
		}
	}
	return s
}

func (obj *ActionOutput) String() string {
	if obj.MaxLen == OFPCML_NO_BUFFER {
		return fmt.Sprintf("output=%s", oxm.PortString(obj.Port))
	}
	return fmt.Sprintf("output=%s:0x%x", oxm.PortString(obj.Port), obj.MaxLen)
}

func (obj *ActionCopyTtlOut) String() string { return "copy_ttl_out" }
func (obj *ActionCopyTtlIn) String() string  { return "copy_ttl_in" }
func (obj *ActionDecMplsTtl) String() string { return "dec_mpls_ttl" }
func (obj *ActionPopVlan) String() string    { return "pop_vlan" }
func (obj *ActionDecNwTtl) String() string   { return "dec_nw_ttl" }
func (obj *ActionPopPbb) String() string     { return "pop_pbb" }

func (obj *ActionSetMplsTtl) String() string { return fmt.Sprintf("set_mpls_ttl=%d", obj.MplsTtl) }
func (obj *ActionPushVlan) String() string   { return fmt.Sprintf("push_vlan=0x%04x", obj.Ethertype) }
func (obj *ActionPushMpls) String() string   { return fmt.Sprintf("push_mpls=0x%04x", obj.Ethertype) }
func (obj *ActionPushPbb) String() string    { return fmt.Sprintf("push_pbb=0x%04x", obj.Ethertype) }
func (obj *ActionPopMpls) String() string    { return fmt.Sprintf("pop_mpls=0x%04x", obj.Ethertype) }
func (obj *ActionSetQueue) String() string   { return fmt.Sprintf("set_queue=%d", obj.QueueId) }
func (obj *ActionGroup) String() string      { return fmt.Sprintf("group=%d", obj.GroupId) }
func (obj *ActionSetNwTtl) String() string   { return fmt.Sprintf("set_nw_ttl=%d", obj.NwTtl) }

func (obj *ActionSetField) String() string {
	if obj.Field == nil {
		return "set_?"
	}
	return "set_" + obj.Field.String()
}

func (obj *ActionExperimenter) String() string {
	return fmt.Sprintf("experimenter=0x%08x:%x", obj.Experimenter, obj.Data)
}

func actionsString(actions []Action) string {
	var ret []string
	for _, a := range actions {
		ret = append(ret, a.String())
	}
	return strings.Join(ret, ",")
}

func (obj *InstructionGotoTable) String() string {
	return fmt.Sprintf("@goto=%d", obj.TableId)
}

func (obj *InstructionWriteMetadata) String() string {
	if obj.MetadataMask != 0 && obj.MetadataMask != 0xffffffffffffffff {
		return fmt.Sprintf("@metadata=0x%x/0x%x", obj.Metadata, obj.MetadataMask)
	}
	return fmt.Sprintf("@metadata=0x%x", obj.Metadata)
}

func (obj *InstructionWriteActions) String() string {
	if len(obj.Actions) == 0 {
		return "@write"
	}
	return "@write," + actionsString(obj.Actions)
}

func (obj *InstructionApplyActions) String() string {
	if len(obj.Actions) == 0 {
		return "@apply"
	}
	return "@apply," + actionsString(obj.Actions)
}

func (obj *InstructionClearActions) String() string {
	return "@clear"
}

func (obj *InstructionMeter) String() string {
	return fmt.Sprintf("@meter=%d", obj.MeterId)
}

func (obj *InstructionExperimenter) String() string {
	return fmt.Sprintf("@experimenter=0x%08x:%x", obj.Experimenter, obj.Data)
}

func instructionsString(insts []Instruction) string {
	var ret []string
	for _, i := range insts {
		ret = append(ret, i.String())
	}
	return strings.Join(ret, ",")
}

func (obj *FlowMod) String() string {
	cmd := obj.Command
	comps := []string{
		fmt.Sprintf("table=%d,priority=%d", obj.TableId, obj.Priority),
	}
	if cmd == OFPFC_ADD {
		comps = append(comps, fmt.Sprintf("cookie=0x%x", obj.Cookie))
	} else if obj.CookieMask != 0 {
		comps = append(comps, fmt.Sprintf("cookie=0x%x/0x%x", obj.Cookie, obj.CookieMask))
	}
	if len(obj.Match.Fields) > 0 {
		comps = append(comps, obj.Match.String())
	}
	deleting := cmd == OFPFC_DELETE || cmd == OFPFC_DELETE_STRICT
	if !deleting && obj.BufferId != OFP_NO_BUFFER {
		comps = append(comps, fmt.Sprintf("buffer=%d", obj.BufferId))
	}
	if obj.IdleTimeout != 0 {
		comps = append(comps, fmt.Sprintf("idle_timeout=%d", obj.IdleTimeout))
	}
	if obj.HardTimeout != 0 {
		comps = append(comps, fmt.Sprintf("hard_timeout=%d", obj.HardTimeout))
	}
	if deleting {
		if obj.OutPort != OFPP_ANY {
			comps = append(comps, fmt.Sprintf("out_port=%s", oxm.PortString(obj.OutPort)))
		}
		if obj.OutGroup != OFPG_ANY {
			comps = append(comps, fmt.Sprintf("group=%d", obj.OutGroup))
		}
	}
	if len(obj.Instructions) > 0 {
		comps = append(comps, instructionsString(obj.Instructions))
	}
	return strings.Join(comps, ",")
}

func (obj FlowStats) String() string {
	comps := []string{
		fmt.Sprintf("table=%d,priority=%d", obj.TableId, obj.Priority),
	}
	if obj.IdleTimeout != 0 {
		comps = append(comps, fmt.Sprintf("idle_timeout=%d", obj.IdleTimeout))
	}
	if obj.HardTimeout != 0 {
		comps = append(comps, fmt.Sprintf("hard_timeout=%d", obj.HardTimeout))
	}
	comps = append(comps, fmt.Sprintf("cookie=0x%x", obj.Cookie))
	if len(obj.Match.Fields) > 0 {
		comps = append(comps, obj.Match.String())
	}
	if len(obj.Instructions) > 0 {
		comps = append(comps, instructionsString(obj.Instructions))
	}
	return strings.Join(comps, ",")
}

func (obj *FlowRemoved) String() string {
	comps := []string{
		fmt.Sprintf("table=%d,priority=%d,cookie=0x%x,reason=%d", obj.TableId, obj.Priority, obj.Cookie, obj.Reason),
		fmt.Sprintf("packets=%d,bytes=%d", obj.PacketCount, obj.ByteCount),
	}
	if len(obj.Match.Fields) > 0 {
		comps = append(comps, obj.Match.String())
	}
	return strings.Join(comps, ",")
}

func (obj *PacketIn) String() string {
	comps := []string{
		fmt.Sprintf("table=%d,reason=%d,total_len=%d", obj.TableId, obj.Reason, obj.TotalLen),
	}
	if obj.BufferId != OFP_NO_BUFFER {
		comps = append(comps, fmt.Sprintf("buffer=%d", obj.BufferId))
	}
	if len(obj.Match.Fields) > 0 {
		comps = append(comps, obj.Match.String())
	}
	return strings.Join(comps, ",")
}

func (obj *PacketOut) String() string {
	comps := []string{
		fmt.Sprintf("in_port=%s", oxm.PortString(obj.InPort)),
	}
	if obj.BufferId != OFP_NO_BUFFER {
		comps = append(comps, fmt.Sprintf("buffer=%d", obj.BufferId))
	}
	if len(obj.Actions) > 0 {
		comps = append(comps, actionsString(obj.Actions))
	}
	return strings.Join(comps, ",")
}

func (obj *ErrorMsg) String() string {
	if obj.ErrType == OFPET_EXPERIMENTER {
		return fmt.Sprintf("type=experimenter,exp_type=%d,experimenter=0x%08x", obj.Code, obj.Experimenter)
	}
	return fmt.Sprintf("type=%d,code=%d", obj.ErrType, obj.Code)
}

func (obj *Hello) String() string {
	var ret []string
	for _, e := range obj.Elements {
		if v, ok := e.(*HelloElemVersionBitmap); ok {
			var versions []string
			for i := 0; i < len(v.Bitmaps)*32 && i < 256; i++ {
				if v.Supports(uint8(i)) {
					versions = append(versions, fmt.Sprintf("%d", i))
				}
			}
			ret = append(ret, "versions="+strings.Join(versions, "/"))
		}
	}
	return strings.Join(ret, ",")
}

func (obj *PortStatus) String() string {
	return fmt.Sprintf("reason=%d,port=%s,name=%s", obj.Reason, oxm.PortString(obj.Desc.PortNo), obj.Desc.Name)
}

func (obj *MultipartRequest) String() string {
	if obj.Body == nil {
		return ""
	}
	return multipartString(obj.Flags, obj.Body)
}

func (obj *MultipartReply) String() string {
	if obj.Body == nil {
		return ""
	}
	return multipartString(obj.Flags, obj.Body)
}

func multipartString(flags uint16, body MultipartBody) string {
	name, ok := multipartNames[body.MultipartType()]
	if !ok {
		name = fmt.Sprintf("multipart_%d", body.MultipartType())
	}
	if flags&OFPMPF_REQ_MORE != 0 {
		name += ",more"
	}
	if r, ok := body.(*FlowStatsReply); ok {
		for _, s := range r.Stats {
			name += " [" + s.String() + "]"
		}
	}
	return name
}
