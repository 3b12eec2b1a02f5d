package ofp4

// Record identifies the wire record, the sequence region or the
// enumerated field an Error refers to.
type Record uint16

// wire records
const (
	RecordHeader Record = iota + 1
	RecordMessage
	RecordHelloElem
	RecordHelloElemVersionBitmap
	RecordError
	RecordExperimenter
	RecordSwitchFeatures
	RecordSwitchConfig
	RecordPacketIn
	RecordFlowRemoved
	RecordPortStatus
	RecordPacketOut
	RecordFlowMod
	RecordGroupMod
	RecordPortMod
	RecordTableMod
	RecordMultipartRequest
	RecordMultipartReply
	RecordQueueGetConfigRequest
	RecordQueueGetConfigReply
	RecordRoleRequest
	RecordRoleReply
	RecordAsyncConfig
	RecordMeterMod

	RecordMatch
	RecordOxm
	RecordOxmExperimenter

	RecordAction
	RecordActionOutput
	RecordActionGeneric
	RecordActionMplsTtl
	RecordActionPush
	RecordActionPopMpls
	RecordActionSetQueue
	RecordActionGroup
	RecordActionNwTtl
	RecordActionSetField
	RecordActionExperimenter

	RecordInstruction
	RecordInstructionGotoTable
	RecordInstructionWriteMetadata
	RecordInstructionActions
	RecordInstructionMeter
	RecordInstructionExperimenter

	RecordPort
	RecordPacketQueue
	RecordQueueProp
	RecordQueuePropRate
	RecordQueuePropExperimenter
	RecordBucket
	RecordBucketCounter
	RecordMeterBand
	RecordMeterBandDrop
	RecordMeterBandDscpRemark
	RecordMeterBandExperimenter
	RecordMeterBandStats

	RecordTableFeatures
	RecordTableFeatureProp
	RecordTableFeaturePropInstructions
	RecordTableFeaturePropNextTables
	RecordTableFeaturePropActions
	RecordTableFeaturePropOxm
	RecordTableFeaturePropExperimenter
	RecordInstructionId
	RecordActionId
	RecordOxmId

	RecordDesc
	RecordFlowStatsRequest
	RecordAggregateStatsRequest
	RecordPortStatsRequest
	RecordQueueStatsRequest
	RecordGroupStatsRequest
	RecordMeterMultipartRequest
	RecordExperimenterMultipart
	RecordFlowStats
	RecordAggregateStatsReply
	RecordTableStats
	RecordPortStats
	RecordQueueStats
	RecordGroupStats
	RecordGroupDesc
	RecordGroupFeatures
	RecordMeterStats
	RecordMeterConfig
	RecordMeterFeatures
)

// sequence regions
const (
	RecordHelloElemList Record = iota + 200
	RecordVersionBitmapList
	RecordOxmList
	RecordActionList
	RecordInstructionList
	RecordBucketList
	RecordBucketCounterList
	RecordBandList
	RecordBandStatsList
	RecordQueueList
	RecordQueuePropList
	RecordPortList
	RecordTableFeaturesList
	RecordTableFeaturePropList
	RecordInstructionIdList
	RecordActionIdList
	RecordOxmIdList
	RecordFlowStatsList
	RecordTableStatsList
	RecordPortStatsList
	RecordQueueStatsList
	RecordGroupStatsList
	RecordGroupDescList
	RecordMeterStatsList
	RecordMeterConfigList
)

// enumerated and range restricted fields
const (
	RecordVersion Record = iota + 400
	RecordMessageType
	RecordLength
	RecordHelloElemType
	RecordErrorType
	RecordHelloFailedCode
	RecordBadRequestCode
	RecordBadActionCode
	RecordBadInstructionCode
	RecordBadMatchCode
	RecordFlowModFailedCode
	RecordGroupModFailedCode
	RecordPortModFailedCode
	RecordTableModFailedCode
	RecordQueueOpFailedCode
	RecordSwitchConfigFailedCode
	RecordRoleRequestFailedCode
	RecordMeterModFailedCode
	RecordTableFeaturesFailedCode
	RecordConfigFlags
	RecordPacketInReason
	RecordFlowRemovedReason
	RecordPortReason
	RecordPortNo
	RecordPortName
	RecordMaxLen
	RecordBufferId
	RecordTableId
	RecordFlowModCommand
	RecordFlowModFlags
	RecordGroupModCommand
	RecordGroupType
	RecordGroupId
	RecordMeterModCommand
	RecordMeterFlags
	RecordMeterId
	RecordControllerRole
	RecordMultipartType
	RecordMultipartFlags
	RecordMatchType
	RecordOxmClass
	RecordOxmField
	RecordOxmLength
	RecordOxmMask
	RecordOxmValue
	RecordOxmDuplicate
	RecordActionType
	RecordPushEthertype
	RecordInstructionType
	RecordQueuePropType
	RecordMeterBandType
	RecordTableFeaturePropType
	RecordDescString
	RecordTableName
	RecordBucketWeight
	RecordPrecLevel
	RecordVersionBitmap
)

var recordNames = map[Record]string{
	RecordHeader:                 "ofp_header",
	RecordMessage:                "message",
	RecordHelloElem:              "ofp_hello_elem",
	RecordHelloElemVersionBitmap: "ofp_hello_elem_versionbitmap",
	RecordError:                  "ofp_error_msg",
	RecordExperimenter:           "ofp_experimenter_header",
	RecordSwitchFeatures:         "ofp_switch_features",
	RecordSwitchConfig:           "ofp_switch_config",
	RecordPacketIn:               "ofp_packet_in",
	RecordFlowRemoved:            "ofp_flow_removed",
	RecordPortStatus:             "ofp_port_status",
	RecordPacketOut:              "ofp_packet_out",
	RecordFlowMod:                "ofp_flow_mod",
	RecordGroupMod:               "ofp_group_mod",
	RecordPortMod:                "ofp_port_mod",
	RecordTableMod:               "ofp_table_mod",
	RecordMultipartRequest:       "ofp_multipart_request",
	RecordMultipartReply:         "ofp_multipart_reply",
	RecordQueueGetConfigRequest:  "ofp_queue_get_config_request",
	RecordQueueGetConfigReply:    "ofp_queue_get_config_reply",
	RecordRoleRequest:            "ofp_role_request",
	RecordRoleReply:              "ofp_role_reply",
	RecordAsyncConfig:            "ofp_async_config",
	RecordMeterMod:               "ofp_meter_mod",

	RecordMatch:           "ofp_match",
	RecordOxm:             "oxm",
	RecordOxmExperimenter: "oxm experimenter",

	RecordAction:             "ofp_action_header",
	RecordActionOutput:       "ofp_action_output",
	RecordActionGeneric:      "ofp_action_generic",
	RecordActionMplsTtl:      "ofp_action_mpls_ttl",
	RecordActionPush:         "ofp_action_push",
	RecordActionPopMpls:      "ofp_action_pop_mpls",
	RecordActionSetQueue:     "ofp_action_set_queue",
	RecordActionGroup:        "ofp_action_group",
	RecordActionNwTtl:        "ofp_action_nw_ttl",
	RecordActionSetField:     "ofp_action_set_field",
	RecordActionExperimenter: "ofp_action_experimenter_header",

	RecordInstruction:              "ofp_instruction",
	RecordInstructionGotoTable:     "ofp_instruction_goto_table",
	RecordInstructionWriteMetadata: "ofp_instruction_write_metadata",
	RecordInstructionActions:       "ofp_instruction_actions",
	RecordInstructionMeter:         "ofp_instruction_meter",
	RecordInstructionExperimenter:  "ofp_instruction_experimenter",

	RecordPort:                  "ofp_port",
	RecordPacketQueue:           "ofp_packet_queue",
	RecordQueueProp:             "ofp_queue_prop_header",
	RecordQueuePropRate:         "ofp_queue_prop_rate",
	RecordQueuePropExperimenter: "ofp_queue_prop_experimenter",
	RecordBucket:                "ofp_bucket",
	RecordBucketCounter:         "ofp_bucket_counter",
	RecordMeterBand:             "ofp_meter_band_header",
	RecordMeterBandDrop:         "ofp_meter_band_drop",
	RecordMeterBandDscpRemark:   "ofp_meter_band_dscp_remark",
	RecordMeterBandExperimenter: "ofp_meter_band_experimenter",
	RecordMeterBandStats:        "ofp_meter_band_stats",

	RecordTableFeatures:                "ofp_table_features",
	RecordTableFeatureProp:             "ofp_table_feature_prop_header",
	RecordTableFeaturePropInstructions: "ofp_table_feature_prop_instructions",
	RecordTableFeaturePropNextTables:   "ofp_table_feature_prop_next_tables",
	RecordTableFeaturePropActions:      "ofp_table_feature_prop_actions",
	RecordTableFeaturePropOxm:          "ofp_table_feature_prop_oxm",
	RecordTableFeaturePropExperimenter: "ofp_table_feature_prop_experimenter",
	RecordInstructionId:                "instruction id",
	RecordActionId:                     "action id",
	RecordOxmId:                        "oxm id",

	RecordDesc:                  "ofp_desc",
	RecordFlowStatsRequest:      "ofp_flow_stats_request",
	RecordAggregateStatsRequest: "ofp_aggregate_stats_request",
	RecordPortStatsRequest:      "ofp_port_stats_request",
	RecordQueueStatsRequest:     "ofp_queue_stats_request",
	RecordGroupStatsRequest:     "ofp_group_stats_request",
	RecordMeterMultipartRequest: "ofp_meter_multipart_request",
	RecordExperimenterMultipart: "ofp_experimenter_multipart_header",
	RecordFlowStats:             "ofp_flow_stats",
	RecordAggregateStatsReply:   "ofp_aggregate_stats_reply",
	RecordTableStats:            "ofp_table_stats",
	RecordPortStats:             "ofp_port_stats",
	RecordQueueStats:            "ofp_queue_stats",
	RecordGroupStats:            "ofp_group_stats",
	RecordGroupDesc:             "ofp_group_desc",
	RecordGroupFeatures:         "ofp_group_features",
	RecordMeterStats:            "ofp_meter_stats",
	RecordMeterConfig:           "ofp_meter_config",
	RecordMeterFeatures:         "ofp_meter_features",

	RecordHelloElemList:        "hello element list",
	RecordVersionBitmapList:    "version bitmap",
	RecordOxmList:              "oxm list",
	RecordActionList:           "action list",
	RecordInstructionList:      "instruction list",
	RecordBucketList:           "bucket list",
	RecordBucketCounterList:    "bucket counter list",
	RecordBandList:             "meter band list",
	RecordBandStatsList:        "meter band stats list",
	RecordQueueList:            "queue list",
	RecordQueuePropList:        "queue property list",
	RecordPortList:             "port list",
	RecordTableFeaturesList:    "table features list",
	RecordTableFeaturePropList: "table feature property list",
	RecordInstructionIdList:    "instruction id list",
	RecordActionIdList:         "action id list",
	RecordOxmIdList:            "oxm id list",
	RecordFlowStatsList:        "flow stats list",
	RecordTableStatsList:       "table stats list",
	RecordPortStatsList:        "port stats list",
	RecordQueueStatsList:       "queue stats list",
	RecordGroupStatsList:       "group stats list",
	RecordGroupDescList:        "group desc list",
	RecordMeterStatsList:       "meter stats list",
	RecordMeterConfigList:      "meter config list",

	RecordVersion:                 "version",
	RecordMessageType:             "message type",
	RecordLength:                  "length",
	RecordHelloElemType:           "hello element type",
	RecordErrorType:               "error type",
	RecordHelloFailedCode:         "hello failed code",
	RecordBadRequestCode:          "bad request code",
	RecordBadActionCode:           "bad action code",
	RecordBadInstructionCode:      "bad instruction code",
	RecordBadMatchCode:            "bad match code",
	RecordFlowModFailedCode:       "flow mod failed code",
	RecordGroupModFailedCode:      "group mod failed code",
	RecordPortModFailedCode:       "port mod failed code",
	RecordTableModFailedCode:      "table mod failed code",
	RecordQueueOpFailedCode:       "queue op failed code",
	RecordSwitchConfigFailedCode:  "switch config failed code",
	RecordRoleRequestFailedCode:   "role request failed code",
	RecordMeterModFailedCode:      "meter mod failed code",
	RecordTableFeaturesFailedCode: "table features failed code",
	RecordConfigFlags:             "config flags",
	RecordPacketInReason:          "packet in reason",
	RecordFlowRemovedReason:       "flow removed reason",
	RecordPortReason:              "port status reason",
	RecordPortNo:                  "port number",
	RecordPortName:                "port name",
	RecordMaxLen:                  "max_len",
	RecordBufferId:                "buffer id",
	RecordTableId:                 "table id",
	RecordFlowModCommand:          "flow mod command",
	RecordFlowModFlags:            "flow mod flags",
	RecordGroupModCommand:         "group mod command",
	RecordGroupType:               "group type",
	RecordGroupId:                 "group id",
	RecordMeterModCommand:         "meter mod command",
	RecordMeterFlags:              "meter flags",
	RecordMeterId:                 "meter id",
	RecordControllerRole:          "controller role",
	RecordMultipartType:           "multipart type",
	RecordMultipartFlags:          "multipart flags",
	RecordMatchType:               "match type",
	RecordOxmClass:                "oxm class",
	RecordOxmField:                "oxm field",
	RecordOxmLength:               "oxm length",
	RecordOxmMask:                 "oxm mask",
	RecordOxmValue:                "oxm value",
	RecordOxmDuplicate:            "duplicate oxm field",
	RecordActionType:              "action type",
	RecordPushEthertype:           "push ethertype",
	RecordInstructionType:         "instruction type",
	RecordQueuePropType:           "queue property type",
	RecordMeterBandType:           "meter band type",
	RecordTableFeaturePropType:    "table feature property type",
	RecordDescString:              "description string",
	RecordTableName:               "table name",
	RecordBucketWeight:            "bucket weight",
	RecordPrecLevel:               "prec_level",
	RecordVersionBitmap:           "version bitmap",
}

func (self Record) String() string {
	if name, ok := recordNames[self]; ok {
		return name
	}
	return "record?"
}
