package ofp4

// Port is ofp_port, used by port status, port desc and features.
type Port struct {
	PortNo     uint32
	HwAddr     [OFP_ETH_ALEN]byte
	Name       string
	Config     uint32
	State      uint32
	Curr       uint32
	Advertised uint32
	Supported  uint32
	Peer       uint32
	CurrSpeed  uint32
	MaxSpeed   uint32
}

func (obj Port) Len() int {
	return 64
}

func (obj Port) Validate() error {
	if obj.PortNo == 0 || (obj.PortNo > OFPP_MAX && obj.PortNo != OFPP_LOCAL) {
		return errBad(RecordPortNo, uint64(obj.PortNo))
	}
	return validateName(obj.Name, OFP_MAX_PORT_NAME_LEN, RecordPortName)
}

func (obj Port) encode(w *writer) {
	w.u32(obj.PortNo)
	w.pad(4)
	w.bytes(obj.HwAddr[:])
	w.pad(2)
	w.str(obj.Name, OFP_MAX_PORT_NAME_LEN)
	for _, v := range []uint32{obj.Config, obj.State, obj.Curr, obj.Advertised,
		obj.Supported, obj.Peer, obj.CurrSpeed, obj.MaxSpeed} {
		w.u32(v)
	}
}

func decodePort(c *Cursor) (obj Port, err error) {
	p, err := c.Sub(64, RecordPort)
	if err != nil {
		return
	}
	obj.PortNo, _ = p.Uint32(RecordPort)
	p.Skip(4, RecordPort)
	hw, _ := p.Bytes(OFP_ETH_ALEN, RecordPort)
	copy(obj.HwAddr[:], hw)
	p.Skip(2, RecordPort)
	name, _ := p.Bytes(OFP_MAX_PORT_NAME_LEN, RecordPort)
	obj.Name = cstr(name)
	for _, v := range []*uint32{&obj.Config, &obj.State, &obj.Curr, &obj.Advertised,
		&obj.Supported, &obj.Peer, &obj.CurrSpeed, &obj.MaxSpeed} {
		*v, _ = p.Uint32(RecordPort)
	}
	return
}

func decodePorts(c *Cursor) ([]Port, error) {
	return decodeSeq(c, RecordPortList, 64, decodePort)
}

func validatePorts(ports []Port) error {
	for _, p := range ports {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// validateName checks a string that travels in a zero filled field.
func validateName(s string, width int, rec Record) error {
	if len(s) > width {
		return errBadf(rec, uint64(len(s)), "%q is longer than %d", s, width)
	}
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return errBadf(rec, uint64(i), "%q holds a NUL", s)
		}
	}
	return nil
}

// PortStatus is the OFPT_PORT_STATUS body.
type PortStatus struct {
	Reason uint8
	Desc   Port
}

func (obj *PortStatus) Type() uint8 { return OFPT_PORT_STATUS }
func (obj *PortStatus) Len() int    { return 8 + 64 }

func (obj *PortStatus) Validate() error {
	if obj.Reason > OFPPR_MODIFY {
		return errBad(RecordPortReason, uint64(obj.Reason))
	}
	return obj.Desc.Validate()
}

func (obj *PortStatus) encode(w *writer) {
	w.u8(obj.Reason)
	w.pad(7)
	obj.Desc.encode(w)
}

func (obj *PortStatus) decode(c *Cursor) (err error) {
	if obj.Reason, err = c.Uint8(RecordPortStatus); err != nil {
		return
	}
	if err = c.Skip(7, RecordPortStatus); err != nil {
		return
	}
	obj.Desc, err = decodePort(c)
	return
}

// PortMod is the OFPT_PORT_MOD body.
type PortMod struct {
	PortNo    uint32
	HwAddr    [OFP_ETH_ALEN]byte
	Config    uint32
	Mask      uint32
	Advertise uint32
}

func (obj *PortMod) Type() uint8 { return OFPT_PORT_MOD }
func (obj *PortMod) Len() int    { return 32 }

func (obj *PortMod) Validate() error {
	if obj.PortNo == 0 || (obj.PortNo > OFPP_MAX && obj.PortNo != OFPP_LOCAL) {
		return errBad(RecordPortNo, uint64(obj.PortNo))
	}
	return nil
}

func (obj *PortMod) encode(w *writer) {
	w.u32(obj.PortNo)
	w.pad(4)
	w.bytes(obj.HwAddr[:])
	w.pad(2)
	w.u32(obj.Config)
	w.u32(obj.Mask)
	w.u32(obj.Advertise)
	w.pad(4)
}

func (obj *PortMod) decode(c *Cursor) (err error) {
	p, err := c.Sub(32, RecordPortMod)
	if err != nil {
		return
	}
	obj.PortNo, _ = p.Uint32(RecordPortMod)
	p.Skip(4, RecordPortMod)
	hw, _ := p.Bytes(OFP_ETH_ALEN, RecordPortMod)
	copy(obj.HwAddr[:], hw)
	p.Skip(2, RecordPortMod)
	obj.Config, _ = p.Uint32(RecordPortMod)
	obj.Mask, _ = p.Uint32(RecordPortMod)
	obj.Advertise, _ = p.Uint32(RecordPortMod)
	return
}
