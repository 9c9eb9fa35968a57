package registers

// ReceiveControl0 is the RXCTRL0 register (0x16): LNA and RX mixer bias
// currents for the three AGC gain modes. All fields are 2-bit, 0..3.
type ReceiveControl0 struct {
	RxMixBufferCurrent uint8 // RX mixer buffer bias current (1 is nominal)
	HighLNAGain        uint8 // LNA gain compensation current, AGC high gain mode
	MedLNAGain         uint8 // LNA gain compensation current, AGC medium gain mode
	LowLNAGain         uint8 // LNA gain compensation current, AGC low gain mode
	HighLNACurrent     uint8 // main LNA current, AGC high gain mode
	MedLNACurrent      uint8 // main LNA current, AGC medium gain mode
	LowLNACurrent      uint8 // main LNA current, AGC low gain mode
}

// DefaultReceiveControl0 returns the register's reset values.
func DefaultReceiveControl0() ReceiveControl0 {
	return ReceiveControl0{
		RxMixBufferCurrent: 1,
		MedLNAGain:         2,
		LowLNAGain:         3,
		HighLNACurrent:     2,
		MedLNACurrent:      1,
		LowLNACurrent:      1,
	}
}

// NewReceiveControl0 validates r and returns it ready for use.
func NewReceiveControl0(r ReceiveControl0) (*ReceiveControl0, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *ReceiveControl0) Validate() error {
	fields := []struct {
		name  string
		value uint8
	}{
		{"RXMIXBUF_CUR", r.RxMixBufferCurrent},
		{"HIGH_LNA_GAIN", r.HighLNAGain},
		{"MED_LNA_GAIN", r.MedLNAGain},
		{"LOW_LNA_GAIN", r.LowLNAGain},
		{"HIGH_LNA_CURRENT", r.HighLNACurrent},
		{"MED_LNA_CURRENT", r.MedLNACurrent},
		{"LOW_LNA_CURRENT", r.LowLNACurrent},
	}
	for _, f := range fields {
		if f.value > 3 {
			return &RangeError{Register: "RXCTRL0", Field: f.name, Value: int(f.value), Min: 0, Max: 3}
		}
	}
	return nil
}

func (r *ReceiveControl0) Address() uint8 { return AddrReceiveControl0 }

func (r *ReceiveControl0) Value() uint16 {
	var value uint16
	value |= uint16(r.RxMixBufferCurrent) << 12
	value |= uint16(r.HighLNAGain) << 10
	value |= uint16(r.MedLNAGain) << 8
	value |= uint16(r.LowLNAGain) << 6
	value |= uint16(r.HighLNACurrent) << 4
	value |= uint16(r.MedLNACurrent) << 2
	value |= uint16(r.LowLNACurrent)
	return value
}

func (r *ReceiveControl0) SetValue(value uint16) {
	*r = ReceiveControl0{
		RxMixBufferCurrent: uint8(value >> 12 & 0b11),
		HighLNAGain:        uint8(value >> 10 & 0b11),
		MedLNAGain:         uint8(value >> 8 & 0b11),
		LowLNAGain:         uint8(value >> 6 & 0b11),
		HighLNACurrent:     uint8(value >> 4 & 0b11),
		MedLNACurrent:      uint8(value >> 2 & 0b11),
		LowLNACurrent:      uint8(value & 0b11),
	}
}

// ReceiveControl1 is the RXCTRL1 register (0x17): bandpass filter bias,
// per-gain-mode LNA/mixer switches and the receive mixer currents.
type ReceiveControl1 struct {
	RxBPFLowCurrent bool  // 3 uA bandpass filter reference bias (recommended)
	RxBPFMidCurrent bool  // 3.5 uA bandpass filter reference bias
	LowLowGain      bool  // LNA low gain mode setting, AGC low gain mode
	MedLowGain      bool  // LNA low gain mode setting, AGC medium gain mode
	HighHGM         bool  // RX mixer high gain mode setting, AGC high gain mode
	MedHGM          bool  // RX mixer high gain mode setting, AGC medium gain mode
	LNACapArray     uint8 // varactor array setting in the LNA, 0..3
	RxMixTail       uint8 // receive mixer output current, 0..3
	RxMixVCM        uint8 // VCM level in the mixer feedback loop, 0..3
	RxMixCurrent    uint8 // mixer current, 0..3
}

// DefaultReceiveControl1 returns the recommended settings (RXBPF_LOCUR
// set, per the datasheet, rather than the chip's raw reset value).
func DefaultReceiveControl1() ReceiveControl1 {
	return ReceiveControl1{
		RxBPFLowCurrent: true,
		LowLowGain:      true,
		HighHGM:         true,
		LNACapArray:     1,
		RxMixTail:       1,
		RxMixVCM:        1,
		RxMixCurrent:    2,
	}
}

// NewReceiveControl1 validates r and returns it ready for use.
func NewReceiveControl1(r ReceiveControl1) (*ReceiveControl1, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *ReceiveControl1) Validate() error {
	if r.LNACapArray > 3 {
		return &RangeError{Register: "RXCTRL1", Field: "LNA_CAP_ARRAY", Value: int(r.LNACapArray), Min: 0, Max: 3}
	}
	if r.RxMixTail > 3 {
		return &RangeError{Register: "RXCTRL1", Field: "RXMIX_TAIL", Value: int(r.RxMixTail), Min: 0, Max: 3}
	}
	if r.RxMixVCM > 3 {
		return &RangeError{Register: "RXCTRL1", Field: "RXMIX_VCM", Value: int(r.RxMixVCM), Min: 0, Max: 3}
	}
	if r.RxMixCurrent > 3 {
		return &RangeError{Register: "RXCTRL1", Field: "RXMIX_CURRENT", Value: int(r.RxMixCurrent), Min: 0, Max: 3}
	}
	return nil
}

func (r *ReceiveControl1) Address() uint8 { return AddrReceiveControl1 }

func (r *ReceiveControl1) Value() uint16 {
	var value uint16
	if r.RxBPFLowCurrent {
		value |= 1 << 13
	}
	if r.RxBPFMidCurrent {
		value |= 1 << 12
	}
	if r.LowLowGain {
		value |= 1 << 11
	}
	if r.MedLowGain {
		value |= 1 << 10
	}
	if r.HighHGM {
		value |= 1 << 9
	}
	if r.MedHGM {
		value |= 1 << 8
	}
	value |= uint16(r.LNACapArray) << 6
	value |= uint16(r.RxMixTail) << 4
	value |= uint16(r.RxMixVCM) << 2
	value |= uint16(r.RxMixCurrent)
	return value
}

func (r *ReceiveControl1) SetValue(value uint16) {
	*r = ReceiveControl1{
		RxBPFLowCurrent: value&(1<<13) != 0,
		RxBPFMidCurrent: value&(1<<12) != 0,
		LowLowGain:      value&(1<<11) != 0,
		MedLowGain:      value&(1<<10) != 0,
		HighHGM:         value&(1<<9) != 0,
		MedHGM:          value&(1<<8) != 0,
		LNACapArray:     uint8(value >> 6 & 0b11),
		RxMixTail:       uint8(value >> 4 & 0b11),
		RxMixVCM:        uint8(value >> 2 & 0b11),
		RxMixCurrent:    uint8(value & 0b11),
	}
}
