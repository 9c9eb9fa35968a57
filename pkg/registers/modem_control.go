package registers

// ModemControl0 is the MDMCTRL0 register (0x11), holding the MAC-level
// behavior switches: address recognition, CCA mode, automatic CRC and
// acknowledgment, and the TX preamble length.
type ModemControl0 struct {
	// Accept reserved 802.15.4 frame types when address recognition
	// is enabled. With recognition disabled all frames are received.
	ReservedFrameMode bool

	// Set when the device is a PAN coordinator; used for filtering
	// packets with no destination address.
	PanCoordinator bool

	// Hardware address decoding.
	AddressDecode bool

	// CCA hysteresis in dB, 0..7.
	CCAHysteresis uint8

	// CCA mode, 1..3 (0 is reserved):
	//  1: below threshold
	//  2: not receiving valid 802.15.4 data
	//  3: both
	CCAMode uint8

	// Compute and check CRC-16 in hardware.
	AutoCRC bool

	// Acknowledge accepted frames with the ack-request flag set.
	AutoAck bool

	// Number of leading zero preamble bytes minus one, 0..15. The
	// reset value 2 is 802.15.4 compliant.
	PreambleLength uint8
}

// DefaultModemControl0 returns the register's reset values.
func DefaultModemControl0() ModemControl0 {
	return ModemControl0{
		AddressDecode:  true,
		CCAHysteresis:  2,
		CCAMode:        3,
		AutoCRC:        true,
		PreambleLength: 2,
	}
}

// NewModemControl0 validates r and returns it ready for use.
func NewModemControl0(r ModemControl0) (*ModemControl0, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *ModemControl0) Validate() error {
	if r.CCAHysteresis > 7 {
		return &RangeError{Register: "MDMCTRL0", Field: "CCA_HYST", Value: int(r.CCAHysteresis), Min: 0, Max: 7}
	}
	if r.CCAMode == 0 || r.CCAMode > 3 {
		return &RangeError{Register: "MDMCTRL0", Field: "CCA_MODE", Value: int(r.CCAMode), Min: 1, Max: 3}
	}
	if r.PreambleLength > 15 {
		return &RangeError{Register: "MDMCTRL0", Field: "PREAMBLE_LENGTH", Value: int(r.PreambleLength), Min: 0, Max: 15}
	}
	return nil
}

func (r *ModemControl0) Address() uint8 { return AddrModemControl0 }

func (r *ModemControl0) Value() uint16 {
	var value uint16
	if r.ReservedFrameMode {
		value |= 1 << 13
	}
	if r.PanCoordinator {
		value |= 1 << 12
	}
	if r.AddressDecode {
		value |= 1 << 11
	}
	value |= uint16(r.CCAHysteresis) << 8
	value |= uint16(r.CCAMode) << 6
	if r.AutoCRC {
		value |= 1 << 5
	}
	if r.AutoAck {
		value |= 1 << 4
	}
	value |= uint16(r.PreambleLength)
	return value
}

func (r *ModemControl0) SetValue(value uint16) {
	*r = ModemControl0{
		ReservedFrameMode: value&(1<<13) != 0,
		PanCoordinator:    value&(1<<12) != 0,
		AddressDecode:     value&(1<<11) != 0,
		CCAHysteresis:     uint8(value >> 8 & 0b111),
		CCAMode:           uint8(value >> 6 & 0b11),
		AutoCRC:           value&(1<<5) != 0,
		AutoAck:           value&(1<<4) != 0,
		PreambleLength:    uint8(value & 0b1111),
	}
}

// ModemControl1 is the MDMCTRL1 register (0x12), holding the demodulator
// correlator threshold and the TX/RX test modes.
type ModemControl1 struct {
	// Correlator threshold required before SFD search, 0..31.
	CorrelatorThreshold uint8

	// Continuously update the frequency offset filter instead of
	// locking it after preamble match.
	DemodAverageMode bool

	// Reversed-phase, non-802.15.4-compliant modulation.
	ModulationMode bool

	// TX test mode, 0..3. 0 is buffered (normal) operation.
	TxMode uint8

	// RX test mode, 0..2. 0 is buffered (normal) operation.
	RxMode uint8
}

// DefaultModemControl1 returns the register's reset values.
func DefaultModemControl1() ModemControl1 {
	return ModemControl1{CorrelatorThreshold: 20}
}

// NewModemControl1 validates r and returns it ready for use.
func NewModemControl1(r ModemControl1) (*ModemControl1, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *ModemControl1) Validate() error {
	if r.CorrelatorThreshold > 31 {
		return &RangeError{Register: "MDMCTRL1", Field: "CORR_THR", Value: int(r.CorrelatorThreshold), Min: 0, Max: 31}
	}
	if r.TxMode > 3 {
		return &RangeError{Register: "MDMCTRL1", Field: "TX_MODE", Value: int(r.TxMode), Min: 0, Max: 3}
	}
	if r.RxMode > 2 {
		return &RangeError{Register: "MDMCTRL1", Field: "RX_MODE", Value: int(r.RxMode), Min: 0, Max: 2}
	}
	return nil
}

func (r *ModemControl1) Address() uint8 { return AddrModemControl1 }

func (r *ModemControl1) Value() uint16 {
	var value uint16
	value |= uint16(r.CorrelatorThreshold) << 6
	if r.DemodAverageMode {
		value |= 1 << 5
	}
	if r.ModulationMode {
		value |= 1 << 4
	}
	value |= uint16(r.TxMode) << 2
	value |= uint16(r.RxMode)
	return value
}

func (r *ModemControl1) SetValue(value uint16) {
	*r = ModemControl1{
		CorrelatorThreshold: uint8(value >> 6 & 0b11111),
		DemodAverageMode:    value&(1<<5) != 0,
		ModulationMode:      value&(1<<4) != 0,
		TxMode:              uint8(value >> 2 & 0b11),
		RxMode:              uint8(value & 0b11),
	}
}
