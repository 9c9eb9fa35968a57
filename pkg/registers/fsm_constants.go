package registers

// FSMConstants is the FSMTC register (0x20): the radio state machine's
// time constants for the RX chain, RX/TX switch and PA ramping.
type FSMConstants struct {
	// Time in 5 us steps between enabling the RX chain and enabling
	// the demodulator and AGC, 0..7.
	RxChainToRx uint8

	// Time in us the RXTX switch is set high in advance of TX, 0..7.
	SwitchToTx uint8

	// Time in us the PA is powered up in advance of TX, 0..15.
	PAOnToTx uint8

	// Time in us between the last chip sent and the TXRX switch
	// being disabled, 0..7.
	TxEndToSwitch uint8

	// Time in us between the last chip sent and PA power-down, 0..7.
	TxEndToPAOff uint8
}

// DefaultFSMConstants returns the register's reset values.
func DefaultFSMConstants() FSMConstants {
	return FSMConstants{
		RxChainToRx:   3,
		SwitchToTx:    6,
		PAOnToTx:      10,
		TxEndToSwitch: 2,
		TxEndToPAOff:  4,
	}
}

// NewFSMConstants validates r and returns it ready for use.
func NewFSMConstants(r FSMConstants) (*FSMConstants, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *FSMConstants) Validate() error {
	if r.RxChainToRx > 7 {
		return &RangeError{Register: "FSMTC", Field: "TC_RXCHAIN2RX", Value: int(r.RxChainToRx), Min: 0, Max: 7}
	}
	if r.SwitchToTx > 7 {
		return &RangeError{Register: "FSMTC", Field: "TC_SWITCH2TX", Value: int(r.SwitchToTx), Min: 0, Max: 7}
	}
	if r.PAOnToTx > 15 {
		return &RangeError{Register: "FSMTC", Field: "TC_PAON2TX", Value: int(r.PAOnToTx), Min: 0, Max: 15}
	}
	if r.TxEndToSwitch > 7 {
		return &RangeError{Register: "FSMTC", Field: "TC_TXEND2SWITCH", Value: int(r.TxEndToSwitch), Min: 0, Max: 7}
	}
	if r.TxEndToPAOff > 7 {
		return &RangeError{Register: "FSMTC", Field: "TC_TXEND2PAOFF", Value: int(r.TxEndToPAOff), Min: 0, Max: 7}
	}
	return nil
}

func (r *FSMConstants) Address() uint8 { return AddrFSMConstants }

func (r *FSMConstants) Value() uint16 {
	var value uint16
	value |= uint16(r.RxChainToRx) << 13
	value |= uint16(r.SwitchToTx) << 10
	value |= uint16(r.PAOnToTx) << 6
	value |= uint16(r.TxEndToSwitch) << 3
	value |= uint16(r.TxEndToPAOff)
	return value
}

func (r *FSMConstants) SetValue(value uint16) {
	*r = FSMConstants{
		RxChainToRx:   uint8(value >> 13 & 0b111),
		SwitchToTx:    uint8(value >> 10 & 0b111),
		PAOnToTx:      uint8(value >> 6 & 0b1111),
		TxEndToSwitch: uint8(value >> 3 & 0b111),
		TxEndToPAOff:  uint8(value & 0b111),
	}
}
