package registers

// TransmitControl is the TXCTRL register (0x15): TX mixer bias currents,
// the STXON turnaround time and the PA output level. Bit 5 is reserved
// and always written as 1.
type TransmitControl struct {
	// TX mixer buffer bias current, 0..3 (2 is nominal).
	TxMixBufferCurrent uint8

	// Wait 12 symbol periods after STXON instead of 8.
	TxTurnaround bool

	// Varactor array setting in the transmit mixers, 0..3.
	TxMixCapArray uint8

	// Transmit mixer current, 0..3.
	TxMixCurrent uint8

	// PA current adjustment, 0..7 (3 is nominal).
	PACurrent uint8

	// PA output level, 0..31 (31 is approximately 0 dBm).
	PALevel uint8
}

// DefaultTransmitControl returns the register's reset values.
func DefaultTransmitControl() TransmitControl {
	return TransmitControl{
		TxMixBufferCurrent: 2,
		TxTurnaround:       true,
		PACurrent:          3,
		PALevel:            31,
	}
}

// NewTransmitControl validates r and returns it ready for use.
func NewTransmitControl(r TransmitControl) (*TransmitControl, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *TransmitControl) Validate() error {
	if r.TxMixBufferCurrent > 3 {
		return &RangeError{Register: "TXCTRL", Field: "TXMIXBUF_CUR", Value: int(r.TxMixBufferCurrent), Min: 0, Max: 3}
	}
	if r.TxMixCapArray > 3 {
		return &RangeError{Register: "TXCTRL", Field: "TXMIX_CAP_ARRAY", Value: int(r.TxMixCapArray), Min: 0, Max: 3}
	}
	if r.TxMixCurrent > 3 {
		return &RangeError{Register: "TXCTRL", Field: "TXMIX_CURRENT", Value: int(r.TxMixCurrent), Min: 0, Max: 3}
	}
	if r.PACurrent > 7 {
		return &RangeError{Register: "TXCTRL", Field: "PA_CURRENT", Value: int(r.PACurrent), Min: 0, Max: 7}
	}
	if r.PALevel > 31 {
		return &RangeError{Register: "TXCTRL", Field: "PA_LEVEL", Value: int(r.PALevel), Min: 0, Max: 31}
	}
	return nil
}

func (r *TransmitControl) Address() uint8 { return AddrTransmitControl }

func (r *TransmitControl) Value() uint16 {
	value := uint16(1) << 5 // reserved, always 1
	value |= uint16(r.TxMixBufferCurrent) << 14
	if r.TxTurnaround {
		value |= 1 << 13
	}
	value |= uint16(r.TxMixCapArray) << 11
	value |= uint16(r.TxMixCurrent) << 9
	value |= uint16(r.PACurrent) << 6
	value |= uint16(r.PALevel)
	return value
}

func (r *TransmitControl) SetValue(value uint16) {
	*r = TransmitControl{
		TxMixBufferCurrent: uint8(value >> 14 & 0b11),
		TxTurnaround:       value&(1<<13) != 0,
		TxMixCapArray:      uint8(value >> 11 & 0b11),
		TxMixCurrent:       uint8(value >> 9 & 0b11),
		PACurrent:          uint8(value >> 6 & 0b111),
		PALevel:            uint8(value & 0b11111),
	}
}
