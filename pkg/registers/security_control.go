package registers

// SecurityControl0 is the SECCTRL0 register (0x19): in-line security
// mode, key selection and CBC-MAC parameters for the hardware AES core.
type SecurityControl0 struct {
	// RXFIFO overflow protection. Should be cleared when MAC-level
	// security is not used or is implemented off-chip.
	RxFifoProtection bool

	// Use the data length instead of the first data byte as the
	// first byte into CBC-MAC. Set for 802.15.4 in-line security.
	CBCHead bool

	// Key 1 instead of key 0 for stand-alone AES.
	SAKeySelect bool

	// Key 1 instead of key 0 for TX.
	TxKeySelect bool

	// Key 1 instead of key 0 for RX.
	RxKeySelect bool

	// Bytes in the CBC-MAC authentication field, encoded as
	// (M-2)/2, 1..7 (0 is reserved).
	MICLength uint8

	// In-line security mode: 0 disabled, 1 CBC-MAC, 2 CTR, 3 CCM.
	Mode uint8
}

// DefaultSecurityControl0 returns the register's reset values.
func DefaultSecurityControl0() SecurityControl0 {
	return SecurityControl0{
		RxFifoProtection: true,
		CBCHead:          true,
		SAKeySelect:      true,
		TxKeySelect:      true,
		MICLength:        1,
	}
}

// NewSecurityControl0 validates r and returns it ready for use.
func NewSecurityControl0(r SecurityControl0) (*SecurityControl0, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *SecurityControl0) Validate() error {
	if r.MICLength == 0 || r.MICLength > 7 {
		return &RangeError{Register: "SECCTRL0", Field: "SEC_M", Value: int(r.MICLength), Min: 1, Max: 7}
	}
	if r.Mode > 3 {
		return &RangeError{Register: "SECCTRL0", Field: "SEC_MODE", Value: int(r.Mode), Min: 0, Max: 3}
	}
	return nil
}

func (r *SecurityControl0) Address() uint8 { return AddrSecurityControl0 }

func (r *SecurityControl0) Value() uint16 {
	var value uint16
	if r.RxFifoProtection {
		value |= 1 << 9
	}
	if r.CBCHead {
		value |= 1 << 8
	}
	if r.SAKeySelect {
		value |= 1 << 7
	}
	if r.TxKeySelect {
		value |= 1 << 6
	}
	if r.RxKeySelect {
		value |= 1 << 5
	}
	value |= uint16(r.MICLength) << 2
	value |= uint16(r.Mode)
	return value
}

func (r *SecurityControl0) SetValue(value uint16) {
	*r = SecurityControl0{
		RxFifoProtection: value&(1<<9) != 0,
		CBCHead:          value&(1<<8) != 0,
		SAKeySelect:      value&(1<<7) != 0,
		TxKeySelect:      value&(1<<6) != 0,
		RxKeySelect:      value&(1<<5) != 0,
		MICLength:        uint8(value >> 2 & 0b111),
		Mode:             uint8(value & 0b11),
	}
}

// SecurityControl1 is the SECCTRL1 register (0x1A): the multi-purpose
// cleartext length bytes for TX and RX in-line security. Both have no
// effect in stand-alone mode.
type SecurityControl1 struct {
	TxLength uint8 // SEC_TXL, 0..127
	RxLength uint8 // SEC_RXL, 0..127
}

// DefaultSecurityControl1 returns the register's reset values.
func DefaultSecurityControl1() SecurityControl1 {
	return SecurityControl1{}
}

// NewSecurityControl1 validates r and returns it ready for use.
func NewSecurityControl1(r SecurityControl1) (*SecurityControl1, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *SecurityControl1) Validate() error {
	if r.TxLength > 127 {
		return &RangeError{Register: "SECCTRL1", Field: "SEC_TXL", Value: int(r.TxLength), Min: 0, Max: 127}
	}
	if r.RxLength > 127 {
		return &RangeError{Register: "SECCTRL1", Field: "SEC_RXL", Value: int(r.RxLength), Min: 0, Max: 127}
	}
	return nil
}

func (r *SecurityControl1) Address() uint8 { return AddrSecurityControl1 }

func (r *SecurityControl1) Value() uint16 {
	return uint16(r.TxLength)<<8 | uint16(r.RxLength)
}

func (r *SecurityControl1) SetValue(value uint16) {
	*r = SecurityControl1{
		TxLength: uint8(value >> 8 & 0x7F),
		RxLength: uint8(value & 0x7F),
	}
}
