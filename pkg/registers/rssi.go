package registers

// RSSI is the RSSI and CCA status/control register (0x13). The CCA
// threshold is writable; the RSSI estimate is read-only and averaged
// over 8 symbol periods by the chip. Both values are in dB with the
// offset described in the datasheet's energy detection section.
type RSSI struct {
	// CCA goes active when the received signal drops below this
	// threshold. The reset value is approximately -77 dBm.
	CCAThreshold int8

	// RSSI estimate. The reset value -128 doubles as "not valid";
	// check the RSSI_VALID status flag. Read-only.
	RSSIValue int8
}

// DefaultRSSI returns the register's reset values.
func DefaultRSSI() RSSI {
	return RSSI{CCAThreshold: -32, RSSIValue: -128}
}

// NewRSSI validates r and returns it ready for use.
func NewRSSI(r RSSI) (*RSSI, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate always succeeds: any int8 is a legal threshold.
func (r *RSSI) Validate() error { return nil }

func (r *RSSI) Address() uint8 { return AddrRSSI }

func (r *RSSI) Value() uint16 {
	return uint16(uint8(r.CCAThreshold)) << 8
}

func (r *RSSI) SetValue(value uint16) {
	*r = RSSI{
		CCAThreshold: int8(value >> 8),
		RSSIValue:    int8(value),
	}
}
