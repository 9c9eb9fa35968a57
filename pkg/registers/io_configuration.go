package registers

// IOConfiguration0 is the IOCFG0 register (0x1C): beacon acceptance,
// output pin polarities and the FIFOP byte threshold.
type IOConfiguration0 struct {
	// Accept all beacon frames regardless of source PAN identifier.
	// Set when the programmed PAN identifier is 0xFFFF.
	BeaconAccept bool

	FIFOPolarity  bool // FIFO pin active low
	FIFOPPolarity bool // FIFOP pin active low
	SFDPolarity   bool // SFD pin active low
	CCAPolarity   bool // CCA pin active low

	// Bytes in the RXFIFO required for FIFOP to go active, 0..127.
	FIFOPThreshold uint8
}

// DefaultIOConfiguration0 returns the register's reset values.
func DefaultIOConfiguration0() IOConfiguration0 {
	return IOConfiguration0{FIFOPThreshold: 64}
}

// NewIOConfiguration0 validates r and returns it ready for use.
func NewIOConfiguration0(r IOConfiguration0) (*IOConfiguration0, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *IOConfiguration0) Validate() error {
	if r.FIFOPThreshold > 127 {
		return &RangeError{Register: "IOCFG0", Field: "FIFOP_THR", Value: int(r.FIFOPThreshold), Min: 0, Max: 127}
	}
	return nil
}

func (r *IOConfiguration0) Address() uint8 { return AddrIOConfiguration0 }

func (r *IOConfiguration0) Value() uint16 {
	var value uint16
	if r.BeaconAccept {
		value |= 1 << 11
	}
	if r.FIFOPolarity {
		value |= 1 << 10
	}
	if r.FIFOPPolarity {
		value |= 1 << 9
	}
	if r.SFDPolarity {
		value |= 1 << 8
	}
	if r.CCAPolarity {
		value |= 1 << 7
	}
	value |= uint16(r.FIFOPThreshold)
	return value
}

func (r *IOConfiguration0) SetValue(value uint16) {
	*r = IOConfiguration0{
		BeaconAccept:   value&(1<<11) != 0,
		FIFOPolarity:   value&(1<<10) != 0,
		FIFOPPolarity:  value&(1<<9) != 0,
		SFDPolarity:    value&(1<<8) != 0,
		CCAPolarity:    value&(1<<7) != 0,
		FIFOPThreshold: uint8(value & 0x7F),
	}
}

// IOConfiguration1 is the IOCFG1 register (0x1D): the high speed serial
// debug source and the SFD/CCA pin multiplexers.
type IOConfiguration1 struct {
	// HSSD module source, 0..3 or 6..7 (4 and 5 are reserved).
	HSSDSource uint8

	// SFD pin multiplexer, 0..31.
	SFDMux uint8

	// CCA pin multiplexer, 0..31.
	CCAMux uint8
}

// DefaultIOConfiguration1 returns the register's reset values.
func DefaultIOConfiguration1() IOConfiguration1 {
	return IOConfiguration1{}
}

// NewIOConfiguration1 validates r and returns it ready for use.
func NewIOConfiguration1(r IOConfiguration1) (*IOConfiguration1, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *IOConfiguration1) Validate() error {
	if r.HSSDSource == 4 || r.HSSDSource == 5 || r.HSSDSource > 7 {
		return &RangeError{Register: "IOCFG1", Field: "HSSD_SRC", Value: int(r.HSSDSource), Min: 0, Max: 7}
	}
	if r.SFDMux > 31 {
		return &RangeError{Register: "IOCFG1", Field: "SFDMUX", Value: int(r.SFDMux), Min: 0, Max: 31}
	}
	if r.CCAMux > 31 {
		return &RangeError{Register: "IOCFG1", Field: "CCAMUX", Value: int(r.CCAMux), Min: 0, Max: 31}
	}
	return nil
}

func (r *IOConfiguration1) Address() uint8 { return AddrIOConfiguration1 }

func (r *IOConfiguration1) Value() uint16 {
	var value uint16
	value |= uint16(r.HSSDSource) << 10
	value |= uint16(r.SFDMux) << 5
	value |= uint16(r.CCAMux)
	return value
}

func (r *IOConfiguration1) SetValue(value uint16) {
	*r = IOConfiguration1{
		HSSDSource: uint8(value >> 10 & 0b111),
		SFDMux:     uint8(value >> 5 & 0b11111),
		CCAMux:     uint8(value & 0b11111),
	}
}
