package registers

// MainControl is the MAIN register (0x10). The reset lines are active
// low, so the default value keeps every sub-module out of reset.
type MainControl struct {
	ResetN        bool // active-low reset of the entire circuit
	EncResetN     bool // active-low reset of the encryption module (test only)
	DemodResetN   bool // active-low reset of the demodulator (test only)
	ModResetN     bool // active-low reset of the modulator (test only)
	FSResetN      bool // active-low reset of the frequency synthesizer (test only)
	XOSC16MBypass bool // bypass the crystal oscillator, external clock on Q1
}

// DefaultMainControl returns the register's reset values.
func DefaultMainControl() MainControl {
	return MainControl{
		ResetN:      true,
		EncResetN:   true,
		DemodResetN: true,
		ModResetN:   true,
		FSResetN:    true,
	}
}

// NewMainControl validates r and returns it ready for use.
func NewMainControl(r MainControl) (*MainControl, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate always succeeds: every MAIN field is a single bit.
func (r *MainControl) Validate() error { return nil }

func (r *MainControl) Address() uint8 { return AddrMain }

func (r *MainControl) Value() uint16 {
	var value uint16
	if r.ResetN {
		value |= 1 << 15
	}
	if r.EncResetN {
		value |= 1 << 14
	}
	if r.DemodResetN {
		value |= 1 << 13
	}
	if r.ModResetN {
		value |= 1 << 12
	}
	if r.FSResetN {
		value |= 1 << 11
	}
	if r.XOSC16MBypass {
		value |= 1
	}
	return value
}

func (r *MainControl) SetValue(value uint16) {
	*r = MainControl{
		ResetN:        value&(1<<15) != 0,
		EncResetN:     value&(1<<14) != 0,
		DemodResetN:   value&(1<<13) != 0,
		ModResetN:     value&(1<<12) != 0,
		FSResetN:      value&(1<<11) != 0,
		XOSC16MBypass: value&1 != 0,
	}
}
