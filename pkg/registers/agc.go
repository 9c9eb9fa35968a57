package registers

// AGCControl is the AGCCTRL register (0x23): manual VGA gain override
// and the LNA/mixer gain mode selection.
type AGCControl struct {
	// Use VGAGain during RX instead of the AGC value.
	VGAGainOverrideEnable bool

	// Manual VGA gain override value when written; the currently
	// used VGA gain setting when read. 0..127.
	VGAGain uint8

	// LNA/mixer gain mode override, 0..3 (0 leaves it to the AGC).
	GainModeOverride uint8

	// Currently selected gain mode. Read-only.
	GainMode uint8
}

// DefaultAGCControl returns the register's reset values.
func DefaultAGCControl() AGCControl {
	return AGCControl{VGAGain: 0x7F, GainMode: 3}
}

// NewAGCControl validates r and returns it ready for use.
func NewAGCControl(r AGCControl) (*AGCControl, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *AGCControl) Validate() error {
	if r.VGAGain > 127 {
		return &RangeError{Register: "AGCCTRL", Field: "VGA_GAIN", Value: int(r.VGAGain), Min: 0, Max: 127}
	}
	if r.GainModeOverride > 3 {
		return &RangeError{Register: "AGCCTRL", Field: "LNAMIX_GAINMODE_O", Value: int(r.GainModeOverride), Min: 0, Max: 3}
	}
	return nil
}

func (r *AGCControl) Address() uint8 { return AddrAGCControl }

func (r *AGCControl) Value() uint16 {
	var value uint16
	if r.VGAGainOverrideEnable {
		value |= 1 << 11
	}
	value |= uint16(r.VGAGain) << 4
	value |= uint16(r.GainModeOverride) << 2
	return value
}

func (r *AGCControl) SetValue(value uint16) {
	*r = AGCControl{
		VGAGainOverrideEnable: value&(1<<11) != 0,
		VGAGain:               uint8(value >> 4 & 0x7F),
		GainModeOverride:      uint8(value >> 2 & 0b11),
		GainMode:              uint8(value & 0b11),
	}
}
