package registers

// FrequencySynthesizer is the FSCTRL register (0x18): PLL lock window
// settings, calibration status and the 10-bit frequency control word.
//
// The RF carrier is Fc = 2048 + FREQ MHz; the reset value 357 selects
// 2405 MHz, 802.15.4 channel 11.
type FrequencySynthesizer struct {
	// Consecutive reference clock periods with successful
	// synchronization windows required to indicate lock, 0..3
	// (1, meaning 128 periods, is recommended).
	LockThreshold uint8

	// Calibration has been performed since the synthesizer was last
	// turned on. Read-only.
	CalDone bool

	// Calibration in progress. Read-only.
	CalRunning bool

	// Synchronization window pulse width of 4 prescaler clock
	// periods instead of 2.
	LockLength bool

	// Synthesizer in lock. Read-only.
	LockStatus bool

	// Frequency control word, 0..1023.
	Frequency uint16
}

// DefaultFrequencySynthesizer returns the register's reset values.
func DefaultFrequencySynthesizer() FrequencySynthesizer {
	return FrequencySynthesizer{LockThreshold: 1, Frequency: 357}
}

// NewFrequencySynthesizer validates r and returns it ready for use.
func NewFrequencySynthesizer(r FrequencySynthesizer) (*FrequencySynthesizer, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *FrequencySynthesizer) Validate() error {
	if r.LockThreshold > 3 {
		return &RangeError{Register: "FSCTRL", Field: "LOCK_THR", Value: int(r.LockThreshold), Min: 0, Max: 3}
	}
	if r.Frequency > 1023 {
		return &RangeError{Register: "FSCTRL", Field: "FREQ", Value: int(r.Frequency), Min: 0, Max: 1023}
	}
	return nil
}

func (r *FrequencySynthesizer) Address() uint8 { return AddrFrequencySynthesizer }

func (r *FrequencySynthesizer) Value() uint16 {
	var value uint16
	value |= uint16(r.LockThreshold) << 14
	if r.LockLength {
		value |= 1 << 11
	}
	value |= r.Frequency & 0x3FF
	return value
}

func (r *FrequencySynthesizer) SetValue(value uint16) {
	*r = FrequencySynthesizer{
		LockThreshold: uint8(value >> 14 & 0b11),
		CalDone:       value&(1<<13) != 0,
		CalRunning:    value&(1<<12) != 0,
		LockLength:    value&(1<<11) != 0,
		LockStatus:    value&(1<<10) != 0,
		Frequency:     value & 0x3FF,
	}
}
