package registers

// BatteryMonitor is the BATTMON register (0x1B). The toggle voltage is
// V = 1.25V * (72 - Voltage) / 27; the comparator output is valid 5 us
// after the monitor has been enabled and programmed.
type BatteryMonitor struct {
	// Comparator output. Read-only.
	OK bool

	// Battery monitor enabled.
	Enable bool

	// Toggle voltage setting, 0..31.
	Voltage uint8
}

// DefaultBatteryMonitor returns the register's reset values.
func DefaultBatteryMonitor() BatteryMonitor {
	return BatteryMonitor{OK: true}
}

// NewBatteryMonitor validates r and returns it ready for use.
func NewBatteryMonitor(r BatteryMonitor) (*BatteryMonitor, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *BatteryMonitor) Validate() error {
	if r.Voltage > 31 {
		return &RangeError{Register: "BATTMON", Field: "BATTMON_VOLTAGE", Value: int(r.Voltage), Min: 0, Max: 31}
	}
	return nil
}

func (r *BatteryMonitor) Address() uint8 { return AddrBatteryMonitor }

func (r *BatteryMonitor) Value() uint16 {
	var value uint16
	if r.Enable {
		value |= 1 << 5
	}
	value |= uint16(r.Voltage)
	return value
}

func (r *BatteryMonitor) SetValue(value uint16) {
	*r = BatteryMonitor{
		OK:      value&(1<<6) != 0,
		Enable:  value&(1<<5) != 0,
		Voltage: uint8(value & 0x1F),
	}
}
