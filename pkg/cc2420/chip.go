package cc2420

import (
	"fmt"

	"github.com/openradio/cc2420/pkg/registers"
)

// PartInfo identifies the chip from the manufacturer ID registers.
type PartInfo struct {
	ManufacturerID uint16
	PartNumber     uint16
	Version        uint8
}

func (p PartInfo) String() string {
	return fmt.Sprintf("manufacturer 0x%03X part 0x%04X rev %d", p.ManufacturerID, p.PartNumber, p.Version)
}

// ReadPartInfo assembles the chip identity from the two read-only
// manufacturer ID registers. The low register carries the JEDEC
// manufacturer number and the part number's low nibble, the high
// register the rest of the part number and the die revision.
func (r *Radio) ReadPartInfo() (PartInfo, error) {
	var low registers.ManufacturerIDLow
	if _, err := r.RegisterRead(&low); err != nil {
		return PartInfo{}, err
	}
	var high registers.ManufacturerIDHigh
	if _, err := r.RegisterRead(&high); err != nil {
		return PartInfo{}, err
	}
	return PartInfo{
		ManufacturerID: low.ManufacturerID,
		PartNumber:     high.PartNumber<<4 | uint16(low.PartNumber),
		Version:        high.Version,
	}, nil
}

// Reset pulses the chip-wide reset bit in the main control register:
// everything except the serial interface returns to its power-on
// state. Configuration must be re-applied afterwards.
func (r *Radio) Reset(delay Delay) error {
	main := registers.DefaultMainControl()
	main.ResetN = false
	if _, err := r.RegisterWrite(&main); err != nil {
		return fmt.Errorf("assert reset: %w", err)
	}
	delay.Sleep(r.writeSettle)
	main.ResetN = true
	if _, err := r.RegisterWrite(&main); err != nil {
		return fmt.Errorf("release reset: %w", err)
	}
	r.poweredUp = false
	log.Info("chip reset")
	return nil
}

// ReadRSSI returns the current averaged signal strength. The value is
// an offset dBm reading and only meaningful when the status byte
// reports it valid, which requires RX to have been on for at least
// eight symbol periods.
func (r *Radio) ReadRSSI() (int8, Status, error) {
	var rssi registers.RSSI
	status, err := r.RegisterRead(&rssi)
	if err != nil {
		return 0, Status{}, err
	}
	return rssi.RSSIValue, status, nil
}

// SetCCAThreshold programs the clear channel assessment threshold,
// preserving the register's read-only RSSI half.
func (r *Radio) SetCCAThreshold(threshold int8) (Status, error) {
	rssi := registers.DefaultRSSI()
	rssi.CCAThreshold = threshold
	return r.RegisterWrite(&rssi)
}

// MeasureBattery runs one battery monitor comparison against the given
// threshold setting and reports whether the supply voltage is above it.
func (r *Radio) MeasureBattery(voltage uint8, delay Delay) (bool, error) {
	mon, err := registers.NewBatteryMonitor(registers.BatteryMonitor{
		Enable:  true,
		Voltage: voltage,
	})
	if err != nil {
		return false, err
	}
	if _, err := r.RegisterWrite(mon); err != nil {
		return false, err
	}
	delay.Sleep(r.writeSettle)
	if _, err := r.RegisterRead(mon); err != nil {
		return false, err
	}
	ok := mon.OK
	mon.Enable = false
	if _, err := r.RegisterWrite(mon); err != nil {
		return false, err
	}
	return ok, nil
}
