// Package config dumps and restores radio configuration snapshots:
// the writable register file plus the RAM-held addressing fields,
// serialized as YAML.
package config

import (
	"fmt"
	"time"

	"github.com/openradio/cc2420/pkg/cc2420"
	"github.com/openradio/cc2420/pkg/registers"
)

// DeviceSnapshot holds one radio's complete configuration state.
type DeviceSnapshot struct {
	ManufacturerID uint16    `yaml:"manufacturer_id"`
	PartNumber     uint16    `yaml:"part_number"`
	Version        uint8     `yaml:"version"`
	Timestamp      time.Time `yaml:"timestamp"`

	// Writable register file, keyed by register name
	Registers map[string]uint16 `yaml:"registers"`

	// RAM-held addressing fields
	ShortAddress uint16  `yaml:"short_address"`
	PANID        uint16  `yaml:"pan_id"`
	IEEEAddress  [8]byte `yaml:"ieee_address,flow"`
}

// snapshotRegisters names the registers a snapshot covers: every
// writable register, skipping the read-only manufacturer IDs.
var snapshotRegisters = []struct {
	name string
	addr uint8
}{
	{"MAIN", registers.AddrMain},
	{"MDMCTRL0", registers.AddrModemControl0},
	{"MDMCTRL1", registers.AddrModemControl1},
	{"RSSI", registers.AddrRSSI},
	{"SYNCWORD", registers.AddrSyncWord},
	{"TXCTRL", registers.AddrTransmitControl},
	{"RXCTRL0", registers.AddrReceiveControl0},
	{"RXCTRL1", registers.AddrReceiveControl1},
	{"FSCTRL", registers.AddrFrequencySynthesizer},
	{"SECCTRL0", registers.AddrSecurityControl0},
	{"SECCTRL1", registers.AddrSecurityControl1},
	{"BATTMON", registers.AddrBatteryMonitor},
	{"IOCFG0", registers.AddrIOConfiguration0},
	{"IOCFG1", registers.AddrIOConfiguration1},
	{"MANAND", registers.AddrAndOverride},
	{"MANOR", registers.AddrOrOverride},
	{"AGCCTRL", registers.AddrAGCControl},
	{"FSMTC", registers.AddrFSMConstants},
}

// DumpFromDevice reads the full configuration off a radio.
func DumpFromDevice(radio *cc2420.Radio) (*DeviceSnapshot, error) {
	part, err := radio.ReadPartInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to read part info: %w", err)
	}

	regs := make(map[string]uint16, len(snapshotRegisters))
	for _, entry := range snapshotRegisters {
		value, _, err := radio.ReadRegisterValue(entry.addr)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.name, err)
		}
		regs[entry.name] = value
	}

	short, _, err := radio.ShortAddress()
	if err != nil {
		return nil, fmt.Errorf("failed to read short address: %w", err)
	}
	pan, _, err := radio.PANID()
	if err != nil {
		return nil, fmt.Errorf("failed to read PAN identifier: %w", err)
	}
	ieee, _, err := radio.IEEEAddress()
	if err != nil {
		return nil, fmt.Errorf("failed to read IEEE address: %w", err)
	}

	return &DeviceSnapshot{
		ManufacturerID: part.ManufacturerID,
		PartNumber:     part.PartNumber,
		Version:        part.Version,
		Timestamp:      time.Now(),
		Registers:      regs,
		ShortAddress:   short,
		PANID:          pan,
		IEEEAddress:    ieee,
	}, nil
}

// ApplyToDevice writes a snapshot back to a radio. The RF state is
// idled for the duration and left idle; the caller re-enables RX or TX
// afterwards.
func ApplyToDevice(radio *cc2420.Radio, snapshot *DeviceSnapshot) error {
	if _, err := radio.Strobe(cc2420.StrobeRFOff); err != nil {
		return fmt.Errorf("failed to idle radio: %w", err)
	}

	for _, entry := range snapshotRegisters {
		value, ok := snapshot.Registers[entry.name]
		if !ok {
			continue
		}
		if _, err := radio.WriteRegisterValue(entry.addr, value); err != nil {
			return fmt.Errorf("failed to write %s: %w", entry.name, err)
		}
	}

	if _, err := radio.SetShortAddress(snapshot.ShortAddress); err != nil {
		return fmt.Errorf("failed to write short address: %w", err)
	}
	if _, err := radio.SetPANID(snapshot.PANID); err != nil {
		return fmt.Errorf("failed to write PAN identifier: %w", err)
	}
	if _, err := radio.SetIEEEAddress(snapshot.IEEEAddress); err != nil {
		return fmt.Errorf("failed to write IEEE address: %w", err)
	}

	return nil
}

// GetSyncWord returns the snapshot's sync word register value.
func (s *DeviceSnapshot) GetSyncWord() uint16 {
	return s.Registers["SYNCWORD"]
}

// GetFrequencyMHz returns the RF frequency the snapshot tunes to.
func (s *DeviceSnapshot) GetFrequencyMHz() uint16 {
	var fs registers.FrequencySynthesizer
	fs.SetValue(s.Registers["FSCTRL"])
	return 2048 + fs.Frequency
}

// GetChannel returns the 802.15.4 channel number the snapshot tunes
// to, or 0 when the frequency is off the channel grid.
func (s *DeviceSnapshot) GetChannel() uint8 {
	mhz := s.GetFrequencyMHz()
	if mhz < 2405 || mhz > 2480 || (mhz-2405)%5 != 0 {
		return 0
	}
	return uint8(11 + (mhz-2405)/5)
}
