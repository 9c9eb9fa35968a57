package registers

import (
	"errors"
	"testing"
)

// TestDefaultValues checks every register's reset encoding against the
// datasheet reset values (writable bits only).
func TestDefaultValues(t *testing.T) {
	tests := []struct {
		name  string
		reg   Register
		value uint16
	}{
		{"MAIN", defaultPtr(DefaultMainControl()), 0xF800},
		{"MDMCTRL0", defaultPtr(DefaultModemControl0()), 0x0AE2},
		{"MDMCTRL1", defaultPtr(DefaultModemControl1()), 0x0500},
		{"RSSI", defaultPtr(DefaultRSSI()), 0xE000},
		{"SYNCWORD", defaultPtr(DefaultSyncWord()), 0xA70F},
		{"TXCTRL", defaultPtr(DefaultTransmitControl()), 0xA0FF},
		{"RXCTRL0", defaultPtr(DefaultReceiveControl0()), 0x12E5},
		{"RXCTRL1", defaultPtr(DefaultReceiveControl1()), 0x2A56},
		{"FSCTRL", defaultPtr(DefaultFrequencySynthesizer()), 0x4165},
		{"SECCTRL0", defaultPtr(DefaultSecurityControl0()), 0x03C4},
		{"SECCTRL1", defaultPtr(DefaultSecurityControl1()), 0x0000},
		{"BATTMON", defaultPtr(DefaultBatteryMonitor()), 0x0000},
		{"IOCFG0", defaultPtr(DefaultIOConfiguration0()), 0x0040},
		{"IOCFG1", defaultPtr(DefaultIOConfiguration1()), 0x0000},
		{"MANFIDL", defaultPtr(DefaultManufacturerIDLow()), 0x0000},
		{"MANFIDH", defaultPtr(DefaultManufacturerIDHigh()), 0x0000},
		{"FSMTC", defaultPtr(DefaultFSMConstants()), 0x7A94},
		{"MANAND", defaultPtr(DefaultAndOverride()), 0xFFFF},
		{"MANOR", defaultPtr(DefaultOrOverride()), 0x0000},
		{"AGCCTRL", defaultPtr(DefaultAGCControl()), 0x07F0},
	}

	for _, tt := range tests {
		if got := tt.reg.Value(); got != tt.value {
			t.Errorf("%s: default Value() = 0x%04X, want 0x%04X", tt.name, got, tt.value)
		}
	}
}

func defaultPtr[T any](r T) Register {
	v := any(&r).(Register)
	return v
}

func TestAddresses(t *testing.T) {
	tests := []struct {
		reg  Register
		addr uint8
	}{
		{&MainControl{}, 0x10},
		{&ModemControl0{}, 0x11},
		{&ModemControl1{}, 0x12},
		{&RSSI{}, 0x13},
		{&SyncWord{}, 0x14},
		{&TransmitControl{}, 0x15},
		{&ReceiveControl0{}, 0x16},
		{&ReceiveControl1{}, 0x17},
		{&FrequencySynthesizer{}, 0x18},
		{&SecurityControl0{}, 0x19},
		{&SecurityControl1{}, 0x1A},
		{&BatteryMonitor{}, 0x1B},
		{&IOConfiguration0{}, 0x1C},
		{&IOConfiguration1{}, 0x1D},
		{&ManufacturerIDLow{}, 0x1E},
		{&ManufacturerIDHigh{}, 0x1F},
		{&FSMConstants{}, 0x20},
		{&AndOverride{}, 0x21},
		{&OrOverride{}, 0x22},
		{&AGCControl{}, 0x23},
	}

	for _, tt := range tests {
		if got := tt.reg.Address(); got != tt.addr {
			t.Errorf("%T: Address() = 0x%02X, want 0x%02X", tt.reg, got, tt.addr)
		}
	}
}

// fieldRoundTrips encodes each variant and decodes the wire value back
// into it, requiring the writable fields to survive unchanged. Variants
// must leave read-only fields zero so the round trip is the identity.
func fieldRoundTrips[T comparable](t *testing.T, name string, variants []T) {
	t.Helper()
	for _, want := range variants {
		got := want
		reg := any(&got).(Register)
		wire := reg.Value()
		reg.SetValue(wire)
		if got != want {
			t.Errorf("%s: 0x%04X decoded to %+v, want %+v", name, wire, got, want)
		}
	}
}

// TestFieldRoundTrips drives every writable field of every register
// through encode and decode, one variant per field at the field's
// maximum legal value.
func TestFieldRoundTrips(t *testing.T) {
	fieldRoundTrips(t, "MAIN", []MainControl{
		{ResetN: true},
		{EncResetN: true},
		{DemodResetN: true},
		{ModResetN: true},
		{FSResetN: true},
		{XOSC16MBypass: true},
	})
	fieldRoundTrips(t, "MDMCTRL0", []ModemControl0{
		{ReservedFrameMode: true},
		{PanCoordinator: true},
		{AddressDecode: true},
		{CCAHysteresis: 7},
		{CCAMode: 3},
		{AutoCRC: true},
		{AutoAck: true},
		{PreambleLength: 15},
	})
	fieldRoundTrips(t, "MDMCTRL1", []ModemControl1{
		{CorrelatorThreshold: 31},
		{DemodAverageMode: true},
		{ModulationMode: true},
		{TxMode: 3},
		{RxMode: 2},
	})
	fieldRoundTrips(t, "RSSI", []RSSI{
		{CCAThreshold: -77},
		{CCAThreshold: 127},
		{CCAThreshold: -128},
	})
	fieldRoundTrips(t, "SYNCWORD", []SyncWord{
		{Word: 0xA70F},
		{Word: 0xFFFF},
	})
	fieldRoundTrips(t, "TXCTRL", []TransmitControl{
		{TxMixBufferCurrent: 3},
		{TxTurnaround: true},
		{TxMixCapArray: 3},
		{TxMixCurrent: 3},
		{PACurrent: 7},
		{PALevel: 31},
	})
	fieldRoundTrips(t, "RXCTRL0", []ReceiveControl0{
		{RxMixBufferCurrent: 3},
		{HighLNAGain: 3},
		{MedLNAGain: 3},
		{LowLNAGain: 3},
		{HighLNACurrent: 3},
		{MedLNACurrent: 3},
		{LowLNACurrent: 3},
	})
	fieldRoundTrips(t, "RXCTRL1", []ReceiveControl1{
		{RxBPFLowCurrent: true},
		{RxBPFMidCurrent: true},
		{LowLowGain: true},
		{MedLowGain: true},
		{HighHGM: true},
		{MedHGM: true},
		{LNACapArray: 3},
		{RxMixTail: 3},
		{RxMixVCM: 3},
		{RxMixCurrent: 3},
	})
	fieldRoundTrips(t, "FSCTRL", []FrequencySynthesizer{
		{LockThreshold: 3},
		{LockLength: true},
		{Frequency: 1023},
	})
	fieldRoundTrips(t, "SECCTRL0", []SecurityControl0{
		{RxFifoProtection: true},
		{CBCHead: true},
		{SAKeySelect: true},
		{TxKeySelect: true},
		{RxKeySelect: true},
		{MICLength: 7},
		{Mode: 3},
	})
	fieldRoundTrips(t, "SECCTRL1", []SecurityControl1{
		{TxLength: 127},
		{RxLength: 127},
	})
	fieldRoundTrips(t, "BATTMON", []BatteryMonitor{
		{Enable: true},
		{Voltage: 31},
	})
	fieldRoundTrips(t, "IOCFG0", []IOConfiguration0{
		{BeaconAccept: true},
		{FIFOPolarity: true},
		{FIFOPPolarity: true},
		{SFDPolarity: true},
		{CCAPolarity: true},
		{FIFOPThreshold: 127},
	})
	fieldRoundTrips(t, "IOCFG1", []IOConfiguration1{
		{HSSDSource: 7},
		{SFDMux: 31},
		{CCAMux: 31},
	})
	fieldRoundTrips(t, "FSMTC", []FSMConstants{
		{RxChainToRx: 7},
		{SwitchToTx: 7},
		{PAOnToTx: 15},
		{TxEndToSwitch: 7},
		{TxEndToPAOff: 7},
	})
	fieldRoundTrips(t, "AGCCTRL", []AGCControl{
		{VGAGainOverrideEnable: true},
		{VGAGain: 127},
		{GainModeOverride: 3},
	})

	// The override registers are a flat 16-bit signal mask each;
	// exercise every signal bit at the wire level.
	for bit := uint(0); bit < 16; bit++ {
		var and AndOverride
		and.SetValue(1 << bit)
		if got := and.Value(); got != 1<<bit {
			t.Errorf("MANAND: bit %d round trip = 0x%04X", bit, got)
		}
		var or OrOverride
		or.SetValue(1 << bit)
		if got := or.Value(); got != 1<<bit {
			t.Errorf("MANOR: bit %d round trip = 0x%04X", bit, got)
		}
	}
}

func TestModemControl0RoundTrip(t *testing.T) {
	want := ModemControl0{
		ReservedFrameMode: true,
		PanCoordinator:    true,
		CCAHysteresis:     5,
		CCAMode:           1,
		AutoAck:           true,
		PreambleLength:    15,
	}

	var got ModemControl0
	got.SetValue(want.Value())
	if got != want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestModemControl0Validation(t *testing.T) {
	tests := []struct {
		name  string
		reg   ModemControl0
		field string
	}{
		{"hysteresis too large", ModemControl0{CCAHysteresis: 8, CCAMode: 3}, "CCA_HYST"},
		{"CCA mode reserved", ModemControl0{CCAMode: 0}, "CCA_MODE"},
		{"CCA mode too large", ModemControl0{CCAMode: 4}, "CCA_MODE"},
		{"preamble too long", ModemControl0{CCAMode: 1, PreambleLength: 16}, "PREAMBLE_LENGTH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewModemControl0(tt.reg)
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("NewModemControl0() error = %v, want RangeError", err)
			}
			if rangeErr.Field != tt.field {
				t.Errorf("RangeError.Field = %q, want %q", rangeErr.Field, tt.field)
			}
		})
	}
}

func TestSyncWordRoundTrip(t *testing.T) {
	sync := SyncWord{Word: 0x1234}
	if sync.Value() != 0x1234 {
		t.Errorf("Value() = 0x%04X, want 0x1234", sync.Value())
	}

	var got SyncWord
	got.SetValue(0x1234)
	if got.Word != 0x1234 {
		t.Errorf("SetValue round trip = 0x%04X, want 0x1234", got.Word)
	}
}

func TestRSSIDecode(t *testing.T) {
	var rssi RSSI
	rssi.SetValue(0xE0D6) // threshold -32, reading -42

	if rssi.CCAThreshold != -32 {
		t.Errorf("CCAThreshold = %d, want -32", rssi.CCAThreshold)
	}
	if rssi.RSSIValue != -42 {
		t.Errorf("RSSIValue = %d, want -42", rssi.RSSIValue)
	}
}

func TestRSSIEncodeSkipsReadOnly(t *testing.T) {
	rssi := RSSI{CCAThreshold: -77, RSSIValue: -42}
	if got := rssi.Value(); got != 0xB300 {
		t.Errorf("Value() = 0x%04X, want 0xB300", got)
	}
}

func TestFrequencySynthesizerFullRange(t *testing.T) {
	fs, err := NewFrequencySynthesizer(FrequencySynthesizer{Frequency: 1023})
	if err != nil {
		t.Fatalf("NewFrequencySynthesizer(1023) error = %v", err)
	}
	if fs.Value()&0x3FF != 1023 {
		t.Errorf("encoded frequency = %d, want 1023", fs.Value()&0x3FF)
	}

	// Decode must preserve all 10 frequency bits.
	var got FrequencySynthesizer
	got.SetValue(fs.Value())
	if got.Frequency != 1023 {
		t.Errorf("decoded frequency = %d, want 1023", got.Frequency)
	}

	if _, err := NewFrequencySynthesizer(FrequencySynthesizer{Frequency: 1024}); err == nil {
		t.Error("NewFrequencySynthesizer(1024) succeeded, want range error")
	}
}

func TestFrequencySynthesizerReadOnlyBits(t *testing.T) {
	var fs FrequencySynthesizer
	fs.SetValue(0x7C00) // LockThreshold 1, CalDone, CalRunning, LockStatus

	if !fs.CalDone || !fs.CalRunning || !fs.LockStatus {
		t.Errorf("read-only status bits not decoded: %+v", fs)
	}

	// Status bits never make it back onto the wire.
	if got := fs.Value() & 0x3400; got != 0 {
		t.Errorf("Value() carries read-only bits: 0x%04X", got)
	}
}

func TestReceiveControl1MixerGainModeBits(t *testing.T) {
	var rx ReceiveControl1
	rx.SetValue(1 << 9)
	if !rx.HighHGM || rx.MedHGM {
		t.Errorf("bit 9 should decode as HighHGM only: %+v", rx)
	}

	rx.SetValue(1 << 8)
	if rx.HighHGM || !rx.MedHGM {
		t.Errorf("bit 8 should decode as MedHGM only: %+v", rx)
	}
}

func TestTransmitControlReservedBit(t *testing.T) {
	// Bit 5 is reserved and must always be written as 1, even when
	// every field is zero.
	zero := TransmitControl{}
	if zero.Value()&(1<<5) == 0 {
		t.Errorf("Value() = 0x%04X, reserved bit 5 not set", zero.Value())
	}
}

func TestSecurityControl0Validation(t *testing.T) {
	if _, err := NewSecurityControl0(SecurityControl0{MICLength: 0}); err == nil {
		t.Error("MICLength 0 accepted, want range error")
	}
	if _, err := NewSecurityControl0(SecurityControl0{MICLength: 8}); err == nil {
		t.Error("MICLength 8 accepted, want range error")
	}
	if _, err := NewSecurityControl0(SecurityControl0{MICLength: 7, Mode: 4}); err == nil {
		t.Error("Mode 4 accepted, want range error")
	}
}

func TestSecurityControl1RoundTrip(t *testing.T) {
	sec := SecurityControl1{TxLength: 100, RxLength: 27}
	if sec.Value() != 100<<8|27 {
		t.Errorf("Value() = 0x%04X, want 0x%04X", sec.Value(), 100<<8|27)
	}

	var got SecurityControl1
	got.SetValue(sec.Value())
	if got != sec {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, sec)
	}
}

func TestIOConfiguration1ReservedSources(t *testing.T) {
	for _, src := range []uint8{4, 5, 8} {
		if _, err := NewIOConfiguration1(IOConfiguration1{HSSDSource: src}); err == nil {
			t.Errorf("HSSDSource %d accepted, want range error", src)
		}
	}
	for _, src := range []uint8{0, 3, 6, 7} {
		if _, err := NewIOConfiguration1(IOConfiguration1{HSSDSource: src}); err != nil {
			t.Errorf("HSSDSource %d rejected: %v", src, err)
		}
	}
}

func TestManufacturerIDDecode(t *testing.T) {
	var low ManufacturerIDLow
	low.SetValue(0x233D)
	if low.PartNumber != 2 || low.ManufacturerID != 0x33D {
		t.Errorf("MANFIDL decode = %+v, want part 2, manufacturer 0x33D", low)
	}

	var high ManufacturerIDHigh
	high.SetValue(0x3000)
	if high.Version != 3 || high.PartNumber != 0 {
		t.Errorf("MANFIDH decode = %+v, want version 3, part 0", high)
	}
}

func TestOverrideRoundTrip(t *testing.T) {
	var and AndOverride
	and.SetValue(0x7FFF)
	if and.VGAResetN {
		t.Error("bit 15 should decode as VGAResetN cleared")
	}
	if !and.LNAMixPD {
		t.Error("bit 0 should decode as LNAMixPD set")
	}
	if and.Value() != 0x7FFF {
		t.Errorf("round trip = 0x%04X, want 0x7FFF", and.Value())
	}

	var or OrOverride
	or.SetValue(0x8001)
	if !or.VGAResetN || !or.LNAMixPD {
		t.Errorf("0x8001 should decode as VGAResetN and LNAMixPD: %+v", or)
	}
}

func TestFSMConstantsValidation(t *testing.T) {
	if _, err := NewFSMConstants(FSMConstants{RxChainToRx: 8}); err == nil {
		t.Error("RxChainToRx 8 accepted, want range error")
	}
	if _, err := NewFSMConstants(FSMConstants{PAOnToTx: 16}); err == nil {
		t.Error("PAOnToTx 16 accepted, want range error")
	}
}

func TestRangeErrorMessage(t *testing.T) {
	err := &RangeError{Register: "MDMCTRL0", Field: "CCA_HYST", Value: 9, Min: 0, Max: 7}
	want := "MDMCTRL0: invalid CCA_HYST 9, legal range 0..7"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
