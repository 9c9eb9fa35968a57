// Package registers implements the CC2420 configuration register set.
//
// Each register is a typed struct whose fields map bit-for-bit onto the
// chip's 16-bit wire value. Encoding (Value) and decoding (SetValue) are
// pure bit packing; field ranges are enforced once, at construction, by
// the New* helpers. Decode never validates: values read back from the
// chip are taken as authoritative.
package registers

import "fmt"

// Register addresses (6-bit, shared by read and write access).
const (
	AddrMain                 uint8 = 0x10
	AddrModemControl0        uint8 = 0x11
	AddrModemControl1        uint8 = 0x12
	AddrRSSI                 uint8 = 0x13
	AddrSyncWord             uint8 = 0x14
	AddrTransmitControl      uint8 = 0x15
	AddrReceiveControl0      uint8 = 0x16
	AddrReceiveControl1      uint8 = 0x17
	AddrFrequencySynthesizer uint8 = 0x18
	AddrSecurityControl0     uint8 = 0x19
	AddrSecurityControl1     uint8 = 0x1A
	AddrBatteryMonitor       uint8 = 0x1B
	AddrIOConfiguration0     uint8 = 0x1C
	AddrIOConfiguration1     uint8 = 0x1D
	AddrManufacturerIDLow    uint8 = 0x1E
	AddrManufacturerIDHigh   uint8 = 0x1F
	AddrFSMConstants         uint8 = 0x20
	AddrAndOverride          uint8 = 0x21
	AddrOrOverride           uint8 = 0x22
	AddrAGCControl           uint8 = 0x23
)

// Register is the capability set shared by every CC2420 configuration
// register: a fixed address, an encode to the 16-bit wire value and a
// decode from it. The radio controller operates on any register through
// this interface.
type Register interface {
	// Address returns the register's fixed 6-bit SPI address.
	Address() uint8

	// Value encodes the register fields into the 16-bit wire value.
	// Read-only fields are skipped; registers with no writable fields
	// encode to 0.
	Value() uint16

	// SetValue decodes a 16-bit wire value into the register fields,
	// overwriting all of them. No validation is performed.
	SetValue(value uint16)
}

// RangeError reports a register field set outside its legal range.
type RangeError struct {
	Register string
	Field    string
	Value    int
	Min      int
	Max      int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: invalid %s %d, legal range %d..%d",
		e.Register, e.Field, e.Value, e.Min, e.Max)
}
