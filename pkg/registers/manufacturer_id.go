package registers

// ManufacturerIDLow is the MANFIDL register (0x1E). Entirely read-only:
// the lower part number bits and the JEDEC manufacturer ID (0x33D for
// Chipcon). Writes encode to the stable sentinel 0.
type ManufacturerIDLow struct {
	PartNumber     uint8  // part number bits 3:0 (CC2420 is 0x002)
	ManufacturerID uint16 // 12-bit JEDEC manufacturer ID
}

// DefaultManufacturerIDLow returns the values a CC2420 reports.
func DefaultManufacturerIDLow() ManufacturerIDLow {
	return ManufacturerIDLow{PartNumber: 2, ManufacturerID: 0x33D}
}

// NewManufacturerIDLow validates r and returns it ready for use.
func NewManufacturerIDLow(r ManufacturerIDLow) (*ManufacturerIDLow, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate always succeeds: the register is read-only.
func (r *ManufacturerIDLow) Validate() error { return nil }

func (r *ManufacturerIDLow) Address() uint8 { return AddrManufacturerIDLow }

// Value returns 0: MANFIDL has no writable fields.
func (r *ManufacturerIDLow) Value() uint16 { return 0 }

func (r *ManufacturerIDLow) SetValue(value uint16) {
	*r = ManufacturerIDLow{
		PartNumber:     uint8(value >> 12),
		ManufacturerID: value & 0xFFF,
	}
}

// ManufacturerIDHigh is the MANFIDH register (0x1F). Entirely read-only:
// the chip version and the upper part number bits. Writes encode to the
// stable sentinel 0.
type ManufacturerIDHigh struct {
	Version    uint8  // chip version number
	PartNumber uint16 // part number bits 15:4
}

// DefaultManufacturerIDHigh returns the values a CC2420 reports.
func DefaultManufacturerIDHigh() ManufacturerIDHigh {
	return ManufacturerIDHigh{Version: 2}
}

// NewManufacturerIDHigh validates r and returns it ready for use.
func NewManufacturerIDHigh(r ManufacturerIDHigh) (*ManufacturerIDHigh, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate always succeeds: the register is read-only.
func (r *ManufacturerIDHigh) Validate() error { return nil }

func (r *ManufacturerIDHigh) Address() uint8 { return AddrManufacturerIDHigh }

// Value returns 0: MANFIDH has no writable fields.
func (r *ManufacturerIDHigh) Value() uint16 { return 0 }

func (r *ManufacturerIDHigh) SetValue(value uint16) {
	*r = ManufacturerIDHigh{
		Version:    uint8(value >> 12),
		PartNumber: value & 0xFFF,
	}
}
