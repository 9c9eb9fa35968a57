package cc2420

import "encoding/binary"

// Address fields live in RAM rather than registers and are written
// big-endian: the high byte occupies the sector's first byte.

// SetShortAddress stores the 16-bit short address used for hardware
// address recognition.
func (r *Radio) SetShortAddress(addr uint16) (Status, error) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], addr)
	return r.RAMWrite(SectorShortAddress, buf[:])
}

// ShortAddress reads back the 16-bit short address.
func (r *Radio) ShortAddress() (uint16, Status, error) {
	var buf [2]byte
	status, err := r.RAMRead(SectorShortAddress, buf[:])
	if err != nil {
		return 0, Status{}, err
	}
	return binary.BigEndian.Uint16(buf[:]), status, nil
}

// SetPANID stores the 16-bit PAN identifier.
func (r *Radio) SetPANID(id uint16) (Status, error) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], id)
	return r.RAMWrite(SectorPanID, buf[:])
}

// PANID reads back the 16-bit PAN identifier.
func (r *Radio) PANID() (uint16, Status, error) {
	var buf [2]byte
	status, err := r.RAMRead(SectorPanID, buf[:])
	if err != nil {
		return 0, Status{}, err
	}
	return binary.BigEndian.Uint16(buf[:]), status, nil
}

// SetIEEEAddress stores the 64-bit extended address.
func (r *Radio) SetIEEEAddress(addr [8]byte) (Status, error) {
	return r.RAMWrite(SectorIEEEAddress, addr[:])
}

// IEEEAddress reads back the 64-bit extended address.
func (r *Radio) IEEEAddress() ([8]byte, Status, error) {
	var buf [8]byte
	status, err := r.RAMRead(SectorIEEEAddress, buf[:])
	if err != nil {
		return buf, Status{}, err
	}
	return buf, status, nil
}
