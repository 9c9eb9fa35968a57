package cc2420

import "fmt"

// Sector is a named region of the chip's on-board RAM, reachable
// through the banked 9-bit address space. The constant value is the
// sector's base address.
type Sector uint16

const (
	SectorTxFifo           Sector = 0x000
	SectorRxFifo           Sector = 0x080
	SectorKey0             Sector = 0x100
	SectorRxNonce          Sector = 0x110
	SectorEncryptionBuffer Sector = 0x120
	SectorKey1             Sector = 0x130
	SectorTxNonce          Sector = 0x140
	SectorIEEEAddress      Sector = 0x160
	SectorPanID            Sector = 0x168
	SectorShortAddress     Sector = 0x16A
)

// ReadAddress returns the two address bytes selecting read access to
// the sector: bit 7 of the first byte marks a RAM access over the
// sector offset's low seven bits; the second byte carries the bank bits
// in 7:6 and the read direction bit in 5.
func (s Sector) ReadAddress() (byte, byte) {
	b0, b1 := s.WriteAddress()
	return b0, b1 | RAMReadBit
}

// WriteAddress returns the two address bytes selecting read/write
// access to the sector. It differs from ReadAddress only in the
// direction bit.
func (s Sector) WriteAddress() (byte, byte) {
	return RAMAccessBit | byte(s&0x7F), byte(s >> 1 & 0xC0)
}

// Length returns the sector's fixed size in bytes. Every RAM access
// must supply a buffer of exactly this length.
func (s Sector) Length() int {
	switch s {
	case SectorShortAddress, SectorPanID:
		return 2
	case SectorIEEEAddress:
		return 8
	case SectorTxNonce, SectorKey1, SectorEncryptionBuffer, SectorRxNonce, SectorKey0:
		return 16
	case SectorRxFifo, SectorTxFifo:
		return 128
	}
	return 0
}

func (s Sector) String() string {
	switch s {
	case SectorShortAddress:
		return "short address"
	case SectorPanID:
		return "PAN identifier"
	case SectorIEEEAddress:
		return "IEEE address"
	case SectorTxNonce:
		return "TX nonce"
	case SectorKey1:
		return "key 1"
	case SectorEncryptionBuffer:
		return "encryption buffer"
	case SectorRxNonce:
		return "RX nonce"
	case SectorKey0:
		return "key 0"
	case SectorRxFifo:
		return "RX FIFO"
	case SectorTxFifo:
		return "TX FIFO"
	}
	return fmt.Sprintf("sector(0x%03X)", uint16(s))
}
