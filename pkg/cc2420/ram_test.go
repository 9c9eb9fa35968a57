package cc2420

import "testing"

func TestSectorAddresses(t *testing.T) {
	tests := []struct {
		sector Sector
		b0, b1 byte
	}{
		{SectorTxFifo, 0x80, 0x00},
		{SectorRxFifo, 0x80, 0x40},
		{SectorKey0, 0x80, 0x80},
		{SectorRxNonce, 0x90, 0x80},
		{SectorEncryptionBuffer, 0xA0, 0x80},
		{SectorKey1, 0xB0, 0x80},
		{SectorTxNonce, 0xC0, 0x80},
		{SectorIEEEAddress, 0xE0, 0x80},
		{SectorPanID, 0xE8, 0x80},
		{SectorShortAddress, 0xEA, 0x80},
	}

	for _, tt := range tests {
		b0, b1 := tt.sector.WriteAddress()
		if b0 != tt.b0 || b1 != tt.b1 {
			t.Errorf("%s: WriteAddress() = %02x %02x, want %02x %02x",
				tt.sector, b0, b1, tt.b0, tt.b1)
		}

		r0, r1 := tt.sector.ReadAddress()
		if r0 != tt.b0 || r1 != tt.b1|RAMReadBit {
			t.Errorf("%s: ReadAddress() = %02x %02x, want %02x %02x",
				tt.sector, r0, r1, tt.b0, tt.b1|RAMReadBit)
		}
	}
}

func TestSectorLengths(t *testing.T) {
	tests := []struct {
		sector Sector
		length int
	}{
		{SectorTxFifo, 128},
		{SectorRxFifo, 128},
		{SectorKey0, 16},
		{SectorRxNonce, 16},
		{SectorEncryptionBuffer, 16},
		{SectorKey1, 16},
		{SectorTxNonce, 16},
		{SectorIEEEAddress, 8},
		{SectorPanID, 2},
		{SectorShortAddress, 2},
	}

	for _, tt := range tests {
		if got := tt.sector.Length(); got != tt.length {
			t.Errorf("%s: Length() = %d, want %d", tt.sector, got, tt.length)
		}
	}
}
