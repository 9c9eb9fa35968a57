package cc2420

// Config bundles the user-facing radio parameters consumed by
// Configure. Construct it once, starting from DefaultConfig, and hand
// it over; the controller does not keep a reference.
type Config struct {
	// Operate as a PAN coordinator.
	PANCoordinator bool

	// Hardware address decoding.
	AddressDecoding bool

	// Hardware CRC-16 generation and checking.
	EnableCRC bool

	// Automatic acknowledgment of accepted frames.
	AutoAck bool

	// Preamble length setting, 0..15 (n+1 leading zero bytes).
	PreambleLength uint8

	// Synchronization word.
	SyncWord uint16

	// 16-bit short address.
	ShortAddress uint16

	// 16-bit PAN identifier.
	PANID uint16

	// 64-bit IEEE address.
	IEEEAddress [8]byte

	// 128-bit TX encryption key (loaded into key slot 1).
	TxKey [16]byte

	// 128-bit RX decryption key (loaded into key slot 0).
	RxKey [16]byte
}

// DefaultConfig returns a Config matching the IEEE 802.15.4 reset
// values: CRC and address decoding enabled, PAN coordination and auto
// acknowledge disabled, the compliant sync word and preamble.
func DefaultConfig() Config {
	return Config{
		AddressDecoding: true,
		EnableCRC:       true,
		PreambleLength:  2,
		SyncWord:        0xA70F,
		ShortAddress:    0x1234,
		PANID:           0x1234,
		IEEEAddress:     [8]byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0},
	}
}
