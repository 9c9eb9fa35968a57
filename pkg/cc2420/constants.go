package cc2420

import "time"

// Serial bus parameters. The CC2420 SPI interface runs mode 0 with a
// 10 MHz ceiling; transports should configure their bus from these.
const (
	MaxClockHz = 10000000
	SPIMode    = 0
)

// Address byte framing.
const (
	// RegisterWriteBit is set in the address byte of a register
	// write; register reads leave it clear.
	RegisterWriteBit = 0x40

	// RAMAccessBit marks the first RAM address byte as a RAM access
	// instead of a register access.
	RAMAccessBit = 0x80

	// RAMReadBit in the second RAM address byte selects read access;
	// clear selects read/write access.
	RAMReadBit = 0x20
)

// Frame limits.
const (
	// MaxFrameSize is the TX/RX FIFO capacity in bytes. Larger
	// payloads must go through the chunked Send path.
	MaxFrameSize = 128
)

// Default timing constants. All of them bind at construction and can be
// overridden with options.
const (
	// DefaultWriteSettle is the pause after each configuration write
	// before its read-back verification.
	DefaultWriteSettle = 50 * time.Microsecond

	// DefaultPollInterval is the spacing of status and pin polls.
	DefaultPollInterval = 100 * time.Microsecond

	// DefaultOscillatorTimeout bounds the wait for the 16 MHz
	// crystal oscillator to report stable after SXOSCON.
	DefaultOscillatorTimeout = 100 * time.Millisecond

	// DefaultFrameTimeout bounds the wait for the SFD line to signal
	// that a chunk has left the TX FIFO.
	DefaultFrameTimeout = 250 * time.Millisecond
)
