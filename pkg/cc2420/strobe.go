package cc2420

import "fmt"

// Strobe is a single-byte command opcode. Sending one triggers an
// immediate chip action and clocks back one status byte.
type Strobe byte

// Command strobes (0x00..0x0E) and the two FIFO access opcodes.
const (
	// StrobeNop has no effect beyond reading out the status byte.
	StrobeNop Strobe = 0x00

	// StrobeXOSCOn turns on the crystal oscillator.
	StrobeXOSCOn Strobe = 0x01

	// StrobeTxCal enables and calibrates the frequency synthesizer
	// for TX, leaving RX/TX for a wait state.
	StrobeTxCal Strobe = 0x02

	// StrobeRxOn enables RX.
	StrobeRxOn Strobe = 0x03

	// StrobeTxOn enables TX after calibration, starting in-line
	// encryption when a security mode is selected.
	StrobeTxOn Strobe = 0x04

	// StrobeTxOnCCA enables TX only if CCA indicates a clear
	// channel; otherwise it does nothing.
	StrobeTxOnCCA Strobe = 0x05

	// StrobeRFOff disables RX/TX and the frequency synthesizer.
	StrobeRFOff Strobe = 0x06

	// StrobeXOSCOff turns off the crystal oscillator and RF.
	StrobeXOSCOff Strobe = 0x07

	// StrobeFlushRx flushes the RX FIFO and resets the demodulator.
	// Read at least one byte from the RX FIFO before issuing it.
	StrobeFlushRx Strobe = 0x08

	// StrobeFlushTx flushes the TX FIFO.
	StrobeFlushTx Strobe = 0x09

	// StrobeAck sends an acknowledge frame with the pending field
	// cleared.
	StrobeAck Strobe = 0x0A

	// StrobeAckPend sends an acknowledge frame with the pending
	// field set.
	StrobeAckPend Strobe = 0x0B

	// StrobeRxDecrypt starts RX FIFO in-line decryption.
	StrobeRxDecrypt Strobe = 0x0C

	// StrobeTxEncrypt starts TX FIFO in-line encryption without
	// starting TX.
	StrobeTxEncrypt Strobe = 0x0D

	// StrobeAES runs a stand-alone AES pass over the encryption
	// buffer. Ignored while the encryption module is busy.
	StrobeAES Strobe = 0x0E

	// StrobeTxFifo is the TX FIFO write opcode.
	StrobeTxFifo Strobe = 0x3E

	// StrobeRxFifo is the RX FIFO read opcode.
	StrobeRxFifo Strobe = 0x3F
)

// Opcode returns the wire byte for the strobe.
func (s Strobe) Opcode() byte { return byte(s) }

func (s Strobe) String() string {
	switch s {
	case StrobeNop:
		return "SNOP"
	case StrobeXOSCOn:
		return "SXOSCON"
	case StrobeTxCal:
		return "STXCAL"
	case StrobeRxOn:
		return "SRXON"
	case StrobeTxOn:
		return "STXON"
	case StrobeTxOnCCA:
		return "STXONCCA"
	case StrobeRFOff:
		return "SRFOFF"
	case StrobeXOSCOff:
		return "SXOSCOFF"
	case StrobeFlushRx:
		return "SFLUSHRX"
	case StrobeFlushTx:
		return "SFLUSHTX"
	case StrobeAck:
		return "SACK"
	case StrobeAckPend:
		return "SACKPEND"
	case StrobeRxDecrypt:
		return "SRXDEC"
	case StrobeTxEncrypt:
		return "STXENC"
	case StrobeAES:
		return "SAES"
	case StrobeTxFifo:
		return "TXFIFO"
	case StrobeRxFifo:
		return "RXFIFO"
	}
	return fmt.Sprintf("strobe(0x%02X)", byte(s))
}
