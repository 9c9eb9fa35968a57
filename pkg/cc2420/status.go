package cc2420

// Status is the flag byte the chip returns on every SPI transaction.
// It is decoded fresh from each exchange and never cached.
type Status struct {
	// The 16 MHz crystal oscillator is running.
	XOSCStable bool

	// A TX FIFO underflow has occurred. Cleared by SFLUSHTX.
	TxUnderflow bool

	// The encryption module is busy.
	EncBusy bool

	// RF transmission is active.
	TxActive bool

	// The frequency synthesizer PLL is in lock.
	Lock bool

	// The RSSI value is valid; always true once reception has been
	// enabled for at least 8 symbol periods.
	RSSIValid bool
}

// DecodeStatus extracts the status flags from a raw status byte.
func DecodeStatus(b byte) Status {
	return Status{
		XOSCStable:  b&(1<<6) != 0,
		TxUnderflow: b&(1<<5) != 0,
		EncBusy:     b&(1<<4) != 0,
		TxActive:    b&(1<<3) != 0,
		Lock:        b&(1<<2) != 0,
		RSSIValid:   b&(1<<1) != 0,
	}
}
